// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"github.com/gogpu/gputypes"
)

// CaptureSampleCount is the multisample count of capture targets.
const CaptureSampleCount = 4

// Target is an offscreen color+depth buffer owned by the renderer that
// allocated it.
//
// Capture targets are created fresh for every capture and disposed right
// after readback. They are never pooled.
type Target interface {
	// Width returns the target width in pixels.
	Width() int

	// Height returns the target height in pixels.
	Height() int

	// Format returns the color format of the target.
	Format() gputypes.TextureFormat

	// SampleCount returns the multisample count of the color attachment.
	SampleCount() uint32

	// Dispose releases the target's resources. Calling Dispose more than
	// once is allowed.
	Dispose()
}

// TargetDescriptor describes an offscreen target to allocate.
type TargetDescriptor struct {
	// Label is an optional debug label.
	Label string

	// Width and Height are the target size in pixels.
	Width  int
	Height int

	// Format is the color format. Use RGBA8Unorm unless the host requires
	// otherwise (see CaptureFormat).
	Format gputypes.TextureFormat

	// SampleCount is the multisample count. Use 1 for no multisampling.
	SampleCount uint32

	// Depth requests a depth attachment alongside the color buffer.
	Depth bool

	// DepthFormat is the format of the depth attachment when Depth is set.
	DepthFormat gputypes.TextureFormat
}

// CaptureTargetDescriptor returns the descriptor used for screenshot
// targets: 4x multisampled RGBA8 color with a depth attachment.
func CaptureTargetDescriptor(width, height int) TargetDescriptor {
	return TargetDescriptor{
		Label:       "photomode_capture",
		Width:       width,
		Height:      height,
		Format:      gputypes.TextureFormatRGBA8Unorm,
		SampleCount: CaptureSampleCount,
		Depth:       true,
		DepthFormat: gputypes.TextureFormatDepth24PlusStencil8,
	}
}
