// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gpu

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/photomode/render"
)

// Target is an offscreen color and depth buffer on a HAL device.
//
// With more than one sample the color attachment is a multisampled
// texture that resolves into a single-sample texture; otherwise the
// resolve texture is drawn to directly. Readback always copies from the
// resolve texture.
type Target struct {
	device hal.Device
	label  string
	format gputypes.TextureFormat

	msaaTex     hal.Texture
	msaaView    hal.TextureView
	depthTex    hal.Texture
	depthView   hal.TextureView
	resolveTex  hal.Texture
	resolveView hal.TextureView

	width   uint32
	height  uint32
	samples uint32
}

// NewTarget allocates a target on d described by desc. A partially built
// target is released before an error is returned.
func (d *Device) NewTarget(desc render.TargetDescriptor) (*Target, error) {
	if desc.Width <= 0 || desc.Height <= 0 {
		return nil, fmt.Errorf("%dx%d: %w", desc.Width, desc.Height, render.ErrInvalidSize)
	}
	t := &Target{
		device:  d.device,
		label:   desc.Label,
		format:  desc.Format,
		width:   uint32(desc.Width),
		height:  uint32(desc.Height),
		samples: max(desc.SampleCount, 1),
	}
	if t.label == "" {
		t.label = "photomode_target"
	}
	if t.format == gputypes.TextureFormatUndefined {
		t.format = d.Format()
	}
	if err := t.create(desc); err != nil {
		t.Dispose()
		return nil, err
	}
	return t, nil
}

func (t *Target) create(desc render.TargetDescriptor) error {
	size := hal.Extent3D{Width: t.width, Height: t.height, DepthOrArrayLayers: 1}

	if t.samples > 1 {
		tex, view, err := t.texture("_msaa_color", size, t.samples, t.format, gputypes.TextureUsageRenderAttachment)
		if err != nil {
			return fmt.Errorf("create MSAA color texture: %w", err)
		}
		t.msaaTex, t.msaaView = tex, view
	}

	if desc.Depth {
		format := desc.DepthFormat
		if format == gputypes.TextureFormatUndefined {
			format = gputypes.TextureFormatDepth24PlusStencil8
		}
		tex, view, err := t.texture("_depth", size, t.samples, format, gputypes.TextureUsageRenderAttachment)
		if err != nil {
			return fmt.Errorf("create depth texture: %w", err)
		}
		t.depthTex, t.depthView = tex, view
	}

	tex, view, err := t.texture("_resolve", size, 1, t.format,
		gputypes.TextureUsageRenderAttachment|gputypes.TextureUsageCopySrc|gputypes.TextureUsageCopyDst|gputypes.TextureUsageTextureBinding)
	if err != nil {
		return fmt.Errorf("create resolve texture: %w", err)
	}
	t.resolveTex, t.resolveView = tex, view
	return nil
}

func (t *Target) texture(suffix string, size hal.Extent3D, samples uint32, format gputypes.TextureFormat, usage gputypes.TextureUsage) (hal.Texture, hal.TextureView, error) {
	tex, err := t.device.CreateTexture(&hal.TextureDescriptor{
		Label:         t.label + suffix,
		Size:          size,
		MipLevelCount: 1,
		SampleCount:   samples,
		Dimension:     gputypes.TextureDimension2D,
		Format:        format,
		Usage:         usage,
	})
	if err != nil {
		return nil, nil, err
	}
	view, err := t.device.CreateTextureView(tex, &hal.TextureViewDescriptor{
		Label: t.label + suffix + "_view",
	})
	if err != nil {
		t.device.DestroyTexture(tex)
		return nil, nil, err
	}
	return tex, view, nil
}

// Width returns the target width in pixels.
func (t *Target) Width() int { return int(t.width) }

// Height returns the target height in pixels.
func (t *Target) Height() int { return int(t.height) }

// Format returns the color format.
func (t *Target) Format() gputypes.TextureFormat { return t.format }

// SampleCount returns the multisample count of the color attachment.
func (t *Target) SampleCount() uint32 { return t.samples }

// ColorAttachment returns the view to draw into and the view it resolves
// to, which is nil for single-sample targets.
func (t *Target) ColorAttachment() (view, resolve hal.TextureView) {
	if t.msaaView != nil {
		return t.msaaView, t.resolveView
	}
	return t.resolveView, nil
}

// DepthView returns the depth attachment view, or nil.
func (t *Target) DepthView() hal.TextureView { return t.depthView }

// ResolveTexture returns the single-sample texture readback copies from.
func (t *Target) ResolveTexture() hal.Texture { return t.resolveTex }

// Disposed reports whether the target's textures have been released.
func (t *Target) Disposed() bool { return t.resolveTex == nil }

// Dispose releases every texture. It is safe to call more than once.
func (t *Target) Dispose() {
	if t.device == nil {
		return
	}
	if t.resolveView != nil {
		t.device.DestroyTextureView(t.resolveView)
		t.resolveView = nil
	}
	if t.resolveTex != nil {
		t.device.DestroyTexture(t.resolveTex)
		t.resolveTex = nil
	}
	if t.depthView != nil {
		t.device.DestroyTextureView(t.depthView)
		t.depthView = nil
	}
	if t.depthTex != nil {
		t.device.DestroyTexture(t.depthTex)
		t.depthTex = nil
	}
	if t.msaaView != nil {
		t.device.DestroyTextureView(t.msaaView)
		t.msaaView = nil
	}
	if t.msaaTex != nil {
		t.device.DestroyTexture(t.msaaTex)
		t.msaaTex = nil
	}
}

var _ render.Target = (*Target)(nil)
