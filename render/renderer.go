// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import "context"

// Scene is the host's scene graph root. photomode passes it through to the
// renderer without inspecting it.
type Scene any

// Camera is the part of the host camera the capture path touches.
type Camera interface {
	// Aspect returns the camera's aspect ratio (width / height).
	Aspect() float64

	// SetAspect sets the aspect ratio. UpdateProjection must be called
	// for the change to take effect.
	SetAspect(aspect float64)

	// UpdateProjection recomputes the projection matrix.
	UpdateProjection()
}

// Renderer is the host engine's renderer handle.
//
// Renderers are NOT thread-safe. photomode calls them from the goroutine
// that drives the frame loop.
type Renderer interface {
	// RenderTarget returns the active render target, or nil when rendering
	// to the display.
	RenderTarget() Target

	// SetRenderTarget makes t the active render target. Nil selects the
	// display.
	SetRenderTarget(t Target)

	// PixelRatio returns the device pixel ratio.
	PixelRatio() float64

	// SetPixelRatio sets the device pixel ratio.
	SetPixelRatio(ratio float64)

	// Size returns the logical viewport size.
	Size() (width, height int)

	// SetSize sets the logical viewport size. When updateStyle is false
	// the on-screen presentation size is left untouched.
	SetSize(width, height int, updateStyle bool)

	// DrawingBufferSize returns the backbuffer size in device pixels.
	DrawingBufferSize() (width, height int)

	// NewTarget allocates an offscreen target.
	NewTarget(desc TargetDescriptor) (Target, error)

	// ReadTargetPixels reads back the full color buffer of t as tightly
	// packed RGBA8 rows. Rows are returned bottom row first, the way GPU
	// readback delivers them.
	ReadTargetPixels(ctx context.Context, t Target) ([]byte, error)

	// Render draws scene from camera into the active render target.
	Render(scene Scene, camera Camera) error
}

// Blitter is implemented by renderers that can copy one target into
// another. CapturePass requires it.
type Blitter interface {
	// CopyTarget copies the color contents of src into dst, resolving
	// multisampling and scaling if the sizes differ.
	CopyTarget(dst, src Target) error
}

// Compositor is the host's post-processing pass graph.
type Compositor interface {
	// Passes returns the ordered pass list. The slice must not be retained
	// across AddPass/RemovePass calls.
	Passes() []Pass

	// AddPass inserts p at index. A negative or out-of-range index appends.
	AddPass(p Pass, index int)

	// RemovePass removes p if present.
	RemovePass(p Pass)

	// Size returns the compositor's buffer size.
	Size() (width, height int)

	// SetSize resizes the compositor and all of its passes.
	SetSize(width, height int)

	// Render runs every enabled pass once.
	Render(ctx context.Context, delta float64) error
}

// Pass is one stage of a Compositor.
//
// Render receives the compositor's ping-pong buffers: read holds the
// output of the previous stage, write is where a swapping pass draws.
// A pass flagged RenderToScreen draws to the display instead.
type Pass interface {
	Name() string
	Enabled() bool
	SetEnabled(enabled bool)
	RenderToScreen() bool
	SetRenderToScreen(toScreen bool)
	NeedsSwap() bool
	SetSize(width, height int)
	Render(ctx context.Context, r Renderer, write, read Target, delta float64) error
}

// DeviceOwner is implemented by GPU renderers that expose their device.
// Capture uses it to pick the target format and to drain queued work
// before readback.
type DeviceOwner interface {
	DeviceHandle() DeviceHandle
}
