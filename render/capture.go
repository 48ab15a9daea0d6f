// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"context"
	"fmt"
)

// Offscreen drives one capture of a scene into a fresh offscreen target.
//
// The steps are split so a caller can run hooks between them:
//
//	o := render.NewOffscreen(renderer, scene, camera, compositor)
//	defer o.Dispose()
//	w, h, err := o.Configure(1920, 1080)
//	err = o.Render(ctx)
//	pixels, err := o.Read(ctx)
//
// Offscreen mutates the renderer and camera. Callers wrap it in Save and
// Restore; CaptureFrame does not.
type Offscreen struct {
	renderer   Renderer
	scene      Scene
	camera     Camera
	compositor Compositor

	width  int
	height int
	target Target
}

// NewOffscreen prepares a capture. compositor may be nil, in which case the
// scene is rendered directly and post-processing is bypassed.
func NewOffscreen(r Renderer, scene Scene, camera Camera, compositor Compositor) *Offscreen {
	return &Offscreen{
		renderer:   r,
		scene:      scene,
		camera:     camera,
		compositor: compositor,
	}
}

// Configure forces a pixel ratio of 1, resizes the renderer to the
// requested size without touching the on-screen presentation, and matches
// the camera aspect to the resulting drawing buffer. It returns the actual
// drawing-buffer size, which is what the capture allocates and reads.
func (o *Offscreen) Configure(width, height int) (int, int, error) {
	if width <= 0 || height <= 0 {
		return 0, 0, fmt.Errorf("%dx%d: %w", width, height, ErrInvalidSize)
	}

	o.renderer.SetPixelRatio(1)
	o.renderer.SetSize(width, height, false)

	w, h := o.renderer.DrawingBufferSize()
	if w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("drawing buffer %dx%d: %w", w, h, ErrInvalidSize)
	}
	if w != width || h != height {
		Logger().Debug("capture: drawing buffer differs from request",
			"requested", fmt.Sprintf("%dx%d", width, height),
			"actual", fmt.Sprintf("%dx%d", w, h))
	}

	if o.camera != nil {
		o.camera.SetAspect(float64(w) / float64(h))
		o.camera.UpdateProjection()
	}

	o.width, o.height = w, h
	return w, h, nil
}

// Size returns the configured drawing-buffer size.
func (o *Offscreen) Size() (int, int) { return o.width, o.height }

// Render allocates the capture target and draws one frame into it, either
// through the compositor or directly.
func (o *Offscreen) Render(ctx context.Context) error {
	if o.width <= 0 || o.height <= 0 {
		return fmt.Errorf("render before configure: %w", ErrInvalidSize)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	desc := CaptureTargetDescriptor(o.width, o.height)
	if h, ok := o.renderer.(DeviceOwner); ok {
		desc.Format = CaptureFormat(h.DeviceHandle())
	}
	target, err := o.renderer.NewTarget(desc)
	if err != nil {
		return fmt.Errorf("allocate %dx%d target: %w: %w", o.width, o.height, ErrRender, err)
	}
	o.target = target

	if o.compositor != nil {
		err = o.renderComposited(ctx)
	} else {
		o.renderer.SetRenderTarget(target)
		err = o.renderer.Render(o.scene, o.camera)
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRender, err)
	}
	return nil
}

// renderComposited appends a capture stage, forces every existing pass off
// the display, renders once at capture size and undoes all of it.
func (o *Offscreen) renderComposited(ctx context.Context) error {
	c := o.compositor

	passes := c.Passes()
	flags := make([]bool, len(passes))
	for i, p := range passes {
		flags[i] = p.RenderToScreen()
		p.SetRenderToScreen(false)
	}
	prevW, prevH := c.Size()

	capture := NewCapturePass(o.target)
	c.AddPass(capture, -1)

	defer func() {
		c.RemovePass(capture)
		for i, p := range passes {
			p.SetRenderToScreen(flags[i])
		}
		c.SetSize(prevW, prevH)
	}()

	c.SetSize(o.width, o.height)
	Logger().Debug("capture: compositing", "passes", len(passes)+1, "width", o.width, "height", o.height)
	return c.Render(ctx, 0)
}

// Read returns the capture's RGBA8 pixels, bottom row first.
func (o *Offscreen) Read(ctx context.Context) ([]byte, error) {
	if o.target == nil {
		return nil, fmt.Errorf("read before render: %w", ErrRender)
	}
	if h, ok := o.renderer.(DeviceOwner); ok {
		if err := SyncDevice(h.DeviceHandle()); err != nil {
			return nil, fmt.Errorf("wait for device: %w: %w", ErrRender, err)
		}
	}
	pixels, err := o.renderer.ReadTargetPixels(ctx, o.target)
	if err != nil {
		return nil, fmt.Errorf("readback: %w: %w", ErrRender, err)
	}
	if want := o.width * o.height * 4; len(pixels) != want {
		return nil, fmt.Errorf("readback returned %d bytes, want %d: %w", len(pixels), want, ErrRender)
	}
	return pixels, nil
}

// Dispose releases the capture target. It is safe to call at any point
// and more than once.
func (o *Offscreen) Dispose() {
	if o.target == nil {
		return
	}
	if o.renderer.RenderTarget() == o.target {
		o.renderer.SetRenderTarget(nil)
	}
	o.target.Dispose()
	o.target = nil
}

// CaptureFrame configures, renders and reads back one frame, disposing the
// target on every path. It returns the pixels together with the actual
// drawing-buffer size. The caller is responsible for Save and Restore.
func CaptureFrame(ctx context.Context, r Renderer, scene Scene, camera Camera, width, height int, compositor Compositor) ([]byte, int, int, error) {
	o := NewOffscreen(r, scene, camera, compositor)
	defer o.Dispose()

	w, h, err := o.Configure(width, height)
	if err != nil {
		return nil, 0, 0, err
	}
	if err := o.Render(ctx); err != nil {
		return nil, 0, 0, err
	}
	pixels, err := o.Read(ctx)
	if err != nil {
		return nil, 0, 0, err
	}
	return pixels, w, h, nil
}
