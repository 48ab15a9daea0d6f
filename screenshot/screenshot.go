// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package screenshot

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/gogpu/photomode/encode"
	"github.com/gogpu/photomode/render"
)

// Request names the host objects a capture renders.
type Request struct {
	Renderer   render.Renderer
	Scene      render.Scene
	Camera     render.Camera
	Compositor render.Compositor // optional
}

// HookContext is passed to the before and after hooks.
type HookContext struct {
	Request
	Width  int
	Height int
}

// Hook runs around the render step. Errors and panics are logged and
// otherwise ignored.
type Hook func(HookContext) error

// Options configures Capture.
type Options struct {
	// Width and Height are the requested output size. Zero means the
	// renderer's current logical size.
	Width  int
	Height int

	// Format, Quality and ReturnType are passed to the encoder; zero values
	// select its defaults (jpeg, 0.95, objectURL).
	Format     encode.Format
	Quality    float64
	ReturnType encode.ReturnType

	// Registry receives object URLs. Nil means encode.DefaultRegistry.
	Registry *encode.URLRegistry

	// OnBeforeScreenshot runs after the renderer is configured and right
	// before the frame is rendered.
	OnBeforeScreenshot Hook

	// OnAfterScreenshot runs right after the frame is rendered, before
	// readback.
	OnAfterScreenshot Hook
}

// ErrNoRenderer is returned when Request.Renderer is nil.
var ErrNoRenderer = errors.New("screenshot: no renderer")

// Capture renders req at the requested size and returns the encoded
// result. The renderer, camera and compositor are left exactly as they
// were, whether or not the capture succeeds.
func Capture(ctx context.Context, req Request, opts Options) (encode.Output, error) {
	if req.Renderer == nil {
		return nil, ErrNoRenderer
	}
	r := req.Renderer

	width, height := opts.Width, opts.Height
	if width <= 0 || height <= 0 {
		lw, lh := r.Size()
		if width <= 0 {
			width = lw
		}
		if height <= 0 {
			height = lh
		}
	}

	state := render.Save(r, req.Camera)
	restore := sync.OnceFunc(func() { render.Restore(r, req.Camera, state) })
	defer restore()

	off := render.NewOffscreen(r, req.Scene, req.Camera, req.Compositor)
	defer off.Dispose()

	w, h, err := off.Configure(width, height)
	if err != nil {
		return nil, err
	}
	hc := HookContext{Request: req, Width: w, Height: h}

	runHook("before", opts.OnBeforeScreenshot, hc)
	if err := off.Render(ctx); err != nil {
		return nil, err
	}
	runHook("after", opts.OnAfterScreenshot, hc)

	pixels, err := off.Read(ctx)
	if err != nil {
		return nil, err
	}

	restore()
	off.Dispose()

	encode.Flip(pixels, w, h)
	out, err := encode.ToOutput(ctx, pixels, w, h, encode.Options{
		Format:     opts.Format,
		Quality:    opts.Quality,
		ReturnType: opts.ReturnType,
		Registry:   opts.Registry,
	})
	if err != nil {
		return nil, fmt.Errorf("screenshot: %w", err)
	}

	slogger().Debug("screenshot: captured", "width", w, "height", h, "return", out.ReturnType())
	return out, nil
}

// runHook calls h and swallows anything it throws.
func runHook(name string, h Hook, hc HookContext) {
	if h == nil {
		return
	}
	defer func() {
		if p := recover(); p != nil {
			slogger().Warn("screenshot: hook panicked", "hook", name, "panic", p)
		}
	}()
	if err := h(hc); err != nil {
		slogger().Warn("screenshot: hook failed", "hook", name, "err", err)
	}
}
