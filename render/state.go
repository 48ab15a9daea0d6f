// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

// State is a value snapshot of the renderer and camera settings that a
// capture mutates. It borrows the render target; it never owns it.
type State struct {
	Target     Target
	Width      int
	Height     int
	PixelRatio float64
	Aspect     float64
}

// Save records the renderer's active target, logical size and pixel ratio
// together with the camera's aspect ratio. A nil camera leaves Aspect zero.
func Save(r Renderer, c Camera) State {
	w, h := r.Size()
	s := State{
		Target:     r.RenderTarget(),
		Width:      w,
		Height:     h,
		PixelRatio: r.PixelRatio(),
	}
	if c != nil {
		s.Aspect = c.Aspect()
	}
	return s
}

// Restore puts back everything Save recorded. The pixel ratio is applied
// before the size so the backbuffer comes out at its original dimensions.
// Restore never fails and may be called more than once with the same state.
func Restore(r Renderer, c Camera, s State) {
	r.SetRenderTarget(s.Target)
	r.SetPixelRatio(s.PixelRatio)
	r.SetSize(s.Width, s.Height, false)
	if c != nil {
		c.SetAspect(s.Aspect)
		c.UpdateProjection()
	}
}
