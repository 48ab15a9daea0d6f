// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package soft

import (
	"fmt"
	"image"
	"image/color"

	"github.com/gogpu/gputypes"
	"golang.org/x/image/draw"

	"github.com/gogpu/photomode/render"
)

// Target is a CPU color buffer with a depth buffer.
//
// Color is always stored as RGBA regardless of the requested format. Two
// depth channels are kept per pixel: the normalized device depth in [0,1]
// that a GPU depth attachment would hold, and the view-axis distance used
// by depth of field.
type Target struct {
	label    string
	format   gputypes.TextureFormat
	samples  uint32
	color    *image.RGBA
	depth    []float32
	dist     []float32
	disposed bool
}

// NewTarget allocates a target described by desc.
func NewTarget(desc render.TargetDescriptor) (*Target, error) {
	if desc.Width <= 0 || desc.Height <= 0 {
		return nil, fmt.Errorf("%dx%d: %w", desc.Width, desc.Height, render.ErrInvalidSize)
	}
	format := desc.Format
	switch format {
	case gputypes.TextureFormatUndefined:
		format = gputypes.TextureFormatRGBA8Unorm
	case gputypes.TextureFormatRGBA8Unorm, gputypes.TextureFormatBGRA8Unorm:
	default:
		return nil, fmt.Errorf("%v: %w", format, ErrFormat)
	}
	samples := desc.SampleCount
	if samples == 0 {
		samples = 1
	}
	n := desc.Width * desc.Height
	return &Target{
		label:   desc.Label,
		format:  format,
		samples: samples,
		color:   image.NewRGBA(image.Rect(0, 0, desc.Width, desc.Height)),
		depth:   make([]float32, n),
		dist:    make([]float32, n),
	}, nil
}

// Width returns the target width in pixels.
func (t *Target) Width() int { return t.color.Rect.Dx() }

// Height returns the target height in pixels.
func (t *Target) Height() int { return t.color.Rect.Dy() }

// Format returns the requested color format.
func (t *Target) Format() gputypes.TextureFormat { return t.format }

// SampleCount returns the multisample count. The renderer supersamples
// targets with four or more samples.
func (t *Target) SampleCount() uint32 { return t.samples }

// Label returns the debug label.
func (t *Target) Label() string { return t.label }

// Dispose marks the target unusable and drops its buffers.
func (t *Target) Dispose() {
	if t.disposed {
		return
	}
	t.disposed = true
	t.depth = nil
	t.dist = nil
}

// Disposed reports whether Dispose was called.
func (t *Target) Disposed() bool { return t.disposed }

// Image returns the color buffer. It is shared, not copied.
func (t *Target) Image() *image.RGBA { return t.color }

// DepthAt returns the normalized device depth at pixel (x, y), or 1 when
// out of bounds.
func (t *Target) DepthAt(x, y int) float64 {
	w, h := t.Width(), t.Height()
	if x < 0 || y < 0 || x >= w || y >= h || t.disposed {
		return 1
	}
	return float64(t.depth[y*w+x])
}

// DistanceAt returns the view distance at pixel (x, y).
func (t *Target) DistanceAt(x, y int) float64 {
	w, h := t.Width(), t.Height()
	if x < 0 || y < 0 || x >= w || y >= h || t.disposed {
		return 0
	}
	return float64(t.dist[y*w+x])
}

// clear fills the color buffer with bg and resets depth to the far plane.
func (t *Target) clear(bg color.RGBA, far float64) {
	draw.Draw(t.color, t.color.Rect, image.NewUniform(bg), image.Point{}, draw.Src)
	for i := range t.depth {
		t.depth[i] = 1
		t.dist[i] = float32(far)
	}
}

// store writes img into t and carries over src's depth. Mismatched sizes
// are scaled: color bilinearly, depth by nearest sample.
func (t *Target) store(img *image.RGBA, src *Target) {
	w, h := t.Width(), t.Height()
	sb := img.Bounds()
	if sb.Dx() == w && sb.Dy() == h {
		if img != t.color {
			draw.Draw(t.color, t.color.Rect, img, sb.Min, draw.Src)
		}
	} else {
		draw.BiLinear.Scale(t.color, t.color.Rect, img, sb, draw.Src, nil)
	}
	if src == nil || src == t {
		return
	}
	sw, sh := src.Width(), src.Height()
	if sw == w && sh == h {
		copy(t.depth, src.depth)
		copy(t.dist, src.dist)
		return
	}
	for y := 0; y < h; y++ {
		sy := y * sh / h
		for x := 0; x < w; x++ {
			sx := x * sw / w
			t.depth[y*w+x] = src.depth[sy*sw+sx]
			t.dist[y*w+x] = src.dist[sy*sw+sx]
		}
	}
}

// pixels returns the color buffer as tight RGBA rows, bottom row first.
func (t *Target) pixels() []byte {
	w, h := t.Width(), t.Height()
	row := w * 4
	out := make([]byte, row*h)
	for y := 0; y < h; y++ {
		src := t.color.Pix[y*t.color.Stride : y*t.color.Stride+row]
		copy(out[(h-1-y)*row:], src)
	}
	return out
}

// asTarget unwraps a render.Target allocated by this package.
func asTarget(rt render.Target) (*Target, error) {
	t, ok := rt.(*Target)
	if !ok || t == nil {
		return nil, fmt.Errorf("%T: %w", rt, ErrForeignTarget)
	}
	if t.disposed {
		return nil, ErrDisposed
	}
	return t, nil
}

var _ render.Target = (*Target)(nil)
