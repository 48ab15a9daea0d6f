// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"context"
	"errors"

	"github.com/gogpu/gputypes"
)

// mockTarget implements Target for testing.
type mockTarget struct {
	desc     TargetDescriptor
	disposed int
	pix      []byte
}

func (t *mockTarget) Width() int                     { return t.desc.Width }
func (t *mockTarget) Height() int                    { return t.desc.Height }
func (t *mockTarget) Format() gputypes.TextureFormat { return t.desc.Format }
func (t *mockTarget) SampleCount() uint32            { return t.desc.SampleCount }
func (t *mockTarget) Dispose()                       { t.disposed++ }

// mockCamera implements Camera for testing.
type mockCamera struct {
	aspect  float64
	updates int
}

func (c *mockCamera) Aspect() float64     { return c.aspect }
func (c *mockCamera) SetAspect(a float64) { c.aspect = a }
func (c *mockCamera) UpdateProjection()   { c.updates++ }

// mockRenderer implements Renderer and Blitter for testing.
//
// bufferScale simulates backends whose drawing buffer is larger than the
// logical size even at pixel ratio 1.
type mockRenderer struct {
	target      Target
	ratio       float64
	width       int
	height      int
	styleWrites int
	bufferScale int

	targets    []*mockTarget
	renders    int
	renderedTo []Target
	copies     int

	renderErr error
	readErr   error
	newErr    error
}

func newMockRenderer(w, h int, ratio float64) *mockRenderer {
	return &mockRenderer{width: w, height: h, ratio: ratio, bufferScale: 1}
}

func (r *mockRenderer) RenderTarget() Target     { return r.target }
func (r *mockRenderer) SetRenderTarget(t Target) { r.target = t }
func (r *mockRenderer) PixelRatio() float64      { return r.ratio }
func (r *mockRenderer) SetPixelRatio(v float64)  { r.ratio = v }
func (r *mockRenderer) Size() (int, int)         { return r.width, r.height }

func (r *mockRenderer) SetSize(w, h int, updateStyle bool) {
	r.width, r.height = w, h
	if updateStyle {
		r.styleWrites++
	}
}

func (r *mockRenderer) DrawingBufferSize() (int, int) {
	return int(float64(r.width)*r.ratio) * r.bufferScale, int(float64(r.height)*r.ratio) * r.bufferScale
}

func (r *mockRenderer) NewTarget(desc TargetDescriptor) (Target, error) {
	if r.newErr != nil {
		return nil, r.newErr
	}
	t := &mockTarget{desc: desc, pix: make([]byte, desc.Width*desc.Height*4)}
	r.targets = append(r.targets, t)
	return t, nil
}

func (r *mockRenderer) ReadTargetPixels(_ context.Context, t Target) ([]byte, error) {
	if r.readErr != nil {
		return nil, r.readErr
	}
	mt, ok := t.(*mockTarget)
	if !ok {
		return nil, errors.New("unknown target")
	}
	return mt.pix, nil
}

func (r *mockRenderer) Render(Scene, Camera) error {
	r.renders++
	r.renderedTo = append(r.renderedTo, r.target)
	return r.renderErr
}

func (r *mockRenderer) CopyTarget(dst, src Target) error {
	r.copies++
	return nil
}

// mockPass implements Pass for testing.
type mockPass struct {
	BasePass
	runs int
}

func newMockPass(name string, toScreen bool) *mockPass {
	p := &mockPass{BasePass: NewBasePass(name, true)}
	p.SetRenderToScreen(toScreen)
	return p
}

func (p *mockPass) Render(context.Context, Renderer, Target, Target, float64) error {
	p.runs++
	return nil
}

// mockCompositor implements Compositor for testing. It records the pass
// list and flags seen during Render.
type mockCompositor struct {
	renderer Renderer
	passes   []Pass
	width    int
	height   int

	seenPasses []string
	seenFlags  []bool
	seenW      int
	seenH      int
	renderErr  error
}

func (c *mockCompositor) Passes() []Pass { return c.passes }

func (c *mockCompositor) AddPass(p Pass, index int) {
	if index < 0 || index >= len(c.passes) {
		c.passes = append(c.passes, p)
		return
	}
	c.passes = append(c.passes[:index], append([]Pass{p}, c.passes[index:]...)...)
}

func (c *mockCompositor) RemovePass(p Pass) {
	for i, q := range c.passes {
		if q == p {
			c.passes = append(c.passes[:i], c.passes[i+1:]...)
			return
		}
	}
}

func (c *mockCompositor) Size() (int, int) { return c.width, c.height }
func (c *mockCompositor) SetSize(w, h int) { c.width, c.height = w, h }

func (c *mockCompositor) Render(ctx context.Context, delta float64) error {
	c.seenPasses = c.seenPasses[:0]
	c.seenFlags = c.seenFlags[:0]
	c.seenW, c.seenH = c.width, c.height
	read := &mockTarget{}
	for _, p := range c.passes {
		c.seenPasses = append(c.seenPasses, p.Name())
		c.seenFlags = append(c.seenFlags, p.RenderToScreen())
		if err := p.Render(ctx, c.renderer, nil, read, delta); err != nil {
			return err
		}
	}
	return c.renderErr
}
