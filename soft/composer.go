// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package soft

import (
	"context"
	"fmt"
	"slices"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/photomode/render"
)

// EffectComposer runs an ordered list of passes over two ping-pong
// buffers. After a swapping pass, its output becomes the next pass's read
// buffer.
type EffectComposer struct {
	renderer *Renderer
	passes   []render.Pass

	width, height int
	read, write   *Target
}

// NewEffectComposer returns a composer sized to r's drawing buffer.
func NewEffectComposer(r *Renderer) *EffectComposer {
	c := &EffectComposer{renderer: r}
	w, h := r.DrawingBufferSize()
	c.SetSize(w, h)
	return c
}

// Passes returns a copy of the pass list.
func (c *EffectComposer) Passes() []render.Pass { return slices.Clone(c.passes) }

// AddPass inserts p at index, or appends for a negative or out-of-range
// index. The pass is sized to the composer.
func (c *EffectComposer) AddPass(p render.Pass, index int) {
	p.SetSize(c.width, c.height)
	if index < 0 || index >= len(c.passes) {
		c.passes = append(c.passes, p)
		return
	}
	c.passes = slices.Insert(c.passes, index, p)
}

// RemovePass removes p if present.
func (c *EffectComposer) RemovePass(p render.Pass) {
	if i := slices.Index(c.passes, p); i >= 0 {
		c.passes = slices.Delete(c.passes, i, i+1)
	}
}

// Size returns the buffer size.
func (c *EffectComposer) Size() (int, int) { return c.width, c.height }

// SetSize reallocates both buffers and resizes every pass.
func (c *EffectComposer) SetSize(width, height int) {
	c.width, c.height = width, height
	c.read = c.newBuffer("read")
	c.write = c.newBuffer("write")
	for _, p := range c.passes {
		p.SetSize(width, height)
	}
}

func (c *EffectComposer) newBuffer(label string) *Target {
	t, err := NewTarget(render.TargetDescriptor{
		Label:  "composer_" + label,
		Width:  max(c.width, 1),
		Height: max(c.height, 1),
		Format: gputypes.TextureFormatRGBA8Unorm,
		Depth:  true,
	})
	if err != nil {
		// Unreachable: the size is clamped and the format is fixed.
		panic(err)
	}
	return t
}

// ReadBuffer returns the buffer holding the latest composited frame.
func (c *EffectComposer) ReadBuffer() *Target { return c.read }

// Render runs every enabled pass once.
func (c *EffectComposer) Render(ctx context.Context, delta float64) error {
	for _, p := range c.passes {
		if !p.Enabled() {
			continue
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := p.Render(ctx, c.renderer, c.write, c.read, delta); err != nil {
			return fmt.Errorf("pass %s: %w", p.Name(), err)
		}
		if p.NeedsSwap() {
			c.read, c.write = c.write, c.read
		}
	}
	return nil
}

var _ render.Compositor = (*EffectComposer)(nil)
