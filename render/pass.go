// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"context"
	"fmt"
)

// BasePass carries the bookkeeping every Pass needs. Embed it and
// implement Render.
type BasePass struct {
	name     string
	enabled  bool
	toScreen bool
	swap     bool
}

// NewBasePass returns an enabled, off-screen pass state with the given name.
func NewBasePass(name string, needsSwap bool) BasePass {
	return BasePass{name: name, enabled: true, swap: needsSwap}
}

// Name returns the pass name.
func (p *BasePass) Name() string { return p.name }

// Enabled reports whether the compositor runs the pass.
func (p *BasePass) Enabled() bool { return p.enabled }

// SetEnabled enables or disables the pass.
func (p *BasePass) SetEnabled(enabled bool) { p.enabled = enabled }

// RenderToScreen reports whether the pass draws to the display.
func (p *BasePass) RenderToScreen() bool { return p.toScreen }

// SetRenderToScreen sets the display flag.
func (p *BasePass) SetRenderToScreen(toScreen bool) { p.toScreen = toScreen }

// NeedsSwap reports whether the compositor swaps buffers after the pass.
func (p *BasePass) NeedsSwap() bool { return p.swap }

// SetSize is a no-op for passes without size-dependent resources.
func (p *BasePass) SetSize(int, int) {}

// CapturePassName is the name of the pass inserted by Offscreen.
const CapturePassName = "CapturePass"

// CapturePass is a terminal compositor stage that copies the compositor's
// final output into a capture target.
type CapturePass struct {
	BasePass
	target Target
}

// NewCapturePass creates a capture stage writing into target.
func NewCapturePass(target Target) *CapturePass {
	return &CapturePass{
		BasePass: NewBasePass(CapturePassName, false),
		target:   target,
	}
}

// Target returns the capture target.
func (p *CapturePass) Target() Target { return p.target }

// Render copies read into the capture target.
func (p *CapturePass) Render(_ context.Context, r Renderer, _, read Target, _ float64) error {
	b, ok := r.(Blitter)
	if !ok {
		return ErrNoBlit
	}
	if read == nil {
		return fmt.Errorf("capture pass: no input buffer: %w", ErrRender)
	}
	return b.CopyTarget(p.target, read)
}

var _ Pass = (*CapturePass)(nil)
