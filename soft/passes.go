// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package soft

import (
	"context"
	"fmt"
	"image"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/gogpu/photomode/cameractl"
	"github.com/gogpu/photomode/effects"
	"github.com/gogpu/photomode/focus"
	"github.com/gogpu/photomode/internal/filter"
	"github.com/gogpu/photomode/render"
)

// Pass names.
const (
	RenderPassName       = "RenderPass"
	DepthPickingPassName = "DepthPickingPass"
	CopyPassName         = "CopyPass"
)

// output returns where a pass draws: the display when toScreen is set,
// write otherwise.
func output(r render.Renderer, write render.Target, toScreen bool) (*Target, error) {
	if !toScreen {
		return asTarget(write)
	}
	sr, ok := r.(*Renderer)
	if !ok {
		return nil, fmt.Errorf("%T has no display: %w", r, ErrForeignTarget)
	}
	return sr.Screen(), nil
}

// RenderPass draws a scene into the read buffer, or to the display.
// It works with any render.Renderer.
type RenderPass struct {
	render.BasePass
	Scene  render.Scene
	Camera render.Camera
}

// NewRenderPass returns a pass drawing scene from camera.
func NewRenderPass(scene render.Scene, camera render.Camera) *RenderPass {
	return &RenderPass{
		BasePass: render.NewBasePass(RenderPassName, false),
		Scene:    scene,
		Camera:   camera,
	}
}

// Render draws the scene and restores the renderer's previous target.
func (p *RenderPass) Render(_ context.Context, r render.Renderer, _, read render.Target, _ float64) error {
	prev := r.RenderTarget()
	defer r.SetRenderTarget(prev)
	if p.RenderToScreen() {
		r.SetRenderTarget(nil)
	} else {
		r.SetRenderTarget(read)
	}
	return r.Render(p.Scene, p.Camera)
}

// CopyPass copies the read buffer forward.
type CopyPass struct {
	render.BasePass
}

// NewCopyPass returns a copy pass.
func NewCopyPass() *CopyPass {
	return &CopyPass{BasePass: render.NewBasePass(CopyPassName, true)}
}

// Render copies read into write, or to the display.
func (p *CopyPass) Render(_ context.Context, r render.Renderer, write, read render.Target, _ float64) error {
	in, err := asTarget(read)
	if err != nil {
		return err
	}
	out, err := output(r, write, p.RenderToScreen())
	if err != nil {
		return err
	}
	out.store(in.color, in)
	return nil
}

// DepthPickingPass samples the depth buffer at a requested point. It
// passes its input through untouched.
type DepthPickingPass struct {
	render.BasePass

	ndc     mgl64.Vec2
	pending bool
	depth   float64
	ready   bool
}

// NewDepthPickingPass returns an idle picking pass.
func NewDepthPickingPass() *DepthPickingPass {
	return &DepthPickingPass{BasePass: render.NewBasePass(DepthPickingPassName, false)}
}

// RequestDepth asks for the depth at ndc on the next run. A newer request
// replaces an unserved one.
func (p *DepthPickingPass) RequestDepth(ndc mgl64.Vec2) {
	p.ndc = ndc
	p.pending = true
}

// ResolveDepth returns the last sampled depth once.
func (p *DepthPickingPass) ResolveDepth() (float64, bool) {
	if !p.ready {
		return 0, false
	}
	p.ready = false
	return p.depth, true
}

// Render serves a pending request from the read buffer's depth.
func (p *DepthPickingPass) Render(_ context.Context, _ render.Renderer, _, read render.Target, _ float64) error {
	if !p.pending {
		return nil
	}
	in, err := asTarget(read)
	if err != nil {
		return err
	}
	w, h := in.Width(), in.Height()
	x := int(math.Floor((p.ndc.X() + 1) / 2 * float64(w)))
	y := int(math.Floor((1 - p.ndc.Y()) / 2 * float64(h)))
	x = min(max(x, 0), w-1)
	y = min(max(y, 0), h-1)

	p.depth = in.DepthAt(x, y)
	p.pending = false
	p.ready = true
	return nil
}

// DepthOfFieldPass blurs pixels by their distance from a focus point.
type DepthOfFieldPass struct {
	render.BasePass

	camera     cameractl.Camera
	target     mgl64.Vec3
	focusRange float64
	bokehScale float64
}

// NewDepthOfFieldPass returns a depth-of-field pass measuring focus
// distance from camera.
func NewDepthOfFieldPass(camera cameractl.Camera) *DepthOfFieldPass {
	return &DepthOfFieldPass{
		BasePass:   render.NewBasePass(focus.DOFPassName, true),
		camera:     camera,
		focusRange: focus.DefaultFocusRange,
		bokehScale: focus.BokehScale,
	}
}

// SetCamera changes the camera focus distance is measured from.
func (p *DepthOfFieldPass) SetCamera(c cameractl.Camera) { p.camera = c }

// Target returns the world-space focus point.
func (p *DepthOfFieldPass) Target() mgl64.Vec3 { return p.target }

// SetTarget moves the focus point.
func (p *DepthOfFieldPass) SetTarget(t mgl64.Vec3) { p.target = t }

// FocusRange returns the in-focus depth range.
func (p *DepthOfFieldPass) FocusRange() float64 { return p.focusRange }

// SetFocusRange sets the in-focus depth range.
func (p *DepthOfFieldPass) SetFocusRange(r float64) { p.focusRange = r }

// BokehScale returns the blur radius at full defocus, in pixels.
func (p *DepthOfFieldPass) BokehScale() float64 { return p.bokehScale }

// FocusDistance returns the view-axis distance from the camera to the
// focus point.
func (p *DepthOfFieldPass) FocusDistance() float64 {
	if p.camera == nil {
		return 0
	}
	return p.target.Sub(p.camera.Position()).Dot(cameractl.Forward(p.camera))
}

// Render writes the blurred frame.
func (p *DepthOfFieldPass) Render(_ context.Context, r render.Renderer, write, read render.Target, _ float64) error {
	in, err := asTarget(read)
	if err != nil {
		return err
	}
	out, err := output(r, write, p.RenderToScreen())
	if err != nil {
		return err
	}
	img := filter.DepthOfField(in.color, in.dist, p.FocusDistance(), p.focusRange, p.bokehScale)
	out.store(img, in)
	return nil
}

// EffectPass applies the photo mode color effects in a fixed order.
type EffectPass struct {
	render.BasePass

	params effects.Params
	order  []effects.Name
}

// NewEffectPass returns a neutral effect pass with the default effect
// order.
func NewEffectPass() *EffectPass {
	return &EffectPass{
		BasePass: render.NewBasePass(effects.PassName, true),
		order:    effects.PassOrder(effects.DefaultEnabled()),
	}
}

// Params returns the current parameters.
func (p *EffectPass) Params() effects.Params { return p.params }

// SetParams replaces the effect parameters.
func (p *EffectPass) SetParams(params effects.Params) { p.params = params }

// Order returns the effects in application order.
func (p *EffectPass) Order() []effects.Name { return p.order }

// SetEnabledEffects rebuilds the effect order from e.
func (p *EffectPass) SetEnabledEffects(e effects.Enabled) { p.order = effects.PassOrder(e) }

// Render applies the effects to read and writes the result.
func (p *EffectPass) Render(_ context.Context, r render.Renderer, write, read render.Target, _ float64) error {
	in, err := asTarget(read)
	if err != nil {
		return err
	}
	out, err := output(r, write, p.RenderToScreen())
	if err != nil {
		return err
	}
	if p.params.IsNeutral() {
		out.store(in.color, in)
		return nil
	}
	out.store(p.apply(in.color), in)
	return nil
}

// apply returns a processed copy of src.
func (p *EffectPass) apply(src *image.RGBA) *image.RGBA {
	img := image.NewRGBA(src.Bounds())
	copy(img.Pix, src.Pix)

	pp := p.params
	for _, name := range p.order {
		switch name {
		case effects.HueSaturationEffect:
			if m := filter.HueRotate(pp.Hue).Then(filter.Saturation(pp.Saturation)); !m.IsIdentity() {
				m.Apply(img)
			}
		case effects.BrightnessContrastEffect:
			if m := filter.BrightnessContrast(pp.Brightness, pp.Contrast); !m.IsIdentity() {
				m.Apply(img)
			}
		case effects.ChromaticAberrationEffect:
			if pp.ChromaticOffset != [2]float64{} {
				img = filter.ChromaticAberration(img, pp.ChromaticOffset, effects.RadialModulation, effects.ModulationOffset)
			}
		case effects.BloomEffect:
			if pp.BloomIntensity > 0 {
				img = filter.Bloom(img, pp.BloomIntensity)
			}
		case effects.VignetteEffect:
			if pp.VignetteDarkness > 0 {
				filter.Vignette(img, pp.VignetteOffset, pp.VignetteDarkness)
			}
		case effects.GrainEffect:
			if pp.GrainOpacity > 0 {
				filter.Grain(img, pp.GrainOpacity)
			}
		}
	}
	return img
}

var (
	_ render.Pass       = (*RenderPass)(nil)
	_ render.Pass       = (*CopyPass)(nil)
	_ focus.DepthPicker = (*DepthPickingPass)(nil)
	_ focus.DOFEffect   = (*DepthOfFieldPass)(nil)
	_ render.Pass       = (*DepthOfFieldPass)(nil)
	_ render.Pass       = (*EffectPass)(nil)
)
