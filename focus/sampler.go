// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package focus

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/gogpu/photomode/cameractl"
	"github.com/gogpu/photomode/internal/damp"
	"github.com/gogpu/photomode/render"
)

// Tuning.
const (
	// SmoothTime is how long the autofocus target takes to settle, in
	// seconds.
	SmoothTime = 0.25

	// missEpsilon separates geometry from the cleared far plane.
	missEpsilon = 1e-7

	// DefaultFocusRange is used when the aperture yields no range.
	DefaultFocusRange = 2.0

	// BokehScale is the blur scale of the depth-of-field effect.
	BokehScale = 7.0
)

// Compositor insertion points.
const (
	DOFPassIndex   = 1
	DepthPassIndex = 2
	CopyPassIndex  = 3

	// DOFPassName is the name given to the depth-of-field pass.
	DOFPassName = "AutoFocusPass"
)

// DepthPicker is a compositor pass that samples the depth buffer.
type DepthPicker interface {
	render.Pass

	// RequestDepth asks for the depth at ndc on the next run.
	RequestDepth(ndc mgl64.Vec2)

	// ResolveDepth returns the last sampled depth in [0,1]. ok is false
	// when no sample has completed since the last call.
	ResolveDepth() (depth float64, ok bool)
}

// DOFEffect is the depth-of-field effect whose focus point the sampler
// controls.
type DOFEffect interface {
	Target() mgl64.Vec3
	SetTarget(p mgl64.Vec3)
	SetFocusRange(r float64)
}

// Camera is a camera that can unproject depth samples.
type Camera interface {
	cameractl.Camera
	ProjectionMatrix() mgl64.Mat4
}

// Sample is one focus measurement.
type Sample struct {
	Point mgl64.Vec3
	Valid bool
}

// Config wires a Sampler to its passes. Picker and Copy are inserted into
// the compositor by Mount. DOFPass, if set, is the effect pass that holds
// Effect; its enabled flag follows photo mode and the DOF setting.
type Config struct {
	Picker  DepthPicker
	Copy    render.Pass
	DOFPass render.Pass
	Effect  DOFEffect
}

// Sampler is the depth-of-field autofocus driver. It is not safe for
// concurrent use; call it from the frame loop.
type Sampler struct {
	cfg    Config
	camera Camera
	comp   render.Compositor

	hit     Sample
	damper  damp.Vec3
	pending bool
}

// NewSampler returns a sampler using cfg.
func NewSampler(cfg Config) *Sampler {
	if cfg.DOFPass != nil {
		cfg.DOFPass.SetEnabled(false)
	}
	return &Sampler{cfg: cfg}
}

// SetCamera selects the camera focus is measured from.
func (s *Sampler) SetCamera(c Camera) {
	s.camera = c
	s.damper.Reset()
}

// LastSample returns the most recent focus point.
func (s *Sampler) LastSample() Sample { return s.hit }

// Mount inserts the sampler's passes into c. Mounting a second compositor
// unmounts the first.
func (s *Sampler) Mount(c render.Compositor) {
	if s.comp == c {
		return
	}
	s.Unmount()
	if c == nil {
		return
	}
	if s.cfg.DOFPass != nil {
		c.AddPass(s.cfg.DOFPass, DOFPassIndex)
	}
	if s.cfg.Picker != nil {
		c.AddPass(s.cfg.Picker, DepthPassIndex)
	}
	if s.cfg.Copy != nil {
		c.AddPass(s.cfg.Copy, CopyPassIndex)
	}
	s.comp = c
	logger.Load().Debug("focus: passes mounted", "passes", len(c.Passes()))
}

// Unmount removes the sampler's passes from the mounted compositor.
func (s *Sampler) Unmount() {
	if s.comp == nil {
		return
	}
	if s.cfg.DOFPass != nil {
		s.comp.RemovePass(s.cfg.DOFPass)
	}
	if s.cfg.Picker != nil {
		s.comp.RemovePass(s.cfg.Picker)
	}
	if s.cfg.Copy != nil {
		s.comp.RemovePass(s.cfg.Copy)
	}
	s.comp = nil
	s.pending = false
}

// SyncEnabled enables the DOF pass iff photo mode and DOF are on, and
// pushes the aperture's focus range to the effect.
func (s *Sampler) SyncEnabled(st cameractl.State) {
	if s.cfg.DOFPass != nil {
		s.cfg.DOFPass.SetEnabled(st.PhotoMode && st.DOFEnabled)
	}
	if s.cfg.Effect != nil {
		r := st.FocusRange()
		if r <= 0 {
			r = DefaultFocusRange
		}
		s.cfg.Effect.SetFocusRange(r)
	}
}

// Frame updates the focus point for one frame of length delta seconds.
// It reports whether the effect target was written.
func (s *Sampler) Frame(delta float64, st cameractl.State) bool {
	s.SyncEnabled(st)
	if s.camera == nil || s.cfg.Effect == nil || !st.DOFEnabled || !st.PhotoMode {
		s.pending = false
		return false
	}

	if !st.AutoFocus {
		p := s.camera.Position().Add(cameractl.Forward(s.camera).Mul(st.FocusDistance))
		s.hit = Sample{Point: p, Valid: true}
		s.damper.Reset()
		s.cfg.Effect.SetTarget(p)
		return true
	}

	if p, ok := s.resolve(); ok {
		s.hit = Sample{Point: p, Valid: true}
	}
	s.request()

	// Nothing measured yet: leave the effect where it is.
	if !s.hit.Valid {
		return false
	}
	if delta > 0 {
		next, _ := s.damper.Step(s.cfg.Effect.Target(), s.hit.Point, SmoothTime, delta)
		s.cfg.Effect.SetTarget(next)
	} else {
		s.cfg.Effect.SetTarget(s.hit.Point)
	}
	return true
}

func (s *Sampler) request() {
	if s.cfg.Picker == nil {
		return
	}
	s.cfg.Picker.RequestDepth(mgl64.Vec2{0, 0})
	s.pending = true
}

// resolve reads the pending depth sample and converts it to a world
// point. A sample on the far plane is a miss.
func (s *Sampler) resolve() (mgl64.Vec3, bool) {
	if !s.pending || s.cfg.Picker == nil {
		return mgl64.Vec3{}, false
	}
	d, ok := s.cfg.Picker.ResolveDepth()
	if !ok {
		return mgl64.Vec3{}, false
	}
	s.pending = false
	z := d*2 - 1
	if 1-z <= missEpsilon {
		return mgl64.Vec3{}, false
	}
	return Unproject(mgl64.Vec3{0, 0, z}, s.camera), true
}

// Unproject maps a point in normalized device coordinates to world space
// through c's projection and view.
func Unproject(ndc mgl64.Vec3, c Camera) mgl64.Vec3 {
	inv := c.ProjectionMatrix().Mul4(cameractl.ViewMatrix(c)).Inv()
	v := inv.Mul4x1(ndc.Vec4(1))
	if v.W() == 0 {
		return v.Vec3()
	}
	return v.Vec3().Mul(1 / v.W())
}
