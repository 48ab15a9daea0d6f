// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package cameractl

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/gogpu/photomode/internal/damp"
)

// RigSmoothTime is how long an animated rig transition takes to settle, in
// seconds.
const RigSmoothTime = 0.25

// Rig is a minimal look-at camera rig. It keeps a camera positioned at an
// eye point and aimed at a target point. Animated moves are eased by
// Update.
type Rig struct {
	camera  Camera
	enabled bool

	position mgl64.Vec3
	target   mgl64.Vec3

	goalPosition mgl64.Vec3
	goalTarget   mgl64.Vec3
	goalZoom     float64
	zooming      bool

	posDamp  damp.Vec3
	tgtDamp  damp.Vec3
	zoomDamp damp.Scalar
}

// NewRig returns an enabled rig driving cam. The initial target is
// StaticTargetDistance ahead of the camera.
func NewRig(cam Camera) *Rig {
	pos := cam.Position()
	tgt := pos.Add(Forward(cam).Mul(StaticTargetDistance))
	return &Rig{
		camera:       cam,
		enabled:      true,
		position:     pos,
		target:       tgt,
		goalPosition: pos,
		goalTarget:   tgt,
	}
}

// Camera returns the driven camera.
func (r *Rig) Camera() Camera { return r.camera }

// Enabled reports whether the rig reacts to user input.
func (r *Rig) Enabled() bool { return r.enabled }

// SetEnabled enables or disables user input.
func (r *Rig) SetEnabled(enabled bool) { r.enabled = enabled }

// GetPosition returns the current eye point.
func (r *Rig) GetPosition() mgl64.Vec3 { return r.position }

// GetTarget returns the current look-at point.
func (r *Rig) GetTarget() mgl64.Vec3 { return r.target }

// SetLookAt moves the eye to (px,py,pz) aiming at (tx,ty,tz). Without
// animate the camera jumps immediately.
func (r *Rig) SetLookAt(px, py, pz, tx, ty, tz float64, animate bool) {
	r.goalPosition = mgl64.Vec3{px, py, pz}
	r.goalTarget = mgl64.Vec3{tx, ty, tz}
	if animate {
		return
	}
	r.position, r.target = r.goalPosition, r.goalTarget
	r.posDamp.Reset()
	r.tgtDamp.Reset()
	r.applyPose()
	r.camera.UpdateProjection()
}

// ZoomTo sets the camera zoom, clamped to [MinZoom, MaxZoom].
func (r *Rig) ZoomTo(zoom float64, animate bool) {
	r.goalZoom = mgl64.Clamp(zoom, MinZoom, MaxZoom)
	r.zooming = animate
	if animate {
		return
	}
	r.zoomDamp.Reset()
	r.camera.SetZoom(r.goalZoom)
	r.camera.UpdateProjection()
}

// Update advances animated transitions by delta seconds and reports
// whether the camera moved.
func (r *Rig) Update(delta float64) bool {
	var mp, mt, mz bool
	pos, tgt := r.position, r.target
	r.position, mp = r.posDamp.Step(r.position, r.goalPosition, RigSmoothTime, delta)
	r.target, mt = r.tgtDamp.Step(r.target, r.goalTarget, RigSmoothTime, delta)
	// The final step snaps onto the goal and reports rest, but still moves.
	moved := r.position != pos || r.target != tgt
	if moved {
		r.applyPose()
	}
	if r.zooming {
		prev := r.camera.Zoom()
		var z float64
		z, mz = r.zoomDamp.Step(prev, r.goalZoom, RigSmoothTime, delta)
		r.camera.SetZoom(z)
		r.zooming = mz
		moved = moved || z != prev
	}
	if !mp && !mt && !mz && !moved {
		return false
	}
	r.camera.UpdateProjection()
	return true
}

// Orbit rotates the eye around the target by the given azimuth and polar
// deltas in radians. It is ignored while the rig is disabled.
func (r *Rig) Orbit(azimuth, polar float64) {
	if !r.enabled {
		return
	}
	offset := r.position.Sub(r.target)
	radius := offset.Len()
	if radius == 0 {
		return
	}
	theta := math.Atan2(offset.X(), offset.Z()) + azimuth
	phi := math.Acos(mgl64.Clamp(offset.Y()/radius, -1, 1)) + polar
	phi = mgl64.Clamp(phi, 1e-6, math.Pi-1e-6)
	s := math.Sin(phi)
	offset = mgl64.Vec3{s * math.Sin(theta), math.Cos(phi), s * math.Cos(theta)}.Mul(radius)
	p := r.target.Add(offset)
	t := r.target
	r.SetLookAt(p.X(), p.Y(), p.Z(), t.X(), t.Y(), t.Z(), false)
}

func (r *Rig) applyPose() {
	r.camera.SetPosition(r.position)
	if !r.position.ApproxEqual(r.target) {
		r.camera.LookAt(r.target)
	}
}

var _ RigControls = (*Rig)(nil)
