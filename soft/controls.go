// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package soft

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/gogpu/photomode/cameractl"
)

// polarLimit keeps the orbit away from the poles, where the look-at basis
// degenerates.
const polarLimit = 1e-3

// OrbitControls orbit a camera around a target on a sphere. Angles follow
// the y-up convention: polar is measured from +Y, azimuth around Y from
// +Z.
type OrbitControls struct {
	object  cameractl.Camera
	target  mgl64.Vec3
	enabled bool

	radius  float64
	azimuth float64
	polar   float64
}

// NewOrbitControls returns enabled controls orbiting cam around the
// origin.
func NewOrbitControls(cam cameractl.Camera) *OrbitControls {
	o := &OrbitControls{object: cam, enabled: true}
	o.Update()
	return o
}

// Object returns the controlled camera.
func (o *OrbitControls) Object() cameractl.Camera { return o.object }

// Target returns the orbit center.
func (o *OrbitControls) Target() mgl64.Vec3 { return o.target }

// SetTarget moves the orbit center. Call Update to re-aim the camera.
func (o *OrbitControls) SetTarget(t mgl64.Vec3) { o.target = t }

// Enabled reports whether user input moves the camera.
func (o *OrbitControls) Enabled() bool { return o.enabled }

// SetEnabled enables or disables user input.
func (o *OrbitControls) SetEnabled(enabled bool) { o.enabled = enabled }

// Spherical returns the cached radius, azimuth and polar angle.
func (o *OrbitControls) Spherical() (radius, azimuth, polar float64) {
	return o.radius, o.azimuth, o.polar
}

// Update recomputes the spherical coordinates from the camera position
// and aims the camera at the target.
func (o *OrbitControls) Update() {
	off := o.object.Position().Sub(o.target)
	o.radius = off.Len()
	if o.radius > 0 {
		o.azimuth = math.Atan2(off.X(), off.Z())
		o.polar = math.Acos(mgl64.Clamp(off.Y()/o.radius, -1, 1))
	}
	o.object.LookAt(o.target)
}

// Rotate orbits by the given angle deltas in radians. Disabled controls
// ignore it.
func (o *OrbitControls) Rotate(dAzimuth, dPolar float64) {
	if !o.enabled {
		return
	}
	o.azimuth += dAzimuth
	o.polar = mgl64.Clamp(o.polar+dPolar, polarLimit, math.Pi-polarLimit)
	o.place()
}

// Dolly scales the orbit radius. Disabled controls ignore it.
func (o *OrbitControls) Dolly(scale float64) {
	if !o.enabled || scale <= 0 {
		return
	}
	o.radius *= scale
	o.place()
}

func (o *OrbitControls) place() {
	s := math.Sin(o.polar)
	off := mgl64.Vec3{
		o.radius * s * math.Sin(o.azimuth),
		o.radius * math.Cos(o.polar),
		o.radius * s * math.Cos(o.azimuth),
	}
	o.object.SetPosition(o.target.Add(off))
	o.object.LookAt(o.target)
}

var _ cameractl.OrbitControls = (*OrbitControls)(nil)
