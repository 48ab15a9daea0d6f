// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package cameractl

import "github.com/go-gl/mathgl/mgl64"

type fakeCamera struct {
	pos     mgl64.Vec3
	quat    mgl64.Quat
	up      mgl64.Vec3
	zoom    float64
	fov     float64
	aspect  float64
	near    float64
	far     float64
	updates int
}

func newFakeCamera(fov, aspect, near, far float64) *fakeCamera {
	return &fakeCamera{
		quat:   mgl64.QuatIdent(),
		up:     mgl64.Vec3{0, 1, 0},
		zoom:   1,
		fov:    fov,
		aspect: aspect,
		near:   near,
		far:    far,
	}
}

func (c *fakeCamera) Position() mgl64.Vec3       { return c.pos }
func (c *fakeCamera) SetPosition(p mgl64.Vec3)   { c.pos = p }
func (c *fakeCamera) Quaternion() mgl64.Quat     { return c.quat }
func (c *fakeCamera) SetQuaternion(q mgl64.Quat) { c.quat = q }
func (c *fakeCamera) Up() mgl64.Vec3             { return c.up }
func (c *fakeCamera) SetUp(up mgl64.Vec3)        { c.up = up }
func (c *fakeCamera) Zoom() float64              { return c.zoom }
func (c *fakeCamera) SetZoom(zoom float64)       { c.zoom = zoom }
func (c *fakeCamera) UpdateProjection()          { c.updates++ }
func (c *fakeCamera) Fov() float64               { return c.fov }
func (c *fakeCamera) SetFov(fov float64)         { c.fov = fov }
func (c *fakeCamera) Aspect() float64            { return c.aspect }
func (c *fakeCamera) SetAspect(aspect float64)   { c.aspect = aspect }
func (c *fakeCamera) Near() float64              { return c.near }
func (c *fakeCamera) Far() float64               { return c.far }
func (c *fakeCamera) LookAt(target mgl64.Vec3)   { c.quat = LookAtQuat(c.pos, target, c.up) }

func newFakePerspective(f, a, n, fr float64) Perspective { return newFakeCamera(f, a, n, fr) }

// orthoCamera has no field of view.
type orthoCamera struct {
	pos  mgl64.Vec3
	quat mgl64.Quat
	up   mgl64.Vec3
	zoom float64
}

func (c *orthoCamera) Position() mgl64.Vec3       { return c.pos }
func (c *orthoCamera) SetPosition(p mgl64.Vec3)   { c.pos = p }
func (c *orthoCamera) Quaternion() mgl64.Quat     { return c.quat }
func (c *orthoCamera) SetQuaternion(q mgl64.Quat) { c.quat = q }
func (c *orthoCamera) Up() mgl64.Vec3             { return c.up }
func (c *orthoCamera) SetUp(up mgl64.Vec3)        { c.up = up }
func (c *orthoCamera) Zoom() float64              { return c.zoom }
func (c *orthoCamera) SetZoom(zoom float64)       { c.zoom = zoom }
func (c *orthoCamera) UpdateProjection()          {}
func (c *orthoCamera) LookAt(target mgl64.Vec3)   { c.quat = LookAtQuat(c.pos, target, c.up) }

type fakeOrbit struct {
	cam     *fakeCamera
	target  mgl64.Vec3
	enabled bool
	updates int
}

func (o *fakeOrbit) Object() Camera          { return o.cam }
func (o *fakeOrbit) Target() mgl64.Vec3      { return o.target }
func (o *fakeOrbit) SetTarget(t mgl64.Vec3)  { o.target = t }
func (o *fakeOrbit) Enabled() bool           { return o.enabled }
func (o *fakeOrbit) SetEnabled(enabled bool) { o.enabled = enabled }
func (o *fakeOrbit) Update() {
	o.updates++
	o.cam.LookAt(o.target)
}

// hybridControls satisfies both RigControls and OrbitControls.
type hybridControls struct {
	*Rig
}

func (h hybridControls) Object() Camera         { return h.Camera() }
func (h hybridControls) Target() mgl64.Vec3     { return h.GetTarget() }
func (h hybridControls) SetTarget(t mgl64.Vec3) {}
func (h hybridControls) Update()                {}

func vecNear(a, b mgl64.Vec3) bool { return a.ApproxEqualThreshold(b, 1e-6) }
