// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package soft

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/gogpu/photomode/cameractl"
)

// PerspectiveCamera is a pinhole camera looking down its local -Z axis.
//
// The projection matrix is cached; call UpdateProjection after changing
// fov, aspect, zoom or clip planes.
type PerspectiveCamera struct {
	position mgl64.Vec3
	quat     mgl64.Quat
	up       mgl64.Vec3

	fov    float64
	aspect float64
	near   float64
	far    float64
	zoom   float64

	proj mgl64.Mat4
}

// NewPerspectiveCamera returns a camera at the origin looking down -Z.
// fov is the vertical field of view in degrees.
func NewPerspectiveCamera(fov, aspect, near, far float64) *PerspectiveCamera {
	c := &PerspectiveCamera{
		quat:   mgl64.QuatIdent(),
		up:     mgl64.Vec3{0, 1, 0},
		fov:    fov,
		aspect: aspect,
		near:   near,
		far:    far,
		zoom:   1,
	}
	c.UpdateProjection()
	return c
}

// NewPhotoCamera is a cameractl.PerspectiveFactory producing soft cameras.
func NewPhotoCamera(fov, aspect, near, far float64) cameractl.Perspective {
	return NewPerspectiveCamera(fov, aspect, near, far)
}

func (c *PerspectiveCamera) Position() mgl64.Vec3       { return c.position }
func (c *PerspectiveCamera) SetPosition(p mgl64.Vec3)   { c.position = p }
func (c *PerspectiveCamera) Quaternion() mgl64.Quat     { return c.quat }
func (c *PerspectiveCamera) SetQuaternion(q mgl64.Quat) { c.quat = q.Normalize() }
func (c *PerspectiveCamera) Up() mgl64.Vec3             { return c.up }
func (c *PerspectiveCamera) SetUp(up mgl64.Vec3)        { c.up = up }
func (c *PerspectiveCamera) Zoom() float64              { return c.zoom }
func (c *PerspectiveCamera) SetZoom(zoom float64)       { c.zoom = zoom }
func (c *PerspectiveCamera) Fov() float64               { return c.fov }
func (c *PerspectiveCamera) SetFov(fov float64)         { c.fov = fov }
func (c *PerspectiveCamera) Aspect() float64            { return c.aspect }
func (c *PerspectiveCamera) SetAspect(aspect float64)   { c.aspect = aspect }
func (c *PerspectiveCamera) Near() float64              { return c.near }
func (c *PerspectiveCamera) Far() float64               { return c.far }

// LookAt turns the camera toward target. Targets at the camera position,
// or straight along the up vector, leave the orientation unchanged.
func (c *PerspectiveCamera) LookAt(target mgl64.Vec3) {
	dir := target.Sub(c.position)
	if dir.Len() < 1e-9 || dir.Normalize().Cross(c.up.Normalize()).Len() < 1e-9 {
		return
	}
	c.quat = cameractl.LookAtQuat(c.position, target, c.up)
}

// UpdateProjection recomputes the cached projection matrix.
func (c *PerspectiveCamera) UpdateProjection() {
	c.proj = cameractl.ProjectionMatrix(c)
}

// ProjectionMatrix returns the projection computed by the last
// UpdateProjection.
func (c *PerspectiveCamera) ProjectionMatrix() mgl64.Mat4 { return c.proj }

// ViewMatrix returns the world-to-camera transform.
func (c *PerspectiveCamera) ViewMatrix() mgl64.Mat4 { return cameractl.ViewMatrix(c) }

var _ cameractl.Perspective = (*PerspectiveCamera)(nil)
