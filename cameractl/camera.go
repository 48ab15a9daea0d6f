// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package cameractl

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Camera is a camera with a world transform. Cameras look down their local
// -Z axis.
type Camera interface {
	Position() mgl64.Vec3
	SetPosition(p mgl64.Vec3)
	Quaternion() mgl64.Quat
	SetQuaternion(q mgl64.Quat)
	Up() mgl64.Vec3
	SetUp(up mgl64.Vec3)
	Zoom() float64
	SetZoom(zoom float64)

	// LookAt orients the camera toward target using its Up vector.
	LookAt(target mgl64.Vec3)

	// UpdateProjection recomputes the projection matrix.
	UpdateProjection()
}

// Perspective is a Camera with a perspective projection.
type Perspective interface {
	Camera

	// Fov returns the vertical field of view in degrees.
	Fov() float64
	SetFov(fov float64)
	Aspect() float64
	SetAspect(aspect float64)
	Near() float64
	Far() float64
}

// Forward returns the camera's world-space viewing direction.
func Forward(c Camera) mgl64.Vec3 {
	return ForwardOf(c.Quaternion())
}

// ForwardOf returns the -Z axis rotated by q.
func ForwardOf(q mgl64.Quat) mgl64.Vec3 {
	return q.Rotate(mgl64.Vec3{0, 0, -1}).Normalize()
}

// LookAtQuat returns the orientation of a camera at eye looking at target.
func LookAtQuat(eye, target, up mgl64.Vec3) mgl64.Quat {
	view := mgl64.LookAtV(eye, target, up)
	rot := view.Mat3().Transpose()
	return mgl64.Mat4ToQuat(rot.Mat4()).Normalize()
}

// ViewMatrix returns the world-to-camera transform of c.
func ViewMatrix(c Camera) mgl64.Mat4 {
	p := c.Position()
	world := mgl64.Translate3D(p.X(), p.Y(), p.Z()).Mul4(c.Quaternion().Normalize().Mat4())
	return world.Inv()
}

// ProjectionMatrix returns the perspective projection of p, narrowed by its
// zoom factor.
func ProjectionMatrix(p Perspective) mgl64.Mat4 {
	zoom := p.Zoom()
	if zoom <= 0 {
		zoom = 1
	}
	fov := 2 * math.Atan(math.Tan(mgl64.DegToRad(p.Fov())/2)/zoom)
	return mgl64.Perspective(fov, p.Aspect(), p.Near(), p.Far())
}
