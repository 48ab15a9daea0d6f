// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package cameractl

// Photo camera clip planes.
const (
	PhotoNear = 0.01
	PhotoFar  = 2000.0
)

// PerspectiveFactory builds an engine camera. photomode cannot construct
// host cameras itself, so the host passes one in.
type PerspectiveFactory func(fov, aspect, near, far float64) Perspective

// NewPhotoCamera returns a fresh perspective camera matching base: same
// field of view (DefaultFov when base is not a perspective camera), same
// aspect, position and orientation, with wide clip planes.
func NewPhotoCamera(base Camera, newCamera PerspectiveFactory) Perspective {
	fov, aspect := DefaultFov, 1.0
	if p, ok := base.(Perspective); ok {
		if p.Fov() > 0 {
			fov = p.Fov()
		}
		aspect = p.Aspect()
	} else if a, ok := base.(interface{ Aspect() float64 }); ok {
		aspect = a.Aspect()
	}
	cam := newCamera(fov, aspect, PhotoNear, PhotoFar)
	cam.SetPosition(base.Position())
	cam.SetQuaternion(base.Quaternion())
	cam.SetUp(base.Up())
	cam.UpdateProjection()
	return cam
}

// ApplyState points a photo camera at the lens described by st. baseFov
// is the field of view the zoom factor is relative to.
func ApplyState(cam Camera, st State, baseFov float64) {
	if baseFov <= 0 {
		baseFov = DefaultFov
	}
	cam.SetZoom(FocalLengthToZoom(baseFov, st.FocalLength))
	ApplyRoll(cam, st.RollRadians())
}
