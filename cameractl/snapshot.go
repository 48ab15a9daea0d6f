// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package cameractl

import "github.com/go-gl/mathgl/mgl64"

// Kind identifies the shape of controls a Snapshot was taken from.
type Kind int

const (
	// OrbitLike controls expose a target vector and wrap a camera object.
	OrbitLike Kind = iota
	// RigLike controls expose target accessors and a look-at setter.
	RigLike
	// Static is a bare camera without controls.
	Static
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case OrbitLike:
		return "OrbitLike"
	case RigLike:
		return "RigLike"
	case Static:
		return "Static"
	default:
		return "Unknown"
	}
}

// StaticTargetDistance is how far ahead of a bare camera the synthesized
// look-at target sits.
const StaticTargetDistance = 5

// Snapshot is the state of a camera and its controls at one instant.
// It is a value; restoring from it never changes it.
type Snapshot struct {
	Kind    Kind
	Enabled bool

	Position mgl64.Vec3
	Target   mgl64.Vec3
	Up       mgl64.Vec3
	Zoom     float64

	// Fov is the vertical field of view in degrees. HasFov is false for
	// non-perspective cameras.
	Fov    float64
	HasFov bool

	// Quaternion is the camera orientation. Only Static snapshots set it.
	Quaternion mgl64.Quat
}

// LookTarget returns the point the snapshot camera looks at. For Static
// snapshots it is derived from the orientation.
func (s Snapshot) LookTarget() mgl64.Vec3 {
	if s.Kind == Static {
		return s.Position.Add(ForwardOf(s.Quaternion).Mul(StaticTargetDistance))
	}
	return s.Target
}
