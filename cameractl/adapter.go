// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package cameractl

import "github.com/go-gl/mathgl/mgl64"

// RigControls is a camera rig with explicit look-at accessors.
type RigControls interface {
	Camera() Camera
	Enabled() bool
	SetEnabled(enabled bool)
	GetPosition() mgl64.Vec3
	GetTarget() mgl64.Vec3
	SetLookAt(px, py, pz, tx, ty, tz float64, animate bool)
}

// OrbitControls orbit a camera object around a target point.
type OrbitControls interface {
	Object() Camera
	Target() mgl64.Vec3
	SetTarget(t mgl64.Vec3)
	Enabled() bool
	SetEnabled(enabled bool)

	// Update resynchronizes the controls' cached spherical angles with the
	// camera and target.
	Update()
}

// Adapter gives a uniform snapshot/restore contract over camera controls.
type Adapter interface {
	Kind() Kind
	Camera() Camera
	Snapshot() Snapshot
	Restore(s Snapshot)
	SetEnabled(enabled bool)
}

// NewAdapter returns an adapter for obj, or nil when obj is nil or matches
// no known shape. Rig detection takes priority over orbit detection since
// some controls satisfy both; a bare camera is the fallback.
func NewAdapter(obj any) Adapter {
	if obj == nil {
		return nil
	}
	if rig, ok := obj.(RigControls); ok {
		return &rigAdapter{controls: rig}
	}
	if orbit, ok := obj.(OrbitControls); ok {
		return &orbitAdapter{controls: orbit}
	}
	if cam, ok := obj.(Camera); ok {
		return &staticAdapter{camera: cam}
	}
	return nil
}

// lensOf reads zoom and fov from cam into s.
func lensOf(cam Camera, s *Snapshot) {
	s.Up = cam.Up()
	s.Zoom = cam.Zoom()
	if p, ok := cam.(Perspective); ok {
		s.Fov = p.Fov()
		s.HasFov = true
	}
}

// applyLens writes up, zoom and fov from s onto cam and recomputes the
// projection.
func applyLens(cam Camera, s Snapshot) {
	cam.SetUp(s.Up)
	cam.SetZoom(s.Zoom)
	if p, ok := cam.(Perspective); ok && s.HasFov {
		p.SetFov(s.Fov)
	}
	cam.UpdateProjection()
}

type rigAdapter struct {
	controls RigControls
}

func (a *rigAdapter) Kind() Kind              { return RigLike }
func (a *rigAdapter) Camera() Camera          { return a.controls.Camera() }
func (a *rigAdapter) SetEnabled(enabled bool) { a.controls.SetEnabled(enabled) }

func (a *rigAdapter) Snapshot() Snapshot {
	s := Snapshot{
		Kind:     RigLike,
		Enabled:  a.controls.Enabled(),
		Position: a.controls.GetPosition(),
		Target:   a.controls.GetTarget(),
	}
	lensOf(a.controls.Camera(), &s)
	return s
}

func (a *rigAdapter) Restore(s Snapshot) {
	a.controls.SetEnabled(s.Enabled)
	applyLens(a.controls.Camera(), s)
	p, t := s.Position, s.LookTarget()
	a.controls.SetLookAt(p.X(), p.Y(), p.Z(), t.X(), t.Y(), t.Z(), false)
}

type orbitAdapter struct {
	controls OrbitControls
}

func (a *orbitAdapter) Kind() Kind              { return OrbitLike }
func (a *orbitAdapter) Camera() Camera          { return a.controls.Object() }
func (a *orbitAdapter) SetEnabled(enabled bool) { a.controls.SetEnabled(enabled) }

func (a *orbitAdapter) Snapshot() Snapshot {
	cam := a.controls.Object()
	s := Snapshot{
		Kind:     OrbitLike,
		Enabled:  a.controls.Enabled(),
		Position: cam.Position(),
		Target:   a.controls.Target(),
	}
	lensOf(cam, &s)
	return s
}

func (a *orbitAdapter) Restore(s Snapshot) {
	cam := a.controls.Object()
	cam.SetPosition(s.Position)
	applyLens(cam, s)
	a.controls.SetTarget(s.LookTarget())
	a.controls.SetEnabled(s.Enabled)
	a.controls.Update()
}

type staticAdapter struct {
	camera Camera
}

func (a *staticAdapter) Kind() Kind     { return Static }
func (a *staticAdapter) Camera() Camera { return a.camera }

// SetEnabled is a no-op: a bare camera has nothing to disable.
func (a *staticAdapter) SetEnabled(bool) {}

func (a *staticAdapter) Snapshot() Snapshot {
	s := Snapshot{
		Kind:       Static,
		Enabled:    true,
		Position:   a.camera.Position(),
		Quaternion: a.camera.Quaternion(),
	}
	s.Target = s.Position.Add(Forward(a.camera).Mul(StaticTargetDistance))
	lensOf(a.camera, &s)
	return s
}

func (a *staticAdapter) Restore(s Snapshot) {
	a.camera.SetPosition(s.Position)
	if s.Kind == Static {
		a.camera.SetQuaternion(s.Quaternion)
	} else {
		a.camera.SetUp(s.Up)
		a.camera.LookAt(s.Target)
	}
	applyLens(a.camera, s)
}
