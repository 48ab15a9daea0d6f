// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package cameractl

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestRigSetLookAt(t *testing.T) {
	cam := newFakeCamera(50, 1, 0.1, 100)
	rig := NewRig(cam)
	if !vecNear(rig.GetTarget(), mgl64.Vec3{0, 0, -StaticTargetDistance}) {
		t.Errorf("initial target = %v", rig.GetTarget())
	}

	rig.SetLookAt(0, 0, 10, 0, 0, 0, false)

	if !vecNear(cam.Position(), mgl64.Vec3{0, 0, 10}) {
		t.Errorf("camera position = %v", cam.Position())
	}
	if !vecNear(Forward(cam), mgl64.Vec3{0, 0, -1}) {
		t.Errorf("camera forward = %v, want (0,0,-1)", Forward(cam))
	}
}

func TestRigDegenerateLookAt(t *testing.T) {
	cam := newFakeCamera(50, 1, 0.1, 100)
	rig := NewRig(cam)
	q := cam.Quaternion()
	rig.SetLookAt(1, 1, 1, 1, 1, 1, false)
	if !cam.Quaternion().ApproxEqual(q) {
		t.Errorf("eye == target changed orientation to %v", cam.Quaternion())
	}
}

func TestRigAnimated(t *testing.T) {
	cam := newFakeCamera(50, 1, 0.1, 100)
	rig := NewRig(cam)
	rig.SetLookAt(0, 0, 10, 0, 0, 0, true)
	rig.ZoomTo(2, true)

	if cam.Position() != (mgl64.Vec3{}) {
		t.Fatalf("animated SetLookAt moved camera immediately to %v", cam.Position())
	}
	for i := 0; i < 600; i++ {
		if !rig.Update(1.0 / 60) {
			break
		}
	}
	if !vecNear(cam.Position(), mgl64.Vec3{0, 0, 10}) {
		t.Errorf("settled position = %v", cam.Position())
	}
	if cam.Position() != rig.GetPosition() {
		t.Errorf("camera at %v, rig reports %v", cam.Position(), rig.GetPosition())
	}
	if rig.GetPosition() != (mgl64.Vec3{0, 0, 10}) {
		t.Errorf("GetPosition() = %v, want the goal exactly", rig.GetPosition())
	}
	if cam.Zoom() != 2 {
		t.Errorf("settled zoom = %v, want 2", cam.Zoom())
	}
	if rig.Update(1.0 / 60) {
		t.Error("Update() after settling reported movement")
	}
}

func TestRigAnimatedZoomFinalStep(t *testing.T) {
	cam := newFakeCamera(50, 1, 0.1, 100)
	rig := NewRig(cam)
	rig.ZoomTo(3, true)

	// The step that lands on the goal must still recompute the projection.
	projected := false
	for i := 0; i < 600; i++ {
		before := cam.updates
		if !rig.Update(1.0 / 60) {
			break
		}
		if cam.Zoom() == 3 && cam.updates > before {
			projected = true
		}
	}
	if !projected {
		t.Error("projection not updated on the step that reached the goal zoom")
	}
}

func TestRigZoomClamp(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, MinZoom},
		{1, 1},
		{50, MaxZoom},
	}
	for _, tt := range tests {
		cam := newFakeCamera(50, 1, 0.1, 100)
		NewRig(cam).ZoomTo(tt.in, false)
		if cam.Zoom() != tt.want {
			t.Errorf("ZoomTo(%v) zoom = %v, want %v", tt.in, cam.Zoom(), tt.want)
		}
	}
}

func TestRigZoomNotOverriddenByLookAt(t *testing.T) {
	cam := newFakeCamera(50, 1, 0.1, 100)
	rig := NewRig(cam)
	rig.ZoomTo(4, false)
	cam.SetZoom(1)
	rig.SetLookAt(0, 0, 3, 0, 0, 0, false)
	rig.Update(1.0 / 60)
	if cam.Zoom() != 1 {
		t.Errorf("zoom = %v, want the directly set 1", cam.Zoom())
	}
}

func TestRigOrbit(t *testing.T) {
	cam := newFakeCamera(50, 1, 0.1, 100)
	rig := NewRig(cam)
	rig.SetLookAt(0, 0, 10, 0, 0, 0, false)

	rig.Orbit(math.Pi/2, 0)
	p := rig.GetPosition()
	if math.Abs(p.Len()-10) > 1e-9 {
		t.Errorf("orbit radius = %v, want 10", p.Len())
	}
	if !vecNear(p, mgl64.Vec3{10, 0, 0}) {
		t.Errorf("orbit position = %v, want (10,0,0)", p)
	}

	rig.SetEnabled(false)
	rig.Orbit(1, 1)
	if !vecNear(rig.GetPosition(), p) {
		t.Error("disabled rig moved on Orbit()")
	}
}
