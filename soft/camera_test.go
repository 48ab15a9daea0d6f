// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package soft

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/gogpu/photomode/cameractl"
	"github.com/gogpu/photomode/focus"
)

func TestPerspectiveCameraLookAt(t *testing.T) {
	tests := []struct {
		name    string
		pos     mgl64.Vec3
		forward mgl64.Vec3
	}{
		{"from +Z", mgl64.Vec3{0, 0, 5}, mgl64.Vec3{0, 0, -1}},
		{"from +X", mgl64.Vec3{5, 0, 0}, mgl64.Vec3{-1, 0, 0}},
		{"from above", mgl64.Vec3{0, 3, 3}, mgl64.Vec3{0, -1, -1}.Normalize()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestCamera(4, 3)
			c.SetPosition(tt.pos)
			c.LookAt(mgl64.Vec3{})
			if got := cameractl.Forward(c); !vecNear(got, tt.forward, 1e-9) {
				t.Errorf("Forward() = %v, want %v", got, tt.forward)
			}
		})
	}
}

func TestPerspectiveCameraDegenerateLookAt(t *testing.T) {
	c := newTestCamera(4, 3)
	c.SetPosition(mgl64.Vec3{1, 2, 3})
	q := c.Quaternion()

	c.LookAt(mgl64.Vec3{1, 2, 3})
	c.LookAt(mgl64.Vec3{1, 10, 3})
	if c.Quaternion() != q {
		t.Errorf("Quaternion() = %v, want unchanged %v", c.Quaternion(), q)
	}
}

func TestPerspectiveCameraProjection(t *testing.T) {
	c := newTestCamera(16, 9)
	c.SetPosition(mgl64.Vec3{1, 1, 4})
	c.LookAt(mgl64.Vec3{})
	c.UpdateProjection()

	p := mgl64.Vec3{0.3, -0.2, -1}
	clip := c.ProjectionMatrix().Mul4(c.ViewMatrix()).Mul4x1(p.Vec4(1))
	ndc := clip.Vec3().Mul(1 / clip.W())
	if got := focus.Unproject(ndc, c); !vecNear(got, p, 1e-9) {
		t.Errorf("Unproject(project(p)) = %v, want %v", got, p)
	}

	before := c.ProjectionMatrix()
	c.SetZoom(2)
	if c.ProjectionMatrix() != before {
		t.Error("projection changed before UpdateProjection")
	}
	c.UpdateProjection()
	if c.ProjectionMatrix().At(1, 1) <= before.At(1, 1) {
		t.Error("zoom 2 did not narrow the projection")
	}
}

func TestNewPhotoCameraFactory(t *testing.T) {
	base := newTestCamera(16, 9)
	base.SetPosition(mgl64.Vec3{0, 2, 6})
	base.LookAt(mgl64.Vec3{})

	photo := cameractl.NewPhotoCamera(base, NewPhotoCamera)
	if _, ok := photo.(*PerspectiveCamera); !ok {
		t.Fatalf("NewPhotoCamera() = %T, want *PerspectiveCamera", photo)
	}
	if photo.Position() != base.Position() || photo.Fov() != base.Fov() {
		t.Errorf("photo camera = %v fov %v, want %v fov %v", photo.Position(), photo.Fov(), base.Position(), base.Fov())
	}
	if photo.Near() != cameractl.PhotoNear || photo.Far() != cameractl.PhotoFar {
		t.Errorf("clip planes = %v..%v", photo.Near(), photo.Far())
	}
}
