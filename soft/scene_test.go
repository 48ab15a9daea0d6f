// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package soft

import (
	"image/color"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestSphereIntersect(t *testing.T) {
	s := Sphere{Radius: 1, Color: red}
	tests := []struct {
		name   string
		ray    Ray
		hit    bool
		t      float64
		normal mgl64.Vec3
	}{
		{"front", Ray{mgl64.Vec3{0, 0, 5}, mgl64.Vec3{0, 0, -1}}, true, 4, mgl64.Vec3{0, 0, 1}},
		{"inside exits", Ray{mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 0, 0}}, true, 1, mgl64.Vec3{1, 0, 0}},
		{"miss", Ray{mgl64.Vec3{0, 2, 5}, mgl64.Vec3{0, 0, -1}}, false, 0, mgl64.Vec3{}},
		{"behind", Ray{mgl64.Vec3{0, 0, 5}, mgl64.Vec3{0, 0, 1}}, false, 0, mgl64.Vec3{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, ok := s.Intersect(tt.ray)
			if ok != tt.hit {
				t.Fatalf("Intersect() hit = %v, want %v", ok, tt.hit)
			}
			if !ok {
				return
			}
			if !floatNear(h.T, tt.t, 1e-9) {
				t.Errorf("T = %v, want %v", h.T, tt.t)
			}
			if !vecNear(h.Normal, tt.normal, 1e-9) {
				t.Errorf("Normal = %v, want %v", h.Normal, tt.normal)
			}
		})
	}
}

func TestPlaneIntersect(t *testing.T) {
	light := color.RGBA{R: 200, G: 200, B: 200, A: 255}
	dark := color.RGBA{R: 50, G: 50, B: 50, A: 255}
	p := Plane{Normal: mgl64.Vec3{0, 1, 0}, Color: light, Alt: dark, Tile: 1}

	h, ok := p.Intersect(Ray{mgl64.Vec3{0.5, 2, 0.5}, mgl64.Vec3{0, -1, 0}})
	if !ok || !floatNear(h.T, 2, 1e-9) {
		t.Fatalf("Intersect() = %v, %v, want T 2", h, ok)
	}
	if h.Color != light {
		t.Errorf("tile (0,0) color = %v, want %v", h.Color, light)
	}
	if !vecNear(h.Normal, mgl64.Vec3{0, 1, 0}, 1e-9) {
		t.Errorf("Normal = %v, want +Y", h.Normal)
	}

	h, _ = p.Intersect(Ray{mgl64.Vec3{1.5, 2, 0.5}, mgl64.Vec3{0, -1, 0}})
	if h.Color != dark {
		t.Errorf("tile (1,0) color = %v, want %v", h.Color, dark)
	}

	h, ok = p.Intersect(Ray{mgl64.Vec3{0.5, -2, 0.5}, mgl64.Vec3{0, 1, 0}})
	if !ok || !vecNear(h.Normal, mgl64.Vec3{0, -1, 0}, 1e-9) {
		t.Errorf("underside normal = %v, want -Y", h.Normal)
	}

	if _, ok := p.Intersect(Ray{mgl64.Vec3{0, 1, 0}, mgl64.Vec3{1, 0, 0}}); ok {
		t.Error("parallel ray hit the plane")
	}
}

func TestSceneTraceNearest(t *testing.T) {
	s := NewScene(color.RGBA{})
	s.Add(
		Sphere{Center: mgl64.Vec3{0, 0, -10}, Radius: 1, Color: color.RGBA{B: 255, A: 255}},
		Sphere{Center: mgl64.Vec3{0, 0, -5}, Radius: 1, Color: red},
	)
	ray := Ray{Dir: mgl64.Vec3{0, 0, -1}}

	h, ok := s.Trace(ray, 100)
	if !ok || h.Color != red || !floatNear(h.T, 4, 1e-9) {
		t.Errorf("Trace() = %v, %v, want red at 4", h, ok)
	}
	if _, ok := s.Trace(ray, 3); ok {
		t.Error("Trace() hit beyond maxT")
	}
}

func TestShade(t *testing.T) {
	s := NewScene(color.RGBA{})
	s.Light = mgl64.Vec3{0, 1, 0}
	s.Ambient = 0.2
	c := color.RGBA{R: 100, G: 100, B: 100, A: 255}

	if got := s.Shade(Hit{Normal: mgl64.Vec3{0, 1, 0}, Color: c}); !floatNear(got[0], 100, 1e-9) {
		t.Errorf("lit Shade() = %v, want 100", got[0])
	}
	if got := s.Shade(Hit{Normal: mgl64.Vec3{0, -1, 0}, Color: c}); !floatNear(got[0], 20, 1e-9) {
		t.Errorf("unlit Shade() = %v, want ambient 20", got[0])
	}
	if got := s.Shade(Hit{Normal: mgl64.Vec3{0, -1, 0}, Color: c, Emissive: true}); !floatNear(got[0], 100, 1e-9) {
		t.Errorf("emissive Shade() = %v, want 100", got[0])
	}
}

func TestDemoScene(t *testing.T) {
	s := DemoScene()
	if len(s.Objects) < 4 {
		t.Fatalf("DemoScene() has %d objects", len(s.Objects))
	}
	emissive := false
	for _, o := range s.Objects {
		if sp, ok := o.(Sphere); ok && sp.Emissive {
			emissive = true
		}
	}
	if !emissive {
		t.Error("DemoScene() has no emissive sphere")
	}
}
