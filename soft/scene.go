// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package soft

import (
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// hitEpsilon keeps rays from hitting the surface they start on.
const hitEpsilon = 1e-6

// Ray is a half-line with a unit direction.
type Ray struct {
	Origin mgl64.Vec3
	Dir    mgl64.Vec3
}

// At returns the point at distance t along the ray.
func (r Ray) At(t float64) mgl64.Vec3 { return r.Origin.Add(r.Dir.Mul(t)) }

// Hit describes a ray-surface intersection.
type Hit struct {
	T        float64
	Normal   mgl64.Vec3
	Color    color.RGBA
	Emissive bool
}

// Object is anything a ray can hit.
type Object interface {
	Intersect(r Ray) (Hit, bool)
}

// Sphere is a solid-colored sphere. Emissive spheres ignore lighting.
type Sphere struct {
	Center   mgl64.Vec3
	Radius   float64
	Color    color.RGBA
	Emissive bool
}

// Intersect returns the nearest intersection in front of the ray origin.
func (s Sphere) Intersect(r Ray) (Hit, bool) {
	oc := r.Origin.Sub(s.Center)
	b := oc.Dot(r.Dir)
	c := oc.Dot(oc) - s.Radius*s.Radius
	disc := b*b - c
	if disc < 0 {
		return Hit{}, false
	}
	sq := math.Sqrt(disc)
	t := -b - sq
	if t < hitEpsilon {
		t = -b + sq
	}
	if t < hitEpsilon {
		return Hit{}, false
	}
	n := r.At(t).Sub(s.Center).Mul(1 / s.Radius)
	return Hit{T: t, Normal: n, Color: s.Color, Emissive: s.Emissive}, true
}

// Plane is an infinite plane. A positive Tile size draws a checkerboard
// of Color and Alt.
type Plane struct {
	Point  mgl64.Vec3
	Normal mgl64.Vec3
	Color  color.RGBA
	Alt    color.RGBA
	Tile   float64
}

// Intersect returns the intersection in front of the ray origin.
func (p Plane) Intersect(r Ray) (Hit, bool) {
	n := p.Normal.Normalize()
	denom := n.Dot(r.Dir)
	if math.Abs(denom) < 1e-9 {
		return Hit{}, false
	}
	t := p.Point.Sub(r.Origin).Dot(n) / denom
	if t < hitEpsilon {
		return Hit{}, false
	}
	col := p.Color
	if p.Tile > 0 {
		q := r.At(t)
		ix := int(math.Floor(q.X() / p.Tile))
		iz := int(math.Floor(q.Z() / p.Tile))
		if (ix+iz)&1 != 0 {
			col = p.Alt
		}
	}
	if denom > 0 {
		n = n.Mul(-1)
	}
	return Hit{T: t, Normal: n, Color: col}, true
}

// Scene is the root handed to Renderer.Render.
type Scene struct {
	// Background is the color of rays that hit nothing.
	Background color.RGBA

	// Light is the direction toward a distant light.
	Light mgl64.Vec3

	// Ambient is the unlit fraction of every surface color, in [0,1].
	Ambient float64

	Objects []Object
}

// NewScene returns an empty scene lit from above.
func NewScene(background color.RGBA) *Scene {
	return &Scene{
		Background: background,
		Light:      mgl64.Vec3{0.4, 1, 0.3}.Normalize(),
		Ambient:    0.25,
	}
}

// Add appends objects to the scene.
func (s *Scene) Add(objs ...Object) { s.Objects = append(s.Objects, objs...) }

// Trace returns the nearest hit of r closer than maxT.
func (s *Scene) Trace(r Ray, maxT float64) (Hit, bool) {
	var best Hit
	found := false
	for _, o := range s.Objects {
		h, ok := o.Intersect(r)
		if !ok || h.T > maxT {
			continue
		}
		if !found || h.T < best.T {
			best, found = h, true
		}
	}
	return best, found
}

// Shade returns the lit color of h.
func (s *Scene) Shade(h Hit) [3]float64 {
	c := [3]float64{float64(h.Color.R), float64(h.Color.G), float64(h.Color.B)}
	if h.Emissive {
		return c
	}
	k := s.Ambient + (1-s.Ambient)*math.Max(h.Normal.Dot(s.Light), 0)
	return [3]float64{c[0] * k, c[1] * k, c[2] * k}
}

// DemoScene returns a checkered floor with three spheres at increasing
// distances along -Z and a bright emissive sphere for bloom.
func DemoScene() *Scene {
	s := NewScene(color.RGBA{R: 40, G: 48, B: 64, A: 255})
	s.Add(
		Plane{
			Point:  mgl64.Vec3{0, 0, 0},
			Normal: mgl64.Vec3{0, 1, 0},
			Color:  color.RGBA{R: 200, G: 200, B: 200, A: 255},
			Alt:    color.RGBA{R: 70, G: 70, B: 70, A: 255},
			Tile:   1,
		},
		Sphere{Center: mgl64.Vec3{-1.5, 1, -3}, Radius: 1, Color: color.RGBA{R: 220, G: 60, B: 50, A: 255}},
		Sphere{Center: mgl64.Vec3{0.5, 1, -6}, Radius: 1, Color: color.RGBA{R: 60, G: 180, B: 90, A: 255}},
		Sphere{Center: mgl64.Vec3{2.5, 1, -10}, Radius: 1, Color: color.RGBA{R: 60, G: 90, B: 220, A: 255}},
		Sphere{Center: mgl64.Vec3{-3, 3, -12}, Radius: 0.6, Color: color.RGBA{R: 255, G: 250, B: 230, A: 255}, Emissive: true},
	)
	return s
}
