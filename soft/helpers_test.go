// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package soft

import (
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

var red = color.RGBA{R: 255, A: 255}

// sphereScene is a black scene with one emissive red unit sphere centered
// at (0, 0, -5).
func sphereScene() *Scene {
	s := NewScene(color.RGBA{A: 255})
	s.Add(Sphere{Center: mgl64.Vec3{0, 0, -5}, Radius: 1, Color: red, Emissive: true})
	return s
}

func newTestCamera(w, h int) *PerspectiveCamera {
	return NewPerspectiveCamera(60, float64(w)/float64(h), 0.1, 100)
}

func vecNear(a, b mgl64.Vec3, tol float64) bool {
	return a.Sub(b).Len() <= tol
}

func floatNear(a, b, tol float64) bool { return math.Abs(a-b) <= tol }
