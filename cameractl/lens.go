// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package cameractl

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Lens limits.
const (
	MinAperture = 1.4
	MaxAperture = 22.0

	MinZoom = 0.1
	MaxZoom = 10.0

	// DefaultSensorSize is the 35mm full-frame sensor width in millimetres.
	DefaultSensorSize = 35.0

	// DefaultFov is the vertical field of view assumed when a camera does
	// not report one.
	DefaultFov = 50.0
)

// Focus range produced by ApertureToFocusRange.
const (
	minFocusRange = 0.5
	maxFocusRange = 50.0
)

// sensorHeight returns the sensor dimension the field of view spans. A
// vertical fov spans the 36x24 frame's short side.
func sensorHeight(sensor float64, vertical bool) float64 {
	if vertical {
		return sensor * 24 / 36
	}
	return sensor
}

// FovToFocalLength converts a field of view in degrees to a focal length
// in millimetres for a sensor of the given width.
func FovToFocalLength(fov, sensor float64, vertical bool) float64 {
	d := sensorHeight(sensor, vertical)
	return d / (2 * math.Tan(mgl64.DegToRad(fov)/2))
}

// FocalLengthToFov is the inverse of FovToFocalLength.
func FocalLengthToFov(focal, sensor float64, vertical bool) float64 {
	d := sensorHeight(sensor, vertical)
	return mgl64.RadToDeg(2 * math.Atan(d/(2*focal)))
}

// FocalLengthToZoom returns the zoom factor that makes a camera with
// cameraFov degrees frame like a lens of the given focal length on a
// full-frame sensor. The result is clamped to [MinZoom, MaxZoom].
func FocalLengthToZoom(cameraFov, focal float64) float64 {
	target := math.Max(FocalLengthToFov(focal, DefaultSensorSize, true), 1e-4)
	zoom := math.Tan(cameraFov*math.Pi/360) / math.Tan(target*math.Pi/360)
	return mgl64.Clamp(zoom, MinZoom, MaxZoom)
}

// ApplyRoll tilts cam around its viewing direction by roll radians,
// measured from world up.
func ApplyRoll(cam Camera, roll float64) {
	axis := Forward(cam)
	up := mgl64.QuatRotate(roll, axis).Rotate(mgl64.Vec3{0, 1, 0}).Normalize()
	cam.SetUp(up)
	cam.LookAt(cam.Position().Add(axis))
	cam.UpdateProjection()
}

// ApertureToFocusRange maps an f-number to the depth-of-field focus range
// in world units. Wide apertures give a shallow range.
func ApertureToFocusRange(aperture float64) float64 {
	a := mgl64.Clamp(aperture, MinAperture, MaxAperture)
	t := (a - MinAperture) / (MaxAperture - MinAperture)
	return minFocusRange + math.Pow(t, 2.5)*(maxFocusRange-minFocusRange)
}
