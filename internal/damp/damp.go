// Package damp implements critically damped smoothing toward a moving goal.
package damp

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Epsilon is the distance below which a value snaps onto its goal.
const Epsilon = 0.001

// Scalar smooths one value. The zero value is at rest.
type Scalar struct {
	velocity float64
}

// Velocity returns the current rate of change.
func (d *Scalar) Velocity() float64 { return d.velocity }

// Reset brings the smoother to rest.
func (d *Scalar) Reset() { d.velocity = 0 }

// Step moves current toward goal over one frame of length delta seconds,
// reaching it in roughly smoothTime seconds. It returns the new value and
// whether the value is still moving.
func (d *Scalar) Step(current, goal, smoothTime, delta float64) (float64, bool) {
	if math.Abs(current-goal) <= Epsilon {
		d.velocity = 0
		return goal, false
	}
	if delta <= 0 {
		return current, true
	}
	smoothTime = math.Max(0.0001, smoothTime)
	omega := 2 / smoothTime
	t := decay(omega * delta)

	change := current - goal
	temp := (d.velocity + omega*change) * delta
	d.velocity = (d.velocity - omega*temp) * t
	out := goal + (change+temp)*t

	// Never overshoot.
	if (goal-current > 0) == (out > goal) {
		out = goal
		d.velocity = 0
	}
	return out, true
}

// decay approximates exp(-x) with a cubic that is cheap and stable for
// large frame times.
func decay(x float64) float64 {
	return 1 / (1 + x + 0.48*x*x + 0.235*x*x*x)
}

// Vec3 smooths a vector one component at a time.
type Vec3 struct {
	x, y, z Scalar
}

// Reset brings all components to rest.
func (d *Vec3) Reset() {
	d.x.Reset()
	d.y.Reset()
	d.z.Reset()
}

// Step moves current toward goal; see Scalar.Step.
func (d *Vec3) Step(current, goal mgl64.Vec3, smoothTime, delta float64) (mgl64.Vec3, bool) {
	x, mx := d.x.Step(current.X(), goal.X(), smoothTime, delta)
	y, my := d.y.Step(current.Y(), goal.Y(), smoothTime, delta)
	z, mz := d.z.Step(current.Z(), goal.Z(), smoothTime, delta)
	return mgl64.Vec3{x, y, z}, mx || my || mz
}
