// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package effects

import "math"

// Chromatic aberration modulation, fixed for photo mode.
const (
	RadialModulation = true
	ModulationOffset = 0.15
)

// Values maps effect keys to UI-domain values.
type Values map[Key]float64

// DefaultValues returns every key at its default.
func DefaultValues() Values {
	v := make(Values, len(definitions))
	for _, d := range definitions {
		v[d.Key] = d.Default
	}
	return v
}

// Clone returns a copy of v.
func (v Values) Clone() Values {
	out := make(Values, len(v))
	for k, x := range v {
		out[k] = x
	}
	return out
}

// native maps key k, returning zero for unknown keys.
func (v Values) native(k Key) float64 {
	d, ok := Lookup(k)
	if !ok {
		return 0
	}
	x, ok := v[k]
	if !ok {
		x = d.Default
	}
	return d.Map(x)
}

// Params holds the native parameters of every effect.
type Params struct {
	Hue        float64 // radians
	Saturation float64
	Brightness float64
	Contrast   float64

	// ChromaticOffset is the per-axis channel offset in UV units.
	ChromaticOffset [2]float64

	BloomIntensity float64

	VignetteOffset   float64
	VignetteDarkness float64

	GrainOpacity float64
}

// IsNeutral reports whether p leaves an image unchanged. The vignette
// offset has no effect while the darkness is zero.
func (p Params) IsNeutral() bool {
	q := p
	if q.VignetteDarkness == 0 {
		q.VignetteOffset = 0
	}
	return q == Params{}
}

// ComputeParams converts UI values to native parameters. Disabled effects
// and all effects outside photo mode get neutral parameters.
func ComputeParams(v Values, e Enabled, photoMode bool) Params {
	var p Params
	if !photoMode {
		return p
	}
	if e[HueSaturationEffect] {
		p.Hue = v.native(Hue)
		p.Saturation = v.native(Saturation)
	}
	if e[BrightnessContrastEffect] {
		p.Brightness = v.native(Brightness)
		p.Contrast = v.native(Contrast)
	}
	if e[ChromaticAberrationEffect] {
		off := v.native(ChromaticAberration)
		p.ChromaticOffset = [2]float64{off, off}
	}
	if e[BloomEffect] {
		p.BloomIntensity = v.native(Bloom)
	}
	if e[VignetteEffect] {
		d := v.native(Vignette)
		p.VignetteOffset = 0.4 * math.Pow(1-d, 2)
		p.VignetteDarkness = d
	}
	if e[GrainEffect] {
		p.GrainOpacity = v.native(Grain)
	}
	return p
}
