// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package effects

import (
	"errors"
	"fmt"
	"math"
)

// ErrUnknownEffect is returned for keys with no definition.
var ErrUnknownEffect = errors.New("effects: unknown effect")

// Key names one adjustable effect value.
type Key string

// Effect keys.
const (
	Brightness          Key = "brightness"
	Contrast            Key = "contrast"
	Hue                 Key = "hue"
	Saturation          Key = "saturation"
	Vignette            Key = "vignette"
	ChromaticAberration Key = "chromaticAberration"
	Bloom               Key = "bloom"
	Grain               Key = "grain"
)

// Definition describes one effect slider.
type Definition struct {
	Key   Key
	Label string

	// Min, Max and Default are in the UI domain.
	Min, Max, Default float64

	// NativeMin and NativeMax are the effect's own parameter range. They
	// equal Min and Max for effects that take UI values directly.
	NativeMin, NativeMax float64
}

var definitions = []Definition{
	{Key: Brightness, Label: "Brightness", Min: -1, Max: 1, NativeMin: -0.75, NativeMax: 0.75},
	{Key: Contrast, Label: "Contrast", Min: -1, Max: 1, NativeMin: -0.75, NativeMax: 0.75},
	{Key: Hue, Label: "Hue", Min: -1, Max: 1, NativeMin: -math.Pi, NativeMax: math.Pi},
	{Key: Saturation, Label: "Saturation", Min: -1, Max: 1, NativeMin: -1, NativeMax: 1},
	{Key: Vignette, Label: "Vignette", Min: 0, Max: 1, NativeMin: 0, NativeMax: 1},
	{Key: ChromaticAberration, Label: "Chromatic Aberration", Min: 0, Max: 1, NativeMin: 0, NativeMax: 0.01},
	{Key: Bloom, Label: "Bloom", Min: 0, Max: 1, NativeMin: 0, NativeMax: 5},
	{Key: Grain, Label: "Grain", Min: 0, Max: 1, NativeMin: 0, NativeMax: 1},
}

var byKey = func() map[Key]Definition {
	m := make(map[Key]Definition, len(definitions))
	for _, d := range definitions {
		m[d.Key] = d
	}
	return m
}()

// Definitions returns every effect definition in display order.
func Definitions() []Definition {
	out := make([]Definition, len(definitions))
	copy(out, definitions)
	return out
}

// Keys returns every effect key in display order.
func Keys() []Key {
	out := make([]Key, len(definitions))
	for i, d := range definitions {
		out[i] = d.Key
	}
	return out
}

// Lookup returns the definition for k.
func Lookup(k Key) (Definition, bool) {
	d, ok := byKey[k]
	return d, ok
}

// Clamp limits v to the UI domain.
func (d Definition) Clamp(v float64) float64 {
	return math.Max(d.Min, math.Min(d.Max, v))
}

// Map converts a UI value to the native range. The value is clamped first
// and the result is rounded to three decimals. The UI bounds map exactly
// onto the native bounds, even when those are not round numbers.
func (d Definition) Map(v float64) float64 {
	c := d.Clamp(v)
	switch c {
	case d.Min:
		return d.NativeMin
	case d.Max:
		return d.NativeMax
	}
	mapped := (c-d.Min)/(d.Max-d.Min)*(d.NativeMax-d.NativeMin) + d.NativeMin
	return math.Max(d.NativeMin, math.Min(d.NativeMax, round3(mapped)))
}

// round3 rounds half up to three decimals.
func round3(v float64) float64 {
	return math.Floor(v*1000+0.5) / 1000
}

// MapEffectValue maps the UI value v of effect k to its native range.
func MapEffectValue(v float64, k Key) (float64, error) {
	d, ok := Lookup(k)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownEffect, k)
	}
	return d.Map(v), nil
}
