// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package effects

// Name identifies one post-process effect. Some effects are driven by two
// keys (hue and saturation feed HueSaturation).
type Name string

// Effect names.
const (
	HueSaturationEffect       Name = "hueSaturation"
	BrightnessContrastEffect  Name = "brightnessContrast"
	ChromaticAberrationEffect Name = "chromaticAberration"
	BloomEffect               Name = "bloom"
	VignetteEffect            Name = "vignette"
	GrainEffect               Name = "grain"
)

// PassName is the name of the compositor pass that runs the effects.
const PassName = "PhotoModeEffectsPass"

// Enabled records which effects are active.
type Enabled map[Name]bool

// DefaultEnabled returns the stock table: everything except bloom.
func DefaultEnabled() Enabled {
	return Enabled{
		BrightnessContrastEffect:  true,
		HueSaturationEffect:       true,
		VignetteEffect:            true,
		ChromaticAberrationEffect: true,
		BloomEffect:               false,
		GrainEffect:               true,
	}
}

// Clone returns a copy of e.
func (e Enabled) Clone() Enabled {
	out := make(Enabled, len(e))
	for k, v := range e {
		out[k] = v
	}
	return out
}

// PassOrder returns the effects in the order the effect pass applies them.
// Bloom is included only when enabled; the others are always present and
// stay neutral when disabled.
func PassOrder(e Enabled) []Name {
	order := []Name{HueSaturationEffect, BrightnessContrastEffect, ChromaticAberrationEffect}
	if e[BloomEffect] {
		order = append(order, BloomEffect)
	}
	return append(order, VignetteEffect, GrainEffect)
}
