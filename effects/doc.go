// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package effects holds the photo-mode colour effects: their slider
// definitions, the mapping from slider values to native effect parameters,
// and a throttled store for the current values.
//
// Slider values live in a UI domain (for example -1..1 for brightness).
// MapEffectValue converts them to the native range a post-process effect
// expects. Params computes the full native parameter set in one call.
package effects
