// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package cameractl

import (
	"math"
	"sync"

	"github.com/go-gl/mathgl/mgl64"
)

// DefaultAperture is the f-number a new Settings starts with.
const DefaultAperture = 2.8

// DefaultFocusDistance is the manual focus distance a new Settings starts
// with, in world units.
const DefaultFocusDistance = 5.0

// State is a copy of the photo camera settings.
type State struct {
	// Fov is the live camera's vertical field of view in degrees.
	Fov float64
	// FocalLength is the photo lens focal length in millimetres.
	FocalLength float64
	// Aperture is the f-number, within [MinAperture, MaxAperture].
	Aperture float64
	// FocusDistance is the manual focus distance in world units.
	FocusDistance float64
	// Rotation is the camera roll in degrees.
	Rotation float64

	DOFEnabled bool
	AutoFocus  bool
	PhotoMode  bool
}

// DefaultState returns the settings a new store starts with.
func DefaultState() State {
	return State{
		Fov:           DefaultFov,
		FocalLength:   FovToFocalLength(DefaultFov, DefaultSensorSize, true),
		Aperture:      DefaultAperture,
		FocusDistance: DefaultFocusDistance,
		DOFEnabled:    true,
		AutoFocus:     true,
		PhotoMode:     true,
	}
}

// FocusRange returns the depth-of-field range for the current aperture.
func (s State) FocusRange() float64 { return ApertureToFocusRange(s.Aperture) }

// RollRadians returns Rotation in radians.
func (s State) RollRadians() float64 { return mgl64.DegToRad(s.Rotation) }

// Settings is a concurrency-safe store of photo camera settings.
// Listeners run synchronously on the goroutine that made the change.
type Settings struct {
	mu        sync.Mutex
	state     State
	listeners map[int]func(State)
	nextID    int
}

// NewSettings returns a store holding DefaultState.
func NewSettings() *Settings {
	return &Settings{state: DefaultState()}
}

// State returns a copy of the current settings.
func (s *Settings) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Subscribe registers fn to be called after every change and returns a
// function that removes it.
func (s *Settings) Subscribe(fn func(State)) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listeners == nil {
		s.listeners = make(map[int]func(State))
	}
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

func (s *Settings) update(fn func(*State)) {
	s.mu.Lock()
	fn(&s.state)
	st := s.state
	fns := make([]func(State), 0, len(s.listeners))
	for _, l := range s.listeners {
		fns = append(fns, l)
	}
	s.mu.Unlock()
	for _, l := range fns {
		l(st)
	}
}

// SetFov records the live camera's field of view. Non-positive values are
// ignored.
func (s *Settings) SetFov(fov float64) {
	if fov <= 0 || math.IsNaN(fov) {
		return
	}
	s.update(func(st *State) { st.Fov = fov })
}

// SetFocalLength sets the lens focal length. Non-positive values are
// ignored.
func (s *Settings) SetFocalLength(focal float64) {
	if focal <= 0 || math.IsNaN(focal) {
		return
	}
	s.update(func(st *State) { st.FocalLength = focal })
}

// SetAperture sets the f-number, clamped to [MinAperture, MaxAperture].
func (s *Settings) SetAperture(aperture float64) {
	if math.IsNaN(aperture) {
		return
	}
	a := mgl64.Clamp(aperture, MinAperture, MaxAperture)
	s.update(func(st *State) { st.Aperture = a })
}

// SetFocusDistance sets the manual focus distance. Negative values clamp
// to zero.
func (s *Settings) SetFocusDistance(d float64) {
	if math.IsNaN(d) {
		return
	}
	d = math.Max(d, 0)
	s.update(func(st *State) { st.FocusDistance = d })
}

// SetRotation sets the camera roll in degrees.
func (s *Settings) SetRotation(deg float64) {
	if math.IsNaN(deg) {
		return
	}
	s.update(func(st *State) { st.Rotation = deg })
}

// ToggleDOF flips depth of field on or off.
func (s *Settings) ToggleDOF() {
	s.update(func(st *State) { st.DOFEnabled = !st.DOFEnabled })
}

// ToggleAutoFocus flips autofocus on or off.
func (s *Settings) ToggleAutoFocus() {
	s.update(func(st *State) { st.AutoFocus = !st.AutoFocus })
}

// TogglePhotoMode sets photo mode to value[0] when given, and flips it
// otherwise. It returns the new value.
func (s *Settings) TogglePhotoMode(value ...bool) bool {
	var on bool
	s.update(func(st *State) {
		if len(value) > 0 {
			st.PhotoMode = value[0]
		} else {
			st.PhotoMode = !st.PhotoMode
		}
		on = st.PhotoMode
	})
	return on
}

// Reset restores DefaultState.
func (s *Settings) Reset() {
	s.update(func(st *State) { *st = DefaultState() })
}
