// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package effects

import (
	"fmt"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// ThrottleInterval is the minimum spacing between accepted writes. A single
// gate is shared by every key.
const ThrottleInterval = 16 * time.Millisecond

// Store holds the current effect values and enabled table. It is safe for
// concurrent use; listeners run synchronously on the writing goroutine.
type Store struct {
	mu        sync.Mutex
	values    Values
	enabled   Enabled
	now       func() time.Time
	gate      *rate.Limiter
	listeners map[int]func(Values)
	nextID    int
}

// NewStore returns a store at default values. now supplies the clock for
// the write throttle; nil selects time.Now.
func NewStore(now func() time.Time) *Store {
	if now == nil {
		now = time.Now
	}
	return &Store{
		values:  DefaultValues(),
		enabled: DefaultEnabled(),
		now:     now,
		gate:    rate.NewLimiter(rate.Every(ThrottleInterval), 1),
	}
}

// Set stores v, clamped to the key's UI domain. Writes arriving within
// ThrottleInterval of the last accepted write are dropped; Set reports
// whether v was accepted.
func (s *Store) Set(k Key, v float64) (bool, error) {
	d, ok := Lookup(k)
	if !ok {
		return false, fmt.Errorf("%w: %q", ErrUnknownEffect, k)
	}
	s.mu.Lock()
	if !s.gate.AllowN(s.now(), 1) {
		s.mu.Unlock()
		return false, nil
	}
	s.values[k] = d.Clamp(v)
	s.notifyLocked()
	return true, nil
}

// Get returns the UI value of k.
func (s *Store) Get(k Key) (float64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[k]
	return v, ok
}

// Values returns a copy of every value.
func (s *Store) Values() Values {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.values.Clone()
}

// Enabled returns a copy of the enabled table.
func (s *Store) Enabled() Enabled {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.enabled.Clone()
}

// SetEnabled replaces the enabled table.
func (s *Store) SetEnabled(e Enabled) {
	s.mu.Lock()
	s.enabled = e.Clone()
	s.notifyLocked()
}

// Load replaces every known value in v, clamping each. It bypasses the
// throttle and is meant for loading saved settings.
func (s *Store) Load(v Values) error {
	for k := range v {
		if _, ok := Lookup(k); !ok {
			return fmt.Errorf("%w: %q", ErrUnknownEffect, k)
		}
	}
	s.mu.Lock()
	for k, x := range v {
		d, _ := Lookup(k)
		s.values[k] = d.Clamp(x)
	}
	s.notifyLocked()
	return nil
}

// Reset restores every default value, bypassing the throttle.
func (s *Store) Reset() {
	s.mu.Lock()
	s.values = DefaultValues()
	s.notifyLocked()
}

// Params returns the native parameters for the current state.
func (s *Store) Params(photoMode bool) Params {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ComputeParams(s.values, s.enabled, photoMode)
}

// Subscribe registers fn to run after every change and returns a function
// that removes it.
func (s *Store) Subscribe(fn func(Values)) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listeners == nil {
		s.listeners = make(map[int]func(Values))
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

// notifyLocked releases s.mu and then runs the listeners.
func (s *Store) notifyLocked() {
	snapshot := s.values.Clone()
	fns := make([]func(Values), 0, len(s.listeners))
	for _, fn := range s.listeners {
		fns = append(fns, fn)
	}
	s.mu.Unlock()
	for _, fn := range fns {
		fn(snapshot)
	}
}
