// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package soft

import "errors"

var (
	// ErrForeignTarget is returned when a target was not allocated by a
	// soft Renderer.
	ErrForeignTarget = errors.New("soft: target not allocated by the soft renderer")

	// ErrDisposed is returned when a disposed target is used.
	ErrDisposed = errors.New("soft: target disposed")

	// ErrFormat is returned for color formats the engine cannot store.
	ErrFormat = errors.New("soft: unsupported color format")

	// ErrScene is returned when Render receives something other than a
	// *Scene.
	ErrScene = errors.New("soft: scene is not a *soft.Scene")

	// ErrCamera is returned when Render receives a camera without a
	// perspective projection.
	ErrCamera = errors.New("soft: camera has no projection")
)
