// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package render defines the contracts photomode consumes from a host 3D
// engine and the scoped operations it performs on them.
//
// # Key Principle
//
// photomode BORROWS the host's renderer, scene, camera and compositor. Every
// mutation it makes (pixel ratio, logical size, render target, camera
// aspect, compositor pass list and per-pass flags) is undone before the
// operation returns, on success and on failure.
//
// # Core Interfaces
//
//   - Renderer: render target, pixel ratio, logical size, readback, Render
//   - Camera: aspect ratio and projection update
//   - Compositor and Pass: the post-processing pass graph
//   - Target: an offscreen color+depth buffer allocated by the renderer
//   - DeviceHandle: optional GPU device access from the host application
//
// # Scoped Operations
//
//   - Save / Restore: the render state guard
//   - Offscreen: configure, render, read back and dispose one capture
//   - CapturePass: terminal compositor stage copying the final frame out
//
// Example:
//
//	state := render.Save(renderer, camera)
//	defer render.Restore(renderer, camera, state)
//
//	pixels, w, h, err := render.CaptureFrame(ctx, renderer, scene, camera, 1920, 1080, nil)
package render
