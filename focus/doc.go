// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package focus drives the depth-of-field focus point of the photo camera.
//
// In manual mode the focus point sits a fixed distance ahead of the camera.
// In autofocus mode a depth-picking pass samples the depth buffer at the
// centre of the screen; the sample is unprojected to a world point and the
// effect's target is eased toward it.
//
// Depth picking is two-phase. Frame requests a sample for the next
// compositor run and resolves the one requested on the previous frame, so
// the focus point lags the image by one frame.
package focus
