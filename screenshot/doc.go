// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package screenshot captures a still image of a live scene at an arbitrary
// resolution.
//
// Capture saves the renderer and camera state, renders one frame into a
// fresh offscreen target (through the compositor when one is given), reads
// it back, restores the state and encodes the result. Restoration runs on
// every exit path. Hook errors are logged and ignored; render, readback and
// encoding errors are returned.
//
// Capture is not reentrant. Calls sharing a renderer must be serialized by
// the caller.
package screenshot
