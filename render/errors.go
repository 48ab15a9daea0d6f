// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import "errors"

var (
	// ErrRender wraps any failure while rendering or reading back a capture.
	ErrRender = errors.New("render: capture failed")

	// ErrInvalidSize is returned when a capture is requested with a
	// non-positive width or height.
	ErrInvalidSize = errors.New("render: invalid capture size")

	// ErrNoBlit is returned by CapturePass when the renderer cannot copy
	// between targets.
	ErrNoBlit = errors.New("render: renderer does not support target copies")
)
