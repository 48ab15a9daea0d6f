// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package encode

import "errors"

var (
	// ErrEncode wraps codec failures.
	ErrEncode = errors.New("encode: encoding failed")

	// ErrUnsupportedFormat is returned for formats other than jpeg, png,
	// webp and avif.
	ErrUnsupportedFormat = errors.New("encode: unsupported format")

	// ErrUnsupportedReturnType is returned for unknown return types.
	ErrUnsupportedReturnType = errors.New("encode: unsupported return type")

	// ErrBufferSize is returned when a pixel buffer does not hold exactly
	// width*height RGBA8 pixels.
	ErrBufferSize = errors.New("encode: buffer size does not match dimensions")
)
