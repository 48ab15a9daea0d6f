// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package encode

import (
	"fmt"

	"github.com/h2non/filetype"
)

// DetectFormat identifies encoded image data by its magic bytes.
func DetectFormat(data []byte) (Format, error) {
	kind, err := filetype.Image(data)
	if err != nil || kind == filetype.Unknown {
		return "", fmt.Errorf("unrecognized image data: %w", ErrUnsupportedFormat)
	}
	switch kind.MIME.Value {
	case "image/jpeg":
		return FormatJPEG, nil
	case "image/png":
		return FormatPNG, nil
	case "image/webp":
		return FormatWebP, nil
	case "image/avif":
		return FormatAVIF, nil
	default:
		return "", fmt.Errorf("%s: %w", kind.MIME.Value, ErrUnsupportedFormat)
	}
}
