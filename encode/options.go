// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package encode

import (
	"fmt"
	"strings"
)

// Format is an output image format.
type Format string

// Supported formats.
const (
	FormatJPEG Format = "jpeg"
	FormatPNG  Format = "png"
	FormatWebP Format = "webp"
	FormatAVIF Format = "avif"
)

// ParseFormat parses a format name. "jpg" is accepted as an alias of jpeg.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatJPEG, FormatPNG, FormatWebP, FormatAVIF:
		return f, nil
	case "jpg":
		return FormatJPEG, nil
	default:
		return "", fmt.Errorf("%q: %w", s, ErrUnsupportedFormat)
	}
}

// MIME returns the media type of the format, e.g. "image/png".
func (f Format) MIME() string { return "image/" + string(f) }

// FileName returns the file name used for ReturnFile outputs.
func (f Format) FileName() string { return "screenshot." + string(f) }

// ReturnType selects the representation ToOutput produces.
type ReturnType string

// Supported return types.
const (
	ReturnCanvas    ReturnType = "canvas"
	ReturnBlob      ReturnType = "blob"
	ReturnFile      ReturnType = "file"
	ReturnObjectURL ReturnType = "objectURL"
)

// ParseReturnType parses a return type name, case-insensitively.
func ParseReturnType(s string) (ReturnType, error) {
	for _, rt := range []ReturnType{ReturnCanvas, ReturnBlob, ReturnFile, ReturnObjectURL} {
		if strings.EqualFold(s, string(rt)) {
			return rt, nil
		}
	}
	return "", fmt.Errorf("%q: %w", s, ErrUnsupportedReturnType)
}

// Default output settings.
const (
	DefaultFormat     = FormatJPEG
	DefaultQuality    = 0.95
	DefaultReturnType = ReturnObjectURL
)

// Options configures ToOutput.
type Options struct {
	// Format is the encoding. Empty means DefaultFormat.
	Format Format

	// Quality is the lossy quality in [0, 1]. Zero means DefaultQuality.
	// PNG ignores it.
	Quality float64

	// ReturnType selects the output representation. Empty means
	// DefaultReturnType.
	ReturnType ReturnType

	// Registry receives object URLs. Nil means DefaultRegistry.
	Registry *URLRegistry
}

// withDefaults fills zero fields and clamps Quality into [0, 1].
func (o Options) withDefaults() Options {
	if o.Format == "" {
		o.Format = DefaultFormat
	}
	if o.Quality == 0 {
		o.Quality = DefaultQuality
	}
	o.Quality = min(max(o.Quality, 0), 1)
	if o.ReturnType == "" {
		o.ReturnType = DefaultReturnType
	}
	if o.Registry == nil {
		o.Registry = DefaultRegistry
	}
	return o
}
