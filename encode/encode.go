// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package encode

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"math"
	"time"

	"github.com/gen2brain/avif"
	"github.com/gen2brain/webp"
)

// NewImage wraps a tightly packed, top-down RGBA8 buffer as an
// *image.NRGBA without copying. Readback pixels are straight alpha.
func NewImage(buf []byte, width, height int) (*image.NRGBA, error) {
	if width <= 0 || height <= 0 || len(buf) != width*height*4 {
		return nil, fmt.Errorf("%d bytes for %dx%d: %w", len(buf), width, height, ErrBufferSize)
	}
	return &image.NRGBA{
		Pix:    buf,
		Stride: width * 4,
		Rect:   image.Rect(0, 0, width, height),
	}, nil
}

// ToOutput converts a top-down RGBA8 buffer into the representation
// selected by opts. Flip the readback first.
func ToOutput(ctx context.Context, buf []byte, width, height int, opts Options) (Output, error) {
	opts = opts.withDefaults()

	img, err := NewImage(buf, width, height)
	if err != nil {
		return nil, err
	}

	switch opts.ReturnType {
	case ReturnCanvas:
		return Canvas{Image: img}, nil
	case ReturnBlob, ReturnFile, ReturnObjectURL:
	default:
		return nil, fmt.Errorf("%q: %w", opts.ReturnType, ErrUnsupportedReturnType)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var out bytes.Buffer
	if err := Encode(&out, img, opts.Format, opts.Quality); err != nil {
		return nil, err
	}
	blob := Blob{Data: out.Bytes(), Type: opts.Format.MIME()}

	switch opts.ReturnType {
	case ReturnFile:
		return File{Blob: blob, Name: opts.Format.FileName(), LastModified: time.Now()}, nil
	case ReturnObjectURL:
		return opts.Registry.Create(blob), nil
	default:
		return blob, nil
	}
}

// Encode writes img to w in the given format. quality in [0, 1] applies
// to the lossy formats.
func Encode(w io.Writer, img image.Image, format Format, quality float64) error {
	q := qualityPercent(quality)

	var err error
	switch format {
	case FormatJPEG:
		err = jpeg.Encode(w, img, &jpeg.Options{Quality: q})
	case FormatPNG:
		err = png.Encode(w, img)
	case FormatWebP:
		err = webp.Encode(w, img, webp.Options{Quality: q, Method: 4})
	case FormatAVIF:
		err = avif.Encode(w, img, avif.Options{Quality: q, QualityAlpha: q, Speed: 8})
	default:
		return fmt.Errorf("%q: %w", format, ErrUnsupportedFormat)
	}
	if err != nil {
		return fmt.Errorf("%s: %w: %w", format, ErrEncode, err)
	}
	return nil
}

// qualityPercent maps [0, 1] onto the codecs' 1..100 scale.
func qualityPercent(q float64) int {
	p := int(math.Round(q * 100))
	return min(max(p, 1), 100)
}
