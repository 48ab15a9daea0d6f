// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package encode

import (
	"bytes"
	"context"

	"golang.org/x/sync/errgroup"
)

// EncodeAll encodes one top-down RGBA8 frame into every format in
// formats concurrently. Blobs are returned in the order of formats. The
// first failure cancels the remaining encodes.
func EncodeAll(ctx context.Context, buf []byte, width, height int, formats []Format, quality float64) ([]Blob, error) {
	img, err := NewImage(buf, width, height)
	if err != nil {
		return nil, err
	}
	if quality == 0 {
		quality = DefaultQuality
	}

	blobs := make([]Blob, len(formats))
	g, ctx := errgroup.WithContext(ctx)
	for i, f := range formats {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			var out bytes.Buffer
			if err := Encode(&out, img, f, quality); err != nil {
				return err
			}
			blobs[i] = Blob{Data: out.Bytes(), Type: f.MIME()}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return blobs, nil
}
