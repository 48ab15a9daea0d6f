// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package encode

import (
	"image"
	"time"
)

// Output is a screenshot in one of the ReturnType representations.
type Output interface {
	ReturnType() ReturnType
}

// Canvas is an unencoded bitmap.
type Canvas struct {
	Image *image.NRGBA
}

// ReturnType returns ReturnCanvas.
func (Canvas) ReturnType() ReturnType { return ReturnCanvas }

// Blob is an encoded image with its MIME type.
type Blob struct {
	Data []byte
	Type string
}

// ReturnType returns ReturnBlob.
func (Blob) ReturnType() ReturnType { return ReturnBlob }

// Size returns the encoded size in bytes.
func (b Blob) Size() int { return len(b.Data) }

// File is a named Blob.
type File struct {
	Blob
	Name         string
	LastModified time.Time
}

// ReturnType returns ReturnFile.
func (File) ReturnType() ReturnType { return ReturnFile }

// ObjectURL references a Blob held by a URLRegistry. The caller owns its
// lifetime and must Revoke it once done.
type ObjectURL struct {
	URL      string
	registry *URLRegistry
}

// ReturnType returns ReturnObjectURL.
func (ObjectURL) ReturnType() ReturnType { return ReturnObjectURL }

// String returns the URL.
func (u ObjectURL) String() string { return u.URL }

// Resolve returns the referenced blob, if it has not been revoked.
func (u ObjectURL) Resolve() (Blob, bool) {
	if u.registry == nil {
		return Blob{}, false
	}
	return u.registry.Resolve(u.URL)
}

// Revoke releases the referenced blob.
func (u ObjectURL) Revoke() {
	if u.registry != nil {
		u.registry.Revoke(u.URL)
	}
}
