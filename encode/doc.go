// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package encode turns raw RGBA8 readback buffers into screenshot outputs.
//
// GPU readback delivers rows bottom row first; Flip reverses them in place
// so standard top-down image formats come out upright. ToOutput then
// produces one of four representations:
//
//   - ReturnCanvas: an *image.NRGBA bitmap, no compression
//   - ReturnBlob: encoded bytes with their MIME type
//   - ReturnFile: a Blob named "screenshot.<ext>"
//   - ReturnObjectURL: a short-lived "blob:" reference into a URLRegistry
//
// Supported formats are JPEG and PNG (standard library), WebP and AVIF.
package encode
