// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package encode

// Flip reverses the row order of a tightly packed RGBA8 buffer in place.
// Flip is its own inverse. Buffers shorter than width*height*4 bytes are
// left untouched.
func Flip(buf []byte, width, height int) {
	stride := width * 4
	if width <= 0 || height <= 1 || len(buf) < stride*height {
		return
	}
	tmp := make([]byte, stride)
	for top, bottom := 0, height-1; top < bottom; top, bottom = top+1, bottom-1 {
		a := buf[top*stride : (top+1)*stride]
		b := buf[bottom*stride : (bottom+1)*stride]
		copy(tmp, a)
		copy(a, b)
		copy(b, tmp)
	}
}
