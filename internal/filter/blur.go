package filter

import (
	"image"
	"sync"

	"github.com/gogpu/photomode/internal/parallel"
)

// rowBand is the number of rows handed to one worker at a time.
const rowBand = 16

// Blur returns a Gaussian-blurred copy of src. It runs a horizontal pass
// into a float buffer and a vertical pass back to bytes, extending edge
// pixels outward.
func Blur(src *image.RGBA, radius float64) *image.RGBA {
	b := src.Bounds()
	dst := image.NewRGBA(b)
	if radius <= 0 {
		copyRGBA(dst, src)
		return dst
	}
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return dst
	}

	temp := getTempBuffer(w * h * 4)
	defer putTempBuffer(temp)

	kernel := CachedGaussianKernel(radius)
	pool := parallel.Default()
	pool.Rows(h, rowBand, func(y0, y1 int) {
		blurHorizontal(src, temp, y0, y1, kernel)
	})
	pool.Rows(h, rowBand, func(y0, y1 int) {
		blurVertical(temp, dst, y0, y1, kernel)
	})
	return dst
}

func blurHorizontal(src *image.RGBA, temp []float32, y0, y1 int, kernel []float32) {
	half := len(kernel) / 2
	w := src.Rect.Dx()
	for y := y0; y < y1; y++ {
		row := src.Pix[y*src.Stride : y*src.Stride+w*4]
		for x := 0; x < w; x++ {
			var r, g, b, a float32
			for k, weight := range kernel {
				kx := clampInt(x+k-half, 0, w-1)
				i := kx * 4
				r += float32(row[i+0]) * weight
				g += float32(row[i+1]) * weight
				b += float32(row[i+2]) * weight
				a += float32(row[i+3]) * weight
			}
			t := (y*w + x) * 4
			temp[t+0], temp[t+1], temp[t+2], temp[t+3] = r, g, b, a
		}
	}
}

func blurVertical(temp []float32, dst *image.RGBA, y0, y1 int, kernel []float32) {
	half := len(kernel) / 2
	w, h := dst.Rect.Dx(), dst.Rect.Dy()
	for y := y0; y < y1; y++ {
		row := dst.Pix[y*dst.Stride:]
		for x := 0; x < w; x++ {
			var r, g, b, a float32
			for k, weight := range kernel {
				ky := clampInt(y+k-half, 0, h-1)
				t := (ky*w + x) * 4
				r += temp[t+0] * weight
				g += temp[t+1] * weight
				b += temp[t+2] * weight
				a += temp[t+3] * weight
			}
			i := x * 4
			row[i+0] = clampUint8(r)
			row[i+1] = clampUint8(g)
			row[i+2] = clampUint8(b)
			row[i+3] = clampUint8(a)
		}
	}
}

// copyRGBA copies src into dst row by row. Both must have the same size.
func copyRGBA(dst, src *image.RGBA) {
	n := src.Rect.Dx() * 4
	for y := 0; y < src.Rect.Dy(); y++ {
		copy(dst.Pix[y*dst.Stride:y*dst.Stride+n], src.Pix[y*src.Stride:y*src.Stride+n])
	}
}

type floatBuffer struct {
	data []float32
}

var tempBufferPool = sync.Pool{
	New: func() any { return &floatBuffer{} },
}

// getTempBuffer returns a zeroed buffer of n floats.
func getTempBuffer(n int) []float32 {
	fb := tempBufferPool.Get().(*floatBuffer)
	if cap(fb.data) < n {
		tempBufferPool.Put(fb)
		return make([]float32, n)
	}
	buf := fb.data[:n]
	clear(buf)
	return buf
}

// putTempBuffer pools buf unless it is larger than a 4K frame.
func putTempBuffer(buf []float32) {
	if cap(buf) <= 3840*2160*4 {
		tempBufferPool.Put(&floatBuffer{data: buf[:cap(buf)]})
	}
}

// clampInt clamps v to [lo, hi].
func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// clampUint8 rounds v to the nearest byte.
func clampUint8(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v + 0.5)
}
