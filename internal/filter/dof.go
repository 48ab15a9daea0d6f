package filter

import (
	"image"
	"math"

	"github.com/gogpu/photomode/internal/parallel"
)

// DepthOfField blends src with a blurred copy per pixel. depth holds the
// view distance of every pixel in row-major order; pixels farther than
// focusRange from focusDistance are fully blurred. bokehScale is the blur
// radius in pixels at full defocus.
func DepthOfField(src *image.RGBA, depth []float32, focusDistance, focusRange, bokehScale float64) *image.RGBA {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if bokehScale <= 0 || len(depth) < w*h {
		dst := image.NewRGBA(b)
		copyRGBA(dst, src)
		return dst
	}
	if focusRange <= 0 {
		focusRange = 1e-3
	}
	blurred := Blur(src, bokehScale)
	parallel.Default().Rows(h, rowBand, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			srow := src.Pix[y*src.Stride:]
			brow := blurred.Pix[y*blurred.Stride:]
			for x := 0; x < w; x++ {
				coc := float32(math.Min(math.Abs(float64(depth[y*w+x])-focusDistance)/focusRange, 1))
				i := x * 4
				for c := 0; c < 4; c++ {
					s := float32(srow[i+c])
					brow[i+c] = clampUint8(s + (float32(brow[i+c])-s)*coc)
				}
			}
		}
	})
	return blurred
}
