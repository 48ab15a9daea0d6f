package filter

import (
	"image"
	"math"

	"github.com/gogpu/photomode/internal/parallel"
)

// ChromaticAberration returns a copy of src with the red channel sampled
// at +offset and the blue channel at -offset, in UV units. With radial
// modulation the shift fades to zero inside modulationOffset of the
// centre, measured in half-diagonals.
func ChromaticAberration(src *image.RGBA, offset [2]float64, radial bool, modulationOffset float64) *image.RGBA {
	b := src.Bounds()
	dst := image.NewRGBA(b)
	copyRGBA(dst, src)
	if offset == [2]float64{} {
		return dst
	}
	w, h := b.Dx(), b.Dy()
	parallel.Default().Rows(h, rowBand, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			v := (float64(y) + 0.5) / float64(h)
			row := dst.Pix[y*dst.Stride:]
			for x := 0; x < w; x++ {
				u := (float64(x) + 0.5) / float64(w)
				ox, oy := offset[0], offset[1]
				if radial {
					d := math.Hypot(u-0.5, v-0.5) * 2
					m := math.Max(d-modulationOffset, 0)
					ox, oy = ox*m, oy*m
				}
				i := x * 4
				row[i+0] = sampleChannel(src, u+ox, v+oy, 0)
				row[i+2] = sampleChannel(src, u-ox, v-oy, 2)
			}
		}
	})
	return dst
}

// sampleChannel reads channel c at UV (u, v) with edge clamping and
// nearest-pixel filtering.
func sampleChannel(img *image.RGBA, u, v float64, c int) uint8 {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	x := clampInt(int(math.Floor(u*float64(w))), 0, w-1)
	y := clampInt(int(math.Floor(v*float64(h))), 0, h-1)
	return img.Pix[y*img.Stride+x*4+c]
}
