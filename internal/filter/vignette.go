package filter

import (
	"image"
	"math"

	"github.com/gogpu/photomode/internal/parallel"
)

// Vignette darkens img toward its corners in place. offset moves the
// falloff edge; darkness scales it. A zero darkness with offset <= 0.4
// leaves the image unchanged.
func Vignette(img *image.RGBA, offset, darkness float64) {
	if darkness <= 0 && offset <= 0.4 {
		return
	}
	w, h := img.Rect.Dx(), img.Rect.Dy()
	if w == 0 || h == 0 {
		return
	}
	edge := offset * 0.799
	scale := darkness + offset
	parallel.Default().Rows(h, rowBand, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			v := (float64(y)+0.5)/float64(h) - 0.5
			row := img.Pix[y*img.Stride:]
			for x := 0; x < w; x++ {
				u := (float64(x)+0.5)/float64(w) - 0.5
				d := math.Hypot(u, v)
				f := float32(smoothstep(0.8, edge, d*scale))
				i := x * 4
				row[i+0] = clampUint8(float32(row[i+0]) * f)
				row[i+1] = clampUint8(float32(row[i+1]) * f)
				row[i+2] = clampUint8(float32(row[i+2]) * f)
			}
		}
	})
}

// smoothstep is the GLSL function, including reversed edges.
func smoothstep(edge0, edge1, x float64) float64 {
	if edge0 == edge1 {
		if x < edge0 {
			return 0
		}
		return 1
	}
	t := math.Max(0, math.Min(1, (x-edge0)/(edge1-edge0)))
	return t * t * (3 - 2*t)
}
