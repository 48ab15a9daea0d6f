package filter

import (
	"image"

	"github.com/anthonynsimon/bild/noise"

	"github.com/gogpu/photomode/internal/parallel"
)

// Grain overlays monochrome film grain on img in place. The noise is
// multiplied by the underlying colour and screen-blended at opacity.
func Grain(img *image.RGBA, opacity float64) {
	if opacity <= 0 {
		return
	}
	if opacity > 1 {
		opacity = 1
	}
	w, h := img.Rect.Dx(), img.Rect.Dy()
	if w == 0 || h == 0 {
		return
	}
	n := noise.Generate(w, h, &noise.Options{Monochrome: true, NoiseFn: noise.Uniform})
	op := float32(opacity)
	parallel.Default().Rows(h, rowBand, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			row := img.Pix[y*img.Stride:]
			nrow := n.Pix[y*n.Stride:]
			for x := 0; x < w; x++ {
				i := x * 4
				k := float32(nrow[i]) / 255
				for c := 0; c < 3; c++ {
					col := float32(row[i+c]) / 255
					grain := min(col*k, 1)
					screen := col + grain - col*grain
					row[i+c] = clampUint8((col + (screen-col)*op) * 255)
				}
			}
		}
	})
}
