package filter

import (
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/adjust"
	"github.com/anthonynsimon/bild/blend"
	"github.com/anthonynsimon/bild/blur"
	"github.com/anthonynsimon/bild/transform"
	"golang.org/x/image/draw"
)

// Bloom parameters.
const (
	// BloomThreshold is the luminance above which pixels glow.
	BloomThreshold = 0.9
	// BloomSmoothing widens the threshold into a soft knee.
	BloomSmoothing = 0.025

	bloomDownscale = 4
	bloomRadius    = 4.0
)

// Bloom returns src with bright areas spread into a glow scaled by
// intensity. The glow is computed at quarter resolution.
func Bloom(src *image.RGBA, intensity float64) *image.RGBA {
	b := src.Bounds()
	if intensity <= 0 || b.Empty() {
		dst := image.NewRGBA(b)
		copyRGBA(dst, src)
		return dst
	}

	bright := adjust.Apply(src, func(c color.RGBA) color.RGBA {
		l := luminance(c)
		k := smoothstep(BloomThreshold, BloomThreshold+BloomSmoothing, l)
		return color.RGBA{
			R: uint8(float64(c.R) * k),
			G: uint8(float64(c.G) * k),
			B: uint8(float64(c.B) * k),
			A: 255,
		}
	})

	sw := max(b.Dx()/bloomDownscale, 1)
	sh := max(b.Dy()/bloomDownscale, 1)
	small := transform.Resize(bright, sw, sh, transform.Linear)
	small = blur.Gaussian(small, bloomRadius)

	glow := image.NewRGBA(b)
	draw.BiLinear.Scale(glow, b, small, small.Bounds(), draw.Src, nil)

	k := intensity
	glow = adjust.Apply(glow, func(c color.RGBA) color.RGBA {
		return color.RGBA{
			R: clampUint8(float32(float64(c.R) * k)),
			G: clampUint8(float32(float64(c.G) * k)),
			B: clampUint8(float32(float64(c.B) * k)),
			A: 255,
		}
	})

	out := blend.Add(src, glow)
	// Keep the source alpha; blend.Add sums it.
	for y := 0; y < b.Dy(); y++ {
		so := y * src.Stride
		do := y * out.Stride
		for x := 0; x < b.Dx(); x++ {
			out.Pix[do+x*4+3] = src.Pix[so+x*4+3]
		}
	}
	return out
}

// luminance returns Rec. 709 luma in [0, 1].
func luminance(c color.RGBA) float64 {
	return (0.2126*float64(c.R) + 0.7152*float64(c.G) + 0.0722*float64(c.B)) / 255
}
