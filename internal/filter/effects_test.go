package filter

import (
	"image/color"
	"testing"
)

func TestVignette(t *testing.T) {
	c := color.RGBA{R: 200, G: 200, B: 200, A: 255}

	neutral := solid(32, 32, c)
	Vignette(neutral, 0.4, 0)
	if p := neutral.RGBAAt(0, 0); p != c {
		t.Errorf("neutral vignette corner = %v, want %v", p, c)
	}

	dark := solid(32, 32, c)
	Vignette(dark, 0, 1)
	center := dark.RGBAAt(16, 16)
	corner := dark.RGBAAt(0, 0)
	if corner.R >= center.R {
		t.Errorf("corner %v not darker than center %v", corner, center)
	}
	if corner.A != 255 {
		t.Errorf("alpha = %d, want 255", corner.A)
	}
}

func TestSmoothstep(t *testing.T) {
	tests := []struct {
		e0, e1, x, want float64
	}{
		{0, 1, -1, 0},
		{0, 1, 2, 1},
		{0, 1, 0.5, 0.5},
		{1, 0, 0, 1}, // reversed edges
		{0.5, 0.5, 0.4, 0},
		{0.5, 0.5, 0.6, 1},
	}
	for _, tt := range tests {
		if got := smoothstep(tt.e0, tt.e1, tt.x); got != tt.want {
			t.Errorf("smoothstep(%v, %v, %v) = %v, want %v", tt.e0, tt.e1, tt.x, got, tt.want)
		}
	}
}

func TestChromaticAberration(t *testing.T) {
	src := gradient(64, 8)

	same := ChromaticAberration(src, [2]float64{}, true, 0.15)
	for i := range src.Pix {
		if same.Pix[i] != src.Pix[i] {
			t.Fatal("zero offset changed the image")
		}
	}

	shifted := ChromaticAberration(src, [2]float64{0.1, 0}, false, 0)
	p := shifted.RGBAAt(20, 4)
	o := src.RGBAAt(20, 4)
	if p.R <= o.R {
		t.Errorf("red not sampled from the right: %d <= %d", p.R, o.R)
	}
	if p.G != o.G {
		t.Errorf("green changed: %d != %d", p.G, o.G)
	}
}

func TestChromaticAberrationRadialCenter(t *testing.T) {
	src := gradient(65, 65)
	got := ChromaticAberration(src, [2]float64{0.01, 0.01}, true, 0.15)
	if got.RGBAAt(32, 32) != src.RGBAAt(32, 32) {
		t.Error("radial modulation shifted the centre pixel")
	}
}

func TestGrain(t *testing.T) {
	c := color.RGBA{R: 120, G: 120, B: 120, A: 255}

	img := solid(16, 16, c)
	Grain(img, 0)
	if img.RGBAAt(3, 3) != c {
		t.Error("zero opacity changed the image")
	}

	Grain(img, 1)
	changed := false
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			p := img.RGBAAt(x, y)
			if p.R < c.R {
				t.Fatalf("screen blend darkened (%d,%d): %v", x, y, p)
			}
			if p != c {
				changed = true
			}
		}
	}
	if !changed {
		t.Error("full grain left the image unchanged")
	}
}

func TestBloom(t *testing.T) {
	img := solid(64, 64, color.RGBA{R: 10, G: 10, B: 10, A: 255})
	for y := 28; y < 36; y++ {
		for x := 28; x < 36; x++ {
			img.SetRGBA(x, y, color.RGBA{R: 255, G: 255, B: 255, A: 255})
		}
	}

	off := Bloom(img, 0)
	if off.RGBAAt(20, 32) != img.RGBAAt(20, 32) {
		t.Error("zero intensity changed the image")
	}

	on := Bloom(img, 2)
	if on.RGBAAt(24, 32).R <= img.RGBAAt(24, 32).R {
		t.Errorf("no glow next to the bright square: %v", on.RGBAAt(24, 32))
	}
	if on.RGBAAt(0, 0).A != 255 {
		t.Error("bloom changed alpha")
	}
}

func TestDepthOfField(t *testing.T) {
	src := gradient(32, 32)
	// Checkerboard detail so blur is visible.
	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			if (x+y)%2 == 0 {
				src.SetRGBA(x, y, color.RGBA{A: 255})
			}
		}
	}
	depth := make([]float32, 32*32)
	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			if x < 16 {
				depth[y*32+x] = 5 // in focus
			} else {
				depth[y*32+x] = 50
			}
		}
	}

	got := DepthOfField(src, depth, 5, 2, 2)

	if got.RGBAAt(8, 8) != src.RGBAAt(8, 8) {
		t.Errorf("in-focus pixel changed: %v != %v", got.RGBAAt(8, 8), src.RGBAAt(8, 8))
	}
	if got.RGBAAt(24, 8) == src.RGBAAt(24, 8) {
		t.Error("out-of-focus pixel unchanged")
	}

	short := DepthOfField(src, depth[:10], 5, 2, 2)
	if short.RGBAAt(24, 8) != src.RGBAAt(24, 8) {
		t.Error("short depth buffer should pass through")
	}
}
