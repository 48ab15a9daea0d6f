package filter

import (
	"image/color"
	"math"
	"testing"
)

func TestNeutralMatrices(t *testing.T) {
	tests := []struct {
		name string
		m    ColorMatrix
	}{
		{"identity", Identity()},
		{"brightness contrast zero", BrightnessContrast(0, 0)},
		{"hue zero", HueRotate(0)},
		{"saturation zero", Saturation(0)},
		{"full turn", HueRotate(2 * math.Pi)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := gradient(8, 8)
			want := gradient(8, 8)
			tt.m.Apply(img)
			for i := range img.Pix {
				if absDiff(img.Pix[i], want.Pix[i]) > 1 {
					t.Fatalf("Pix[%d] = %d, want %d", i, img.Pix[i], want.Pix[i])
				}
			}
		})
	}
}

func TestBrightnessContrast(t *testing.T) {
	tests := []struct {
		name     string
		b, c     float64
		in, want uint8
	}{
		{"brighten", 0.2, 0, 100, 151},
		{"darken", -0.2, 0, 100, 49},
		{"contrast up pushes from grey", 0, 0.5, 200, 255},
		{"contrast down pulls to grey", 0, -0.5, 200, 164},
		{"grey fixed under contrast", 0, 0.5, 128, 128},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := solid(2, 2, color.RGBA{R: tt.in, G: tt.in, B: tt.in, A: 255})
			BrightnessContrast(tt.b, tt.c).Apply(img)
			if got := img.RGBAAt(0, 0).R; absDiff(got, tt.want) > 1 {
				t.Errorf("R = %d, want %d", got, tt.want)
			}
			if a := img.RGBAAt(0, 0).A; a != 255 {
				t.Errorf("A = %d, want 255", a)
			}
		})
	}
}

func TestSaturation(t *testing.T) {
	c := color.RGBA{R: 240, G: 60, B: 30, A: 255}

	grey := solid(1, 1, c)
	Saturation(-1).Apply(grey)
	p := grey.RGBAAt(0, 0)
	if absDiff(p.R, p.G) > 1 || absDiff(p.G, p.B) > 1 || absDiff(p.R, 110) > 1 {
		t.Errorf("Saturation(-1) = %v, want grey 110", p)
	}

	vivid := solid(1, 1, c)
	Saturation(0.5).Apply(vivid)
	q := vivid.RGBAAt(0, 0)
	if int(q.R)-int(q.B) <= int(c.R)-int(c.B) {
		t.Errorf("Saturation(0.5) = %v, spread did not grow", q)
	}
}

func TestHueRotatePreservesGrey(t *testing.T) {
	img := solid(1, 1, color.RGBA{R: 90, G: 90, B: 90, A: 255})
	HueRotate(1.3).Apply(img)
	if p := img.RGBAAt(0, 0); !near(p, color.RGBA{R: 90, G: 90, B: 90, A: 255}, 1) {
		t.Errorf("HueRotate(grey) = %v", p)
	}
}

func TestHueRotateThirdTurnCyclesChannels(t *testing.T) {
	img := solid(1, 1, color.RGBA{R: 255, A: 255})
	HueRotate(2 * math.Pi / 3).Apply(img)
	if p := img.RGBAAt(0, 0); !near(p, color.RGBA{G: 255, A: 255}, 1) {
		t.Errorf("HueRotate(red, 120deg) = %v, want green", p)
	}
}

func TestThen(t *testing.T) {
	a := BrightnessContrast(-0.1, -0.2)
	b := Saturation(-0.4)

	seq := gradient(6, 6)
	a.Apply(seq)
	b.Apply(seq)

	combined := gradient(6, 6)
	a.Then(b).Apply(combined)

	for i := range seq.Pix {
		if absDiff(seq.Pix[i], combined.Pix[i]) > 2 {
			t.Fatalf("Pix[%d]: sequential %d, combined %d", i, seq.Pix[i], combined.Pix[i])
		}
	}
	if !Identity().Then(Identity()).IsIdentity() {
		t.Error("Identity().Then(Identity()) is not identity")
	}
}
