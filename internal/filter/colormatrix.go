package filter

import (
	"image"
	"math"

	"github.com/gogpu/photomode/internal/parallel"
)

// ColorMatrix is a 4x5 colour transform in row-major order:
//
//	[R']   [a00 a01 a02 a03 a04]   [R]
//	[G'] = [a10 a11 a12 a13 a14] * [G]
//	[B']   [a20 a21 a22 a23 a24]   [B]
//	[A']   [a30 a31 a32 a33 a34]   [A]
//	                               [1]
//
// Channels are in [0, 255]; the fifth column is a bias in the same units.
type ColorMatrix [20]float32

// Identity returns the matrix that leaves colours unchanged.
func Identity() ColorMatrix {
	return ColorMatrix{
		1, 0, 0, 0, 0,
		0, 1, 0, 0, 0,
		0, 0, 1, 0, 0,
		0, 0, 0, 1, 0,
	}
}

// BrightnessContrast shifts colours by brightness and scales them around
// mid-grey by contrast. Both are in [-1, 1]; positive contrast divides by
// 1-c, negative contrast multiplies by 1+c.
func BrightnessContrast(brightness, contrast float64) ColorMatrix {
	var f float64
	if contrast > 0 {
		f = 1 / math.Max(1-contrast, 1e-3)
	} else {
		f = 1 + contrast
	}
	bias := float32(((brightness-0.5)*f + 0.5) * 255)
	s := float32(f)
	return ColorMatrix{
		s, 0, 0, 0, bias,
		0, s, 0, 0, bias,
		0, 0, s, 0, bias,
		0, 0, 0, 1, 0,
	}
}

// HueRotate rotates colours around the grey axis by radians.
func HueRotate(radians float64) ColorMatrix {
	c, s := math.Cos(radians), math.Sin(radians)
	// Rodrigues rotation about (1,1,1)/sqrt(3).
	k := (1 - c) / 3
	q := s / math.Sqrt(3)
	d := float32(c + k)
	p := float32(k - q)
	n := float32(k + q)
	return ColorMatrix{
		d, p, n, 0, 0,
		n, d, p, 0, 0,
		p, n, d, 0, 0,
		0, 0, 0, 1, 0,
	}
}

// Saturation pulls colours toward (negative) or away from (positive) their
// channel average. amount is in [-1, 1]; -1 is greyscale.
func Saturation(amount float64) ColorMatrix {
	var k float64
	if amount > 0 {
		k = 1 - 1/(1.001-amount)
	} else {
		k = -amount
	}
	keep := float32(1 - k)
	avg := float32(k / 3)
	return ColorMatrix{
		keep + avg, avg, avg, 0, 0,
		avg, keep + avg, avg, 0, 0,
		avg, avg, keep + avg, 0, 0,
		0, 0, 0, 1, 0,
	}
}

// Then returns the matrix that applies m first and then next.
func (m ColorMatrix) Then(next ColorMatrix) ColorMatrix {
	var r ColorMatrix
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += next[row*5+k] * m[k*5+col]
			}
			r[row*5+col] = sum
		}
		r[row*5+4] = next[row*5+0]*m[4] + next[row*5+1]*m[9] +
			next[row*5+2]*m[14] + next[row*5+3]*m[19] + next[row*5+4]
	}
	return r
}

// IsIdentity reports whether m leaves colours unchanged.
func (m ColorMatrix) IsIdentity() bool { return m == Identity() }

// Apply transforms img in place.
func (m ColorMatrix) Apply(img *image.RGBA) {
	if m.IsIdentity() {
		return
	}
	w := img.Rect.Dx()
	parallel.Default().Rows(img.Rect.Dy(), rowBand, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			row := img.Pix[y*img.Stride : y*img.Stride+w*4]
			for i := 0; i < len(row); i += 4 {
				r := float32(row[i+0])
				g := float32(row[i+1])
				b := float32(row[i+2])
				a := float32(row[i+3])
				row[i+0] = clampUint8(m[0]*r + m[1]*g + m[2]*b + m[3]*a + m[4])
				row[i+1] = clampUint8(m[5]*r + m[6]*g + m[7]*b + m[8]*a + m[9])
				row[i+2] = clampUint8(m[10]*r + m[11]*g + m[12]*b + m[13]*a + m[14])
				row[i+3] = clampUint8(m[15]*r + m[16]*g + m[17]*b + m[18]*a + m[19])
			}
		}
	})
}
