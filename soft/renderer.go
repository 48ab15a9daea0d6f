// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package soft

import (
	"context"
	"fmt"
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/photomode/cameractl"
	"github.com/gogpu/photomode/focus"
	"github.com/gogpu/photomode/internal/parallel"
	"github.com/gogpu/photomode/render"
)

// rowBand is the number of rows traced per parallel work item.
const rowBand = 8

// Supersampling offsets inside a pixel.
var (
	centerSample = [][2]float64{{0.5, 0.5}}
	gridSamples  = [][2]float64{{0.25, 0.25}, {0.75, 0.25}, {0.25, 0.75}, {0.75, 0.75}}
)

// Renderer ray casts a Scene into Targets. The display is an internal
// target sized to the drawing buffer.
//
// Renderer is not safe for concurrent use.
type Renderer struct {
	width, height           int
	styleWidth, styleHeight int
	ratio                   float64

	target render.Target
	screen *Target
	frames int
}

// NewRenderer returns a renderer with the given logical size and a pixel
// ratio of 1.
func NewRenderer(width, height int) *Renderer {
	return &Renderer{
		width:       width,
		height:      height,
		styleWidth:  width,
		styleHeight: height,
		ratio:       1,
	}
}

// RenderTarget returns the active target, or nil for the display.
func (r *Renderer) RenderTarget() render.Target { return r.target }

// SetRenderTarget selects t, or the display when t is nil.
func (r *Renderer) SetRenderTarget(t render.Target) { r.target = t }

// PixelRatio returns the device pixel ratio.
func (r *Renderer) PixelRatio() float64 { return r.ratio }

// SetPixelRatio sets the device pixel ratio. Non-positive values select 1.
func (r *Renderer) SetPixelRatio(ratio float64) {
	if ratio <= 0 || math.IsNaN(ratio) {
		ratio = 1
	}
	r.ratio = ratio
}

// Size returns the logical viewport size.
func (r *Renderer) Size() (int, int) { return r.width, r.height }

// SetSize sets the logical size. The presentation size follows only when
// updateStyle is set.
func (r *Renderer) SetSize(width, height int, updateStyle bool) {
	r.width, r.height = width, height
	if updateStyle {
		r.styleWidth, r.styleHeight = width, height
	}
}

// StyleSize returns the on-screen presentation size.
func (r *Renderer) StyleSize() (int, int) { return r.styleWidth, r.styleHeight }

// DrawingBufferSize returns the logical size scaled by the pixel ratio,
// rounded down.
func (r *Renderer) DrawingBufferSize() (int, int) {
	return int(math.Floor(float64(r.width) * r.ratio)), int(math.Floor(float64(r.height) * r.ratio))
}

// NewTarget allocates a soft target.
func (r *Renderer) NewTarget(desc render.TargetDescriptor) (render.Target, error) {
	return NewTarget(desc)
}

// ReadTargetPixels returns t's color buffer as RGBA rows, bottom row first.
func (r *Renderer) ReadTargetPixels(ctx context.Context, t render.Target) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	st, err := asTarget(t)
	if err != nil {
		return nil, err
	}
	return st.pixels(), nil
}

// Screen returns the display buffer, allocating or resizing it to the
// current drawing buffer.
func (r *Renderer) Screen() *Target {
	w, h := r.DrawingBufferSize()
	w, h = max(w, 1), max(h, 1)
	if r.screen == nil || r.screen.Width() != w || r.screen.Height() != h {
		r.screen, _ = NewTarget(render.TargetDescriptor{
			Label:  "screen",
			Width:  w,
			Height: h,
			Format: gputypes.TextureFormatRGBA8Unorm,
		})
	}
	return r.screen
}

// Frames returns how many times Render has run.
func (r *Renderer) Frames() int { return r.frames }

// output returns the active target as a *Target.
func (r *Renderer) output() (*Target, error) {
	if r.target == nil {
		return r.Screen(), nil
	}
	return asTarget(r.target)
}

// Render traces scene from camera into the active target.
func (r *Renderer) Render(scene render.Scene, camera render.Camera) error {
	s, ok := scene.(*Scene)
	if !ok || s == nil {
		return fmt.Errorf("%T: %w", scene, ErrScene)
	}
	cam, ok := camera.(focus.Camera)
	if !ok {
		return fmt.Errorf("%T: %w", camera, ErrCamera)
	}
	dst, err := r.output()
	if err != nil {
		return err
	}
	trace(s, cam, dst)
	r.frames++
	logger.Load().Debug("soft: rendered",
		"width", dst.Width(), "height", dst.Height(), "samples", dst.SampleCount())
	return nil
}

// CopyTarget copies src into dst, scaling when the sizes differ.
func (r *Renderer) CopyTarget(dst, src render.Target) error {
	d, err := asTarget(dst)
	if err != nil {
		return fmt.Errorf("copy destination: %w", err)
	}
	s, err := asTarget(src)
	if err != nil {
		return fmt.Errorf("copy source: %w", err)
	}
	d.store(s.color, s)
	return nil
}

// trace fills dst with the scene as seen through cam.
func trace(s *Scene, cam focus.Camera, dst *Target) {
	w, h := dst.Width(), dst.Height()
	view := cameractl.ViewMatrix(cam)
	vp := cam.ProjectionMatrix().Mul4(view)
	inv := vp.Inv()

	samples := centerSample
	if dst.SampleCount() >= render.CaptureSampleCount {
		samples = gridSamples
	}
	far := farDistance(cam)

	parallel.Default().Rows(h, rowBand, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			for x := 0; x < w; x++ {
				var sum [3]float64
				depth, dist := 1.0, far
				for _, o := range samples {
					nx := (float64(x)+o[0])/float64(w)*2 - 1
					ny := 1 - (float64(y)+o[1])/float64(h)*2
					c, d, vd := traceSample(s, vp, view, inv, nx, ny, far)
					sum[0] += c[0]
					sum[1] += c[1]
					sum[2] += c[2]
					depth = math.Min(depth, d)
					dist = math.Min(dist, vd)
				}
				n := float64(len(samples))
				dst.color.SetRGBA(x, y, color.RGBA{
					R: toByte(sum[0] / n),
					G: toByte(sum[1] / n),
					B: toByte(sum[2] / n),
					A: 255,
				})
				dst.depth[y*w+x] = float32(depth)
				dst.dist[y*w+x] = float32(dist)
			}
		}
	})
}

// traceSample casts one ray through (nx, ny) in normalized device
// coordinates and returns its color, device depth and view distance.
func traceSample(s *Scene, vp, view, inv mgl64.Mat4, nx, ny, far float64) ([3]float64, float64, float64) {
	near := unproject(inv, mgl64.Vec3{nx, ny, -1})
	end := unproject(inv, mgl64.Vec3{nx, ny, 1})
	span := end.Sub(near)
	ray := Ray{Origin: near, Dir: span.Normalize()}

	h, ok := s.Trace(ray, span.Len())
	if !ok {
		bg := s.Background
		return [3]float64{float64(bg.R), float64(bg.G), float64(bg.B)}, 1, far
	}
	p := ray.At(h.T)
	clip := vp.Mul4x1(p.Vec4(1))
	depth := clamp01(clip.Z()/clip.W()*0.5 + 0.5)
	dist := -view.Mul4x1(p.Vec4(1)).Z()
	return s.Shade(h), depth, dist
}

func unproject(inv mgl64.Mat4, ndc mgl64.Vec3) mgl64.Vec3 {
	v := inv.Mul4x1(ndc.Vec4(1))
	return v.Vec3().Mul(1 / v.W())
}

func farDistance(cam focus.Camera) float64 {
	if p, ok := cam.(interface{ Far() float64 }); ok {
		return p.Far()
	}
	return math.MaxFloat32
}

func clamp01(v float64) float64 { return math.Max(0, math.Min(1, v)) }

func toByte(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v + 0.5)
}

var (
	_ render.Renderer = (*Renderer)(nil)
	_ render.Blitter  = (*Renderer)(nil)
)
