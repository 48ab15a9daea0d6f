// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package soft

import (
	"context"
	"errors"
	"image/color"
	"testing"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/photomode/render"
)

func TestDrawingBufferSize(t *testing.T) {
	tests := []struct {
		w, h         int
		ratio        float64
		wantW, wantH int
	}{
		{800, 600, 1, 800, 600},
		{101, 51, 1.5, 151, 76},
		{100, 100, 0, 100, 100},
		{10, 10, 2.25, 22, 22},
	}
	for _, tt := range tests {
		r := NewRenderer(tt.w, tt.h)
		r.SetPixelRatio(tt.ratio)
		if w, h := r.DrawingBufferSize(); w != tt.wantW || h != tt.wantH {
			t.Errorf("DrawingBufferSize(%dx%d @%v) = %dx%d, want %dx%d", tt.w, tt.h, tt.ratio, w, h, tt.wantW, tt.wantH)
		}
	}
}

func TestSetSizeStyle(t *testing.T) {
	r := NewRenderer(640, 480)
	r.SetSize(1920, 1080, false)
	if w, h := r.StyleSize(); w != 640 || h != 480 {
		t.Errorf("StyleSize() = %dx%d after SetSize(..., false), want 640x480", w, h)
	}
	r.SetSize(320, 240, true)
	if w, h := r.StyleSize(); w != 320 || h != 240 {
		t.Errorf("StyleSize() = %dx%d, want 320x240", w, h)
	}
}

func TestRenderToScreen(t *testing.T) {
	r := NewRenderer(64, 48)
	cam := newTestCamera(64, 48)

	if err := r.Render(sphereScene(), cam); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	screen := r.Screen()
	if got := screen.Image().RGBAAt(32, 24); got != red {
		t.Errorf("center = %v, want %v", got, red)
	}
	if got := screen.Image().RGBAAt(0, 0); got != (color.RGBA{A: 255}) {
		t.Errorf("corner = %v, want background", got)
	}
	if d := screen.DepthAt(32, 24); d <= 0 || d >= 1 {
		t.Errorf("center depth = %v, want in (0,1)", d)
	}
	if d := screen.DepthAt(0, 0); d != 1 {
		t.Errorf("corner depth = %v, want 1", d)
	}
	if d := screen.DistanceAt(32, 24); !floatNear(d, 4, 0.01) {
		t.Errorf("center distance = %v, want 4", d)
	}
	if r.Frames() != 1 {
		t.Errorf("Frames() = %d, want 1", r.Frames())
	}
}

func TestRenderSupersampledTarget(t *testing.T) {
	r := NewRenderer(64, 48)
	tgt, err := r.NewTarget(render.CaptureTargetDescriptor(64, 48))
	if err != nil {
		t.Fatalf("NewTarget() error = %v", err)
	}
	r.SetRenderTarget(tgt)
	if err := r.Render(sphereScene(), newTestCamera(64, 48)); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	img := tgt.(*Target).Image()
	if got := img.RGBAAt(32, 24); got != red {
		t.Errorf("center = %v, want %v", got, red)
	}

	// Some pixel on the silhouette must mix sphere and background.
	mixed := false
	for x := 0; x < 64 && !mixed; x++ {
		if c := img.RGBAAt(x, 24); c.R > 0 && c.R < 255 {
			mixed = true
		}
	}
	if !mixed {
		t.Error("no antialiased pixel on the sphere edge")
	}
	if r.Screen().Image().RGBAAt(32, 24) == red {
		t.Error("render into a target also drew to the screen")
	}
}

func TestRenderErrors(t *testing.T) {
	r := NewRenderer(8, 8)
	if err := r.Render("not a scene", newTestCamera(8, 8)); !errors.Is(err, ErrScene) {
		t.Errorf("Render(string) error = %v, want ErrScene", err)
	}
	if err := r.Render(sphereScene(), nil); !errors.Is(err, ErrCamera) {
		t.Errorf("Render(nil camera) error = %v, want ErrCamera", err)
	}
}

func TestNewTarget(t *testing.T) {
	tests := []struct {
		name    string
		desc    render.TargetDescriptor
		wantErr error
		format  gputypes.TextureFormat
	}{
		{"capture", render.CaptureTargetDescriptor(4, 4), nil, gputypes.TextureFormatRGBA8Unorm},
		{"bgra", render.TargetDescriptor{Width: 4, Height: 4, Format: gputypes.TextureFormatBGRA8Unorm}, nil, gputypes.TextureFormatBGRA8Unorm},
		{"undefined", render.TargetDescriptor{Width: 4, Height: 4}, nil, gputypes.TextureFormatRGBA8Unorm},
		{"zero width", render.TargetDescriptor{Height: 4}, render.ErrInvalidSize, gputypes.TextureFormatUndefined},
		{"r8", render.TargetDescriptor{Width: 4, Height: 4, Format: gputypes.TextureFormatR8Unorm}, ErrFormat, gputypes.TextureFormatUndefined},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tgt, err := NewTarget(tt.desc)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("NewTarget() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewTarget() error = %v", err)
			}
			if tgt.Format() != tt.format {
				t.Errorf("Format() = %v, want %v", tgt.Format(), tt.format)
			}
			if tgt.SampleCount() == 0 {
				t.Error("SampleCount() = 0")
			}
		})
	}
}

func TestReadTargetPixelsBottomUp(t *testing.T) {
	r := NewRenderer(3, 2)
	tgt, _ := NewTarget(render.TargetDescriptor{Width: 3, Height: 2})
	for x := 0; x < 3; x++ {
		tgt.Image().SetRGBA(x, 0, red)
	}

	pixels, err := r.ReadTargetPixels(context.Background(), tgt)
	if err != nil {
		t.Fatalf("ReadTargetPixels() error = %v", err)
	}
	if len(pixels) != 3*2*4 {
		t.Fatalf("len = %d, want 24", len(pixels))
	}
	if pixels[0] != 0 || pixels[12] != 255 {
		t.Errorf("rows not bottom-up: first row R = %d, last row R = %d", pixels[0], pixels[12])
	}
}

func TestReadTargetPixelsErrors(t *testing.T) {
	r := NewRenderer(2, 2)
	ctx := context.Background()

	tgt, _ := NewTarget(render.TargetDescriptor{Width: 2, Height: 2})
	tgt.Dispose()
	tgt.Dispose()
	if _, err := r.ReadTargetPixels(ctx, tgt); !errors.Is(err, ErrDisposed) {
		t.Errorf("disposed target error = %v, want ErrDisposed", err)
	}
	if _, err := r.ReadTargetPixels(ctx, nil); !errors.Is(err, ErrForeignTarget) {
		t.Errorf("nil target error = %v, want ErrForeignTarget", err)
	}

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	live, _ := NewTarget(render.TargetDescriptor{Width: 2, Height: 2})
	if _, err := r.ReadTargetPixels(cancelled, live); !errors.Is(err, context.Canceled) {
		t.Errorf("cancelled error = %v, want context.Canceled", err)
	}
}

func TestCopyTargetScales(t *testing.T) {
	r := NewRenderer(4, 4)
	src, _ := NewTarget(render.TargetDescriptor{Width: 4, Height: 4})
	src.clear(red, 7)
	dst, _ := NewTarget(render.TargetDescriptor{Width: 8, Height: 2})

	if err := r.CopyTarget(dst, src); err != nil {
		t.Fatalf("CopyTarget() error = %v", err)
	}
	if got := dst.Image().RGBAAt(7, 1); got != red {
		t.Errorf("scaled pixel = %v, want %v", got, red)
	}
	if d := dst.DistanceAt(5, 1); d != 7 {
		t.Errorf("scaled distance = %v, want 7", d)
	}
	if err := r.CopyTarget(dst, nil); !errors.Is(err, ErrForeignTarget) {
		t.Errorf("CopyTarget(nil src) error = %v, want ErrForeignTarget", err)
	}
}
