// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gpu

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
	"github.com/gogpu/wgpu/hal/noop"

	"github.com/gogpu/photomode/render"
)

// createNoopDevice creates a noop HAL device for tests that need one.
func createNoopDevice(t *testing.T) (hal.Device, hal.Queue, func()) {
	t.Helper()
	api := noop.API{}
	instance, err := api.CreateInstance(nil)
	if err != nil {
		t.Fatalf("CreateInstance failed: %v", err)
	}
	adapters := instance.EnumerateAdapters(nil)
	openDev, err := adapters[0].Adapter.Open(0, gputypes.DefaultLimits())
	if err != nil {
		instance.Destroy()
		t.Fatalf("Open failed: %v", err)
	}
	cleanup := func() {
		openDev.Device.Destroy()
		instance.Destroy()
	}
	return openDev.Device, openDev.Queue, cleanup
}

func newTestDevice(t *testing.T) *Device {
	t.Helper()
	device, queue, cleanup := createNoopDevice(t)
	t.Cleanup(cleanup)
	d, err := NewDevice(device, queue)
	if err != nil {
		t.Fatalf("NewDevice failed: %v", err)
	}
	return d
}

type halHandle struct {
	render.NullDeviceHandle
	device, queue any
	format        gputypes.TextureFormat
}

func (h halHandle) HalDevice() any                        { return h.device }
func (h halHandle) HalQueue() any                         { return h.queue }
func (h halHandle) SurfaceFormat() gputypes.TextureFormat { return h.format }

func TestNewDeviceNil(t *testing.T) {
	if _, err := NewDevice(nil, nil); !errors.Is(err, ErrNoDevice) {
		t.Errorf("NewDevice(nil, nil) error = %v, want ErrNoDevice", err)
	}
}

func TestFromProvider(t *testing.T) {
	device, queue, cleanup := createNoopDevice(t)
	defer cleanup()

	if _, err := FromProvider(nil); !errors.Is(err, ErrNoDevice) {
		t.Errorf("FromProvider(nil) error = %v, want ErrNoDevice", err)
	}
	if _, err := FromProvider(render.NullDeviceHandle{}); !errors.Is(err, ErrNoDevice) {
		t.Errorf("FromProvider(null) error = %v, want ErrNoDevice", err)
	}
	if _, err := FromProvider(halHandle{device: "device", queue: queue}); !errors.Is(err, ErrNoDevice) {
		t.Errorf("FromProvider(bad device) error = %v, want ErrNoDevice", err)
	}

	h := halHandle{device: device, queue: queue, format: gputypes.TextureFormatBGRA8Unorm}
	d, err := FromProvider(h)
	if err != nil {
		t.Fatalf("FromProvider failed: %v", err)
	}
	if d.Format() != gputypes.TextureFormatBGRA8Unorm {
		t.Errorf("Format() = %v, want BGRA8Unorm", d.Format())
	}
	if d.Handle() == nil {
		t.Error("Handle() = nil")
	}
}

func TestNewTargetCapture(t *testing.T) {
	d := newTestDevice(t)

	tgt, err := d.NewTarget(render.CaptureTargetDescriptor(320, 200))
	if err != nil {
		t.Fatalf("NewTarget failed: %v", err)
	}
	if tgt.Width() != 320 || tgt.Height() != 200 {
		t.Errorf("size = %dx%d, want 320x200", tgt.Width(), tgt.Height())
	}
	if tgt.SampleCount() != render.CaptureSampleCount {
		t.Errorf("SampleCount() = %d, want %d", tgt.SampleCount(), render.CaptureSampleCount)
	}
	view, resolve := tgt.ColorAttachment()
	if view == nil || resolve == nil {
		t.Error("multisampled target must have a color view and a resolve view")
	}
	if tgt.DepthView() == nil {
		t.Error("expected depth view")
	}

	tgt.Dispose()
	tgt.Dispose()
	if !tgt.Disposed() {
		t.Error("Disposed() = false after Dispose")
	}
	if tgt.ResolveTexture() != nil || tgt.DepthView() != nil {
		t.Error("textures not released")
	}
}

func TestNewTargetSingleSample(t *testing.T) {
	d := newTestDevice(t)

	tgt, err := d.NewTarget(render.TargetDescriptor{Width: 8, Height: 8})
	if err != nil {
		t.Fatalf("NewTarget failed: %v", err)
	}
	defer tgt.Dispose()

	if tgt.SampleCount() != 1 {
		t.Errorf("SampleCount() = %d, want 1", tgt.SampleCount())
	}
	if tgt.Format() != gputypes.TextureFormatRGBA8Unorm {
		t.Errorf("Format() = %v, want RGBA8Unorm", tgt.Format())
	}
	view, resolve := tgt.ColorAttachment()
	if view == nil || resolve != nil {
		t.Error("single-sample target must draw straight into the resolve view")
	}
	if tgt.DepthView() != nil {
		t.Error("depth view allocated without Depth")
	}
}

func TestNewTargetInvalidSize(t *testing.T) {
	d := newTestDevice(t)
	if _, err := d.NewTarget(render.TargetDescriptor{Width: 0, Height: 4}); !errors.Is(err, render.ErrInvalidSize) {
		t.Errorf("NewTarget(0x4) error = %v, want ErrInvalidSize", err)
	}
}

func TestTargetsReadback(t *testing.T) {
	ts := NewTargets(newTestDevice(t))
	ctx := context.Background()

	tgt, err := ts.NewTarget(render.CaptureTargetDescriptor(33, 7))
	if err != nil {
		t.Fatalf("NewTarget failed: %v", err)
	}
	defer tgt.Dispose()

	if err := ts.Device().Clear(ctx, tgt.(*Target), gputypes.Color{R: 1, A: 1}); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	pixels, err := ts.ReadTargetPixels(ctx, tgt)
	if err != nil {
		t.Fatalf("ReadTargetPixels failed: %v", err)
	}
	if len(pixels) != 33*7*4 {
		t.Errorf("len(pixels) = %d, want %d", len(pixels), 33*7*4)
	}
	if _, ok := any(ts).(render.DeviceOwner); !ok {
		t.Error("Targets does not implement DeviceOwner")
	}
}

func TestTargetsErrors(t *testing.T) {
	ctx := context.Background()
	var empty Targets
	if _, err := empty.NewTarget(render.CaptureTargetDescriptor(4, 4)); !errors.Is(err, ErrNoDevice) {
		t.Errorf("NewTarget without device error = %v, want ErrNoDevice", err)
	}
	if empty.DeviceHandle() != nil {
		t.Error("DeviceHandle() without device should be nil")
	}

	ts := NewTargets(newTestDevice(t))
	if _, err := ts.ReadTargetPixels(ctx, nil); !errors.Is(err, ErrForeignTarget) {
		t.Errorf("ReadTargetPixels(nil) error = %v, want ErrForeignTarget", err)
	}

	tgt, err := ts.NewTarget(render.TargetDescriptor{Width: 2, Height: 2})
	if err != nil {
		t.Fatalf("NewTarget failed: %v", err)
	}
	tgt.Dispose()
	if _, err := ts.ReadTargetPixels(ctx, tgt); !errors.Is(err, ErrForeignTarget) {
		t.Errorf("ReadTargetPixels(disposed) error = %v, want ErrForeignTarget", err)
	}

	live, _ := ts.NewTarget(render.TargetDescriptor{Width: 2, Height: 2})
	defer live.Dispose()
	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	if _, err := ts.ReadTargetPixels(cancelled, live); !errors.Is(err, context.Canceled) {
		t.Errorf("ReadTargetPixels(cancelled) error = %v, want context.Canceled", err)
	}
}

// tokenHandle hands out HAL objects through the gpucontext tokens.
type tokenHandle struct {
	render.NullDeviceHandle
	device hal.Device
	queue  hal.Queue
}

func (h tokenHandle) Device() gpucontext.Device { return h.device }
func (h tokenHandle) Queue() gpucontext.Queue   { return h.queue }

func TestFromProviderTokens(t *testing.T) {
	device, queue, cleanup := createNoopDevice(t)
	defer cleanup()

	d, err := FromProvider(tokenHandle{device: device, queue: queue})
	if err != nil {
		t.Fatalf("FromProvider failed: %v", err)
	}
	if d.Format() != gputypes.TextureFormatRGBA8Unorm {
		t.Errorf("Format() = %v, want RGBA8Unorm", d.Format())
	}
	if _, err := FromProvider(tokenHandle{device: device}); !errors.Is(err, ErrNoDevice) {
		t.Errorf("FromProvider(no queue) error = %v, want ErrNoDevice", err)
	}
}

func TestTargetsCopy(t *testing.T) {
	ts := NewTargets(newTestDevice(t))

	src, err := ts.NewTarget(render.TargetDescriptor{Width: 16, Height: 9})
	if err != nil {
		t.Fatalf("NewTarget failed: %v", err)
	}
	defer src.Dispose()
	dst, err := ts.NewTarget(render.CaptureTargetDescriptor(16, 9))
	if err != nil {
		t.Fatalf("NewTarget failed: %v", err)
	}
	defer dst.Dispose()

	if err := ts.CopyTarget(dst, src); err != nil {
		t.Errorf("CopyTarget() error = %v", err)
	}
	if _, ok := any(ts).(render.Blitter); !ok {
		t.Error("Targets does not implement Blitter")
	}

	// A capture pass can drive the copy.
	p := render.NewCapturePass(dst)
	if err := p.Render(context.Background(), blitRenderer{ts}, nil, src, 0); err != nil {
		t.Errorf("CapturePass.Render() error = %v", err)
	}
}

// blitRenderer is the smallest host renderer built on Targets.
type blitRenderer struct {
	Targets
}

func (blitRenderer) RenderTarget() render.Target              { return nil }
func (blitRenderer) SetRenderTarget(render.Target)            {}
func (blitRenderer) PixelRatio() float64                      { return 1 }
func (blitRenderer) SetPixelRatio(float64)                    {}
func (blitRenderer) Size() (int, int)                         { return 16, 9 }
func (blitRenderer) SetSize(int, int, bool)                   {}
func (blitRenderer) DrawingBufferSize() (int, int)            { return 16, 9 }
func (blitRenderer) Render(render.Scene, render.Camera) error { return nil }

func TestTargetsCopyErrors(t *testing.T) {
	ts := NewTargets(newTestDevice(t))
	a, _ := ts.NewTarget(render.TargetDescriptor{Width: 4, Height: 4})
	defer a.Dispose()
	b, _ := ts.NewTarget(render.TargetDescriptor{Width: 8, Height: 4})
	defer b.Dispose()

	if err := ts.CopyTarget(b, a); !errors.Is(err, render.ErrNoBlit) {
		t.Errorf("CopyTarget(size mismatch) error = %v, want ErrNoBlit", err)
	}
	if err := ts.CopyTarget(nil, a); !errors.Is(err, ErrForeignTarget) {
		t.Errorf("CopyTarget(nil dst) error = %v, want ErrForeignTarget", err)
	}
	var empty Targets
	if err := empty.CopyTarget(a, a); !errors.Is(err, ErrNoDevice) {
		t.Errorf("CopyTarget without device error = %v, want ErrNoDevice", err)
	}
}

// stalledQueue never reports completion.
type stalledQueue struct {
	hal.Queue
}

func (stalledQueue) PollCompleted() uint64 { return 0 }

func TestReadPixelsDeadline(t *testing.T) {
	device, queue, cleanup := createNoopDevice(t)
	defer cleanup()
	d, err := NewDevice(device, stalledQueue{queue})
	if err != nil {
		t.Fatalf("NewDevice failed: %v", err)
	}
	tgt, err := d.NewTarget(render.TargetDescriptor{Width: 2, Height: 2})
	if err != nil {
		t.Fatalf("NewTarget failed: %v", err)
	}
	defer tgt.Dispose()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Millisecond)
	defer cancel()
	if _, err := d.ReadPixels(ctx, tgt); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("ReadPixels() error = %v, want DeadlineExceeded", err)
	}
}
