// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package gpu allocates and reads back photomode capture targets on a
// WebGPU HAL device.
//
// photomode never opens a device of its own. A host renderer built on
// gogpu/wgpu hands its device over with FromProvider and embeds Targets to
// satisfy the offscreen half of render.Renderer and render.Blitter:
//
//	dev, err := gpu.FromProvider(provider)
//	if err != nil {
//		return err
//	}
//	r := &MyRenderer{Targets: gpu.NewTargets(dev)}
//
// Targets are 4x multisampled with a depth attachment and a single-sample
// resolve texture that readback and copies work on. CopyTarget copies
// between targets of equal size and format. Scaled or format-converting
// copies are left to the host, which can build its pipeline from the
// embedded copy shader (ShaderModule).
package gpu

import (
	"errors"
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/photomode/render"
)

var (
	// ErrNoDevice is returned when no HAL device is available.
	ErrNoDevice = errors.New("gpu: no HAL device")

	// ErrForeignTarget is returned for targets not allocated by this
	// package.
	ErrForeignTarget = errors.New("gpu: target not allocated on a HAL device")

	// ErrTimeout is returned when the GPU does not finish in time.
	ErrTimeout = errors.New("gpu: timed out waiting for the device")
)

// halProvider is implemented by device providers that expose HAL types.
type halProvider interface {
	HalDevice() any
	HalQueue() any
}

// Device is a HAL device and queue borrowed from the host. photomode
// never destroys it.
type Device struct {
	device hal.Device
	queue  hal.Queue
	handle render.DeviceHandle
}

// NewDevice wraps an already open device and queue.
func NewDevice(device hal.Device, queue hal.Queue) (*Device, error) {
	if device == nil || queue == nil {
		return nil, ErrNoDevice
	}
	return &Device{device: device, queue: queue, handle: render.NullDeviceHandle{}}, nil
}

// FromProvider extracts the HAL device and queue from a host provider.
// The gpucontext device and queue tokens are asserted to hal.Device and
// hal.Queue first; providers wrapping another WebGPU binding can instead
// implement HalDevice() any and HalQueue() any.
func FromProvider(p render.DeviceHandle) (*Device, error) {
	if p == nil {
		return nil, ErrNoDevice
	}
	if device, ok := p.Device().(hal.Device); ok && device != nil {
		if queue, ok := p.Queue().(hal.Queue); ok && queue != nil {
			return &Device{device: device, queue: queue, handle: p}, nil
		}
	}
	hp, ok := p.(halProvider)
	if !ok {
		return nil, fmt.Errorf("%T does not expose HAL types: %w", p, ErrNoDevice)
	}
	device, ok := hp.HalDevice().(hal.Device)
	if !ok || device == nil {
		return nil, fmt.Errorf("HalDevice is not a hal.Device: %w", ErrNoDevice)
	}
	queue, ok := hp.HalQueue().(hal.Queue)
	if !ok || queue == nil {
		return nil, fmt.Errorf("HalQueue is not a hal.Queue: %w", ErrNoDevice)
	}
	return &Device{device: device, queue: queue, handle: p}, nil
}

// Handle returns the provider the device came from, or a null handle.
func (d *Device) Handle() render.DeviceHandle { return d.handle }

// Format returns the color format capture targets are allocated with.
func (d *Device) Format() gputypes.TextureFormat { return render.CaptureFormat(d.handle) }
