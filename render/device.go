// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
)

// DeviceHandle provides GPU device access from the host application.
//
// photomode never creates a device of its own. A host engine that renders
// with WebGPU hands its provider to the capture path so offscreen targets
// are allocated on the same device as the live frame, and so the capture
// color format can follow the surface format.
//
// DeviceHandle is an alias for gpucontext.DeviceProvider.
type DeviceHandle = gpucontext.DeviceProvider

// NullDeviceHandle is a DeviceHandle that provides nil implementations.
// Used by CPU-only engines where no GPU is available.
type NullDeviceHandle struct{}

// Device returns nil for the null device.
func (NullDeviceHandle) Device() gpucontext.Device { return nil }

// Queue returns nil for the null device.
func (NullDeviceHandle) Queue() gpucontext.Queue { return nil }

// Adapter returns nil for the null device.
func (NullDeviceHandle) Adapter() gpucontext.Adapter { return nil }

// AdapterInfo reports an unknown adapter for the null device.
func (NullDeviceHandle) AdapterInfo() gpucontext.AdapterInfo {
	return gpucontext.AdapterInfo{Type: gpucontext.AdapterTypeUnknown}
}

// SurfaceFormat returns undefined format for the null device.
func (NullDeviceHandle) SurfaceFormat() gputypes.TextureFormat {
	return gputypes.TextureFormatUndefined
}

// Ensure NullDeviceHandle implements DeviceHandle.
var _ DeviceHandle = NullDeviceHandle{}

// CaptureFormat returns the color format to allocate capture targets with.
// Hosts presenting BGRA surfaces get BGRA targets so the capture goes
// through the same pipelines as the live frame; readback swizzles to RGBA.
// Everything else captures in RGBA8.
func CaptureFormat(h DeviceHandle) gputypes.TextureFormat {
	if h != nil && h.SurfaceFormat() == gputypes.TextureFormatBGRA8Unorm {
		return gputypes.TextureFormatBGRA8Unorm
	}
	return gputypes.TextureFormatRGBA8Unorm
}

// idleWaiter is the part of a HAL device SyncDevice needs. Device tokens
// from gpucontext carry no methods; the concrete device is asserted.
type idleWaiter interface {
	WaitIdle() error
}

// SyncDevice blocks until queued GPU work on the handle's device completes.
// It is a no-op for nil handles and for devices that cannot be waited on.
func SyncDevice(h DeviceHandle) error {
	if h == nil {
		return nil
	}
	if d, ok := h.Device().(idleWaiter); ok {
		return d.WaitIdle()
	}
	return nil
}
