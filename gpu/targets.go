// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gpu

import (
	"context"
	"fmt"

	"github.com/gogpu/photomode/render"
)

// Targets implements the offscreen part of render.Renderer on a Device.
// Host renderers embed it next to their own Render and viewport methods.
type Targets struct {
	dev *Device
}

// NewTargets returns a Targets allocating on dev.
func NewTargets(dev *Device) Targets {
	return Targets{dev: dev}
}

// Device returns the underlying device.
func (ts Targets) Device() *Device { return ts.dev }

// NewTarget allocates a multisampled color and depth target.
func (ts Targets) NewTarget(desc render.TargetDescriptor) (render.Target, error) {
	if ts.dev == nil {
		return nil, ErrNoDevice
	}
	t, err := ts.dev.NewTarget(desc)
	if err != nil {
		return nil, err
	}
	logger.Load().Debug("gpu: target allocated",
		"label", t.label, "width", t.width, "height", t.height, "samples", t.samples)
	return t, nil
}

// ReadTargetPixels reads back t as bottom-up RGBA8 rows.
func (ts Targets) ReadTargetPixels(ctx context.Context, t render.Target) ([]byte, error) {
	if ts.dev == nil {
		return nil, ErrNoDevice
	}
	gt, ok := t.(*Target)
	if !ok {
		return nil, fmt.Errorf("%T: %w", t, ErrForeignTarget)
	}
	return ts.dev.ReadPixels(ctx, gt)
}

// CopyTarget copies src into dst. Both must be targets of this package
// with equal size and format.
func (ts Targets) CopyTarget(dst, src render.Target) error {
	if ts.dev == nil {
		return ErrNoDevice
	}
	d, ok := dst.(*Target)
	if !ok {
		return fmt.Errorf("%T: %w", dst, ErrForeignTarget)
	}
	s, ok := src.(*Target)
	if !ok {
		return fmt.Errorf("%T: %w", src, ErrForeignTarget)
	}
	return ts.dev.Copy(context.Background(), d, s)
}

// DeviceHandle returns the host provider the device came from.
func (ts Targets) DeviceHandle() render.DeviceHandle {
	if ts.dev == nil {
		return nil
	}
	return ts.dev.handle
}

var (
	_ render.DeviceOwner = Targets{}
	_ render.Blitter     = Targets{}
)
