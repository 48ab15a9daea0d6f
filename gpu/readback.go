// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gpu

import (
	"context"
	"fmt"
	"time"
	"unsafe"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

const (
	// copyPitchAlignment is the WebGPU row alignment for texture copies.
	copyPitchAlignment = 256

	// waitTimeout bounds how long a submit may take when ctx has no
	// deadline.
	waitTimeout = 5 * time.Second

	// pollInterval is the sleep between completion polls.
	pollInterval = 100 * time.Microsecond
)

// alignedRow returns the padded byte width of a row of w RGBA8 pixels.
func alignedRow(w uint32) uint32 {
	return (w*4 + copyPitchAlignment - 1) &^ (copyPitchAlignment - 1)
}

// ReadPixels copies the resolved color buffer of t to the CPU as tightly
// packed RGBA8 rows, bottom row first. BGRA targets are swizzled.
func (d *Device) ReadPixels(ctx context.Context, t *Target) ([]byte, error) {
	if t == nil || t.Disposed() {
		return nil, ErrForeignTarget
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	w, h := t.width, t.height
	stride := alignedRow(w)
	size := uint64(stride) * uint64(h)

	encoder, err := d.device.CreateCommandEncoder(&hal.CommandEncoderDescriptor{Label: "photomode_readback"})
	if err != nil {
		return nil, fmt.Errorf("create command encoder: %w", err)
	}
	if err := encoder.BeginEncoding("photomode_readback"); err != nil {
		return nil, fmt.Errorf("begin encoding: %w", err)
	}

	staging, err := d.device.CreateBuffer(&hal.BufferDescriptor{
		Label: "photomode_staging",
		Size:  size,
		Usage: gputypes.BufferUsageMapRead | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		encoder.DiscardEncoding()
		return nil, fmt.Errorf("create staging buffer: %w", err)
	}
	defer d.device.DestroyBuffer(staging)

	encoder.TransitionTextures([]hal.TextureBarrier{{
		Texture: t.resolveTex,
		Usage: hal.TextureUsageTransition{
			OldUsage: gputypes.TextureUsageRenderAttachment,
			NewUsage: gputypes.TextureUsageCopySrc,
		},
	}})
	encoder.CopyTextureToBuffer(t.resolveTex, staging, []hal.BufferTextureCopy{{
		BufferLayout: hal.ImageDataLayout{Offset: 0, BytesPerRow: stride, RowsPerImage: h},
		TextureBase:  hal.ImageCopyTexture{Texture: t.resolveTex, MipLevel: 0},
		Size:         hal.Extent3D{Width: w, Height: h, DepthOrArrayLayers: 1},
	}})
	encoder.TransitionTextures([]hal.TextureBarrier{{
		Texture: t.resolveTex,
		Usage: hal.TextureUsageTransition{
			OldUsage: gputypes.TextureUsageCopySrc,
			NewUsage: gputypes.TextureUsageRenderAttachment,
		},
	}})

	cmd, err := encoder.EndEncoding()
	if err != nil {
		return nil, fmt.Errorf("end encoding: %w", err)
	}
	defer d.device.FreeCommandBuffer(cmd)

	if err := d.submit(ctx, cmd); err != nil {
		return nil, err
	}

	mapping, err := d.device.MapBuffer(staging, 0, size)
	if err != nil {
		return nil, fmt.Errorf("map staging buffer: %w", err)
	}
	raw := unsafe.Slice((*byte)(mapping.Ptr), size)
	pixels := unpackRows(raw, int(w), int(h), int(stride), t.format == gputypes.TextureFormatBGRA8Unorm)
	if err := d.device.UnmapBuffer(staging); err != nil {
		return nil, fmt.Errorf("unmap staging buffer: %w", err)
	}
	return pixels, nil
}

// submit queues cmd and polls the queue until it completes, bounded by
// ctx or waitTimeout.
func (d *Device) submit(ctx context.Context, cmd hal.CommandBuffer) error {
	index, err := d.queue.Submit([]hal.CommandBuffer{cmd})
	if err != nil {
		return fmt.Errorf("submit: %w", err)
	}
	deadline := time.Now().Add(waitTimeout)
	if dl, ok := ctx.Deadline(); ok && dl.Before(deadline) {
		deadline = dl
	}
	for d.queue.PollCompleted() < index {
		if err := ctx.Err(); err != nil {
			return err
		}
		if time.Now().After(deadline) {
			if err := ctx.Err(); err != nil {
				return err
			}
			return ErrTimeout
		}
		time.Sleep(pollInterval)
	}
	return nil
}

// unpackRows strips row padding from a staging copy into a new slice. The
// copy holds the top row first; the result holds the bottom row first.
func unpackRows(raw []byte, w, h, stride int, bgra bool) []byte {
	row := w * 4
	out := make([]byte, row*h)
	for y := 0; y < h; y++ {
		src := raw[y*stride : y*stride+row]
		dst := out[(h-1-y)*row : (h-y)*row]
		copy(dst, src)
		if bgra {
			for i := 0; i < row; i += 4 {
				dst[i], dst[i+2] = dst[i+2], dst[i]
			}
		}
	}
	return out
}

// Clear fills the color attachment of t with c and resets its depth.
func (d *Device) Clear(ctx context.Context, t *Target, c gputypes.Color) error {
	if t == nil || t.Disposed() {
		return ErrForeignTarget
	}
	encoder, err := d.device.CreateCommandEncoder(&hal.CommandEncoderDescriptor{Label: "photomode_clear"})
	if err != nil {
		return fmt.Errorf("create command encoder: %w", err)
	}
	if err := encoder.BeginEncoding("photomode_clear"); err != nil {
		return fmt.Errorf("begin encoding: %w", err)
	}

	view, resolve := t.ColorAttachment()
	desc := &hal.RenderPassDescriptor{
		Label: "photomode_clear_pass",
		ColorAttachments: []hal.RenderPassColorAttachment{{
			View:          view,
			ResolveTarget: resolve,
			LoadOp:        gputypes.LoadOpClear,
			StoreOp:       gputypes.StoreOpStore,
			ClearValue:    c,
		}},
	}
	if t.depthView != nil {
		desc.DepthStencilAttachment = &hal.RenderPassDepthStencilAttachment{
			View:              t.depthView,
			DepthLoadOp:       gputypes.LoadOpClear,
			DepthStoreOp:      gputypes.StoreOpStore,
			DepthClearValue:   1.0,
			StencilLoadOp:     gputypes.LoadOpClear,
			StencilStoreOp:    gputypes.StoreOpStore,
			StencilClearValue: 0,
		}
	}
	encoder.BeginRenderPass(desc).End()

	cmd, err := encoder.EndEncoding()
	if err != nil {
		return fmt.Errorf("end encoding: %w", err)
	}
	defer d.device.FreeCommandBuffer(cmd)
	return d.submit(ctx, cmd)
}
