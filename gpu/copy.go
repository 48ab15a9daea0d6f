// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gpu

import (
	"context"
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/photomode/render"
)

// Copy copies the resolved color of src into the resolve texture of dst.
// Both targets must have the same size and format; scaled or converting
// copies need a host pipeline built on the copy shader.
func (d *Device) Copy(ctx context.Context, dst, src *Target) error {
	if dst == nil || src == nil || dst.Disposed() || src.Disposed() {
		return ErrForeignTarget
	}
	if dst.width != src.width || dst.height != src.height || dst.format != src.format {
		return fmt.Errorf("copy %dx%d %v into %dx%d %v: %w",
			src.width, src.height, src.format, dst.width, dst.height, dst.format, render.ErrNoBlit)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	encoder, err := d.device.CreateCommandEncoder(&hal.CommandEncoderDescriptor{Label: "photomode_copy"})
	if err != nil {
		return fmt.Errorf("create command encoder: %w", err)
	}
	if err := encoder.BeginEncoding("photomode_copy"); err != nil {
		return fmt.Errorf("begin encoding: %w", err)
	}

	encoder.TransitionTextures([]hal.TextureBarrier{
		{
			Texture: src.resolveTex,
			Usage: hal.TextureUsageTransition{
				OldUsage: gputypes.TextureUsageRenderAttachment,
				NewUsage: gputypes.TextureUsageCopySrc,
			},
		},
		{
			Texture: dst.resolveTex,
			Usage: hal.TextureUsageTransition{
				OldUsage: gputypes.TextureUsageRenderAttachment,
				NewUsage: gputypes.TextureUsageCopyDst,
			},
		},
	})
	encoder.CopyTextureToTexture(src.resolveTex, dst.resolveTex, []hal.TextureCopy{{
		SrcBase: hal.ImageCopyTexture{Texture: src.resolveTex},
		DstBase: hal.ImageCopyTexture{Texture: dst.resolveTex},
		Size:    hal.Extent3D{Width: src.width, Height: src.height, DepthOrArrayLayers: 1},
	}})
	encoder.TransitionTextures([]hal.TextureBarrier{
		{
			Texture: src.resolveTex,
			Usage: hal.TextureUsageTransition{
				OldUsage: gputypes.TextureUsageCopySrc,
				NewUsage: gputypes.TextureUsageRenderAttachment,
			},
		},
		{
			Texture: dst.resolveTex,
			Usage: hal.TextureUsageTransition{
				OldUsage: gputypes.TextureUsageCopyDst,
				NewUsage: gputypes.TextureUsageRenderAttachment,
			},
		},
	})

	cmd, err := encoder.EndEncoding()
	if err != nil {
		return fmt.Errorf("end encoding: %w", err)
	}
	defer d.device.FreeCommandBuffer(cmd)
	return d.submit(ctx, cmd)
}
