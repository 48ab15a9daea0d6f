// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package soft is a CPU reference engine for photomode.
//
// It ray casts a small scene of spheres and planes into RGBA targets with
// a depth buffer and implements every contract of package render: the
// renderer, offscreen targets, target copies and a ping-pong effect
// composer. The passes it provides mirror a typical photo mode setup:
//
//	RenderPass -> DepthOfFieldPass -> DepthPickingPass -> CopyPass -> EffectPass
//
// The engine backs the photomode command and the end-to-end tests. It is
// not meant to be fast.
package soft
