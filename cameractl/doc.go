// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package cameractl snapshots and restores heterogeneous camera controls,
// and holds the lens math and camera settings of photo mode.
//
// Three shapes of controls are recognized, in this order:
//
//   - RigLike: controls with GetPosition/GetTarget accessors and SetLookAt
//   - OrbitLike: controls with a Target and an Object camera plus Update
//   - Static: a bare camera with no controls at all
//
// NewAdapter probes an object once and returns an Adapter with a uniform
// Snapshot/Restore/SetEnabled contract, or nil when nothing matches.
package cameractl
