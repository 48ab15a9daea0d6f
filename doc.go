// Package photomode adds a photo mode to a real-time 3D renderer.
//
// # Overview
//
// Photo mode detaches the live camera into a dedicated photo camera,
// applies photographic adjustments (focal length, aperture, roll, depth of
// field, colour grading) and captures stills at any output resolution. The
// renderer, compositor and camera are left exactly as they were after every
// capture.
//
// photomode does not own an engine. The host binds its renderer, scene,
// camera, optional compositor and optional camera controls to a Session:
//
//	s := photomode.New(photomode.WithLogger(slog.Default()))
//	defer s.Close()
//
//	err := s.Bind(photomode.Binding{
//		Renderer:   renderer,
//		Scene:      scene,
//		Camera:     camera,
//		Compositor: composer,
//		Controls:   orbit,
//		NewCamera:  engine.NewPerspectiveCamera,
//	})
//
//	// Once per frame:
//	s.Frame(delta)
//
//	out, err := s.Capture(ctx, screenshot.Options{Width: 3840, Height: 2160})
//
// # Packages
//
// The Session is a thin owner around the sub-packages, which can be used on
// their own:
//
//   - render: engine contracts, render state guard, offscreen capture
//   - screenshot: capture orchestration with hooks
//   - encode: pixel flip and output encoding
//   - cameractl: control adapters, lens math, camera settings
//   - effects: effect definitions, value store, native parameters
//   - focus: depth-of-field autofocus
//   - soft: CPU reference engine
//   - gpu: WebGPU HAL capture targets
//
// # Configuration
//
// Capture defaults, camera settings and effect values can be loaded from a
// YAML or TOML file with LoadConfig and applied with Config.Options. A file
// can be watched for changes with WatchConfig.
//
// # Logging
//
// photomode is silent by default. SetLogger enables logging for the root
// package and every sub-package.
package photomode
