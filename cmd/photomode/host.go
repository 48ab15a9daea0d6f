package main

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/gogpu/photomode"
	"github.com/gogpu/photomode/cameractl"
	"github.com/gogpu/photomode/focus"
	"github.com/gogpu/photomode/soft"
)

// Viewport of the demo host. Captures are independent of it.
const (
	viewWidth  = 960
	viewHeight = 540
)

// host is the soft-engine stand-in for a real application: a live camera
// with orbit controls, a composer with a render pass and an on-screen
// effect pass.
type host struct {
	renderer *soft.Renderer
	scene    *soft.Scene
	camera   *soft.PerspectiveCamera
	orbit    *soft.OrbitControls
	composer *soft.EffectComposer
	rp       *soft.RenderPass
	dof      *soft.DepthOfFieldPass
}

func newHost(ratio float64) *host {
	h := &host{
		renderer: soft.NewRenderer(viewWidth, viewHeight),
		scene:    soft.DemoScene(),
		camera:   soft.NewPerspectiveCamera(cameractl.DefaultFov, float64(viewWidth)/viewHeight, 0.1, 200),
	}
	h.renderer.SetPixelRatio(ratio)
	h.camera.SetPosition(mgl64.Vec3{0, 2, 6})
	h.orbit = soft.NewOrbitControls(h.camera)
	h.orbit.SetTarget(mgl64.Vec3{0, 1, -4})
	h.orbit.Update()

	h.composer = soft.NewEffectComposer(h.renderer)
	h.rp = soft.NewRenderPass(h.scene, h.camera)
	effect := soft.NewEffectPass()
	effect.SetRenderToScreen(true)
	h.composer.AddPass(h.rp, -1)
	h.composer.AddPass(effect, -1)
	h.dof = soft.NewDepthOfFieldPass(h.camera)
	return h
}

func (h *host) binding() photomode.Binding {
	return photomode.Binding{
		Renderer:   h.renderer,
		Scene:      h.scene,
		Camera:     h.camera,
		Compositor: h.composer,
		Controls:   h.orbit,
		NewCamera:  soft.NewPhotoCamera,
		SetCamera:  func(c cameractl.Perspective) { h.rp.Camera = c },
		Focus: &focus.Config{
			Picker:  soft.NewDepthPickingPass(),
			Copy:    soft.NewCopyPass(),
			DOFPass: h.dof,
			Effect:  h.dof,
		},
	}
}
