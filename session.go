package photomode

import (
	"context"

	"github.com/gogpu/photomode/cameractl"
	"github.com/gogpu/photomode/effects"
	"github.com/gogpu/photomode/encode"
	"github.com/gogpu/photomode/focus"
	"github.com/gogpu/photomode/render"
	"github.com/gogpu/photomode/screenshot"
)

// Binding names the host objects a Session drives.
type Binding struct {
	// Renderer, Scene and Camera are required. Camera is the live camera
	// the user looks through outside photo mode.
	Renderer render.Renderer
	Scene    render.Scene
	Camera   cameractl.Perspective

	// Compositor is the host's post-processing graph, if any. The focus
	// passes are mounted into it while photo mode is on, and its effect
	// passes receive the photo effect parameters every frame.
	Compositor render.Compositor

	// Controls are the user camera controls (orbit-like, rig-like or nil).
	// They are snapshotted and disabled while photo mode is on.
	Controls any

	// NewCamera builds the dedicated photo camera. When nil, photo mode
	// adjusts the live camera and restores it on exit.
	NewCamera cameractl.PerspectiveFactory

	// SetCamera is called whenever the active camera changes, so the host
	// can point its render pass at it.
	SetCamera func(cameractl.Perspective)

	// Focus wires the depth-of-field autofocus. Nil disables autofocus.
	Focus *focus.Config
}

// paramSetter is implemented by compositor passes that run the photo
// effects.
type paramSetter interface {
	SetParams(p effects.Params)
}

// enabledSetter is implemented by effect passes that honour the
// enabled-effects table.
type enabledSetter interface {
	SetEnabledEffects(e effects.Enabled)
}

// cameraSetter is implemented by depth-of-field passes that measure focus
// distance from a camera.
type cameraSetter interface {
	SetCamera(c cameractl.Camera)
}

// Session is an explicitly owned photo mode context.
//
// A Session is driven from the goroutine that runs the host frame loop.
// The stores returned by Effects and Settings are safe for concurrent use;
// UI goroutines write to them and Frame picks up the changes.
type Session struct {
	opts     options
	settings *cameractl.Settings
	effects  *effects.Store

	b       Binding
	bound   bool
	sampler *focus.Sampler

	active   bool
	photo    cameractl.Perspective
	baseFov  float64
	controls cameractl.Adapter
	ctlSnap  cameractl.Snapshot
	live     cameractl.Adapter
	liveSnap cameractl.Snapshot

	closed bool
}

// New creates an unbound Session.
func New(opts ...Option) *Session {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	s := &Session{
		settings: cameractl.NewSettings(),
		effects:  effects.NewStore(o.now),
	}
	if err := s.apply(o); err != nil {
		logger.Load().Warn("photomode: invalid session options", "err", err)
	}
	return s
}

// Reconfigure applies opts to a live session. Capture defaults and stores
// are updated in place; a photo mode option takes effect immediately.
func (s *Session) Reconfigure(opts ...Option) error {
	if s.closed {
		return ErrClosed
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.now == nil {
		// The store clock cannot change after New.
		o.now = s.opts.now
	}
	if !hasCapture(o.capture) {
		o.capture = s.opts.capture
	}
	return s.apply(o)
}

func hasCapture(c screenshot.Options) bool {
	return c.Width != 0 || c.Height != 0 || c.Format != "" || c.Quality != 0 ||
		c.ReturnType != "" || c.Registry != nil ||
		c.OnBeforeScreenshot != nil || c.OnAfterScreenshot != nil
}

func (s *Session) apply(o options) error {
	if o.logger != nil {
		SetLogger(o.logger)
	}
	s.opts = o
	for _, fn := range o.camera {
		fn(s.settings)
	}
	if o.enabled != nil {
		s.effects.SetEnabled(o.enabled)
	}
	var err error
	if o.values != nil {
		err = s.effects.Load(o.values)
	}
	if o.photoMode != nil {
		s.settings.TogglePhotoMode(*o.photoMode)
		s.reconcile()
	}
	return err
}

// Bind attaches the session to host objects. A previous binding is
// released first. If photo mode is on, it is entered right away.
func (s *Session) Bind(b Binding) error {
	if s.closed {
		return ErrClosed
	}
	if b.Renderer == nil {
		return ErrNotBound
	}
	if b.Camera == nil {
		return ErrNoCamera
	}
	s.Unbind()
	s.b = b
	s.bound = true
	if b.Focus != nil {
		s.sampler = focus.NewSampler(*b.Focus)
	}
	logger.Load().Debug("photomode: bound",
		"compositor", b.Compositor != nil, "controls", b.Controls != nil, "autofocus", b.Focus != nil)
	s.reconcile()
	return nil
}

// Unbind exits photo mode, restoring the host camera and controls, and
// releases the binding. The photo mode setting is kept.
func (s *Session) Unbind() {
	if !s.bound {
		return
	}
	if s.active {
		s.exit()
	}
	s.b = Binding{}
	s.sampler = nil
	s.bound = false
}

// Bound reports whether host objects are attached.
func (s *Session) Bound() bool { return s.bound }

// EnterPhotoMode turns photo mode on.
func (s *Session) EnterPhotoMode() error { return s.SetPhotoMode(true) }

// ExitPhotoMode turns photo mode off.
func (s *Session) ExitPhotoMode() error { return s.SetPhotoMode(false) }

// SetPhotoMode records the photo mode setting and, when bound, switches
// cameras and controls accordingly.
func (s *Session) SetPhotoMode(on bool) error {
	if s.closed {
		return ErrClosed
	}
	s.settings.TogglePhotoMode(on)
	s.reconcile()
	return nil
}

// TogglePhotoMode flips photo mode and returns the new state.
func (s *Session) TogglePhotoMode() bool {
	if s.closed {
		return false
	}
	on := s.settings.TogglePhotoMode()
	s.reconcile()
	return on
}

// PhotoMode reports whether photo mode is active on the bound host.
func (s *Session) PhotoMode() bool { return s.active }

// Camera returns the active camera: the photo camera while photo mode is
// on, the live camera otherwise, nil when unbound.
func (s *Session) Camera() cameractl.Perspective {
	if s.active {
		return s.photo
	}
	return s.b.Camera
}

// Settings returns the camera settings store.
func (s *Session) Settings() *cameractl.Settings { return s.settings }

// Effects returns the effect value store.
func (s *Session) Effects() *effects.Store { return s.effects }

// Sampler returns the autofocus sampler, or nil when the binding has no
// focus configuration.
func (s *Session) Sampler() *focus.Sampler { return s.sampler }

// reconcile enters or exits photo mode to match the settings store.
func (s *Session) reconcile() {
	if !s.bound {
		return
	}
	want := s.settings.State().PhotoMode
	switch {
	case want && !s.active:
		s.enter()
	case !want && s.active:
		s.exit()
	}
}

func (s *Session) enter() {
	base := s.b.Camera
	s.baseFov = base.Fov()

	if s.b.Controls != nil {
		if a := cameractl.NewAdapter(s.b.Controls); a != nil {
			s.controls = a
			s.ctlSnap = a.Snapshot()
			a.SetEnabled(false)
		}
	}

	if s.b.NewCamera != nil {
		s.photo = cameractl.NewPhotoCamera(base, s.b.NewCamera)
	} else {
		s.live = cameractl.NewAdapter(base)
		s.liveSnap = s.live.Snapshot()
		s.photo = base
	}
	s.setCamera(s.photo)

	if s.sampler != nil {
		if fc, ok := s.photo.(focus.Camera); ok {
			s.sampler.SetCamera(fc)
		}
		s.sampler.Mount(s.b.Compositor)
	}
	s.active = true
	s.pushEffects()
	logger.Load().Info("photomode: entered photo mode",
		"dedicated_camera", s.b.NewCamera != nil, "base_fov", s.baseFov)
}

func (s *Session) exit() {
	if s.sampler != nil {
		s.sampler.Unmount()
	}
	if s.live != nil {
		s.live.Restore(s.liveSnap)
		s.live = nil
	}
	if s.controls != nil {
		s.controls.Restore(s.ctlSnap)
		s.controls = nil
	}
	s.photo = nil
	s.active = false
	s.setCamera(s.b.Camera)
	s.pushEffects()
	logger.Load().Info("photomode: exited photo mode")
}

func (s *Session) setCamera(c cameractl.Perspective) {
	if s.b.SetCamera != nil {
		s.b.SetCamera(c)
	}
	if s.b.Focus != nil {
		if cs, ok := s.b.Focus.DOFPass.(cameraSetter); ok {
			cs.SetCamera(c)
		}
	}
}

// Frame advances photo mode by delta seconds. It picks up photo mode
// toggles made through the settings store, applies the lens settings to
// the photo camera, runs the autofocus sampler and pushes effect
// parameters to the compositor.
func (s *Session) Frame(delta float64) {
	if s.closed || !s.bound {
		return
	}
	s.reconcile()
	st := s.settings.State()
	if s.active {
		cameractl.ApplyState(s.photo, st, s.baseFov)
		s.photo.UpdateProjection()
		if s.sampler != nil {
			s.sampler.Frame(delta, st)
		}
	}
	s.pushEffects()
}

// pushEffects hands the current effect parameters to every effect pass in
// the compositor. Outside photo mode the parameters are neutral.
func (s *Session) pushEffects() {
	if s.b.Compositor == nil {
		return
	}
	params := s.effects.Params(s.active)
	enabled := s.effects.Enabled()
	for _, p := range s.b.Compositor.Passes() {
		if ps, ok := p.(paramSetter); ok {
			ps.SetParams(params)
		}
		if es, ok := p.(enabledSetter); ok {
			es.SetEnabledEffects(enabled)
		}
	}
}

// Capture takes a screenshot through the active camera. Zero fields of
// opts fall back to the session's capture defaults. An unbound session
// logs a warning and returns a nil output without error.
func (s *Session) Capture(ctx context.Context, opts screenshot.Options) (encode.Output, error) {
	if s.closed {
		return nil, ErrClosed
	}
	if !s.bound {
		logger.Load().Warn("photomode: capture requested with no renderer bound")
		return nil, nil
	}
	req := screenshot.Request{
		Renderer:   s.b.Renderer,
		Scene:      s.b.Scene,
		Camera:     s.Camera(),
		Compositor: s.b.Compositor,
	}
	return screenshot.Capture(ctx, req, mergeCapture(opts, s.opts.capture))
}

// Close exits photo mode, releases the binding and makes every further
// operation fail with ErrClosed. Closing twice is a no-op.
func (s *Session) Close() error {
	if s.closed {
		return nil
	}
	s.Unbind()
	s.closed = true
	return nil
}
