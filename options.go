package photomode

import (
	"log/slog"
	"time"

	"github.com/gogpu/photomode/cameractl"
	"github.com/gogpu/photomode/effects"
	"github.com/gogpu/photomode/screenshot"
)

// Option configures a Session.
//
// Example:
//
//	s := photomode.New(
//		photomode.WithLogger(slog.Default()),
//		photomode.WithCaptureDefaults(screenshot.Options{Width: 1920, Height: 1080}),
//	)
type Option func(*options)

// options holds the optional configuration of a Session.
type options struct {
	logger    *slog.Logger
	now       func() time.Time
	capture   screenshot.Options
	photoMode *bool
	values    effects.Values
	enabled   effects.Enabled
	camera    []func(*cameractl.Settings)
}

// defaultOptions returns the default session options.
func defaultOptions() options {
	return options{
		now: time.Now,
	}
}

// WithLogger sets the logger used by photomode and its sub-packages. It has
// the same effect as calling SetLogger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithClock sets the clock used by the effect store's write throttle.
// It only applies when the session is created.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

// WithCaptureDefaults sets the options Capture falls back to for every
// zero field of its argument.
func WithCaptureDefaults(opts screenshot.Options) Option {
	return func(o *options) {
		o.capture = opts
	}
}

// WithPhotoMode sets the initial photo mode state. Without it, the camera
// settings default applies (on).
func WithPhotoMode(on bool) Option {
	return func(o *options) {
		o.photoMode = &on
	}
}

// WithEffectValues loads effect values into the session's store. A set
// with an unknown key is rejected as a whole: New logs a warning and
// Reconfigure returns the error.
func WithEffectValues(v effects.Values) Option {
	return func(o *options) {
		if v != nil {
			o.values = v.Clone()
		}
	}
}

// WithEnabledEffects replaces the enabled-effects table.
func WithEnabledEffects(e effects.Enabled) Option {
	return func(o *options) {
		if e != nil {
			o.enabled = e.Clone()
		}
	}
}

// WithCameraSettings runs fn against the session's camera settings store.
//
// Example:
//
//	photomode.WithCameraSettings(func(s *cameractl.Settings) {
//		s.SetAperture(1.8)
//	})
func WithCameraSettings(fn func(*cameractl.Settings)) Option {
	return func(o *options) {
		if fn != nil {
			o.camera = append(o.camera, fn)
		}
	}
}

// mergeCapture fills the zero fields of opts from def.
func mergeCapture(opts, def screenshot.Options) screenshot.Options {
	if opts.Width == 0 && opts.Height == 0 {
		opts.Width, opts.Height = def.Width, def.Height
	}
	if opts.Format == "" {
		opts.Format = def.Format
	}
	if opts.Quality == 0 {
		opts.Quality = def.Quality
	}
	if opts.ReturnType == "" {
		opts.ReturnType = def.ReturnType
	}
	if opts.Registry == nil {
		opts.Registry = def.Registry
	}
	if opts.OnBeforeScreenshot == nil {
		opts.OnBeforeScreenshot = def.OnBeforeScreenshot
	}
	if opts.OnAfterScreenshot == nil {
		opts.OnAfterScreenshot = def.OnAfterScreenshot
	}
	return opts
}
