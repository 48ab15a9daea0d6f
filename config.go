package photomode

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/photomode/cameractl"
	"github.com/gogpu/photomode/effects"
	"github.com/gogpu/photomode/encode"
	"github.com/gogpu/photomode/screenshot"
)

// ErrConfig is returned for configuration files that cannot be parsed or
// hold invalid values.
var ErrConfig = errors.New("photomode: invalid config")

// ConfigSyntax selects the file syntax of a configuration.
type ConfigSyntax int

const (
	// SyntaxYAML parses YAML documents.
	SyntaxYAML ConfigSyntax = iota
	// SyntaxTOML parses TOML documents.
	SyntaxTOML
)

// String returns the syntax name.
func (c ConfigSyntax) String() string {
	if c == SyntaxTOML {
		return "toml"
	}
	return "yaml"
}

// SyntaxFor returns the syntax implied by a file extension. Anything but
// .toml is read as YAML.
func SyntaxFor(path string) ConfigSyntax {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return SyntaxTOML
	}
	return SyntaxYAML
}

// Config is the file form of the session options.
//
// Example (YAML):
//
//	photo_mode: true
//	capture:
//	  width: 3840
//	  height: 2160
//	  format: png
//	  return_type: file
//	camera:
//	  focal_length: 85
//	  aperture: 1.8
//	effects:
//	  vignette: 0.4
//	  grain: 0.1
//	enabled_effects:
//	  bloom: true
type Config struct {
	PhotoMode *bool              `yaml:"photo_mode,omitempty" toml:"photo_mode,omitempty"`
	Capture   CaptureConfig      `yaml:"capture" toml:"capture"`
	Camera    CameraConfig       `yaml:"camera" toml:"camera"`
	Effects   map[string]float64 `yaml:"effects,omitempty" toml:"effects,omitempty"`
	Enabled   map[string]bool    `yaml:"enabled_effects,omitempty" toml:"enabled_effects,omitempty"`
}

// CaptureConfig holds capture defaults. Zero fields keep the encoder
// defaults.
type CaptureConfig struct {
	Width      int     `yaml:"width,omitempty" toml:"width,omitempty"`
	Height     int     `yaml:"height,omitempty" toml:"height,omitempty"`
	Format     string  `yaml:"format,omitempty" toml:"format,omitempty"`
	Quality    float64 `yaml:"quality,omitempty" toml:"quality,omitempty"`
	ReturnType string  `yaml:"return_type,omitempty" toml:"return_type,omitempty"`
}

// CameraConfig holds camera settings. Zero values and nil flags leave the
// corresponding setting untouched.
type CameraConfig struct {
	FocalLength   float64 `yaml:"focal_length,omitempty" toml:"focal_length,omitempty"`
	Aperture      float64 `yaml:"aperture,omitempty" toml:"aperture,omitempty"`
	FocusDistance float64 `yaml:"focus_distance,omitempty" toml:"focus_distance,omitempty"`
	Rotation      float64 `yaml:"rotation,omitempty" toml:"rotation,omitempty"`
	DOF           *bool   `yaml:"dof,omitempty" toml:"dof,omitempty"`
	AutoFocus     *bool   `yaml:"autofocus,omitempty" toml:"autofocus,omitempty"`
}

// LoadConfig reads and validates a configuration file. The syntax follows
// the file extension.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("photomode: read config: %w", err)
	}
	cfg, err := ParseConfig(data, SyntaxFor(path))
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig decodes and validates a configuration document. Unknown
// fields are rejected.
func ParseConfig(data []byte, syntax ConfigSyntax) (Config, error) {
	var cfg Config
	switch syntax {
	case SyntaxTOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&cfg); err != nil {
			return Config{}, fmt.Errorf("%w: %s: %w", ErrConfig, syntax, err)
		}
	default:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		// An empty document leaves cfg at its zero value.
		if err := dec.Decode(&cfg); err != nil && len(bytes.TrimSpace(data)) > 0 {
			return Config{}, fmt.Errorf("%w: %s: %w", ErrConfig, syntax, err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every value of c.
func (c Config) Validate() error {
	var errs []error
	if c.Capture.Width < 0 || c.Capture.Height < 0 {
		errs = append(errs, fmt.Errorf("capture size %dx%d is negative", c.Capture.Width, c.Capture.Height))
	}
	if c.Capture.Quality < 0 || c.Capture.Quality > 1 {
		errs = append(errs, fmt.Errorf("capture quality %v outside [0, 1]", c.Capture.Quality))
	}
	if c.Capture.Format != "" {
		if _, err := encode.ParseFormat(c.Capture.Format); err != nil {
			errs = append(errs, err)
		}
	}
	if c.Capture.ReturnType != "" {
		if _, err := encode.ParseReturnType(c.Capture.ReturnType); err != nil {
			errs = append(errs, err)
		}
	}
	if c.Camera.FocalLength < 0 {
		errs = append(errs, fmt.Errorf("focal length %v is negative", c.Camera.FocalLength))
	}
	if c.Camera.Aperture < 0 {
		errs = append(errs, fmt.Errorf("aperture %v is negative", c.Camera.Aperture))
	}
	for k := range c.Effects {
		if _, ok := effects.Lookup(effects.Key(k)); !ok {
			errs = append(errs, fmt.Errorf("%w: %q", effects.ErrUnknownEffect, k))
		}
	}
	known := effects.DefaultEnabled()
	for name := range c.Enabled {
		if _, ok := known[effects.Name(name)]; !ok {
			errs = append(errs, fmt.Errorf("%w: %q", effects.ErrUnknownEffect, name))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrConfig, errors.Join(errs...))
	}
	return nil
}

// CaptureOptions converts the capture section to screenshot options.
func (c Config) CaptureOptions() screenshot.Options {
	// Validate has checked the names; parse errors cannot happen here.
	var format encode.Format
	if c.Capture.Format != "" {
		format, _ = encode.ParseFormat(c.Capture.Format)
	}
	var rt encode.ReturnType
	if c.Capture.ReturnType != "" {
		rt, _ = encode.ParseReturnType(c.Capture.ReturnType)
	}
	return screenshot.Options{
		Width:      c.Capture.Width,
		Height:     c.Capture.Height,
		Format:     format,
		Quality:    c.Capture.Quality,
		ReturnType: rt,
	}
}

// Options converts c to session options.
func (c Config) Options() []Option {
	opts := []Option{
		WithCaptureDefaults(c.CaptureOptions()),
		WithCameraSettings(c.Camera.apply),
	}
	if len(c.Effects) > 0 {
		v := make(effects.Values, len(c.Effects))
		for k, x := range c.Effects {
			v[effects.Key(k)] = x
		}
		opts = append(opts, WithEffectValues(v))
	}
	if len(c.Enabled) > 0 {
		e := effects.DefaultEnabled()
		for name, on := range c.Enabled {
			e[effects.Name(name)] = on
		}
		opts = append(opts, WithEnabledEffects(e))
	}
	if c.PhotoMode != nil {
		opts = append(opts, WithPhotoMode(*c.PhotoMode))
	}
	return opts
}

func (c CameraConfig) apply(s *cameractl.Settings) {
	if c.FocalLength > 0 {
		s.SetFocalLength(c.FocalLength)
	}
	if c.Aperture > 0 {
		s.SetAperture(c.Aperture)
	}
	if c.FocusDistance > 0 {
		s.SetFocusDistance(c.FocusDistance)
	}
	if c.Rotation != 0 {
		s.SetRotation(c.Rotation)
	}
	st := s.State()
	if c.DOF != nil && *c.DOF != st.DOFEnabled {
		s.ToggleDOF()
	}
	if c.AutoFocus != nil && *c.AutoFocus != st.AutoFocus {
		s.ToggleAutoFocus()
	}
}
