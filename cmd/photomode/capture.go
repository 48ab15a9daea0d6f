package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/urfave/cli"

	"github.com/gogpu/photomode"
	"github.com/gogpu/photomode/cameractl"
	"github.com/gogpu/photomode/effects"
	"github.com/gogpu/photomode/encode"
	"github.com/gogpu/photomode/screenshot"
)

// defaultFrames is enough for the autofocus to settle on the demo scene.
const defaultFrames = 12

// frameDelta is the simulated frame time in seconds.
const frameDelta = 1.0 / 60

func captureFlags() []cli.Flag {
	return []cli.Flag{
		cli.StringFlag{
			Name:  "config, c",
			Usage: "YAML or TOML file with session settings",
		},
		cli.StringFlag{
			Name:  "out, o",
			Usage: "output file; defaults to screenshot.<format>",
		},
		cli.IntFlag{
			Name:  "width",
			Usage: "capture width in pixels (0 keeps the viewport)",
		},
		cli.IntFlag{
			Name:  "height",
			Usage: "capture height in pixels (0 keeps the viewport)",
		},
		cli.StringFlag{
			Name:  "format, f",
			Usage: "jpeg, png, webp or avif",
		},
		cli.Float64Flag{
			Name:  "quality, q",
			Usage: "encoder quality in [0, 1]",
		},
		cli.Float64Flag{
			Name:  "scale",
			Value: 1,
			Usage: "renderer pixel ratio",
		},
		cli.Float64Flag{
			Name:  "focal-length",
			Usage: "lens focal length in millimetres",
		},
		cli.Float64Flag{
			Name:  "aperture",
			Usage: "lens f-number",
		},
		cli.Float64Flag{
			Name:  "roll",
			Usage: "camera roll in degrees",
		},
		cli.StringSliceFlag{
			Name:  "effect, e",
			Usage: "effect value as key=value, repeatable",
		},
		cli.BoolFlag{
			Name:  "no-photo",
			Usage: "capture through the live camera with photo mode off",
		},
		cli.BoolFlag{
			Name:  "no-compositor",
			Usage: "render the scene directly, without post-processing",
		},
		cli.IntFlag{
			Name:  "frames",
			Value: defaultFrames,
			Usage: "frames to run before the capture",
		},
	}
}

// job is one capture run.
type job struct {
	cfg          photomode.Config
	out          string
	frames       int
	scale        float64
	noCompositor bool
	overrides    []photomode.Option
	capture      screenshot.Options
}

func captureAction(ctx *cli.Context) error {
	j := job{
		out:          ctx.String("out"),
		frames:       ctx.Int("frames"),
		scale:        ctx.Float64("scale"),
		noCompositor: ctx.Bool("no-compositor"),
	}
	if path := ctx.String("config"); path != "" {
		cfg, err := photomode.LoadConfig(path)
		if err != nil {
			return err
		}
		j.cfg = cfg
	}

	var err error
	if j.capture, err = captureOverrides(ctx); err != nil {
		return err
	}
	if j.overrides, err = sessionOverrides(ctx); err != nil {
		return err
	}

	p := newPrinter(os.Stdout, ctx.GlobalBool("no-color"))
	if err := j.run(context.Background(), p); err != nil {
		p.fail("%v", err)
		return err
	}
	return nil
}

func captureOverrides(ctx *cli.Context) (screenshot.Options, error) {
	opts := screenshot.Options{
		Width:      ctx.Int("width"),
		Height:     ctx.Int("height"),
		Quality:    ctx.Float64("quality"),
		ReturnType: encode.ReturnFile,
	}
	if opts.Width < 0 || opts.Height < 0 {
		return opts, fmt.Errorf("capture size %dx%d is negative", opts.Width, opts.Height)
	}
	if f := ctx.String("format"); f != "" {
		format, err := encode.ParseFormat(f)
		if err != nil {
			return opts, err
		}
		opts.Format = format
	}
	return opts, nil
}

func sessionOverrides(ctx *cli.Context) ([]photomode.Option, error) {
	var opts []photomode.Option
	if ctx.Bool("no-photo") {
		opts = append(opts, photomode.WithPhotoMode(false))
	}
	focal, aperture, roll := ctx.Float64("focal-length"), ctx.Float64("aperture"), ctx.Float64("roll")
	opts = append(opts, photomode.WithCameraSettings(func(s *cameractl.Settings) {
		if focal > 0 {
			s.SetFocalLength(focal)
		}
		if aperture > 0 {
			s.SetAperture(aperture)
		}
		if roll != 0 {
			s.SetRotation(roll)
		}
	}))

	if kv := ctx.StringSlice("effect"); len(kv) > 0 {
		values, err := parseEffects(kv)
		if err != nil {
			return nil, err
		}
		opts = append(opts, photomode.WithEffectValues(values))
	}
	return opts, nil
}

// parseEffects parses key=value pairs into effect values.
func parseEffects(pairs []string) (effects.Values, error) {
	v := make(effects.Values, len(pairs))
	for _, pair := range pairs {
		key, raw, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("effect %q: want key=value", pair)
		}
		k := effects.Key(strings.TrimSpace(key))
		if _, known := effects.Lookup(k); !known {
			return nil, fmt.Errorf("%w: %q", effects.ErrUnknownEffect, key)
		}
		x, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return nil, fmt.Errorf("effect %q: %w", key, err)
		}
		v[k] = x
	}
	return v, nil
}

// run builds a fresh host, drives it for j.frames frames and writes the
// still.
func (j job) run(ctx context.Context, p printer) error {
	h := newHost(j.scale)
	opts := append(j.cfg.Options(), j.overrides...)
	s := photomode.New(opts...)
	defer s.Close()

	b := h.binding()
	if j.noCompositor {
		b.Compositor = nil
		b.Focus = nil
	}
	if err := s.Bind(b); err != nil {
		return err
	}

	for range j.frames {
		s.Frame(frameDelta)
		if j.noCompositor {
			if err := h.renderer.Render(h.scene, s.Camera()); err != nil {
				return err
			}
			continue
		}
		if err := h.composer.Render(ctx, frameDelta); err != nil {
			return err
		}
	}
	if sm := s.Sampler(); sm != nil && sm.LastSample().Valid {
		p.ok("focus settled at %.2f", h.dof.FocusDistance())
	}

	start := time.Now()
	out, err := s.Capture(ctx, j.capture)
	if err != nil {
		return err
	}
	file, ok := out.(encode.File)
	if !ok {
		return errors.New("capture returned no file")
	}
	path := j.out
	if path == "" {
		path = file.Name
	}
	if err := os.WriteFile(path, file.Data, 0o644); err != nil {
		return err
	}
	w, ht := j.capture.Width, j.capture.Height
	if w == 0 || ht == 0 {
		w, ht = j.size(h)
	}
	p.saved(path, w, ht, file.Size(), time.Since(start))
	return nil
}

// size reports the output size when no explicit size was requested.
func (j job) size(h *host) (int, int) {
	if c := j.cfg.Capture; c.Width > 0 && c.Height > 0 {
		return c.Width, c.Height
	}
	return h.renderer.Size()
}
