package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli"

	"github.com/gogpu/photomode"
	"github.com/gogpu/photomode/encode"
	"github.com/gogpu/photomode/screenshot"
)

func watchAction(ctx *cli.Context) error {
	path := ctx.Args().First()
	if path == "" {
		return errors.New("watch: config file required")
	}
	p := newPrinter(os.Stdout, ctx.GlobalBool("no-color"))
	frames, out := ctx.Int("frames"), ctx.String("out")

	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	p.header(fmt.Sprintf("watching %s", path))
	err := photomode.WatchConfig(sigCtx, path, func(cfg photomode.Config, err error) {
		if err != nil {
			p.fail("%v", err)
			return
		}
		j := job{
			cfg:     cfg,
			out:     out,
			frames:  frames,
			scale:   1,
			capture: screenshot.Options{ReturnType: encode.ReturnFile},
		}
		if err := j.run(sigCtx, p); err != nil {
			p.fail("%v", err)
		}
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
