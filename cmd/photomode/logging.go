package main

import (
	"log/slog"
	"os"

	"github.com/urfave/cli"

	"github.com/gogpu/photomode"
)

func setupLogging(ctx *cli.Context) error {
	level := slog.LevelWarn
	if ctx.Bool("v") {
		level = slog.LevelInfo
	}
	if ctx.Bool("vv") {
		level = slog.LevelDebug
	}
	photomode.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	return nil
}
