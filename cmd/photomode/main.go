// Command photomode renders the soft demo scene in photo mode and saves a
// still.
//
// Usage:
//
//	photomode capture -width 3840 -height 2160 -format png -o still.png
//	photomode capture -config photomode.yaml -effect vignette=0.4
//	photomode watch photomode.yaml
//	photomode effects
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli"
)

func main() {
	app := cli.NewApp()
	app.Name = "photomode"
	app.Usage = "capture photo mode stills of a demo scene"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable debug logging",
		},
		cli.BoolFlag{
			Name:  "no-color",
			Usage: "disable colored output",
		},
	}
	app.Before = setupLogging
	app.Commands = []cli.Command{
		{
			Name:  "capture",
			Usage: "render the demo scene and save a still",
			Description: `
Render the demo scene through the soft engine with photo mode on, let the
autofocus settle for a few frames, then capture a still at the requested
resolution. Flags override values loaded from -config.`,
			Flags:  captureFlags(),
			Action: captureAction,
		},
		{
			Name:      "watch",
			Usage:     "re-capture every time a config file changes",
			ArgsUsage: "config.yaml|config.toml",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "out, o",
					Value: "",
					Usage: "output file; defaults to screenshot.<format>",
				},
				cli.IntFlag{
					Name:  "frames",
					Value: defaultFrames,
					Usage: "frames to run before each capture",
				},
			},
			Action: watchAction,
		},
		{
			Name:   "effects",
			Usage:  "list the adjustable photo effects",
			Action: effectsAction,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "photomode:", err)
		os.Exit(1)
	}
}
