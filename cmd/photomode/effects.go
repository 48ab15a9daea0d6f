package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/urfave/cli"

	"github.com/gogpu/photomode/effects"
)

func effectsAction(ctx *cli.Context) error {
	p := newPrinter(os.Stdout, ctx.GlobalBool("no-color"))
	p.header("Effect values")
	tw := tabwriter.NewWriter(p.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "KEY\tLABEL\tRANGE\tDEFAULT\tNATIVE")
	for _, d := range effects.Definitions() {
		fmt.Fprintf(tw, "%s\t%s\t[%g, %g]\t%g\t[%.4g, %.4g]\n",
			d.Key, d.Label, d.Min, d.Max, d.Default, d.NativeMin, d.NativeMax)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(p.out)
	p.header("Effects enabled by default")
	enabled := effects.DefaultEnabled()
	all := effects.Enabled{effects.BloomEffect: true}
	for _, name := range effects.PassOrder(all) {
		if enabled[name] {
			p.ok("%s", name)
		} else {
			p.fail("%s", name)
		}
	}
	return nil
}
