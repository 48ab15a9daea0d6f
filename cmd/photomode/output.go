package main

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/muesli/termenv"
)

// printer writes colored status lines.
type printer struct {
	out *termenv.Output
}

func newPrinter(w io.Writer, noColor bool) printer {
	if noColor {
		return printer{out: termenv.NewOutput(w, termenv.WithProfile(termenv.Ascii))}
	}
	return printer{out: termenv.NewOutput(w)}
}

func (p printer) ok(format string, args ...any) {
	mark := p.out.String("✔").Foreground(p.out.Color("2")).Bold()
	fmt.Fprintf(p.out, "%s %s\n", mark, fmt.Sprintf(format, args...))
}

func (p printer) fail(format string, args ...any) {
	mark := p.out.String("✘").Foreground(p.out.Color("1")).Bold()
	fmt.Fprintf(p.out, "%s %s\n", mark, fmt.Sprintf(format, args...))
}

func (p printer) header(s string) {
	fmt.Fprintln(p.out, p.out.String(s).Bold().Underline())
}

// saved reports a written still.
func (p printer) saved(path string, w, h, size int, took time.Duration) {
	p.ok("%s  %s×%s  %s  in %s",
		p.out.String(path).Foreground(p.out.Color("6")),
		humanize.Comma(int64(w)), humanize.Comma(int64(h)),
		humanize.Bytes(uint64(size)),
		took.Round(time.Millisecond))
}
