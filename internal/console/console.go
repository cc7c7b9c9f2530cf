// Package console provides the leveled, color-coded line output used by
// every command. A Console is constructed once at startup and handed to the
// code that reports progress, so output destination and color behavior are
// plain configuration rather than package globals.
package console

import (
	"io"
	"os"

	"github.com/pterm/pterm"
)

// Console prints leveled status lines. The zero value is not usable; build
// one with New.
type Console struct {
	success *pterm.PrefixPrinter
	info    *pterm.PrefixPrinter
	warn    *pterm.PrefixPrinter
	errp    *pterm.PrefixPrinter
}

// Options configures a Console.
type Options struct {
	Writer io.Writer // defaults to os.Stdout
	Color  bool
}

// New builds a Console writing to opts.Writer.
func New(opts Options) *Console {
	w := opts.Writer
	if w == nil {
		w = os.Stdout
	}
	if !opts.Color {
		pterm.DisableColor()
	}
	return &Console{
		success: pterm.Success.WithWriter(w),
		info:    pterm.Info.WithWriter(w),
		warn:    pterm.Warning.WithWriter(w),
		errp:    pterm.Error.WithWriter(w),
	}
}

// Successf reports a completed step.
func (c *Console) Successf(format string, args ...any) {
	c.success.Printfln(format, args...)
}

// Infof reports neutral progress.
func (c *Console) Infof(format string, args ...any) {
	c.info.Printfln(format, args...)
}

// Warnf reports a non-fatal problem; the run continues.
func (c *Console) Warnf(format string, args ...any) {
	c.warn.Printfln(format, args...)
}

// Errorf reports a failed item. It does not terminate anything by itself.
func (c *Console) Errorf(format string, args ...any) {
	c.errp.Printfln(format, args...)
}
