package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"rsyn/internal/diag"
	"rsyn/internal/diagfmt"
	"rsyn/internal/observ"
	"rsyn/internal/source"
)

type globalOptions struct {
	color          string
	quiet          bool
	verbose        int
	timings        bool
	maxDiagnostics int
}

func readGlobals(cmd *cobra.Command) (globalOptions, error) {
	var (
		g   globalOptions
		err error
	)
	pf := cmd.Root().PersistentFlags()
	if g.color, err = pf.GetString("color"); err != nil {
		return g, fmt.Errorf("failed to get color flag: %w", err)
	}
	switch g.color {
	case "auto", "on", "off":
	default:
		return g, fmt.Errorf("unsupported --color value %q (must be auto, on or off)", g.color)
	}
	if g.quiet, err = pf.GetBool("quiet"); err != nil {
		return g, fmt.Errorf("failed to get quiet flag: %w", err)
	}
	if g.verbose, err = pf.GetCount("verbose"); err != nil {
		return g, fmt.Errorf("failed to get verbose flag: %w", err)
	}
	if g.timings, err = pf.GetBool("timings"); err != nil {
		return g, fmt.Errorf("failed to get timings flag: %w", err)
	}
	if g.maxDiagnostics, err = pf.GetInt("max-diagnostics"); err != nil {
		return g, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	return g, nil
}

// isTerminal проверяет, является ли writer терминалом
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func (g globalOptions) useColor(w io.Writer) bool {
	return g.color == "on" || (g.color == "auto" && isTerminal(w))
}

func (g globalOptions) logger(w io.Writer) *zap.SugaredLogger {
	if g.quiet {
		return observ.Nop()
	}
	return observ.NewLogger(w, g.verbose, g.useColor(w))
}

func (g globalOptions) printDiagnostics(w io.Writer, bag *diag.Bag, fs *source.FileSet) {
	if bag == nil || bag.Len() == 0 {
		return
	}
	bag.Dedup()
	bag.Sort()
	diagfmt.Pretty(w, bag, fs, diagfmt.PrettyOpts{
		Color:     g.useColor(w),
		Context:   1,
		ShowNotes: true,
	})
}

func (g globalOptions) printTimings(w io.Writer, timer *observ.Timer) {
	if g.timings && !g.quiet {
		fmt.Fprint(w, timer.Summary())
	}
}
