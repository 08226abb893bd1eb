package roundtrip

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// WriteLog prints one "=== path: verdict" line per file, failure details
// below failing lines, and a closing "N failures" line when any failed.
func WriteLog(w io.Writer, report *Report, colored bool) error {
	pass := color.New(color.FgGreen)
	fail := color.New(color.FgRed, color.Bold)
	dim := color.New(color.Faint)
	for _, c := range []*color.Color{pass, fail, dim} {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	for _, f := range report.Files {
		var line string
		switch f.Status {
		case StatusPass:
			line = pass.Sprintf("pass in %dms", f.Elapsed.Milliseconds())
		case StatusCached:
			line = dim.Sprint("pass (cached)")
		case StatusMismatch:
			line = fail.Sprint("FAIL") + "\n" + f.Detail
		default:
			line = fail.Sprint(string(f.Status)) + "\n" + f.Detail
		}
		if _, err := fmt.Fprintf(w, "=== %s: %s\n", f.Path, line); err != nil {
			return err
		}
	}
	if report.Failed > 0 {
		_, err := fmt.Fprintln(w, fail.Sprintf("%d failures", report.Failed))
		return err
	}
	return nil
}
