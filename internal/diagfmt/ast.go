package diagfmt

import (
	"fmt"
	"io"

	"rsyn/internal/ast"
	"rsyn/internal/quote"
)

// TreeFormat selects how a parsed crate is shown by `rsyn parse`.
type TreeFormat string

const (
	TreeFormatDump   TreeFormat = "tree"   // отступами, через ast.Fprint
	TreeFormatSource TreeFormat = "source" // токены, разделённые пробелами
)

// FormatCrate prints crate in the requested format.
func FormatCrate(w io.Writer, crate *ast.Crate, format TreeFormat) error {
	switch format {
	case TreeFormatDump, "":
		return ast.Fprint(w, crate)
	case TreeFormatSource:
		_, err := fmt.Fprintln(w, quote.Render(crate))
		return err
	}
	return fmt.Errorf("unknown tree format %q", format)
}
