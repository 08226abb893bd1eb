package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"rsyn/internal/diag"
	"rsyn/internal/source"
)

type palette struct {
	sev      map[diag.Severity]*color.Color
	location *color.Color
	gutter   *color.Color
	caret    *color.Color
	note     *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		sev: map[diag.Severity]*color.Color{
			diag.SevError:   color.New(color.FgRed, color.Bold),
			diag.SevWarning: color.New(color.FgYellow, color.Bold),
			diag.SevInfo:    color.New(color.FgCyan, color.Bold),
		},
		location: color.New(color.Bold),
		gutter:   color.New(color.FgBlue),
		caret:    color.New(color.FgRed, color.Bold),
		note:     color.New(color.FgGreen),
	}
	all := []*color.Color{p.location, p.gutter, p.caret, p.note}
	for _, c := range p.sev {
		all = append(all, c)
	}
	// цвет задаётся опцией, а не глобальным color.NoColor
	for _, c := range all {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждого diag печатает:
// <path>:<line>:<col>: <SEV> <CODE>: <Message>
// затем контекст строки с подчёркиванием ^~~~ по Span, затем Notes с аналогичным форматом.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	pal := newPalette(opts.Color)
	for i, d := range bag.Items() {
		if i > 0 {
			fmt.Fprintln(w)
		}
		prettyOne(w, d, fs, opts, pal)
	}
}

func prettyOne(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts, pal palette) {
	sevColor, ok := pal.sev[d.Severity]
	if !ok {
		sevColor = pal.sev[diag.SevError]
	}
	fmt.Fprintf(w, "%s: %s %s: %s\n",
		pal.location.Sprint(location(d.Primary, fs, opts.PathMode, opts.BaseDir)),
		sevColor.Sprint(d.Severity.String()),
		d.Code.ID(),
		d.Message,
	)
	excerpt(w, d.Primary, fs, opts, pal)

	if opts.ShowNotes {
		for _, n := range d.Notes {
			fmt.Fprintf(w, "  %s %s: %s\n",
				pal.note.Sprint("note:"),
				location(n.Span, fs, opts.PathMode, opts.BaseDir),
				n.Msg,
			)
		}
	}
	if opts.ShowFixes {
		for _, f := range d.Fixes {
			fmt.Fprintf(w, "  %s %s\n", pal.note.Sprint("fix:"), f.Title)
			for _, e := range f.Edits {
				fmt.Fprintf(w, "    %s: replace with %q\n", location(e.Span, fs, opts.PathMode, opts.BaseDir), e.NewText)
			}
		}
	}
}

func location(span source.Span, fs *source.FileSet, mode PathMode, baseDir string) string {
	f := fs.Get(span.File)
	if f == nil {
		return "<unknown>"
	}
	start, _ := fs.Resolve(span)
	return fmt.Sprintf("%s:%d:%d", formatPath(f.Path, mode, baseDir), start.Line, start.Col)
}

// excerpt печатает строки вокруг span и подчёркивает его в первой строке.
func excerpt(w io.Writer, span source.Span, fs *source.FileSet, opts PrettyOpts, pal palette) {
	f := fs.Get(span.File)
	if f == nil {
		return
	}
	start, end := fs.Resolve(span)
	lineCount := uint32(len(f.LineIdx)) + 1
	ctx := uint32(max(opts.Context, 0))

	first := start.Line
	if first > ctx {
		first -= ctx
	} else {
		first = 1
	}
	last := min(start.Line+ctx, lineCount)
	gutterWidth := len(fmt.Sprint(last))

	for ln := first; ln <= last; ln++ {
		text := f.GetLine(ln)
		fmt.Fprintf(w, "%s %s\n", pal.gutter.Sprintf("%*d |", gutterWidth, ln), clip(text, opts.Width))
		if ln != start.Line {
			continue
		}
		pad, width := underline(text, start, end)
		fmt.Fprintf(w, "%s %s%s\n",
			pal.gutter.Sprintf("%*s |", gutterWidth, ""),
			pad,
			pal.caret.Sprint("^"+strings.Repeat("~", width-1)),
		)
	}
}

// underline возвращает отступ до начала span (табы сохраняются) и ширину подчёркивания
// в колонках терминала.
func underline(line string, start, end source.LineCol) (string, int) {
	from := min(int(start.Col)-1, len(line))
	to := len(line)
	if end.Line == start.Line {
		to = min(max(int(end.Col)-1, from), len(line))
	}
	var pad strings.Builder
	for _, r := range line[:from] {
		if r == '\t' {
			pad.WriteByte('\t')
			continue
		}
		pad.WriteString(strings.Repeat(" ", runewidth.RuneWidth(r)))
	}
	return pad.String(), max(runewidth.StringWidth(line[from:to]), 1)
}

func clip(s string, width uint8) string {
	if width == 0 || runewidth.StringWidth(s) <= int(width) {
		return s
	}
	return runewidth.Truncate(s, int(width), "...")
}
