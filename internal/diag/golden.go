package diag

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"rsyn/internal/source"
)

type goldenLine struct {
	sev    string
	code   string
	path   string
	line   uint32
	column uint32
	msg    string
}

// FormatGoldenDiagnostics renders diagnostics one per line as
// "severity CODE path:line:col message", sorted by position. Multi-line
// messages are folded into one line so the output is stable in golden files.
func FormatGoldenDiagnostics(diags []Diagnostic, fs *source.FileSet, includeNotes bool) string {
	if fs == nil || len(diags) == 0 {
		return ""
	}
	lines := make([]goldenLine, 0, len(diags))
	for i := range diags {
		d := &diags[i]
		if gl, ok := resolveGolden(fs, d.Primary, severityLabel(d.Severity), d.Code, d.Message); ok {
			lines = append(lines, gl)
		}
		if !includeNotes {
			continue
		}
		for _, n := range d.Notes {
			if gl, ok := resolveGolden(fs, n.Span, "note", d.Code, n.Msg); ok {
				lines = append(lines, gl)
			}
		}
	}
	sort.SliceStable(lines, func(i, j int) bool {
		a, b := lines[i], lines[j]
		if a.path != b.path {
			return a.path < b.path
		}
		if a.line != b.line {
			return a.line < b.line
		}
		return a.column < b.column
	})

	var b strings.Builder
	for i, l := range lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%s %s %s:%d:%d %s", l.sev, l.code, l.path, l.line, l.column, l.msg)
	}
	return b.String()
}

func resolveGolden(fs *source.FileSet, sp source.Span, sev string, code Code, msg string) (goldenLine, bool) {
	f := fs.Get(sp.File)
	if f == nil {
		return goldenLine{}, false
	}
	start, _ := fs.Resolve(sp)
	return goldenLine{
		sev:    sev,
		code:   code.ID(),
		path:   strings.TrimPrefix(filepath.ToSlash(f.Path), "./"),
		line:   start.Line,
		column: start.Col,
		msg:    foldMessage(msg),
	}, true
}

func severityLabel(sev Severity) string {
	switch sev {
	case SevError:
		return "error"
	case SevWarning:
		return "warning"
	default:
		return "info"
	}
}

func foldMessage(msg string) string {
	msg = strings.ReplaceAll(msg, "\r\n", "\n")
	return strings.TrimSpace(strings.ReplaceAll(msg, "\n", " "))
}
