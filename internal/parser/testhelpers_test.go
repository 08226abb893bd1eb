package parser

import (
	"fmt"
	"strings"
	"testing"

	"rsyn/internal/ast"
	"rsyn/internal/diag"
	"rsyn/internal/source"
)

func diagnosticsSummary(bag *diag.Bag) string {
	if bag == nil {
		return "<nil bag>"
	}
	diags := bag.Items()
	if len(diags) == 0 {
		return "<none>"
	}
	lines := make([]string, len(diags))
	for i, d := range diags {
		lines[i] = fmt.Sprintf("[%s] %s", d.Code.ID(), d.Message)
	}
	return strings.Join(lines, "; ")
}

func parseSource(t *testing.T, src string) (*ast.Crate, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.rs", []byte(src)))
	bag := diag.NewBag(100)
	res := ParseFile(fs, file, Options{Reporter: &diag.BagReporter{Bag: bag}})
	return res.Crate, res.Bag
}

func mustParseItem(t *testing.T, src string) ast.Item {
	t.Helper()
	crate, bag := parseSource(t, src)
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics for %q: %s", src, diagnosticsSummary(bag))
	}
	if len(crate.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(crate.Items))
	}
	return crate.Items[0]
}
