package roundtrip

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/stretchr/testify/require"

	"rsyn/internal/diag"
	"rsyn/internal/parser"
	"rsyn/internal/quote"
	"rsyn/internal/source"
	"rsyn/internal/testkit"
)

const (
	casesDir  = "../../testdata/cases"
	renderDir = "../../testdata/render"
)

func TestCorpusRoundTrip(t *testing.T) {
	files, err := Discover(casesDir, "")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	report, err := (&Runner{Jobs: 4}).Run(context.Background(), files)
	require.NoError(t, err)
	if report.Failed > 0 {
		var log strings.Builder
		require.NoError(t, WriteLog(&log, report, false))
		t.Fatalf("round trip failed:\n%s", log.String())
	}
}

// Рендер каждого item на своей строке сравнивается с .golden.
func TestGoldenRenders(t *testing.T) {
	inputs, err := Discover(renderDir, "*.rs")
	require.NoError(t, err)
	require.NotEmpty(t, inputs)

	for _, input := range inputs {
		name := strings.TrimSuffix(filepath.Base(input), ".rs")
		t.Run(name, func(t *testing.T) {
			src, err := os.ReadFile(input)
			require.NoError(t, err)
			crate, err := parser.ParseCrate(string(src))
			require.NoError(t, err)

			var lines []string
			for _, a := range crate.Attrs {
				lines = append(lines, quote.Render(a))
			}
			for _, it := range crate.Items {
				lines = append(lines, quote.Render(it))
			}
			got := strings.Join(lines, "\n") + "\n"

			want, err := os.ReadFile(strings.TrimSuffix(input, ".rs") + ".golden")
			require.NoError(t, err)
			if got == string(want) {
				return
			}
			diff, _ := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
				A:        difflib.SplitLines(string(want)),
				B:        difflib.SplitLines(got),
				FromFile: name + ".golden",
				ToFile:   "rendered",
				Context:  2,
			})
			t.Fatalf("render differs from golden:\n%s", diff)
		})
	}
}

func TestCorpusSpans(t *testing.T) {
	files, err := Discover(casesDir, "")
	require.NoError(t, err)

	for _, path := range files {
		t.Run(filepath.Base(path), func(t *testing.T) {
			fs := source.NewFileSet()
			id, err := fs.Load(path)
			require.NoError(t, err)
			file := fs.Get(id)
			bag := diag.NewBag(100)
			res := parser.ParseFile(fs, file, parser.Options{Reporter: diag.BagReporter{Bag: bag}})
			require.False(t, bag.HasErrors())
			require.NoError(t, testkit.CheckSpanInvariants(res.Crate, file))
		})
	}
}
