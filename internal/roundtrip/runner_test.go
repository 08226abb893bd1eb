package roundtrip

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"rsyn/internal/ast"
	"rsyn/internal/cache"
)

func writeCase(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, filepath.FromSlash(name))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// renderedMarker встречается только в отрендеренном тексте: рендер ставит пробел перед ';'.
const renderedMarker = " ;"

type funcReference struct {
	name  string
	parse func(path string, src []byte) (*ast.Crate, error)
}

func (r funcReference) Name() string { return r.name }
func (r funcReference) Parse(path string, src []byte) (*ast.Crate, error) {
	return r.parse(path, src)
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	writeCase(t, dir, "b.rs", "")
	writeCase(t, dir, "a.rs", "")
	writeCase(t, dir, "nested/deep/c.rs", "")
	writeCase(t, dir, "notes.txt", "")

	files, err := Discover(dir, "")
	require.NoError(t, err)
	require.Equal(t, []string{
		filepath.Join(dir, "a.rs"),
		filepath.Join(dir, "b.rs"),
		filepath.Join(dir, "nested", "deep", "c.rs"),
	}, files)

	files, err = Discover(dir, "*.rs")
	require.NoError(t, err)
	require.Len(t, files, 2)

	_, err = Discover(dir, "[")
	require.Error(t, err)

	single := filepath.Join(dir, "a.rs")
	files, err = Discover(single, "")
	require.NoError(t, err)
	require.Equal(t, []string{single}, files)
}

func TestRunStatuses(t *testing.T) {
	dir := t.TempDir()
	files := []string{
		writeCase(t, dir, "ok.rs", "pub fn f<T: Clone>(x: T) -> T { x.clone() }"),
		writeCase(t, dir, "broken.rs", "fn ("),
		filepath.Join(dir, "missing.rs"),
		writeCase(t, dir, "unsupported.rs", "union U { a: u8 }"),
	}

	report, err := (&Runner{Jobs: 2}).Run(context.Background(), files)
	require.NoError(t, err)
	require.Len(t, report.Files, 4)

	require.Equal(t, StatusPass, report.Files[0].Status)
	require.Equal(t, StatusParseFail, report.Files[1].Status)
	require.Equal(t, StatusLoadError, report.Files[2].Status)
	require.Equal(t, StatusParseFail, report.Files[3].Status)
	require.Contains(t, report.Files[3].Detail, "union")
	require.Equal(t, 3, report.Failed)

	err = report.Err()
	require.True(t, errors.Is(err, ErrFailures))
	require.EqualError(t, err, "3 failures")
}

func TestRunDetectsMismatchAndReparseFailure(t *testing.T) {
	dir := t.TempDir()
	files := []string{writeCase(t, dir, "s.rs", "struct S; struct T;")}

	dropping := funcReference{name: "dropping", parse: func(path string, src []byte) (*ast.Crate, error) {
		crate, err := SelfReference{}.Parse(path, src)
		if err == nil && bytes.Contains(src, []byte(renderedMarker)) {
			crate.Items = crate.Items[:1]
		}
		return crate, err
	}}
	report, err := (&Runner{Reference: dropping}).Run(context.Background(), files)
	require.NoError(t, err)
	require.Equal(t, StatusMismatch, report.Files[0].Status)
	require.NotEmpty(t, report.Files[0].Detail)

	refusing := funcReference{name: "refusing", parse: func(path string, src []byte) (*ast.Crate, error) {
		if bytes.Contains(src, []byte(renderedMarker)) {
			return nil, errors.New("rendered text rejected")
		}
		return SelfReference{}.Parse(path, src)
	}}
	report, err = (&Runner{Reference: refusing}).Run(context.Background(), files)
	require.NoError(t, err)
	require.Equal(t, StatusReparseFail, report.Files[0].Status)
	require.Contains(t, report.Files[0].Detail, "rendered text rejected")
	require.Contains(t, report.Files[0].Detail, "struct S ;")
}

func TestRunUsesCache(t *testing.T) {
	dir := t.TempDir()
	files := []string{
		writeCase(t, dir, "a.rs", "fn a() {}"),
		writeCase(t, dir, "b.rs", "fn ("),
	}
	c, err := cache.Open(t.TempDir())
	require.NoError(t, err)

	runner := &Runner{Cache: c, Salt: "test"}
	first, err := runner.Run(context.Background(), files)
	require.NoError(t, err)
	require.Equal(t, StatusPass, first.Files[0].Status)
	require.Zero(t, first.Cached)

	second, err := runner.Run(context.Background(), files)
	require.NoError(t, err)
	require.Equal(t, StatusCached, second.Files[0].Status)
	require.Equal(t, StatusParseFail, second.Files[1].Status, "failures are never cached")
	require.Equal(t, 1, second.Cached)
	require.Equal(t, 1, second.Failed)

	// другой salt: другой ключ
	third, err := (&Runner{Cache: c, Salt: "other"}).Run(context.Background(), files[:1])
	require.NoError(t, err)
	require.Equal(t, StatusPass, third.Files[0].Status)
}

func TestRunLogsSummary(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	path := writeCase(t, t.TempDir(), "a.rs", "mod m;")
	_, err := (&Runner{Logger: zap.New(core).Sugar()}).Run(context.Background(), []string{path})
	require.NoError(t, err)

	require.Equal(t, 1, logs.FilterMessage("verified").Len())
	summary := logs.FilterMessage("round trip finished").All()
	require.Len(t, summary, 1)
	require.EqualValues(t, 0, summary[0].ContextMap()["failed"])
	require.Equal(t, "self", summary[0].ContextMap()["reference"])
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	path := writeCase(t, t.TempDir(), "a.rs", "mod m;")
	_, err := (&Runner{}).Run(ctx, []string{path})
	require.ErrorIs(t, err, context.Canceled)
}

func TestWriteLog(t *testing.T) {
	report := &Report{
		Files: []FileResult{
			{Path: "a.rs", Status: StatusPass},
			{Path: "b.rs", Status: StatusCached},
			{Path: "c.rs", Status: StatusMismatch, Detail: "diff"},
			{Path: "d.rs", Status: StatusParseFail, Detail: "<input>:1:1: boom"},
		},
		Failed: 2,
	}
	var buf bytes.Buffer
	require.NoError(t, WriteLog(&buf, report, false))
	require.Equal(t, strings.Join([]string{
		"=== a.rs: pass in 0ms",
		"=== b.rs: pass (cached)",
		"=== c.rs: FAIL",
		"diff",
		"=== d.rs: parse-fail",
		"<input>:1:1: boom",
		"2 failures",
		"",
	}, "\n"), buf.String())
}
