package driver

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"

	"rsyn/internal/diag"
	"rsyn/internal/parser"
	"rsyn/internal/token"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestTokenize(t *testing.T) {
	path := writeFile(t, t.TempDir(), "a.rs", "fn f() -> u8 { 'x' }")
	res, err := Tokenize(path, 10)
	require.NoError(t, err)
	require.Zero(t, res.Bag.Len())
	require.Equal(t, token.KwFn, res.Tokens[0].Kind)
	require.Equal(t, token.EOF, res.Tokens[len(res.Tokens)-1].Kind)

	bad := TokenizeSource("b.rs", []byte(`"open`), 10)
	require.True(t, bad.Bag.HasErrors())
	d, _ := bad.Bag.FirstError()
	require.Equal(t, diag.LexUnterminatedString, d.Code)
}

func TestParseAndRender(t *testing.T) {
	path := writeFile(t, t.TempDir(), "lib.rs", "pub struct S<T>(T);\nimpl<T> S<T> { fn get(self) -> T { self.0 } }\n")
	res, err := Render(path, 10)
	require.NoError(t, err)
	require.NoError(t, res.Err())
	require.Len(t, res.Crate.Items, 2)
	require.Equal(t, "pub struct S < T > ( T ) ; impl < T > S < T > { fn get ( self ) -> T { self . 0 } }", res.Text)
}

func TestParseReportsErrors(t *testing.T) {
	res, err := ParseSource("bad.rs", []byte("struct S<T, 'a>;"), 10)
	require.NoError(t, err)
	require.True(t, res.Bag.HasErrors())

	var pe *parser.ParseError
	require.True(t, errors.As(res.Err(), &pe))
	require.Equal(t, diag.SynLifetimeAfterType, pe.Code)
	require.Equal(t, "bad.rs", pe.Path)
	require.EqualValues(t, 13, pe.Pos.Col)
}

func TestRenderSkipsBrokenFiles(t *testing.T) {
	path := writeFile(t, t.TempDir(), "bad.rs", "fn (")
	res, err := Render(path, 10)
	require.NoError(t, err)
	require.Error(t, res.Err())
	require.Empty(t, res.Text)
}

func TestParseMissingFile(t *testing.T) {
	_, err := Parse(filepath.Join(t.TempDir(), "missing.rs"), 10)
	require.Error(t, err)
	require.True(t, errors.Is(err, os.ErrNotExist))
}

func TestParseFiles(t *testing.T) {
	dir := t.TempDir()
	files := []string{
		writeFile(t, dir, "a.rs", "fn a() {}"),
		filepath.Join(dir, "missing.rs"),
		writeFile(t, dir, "c.rs", "struct C; enum E { X }"),
		writeFile(t, dir, "d.rs", "fn ("),
	}

	fs, results, err := ParseFiles(context.Background(), files, 10, 2)
	require.NoError(t, err)
	require.Len(t, results, 4)

	require.False(t, results[0].Bag.HasErrors())
	require.Len(t, results[0].Crate.Items, 1)

	require.Nil(t, results[1].Crate)
	d, ok := results[1].Bag.FirstError()
	require.True(t, ok)
	require.Equal(t, diag.IOLoadFileError, d.Code)

	require.Len(t, results[2].Crate.Items, 2)
	require.Equal(t, "c.rs", filepath.Base(fs.Get(results[2].FileID).Path))

	require.True(t, results[3].Bag.HasErrors())
}

func TestParseFilesCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	path := writeFile(t, t.TempDir(), "a.rs", "fn a() {}")
	_, _, err := ParseFiles(ctx, []string{path}, 10, 1)
	require.ErrorIs(t, err, context.Canceled)
}
