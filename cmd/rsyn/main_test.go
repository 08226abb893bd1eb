package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	root := newRootCmd()
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(append([]string{"--color=off"}, args...))
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func writeSource(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestSplitCommand(t *testing.T) {
	out, _, err := execute(t, "split", "<'a, 'b: 'a, #[may_dangle] T: 'a> where T: Debug", "--trait", "MyTrait", "--name", "Test")
	require.NoError(t, err)
	require.Equal(t, "impl < 'a , 'b : 'a , # [ may_dangle ] T : 'a > MyTrait for Test < 'a , 'b , T > where T : Debug { }\n", out)

	out, _, err = execute(t, "split", "<T: Clone = u8>")
	require.NoError(t, err)
	require.Equal(t, "impl:  < T : Clone >\ntype:  < T >\nwhere: \n", out)

	_, _, err = execute(t, "split", "<T, 'a>")
	require.Error(t, err)
}

func TestQuoteCommand(t *testing.T) {
	out, _, err := execute(t, "quote", "struct S { #(#names: #tys),* }", "--each", "names=a;b", "--each", "tys=u8;Vec<bool>")
	require.NoError(t, err)
	require.Equal(t, "struct S { a : u8 , b : Vec < bool > }\n", out)

	out, _, err = execute(t, "quote", "fn #name() {}", "--var", "name=run")
	require.NoError(t, err)
	require.Equal(t, "fn run ( ) { }\n", out)

	_, _, err = execute(t, "quote", "#missing")
	require.Error(t, err)

	_, _, err = execute(t, "quote", "x", "--var", "noequals")
	require.Error(t, err)
}

func TestRenderAndParseCommands(t *testing.T) {
	path := writeSource(t, "a.rs", "pub struct S<T>(T);")
	out, _, err := execute(t, "render", path)
	require.NoError(t, err)
	require.Equal(t, "pub struct S < T > ( T ) ;\n", out)

	out, _, err = execute(t, "parse", "--format", "source", path)
	require.NoError(t, err)
	require.Equal(t, "pub struct S < T > ( T ) ;\n", out)

	bad := writeSource(t, "bad.rs", "struct S<T, 'a>;")
	_, stderr, err := execute(t, "render", bad)
	require.Error(t, err)
	require.Contains(t, stderr, "SYN2016")
}

func TestTokenizeCommand(t *testing.T) {
	path := writeSource(t, "t.rs", "fn f")
	out, _, err := execute(t, "tokenize", path)
	require.NoError(t, err)
	require.Contains(t, out, `"f" at 1:4`)
}

func TestRoundtripCommand(t *testing.T) {
	_, stderr, err := execute(t, "roundtrip", "--jobs", "2", "../../testdata/cases")
	require.NoError(t, err)
	require.Contains(t, stderr, "items.rs: pass in ")

	bad := writeSource(t, "bad.rs", "fn (")
	_, stderr, err = execute(t, "--quiet", "roundtrip", bad)
	require.EqualError(t, err, "1 failures")
	require.Contains(t, stderr, "bad.rs: parse-fail")
	require.Contains(t, stderr, "1 failures")
}

func TestVersionCommand(t *testing.T) {
	out, _, err := execute(t, "version", "--format", "json")
	require.NoError(t, err)
	require.Contains(t, out, `"tool": "rsyn"`)

	_, _, err = execute(t, "version", "--format", "xml")
	require.Error(t, err)
}

func TestReadUIMode(t *testing.T) {
	for in, want := range map[string]uiMode{"": uiModeAuto, "AUTO": uiModeAuto, " on ": uiModeOn, "off": uiModeOff} {
		got, err := readUIMode(in)
		require.NoError(t, err)
		require.Equal(t, want, got, "input %q", in)
	}
	_, err := readUIMode("fancy")
	require.Error(t, err)

	var buf bytes.Buffer
	require.False(t, shouldUseTUI(uiModeAuto, &buf))
	require.True(t, shouldUseTUI(uiModeOn, &buf))

	_, _, err = execute(t, "roundtrip", "--ui", "fancy", "../../testdata/cases")
	require.Error(t, err)
}

func TestDisplayFileList(t *testing.T) {
	cwd, err := os.Getwd()
	require.NoError(t, err)
	got := displayFileList([]string{filepath.Join(cwd, "x", "a.rs"), "/elsewhere/b.rs"})
	require.Equal(t, filepath.Join("x", "a.rs"), got[0])
	require.Equal(t, "/elsewhere/b.rs", got[1])
}
