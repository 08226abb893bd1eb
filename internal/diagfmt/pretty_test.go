package diagfmt

import (
	"bytes"
	"strings"
	"testing"

	"rsyn/internal/diag"
	"rsyn/internal/source"
)

// TestPathModes проверяет различные режимы форматирования путей
func TestPathModes(t *testing.T) {
	fs := source.NewFileSet()
	content := []byte("let x = \"unterminated string\n")
	fileID := fs.AddVirtual("/home/user/project/src/test.rs", content)

	bag := diag.NewBag(10)
	bag.Add(diag.New(
		diag.SevError,
		diag.LexUnterminatedString,
		source.Span{File: fileID, Start: 8, End: 28},
		"Unterminated string literal",
	))

	tests := []struct {
		name     string
		mode     PathMode
		contains string
	}{
		{"Absolute path", PathModeAbsolute, "/home/user/project/src/test.rs:1:9"},
		{"Relative path", PathModeRelative, "src/test.rs:1:9"},
		{"Basename only", PathModeBasename, "test.rs:1:9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			Pretty(&buf, bag, fs, PrettyOpts{
				Context:  1,
				PathMode: tt.mode,
				BaseDir:  "/home/user/project",
			})
			output := buf.String()

			if !strings.Contains(output, tt.contains) {
				t.Errorf("Expected output to contain %q, got:\n%s", tt.contains, output)
			}
			if !strings.Contains(output, "ERROR LEX1002: Unterminated string literal") {
				t.Errorf("Expected header in output, got:\n%s", output)
			}
		})
	}
}

func TestPathModeAuto(t *testing.T) {
	tests := []struct {
		path, expected string
	}{
		{"test.rs", "test.rs:1:9"},
		{"/very/long/absolute/path/to/some/nested/directory/file.rs", "file.rs:1:9"},
	}
	for _, tt := range tests {
		fs := source.NewFileSet()
		fileID := fs.AddVirtual(tt.path, []byte("let x = 42\n"))
		bag := diag.NewBag(10)
		bag.Add(diag.New(diag.SevWarning, diag.LexUnknownChar, source.Span{File: fileID, Start: 8, End: 10}, "Test warning"))

		var buf bytes.Buffer
		Pretty(&buf, bag, fs, PrettyOpts{PathMode: PathModeAuto})
		if !strings.HasPrefix(buf.String(), tt.expected) {
			t.Errorf("Expected output to start with %q, got:\n%s", tt.expected, buf.String())
		}
	}
}

func TestPrettyExcerpt(t *testing.T) {
	fs := source.NewFileSet()
	src := "fn a() {}\nstruct S<T, 'a>;\nfn b() {}\n"
	fileID := fs.AddVirtual("lib.rs", []byte(src))

	bag := diag.NewBag(10)
	start := uint32(strings.Index(src, "'a"))
	bag.Add(diag.NewError(diag.SynLifetimeAfterType, source.Span{File: fileID, Start: start, End: start + 2}, "lifetime parameters must be declared prior to type parameters"))

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{Context: 1})
	want := strings.Join([]string{
		"lib.rs:2:13: ERROR SYN2016: lifetime parameters must be declared prior to type parameters",
		"1 | fn a() {}",
		"2 | struct S<T, 'a>;",
		"  |             ^~",
		"3 | fn b() {}",
		"",
	}, "\n")
	if got := buf.String(); got != want {
		t.Fatalf("unexpected output:\n%s\nwant:\n%s", got, want)
	}
}

func TestPrettyWideCharsAndNotes(t *testing.T) {
	fs := source.NewFileSet()
	src := "// 日本\n\tlet x = 1;"
	fileID := fs.AddVirtual("w.rs", []byte(src))
	start := uint32(strings.Index(src, "x"))

	bag := diag.NewBag(10)
	d := diag.NewError(diag.SynUnexpectedToken, source.Span{File: fileID, Start: start, End: start + 1}, "boom").
		WithNote(source.Span{File: fileID, Start: 0, End: 2}, "comment here")
	bag.Add(d)

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{ShowNotes: true})
	out := buf.String()
	if !strings.Contains(out, "  | \t    ^\n") {
		t.Fatalf("caret must keep the tab and skip 'let ':\n%q", out)
	}
	if !strings.Contains(out, "note: w.rs:1:1: comment here") {
		t.Fatalf("note missing:\n%s", out)
	}
}

func TestPrettyWidthClipsExcerpt(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("c.rs", []byte("fn very_long_function_name() {}"))
	bag := diag.NewBag(10)
	bag.Add(diag.NewError(diag.SynExpectItem, source.Span{File: fileID, Start: 0, End: 2}, "x"))

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{Width: 10})
	if !strings.Contains(buf.String(), "1 | fn very...\n") {
		t.Fatalf("expected clipped line, got:\n%s", buf.String())
	}
}

func TestPrettyColor(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("c.rs", []byte("x"))
	bag := diag.NewBag(10)
	bag.Add(diag.NewError(diag.SynExpectItem, source.Span{File: fileID, Start: 0, End: 1}, "x"))

	var plain, colored bytes.Buffer
	Pretty(&plain, bag, fs, PrettyOpts{})
	Pretty(&colored, bag, fs, PrettyOpts{Color: true})
	if strings.Contains(plain.String(), "\x1b[") {
		t.Fatalf("plain output has escape codes: %q", plain.String())
	}
	if !strings.Contains(colored.String(), "\x1b[") {
		t.Fatalf("colored output has no escape codes: %q", colored.String())
	}
}
