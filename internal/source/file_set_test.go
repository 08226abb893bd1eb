package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileSetVersioning(t *testing.T) {
	fs := NewFileSet()

	id1 := fs.Add("lib.rs", []byte("fn a() {}"), 0)
	id2 := fs.Add("lib.rs", []byte("fn b() {}"), 0)
	if id1 == id2 {
		t.Fatalf("re-adding a path must allocate a new id")
	}
	latest, ok := fs.GetLatest("lib.rs")
	if !ok || latest != id2 {
		t.Fatalf("GetLatest = %d,%v want %d", latest, ok, id2)
	}
	if string(fs.Get(id1).Content) != "fn a() {}" {
		t.Fatalf("old version must stay reachable")
	}
}

func TestResolveLineCol(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("x.rs", []byte("ab\ncd\n\nef"))
	cases := []struct {
		off  uint32
		want LineCol
	}{
		{0, LineCol{1, 1}},
		{2, LineCol{1, 3}}, // the '\n' itself
		{3, LineCol{2, 1}},
		{6, LineCol{3, 1}},
		{8, LineCol{4, 2}},
	}
	for _, c := range cases {
		start, _ := fs.Resolve(Span{File: id, Start: c.off, End: c.off})
		if start != c.want {
			t.Errorf("offset %d: got %+v want %+v", c.off, start, c.want)
		}
	}
	if got := fs.Get(id).GetLine(2); got != "cd" {
		t.Errorf("GetLine(2) = %q", got)
	}
	if got := fs.Get(id).GetLine(3); got != "" {
		t.Errorf("GetLine(3) = %q", got)
	}
}

func TestLoadNormalizesCRLFAndBOM(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.rs")
	if err := os.WriteFile(path, []byte("\xEF\xBB\xBFfn a() {}\r\nfn b() {}\r\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	fs := NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	f := fs.Get(id)
	if string(f.Content) != "fn a() {}\nfn b() {}\n" {
		t.Fatalf("unexpected content %q", f.Content)
	}
	if f.Flags&FileHadBOM == 0 || f.Flags&FileNormalizedCRLF == 0 {
		t.Fatalf("expected BOM and CRLF flags, got %b", f.Flags)
	}
}
