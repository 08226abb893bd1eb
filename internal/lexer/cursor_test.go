package lexer

import (
	"testing"

	"rsyn/internal/source"
)

func createFile(content string) *source.File {
	fs := source.NewFileSet()
	return fs.Get(fs.AddVirtual("test.rs", []byte(content)))
}

func TestCursorPeekBump(t *testing.T) {
	c := NewCursor(createFile("ab"))
	if c.Peek() != 'a' || c.PeekAt(1) != 'b' || c.PeekAt(2) != 0 {
		t.Fatalf("unexpected peeks")
	}
	if c.Bump() != 'a' || c.Bump() != 'b' {
		t.Fatalf("unexpected bumps")
	}
	if !c.EOF() || c.Bump() != 0 {
		t.Fatalf("cursor must stop at EOF")
	}
}

func TestCursorMarkResetSpan(t *testing.T) {
	c := NewCursor(createFile("hello"))
	c.Bump()
	m := c.Mark()
	c.Advance(3)
	sp := c.SpanFrom(m)
	if sp.Start != 1 || sp.End != 4 {
		t.Fatalf("span = %v", sp)
	}
	c.Reset(m)
	if !c.HasPrefix("ell") || c.HasPrefix("hello") {
		t.Fatalf("HasPrefix after reset is wrong")
	}
	c.Advance(100)
	if c.Off != c.Limit {
		t.Fatalf("Advance must clamp to limit")
	}
}
