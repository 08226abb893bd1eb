package parser

import (
	"fmt"

	"github.com/cockroachdb/errors"

	"rsyn/internal/diag"
	"rsyn/internal/source"
)

// ErrUnsupported marks errors produced for constructs outside the supported
// grammar (dyn, async, union, const generics). Match with errors.Is.
var ErrUnsupported = errors.New("unsupported construct")

// ParseError is the first error diagnostic of a parse, resolved to a position.
type ParseError struct {
	Code diag.Code
	Msg  string
	Span source.Span
	Pos  source.LineCol
	Path string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d:%d: %s: %s", e.Path, e.Pos.Line, e.Pos.Col, e.Code.ID(), e.Msg)
}

// ErrorFromBag converts the first error in bag into an error, or returns nil.
func ErrorFromBag(fs *source.FileSet, bag *diag.Bag) error {
	if bag == nil {
		return nil
	}
	d, ok := bag.FirstError()
	if !ok {
		return nil
	}
	pe := &ParseError{Code: d.Code, Msg: d.Message, Span: d.Primary}
	if f := fs.Get(d.Primary.File); f != nil {
		pe.Path = f.Path
		pe.Pos, _ = fs.Resolve(d.Primary)
	}
	if d.Code.IsUnsupported() {
		return errors.Mark(pe, ErrUnsupported)
	}
	return pe
}
