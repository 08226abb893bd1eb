package roundtrip

import (
	"rsyn/internal/ast"
	"rsyn/internal/diag"
	"rsyn/internal/parser"
	"rsyn/internal/source"
)

// Reference is the parser trusted to judge a round trip: both the original
// source and the rendered text go through it and the trees must agree.
type Reference interface {
	Name() string
	Parse(path string, src []byte) (*ast.Crate, error)
}

// SelfReference uses this module's own parser with an independent session
// per call: fresh FileSet, fresh bag.
type SelfReference struct {
	MaxDiagnostics int
}

func (SelfReference) Name() string { return "self" }

func (r SelfReference) Parse(path string, src []byte) (*ast.Crate, error) {
	return parseSession(path, src, r.MaxDiagnostics)
}

func parseSession(path string, src []byte, maxDiagnostics int) (*ast.Crate, error) {
	if maxDiagnostics <= 0 {
		maxDiagnostics = 32
	}
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual(path, src))
	bag := diag.NewBag(maxDiagnostics)
	res := parser.ParseFile(fs, file, parser.Options{Reporter: diag.BagReporter{Bag: bag}})
	if err := parser.ErrorFromBag(fs, bag); err != nil {
		return nil, err
	}
	return res.Crate, nil
}
