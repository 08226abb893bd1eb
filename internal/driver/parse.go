package driver

import (
	"fmt"

	"fortio.org/safecast"

	"rsyn/internal/ast"
	"rsyn/internal/diag"
	"rsyn/internal/parser"
	"rsyn/internal/quote"
	"rsyn/internal/source"
)

type ParseResult struct {
	FileSet *source.FileSet
	File    *source.File
	Crate   *ast.Crate
	Bag     *diag.Bag
}

// Err converts the first error diagnostic into a *parser.ParseError.
func (r *ParseResult) Err() error {
	return parser.ErrorFromBag(r.FileSet, r.Bag)
}

// Parse loads and parses one file. Syntax errors go to the bag; the crate
// holds whatever items were recovered.
func Parse(filePath string, maxDiagnostics int) (*ParseResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(filePath)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", filePath, err)
	}
	return parseFile(fs, fs.Get(fileID), maxDiagnostics)
}

// ParseSource parses src registered under a virtual name.
func ParseSource(name string, src []byte, maxDiagnostics int) (*ParseResult, error) {
	fs := source.NewFileSet()
	return parseFile(fs, fs.Get(fs.AddVirtual(name, src)), maxDiagnostics)
}

func parseFile(fs *source.FileSet, file *source.File, maxDiagnostics int) (*ParseResult, error) {
	maxErrors, err := safecast.Conv[uint](max(maxDiagnostics, 0))
	if err != nil {
		return nil, err
	}
	bag := diag.NewBag(maxDiagnostics)
	result := parser.ParseFile(fs, file, parser.Options{
		Reporter:  diag.NewDedupReporter(diag.BagReporter{Bag: bag}),
		MaxErrors: maxErrors,
	})
	return &ParseResult{
		FileSet: fs,
		File:    file,
		Crate:   result.Crate,
		Bag:     bag,
	}, nil
}

type RenderResult struct {
	*ParseResult
	Text string
}

// Render parses a file and renders the tree back to token text. Text is
// empty when parsing reported errors.
func Render(filePath string, maxDiagnostics int) (*RenderResult, error) {
	res, err := Parse(filePath, maxDiagnostics)
	if err != nil {
		return nil, err
	}
	out := &RenderResult{ParseResult: res}
	if !res.Bag.HasErrors() {
		out.Text = quote.Render(res.Crate)
	}
	return out, nil
}
