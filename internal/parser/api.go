package parser

import (
	"github.com/cockroachdb/errors"

	"rsyn/internal/ast"
	"rsyn/internal/diag"
	"rsyn/internal/source"
	"rsyn/internal/token"
)

const inputName = "<input>"

// parseString runs one grammar rule over src and requires it to consume the
// whole input. The first error diagnostic becomes the returned error.
func parseString[T any](src string, rule func(p *Parser) (T, bool)) (T, error) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual(inputName, []byte(src)))
	bag := diag.NewBag(32)
	p := newParser(fs, file, Options{MaxErrors: 32, Reporter: diag.BagReporter{Bag: bag}})

	v, ok := rule(p)
	if ok && !p.at(token.EOF) {
		p.err(diag.SynTrailingInput, "unexpected trailing input "+quoteTok(p.peek()))
	}
	var zero T
	if err := ErrorFromBag(fs, bag); err != nil {
		return zero, err
	}
	if !ok {
		return zero, errors.Newf("%s: parse failed without diagnostics", inputName)
	}
	return v, nil
}

// ParseCrate parses a whole compilation unit.
func ParseCrate(src string) (*ast.Crate, error) {
	return parseString(src, func(p *Parser) (*ast.Crate, bool) {
		return p.parseCrate(), true
	})
}

// ParseGenerics parses `<...>` optionally followed by a where-clause.
func ParseGenerics(src string) (ast.Generics, error) {
	return parseString(src, func(p *Parser) (ast.Generics, bool) {
		g, ok := p.parseGenerics()
		if !ok {
			return g, false
		}
		g.WhereClause, ok = p.parseWhereClause()
		return g, ok
	})
}

// ParseWhereClause parses `where ...`; empty input yields an empty clause.
func ParseWhereClause(src string) (ast.WhereClause, error) {
	return parseString(src, (*Parser).parseWhereClause)
}

func ParseTy(src string) (ast.Ty, error) {
	return parseString(src, func(p *Parser) (ast.Ty, bool) {
		return p.parseTy(true)
	})
}

func ParsePath(src string) (ast.Path, error) {
	return parseString(src, (*Parser).parsePath)
}

// ParseItem parses exactly one item with its outer attributes.
func ParseItem(src string) (ast.Item, error) {
	return parseString(src, (*Parser).parseItem)
}

// ParseAttribute parses one `#[...]`, `#![...]` or doc comment.
func ParseAttribute(src string) (ast.Attribute, error) {
	return parseString(src, (*Parser).parseAttribute)
}

// ParseTokenTrees parses any balanced token sequence.
func ParseTokenTrees(src string) ([]ast.TokenTree, error) {
	return parseString(src, func(p *Parser) ([]ast.TokenTree, bool) {
		tts := p.parseTtsUntil(nil)
		if !p.at(token.EOF) {
			p.err(diag.SynUnbalancedDelimiter, "unexpected closing delimiter "+quoteTok(p.peek()))
			return tts, false
		}
		return tts, true
	})
}
