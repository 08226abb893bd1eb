package parser

import (
	"rsyn/internal/ast"
	"rsyn/internal/diag"
	"rsyn/internal/token"
)

var litKinds = map[token.Kind]ast.LitKind{
	token.LitStr:     ast.LitStr,
	token.LitByteStr: ast.LitByteStr,
	token.LitByte:    ast.LitByte,
	token.LitChar:    ast.LitChar,
	token.LitInt:     ast.LitInt,
	token.LitFloat:   ast.LitFloat,
	token.KwTrue:     ast.LitBool,
	token.KwFalse:    ast.LitBool,
}

func (p *Parser) atLit() bool {
	_, ok := litKinds[p.peek().Kind]
	return ok
}

func (p *Parser) parseLit() (ast.Lit, bool) {
	tok := p.peek()
	kind, ok := litKinds[tok.Kind]
	if !ok {
		p.err(diag.SynExpectLiteral, "expected literal, got "+quoteTok(tok))
		return ast.Lit{}, false
	}
	p.advance()
	return ast.Lit{Kind: kind, Text: tok.Text, Span: tok.Span}, true
}
