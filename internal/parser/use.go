package parser

import (
	"rsyn/internal/ast"
	"rsyn/internal/diag"
	"rsyn/internal/token"
)

// parseUse: `use a::b;`, `use a::b as c;`, `use a::*;`, `use a::{b, c as d, self};`.
func (p *Parser) parseUse(item *ast.Item) bool {
	p.advance()
	vp, ok := p.parseViewPath()
	if !ok {
		return false
	}
	item.Node = ast.ItemUse{Path: vp}
	return p.expectSemi("use declaration")
}

func (p *Parser) parseViewPath() (ast.ViewPath, bool) {
	var path ast.Path
	if _, ok := p.eat(token.ColonColon); ok {
		path.Global = true
	}
	if p.at(token.LBrace) {
		return p.parseViewList(path)
	}
	for {
		seg, ok := p.parsePathSegmentIdent()
		if !ok {
			return nil, false
		}
		path.Segments = append(path.Segments, ast.PathSegment{Ident: seg})
		if !p.at(token.ColonColon) {
			break
		}
		switch p.nth(1).Kind {
		case token.Star:
			p.advance()
			p.advance()
			return ast.ViewGlob{Path: path}, true
		case token.LBrace:
			p.advance()
			return p.parseViewList(path)
		}
		p.advance()
	}
	view := ast.ViewSimple{Path: path}
	if _, as := p.eat(token.KwAs); as {
		rename, ok := p.parseIdent()
		if !ok {
			return nil, false
		}
		view.Rename = &rename
	}
	return view, true
}

// parseViewList: курсор на '{'.
func (p *Parser) parseViewList(path ast.Path) (ast.ViewPath, bool) {
	p.advance()
	list := ast.ViewList{Path: path}
	for !p.at(token.RBrace) {
		tok := p.peek()
		if tok.Kind != token.Ident && tok.Kind != token.KwSelf {
			p.err(diag.SynExpectIdentifier, "expected name or 'self' in use list, got "+quoteTok(tok))
			return nil, false
		}
		p.advance()
		it := ast.PathListItem{Name: ast.Ident{Name: tok.Text, Span: tok.Span}}
		if _, as := p.eat(token.KwAs); as {
			rename, ok := p.parseIdent()
			if !ok {
				return nil, false
			}
			it.Rename = &rename
		}
		list.Items = append(list.Items, it)
		if _, comma := p.eat(token.Comma); !comma {
			break
		}
	}
	_, ok := p.expect(token.RBrace, diag.SynUnexpectedToken, "expected ',' or '}' in use list")
	return list, ok
}
