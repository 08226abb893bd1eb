package parser

import (
	"rsyn/internal/ast"
	"rsyn/internal/diag"
	"rsyn/internal/token"
)

// atPathStart: идентификатор, "::" или self/Self/super/crate.
func (p *Parser) atPathStart() bool {
	return p.at_or(token.Ident, token.ColonColon, token.KwSelf, token.KwSelfType, token.KwSuper, token.KwCrate)
}

func isSegmentKind(k token.Kind) bool {
	switch k {
	case token.Ident, token.KwSelf, token.KwSelfType, token.KwSuper, token.KwCrate:
		return true
	}
	return false
}

// parsePathSegmentIdent съедает имя сегмента пути.
func (p *Parser) parsePathSegmentIdent() (ast.Ident, bool) {
	tok := p.peek()
	if !isSegmentKind(tok.Kind) {
		p.err(diag.SynExpectPath, "expected path segment, got "+quoteTok(tok))
		return ast.Ident{}, false
	}
	p.advance()
	return ast.Ident{Name: tok.Text, Span: tok.Span}, true
}

func (p *Parser) parseIdent() (ast.Ident, bool) {
	tok := p.peek()
	if tok.Kind != token.Ident {
		p.err(diag.SynExpectIdentifier, "expected identifier, got "+quoteTok(tok))
		return ast.Ident{}, false
	}
	p.advance()
	return ast.Ident{Name: tok.Text, Span: tok.Span}, true
}

// parsePath разбирает путь в позиции типа: `::a::B<T>::C`, `Fn(A) -> B`, `Vec::<T>`.
func (p *Parser) parsePath() (ast.Path, bool) {
	var path ast.Path
	if _, ok := p.eat(token.ColonColon); ok {
		path.Global = true
	}
	return p.parsePathSegments(path)
}

func (p *Parser) parsePathSegments(path ast.Path) (ast.Path, bool) {
	for {
		ident, ok := p.parsePathSegmentIdent()
		if !ok {
			return path, false
		}
		seg := ast.PathSegment{Ident: ident}
		switch {
		case p.atSplit(token.Lt):
			seg.Parameters, ok = p.parseAngleParams()
		case p.at(token.ColonColon) && p.nth(1).Kind == token.Lt:
			p.advance()
			seg.Parameters, ok = p.parseAngleParams()
		case p.at(token.LParen):
			seg.Parameters, ok = p.parseParenParams()
		}
		if !ok {
			return path, false
		}
		path.Segments = append(path.Segments, seg)
		if !p.at(token.ColonColon) || !isSegmentKind(p.nth(1).Kind) {
			return path, true
		}
		p.advance()
	}
}

// parseAngleParams: `<'a, T, Item = U>`. Пустые `<>` дают nil.
func (p *Parser) parseAngleParams() (ast.PathParameters, bool) {
	p.eatSplit(token.Lt)
	var params ast.AngleBracketed
	for !p.atSplit(token.Gt) {
		switch {
		case p.at(token.Lifetime):
			params.Lifetimes = append(params.Lifetimes, p.parseLifetime())
		case p.at(token.Ident) && p.nth(1).Kind == token.Eq:
			name := p.advance()
			p.advance()
			ty, ok := p.parseTy(true)
			if !ok {
				return nil, false
			}
			params.Bindings = append(params.Bindings, ast.TypeBinding{
				Ident: ast.Ident{Name: name.Text, Span: name.Span},
				Ty:    ty,
			})
		default:
			ty, ok := p.parseTy(true)
			if !ok {
				return nil, false
			}
			params.Types = append(params.Types, ty)
		}
		if _, comma := p.eat(token.Comma); !comma {
			break
		}
	}
	if _, ok := p.expect(token.Gt, diag.SynExpectGt, "expected '>' to close type arguments"); !ok {
		return nil, false
	}
	if params.IsEmpty() {
		return nil, true
	}
	return params, true
}

// parseParenParams: `(A, B) -> C` для Fn-трейтов.
func (p *Parser) parseParenParams() (ast.PathParameters, bool) {
	p.advance()
	var params ast.Parenthesized
	for !p.at(token.RParen) {
		ty, ok := p.parseTy(true)
		if !ok {
			return nil, false
		}
		params.Inputs = append(params.Inputs, ty)
		if _, comma := p.eat(token.Comma); !comma {
			break
		}
	}
	if _, ok := p.expect(token.RParen, diag.SynUnexpectedToken, "expected ')'"); !ok {
		return nil, false
	}
	if _, arrow := p.eat(token.RArrow); arrow {
		out, ok := p.parseTy(false)
		if !ok {
			return nil, false
		}
		params.Output = out
	}
	return params, true
}

// parseQualifiedPath: `<T as Trait>::Name` / `<T>::Name`. Курсор на '<' (или "<<").
func (p *Parser) parseQualifiedPath() (ast.TyPath, bool) {
	p.eatSplit(token.Lt)
	self, ok := p.parseTy(true)
	if !ok {
		return ast.TyPath{}, false
	}
	q := &ast.QSelf{Ty: self}
	var path ast.Path
	if _, as := p.eat(token.KwAs); as {
		if path, ok = p.parsePath(); !ok {
			return ast.TyPath{}, false
		}
		q.Position = len(path.Segments)
	}
	if _, ok = p.expect(token.Gt, diag.SynExpectGt, "expected '>' after qualified self type"); !ok {
		return ast.TyPath{}, false
	}
	if _, ok = p.expect(token.ColonColon, diag.SynExpectPath, "expected '::' after qualified self type"); !ok {
		return ast.TyPath{}, false
	}
	path, ok = p.parsePathSegments(path)
	return ast.TyPath{QSelf: q, Path: path}, ok
}

// parseModPath: путь без параметров (visibility `pub(in a::b)`).
func (p *Parser) parseModPath() (ast.Path, bool) {
	var path ast.Path
	if _, ok := p.eat(token.ColonColon); ok {
		path.Global = true
	}
	for {
		ident, ok := p.parsePathSegmentIdent()
		if !ok {
			return path, false
		}
		path.Segments = append(path.Segments, ast.PathSegment{Ident: ident})
		if !p.at(token.ColonColon) || !isSegmentKind(p.nth(1).Kind) {
			return path, true
		}
		p.advance()
	}
}
