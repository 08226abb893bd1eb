package parser

import (
	"rsyn/internal/ast"
	"rsyn/internal/diag"
	"rsyn/internal/token"
)

func (p *Parser) atOuterAttr() bool {
	tok := p.peek()
	if tok.Kind == token.DocComment {
		return true
	}
	return tok.Kind == token.Pound && p.nth(1).Kind == token.LBracket
}

func (p *Parser) atInnerAttr() bool {
	tok := p.peek()
	if tok.Kind == token.DocComment {
		return tok.IsInnerDoc()
	}
	return tok.Kind == token.Pound && p.nth(1).Kind == token.Bang && p.nth(2).Kind == token.LBracket
}

// parseOuterAttrs: #[...] и внешние doc-комментарии. Внутренний атрибут
// здесь: ошибка, но разбираем его, чтобы не терять синхронизацию.
func (p *Parser) parseOuterAttrs() ([]ast.Attribute, bool) {
	var attrs []ast.Attribute
	ok := true
	for p.atOuterAttr() || p.atInnerAttr() {
		if p.atInnerAttr() {
			p.err(diag.SynMisplacedInnerAttr, "an inner attribute is not permitted in this context")
			ok = false
		}
		attr, aok := p.parseAttribute()
		if !aok {
			return attrs, false
		}
		attrs = append(attrs, attr)
	}
	return attrs, ok
}

// parseInnerAttrs: #![...] и //! /*! в начале файла или тела mod.
func (p *Parser) parseInnerAttrs() []ast.Attribute {
	var attrs []ast.Attribute
	for p.atInnerAttr() {
		attr, ok := p.parseAttribute()
		if !ok {
			break
		}
		attrs = append(attrs, attr)
	}
	return attrs
}

func (p *Parser) parseAttribute() (ast.Attribute, bool) {
	tok := p.peek()
	if tok.Kind == token.DocComment {
		p.advance()
		style := ast.AttrOuter
		if tok.IsInnerDoc() {
			style = ast.AttrInner
		}
		return ast.DocAttr(style, tok.Text, tok.Span), true
	}

	pound, ok := p.expect(token.Pound, diag.SynUnexpectedToken, "expected attribute")
	if !ok {
		return ast.Attribute{}, false
	}
	attr := ast.Attribute{Style: ast.AttrOuter}
	if _, inner := p.eat(token.Bang); inner {
		attr.Style = ast.AttrInner
	}
	if _, ok = p.expect(token.LBracket, diag.SynUnexpectedToken, "expected '['"); !ok {
		return attr, false
	}
	if attr.Value, ok = p.parseMetaItem(); !ok {
		return attr, false
	}
	if _, ok = p.expect(token.RBracket, diag.SynUnexpectedToken, "expected ']' to close attribute"); !ok {
		return attr, false
	}
	attr.Span = p.spanFrom(pound.Span)
	return attr, true
}

// parseMetaIdent: имя мета-элемента: идентификатор или ключевое слово (#[macro_use], #[doc], #[type = ..]).
func (p *Parser) parseMetaIdent() (ast.Ident, bool) {
	tok := p.peek()
	if tok.Kind == token.Ident || tok.Kind.IsKeyword() {
		p.advance()
		return ast.Ident{Name: tok.Text, Span: tok.Span}, true
	}
	p.err(diag.SynExpectIdentifier, "expected attribute name, got "+quoteTok(tok))
	return ast.Ident{}, false
}

func (p *Parser) parseMetaItem() (ast.MetaItem, bool) {
	name, ok := p.parseMetaIdent()
	if !ok {
		return nil, false
	}
	switch {
	case p.at(token.Eq):
		p.advance()
		lit, ok := p.parseLit()
		return ast.MetaNameValue{Ident: name, Lit: lit}, ok
	case p.at(token.LParen):
		p.advance()
		list := ast.MetaList{Ident: name}
		for !p.at(token.RParen) {
			var nested ast.NestedMetaItem
			if p.atLit() {
				lit, ok := p.parseLit()
				if !ok {
					return list, false
				}
				nested = lit
			} else if nested, ok = p.parseMetaItem(); !ok {
				return list, false
			}
			list.Nested = append(list.Nested, nested)
			if _, comma := p.eat(token.Comma); !comma {
				break
			}
		}
		_, ok := p.expect(token.RParen, diag.SynUnexpectedToken, "expected ')' in attribute list")
		return list, ok
	}
	return ast.MetaWord{Ident: name}, true
}
