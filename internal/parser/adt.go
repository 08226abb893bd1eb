package parser

import (
	"rsyn/internal/ast"
	"rsyn/internal/diag"
	"rsyn/internal/token"
)

// parseStruct: `struct S<T> where .. { a: T }`, `struct S<T>(T) where ..;`, `struct S;`.
func (p *Parser) parseStruct(item *ast.Item) bool {
	p.advance()
	var ok bool
	if item.Ident, ok = p.parseIdent(); !ok {
		return false
	}
	var node ast.ItemStruct
	if node.Generics, ok = p.parseGenerics(); !ok {
		return false
	}
	if p.at(token.LParen) {
		var fields []ast.Field
		if fields, ok = p.parseTupleFields(); !ok {
			return false
		}
		node.Data = ast.TupleData{Fields: fields}
		if node.Generics.WhereClause, ok = p.parseWhereClause(); !ok {
			return false
		}
		item.Node = node
		return p.expectSemi("tuple struct")
	}
	if node.Generics.WhereClause, ok = p.parseWhereClause(); !ok {
		return false
	}
	switch {
	case p.at(token.Semi):
		p.advance()
		node.Data = ast.UnitData{}
	case p.at(token.LBrace):
		var fields []ast.Field
		if fields, ok = p.parseStructFields(); !ok {
			return false
		}
		node.Data = ast.StructData{Fields: fields}
	default:
		p.err(diag.SynExpectBody, "expected '{', '(' or ';' after struct name, got "+quoteTok(p.peek()))
		return false
	}
	item.Node = node
	return true
}

// parseStructFields: `{ #[a] pub x: T, y: U }`.
func (p *Parser) parseStructFields() ([]ast.Field, bool) {
	p.advance() // {
	var fields []ast.Field
	for !p.at(token.RBrace) {
		start := p.peek().Span
		var f ast.Field
		var ok bool
		if f.Attrs, ok = p.parseOuterAttrs(); !ok {
			return nil, false
		}
		if f.Vis, ok = p.parseVisibility(); !ok {
			return nil, false
		}
		name, ok := p.parseIdent()
		if !ok {
			return nil, false
		}
		f.Ident = &name
		if _, ok = p.expect(token.Colon, diag.SynExpectColon, "expected ':' after field name"); !ok {
			return nil, false
		}
		if f.Ty, ok = p.parseTy(true); !ok {
			return nil, false
		}
		f.Span = p.spanFrom(start)
		fields = append(fields, f)
		if _, comma := p.eat(token.Comma); !comma {
			break
		}
	}
	_, ok := p.expect(token.RBrace, diag.SynUnexpectedToken, "expected ',' or '}' after field")
	return fields, ok
}

// parseTupleFields: `(pub T, #[a] U)`.
func (p *Parser) parseTupleFields() ([]ast.Field, bool) {
	p.advance() // (
	var fields []ast.Field
	for !p.at(token.RParen) {
		start := p.peek().Span
		var f ast.Field
		var ok bool
		if f.Attrs, ok = p.parseOuterAttrs(); !ok {
			return nil, false
		}
		if f.Vis, ok = p.parseVisibility(); !ok {
			return nil, false
		}
		if f.Ty, ok = p.parseTy(true); !ok {
			return nil, false
		}
		f.Span = p.spanFrom(start)
		fields = append(fields, f)
		if _, comma := p.eat(token.Comma); !comma {
			break
		}
	}
	_, ok := p.expect(token.RParen, diag.SynUnexpectedToken, "expected ',' or ')' after field")
	return fields, ok
}

// parseEnum: `enum E<T> where .. { A, B(T), C { x: T }, D = 1 }`.
func (p *Parser) parseEnum(item *ast.Item) bool {
	p.advance()
	var ok bool
	if item.Ident, ok = p.parseIdent(); !ok {
		return false
	}
	var node ast.ItemEnum
	if node.Generics, ok = p.parseGenericsWhere(); !ok {
		return false
	}
	if _, ok = p.expect(token.LBrace, diag.SynExpectBody, "expected '{' after enum name"); !ok {
		return false
	}
	for !p.at(token.RBrace) {
		v, ok := p.parseVariant()
		if !ok {
			return false
		}
		node.Variants = append(node.Variants, v)
		if _, comma := p.eat(token.Comma); !comma {
			break
		}
	}
	if _, ok = p.expect(token.RBrace, diag.SynUnexpectedToken, "expected ',' or '}' after variant"); !ok {
		return false
	}
	item.Node = node
	return true
}

func (p *Parser) parseVariant() (ast.Variant, bool) {
	start := p.peek().Span
	var v ast.Variant
	var ok bool
	if v.Attrs, ok = p.parseOuterAttrs(); !ok {
		return v, false
	}
	if v.Ident, ok = p.parseIdent(); !ok {
		return v, false
	}
	switch {
	case p.at(token.LBrace):
		fields, ok := p.parseStructFields()
		if !ok {
			return v, false
		}
		v.Data = ast.StructData{Fields: fields}
	case p.at(token.LParen):
		fields, ok := p.parseTupleFields()
		if !ok {
			return v, false
		}
		v.Data = ast.TupleData{Fields: fields}
	default:
		v.Data = ast.UnitData{}
	}
	if _, eq := p.eat(token.Eq); eq {
		expr, ok := p.parseExprUntil(token.Comma)
		if !ok {
			return v, false
		}
		v.Discriminant = &expr
	}
	v.Span = p.spanFrom(start)
	return v, true
}
