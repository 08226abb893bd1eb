package parser

import (
	"rsyn/internal/ast"
	"rsyn/internal/diag"
	"rsyn/internal/token"
)

// parseLifetime: курсор на токене Lifetime.
func (p *Parser) parseLifetime() ast.Lifetime {
	tok := p.advance()
	return ast.Lifetime{Name: tok.Text, Span: tok.Span}
}

func (p *Parser) expectLifetime() (ast.Lifetime, bool) {
	if !p.at(token.Lifetime) {
		p.err(diag.SynExpectLifetime, "expected lifetime, got "+quoteTok(p.peek()))
		return ast.Lifetime{}, false
	}
	return p.parseLifetime(), true
}

// parseLifetimeBounds: `'a + 'b + 'c` (курсор после ':').
func (p *Parser) parseLifetimeBounds() ([]ast.Lifetime, bool) {
	var bounds []ast.Lifetime
	for p.at(token.Lifetime) {
		bounds = append(bounds, p.parseLifetime())
		if _, plus := p.eat(token.Plus); !plus {
			break
		}
	}
	return bounds, true
}

func (p *Parser) parseLifetimeDef(attrs []ast.Attribute) (ast.LifetimeDef, bool) {
	def := ast.LifetimeDef{Attrs: attrs}
	var ok bool
	if def.Lifetime, ok = p.expectLifetime(); !ok {
		return def, false
	}
	if _, colon := p.eat(token.Colon); colon {
		def.Bounds, ok = p.parseLifetimeBounds()
	}
	return def, ok
}

// parseGenerics: необязательный список `<...>`. Лайфтаймы обязаны идти
// до типовых параметров. Where-клауза разбирается отдельно.
func (p *Parser) parseGenerics() (ast.Generics, bool) {
	var g ast.Generics
	if _, ok := p.eatSplit(token.Lt); !ok {
		return g, true
	}
	for !p.atSplit(token.Gt) {
		attrs, ok := p.parseOuterAttrs()
		if !ok {
			return g, false
		}
		switch {
		case p.at(token.Lifetime):
			if len(g.TyParams) > 0 {
				p.newReport(diag.SynLifetimeAfterType, diag.SevError, p.getDiagnosticSpan(), "lifetime parameters must be declared prior to type parameters").
					WithNote(g.TyParams[0].Span, "first type parameter declared here").
					Emit()
				return g, false
			}
			def, ok := p.parseLifetimeDef(attrs)
			if !ok {
				return g, false
			}
			g.Lifetimes = append(g.Lifetimes, def)
		case p.at(token.Ident):
			tp, ok := p.parseTyParam(attrs)
			if !ok {
				return g, false
			}
			g.TyParams = append(g.TyParams, tp)
		case p.at(token.KwConst):
			p.err(diag.SynUnsupportedConstGeneric, "const generic parameters are not supported")
			return g, false
		default:
			p.err(diag.SynUnexpectedToken, "expected lifetime or type parameter, got "+quoteTok(p.peek()))
			return g, false
		}
		if _, comma := p.eat(token.Comma); !comma {
			break
		}
	}
	_, ok := p.expect(token.Gt, diag.SynExpectGt, "expected '>' to close generic parameters")
	return g, ok
}

func (p *Parser) parseTyParam(attrs []ast.Attribute) (ast.TyParam, bool) {
	ident, ok := p.parseIdent()
	tp := ast.TyParam{Attrs: attrs, Ident: ident, Span: ident.Span}
	if len(attrs) > 0 {
		tp.Span = attrs[0].Span
	}
	if !ok {
		return tp, false
	}
	if _, colon := p.eat(token.Colon); colon {
		if tp.Bounds, ok = p.parseBounds(); !ok {
			return tp, false
		}
	}
	if _, eq := p.eat(token.Eq); eq {
		if tp.Default, ok = p.parseTy(true); !ok {
			return tp, false
		}
	}
	tp.Span = p.spanFrom(tp.Span)
	return tp, true
}

// parseBounds: `'a + ?Sized + for<'b> Fn(&'b u8) + Trait<T>`. Пустой список допустим.
func (p *Parser) parseBounds() ([]ast.TyParamBound, bool) {
	var bounds []ast.TyParamBound
	for {
		switch {
		case p.at(token.Lifetime):
			bounds = append(bounds, ast.RegionBound{Lifetime: p.parseLifetime()})
		case p.at_or(token.Question, token.KwFor) || p.atPathStart():
			b, ok := p.parseTraitBound()
			if !ok {
				return bounds, false
			}
			bounds = append(bounds, b)
		default:
			return bounds, true
		}
		if _, plus := p.eat(token.Plus); !plus {
			return bounds, true
		}
	}
}

// parseTraitBound: модификатор `?` идёт до необязательного `for<...>`.
func (p *Parser) parseTraitBound() (ast.TraitBound, bool) {
	var b ast.TraitBound
	if _, maybe := p.eat(token.Question); maybe {
		b.Modifier = ast.TraitBoundMaybe
	}
	if p.atIdent("dyn") && p.dynFollows() {
		p.err(diag.SynUnsupportedDyn, "'dyn' trait objects are not supported")
		return b, false
	}
	ref, ok := p.parsePolyTraitRef()
	b.Trait = ref
	return b, ok
}

func (p *Parser) parsePolyTraitRef() (ast.PolyTraitRef, bool) {
	var ref ast.PolyTraitRef
	var ok bool
	if p.at(token.KwFor) {
		if ref.BoundLifetimes, ok = p.parseForLifetimes(); !ok {
			return ref, false
		}
	}
	ref.TraitRef, ok = p.parsePath()
	return ref, ok
}

// parseForLifetimes: `for<'a, 'b: 'a>`.
func (p *Parser) parseForLifetimes() ([]ast.LifetimeDef, bool) {
	p.advance() // for
	if _, ok := p.expect(token.Lt, diag.SynUnexpectedToken, "expected '<' after 'for'"); !ok {
		return nil, false
	}
	var defs []ast.LifetimeDef
	for !p.atSplit(token.Gt) {
		attrs, ok := p.parseOuterAttrs()
		if !ok {
			return nil, false
		}
		def, ok := p.parseLifetimeDef(attrs)
		if !ok {
			return nil, false
		}
		defs = append(defs, def)
		if _, comma := p.eat(token.Comma); !comma {
			break
		}
	}
	_, ok := p.expect(token.Gt, diag.SynExpectGt, "expected '>' to close 'for<...>'")
	return defs, ok
}

// parseWhereClause: необязательная where-клауза. Заканчивается на '{', ';',
// '=' (для type) или на токене, с которого предикат начаться не может.
func (p *Parser) parseWhereClause() (ast.WhereClause, bool) {
	var wc ast.WhereClause
	if _, ok := p.eat(token.KwWhere); !ok {
		return wc, true
	}
	for p.atPredicateStart() {
		pred, ok := p.parseWherePredicate()
		if !ok {
			return wc, false
		}
		wc.Predicates = append(wc.Predicates, pred)
		if _, comma := p.eat(token.Comma); !comma {
			break
		}
	}
	return wc, true
}

func (p *Parser) atPredicateStart() bool {
	switch p.peek().Kind {
	case token.LBrace, token.Semi, token.Eq, token.EOF:
		return false
	}
	return true
}

func (p *Parser) parseWherePredicate() (ast.WherePredicate, bool) {
	if p.at(token.Lifetime) {
		pred := ast.RegionPredicate{Lifetime: p.parseLifetime()}
		if _, ok := p.expect(token.Colon, diag.SynExpectColon, "expected ':' after lifetime in where-clause"); !ok {
			return nil, false
		}
		bounds, ok := p.parseLifetimeBounds()
		pred.Bounds = bounds
		return pred, ok
	}

	var lifetimes []ast.LifetimeDef
	if p.at(token.KwFor) {
		var ok bool
		if lifetimes, ok = p.parseForLifetimes(); !ok {
			return nil, false
		}
	}
	bounded, ok := p.parseTy(false)
	if !ok {
		return nil, false
	}
	if _, eq := p.eat(token.Eq); eq && lifetimes == nil {
		rhs, ok := p.parseTy(true)
		return ast.EqPredicate{Lhs: bounded, Rhs: rhs}, ok
	}
	if _, ok := p.expect(token.Colon, diag.SynExpectColon, "expected ':' after bounded type in where-clause"); !ok {
		return nil, false
	}
	bounds, ok := p.parseBounds()
	return ast.BoundPredicate{BoundLifetimes: lifetimes, BoundedTy: bounded, Bounds: bounds}, ok
}
