package parser

import (
	"slices"

	"rsyn/internal/ast"
	"rsyn/internal/diag"
	"rsyn/internal/token"
)

// parseTrait: `unsafe? trait Name<G>: Super + 'a where .. { items }`.
func (p *Parser) parseTrait(item *ast.Item) bool {
	var node ast.ItemTrait
	if _, ok := p.eat(token.KwUnsafe); ok {
		node.Unsafety = ast.Unsafe
	}
	p.advance() // trait
	var ok bool
	if item.Ident, ok = p.parseIdent(); !ok {
		return false
	}
	if node.Generics, ok = p.parseGenerics(); !ok {
		return false
	}
	if _, colon := p.eat(token.Colon); colon {
		if node.Supertraits, ok = p.parseBounds(); !ok {
			return false
		}
	}
	if node.Generics.WhereClause, ok = p.parseWhereClause(); !ok {
		return false
	}
	if _, ok = p.expect(token.LBrace, diag.SynExpectBody, "expected '{' to start trait body"); !ok {
		return false
	}
	item.Attrs = append(item.Attrs, p.parseInnerAttrs()...)
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		ti, ok := p.parseTraitItem()
		if !ok {
			return false
		}
		node.Items = append(node.Items, ti)
	}
	item.Node = node
	_, ok = p.expect(token.RBrace, diag.SynUnclosedDelimiter, "expected '}' to close trait body")
	return ok
}

func (p *Parser) parseTraitItem() (ast.TraitItem, bool) {
	start := p.peek().Span
	var ti ast.TraitItem
	var ok bool
	if ti.Attrs, ok = p.parseOuterAttrs(); !ok {
		return ti, false
	}
	switch {
	case p.at(token.KwConst) && p.nth(1).Kind == token.Ident:
		p.advance()
		var node ast.TraitItemConst
		var expr ast.Expr
		if ti.Ident, node.Ty, expr, ok = p.parseTypedInit(false); !ok {
			return ti, false
		}
		if expr.Tts != nil {
			node.Default = &expr
		}
		ti.Node = node
	case p.at(token.KwType):
		p.advance()
		if ti.Ident, ok = p.parseIdent(); !ok {
			return ti, false
		}
		var node ast.TraitItemType
		if _, colon := p.eat(token.Colon); colon {
			if node.Bounds, ok = p.parseBounds(); !ok {
				return ti, false
			}
		}
		if _, eq := p.eat(token.Eq); eq {
			if node.Default, ok = p.parseTy(true); !ok {
				return ti, false
			}
		}
		if !p.expectSemi("associated type") {
			return ti, false
		}
		ti.Node = node
	case p.at_or(token.KwFn, token.KwConst, token.KwUnsafe, token.KwExtern) || p.atIdent("async"):
		var node ast.TraitItemMethod
		if node.Sig, ti.Ident, ok = p.parseMethodSig(true); !ok {
			return ti, false
		}
		if _, semi := p.eat(token.Semi); !semi {
			block, ok := p.parseBlock()
			if !ok {
				return ti, false
			}
			node.Default = &block
		}
		ti.Node = node
	case p.atPathStart() && p.atMacroItem():
		path, _ := p.parsePath()
		p.advance() // !
		mac, ok := p.parseMacBody(path)
		if !ok {
			return ti, false
		}
		ti.Node = ast.TraitItemMac{Mac: mac}
	default:
		p.err(diag.SynExpectItem, "expected trait item, got "+quoteTok(p.peek()))
		return ti, false
	}
	ti.Span = p.spanFrom(start)
	return ti, true
}

// parseImpl: `unsafe? impl<G> !?Trait for Ty where .. { items }`, `impl<G> Ty { .. }`
// и `impl Trait for .. {}`.
func (p *Parser) parseImpl(item *ast.Item) bool {
	var node ast.ItemImpl
	if _, ok := p.eat(token.KwUnsafe); ok {
		node.Unsafety = ast.Unsafe
	}
	p.advance() // impl
	var ok bool
	if p.atImplGenerics() {
		if node.Generics, ok = p.parseGenerics(); !ok {
			return false
		}
	}
	if _, neg := p.eat(token.Bang); neg {
		node.Polarity = ast.Negative
	}
	first, ok := p.parseTy(true)
	if !ok {
		return false
	}
	if _, isFor := p.eat(token.KwFor); isFor {
		trait, ok := p.traitRefOf(first)
		if !ok {
			return false
		}
		if _, dots := p.eat(token.DotDot); dots {
			return p.finishDefaultImpl(item, node, trait)
		}
		node.Trait = &trait
		if node.SelfTy, ok = p.parseTy(true); !ok {
			return false
		}
	} else {
		if node.Polarity == ast.Negative {
			p.err(diag.SynUnexpectedToken, "negative impls require a trait, expected 'for'")
			return false
		}
		node.SelfTy = first
	}
	if node.Generics.WhereClause, ok = p.parseWhereClause(); !ok {
		return false
	}
	if _, ok = p.expect(token.LBrace, diag.SynExpectBody, "expected '{' to start impl body"); !ok {
		return false
	}
	item.Attrs = append(item.Attrs, p.parseInnerAttrs()...)
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		ii, ok := p.parseImplItem()
		if !ok {
			return false
		}
		node.Items = append(node.Items, ii)
	}
	item.Node = node
	_, ok = p.expect(token.RBrace, diag.SynUnclosedDelimiter, "expected '}' to close impl body")
	return ok
}

// atImplGenerics отличает `impl<T> ..` от `impl <T as Tr>::X {}`.
func (p *Parser) atImplGenerics() bool {
	if !p.at(token.Lt) {
		return false
	}
	switch p.nth(1).Kind {
	case token.Gt, token.Lifetime, token.Pound, token.KwConst:
		return true
	case token.Ident:
		switch p.nth(2).Kind {
		case token.Colon, token.Comma, token.Gt, token.Eq:
			return true
		}
	}
	return false
}

// traitRefOf превращает тип, разобранный до `for`, в путь трейта.
func (p *Parser) traitRefOf(ty ast.Ty) (ast.Path, bool) {
	if tp, ok := ty.(ast.TyPath); ok && tp.QSelf == nil {
		return tp.Path, true
	}
	p.errAt(diag.SynExpectPath, p.lastSpan, "expected a trait path before 'for'")
	return ast.Path{}, false
}

func (p *Parser) finishDefaultImpl(item *ast.Item, impl ast.ItemImpl, trait ast.Path) bool {
	if !impl.Generics.IsEmpty() || impl.Polarity == ast.Negative {
		p.err(diag.SynUnexpectedToken, "default impls cannot have generics or negative polarity")
		return false
	}
	if _, ok := p.expect(token.LBrace, diag.SynExpectBody, "expected '{' after 'for ..'"); !ok {
		return false
	}
	if _, ok := p.expect(token.RBrace, diag.SynUnexpectedToken, "default impl body must be empty"); !ok {
		return false
	}
	item.Node = ast.ItemDefaultImpl{Unsafety: impl.Unsafety, Path: trait}
	return true
}

func (p *Parser) parseImplItem() (ast.ImplItem, bool) {
	start := p.peek().Span
	var ii ast.ImplItem
	var ok bool
	if ii.Attrs, ok = p.parseOuterAttrs(); !ok {
		return ii, false
	}
	if ii.Vis, ok = p.parseVisibility(); !ok {
		return ii, false
	}
	if p.atIdent("default") && p.at_next(token.KwFn, token.KwConst, token.KwUnsafe, token.KwExtern, token.KwType) {
		p.advance()
		ii.Defaultness = true
	}
	switch {
	case p.at(token.KwConst) && p.nth(1).Kind == token.Ident:
		p.advance()
		var node ast.ImplItemConst
		if ii.Ident, node.Ty, node.Expr, ok = p.parseTypedInit(true); !ok {
			return ii, false
		}
		ii.Node = node
	case p.at(token.KwType):
		p.advance()
		if ii.Ident, ok = p.parseIdent(); !ok {
			return ii, false
		}
		if _, ok = p.expect(token.Eq, diag.SynUnexpectedToken, "expected '=' in associated type"); !ok {
			return ii, false
		}
		var node ast.ImplItemType
		if node.Ty, ok = p.parseTy(true); !ok {
			return ii, false
		}
		if !p.expectSemi("associated type") {
			return ii, false
		}
		ii.Node = node
	case p.at_or(token.KwFn, token.KwConst, token.KwUnsafe, token.KwExtern) || p.atIdent("async"):
		var node ast.ImplItemMethod
		if node.Sig, ii.Ident, ok = p.parseMethodSig(false); !ok {
			return ii, false
		}
		if node.Block, ok = p.parseBlock(); !ok {
			return ii, false
		}
		ii.Node = node
	case p.atPathStart() && p.atMacroItem():
		path, _ := p.parsePath()
		p.advance() // !
		mac, ok := p.parseMacBody(path)
		if !ok {
			return ii, false
		}
		ii.Node = ast.ImplItemMac{Mac: mac}
	default:
		p.err(diag.SynExpectItem, "expected impl item, got "+quoteTok(p.peek()))
		return ii, false
	}
	ii.Span = p.spanFrom(start)
	return ii, true
}

// at_next: следующий за текущим токен одного из видов.
func (p *Parser) at_next(kinds ...token.Kind) bool {
	return slices.Contains(kinds, p.nth(1).Kind)
}
