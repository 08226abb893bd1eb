package parser

import (
	"rsyn/internal/ast"
	"rsyn/internal/diag"
	"rsyn/internal/token"
)

// parseTy разбирает тип. allowPlus разрешает трейт-объект `A + B` на верхнем
// уровне; после `&`, `*` и `->` он запрещён, как и в исходном языке.
func (p *Parser) parseTy(allowPlus bool) (ast.Ty, bool) {
	tok := p.peek()
	switch {
	case tok.Kind == token.LBracket:
		return p.parseSliceOrArray()
	case tok.Kind == token.Star:
		p.advance()
		mutbl := ast.Immutable
		switch {
		case p.at(token.KwMut):
			mutbl = ast.Mutable
			p.advance()
		case p.at(token.KwConst):
			p.advance()
		default:
			p.err(diag.SynUnexpectedToken, "expected 'mut' or 'const' in raw pointer type, got "+quoteTok(p.peek()))
			return nil, false
		}
		elem, ok := p.parseTy(false)
		return ast.TyPtr{Mutbl: mutbl, Elem: elem}, ok
	case p.atSplit(token.Amp):
		p.eatSplit(token.Amp)
		var r ast.TyRptr
		if p.at(token.Lifetime) {
			lt := p.parseLifetime()
			r.Lifetime = &lt
		}
		if _, ok := p.eat(token.KwMut); ok {
			r.Mutbl = ast.Mutable
		}
		elem, ok := p.parseTy(false)
		r.Elem = elem
		return r, ok
	case tok.Kind == token.Bang:
		p.advance()
		return ast.TyNever{}, true
	case tok.Kind == token.LParen:
		return p.parseTupleOrParen()
	case tok.Kind == token.Underscore:
		p.advance()
		return ast.TyInfer{}, true
	case tok.Kind == token.KwFn, tok.Kind == token.KwUnsafe, tok.Kind == token.KwExtern:
		return p.parseBareFn(nil)
	case tok.Kind == token.KwFor:
		lifetimes, ok := p.parseForLifetimes()
		if !ok {
			return nil, false
		}
		if p.at_or(token.KwFn, token.KwUnsafe, token.KwExtern) {
			return p.parseBareFn(lifetimes)
		}
		path, ok := p.parsePath()
		if !ok {
			return nil, false
		}
		first := ast.TraitBound{Trait: ast.PolyTraitRef{BoundLifetimes: lifetimes, TraitRef: path}}
		return p.finishTraitObject(first, allowPlus)
	case tok.Kind == token.KwImpl:
		p.advance()
		bounds, ok := p.parseBounds()
		if ok && len(bounds) == 0 {
			p.err(diag.SynExpectBound, "expected at least one bound after 'impl'")
			ok = false
		}
		return ast.TyImplTrait{Bounds: bounds}, ok
	case tok.Kind == token.Lifetime && allowPlus:
		bounds, ok := p.parseBounds()
		return ast.TyTraitObject{Bounds: bounds}, ok
	case tok.Kind == token.Question && allowPlus:
		bounds, ok := p.parseBounds()
		return ast.TyTraitObject{Bounds: bounds}, ok
	case p.atSplit(token.Lt):
		return p.parseQualifiedPath()
	case p.atIdent("dyn") && p.dynFollows():
		p.err(diag.SynUnsupportedDyn, "'dyn' trait objects are not supported")
		return nil, false
	case p.atPathStart():
		path, ok := p.parsePath()
		if !ok {
			return nil, false
		}
		if p.at(token.Bang) {
			mac, ok := p.parseMacTail(path)
			return ast.TyMac{Mac: mac}, ok
		}
		if allowPlus && p.at(token.Plus) {
			return p.finishTraitObject(ast.TraitBound{Trait: ast.PolyTraitRef{TraitRef: path}}, true)
		}
		return ast.TyPath{Path: path}, true
	}
	p.err(diag.SynExpectType, "expected type, got "+quoteTok(tok))
	return nil, false
}

// dynFollows: после "dyn" идёт начало трейта, а не конец пути `dyn::x`.
func (p *Parser) dynFollows() bool {
	switch p.nth(1).Kind {
	case token.Ident, token.Lifetime, token.KwFor, token.Question, token.LParen:
		return true
	}
	return false
}

func (p *Parser) finishTraitObject(first ast.TyParamBound, allowPlus bool) (ast.Ty, bool) {
	bounds := []ast.TyParamBound{first}
	if allowPlus {
		if _, plus := p.eat(token.Plus); plus {
			more, ok := p.parseBounds()
			if !ok {
				return nil, false
			}
			bounds = append(bounds, more...)
		}
	}
	return ast.TyTraitObject{Bounds: bounds}, true
}

func (p *Parser) parseSliceOrArray() (ast.Ty, bool) {
	p.advance()
	elem, ok := p.parseTy(true)
	if !ok {
		return nil, false
	}
	if _, semi := p.eat(token.Semi); semi {
		n, ok := p.parseExprUntil()
		if !ok {
			return nil, false
		}
		if _, ok = p.expect(token.RBracket, diag.SynUnexpectedToken, "expected ']' after array length"); !ok {
			return nil, false
		}
		return ast.TyArray{Elem: elem, Len: n}, true
	}
	_, ok = p.expect(token.RBracket, diag.SynUnexpectedToken, "expected ']' to close slice type")
	return ast.TySlice{Elem: elem}, ok
}

// parseTupleOrParen: `()`, `(T)`, `(T,)`, `(A, B)`.
func (p *Parser) parseTupleOrParen() (ast.Ty, bool) {
	p.advance()
	if _, ok := p.eat(token.RParen); ok {
		return ast.TyTup{}, true
	}
	first, ok := p.parseTy(true)
	if !ok {
		return nil, false
	}
	if _, ok := p.eat(token.RParen); ok {
		return ast.TyParen{Elem: first}, true
	}
	elems := []ast.Ty{first}
	for {
		if _, ok := p.expect(token.Comma, diag.SynUnexpectedToken, "expected ',' or ')' in tuple type"); !ok {
			return nil, false
		}
		if p.at(token.RParen) {
			break
		}
		ty, ok := p.parseTy(true)
		if !ok {
			return nil, false
		}
		elems = append(elems, ty)
		if p.at(token.RParen) {
			break
		}
	}
	p.advance()
	return ast.TyTup{Elems: elems}, true
}

// parseBareFn: `unsafe extern "C" fn(x: u8, ...) -> R`; for<...> уже съеден.
func (p *Parser) parseBareFn(lifetimes []ast.LifetimeDef) (ast.Ty, bool) {
	f := ast.TyBareFn{Lifetimes: lifetimes}
	if _, ok := p.eat(token.KwUnsafe); ok {
		f.Unsafety = ast.Unsafe
	}
	if p.at(token.KwExtern) {
		abi, ok := p.parseAbi()
		if !ok {
			return nil, false
		}
		f.Abi = &abi
	}
	if _, ok := p.expect(token.KwFn, diag.SynExpectType, "expected 'fn'"); !ok {
		return nil, false
	}
	if _, ok := p.expect(token.LParen, diag.SynUnexpectedToken, "expected '(' in fn type"); !ok {
		return nil, false
	}
	for !p.at(token.RParen) {
		if _, ok := p.eat(token.DotDotDot); ok {
			f.Variadic = true
			break
		}
		var arg ast.BareFnArg
		if p.at_or(token.Ident, token.Underscore) && p.nth(1).Kind == token.Colon {
			name := p.advance()
			p.advance()
			arg.Name = &ast.Ident{Name: name.Text, Span: name.Span}
		}
		ty, ok := p.parseTy(true)
		if !ok {
			return nil, false
		}
		arg.Ty = ty
		f.Inputs = append(f.Inputs, arg)
		if _, comma := p.eat(token.Comma); !comma {
			break
		}
	}
	if _, ok := p.expect(token.RParen, diag.SynUnexpectedToken, "expected ')' in fn type"); !ok {
		return nil, false
	}
	out, ok := p.parseRetTy()
	f.Output = out
	return f, ok
}

// parseRetTy: необязательный `-> T`; nil, если стрелки нет.
func (p *Parser) parseRetTy() (ast.Ty, bool) {
	if _, arrow := p.eat(token.RArrow); !arrow {
		return nil, true
	}
	return p.parseTy(false)
}

// parseAbi: `extern` с необязательной строкой.
func (p *Parser) parseAbi() (ast.Abi, bool) {
	p.advance() // extern
	if !p.at(token.LitStr) {
		return ast.Abi{}, true
	}
	lit, _ := p.parseLit()
	name, err := lit.StrValue()
	if err != nil {
		p.errAt(diag.SynBadAbi, lit.Span, "malformed ABI string: "+err.Error())
		return ast.Abi{}, false
	}
	return ast.Abi{Name: name}, true
}

// parseMacTail: путь уже разобран, курсор на '!'; за ним одна группа.
func (p *Parser) parseMacTail(path ast.Path) (ast.Mac, bool) {
	p.advance() // !
	if _, open := token.OpenDelim(p.peek().Kind); !open {
		p.err(diag.SynUnexpectedToken, "expected '(', '[' or '{' after macro path, got "+quoteTok(p.peek()))
		return ast.Mac{}, false
	}
	errs := p.opts.CurrentErrors
	g := p.parseDelimited()
	return ast.Mac{Path: path, Tts: []ast.TokenTree{g}}, p.opts.CurrentErrors == errs
}
