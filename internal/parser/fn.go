package parser

import (
	"rsyn/internal/ast"
	"rsyn/internal/diag"
	"rsyn/internal/token"
)

// parseFnItem: `const? unsafe? (extern "abi")? fn name<G>(args) -> R where .. { body }`.
func (p *Parser) parseFnItem(item *ast.Item) bool {
	sig, name, ok := p.parseMethodSig(false)
	if !ok {
		return false
	}
	item.Ident = name
	node := ast.ItemFn{
		Decl:      sig.Decl,
		Unsafety:  sig.Unsafety,
		Constness: sig.Constness,
		Abi:       sig.Abi,
		Generics:  sig.Generics,
	}
	if node.Block, ok = p.parseBlock(); !ok {
		return false
	}
	item.Node = node
	return true
}

// parseMethodSig разбирает всё от квалификаторов до where-клаузы включительно.
// allowIgnored разрешает безымянные аргументы (методы трейтов).
func (p *Parser) parseMethodSig(allowIgnored bool) (ast.MethodSig, ast.Ident, bool) {
	var sig ast.MethodSig
	var name ast.Ident
	if _, ok := p.eat(token.KwConst); ok {
		sig.Constness = ast.Const
	}
	if _, ok := p.eat(token.KwUnsafe); ok {
		sig.Unsafety = ast.Unsafe
	}
	if p.at(token.KwExtern) {
		abi, ok := p.parseAbi()
		if !ok {
			return sig, name, false
		}
		sig.Abi = &abi
	}
	if p.atIdent("async") {
		p.err(diag.SynUnsupportedAsync, "'async' functions are not supported")
		return sig, name, false
	}
	if _, ok := p.expect(token.KwFn, diag.SynExpectItem, "expected 'fn'"); !ok {
		return sig, name, false
	}
	var ok bool
	if name, ok = p.parseIdent(); !ok {
		return sig, name, false
	}
	if sig.Generics, ok = p.parseGenerics(); !ok {
		return sig, name, false
	}
	if sig.Decl, ok = p.parseFnDecl(allowIgnored); !ok {
		return sig, name, false
	}
	sig.Generics.WhereClause, ok = p.parseWhereClause()
	return sig, name, ok
}

// parseFnDecl: `(args, ...) -> R`. self-аргумент допустим только первым.
func (p *Parser) parseFnDecl(allowIgnored bool) (ast.FnDecl, bool) {
	var decl ast.FnDecl
	if _, ok := p.expect(token.LParen, diag.SynUnexpectedToken, "expected '(' to start parameter list"); !ok {
		return decl, false
	}
	for !p.at(token.RParen) {
		if _, ok := p.eat(token.DotDotDot); ok {
			decl.Variadic = true
			break
		}
		if len(decl.Inputs) == 0 {
			if arg, isSelf := p.parseSelfArg(); isSelf {
				decl.Inputs = append(decl.Inputs, arg)
				if _, comma := p.eat(token.Comma); !comma {
					break
				}
				continue
			}
		}
		arg, ok := p.parseFnArg(allowIgnored)
		if !ok {
			return decl, false
		}
		decl.Inputs = append(decl.Inputs, arg)
		if _, comma := p.eat(token.Comma); !comma {
			break
		}
	}
	if _, ok := p.expect(token.RParen, diag.SynUnexpectedToken, "expected ')' to close parameter list"); !ok {
		return decl, false
	}
	var ok bool
	decl.Output, ok = p.parseRetTy()
	return decl, ok
}

// parseSelfArg: `self`, `mut self`, `&self`, `&mut self`, `&'a self`, `&'a mut self`.
// `self: Ty` разбирается как обычный аргумент.
func (p *Parser) parseSelfArg() (ast.FnArg, bool) {
	selfAt := func(i int) bool {
		next := p.nth(i + 1).Kind
		return p.nth(i).Kind == token.KwSelf && next != token.ColonColon && next != token.Colon
	}
	switch {
	case selfAt(0):
		p.advance()
		return ast.ArgSelfValue{}, true
	case p.at(token.KwMut) && selfAt(1):
		p.advance()
		p.advance()
		return ast.ArgSelfValue{Mutbl: ast.Mutable}, true
	case p.at(token.Amp):
		i := 1
		if p.nth(i).Kind == token.Lifetime {
			i++
		}
		if p.nth(i).Kind == token.KwMut {
			i++
		}
		if !selfAt(i) {
			return nil, false
		}
		p.advance() // &
		var arg ast.ArgSelfRef
		if p.at(token.Lifetime) {
			lt := p.parseLifetime()
			arg.Lifetime = &lt
		}
		if _, mut := p.eat(token.KwMut); mut {
			arg.Mutbl = ast.Mutable
		}
		p.advance() // self
		return arg, true
	}
	return nil, false
}

// parseFnArg: `pat: Ty`; в трейтах допустим голый тип.
func (p *Parser) parseFnArg(allowIgnored bool) (ast.FnArg, bool) {
	if allowIgnored && !p.hasTopLevelColon() {
		ty, ok := p.parseTy(true)
		return ast.ArgIgnored{Ty: ty}, ok
	}
	tts := p.parseTtsUntil(func(k token.Kind) bool {
		return k == token.Colon || k == token.Comma
	})
	if len(tts) == 0 {
		p.err(diag.SynUnexpectedToken, "expected parameter pattern, got "+quoteTok(p.peek()))
		return nil, false
	}
	if _, ok := p.expect(token.Colon, diag.SynExpectColon, "expected ':' after parameter pattern"); !ok {
		return nil, false
	}
	ty, ok := p.parseTy(true)
	return ast.ArgCaptured{Pat: ast.Pat{Tts: tts}, Ty: ty}, ok
}

// hasTopLevelColon: встречается ли ':' на нулевой глубине до ',' или
// закрывающей скобки списка параметров.
func (p *Parser) hasTopLevelColon() bool {
	depth := 0
	for i := 0; ; i++ {
		k := p.nth(i).Kind
		switch {
		case k == token.EOF:
			return false
		case depth == 0 && (k == token.Comma || k == token.Colon):
			return k == token.Colon
		}
		if _, open := token.OpenDelim(k); open {
			depth++
		} else if _, closer := token.CloseDelim(k); closer {
			if depth == 0 {
				return false
			}
			depth--
		}
	}
}
