package parser

import (
	"rsyn/internal/ast"
	"rsyn/internal/diag"
	"rsyn/internal/token"
)

// parseItem разбирает один элемент вместе с внешними атрибутами и видимостью.
func (p *Parser) parseItem() (ast.Item, bool) {
	start := p.peek().Span
	attrs, ok := p.parseOuterAttrs()
	if !ok {
		return ast.Item{}, false
	}
	vis, ok := p.parseVisibility()
	if !ok {
		return ast.Item{}, false
	}
	item := ast.Item{Attrs: attrs, Vis: vis}

	tok := p.peek()
	switch {
	case tok.Kind == token.KwExtern:
		switch next := p.nth(1).Kind; {
		case next == token.KwCrate:
			ok = p.parseExternCrate(&item)
		case next == token.LBrace, next == token.LitStr && p.nth(2).Kind == token.LBrace:
			ok = p.parseForeignMod(&item)
		default:
			ok = p.parseFnItem(&item)
		}
	case tok.Kind == token.KwUse:
		ok = p.parseUse(&item)
	case tok.Kind == token.KwStatic:
		ok = p.parseStatic(&item)
	case tok.Kind == token.KwConst:
		if p.nth(1).Kind == token.KwFn || p.nth(1).Kind == token.KwUnsafe || p.nth(1).Kind == token.KwExtern {
			ok = p.parseFnItem(&item)
		} else {
			ok = p.parseConst(&item)
		}
	case tok.Kind == token.KwUnsafe:
		switch p.nth(1).Kind {
		case token.KwTrait:
			ok = p.parseTrait(&item)
		case token.KwImpl:
			ok = p.parseImpl(&item)
		default:
			ok = p.parseFnItem(&item)
		}
	case tok.Kind == token.KwFn:
		ok = p.parseFnItem(&item)
	case tok.Kind == token.KwMod:
		ok = p.parseMod(&item)
	case tok.Kind == token.KwType:
		ok = p.parseTyAlias(&item)
	case tok.Kind == token.KwEnum:
		ok = p.parseEnum(&item)
	case tok.Kind == token.KwStruct:
		ok = p.parseStruct(&item)
	case tok.Kind == token.KwTrait:
		ok = p.parseTrait(&item)
	case tok.Kind == token.KwImpl:
		ok = p.parseImpl(&item)
	case p.atUnsupportedItem():
		return item, false
	case p.atPathStart() && p.atMacroItem():
		ok = p.parseMacItem(&item)
	default:
		p.err(diag.SynExpectItem, "expected item, got "+quoteTok(tok))
		return item, false
	}
	item.Span = p.spanFrom(start)
	return item, ok
}

// atUnsupportedItem репортит элементы новых редакций: union, async fn,
// auto trait, macro 2.0.
func (p *Parser) atUnsupportedItem() bool {
	next := p.nth(1).Kind
	switch {
	case p.atIdent("union") && next == token.Ident:
		p.err(diag.SynUnsupportedUnion, "'union' items are not supported")
	case p.atIdent("async") && (next == token.KwFn || next == token.KwUnsafe || next == token.KwMove || next == token.LBrace):
		p.err(diag.SynUnsupportedAsync, "'async' is not supported")
	case p.atIdent("auto") && next == token.KwTrait:
		p.err(diag.SynUnsupportedItem, "auto traits are not supported")
	case p.atIdent("macro") && next == token.Ident:
		p.err(diag.SynUnsupportedItem, "declarative macros 2.0 are not supported")
	default:
		return false
	}
	return true
}

// atMacroItem: путь до '!' без параметров, как `macro_rules!` или `a::m!`.
func (p *Parser) atMacroItem() bool {
	i := 0
	if p.nth(i).Kind == token.ColonColon {
		i++
	}
	for isSegmentKind(p.nth(i).Kind) {
		i++
		if p.nth(i).Kind != token.ColonColon {
			break
		}
		i++
	}
	return i > 0 && p.nth(i).Kind == token.Bang
}

// parseVisibility: `pub`, `pub(crate)`, `pub(super)`, `pub(self)`, `pub(in path)`.
// `pub (A, B)` в кортежной структуре: это pub и тип-кортеж.
func (p *Parser) parseVisibility() (ast.Visibility, bool) {
	if _, ok := p.eat(token.KwPub); !ok {
		return ast.Visibility{}, true
	}
	if !p.at(token.LParen) {
		return ast.Visibility{Kind: ast.VisPublic}, true
	}
	switch n1 := p.nth(1); {
	case n1.Kind == token.KwCrate && p.nth(2).Kind == token.RParen:
		p.advance()
		p.advance()
		p.advance()
		return ast.Visibility{Kind: ast.VisCrate}, true
	case (n1.Kind == token.KwSuper || n1.Kind == token.KwSelf) && p.nth(2).Kind == token.RParen:
		p.advance()
		seg := p.advance()
		p.advance()
		path := ast.Path{Segments: []ast.PathSegment{{Ident: ast.Ident{Name: seg.Text, Span: seg.Span}}}}
		return ast.Visibility{Kind: ast.VisRestricted, Path: &path}, true
	case n1.Kind == token.KwIn:
		p.advance()
		p.advance()
		path, ok := p.parseModPath()
		if !ok {
			return ast.Visibility{}, false
		}
		if _, ok = p.expect(token.RParen, diag.SynBadVisibility, "expected ')' after visibility path"); !ok {
			return ast.Visibility{}, false
		}
		return ast.Visibility{Kind: ast.VisRestricted, Path: &path}, true
	}
	return ast.Visibility{Kind: ast.VisPublic}, true
}

func (p *Parser) expectSemi(what string) bool {
	_, ok := p.expect(token.Semi, diag.SynExpectSemicolon, "expected ';' after "+what)
	return ok
}

// parseExternCrate: `extern crate foo;`, `extern crate foo as bar;`.
func (p *Parser) parseExternCrate(item *ast.Item) bool {
	p.advance() // extern
	p.advance() // crate
	name, ok := p.parseIdent()
	if !ok {
		return false
	}
	var node ast.ItemExternCrate
	item.Ident = name
	if _, as := p.eat(token.KwAs); as {
		local, ok := p.parseIdent()
		if !ok {
			return false
		}
		node.Original = &name
		item.Ident = local
	}
	item.Node = node
	return p.expectSemi("extern crate")
}

// parseStatic: `static mut X: T = expr;`.
func (p *Parser) parseStatic(item *ast.Item) bool {
	p.advance()
	var node ast.ItemStatic
	if _, ok := p.eat(token.KwMut); ok {
		node.Mutbl = ast.Mutable
	}
	var ok bool
	if item.Ident, node.Ty, node.Expr, ok = p.parseTypedInit(true); !ok {
		return false
	}
	item.Node = node
	return true
}

func (p *Parser) parseConst(item *ast.Item) bool {
	p.advance()
	var node ast.ItemConst
	var ok bool
	if item.Ident, node.Ty, node.Expr, ok = p.parseTypedInit(true); !ok {
		return false
	}
	item.Node = node
	return true
}

// parseTypedInit: `NAME: Ty = expr;` общий хвост static/const.
func (p *Parser) parseTypedInit(requireInit bool) (ast.Ident, ast.Ty, ast.Expr, bool) {
	name, ok := p.parseIdent()
	if !ok {
		return name, nil, ast.Expr{}, false
	}
	if _, ok = p.expect(token.Colon, diag.SynExpectColon, "expected ':' before type"); !ok {
		return name, nil, ast.Expr{}, false
	}
	ty, ok := p.parseTy(true)
	if !ok {
		return name, ty, ast.Expr{}, false
	}
	var expr ast.Expr
	if _, eq := p.eat(token.Eq); eq || requireInit {
		if !eq {
			p.err(diag.SynUnexpectedToken, "expected '=' and an initializer, got "+quoteTok(p.peek()))
			return name, ty, expr, false
		}
		if expr, ok = p.parseExprUntil(token.Semi); !ok {
			return name, ty, expr, false
		}
	}
	return name, ty, expr, p.expectSemi("item")
}

// parseMod: `mod m;` или `mod m { #![attrs] items }`. Внутренние атрибуты
// дописываются в item.Attrs.
func (p *Parser) parseMod(item *ast.Item) bool {
	p.advance()
	name, ok := p.parseIdent()
	if !ok {
		return false
	}
	item.Ident = name
	if _, semi := p.eat(token.Semi); semi {
		item.Node = ast.ItemMod{}
		return true
	}
	if _, ok = p.expect(token.LBrace, diag.SynExpectBody, "expected ';' or '{' after module name"); !ok {
		return false
	}
	item.Attrs = append(item.Attrs, p.parseInnerAttrs()...)
	node := ast.ItemMod{Inline: true, Items: p.parseItems(token.RBrace)}
	item.Node = node
	_, ok = p.expect(token.RBrace, diag.SynUnclosedDelimiter, "expected '}' to close module")
	return ok
}

// parseForeignMod: `extern "C" { fn f(); static X: u8; }`.
func (p *Parser) parseForeignMod(item *ast.Item) bool {
	abi, ok := p.parseAbi()
	if !ok {
		return false
	}
	p.advance() // {
	item.Attrs = append(item.Attrs, p.parseInnerAttrs()...)
	node := ast.ItemForeignMod{Abi: abi}
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		fi, ok := p.parseForeignItem()
		if !ok {
			return false
		}
		node.Items = append(node.Items, fi)
	}
	item.Node = node
	_, ok = p.expect(token.RBrace, diag.SynUnclosedDelimiter, "expected '}' to close extern block")
	return ok
}

func (p *Parser) parseForeignItem() (ast.ForeignItem, bool) {
	start := p.peek().Span
	var fi ast.ForeignItem
	var ok bool
	if fi.Attrs, ok = p.parseOuterAttrs(); !ok {
		return fi, false
	}
	if fi.Vis, ok = p.parseVisibility(); !ok {
		return fi, false
	}
	switch {
	case p.at(token.KwFn):
		p.advance()
		if fi.Ident, ok = p.parseIdent(); !ok {
			return fi, false
		}
		var node ast.ForeignItemFn
		if node.Generics, ok = p.parseGenerics(); !ok {
			return fi, false
		}
		if node.Decl, ok = p.parseFnDecl(false); !ok {
			return fi, false
		}
		if node.Generics.WhereClause, ok = p.parseWhereClause(); !ok {
			return fi, false
		}
		fi.Node = node
	case p.at(token.KwStatic):
		p.advance()
		var node ast.ForeignItemStatic
		if _, mut := p.eat(token.KwMut); mut {
			node.Mutbl = ast.Mutable
		}
		if fi.Ident, ok = p.parseIdent(); !ok {
			return fi, false
		}
		if _, ok = p.expect(token.Colon, diag.SynExpectColon, "expected ':' before type"); !ok {
			return fi, false
		}
		if node.Ty, ok = p.parseTy(true); !ok {
			return fi, false
		}
		fi.Node = node
	default:
		p.err(diag.SynExpectItem, "expected 'fn' or 'static' in extern block, got "+quoteTok(p.peek()))
		return fi, false
	}
	if !p.expectSemi("foreign item") {
		return fi, false
	}
	fi.Span = p.spanFrom(start)
	return fi, true
}

// parseTyAlias: `type A<T> where T: X = B;`.
func (p *Parser) parseTyAlias(item *ast.Item) bool {
	p.advance()
	var ok bool
	if item.Ident, ok = p.parseIdent(); !ok {
		return false
	}
	var node ast.ItemTy
	if node.Generics, ok = p.parseGenericsWhere(); !ok {
		return false
	}
	if _, ok = p.expect(token.Eq, diag.SynUnexpectedToken, "expected '=' in type alias"); !ok {
		return false
	}
	if node.Ty, ok = p.parseTy(true); !ok {
		return false
	}
	item.Node = node
	return p.expectSemi("type alias")
}

// parseGenericsWhere: `<...>` и сразу where-клауза.
func (p *Parser) parseGenericsWhere() (ast.Generics, bool) {
	g, ok := p.parseGenerics()
	if !ok {
		return g, false
	}
	g.WhereClause, ok = p.parseWhereClause()
	return g, ok
}

// parseMacItem: `path! ident? (...)` ; после не-фигурной группы нужен ';'.
func (p *Parser) parseMacItem(item *ast.Item) bool {
	path, ok := p.parsePath()
	if !ok {
		return false
	}
	p.advance() // !
	if p.at(token.Ident) {
		item.Ident = ast.Ident{Name: p.peek().Text, Span: p.peek().Span}
		p.advance()
	}
	mac, ok := p.parseMacBody(path)
	if !ok {
		return false
	}
	item.Node = ast.ItemMac{Mac: mac}
	return true
}

// parseMacBody: курсор на группе после `path!`. Точка с запятой обязательна
// после () и [], и съедается (не сохраняется) после {}.
func (p *Parser) parseMacBody(path ast.Path) (ast.Mac, bool) {
	if _, open := token.OpenDelim(p.peek().Kind); !open {
		p.err(diag.SynUnexpectedToken, "expected '(', '[' or '{' after macro path, got "+quoteTok(p.peek()))
		return ast.Mac{}, false
	}
	brace := p.at(token.LBrace)
	errs := p.opts.CurrentErrors
	g := p.parseDelimited()
	if p.opts.CurrentErrors != errs {
		return ast.Mac{}, false
	}
	mac := ast.Mac{Path: path, Tts: []ast.TokenTree{g}}
	if brace {
		p.eat(token.Semi)
		return mac, true
	}
	return mac, p.expectSemi("macro invocation")
}
