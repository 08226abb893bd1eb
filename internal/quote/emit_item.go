package quote

import (
	"fmt"

	"rsyn/internal/ast"
	"rsyn/internal/token"
)

func (t *Tokens) attr(a ast.Attribute) {
	t.Punct(token.Pound)
	if a.Style == ast.AttrInner {
		t.Punct(token.Bang)
	}
	t.Group(token.DelimBracket, func(in *Tokens) { in.metaItem(a.Value) })
}

func (t *Tokens) outerAttrs(attrs []ast.Attribute) {
	for _, a := range attrs {
		if a.Style == ast.AttrOuter {
			t.attr(a)
		}
	}
}

func (t *Tokens) innerAttrs(attrs []ast.Attribute) {
	for _, a := range attrs {
		if a.Style == ast.AttrInner {
			t.attr(a)
		}
	}
}

func (t *Tokens) metaItem(m ast.MetaItem) {
	switch m := m.(type) {
	case ast.MetaWord:
		t.Ident(m.Ident.Name)
	case ast.MetaList:
		t.Ident(m.Ident.Name)
		t.Group(token.DelimParen, func(in *Tokens) {
			commaSep(in, m.Nested, (*Tokens).nestedMetaItem)
		})
	case ast.MetaNameValue:
		t.Ident(m.Ident.Name)
		t.Punct(token.Eq)
		t.Lit(m.Lit)
	default:
		panic(fmt.Sprintf("quote: unexpected meta item %T", m))
	}
}

func (t *Tokens) nestedMetaItem(n ast.NestedMetaItem) {
	switch n := n.(type) {
	case ast.Lit:
		t.Lit(n)
	case ast.MetaItem:
		t.metaItem(n)
	default:
		panic(fmt.Sprintf("quote: unexpected nested meta item %T", n))
	}
}

func (t *Tokens) vis(v ast.Visibility) {
	switch v.Kind {
	case ast.VisInherited:
	case ast.VisPublic:
		t.Keyword(token.KwPub)
	case ast.VisCrate:
		t.Keyword(token.KwPub)
		t.Group(token.DelimParen, func(in *Tokens) { in.Keyword(token.KwCrate) })
	case ast.VisRestricted:
		if v.Path == nil {
			panic("quote: restricted visibility without a path")
		}
		t.Keyword(token.KwPub)
		t.Group(token.DelimParen, func(in *Tokens) {
			if id, ok := v.Path.Ident(); ok && (id.Name == "super" || id.Name == "self") {
				in.Ident(id.Name)
				return
			}
			in.Keyword(token.KwIn)
			in.path(*v.Path)
		})
	default:
		panic(fmt.Sprintf("quote: unexpected visibility %s", v.Kind))
	}
}

func (t *Tokens) crate(c ast.Crate) {
	for _, a := range c.Attrs {
		t.attr(a)
	}
	for _, it := range c.Items {
		t.item(it)
	}
}

func (t *Tokens) block(b ast.Block) {
	t.Group(token.DelimBrace, func(in *Tokens) { in.tts = append(in.tts, b.Tts...) })
}

// body: `{ #![inner] ... }` для mod, trait, impl и extern-блоков.
func (t *Tokens) body(inner []ast.Attribute, fill func(*Tokens)) {
	t.Group(token.DelimBrace, func(in *Tokens) {
		in.innerAttrs(inner)
		fill(in)
	})
}

func (t *Tokens) item(it ast.Item) {
	hasBody := false
	switch n := it.Node.(type) {
	case ast.ItemMod:
		hasBody = n.Inline
	case ast.ItemTrait, ast.ItemImpl, ast.ItemForeignMod:
		hasBody = true
	}
	if hasBody {
		t.outerAttrs(it.Attrs)
	} else {
		for _, a := range it.Attrs {
			t.attr(a)
		}
	}
	t.vis(it.Vis)

	switch n := it.Node.(type) {
	case ast.ItemExternCrate:
		t.Keyword(token.KwExtern)
		t.Keyword(token.KwCrate)
		if n.Original != nil {
			t.Ident(n.Original.Name)
			t.Keyword(token.KwAs)
		}
		t.Ident(it.Ident.Name)
		t.Punct(token.Semi)
	case ast.ItemUse:
		t.Keyword(token.KwUse)
		t.viewPath(n.Path)
		t.Punct(token.Semi)
	case ast.ItemStatic:
		t.Keyword(token.KwStatic)
		t.mutability(n.Mutbl)
		t.typedInit(it.Ident, n.Ty, &n.Expr)
	case ast.ItemConst:
		t.Keyword(token.KwConst)
		t.typedInit(it.Ident, n.Ty, &n.Expr)
	case ast.ItemFn:
		t.methodSig(it.Ident, ast.MethodSig{
			Unsafety:  n.Unsafety,
			Constness: n.Constness,
			Abi:       n.Abi,
			Decl:      n.Decl,
			Generics:  n.Generics,
		})
		t.block(n.Block)
	case ast.ItemMod:
		t.Keyword(token.KwMod)
		t.Ident(it.Ident.Name)
		if !n.Inline {
			t.Punct(token.Semi)
			return
		}
		t.body(it.Attrs, func(in *Tokens) {
			for _, sub := range n.Items {
				in.item(sub)
			}
		})
	case ast.ItemForeignMod:
		t.abi(&n.Abi)
		t.body(it.Attrs, func(in *Tokens) {
			for _, fi := range n.Items {
				in.foreignItem(fi)
			}
		})
	case ast.ItemTy:
		t.Keyword(token.KwType)
		t.Ident(it.Ident.Name)
		t.generics(n.Generics)
		t.whereClause(n.Generics.WhereClause)
		t.Punct(token.Eq)
		t.ty(n.Ty)
		t.Punct(token.Semi)
	case ast.ItemEnum:
		t.Keyword(token.KwEnum)
		t.Ident(it.Ident.Name)
		t.generics(n.Generics)
		t.whereClause(n.Generics.WhereClause)
		t.Group(token.DelimBrace, func(in *Tokens) {
			commaSep(in, n.Variants, (*Tokens).variant)
		})
	case ast.ItemStruct:
		t.Keyword(token.KwStruct)
		t.Ident(it.Ident.Name)
		t.generics(n.Generics)
		t.structBody(n.Data, n.Generics.WhereClause)
	case ast.ItemTrait:
		t.unsafety(n.Unsafety)
		t.Keyword(token.KwTrait)
		t.Ident(it.Ident.Name)
		t.generics(n.Generics)
		if len(n.Supertraits) > 0 {
			t.Punct(token.Colon)
			plusSep(t, n.Supertraits, (*Tokens).bound)
		}
		t.whereClause(n.Generics.WhereClause)
		t.body(it.Attrs, func(in *Tokens) {
			for _, ti := range n.Items {
				in.traitItem(ti)
			}
		})
	case ast.ItemDefaultImpl:
		t.unsafety(n.Unsafety)
		t.Keyword(token.KwImpl)
		t.path(n.Path)
		t.Keyword(token.KwFor)
		t.Punct(token.DotDot)
		t.Group(token.DelimBrace, nil)
	case ast.ItemImpl:
		t.impl(it, n)
	case ast.ItemMac:
		t.path(n.Mac.Path)
		t.Punct(token.Bang)
		if it.Ident.Name != "" {
			t.Ident(it.Ident.Name)
		}
		t.tts = append(t.tts, n.Mac.Tts...)
		t.macSemi(n.Mac)
	default:
		panic(fmt.Sprintf("quote: unexpected item kind %T", it.Node))
	}
}

// macSemi: после вызова макроса не в фигурных скобках нужен ';'.
func (t *Tokens) macSemi(m ast.Mac) {
	if n := len(m.Tts); n > 0 {
		if g, ok := m.Tts[n-1].(ast.TtDelimited); ok && g.Delimited.Delim == token.DelimBrace {
			return
		}
	}
	t.Punct(token.Semi)
}

func (t *Tokens) impl(it ast.Item, n ast.ItemImpl) {
	t.unsafety(n.Unsafety)
	t.Keyword(token.KwImpl)
	first := n.SelfTy
	if n.Trait != nil {
		first = nil
	}
	switch {
	case len(n.Generics.Lifetimes) > 0 || len(n.Generics.TyParams) > 0:
		t.generics(n.Generics)
	case n.Polarity == ast.Positive && startsWithLt(first):
		// `impl <T>::X {}` иначе читается как список параметров.
		t.Punct(token.Lt)
		t.Punct(token.Gt)
	}
	if n.Polarity == ast.Negative {
		t.Punct(token.Bang)
	}
	if n.Trait != nil {
		t.path(*n.Trait)
		t.Keyword(token.KwFor)
	}
	t.ty(n.SelfTy)
	t.whereClause(n.Generics.WhereClause)
	t.body(it.Attrs, func(in *Tokens) {
		for _, ii := range n.Items {
			in.implItem(ii)
		}
	})
}

func startsWithLt(ty ast.Ty) bool {
	tp, ok := ty.(ast.TyPath)
	return ok && tp.QSelf != nil
}

func (t *Tokens) structBody(data ast.VariantData, wc ast.WhereClause) {
	switch data := data.(type) {
	case ast.StructData:
		t.whereClause(wc)
		t.Group(token.DelimBrace, func(in *Tokens) {
			commaSep(in, data.Fields, (*Tokens).field)
		})
	case ast.TupleData:
		t.Group(token.DelimParen, func(in *Tokens) {
			commaSep(in, data.Fields, (*Tokens).field)
		})
		t.whereClause(wc)
		t.Punct(token.Semi)
	case ast.UnitData:
		t.whereClause(wc)
		t.Punct(token.Semi)
	default:
		panic(fmt.Sprintf("quote: unexpected variant data %T", data))
	}
}

func (t *Tokens) variantData(data ast.VariantData) {
	switch data := data.(type) {
	case ast.StructData:
		t.Group(token.DelimBrace, func(in *Tokens) {
			commaSep(in, data.Fields, (*Tokens).field)
		})
	case ast.TupleData:
		t.Group(token.DelimParen, func(in *Tokens) {
			commaSep(in, data.Fields, (*Tokens).field)
		})
	case ast.UnitData, nil:
	default:
		panic(fmt.Sprintf("quote: unexpected variant data %T", data))
	}
}

func (t *Tokens) field(f ast.Field) {
	t.outerAttrs(f.Attrs)
	t.vis(f.Vis)
	if f.Ident != nil {
		t.Ident(f.Ident.Name)
		t.Punct(token.Colon)
	}
	t.ty(f.Ty)
}

func (t *Tokens) variant(v ast.Variant) {
	t.outerAttrs(v.Attrs)
	t.Ident(v.Ident.Name)
	t.variantData(v.Data)
	if v.Discriminant != nil {
		t.Punct(token.Eq)
		t.Append(*v.Discriminant)
	}
}

// typedInit: `NAME: Ty = expr;`; expr nil или пустое: без инициализатора.
func (t *Tokens) typedInit(name ast.Ident, ty ast.Ty, expr *ast.Expr) {
	t.Ident(name.Name)
	t.Punct(token.Colon)
	t.ty(ty)
	if expr != nil && len(expr.Tts) > 0 {
		t.Punct(token.Eq)
		t.Append(*expr)
	}
	t.Punct(token.Semi)
}

// methodSig: всё от `const unsafe extern` до where-клаузы.
func (t *Tokens) methodSig(name ast.Ident, sig ast.MethodSig) {
	if sig.Constness == ast.Const {
		t.Keyword(token.KwConst)
	}
	t.unsafety(sig.Unsafety)
	t.abi(sig.Abi)
	t.Keyword(token.KwFn)
	t.Ident(name.Name)
	t.generics(sig.Generics)
	t.fnDecl(sig.Decl)
	t.whereClause(sig.Generics.WhereClause)
}

func (t *Tokens) fnDecl(decl ast.FnDecl) {
	t.Group(token.DelimParen, func(in *Tokens) {
		commaSep(in, decl.Inputs, (*Tokens).fnArg)
		if decl.Variadic {
			if len(decl.Inputs) > 0 {
				in.Punct(token.Comma)
			}
			in.Punct(token.DotDotDot)
		}
	})
	t.retTy(decl.Output)
}

func (t *Tokens) fnArg(arg ast.FnArg) {
	switch arg := arg.(type) {
	case ast.ArgSelfRef:
		t.Punct(token.Amp)
		if arg.Lifetime != nil {
			t.Lifetime(arg.Lifetime.Name)
		}
		t.mutability(arg.Mutbl)
		t.Keyword(token.KwSelf)
	case ast.ArgSelfValue:
		t.mutability(arg.Mutbl)
		t.Keyword(token.KwSelf)
	case ast.ArgCaptured:
		t.Append(arg.Pat)
		t.Punct(token.Colon)
		t.ty(arg.Ty)
	case ast.ArgIgnored:
		t.ty(arg.Ty)
	default:
		panic(fmt.Sprintf("quote: unexpected fn argument %T", arg))
	}
}

func (t *Tokens) traitItem(ti ast.TraitItem) {
	t.outerAttrs(ti.Attrs)
	switch n := ti.Node.(type) {
	case ast.TraitItemConst:
		t.Keyword(token.KwConst)
		t.typedInit(ti.Ident, n.Ty, n.Default)
	case ast.TraitItemMethod:
		t.methodSig(ti.Ident, n.Sig)
		if n.Default != nil {
			t.block(*n.Default)
		} else {
			t.Punct(token.Semi)
		}
	case ast.TraitItemType:
		t.Keyword(token.KwType)
		t.Ident(ti.Ident.Name)
		if len(n.Bounds) > 0 {
			t.Punct(token.Colon)
			plusSep(t, n.Bounds, (*Tokens).bound)
		}
		if n.Default != nil {
			t.Punct(token.Eq)
			t.ty(n.Default)
		}
		t.Punct(token.Semi)
	case ast.TraitItemMac:
		t.mac(n.Mac)
		t.macSemi(n.Mac)
	default:
		panic(fmt.Sprintf("quote: unexpected trait item %T", ti.Node))
	}
}

func (t *Tokens) implItem(ii ast.ImplItem) {
	t.outerAttrs(ii.Attrs)
	t.vis(ii.Vis)
	if ii.Defaultness {
		t.Ident("default")
	}
	switch n := ii.Node.(type) {
	case ast.ImplItemConst:
		t.Keyword(token.KwConst)
		t.typedInit(ii.Ident, n.Ty, &n.Expr)
	case ast.ImplItemMethod:
		t.methodSig(ii.Ident, n.Sig)
		t.block(n.Block)
	case ast.ImplItemType:
		t.Keyword(token.KwType)
		t.Ident(ii.Ident.Name)
		t.Punct(token.Eq)
		t.ty(n.Ty)
		t.Punct(token.Semi)
	case ast.ImplItemMac:
		t.mac(n.Mac)
		t.macSemi(n.Mac)
	default:
		panic(fmt.Sprintf("quote: unexpected impl item %T", ii.Node))
	}
}

func (t *Tokens) foreignItem(fi ast.ForeignItem) {
	t.outerAttrs(fi.Attrs)
	t.vis(fi.Vis)
	switch n := fi.Node.(type) {
	case ast.ForeignItemFn:
		t.methodSig(fi.Ident, ast.MethodSig{Decl: n.Decl, Generics: n.Generics})
	case ast.ForeignItemStatic:
		t.Keyword(token.KwStatic)
		t.mutability(n.Mutbl)
		t.Ident(fi.Ident.Name)
		t.Punct(token.Colon)
		t.ty(n.Ty)
	default:
		panic(fmt.Sprintf("quote: unexpected foreign item %T", fi.Node))
	}
	t.Punct(token.Semi)
}

func (t *Tokens) viewPath(vp ast.ViewPath) {
	switch vp := vp.(type) {
	case ast.ViewSimple:
		t.path(vp.Path)
		if vp.Rename != nil {
			t.Keyword(token.KwAs)
			t.Ident(vp.Rename.Name)
		}
	case ast.ViewGlob:
		t.path(vp.Path)
		t.Punct(token.ColonColon)
		t.Punct(token.Star)
	case ast.ViewList:
		t.path(vp.Path)
		if len(vp.Path.Segments) > 0 {
			t.Punct(token.ColonColon)
		}
		t.Group(token.DelimBrace, func(in *Tokens) {
			commaSep(in, vp.Items, func(in *Tokens, it ast.PathListItem) {
				in.Ident(it.Name.Name)
				if it.Rename != nil {
					in.Keyword(token.KwAs)
					in.Ident(it.Rename.Name)
				}
			})
		})
	default:
		panic(fmt.Sprintf("quote: unexpected use tree %T", vp))
	}
}
