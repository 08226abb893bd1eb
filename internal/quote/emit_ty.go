package quote

import (
	"fmt"

	"rsyn/internal/ast"
	"rsyn/internal/token"
)

func (t *Tokens) path(p ast.Path) {
	if p.Global {
		t.Punct(token.ColonColon)
	}
	t.segments(p.Segments)
}

func (t *Tokens) segments(segs []ast.PathSegment) {
	for i, seg := range segs {
		if i > 0 {
			t.Punct(token.ColonColon)
		}
		t.Ident(seg.Ident.Name)
		t.pathParams(seg.Parameters)
	}
}

func (t *Tokens) pathParams(params ast.PathParameters) {
	switch params := params.(type) {
	case nil:
	case ast.AngleBracketed:
		if params.IsEmpty() {
			return
		}
		t.Punct(token.Lt)
		n := 0
		sep := func() {
			if n > 0 {
				t.Punct(token.Comma)
			}
			n++
		}
		for _, lt := range params.Lifetimes {
			sep()
			t.Lifetime(lt.Name)
		}
		for _, ty := range params.Types {
			sep()
			t.ty(ty)
		}
		for _, b := range params.Bindings {
			sep()
			t.Ident(b.Ident.Name)
			t.Punct(token.Eq)
			t.ty(b.Ty)
		}
		t.Punct(token.Gt)
	case ast.Parenthesized:
		t.Group(token.DelimParen, func(in *Tokens) {
			commaSep(in, params.Inputs, (*Tokens).ty)
		})
		if params.Output != nil {
			t.Punct(token.RArrow)
			t.ty(params.Output)
		}
	default:
		panic(fmt.Sprintf("quote: unexpected path parameters %T", params))
	}
}

func (t *Tokens) ty(ty ast.Ty) {
	switch ty := ty.(type) {
	case ast.TySlice:
		t.Group(token.DelimBracket, func(in *Tokens) { in.ty(ty.Elem) })
	case ast.TyArray:
		t.Group(token.DelimBracket, func(in *Tokens) {
			in.ty(ty.Elem)
			in.Punct(token.Semi)
			in.Append(ty.Len)
		})
	case ast.TyPtr:
		t.Punct(token.Star)
		if ty.Mutbl == ast.Mutable {
			t.Keyword(token.KwMut)
		} else {
			t.Keyword(token.KwConst)
		}
		t.ty(ty.Elem)
	case ast.TyRptr:
		t.Punct(token.Amp)
		if ty.Lifetime != nil {
			t.Lifetime(ty.Lifetime.Name)
		}
		t.mutability(ty.Mutbl)
		t.ty(ty.Elem)
	case ast.TyBareFn:
		t.forLifetimes(ty.Lifetimes)
		t.unsafety(ty.Unsafety)
		t.abi(ty.Abi)
		t.Keyword(token.KwFn)
		t.Group(token.DelimParen, func(in *Tokens) {
			commaSep(in, ty.Inputs, func(in *Tokens, arg ast.BareFnArg) {
				if arg.Name != nil {
					in.Ident(arg.Name.Name)
					in.Punct(token.Colon)
				}
				in.ty(arg.Ty)
			})
			if ty.Variadic {
				if len(ty.Inputs) > 0 {
					in.Punct(token.Comma)
				}
				in.Punct(token.DotDotDot)
			}
		})
		t.retTy(ty.Output)
	case ast.TyNever:
		t.Punct(token.Bang)
	case ast.TyTup:
		t.Group(token.DelimParen, func(in *Tokens) {
			commaSep(in, ty.Elems, (*Tokens).ty)
			if len(ty.Elems) == 1 {
				in.Punct(token.Comma)
			}
		})
	case ast.TyPath:
		t.tyPath(ty)
	case ast.TyTraitObject:
		plusSep(t, ty.Bounds, (*Tokens).bound)
	case ast.TyImplTrait:
		t.Keyword(token.KwImpl)
		plusSep(t, ty.Bounds, (*Tokens).bound)
	case ast.TyParen:
		t.Group(token.DelimParen, func(in *Tokens) { in.ty(ty.Elem) })
	case ast.TyInfer:
		t.Punct(token.Underscore)
	case ast.TyMac:
		t.mac(ty.Mac)
	default:
		panic(fmt.Sprintf("quote: unexpected type %T", ty))
	}
}

// tyPath: `<T as a::Tr>::Out` разбивает Path по QSelf.Position.
func (t *Tokens) tyPath(ty ast.TyPath) {
	if ty.QSelf == nil {
		t.path(ty.Path)
		return
	}
	pos := ty.QSelf.Position
	if pos < 0 || pos > len(ty.Path.Segments) {
		panic(fmt.Sprintf("quote: qualified self position %d out of range", pos))
	}
	t.Punct(token.Lt)
	t.ty(ty.QSelf.Ty)
	if pos > 0 {
		t.Keyword(token.KwAs)
		t.path(ast.Path{Global: ty.Path.Global, Segments: ty.Path.Segments[:pos]})
	}
	t.Punct(token.Gt)
	t.Punct(token.ColonColon)
	t.segments(ty.Path.Segments[pos:])
}

func (t *Tokens) retTy(out ast.Ty) {
	if out == nil {
		return
	}
	t.Punct(token.RArrow)
	t.ty(out)
}

func (t *Tokens) mutability(m ast.Mutability) {
	if m == ast.Mutable {
		t.Keyword(token.KwMut)
	}
}

func (t *Tokens) unsafety(u ast.Unsafety) {
	if u == ast.Unsafe {
		t.Keyword(token.KwUnsafe)
	}
}

func (t *Tokens) abi(abi *ast.Abi) {
	if abi == nil {
		return
	}
	t.Keyword(token.KwExtern)
	if abi.Name != "" {
		t.Lit(ast.StrLit(abi.Name))
	}
}

func (t *Tokens) bound(b ast.TyParamBound) {
	switch b := b.(type) {
	case ast.TraitBound:
		if b.Modifier == ast.TraitBoundMaybe {
			t.Punct(token.Question)
		}
		t.polyTraitRef(b.Trait)
	case ast.RegionBound:
		t.Lifetime(b.Lifetime.Name)
	default:
		panic(fmt.Sprintf("quote: unexpected bound %T", b))
	}
}

func (t *Tokens) polyTraitRef(ref ast.PolyTraitRef) {
	t.forLifetimes(ref.BoundLifetimes)
	t.path(ref.TraitRef)
}

// forLifetimes: `for<'a, 'b: 'a>`; ничего, если список пуст.
func (t *Tokens) forLifetimes(defs []ast.LifetimeDef) {
	if len(defs) == 0 {
		return
	}
	t.Keyword(token.KwFor)
	t.Punct(token.Lt)
	commaSep(t, defs, (*Tokens).lifetimeDef)
	t.Punct(token.Gt)
}

func (t *Tokens) lifetimeDef(def ast.LifetimeDef) {
	t.outerAttrs(def.Attrs)
	t.Lifetime(def.Lifetime.Name)
	t.lifetimeBounds(def.Bounds)
}

func (t *Tokens) lifetimeBounds(bounds []ast.Lifetime) {
	if len(bounds) == 0 {
		return
	}
	t.Punct(token.Colon)
	plusSep(t, bounds, func(t *Tokens, lt ast.Lifetime) { t.Lifetime(lt.Name) })
}

// tyParam: withDefault=false для позиций, где значение по умолчанию не пишется.
func (t *Tokens) tyParam(tp ast.TyParam, withDefault bool) {
	t.outerAttrs(tp.Attrs)
	t.Ident(tp.Ident.Name)
	if len(tp.Bounds) > 0 {
		t.Punct(token.Colon)
		plusSep(t, tp.Bounds, (*Tokens).bound)
	}
	if withDefault && tp.Default != nil {
		t.Punct(token.Eq)
		t.ty(tp.Default)
	}
}

// generics renders the declaration list `<...>` with defaults; the where
// clause is rendered separately by the item.
func (t *Tokens) generics(g ast.Generics) {
	t.genericParams(g, true)
}

func (t *Tokens) genericParams(g ast.Generics, withDefaults bool) {
	if len(g.Lifetimes) == 0 && len(g.TyParams) == 0 {
		return
	}
	t.Punct(token.Lt)
	commaSep(t, g.Lifetimes, (*Tokens).lifetimeDef)
	if len(g.Lifetimes) > 0 && len(g.TyParams) > 0 {
		t.Punct(token.Comma)
	}
	commaSep(t, g.TyParams, func(t *Tokens, tp ast.TyParam) { t.tyParam(tp, withDefaults) })
	t.Punct(token.Gt)
}

func (t *Tokens) whereClause(wc ast.WhereClause) {
	if len(wc.Predicates) == 0 {
		return
	}
	t.Keyword(token.KwWhere)
	commaSep(t, wc.Predicates, (*Tokens).wherePredicate)
}

func (t *Tokens) wherePredicate(pred ast.WherePredicate) {
	switch pred := pred.(type) {
	case ast.BoundPredicate:
		t.forLifetimes(pred.BoundLifetimes)
		t.ty(pred.BoundedTy)
		t.Punct(token.Colon)
		plusSep(t, pred.Bounds, (*Tokens).bound)
	case ast.RegionPredicate:
		t.Lifetime(pred.Lifetime.Name)
		t.Punct(token.Colon)
		plusSep(t, pred.Bounds, func(t *Tokens, lt ast.Lifetime) { t.Lifetime(lt.Name) })
	case ast.EqPredicate:
		t.ty(pred.Lhs)
		t.Punct(token.Eq)
		t.ty(pred.Rhs)
	default:
		panic(fmt.Sprintf("quote: unexpected where predicate %T", pred))
	}
}

func (t *Tokens) mac(m ast.Mac) {
	t.path(m.Path)
	t.Punct(token.Bang)
	t.tts = append(t.tts, m.Tts...)
}
