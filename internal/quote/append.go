package quote

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"rsyn/internal/ast"
	"rsyn/internal/token"
)

// ToTokens is implemented by fragments that know how to tokenize themselves.
type ToTokens interface {
	ToTokens(t *Tokens)
}

// Append tokenizes v onto t. Accepted values: ToTokens, *Tokens, token
// trees, every ast entity, Go scalars (as literals) and slices of those
// (elements appended in order, no separator). nil appends nothing.
// Anything else is a programming error and panics.
func (t *Tokens) Append(v any) *Tokens {
	switch v := v.(type) {
	case nil:
	case ToTokens:
		v.ToTokens(t)
	case *Tokens:
		if v != nil {
			t.tts = append(t.tts, v.tts...)
		}
	case ast.TokenTree:
		t.Tree(v)
	case []ast.TokenTree:
		t.tts = append(t.tts, v...)

	case *ast.Crate:
		if v != nil {
			t.crate(*v)
		}
	case ast.Crate:
		t.crate(v)
	case ast.Item:
		t.item(v)
	case ast.ItemKind:
		t.item(ast.Item{Node: v})
	case ast.Attribute:
		t.attr(v)
	case ast.MetaItem:
		t.metaItem(v)
	case ast.Lit:
		t.Lit(v)
	case ast.Ident:
		t.Ident(v.Name)
	case ast.Lifetime:
		t.Lifetime(v.Name)
	case ast.LifetimeDef:
		t.lifetimeDef(v)
	case ast.TyParam:
		t.tyParam(v, true)
	case ast.TyParamBound:
		t.bound(v)
	case ast.PolyTraitRef:
		t.polyTraitRef(v)
	case ast.WherePredicate:
		t.wherePredicate(v)
	case ast.WhereClause:
		t.whereClause(v)
	case ast.Generics:
		t.generics(v)
	case ast.Path:
		t.path(v)
	case ast.Ty:
		t.ty(v)
	case ast.Expr:
		t.tts = append(t.tts, v.Tts...)
	case ast.Pat:
		t.tts = append(t.tts, v.Tts...)
	case ast.Block:
		t.block(v)
	case ast.Mac:
		t.mac(v)
	case ast.Visibility:
		t.vis(v)
	case ast.FnDecl:
		t.fnDecl(v)
	case ast.FnArg:
		t.fnArg(v)
	case ast.Field:
		t.field(v)
	case ast.Variant:
		t.variant(v)
	case ast.TraitItem:
		t.traitItem(v)
	case ast.ImplItem:
		t.implItem(v)
	case ast.ForeignItem:
		t.foreignItem(v)
	case ast.ViewPath:
		t.viewPath(v)

	case string:
		t.Lit(ast.StrLit(v))
	case bool:
		t.Lit(ast.BoolLit(v))
	case int:
		t.signed(int64(v), "")
	case int8:
		t.signed(int64(v), "i8")
	case int16:
		t.signed(int64(v), "i16")
	case int32:
		t.signed(int64(v), "i32")
	case int64:
		t.signed(v, "i64")
	case uint:
		t.Lit(ast.IntLit(uint64(v), "usize"))
	case uint8:
		t.Lit(ast.IntLit(uint64(v), "u8"))
	case uint16:
		t.Lit(ast.IntLit(uint64(v), "u16"))
	case uint32:
		t.Lit(ast.IntLit(uint64(v), "u32"))
	case uint64:
		t.Lit(ast.IntLit(v, "u64"))
	case float32:
		t.float(float64(v), 32)
	case float64:
		t.float(v, 64)

	default:
		rv := reflect.ValueOf(v)
		if rv.Kind() != reflect.Slice {
			panic(fmt.Sprintf("quote: cannot tokenize %T", v))
		}
		for i := range rv.Len() {
			t.Append(rv.Index(i).Interface())
		}
	}
	return t
}

// signed: отрицательные числа: это '-' и литерал.
func (t *Tokens) signed(v int64, suffix string) {
	if v < 0 {
		t.Punct(token.Minus)
		t.Lit(ast.IntLit(uint64(-(v+1))+1, suffix))
		return
	}
	t.Lit(ast.IntLit(uint64(v), suffix))
}

func (t *Tokens) float(v float64, bits int) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		panic(fmt.Sprintf("quote: %v has no literal form", v))
	}
	if v < 0 || (v == 0 && math.Signbit(v)) {
		t.Punct(token.Minus)
		v = -v
	}
	text := strconv.FormatFloat(v, 'f', -1, bits)
	if !strings.Contains(text, ".") {
		text += ".0"
	}
	t.Lit(ast.Lit{Kind: ast.LitFloat, Text: text + "f" + strconv.Itoa(bits)})
}
