package parser

import (
	"testing"

	"github.com/cockroachdb/errors"

	"rsyn/internal/ast"
	"rsyn/internal/diag"
)

func debugBound() ast.TyParamBound {
	return ast.TraitBound{Trait: ast.PolyTraitRef{TraitRef: ast.PathFrom("Debug")}}
}

func TestParseGenericsFull(t *testing.T) {
	got, err := ParseGenerics("<'a, 'b: 'a, #[may_dangle] T: 'a = ()> where T: Debug")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := ast.Generics{
		Lifetimes: []ast.LifetimeDef{
			{Lifetime: ast.NewLifetime("'a")},
			{Lifetime: ast.NewLifetime("'b"), Bounds: []ast.Lifetime{ast.NewLifetime("'a")}},
		},
		TyParams: []ast.TyParam{{
			Attrs: []ast.Attribute{{
				Style: ast.AttrOuter,
				Value: ast.MetaWord{Ident: ast.NewIdent("may_dangle")},
			}},
			Ident:   ast.NewIdent("T"),
			Bounds:  []ast.TyParamBound{ast.RegionBound{Lifetime: ast.NewLifetime("'a")}},
			Default: ast.TyTup{},
		}},
		WhereClause: ast.WhereClause{Predicates: []ast.WherePredicate{
			ast.BoundPredicate{BoundedTy: ast.TyPathFrom("T"), Bounds: []ast.TyParamBound{debugBound()}},
		}},
	}
	if !ast.Equal(got, want) {
		t.Fatalf("generics mismatch (-got +want):\n%s", ast.Diff(got, want))
	}
}

func TestParseGenericsKeepsSpans(t *testing.T) {
	g, err := ParseGenerics("<'a, T>")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sp := g.Lifetimes[0].Lifetime.Span; sp.Start != 1 || sp.End != 3 {
		t.Fatalf("lifetime span = %s, want 1-3", sp)
	}
	if sp := g.TyParams[0].Span; sp.Start != 5 || sp.End != 6 {
		t.Fatalf("type param span = %s, want 5-6", sp)
	}
}

func TestParseGenericsEmpty(t *testing.T) {
	for _, src := range []string{"", "<>"} {
		g, err := ParseGenerics(src)
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", src, err)
		}
		if !g.IsEmpty() {
			t.Fatalf("%q: expected empty generics, got %+v", src, g)
		}
	}
}

func TestParseGenericsMaybeAndHigherRanked(t *testing.T) {
	got, err := ParseGenerics("<T: ?Sized + for<'x> Fn(&'x u8) -> bool> where for<'c> &'c T: Debug, 'c: 'd + 'e, T::Item = u8,")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	bounds := got.TyParams[0].Bounds
	if len(bounds) != 2 {
		t.Fatalf("expected 2 bounds, got %d", len(bounds))
	}
	sized, ok := bounds[0].(ast.TraitBound)
	if !ok || sized.Modifier != ast.TraitBoundMaybe || sized.Trait.TraitRef.String() != "Sized" {
		t.Fatalf("unexpected first bound %#v", bounds[0])
	}
	fn, ok := bounds[1].(ast.TraitBound)
	if !ok || len(fn.Trait.BoundLifetimes) != 1 || fn.Trait.BoundLifetimes[0].Lifetime.Name != "'x" {
		t.Fatalf("unexpected second bound %#v", bounds[1])
	}
	if _, ok := fn.Trait.TraitRef.Segments[0].Parameters.(ast.Parenthesized); !ok {
		t.Fatalf("expected parenthesized parameters on Fn bound")
	}

	preds := got.WhereClause.Predicates
	if len(preds) != 3 {
		t.Fatalf("expected 3 predicates, got %d", len(preds))
	}
	bp, ok := preds[0].(ast.BoundPredicate)
	if !ok || len(bp.BoundLifetimes) != 1 {
		t.Fatalf("expected higher-ranked bound predicate, got %#v", preds[0])
	}
	if _, ok := bp.BoundedTy.(ast.TyRptr); !ok {
		t.Fatalf("expected reference bounded type, got %#v", bp.BoundedTy)
	}
	rp, ok := preds[1].(ast.RegionPredicate)
	if !ok || len(rp.Bounds) != 2 {
		t.Fatalf("expected region predicate with 2 bounds, got %#v", preds[1])
	}
	if _, ok := preds[2].(ast.EqPredicate); !ok {
		t.Fatalf("expected equality predicate, got %#v", preds[2])
	}
}

func TestParseGenericsSplitsShiftTokens(t *testing.T) {
	got, err := ParseGenerics("<T: Into<Vec<u8>>>")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want, err := ParseGenerics("<T: Into< Vec< u8 > > >")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ast.Equal(got, want) {
		t.Fatalf("split mismatch:\n%s", ast.Diff(got, want))
	}
}

func TestLifetimeAfterTypeParam(t *testing.T) {
	_, err := ParseGenerics("<T, 'a>")
	if err == nil {
		t.Fatal("expected error")
	}
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected *ParseError, got %T", err)
	}
	if pe.Code != diag.SynLifetimeAfterType {
		t.Fatalf("code = %s, want %s", pe.Code.ID(), diag.SynLifetimeAfterType.ID())
	}
	if pe.Pos.Line != 1 || pe.Pos.Col != 5 {
		t.Fatalf("position = %d:%d, want 1:5", pe.Pos.Line, pe.Pos.Col)
	}
	if pe.Path != "<input>" {
		t.Fatalf("path = %q", pe.Path)
	}
}

func TestParseGenericsErrors(t *testing.T) {
	cases := []struct {
		src  string
		code diag.Code
	}{
		{"<T", diag.SynExpectGt},
		{"<T = >", diag.SynExpectType},
		{"<'a: T>", diag.SynExpectGt},
		{"<T> where T", diag.SynExpectColon},
		{"<T> extra", diag.SynTrailingInput},
		{"<#![x] T>", diag.SynMisplacedInnerAttr},
		{"<+>", diag.SynUnexpectedToken},
	}
	for _, tc := range cases {
		_, err := ParseGenerics(tc.src)
		var pe *ParseError
		if !errors.As(err, &pe) {
			t.Fatalf("%q: expected *ParseError, got %v", tc.src, err)
		}
		if pe.Code != tc.code {
			t.Fatalf("%q: code = %s (%s), want %s", tc.src, pe.Code.ID(), pe.Msg, tc.code.ID())
		}
	}
}

func TestUnsupportedConstructs(t *testing.T) {
	cases := []struct {
		name string
		run  func() error
	}{
		{"const generic", func() error { _, err := ParseGenerics("<const N: usize>"); return err }},
		{"dyn", func() error { _, err := ParseTy("Box<dyn Debug>"); return err }},
		{"union", func() error { _, err := ParseItem("union U { a: u8 }"); return err }},
		{"async fn", func() error { _, err := ParseItem("async fn f() {}"); return err }},
	}
	for _, tc := range cases {
		err := tc.run()
		if err == nil {
			t.Fatalf("%s: expected error", tc.name)
		}
		if !errors.Is(err, ErrUnsupported) {
			t.Fatalf("%s: expected ErrUnsupported, got %v", tc.name, err)
		}
	}
	if _, err := ParseGenerics("<T>>"); errors.Is(err, ErrUnsupported) {
		t.Fatalf("plain syntax error must not be marked unsupported: %v", err)
	}
}

func TestDiagnosticNotesPointAtCause(t *testing.T) {
	cases := []struct {
		src       string
		code      diag.Code
		noteStart uint32
	}{
		{"struct S<T, 'a>;", diag.SynLifetimeAfterType, 9},
		{"m!(a];", diag.SynUnbalancedDelimiter, 2},
	}
	for _, tc := range cases {
		_, bag := parseSource(t, tc.src)
		var found bool
		for _, d := range bag.Items() {
			if d.Code != tc.code {
				continue
			}
			found = true
			if len(d.Notes) != 1 || d.Notes[0].Span.Start != tc.noteStart {
				t.Fatalf("%q: notes = %+v, want one at %d", tc.src, d.Notes, tc.noteStart)
			}
		}
		if !found {
			t.Fatalf("%q: no %s in %s", tc.src, tc.code.ID(), diagnosticsSummary(bag))
		}
	}
}
