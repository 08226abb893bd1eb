package ast

import (
	"bytes"
	"strings"
	"testing"

	"rsyn/internal/source"
	"rsyn/internal/token"
)

func sp(start, end uint32) source.Span {
	return source.Span{File: 1, Start: start, End: end}
}

func sampleGenerics() Generics {
	return Generics{
		Lifetimes: []LifetimeDef{{Lifetime: Lifetime{Name: "'a", Span: sp(1, 3)}}},
		TyParams: []TyParam{{
			Attrs:  []Attribute{DocAttr(AttrOuter, "/// doc", sp(5, 12))},
			Ident:  Ident{Name: "T", Span: sp(13, 14)},
			Bounds: []TyParamBound{RegionBound{Lifetime: Lifetime{Name: "'a", Span: sp(16, 18)}}},
			Span:   sp(5, 18),
		}},
	}
}

func TestNormalizeZeroesSpansWithoutMutating(t *testing.T) {
	g := sampleGenerics()
	n := Normalize(g)
	if !n.TyParams[0].Ident.Span.IsZero() || !n.Lifetimes[0].Lifetime.Span.IsZero() {
		t.Fatalf("spans survived normalisation: %+v", n)
	}
	if n.TyParams[0].Attrs[0].IsSugaredDoc {
		t.Fatalf("IsSugaredDoc must be cleared")
	}
	if g.TyParams[0].Ident.Span != sp(13, 14) || !g.TyParams[0].Attrs[0].IsSugaredDoc {
		t.Fatalf("input was mutated")
	}
	rb, ok := n.TyParams[0].Bounds[0].(RegionBound)
	if !ok || !rb.Lifetime.Span.IsZero() {
		t.Fatalf("span inside interface value not reset: %#v", n.TyParams[0].Bounds[0])
	}
}

func TestEqualIgnoresPositionsAndDocSpelling(t *testing.T) {
	a := sampleGenerics()
	b := Normalize(sampleGenerics())
	b.TyParams[0].Attrs[0].IsSugaredDoc = false
	b.WhereClause.Predicates = []WherePredicate{}
	if !Equal(a, b) {
		t.Fatalf("trees should be equal:\n%s", Diff(a, b))
	}
	b.TyParams[0].Ident.Name = "U"
	if Equal(a, b) {
		t.Fatalf("different identifiers must not compare equal")
	}
	if d := Diff(a, b); !strings.Contains(d, `"U"`) {
		t.Fatalf("diff does not mention the changed name:\n%s", d)
	}
}

func TestNormalizeTokenTrees(t *testing.T) {
	shared := &Delimited{
		Delim:     token.DelimParen,
		OpenSpan:  sp(0, 1),
		Tts:       []TokenTree{TtToken{Kind: token.Ident, Text: "x", Span: sp(1, 2)}},
		CloseSpan: sp(2, 3),
	}
	sep := TtToken{Kind: token.Comma, Text: ",", Span: sp(9, 10)}
	tts := []TokenTree{
		TtDelimited{Span: sp(0, 3), Delimited: shared},
		TtSequence{Span: sp(4, 12), Seq: &SequenceRepetition{Tts: []TokenTree{TtDelimited{Delimited: shared}}, Separator: &sep}},
	}
	n := Normalize(tts)
	d := n[0].(TtDelimited).Delimited
	if d == shared {
		t.Fatalf("Normalize must not share the input body")
	}
	if !d.OpenSpan.IsZero() || !d.CloseSpan.IsZero() || !d.Tts[0].TreeSpan().IsZero() {
		t.Fatalf("delimited spans not reset: %+v", d)
	}
	if s := n[1].(TtSequence).Seq.Separator; !s.Span.IsZero() {
		t.Fatalf("separator span not reset")
	}
	if shared.OpenSpan != sp(0, 1) {
		t.Fatalf("shared body was mutated")
	}
}

func TestFprint(t *testing.T) {
	var buf bytes.Buffer
	ty := TyRptr{Lifetime: &Lifetime{Name: "'a"}, Elem: TyPathFrom("T")}
	if err := Fprint(&buf, ty); err != nil {
		t.Fatalf("Fprint: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"ast.TyRptr {", `Name: "'a"`, "ast.TyPath {", `Name: "T"`} {
		if !strings.Contains(out, want) {
			t.Fatalf("dump lacks %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Mutbl") {
		t.Fatalf("zero fields must be omitted:\n%s", out)
	}
}

func TestPathFrom(t *testing.T) {
	p := PathFrom("::std::fmt::Debug")
	if !p.Global || len(p.Segments) != 3 || p.String() != "::std::fmt::Debug" {
		t.Fatalf("PathFrom = %+v", p)
	}
	if id, ok := PathFrom("T").Ident(); !ok || id.Name != "T" {
		t.Fatalf("single-segment path must expose its ident")
	}
}
