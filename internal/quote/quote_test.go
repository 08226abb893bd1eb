package quote_test

import (
	"testing"

	"github.com/cockroachdb/errors"

	"rsyn/internal/ast"
	"rsyn/internal/parser"
	"rsyn/internal/quote"
	"rsyn/internal/token"
)

func TestQuoteScalars(t *testing.T) {
	tokens, err := quote.Quote("let x = #a + #b ; #s #f #neg #yes #g", quote.Vars{
		"a":   5,
		"b":   uint8(7),
		"s":   "hi \"there\"",
		"f":   1.5,
		"neg": -3,
		"yes": true,
		"g":   float32(2),
	})
	if err != nil {
		t.Fatalf("quote: %v", err)
	}
	want := `let x = 5 + 7u8 ; "hi \"there\"" 1.5f64 - 3 true 2.0f32`
	if got := tokens.String(); got != want {
		t.Fatalf("got  %s\nwant %s", got, want)
	}
}

func TestQuoteAstValues(t *testing.T) {
	ty, err := parser.ParseTy("Vec<&'a str>")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	tokens := quote.MustQuote("fn f(x: #ty) -> #ret { #body }", quote.Vars{
		"ty":   ty,
		"ret":  ast.TyTup{},
		"body": quote.MustQuote("x . len ( )", nil),
	})
	want := "fn f ( x : Vec < & 'a str > ) -> ( ) { x . len ( ) }"
	if got := tokens.String(); got != want {
		t.Fatalf("got  %s\nwant %s", got, want)
	}
}

func TestQuoteRepetition(t *testing.T) {
	names := []ast.Ident{ast.NewIdent("a"), ast.NewIdent("b")}
	tys := []ast.Ty{ast.TyPathFrom("u8"), ast.TyPathFrom("bool")}
	tokens, err := quote.Quote("struct S { #(pub #names : #tys),* }", quote.Vars{"names": names, "tys": tys})
	if err != nil {
		t.Fatalf("quote: %v", err)
	}
	if got, want := tokens.String(), "struct S { pub a : u8 , pub b : bool }"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}

	tokens = quote.MustQuote("#(#xs;)*", quote.Vars{"xs": []int{1, 2}})
	if got, want := tokens.String(), "1 ; 2 ;"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}

	tokens = quote.MustQuote("[#(#xs),*]", quote.Vars{"xs": []string{}})
	if got, want := tokens.String(), "[ ]"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestQuoteErrors(t *testing.T) {
	_, err := quote.Quote("a #missing", nil)
	if !errors.Is(err, quote.ErrUnboundVar) {
		t.Fatalf("expected ErrUnboundVar, got %v", err)
	}

	_, err = quote.Quote("#(#a #b),*", quote.Vars{"a": []int{1, 2}, "b": []int{1}})
	if !errors.Is(err, quote.ErrRepetitionLength) {
		t.Fatalf("expected ErrRepetitionLength, got %v", err)
	}

	_, err = quote.Quote("#(#a)*", quote.Vars{"a": 1})
	if !errors.Is(err, quote.ErrRepetitionLength) {
		t.Fatalf("expected ErrRepetitionLength for scalar-only repetition, got %v", err)
	}

	_, err = quote.Quote("( ]", nil)
	var pe *parser.ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected wrapped *parser.ParseError, got %v", err)
	}
}

func TestQuoteKeepsLiteralHashAndDollar(t *testing.T) {
	tokens := quote.MustQuote("#[derive(Debug)] struct S; macro_rules! m { ($($x:expr),*) => {} }", nil)
	want := "# [ derive ( Debug ) ] struct S ; macro_rules ! m { ( $ ( $ x : expr ) , * ) => { } }"
	if got := tokens.String(); got != want {
		t.Fatalf("got  %s\nwant %s", got, want)
	}
}

func TestTokensBuilder(t *testing.T) {
	tk := quote.New()
	tk.Keyword(token.KwImpl).Lifetime("'a").Ident("self").Ident("Foo").Punct(token.ColonColon)
	tk.Group(token.DelimBrace, func(in *quote.Tokens) {
		quote.AppendSep(in, []int{1, 2, 3}, token.Comma)
	})
	if got, want := tk.String(), "impl 'a self Foo :: { 1 , 2 , 3 }"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
	if tok := tk.TokenTrees()[2].(ast.TtToken); tok.Kind != token.KwSelf {
		t.Fatalf("expected keyword kind for self, got %s", tok.Kind)
	}
}

func TestRenderDocComments(t *testing.T) {
	crate, err := parser.ParseCrate("/// outer\nfn f() { //! not an attr here\n let x = 1; }")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := "# [ doc = \"/// outer\" ] fn f ( ) { //! not an attr here\nlet x = 1 ; }"
	if got := quote.Render(crate); got != want {
		t.Fatalf("got  %q\nwant %q", got, want)
	}
}
