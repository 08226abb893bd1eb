// Package generics projects a generic parameter list into the three pieces
// an impl block needs: `impl<...>`, `Type<...>` and `where ...`.
package generics

import (
	"rsyn/internal/ast"
	"rsyn/internal/quote"
	"rsyn/internal/token"
)

// ImplGenerics renders the declaration list after `impl`: lifetimes, then
// type parameters, with attributes and bounds but without defaults.
type ImplGenerics struct {
	g ast.Generics
}

// TyGenerics renders the use-site list after the type name: names only.
type TyGenerics struct {
	g ast.Generics
}

// WhereFragment renders `where ...`, or nothing for an empty clause.
type WhereFragment struct {
	wc ast.WhereClause
}

// SplitForImpl is a purely syntactic projection: no renaming, no checks.
func SplitForImpl(g ast.Generics) (ImplGenerics, TyGenerics, WhereFragment) {
	return ImplGenerics{g: g}, TyGenerics{g: g}, WhereFragment{wc: g.WhereClause}
}

func hasParams(g ast.Generics) bool {
	return len(g.Lifetimes) > 0 || len(g.TyParams) > 0
}

func (ig ImplGenerics) ToTokens(t *quote.Tokens) {
	if !hasParams(ig.g) {
		return
	}
	t.Punct(token.Lt)
	n := 0
	for _, def := range ig.g.Lifetimes {
		sep(t, &n)
		t.Append(def)
	}
	for _, tp := range ig.g.TyParams {
		sep(t, &n)
		tp.Default = nil
		t.Append(tp)
	}
	t.Punct(token.Gt)
}

func (tg TyGenerics) ToTokens(t *quote.Tokens) {
	if !hasParams(tg.g) {
		return
	}
	t.Punct(token.Lt)
	n := 0
	for _, def := range tg.g.Lifetimes {
		sep(t, &n)
		t.Lifetime(def.Lifetime.Name)
	}
	for _, tp := range tg.g.TyParams {
		sep(t, &n)
		t.Ident(tp.Ident.Name)
	}
	t.Punct(token.Gt)
}

func (wf WhereFragment) ToTokens(t *quote.Tokens) {
	t.Append(wf.wc)
}

func (ig ImplGenerics) String() string  { return quote.Render(ig) }
func (tg TyGenerics) String() string    { return quote.Render(tg) }
func (wf WhereFragment) String() string { return quote.Render(wf) }

func sep(t *quote.Tokens, n *int) {
	if *n > 0 {
		t.Punct(token.Comma)
	}
	*n++
}
