package quote

import (
	"fmt"

	"rsyn/internal/ast"
	"rsyn/internal/token"
)

// Tokens is an ordered list of token trees under construction.
type Tokens struct {
	tts []ast.TokenTree
}

func New() *Tokens {
	return &Tokens{}
}

// TokenTrees returns the collected trees. The slice is shared with t.
func (t *Tokens) TokenTrees() []ast.TokenTree {
	return t.tts
}

func (t *Tokens) Len() int {
	return len(t.tts)
}

func (t *Tokens) IsEmpty() bool {
	return len(t.tts) == 0
}

// Tree appends a ready token tree as is.
func (t *Tokens) Tree(tt ast.TokenTree) *Tokens {
	t.tts = append(t.tts, tt)
	return t
}

// Ident appends a name. Keyword spellings get their keyword kind so that the
// trees compare equal to parsed ones.
func (t *Tokens) Ident(name string) *Tokens {
	kind := token.Ident
	switch {
	case name == "_":
		kind = token.Underscore
	default:
		if kw, ok := token.LookupKeyword(name); ok {
			kind = kw
		}
	}
	return t.Tree(ast.TtToken{Kind: kind, Text: name})
}

func (t *Tokens) Keyword(k token.Kind) *Tokens {
	if !k.IsKeyword() {
		panic(fmt.Sprintf("quote: %s is not a keyword", k))
	}
	return t.Tree(ast.Tok(k))
}

func (t *Tokens) Punct(k token.Kind) *Tokens {
	if !k.IsPunct() {
		panic(fmt.Sprintf("quote: %s is not punctuation", k))
	}
	if _, open := token.OpenDelim(k); open {
		panic(fmt.Sprintf("quote: %s must be emitted through Group", k))
	}
	if _, closer := token.CloseDelim(k); closer {
		panic(fmt.Sprintf("quote: %s must be emitted through Group", k))
	}
	return t.Tree(ast.Tok(k))
}

// Lifetime appends a lifetime; name includes the leading quote.
func (t *Tokens) Lifetime(name string) *Tokens {
	return t.Tree(ast.TtToken{Kind: token.Lifetime, Text: name})
}

var litTokenKinds = map[ast.LitKind]token.Kind{
	ast.LitStr:     token.LitStr,
	ast.LitByteStr: token.LitByteStr,
	ast.LitByte:    token.LitByte,
	ast.LitChar:    token.LitChar,
	ast.LitInt:     token.LitInt,
	ast.LitFloat:   token.LitFloat,
}

func (t *Tokens) Lit(l ast.Lit) *Tokens {
	if l.Kind == ast.LitBool {
		if l.Text == "true" {
			return t.Keyword(token.KwTrue)
		}
		return t.Keyword(token.KwFalse)
	}
	kind, ok := litTokenKinds[l.Kind]
	if !ok {
		panic(fmt.Sprintf("quote: unknown literal kind %s", l.Kind))
	}
	return t.Tree(ast.TtToken{Kind: kind, Text: l.Text})
}

// Group appends a delimited group whose body is filled by fill.
func (t *Tokens) Group(d token.Delim, fill func(inner *Tokens)) *Tokens {
	inner := New()
	if fill != nil {
		fill(inner)
	}
	return t.Tree(ast.Group(d, inner.tts...))
}

// AppendSep appends items separated by sep, without a trailing separator.
func AppendSep[T any](t *Tokens, items []T, sep token.Kind) *Tokens {
	for i, it := range items {
		if i > 0 {
			t.Punct(sep)
		}
		t.Append(it)
	}
	return t
}

// commaSep: то же, что AppendSep с запятой, но с явным эмиттером элемента.
func commaSep[T any](t *Tokens, items []T, emit func(*Tokens, T)) {
	for i, it := range items {
		if i > 0 {
			t.Punct(token.Comma)
		}
		emit(t, it)
	}
}

// plusSep joins items with '+'.
func plusSep[T any](t *Tokens, items []T, emit func(*Tokens, T)) {
	for i, it := range items {
		if i > 0 {
			t.Punct(token.Plus)
		}
		emit(t, it)
	}
}
