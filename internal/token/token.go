package token

import (
	"strings"

	"rsyn/internal/source"
)

// Token represents a single source token with its location and trivia.
type Token struct {
	Kind    Kind
	Span    source.Span
	Text    string
	Leading []Trivia
}

// IsLiteral reports whether the token is a literal, true/false included.
func (t Token) IsLiteral() bool {
	return t.Kind.IsLiteral() || t.Kind == KwTrue || t.Kind == KwFalse
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }

// IsInnerDoc reports whether a DocComment token documents its enclosing item (//! or /*!).
func (t Token) IsInnerDoc() bool {
	return t.Kind == DocComment && (strings.HasPrefix(t.Text, "//!") || strings.HasPrefix(t.Text, "/*!"))
}

// Make builds a position-less token of a fixed-spelling kind.
func Make(k Kind) Token {
	return Token{Kind: k, Text: k.Text()}
}
