package ast

import (
	"rsyn/internal/source"
	"rsyn/internal/token"
)

// TokenTree is a token or a delimited group of token trees.
// A `$( ... ) sep? op` group is a TtSequence.
type TokenTree interface {
	TreeSpan() source.Span
	tokenTree()
}

// TtToken is a single non-delimiter token.
type TtToken struct {
	Kind token.Kind
	Text string
	Span source.Span
}

// TtDelimited is `( ... )`, `[ ... ]` or `{ ... }`.
type TtDelimited struct {
	Span      source.Span
	Delimited *Delimited
}

// TtSequence is a macro repetition `$( ... ) sep? *` / `+`.
type TtSequence struct {
	Span source.Span
	Seq  *SequenceRepetition
}

// Delimited: тело группы. Разделяется между стадиями по указателю, не копируется.
type Delimited struct {
	Delim     token.Delim
	OpenSpan  source.Span
	Tts       []TokenTree
	CloseSpan source.Span
}

type KleeneOp uint8

const (
	ZeroOrMore KleeneOp = iota // *
	OneOrMore                  // +
)

func (op KleeneOp) String() string {
	if op == OneOrMore {
		return "+"
	}
	return "*"
}

type SequenceRepetition struct {
	Tts       []TokenTree
	Separator *TtToken
	Op        KleeneOp
}

func (t TtToken) TreeSpan() source.Span     { return t.Span }
func (t TtDelimited) TreeSpan() source.Span { return t.Span }
func (t TtSequence) TreeSpan() source.Span  { return t.Span }

func (TtToken) tokenTree()     {}
func (TtDelimited) tokenTree() {}
func (TtSequence) tokenTree()  {}

// Tok builds a position-less token tree of a fixed-spelling kind.
func Tok(k token.Kind) TtToken {
	return TtToken{Kind: k, Text: k.Text()}
}

// Group builds a position-less delimited tree.
func Group(d token.Delim, tts ...TokenTree) TtDelimited {
	return TtDelimited{Delimited: &Delimited{Delim: d, Tts: tts}}
}

// Expr is an expression kept as the token trees that spell it.
type Expr struct {
	Tts []TokenTree
}

// Pat is a pattern kept as token trees.
type Pat struct {
	Tts []TokenTree
}

// Block is the token trees between the braces of a block.
type Block struct {
	Tts []TokenTree
}

// Mac is a macro invocation `path! tts`. Tts holds the single delimited
// group of the invocation.
type Mac struct {
	Path Path
	Tts  []TokenTree
}
