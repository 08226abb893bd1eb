package ast

import "rsyn/internal/source"

// Ident is a name with its location.
type Ident struct {
	Name string
	Span source.Span
}

// NewIdent builds a position-less identifier.
func NewIdent(name string) Ident { return Ident{Name: name} }

func (i Ident) String() string { return i.Name }

// Mutability of pointers, references, statics and self arguments.
type Mutability uint8

const (
	Immutable Mutability = iota
	Mutable
)

type Unsafety uint8

const (
	Normal Unsafety = iota
	Unsafe
)

type Constness uint8

const (
	NotConst Constness = iota
	Const
)

// ImplPolarity distinguishes `impl Trait for T` from `impl !Trait for T`.
type ImplPolarity uint8

const (
	Positive ImplPolarity = iota
	Negative
)
