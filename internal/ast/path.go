package ast

import "strings"

// Path is `a::b::C<T>`; Global marks a leading `::`.
type Path struct {
	Global   bool
	Segments []PathSegment
}

// PathSegment: один сегмент пути. Parameters == nil означает «без параметров».
type PathSegment struct {
	Ident      Ident
	Parameters PathParameters
}

// PathParameters: `<'a, T, Item = U>` или `(A, B) -> C`.
type PathParameters interface {
	IsEmpty() bool
	pathParameters()
}

type AngleBracketed struct {
	Lifetimes []Lifetime
	Types     []Ty
	Bindings  []TypeBinding
}

// Parenthesized is the `Fn(A, B) -> C` sugar. Output nil means no `->`.
type Parenthesized struct {
	Inputs []Ty
	Output Ty
}

// TypeBinding is `Item = T` inside angle brackets.
type TypeBinding struct {
	Ident Ident
	Ty    Ty
}

func (p AngleBracketed) IsEmpty() bool {
	return len(p.Lifetimes) == 0 && len(p.Types) == 0 && len(p.Bindings) == 0
}

func (p Parenthesized) IsEmpty() bool {
	return len(p.Inputs) == 0 && p.Output == nil
}

func (AngleBracketed) pathParameters() {}
func (Parenthesized) pathParameters()  {}

// QSelf is the `<T as Trait>` head of a qualified path. Position is the
// number of path segments that belong to the trait.
type QSelf struct {
	Ty       Ty
	Position int
}

// PathFrom splits "a::b::C" into a parameterless path. A leading "::" makes
// the path global.
func PathFrom(s string) Path {
	p := Path{}
	if rest, ok := strings.CutPrefix(s, "::"); ok {
		p.Global = true
		s = rest
	}
	for seg := range strings.SplitSeq(s, "::") {
		p.Segments = append(p.Segments, PathSegment{Ident: NewIdent(seg)})
	}
	return p
}

// Ident returns the single identifier of a one-segment, non-global,
// parameterless path.
func (p Path) Ident() (Ident, bool) {
	if p.Global || len(p.Segments) != 1 || p.Segments[0].Parameters != nil {
		return Ident{}, false
	}
	return p.Segments[0].Ident, true
}

// String renders the path names only, without parameters.
func (p Path) String() string {
	var b strings.Builder
	if p.Global {
		b.WriteString("::")
	}
	for i, seg := range p.Segments {
		if i > 0 {
			b.WriteString("::")
		}
		b.WriteString(seg.Ident.Name)
	}
	return b.String()
}
