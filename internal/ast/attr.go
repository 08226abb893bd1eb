package ast

import "rsyn/internal/source"

// AttrStyle: внешний `#[...]` или внутренний `#![...]`.
type AttrStyle uint8

const (
	AttrOuter AttrStyle = iota
	AttrInner
)

// Attribute is `#[value]`, `#![value]` or a doc comment. Doc comments are
// stored as `doc = "<comment text>"` with IsSugaredDoc set; the flag only
// affects printing.
type Attribute struct {
	Style        AttrStyle
	Value        MetaItem
	IsSugaredDoc bool
	Span         source.Span
}

// Name returns the name of the attribute's meta item.
func (a Attribute) Name() string {
	if a.Value == nil {
		return ""
	}
	return a.Value.MetaName().Name
}

// DocAttr builds the attribute a doc comment parses into.
func DocAttr(style AttrStyle, comment string, span source.Span) Attribute {
	lit := StrLit(comment)
	lit.Span = span
	return Attribute{
		Style:        style,
		Value:        MetaNameValue{Ident: Ident{Name: "doc", Span: span}, Lit: lit},
		IsSugaredDoc: true,
		Span:         span,
	}
}

// MetaItem: содержимое атрибута: слово, список или name = literal.
type MetaItem interface {
	NestedMetaItem
	MetaName() Ident
	metaItem()
}

// NestedMetaItem: элемент списка MetaList: либо MetaItem, либо литерал.
type NestedMetaItem interface {
	nestedMetaItem()
}

// MetaWord is `#[test]`.
type MetaWord struct {
	Ident Ident
}

// MetaList is `#[derive(Copy, Clone)]`.
type MetaList struct {
	Ident  Ident
	Nested []NestedMetaItem
}

// MetaNameValue is `#[feature = "foo"]`.
type MetaNameValue struct {
	Ident Ident
	Lit   Lit
}

func (m MetaWord) MetaName() Ident      { return m.Ident }
func (m MetaList) MetaName() Ident      { return m.Ident }
func (m MetaNameValue) MetaName() Ident { return m.Ident }

func (MetaWord) metaItem()      {}
func (MetaList) metaItem()      {}
func (MetaNameValue) metaItem() {}

func (MetaWord) nestedMetaItem()      {}
func (MetaList) nestedMetaItem()      {}
func (MetaNameValue) nestedMetaItem() {}
func (Lit) nestedMetaItem()           {}
