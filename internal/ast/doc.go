// Package ast describes the syntax tree of a crate: items, attributes,
// types, paths, generics and token trees.
//
// Nodes are plain values. Closed alternatives (Ty, MetaItem, ItemKind, ...)
// are sealed interfaces implemented only by types of this package, so a
// type switch over them is exhaustive. Expression, pattern and block bodies
// are kept as token trees.
//
// Every node that came from source carries a source.Span. Two trees are
// compared without regard to positions through Normalize / Equal.
package ast
