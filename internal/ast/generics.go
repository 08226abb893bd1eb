package ast

import "rsyn/internal/source"

// Lifetime is `'a`; Name keeps the leading quote.
type Lifetime struct {
	Name string
	Span source.Span
}

// NewLifetime builds a position-less lifetime. A missing quote is added.
func NewLifetime(name string) Lifetime {
	if len(name) == 0 || name[0] != '\'' {
		name = "'" + name
	}
	return Lifetime{Name: name}
}

// LifetimeDef is a lifetime parameter `'b: 'a + 'c`.
type LifetimeDef struct {
	Attrs    []Attribute
	Lifetime Lifetime
	Bounds   []Lifetime
}

// TyParam is a type parameter `T: Bound = Default`. Default nil means none.
type TyParam struct {
	Attrs   []Attribute
	Ident   Ident
	Bounds  []TyParamBound
	Default Ty
	Span    source.Span
}

// TraitBoundModifier: None или Maybe (`?Sized`).
type TraitBoundModifier uint8

const (
	TraitBoundNone TraitBoundModifier = iota
	TraitBoundMaybe
)

// TyParamBound: ограничение: трейт или лайфтайм.
type TyParamBound interface {
	tyParamBound()
}

type TraitBound struct {
	Trait    PolyTraitRef
	Modifier TraitBoundModifier
}

type RegionBound struct {
	Lifetime Lifetime
}

func (TraitBound) tyParamBound()  {}
func (RegionBound) tyParamBound() {}

// PolyTraitRef is `for<'a> Trait<'a>`.
type PolyTraitRef struct {
	BoundLifetimes []LifetimeDef
	TraitRef       Path
}

// WherePredicate: один предикат where-клаузы.
type WherePredicate interface {
	wherePredicate()
}

// BoundPredicate is `for<'a> T: Bound`.
type BoundPredicate struct {
	BoundLifetimes []LifetimeDef
	BoundedTy      Ty
	Bounds         []TyParamBound
}

// RegionPredicate is `'a: 'b + 'c`.
type RegionPredicate struct {
	Lifetime Lifetime
	Bounds   []Lifetime
}

// EqPredicate is `T = U`.
type EqPredicate struct {
	Lhs Ty
	Rhs Ty
}

func (BoundPredicate) wherePredicate()  {}
func (RegionPredicate) wherePredicate() {}
func (EqPredicate) wherePredicate()     {}

type WhereClause struct {
	Predicates []WherePredicate
}

// Generics: лайфтаймы всегда идут перед типовыми параметрами.
type Generics struct {
	Lifetimes   []LifetimeDef
	TyParams    []TyParam
	WhereClause WhereClause
}

// IsEmpty reports whether there are no parameters and no predicates.
func (g Generics) IsEmpty() bool {
	return len(g.Lifetimes) == 0 && len(g.TyParams) == 0 && len(g.WhereClause.Predicates) == 0
}
