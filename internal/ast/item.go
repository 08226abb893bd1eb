package ast

import "rsyn/internal/source"

// Crate is a whole source file: inner attributes followed by items.
type Crate struct {
	Attrs []Attribute
	Items []Item
}

type Item struct {
	Ident Ident
	Vis   Visibility
	Attrs []Attribute
	Node  ItemKind
	Span  source.Span
}

// ItemKind: вид элемента верхнего уровня.
type ItemKind interface {
	itemKind()
}

// ItemExternCrate is `extern crate foo;` or `extern crate foo as bar;`.
// Item.Ident is the local name; Original is set when renamed.
type ItemExternCrate struct {
	Original *Ident
}

// ItemUse is `use a::b::{c, d};`.
type ItemUse struct {
	Path ViewPath
}

// ItemStatic is `static mut X: T = expr;`.
type ItemStatic struct {
	Ty    Ty
	Mutbl Mutability
	Expr  Expr
}

// ItemConst is `const X: T = expr;`.
type ItemConst struct {
	Ty   Ty
	Expr Expr
}

// ItemFn is a free function.
type ItemFn struct {
	Decl      FnDecl
	Unsafety  Unsafety
	Constness Constness
	Abi       *Abi
	Generics  Generics
	Block     Block
}

// ItemMod is `mod m { ... }` (Inline) or `mod m;`.
type ItemMod struct {
	Inline bool
	Items  []Item
}

// ItemForeignMod is `extern "C" { ... }`.
type ItemForeignMod struct {
	Abi   Abi
	Items []ForeignItem
}

// ItemTy is `type A<T> = B;`.
type ItemTy struct {
	Ty       Ty
	Generics Generics
}

type ItemEnum struct {
	Variants []Variant
	Generics Generics
}

type ItemStruct struct {
	Data     VariantData
	Generics Generics
}

type ItemTrait struct {
	Unsafety    Unsafety
	Generics    Generics
	Supertraits []TyParamBound
	Items       []TraitItem
}

// ItemDefaultImpl is `impl Trait for .. {}`.
type ItemDefaultImpl struct {
	Unsafety Unsafety
	Path     Path
}

// ItemImpl is an inherent (Trait == nil) or trait impl.
type ItemImpl struct {
	Unsafety Unsafety
	Polarity ImplPolarity
	Generics Generics
	Trait    *Path
	SelfTy   Ty
	Items    []ImplItem
}

// ItemMac is a macro invocation in item position, `macro_rules!` included.
type ItemMac struct {
	Mac Mac
}

func (ItemExternCrate) itemKind() {}
func (ItemUse) itemKind()         {}
func (ItemStatic) itemKind()      {}
func (ItemConst) itemKind()       {}
func (ItemFn) itemKind()          {}
func (ItemMod) itemKind()         {}
func (ItemForeignMod) itemKind()  {}
func (ItemTy) itemKind()          {}
func (ItemEnum) itemKind()        {}
func (ItemStruct) itemKind()      {}
func (ItemTrait) itemKind()       {}
func (ItemDefaultImpl) itemKind() {}
func (ItemImpl) itemKind()        {}
func (ItemMac) itemKind()         {}

// Visibility: унаследованная, pub, pub(crate) или pub(super)/pub(self)/pub(in path).
type Visibility struct {
	Kind VisKind
	// Path задан только для VisRestricted.
	Path *Path
}

type VisKind uint8

const (
	VisInherited VisKind = iota
	VisPublic
	VisCrate
	VisRestricted
)

func (v VisKind) String() string {
	switch v {
	case VisPublic:
		return "pub"
	case VisCrate:
		return "pub(crate)"
	case VisRestricted:
		return "pub(restricted)"
	default:
		return "inherited"
	}
}

// FnDecl is the signature shape shared by functions, methods and bare fns.
// Output nil means no `->`.
type FnDecl struct {
	Inputs   []FnArg
	Output   Ty
	Variadic bool
}

// FnArg: аргумент функции.
type FnArg interface {
	fnArg()
}

// ArgSelfRef is `&self`, `&'a mut self`.
type ArgSelfRef struct {
	Lifetime *Lifetime
	Mutbl    Mutability
}

// ArgSelfValue is `self` / `mut self`.
type ArgSelfValue struct {
	Mutbl Mutability
}

// ArgCaptured is `pat: Ty`.
type ArgCaptured struct {
	Pat Pat
	Ty  Ty
}

// ArgIgnored is an anonymous argument `Ty` (trait methods only).
type ArgIgnored struct {
	Ty Ty
}

func (ArgSelfRef) fnArg()   {}
func (ArgSelfValue) fnArg() {}
func (ArgCaptured) fnArg()  {}
func (ArgIgnored) fnArg()   {}

type MethodSig struct {
	Unsafety  Unsafety
	Constness Constness
	Abi       *Abi
	Decl      FnDecl
	Generics  Generics
}

// VariantData: тело struct или варианта enum.
type VariantData interface {
	DataFields() []Field
	variantData()
}

type StructData struct{ Fields []Field }
type TupleData struct{ Fields []Field }
type UnitData struct{}

func (d StructData) DataFields() []Field { return d.Fields }
func (d TupleData) DataFields() []Field  { return d.Fields }
func (UnitData) DataFields() []Field     { return nil }

func (StructData) variantData() {}
func (TupleData) variantData()  {}
func (UnitData) variantData()   {}

// Field is a struct field; Ident is nil for tuple fields.
type Field struct {
	Ident *Ident
	Vis   Visibility
	Attrs []Attribute
	Ty    Ty
	Span  source.Span
}

type Variant struct {
	Ident        Ident
	Attrs        []Attribute
	Data         VariantData
	Discriminant *Expr
	Span         source.Span
}

type TraitItem struct {
	Ident Ident
	Attrs []Attribute
	Node  TraitItemKind
	Span  source.Span
}

type TraitItemKind interface {
	traitItemKind()
}

type TraitItemConst struct {
	Ty      Ty
	Default *Expr
}

type TraitItemMethod struct {
	Sig     MethodSig
	Default *Block
}

type TraitItemType struct {
	Bounds  []TyParamBound
	Default Ty
}

type TraitItemMac struct{ Mac Mac }

func (TraitItemConst) traitItemKind()  {}
func (TraitItemMethod) traitItemKind() {}
func (TraitItemType) traitItemKind()   {}
func (TraitItemMac) traitItemKind()    {}

type ImplItem struct {
	Ident       Ident
	Vis         Visibility
	Defaultness bool
	Attrs       []Attribute
	Node        ImplItemKind
	Span        source.Span
}

type ImplItemKind interface {
	implItemKind()
}

type ImplItemConst struct {
	Ty   Ty
	Expr Expr
}

type ImplItemMethod struct {
	Sig   MethodSig
	Block Block
}

type ImplItemType struct{ Ty Ty }

type ImplItemMac struct{ Mac Mac }

func (ImplItemConst) implItemKind()  {}
func (ImplItemMethod) implItemKind() {}
func (ImplItemType) implItemKind()   {}
func (ImplItemMac) implItemKind()    {}

type ForeignItem struct {
	Ident Ident
	Attrs []Attribute
	Node  ForeignItemKind
	Vis   Visibility
	Span  source.Span
}

type ForeignItemKind interface {
	foreignItemKind()
}

type ForeignItemFn struct {
	Decl     FnDecl
	Generics Generics
}

type ForeignItemStatic struct {
	Ty    Ty
	Mutbl Mutability
}

func (ForeignItemFn) foreignItemKind()     {}
func (ForeignItemStatic) foreignItemKind() {}

// ViewPath: дерево `use`.
type ViewPath interface {
	viewPath()
}

// ViewSimple is `use a::b;` or `use a::b as c;`.
type ViewSimple struct {
	Path   Path
	Rename *Ident
}

// ViewGlob is `use a::b::*;`.
type ViewGlob struct {
	Path Path
}

// ViewList is `use a::b::{c, d as e, self};`. Path may be empty (`use {a, b};`).
type ViewList struct {
	Path  Path
	Items []PathListItem
}

type PathListItem struct {
	Name   Ident
	Rename *Ident
}

func (ViewSimple) viewPath() {}
func (ViewGlob) viewPath()   {}
func (ViewList) viewPath()   {}
