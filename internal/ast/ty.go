package ast

// Ty: тип. Закрытое множество вариантов ниже.
type Ty interface {
	ty()
}

// TySlice is `[T]`.
type TySlice struct{ Elem Ty }

// TyArray is `[T; N]`.
type TyArray struct {
	Elem Ty
	Len  Expr
}

// TyPtr is `*const T` / `*mut T`.
type TyPtr struct {
	Mutbl Mutability
	Elem  Ty
}

// TyRptr is `&'a mut T`; Lifetime is nil when elided.
type TyRptr struct {
	Lifetime *Lifetime
	Mutbl    Mutability
	Elem     Ty
}

// TyBareFn is `for<'a> unsafe extern "C" fn(x: u8, ...) -> R`.
type TyBareFn struct {
	Unsafety  Unsafety
	Abi       *Abi
	Lifetimes []LifetimeDef
	Inputs    []BareFnArg
	Output    Ty
	Variadic  bool
}

// BareFnArg is an argument of a bare fn type; Name is optional.
type BareFnArg struct {
	Name *Ident
	Ty   Ty
}

// TyNever is `!`.
type TyNever struct{}

// TyTup is `(A, B)`; the empty tuple is the unit type `()`.
type TyTup struct{ Elems []Ty }

// TyPath is `a::B<C>` or, with QSelf, `<T as Trait>::Assoc`.
type TyPath struct {
	QSelf *QSelf
	Path  Path
}

// TyTraitObject is `Bound + Bound` in type position.
type TyTraitObject struct{ Bounds []TyParamBound }

// TyImplTrait is `impl Bound + Bound`.
type TyImplTrait struct{ Bounds []TyParamBound }

// TyParen is `(T)`.
type TyParen struct{ Elem Ty }

// TyInfer is `_`.
type TyInfer struct{}

// TyMac is a macro in type position.
type TyMac struct{ Mac Mac }

func (TySlice) ty()       {}
func (TyArray) ty()       {}
func (TyPtr) ty()         {}
func (TyRptr) ty()        {}
func (TyBareFn) ty()      {}
func (TyNever) ty()       {}
func (TyTup) ty()         {}
func (TyPath) ty()        {}
func (TyTraitObject) ty() {}
func (TyImplTrait) ty()   {}
func (TyParen) ty()       {}
func (TyInfer) ty()       {}
func (TyMac) ty()         {}

// TyPathFrom builds a plain path type such as "T" or "std::fmt::Debug".
func TyPathFrom(s string) TyPath {
	return TyPath{Path: PathFrom(s)}
}

// Abi is the string after `extern`; Name is empty for a bare `extern`.
type Abi struct {
	Name string
}
