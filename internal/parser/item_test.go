package parser

import (
	"testing"

	"rsyn/internal/ast"
	"rsyn/internal/diag"
)

func TestParseItemKinds(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{"extern crate foo;", "ast.ItemExternCrate"},
		{"extern crate foo as bar;", "ast.ItemExternCrate"},
		{"use a::b::{c, d as e, self};", "ast.ItemUse"},
		{"use ::std::*;", "ast.ItemUse"},
		{"static mut X: [u8; 4] = [0; 4];", "ast.ItemStatic"},
		{"const X: &'static str = \"x\";", "ast.ItemConst"},
		{"pub const unsafe extern \"C\" fn f<T>(x: T, ...) -> T where T: Copy { x }", "ast.ItemFn"},
		{"mod m;", "ast.ItemMod"},
		{"mod m { #![allow(dead_code)] fn f() {} }", "ast.ItemMod"},
		{"extern \"C\" { fn abs(x: i32) -> i32; static mut errno: i32; }", "ast.ItemForeignMod"},
		{"type A<T> where T: Clone = Vec<T>;", "ast.ItemTy"},
		{"enum E<T> { A, B(T), C { x: T }, D = 1 << 3 }", "ast.ItemEnum"},
		{"struct S<'a, T: 'a>(pub &'a T) where T: Debug;", "ast.ItemStruct"},
		{"pub(crate) struct S { pub(super) a: u8, b: (u8, u16) }", "ast.ItemStruct"},
		{"struct Unit;", "ast.ItemStruct"},
		{"unsafe trait Tr<T>: Clone + 'static where T: Tr<T> { const N: usize = 3; type Out: Debug; fn f(&self, u8) -> Self::Out; fn g(self: Box<Self>) {} m!(); }", "ast.ItemTrait"},
		{"impl Send for .. {}", "ast.ItemDefaultImpl"},
		{"impl<T> !Send for S<T> {}", "ast.ItemImpl"},
		{"impl<'a, T: ?Sized> Tr for &'a T where T: Tr { default fn f(&'a mut self) {} pub type Out = u8; const N: usize = 1; }", "ast.ItemImpl"},
		{"impl <T as Tr>::Assoc { }", "ast.ItemImpl"},
		{"macro_rules! m { ($($x:expr),*) => {} }", "ast.ItemMac"},
		{"foo::bar!(a, b);", "ast.ItemMac"},
	}
	for _, tc := range cases {
		item := mustParseItem(t, tc.src)
		if got := typeName(item.Node); got != tc.want {
			t.Fatalf("%q: node = %s, want %s", tc.src, got, tc.want)
		}
	}
}

func typeName(v any) string {
	switch v.(type) {
	case ast.ItemExternCrate:
		return "ast.ItemExternCrate"
	case ast.ItemUse:
		return "ast.ItemUse"
	case ast.ItemStatic:
		return "ast.ItemStatic"
	case ast.ItemConst:
		return "ast.ItemConst"
	case ast.ItemFn:
		return "ast.ItemFn"
	case ast.ItemMod:
		return "ast.ItemMod"
	case ast.ItemForeignMod:
		return "ast.ItemForeignMod"
	case ast.ItemTy:
		return "ast.ItemTy"
	case ast.ItemEnum:
		return "ast.ItemEnum"
	case ast.ItemStruct:
		return "ast.ItemStruct"
	case ast.ItemTrait:
		return "ast.ItemTrait"
	case ast.ItemDefaultImpl:
		return "ast.ItemDefaultImpl"
	case ast.ItemImpl:
		return "ast.ItemImpl"
	case ast.ItemMac:
		return "ast.ItemMac"
	}
	return "<unknown>"
}

func TestParseFnSignature(t *testing.T) {
	item := mustParseItem(t, "pub unsafe extern \"C\" fn f<'a, T>(&'a mut self, (a, b): (u8, u8), ...) -> &'a T where T: 'a {}")
	fn, ok := item.Node.(ast.ItemFn)
	if !ok {
		t.Fatalf("expected fn, got %T", item.Node)
	}
	if item.Ident.Name != "f" || item.Vis.Kind != ast.VisPublic {
		t.Fatalf("unexpected ident/vis: %s %s", item.Ident.Name, item.Vis.Kind)
	}
	if fn.Unsafety != ast.Unsafe || fn.Abi == nil || fn.Abi.Name != "C" {
		t.Fatalf("unexpected qualifiers: %+v", fn)
	}
	if !fn.Decl.Variadic || len(fn.Decl.Inputs) != 2 {
		t.Fatalf("unexpected inputs: %+v", fn.Decl)
	}
	self, ok := fn.Decl.Inputs[0].(ast.ArgSelfRef)
	if !ok || self.Mutbl != ast.Mutable || self.Lifetime == nil || self.Lifetime.Name != "'a" {
		t.Fatalf("unexpected self arg: %#v", fn.Decl.Inputs[0])
	}
	captured, ok := fn.Decl.Inputs[1].(ast.ArgCaptured)
	if !ok || len(captured.Pat.Tts) != 1 {
		t.Fatalf("expected one delimited pattern tree, got %#v", fn.Decl.Inputs[1])
	}
	if _, ok := fn.Decl.Output.(ast.TyRptr); !ok {
		t.Fatalf("expected reference output, got %#v", fn.Decl.Output)
	}
	if len(fn.Generics.WhereClause.Predicates) != 1 {
		t.Fatalf("expected where predicate")
	}
}

func TestParseTraitIgnoredArgs(t *testing.T) {
	item := mustParseItem(t, "trait T { fn f(u8, &str, x: u16); }")
	tr := item.Node.(ast.ItemTrait)
	m := tr.Items[0].Node.(ast.TraitItemMethod)
	if m.Default != nil {
		t.Fatalf("expected no default body")
	}
	inputs := m.Sig.Decl.Inputs
	if len(inputs) != 3 {
		t.Fatalf("expected 3 inputs, got %d", len(inputs))
	}
	for i, want := range []string{"ignored", "ignored", "captured"} {
		got := "captured"
		if _, ok := inputs[i].(ast.ArgIgnored); ok {
			got = "ignored"
		}
		if got != want {
			t.Fatalf("input %d: got %s, want %s", i, got, want)
		}
	}
}

func TestParseVisibility(t *testing.T) {
	cases := []struct {
		src  string
		kind ast.VisKind
		path string
	}{
		{"fn f() {}", ast.VisInherited, ""},
		{"pub fn f() {}", ast.VisPublic, ""},
		{"pub(crate) fn f() {}", ast.VisCrate, ""},
		{"pub(super) fn f() {}", ast.VisRestricted, "super"},
		{"pub(self) fn f() {}", ast.VisRestricted, "self"},
		{"pub(in a::b) fn f() {}", ast.VisRestricted, "a::b"},
	}
	for _, tc := range cases {
		item := mustParseItem(t, tc.src)
		if item.Vis.Kind != tc.kind {
			t.Fatalf("%q: kind = %s, want %s", tc.src, item.Vis.Kind, tc.kind)
		}
		if tc.path != "" && (item.Vis.Path == nil || item.Vis.Path.String() != tc.path) {
			t.Fatalf("%q: unexpected path %v", tc.src, item.Vis.Path)
		}
	}

	tuple := mustParseItem(t, "struct S(pub (u8, u8));")
	field := tuple.Node.(ast.ItemStruct).Data.DataFields()[0]
	if field.Vis.Kind != ast.VisPublic {
		t.Fatalf("expected pub tuple field, got %s", field.Vis.Kind)
	}
	if _, ok := field.Ty.(ast.TyTup); !ok {
		t.Fatalf("expected tuple type, got %#v", field.Ty)
	}
}

func TestParseUseTrees(t *testing.T) {
	item := mustParseItem(t, "use a::b::{c, d as e, self};")
	list, ok := item.Node.(ast.ItemUse).Path.(ast.ViewList)
	if !ok {
		t.Fatalf("expected list, got %#v", item.Node)
	}
	if list.Path.String() != "a::b" || len(list.Items) != 3 {
		t.Fatalf("unexpected list %+v", list)
	}
	if list.Items[1].Rename == nil || list.Items[1].Rename.Name != "e" {
		t.Fatalf("expected rename on second item")
	}

	item = mustParseItem(t, "use foo as bar;")
	simple := item.Node.(ast.ItemUse).Path.(ast.ViewSimple)
	if simple.Rename == nil || simple.Rename.Name != "bar" {
		t.Fatalf("expected rename")
	}
}

func TestParseDocCommentsAndAttrs(t *testing.T) {
	crate, bag := parseSource(t, "//! crate doc\n#![no_std]\n/// item doc\n#[derive(Clone, Debug)]\n#[path = \"x.rs\"]\nmod m;\n")
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %s", diagnosticsSummary(bag))
	}
	if len(crate.Attrs) != 2 || crate.Attrs[0].Style != ast.AttrInner || !crate.Attrs[0].IsSugaredDoc {
		t.Fatalf("unexpected crate attrs: %+v", crate.Attrs)
	}
	attrs := crate.Items[0].Attrs
	if len(attrs) != 3 {
		t.Fatalf("expected 3 item attrs, got %d", len(attrs))
	}
	doc := attrs[0].Value.(ast.MetaNameValue)
	if v, _ := doc.Lit.StrValue(); v != "/// item doc" {
		t.Fatalf("doc value = %q", v)
	}
	list := attrs[1].Value.(ast.MetaList)
	if list.Ident.Name != "derive" || len(list.Nested) != 2 {
		t.Fatalf("unexpected derive list %+v", list)
	}
	if attrs[2].Name() != "path" {
		t.Fatalf("unexpected attr name %q", attrs[2].Name())
	}
}

func TestParseFileRecovers(t *testing.T) {
	crate, bag := parseSource(t, "fn a() {}\nstruct ;\nfn b() {}\n} \nenum E { A }\n")
	if !bag.HasErrors() {
		t.Fatal("expected diagnostics")
	}
	var names []string
	for _, it := range crate.Items {
		names = append(names, it.Ident.Name)
	}
	if len(names) != 3 || names[0] != "a" || names[1] != "b" || names[2] != "E" {
		t.Fatalf("recovered items = %v", names)
	}
	items := bag.Items()
	if items[0].Code != diag.SynExpectIdentifier {
		t.Fatalf("first diagnostic = %s", items[0].Code.ID())
	}
	found := false
	for _, d := range items {
		if d.Code == diag.SynUnbalancedDelimiter {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected unbalanced delimiter diagnostic: %s", diagnosticsSummary(bag))
	}
}

func TestParseItemSpan(t *testing.T) {
	crate, bag := parseSource(t, "  #[a] struct S;  ")
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %s", diagnosticsSummary(bag))
	}
	sp := crate.Items[0].Span
	if sp.Start != 2 || sp.End != 16 {
		t.Fatalf("item span = %s, want 2-16", sp)
	}
}
