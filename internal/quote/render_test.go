package quote_test

import (
	"testing"

	"rsyn/internal/ast"
	"rsyn/internal/parser"
	"rsyn/internal/quote"
)

// Рендер должен переразбираться в то же дерево.
var roundTripSources = map[string]string{
	"extern crate":        "extern crate foo; extern crate bar as baz;",
	"use":                 "use a::b::{self, c as d}; pub use ::x::*; use m::{};",
	"static/const":        "static mut N: u32 = 1 + 2; pub const C: &'static str = \"hi\";",
	"fn":                  `pub unsafe extern "C" fn f<'a, T: Clone + 'a>(self: &Self, (a, b): (u8, u8), ...) -> T where T: Default { a + b }`,
	"const fn":            "const fn z() -> u8 { 0 }",
	"mod":                 "mod m { #![allow(dead_code)] fn inner() {} mod n; }",
	"foreign mod":         `extern "C" { #![link(name = "m")] pub fn sin(x: f64) -> f64; static ERRNO: i32; fn printf(fmt: *const u8, ...); }`,
	"type alias":          "type Map<K, V = ()> = std::collections::HashMap<K, V>;",
	"struct":              "pub struct P<T> where T: Copy { pub(crate) x: T, y: [u8; 4] } struct U; struct W(pub u8, T) where T: Sized;",
	"enum":                "enum E<'a> { A, B(u8, &'a str), C { x: u8 }, D = 1 << 3 }",
	"trait":               "pub unsafe trait Tr<T: ?Sized>: Send + for<'a> Fn(&'a T) where T: 'static { const N: usize = 3; type Item: Clone = u8; fn m(&mut self, u8) -> Self::Item; fn d() { } tr!{} }",
	"impl":                "impl<'a, T> fmt::Display for W<'a, T> where T: fmt::Debug { default fn fmt(&self, f: &mut fmt::Formatter) -> fmt::Result { Ok(()) } pub const K: u8 = 1; type Out = T; m!(); }",
	"negative impl":       "unsafe impl !Send for X {}",
	"default impl":        "impl Tr for .. {}",
	"impl qualified self": "impl <T as Tr>::Out {}",
	"macros":              "macro_rules! m { ($($x:expr),*) => { vec![$($x),*] }; } foo!(a, b); bar! { x }",
	"types":               "type T = (fn(u8) -> !, [&'a mut T], *mut u8, <Vec<T> as IntoIterator>::Item, Box<Fn(u8) + Send + 'a>, _, (u8,), impl Iterator<Item = u8>, m!(x));",
	"visibility":          "pub(super) fn a() {} pub(in a::b) fn b() {} pub(self) fn c() {} pub(crate) struct S(pub(crate) u8);",
	"attributes":          "#![crate_name = \"x\"] #[derive(Debug, Clone)] #[cfg(not(test))] #[path = \"a.rs\"] /// doc\n /** block */ fn f() {}",
	"where clauses":       "fn g<T, U>() where for<'a> &'a T: Into<U>, 'b: 'c + 'd, T = U, {}",
}

func TestRenderRoundTrip(t *testing.T) {
	for name, src := range roundTripSources {
		t.Run(name, func(t *testing.T) {
			crate, err := parser.ParseCrate(src)
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			text := quote.Render(crate)
			again, err := parser.ParseCrate(text)
			if err != nil {
				t.Fatalf("reparse of %q: %v", text, err)
			}
			if !ast.Equal(crate, again) {
				t.Fatalf("round trip changed the tree:\n%s\nrendered: %s", ast.Diff(crate, again), text)
			}
		})
	}
}

func TestRenderStable(t *testing.T) {
	// второй рендер совпадает с первым
	for name, src := range roundTripSources {
		crate, err := parser.ParseCrate(src)
		if err != nil {
			t.Fatalf("%s: parse: %v", name, err)
		}
		first := quote.Render(crate)
		again, err := parser.ParseCrate(first)
		if err != nil {
			t.Fatalf("%s: reparse: %v", name, err)
		}
		if second := quote.Render(again); second != first {
			t.Fatalf("%s: render is not stable:\n%s\n%s", name, first, second)
		}
	}
}

func TestRenderItems(t *testing.T) {
	cases := []struct {
		src, want string
	}{
		{"struct S;", "struct S ;"},
		{"pub(crate) fn f(&'a self) {}", "pub ( crate ) fn f ( & 'a self ) { }"},
		{"mod m { #![no_std] }", "mod m { # ! [ no_std ] }"},
		{"impl <T as Tr>::X {}", "impl < > < T as Tr > :: X { }"},
		{"m! { }", "m ! { }"},
		{"m!();", "m ! ( ) ;"},
		{"trait T { fn f(u8); }", "trait T { fn f ( u8 ) ; }"},
	}
	for _, tc := range cases {
		item, err := parser.ParseItem(tc.src)
		if err != nil {
			t.Fatalf("%s: parse: %v", tc.src, err)
		}
		if got := quote.Render(item); got != tc.want {
			t.Fatalf("%s:\n got  %s\n want %s", tc.src, got, tc.want)
		}
	}
}
