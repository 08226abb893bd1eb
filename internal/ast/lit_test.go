package ast

import "testing"

func TestStrLitRoundTrip(t *testing.T) {
	tests := []string{"", "plain", "quote \" and \\ slash", "tab\tnl\n", "nul\x00", "\x01ctl", "юникод"}
	for _, v := range tests {
		l := StrLit(v)
		got, err := l.StrValue()
		if err != nil {
			t.Fatalf("StrValue(%s): %v", l.Text, err)
		}
		if got != v {
			t.Fatalf("StrValue(%s) = %q, want %q", l.Text, got, v)
		}
	}
}

func TestStrValueForms(t *testing.T) {
	tests := []struct {
		lit  Lit
		want string
	}{
		{Lit{Kind: LitStr, Text: `r"a\n"`}, `a\n`},
		{Lit{Kind: LitStr, Text: `r#"say "hi""#`}, `say "hi"`},
		{Lit{Kind: LitByteStr, Text: `b"\x41B"`}, "AB"},
		{Lit{Kind: LitByteStr, Text: `br##"x"#"##`}, `x"#`},
		{Lit{Kind: LitStr, Text: `"\u{48}i"`}, "Hi"},
		{Lit{Kind: LitStr, Text: "\"a\\\n    b\""}, "ab"},
	}
	for _, tt := range tests {
		got, err := tt.lit.StrValue()
		if err != nil || got != tt.want {
			t.Fatalf("StrValue(%s) = %q, %v; want %q", tt.lit.Text, got, err, tt.want)
		}
	}
	if _, err := (Lit{Kind: LitInt, Text: "1"}).StrValue(); err == nil {
		t.Fatalf("StrValue on an integer must fail")
	}
}

func TestIntValueAndSuffix(t *testing.T) {
	tests := []struct {
		text   string
		want   uint64
		suffix string
	}{
		{"42", 42, ""},
		{"1_000u32", 1000, "u32"},
		{"0xffu8", 255, "u8"},
		{"0b1010", 10, ""},
		{"0o17usize", 15, "usize"},
	}
	for _, tt := range tests {
		l := Lit{Kind: LitInt, Text: tt.text}
		got, err := l.IntValue()
		if err != nil || got != tt.want {
			t.Fatalf("IntValue(%s) = %d, %v; want %d", tt.text, got, err, tt.want)
		}
		if l.Suffix() != tt.suffix {
			t.Fatalf("Suffix(%s) = %q, want %q", tt.text, l.Suffix(), tt.suffix)
		}
	}
	if s := (Lit{Kind: LitFloat, Text: "2.5f64"}).Suffix(); s != "f64" {
		t.Fatalf("float suffix = %q", s)
	}
}

func TestCharValue(t *testing.T) {
	tests := map[string]rune{`'a'`: 'a', `'\n'`: '\n', `b'\x7f'`: 0x7f, `'\u{1F600}'`: 0x1F600, "'é'": 'é'}
	for text, want := range tests {
		kind := LitChar
		if text[0] == 'b' {
			kind = LitByte
		}
		got, err := Lit{Kind: kind, Text: text}.CharValue()
		if err != nil || got != want {
			t.Fatalf("CharValue(%s) = %q, %v; want %q", text, got, err, want)
		}
	}
}
