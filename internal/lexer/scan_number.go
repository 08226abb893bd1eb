package lexer

import (
	"rsyn/internal/diag"
	"rsyn/internal/token"
)

var numberSuffixes = map[string]bool{
	"u8": true, "u16": true, "u32": true, "u64": true, "u128": true, "usize": true,
	"i8": true, "i16": true, "i32": true, "i64": true, "i128": true, "isize": true,
	"f32": true, "f64": true,
}

// scanNumber: 0, 1_000, 0b1010, 0o17, 0xff, 1.5, 1e-3, 2.5E+10, с суффиксами (10u8, 1f32).
// "1.": float, но "1..2" и "1.foo": целое и дальше операторы.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	c := &lx.cursor
	kind := token.LitInt
	decimal := true

	if c.Peek() == '0' {
		var digit func(byte) bool
		switch c.PeekAt(1) {
		case 'b':
			digit = func(b byte) bool { return b == '0' || b == '1' }
		case 'o':
			digit = func(b byte) bool { return b >= '0' && b <= '7' }
		case 'x':
			digit = isHex
		}
		if digit != nil {
			decimal = false
			c.Advance(2)
			n := 0
			for digit(c.Peek()) || c.Peek() == '_' {
				if c.Bump() != '_' {
					n++
				}
			}
			if n == 0 {
				lx.errLex(diag.LexBadNumber, c.SpanFrom(start), "expected digits after base prefix")
			}
		}
	}

	if decimal {
		lx.eatDecDigits()
		if c.Peek() == '.' && c.PeekAt(1) != '.' && !isIdentStartByte(c.PeekAt(1)) && c.PeekAt(1) < utf8RuneSelf {
			c.Bump()
			kind = token.LitFloat
			lx.eatDecDigits()
		}
		if e := c.Peek(); e == 'e' || e == 'E' {
			next := c.PeekAt(1)
			if isDec(next) || ((next == '+' || next == '-') && isDec(c.PeekAt(2))) {
				c.Advance(2)
				lx.eatDecDigits()
				kind = token.LitFloat
			}
		}
	}

	if isIdentStartByte(c.Peek()) {
		sufStart := c.Off
		for isIdentContinueByte(c.Peek()) {
			c.Bump()
		}
		suffix := string(lx.file.Content[sufStart:c.Off])
		switch {
		case !numberSuffixes[suffix]:
			lx.errLex(diag.LexBadNumber, c.SpanFrom(start), "invalid suffix \""+suffix+"\" for number literal")
		case suffix[0] == 'f' && decimal:
			kind = token.LitFloat
		case suffix[0] == 'f':
			lx.errLex(diag.LexBadNumber, c.SpanFrom(start), "float suffix on a non-decimal literal")
		case kind == token.LitFloat:
			lx.errLex(diag.LexBadNumber, c.SpanFrom(start), "integer suffix on a float literal")
		}
	}
	return lx.emit(kind, start)
}

func (lx *Lexer) eatDecDigits() {
	for isDec(lx.cursor.Peek()) || lx.cursor.Peek() == '_' {
		lx.cursor.Bump()
	}
}
