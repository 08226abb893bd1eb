package lexer

import (
	"rsyn/internal/diag"
	"rsyn/internal/token"
)

// scanString сканирует "..." (курсор на кавычке; префикс b уже съеден).
// Перевод строки внутри литерала допустим.
func (lx *Lexer) scanString(start Mark, kind token.Kind) token.Token {
	lx.cursor.Bump() // opening '"'
	for !lx.cursor.EOF() {
		switch lx.cursor.Peek() {
		case '"':
			lx.cursor.Bump()
			return lx.emit(kind, start)
		case '\\':
			lx.scanEscape(kind == token.LitByteStr, true)
		default:
			lx.bumpRune()
		}
	}
	tok := lx.emit(token.Invalid, start)
	lx.errLex(diag.LexUnterminatedString, tok.Span, "unterminated string literal")
	return tok
}

// scanRawString: r"..." / r#"..."# / br##"..."##. Курсор стоит сразу после 'r'.
func (lx *Lexer) scanRawString(start Mark, kind token.Kind) token.Token {
	hashes := 0
	for lx.cursor.Eat('#') {
		hashes++
	}
	if !lx.cursor.Eat('"') {
		tok := lx.emit(token.Invalid, start)
		lx.errLex(diag.LexBadRawString, tok.Span, "expected '\"' after raw string prefix")
		return tok
	}
	for !lx.cursor.EOF() {
		if lx.cursor.Bump() != '"' {
			continue
		}
		n := 0
		for n < hashes && lx.cursor.Peek() == '#' {
			lx.cursor.Bump()
			n++
		}
		if n == hashes {
			return lx.emit(kind, start)
		}
	}
	tok := lx.emit(token.Invalid, start)
	lx.errLex(diag.LexUnterminatedString, tok.Span, "unterminated raw string literal")
	return tok
}

// scanPrefixedLiteral распознаёт b'x', b"..", br".." и r"..", r#".."#.
// Если после префикса нет литерала, курсор не двигается и ok=false.
func (lx *Lexer) scanPrefixedLiteral() (token.Token, bool) {
	start := lx.cursor.Mark()
	c := &lx.cursor
	raw := func(at uint32) bool {
		for c.PeekAt(at) == '#' {
			at++
		}
		return c.PeekAt(at) == '"'
	}
	switch {
	case c.HasPrefix("b'"):
		c.Bump()
		return lx.scanCharBody(start, token.LitByte), true
	case c.HasPrefix("b\""):
		c.Bump()
		return lx.scanString(start, token.LitByteStr), true
	case c.HasPrefix("br") && raw(2):
		c.Advance(2)
		return lx.scanRawString(start, token.LitByteStr), true
	case c.Peek() == 'r' && raw(1):
		c.Bump()
		return lx.scanRawString(start, token.LitStr), true
	}
	return token.Token{}, false
}

// scanQuote различает 'a' (char) и 'a (lifetime).
func (lx *Lexer) scanQuote() token.Token {
	start := lx.cursor.Mark()
	if lx.cursor.PeekAt(1) == '\\' {
		return lx.scanCharBody(start, token.LitChar)
	}
	r, sz := lx.runeAt(1)
	if sz > 0 && lx.cursor.PeekAt(uint32(sz)+1) == '\'' {
		return lx.scanCharBody(start, token.LitChar)
	}
	if sz > 0 && isIdentStartRune(r) {
		lx.cursor.Bump() // '\''
		for {
			r, sz = lx.peekRune()
			if sz == 0 || !isIdentContinueRune(r) {
				break
			}
			lx.bumpRune()
		}
		return lx.emit(token.Lifetime, start)
	}
	lx.cursor.Bump()
	lx.bumpRune()
	tok := lx.emit(token.Invalid, start)
	lx.errLex(diag.LexUnterminatedChar, tok.Span, "unterminated character literal")
	return tok
}

// scanCharBody: курсор на открывающей кавычке.
func (lx *Lexer) scanCharBody(start Mark, kind token.Kind) token.Token {
	lx.cursor.Bump()
	if lx.cursor.Peek() == '\\' {
		lx.scanEscape(kind == token.LitByte, false)
	} else {
		lx.bumpRune()
	}
	if !lx.cursor.Eat('\'') {
		tok := lx.emit(token.Invalid, start)
		lx.errLex(diag.LexUnterminatedChar, tok.Span, "unterminated character literal")
		return tok
	}
	return lx.emit(kind, start)
}

// scanEscape съедает escape-последовательность и репортит невалидные.
func (lx *Lexer) scanEscape(byteLit, inString bool) {
	start := lx.cursor.Mark()
	c := &lx.cursor
	c.Bump() // '\\'
	bad := func(msg string) {
		lx.errLex(diag.LexBadEscape, c.SpanFrom(start), msg)
	}
	switch c.Bump() {
	case 'n', 'r', 't', '\\', '0', '\'', '"':
	case '\n':
		if !inString {
			bad("line continuation outside string literal")
		}
	case 'x':
		for range 2 {
			if !isHex(c.Peek()) {
				bad("expected two hex digits in \\x escape")
				return
			}
			c.Bump()
		}
	case 'u':
		if byteLit {
			bad("unicode escape in byte literal")
		}
		if !c.Eat('{') {
			bad("expected '{' in unicode escape")
			return
		}
		n := 0
		for isHex(c.Peek()) || c.Peek() == '_' {
			c.Bump()
			n++
		}
		if !c.Eat('}') || n == 0 || n > 6 {
			bad("malformed unicode escape")
		}
	default:
		bad("unknown character escape")
	}
}
