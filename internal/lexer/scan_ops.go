package lexer

import (
	"rsyn/internal/diag"
	"rsyn/internal/token"
)

// Жадность: сначала 3-символьные (..= ... <<= >>=), затем 2-символьные,
// затем 1-символьные. Разбиение ">>" в дженериках делает парсер.
func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Mark()
	rest := lx.file.Content[lx.cursor.Off:lx.cursor.Limit]
	for n := min(3, len(rest)); n > 0; n-- {
		if k, ok := token.LookupPunct(string(rest[:n])); ok && k != token.Underscore {
			for range n {
				lx.cursor.Bump()
			}
			return lx.emit(k, start)
		}
	}

	lx.bumpRune()
	tok := lx.emit(token.Invalid, start)
	lx.errLex(diag.LexUnknownChar, tok.Span, "unknown character "+quoteText(tok.Text))
	return tok
}

func quoteText(s string) string {
	return "'" + s + "'"
}
