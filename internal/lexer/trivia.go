package lexer

import (
	"rsyn/internal/diag"
	"rsyn/internal/token"
)

// collectLeadingTrivia собирает подряд идущие trivia перед значимым токеном.
// - ' ', '\t', '\r' коалесцируются в один TriviaSpace
// - последовательные '\n' коалесцируются в один TriviaNewline
// - //... до \n -> TriviaLineComment
// - /* ... */ -> TriviaBlockComment (с вложенностью)
// Doc-комментарии (///, //!, /** */, /*! */): значимые токены, здесь не собираются.
func (lx *Lexer) collectLeadingTrivia() {
	lx.hold = nil
	for !lx.cursor.EOF() {
		start := lx.cursor.Mark()
		switch b := lx.cursor.Peek(); {
		case b == ' ' || b == '\t' || b == '\r':
			for b2 := lx.cursor.Peek(); b2 == ' ' || b2 == '\t' || b2 == '\r'; b2 = lx.cursor.Peek() {
				lx.cursor.Bump()
			}
			lx.pushTrivia(token.TriviaSpace, start)
		case b == '\n':
			for lx.cursor.Peek() == '\n' {
				lx.cursor.Bump()
			}
			lx.pushTrivia(token.TriviaNewline, start)
		case b == '/' && lx.cursor.PeekAt(1) == '/' && !lx.atDocComment():
			lx.skipLine()
			lx.pushTrivia(token.TriviaLineComment, start)
		case b == '/' && lx.cursor.PeekAt(1) == '*' && !lx.atDocComment():
			lx.skipBlockComment(start)
			lx.pushTrivia(token.TriviaBlockComment, start)
		default:
			return
		}
	}
}

func (lx *Lexer) pushTrivia(k token.TriviaKind, start Mark) {
	sp := lx.cursor.SpanFrom(start)
	lx.hold = append(lx.hold, token.Trivia{Kind: k, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])})
}

// atDocComment: "///x" (но не "////"), "//!", "/**x" (но не "/**/" и "/***"), "/*!".
func (lx *Lexer) atDocComment() bool {
	c := &lx.cursor
	if c.Peek() != '/' {
		return false
	}
	switch c.PeekAt(1) {
	case '/':
		return c.PeekAt(2) == '!' || (c.PeekAt(2) == '/' && c.PeekAt(3) != '/')
	case '*':
		return c.PeekAt(2) == '!' || (c.PeekAt(2) == '*' && c.PeekAt(3) != '*' && c.PeekAt(3) != '/')
	}
	return false
}

func (lx *Lexer) scanDocComment() token.Token {
	start := lx.cursor.Mark()
	if lx.cursor.PeekAt(1) == '/' {
		lx.skipLine()
	} else {
		lx.skipBlockComment(start)
	}
	return lx.emit(token.DocComment, start)
}

func (lx *Lexer) skipLine() {
	for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
		lx.cursor.Bump()
	}
}

// skipBlockComment съедает "/* ... */" с учётом вложенности.
func (lx *Lexer) skipBlockComment(start Mark) {
	lx.cursor.Advance(2)
	depth := 1
	for !lx.cursor.EOF() && depth > 0 {
		switch {
		case lx.cursor.HasPrefix("/*"):
			lx.cursor.Advance(2)
			depth++
		case lx.cursor.HasPrefix("*/"):
			lx.cursor.Advance(2)
			depth--
		default:
			lx.cursor.Bump()
		}
	}
	if depth > 0 {
		lx.errLex(diag.LexUnterminatedBlockComment, lx.cursor.SpanFrom(start), "unterminated block comment")
	}
}
