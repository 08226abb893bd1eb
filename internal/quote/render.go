package quote

import (
	"fmt"
	"strings"

	"rsyn/internal/ast"
	"rsyn/internal/token"
)

// String renders the trees on one line, tokens separated by single spaces.
// A line doc comment is followed by a newline so the next token is not
// swallowed by it.
func (t *Tokens) String() string {
	var w textWriter
	w.trees(t.tts)
	return w.b.String()
}

// Render tokenizes node and renders it.
func Render(node any) string {
	return New().Append(node).String()
}

type textWriter struct {
	b       strings.Builder
	needSep bool
}

func (w *textWriter) word(s string) {
	if w.needSep {
		w.b.WriteByte(' ')
	}
	w.b.WriteString(s)
	w.needSep = true
}

func (w *textWriter) trees(tts []ast.TokenTree) {
	for _, tt := range tts {
		w.tree(tt)
	}
}

func (w *textWriter) tree(tt ast.TokenTree) {
	switch tt := tt.(type) {
	case ast.TtToken:
		w.word(tt.Text)
		if tt.Kind == token.DocComment && strings.HasPrefix(tt.Text, "//") {
			w.b.WriteByte('\n')
			w.needSep = false
		}
	case ast.TtDelimited:
		w.word(tt.Delimited.Delim.Open().Text())
		w.trees(tt.Delimited.Tts)
		w.word(tt.Delimited.Delim.Close().Text())
	case ast.TtSequence:
		w.word(token.Dollar.Text())
		w.word(token.LParen.Text())
		w.trees(tt.Seq.Tts)
		w.word(token.RParen.Text())
		if tt.Seq.Separator != nil {
			w.word(tt.Seq.Separator.Text)
		}
		w.word(tt.Seq.Op.String())
	default:
		panic(fmt.Sprintf("quote: unexpected token tree %T", tt))
	}
}
