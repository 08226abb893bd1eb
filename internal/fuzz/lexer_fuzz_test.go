package fuzztests

import (
	"testing"

	"rsyn/internal/diag"
	"rsyn/internal/lexer"
	"rsyn/internal/source"
	"rsyn/internal/token"
)

func FuzzLexerTokens(f *testing.F) {
	addCorpusSeeds(f)
	f.Add([]byte("'a' 'ab b'\"unterminated"))
	f.Add([]byte("r##\"raw\"# \"## /*/**/"))
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampInput(input)

		fs := source.NewFileSet()
		file := fs.Get(fs.AddVirtual("fuzz.rs", input))

		bag := diag.NewBag(64)
		toks := lexer.Tokenize(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
		if len(toks) == 0 || toks[len(toks)-1].Kind != token.EOF {
			t.Fatalf("token stream must end with EOF, got %d tokens", len(toks))
		}
		for i, tok := range toks {
			if tok.Span.End < tok.Span.Start || int(tok.Span.End) > len(file.Content) {
				t.Fatalf("token %d has bad span %v", i, tok.Span)
			}
		}
	})
}
