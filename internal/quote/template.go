package quote

import (
	"reflect"
	"slices"

	"github.com/cockroachdb/errors"

	"rsyn/internal/ast"
	"rsyn/internal/parser"
	"rsyn/internal/token"
)

var (
	// ErrUnboundVar: в шаблоне есть #name, которого нет в Vars.
	ErrUnboundVar = errors.New("unbound template variable")
	// ErrRepetitionLength: срезы внутри одного #( ... )* разной длины или срезов нет вовсе.
	ErrRepetitionLength = errors.New("repetition length mismatch")
)

// Vars binds template placeholders to values accepted by Tokens.Append.
type Vars map[string]any

// Quote parses template as token trees and splices variables into it.
//
//	#name             appends Vars["name"]
//	#( ... ) sep? *   repeats the group once per element of the slice
//	                  variables it mentions; sep goes between repetitions
//
// A `#` followed by anything else (`#[attr]` included) is kept literally.
func Quote(template string, vars Vars) (*Tokens, error) {
	tts, err := parser.ParseTokenTrees(template)
	if err != nil {
		return nil, errors.Wrap(err, "quote template")
	}
	out := New()
	if err := expand(out, ast.Normalize(tts), vars); err != nil {
		return nil, err
	}
	return out, nil
}

// MustQuote is Quote for templates known to be valid; it panics on error.
func MustQuote(template string, vars Vars) *Tokens {
	t, err := Quote(template, vars)
	if err != nil {
		panic(err)
	}
	return t
}

func expand(out *Tokens, tts []ast.TokenTree, vars Vars) error {
	for i := 0; i < len(tts); i++ {
		switch tt := tts[i].(type) {
		case ast.TtToken:
			if tt.Kind != token.Pound || i+1 >= len(tts) {
				out.Tree(tt)
				continue
			}
			if name, ok := placeholder(tts[i+1]); ok {
				v, bound := vars[name]
				if !bound {
					return errors.Wrapf(ErrUnboundVar, "#%s", name)
				}
				out.Append(v)
				i++
				continue
			}
			if body, sep, n, ok := repetition(tts[i+1:]); ok {
				if err := expandRepetition(out, body, sep, vars); err != nil {
					return err
				}
				i += n
				continue
			}
			out.Tree(tt)
		case ast.TtDelimited:
			inner := New()
			if err := expand(inner, tt.Delimited.Tts, vars); err != nil {
				return err
			}
			out.Tree(ast.Group(tt.Delimited.Delim, inner.tts...))
		case ast.TtSequence:
			inner := New()
			if err := expand(inner, tt.Seq.Tts, vars); err != nil {
				return err
			}
			out.Tree(ast.TtSequence{Seq: &ast.SequenceRepetition{
				Tts:       inner.tts,
				Separator: tt.Seq.Separator,
				Op:        tt.Seq.Op,
			}})
		default:
			out.Tree(tt)
		}
	}
	return nil
}

func placeholder(tt ast.TokenTree) (string, bool) {
	tok, ok := tt.(ast.TtToken)
	if !ok || tok.Kind != token.Ident {
		return "", false
	}
	return tok.Text, true
}

// repetition распознаёт `( ... ) *` или `( ... ) sep *` сразу после '#'.
// n: сколько деревьев потреблено после '#'.
func repetition(rest []ast.TokenTree) (body []ast.TokenTree, sep *ast.TtToken, n int, ok bool) {
	group, isGroup := rest[0].(ast.TtDelimited)
	if !isGroup || group.Delimited.Delim != token.DelimParen || len(rest) < 2 {
		return nil, nil, 0, false
	}
	if isStar(rest[1]) {
		return group.Delimited.Tts, nil, 2, true
	}
	if len(rest) >= 3 && isStar(rest[2]) {
		if tok, isTok := rest[1].(ast.TtToken); isTok && tok.Kind != token.Pound {
			return group.Delimited.Tts, &tok, 3, true
		}
	}
	return nil, nil, 0, false
}

func isStar(tt ast.TokenTree) bool {
	tok, ok := tt.(ast.TtToken)
	return ok && tok.Kind == token.Star
}

func expandRepetition(out *Tokens, body []ast.TokenTree, sep *ast.TtToken, vars Vars) error {
	names := mentioned(body, nil)
	n := -1
	var iterated []string
	for _, name := range names {
		v, bound := vars[name]
		if !bound {
			return errors.Wrapf(ErrUnboundVar, "#%s", name)
		}
		rv := reflect.ValueOf(v)
		if !isIterable(rv) {
			continue
		}
		if n >= 0 && rv.Len() != n {
			return errors.Wrapf(ErrRepetitionLength, "#%s has %d elements, expected %d", name, rv.Len(), n)
		}
		n = rv.Len()
		iterated = append(iterated, name)
	}
	if n < 0 {
		return errors.Wrap(ErrRepetitionLength, "repetition mentions no slice variable")
	}
	for k := range n {
		if k > 0 && sep != nil {
			out.Tree(*sep)
		}
		scope := make(Vars, len(vars))
		for name, v := range vars {
			scope[name] = v
		}
		for _, name := range iterated {
			scope[name] = reflect.ValueOf(vars[name]).Index(k).Interface()
		}
		if err := expand(out, body, scope); err != nil {
			return err
		}
	}
	return nil
}

// isIterable: срезы, кроме готовых последовательностей токенов.
func isIterable(rv reflect.Value) bool {
	if rv.Kind() != reflect.Slice {
		return false
	}
	return rv.Type() != reflect.TypeFor[[]ast.TokenTree]()
}

// mentioned собирает имена #name внутри body, вложенные группы включительно.
func mentioned(body []ast.TokenTree, acc []string) []string {
	for i, tt := range body {
		switch tt := tt.(type) {
		case ast.TtToken:
			if tt.Kind != token.Pound || i+1 >= len(body) {
				continue
			}
			if name, ok := placeholder(body[i+1]); ok && !slices.Contains(acc, name) {
				acc = append(acc, name)
			}
		case ast.TtDelimited:
			acc = mentioned(tt.Delimited.Tts, acc)
		case ast.TtSequence:
			acc = mentioned(tt.Seq.Tts, acc)
		}
	}
	return acc
}
