package parser

import (
	"slices"

	"rsyn/internal/ast"
	"rsyn/internal/diag"
	"rsyn/internal/token"
)

func ttToken(tok token.Token) ast.TtToken {
	return ast.TtToken{Kind: tok.Kind, Text: tok.Text, Span: tok.Span}
}

// parseTtsUntil собирает деревья токенов до EOF, до непарной закрывающей
// скобки или до токена нулевой глубины, для которого stop вернул true.
func (p *Parser) parseTtsUntil(stop func(token.Kind) bool) []ast.TokenTree {
	var tts []ast.TokenTree
	for {
		k := p.peek().Kind
		if k == token.EOF {
			return tts
		}
		if _, closer := token.CloseDelim(k); closer {
			return tts
		}
		if stop != nil && stop(k) {
			return tts
		}
		tts = p.appendTokenTree(tts)
	}
}

// appendTokenTree разбирает одно дерево. "$( ... ) sep? op" становится
// TtSequence; "$" без такой группы остаётся обычным токеном.
func (p *Parser) appendTokenTree(tts []ast.TokenTree) []ast.TokenTree {
	tok := p.peek()
	if _, open := token.OpenDelim(tok.Kind); open {
		return append(tts, p.parseDelimited())
	}
	if tok.Kind != token.Dollar || p.nth(1).Kind != token.LParen {
		return append(tts, ttToken(p.advance()))
	}

	dollar := p.advance()
	group := p.parseDelimited()
	seq := &ast.SequenceRepetition{Tts: group.Delimited.Tts}
	switch {
	case p.at_or(token.Star, token.Plus):
		seq.Op = kleene(p.advance().Kind)
	case isSeparator(p.peek().Kind) && (p.nth(1).Kind == token.Star || p.nth(1).Kind == token.Plus):
		sep := ttToken(p.advance())
		seq.Separator = &sep
		seq.Op = kleene(p.advance().Kind)
	default:
		return append(tts, ttToken(dollar), group)
	}
	return append(tts, ast.TtSequence{Span: p.spanFrom(dollar.Span), Seq: seq})
}

func kleene(k token.Kind) ast.KleeneOp {
	if k == token.Plus {
		return ast.OneOrMore
	}
	return ast.ZeroOrMore
}

func isSeparator(k token.Kind) bool {
	if _, open := token.OpenDelim(k); open {
		return false
	}
	if _, closer := token.CloseDelim(k); closer {
		return false
	}
	return k != token.EOF && k != token.Dollar && k != token.Invalid
}

// parseDelimited: курсор на открывающей скобке.
func (p *Parser) parseDelimited() ast.TtDelimited {
	open := p.advance()
	delim, _ := token.OpenDelim(open.Kind)
	d := &ast.Delimited{Delim: delim, OpenSpan: open.Span}
	d.Tts = p.parseTtsUntil(nil)

	closeTok := p.peek()
	switch {
	case closeTok.Kind == delim.Close():
		p.advance()
		d.CloseSpan = closeTok.Span
	case closeTok.Kind == token.EOF:
		p.errAt(diag.SynUnclosedDelimiter, open.Span, "unclosed delimiter "+quoteTok(open))
	default:
		p.newReport(diag.SynUnbalancedDelimiter, diag.SevError, p.getDiagnosticSpan(), "mismatched closing delimiter "+quoteTok(closeTok)+", expected \""+delim.Close().Text()+"\"").
			WithNote(open.Span, "unclosed delimiter opened here").
			Emit()
	}
	return ast.TtDelimited{Span: p.spanFrom(open.Span), Delimited: d}
}

// parseBlock разбирает "{ ... }" как Block.
func (p *Parser) parseBlock() (ast.Block, bool) {
	if !p.at(token.LBrace) {
		p.err(diag.SynExpectBody, "expected '{', got "+quoteTok(p.peek()))
		return ast.Block{}, false
	}
	errs := p.opts.CurrentErrors
	g := p.parseDelimited()
	return ast.Block{Tts: g.Delimited.Tts}, p.opts.CurrentErrors == errs
}

// parseExprUntil собирает выражение как деревья токенов до stop нулевой глубины.
func (p *Parser) parseExprUntil(stop ...token.Kind) (ast.Expr, bool) {
	tts := p.parseTtsUntil(func(k token.Kind) bool {
		return slices.Contains(stop, k)
	})
	if len(tts) == 0 {
		p.err(diag.SynUnexpectedToken, "expected expression, got "+quoteTok(p.peek()))
		return ast.Expr{}, false
	}
	return ast.Expr{Tts: tts}, true
}
