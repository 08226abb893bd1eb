package parser

import (
	"fortio.org/safecast"

	"rsyn/internal/diag"
	"rsyn/internal/source"
	"rsyn/internal/token"
)

// advance: съедает следующий токен и обновляет lastSpan
func (p *Parser) advance() token.Token {
	tok := p.peek()
	if tok.Kind == token.EOF {
		return tok
	}
	p.pos++
	if tok.Kind != token.Invalid {
		p.lastSpan = tok.Span
	}
	return tok
}

// eat съедает токен, если он вида k.
func (p *Parser) eat(k token.Kind) (token.Token, bool) {
	if p.at(k) {
		return p.advance(), true
	}
	return token.Token{}, false
}

// eatSplit как eat, но умеет отщепить k от составного токена:
// ">>" даёт ">" и оставляет ">", "&&" даёт "&" и оставляет "&".
func (p *Parser) eatSplit(k token.Kind) (token.Token, bool) {
	if p.at(k) {
		return p.advance(), true
	}
	if !p.canSplit(k) {
		return token.Token{}, false
	}
	tok := p.peek()
	n, err := safecast.Conv[uint32](len(k.Text()))
	if err != nil {
		return token.Token{}, false
	}
	rest := tok.Text[len(k.Text()):]
	restKind, _ := token.LookupPunct(rest)
	head := token.Token{Kind: k, Text: k.Text(), Span: tok.Span.Head(n), Leading: tok.Leading}
	p.toks[p.pos] = token.Token{Kind: restKind, Text: rest, Span: tok.Span.Tail(n)}
	p.lastSpan = head.Span
	return head, true
}

// canSplit: текущий токен: составной пунктуатор, начинающийся с k.
func (p *Parser) canSplit(k token.Kind) bool {
	tok := p.peek()
	prefix := k.Text()
	if !tok.Kind.IsPunct() || prefix == "" || len(tok.Text) <= len(prefix) || tok.Text[:len(prefix)] != prefix {
		return false
	}
	_, ok := token.LookupPunct(tok.Text[len(prefix):])
	return ok
}

// atSplit: at(k) с учётом составных токенов.
func (p *Parser) atSplit(k token.Kind) bool {
	return p.at(k) || p.canSplit(k)
}

// getDiagnosticSpan: возвращает лучший span для диагностики:
// на EOF указываем сразу за последним съеденным токеном.
func (p *Parser) getDiagnosticSpan() source.Span {
	peek := p.peek()
	if peek.Kind == token.EOF && p.lastSpan.End > 0 {
		return p.lastSpan.ZeroideToEnd()
	}
	return peek.Span
}

// expect: ожидаем конкретный токен. Если нет: репортим и возвращаем (invalid,false).
func (p *Parser) expect(k token.Kind, code diag.Code, msg string) (token.Token, bool) {
	if tok, ok := p.eatSplit(k); ok {
		return tok, true
	}
	diagSpan := p.getDiagnosticSpan()
	p.report(code, diag.SevError, diagSpan, msg+", got "+quoteTok(p.peek()))
	return token.Token{Kind: token.Invalid, Span: diagSpan, Text: p.peek().Text}, false
}

// err репортует ошибку на текущем токене.
func (p *Parser) err(code diag.Code, msg string) bool {
	return p.report(code, diag.SevError, p.getDiagnosticSpan(), msg)
}

// errAt репортует ошибку на заданном span.
func (p *Parser) errAt(code diag.Code, sp source.Span, msg string) bool {
	return p.report(code, diag.SevError, sp, msg)
}

func (p *Parser) report(code diag.Code, sev diag.Severity, sp source.Span, msg string) bool {
	b := p.newReport(code, sev, sp, msg)
	b.Emit()
	return b != nil
}

// newReport returns nil once the error budget is spent; the builder's
// methods are nil-safe, so callers can chain notes unconditionally.
func (p *Parser) newReport(code diag.Code, sev diag.Severity, sp source.Span, msg string) *diag.ReportBuilder {
	if p.opts.Reporter == nil {
		return nil
	}
	if sev == diag.SevError {
		p.opts.CurrentErrors++
	}
	if p.opts.Enough() && sev == diag.SevError && p.opts.CurrentErrors > p.opts.MaxErrors {
		return nil // достигли максимального количества ошибок
	}
	return diag.NewReportBuilder(p.opts.Reporter, sev, code, sp, msg)
}

func quoteTok(tok token.Token) string {
	if tok.Kind == token.EOF {
		return "end of input"
	}
	return "\"" + tok.Text + "\""
}

// spanFrom covers everything from start up to the last consumed token.
func (p *Parser) spanFrom(start source.Span) source.Span {
	return start.Cover(p.lastSpan)
}
