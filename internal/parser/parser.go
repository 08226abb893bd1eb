package parser

import (
	"slices"

	"rsyn/internal/ast"
	"rsyn/internal/diag"
	"rsyn/internal/lexer"
	"rsyn/internal/source"
	"rsyn/internal/token"
)

type Options struct {
	MaxErrors     uint
	CurrentErrors uint
	Reporter      diag.Reporter
}

// Enough - проверить, достигли ли мы максимального количества ошибок
func (o *Options) Enough() bool {
	if o.MaxErrors == 0 {
		return false
	}
	return o.CurrentErrors >= o.MaxErrors
}

type Result struct {
	File  source.FileID
	Crate *ast.Crate
	Bag   *diag.Bag
}

// Parser: состояние парсера на один файл.
// Файл лексится целиком заранее: так проще заглядывать вперёд и
// разбивать составные токены (">>" → ">" ">") там, где этого требует грамматика.
type Parser struct {
	toks     []token.Token
	pos      int
	file     *source.File
	fs       *source.FileSet
	opts     Options
	lastSpan source.Span // span последнего съеденного токена для лучшей диагностики
}

func newParser(fs *source.FileSet, file *source.File, opts Options) *Parser {
	toks := lexer.Tokenize(file, lexer.Options{Reporter: opts.Reporter})
	return &Parser{
		toks:     toks,
		file:     file,
		fs:       fs,
		opts:     opts,
		lastSpan: source.Span{File: file.ID},
	}
}

// ParseFile: входная точка для разбора одного файла целиком.
// Диагностики уходят в opts.Reporter; при BagReporter мешок возвращается в Result.
func ParseFile(fs *source.FileSet, file *source.File, opts Options) Result {
	p := newParser(fs, file, opts)
	crate := p.parseCrate()

	var bag *diag.Bag
	switch r := opts.Reporter.(type) {
	case diag.BagReporter:
		bag = r.Bag
	case *diag.BagReporter:
		bag = r.Bag
	}
	return Result{File: file.ID, Crate: crate, Bag: bag}
}

func (p *Parser) peek() token.Token {
	return p.nth(0)
}

// nth заглядывает на n токенов вперёд; за концом всегда EOF.
func (p *Parser) nth(n int) token.Token {
	if i := p.pos + n; i < len(p.toks) {
		return p.toks[i]
	}
	return p.toks[len(p.toks)-1]
}

func (p *Parser) at(k token.Kind) bool {
	return p.peek().Kind == k
}

func (p *Parser) at_or(kinds ...token.Kind) bool {
	return slices.Contains(kinds, p.peek().Kind)
}

// atIdent checks for a plain identifier with the given text (contextual keywords).
func (p *Parser) atIdent(text string) bool {
	tok := p.peek()
	return tok.Kind == token.Ident && tok.Text == text
}

func (p *Parser) IsError() bool {
	return p.opts.CurrentErrors != 0
}

// parseCrate: внутренние атрибуты, затем элементы до EOF.
func (p *Parser) parseCrate() *ast.Crate {
	crate := &ast.Crate{Attrs: p.parseInnerAttrs()}
	crate.Items = p.parseItems(token.EOF)
	return crate
}

// parseItems: основной цикл: пока не end/EOF: parseItem, при ошибке resync.
func (p *Parser) parseItems(end token.Kind) []ast.Item {
	var items []ast.Item
	for !p.at(end) && !p.at(token.EOF) && !p.opts.Enough() {
		if _, closer := token.CloseDelim(p.peek().Kind); closer {
			p.err(diag.SynUnbalancedDelimiter, "unexpected closing delimiter "+quoteTok(p.peek()))
			p.advance()
			continue
		}
		item, ok := p.parseItem()
		if !ok {
			p.resyncTop()
			continue
		}
		items = append(items, item)
	}
	return items
}

// resyncTop: восстановление после ошибки: прокручиваем до ';' (съедаем),
// до стартового токена следующего item на нулевой глубине, до
// незакрытого '}' (не съедаем) или EOF.
func (p *Parser) resyncTop() {
	depth := 0
	start := p.pos
	for !p.at(token.EOF) {
		k := p.peek().Kind
		if depth == 0 && p.pos > start && isItemStarter(k) {
			return
		}
		if _, open := token.OpenDelim(k); open {
			depth++
		} else if _, closer := token.CloseDelim(k); closer {
			if depth == 0 {
				if p.pos == start {
					p.advance()
				}
				return
			}
			depth--
			if depth == 0 && k == token.RBrace {
				p.advance()
				return
			}
		} else if k == token.Semi && depth == 0 {
			p.advance()
			return
		}
		p.advance()
	}
}

// isItemStarter: принадлежит ли токен стартерам item.
func isItemStarter(k token.Kind) bool {
	switch k {
	case token.KwFn, token.KwStruct, token.KwEnum, token.KwTrait, token.KwImpl,
		token.KwMod, token.KwUse, token.KwExtern, token.KwStatic, token.KwConst,
		token.KwType, token.KwUnsafe, token.KwPub, token.Pound, token.DocComment:
		return true
	}
	return false
}
