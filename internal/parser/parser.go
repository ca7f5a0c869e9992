package parser

import (
	"slices"

	"rig/internal/ast"
	"rig/internal/diag"
	"rig/internal/lexer"
	"rig/internal/source"
	"rig/internal/token"
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
	File ast.FileID
	Bag  *diag.Bag
}

// Parser: состояние парсера на один поток токенов
type Parser struct {
	toks     []token.Token // всегда заканчивается EOF
	pos      int
	arenas   *ast.Builder
	file     ast.FileID
	opts     Options
	lastSpan source.Span // span последнего съеденного токена для лучшей диагностики
}

// New prepares a parser over tokens. A stream without a trailing EOF gets one.
func New(tokens []token.Token, arenas *ast.Builder, opts Options) *Parser {
	if len(tokens) == 0 || tokens[len(tokens)-1].Kind != token.EOF {
		var eof source.Span
		if len(tokens) > 0 {
			last := tokens[len(tokens)-1].Span
			eof = source.PointSpan(last.File, last.EndLine, last.EndCol)
		}
		tokens = append(slices.Clip(tokens), token.Token{Kind: token.EOF, Span: eof})
	}
	return &Parser{
		toks:     tokens,
		arenas:   arenas,
		opts:     opts,
		lastSpan: tokens[0].Span,
	}
}

// Parse consumes the whole stream. Each top-level unit is one expression,
// optionally terminated by `;`. A unit that fails is skipped up to the next
// `;` and parsing goes on, so every unit gets a chance to report.
func (p *Parser) Parse() Result {
	p.file = p.arenas.NewFile(p.peek().Span)
	p.parseUnits()
	return Result{
		File: p.file,
		Bag:  bagOf(p.opts.Reporter),
	}
}

// ParseTokens is New(...).Parse().
func ParseTokens(tokens []token.Token, arenas *ast.Builder, opts Options) Result {
	return New(tokens, arenas, opts).Parse()
}

// ParseFile lexes and parses one file of fs. Lexical errors go to the same
// reporter; when there are any the parser is not run and the file is empty.
func ParseFile(fs *source.FileSet, id source.FileID, arenas *ast.Builder, opts Options) Result {
	lx := lexer.New(fs.Get(id), lexer.Options{Reporter: opts.Reporter})
	tokens := lx.Lex()
	if lx.ErrorCount() > 0 {
		return Result{
			File: arenas.NewFile(tokens[len(tokens)-1].Span),
			Bag:  bagOf(opts.Reporter),
		}
	}
	return ParseTokens(tokens, arenas, opts)
}

func bagOf(r diag.Reporter) *diag.Bag {
	switch br := r.(type) {
	case diag.BagReporter:
		return br.Bag
	case *diag.BagReporter:
		return br.Bag
	}
	return nil
}

func (p *Parser) peek() token.Token {
	return p.toks[p.pos]
}

func (p *Parser) at(k token.Kind) bool {
	return p.peek().Kind == k
}

func (p *Parser) at_or(kinds ...token.Kind) bool {
	return slices.Contains(kinds, p.peek().Kind)
}

func (p *Parser) IsError() bool {
	return p.opts.CurrentErrors != 0
}

// parseUnits: основной цикл верхнего уровня: пока не EOF: parseExpr.
func (p *Parser) parseUnits() {
	startSpan := p.peek().Span
	for !p.at(token.EOF) && !p.opts.Enough() {
		// пустые юниты `;;` пропускаем молча
		if p.at(token.Semicolon) {
			p.advance()
			continue
		}
		start := p.pos
		expr, ok := p.parseExpr()
		if !ok {
			p.resyncTop(start)
			continue
		}
		p.arenas.PushExpr(p.file, expr)
		if p.at(token.Semicolon) {
			p.advance()
		}
	}
	p.arenas.Files.Get(p.file).Span = startSpan.Cover(p.peek().Span)
}

// resyncTop: восстановление после ошибки: прокручиваем до ';' включительно
// или до EOF. Хотя бы один токен съедается всегда.
func (p *Parser) resyncTop(start int) {
	for !p.at_or(token.Semicolon, token.EOF) {
		p.advance()
	}
	if p.at(token.Semicolon) {
		p.advance()
		return
	}
	if p.pos == start && !p.at(token.EOF) {
		p.advance()
	}
}
