package parser

import (
	"fmt"
	"strconv"
	"strings"

	"rig/internal/ast"
	"rig/internal/diag"
	"rig/internal/source"
	"rig/internal/token"
)

// parsePrimary handles literals, paths, literal keywords and groups.
func (p *Parser) parsePrimary() (ast.ExprID, bool) {
	tok := p.peek()
	exprs := p.arenas.Exprs

	switch tok.Kind {
	case token.Ident:
		return p.parsePath()

	case token.StringLit:
		p.advance()
		return exprs.NewString(tok.Span, p.intern(tok.Literal)), true

	case token.NumberLit:
		p.advance()
		// лексер гарантирует корректный текст; ошибка здесь: баг, не диагностика
		if strings.Contains(tok.Lexeme, ".") {
			v, err := strconv.ParseFloat(tok.Literal, 64)
			if err != nil {
				panic(fmt.Errorf("parser: invalid float literal %q from lexer: %w", tok.Literal, err))
			}
			return exprs.NewFloat(tok.Span, v), true
		}
		v, err := strconv.ParseInt(tok.Literal, 10, 64)
		if err != nil {
			panic(fmt.Errorf("parser: invalid integer literal %q from lexer: %w", tok.Literal, err))
		}
		return exprs.NewInteger(tok.Span, v), true

	case token.Keyword:
		switch tok.Lexeme {
		case "true", "false":
			p.advance()
			return exprs.NewBool(tok.Span, tok.Lexeme == "true"), true
		case "null":
			p.advance()
			return exprs.NewNull(tok.Span), true
		case "self":
			p.advance()
			return exprs.NewSelf(tok.Span), true
		}
		p.report(diag.SynUnexpectedKeyword, diag.SevError, tok.Span,
			fmt.Sprintf("expected `true`/`false`/`null`, found `%s`", tok.Lexeme))
		return ast.NoExprID, false

	case token.LParen:
		open := p.advance()
		inner, ok := p.parseExpr()
		if !ok {
			return ast.NoExprID, false
		}
		closing, ok := p.expect(token.RParen, diag.SynExpectToken, "expected `)` after expression", "insert `)` here")
		if !ok {
			return ast.NoExprID, false
		}
		return exprs.NewGroup(open.Span.Cover(closing.Span), inner), true

	default:
		p.err(diag.SynExpectPrimary, fmt.Sprintf("expected primary expression, found `%s`", tok.Describe()))
		return ast.NoExprID, false
	}
}

// parsePath: IDENT ( "::" IDENT )*
// One segment is a Variable, two or more a Path.
func (p *Parser) parsePath() (ast.ExprID, bool) {
	first, ok := p.expect(token.Ident, diag.SynExpectToken, "expected identifier", "")
	if !ok {
		return ast.NoExprID, false
	}
	if !p.at(token.ColonColon) {
		return p.arenas.Exprs.NewVariable(first.Span, p.intern(first.Lexeme)), true
	}

	segments := []source.StringID{p.intern(first.Lexeme)}
	span := first.Span
	for p.at(token.ColonColon) {
		p.advance()
		seg, ok := p.expect(token.Ident, diag.SynExpectToken, "expected identifier after `::`", "")
		if !ok {
			return ast.NoExprID, false
		}
		segments = append(segments, p.intern(seg.Lexeme))
		span = span.Cover(seg.Span)
	}
	return p.arenas.Exprs.NewPath(span, segments), true
}
