package parser

import (
	"rig/internal/ast"
	"rig/internal/diag"
	"rig/internal/token"
)

// parseCall: primary ( "(" arguments? ")" | "." IDENT )*
// Both suffixes associate to the left: `a.b().c` is Get(Call(Get(a, b)), c).
func (p *Parser) parseCall() (ast.ExprID, bool) {
	expr, ok := p.parsePrimary()
	if !ok {
		return ast.NoExprID, false
	}
	start := p.spanOf(expr)

	for {
		switch p.peek().Kind {
		case token.LParen:
			open := p.advance()
			args, ok := p.parseArguments()
			if !ok {
				return ast.NoExprID, false
			}
			if p.at(token.RParen) {
				p.advance()
			} else {
				// мягкое восстановление: вызов всё равно строим
				sp := p.peek().Span
				p.emit(diag.ReportError(p.opts.Reporter, diag.SynUnclosedParen, sp, "expected `)` after argument list").
					WithHint(sp, "insert `)` here").
					WithNote(open.Span, "call opened here"))
			}
			expr = p.arenas.Exprs.NewCall(start.Cover(p.lastSpan), expr, args)

		case token.Dot:
			p.advance()
			name, ok := p.expect(token.Ident, diag.SynExpectToken, "expected identifier after `.`", "")
			if !ok {
				return ast.NoExprID, false
			}
			expr = p.arenas.Exprs.NewGet(start.Cover(name.Span), expr, p.intern(name.Lexeme))

		default:
			return expr, true
		}
	}
}

// parseArguments: ( expr ( "," expr )* )?
func (p *Parser) parseArguments() ([]ast.ExprID, bool) {
	if p.at(token.RParen) {
		return nil, true
	}
	args := make([]ast.ExprID, 0, 4)
	for {
		arg, ok := p.parseExpr()
		if !ok {
			return nil, false
		}
		args = append(args, arg)
		if !p.at(token.Comma) {
			return args, true
		}
		p.advance()
	}
}
