package parser

import (
	"rig/internal/ast"
	"rig/internal/diag"
	"rig/internal/token"
)

// parseExpr - главная точка входа для парсинга выражений
// Возвращает ExprID и флаг успеха
func (p *Parser) parseExpr() (ast.ExprID, bool) {
	return p.parseAssignment()
}

// parseAssignment: logical_or ( "=" expr )?
// Only a Get (rewritten to Set) or a Variable (rewritten to Assign) may
// stand on the left.
func (p *Parser) parseAssignment() (ast.ExprID, bool) {
	target, ok := p.parseLevel(0)
	if !ok || !p.at(token.Assign) {
		return target, ok
	}
	eq := p.advance()
	value, ok := p.parseExpr()
	if !ok {
		return ast.NoExprID, false
	}

	span := p.spanOf(target).Cover(p.spanOf(value))
	exprs := p.arenas.Exprs
	if get, isGet := exprs.GetExpr(target); isGet {
		return exprs.NewSet(span, get.Object, get.Name, value), true
	}
	if v, isVar := exprs.Variable(target); isVar {
		return exprs.NewAssign(span, v.Name, value), true
	}
	p.report(diag.SynInvalidAssignment, diag.SevError, eq.Span,
		"invalid assignment, expected property or a variable as lvalue")
	return ast.NoExprID, false
}

// parseLevel parses precedence level i of the levels table.
//
// The right operand of every level is parsed from the very top of the
// grammar (parseExpr), not from the same or a tighter level. The first
// operator met while descending becomes the outermost node and everything
// after it is its right operand: `a * b + c` is `a * (b + c)` and
// `a - b - c` is `a - (b - c)`. Callers and tests rely on this shape.
func (p *Parser) parseLevel(i int) (ast.ExprID, bool) {
	if i == len(levels) {
		return p.parseUnary()
	}
	left, ok := p.parseLevel(i + 1)
	if !ok {
		return ast.NoExprID, false
	}
	op, matched := levels[i][p.peek().Kind]
	if !matched {
		return left, true
	}
	p.advance()
	right, ok := p.parseExpr()
	if !ok {
		return ast.NoExprID, false
	}

	span := p.spanOf(left).Cover(p.spanOf(right))
	if op.logical {
		return p.arenas.Exprs.NewLogical(span, op.lop, left, right), true
	}
	return p.arenas.Exprs.NewBinary(span, op.bop, left, right), true
}

// parseUnary: ("-" | "!") expr | call
// The operand also re-enters parseExpr, so `-a + b` is `-(a + b)`.
func (p *Parser) parseUnary() (ast.ExprID, bool) {
	op, ok := unaryOpFor(p.peek().Kind)
	if !ok {
		return p.parseCall()
	}
	opTok := p.advance()
	operand, ok := p.parseExpr()
	if !ok {
		return ast.NoExprID, false
	}
	return p.arenas.Exprs.NewUnary(opTok.Span.Cover(p.spanOf(operand)), op, operand), true
}
