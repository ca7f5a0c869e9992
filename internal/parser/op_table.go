package parser

import (
	"rig/internal/ast"
	"rig/internal/token"
)

// operator is what a precedence level builds when it sees its token.
type operator struct {
	logical bool
	lop     ast.LogicalOp
	bop     ast.BinaryOp
}

func logicalOp(op ast.LogicalOp) operator { return operator{logical: true, lop: op} }
func binaryOp(op ast.BinaryOp) operator   { return operator{bop: op} }

// levels is the precedence chain below assignment, loosest first.
// Level i parses level i+1 for its left operand; the last level hands over to unary.
var levels = [...]map[token.Kind]operator{
	// logical_or
	{token.OrOr: logicalOp(ast.LogicalOr)},
	// logical_and
	{token.AndAnd: logicalOp(ast.LogicalAnd)},
	// equality
	{
		token.EqEq:   logicalOp(ast.LogicalEq),
		token.BangEq: logicalOp(ast.LogicalNotEq),
	},
	// comparison
	{
		token.Lt:   logicalOp(ast.LogicalLess),
		token.LtEq: logicalOp(ast.LogicalLessEq),
		token.Gt:   logicalOp(ast.LogicalGreater),
		token.GtEq: logicalOp(ast.LogicalGreaterEq),
	},
	// bitwise_or
	{token.Pipe: binaryOp(ast.BinaryBitOr)},
	// bitwise_xor
	{token.Caret: binaryOp(ast.BinaryBitXor)},
	// bitwise_and
	{token.Amp: binaryOp(ast.BinaryBitAnd)},
	// bitwise_shift
	{
		token.Shl: binaryOp(ast.BinaryShl),
		token.Shr: binaryOp(ast.BinaryShr),
	},
	// term
	{
		token.Plus:  binaryOp(ast.BinaryAdd),
		token.Minus: binaryOp(ast.BinarySub),
	},
	// factor
	{
		token.Star:    binaryOp(ast.BinaryMul),
		token.Slash:   binaryOp(ast.BinaryDiv),
		token.Percent: binaryOp(ast.BinaryMod),
	},
}

func unaryOpFor(k token.Kind) (ast.UnaryOp, bool) {
	switch k {
	case token.Minus:
		return ast.UnaryNeg, true
	case token.Bang:
		return ast.UnaryNot, true
	}
	return 0, false
}
