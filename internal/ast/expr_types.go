package ast

import (
	"rig/internal/source"
)

// ExprKind is the closed set of expression variants. Consumers switch over it exhaustively.
type ExprKind uint8

const (
	// Литералы
	ExprString ExprKind = iota
	ExprInteger
	ExprFloat
	ExprBool
	ExprNull
	ExprSelf

	// ExprVariable is a single identifier.
	ExprVariable
	// ExprPath is two or more identifiers joined by `::`.
	ExprPath
	// ExprGet is `object.name`.
	ExprGet
	// ExprSet is `object.name = value`.
	ExprSet
	// ExprAssign is `name = value`.
	ExprAssign
	ExprCall
	// ExprLogical covers `||`, `&&` and the comparison operators.
	ExprLogical
	// ExprBinary covers arithmetic, bitwise and shift operators.
	ExprBinary
	ExprUnary
	ExprGroup
)

var exprKindNames = [...]string{
	ExprString:   "String",
	ExprInteger:  "Integer",
	ExprFloat:    "Float",
	ExprBool:     "Bool",
	ExprNull:     "Null",
	ExprSelf:     "Self",
	ExprVariable: "Variable",
	ExprPath:     "Path",
	ExprGet:      "Get",
	ExprSet:      "Set",
	ExprAssign:   "Assign",
	ExprCall:     "Call",
	ExprLogical:  "Logical",
	ExprBinary:   "Binary",
	ExprUnary:    "Unary",
	ExprGroup:    "Group",
}

func (k ExprKind) String() string {
	if int(k) < len(exprKindNames) {
		return exprKindNames[k]
	}
	return "Unknown"
}

// Expr represents an expression node in the AST.
type Expr struct {
	Kind    ExprKind
	Span    source.Span
	Payload PayloadID
}

// BinaryOp enumerates arithmetic, bitwise and shift operators.
type BinaryOp uint8

const (
	// Арифметические
	BinaryAdd BinaryOp = iota
	BinarySub
	BinaryMul
	BinaryDiv
	BinaryMod

	// Битовые
	BinaryBitAnd
	BinaryBitOr
	BinaryBitXor
	BinaryShl
	BinaryShr
)

var binaryOpText = [...]string{
	BinaryAdd:    "+",
	BinarySub:    "-",
	BinaryMul:    "*",
	BinaryDiv:    "/",
	BinaryMod:    "%",
	BinaryBitAnd: "&",
	BinaryBitOr:  "|",
	BinaryBitXor: "^",
	BinaryShl:    "<<",
	BinaryShr:    ">>",
}

func (op BinaryOp) String() string {
	if int(op) < len(binaryOpText) {
		return binaryOpText[op]
	}
	return "?"
}

// LogicalOp enumerates short-circuit and comparison operators.
type LogicalOp uint8

const (
	LogicalOr LogicalOp = iota
	LogicalAnd
	LogicalEq
	LogicalNotEq
	LogicalLess
	LogicalLessEq
	LogicalGreater
	LogicalGreaterEq
)

var logicalOpText = [...]string{
	LogicalOr:        "||",
	LogicalAnd:       "&&",
	LogicalEq:        "==",
	LogicalNotEq:     "!=",
	LogicalLess:      "<",
	LogicalLessEq:    "<=",
	LogicalGreater:   ">",
	LogicalGreaterEq: ">=",
}

func (op LogicalOp) String() string {
	if int(op) < len(logicalOpText) {
		return logicalOpText[op]
	}
	return "?"
}

// IsComparison reports whether op compares values rather than combining booleans.
func (op LogicalOp) IsComparison() bool {
	return op >= LogicalEq
}

type UnaryOp uint8

const (
	UnaryNeg UnaryOp = iota // -
	UnaryNot                // !
)

func (op UnaryOp) String() string {
	switch op {
	case UnaryNeg:
		return "-"
	case UnaryNot:
		return "!"
	}
	return "?"
}

type ExprStringData struct {
	Value source.StringID
}

type ExprIntegerData struct {
	Value int64
}

type ExprFloatData struct {
	Value float64
}

type ExprBoolData struct {
	Value bool
}

type ExprVariableData struct {
	Name source.StringID
}

type ExprPathData struct {
	Segments []source.StringID
}

type ExprGetData struct {
	Object ExprID
	Name   source.StringID
}

type ExprSetData struct {
	Object ExprID
	Name   source.StringID
	Value  ExprID
}

type ExprAssignData struct {
	Name  source.StringID
	Value ExprID
}

type ExprCallData struct {
	Callee ExprID
	Args   []ExprID
}

type ExprLogicalData struct {
	Op    LogicalOp
	Left  ExprID
	Right ExprID
}

type ExprBinaryData struct {
	Op    BinaryOp
	Left  ExprID
	Right ExprID
}

type ExprUnaryData struct {
	Op      UnaryOp
	Operand ExprID
}

type ExprGroupData struct {
	Inner ExprID
}
