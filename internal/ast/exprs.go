package ast

import (
	"slices"

	"rig/internal/source"
)

// Exprs manages allocation of expressions.
type Exprs struct {
	Arena     *Arena[Expr]
	Strings   *Arena[ExprStringData]
	Integers  *Arena[ExprIntegerData]
	Floats    *Arena[ExprFloatData]
	Bools     *Arena[ExprBoolData]
	Variables *Arena[ExprVariableData]
	Paths     *Arena[ExprPathData]
	Gets      *Arena[ExprGetData]
	Sets      *Arena[ExprSetData]
	Assigns   *Arena[ExprAssignData]
	Calls     *Arena[ExprCallData]
	Logicals  *Arena[ExprLogicalData]
	Binaries  *Arena[ExprBinaryData]
	Unaries   *Arena[ExprUnaryData]
	Groups    *Arena[ExprGroupData]
}

// NewExprs creates a new Exprs with per-kind arenas preallocated using capHint.
// If capHint is 0, a default capacity of 1<<8 is used.
func NewExprs(capHint uint) *Exprs {
	if capHint == 0 {
		capHint = 1 << 8
	}
	small := capHint/4 + 1
	return &Exprs{
		Arena:     NewArena[Expr](capHint),
		Strings:   NewArena[ExprStringData](small),
		Integers:  NewArena[ExprIntegerData](small),
		Floats:    NewArena[ExprFloatData](small),
		Bools:     NewArena[ExprBoolData](small),
		Variables: NewArena[ExprVariableData](capHint),
		Paths:     NewArena[ExprPathData](small),
		Gets:      NewArena[ExprGetData](small),
		Sets:      NewArena[ExprSetData](small),
		Assigns:   NewArena[ExprAssignData](small),
		Calls:     NewArena[ExprCallData](small),
		Logicals:  NewArena[ExprLogicalData](small),
		Binaries:  NewArena[ExprBinaryData](small),
		Unaries:   NewArena[ExprUnaryData](small),
		Groups:    NewArena[ExprGroupData](small),
	}
}

func (e *Exprs) new(kind ExprKind, span source.Span, payload PayloadID) ExprID {
	return ExprID(e.Arena.Allocate(Expr{
		Kind:    kind,
		Span:    span,
		Payload: payload,
	}))
}

// Get returns the expression with the given ID, or nil.
func (e *Exprs) Get(id ExprID) *Expr {
	return e.Arena.Get(uint32(id))
}

func (e *Exprs) payload(id ExprID, kind ExprKind) (uint32, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != kind {
		return 0, false
	}
	return uint32(expr.Payload), true
}

func (e *Exprs) NewString(span source.Span, value source.StringID) ExprID {
	payload := e.Strings.Allocate(ExprStringData{Value: value})
	return e.new(ExprString, span, PayloadID(payload))
}

func (e *Exprs) StringLit(id ExprID) (*ExprStringData, bool) {
	p, ok := e.payload(id, ExprString)
	if !ok {
		return nil, false
	}
	return e.Strings.Get(p), true
}

func (e *Exprs) NewInteger(span source.Span, value int64) ExprID {
	payload := e.Integers.Allocate(ExprIntegerData{Value: value})
	return e.new(ExprInteger, span, PayloadID(payload))
}

func (e *Exprs) Integer(id ExprID) (*ExprIntegerData, bool) {
	p, ok := e.payload(id, ExprInteger)
	if !ok {
		return nil, false
	}
	return e.Integers.Get(p), true
}

func (e *Exprs) NewFloat(span source.Span, value float64) ExprID {
	payload := e.Floats.Allocate(ExprFloatData{Value: value})
	return e.new(ExprFloat, span, PayloadID(payload))
}

func (e *Exprs) Float(id ExprID) (*ExprFloatData, bool) {
	p, ok := e.payload(id, ExprFloat)
	if !ok {
		return nil, false
	}
	return e.Floats.Get(p), true
}

func (e *Exprs) NewBool(span source.Span, value bool) ExprID {
	payload := e.Bools.Allocate(ExprBoolData{Value: value})
	return e.new(ExprBool, span, PayloadID(payload))
}

func (e *Exprs) Bool(id ExprID) (*ExprBoolData, bool) {
	p, ok := e.payload(id, ExprBool)
	if !ok {
		return nil, false
	}
	return e.Bools.Get(p), true
}

// NewNull and NewSelf carry no payload.
func (e *Exprs) NewNull(span source.Span) ExprID {
	return e.new(ExprNull, span, NoPayloadID)
}

func (e *Exprs) NewSelf(span source.Span) ExprID {
	return e.new(ExprSelf, span, NoPayloadID)
}

func (e *Exprs) NewVariable(span source.Span, name source.StringID) ExprID {
	payload := e.Variables.Allocate(ExprVariableData{Name: name})
	return e.new(ExprVariable, span, PayloadID(payload))
}

func (e *Exprs) Variable(id ExprID) (*ExprVariableData, bool) {
	p, ok := e.payload(id, ExprVariable)
	if !ok {
		return nil, false
	}
	return e.Variables.Get(p), true
}

// NewPath stores a copy of segments.
func (e *Exprs) NewPath(span source.Span, segments []source.StringID) ExprID {
	payload := e.Paths.Allocate(ExprPathData{Segments: slices.Clone(segments)})
	return e.new(ExprPath, span, PayloadID(payload))
}

func (e *Exprs) Path(id ExprID) (*ExprPathData, bool) {
	p, ok := e.payload(id, ExprPath)
	if !ok {
		return nil, false
	}
	return e.Paths.Get(p), true
}

func (e *Exprs) NewGet(span source.Span, object ExprID, name source.StringID) ExprID {
	payload := e.Gets.Allocate(ExprGetData{Object: object, Name: name})
	return e.new(ExprGet, span, PayloadID(payload))
}

func (e *Exprs) GetExpr(id ExprID) (*ExprGetData, bool) {
	p, ok := e.payload(id, ExprGet)
	if !ok {
		return nil, false
	}
	return e.Gets.Get(p), true
}

func (e *Exprs) NewSet(span source.Span, object ExprID, name source.StringID, value ExprID) ExprID {
	payload := e.Sets.Allocate(ExprSetData{Object: object, Name: name, Value: value})
	return e.new(ExprSet, span, PayloadID(payload))
}

func (e *Exprs) Set(id ExprID) (*ExprSetData, bool) {
	p, ok := e.payload(id, ExprSet)
	if !ok {
		return nil, false
	}
	return e.Sets.Get(p), true
}

func (e *Exprs) NewAssign(span source.Span, name source.StringID, value ExprID) ExprID {
	payload := e.Assigns.Allocate(ExprAssignData{Name: name, Value: value})
	return e.new(ExprAssign, span, PayloadID(payload))
}

func (e *Exprs) Assign(id ExprID) (*ExprAssignData, bool) {
	p, ok := e.payload(id, ExprAssign)
	if !ok {
		return nil, false
	}
	return e.Assigns.Get(p), true
}

// NewCall stores a copy of args.
func (e *Exprs) NewCall(span source.Span, callee ExprID, args []ExprID) ExprID {
	payload := e.Calls.Allocate(ExprCallData{Callee: callee, Args: slices.Clone(args)})
	return e.new(ExprCall, span, PayloadID(payload))
}

func (e *Exprs) Call(id ExprID) (*ExprCallData, bool) {
	p, ok := e.payload(id, ExprCall)
	if !ok {
		return nil, false
	}
	return e.Calls.Get(p), true
}

func (e *Exprs) NewLogical(span source.Span, op LogicalOp, left, right ExprID) ExprID {
	payload := e.Logicals.Allocate(ExprLogicalData{Op: op, Left: left, Right: right})
	return e.new(ExprLogical, span, PayloadID(payload))
}

func (e *Exprs) Logical(id ExprID) (*ExprLogicalData, bool) {
	p, ok := e.payload(id, ExprLogical)
	if !ok {
		return nil, false
	}
	return e.Logicals.Get(p), true
}

// NewBinary creates a new binary expression.
func (e *Exprs) NewBinary(span source.Span, op BinaryOp, left, right ExprID) ExprID {
	payload := e.Binaries.Allocate(ExprBinaryData{Op: op, Left: left, Right: right})
	return e.new(ExprBinary, span, PayloadID(payload))
}

// Binary returns the binary data for the given expression ID.
func (e *Exprs) Binary(id ExprID) (*ExprBinaryData, bool) {
	p, ok := e.payload(id, ExprBinary)
	if !ok {
		return nil, false
	}
	return e.Binaries.Get(p), true
}

func (e *Exprs) NewUnary(span source.Span, op UnaryOp, operand ExprID) ExprID {
	payload := e.Unaries.Allocate(ExprUnaryData{Op: op, Operand: operand})
	return e.new(ExprUnary, span, PayloadID(payload))
}

func (e *Exprs) Unary(id ExprID) (*ExprUnaryData, bool) {
	p, ok := e.payload(id, ExprUnary)
	if !ok {
		return nil, false
	}
	return e.Unaries.Get(p), true
}

func (e *Exprs) NewGroup(span source.Span, inner ExprID) ExprID {
	payload := e.Groups.Allocate(ExprGroupData{Inner: inner})
	return e.new(ExprGroup, span, PayloadID(payload))
}

func (e *Exprs) Group(id ExprID) (*ExprGroupData, bool) {
	p, ok := e.payload(id, ExprGroup)
	if !ok {
		return nil, false
	}
	return e.Groups.Get(p), true
}

// Children returns the direct sub-expressions of id in source order.
func (e *Exprs) Children(id ExprID) []ExprID {
	expr := e.Get(id)
	if expr == nil {
		return nil
	}
	switch expr.Kind {
	case ExprGet:
		d, _ := e.GetExpr(id)
		return []ExprID{d.Object}
	case ExprSet:
		d, _ := e.Set(id)
		return []ExprID{d.Object, d.Value}
	case ExprAssign:
		d, _ := e.Assign(id)
		return []ExprID{d.Value}
	case ExprCall:
		d, _ := e.Call(id)
		return append([]ExprID{d.Callee}, d.Args...)
	case ExprLogical:
		d, _ := e.Logical(id)
		return []ExprID{d.Left, d.Right}
	case ExprBinary:
		d, _ := e.Binary(id)
		return []ExprID{d.Left, d.Right}
	case ExprUnary:
		d, _ := e.Unary(id)
		return []ExprID{d.Operand}
	case ExprGroup:
		d, _ := e.Group(id)
		return []ExprID{d.Inner}
	default:
		return nil
	}
}

// Walk visits id and its descendants depth-first, parents first.
// Returning false from fn skips the children of that node.
func (e *Exprs) Walk(id ExprID, fn func(ExprID, *Expr) bool) {
	expr := e.Get(id)
	if expr == nil {
		return
	}
	if !fn(id, expr) {
		return
	}
	for _, child := range e.Children(id) {
		e.Walk(child, fn)
	}
}
