package sema

import (
	"fmt"

	"rig/internal/ast"
	"rig/internal/diag"
	"rig/internal/source"
)

// Analyze walks every unit of fileID and reports suspicious but legal code
// as warnings. It never reports errors and never changes the tree.
func Analyze(builder *ast.Builder, fileID ast.FileID, reporter diag.Reporter) {
	if builder == nil || reporter == nil || fileID == ast.NoFileID {
		return
	}
	file := builder.Files.Get(fileID)
	if file == nil {
		return
	}
	a := analyzer{builder: builder, exprs: builder.Exprs, reporter: reporter}
	for _, unit := range file.Exprs {
		builder.Exprs.Walk(unit, a.visit)
	}
}

type analyzer struct {
	builder  *ast.Builder
	exprs    *ast.Exprs
	reporter diag.Reporter
}

func (a *analyzer) visit(id ast.ExprID, expr *ast.Expr) bool {
	switch expr.Kind {
	case ast.ExprAssign:
		a.checkSelfAssign(id, expr.Span)
	case ast.ExprBinary:
		a.checkDivByZero(id)
	case ast.ExprLogical:
		a.checkSelfCompare(id, expr.Span)
	}
	return true
}

func (a *analyzer) checkSelfAssign(id ast.ExprID, span source.Span) {
	data, _ := a.exprs.Assign(id)
	v, ok := a.exprs.Variable(a.unwrap(data.Value))
	if !ok || v.Name != data.Name {
		return
	}
	name := a.builder.Name(data.Name)
	diag.ReportWarning(a.reporter, diag.SemaSelfAssign, span,
		fmt.Sprintf("assignment of `%s` to itself has no effect", name)).
		WithHint(span, "remove this assignment").
		Emit()
}

func (a *analyzer) checkDivByZero(id ast.ExprID) {
	data, _ := a.exprs.Binary(id)
	var what string
	switch data.Op {
	case ast.BinaryDiv:
		what = "division"
	case ast.BinaryMod:
		what = "modulo"
	default:
		return
	}
	rhs := a.unwrap(data.Right)
	lit, ok := a.exprs.Integer(rhs)
	if !ok || lit.Value != 0 {
		return
	}
	diag.ReportWarning(a.reporter, diag.SemaDivByZero, a.exprs.Get(rhs).Span,
		what+" by zero").
		WithNote(a.exprs.Get(id).Span, "this operation will fail at runtime").
		Emit()
}

func (a *analyzer) checkSelfCompare(id ast.ExprID, span source.Span) {
	data, _ := a.exprs.Logical(id)
	if !data.Op.IsComparison() {
		return
	}
	l, okL := a.exprs.Variable(a.unwrap(data.Left))
	r, okR := a.exprs.Variable(a.unwrap(data.Right))
	if !okL || !okR || l.Name != r.Name {
		return
	}
	// x == x, x <= x, x >= x всегда истинны; остальные всегда ложны
	result := "false"
	switch data.Op {
	case ast.LogicalEq, ast.LogicalLessEq, ast.LogicalGreaterEq:
		result = "true"
	}
	diag.ReportWarning(a.reporter, diag.SemaSelfCompare, span,
		fmt.Sprintf("comparison of `%s` with itself is always %s", a.builder.Name(l.Name), result)).
		Emit()
}

// unwrap strips redundant parentheses.
func (a *analyzer) unwrap(id ast.ExprID) ast.ExprID {
	for {
		g, ok := a.exprs.Group(id)
		if !ok {
			return id
		}
		id = g.Inner
	}
}
