package parser

import (
	"fmt"
	"strconv"
	"strings"
	"testing"

	"rig/internal/ast"
	"rig/internal/diag"
	"rig/internal/source"
)

func diagnosticsSummary(bag *diag.Bag) string {
	if bag == nil {
		return "<nil bag>"
	}
	diags := bag.Items()
	if len(diags) == 0 {
		return "<none>"
	}
	lines := make([]string, len(diags))
	for i, d := range diags {
		lines[i] = fmt.Sprintf("[%s] %s", d.Code.ID(), d.Message)
	}
	return strings.Join(lines, "; ")
}

// parseSource прогоняет лексер и парсер над виртуальным файлом
func parseSource(t *testing.T, input string, maxErrors uint) (*ast.Builder, Result) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.rig", []byte(input))
	bag := diag.NewBag(0)
	arenas := ast.NewBuilder(ast.Hints{}, nil)
	res := ParseFile(fs, id, arenas, Options{
		MaxErrors: maxErrors,
		Reporter:  diag.BagReporter{Bag: bag},
	})
	return arenas, res
}

// parseOne expects exactly one unit and no diagnostics.
func parseOne(t *testing.T, input string) (*ast.Builder, ast.ExprID) {
	t.Helper()
	arenas, res := parseSource(t, input, 0)
	if res.Bag.Len() != 0 {
		t.Fatalf("%q: unexpected diagnostics: %s", input, diagnosticsSummary(res.Bag))
	}
	units := arenas.Files.Get(res.File).Exprs
	if len(units) != 1 {
		t.Fatalf("%q: got %d units, want 1", input, len(units))
	}
	return arenas, units[0]
}

// sexpr renders an expression as a compact s-expression for shape checks.
func sexpr(b *ast.Builder, id ast.ExprID) string {
	exprs := b.Exprs
	expr := exprs.Get(id)
	switch expr.Kind {
	case ast.ExprString:
		v, _ := exprs.StringLit(id)
		return strconv.Quote(b.Name(v.Value))
	case ast.ExprInteger:
		v, _ := exprs.Integer(id)
		return strconv.FormatInt(v.Value, 10)
	case ast.ExprFloat:
		v, _ := exprs.Float(id)
		return strconv.FormatFloat(v.Value, 'g', -1, 64)
	case ast.ExprBool:
		v, _ := exprs.Bool(id)
		return strconv.FormatBool(v.Value)
	case ast.ExprNull:
		return "null"
	case ast.ExprSelf:
		return "self"
	case ast.ExprVariable:
		v, _ := exprs.Variable(id)
		return b.Name(v.Name)
	case ast.ExprPath:
		v, _ := exprs.Path(id)
		segs := make([]string, len(v.Segments))
		for i, s := range v.Segments {
			segs[i] = b.Name(s)
		}
		return strings.Join(segs, "::")
	case ast.ExprGet:
		v, _ := exprs.GetExpr(id)
		return fmt.Sprintf("(get %s %s)", sexpr(b, v.Object), b.Name(v.Name))
	case ast.ExprSet:
		v, _ := exprs.Set(id)
		return fmt.Sprintf("(set %s %s %s)", sexpr(b, v.Object), b.Name(v.Name), sexpr(b, v.Value))
	case ast.ExprAssign:
		v, _ := exprs.Assign(id)
		return fmt.Sprintf("(= %s %s)", b.Name(v.Name), sexpr(b, v.Value))
	case ast.ExprCall:
		v, _ := exprs.Call(id)
		parts := []string{"call", sexpr(b, v.Callee)}
		for _, a := range v.Args {
			parts = append(parts, sexpr(b, a))
		}
		return "(" + strings.Join(parts, " ") + ")"
	case ast.ExprLogical:
		v, _ := exprs.Logical(id)
		return fmt.Sprintf("(%s %s %s)", v.Op, sexpr(b, v.Left), sexpr(b, v.Right))
	case ast.ExprBinary:
		v, _ := exprs.Binary(id)
		return fmt.Sprintf("(%s %s %s)", v.Op, sexpr(b, v.Left), sexpr(b, v.Right))
	case ast.ExprUnary:
		v, _ := exprs.Unary(id)
		return fmt.Sprintf("(%s %s)", v.Op, sexpr(b, v.Operand))
	case ast.ExprGroup:
		v, _ := exprs.Group(id)
		return fmt.Sprintf("(group %s)", sexpr(b, v.Inner))
	}
	return "?"
}
