package diagfmt

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"rig/internal/ast"
)

// RenderExpr prints id back as source text, prefixed with indent levels of
// four spaces. Groups keep their parentheses, so the output parses to the same tree.
func RenderExpr(builder *ast.Builder, id ast.ExprID, indent int) string {
	var sb strings.Builder
	sb.WriteString(strings.Repeat("    ", max(indent, 0)))
	renderExpr(&sb, builder, id)
	return sb.String()
}

// FormatSource prints every unit of fileID on its own line, terminated by `;`.
func FormatSource(w io.Writer, builder *ast.Builder, fileID ast.FileID) error {
	file := builder.Files.Get(fileID)
	if file == nil {
		return fmt.Errorf("file %d not found", fileID)
	}
	for _, id := range file.Exprs {
		if _, err := fmt.Fprintf(w, "%s;\n", RenderExpr(builder, id, 0)); err != nil {
			return err
		}
	}
	return nil
}

func renderExpr(sb *strings.Builder, builder *ast.Builder, id ast.ExprID) {
	exprs := builder.Exprs
	expr := exprs.Get(id)
	if expr == nil {
		sb.WriteString("<nil>")
		return
	}
	switch expr.Kind {
	case ast.ExprString:
		d, _ := exprs.StringLit(id)
		sb.WriteString(quoteString(builder.Name(d.Value)))
	case ast.ExprInteger, ast.ExprFloat, ast.ExprBool, ast.ExprVariable, ast.ExprPath:
		_, text := exprDetails(builder, id, expr.Kind)
		sb.WriteString(text)
	case ast.ExprNull:
		sb.WriteString("null")
	case ast.ExprSelf:
		sb.WriteString("self")
	case ast.ExprGet:
		d, _ := exprs.GetExpr(id)
		renderExpr(sb, builder, d.Object)
		sb.WriteByte('.')
		sb.WriteString(builder.Name(d.Name))
	case ast.ExprSet:
		d, _ := exprs.Set(id)
		renderExpr(sb, builder, d.Object)
		sb.WriteByte('.')
		sb.WriteString(builder.Name(d.Name))
		sb.WriteString(" = ")
		renderExpr(sb, builder, d.Value)
	case ast.ExprAssign:
		d, _ := exprs.Assign(id)
		sb.WriteString(builder.Name(d.Name))
		sb.WriteString(" = ")
		renderExpr(sb, builder, d.Value)
	case ast.ExprCall:
		d, _ := exprs.Call(id)
		renderExpr(sb, builder, d.Callee)
		sb.WriteByte('(')
		for i, arg := range d.Args {
			if i > 0 {
				sb.WriteString(", ")
			}
			renderExpr(sb, builder, arg)
		}
		sb.WriteByte(')')
	case ast.ExprLogical:
		d, _ := exprs.Logical(id)
		renderInfix(sb, builder, d.Left, d.Op.String(), d.Right)
	case ast.ExprBinary:
		d, _ := exprs.Binary(id)
		renderInfix(sb, builder, d.Left, d.Op.String(), d.Right)
	case ast.ExprUnary:
		d, _ := exprs.Unary(id)
		sb.WriteString(d.Op.String())
		renderExpr(sb, builder, d.Operand)
	case ast.ExprGroup:
		d, _ := exprs.Group(id)
		sb.WriteByte('(')
		renderExpr(sb, builder, d.Inner)
		sb.WriteByte(')')
	}
}

func renderInfix(sb *strings.Builder, builder *ast.Builder, left ast.ExprID, op string, right ast.ExprID) {
	renderExpr(sb, builder, left)
	sb.WriteByte(' ')
	sb.WriteString(op)
	sb.WriteByte(' ')
	renderExpr(sb, builder, right)
}

// quoteString is the inverse of the lexer's escape decoding.
func quoteString(s string) string {
	var sb strings.Builder
	sb.Grow(len(s) + 2)
	sb.WriteByte('"')
	for _, r := range s {
		switch r {
		case '\n':
			sb.WriteString(`\n`)
		case '\t':
			sb.WriteString(`\t`)
		case '\r':
			sb.WriteString(`\r`)
		case 0:
			sb.WriteString(`\0`)
		case '\\':
			sb.WriteString(`\\`)
		case '"':
			sb.WriteString(`\"`)
		default:
			sb.WriteRune(r)
		}
	}
	sb.WriteByte('"')
	return sb.String()
}

// formatFloat always keeps a decimal point so the text lexes as a float again.
func formatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
