// Package testkit holds checks shared by parser, renderer and fuzz tests.
package testkit

import (
	"fmt"
	"unicode/utf8"

	"rig/internal/ast"
	"rig/internal/source"
)

// CheckSpanInvariants verifies the spans of a parsed file:
// the file span lies inside the source text, every unit lies inside the file
// span, and every expression lies inside its parent.
func CheckSpanInvariants(b *ast.Builder, fileID ast.FileID, sf *source.File) error {
	if b == nil || sf == nil {
		return fmt.Errorf("nil builder or file")
	}
	f := b.Files.Get(fileID)
	if f == nil {
		return fmt.Errorf("file node %d not found", fileID)
	}
	if err := checkSpan(f.Span, sf); err != nil {
		return fmt.Errorf("file span: %w", err)
	}
	for i, unit := range f.Exprs {
		expr := b.Exprs.Get(unit)
		if expr == nil {
			return fmt.Errorf("unit %d: nil expression %d", i, unit)
		}
		if !within(f.Span, expr.Span) {
			return fmt.Errorf("unit %d span %v is outside file span %v", i, expr.Span, f.Span)
		}
		if err := checkTree(b.Exprs, unit, sf); err != nil {
			return fmt.Errorf("unit %d: %w", i, err)
		}
	}
	return nil
}

func checkTree(exprs *ast.Exprs, id ast.ExprID, sf *source.File) error {
	parent := exprs.Get(id)
	if err := checkSpan(parent.Span, sf); err != nil {
		return fmt.Errorf("%s %d: %w", parent.Kind, id, err)
	}
	for _, child := range exprs.Children(id) {
		c := exprs.Get(child)
		if c == nil {
			return fmt.Errorf("%s %d: nil child %d", parent.Kind, id, child)
		}
		if !within(parent.Span, c.Span) {
			return fmt.Errorf("%s %d: child span %v is outside %v", parent.Kind, id, c.Span, parent.Span)
		}
		if err := checkTree(exprs, child, sf); err != nil {
			return err
		}
	}
	return nil
}

// checkSpan: правильный файл, начало не после конца, позиции внутри текста
func checkSpan(sp source.Span, sf *source.File) error {
	if sp.File != sf.ID {
		return fmt.Errorf("span %v points to file %d, want %d", sp, sp.File, sf.ID)
	}
	if sp.End().Before(sp.Start()) {
		return fmt.Errorf("span %v is inverted", sp)
	}
	for _, pos := range []source.LineCol{sp.Start(), sp.End()} {
		if pos.Line == 0 || pos.Line > sf.LineCount() {
			return fmt.Errorf("span %v: line %d out of range 1..%d", sp, pos.Line, sf.LineCount())
		}
		width := utf8.RuneCountInString(sf.GetLine(pos.Line))
		if int(pos.Col) > width {
			return fmt.Errorf("span %v: column %d past end of line %d (%d)", sp, pos.Col, pos.Line, width)
		}
	}
	return nil
}

func within(outer, inner source.Span) bool {
	return outer.File == inner.File &&
		!inner.Start().Before(outer.Start()) &&
		!outer.End().Before(inner.End())
}
