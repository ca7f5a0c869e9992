package ast

import (
	"rig/internal/source"
)

type Hints struct{ Files, Exprs uint }

// Builder owns every arena of one parse. Strings interns identifiers and
// string literal values referenced from payloads.
type Builder struct {
	Files   *Files
	Exprs   *Exprs
	Strings *source.Interner
}

func NewBuilder(hints Hints, strings *source.Interner) *Builder {
	if hints.Files == 0 {
		hints.Files = 1 << 3
	}
	if hints.Exprs == 0 {
		hints.Exprs = 1 << 8
	}
	if strings == nil {
		strings = source.NewInterner()
	}
	return &Builder{
		Files:   NewFiles(hints.Files),
		Exprs:   NewExprs(hints.Exprs),
		Strings: strings,
	}
}

func (b *Builder) NewFile(sp source.Span) FileID {
	return b.Files.New(sp)
}

// PushExpr appends a top-level unit to file.
func (b *Builder) PushExpr(file FileID, expr ExprID) {
	f := b.Files.Get(file)
	f.Exprs = append(f.Exprs, expr)
}

// Name returns the interned text for id.
func (b *Builder) Name(id source.StringID) string {
	s, _ := b.Strings.Lookup(id)
	return s
}
