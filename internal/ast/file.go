package ast

import (
	"rig/internal/source"
)

// File is the result of parsing one source file: its top-level units in order.
type File struct {
	Span  source.Span
	Exprs []ExprID
}

type Files struct {
	Arena *Arena[File]
}

func NewFiles(capHint uint) *Files {
	return &Files{
		Arena: NewArena[File](capHint),
	}
}

func (f *Files) New(sp source.Span) FileID {
	return FileID(f.Arena.Allocate(File{
		Span:  sp,
		Exprs: make([]ExprID, 0),
	}))
}

func (f *Files) Get(id FileID) *File {
	return f.Arena.Get(uint32(id))
}
