package driver

import (
	"fmt"

	"rig/internal/ast"
	"rig/internal/diag"
	"rig/internal/parser"
	"rig/internal/source"
)

type ParseResult struct {
	FileSet *source.FileSet
	FileID  source.FileID
	Builder *ast.Builder
	ASTFile ast.FileID
	Bag     *diag.Bag
}

// Parse loads, lexes and parses path. With lexical errors the AST file is
// empty; with syntax errors it holds every unit that parsed.
func Parse(path string, opts Options) (*ParseResult, error) {
	fs, id, err := loadOne(path)
	if err != nil {
		return nil, err
	}
	bag := diag.NewBag(opts.MaxDiagnostics)
	builder := ast.NewBuilder(ast.Hints{}, nil)

	done := opts.Timer.Track("parse")
	res := parser.ParseFile(fs, id, builder, parser.Options{
		Reporter: diag.BagReporter{Bag: bag},
	})
	done(fmt.Sprintf("units=%d", len(builder.Files.Get(res.File).Exprs)))

	bag.Sort()
	return &ParseResult{
		FileSet: fs,
		FileID:  id,
		Builder: builder,
		ASTFile: res.File,
		Bag:     bag,
	}, nil
}
