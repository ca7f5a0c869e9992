package diagfmt

import (
	"testing"

	"rig/internal/ast"
	"rig/internal/diag"
	"rig/internal/lexer"
	"rig/internal/parser"
	"rig/internal/source"
	"rig/internal/token"
)

type fixture struct {
	fs      *source.FileSet
	file    source.FileID
	bag     *diag.Bag
	builder *ast.Builder
	astFile ast.FileID
}

func parseFixture(t *testing.T, name, input string) fixture {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual(name, []byte(input))
	bag := diag.NewBag(0)
	builder := ast.NewBuilder(ast.Hints{}, nil)
	res := parser.ParseFile(fs, id, builder, parser.Options{Reporter: diag.BagReporter{Bag: bag}})
	return fixture{fs: fs, file: id, bag: bag, builder: builder, astFile: res.File}
}

func lexFixture(t *testing.T, input string) []token.Token {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("tokens.rig", []byte(input))
	return lexer.New(fs.Get(id), lexer.Options{Reporter: diag.NopReporter{}}).Lex()
}
