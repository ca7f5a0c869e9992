package driver

import (
	"fmt"

	"rig/internal/diag"
	"rig/internal/lexer"
	"rig/internal/source"
	"rig/internal/token"
)

type TokenizeResult struct {
	FileSet *source.FileSet
	FileID  source.FileID
	Tokens  []token.Token // всегда заканчивается EOF
	Bag     *diag.Bag
}

// Tokenize loads path and lexes it. Lexical errors are reported in Bag and
// do not make the call fail; the token stream skips the faulty input.
func Tokenize(path string, opts Options) (*TokenizeResult, error) {
	fs, id, err := loadOne(path)
	if err != nil {
		return nil, err
	}
	bag := diag.NewBag(opts.MaxDiagnostics)

	done := opts.Timer.Track("lex")
	lx := lexer.New(fs.Get(id), lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
	toks := lx.Lex()
	done(fmt.Sprintf("tokens=%d", len(toks)))

	bag.Sort()
	return &TokenizeResult{FileSet: fs, FileID: id, Tokens: toks, Bag: bag}, nil
}

// loadOne reads a single file into a fresh FileSet rooted at the working directory.
func loadOne(path string) (*source.FileSet, source.FileID, error) {
	fs := source.NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		return nil, 0, fmt.Errorf("load %s: %w", path, err)
	}
	return fs, id, nil
}
