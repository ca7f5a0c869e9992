package driver

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"fortio.org/safecast"

	"rig/internal/ast"
	"rig/internal/diag"
	"rig/internal/lexer"
	"rig/internal/parser"
	"rig/internal/sema"
	"rig/internal/source"
	"rig/internal/trace"
)

// DiagnoseResult is the outcome of the full pipeline for one file.
type DiagnoseResult struct {
	Path    string // как показывать файл пользователю
	FileSet *source.FileSet
	FileID  source.FileID
	Builder *ast.Builder // nil, если до парсера не дошли
	ASTFile ast.FileID
	Bag     *diag.Bag
	// Stage is the last stage that ran; later stages were gated by errors.
	Stage Stage
}

func (r *DiagnoseResult) HasErrors() bool {
	return r != nil && r.Bag != nil && r.Bag.HasErrors()
}

// Diagnose runs lex → parse → sema over path. A stage runs only when the
// previous one produced no errors; warnings never gate.
func Diagnose(ctx context.Context, path string, opts Options) (*DiagnoseResult, error) {
	fs, id, err := loadOne(path)
	if err != nil {
		trace.Error(trace.FromContext(ctx), trace.ScopePass, "load", err, trace.ParentID(ctx))
		return nil, err
	}
	res := &DiagnoseResult{
		Path:    path,
		FileSet: fs,
		FileID:  id,
		Bag:     diag.NewBag(opts.MaxDiagnostics),
	}
	runPipeline(ctx, res, opts)
	return res, nil
}

// runPipeline fills res. fs is only read here, so workers may share it.
func runPipeline(ctx context.Context, res *DiagnoseResult, opts Options) {
	started := time.Now()
	file := res.FileSet.Get(res.FileID)
	rep := diag.NewDedupReporter(diag.BagReporter{Bag: res.Bag})

	finish := func() {
		res.Bag.Sort()
		status := StatusDone
		if res.Bag.HasErrors() {
			status = StatusError
		}
		emit(opts.Progress, res.Path, res.Stage, status, time.Since(started))
	}
	defer finish()

	// lex
	res.Stage = StageLex
	emit(opts.Progress, res.Path, StageLex, StatusWorking, 0)
	_, lexSpan := trace.BeginCtx(ctx, trace.ScopePass, "lex")
	lexDone := opts.Timer.Track("lex")
	lx := lexer.New(file, lexer.Options{Reporter: rep})
	toks := lx.Lex()
	lexDone(fmt.Sprintf("tokens=%d", len(toks)))
	lexSpan.WithExtra("tokens", strconv.Itoa(len(toks))).
		WithExtra("errors", strconv.Itoa(lx.ErrorCount())).
		End("")
	if lx.ErrorCount() > 0 {
		return
	}

	// parse
	res.Stage = StageParse
	emit(opts.Progress, res.Path, StageParse, StatusWorking, 0)
	_, parseSpan := trace.BeginCtx(ctx, trace.ScopePass, "parse")
	parseDone := opts.Timer.Track("parse")
	res.Builder = ast.NewBuilder(ast.Hints{Exprs: exprHint(len(toks))}, nil)
	// парсер без своего лимита: всё сверх MaxDiagnostics уходит в Bag.Dropped
	p := parser.New(toks, res.Builder, parser.Options{Reporter: rep})
	res.ASTFile = p.Parse().File
	units := len(res.Builder.Files.Get(res.ASTFile).Exprs)
	parseDone(fmt.Sprintf("units=%d", units))
	parseSpan.WithExtra("units", strconv.Itoa(units)).End("")
	if p.IsError() {
		return
	}

	// sema
	res.Stage = StageSema
	emit(opts.Progress, res.Path, StageSema, StatusWorking, 0)
	_, semaSpan := trace.BeginCtx(ctx, trace.ScopePass, "sema")
	semaDone := opts.Timer.Track("sema")
	sema.Analyze(res.Builder, res.ASTFile, rep)
	semaDone("")
	semaSpan.End("")
}

// exprHint: грубая оценка числа узлов: примерно один на токен
func exprHint(tokens int) uint {
	n, err := safecast.Conv[uint](tokens)
	if err != nil {
		return 0
	}
	return n
}
