package driver

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"runtime"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"

	"rig/internal/diag"
	"rig/internal/source"
	"rig/internal/trace"
)

// DirResult holds one DiagnoseResult per file, sorted by path. All results
// share FileSet, so their spans can be rendered together.
type DirResult struct {
	FileSet *source.FileSet
	Files   []DiagnoseResult
}

func (d *DirResult) HasErrors() bool {
	for i := range d.Files {
		if d.Files[i].HasErrors() {
			return true
		}
	}
	return false
}

// Bag merges the per-file bags in path order into a bag of at most max items.
// Diagnostics over the limit, and those each file bag already dropped, are
// counted in Dropped.
func (d *DirResult) Bag(max int) *diag.Bag {
	out := diag.NewBag(max)
	for i := range d.Files {
		out.Merge(d.Files[i].Bag)
	}
	return out
}

// ListFiles returns every file under dir with extension ext, sorted.
func ListFiles(dir, ext string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ext) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", dir, err)
	}
	slices.Sort(files)
	return files, nil
}

// DiagnoseDir checks every source file under dir concurrently, at most
// opts.Jobs at a time. Files that cannot be read get an IOLoadFileError
// diagnostic instead of failing the run; only cancellation of ctx and
// walk errors are returned as errors.
func DiagnoseDir(ctx context.Context, dir string, opts Options) (*DirResult, error) {
	paths, err := ListFiles(dir, opts.extension())
	if err != nil {
		return nil, err
	}

	// FileSet не потокобезопасен: всё грузим заранее, воркеры только читают
	fileSet := source.NewFileSetWithBase(dir)
	results := make([]DiagnoseResult, len(paths))
	loadErrs := make([]error, len(paths))
	for i, path := range paths {
		rel := displayPath(dir, path)
		results[i] = DiagnoseResult{Path: rel, FileSet: fileSet, Bag: diag.NewBag(opts.MaxDiagnostics)}
		loadDone := opts.Timer.Track("load")
		id, err := fileSet.Load(path)
		loadDone("")
		if err != nil {
			id = fileSet.AddVirtual(path, nil)
			loadErrs[i] = err
		}
		results[i].FileID = id
		emit(opts.Progress, rel, StageLoad, StatusQueued, 0)
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, min(jobs, len(paths))))
	for i := range results {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res := &results[i]
			mctx, span := trace.BeginCtx(gctx, trace.ScopeModule, "file:"+res.Path)
			defer func() { span.End(string(res.Stage)) }()

			if loadErrs[i] != nil {
				res.Stage = StageLoad
				diag.ReportError(diag.BagReporter{Bag: res.Bag}, diag.IOLoadFileError,
					source.PointSpan(res.FileID, 1, 0), fmt.Sprintf("cannot read file: %v", loadErrs[i])).
					Emit()
				emit(opts.Progress, res.Path, StageLoad, StatusError, 0)
				return nil
			}
			runPipeline(mctx, res, opts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &DirResult{FileSet: fileSet, Files: results}, nil
}

func displayPath(dir, path string) string {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}
