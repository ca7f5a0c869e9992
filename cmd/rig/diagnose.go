package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"rig/internal/diag"
	"rig/internal/diagfmt"
	"rig/internal/driver"
	"rig/internal/source"
)

type diagFlags struct {
	format    string
	jobs      int
	withNotes bool
	ui        string
}

func newDiagCmd(a *app) *cobra.Command {
	var f diagFlags
	cmd := &cobra.Command{
		Use:   "diag [flags] <file.rig|directory>",
		Short: "Check a rig source file or every source file in a directory",
		Long: `Diag runs the lexer, the parser and the analyzer and prints every diagnostic.
A directory is walked recursively and its files are checked in parallel.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runDiag(cmd, args[0], f)
		},
	}
	cmd.Flags().StringVar(&f.format, "format", "pretty", "output format (pretty|short|json)")
	cmd.Flags().IntVar(&f.jobs, "jobs", 0, "max parallel workers for directory processing (0 = from rig.toml, else GOMAXPROCS)")
	cmd.Flags().BoolVar(&f.withNotes, "with-notes", false, "include hints and notes in short and json output")
	cmd.Flags().StringVar(&f.ui, "ui", "auto", "progress view for directories (auto|on|off)")
	cmd.Flags().Lookup("ui").NoOptDefVal = "on"
	return cmd
}

func (a *app) runDiag(cmd *cobra.Command, path string, f diagFlags) error {
	switch f.format {
	case "pretty", "short", "json":
	default:
		return fmt.Errorf("unknown format %q (want pretty|short|json)", f.format)
	}
	mode, err := readUIMode(f.ui)
	if err != nil {
		return err
	}
	st, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat path: %w", err)
	}

	opts := a.driverOptions()
	if f.jobs > 0 {
		opts.Jobs = f.jobs
	}
	stderr := cmd.ErrOrStderr()

	var (
		bag *diag.Bag
		fs  *source.FileSet
	)
	if st.IsDir() {
		var res *driver.DirResult
		if f.format == "pretty" && !a.flags.quiet && shouldUseTUI(mode, stderr) {
			res, err = diagnoseDirWithUI(cmd.Context(), stderr, path, opts)
		} else {
			res, err = driver.DiagnoseDir(cmd.Context(), path, opts)
		}
		if err != nil {
			return err
		}
		bag, fs = res.Bag(0), res.FileSet
	} else {
		res, err := driver.Diagnose(cmd.Context(), path, opts)
		if err != nil {
			return err
		}
		bag, fs = res.Bag, res.FileSet
	}

	if err := a.writeDiagnostics(cmd.OutOrStdout(), bag, fs, f); err != nil {
		return fmt.Errorf("failed to format diagnostics: %w", err)
	}
	if !a.flags.quiet && f.format != "json" {
		fmt.Fprintln(stderr, summary(bag))
	}
	if bag.HasErrors() {
		return errDiagnostics
	}
	return nil
}

func (a *app) writeDiagnostics(w io.Writer, bag *diag.Bag, fs *source.FileSet, f diagFlags) error {
	switch f.format {
	case "json":
		return diagfmt.JSON(w, bag, fs, diagfmt.JSONOpts{PathMode: a.pathMode(), IncludeNotes: f.withNotes})
	case "short":
		out := diag.FormatShortDiagnostics(bag.Items(), fs)
		if f.withNotes {
			out = diag.FormatGoldenDiagnostics(bag.Items(), fs)
		}
		if notice := diag.OmittedNotice(bag.Dropped()); notice != "" {
			out = strings.TrimPrefix(out+"\n"+notice, "\n")
		}
		if out == "" {
			return nil
		}
		_, err := fmt.Fprintln(w, out)
		return err
	default:
		return diagfmt.Pretty(w, bag, fs, a.prettyOpts(w))
	}
}

func summary(bag *diag.Bag) string {
	notice := diag.OmittedNotice(bag.Dropped())
	if !bag.HasErrors() && !bag.HasWarnings() && notice == "" {
		return "no problems found"
	}
	var errs, warns int
	for _, d := range bag.Items() {
		switch d.Severity {
		case diag.SevError:
			errs++
		case diag.SevWarning:
			warns++
		}
	}
	out := fmt.Sprintf("%s, %s", plural(errs, "error"), plural(warns, "warning"))
	if notice != "" {
		out += "; " + notice
	}
	return out
}

func plural(n int, word string) string {
	if n == 1 {
		return "1 " + word
	}
	return fmt.Sprintf("%d %ss", n, word)
}
