package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"rig/internal/diagfmt"
	"rig/internal/driver"
	"rig/internal/observ"
	"rig/internal/project"
	"rig/internal/trace"
	"rig/internal/version"
)

// errDiagnostics means error diagnostics were printed; main only sets the exit status.
var errDiagnostics = errors.New("errors reported")

type globalFlags struct {
	color          string
	quiet          bool
	timings        bool
	maxDiagnostics int
	trace          string
	traceLevel     string
	traceFormat    string
	config         string
}

// app is the state shared by every subcommand of one invocation.
type app struct {
	flags  globalFlags
	cfg    project.Config
	timer  *observ.Timer
	tracer trace.Tracer
	span   *trace.Span
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "rig",
		Short:         "Rig language front end",
		Long:          `Rig tokenizes, parses and checks Rig source files`,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd, args)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.flags.color, "color", "auto", "colorize output (auto|on|off)")
	pf.BoolVar(&a.flags.quiet, "quiet", false, "suppress non-essential output")
	pf.BoolVar(&a.flags.timings, "timings", false, "show timing information")
	pf.IntVar(&a.flags.maxDiagnostics, "max-diagnostics", 100, "maximum number of diagnostics per file (0 = unlimited)")
	pf.StringVar(&a.flags.trace, "trace", "", "trace output file (- for stderr)")
	pf.StringVar(&a.flags.traceLevel, "trace-level", "off", "trace level (off|error|phase|detail|debug)")
	pf.StringVar(&a.flags.traceFormat, "trace-format", "auto", "trace format (auto|text|ndjson)")
	pf.StringVar(&a.flags.config, "config", "", "path to rig.toml (default: search upwards from the input)")

	root.AddCommand(newTokenizeCmd(a), newParseCmd(a), newDiagCmd(a), newVersionCmd())
	return root
}

// setup loads rig.toml, applies explicitly set flags over it and starts tracing.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := a.loadConfig(args)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("color") {
		cfg.Diagnostics.Color = a.flags.color
	}
	if flags.Changed("max-diagnostics") {
		cfg.Diagnostics.Max = a.flags.maxDiagnostics
	}
	if flags.Changed("trace") {
		cfg.Trace.Output = a.flags.trace
		// --trace без уровня включает фазы
		if !flags.Changed("trace-level") && cfg.Trace.Level == "off" {
			cfg.Trace.Level = "phase"
		}
	}
	if flags.Changed("trace-level") {
		cfg.Trace.Level = a.flags.traceLevel
	}
	if flags.Changed("trace-format") {
		cfg.Trace.Format = a.flags.traceFormat
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	if a.flags.timings {
		a.timer = observ.NewTimer()
	}
	return a.startTrace(cmd)
}

func (a *app) loadConfig(args []string) (project.Config, error) {
	if a.flags.config != "" {
		return project.LoadConfig(a.flags.config)
	}
	start := "."
	if len(args) > 0 {
		start = args[0]
	}
	abs, err := filepath.Abs(start)
	if err != nil {
		return project.Config{}, fmt.Errorf("resolve %s: %w", start, err)
	}
	if _, err := os.Stat(abs); err != nil {
		// несуществующий вход сообщит сама команда
		return project.DefaultConfig(), nil
	}
	return project.Discover(abs)
}

func (a *app) startTrace(cmd *cobra.Command) error {
	level, err := trace.ParseLevel(a.cfg.Trace.Level)
	if err != nil {
		return err
	}
	format, err := trace.ParseFormat(a.cfg.Trace.Format)
	if err != nil {
		return err
	}
	tr, err := trace.New(trace.Config{Level: level, Format: format, OutputPath: a.cfg.Trace.Output})
	if err != nil {
		return err
	}
	a.tracer = tr
	ctx, span := trace.BeginCtx(trace.WithTracer(cmd.Context(), tr), trace.ScopeDriver, "rig "+cmd.Name())
	a.span = span
	cmd.SetContext(ctx)
	return nil
}

// close ends the command span, flushes the tracer and prints timings.
func (a *app) close(stderr io.Writer) {
	if a.span != nil {
		a.span.End("")
	}
	if a.tracer != nil {
		if err := a.tracer.Flush(); err != nil {
			fmt.Fprintf(stderr, "trace: flush error: %v\n", err)
		}
		if err := a.tracer.Close(); err != nil {
			fmt.Fprintf(stderr, "trace: close error: %v\n", err)
		}
	}
	if a.timer != nil && !a.flags.quiet {
		fmt.Fprint(stderr, a.timer.Summary())
	}
}

func (a *app) driverOptions() driver.Options {
	return driver.Options{
		MaxDiagnostics: a.cfg.Diagnostics.Max,
		Jobs:           a.cfg.Check.Jobs,
		Extension:      a.cfg.Check.Extension,
		Timer:          a.timer,
	}
}

func (a *app) prettyOpts(w io.Writer) diagfmt.PrettyOpts {
	return diagfmt.PrettyOpts{
		Color:     a.useColor(w),
		Context:   a.cfg.Diagnostics.Context,
		PathMode:  a.pathMode(),
		ShowNotes: true,
	}
}

func (a *app) pathMode() diagfmt.PathMode {
	mode, err := diagfmt.ParsePathMode(a.cfg.Diagnostics.PathMode)
	if err != nil {
		// Validate уже отсеял неверные значения
		return diagfmt.PathModeAuto
	}
	return mode
}

func (a *app) useColor(w io.Writer) bool {
	switch a.cfg.Diagnostics.Color {
	case "on":
		return true
	case "off":
		return false
	default:
		return isTerminal(w)
	}
}

// isTerminal reports whether w is a terminal file.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
