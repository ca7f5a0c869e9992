package driver

import "rig/internal/observ"

// DefaultExtension is the source file suffix picked up in directory mode.
const DefaultExtension = ".rig"

// Options configure every driver entry point.
type Options struct {
	// MaxDiagnostics bounds each file's Bag; the rest is counted in Bag.Dropped. 0 = unbounded.
	MaxDiagnostics int
	// Jobs bounds DiagnoseDir workers; 0 = GOMAXPROCS.
	Jobs int
	// Extension selects files in DiagnoseDir; empty means DefaultExtension.
	Extension string
	// Progress receives per-file stage events, may be nil.
	Progress ProgressSink
	// Timer collects phase durations, may be nil.
	Timer *observ.Timer
}

func (o Options) extension() string {
	if o.Extension == "" {
		return DefaultExtension
	}
	return o.Extension
}
