package project

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"

	"rig/internal/trace"
)

// Config mirrors rig.toml. Zero sections are filled from DefaultConfig.
type Config struct {
	Diagnostics DiagnosticsConfig `toml:"diagnostics"`
	Check       CheckConfig       `toml:"check"`
	Trace       TraceConfig       `toml:"trace"`

	// Path is the file the config was read from; empty for defaults.
	Path string `toml:"-"`
}

type DiagnosticsConfig struct {
	Max      int    `toml:"max"`
	Color    string `toml:"color"`     // auto|on|off
	PathMode string `toml:"path_mode"` // auto|absolute|relative|basename
	Context  int    `toml:"context"`
}

type CheckConfig struct {
	Jobs      int    `toml:"jobs"` // 0 = GOMAXPROCS
	Extension string `toml:"extension"`
}

type TraceConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // auto|text|ndjson
	Output string `toml:"output"` // "-" = stderr
}

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

var (
	colorModes = []string{"auto", "on", "off"}
	pathModes  = []string{"auto", "absolute", "relative", "basename"}
)

func DefaultConfig() Config {
	return Config{
		Diagnostics: DiagnosticsConfig{
			Max:      100,
			Color:    "auto",
			PathMode: "auto",
			Context:  1,
		},
		Check: CheckConfig{
			Jobs:      0,
			Extension: ".rig",
		},
		Trace: TraceConfig{
			Level:  "off",
			Format: "auto",
			Output: "-",
		},
	}
}

// LoadConfig decodes path on top of DefaultConfig and validates the result.
// Keys the decoder does not know are errors, so typos do not pass silently.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%s: %w: unknown keys %s", path, ErrInvalidConfig, strings.Join(keys, ", "))
	}
	cfg.Path = path
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Discover finds rig.toml above start and loads it; without one it returns defaults.
func Discover(start string) (Config, error) {
	path, ok, err := FindRigToml(start)
	if err != nil {
		return Config{}, err
	}
	if !ok {
		return DefaultConfig(), nil
	}
	return LoadConfig(path)
}

// Validate checks enum values and ranges.
func (c *Config) Validate() error {
	d := c.Diagnostics
	if !slices.Contains(colorModes, d.Color) {
		return fmt.Errorf("%w: diagnostics.color = %q (want auto|on|off)", ErrInvalidConfig, d.Color)
	}
	if !slices.Contains(pathModes, d.PathMode) {
		return fmt.Errorf("%w: diagnostics.path_mode = %q (want auto|absolute|relative|basename)", ErrInvalidConfig, d.PathMode)
	}
	if d.Max < 0 || d.Context < 0 {
		return fmt.Errorf("%w: diagnostics.max and diagnostics.context must not be negative", ErrInvalidConfig)
	}
	if c.Check.Jobs < 0 {
		return fmt.Errorf("%w: check.jobs = %d", ErrInvalidConfig, c.Check.Jobs)
	}
	if !strings.HasPrefix(c.Check.Extension, ".") || len(c.Check.Extension) < 2 {
		return fmt.Errorf("%w: check.extension = %q (want \".ext\")", ErrInvalidConfig, c.Check.Extension)
	}
	if _, err := trace.ParseLevel(c.Trace.Level); err != nil {
		return fmt.Errorf("%w: trace.level: %w", ErrInvalidConfig, err)
	}
	if _, err := trace.ParseFormat(c.Trace.Format); err != nil {
		return fmt.Errorf("%w: trace.format: %w", ErrInvalidConfig, err)
	}
	return nil
}
