package version

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// Build metadata of the rig CLI, overridable via -ldflags "-X rig/internal/version.Version=...".
var (
	Version   = "0.1.0-dev"
	GitCommit = ""
	BuildDate = ""
)

var (
	nameColor    = color.New(color.FgCyan, color.Bold)
	versionColor = color.New(color.FgGreen, color.Bold)
	metaColor    = color.New(color.Faint)
)

// String formats the version line, e.g. "rig 0.1.0 (abc1234, 2026-01-02)".
// Colour follows color.NoColor.
func String() string {
	var b strings.Builder
	b.WriteString(nameColor.Sprint("rig"))
	b.WriteByte(' ')
	b.WriteString(versionColor.Sprint(Version))

	var meta []string
	if GitCommit != "" {
		meta = append(meta, shortCommit(GitCommit))
	}
	if BuildDate != "" {
		meta = append(meta, BuildDate)
	}
	if len(meta) > 0 {
		b.WriteString(metaColor.Sprint(fmt.Sprintf(" (%s)", strings.Join(meta, ", "))))
	}
	return b.String()
}

func shortCommit(c string) string {
	if len(c) > 12 {
		return c[:12]
	}
	return c
}
