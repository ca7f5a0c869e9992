package diag

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"rig/internal/source"
)

type lineEntry struct {
	Severity string
	Code     string
	Path     string
	Line     uint32
	Column   uint32
	Message  string
}

// FormatGoldenDiagnostics renders diagnostics one per line, sorted, with notes
// and hints expanded into their own lines. Used by golden tests.
func FormatGoldenDiagnostics(diags []Diagnostic, fs *source.FileSet) string {
	return formatDiagnostics(diags, fs, true)
}

// FormatShortDiagnostics renders one line per diagnostic for `--format short`.
func FormatShortDiagnostics(diags []Diagnostic, fs *source.FileSet) string {
	return formatDiagnostics(diags, fs, false)
}

func formatDiagnostics(diags []Diagnostic, fs *source.FileSet, expand bool) string {
	if fs == nil || len(diags) == 0 {
		return ""
	}

	rendered := make([]lineEntry, 0, len(diags))
	for i := range diags {
		rendered = appendDiagnostic(rendered, &diags[i], fs, expand)
	}

	sort.SliceStable(rendered, func(i, j int) bool {
		di, dj := rendered[i], rendered[j]
		if di.Path != dj.Path {
			return di.Path < dj.Path
		}
		if di.Line != dj.Line {
			return di.Line < dj.Line
		}
		if di.Column != dj.Column {
			return di.Column < dj.Column
		}
		if di.Severity != dj.Severity {
			return di.Severity < dj.Severity
		}
		if di.Code != dj.Code {
			return di.Code < dj.Code
		}
		return di.Message < dj.Message
	})

	var b strings.Builder
	for i, d := range rendered {
		fmt.Fprintf(&b, "%s %s %s:%d:%d %s", d.Severity, d.Code, d.Path, d.Line, d.Column, d.Message)
		if i < len(rendered)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func appendDiagnostic(out []lineEntry, d *Diagnostic, fs *source.FileSet, expand bool) []lineEntry {
	entry := func(sev string, span source.Span, msg string) {
		path, ok := resolvePath(fs, span.File)
		if !ok {
			return
		}
		out = append(out, lineEntry{
			Severity: sev,
			Code:     d.Code.ID(),
			Path:     path,
			Line:     span.StartLine,
			Column:   span.StartCol + 1,
			Message:  sanitizeMessage(msg),
		})
	}

	entry(d.Severity.Label(), d.Primary, d.Message)
	if !expand {
		return out
	}
	if d.Hint != nil {
		entry("hint", d.Hint.Span, d.Hint.Msg)
	}
	for _, note := range d.Notes {
		entry("note", note.Span, note.Msg)
	}
	return out
}

func resolvePath(fs *source.FileSet, id source.FileID) (string, bool) {
	if int(id) >= fs.Len() {
		return "", false
	}
	file := fs.Get(id)
	return normalizePath(file.FormatPath("relative", fs.BaseDir())), true
}

func normalizePath(path string) string {
	p := filepath.ToSlash(path)
	for strings.HasPrefix(p, "./") {
		p = strings.TrimPrefix(p, "./")
	}
	return p
}

func sanitizeMessage(msg string) string {
	msg = strings.ReplaceAll(msg, "\r\n", "\n")
	msg = strings.ReplaceAll(msg, "\r", "\n")
	msg = strings.ReplaceAll(msg, "\n", " ")
	return strings.TrimSpace(msg)
}
