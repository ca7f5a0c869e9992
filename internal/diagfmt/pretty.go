package diagfmt

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"rig/internal/diag"
	"rig/internal/source"
)

type palette struct {
	err, warn, info *color.Color
	gutter          *color.Color
	hint            *color.Color
	note            *color.Color
	bold            *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		err:    color.New(color.FgRed, color.Bold),
		warn:   color.New(color.FgYellow, color.Bold),
		info:   color.New(color.FgCyan, color.Bold),
		gutter: color.New(color.FgBlue, color.Bold),
		hint:   color.New(color.FgGreen),
		note:   color.New(color.FgCyan),
		bold:   color.New(color.Bold),
	}
	for _, c := range []*color.Color{p.err, p.warn, p.info, p.gutter, p.hint, p.note, p.bold} {
		// глобальный color.NoColor смотрит на stdout, а писать можем куда угодно
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) severity(s diag.Severity) *color.Color {
	switch s {
	case diag.SevError:
		return p.err
	case diag.SevWarning:
		return p.warn
	default:
		return p.info
	}
}

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждого diag печатает:
//
//	error[LEX1002]: message
//	 --> path:line:col
//	  |
//	1 | source line
//	  |     ^^^^
//	  = hint: text
//
// затем notes в том же формате. Колонки в `-->` начинаются с 1.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) error {
	if bag == nil {
		return nil
	}
	pr := prettyPrinter{w: w, fs: fs, opts: opts, pal: newPalette(opts.Color)}
	for i, d := range bag.Items() {
		if i > 0 {
			pr.printf("\n")
		}
		pr.diagnostic(d)
	}
	if notice := diag.OmittedNotice(bag.Dropped()); notice != "" {
		if bag.Len() > 0 {
			pr.printf("\n")
		}
		pr.printf("%s\n", pr.pal.bold.Sprint(notice))
	}
	return pr.err
}

type prettyPrinter struct {
	w    io.Writer
	fs   *source.FileSet
	opts PrettyOpts
	pal  palette
	err  error
}

func (pr *prettyPrinter) printf(format string, args ...any) {
	if pr.err != nil {
		return
	}
	_, pr.err = fmt.Fprintf(pr.w, format, args...)
}

func (pr *prettyPrinter) diagnostic(d diag.Diagnostic) {
	sev := pr.pal.severity(d.Severity)
	pr.printf("%s%s\n",
		sev.Sprintf("%s[%s]", d.Severity.Label(), d.Code.ID()),
		pr.pal.bold.Sprintf(": %s", d.Message))

	gw := pr.gutterWidth(d)
	pad := strings.Repeat(" ", gw)
	pr.printf("%s%s %s\n", pad, pr.pal.gutter.Sprint("-->"), pr.location(d.Primary))
	pr.snippet(d.Primary, gw, sev, pr.opts.Context)

	if d.Hint != nil {
		pr.printf("%s %s %s\n", pad, pr.pal.gutter.Sprint("="), pr.pal.hint.Sprintf("hint: %s", d.Hint.Msg))
		pr.snippet(d.Hint.Span, gw, pr.pal.hint, 0)
	}
	if !pr.opts.ShowNotes {
		return
	}
	for _, n := range d.Notes {
		pr.printf("%s %s %s\n", pad, pr.pal.gutter.Sprint("="), pr.pal.note.Sprintf("note: %s", n.Msg))
		if n.Span.File != d.Primary.File {
			pr.printf("%s%s %s\n", pad, pr.pal.gutter.Sprint("-->"), pr.location(n.Span))
		}
		pr.snippet(n.Span, gw, pr.pal.note, 0)
	}
}

func (pr *prettyPrinter) location(sp source.Span) string {
	return fmt.Sprintf("%s:%d:%d", formatPath(pr.fs, sp.File, pr.opts.PathMode), sp.StartLine, sp.StartCol+1)
}

// gutterWidth: ширина номера строки, общая для всех сниппетов диагностики
func (pr *prettyPrinter) gutterWidth(d diag.Diagnostic) int {
	maxLine := d.Primary.StartLine
	if d.Hint != nil {
		maxLine = max(maxLine, d.Hint.Span.StartLine)
	}
	for _, n := range d.Notes {
		maxLine = max(maxLine, n.Span.StartLine)
	}
	return len(strconv.FormatUint(uint64(maxLine), 10))
}

// snippet prints up to context lines before sp, the line of sp and a caret
// underline. Multi-line spans are underlined up to the end of their first line.
func (pr *prettyPrinter) snippet(sp source.Span, gw int, mark *color.Color, context int) {
	if pr.fs == nil || int(sp.File) >= pr.fs.Len() || sp.StartLine == 0 {
		return
	}
	file := pr.fs.Get(sp.File)
	pad := strings.Repeat(" ", gw)
	bar := pr.pal.gutter.Sprint("|")

	pr.printf("%s %s\n", pad, bar)
	first := sp.StartLine
	if context > 0 && uint32(context) < first {
		first -= uint32(context)
	} else if context > 0 {
		first = 1
	}
	for ln := first; ln <= sp.StartLine; ln++ {
		num := pr.pal.gutter.Sprintf("%*d", gw, ln)
		pr.printf("%s %s %s\n", num, bar, file.GetLine(ln))
	}

	line := []rune(file.GetLine(sp.StartLine))
	start := min(int(sp.StartCol), len(line))
	end := len(line)
	if !sp.MultiLine() {
		end = min(int(sp.EndCol), len(line))
	}
	prefix := indentLike(line[:start])
	width := 1
	if end > start {
		width = max(1, runewidth.StringWidth(string(line[start:end])))
	}
	pr.printf("%s %s %s%s\n", pad, bar, prefix, mark.Sprint(strings.Repeat("^", width)))
}

// indentLike returns whitespace that occupies the same display width as
// runes, keeping tabs so the caret stays aligned in the terminal.
func indentLike(runes []rune) string {
	var sb strings.Builder
	for _, r := range runes {
		if r == '\t' {
			sb.WriteByte('\t')
			continue
		}
		sb.WriteString(strings.Repeat(" ", runewidth.RuneWidth(r)))
	}
	return sb.String()
}
