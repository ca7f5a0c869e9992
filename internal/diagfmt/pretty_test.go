package diagfmt

import (
	"bytes"
	"strings"
	"testing"

	"rig/internal/diag"
	"rig/internal/lexer"
	"rig/internal/source"
)

func TestPrettyUnterminatedString(t *testing.T) {
	fx := parseFixture(t, "test.rig", "let x = \"abc")
	var buf bytes.Buffer
	if err := Pretty(&buf, fx.bag, fx.fs, PrettyOpts{}); err != nil {
		t.Fatal(err)
	}
	want := strings.Join([]string{
		"error[LEX1002]: unterminated string literal",
		" --> test.rig:1:9",
		"  |",
		"1 | let x = \"abc",
		"  |         ^^^^",
		"  = hint: insert `\"` here",
		"  |",
		"1 | let x = \"abc",
		"  |         ^^^^",
		"",
	}, "\n")
	if got := buf.String(); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestPrettyOmittedNotice(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("m.rig", []byte("@ @ @"))
	bag := diag.NewBag(1)
	lexer.New(fs.Get(id), lexer.Options{Reporter: diag.BagReporter{Bag: bag}}).Lex()

	var buf bytes.Buffer
	if err := Pretty(&buf, bag, fs, PrettyOpts{}); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if strings.Count(out, "error[LEX1001]") != 1 {
		t.Errorf("expected one rendered diagnostic:\n%s", out)
	}
	if !strings.HasSuffix(out, "\n\n2 more diagnostics not shown (use --max-diagnostics 0)\n") {
		t.Errorf("missing notice:\n%s", out)
	}
}

func TestPrettyWideCharacters(t *testing.T) {
	fx := parseFixture(t, "wide.rig", "日本 @")
	var buf bytes.Buffer
	if err := Pretty(&buf, fx.bag, fx.fs, PrettyOpts{}); err != nil {
		t.Fatal(err)
	}
	// "日本 " занимает 5 колонок терминала
	if !strings.Contains(buf.String(), "  |      ^\n") {
		t.Errorf("caret misaligned:\n%s", buf.String())
	}
	if !strings.Contains(buf.String(), " --> wide.rig:1:4\n") {
		t.Errorf("location:\n%s", buf.String())
	}
}

func TestPrettyContextAndNotes(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("ctx.rig", []byte("a;\nb;\nc / 0"))
	bag := diag.NewBag(0)
	d := diag.New(diag.SevWarning, diag.SemaDivByZero, source.LineSpan(id, 3, 4, 5), "division by zero").
		WithNote(source.LineSpan(id, 3, 0, 5), "this operation will fail at runtime")
	bag.Add(d)

	var buf bytes.Buffer
	if err := Pretty(&buf, bag, fs, PrettyOpts{Context: 1, ShowNotes: true}); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{
		"warning[SEM3002]: division by zero",
		"2 | b;\n3 | c / 0\n",
		"  = note: this operation will fail at runtime\n",
		"  | ^^^^^\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}
	if strings.Contains(out, "1 | a;") {
		t.Errorf("context too wide:\n%s", out)
	}
}

func TestPrettyColor(t *testing.T) {
	fx := parseFixture(t, "c.rig", "@")
	var plain, colored bytes.Buffer
	_ = Pretty(&plain, fx.bag, fx.fs, PrettyOpts{})
	_ = Pretty(&colored, fx.bag, fx.fs, PrettyOpts{Color: true})
	if strings.Contains(plain.String(), "\x1b[") {
		t.Errorf("plain output has escapes: %q", plain.String())
	}
	if !strings.Contains(colored.String(), "\x1b[") {
		t.Errorf("colored output has no escapes: %q", colored.String())
	}
}

func TestPathModes(t *testing.T) {
	fs := source.NewFileSetWithBase("/home/user/project")
	fileID := fs.AddVirtual("/home/user/project/src/test.rig", []byte("\"x"))
	bag := diag.NewBag(0)
	bag.Add(diag.New(diag.SevError, diag.LexUnterminatedString, source.LineSpan(fileID, 1, 0, 2), "unterminated string literal"))

	tests := []struct {
		mode PathMode
		want string
	}{
		{PathModeAbsolute, "--> /home/user/project/src/test.rig:1:1"},
		{PathModeRelative, "--> src/test.rig:1:1"},
		{PathModeBasename, "--> test.rig:1:1"},
	}
	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			var buf bytes.Buffer
			if err := Pretty(&buf, bag, fs, PrettyOpts{PathMode: tt.mode}); err != nil {
				t.Fatal(err)
			}
			if !strings.Contains(buf.String(), tt.want) {
				t.Errorf("missing %q in:\n%s", tt.want, buf.String())
			}
		})
	}
}

func TestParsePathMode(t *testing.T) {
	for _, name := range []string{"auto", "absolute", "relative", "basename", "Relative"} {
		if _, err := ParsePathMode(name); err != nil {
			t.Errorf("%s: %v", name, err)
		}
	}
	if _, err := ParsePathMode("short"); err == nil {
		t.Error("expected error for unknown mode")
	}
}
