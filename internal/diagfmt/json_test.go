package diagfmt

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"rig/internal/diag"
	"rig/internal/lexer"
	"rig/internal/source"
)

func TestJSONDiagnostics(t *testing.T) {
	fx := parseFixture(t, "j.rig", "a + ;\n\"x")
	var buf bytes.Buffer
	if err := JSON(&buf, fx.bag, fx.fs, JSONOpts{IncludeNotes: true}); err != nil {
		t.Fatal(err)
	}
	var out DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("invalid json: %v\n%s", err, buf.String())
	}
	if out.Count != 1 || len(out.Diagnostics) != 1 {
		t.Fatalf("count = %d, diagnostics = %d", out.Count, len(out.Diagnostics))
	}
	d := out.Diagnostics[0]
	if d.Severity != "error" || d.Code != "LEX1002" {
		t.Errorf("got %s %s", d.Severity, d.Code)
	}
	want := LocationJSON{File: "j.rig", StartLine: 2, StartCol: 0, EndLine: 2, EndCol: 2}
	if d.Location != want {
		t.Errorf("location = %+v, want %+v", d.Location, want)
	}
	if d.Hint == nil || d.Hint.Message != "insert `\"` here" {
		t.Errorf("hint = %+v", d.Hint)
	}
}

func TestJSONMax(t *testing.T) {
	fx := parseFixture(t, "m.rig", "@ ` $")
	if fx.bag.Len() != 3 {
		t.Fatalf("fixture produced %d diagnostics", fx.bag.Len())
	}
	out := BuildDiagnosticsOutput(fx.bag, fx.fs, JSONOpts{Max: 2})
	if out.Count != 2 {
		t.Errorf("count = %d, want 2", out.Count)
	}
	if out.Omitted != 1 {
		t.Errorf("omitted = %d, want 1", out.Omitted)
	}
}

func TestJSONOmittedFromBag(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("m.rig", []byte("@ @ @"))
	bag := diag.NewBag(1)
	lexer.New(fs.Get(id), lexer.Options{Reporter: diag.BagReporter{Bag: bag}}).Lex()

	var buf bytes.Buffer
	if err := JSON(&buf, bag, fs, JSONOpts{}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "\"count\": 1,\n  \"omitted\": 2\n") {
		t.Errorf("got %s", buf.String())
	}
}

func TestJSONEmptyBag(t *testing.T) {
	var buf bytes.Buffer
	if err := JSON(&buf, nil, nil, JSONOpts{}); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "{\n  \"diagnostics\": [],\n  \"count\": 0\n}\n" {
		t.Errorf("got %q", got)
	}
}
