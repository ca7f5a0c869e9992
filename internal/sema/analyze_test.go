package sema_test

import (
	"testing"

	"rig/internal/ast"
	"rig/internal/diag"
	"rig/internal/parser"
	"rig/internal/sema"
	"rig/internal/source"
)

func analyzeSource(t *testing.T, input string) []diag.Diagnostic {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("sema.rig", []byte(input))
	bag := diag.NewBag(0)
	rep := diag.BagReporter{Bag: bag}
	builder := ast.NewBuilder(ast.Hints{}, nil)
	res := parser.ParseFile(fs, id, builder, parser.Options{Reporter: rep})
	if bag.HasErrors() {
		t.Fatalf("%q does not parse: %v", input, bag.Items())
	}
	sema.Analyze(builder, res.File, rep)
	return bag.Items()
}

func TestAnalyzeWarnings(t *testing.T) {
	tests := []struct {
		input string
		code  diag.Code
		msg   string
	}{
		{"a = a", diag.SemaSelfAssign, "assignment of `a` to itself has no effect"},
		{"a = (a)", diag.SemaSelfAssign, "assignment of `a` to itself has no effect"},
		{"x / 0", diag.SemaDivByZero, "division by zero"},
		{"x % (0)", diag.SemaDivByZero, "modulo by zero"},
		{"a == a", diag.SemaSelfCompare, "comparison of `a` with itself is always true"},
		{"a >= a", diag.SemaSelfCompare, "comparison of `a` with itself is always true"},
		{"a < a", diag.SemaSelfCompare, "comparison of `a` with itself is always false"},
		{"f(n != n)", diag.SemaSelfCompare, "comparison of `n` with itself is always false"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			items := analyzeSource(t, tt.input)
			if len(items) != 1 {
				t.Fatalf("got %d diagnostics: %v", len(items), items)
			}
			d := items[0]
			if d.Severity != diag.SevWarning {
				t.Errorf("severity = %v, want warning", d.Severity)
			}
			if d.Code != tt.code || d.Message != tt.msg {
				t.Errorf("got [%s] %q, want [%s] %q", d.Code.ID(), d.Message, tt.code.ID(), tt.msg)
			}
		})
	}
}

func TestAnalyzeQuiet(t *testing.T) {
	for _, input := range []string{
		"a = b",
		"x / 1",
		"x / 0.0",
		"a == b",
		"a && a",
		"a.b = a.b",
		"0 / x",
	} {
		if items := analyzeSource(t, input); len(items) != 0 {
			t.Errorf("%q: unexpected diagnostics %v", input, items)
		}
	}
}

func TestAnalyzeSpans(t *testing.T) {
	items := analyzeSource(t, "y; x / 0")
	if len(items) != 1 {
		t.Fatalf("got %v", items)
	}
	if want := source.LineSpan(0, 1, 7, 8); items[0].Primary != want {
		t.Errorf("primary = %v, want %v", items[0].Primary, want)
	}
	if len(items[0].Notes) != 1 || items[0].Notes[0].Span != source.LineSpan(0, 1, 3, 8) {
		t.Errorf("notes = %+v", items[0].Notes)
	}
}

func TestAnalyzeNilSafe(t *testing.T) {
	sema.Analyze(nil, 1, diag.NopReporter{})
	b := ast.NewBuilder(ast.Hints{}, nil)
	sema.Analyze(b, ast.NoFileID, diag.NopReporter{})
	sema.Analyze(b, 42, diag.NopReporter{})
}
