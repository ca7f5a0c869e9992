package source

import (
	"testing"
)

func TestSpanCover(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Span
		expected Span
	}{
		{
			name:     "left then right on one line",
			a:        LineSpan(1, 1, 0, 1),
			b:        LineSpan(1, 1, 4, 5),
			expected: LineSpan(1, 1, 0, 5),
		},
		{
			name:     "overlapping",
			a:        LineSpan(1, 2, 3, 9),
			b:        LineSpan(1, 2, 5, 7),
			expected: LineSpan(1, 2, 3, 9),
		},
		{
			name:     "across lines",
			a:        LineSpan(1, 3, 8, 10),
			b:        LineSpan(1, 1, 2, 4),
			expected: Span{File: 1, StartLine: 1, StartCol: 2, EndLine: 3, EndCol: 10},
		},
		{
			name:     "different files keep receiver",
			a:        LineSpan(1, 1, 0, 1),
			b:        LineSpan(2, 1, 4, 5),
			expected: LineSpan(1, 1, 0, 1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.a.Cover(tt.b)
			if got != tt.expected {
				t.Errorf("Cover() = %v, want %v", got, tt.expected)
			}
			if tt.a.File == tt.b.File {
				if rev := tt.b.Cover(tt.a); rev != got {
					t.Errorf("Cover is not symmetric: %v vs %v", rev, got)
				}
			}
		})
	}
}

func TestSpanConstructors(t *testing.T) {
	c := CharSpan(0, 4, 7)
	if c.StartLine != 4 || c.EndLine != 4 || c.StartCol != 7 || c.EndCol != 8 {
		t.Errorf("CharSpan = %v", c)
	}
	if c.Empty() {
		t.Error("CharSpan must not be empty")
	}
	p := PointSpan(0, 2, 3)
	if !p.Empty() {
		t.Errorf("PointSpan %v must be empty", p)
	}
	if c.MultiLine() {
		t.Error("CharSpan is single line")
	}
}

func TestSpanOrdering(t *testing.T) {
	a := LineSpan(0, 1, 5, 6)
	b := LineSpan(0, 2, 0, 1)
	if !a.Before(b) || b.Before(a) {
		t.Errorf("expected %v before %v", a, b)
	}
	if !b.Contains(LineCol{Line: 2, Col: 0}) {
		t.Error("span must contain its start")
	}
	if b.Contains(LineCol{Line: 2, Col: 1}) {
		t.Error("span end is exclusive")
	}
}
