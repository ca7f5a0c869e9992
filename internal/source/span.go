package source

import (
	"fmt"
)

// Span is a half-open source range. Lines are 1-based, columns count code
// points from the start of the line and reset to 0 after every newline.
type Span struct {
	File      FileID
	StartLine uint32
	StartCol  uint32
	EndLine   uint32
	EndCol    uint32 // не включительно
}

// CharSpan covers exactly one character at line:col.
func CharSpan(file FileID, line, col uint32) Span {
	return Span{File: file, StartLine: line, StartCol: col, EndLine: line, EndCol: col + 1}
}

// LineSpan covers [startCol, endCol) on a single line.
func LineSpan(file FileID, line, startCol, endCol uint32) Span {
	return Span{File: file, StartLine: line, StartCol: startCol, EndLine: line, EndCol: endCol}
}

// PointSpan is a zero-width span, used for the end-of-file marker.
func PointSpan(file FileID, line, col uint32) Span {
	return LineSpan(file, line, col, col)
}

func (s Span) Start() LineCol {
	return LineCol{Line: s.StartLine, Col: s.StartCol}
}

func (s Span) End() LineCol {
	return LineCol{Line: s.EndLine, Col: s.EndCol}
}

func (s Span) Empty() bool {
	return s.StartLine == s.EndLine && s.StartCol == s.EndCol
}

// MultiLine reports whether the span crosses a newline.
func (s Span) MultiLine() bool {
	return s.StartLine != s.EndLine
}

func (s Span) String() string {
	return fmt.Sprintf("%d:%d:%d-%d:%d", s.File, s.StartLine, s.StartCol, s.EndLine, s.EndCol)
}

// Cover returns the smallest span containing both s and other.
// Spans from different files are not merged: s is returned as is.
func (s Span) Cover(other Span) Span {
	if s.File != other.File {
		return s
	}
	if other.Start().Before(s.Start()) {
		s.StartLine, s.StartCol = other.StartLine, other.StartCol
	}
	if s.End().Before(other.End()) {
		s.EndLine, s.EndCol = other.EndLine, other.EndCol
	}
	return s
}

// Before orders spans by file and then by start position.
func (s Span) Before(other Span) bool {
	if s.File != other.File {
		return s.File < other.File
	}
	if s.StartLine != other.StartLine {
		return s.StartLine < other.StartLine
	}
	return s.StartCol < other.StartCol
}

// Contains reports whether the position falls inside the span.
func (s Span) Contains(pos LineCol) bool {
	return !pos.Before(s.Start()) && pos.Before(s.End())
}

func (p LineCol) Before(other LineCol) bool {
	if p.Line != other.Line {
		return p.Line < other.Line
	}
	return p.Col < other.Col
}

func (p LineCol) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}
