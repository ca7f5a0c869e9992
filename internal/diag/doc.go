// Package diag defines the diagnostic model shared by the lexer, the parser
// and the analyzer.
//
// # Data model
//
// Diagnostic is the central record. It contains:
//
//   - Severity: SevError stops the pipeline before the next phase, SevWarning
//     is reported but never gates anything.
//   - Code: compact numeric identifier (see codes.go) with a stable string
//     form such as LEX1002.
//   - Message: short human oriented text.
//   - Primary: the source.Span the diagnostic points at.
//   - Hint: optional suggestion with its own span ("insert `\"` here").
//   - Notes: optional secondary spans.
//
// Diagnostics are values. Nothing in the front end panics or returns an
// error for a problem in user code.
//
// # Emitting diagnostics
//
// Phases write through a Reporter. BagReporter collects into a bounded Bag,
// DedupReporter filters repeats. ReportBuilder chains WithHint / WithNote
// before Emit.
//
// Rendering lives in internal/diagfmt; this package only knows the
// single-line short and golden forms.
package diag
