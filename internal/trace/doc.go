// Package trace is the compiler's structured event log.
//
// Spans nest by scope: a driver span per CLI command, pass spans for
// lex/parse/sema and module spans per file in directory mode. The Level
// decides which scopes reach the output:
//
//	off    nothing
//	error  only KindError events
//	phase  driver + pass
//	detail + module
//	debug  everything
//
// Tracers travel through context.Context (WithTracer / FromContext), so the
// lexer and parser stay free of tracing code and the driver wraps them.
package trace
