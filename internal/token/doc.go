// Package token defines the lexical token kinds of Rig.
// Invariants:
//   - Token.Lexeme is the raw source text, delimiters included.
//   - Token.Span covers exactly the lexeme.
//   - Keywords are classified at lex time; the parser never re-checks identifiers.
//   - Every stream produced by the lexer ends with exactly one EOF token.
package token
