package token

import (
	"rig/internal/source"
)

// Token is one lexeme with its location.
// Lexeme is the raw source text including quotes and backslashes.
// Literal is the decoded value: escapes resolved for strings, digits for numbers.
type Token struct {
	Kind    Kind
	Span    source.Span
	Lexeme  string
	Literal string
}

// IsLiteral reports whether the token is a string or number literal.
func (t Token) IsLiteral() bool {
	return t.Kind == StringLit || t.Kind == NumberLit
}

// IsPunctOrOp reports whether the token is a punctuation or operator.
func (t Token) IsPunctOrOp() bool {
	return t.Kind >= LParen && t.Kind <= ShrAssign
}

// IsKeyword reports whether the token is a language keyword.
func (t Token) IsKeyword() bool { return t.Kind == Keyword }

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }

// IsKeywordText reports whether the token is the keyword kw.
func (t Token) IsKeywordText(kw string) bool {
	return t.Kind == Keyword && t.Lexeme == kw
}

// Describe is the human form used in diagnostics: the lexeme for most
// tokens, "end of file" for EOF.
func (t Token) Describe() string {
	if t.Kind == EOF {
		return "end of file"
	}
	if t.Lexeme != "" {
		return t.Lexeme
	}
	return t.Kind.Spelling()
}
