package lexer

import (
	"strings"

	"rig/internal/diag"
	"rig/internal/token"
)

// escapes is the fixed escape table: character after '\' -> decoded rune.
var escapes = map[rune]rune{
	'n':  '\n',
	't':  '\t',
	'r':  '\r',
	'0':  0,
	'\\': '\\',
	'"':  '"',
	'\'': '\'',
}

// scanString reads a "..." literal. Newlines are allowed inside.
// Lexeme keeps the quotes and backslashes, Literal holds the decoded text.
// On any fault the literal is dropped and no token is produced.
func (lx *Lexer) scanString() (token.Token, bool) {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening '"'

	var literal strings.Builder
	for !lx.cursor.EOF() {
		r := lx.cursor.Bump()
		switch r {
		case '"':
			return token.Token{
				Kind:    token.StringLit,
				Span:    lx.cursor.SpanFrom(start),
				Lexeme:  lx.cursor.TextFrom(start),
				Literal: literal.String(),
			}, true
		case '\\':
			esc := Mark{Off: lx.cursor.Off - 1, Line: lx.cursor.Line, Col: lx.cursor.Col - 1}
			if lx.cursor.EOF() {
				lx.report(diag.LexUnexpectedEOF, lx.cursor.SpanFrom(esc), "unexpected end of input after `\\`")
				return token.Token{}, false
			}
			at := lx.cursor.Mark()
			decoded, ok := escapes[lx.cursor.Bump()]
			if !ok {
				lx.report(diag.LexInvalidEscape, lx.cursor.SpanFrom(esc), "invalid escape character `"+lx.cursor.TextFrom(esc)+"`")
				// сам символ после `\` лексится заново как обычный ввод
				lx.cursor.Reset(at)
				return token.Token{}, false
			}
			literal.WriteRune(decoded)
		default:
			literal.WriteRune(r)
		}
	}

	sp := lx.cursor.SpanFrom(start)
	lx.reportWithHint(diag.LexUnterminatedString, sp, "unterminated string literal", sp, "insert `\"` here")
	return token.Token{}, false
}
