package lexer

import (
	"rig/internal/diag"
	"rig/internal/token"
)

// scanNumber munches ASCII digits and at most one '.'. A second '.' is an
// error: the whole run is dropped and scanning resumes after that dot.
// Whether the literal is a float is decided by the parser.
func (lx *Lexer) scanNumber() (token.Token, bool) {
	start := lx.cursor.Mark()
	dots := 0
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		switch {
		case isDec(b):
			lx.cursor.Bump()
		case b == '.' && dots == 0:
			dots++
			lx.cursor.Bump()
		case b == '.':
			dot := lx.cursor.Mark()
			lx.cursor.Bump()
			sp := lx.cursor.SpanFrom(dot)
			lx.reportWithHint(diag.LexInvalidNumber, sp, "invalid integer literal", sp, "remove this")
			return token.Token{}, false
		default:
			return lx.emit(token.NumberLit, start), true
		}
	}
	return lx.emit(token.NumberLit, start), true
}
