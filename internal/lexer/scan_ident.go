package lexer

import (
	"rig/internal/token"
)

// scanIdentOrKeyword munches letters, digits and '_' and classifies the
// result against the keyword table. Ключевые слова регистрозависимые.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	for {
		r, sz := lx.cursor.PeekRune()
		if sz == 0 || !isIdentContinueRune(r) {
			break
		}
		lx.cursor.Bump()
	}
	kind, _ := token.LookupKeyword(lx.cursor.TextFrom(start))
	return lx.emit(kind, start)
}
