package lexer

import (
	"unicode"

	"rig/internal/token"
)

// ===== Классификаторы =====

func isIdentStartRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentContinueRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func isDec(b byte) bool { return b >= '0' && b <= '9' }

func isSpace(r rune) bool { return unicode.IsSpace(r) }

func singleCharKind(b byte) (token.Kind, bool) {
	switch b {
	case '(':
		return token.LParen, true
	case ')':
		return token.RParen, true
	case '{':
		return token.LBrace, true
	case '}':
		return token.RBrace, true
	case '[':
		return token.LBracket, true
	case ']':
		return token.RBracket, true
	case ',':
		return token.Comma, true
	case ';':
		return token.Semicolon, true
	case '.':
		return token.Dot, true
	}
	return token.Invalid, false
}

func isOperatorStart(b byte) bool {
	switch b {
	case ':', '!', '+', '-', '*', '/', '%', '&', '|', '=', '^', '<', '>':
		return true
	}
	return false
}

// ===== Матчеры последовательностей операторов (жадность) =====

// try2/try3 пробуют "съесть" 2/3 байта, если совпадает.
func (lx *Lexer) try3(a, b, c byte) bool {
	b0, b1, b2, ok := lx.cursor.Peek3()
	if !ok || b0 != a || b1 != b || b2 != c {
		return false
	}
	return lx.cursor.Eat(a) && lx.cursor.Eat(b) && lx.cursor.Eat(c)
}

func (lx *Lexer) try2(a, b byte) bool {
	b0, b1, ok := lx.cursor.Peek2()
	if !ok || b0 != a || b1 != b {
		return false
	}
	return lx.cursor.Eat(a) && lx.cursor.Eat(b)
}
