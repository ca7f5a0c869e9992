package lexer

import (
	"rig/internal/token"
)

// scanOperator handles the operator families. Longest match wins:
// 3-byte forms first, then 2-byte, then the bare character.
func (lx *Lexer) scanOperator() token.Token {
	start := lx.cursor.Mark()
	emit := func(k token.Kind) token.Token { return lx.emit(k, start) }

	switch lx.cursor.Peek() {
	case ':':
		if lx.try2(':', ':') {
			return emit(token.ColonColon)
		}
	case '!':
		if lx.try2('!', '=') {
			return emit(token.BangEq)
		}
	case '+':
		if lx.try2('+', '=') {
			return emit(token.PlusAssign)
		}
	case '-':
		switch {
		case lx.try2('-', '='):
			return emit(token.MinusAssign)
		case lx.try2('-', '>'):
			return emit(token.Arrow)
		}
	case '*':
		if lx.try2('*', '=') {
			return emit(token.StarAssign)
		}
	case '/':
		if lx.try2('/', '=') {
			return emit(token.SlashAssign)
		}
	case '%':
		if lx.try2('%', '=') {
			return emit(token.PercentAssign)
		}
	case '&':
		switch {
		case lx.try2('&', '='):
			return emit(token.AmpAssign)
		case lx.try2('&', '&'):
			return emit(token.AndAnd)
		}
	case '|':
		switch {
		case lx.try2('|', '='):
			return emit(token.PipeAssign)
		case lx.try2('|', '|'):
			return emit(token.OrOr)
		}
	case '=':
		switch {
		case lx.try2('=', '='):
			return emit(token.EqEq)
		case lx.try2('=', '>'):
			return emit(token.FatArrow)
		}
	case '^':
		if lx.try2('^', '=') {
			return emit(token.CaretAssign)
		}
	case '<':
		switch {
		case lx.try3('<', '<', '='):
			return emit(token.ShlAssign)
		case lx.try2('<', '<'):
			return emit(token.Shl)
		case lx.try2('<', '='):
			return emit(token.LtEq)
		}
	case '>':
		switch {
		case lx.try3('>', '>', '='):
			return emit(token.ShrAssign)
		case lx.try2('>', '>'):
			return emit(token.Shr)
		case lx.try2('>', '='):
			return emit(token.GtEq)
		}
	}

	// односимвольные
	switch lx.cursor.Bump() {
	case ':':
		return emit(token.Colon)
	case '!':
		return emit(token.Bang)
	case '+':
		return emit(token.Plus)
	case '-':
		return emit(token.Minus)
	case '*':
		return emit(token.Star)
	case '/':
		return emit(token.Slash)
	case '%':
		return emit(token.Percent)
	case '&':
		return emit(token.Amp)
	case '|':
		return emit(token.Pipe)
	case '=':
		return emit(token.Assign)
	case '^':
		return emit(token.Caret)
	case '<':
		return emit(token.Lt)
	case '>':
		return emit(token.Gt)
	}
	// isOperatorStart guards every call
	panic("lexer: scanOperator called on a non-operator byte")
}
