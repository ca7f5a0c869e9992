package token_test

import (
	"testing"

	"rig/internal/token"
)

func tok(k token.Kind) token.Token {
	return token.Token{Kind: k}
}

func TestIsLiteral(t *testing.T) {
	for _, k := range []token.Kind{token.StringLit, token.NumberLit} {
		if !tok(k).IsLiteral() {
			t.Fatalf("%v should be literal", k)
		}
	}
	for _, k := range []token.Kind{token.Ident, token.Keyword, token.Plus, token.LParen, token.EOF} {
		if tok(k).IsLiteral() {
			t.Fatalf("%v must NOT be literal", k)
		}
	}
}

func TestIsPunctOrOp(t *testing.T) {
	ops := []token.Kind{
		token.LParen, token.RParen, token.LBrace, token.RBrace, token.LBracket, token.RBracket,
		token.Comma, token.Semicolon, token.Dot, token.Colon, token.ColonColon,
		token.Plus, token.PlusAssign, token.Minus, token.MinusAssign, token.Arrow,
		token.Star, token.StarAssign, token.Slash, token.SlashAssign, token.Percent, token.PercentAssign,
		token.Amp, token.AmpAssign, token.AndAnd, token.Pipe, token.PipeAssign, token.OrOr,
		token.Assign, token.EqEq, token.FatArrow, token.Bang, token.BangEq,
		token.Caret, token.CaretAssign,
		token.Lt, token.LtEq, token.Shl, token.ShlAssign,
		token.Gt, token.GtEq, token.Shr, token.ShrAssign,
	}
	for _, k := range ops {
		if !tok(k).IsPunctOrOp() {
			t.Errorf("%v should be punct/op", k)
		}
		if k.Spelling() == "" {
			t.Errorf("%v has no spelling", k)
		}
	}
	for _, k := range []token.Kind{token.Ident, token.Keyword, token.StringLit, token.EOF, token.Invalid} {
		if tok(k).IsPunctOrOp() {
			t.Errorf("%v must NOT be punct/op", k)
		}
	}
}

func TestKindString(t *testing.T) {
	tests := map[token.Kind]string{
		token.EOF:       "EOF",
		token.ShlAssign: "ShlAssign",
		token.Keyword:   "Keyword",
		token.Kind(250): "Kind(?)",
	}
	for k, want := range tests {
		if got := k.String(); got != want {
			t.Errorf("String() = %q, want %q", got, want)
		}
	}
}

func TestDescribe(t *testing.T) {
	if got := (token.Token{Kind: token.EOF}).Describe(); got != "end of file" {
		t.Errorf("EOF describe = %q", got)
	}
	if got := (token.Token{Kind: token.Ident, Lexeme: "foo"}).Describe(); got != "foo" {
		t.Errorf("ident describe = %q", got)
	}
	if got := (token.Token{Kind: token.Arrow}).Describe(); got != "->" {
		t.Errorf("arrow describe = %q", got)
	}
}
