package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"rig/internal/source"
	"rig/internal/token"
)

type TokenOutput struct {
	Kind    string      `json:"kind" msgpack:"kind"`
	Lexeme  string      `json:"lexeme,omitempty" msgpack:"lexeme,omitempty"`
	Literal string      `json:"literal,omitempty" msgpack:"literal,omitempty"`
	Span    source.Span `json:"span" msgpack:"span"`
}

func tokenOutputs(tokens []token.Token) []TokenOutput {
	out := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		to := TokenOutput{
			Kind:   tok.Kind.String(),
			Lexeme: tok.Lexeme,
			Span:   tok.Span,
		}
		// Literal дублирует Lexeme у идентификаторов: не засоряем вывод
		if tok.IsLiteral() {
			to.Literal = tok.Literal
		}
		out = append(out, to)
		if tok.Kind == token.EOF {
			break
		}
	}
	return out
}

// FormatTokensPretty выводит токены в человекочитаемом формате:
//
//	  1: Ident        "x"     at 1:0-1:1
func FormatTokensPretty(w io.Writer, tokens []token.Token) error {
	for i, to := range tokenOutputs(tokens) {
		text := ""
		if to.Lexeme != "" {
			text = fmt.Sprintf("%q", to.Lexeme)
		}
		if to.Literal != "" && to.Literal != to.Lexeme {
			text += fmt.Sprintf(" (%q)", to.Literal)
		}
		sp := to.Span
		if _, err := fmt.Fprintf(w, "%3d: %-12s %-16s at %d:%d-%d:%d\n",
			i+1, to.Kind, text, sp.StartLine, sp.StartCol, sp.EndLine, sp.EndCol); err != nil {
			return err
		}
	}
	return nil
}

// FormatTokensJSON выводит токены в JSON формате
func FormatTokensJSON(w io.Writer, tokens []token.Token) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(tokenOutputs(tokens))
}

// FormatTokensMsgpack writes the same records as FormatTokensJSON in MessagePack.
func FormatTokensMsgpack(w io.Writer, tokens []token.Token) error {
	enc := msgpack.NewEncoder(w)
	enc.UseCompactInts(true)
	return enc.Encode(tokenOutputs(tokens))
}
