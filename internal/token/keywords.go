package token

// keywords is the fixed reserved word table. Read-only after init.
var keywords = map[string]struct{}{
	"fn":       {},
	"let":      {},
	"mut":      {},
	"const":    {},
	"if":       {},
	"else":     {},
	"while":    {},
	"for":      {},
	"in":       {},
	"loop":     {},
	"break":    {},
	"continue": {},
	"return":   {},
	"struct":   {},
	"impl":     {},
	"enum":     {},
	"match":    {},
	"use":      {},
	"mod":      {},
	"pub":      {},
	"as":       {},
	"true":     {},
	"false":    {},
	"null":     {},
	"self":     {},
}

// IsKeyword reports whether ident is reserved.
// Ключевые слова регистрозависимые.
func IsKeyword(ident string) bool {
	_, ok := keywords[ident]
	return ok
}

// LookupKeyword classifies an identifier-shaped lexeme as Keyword or Ident.
func LookupKeyword(ident string) (Kind, bool) {
	if IsKeyword(ident) {
		return Keyword, true
	}
	return Ident, false
}

// Keywords returns the reserved words in no particular order.
func Keywords() []string {
	out := make([]string, 0, len(keywords))
	for k := range keywords {
		out = append(out, k)
	}
	return out
}
