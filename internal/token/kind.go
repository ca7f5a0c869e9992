package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token. The lexer never emits it.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	LParen    // (
	RParen    // )
	LBrace    // {
	RBrace    // }
	LBracket  // [
	RBracket  // ]
	Comma     // ,
	Semicolon // ;
	Dot       // .

	Colon      // :
	ColonColon // ::

	Bang   // !
	BangEq // !=

	Plus        // +
	PlusAssign  // +=
	Minus       // -
	MinusAssign // -=
	Arrow       // ->

	Star          // *
	StarAssign    // *=
	Slash         // /
	SlashAssign   // /=
	Percent       // %
	PercentAssign // %=

	Amp        // &
	AmpAssign  // &=
	AndAnd     // &&
	Pipe       // |
	PipeAssign // |=
	OrOr       // ||

	Assign   // =
	EqEq     // ==
	FatArrow // =>

	Caret       // ^
	CaretAssign // ^=

	Lt        // <
	LtEq      // <=
	Shl       // <<
	ShlAssign // <<=
	Gt        // >
	GtEq      // >=
	Shr       // >>
	ShrAssign // >>=

	// StringLit is a double-quoted string; Literal holds the decoded text.
	StringLit
	// NumberLit is an integer or float literal; the parser tells them apart.
	NumberLit
	// Ident represents an identifier token.
	Ident
	// Keyword is an identifier-shaped lexeme found in the keyword table.
	Keyword

	kindCount
)

var kindNames = [...]string{
	Invalid:       "Invalid",
	EOF:           "EOF",
	LParen:        "LParen",
	RParen:        "RParen",
	LBrace:        "LBrace",
	RBrace:        "RBrace",
	LBracket:      "LBracket",
	RBracket:      "RBracket",
	Comma:         "Comma",
	Semicolon:     "Semicolon",
	Dot:           "Dot",
	Colon:         "Colon",
	ColonColon:    "ColonColon",
	Bang:          "Bang",
	BangEq:        "BangEq",
	Plus:          "Plus",
	PlusAssign:    "PlusAssign",
	Minus:         "Minus",
	MinusAssign:   "MinusAssign",
	Arrow:         "Arrow",
	Star:          "Star",
	StarAssign:    "StarAssign",
	Slash:         "Slash",
	SlashAssign:   "SlashAssign",
	Percent:       "Percent",
	PercentAssign: "PercentAssign",
	Amp:           "Amp",
	AmpAssign:     "AmpAssign",
	AndAnd:        "AndAnd",
	Pipe:          "Pipe",
	PipeAssign:    "PipeAssign",
	OrOr:          "OrOr",
	Assign:        "Assign",
	EqEq:          "EqEq",
	FatArrow:      "FatArrow",
	Caret:         "Caret",
	CaretAssign:   "CaretAssign",
	Lt:            "Lt",
	LtEq:          "LtEq",
	Shl:           "Shl",
	ShlAssign:     "ShlAssign",
	Gt:            "Gt",
	GtEq:          "GtEq",
	Shr:           "Shr",
	ShrAssign:     "ShrAssign",
	StringLit:     "StringLit",
	NumberLit:     "NumberLit",
	Ident:         "Ident",
	Keyword:       "Keyword",
}

// spellings holds the fixed text of punctuation and operator kinds.
var spellings = [...]string{
	LParen: "(", RParen: ")", LBrace: "{", RBrace: "}", LBracket: "[", RBracket: "]",
	Comma: ",", Semicolon: ";", Dot: ".",
	Colon: ":", ColonColon: "::",
	Bang: "!", BangEq: "!=",
	Plus: "+", PlusAssign: "+=", Minus: "-", MinusAssign: "-=", Arrow: "->",
	Star: "*", StarAssign: "*=", Slash: "/", SlashAssign: "/=", Percent: "%", PercentAssign: "%=",
	Amp: "&", AmpAssign: "&=", AndAnd: "&&", Pipe: "|", PipeAssign: "|=", OrOr: "||",
	Assign: "=", EqEq: "==", FatArrow: "=>",
	Caret: "^", CaretAssign: "^=",
	Lt: "<", LtEq: "<=", Shl: "<<", ShlAssign: "<<=",
	Gt: ">", GtEq: ">=", Shr: ">>", ShrAssign: ">>=",
}

func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return "Kind(?)"
}

// Spelling returns the source text of a punctuation or operator kind,
// or "" for kinds without fixed text.
func (k Kind) Spelling() string {
	if int(k) < len(spellings) {
		return spellings[k]
	}
	return ""
}
