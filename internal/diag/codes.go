package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Лексические
	LexInfo               Code = 1000
	LexUnknownChar        Code = 1001
	LexUnterminatedString Code = 1002
	LexInvalidNumber      Code = 1003
	LexInvalidEscape      Code = 1004
	LexUnexpectedEOF      Code = 1005

	// Парсерные
	SynInfo              Code = 2000
	SynExpectPrimary     Code = 2001
	SynExpectToken       Code = 2002
	SynUnexpectedKeyword Code = 2003
	SynInvalidAssignment Code = 2004
	SynUnclosedParen     Code = 2005

	// Анализ (только предупреждения)
	SemaInfo        Code = 3000
	SemaSelfAssign  Code = 3001
	SemaDivByZero   Code = 3002
	SemaSelfCompare Code = 3003

	IOLoadFileError Code = 4001
)

var codeDescription = map[Code]string{
	UnknownCode:           "Unknown error",
	LexInfo:               "Lexical information",
	LexUnknownChar:        "Unknown character",
	LexUnterminatedString: "Unterminated string literal",
	LexInvalidNumber:      "Invalid integer literal",
	LexInvalidEscape:      "Invalid escape character",
	LexUnexpectedEOF:      "Unexpected end of input",
	SynInfo:               "Syntax information",
	SynExpectPrimary:      "Expected primary expression",
	SynExpectToken:        "Missing expected token",
	SynUnexpectedKeyword:  "Unexpected keyword",
	SynInvalidAssignment:  "Invalid assignment target",
	SynUnclosedParen:      "Unclosed parenthesis",
	SemaInfo:              "Semantic information",
	SemaSelfAssign:        "Self assignment",
	SemaDivByZero:         "Division by zero",
	SemaSelfCompare:       "Comparison with itself",
	IOLoadFileError:       "Failed to load file",
}

// ID is the stable string form: LEX1001, SYN2004, SEM3002, IO4001.
func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("SEM%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
