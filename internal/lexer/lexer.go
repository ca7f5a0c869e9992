package lexer

import (
	"rig/internal/diag"
	"rig/internal/source"
	"rig/internal/token"
)

// Lexer turns one source file into tokens. It never stops on a bad
// character: every fault is reported and scanning resumes.
type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	errors int
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
	}
}

// Next returns the next token. Faulty lexemes are reported and skipped,
// so Next only ever returns well-formed tokens. After EOF it keeps returning EOF.
func (lx *Lexer) Next() token.Token {
	for !lx.cursor.EOF() {
		if tok, ok := lx.scanOne(); ok {
			return tok
		}
	}
	return token.Token{
		Kind: token.EOF,
		Span: source.PointSpan(lx.file.ID, lx.cursor.Line, lx.cursor.Col),
	}
}

// Lex runs the whole file. The result always ends with exactly one EOF token.
func (lx *Lexer) Lex() []token.Token {
	tokens := make([]token.Token, 0, len(lx.file.Content)/4+1)
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			return tokens
		}
	}
}

// ErrorCount is the number of lexical errors seen so far.
func (lx *Lexer) ErrorCount() int {
	return lx.errors
}

// scanOne consumes at least one code point. ok is false when nothing was
// produced: whitespace, a comment or a reported fault.
func (lx *Lexer) scanOne() (token.Token, bool) {
	ch := lx.cursor.Peek()

	if k, ok := singleCharKind(ch); ok {
		start := lx.cursor.Mark()
		lx.cursor.Bump()
		return lx.emit(k, start), true
	}
	if isOperatorStart(ch) {
		return lx.scanOperator(), true
	}

	switch r, _ := lx.cursor.PeekRune(); {
	case ch == '#':
		lx.skipLineComment()
		return token.Token{}, false
	case ch == '"':
		return lx.scanString()
	case isIdentStartRune(r):
		return lx.scanIdentOrKeyword(), true
	case isDec(ch):
		return lx.scanNumber()
	case isSpace(r):
		lx.cursor.Bump()
		return token.Token{}, false
	default:
		start := lx.cursor.Mark()
		lx.cursor.Bump()
		lx.report(diag.LexUnknownChar, lx.cursor.SpanFrom(start), "unknown character `"+lx.cursor.TextFrom(start)+"`")
		return token.Token{}, false
	}
}

// emit builds a token whose lexeme and literal are the raw text since start.
func (lx *Lexer) emit(k token.Kind, start Mark) token.Token {
	text := lx.cursor.TextFrom(start)
	return token.Token{
		Kind:    k,
		Span:    lx.cursor.SpanFrom(start),
		Lexeme:  text,
		Literal: text,
	}
}

func (lx *Lexer) skipLineComment() {
	for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
		lx.cursor.Bump()
	}
}

// Tokenize lexes file and returns the tokens together with the lexical
// diagnostics in source order.
func Tokenize(file *source.File) ([]token.Token, []diag.Diagnostic) {
	bag := diag.NewBag(0)
	lx := New(file, Options{Reporter: diag.BagReporter{Bag: bag}})
	tokens := lx.Lex()
	return tokens, bag.Items()
}
