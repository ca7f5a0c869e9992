package lexer_test

import (
	"strings"
	"testing"

	"rig/internal/diag"
	"rig/internal/lexer"
	"rig/internal/source"
	"rig/internal/token"
)

// testReporter собирает все диагностики, полученные от лексера
type testReporter struct {
	diagnostics []diag.Diagnostic
}

func (r *testReporter) Report(code diag.Code, sev diag.Severity, primary source.Span, msg string, hint *diag.Hint, notes []diag.Note) {
	r.diagnostics = append(r.diagnostics, diag.Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  msg,
		Primary:  primary,
		Hint:     hint,
		Notes:    notes,
	})
}

func (r *testReporter) codes() []diag.Code {
	out := make([]diag.Code, 0, len(r.diagnostics))
	for _, d := range r.diagnostics {
		out = append(out, d.Code)
	}
	return out
}

func lexAll(t *testing.T, input string) ([]token.Token, *testReporter) {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.rig", []byte(input)))
	rep := &testReporter{}
	lx := lexer.New(file, lexer.Options{Reporter: rep})
	toks := lx.Lex()
	if lx.ErrorCount() != len(rep.diagnostics) {
		t.Fatalf("ErrorCount() = %d, reporter saw %d", lx.ErrorCount(), len(rep.diagnostics))
	}
	return toks, rep
}

func kindsOf(toks []token.Token) []token.Kind {
	out := make([]token.Kind, 0, len(toks))
	for _, tok := range toks {
		out = append(out, tok.Kind)
	}
	return out
}

func tokensToString(toks []token.Token) string {
	parts := make([]string, 0, len(toks))
	for _, tok := range toks {
		parts = append(parts, tok.Kind.String()+"("+tok.Lexeme+")")
	}
	return strings.Join(parts, " ")
}

// expectTokens checks kinds (EOF is appended automatically) and that no errors were reported.
func expectTokens(t *testing.T, input string, expected ...token.Kind) []token.Token {
	t.Helper()
	toks, rep := lexAll(t, input)
	if len(rep.diagnostics) != 0 {
		t.Fatalf("input %q: unexpected diagnostics %v", input, rep.codes())
	}
	expected = append(expected, token.EOF)
	got := kindsOf(toks)
	if len(got) != len(expected) {
		t.Fatalf("input %q: got %s, want %v", input, tokensToString(toks), expected)
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Fatalf("input %q: token %d is %v, want %v (all: %s)", input, i, got[i], expected[i], tokensToString(toks))
		}
	}
	return toks
}

func TestPunctuation(t *testing.T) {
	expectTokens(t, "(){}[],;.",
		token.LParen, token.RParen, token.LBrace, token.RBrace,
		token.LBracket, token.RBracket, token.Comma, token.Semicolon, token.Dot)
}

func TestOperators_LongestMatch(t *testing.T) {
	tests := []struct {
		input string
		want  token.Kind
	}{
		{":", token.Colon}, {"::", token.ColonColon},
		{"!", token.Bang}, {"!=", token.BangEq},
		{"+", token.Plus}, {"+=", token.PlusAssign},
		{"-", token.Minus}, {"-=", token.MinusAssign}, {"->", token.Arrow},
		{"*", token.Star}, {"*=", token.StarAssign},
		{"/", token.Slash}, {"/=", token.SlashAssign},
		{"%", token.Percent}, {"%=", token.PercentAssign},
		{"&", token.Amp}, {"&=", token.AmpAssign}, {"&&", token.AndAnd},
		{"|", token.Pipe}, {"|=", token.PipeAssign}, {"||", token.OrOr},
		{"=", token.Assign}, {"==", token.EqEq}, {"=>", token.FatArrow},
		{"^", token.Caret}, {"^=", token.CaretAssign},
		{"<", token.Lt}, {"<=", token.LtEq}, {"<<", token.Shl}, {"<<=", token.ShlAssign},
		{">", token.Gt}, {">=", token.GtEq}, {">>", token.Shr}, {">>=", token.ShrAssign},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			toks := expectTokens(t, tt.input, tt.want)
			if toks[0].Lexeme != tt.input {
				t.Errorf("lexeme = %q, want %q", toks[0].Lexeme, tt.input)
			}
		})
	}
}

func TestOperators_Greedy(t *testing.T) {
	expectTokens(t, "<<==", token.ShlAssign, token.Assign)
	expectTokens(t, ">>>=", token.Shr, token.GtEq)
	expectTokens(t, ":::", token.ColonColon, token.Colon)
	expectTokens(t, "->>", token.Arrow, token.Gt)
	expectTokens(t, "a-=1", token.Ident, token.MinusAssign, token.NumberLit)
	expectTokens(t, "===>", token.EqEq, token.FatArrow)
}

func TestKeywordsAndIdentifiers(t *testing.T) {
	toks := expectTokens(t, "self selfish _x let true null x1 ünï",
		token.Keyword, token.Ident, token.Ident, token.Keyword,
		token.Keyword, token.Keyword, token.Ident, token.Ident)
	if toks[1].Lexeme != "selfish" || toks[1].Literal != "selfish" {
		t.Errorf("ident token = %+v", toks[1])
	}
	if toks[7].Span.StartCol != 33 || toks[7].Span.EndCol != 36 {
		t.Errorf("unicode ident span = %v, want cols 33..36", toks[7].Span)
	}
}

func TestNumbers(t *testing.T) {
	toks := expectTokens(t, "0 42 3.14 7.", token.NumberLit, token.NumberLit, token.NumberLit, token.NumberLit)
	want := []string{"0", "42", "3.14", "7."}
	for i, w := range want {
		if toks[i].Lexeme != w || toks[i].Literal != w {
			t.Errorf("number %d = %q/%q, want %q", i, toks[i].Lexeme, toks[i].Literal, w)
		}
	}
	// точка перед цифрой: отдельный токен
	expectTokens(t, ".5", token.Dot, token.NumberLit)
}

func TestNumbers_SecondDotRecovers(t *testing.T) {
	toks, rep := lexAll(t, "1.2.3 x")
	if len(rep.diagnostics) != 1 {
		t.Fatalf("diagnostics = %v, want one", rep.codes())
	}
	d := rep.diagnostics[0]
	if d.Code != diag.LexInvalidNumber || d.Severity != diag.SevError {
		t.Errorf("got %v/%v", d.Code, d.Severity)
	}
	if want := source.CharSpan(0, 1, 3); d.Primary != want {
		t.Errorf("primary = %v, want %v", d.Primary, want)
	}
	if d.Hint == nil || d.Hint.Msg != "remove this" || d.Hint.Span != d.Primary {
		t.Errorf("hint = %+v", d.Hint)
	}
	// "1.2" is dropped, lexing continues with "3"
	if got := tokensToString(toks); got != "NumberLit(3) Ident(x) EOF()" {
		t.Errorf("tokens = %s", got)
	}
}

func TestString_Simple(t *testing.T) {
	toks := expectTokens(t, `"hello world"`, token.StringLit)
	if toks[0].Lexeme != `"hello world"` {
		t.Errorf("lexeme = %q", toks[0].Lexeme)
	}
	if toks[0].Literal != "hello world" {
		t.Errorf("literal = %q", toks[0].Literal)
	}
}

func TestString_Escapes(t *testing.T) {
	tests := []struct {
		input   string
		literal string
	}{
		{`"a\nb"`, "a\nb"},
		{`"\t\r\0"`, "\t\r\x00"},
		{`"q\"q"`, `q"q`},
		{`"\\"`, `\`},
		{`"it\'s"`, "it's"},
	}
	for _, tt := range tests {
		toks := expectTokens(t, tt.input, token.StringLit)
		if toks[0].Lexeme != tt.input {
			t.Errorf("lexeme = %q, want %q", toks[0].Lexeme, tt.input)
		}
		if toks[0].Literal != tt.literal {
			t.Errorf("literal = %q, want %q", toks[0].Literal, tt.literal)
		}
	}
}

func TestString_Multiline(t *testing.T) {
	toks := expectTokens(t, "\"a\nb\" c", token.StringLit, token.Ident)
	if toks[0].Literal != "a\nb" {
		t.Errorf("literal = %q", toks[0].Literal)
	}
	want := source.Span{StartLine: 1, StartCol: 0, EndLine: 2, EndCol: 2}
	if toks[0].Span != want {
		t.Errorf("span = %v, want %v", toks[0].Span, want)
	}
	if toks[1].Span != source.LineSpan(0, 2, 3, 4) {
		t.Errorf("ident span = %v", toks[1].Span)
	}
}

func TestString_Unterminated(t *testing.T) {
	toks, rep := lexAll(t, `"abc`)
	if len(toks) != 1 || toks[0].Kind != token.EOF {
		t.Fatalf("tokens = %s, want only EOF", tokensToString(toks))
	}
	if len(rep.diagnostics) != 1 {
		t.Fatalf("diagnostics = %v", rep.codes())
	}
	d := rep.diagnostics[0]
	if d.Code != diag.LexUnterminatedString {
		t.Fatalf("code = %v", d.Code)
	}
	if d.Primary != source.LineSpan(0, 1, 0, 4) {
		t.Errorf("primary = %v", d.Primary)
	}
	if d.Hint == nil || !strings.Contains(d.Hint.Msg, `"`) {
		t.Errorf("hint = %+v, want a suggestion to insert a quote", d.Hint)
	}
}

func TestString_InvalidEscape(t *testing.T) {
	toks, rep := lexAll(t, `"a\qb" x`)
	if len(rep.diagnostics) == 0 || rep.diagnostics[0].Code != diag.LexInvalidEscape {
		t.Fatalf("diagnostics = %v", rep.codes())
	}
	if got := rep.diagnostics[0].Primary; got != source.LineSpan(0, 1, 2, 4) {
		t.Errorf("escape span = %v", got)
	}
	if !strings.Contains(rep.diagnostics[0].Message, `\q`) {
		t.Errorf("message = %q", rep.diagnostics[0].Message)
	}
	// лексинг продолжается с `q`: qb, затем новая незакрытая строка от закрывающей кавычки
	if got := tokensToString(toks); got != "Ident(qb) EOF()" {
		t.Errorf("tokens = %s", got)
	}
	if got := rep.codes(); len(got) != 2 || got[1] != diag.LexUnterminatedString {
		t.Errorf("diagnostics = %v", got)
	}
}

func TestString_InvalidEscapeBeforeQuote(t *testing.T) {
	// пробел после `\` лексится заново, кавычка открывает новую строку
	toks, rep := lexAll(t, `"\ " y`)
	if got := rep.codes(); len(got) != 2 || got[0] != diag.LexInvalidEscape || got[1] != diag.LexUnterminatedString {
		t.Fatalf("diagnostics = %v", got)
	}
	if got := tokensToString(toks); got != "EOF()" {
		t.Errorf("tokens = %s", got)
	}
}

func TestString_EOFAfterBackslash(t *testing.T) {
	toks, rep := lexAll(t, `"abc\`)
	if got := rep.codes(); len(got) != 1 || got[0] != diag.LexUnexpectedEOF {
		t.Fatalf("diagnostics = %v, want only unexpected EOF", got)
	}
	if len(toks) != 1 {
		t.Fatalf("tokens = %s", tokensToString(toks))
	}
}

func TestComments(t *testing.T) {
	toks := expectTokens(t, "a # comment ( \" \nb", token.Ident, token.Ident)
	if toks[1].Span.StartLine != 2 || toks[1].Span.StartCol != 0 {
		t.Errorf("b span = %v", toks[1].Span)
	}
	expectTokens(t, "# only a comment")
}

func TestUnknownCharacter(t *testing.T) {
	toks, rep := lexAll(t, "a $ b @ c")
	if got := rep.codes(); len(got) != 2 || got[0] != diag.LexUnknownChar || got[1] != diag.LexUnknownChar {
		t.Fatalf("diagnostics = %v", got)
	}
	if rep.diagnostics[0].Primary != source.CharSpan(0, 1, 2) {
		t.Errorf("span = %v", rep.diagnostics[0].Primary)
	}
	if got := tokensToString(toks); got != "Ident(a) Ident(b) Ident(c) EOF()" {
		t.Errorf("tokens = %s", got)
	}
}

func TestEOFSentinel(t *testing.T) {
	inputs := []string{"", "   \n\t", "a", "\"abc", "1.2.3", "$", "x\n"}
	for _, in := range inputs {
		toks, _ := lexAll(t, in)
		eofs := 0
		for _, tok := range toks {
			if tok.Kind == token.EOF {
				eofs++
			}
		}
		last := toks[len(toks)-1]
		if eofs != 1 || last.Kind != token.EOF {
			t.Errorf("input %q: %s", in, tokensToString(toks))
		}
		if !last.Span.Empty() {
			t.Errorf("input %q: EOF span %v is not zero-width", in, last.Span)
		}
	}

	toks, _ := lexAll(t, "ab\ncd")
	if eof := toks[len(toks)-1]; eof.Span != source.PointSpan(0, 2, 2) {
		t.Errorf("EOF span = %v", eof.Span)
	}
	// EOF стоит после хвостовых пробелов и комментариев, а не в конце последнего токена
	toks, _ = lexAll(t, "x  # note\n")
	if eof := toks[len(toks)-1]; eof.Span != source.PointSpan(0, 2, 0) {
		t.Errorf("EOF span after trailing comment = %v", eof.Span)
	}
}

func TestLexer_NextAfterEOF(t *testing.T) {
	fs := source.NewFileSet()
	lx := lexer.New(fs.Get(fs.AddVirtual("t.rig", []byte("x"))), lexer.Options{})
	if tok := lx.Next(); tok.Kind != token.Ident {
		t.Fatalf("first token = %v", tok.Kind)
	}
	for i := 0; i < 3; i++ {
		if tok := lx.Next(); tok.Kind != token.EOF {
			t.Fatalf("call %d after end = %v", i, tok.Kind)
		}
	}
}

func TestTokenize(t *testing.T) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("t.rig", []byte("a.b = \"x\\y\" $")))
	toks, diags := lexer.Tokenize(file)
	if len(diags) != 2 {
		t.Fatalf("diagnostics = %d, want 2", len(diags))
	}
	if diags[0].Code != diag.LexInvalidEscape || diags[1].Code != diag.LexUnterminatedString {
		t.Errorf("codes = %v, %v", diags[0].Code, diags[1].Code)
	}
	if got := tokensToString(toks); !strings.HasPrefix(got, "Ident(a) Dot(.) Ident(b) Assign(=)") {
		t.Errorf("tokens = %s", got)
	}
}

func TestLexer_SimpleExpression(t *testing.T) {
	expectTokens(t, "x = foo::bar(1, \"s\").baz;",
		token.Ident, token.Assign, token.Ident, token.ColonColon, token.Ident,
		token.LParen, token.NumberLit, token.Comma, token.StringLit, token.RParen,
		token.Dot, token.Ident, token.Semicolon)
}

func BenchmarkLexer_LargeFile(b *testing.B) {
	src := strings.Repeat("let x = a.b(1, 2.5) << 3 # comment\nname::path = \"s\\n\";\n", 500)
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("bench.rig", []byte(src)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		lexer.New(file, lexer.Options{}).Lex()
	}
}
