package parser

import (
	"rig/internal/ast"
	"rig/internal/diag"
	"rig/internal/source"
	"rig/internal/token"
)

// advance: съедает текущий токен и обновляет lastSpan. EOF never moves.
func (p *Parser) advance() token.Token {
	tok := p.peek()
	if tok.Kind != token.EOF {
		p.pos++
		p.lastSpan = tok.Span
	}
	return tok
}

// expect is the consume primitive: if the current token has kind k it is
// consumed and returned. Otherwise an error with msg (and hint, when not
// empty) is reported at the current token and ok is false.
func (p *Parser) expect(k token.Kind, code diag.Code, msg, hint string) (token.Token, bool) {
	if p.at(k) {
		return p.advance(), true
	}
	sp := p.peek().Span
	if hint != "" {
		p.reportHint(code, sp, msg, sp, hint)
	} else {
		p.report(code, diag.SevError, sp, msg)
	}
	return token.Token{Kind: token.Invalid, Span: sp, Lexeme: p.peek().Lexeme}, false
}

// репортует ошибку на текущем токене
func (p *Parser) err(code diag.Code, msg string) bool {
	return p.report(code, diag.SevError, p.peek().Span, msg)
}

func (p *Parser) report(code diag.Code, sev diag.Severity, sp source.Span, msg string) bool {
	return p.emit(diag.NewReportBuilder(p.opts.Reporter, sev, code, sp, msg))
}

func (p *Parser) reportHint(code diag.Code, sp source.Span, msg string, hintSpan source.Span, hint string) bool {
	return p.emit(diag.ReportError(p.opts.Reporter, code, sp, msg).WithHint(hintSpan, hint))
}

func (p *Parser) emit(b *diag.ReportBuilder) bool {
	d := b.Diagnostic()
	if p.opts.Reporter == nil || p.opts.Enough() {
		return false // нет reporter или достигли лимита
	}
	if d.Severity == diag.SevError {
		p.opts.CurrentErrors++
	}
	b.Emit()
	return true
}

// spanOf returns the span of an already built expression.
func (p *Parser) spanOf(id ast.ExprID) source.Span {
	return p.arenas.Exprs.Get(id).Span
}

func (p *Parser) intern(s string) source.StringID {
	return p.arenas.Strings.Intern(s)
}
