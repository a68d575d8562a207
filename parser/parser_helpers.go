/*
File    : hydrogen/parser/parser_helpers.go
Package : parser
*/
package parser

import (
	"github.com/prakhar479/hydrogen/internal/diag"
	"github.com/prakhar479/hydrogen/lexer"
)

// tokenPos converts a lexer.Token's position into a diag.Pos.
func tokenPos(t lexer.Token) diag.Pos {
	return diag.Pos{Line: t.Line, Col: t.Col}
}

// nameErrorf builds a NameResolution *diag.Error positioned at tok.
func nameErrorf(tok lexer.Token, format string, args ...any) error {
	return diag.Newf(diag.NameResolution, tokenPos(tok), format, args...)
}

// syntaxErrorf builds a Syntactic *diag.Error positioned at the parser's
// current cursor.
func syntaxErrorf(p *Parser, format string, args ...any) error {
	return diag.Newf(diag.Syntactic, p.currentPos(), format, args...)
}

// currentDescription renders the token under the cursor (or "end of
// input") for error messages.
func (p *Parser) currentDescription() string {
	if p.atEnd() {
		return "end of input"
	}
	return p.tokens[p.pos].String()
}
