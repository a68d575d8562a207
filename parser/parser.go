/*
File    : hydrogen/parser/parser.go
Package : parser
*/

// Package parser consumes a Hydrogen token stream and produces a Program
// AST, performing name-resolution scope validation inline as it goes
// (spec.md §4.2). It never looks back at already-emitted nodes and never
// mutates a node after construction; the AST it hands back is read-only
// from the generator's point of view (spec.md §3).
package parser

import (
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/prakhar479/hydrogen/internal/diag"
	"github.com/prakhar479/hydrogen/lexer"
	"github.com/prakhar479/hydrogen/scope"
)

// Parser is a recursive-descent parser with a Pratt-style expression
// sublayer. It holds the entire token slice and a cursor into it — there
// is no explicit EOF token (spec.md §3), so "end of stream" is the cursor
// reaching len(tokens).
type Parser struct {
	tokens []lexer.Token
	pos    int
	names  *scope.Scope
	log    *logrus.Logger
}

// New creates a Parser over an already-lexed token stream, tracing at
// Debug level through the standard logrus logger (silent unless the
// caller raises its level — see cmd/hydrogenc's --verbose flag).
func New(tokens []lexer.Token) *Parser {
	return &Parser{tokens: tokens, names: scope.New(), log: logrus.StandardLogger()}
}

// WithLogger overrides the parser's logger, for callers (tests, the CLI)
// that want to capture or silence trace output.
func (p *Parser) WithLogger(log *logrus.Logger) *Parser {
	p.log = log
	return p
}

// Parse lexes nothing itself — tokens must already be produced by
// lexer.Lex — and returns the parsed Program, or the first *diag.Error
// encountered (syntactic or name-resolution).
func Parse(tokens []lexer.Token) (*Program, error) {
	return New(tokens).ParseProgram()
}

// ParseProgram parses { FunctionDef | Statement } until the token stream
// is exhausted (spec.md §6 BNF).
func (p *Parser) ParseProgram() (*Program, error) {
	prog := &Program{}
	for !p.atEnd() {
		stmt, err := p.parseStatement(false)
		if err != nil {
			return nil, err
		}
		prog.Stmts = append(prog.Stmts, stmt)
	}
	return prog, nil
}

// atEnd reports whether the cursor has consumed every token.
func (p *Parser) atEnd() bool {
	return p.pos >= len(p.tokens)
}

// currentKind returns the kind of the token under the cursor, or "" if the
// stream is exhausted — "" never matches any real Kind, so callers can
// compare against it directly without a separate atEnd() check in most
// dispatch switches.
func (p *Parser) currentKind() lexer.Kind {
	if p.atEnd() {
		return ""
	}
	return p.tokens[p.pos].Kind
}

// peekKind looks ahead n tokens past the cursor (n=1 is the token right
// after current).
func (p *Parser) peekKind(n int) lexer.Kind {
	i := p.pos + n
	if i < 0 || i >= len(p.tokens) {
		return ""
	}
	return p.tokens[i].Kind
}

// currentPos reports the diag.Pos of the token under the cursor, or the
// position just past the last token if the stream is exhausted.
func (p *Parser) currentPos() diag.Pos {
	if !p.atEnd() {
		t := p.tokens[p.pos]
		return diag.Pos{Line: t.Line, Col: t.Col}
	}
	if len(p.tokens) > 0 {
		last := p.tokens[len(p.tokens)-1]
		return diag.Pos{Line: last.Line, Col: last.Col + len(last.Lexeme)}
	}
	return diag.Pos{}
}

// advance consumes and returns the token under the cursor. Callers must
// only call advance after confirming (via currentKind or expect) that a
// token is actually present.
func (p *Parser) advance() lexer.Token {
	t := p.tokens[p.pos]
	p.pos++
	return t
}

// expect consumes the current token if it has the given kind, otherwise
// returns a Syntactic *diag.Error naming what was expected versus what was
// found (spec.md §7 category 2).
func (p *Parser) expect(kind lexer.Kind) (lexer.Token, error) {
	if p.atEnd() {
		return lexer.Token{}, diag.Newf(diag.Syntactic, p.currentPos(),
			"unexpected end of input, expected %s", kind)
	}
	t := p.tokens[p.pos]
	if t.Kind != kind {
		return lexer.Token{}, diag.Newf(diag.Syntactic, diag.Pos{Line: t.Line, Col: t.Col},
			"expected %s, found %s", kind, t)
	}
	p.pos++
	return t, nil
}

// parseIntLexeme converts an already-validated all-digit INT lexeme into
// an int64. The lexer guarantees the lexeme is all digits, so the only way
// this fails is an out-of-range literal — an unreachable-in-practice but
// legitimate Syntactic failure rather than an Internal one, since it's a
// property of the user's source text.
func parseIntLexeme(lexeme string, at diag.Pos) (int64, error) {
	v, err := strconv.ParseInt(lexeme, 10, 64)
	if err != nil {
		return 0, diag.Newf(diag.Syntactic, at, "integer literal %q out of range", lexeme)
	}
	return v, nil
}
