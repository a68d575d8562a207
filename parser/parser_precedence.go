/*
File    : hydrogen/parser/parser_precedence.go
Package : parser
*/
package parser

import "github.com/prakhar479/hydrogen/lexer"

// precedenceTable maps a binary operator token kind to its binding power.
// Higher binds tighter. Every operator is left-associative; parentheses
// are the only way to override this (spec.md §3, §4.2).
var precedenceTable = map[lexer.Kind]int{
	lexer.STAR:    5,
	lexer.PERCENT: 5,
	lexer.PLUS:    4,
	lexer.MINUS:   4,
	lexer.LT:      3,
	lexer.GT:      3,
	lexer.EQ:      3,
}

// precedence reports the binding power of kind, or ok=false if kind is not
// a binary operator at all.
func precedence(kind lexer.Kind) (prec int, ok bool) {
	prec, ok = precedenceTable[kind]
	return prec, ok
}

// parseBinary implements precedence-climbing (Pratt-style) expression
// parsing (spec.md §4.2): parse a primary, then repeatedly consume any
// operator whose precedence is at least minPrec, recursing on the
// right-hand side with prec+1 so that equal-precedence operators bind
// left — e.g. 10-4-3 parses as (10-4)-3.
func (p *Parser) parseBinary(minPrec int) (Expr, error) {
	left, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}

	for !p.atEnd() {
		kind := p.currentKind()
		prec, ok := precedence(kind)
		if !ok || prec < minPrec {
			break
		}
		opTok := p.advance()
		right, err := p.parseBinary(prec + 1)
		if err != nil {
			return nil, err
		}
		left = &BinaryOp{Left: left, Op: opTok.Kind, Right: right}
	}
	return left, nil
}
