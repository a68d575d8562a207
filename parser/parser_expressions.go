/*
File    : hydrogen/parser/parser_expressions.go
Package : parser
*/
package parser

import "github.com/prakhar479/hydrogen/lexer"

// parsePrimary parses the atoms a binary expression is built from: an
// integer literal, an identifier (or a call, if followed immediately by
// '('), a parenthesized sub-expression, or a brace-delimited
// block-expression (spec.md §4.2 step 1).
func (p *Parser) parsePrimary() (Expr, error) {
	switch p.currentKind() {
	case lexer.INT:
		tok := p.advance()
		v, err := parseIntLexeme(tok.Lexeme, tokenPos(tok))
		if err != nil {
			return nil, err
		}
		return &IntLit{Value: v}, nil

	case lexer.IDENT:
		nameTok := p.advance()
		if p.currentKind() == lexer.LPAREN {
			return p.finishCall(nameTok)
		}
		if !p.names.HasVar(nameTok.Lexeme) {
			return nil, nameErrorf(nameTok, "undeclared variable %q", nameTok.Lexeme)
		}
		return &Ident{Name: nameTok.Lexeme}, nil

	case lexer.LPAREN:
		p.advance()
		inner, err := p.parseBinary(0)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.RPAREN); err != nil {
			return nil, err
		}
		return inner, nil

	case lexer.LBRACE:
		block, err := p.parseBlock(true)
		if err != nil {
			return nil, err
		}
		return &BlockExpr{Block: block}, nil

	default:
		return nil, syntaxErrorf(p, "unexpected token %s in expression", p.currentDescription())
	}
}

// finishCall parses the "(" Expr {";" Expr} ")" tail of a call once nameTok
// (the callee identifier) has already been consumed. Rejects calls to
// functions not yet introduced by a FunctionDef (spec.md §3, §4.2 — no
// forward references).
func (p *Parser) finishCall(nameTok lexer.Token) (*FunctionCall, error) {
	if !p.names.HasFunc(nameTok.Lexeme) {
		return nil, nameErrorf(nameTok, "call to undefined function %q", nameTok.Lexeme)
	}
	if _, err := p.expect(lexer.LPAREN); err != nil {
		return nil, err
	}
	var args []Expr
	if p.currentKind() != lexer.RPAREN {
		for {
			arg, err := p.parseBinary(0)
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if p.currentKind() == lexer.EOS {
				p.advance()
				continue
			}
			break
		}
	}
	if _, err := p.expect(lexer.RPAREN); err != nil {
		return nil, err
	}
	return &FunctionCall{Name: nameTok.Lexeme, Args: args}, nil
}
