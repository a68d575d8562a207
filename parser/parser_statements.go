/*
File    : hydrogen/parser/parser_statements.go
Package : parser
*/
package parser

import (
	"github.com/sirupsen/logrus"

	"github.com/prakhar479/hydrogen/lexer"
)

// parseStatement dispatches on the first token of a statement (spec.md
// §4.2's dispatch table). returning threads through to parseBlock calls
// made along the way, and gates whether a bare `return` is legal here.
func (p *Parser) parseStatement(returning bool) (Stmt, error) {
	p.log.WithFields(logrus.Fields{
		"token":     p.currentDescription(),
		"returning": returning,
	}).Debug("parser: dispatching statement")
	switch p.currentKind() {
	case lexer.EXIT:
		return p.parseExitStmt()
	case lexer.LET:
		return p.parseLetStmt()
	case lexer.IF:
		return p.parseIfStmt(returning)
	case lexer.WHILE:
		return p.parseWhileStmt(returning)
	case lexer.FOR:
		return p.parseForStmt(returning)
	case lexer.DEFINE:
		return p.parseFunctionDef()
	case lexer.LBRACE:
		// A bare "{ }" appearing directly as a statement is a fresh
		// nested scope, never the function's own body, so it never
		// carries the enclosing returning-ness — it is always
		// non-returning (spec.md §3: "a block used as a statement must
		// contain no Return unless it is a direct function body").
		return p.parseBlock(false)
	case lexer.RETURN:
		if !returning {
			return nil, nameErrorf(p.tokens[p.pos], "return is not allowed in this block")
		}
		return p.parseReturn()
	case lexer.IDENT:
		if p.peekKind(1) == lexer.LPAREN {
			nameTok := p.advance()
			call, err := p.finishCall(nameTok)
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(lexer.EOS); err != nil {
				return nil, err
			}
			return call, nil
		}
		return p.parseAssign(true)
	default:
		return nil, syntaxErrorf(p, "unexpected token %s at start of statement", p.currentDescription())
	}
}

// parseBlock parses "{" { Statement } "}". When returning is true, a
// `return` statement inside is legal (directly, or nested inside an
// if/while/for that itself inherits returning — see parseStatement's
// IF/WHILE/FOR cases) and the block must contain at least one reachable
// return (spec.md §4.2, §3) — a BlockExpr or a function body. When false,
// this is a plain statement-block: `return` is rejected throughout.
//
// The containment check only looks at statements parsed directly at this
// level, treating an if/else with both arms present as itself guaranteeing
// a return whenever returning is true here: both arms were parsed with
// the same returning flag, so each already had its own containment
// checked (directly, or transitively through a further nested if/else)
// by the time parseIfStmt returned. A while/for body is never credited
// this way since the loop may execute zero times.
func (p *Parser) parseBlock(returning bool) (*Block, error) {
	if _, err := p.expect(lexer.LBRACE); err != nil {
		return nil, err
	}
	block := &Block{}
	sawReturn := false
	for p.currentKind() != lexer.RBRACE {
		if p.atEnd() {
			return nil, syntaxErrorf(p, "unexpected end of input, expected %s", lexer.RBRACE)
		}
		stmt, err := p.parseStatement(returning)
		if err != nil {
			return nil, err
		}
		switch s := stmt.(type) {
		case *Return:
			sawReturn = true
		case *IfStmt:
			if returning && s.Else != nil {
				sawReturn = true
			}
		}
		block.Stmts = append(block.Stmts, stmt)
	}
	closeTok, err := p.expect(lexer.RBRACE)
	if err != nil {
		return nil, err
	}
	if returning && !sawReturn {
		return nil, diagBlockMissingReturn(closeTok)
	}
	return block, nil
}

func diagBlockMissingReturn(closeTok lexer.Token) error {
	return nameErrorf(closeTok, "block used as a value must contain at least one return")
}

// parseExitStmt parses "exit" Expr ";".
func (p *Parser) parseExitStmt() (*ExitStmt, error) {
	if _, err := p.expect(lexer.EXIT); err != nil {
		return nil, err
	}
	value, err := p.parseBinary(0)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.EOS); err != nil {
		return nil, err
	}
	return &ExitStmt{Value: value}, nil
}

// parseReturn parses "return" Expr ";".
func (p *Parser) parseReturn() (*Return, error) {
	if _, err := p.expect(lexer.RETURN); err != nil {
		return nil, err
	}
	value, err := p.parseBinary(0)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.EOS); err != nil {
		return nil, err
	}
	return &Return{Value: value}, nil
}

// parseLetStmt parses "let" IDENT "=" Expr ";". The new name is only
// inserted into the variable set after Init has been parsed, so `let x =
// x;` sees x as undeclared on its own right-hand side (spec.md §4.2).
func (p *Parser) parseLetStmt() (*LetStmt, error) {
	if _, err := p.expect(lexer.LET); err != nil {
		return nil, err
	}
	nameTok, err := p.expect(lexer.IDENT)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.ASSIGN); err != nil {
		return nil, err
	}
	init, err := p.parseBinary(0)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.EOS); err != nil {
		return nil, err
	}
	p.names.DeclareVar(nameTok.Lexeme)
	return &LetStmt{Name: nameTok.Lexeme, Init: init}, nil
}

// parseAssign parses IDENT "=" Expr, consuming the trailing ";" unless
// consumeTerminator is false. The for-loop step is the one caller that
// passes false: its header already supplies a literal ";" before the step
// and a closing ")" after it, so the step itself consumes neither
// (spec.md §4.2, §9).
func (p *Parser) parseAssign(consumeTerminator bool) (*Assign, error) {
	nameTok, err := p.expect(lexer.IDENT)
	if err != nil {
		return nil, err
	}
	if !p.names.HasVar(nameTok.Lexeme) {
		return nil, nameErrorf(nameTok, "assignment to undeclared variable %q", nameTok.Lexeme)
	}
	if _, err := p.expect(lexer.ASSIGN); err != nil {
		return nil, err
	}
	value, err := p.parseBinary(0)
	if err != nil {
		return nil, err
	}
	if consumeTerminator {
		if _, err := p.expect(lexer.EOS); err != nil {
			return nil, err
		}
	}
	return &Assign{Name: nameTok.Lexeme, Value: value}, nil
}

// parseIfStmt parses "if" "(" Expr ")" Block [ "else" Block ]. The
// returning flag of the enclosing statement is passed through to both
// arms: an if nested in a returning function body may itself return
// (spec.md §8 scenario 5), while an if at non-returning level rejects
// return the same as any other nested block.
func (p *Parser) parseIfStmt(returning bool) (*IfStmt, error) {
	if _, err := p.expect(lexer.IF); err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.LPAREN); err != nil {
		return nil, err
	}
	cond, err := p.parseBinary(0)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.RPAREN); err != nil {
		return nil, err
	}
	then, err := p.parseBlock(returning)
	if err != nil {
		return nil, err
	}
	stmt := &IfStmt{Cond: cond, Then: then}
	if p.currentKind() == lexer.ELSE {
		p.advance()
		elseBlock, err := p.parseBlock(returning)
		if err != nil {
			return nil, err
		}
		stmt.Else = elseBlock
	}
	return stmt, nil
}

// parseWhileStmt parses "while" "(" Expr ")" Block, threading returning
// through to the body for the same reason as parseIfStmt.
func (p *Parser) parseWhileStmt(returning bool) (*WhileStmt, error) {
	if _, err := p.expect(lexer.WHILE); err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.LPAREN); err != nil {
		return nil, err
	}
	cond, err := p.parseBinary(0)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.RPAREN); err != nil {
		return nil, err
	}
	body, err := p.parseBlock(returning)
	if err != nil {
		return nil, err
	}
	return &WhileStmt{Cond: cond, Body: body}, nil
}

// parseForStmt parses "for" "(" Let Expr ";" Assign ")" Block. The Let
// consumes its own trailing ";"; the literal ";" shown in the grammar
// between the condition and the step is consumed explicitly here; the
// step itself consumes no terminator of its own (spec.md §4.2, §9).
// returning threads through to the body as in parseIfStmt/parseWhileStmt.
func (p *Parser) parseForStmt(returning bool) (*ForStmt, error) {
	if _, err := p.expect(lexer.FOR); err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.LPAREN); err != nil {
		return nil, err
	}
	init, err := p.parseLetStmt()
	if err != nil {
		return nil, err
	}
	cond, err := p.parseBinary(0)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.EOS); err != nil {
		return nil, err
	}
	step, err := p.parseAssign(false)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.RPAREN); err != nil {
		return nil, err
	}
	body, err := p.parseBlock(returning)
	if err != nil {
		return nil, err
	}
	return &ForStmt{Init: init, Cond: cond, Step: step, Body: body}, nil
}

// parseFunctionDef parses "define" IDENT "(" [IDENT {";" IDENT}] ")"
// BlockReturning. The function name is declared before its body is parsed
// so recursive self-calls resolve; parameters are added to the variable
// set for the body and removed afterward (spec.md §4.2).
func (p *Parser) parseFunctionDef() (*FunctionDef, error) {
	if _, err := p.expect(lexer.DEFINE); err != nil {
		return nil, err
	}
	nameTok, err := p.expect(lexer.IDENT)
	if err != nil {
		return nil, err
	}
	p.names.DeclareFunc(nameTok.Lexeme)

	if _, err := p.expect(lexer.LPAREN); err != nil {
		return nil, err
	}
	var params []string
	if p.currentKind() != lexer.RPAREN {
		for {
			paramTok, err := p.expect(lexer.IDENT)
			if err != nil {
				return nil, err
			}
			params = append(params, paramTok.Lexeme)
			p.names.DeclareVar(paramTok.Lexeme)
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

	body, err := p.parseBlock(true)
	for _, param := range params {
		p.names.ForgetVar(param)
	}
	if err != nil {
		return nil, err
	}
	return &FunctionDef{Name: nameTok.Lexeme, Params: params, Body: body}, nil
}
