/*
File    : hydrogen/codegen/codegen_expressions.go
Package : codegen
*/
package codegen

import (
	"github.com/prakhar479/hydrogen/lexer"
	"github.com/prakhar479/hydrogen/parser"
)

// generateExpr emits code that leaves expr's value in %rax (spec.md
// §4.3 "Expression emission").
func (g *Generator) generateExpr(sym *symTable, expr parser.Expr) {
	switch e := expr.(type) {
	case *parser.IntLit:
		g.out.Instr2("mov", Imm(e.Value), "%rax")

	case *parser.Ident:
		offset, ok := sym.offset(e.Name)
		if !ok {
			unreachable("reference to unresolved name %q reached codegen", e.Name)
		}
		g.out.Instr2("mov", Mem(offset), "%rax")

	case *parser.BinaryOp:
		g.generateBinaryOp(sym, e)

	case *parser.FunctionCall:
		g.generateCall(sym, e)

	case *parser.BlockExpr:
		// Inline-emit the block's statements in place; a Return inside
		// unconditionally emits the function epilogue and leaves its
		// value in %rax exactly as it would at function-body level
		// (spec.md §4.3 — BlockExpression has no distinct rule of its
		// own beyond reusing statement emission).
		for _, stmt := range e.Block.Stmts {
			g.generateStmt(sym, stmt)
		}

	default:
		unreachable("unhandled expression kind %T reached codegen", expr)
	}
}

// generateBinaryOp emits the push/pop stack-machine sequence: evaluate
// the right operand first and push it, then the left operand into %rax,
// then pop the right operand into %rbx, so %rax holds left and %rbx
// holds right for every operator below (spec.md §4.3). The right operand
// is therefore evaluated before the left one.
func (g *Generator) generateBinaryOp(sym *symTable, e *parser.BinaryOp) {
	g.generateExpr(sym, e.Right)
	g.out.Instr1("push", "%rax")
	g.generateExpr(sym, e.Left)
	g.out.Instr1("pop", "%rbx")

	switch e.Op {
	case lexer.PLUS:
		g.out.Instr2("add", "%rbx", "%rax")
	case lexer.MINUS:
		g.out.Instr2("sub", "%rbx", "%rax")
	case lexer.STAR:
		g.out.Instr1("imul", "%rbx")
	case lexer.PERCENT:
		g.out.Instr2("xor", "%rdx", "%rdx")
		g.out.Instr1("idiv", "%rbx")
		g.out.Instr2("mov", "%rdx", "%rax")
	case lexer.EQ:
		g.out.Instr2("cmp", "%rbx", "%rax")
		g.out.Instr1("sete", "%al")
		g.out.Instr2("movzb", "%al", "%rax")
	case lexer.LT:
		g.out.Instr2("cmp", "%rbx", "%rax")
		g.out.Instr1("setl", "%al")
		g.out.Instr2("movzb", "%al", "%rax")
	case lexer.GT:
		g.out.Instr2("cmp", "%rbx", "%rax")
		g.out.Instr1("setg", "%al")
		g.out.Instr2("movzb", "%al", "%rax")
	default:
		unreachable("unsupported binary operator %q reached codegen", e.Op)
	}
}

// generateCall emits a call sequence (spec.md §4.3): save every
// caller-saved argument register unconditionally (regardless of arity —
// a deliberately conservative-but-wasteful choice spec.md §9 calls out
// and asks implementers to keep for simplicity), evaluate arguments
// right-to-left pushing each result, pop the first six into their
// argument registers, call, clean up any stack-passed arguments, then
// restore the saved registers in reverse pop order.
func (g *Generator) generateCall(sym *symTable, e *parser.FunctionCall) {
	for _, reg := range argRegs {
		g.out.Instr1("push", reg)
	}

	for i := len(e.Args) - 1; i >= 0; i-- {
		g.generateExpr(sym, e.Args[i])
		g.out.Instr1("push", "%rax")
	}

	n := len(e.Args)
	regCount := n
	if regCount > 6 {
		regCount = 6
	}
	for i := 0; i < regCount; i++ {
		g.out.Instr1("pop", argRegs[i])
	}

	g.out.Instr1("call", e.Name)

	if n > 6 {
		g.out.Instr2("add", Imm(int64((n-6)*8)), "%rsp")
	}

	for i := len(argRegs) - 1; i >= 0; i-- {
		g.out.Instr1("pop", argRegs[i])
	}
}
