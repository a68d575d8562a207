/*
File    : hydrogen/codegen/codegen_statements.go
Package : codegen
*/
package codegen

import (
	"github.com/sirupsen/logrus"

	"github.com/prakhar479/hydrogen/parser"
)

// generateStmt emits one statement, mutating sym as new locals are
// bound (spec.md §4.3 "Statement emission"). sym is the owning
// function's symbol table, shared across every nesting depth of that
// function's body.
func (g *Generator) generateStmt(sym *symTable, stmt parser.Stmt) {
	switch s := stmt.(type) {
	case *parser.LetStmt:
		g.generateExpr(sym, s.Init)
		offset := sym.define(s.Name)
		g.out.Instr2("mov", "%rax", Mem(offset))

	case *parser.Assign:
		g.generateExpr(sym, s.Value)
		offset, ok := sym.offset(s.Name)
		if !ok {
			unreachable("assign to unresolved name %q reached codegen", s.Name)
		}
		g.out.Instr2("mov", "%rax", Mem(offset))

	case *parser.IfStmt:
		g.generateIf(sym, s)

	case *parser.WhileStmt:
		g.generateWhile(sym, s)

	case *parser.ForStmt:
		g.generateFor(sym, s)

	case *parser.Block:
		for _, inner := range s.Stmts {
			g.generateStmt(sym, inner)
		}

	case *parser.Return:
		g.generateExpr(sym, s.Value)
		g.generateEpilogue()

	case *parser.ExitStmt:
		// Semantically identical to Return (spec.md §4.3, §9): whatever
		// function body it appears in terminates here with its value in
		// %rax. Non-function top-level ExitStmts never reach here since
		// generateProgram only descends into FunctionDef bodies.
		g.generateExpr(sym, s.Value)
		g.generateEpilogue()

	case *parser.FunctionCall:
		g.generateCall(sym, s)
		// Result left in %rax is discarded; this is a call used purely
		// for its side effect as a statement.

	default:
		unreachable("unhandled statement kind %T reached codegen", stmt)
	}
}

// generateEpilogue emits the standard function-return sequence (spec.md
// §4.3): restore the stack and frame pointer, then return to the caller.
func (g *Generator) generateEpilogue() {
	g.out.Instr2("mov", "%rbp", "%rsp")
	g.out.Instr1("pop", "%rbp")
	g.out.Instr0("ret")
}

// generateIf emits a conditional (spec.md §4.3): the condition is
// evaluated into %rax, compared against zero, and a false condition
// jumps past the then-branch to the else-branch (or straight past if
// there is none).
func (g *Generator) generateIf(sym *symTable, s *parser.IfStmt) {
	n := g.labels.id()
	elseLbl := elseLabel(n)
	endLbl := endifLabel(n)
	g.log.WithFields(logrus.Fields{"else": elseLbl, "endif": endLbl}).Debug("codegen: allocated if labels")

	g.generateExpr(sym, s.Cond)
	g.out.Instr2("cmp", Imm(0), "%rax")
	g.out.Instr1("je", elseLbl)
	g.generateStmt(sym, s.Then)
	g.out.Instr1("jmp", endLbl)
	g.out.Label(elseLbl)
	if s.Else != nil {
		g.generateStmt(sym, s.Else)
	}
	g.out.Label(endLbl)
}

// generateWhile emits a pre-tested loop (spec.md §4.3).
func (g *Generator) generateWhile(sym *symTable, s *parser.WhileStmt) {
	n := g.labels.id()
	topLbl := whileLabel(n)
	endLbl := endwhileLabel(n)
	g.log.WithFields(logrus.Fields{"top": topLbl, "end": endLbl}).Debug("codegen: allocated while labels")

	g.out.Label(topLbl)
	g.generateExpr(sym, s.Cond)
	g.out.Instr2("cmp", Imm(0), "%rax")
	g.out.Instr1("je", endLbl)
	g.generateStmt(sym, s.Body)
	g.out.Instr1("jmp", topLbl)
	g.out.Label(endLbl)
}

// generateFor lowers the C-style for-loop into the same while-shaped
// control flow: init runs once before the label, the step runs at the
// bottom of each iteration before jumping back to the condition test.
// Not directly specified by spec.md §4.3 (only If/While/Return/Assign/
// Let are given explicit instruction sequences there); grounded on the
// textbook for-as-sugared-while desugaring and on spec.md §6's BNF, which
// gives For the same Init/Cond/Step/Body shape as a manually-unrolled
// while loop.
func (g *Generator) generateFor(sym *symTable, s *parser.ForStmt) {
	g.generateStmt(sym, s.Init)

	n := g.labels.id()
	topLbl := whileLabel(n)
	endLbl := endwhileLabel(n)
	g.log.WithFields(logrus.Fields{"top": topLbl, "end": endLbl}).Debug("codegen: allocated for labels")

	g.out.Label(topLbl)
	g.generateExpr(sym, s.Cond)
	g.out.Instr2("cmp", Imm(0), "%rax")
	g.out.Instr1("je", endLbl)
	g.generateStmt(sym, s.Body)
	g.generateStmt(sym, s.Step)
	g.out.Instr1("jmp", topLbl)
	g.out.Label(endLbl)
}
