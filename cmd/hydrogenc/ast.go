/*
File    : hydrogen/cmd/hydrogenc/ast.go
Package : main
*/
package main

import (
	"bytes"
	"fmt"

	"github.com/prakhar479/hydrogen/parser"
)

const astIndentSize = 2

// printingVisitor walks a Program and renders an indented tree, one line
// per node, to Buf. Grounded on the teacher's PrintingVisitor
// (print_visitor.go): a bytes.Buffer plus an Indent counter bumped around
// each recursive Accept call, collapsed to hydrogen's smaller node set.
type printingVisitor struct {
	indent int
	buf    bytes.Buffer
}

func (p *printingVisitor) line(format string, args ...any) {
	for i := 0; i < p.indent; i++ {
		p.buf.WriteByte(' ')
	}
	fmt.Fprintf(&p.buf, format, args...)
	p.buf.WriteByte('\n')
}

func (p *printingVisitor) descend(f func()) {
	p.indent += astIndentSize
	f()
	p.indent -= astIndentSize
}

func (p *printingVisitor) VisitProgram(n *parser.Program) {
	p.line("Program")
	p.descend(func() {
		for _, s := range n.Stmts {
			s.Accept(p)
		}
	})
}

func (p *printingVisitor) VisitBlock(n *parser.Block) {
	p.line("Block")
	p.descend(func() {
		for _, s := range n.Stmts {
			s.Accept(p)
		}
	})
}

func (p *printingVisitor) VisitLetStmt(n *parser.LetStmt) {
	p.line("LetStmt %s", n.Name)
	p.descend(func() { n.Init.Accept(p) })
}

func (p *printingVisitor) VisitAssign(n *parser.Assign) {
	p.line("Assign %s", n.Name)
	p.descend(func() { n.Value.Accept(p) })
}

func (p *printingVisitor) VisitIfStmt(n *parser.IfStmt) {
	p.line("IfStmt")
	p.descend(func() {
		n.Cond.Accept(p)
		n.Then.Accept(p)
		if n.Else != nil {
			n.Else.Accept(p)
		}
	})
}

func (p *printingVisitor) VisitWhileStmt(n *parser.WhileStmt) {
	p.line("WhileStmt")
	p.descend(func() {
		n.Cond.Accept(p)
		n.Body.Accept(p)
	})
}

func (p *printingVisitor) VisitForStmt(n *parser.ForStmt) {
	p.line("ForStmt")
	p.descend(func() {
		n.Init.Accept(p)
		n.Cond.Accept(p)
		n.Step.Accept(p)
		n.Body.Accept(p)
	})
}

func (p *printingVisitor) VisitFunctionDef(n *parser.FunctionDef) {
	p.line("FunctionDef %s(%v)", n.Name, n.Params)
	p.descend(func() { n.Body.Accept(p) })
}

func (p *printingVisitor) VisitReturn(n *parser.Return) {
	p.line("Return")
	p.descend(func() { n.Value.Accept(p) })
}

func (p *printingVisitor) VisitExitStmt(n *parser.ExitStmt) {
	p.line("ExitStmt")
	p.descend(func() { n.Value.Accept(p) })
}

func (p *printingVisitor) VisitIntLit(n *parser.IntLit) {
	p.line("IntLit %d", n.Value)
}

func (p *printingVisitor) VisitIdent(n *parser.Ident) {
	p.line("Ident %s", n.Name)
}

func (p *printingVisitor) VisitBinaryOp(n *parser.BinaryOp) {
	p.line("BinaryOp %s", n.Op)
	p.descend(func() {
		n.Left.Accept(p)
		n.Right.Accept(p)
	})
}

func (p *printingVisitor) VisitFunctionCall(n *parser.FunctionCall) {
	p.line("FunctionCall %s", n.Name)
	p.descend(func() {
		for _, arg := range n.Args {
			arg.Accept(p)
		}
	})
}

func (p *printingVisitor) VisitBlockExpr(n *parser.BlockExpr) {
	p.line("BlockExpr")
	p.descend(func() { n.Block.Accept(p) })
}

var _ parser.Visitor = (*printingVisitor)(nil)

// runAST lexes and parses the file at path and pretty-prints its Program
// tree, or reports the first error encountered by either phase.
func runAST(path string) (err error) {
	defer recoverInternal(&err)

	_, prog, err := lexAndParse(path)
	if err != nil {
		return err
	}
	v := &printingVisitor{}
	prog.Accept(v)
	fmt.Print(v.buf.String())
	return nil
}
