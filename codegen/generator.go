/*
File    : hydrogen/codegen/generator.go
Package : codegen
*/

// Package codegen lowers a parsed Hydrogen Program into GNU-assembler
// AT&T-syntax x86-64 text targeting the System V AMD64 ABI on Linux
// (spec.md §4.3). It never consults the filesystem and never reports a
// user-facing error: by the time a Program reaches here, the parser has
// already rejected every malformed input it can detect, so codegen's
// only failure mode is an internal inconsistency, raised via diag.Bug.
package codegen

import (
	"github.com/sirupsen/logrus"

	"github.com/prakhar479/hydrogen/internal/diag"
	"github.com/prakhar479/hydrogen/parser"
)

// Generator drives the per-function emission pipeline. Its label counter
// is shared across the whole translation unit so labels never collide
// between functions (spec.md §4.3 — "the label counter is globally
// monotonic"); everything else (the symbol table, the emitter) is
// per-function or accumulates linearly as functions are emitted in
// source order.
type Generator struct {
	out    *Emitter
	labels *labelCounter
	log    *logrus.Logger
}

// New creates a Generator with an empty output buffer, tracing at Debug
// level through the standard logrus logger (see cmd/hydrogenc's
// --verbose flag).
func New() *Generator {
	return &Generator{out: NewEmitter(), labels: newLabelCounter(), log: logrus.StandardLogger()}
}

// WithLogger overrides the generator's logger.
func (g *Generator) WithLogger(log *logrus.Logger) *Generator {
	g.log = log
	return g
}

// Generate lowers prog to assembly text. Non-FunctionDef statements at
// program top level are silently ignored (spec.md §4.3, §9 — the grammar
// permits them, but only function definitions are emitted).
func Generate(prog *parser.Program) string {
	g := New()
	return g.generateProgram(prog)
}

func (g *Generator) generateProgram(prog *parser.Program) string {
	g.out.Directive(".text")
	g.out.Directive(".globl _start")

	for _, stmt := range prog.Stmts {
		fn, ok := stmt.(*parser.FunctionDef)
		if !ok {
			continue
		}
		g.generateFunction(fn)
	}

	g.generateStart()
	return g.out.String()
}

// generateStart emits the process entry point: call main, move its
// return value into the exit-syscall argument register, and exit
// (spec.md §4.3 step 3).
func (g *Generator) generateStart() {
	g.out.Label("_start")
	g.out.Instr1("call", "main")
	g.out.Instr2("mov", "%rax", "%rdi")
	g.out.Instr2("mov", Imm(60), "%rax")
	g.out.Instr0("syscall")
}

// generateFunction emits one function's label, prologue, parameter
// spilling, body, and epilogue (spec.md §4.3 "Per-function emission").
func (g *Generator) generateFunction(fn *parser.FunctionDef) {
	g.log.WithFields(logrus.Fields{"function": fn.Name, "params": len(fn.Params)}).Debug("codegen: emitting function")
	g.out.Label(fn.Name)
	g.out.Instr1("push", "%rbp")
	g.out.Instr2("mov", "%rsp", "%rbp")

	frameSlots := len(fn.Params) + countTopLevelLets(fn.Body)
	g.out.Instr2("sub", Imm(int64(8*frameSlots)), "%rsp")

	sym := newSymTable()
	g.spillParams(sym, fn.Params)

	for _, stmt := range fn.Body.Stmts {
		g.generateStmt(sym, stmt)
	}
	g.generateEpilogue()
}

// spillParams assigns each parameter its frame slot and copies its
// incoming value there: register-passed for i<6, stack-passed above
// %rbp for i>=6 (spec.md §4.3).
func (g *Generator) spillParams(sym *symTable, params []string) {
	for i, name := range params {
		offset := sym.define(name)
		if i < 6 {
			g.out.Instr2("mov", argRegs[i], Mem(offset))
			continue
		}
		srcOffset := (i - 5) * 8
		g.out.Instr2("mov", Mem(srcOffset), "%rax")
		g.out.Instr2("mov", "%rax", Mem(offset))
	}
}

// countTopLevelLets counts LetStmt nodes directly in body (the prologue
// reserves these slots on top of one slot per parameter), not recursing
// into nested if/while/for/block bodies (spec.md §4.3, §9 — this
// undercount relative to the full set of let-bound names codegen ends up
// assigning slots to is a documented latent bug, reproduced faithfully
// rather than fixed).
func countTopLevelLets(body *parser.Block) int {
	n := 0
	for _, stmt := range body.Stmts {
		if _, ok := stmt.(*parser.LetStmt); ok {
			n++
		}
	}
	return n
}

// unreachable raises an internal diagnostic for a codegen state the
// parser should already have ruled out (spec.md §7 category 5).
func unreachable(format string, args ...any) {
	diag.Bug(format, args...)
}
