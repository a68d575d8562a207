/*
File    : hydrogen/codegen/emit.go
Package : codegen
*/
package codegen

import (
	"fmt"
	"strings"
)

// Emitter accumulates GNU-assembler AT&T-syntax text into a
// strings.Builder, the way other_examples' wut4 code generator wraps a
// bufio.Writer with Instr0/Instr1/Instr2 helpers. Indentation and operand
// formatting are centralized here so the statement/expression emitters
// never touch fmt.Sprintf directly.
type Emitter struct {
	out strings.Builder
}

// NewEmitter creates an empty Emitter.
func NewEmitter() *Emitter {
	return &Emitter{}
}

// Directive emits an assembler directive line (".text", ".globl name", ...).
func (e *Emitter) Directive(dir string) {
	fmt.Fprintf(&e.out, "%s\n", dir)
}

// Label emits a label definition.
func (e *Emitter) Label(name string) {
	fmt.Fprintf(&e.out, "%s:\n", name)
}

// Comment emits a GNU-as "#" comment line.
func (e *Emitter) Comment(format string, args ...any) {
	fmt.Fprintf(&e.out, "\t# %s\n", fmt.Sprintf(format, args...))
}

// Instr0 emits a zero-operand instruction, e.g. "ret".
func (e *Emitter) Instr0(op string) {
	fmt.Fprintf(&e.out, "\t%s\n", op)
}

// Instr1 emits a one-operand instruction, e.g. "push %rbp".
func (e *Emitter) Instr1(op string, operand string) {
	fmt.Fprintf(&e.out, "\t%s %s\n", op, operand)
}

// Instr2 emits a two-operand instruction in AT&T order, e.g.
// "mov %rsp, %rbp" (src, dst).
func (e *Emitter) Instr2(op string, src, dst string) {
	fmt.Fprintf(&e.out, "\t%s %s, %s\n", op, src, dst)
}

// String returns everything emitted so far.
func (e *Emitter) String() string {
	return e.out.String()
}

// argRegs names the System V AMD64 integer argument registers, in order.
var argRegs = []string{"%rdi", "%rsi", "%rdx", "%rcx", "%r8", "%r9"}

// Imm formats an integer immediate operand.
func Imm(v int64) string {
	return fmt.Sprintf("$%d", v)
}

// Mem formats an %rbp-relative memory operand.
func Mem(offset int) string {
	return fmt.Sprintf("%d(%%rbp)", offset)
}
