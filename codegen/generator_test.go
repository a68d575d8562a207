/*
File    : hydrogen/codegen/generator_test.go
Package : codegen
*/
package codegen

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prakhar479/hydrogen/lexer"
	"github.com/prakhar479/hydrogen/parser"
)

func generate(t *testing.T, src string) string {
	t.Helper()
	tokens, err := lexer.Lex(src)
	require.NoError(t, err)
	prog, err := parser.Parse(tokens)
	require.NoError(t, err)
	return Generate(prog)
}

func TestGenerate_EmitsTextDirectiveAndEntryPoint(t *testing.T) {
	asm := generate(t, "define main() { return 42; }")
	assert.Contains(t, asm, ".text")
	assert.Contains(t, asm, "_start:")
	assert.Contains(t, asm, "call main")
	assert.Contains(t, asm, "mov %rax, %rdi")
	assert.Contains(t, asm, "mov $60, %rax")
	assert.Contains(t, asm, "syscall")
}

// Scenario 1: define main() { return 42; } -> exit status 42.
func TestGenerate_Scenario1_ConstantReturn(t *testing.T) {
	asm := generate(t, "define main() { return 42; }")
	assert.Contains(t, asm, "main:")
	assert.Contains(t, asm, "mov $42, %rax")
	assert.Contains(t, asm, "mov %rbp, %rsp")
	assert.Contains(t, asm, "pop %rbp")
	assert.Contains(t, asm, "ret")
}

// Scenario 2: two top-level lets and an arithmetic expression.
func TestGenerate_Scenario2_LetsAndArithmetic(t *testing.T) {
	asm := generate(t, "define main() { let a = 2; let b = 3; return a + b * 4; }")
	assert.Contains(t, asm, "sub $16, %rsp")
	assert.Contains(t, asm, "mov $2, %rax")
	assert.Contains(t, asm, "mov %rax, -8(%rbp)")
	assert.Contains(t, asm, "mov $3, %rax")
	assert.Contains(t, asm, "mov %rax, -16(%rbp)")
	assert.Contains(t, asm, "mov $4, %rax")
	assert.Contains(t, asm, "imul %rbx")
	assert.Contains(t, asm, "add %rbx, %rax")
}

// Scenario 3: semicolon-separated params and a call.
func TestGenerate_Scenario3_CallWithParams(t *testing.T) {
	asm := generate(t, "define add(x;y) { return x + y; } define main() { return add(20;22); }")
	assert.Contains(t, asm, "add:")
	assert.Contains(t, asm, "mov %rdi, -8(%rbp)")
	assert.Contains(t, asm, "mov %rsi, -16(%rbp)")
	assert.Contains(t, asm, "call add")
	for _, reg := range argRegs {
		assert.Contains(t, asm, "push "+reg)
		assert.Contains(t, asm, "pop "+reg)
	}
}

// Scenario 4: a while loop accumulating a sum.
func TestGenerate_Scenario4_WhileLoop(t *testing.T) {
	asm := generate(t, "define main() { let i = 0; let s = 0; while (i < 5) { s = s + i; i = i + 1; } return s; }")
	assert.Contains(t, asm, ".L_while_0:")
	assert.Contains(t, asm, ".L_endwhile_0:")
	assert.Contains(t, asm, "setl %al")
	assert.Contains(t, asm, "movzb %al, %rax")
	assert.Contains(t, asm, "je .L_endwhile_0")
	assert.Contains(t, asm, "jmp .L_while_0")
}

// Scenario 5: if/else where both arms return.
func TestGenerate_Scenario5_IfElse(t *testing.T) {
	asm := generate(t, "define main() { if (1 == 1) { return 7; } else { return 9; } }")
	assert.Contains(t, asm, "sete %al")
	assert.Contains(t, asm, ".L_else_0:")
	assert.Contains(t, asm, ".L_endif_0:")
	assert.Contains(t, asm, "mov $7, %rax")
	assert.Contains(t, asm, "mov $9, %rax")
}

// Scenario 6: recursive factorial.
func TestGenerate_Scenario6_RecursiveFactorial(t *testing.T) {
	asm := generate(t, "define fact(n) { if (n < 2) { return 1; } else { return n * fact(n - 1); } } define main() { return fact(5); }")
	assert.Contains(t, asm, "fact:")
	assert.Contains(t, asm, "call fact")
	assert.Contains(t, asm, "imul %rbx")
}

func TestGenerate_LabelsAreUnique(t *testing.T) {
	asm := generate(t, `
define main() {
	let i = 0;
	while (i < 2) {
		if (i == 0) {
			i = i + 1;
		} else {
			i = i + 1;
		}
	}
	return i;
}`)
	labelRe := regexp.MustCompile(`(?m)^(\.\S+):`)
	seen := make(map[string]bool)
	for _, m := range labelRe.FindAllStringSubmatch(asm, -1) {
		name := m[1]
		require.False(t, seen[name], "duplicate label %s", name)
		seen[name] = true
	}
}

func TestGenerate_ABICompliance_SixOrFewerParams(t *testing.T) {
	asm := generate(t, "define f(a;b;c;d;e;g) { return a; }")
	fnText := functionBody(t, asm, "f")
	assert.Contains(t, fnText, "mov %rdi, -8(%rbp)")
	assert.Contains(t, fnText, "mov %rsi, -16(%rbp)")
	assert.Contains(t, fnText, "mov %rdx, -24(%rbp)")
	assert.Contains(t, fnText, "mov %rcx, -32(%rbp)")
	assert.Contains(t, fnText, "mov %r8, -40(%rbp)")
	assert.Contains(t, fnText, "mov %r9, -48(%rbp)")
}

func TestGenerate_ABICompliance_MoreThanSixParams(t *testing.T) {
	asm := generate(t, "define f(a;b;c;d;e;g;h) { return h; }")
	fnText := functionBody(t, asm, "f")
	assert.Contains(t, fnText, "mov %r9, -48(%rbp)")
	assert.Contains(t, fnText, "mov 8(%rbp), %rax")
	assert.Contains(t, fnText, "mov %rax, -56(%rbp)")
}

func TestGenerate_NestedLet_NotCountedInFrameReservation(t *testing.T) {
	asm := generate(t, "define main() { if (1) { let x = 1; return x; } return 0; }")
	fnText := functionBody(t, asm, "main")
	// Only the lack of any top-level LetStmt in main's direct body means
	// the prologue reserves zero slots, even though the nested let still
	// receives a symbol-table offset and an assembled store (spec.md §9's
	// documented latent bug, reproduced rather than fixed).
	assert.Contains(t, fnText, "sub $0, %rsp")
	assert.Contains(t, fnText, "mov %rax, -8(%rbp)")
}

// functionBody extracts the assembly text between a function's label and
// the next top-level label, for scoped assertions.
func functionBody(t *testing.T, asm, name string) string {
	t.Helper()
	start := strings.Index(asm, name+":")
	require.GreaterOrEqual(t, start, 0)
	rest := asm[start+len(name)+1:]
	nextLabel := regexp.MustCompile(`(?m)^\S+:`).FindStringIndex(rest)
	if nextLabel == nil {
		return rest
	}
	return rest[:nextLabel[0]]
}
