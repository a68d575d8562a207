/*
File    : hydrogen/parser/parser_test.go
Package : parser
*/
package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prakhar479/hydrogen/internal/diag"
	"github.com/prakhar479/hydrogen/lexer"
)

func parseSource(t *testing.T, src string) (*Program, error) {
	t.Helper()
	tokens, err := lexer.Lex(src)
	require.NoError(t, err)
	return Parse(tokens)
}

func mustParse(t *testing.T, src string) *Program {
	t.Helper()
	prog, err := parseSource(t, src)
	require.NoError(t, err)
	return prog
}

func singleExitValue(t *testing.T, prog *Program) Expr {
	t.Helper()
	require.Len(t, prog.Stmts, 1)
	exit, ok := prog.Stmts[0].(*ExitStmt)
	require.True(t, ok, "expected a single exit statement, got %T", prog.Stmts[0])
	return exit.Value
}

func TestParse_Precedence_MultiplyBeforeAdd(t *testing.T) {
	prog := mustParse(t, "exit 1+2*3;")
	bin := singleExitValue(t, prog).(*BinaryOp)
	assert.Equal(t, lexer.PLUS, bin.Op)
	assert.Equal(t, int64(1), bin.Left.(*IntLit).Value)
	rhs := bin.Right.(*BinaryOp)
	assert.Equal(t, lexer.STAR, rhs.Op)
	assert.Equal(t, int64(2), rhs.Left.(*IntLit).Value)
	assert.Equal(t, int64(3), rhs.Right.(*IntLit).Value)
}

func TestParse_Precedence_ParensOverride(t *testing.T) {
	prog := mustParse(t, "exit (1+2)*3;")
	bin := singleExitValue(t, prog).(*BinaryOp)
	assert.Equal(t, lexer.STAR, bin.Op)
	lhs := bin.Left.(*BinaryOp)
	assert.Equal(t, lexer.PLUS, lhs.Op)
}

func TestParse_Precedence_Modulo(t *testing.T) {
	prog := mustParse(t, "exit 5%2;")
	bin := singleExitValue(t, prog).(*BinaryOp)
	assert.Equal(t, lexer.PERCENT, bin.Op)
}

func TestParse_LeftAssociativity_Subtraction(t *testing.T) {
	prog := mustParse(t, "exit 10-4-3;")
	outer := singleExitValue(t, prog).(*BinaryOp)
	assert.Equal(t, lexer.MINUS, outer.Op)
	assert.Equal(t, int64(3), outer.Right.(*IntLit).Value)
	inner := outer.Left.(*BinaryOp)
	assert.Equal(t, lexer.MINUS, inner.Op)
	assert.Equal(t, int64(10), inner.Left.(*IntLit).Value)
	assert.Equal(t, int64(4), inner.Right.(*IntLit).Value)
}

func TestParse_LetThenUse_Succeeds(t *testing.T) {
	prog := mustParse(t, "let x = 1; exit x;")
	require.Len(t, prog.Stmts, 2)
}

func TestParse_LetSelfReference_Fails(t *testing.T) {
	_, err := parseSource(t, "let x = x;")
	require.Error(t, err)
	diagErr, ok := err.(*diag.Error)
	require.True(t, ok)
	assert.Equal(t, diag.NameResolution, diagErr.Category)
}

func TestParse_AssignToUndeclared_Fails(t *testing.T) {
	_, err := parseSource(t, "x = 1;")
	require.Error(t, err)
	diagErr, ok := err.(*diag.Error)
	require.True(t, ok)
	assert.Equal(t, diag.NameResolution, diagErr.Category)
}

func TestParse_CallBeforeDefine_Fails(t *testing.T) {
	_, err := parseSource(t, "f(0);")
	require.Error(t, err)
	diagErr, ok := err.(*diag.Error)
	require.True(t, ok)
	assert.Equal(t, diag.NameResolution, diagErr.Category)
}

func TestParse_RecursiveSelfCall_Succeeds(t *testing.T) {
	prog := mustParse(t, "define f(n) { return f(n); }")
	require.Len(t, prog.Stmts, 1)
	fn := prog.Stmts[0].(*FunctionDef)
	assert.Equal(t, "f", fn.Name)
	assert.Equal(t, []string{"n"}, fn.Params)
}

func TestParse_FunctionBody_RequiresReturn(t *testing.T) {
	_, err := parseSource(t, "define f() { let x = 1; }")
	require.Error(t, err)
}

func TestParse_PlainBlock_RejectsReturn(t *testing.T) {
	_, err := parseSource(t, "if (1) { return 1; }")
	require.Error(t, err)
}

func TestParse_BlockExpr_RequiresReturn(t *testing.T) {
	_, err := parseSource(t, "define f() { let x = { let y = 1; }; return x; }")
	require.Error(t, err)
}

func TestParse_BlockExpr_WithReturn_Succeeds(t *testing.T) {
	prog := mustParse(t, "define f() { let x = { return 1; }; return x; }")
	fn := prog.Stmts[0].(*FunctionDef)
	let := fn.Body.Stmts[0].(*LetStmt)
	_, ok := let.Init.(*BlockExpr)
	require.True(t, ok)
}

func TestParse_ParamsAreSemicolonSeparated(t *testing.T) {
	prog := mustParse(t, "define add(a;b) { return a+b; }")
	fn := prog.Stmts[0].(*FunctionDef)
	assert.Equal(t, []string{"a", "b"}, fn.Params)
}

func TestParse_ParamsDoNotLeakOutsideBody(t *testing.T) {
	_, err := parseSource(t, "define f(n) { return n; } exit n;")
	require.Error(t, err)
	diagErr, ok := err.(*diag.Error)
	require.True(t, ok)
	assert.Equal(t, diag.NameResolution, diagErr.Category)
}

func TestParse_ForLoop_StepHasNoOwnTerminator(t *testing.T) {
	prog := mustParse(t, "for (let i = 0; i < 10; i = i+1) { exit i; }")
	require.Len(t, prog.Stmts, 1)
	forStmt := prog.Stmts[0].(*ForStmt)
	assert.Equal(t, "i", forStmt.Init.Name)
	assert.Equal(t, "i", forStmt.Step.Name)
}

func TestParse_WhileLoop(t *testing.T) {
	prog := mustParse(t, "let i = 0; while (i < 10) { i = i+1; }")
	require.Len(t, prog.Stmts, 2)
	_, ok := prog.Stmts[1].(*WhileStmt)
	require.True(t, ok)
}

func TestParse_ReturnInsideIfElse_SatisfiesFunctionBody(t *testing.T) {
	prog := mustParse(t, "define main() { if (1 == 1) { return 7; } else { return 9; } }")
	fn := prog.Stmts[0].(*FunctionDef)
	require.Len(t, fn.Body.Stmts, 1)
	ifStmt := fn.Body.Stmts[0].(*IfStmt)
	require.NotNil(t, ifStmt.Else)
}

func TestParse_ReturnInsideWhile_DoesNotSatisfyFunctionBody(t *testing.T) {
	_, err := parseSource(t, "define f() { while (1) { return 1; } }")
	require.Error(t, err)
}

func TestParse_IfWithoutElse_DoesNotSatisfyFunctionBody(t *testing.T) {
	_, err := parseSource(t, "define f() { if (1) { return 1; } }")
	require.Error(t, err)
}

func TestParse_IfElse(t *testing.T) {
	prog := mustParse(t, "if (1) { exit 1; } else { exit 2; }")
	ifStmt := prog.Stmts[0].(*IfStmt)
	require.NotNil(t, ifStmt.Else)
}

func TestParse_CallStatement_BareExpressionStatement(t *testing.T) {
	prog := mustParse(t, "define f() { return 0; } f();")
	require.Len(t, prog.Stmts, 2)
	_, ok := prog.Stmts[1].(*FunctionCall)
	require.True(t, ok)
}

func TestParse_CallArgsAreSemicolonSeparated(t *testing.T) {
	prog := mustParse(t, "define add(a;b) { return a+b; } exit add(1;2);")
	exit := prog.Stmts[1].(*ExitStmt)
	call := exit.Value.(*FunctionCall)
	assert.Equal(t, "add", call.Name)
	require.Len(t, call.Args, 2)
}

func TestParse_UnexpectedTokenAtStatementStart(t *testing.T) {
	_, err := parseSource(t, "+;")
	require.Error(t, err)
	diagErr, ok := err.(*diag.Error)
	require.True(t, ok)
	assert.Equal(t, diag.Syntactic, diagErr.Category)
}

func TestParse_MissingClosingBrace(t *testing.T) {
	_, err := parseSource(t, "if (1) { exit 1;")
	require.Error(t, err)
}
