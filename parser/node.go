/*
File    : hydrogen/parser/node.go
Package : parser
*/
package parser

import "github.com/prakhar479/hydrogen/lexer"

// Visitor implements exhaustive case-analysis over the AST, the idiomatic
// Go substitute for a tagged-sum match (spec.md §9): a new node kind means
// a new method on this interface, and every concrete visitor must gain an
// implementation or fail to compile. Grounded on the teacher's
// parser/node.go NodeVisitor, collapsed to the node set spec.md §3 names.
type Visitor interface {
	VisitProgram(*Program)
	VisitBlock(*Block)
	VisitLetStmt(*LetStmt)
	VisitAssign(*Assign)
	VisitIfStmt(*IfStmt)
	VisitWhileStmt(*WhileStmt)
	VisitForStmt(*ForStmt)
	VisitFunctionDef(*FunctionDef)
	VisitReturn(*Return)
	VisitExitStmt(*ExitStmt)

	VisitIntLit(*IntLit)
	VisitIdent(*Ident)
	VisitBinaryOp(*BinaryOp)
	VisitFunctionCall(*FunctionCall)
	VisitBlockExpr(*BlockExpr)
}

// Node is the base interface implemented by every AST node.
type Node interface {
	Accept(v Visitor)
}

// Stmt is implemented by every statement-family node.
type Stmt interface {
	Node
	stmtNode()
}

// Expr is implemented by every expression-family node.
type Expr interface {
	Node
	exprNode()
}

// Program is the AST root. It owns the entire tree; there are no
// back-pointers and no cycles (spec.md §3).
type Program struct {
	Stmts []Stmt
}

func (n *Program) Accept(v Visitor) { v.VisitProgram(n) }

// Block is a brace-delimited statement sequence. Whether a Block may
// legally contain a Return is decided at parse time by the `returning`
// flag threaded through block parsing (spec.md §4.2); the AST node itself
// does not record that flag; by the time a Block exists it has already
// been validated.
type Block struct {
	Stmts []Stmt
}

func (n *Block) Accept(v Visitor) { v.VisitBlock(n) }
func (n *Block) stmtNode()        {}

// LetStmt introduces a new variable, bound to the value of Init.
type LetStmt struct {
	Name string
	Init Expr
}

func (n *LetStmt) Accept(v Visitor) { v.VisitLetStmt(n) }
func (n *LetStmt) stmtNode()        {}

// Assign rebinds an existing variable to the value of Value.
type Assign struct {
	Name  string
	Value Expr
}

func (n *Assign) Accept(v Visitor) { v.VisitAssign(n) }
func (n *Assign) stmtNode()        {}

// IfStmt is a conditional; Else is nil when no else-block was parsed.
type IfStmt struct {
	Cond Expr
	Then *Block
	Else *Block
}

func (n *IfStmt) Accept(v Visitor) { v.VisitIfStmt(n) }
func (n *IfStmt) stmtNode()        {}

// WhileStmt is a pre-tested loop.
type WhileStmt struct {
	Cond Expr
	Body *Block
}

func (n *WhileStmt) Accept(v Visitor) { v.VisitWhileStmt(n) }
func (n *WhileStmt) stmtNode()        {}

// ForStmt is C-style: an init let-binding, a condition, and a step
// assignment. In the header the step follows the ';' that ends the
// condition and is closed by ')', carrying no ';' of its own (spec.md §4.2).
type ForStmt struct {
	Init *LetStmt
	Cond Expr
	Step *Assign
	Body *Block
}

func (n *ForStmt) Accept(v Visitor) { v.VisitForStmt(n) }
func (n *ForStmt) stmtNode()        {}

// FunctionDef declares a function at program top level. Params are
// ';'-separated in source (spec.md §9 — a deliberate grammar peculiarity,
// not an oversight).
type FunctionDef struct {
	Name   string
	Params []string
	Body   *Block
}

func (n *FunctionDef) Accept(v Visitor) { v.VisitFunctionDef(n) }
func (n *FunctionDef) stmtNode()        {}

// Return yields Value from the enclosing function or block-expression.
type Return struct {
	Value Expr
}

func (n *Return) Accept(v Visitor) { v.VisitReturn(n) }
func (n *Return) stmtNode()        {}

// ExitStmt is only meaningful at function-body level; codegen treats it
// identically to Return (spec.md §4.3, §9).
type ExitStmt struct {
	Value Expr
}

func (n *ExitStmt) Accept(v Visitor) { v.VisitExitStmt(n) }
func (n *ExitStmt) stmtNode()        {}

// IntLit is an integer literal.
type IntLit struct {
	Value int64
}

func (n *IntLit) Accept(v Visitor) { v.VisitIntLit(n) }
func (n *IntLit) exprNode()        {}
func (n *IntLit) stmtNode()        {}

// Ident references a variable or parameter previously introduced by a
// LetStmt or function parameter in the surrounding scope.
type Ident struct {
	Name string
}

func (n *Ident) Accept(v Visitor) { v.VisitIdent(n) }
func (n *Ident) exprNode()        {}
func (n *Ident) stmtNode()        {}

// BinaryOp is a left-associative binary expression. Op is one of the
// lexer.Kind values STAR, PERCENT, PLUS, MINUS, LT, GT, EQ.
type BinaryOp struct {
	Left  Expr
	Op    lexer.Kind
	Right Expr
}

func (n *BinaryOp) Accept(v Visitor) { v.VisitBinaryOp(n) }
func (n *BinaryOp) exprNode()        {}
func (n *BinaryOp) stmtNode()        {}

// FunctionCall invokes a previously-defined function (no forward
// references — spec.md §3, §4.2). Args are ';'-separated in source.
type FunctionCall struct {
	Name string
	Args []Expr
}

func (n *FunctionCall) Accept(v Visitor) { v.VisitFunctionCall(n) }
func (n *FunctionCall) exprNode()        {}
func (n *FunctionCall) stmtNode()        {}

// BlockExpr is a brace-delimited block used in expression position; it
// must contain at least one Return (spec.md §3, enforced at parse time).
type BlockExpr struct {
	Block *Block
}

func (n *BlockExpr) Accept(v Visitor) { v.VisitBlockExpr(n) }
func (n *BlockExpr) exprNode()        {}
func (n *BlockExpr) stmtNode()        {}
