/*
File    : hydrogen/codegen/label.go
Package : codegen
*/
package codegen

import "fmt"

// labelCounter hands out unique control-flow label suffixes. It is
// shared by the whole Generator (not reset per function), so labels
// across the entire translation unit never collide (spec.md §4.3: "the
// label counter is globally monotonic across the whole translation
// unit"). Grounded on other_examples' wut4 Emitter.NewLabel.
type labelCounter struct {
	next int
}

// newLabelCounter creates a counter starting at 0.
func newLabelCounter() *labelCounter {
	return &labelCounter{}
}

// id yields a fresh numeric label suffix: 0, then 1, ... One id is shared
// by all labels of a single if/while/for (e.g. .L_else_0 and .L_endif_0).
func (l *labelCounter) id() int {
	n := l.next
	l.next++
	return n
}

// note: label allocation itself stays a pure counter with no logging
// dependency — the generator logs around its call sites (see
// generateIf/generateWhile/generateFor in codegen_statements.go) so the
// label package can be tested without a logger in scope.

func elseLabel(n int) string     { return fmt.Sprintf(".L_else_%d", n) }
func endifLabel(n int) string    { return fmt.Sprintf(".L_endif_%d", n) }
func whileLabel(n int) string    { return fmt.Sprintf(".L_while_%d", n) }
func endwhileLabel(n int) string { return fmt.Sprintf(".L_endwhile_%d", n) }
