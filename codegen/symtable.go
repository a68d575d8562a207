/*
File    : hydrogen/codegen/symtable.go
Package : codegen
*/
package codegen

// symTable maps a function's local names (parameters and let-bound
// variables, nested or not) to their %rbp-relative frame offset. One
// symTable is built per function; it never outlives the function it
// belongs to. Grounded on the teacher's scope.Scope map idiom, collapsed
// to a flat name->offset table since codegen needs no values, only
// storage locations.
type symTable struct {
	offsets map[string]int
}

func newSymTable() *symTable {
	return &symTable{offsets: make(map[string]int)}
}

// define allocates the next frame slot for name and returns its offset.
// Per spec.md §4.3, the new slot lives at -(n+1)*8(%rbp), where n is the
// number of distinct names (parameters included) already in the table;
// defining a name that is already present does not grow the table.
// This is called for parameters during prologue setup and again for
// every LetStmt encountered during body emission, at any nesting depth —
// nested lets get a symbol-table entry exactly like top-level ones, even
// though only top-level lets are counted toward the stack reservation in
// the prologue (spec.md §9's documented latent bug).
func (s *symTable) define(name string) int {
	n := len(s.offsets)
	offset := -(n + 1) * 8
	s.offsets[name] = offset
	return offset
}

// offset looks up name's frame offset. The parser has already rejected
// any reference to a name that wasn't declared, so a miss here is an
// internal inconsistency between the two passes, not a user-facing error.
func (s *symTable) offset(name string) (int, bool) {
	off, ok := s.offsets[name]
	return off, ok
}

// size reports how many names have been defined so far.
func (s *symTable) size() int {
	return len(s.offsets)
}
