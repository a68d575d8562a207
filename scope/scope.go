/*
File    : hydrogen/scope/scope.go
Package : scope
*/

// Package scope tracks the two flat name sets the parser consults while it
// parses: known variables and known functions. spec.md §9 is explicit that
// a cleaner design would be a stack of scopes pushed/popped around each
// block, but that this implementation has exactly one function-wide
// variable scope plus one global function scope, and forbids shadowing —
// an implementer should preserve this behavior rather than "fix" it.
// Grounded on the teacher's scope/scope.go Scope type, collapsed from a
// parent-chained closure scope down to this flat pair of sets.
package scope

// Scope holds the two name sets live during parsing: vars and funcs both
// accumulate across the whole program. Only parameters are ever removed
// from vars (once their function body is parsed); let-bound names stay.
type Scope struct {
	vars  map[string]bool
	funcs map[string]bool
}

// New creates an empty Scope.
func New() *Scope {
	return &Scope{vars: make(map[string]bool), funcs: make(map[string]bool)}
}

// DeclareVar adds name to the known-variable set. Per spec.md §4.2, a
// `let` inserts its name only after its initializer expression has been
// parsed, so that `let x = x;` sees x as undeclared on the right-hand
// side.
func (s *Scope) DeclareVar(name string) {
	s.vars[name] = true
}

// HasVar reports whether name is a known variable (or parameter).
func (s *Scope) HasVar(name string) bool {
	return s.vars[name]
}

// ForgetVar removes name from the known-variable set. Used to pop function
// parameters back out of scope once a function body has been parsed
// (spec.md §4.2).
func (s *Scope) ForgetVar(name string) {
	delete(s.vars, name)
}

// DeclareFunc adds name to the known-function set. Per spec.md §4.2, this
// happens before a `define`'s body is parsed, so recursive self-calls
// resolve.
func (s *Scope) DeclareFunc(name string) {
	s.funcs[name] = true
}

// HasFunc reports whether name is a known function.
func (s *Scope) HasFunc(name string) bool {
	return s.funcs[name]
}
