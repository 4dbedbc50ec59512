package runtime

import (
	"sort"

	"imp/interpreter-go/pkg/ast"
)

// Environment is the flat mapping from variable names to their last-assigned
// constant values. It is the sole mutable state of the interpreter, and even
// then only by replacement: Bind returns a new snapshot and never touches its
// receiver, so callers can treat every environment value as immutable.
type Environment struct {
	values map[string]ast.Expression
}

// NewEnvironment creates an empty environment.
func NewEnvironment() *Environment {
	return &Environment{values: make(map[string]ast.Expression)}
}

// FromBindings creates an environment pre-populated with the given bindings.
func FromBindings(bindings map[string]ast.Expression) *Environment {
	values := make(map[string]ast.Expression, len(bindings))
	for name, value := range bindings {
		values[name] = value
	}
	return &Environment{values: values}
}

// Lookup retrieves a binding. There is no parent chain; the language has a
// single flat scope.
func (e *Environment) Lookup(name string) (ast.Expression, bool) {
	value, ok := e.values[name]
	return value, ok
}

// Bind returns a new environment in which name maps to value, leaving every
// other binding and the receiver unchanged. Binding an existing name
// overwrites it in the returned snapshot.
func (e *Environment) Bind(name string, value ast.Expression) *Environment {
	values := make(map[string]ast.Expression, len(e.values)+1)
	for k, v := range e.values {
		values[k] = v
	}
	values[name] = value
	return &Environment{values: values}
}

// Len returns the number of bindings.
func (e *Environment) Len() int {
	return len(e.values)
}

// Keys returns the bound names in sorted order (useful for deterministic
// output and tests).
func (e *Environment) Keys() []string {
	keys := make([]string, 0, len(e.values))
	for k := range e.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Snapshot returns a copy of the current bindings.
func (e *Environment) Snapshot() map[string]ast.Expression {
	out := make(map[string]ast.Expression, len(e.values))
	for k, v := range e.values {
		out[k] = v
	}
	return out
}
