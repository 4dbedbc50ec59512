package runtime

import (
	"fmt"

	"imp/interpreter-go/pkg/ast"
)

// Evaluation failures are surfaced to hosts as plain text, but each kind stays
// a distinct type so callers can dispatch with errors.As. The exact message
// strings are part of the boundary contract and must not drift.

// UnboundVariableError reports a variable reference to a name absent from the
// environment.
type UnboundVariableError struct {
	Name string
}

func (e *UnboundVariableError) Error() string {
	return fmt.Sprintf("Variable %s not found", e.Name)
}

// TypeError reports an operand or condition that did not have the value kind
// an operation requires.
type TypeError struct {
	Operation string
	Expected  string

	message string
}

func (e *TypeError) Error() string { return e.message }

// NewOperatorTypeError builds the TypeError for an operator applied to
// operands of the wrong kind, e.g. operation "addition '(+)'" with expected
// "numbers (integers and real)".
func NewOperatorTypeError(operation, expected string) *TypeError {
	return &TypeError{
		Operation: operation,
		Expected:  expected,
		message:   fmt.Sprintf("%s is only defined for %s.", operation, expected),
	}
}

// NewConditionTypeError builds the TypeError for an if or while condition
// that evaluated to a non-boolean.
func NewConditionTypeError() *TypeError {
	return &TypeError{
		Operation: "condition",
		Expected:  "a boolean value",
		message:   "expecting a boolean value.",
	}
}

// NotImplementedError reports an AST node kind the evaluation core does not
// handle, such as the inert declaration statements.
type NotImplementedError struct {
	Kind ast.NodeType

	// Statement-level and expression-level failures historically carry
	// slightly different text; both spellings are load-bearing.
	Statement bool
}

func (e *NotImplementedError) Error() string {
	if e.Statement {
		return "not implemented yet"
	}
	return "Not implemented yet."
}
