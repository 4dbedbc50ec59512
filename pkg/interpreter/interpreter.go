// Package interpreter is the evaluation core of the Imp language: a pure
// expression evaluator and a statement executor that thread value-semantics
// environments through sequencing, branching, and iteration. AST construction
// belongs to front ends (a parser, the ast builder DSL, or the driver's
// program documents); this package only consumes finished trees.
package interpreter

import (
	"imp/interpreter-go/pkg/ast"
	"imp/interpreter-go/pkg/runtime"
)

// Interpreter evaluates expressions and executes statements. The zero value
// is not useful; construct instances with New. An Interpreter holds no
// program state of its own, so one instance can serve many programs as long
// as each run owns its environment.
type Interpreter struct {
	// tick, when set, runs before every statement step. It exists solely for
	// the bounded-execution wrapper in executor.go; the core leaves it nil
	// and never checks time or step counts itself.
	tick func() error
}

// New creates an interpreter.
func New() *Interpreter {
	return &Interpreter{}
}

// Evaluate reduces an expression to a constant under the given environment.
// It is read-only on the environment and always terminates for finite trees.
func (i *Interpreter) Evaluate(expr ast.Expression, env *runtime.Environment) (ast.Expression, error) {
	if env == nil {
		env = runtime.NewEnvironment()
	}
	return i.evaluateExpression(expr, env)
}

// Execute runs a statement against the given environment and returns the
// successor environment. The input environment is never mutated. Execute may
// not terminate for programs whose loop condition never becomes false; that
// divergence mirrors the language semantics and is not bounded here (see
// ExecuteContext for a host-side budget).
func (i *Interpreter) Execute(stmt ast.Statement, env *runtime.Environment) (*runtime.Environment, error) {
	if env == nil {
		env = runtime.NewEnvironment()
	}
	return i.executeStatement(stmt, env)
}

// Run executes a whole program against a fresh empty environment.
func (i *Interpreter) Run(program ast.Statement) (*runtime.Environment, error) {
	return i.Execute(program, runtime.NewEnvironment())
}
