package interpreter

import (
	"context"
	"fmt"

	"imp/interpreter-go/pkg/ast"
	"imp/interpreter-go/pkg/runtime"
)

// Budget bounds the number of statement steps ExecuteContext may take. The
// zero value imposes no limit.
type Budget struct {
	MaxSteps int
}

// BudgetExceededError reports that execution hit its step ceiling.
type BudgetExceededError struct {
	Steps int
}

func (e *BudgetExceededError) Error() string {
	return fmt.Sprintf("execution budget exceeded after %d steps", e.Steps)
}

// ExecuteContext runs a statement with the same semantics as Execute, plus
// cooperative cancellation and an optional step budget checked between
// statement steps. Bounding a diverging loop is a host resource policy, not
// interpreter semantics, which is why the plain Execute never checks either.
func (i *Interpreter) ExecuteContext(ctx context.Context, stmt ast.Statement, env *runtime.Environment, budget Budget) (*runtime.Environment, error) {
	steps := 0
	bounded := &Interpreter{tick: func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		steps++
		if budget.MaxSteps > 0 && steps > budget.MaxSteps {
			return &BudgetExceededError{Steps: budget.MaxSteps}
		}
		return nil
	}}
	return bounded.Execute(stmt, env)
}
