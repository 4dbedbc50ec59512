package interpreter

import (
	"imp/interpreter-go/pkg/ast"
	"imp/interpreter-go/pkg/runtime"
)

func (i *Interpreter) executeStatement(stmt ast.Statement, env *runtime.Environment) (*runtime.Environment, error) {
	if i.tick != nil {
		if err := i.tick(); err != nil {
			return nil, err
		}
	}
	switch n := stmt.(type) {
	case *ast.Assignment:
		value, err := i.evaluateExpression(n.Value, env)
		if err != nil {
			return nil, err
		}
		// Assignment always succeeds: it overwrites an existing binding or
		// creates a new one, with no declared/undeclared distinction.
		return env.Bind(n.Name, value), nil
	case *ast.IfStatement:
		cond, err := i.evaluateExpression(n.Condition, env)
		if err != nil {
			return nil, err
		}
		b, ok := booleanValue(cond)
		if !ok {
			return nil, runtime.NewConditionTypeError()
		}
		if b {
			return i.executeStatement(n.Then, env)
		}
		return i.executeStatement(n.Else, env)
	case *ast.WhileLoop:
		for {
			cond, err := i.evaluateExpression(n.Condition, env)
			if err != nil {
				return nil, err
			}
			b, ok := booleanValue(cond)
			if !ok {
				return nil, runtime.NewConditionTypeError()
			}
			if !b {
				return env, nil
			}
			// The body's successor environment feeds the next condition
			// check. A body failure aborts the whole loop.
			next, err := i.executeStatement(n.Body, env)
			if err != nil {
				return nil, err
			}
			env = next
		}
	case *ast.Sequence:
		next, err := i.executeStatement(n.First, env)
		if err != nil {
			return nil, err
		}
		return i.executeStatement(n.Second, next)
	case *ast.VarDeclaration:
		return nil, &runtime.NotImplementedError{Kind: n.NodeType(), Statement: true}
	case *ast.ValDeclaration:
		return nil, &runtime.NotImplementedError{Kind: n.NodeType(), Statement: true}
	default:
		return nil, &runtime.NotImplementedError{Kind: stmt.NodeType(), Statement: true}
	}
}
