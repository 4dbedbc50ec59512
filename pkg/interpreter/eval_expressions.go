package interpreter

import (
	"imp/interpreter-go/pkg/ast"
	"imp/interpreter-go/pkg/runtime"
)

func (i *Interpreter) evaluateExpression(node ast.Expression, env *runtime.Environment) (ast.Expression, error) {
	switch n := node.(type) {
	case *ast.IntegerLiteral, *ast.FloatLiteral, *ast.StringLiteral, *ast.BooleanLiteral:
		// Constants evaluate to themselves. Nodes are immutable, so
		// returning the operand tree directly is safe.
		return n, nil
	case *ast.Identifier:
		value, ok := env.Lookup(n.Name)
		if !ok {
			return nil, &runtime.UnboundVariableError{Name: n.Name}
		}
		return value, nil
	case *ast.BinaryExpression:
		return i.evaluateBinaryExpression(n, env)
	case *ast.UnaryExpression:
		return i.evaluateUnaryExpression(n, env)
	default:
		return nil, &runtime.NotImplementedError{Kind: node.NodeType()}
	}
}

func (i *Interpreter) evaluateBinaryExpression(expr *ast.BinaryExpression, env *runtime.Environment) (ast.Expression, error) {
	// Both operands are always evaluated, left before right. This is
	// deliberate for "and"/"or" as well: the language has no short-circuit
	// semantics, so the right operand runs (and can fail) even when the left
	// alone would determine the result.
	left, err := i.evaluateExpression(expr.Left, env)
	if err != nil {
		return nil, err
	}
	right, err := i.evaluateExpression(expr.Right, env)
	if err != nil {
		return nil, err
	}
	switch expr.Operator {
	case ast.OpAdd, ast.OpSub, ast.OpMul, ast.OpDiv:
		return applyArithmetic(expr.Operator, left, right)
	case ast.OpAnd, ast.OpOr:
		return applyBoolean(expr.Operator, left, right)
	case ast.OpEq, ast.OpGt, ast.OpLt, ast.OpGte, ast.OpLte:
		return applyRelational(expr.Operator, left, right)
	default:
		return nil, &runtime.NotImplementedError{Kind: expr.NodeType()}
	}
}

func (i *Interpreter) evaluateUnaryExpression(expr *ast.UnaryExpression, env *runtime.Environment) (ast.Expression, error) {
	operand, err := i.evaluateExpression(expr.Operand, env)
	if err != nil {
		return nil, err
	}
	switch expr.Operator {
	case ast.OpNot:
		b, ok := booleanValue(operand)
		if !ok {
			return nil, runtime.NewOperatorTypeError("'not'", "booleans")
		}
		return ast.Bool(!b), nil
	default:
		return nil, &runtime.NotImplementedError{Kind: expr.NodeType()}
	}
}

// applyArithmetic performs +, -, * and / on two evaluated operands. Both must
// be numeric. Integer arithmetic runs in the float64 domain and truncates the
// result back to int32; in particular integer division truncates toward the
// float quotient (also for negative operands), which is observable behavior
// and must not be replaced with native integer division. Any float operand
// promotes the result to float64.
func applyArithmetic(op ast.BinaryOperator, left, right ast.Expression) (ast.Expression, error) {
	lf, lInt, lok := numericValue(left)
	rf, rInt, rok := numericValue(right)
	if !lok || !rok {
		return nil, runtime.NewOperatorTypeError(operatorPhrase(op), "numbers (integers and real)")
	}
	var result float64
	switch op {
	case ast.OpAdd:
		result = lf + rf
	case ast.OpSub:
		result = lf - rf
	case ast.OpMul:
		result = lf * rf
	case ast.OpDiv:
		result = lf / rf
	}
	if lInt && rInt {
		return ast.Int(int32(result)), nil
	}
	return ast.Flt(result), nil
}

// applyBoolean performs eager "and"/"or" on two evaluated operands; both must
// be booleans even when the left alone determines the result.
func applyBoolean(op ast.BinaryOperator, left, right ast.Expression) (ast.Expression, error) {
	lb, lok := booleanValue(left)
	rb, rok := booleanValue(right)
	if !lok || !rok {
		return nil, runtime.NewOperatorTypeError(operatorPhrase(op), "booleans")
	}
	if op == ast.OpAnd {
		return ast.Bool(lb && rb), nil
	}
	return ast.Bool(lb || rb), nil
}

// applyRelational compares two evaluated numeric operands in the unified
// float64 domain, so an integer 10 compares equal to a float 10.0.
func applyRelational(op ast.BinaryOperator, left, right ast.Expression) (ast.Expression, error) {
	lf, _, lok := numericValue(left)
	rf, _, rok := numericValue(right)
	if !lok || !rok {
		return nil, runtime.NewOperatorTypeError(operatorPhrase(op), "numbers (integers and real)")
	}
	switch op {
	case ast.OpEq:
		return ast.Bool(lf == rf), nil
	case ast.OpGt:
		return ast.Bool(lf > rf), nil
	case ast.OpLt:
		return ast.Bool(lf < rf), nil
	case ast.OpGte:
		return ast.Bool(lf >= rf), nil
	default:
		return ast.Bool(lf <= rf), nil
	}
}

// numericValue extracts an evaluated operand into the float64 working domain,
// reporting whether it originated from an integer literal.
func numericValue(e ast.Expression) (value float64, isInt bool, ok bool) {
	switch n := e.(type) {
	case *ast.IntegerLiteral:
		return float64(n.Value), true, true
	case *ast.FloatLiteral:
		return n.Value, false, true
	default:
		return 0, false, false
	}
}

func booleanValue(e ast.Expression) (bool, bool) {
	b, ok := e.(*ast.BooleanLiteral)
	if !ok {
		return false, false
	}
	return b.Value, true
}

// operatorPhrase is how an operator names itself in type-error messages.
func operatorPhrase(op ast.BinaryOperator) string {
	switch op {
	case ast.OpAdd:
		return "addition '(+)'"
	case ast.OpSub:
		return "subtraction '(-)'"
	case ast.OpMul:
		return "multiplication '(*)'"
	case ast.OpDiv:
		return "division '(/)'"
	case ast.OpAnd:
		return "'and'"
	case ast.OpOr:
		return "'or'"
	case ast.OpEq:
		return "(==)"
	case ast.OpGt:
		return "(>)"
	case ast.OpLt:
		return "(<)"
	case ast.OpGte:
		return "(>=)"
	default:
		return "(<=)"
	}
}
