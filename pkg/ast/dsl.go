package ast

// Identifier and literal helpers.

func ID(name string) *Identifier {
	return NewIdentifier(name)
}

func Int(value int32) *IntegerLiteral {
	return NewIntegerLiteral(value)
}

func Flt(value float64) *FloatLiteral {
	return NewFloatLiteral(value)
}

func Str(value string) *StringLiteral {
	return NewStringLiteral(value)
}

func Bool(value bool) *BooleanLiteral {
	return NewBooleanLiteral(value)
}

// Expression helpers.

func Bin(operator BinaryOperator, left, right Expression) *BinaryExpression {
	return NewBinaryExpression(operator, left, right)
}

func Not(operand Expression) *UnaryExpression {
	return NewUnaryExpression(OpNot, operand)
}

// Statement helpers.

func VarDecl(name string) *VarDeclaration {
	return NewVarDeclaration(name)
}

func ValDecl(name string) *ValDeclaration {
	return NewValDeclaration(name)
}

func Assign(name string, value Expression) *Assignment {
	return NewAssignment(name, value)
}

func If(condition Expression, then, els Statement) *IfStatement {
	return NewIfStatement(condition, then, els)
}

func While(condition Expression, body Statement) *WhileLoop {
	return NewWhileLoop(condition, body)
}

func Seq(first, second Statement) *Sequence {
	return NewSequence(first, second)
}

// Program folds a statement list into right-nested Sequence nodes, so a flat
// listing executes left to right. Returns nil for an empty list.
func Program(stmts ...Statement) Statement {
	if len(stmts) == 0 {
		return nil
	}
	result := stmts[len(stmts)-1]
	for i := len(stmts) - 2; i >= 0; i-- {
		result = NewSequence(stmts[i], result)
	}
	return result
}
