package ast

import "strconv"

// NodeType tags every AST node with its kind.
type NodeType string

const (
	NodeIntegerLiteral   NodeType = "IntegerLiteral"
	NodeFloatLiteral     NodeType = "FloatLiteral"
	NodeStringLiteral    NodeType = "StringLiteral"
	NodeBooleanLiteral   NodeType = "BooleanLiteral"
	NodeIdentifier       NodeType = "Identifier"
	NodeBinaryExpression NodeType = "BinaryExpression"
	NodeUnaryExpression  NodeType = "UnaryExpression"
	NodeVarDeclaration   NodeType = "VarDeclaration"
	NodeValDeclaration   NodeType = "ValDeclaration"
	NodeAssignment       NodeType = "Assignment"
	NodeIfStatement      NodeType = "IfStatement"
	NodeWhileLoop        NodeType = "WhileLoop"
	NodeSequence         NodeType = "Sequence"
)

type Node interface {
	NodeType() NodeType
	isNode()
}

type nodeImpl struct {
	Type NodeType `json:"type"`
}

func newNodeImpl(kind NodeType) nodeImpl {
	return nodeImpl{Type: kind}
}

func (n nodeImpl) NodeType() NodeType { return n.Type }
func (nodeImpl) isNode()              {}

// Marker interfaces.

type Expression interface {
	Node
	expressionNode()
}

type expressionMarker struct{}

func (expressionMarker) expressionNode() {}

type Statement interface {
	Node
	statementNode()
}

type statementMarker struct{}

func (statementMarker) statementNode() {}

// Operators

// BinaryOperator enumerates the infix operators of the language.
type BinaryOperator string

const (
	OpAdd BinaryOperator = "+"
	OpSub BinaryOperator = "-"
	OpMul BinaryOperator = "*"
	OpDiv BinaryOperator = "/"
	OpAnd BinaryOperator = "and"
	OpOr  BinaryOperator = "or"
	OpEq  BinaryOperator = "=="
	OpGt  BinaryOperator = ">"
	OpLt  BinaryOperator = "<"
	OpGte BinaryOperator = ">="
	OpLte BinaryOperator = "<="
)

// UnaryOperator enumerates the prefix operators of the language.
type UnaryOperator string

const OpNot UnaryOperator = "not"

// Literals

type IntegerLiteral struct {
	nodeImpl
	expressionMarker

	Value int32 `json:"value"`
}

func NewIntegerLiteral(value int32) *IntegerLiteral {
	return &IntegerLiteral{nodeImpl: newNodeImpl(NodeIntegerLiteral), Value: value}
}

type FloatLiteral struct {
	nodeImpl
	expressionMarker

	Value float64 `json:"value"`
}

func NewFloatLiteral(value float64) *FloatLiteral {
	return &FloatLiteral{nodeImpl: newNodeImpl(NodeFloatLiteral), Value: value}
}

type StringLiteral struct {
	nodeImpl
	expressionMarker

	Value string `json:"value"`
}

func NewStringLiteral(value string) *StringLiteral {
	return &StringLiteral{nodeImpl: newNodeImpl(NodeStringLiteral), Value: value}
}

type BooleanLiteral struct {
	nodeImpl
	expressionMarker

	Value bool `json:"value"`
}

func NewBooleanLiteral(value bool) *BooleanLiteral {
	return &BooleanLiteral{nodeImpl: newNodeImpl(NodeBooleanLiteral), Value: value}
}

// Identifier

type Identifier struct {
	nodeImpl
	expressionMarker

	Name string `json:"name"`
}

func NewIdentifier(name string) *Identifier {
	return &Identifier{nodeImpl: newNodeImpl(NodeIdentifier), Name: name}
}

// Compound expressions

type BinaryExpression struct {
	nodeImpl
	expressionMarker

	Operator BinaryOperator `json:"operator"`
	Left     Expression     `json:"left"`
	Right    Expression     `json:"right"`
}

func NewBinaryExpression(operator BinaryOperator, left, right Expression) *BinaryExpression {
	return &BinaryExpression{nodeImpl: newNodeImpl(NodeBinaryExpression), Operator: operator, Left: left, Right: right}
}

type UnaryExpression struct {
	nodeImpl
	expressionMarker

	Operator UnaryOperator `json:"operator"`
	Operand  Expression    `json:"operand"`
}

func NewUnaryExpression(operator UnaryOperator, operand Expression) *UnaryExpression {
	return &UnaryExpression{nodeImpl: newNodeImpl(NodeUnaryExpression), Operator: operator, Operand: operand}
}

// Statements

type VarDeclaration struct {
	nodeImpl
	statementMarker

	Name string `json:"name"`
}

func NewVarDeclaration(name string) *VarDeclaration {
	return &VarDeclaration{nodeImpl: newNodeImpl(NodeVarDeclaration), Name: name}
}

type ValDeclaration struct {
	nodeImpl
	statementMarker

	Name string `json:"name"`
}

func NewValDeclaration(name string) *ValDeclaration {
	return &ValDeclaration{nodeImpl: newNodeImpl(NodeValDeclaration), Name: name}
}

type Assignment struct {
	nodeImpl
	statementMarker

	Name  string     `json:"name"`
	Value Expression `json:"value"`
}

func NewAssignment(name string, value Expression) *Assignment {
	return &Assignment{nodeImpl: newNodeImpl(NodeAssignment), Name: name, Value: value}
}

type IfStatement struct {
	nodeImpl
	statementMarker

	Condition Expression `json:"condition"`
	Then      Statement  `json:"then"`
	Else      Statement  `json:"else"`
}

func NewIfStatement(condition Expression, then, els Statement) *IfStatement {
	return &IfStatement{nodeImpl: newNodeImpl(NodeIfStatement), Condition: condition, Then: then, Else: els}
}

type WhileLoop struct {
	nodeImpl
	statementMarker

	Condition Expression `json:"condition"`
	Body      Statement  `json:"body"`
}

func NewWhileLoop(condition Expression, body Statement) *WhileLoop {
	return &WhileLoop{nodeImpl: newNodeImpl(NodeWhileLoop), Condition: condition, Body: body}
}

type Sequence struct {
	nodeImpl
	statementMarker

	First  Statement `json:"first"`
	Second Statement `json:"second"`
}

func NewSequence(first, second Statement) *Sequence {
	return &Sequence{nodeImpl: newNodeImpl(NodeSequence), First: first, Second: second}
}

// IsConstant reports whether the expression is one of the literal kinds.
// Constants are the only valid results of evaluation.
func IsConstant(e Expression) bool {
	switch e.(type) {
	case *IntegerLiteral, *FloatLiteral, *StringLiteral, *BooleanLiteral:
		return true
	default:
		return false
	}
}

// ConstantsEqual reports structural equality of two constant nodes. There is
// no numeric coercion here: an IntegerLiteral never equals a FloatLiteral.
// Unified numeric comparison belongs to the evaluator's relational operators.
func ConstantsEqual(a, b Expression) bool {
	switch av := a.(type) {
	case *IntegerLiteral:
		bv, ok := b.(*IntegerLiteral)
		return ok && av.Value == bv.Value
	case *FloatLiteral:
		bv, ok := b.(*FloatLiteral)
		return ok && av.Value == bv.Value
	case *StringLiteral:
		bv, ok := b.(*StringLiteral)
		return ok && av.Value == bv.Value
	case *BooleanLiteral:
		bv, ok := b.(*BooleanLiteral)
		return ok && av.Value == bv.Value
	default:
		return false
	}
}

// FormatConstant renders a constant node for human-readable output.
func FormatConstant(e Expression) string {
	switch n := e.(type) {
	case *IntegerLiteral:
		return strconv.FormatInt(int64(n.Value), 10)
	case *FloatLiteral:
		return strconv.FormatFloat(n.Value, 'g', -1, 64)
	case *StringLiteral:
		return strconv.Quote(n.Value)
	case *BooleanLiteral:
		return strconv.FormatBool(n.Value)
	default:
		return string(e.NodeType())
	}
}
