package driver

import (
	"fmt"

	"imp/interpreter-go/pkg/ast"
)

// DecodeNode turns one decoded YAML mapping into an AST node. The mapping
// shape mirrors the json tags on the ast structs: a "type" discriminator plus
// the node's fields.
func DecodeNode(node map[string]any) (ast.Node, error) {
	typ, _ := node["type"].(string)
	switch typ {
	case "IntegerLiteral":
		value, err := intField(node, "value")
		if err != nil {
			return nil, err
		}
		return ast.NewIntegerLiteral(value), nil
	case "FloatLiteral":
		value, err := floatField(node, "value")
		if err != nil {
			return nil, err
		}
		return ast.NewFloatLiteral(value), nil
	case "StringLiteral":
		value, _ := node["value"].(string)
		return ast.NewStringLiteral(value), nil
	case "BooleanLiteral":
		value, ok := node["value"].(bool)
		if !ok {
			return nil, fmt.Errorf("BooleanLiteral value must be a bool, got %T", node["value"])
		}
		return ast.NewBooleanLiteral(value), nil
	case "Identifier":
		name, err := nameField(node, typ)
		if err != nil {
			return nil, err
		}
		return ast.NewIdentifier(name), nil
	case "BinaryExpression":
		operator, _ := node["operator"].(string)
		left, err := decodeExpression(node["left"])
		if err != nil {
			return nil, err
		}
		right, err := decodeExpression(node["right"])
		if err != nil {
			return nil, err
		}
		return ast.NewBinaryExpression(ast.BinaryOperator(operator), left, right), nil
	case "UnaryExpression":
		operator, _ := node["operator"].(string)
		operand, err := decodeExpression(node["operand"])
		if err != nil {
			return nil, err
		}
		return ast.NewUnaryExpression(ast.UnaryOperator(operator), operand), nil
	case "VarDeclaration":
		name, err := nameField(node, typ)
		if err != nil {
			return nil, err
		}
		return ast.NewVarDeclaration(name), nil
	case "ValDeclaration":
		name, err := nameField(node, typ)
		if err != nil {
			return nil, err
		}
		return ast.NewValDeclaration(name), nil
	case "Assignment":
		name, err := nameField(node, typ)
		if err != nil {
			return nil, err
		}
		value, err := decodeExpression(node["value"])
		if err != nil {
			return nil, err
		}
		return ast.NewAssignment(name, value), nil
	case "IfStatement":
		condition, err := decodeExpression(node["condition"])
		if err != nil {
			return nil, err
		}
		then, err := decodeStatement(node["then"])
		if err != nil {
			return nil, err
		}
		els, err := decodeStatement(node["else"])
		if err != nil {
			return nil, err
		}
		return ast.NewIfStatement(condition, then, els), nil
	case "WhileLoop":
		condition, err := decodeExpression(node["condition"])
		if err != nil {
			return nil, err
		}
		body, err := decodeStatement(node["body"])
		if err != nil {
			return nil, err
		}
		return ast.NewWhileLoop(condition, body), nil
	case "Sequence":
		first, err := decodeStatement(node["first"])
		if err != nil {
			return nil, err
		}
		second, err := decodeStatement(node["second"])
		if err != nil {
			return nil, err
		}
		return ast.NewSequence(first, second), nil
	default:
		return nil, fmt.Errorf("unknown node type %q", typ)
	}
}

func decodeExpression(raw any) (ast.Expression, error) {
	mapping, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("expected an expression mapping, got %T", raw)
	}
	node, err := DecodeNode(mapping)
	if err != nil {
		return nil, err
	}
	expr, ok := node.(ast.Expression)
	if !ok {
		return nil, fmt.Errorf("%s is not an expression", node.NodeType())
	}
	return expr, nil
}

// decodeStatement accepts either a single node mapping or a list of them; a
// list folds into right-nested Sequence nodes via ast.Program.
func decodeStatement(raw any) (ast.Statement, error) {
	if list, ok := raw.([]any); ok {
		stmts := make([]ast.Statement, 0, len(list))
		for _, entry := range list {
			stmt, err := decodeStatement(entry)
			if err != nil {
				return nil, err
			}
			stmts = append(stmts, stmt)
		}
		if len(stmts) == 0 {
			return nil, fmt.Errorf("statement list is empty")
		}
		return ast.Program(stmts...), nil
	}
	mapping, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("expected a statement mapping, got %T", raw)
	}
	node, err := DecodeNode(mapping)
	if err != nil {
		return nil, err
	}
	stmt, ok := node.(ast.Statement)
	if !ok {
		return nil, fmt.Errorf("%s is not a statement", node.NodeType())
	}
	return stmt, nil
}

func nameField(node map[string]any, kind string) (string, error) {
	name, ok := node["name"].(string)
	if !ok || name == "" {
		return "", fmt.Errorf("%s requires a non-empty name", kind)
	}
	return name, nil
}

func intField(node map[string]any, key string) (int32, error) {
	switch v := node[key].(type) {
	case int:
		return int32(v), nil
	case int64:
		return int32(v), nil
	default:
		return 0, fmt.Errorf("field %q must be an integer, got %T", key, node[key])
	}
}

func floatField(node map[string]any, key string) (float64, error) {
	switch v := node[key].(type) {
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	default:
		return 0, fmt.Errorf("field %q must be a number, got %T", key, node[key])
	}
}
