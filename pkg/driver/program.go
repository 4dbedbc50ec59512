// Package driver loads Imp programs from YAML documents and runs them. It is
// one of the front ends the evaluation core expects to exist: documents carry
// a tree of typed nodes mirroring the AST shapes, plus optional expectations
// on the final environment for use as executable examples.
package driver

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"imp/interpreter-go/pkg/ast"
	"imp/interpreter-go/pkg/interpreter"
	"imp/interpreter-go/pkg/runtime"
)

// Program is a loaded program document.
type Program struct {
	Name   string
	Body   ast.Statement
	Expect map[string]ast.Expression
}

// ValidationError aggregates document validation failures.
type ValidationError struct {
	Issues []string
}

func (e *ValidationError) Error() string {
	if len(e.Issues) == 0 {
		return "program: invalid document"
	}
	var b strings.Builder
	b.WriteString("program validation failed:")
	for _, issue := range e.Issues {
		b.WriteString("\n- ")
		b.WriteString(issue)
	}
	return b.String()
}

// LoadProgram reads and parses a program document from disk.
func LoadProgram(path string) (*Program, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("program: read %s: %w", path, err)
	}
	prog, err := ParseProgram(data)
	if err != nil {
		return nil, fmt.Errorf("program: %s: %w", path, err)
	}
	return prog, nil
}

// ParseProgram parses a YAML program document.
func ParseProgram(data []byte) (*Program, error) {
	var doc struct {
		Name    string                    `yaml:"name"`
		Program []map[string]any          `yaml:"program"`
		Expect  map[string]map[string]any `yaml:"expect"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}

	var issues []string
	if doc.Name == "" {
		issues = append(issues, "missing name")
	}
	if len(doc.Program) == 0 {
		issues = append(issues, "program list is empty")
	}
	if len(issues) > 0 {
		return nil, &ValidationError{Issues: issues}
	}

	stmts := make([]ast.Statement, 0, len(doc.Program))
	for idx, raw := range doc.Program {
		stmt, err := decodeStatement(raw)
		if err != nil {
			return nil, fmt.Errorf("program[%d]: %w", idx, err)
		}
		stmts = append(stmts, stmt)
	}

	var expect map[string]ast.Expression
	if len(doc.Expect) > 0 {
		expect = make(map[string]ast.Expression, len(doc.Expect))
		for name, raw := range doc.Expect {
			value, err := decodeExpression(raw)
			if err != nil {
				return nil, fmt.Errorf("expect.%s: %w", name, err)
			}
			if !ast.IsConstant(value) {
				return nil, fmt.Errorf("expect.%s: expected value must be a constant, got %s", name, value.NodeType())
			}
			expect[name] = value
		}
	}

	return &Program{Name: doc.Name, Body: ast.Program(stmts...), Expect: expect}, nil
}

// Run executes the program against a fresh environment.
func (p *Program) Run(interp *interpreter.Interpreter) (*runtime.Environment, error) {
	return interp.Run(p.Body)
}

// RunContext executes the program with cooperative cancellation and an
// optional step budget.
func (p *Program) RunContext(ctx context.Context, interp *interpreter.Interpreter, budget interpreter.Budget) (*runtime.Environment, error) {
	return interp.ExecuteContext(ctx, p.Body, runtime.NewEnvironment(), budget)
}

// Check compares the document's expected bindings against a final
// environment. Expectations are structural: the authored literal must match
// the resulting constant exactly, with no numeric coercion.
func (p *Program) Check(env *runtime.Environment) error {
	var issues []string
	for _, name := range sortedKeys(p.Expect) {
		want := p.Expect[name]
		got, ok := env.Lookup(name)
		if !ok {
			issues = append(issues, fmt.Sprintf("%s: not bound in final environment", name))
			continue
		}
		if !ast.ConstantsEqual(want, got) {
			issues = append(issues, fmt.Sprintf("%s: expected %s, got %s",
				name, ast.FormatConstant(want), ast.FormatConstant(got)))
		}
	}
	if len(issues) > 0 {
		return &ValidationError{Issues: issues}
	}
	return nil
}

func sortedKeys(m map[string]ast.Expression) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
