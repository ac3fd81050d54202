package parser_test

import (
	"testing"

	"github.com/plotsmith/gographer/pkg/parser"
	"github.com/plotsmith/gographer/pkg/types"
)

// Helper functions

func parseExpr(t *testing.T, input string) *types.ASTNode {
	t.Helper()
	expr, err := parser.Parse(input)
	if err != nil {
		t.Fatalf("failed to parse %q: %v", input, err)
	}
	return expr.AST()
}

func expectParseError(t *testing.T, input string, code types.ErrorCode) {
	t.Helper()
	_, err := parser.Parse(input)
	if err == nil {
		t.Fatalf("expected error parsing %q but got none", input)
	}
	if got := types.CodeOf(err); got != code {
		t.Fatalf("parsing %q: got code %s, want %s", input, got, code)
	}
}

func checkNode(t *testing.T, node *types.ASTNode, nodeType types.NodeType, value string) {
	t.Helper()
	if node == nil {
		t.Fatal("node is nil")
	}
	if node.Type != nodeType {
		t.Errorf("got node type %s, want %s", node.Type, nodeType)
	}
	if value != "" && node.Value != value {
		t.Errorf("got value %q, want %q", node.Value, value)
	}
}

// Structure tests

func TestParseLiterals(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
	}{
		{"integer", "42", 42},
		{"decimal", "3.14", 3.14},
		{"leading dot", ".5", 0.5},
		{"spaced", "  7 ", 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node := parseExpr(t, tt.input)
			checkNode(t, node, types.NodeNumber, "")
			if node.NumValue != tt.want {
				t.Errorf("got %v, want %v", node.NumValue, tt.want)
			}
		})
	}
}

func TestParsePrecedence(t *testing.T) {
	// 2+3*4 groups as 2+(3*4)
	node := parseExpr(t, "2+3*4")
	checkNode(t, node, types.NodeBinary, "+")
	checkNode(t, node.LHS, types.NodeNumber, "")
	checkNode(t, node.RHS, types.NodeBinary, "*")
}

func TestParsePowerRightAssociative(t *testing.T) {
	// 2^3^2 groups as 2^(3^2)
	node := parseExpr(t, "2^3^2")
	checkNode(t, node, types.NodeBinary, "^")
	checkNode(t, node.LHS, types.NodeNumber, "")
	checkNode(t, node.RHS, types.NodeBinary, "^")
}

func TestParseUnaryBeforePower(t *testing.T) {
	// -x^2 groups as -(x^2)
	node := parseExpr(t, "-x^2")
	checkNode(t, node, types.NodeUnary, "-")
	checkNode(t, node.Operand, types.NodeBinary, "^")
	checkNode(t, node.Operand.LHS, types.NodeVariable, "")
}

func TestParseConstantsAndVariable(t *testing.T) {
	tests := []struct {
		input    string
		nodeType types.NodeType
		value    string
	}{
		{"pi", types.NodeConstant, "pi"},
		{"e", types.NodeConstant, "e"},
		{"x", types.NodeVariable, ""},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			checkNode(t, parseExpr(t, tt.input), tt.nodeType, tt.value)
		})
	}
}

func TestParseApplication(t *testing.T) {
	// sin x^2 applies sin to the full factor x^2
	node := parseExpr(t, "sin x^2")
	checkNode(t, node, types.NodeCall, "sin")
	checkNode(t, node.Operand, types.NodeBinary, "^")

	// sin x * 2 applies sin to x only
	node = parseExpr(t, "sin x * 2")
	checkNode(t, node, types.NodeBinary, "*")
	checkNode(t, node.LHS, types.NodeCall, "sin")
	checkNode(t, node.LHS.Operand, types.NodeVariable, "")
}

func TestParseParameterizedCall(t *testing.T) {
	node := parseExpr(t, "root{3}(x)")
	checkNode(t, node, types.NodeCall, "root")
	if !node.HasParam || node.Param != 3 {
		t.Errorf("got param (%v, %d), want (true, 3)", node.HasParam, node.Param)
	}
	checkNode(t, node.Operand, types.NodeVariable, "")
}

func TestParseReference(t *testing.T) {
	// A bare identifier before a non-factor token is a reference.
	node := parseExpr(t, "a*x")
	checkNode(t, node, types.NodeBinary, "*")
	checkNode(t, node.LHS, types.NodeRef, "a")

	node = parseExpr(t, "a-1")
	checkNode(t, node, types.NodeBinary, "-")
	checkNode(t, node.LHS, types.NodeRef, "a")
}

func TestParseGrouping(t *testing.T) {
	node := parseExpr(t, "(1+2)*3")
	checkNode(t, node, types.NodeBinary, "*")
	checkNode(t, node.LHS, types.NodeBinary, "+")
}

// Error tests

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		code  types.ErrorCode
	}{
		{"empty", "", types.ErrUnexpectedEnd},
		{"spaces only", "   ", types.ErrUnexpectedEnd},
		{"dangling operator", "1+", types.ErrUnexpectedEnd},
		{"unclosed paren", "(1+2", types.ErrUnexpectedToken},
		{"trailing input", "1 2", types.ErrTrailingInput},
		{"trailing paren", "1+2)", types.ErrTrailingInput},
		{"double dot number", "1.2.3", types.ErrMalformedNumber},
		{"unclosed parameter", "root{3(x)", types.ErrUnclosedParameter},
		{"bad character", "2 & 3", types.ErrUnexpectedToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expectParseError(t, tt.input, tt.code)
		})
	}
}

func TestParseDepthLimit(t *testing.T) {
	deep := ""
	for i := 0; i < 200; i++ {
		deep += "("
	}
	deep += "1"
	for i := 0; i < 200; i++ {
		deep += ")"
	}
	expectParseError(t, deep, types.ErrDepthExceeded)

	if _, err := parser.Compile(deep, parser.WithMaxDepth(1000)); err != nil {
		t.Errorf("raised depth limit should parse: %v", err)
	}
}

func TestParseSourceRoundTrip(t *testing.T) {
	src := "sin x^2 + 1"
	expr, err := parser.Parse(src)
	if err != nil {
		t.Fatal(err)
	}
	if expr.Source() != src {
		t.Errorf("got source %q, want %q", expr.Source(), src)
	}
}
