// Package types defines the core type system for GoGrapher.
//
// This package contains type definitions for:
//   - Expression: Compiled expressions in the plotting mini-language
//   - ASTNode: Abstract Syntax Tree nodes
//   - Definition: Classified input-line forms (functions, equations, sets...)
//   - Domain: Legal input sets for a definition
//   - SamplePoint: (x, y) pairs in mathematical coordinates
//   - Error types: Structured errors with codes
package types

// NodeType identifies the type of an AST node.
type NodeType string

// AST node types.
const (
	NodeNumber   NodeType = "number"   // Numeric literal
	NodeConstant NodeType = "constant" // pi, e
	NodeVariable NodeType = "variable" // x
	NodeRef      NodeType = "ref"      // Bare identifier, resolved against the environment
	NodeBinary   NodeType = "binary"   // +, -, *, /, ^
	NodeUnary    NodeType = "unary"    // -, +
	NodeCall     NodeType = "call"     // Function application, optionally with a {N} parameter
)

// ASTNode represents a node in the Abstract Syntax Tree.
//
// The tree is built once per expression by the parser and is immutable
// afterwards. Value holds the operator for NodeBinary/NodeUnary, the
// function name for NodeCall, and the constant or reference name for
// NodeConstant/NodeRef.
type ASTNode struct {
	Type     NodeType
	Value    string
	NumValue float64 // Pre-typed numeric value; set by parser for NodeNumber
	Position int

	LHS     *ASTNode // Left operand (binary ops)
	RHS     *ASTNode // Right operand (binary ops)
	Operand *ASTNode // Operand of unary ops and call arguments

	Param    int  // {N} suffix of a parameterized call, e.g. root{3}
	HasParam bool // True when a {N} suffix was present
}

// NewASTNode creates a new AST node of the specified type.
func NewASTNode(nodeType NodeType, position int) *ASTNode {
	return &ASTNode{
		Type:     nodeType,
		Position: position,
	}
}
