package types

// Expression represents a compiled expression in the plotting mini-language.
//
// An Expression can be evaluated many times at different x values by passing
// it to the evaluator. It is immutable and safe for concurrent use by
// multiple goroutines.
type Expression struct {
	ast    *ASTNode
	source string
}

// NewExpression creates a new Expression from an AST.
func NewExpression(ast *ASTNode, source string) *Expression {
	return &Expression{
		ast:    ast,
		source: source,
	}
}

// AST returns the Abstract Syntax Tree of the expression.
func (e *Expression) AST() *ASTNode {
	return e.ast
}

// Source returns the original source text of the expression.
func (e *Expression) Source() string {
	return e.source
}

// String returns a string representation of the expression.
func (e *Expression) String() string {
	return e.source
}

// SamplePoint is an (x, y) pair in mathematical coordinates.
//
// Invalid samples (NaN or infinite y) never appear in sample sequences; they
// mark a break in the traced curve instead.
type SamplePoint struct {
	X float64
	Y float64
}
