// Package parser implements the lexer and recursive descent parser for the
// GoGrapher plotting mini-language.
//
// # Architecture
//
// The parser consists of two components:
//   - Lexer: Tokenizes the input expression into a stream of tokens
//   - Parser: Builds an Abstract Syntax Tree (AST) from tokens
//
// # Example
//
//	expr, err := parser.Parse("sin x^2 + 1")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	ast := expr.AST()
package parser

import (
	"github.com/plotsmith/gographer/pkg/types"
)

// Parse parses an expression and returns the compiled Expression.
//
// The function tokenizes the input, builds an AST, and validates that the
// whole input was consumed. If parsing fails, it returns a structured
// *types.Error with a code and source position.
func Parse(src string) (*types.Expression, error) {
	p := NewParser(src)
	return p.Parse()
}

// Compile is an alias for Parse that accepts options, provided for API
// consistency with the evaluator.
func Compile(src string, opts ...CompileOption) (*types.Expression, error) {
	p := NewParser(src, opts...)
	return p.Parse()
}

// CompileOption configures compilation behavior.
type CompileOption func(*CompileOptions)

// CompileOptions holds parser configuration.
type CompileOptions struct {
	// MaxDepth limits grammar recursion depth, which equals expression
	// nesting depth, to prevent stack overflow on adversarial input.
	MaxDepth int
}

// WithMaxDepth sets the maximum parsing depth.
func WithMaxDepth(depth int) CompileOption {
	return func(opts *CompileOptions) {
		opts.MaxDepth = depth
	}
}
