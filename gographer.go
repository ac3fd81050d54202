// Package gographer implements the core of an interactive function grapher:
// a small algebraic mini-language with a parser, a numeric evaluator, an
// input-line classifier, and numeric intersection finding.
//
// The mini-language is ASCII with case-sensitive lowercase identifiers:
//
//	x^2 + 1              anonymous function of x
//	f(x)=sin x^2         named function, registered for reuse
//	(x^2 = 2*x+1)        equation, solved for intersection points
//	(x^2 <= 4)           inequality, a region boundary
//	a=[0:5]              continuous parameter
//	n=[1..10]            discrete parameter
//	s={1,2,3}            explicit numeric set
//	r={1:10}             integer range set
//	p=(a, a^2)           point, coordinates may reference parameters
//
// Built-in functions: sqrt, sin, cos, tan, log (base 10), ln, abs, plus
// parameterized root{n} and log{b}. Constants: pi, e. Operators + - * / ^
// with standard precedence and right-associative ^.
//
// # Quick Start
//
//	// Evaluate once
//	y, err := gographer.Eval("sin(pi/2) + 1", 0)
//
//	// Compile once, evaluate many times
//	expr, err := gographer.Compile("x^2 - 2")
//	ev := evaluator.New(evaluator.WithCaching(true))
//	y1, _ := ev.EvalAt(expr, nil, 1.0)
//	y2, _ := ev.EvalAt(expr, nil, 2.0)
//
//	// Classify user input
//	env := evaluator.NewEnvironment()
//	def, err := gographer.Classify("f(x)=x^2", env)
//
// # More Information
//
// For detailed documentation, see:
//   - Parser: github.com/plotsmith/gographer/pkg/parser
//   - Evaluator: github.com/plotsmith/gographer/pkg/evaluator
//   - Classifier: github.com/plotsmith/gographer/pkg/classifier
//   - Sampling and intersections: github.com/plotsmith/gographer/pkg/plot
package gographer

import (
	"fmt"

	"github.com/plotsmith/gographer/pkg/classifier"
	"github.com/plotsmith/gographer/pkg/evaluator"
	"github.com/plotsmith/gographer/pkg/parser"
	"github.com/plotsmith/gographer/pkg/plot"
	"github.com/plotsmith/gographer/pkg/types"
)

// Version returns the current version of GoGrapher.
func Version() string {
	return "v0.1.0-dev"
}

// Compile compiles an expression for repeated evaluation.
//
// The compiled expression can be evaluated at many x values without
// re-parsing. It is immutable and safe for concurrent use.
func Compile(src string, opts ...parser.CompileOption) (*types.Expression, error) {
	return parser.Compile(src, opts...)
}

// MustCompile is like Compile but panics if the expression cannot be
// compiled. It simplifies safe initialization of global variables.
func MustCompile(src string) *types.Expression {
	expr, err := Compile(src)
	if err != nil {
		panic(fmt.Sprintf("gographer: Compile(%q): %v", src, err))
	}
	return expr
}

// Eval is a convenience function that compiles and evaluates an expression
// at x in a single call, with no environment.
//
// For repeated evaluations of the same expression, use Compile and an
// [evaluator.Evaluator] instead.
func Eval(src string, x float64, opts ...evaluator.EvalOption) (float64, error) {
	ev := evaluator.New(opts...)
	return ev.Eval(src, nil, x)
}

// EvalIn evaluates an expression at x against an environment of
// user-defined functions and parameters.
func EvalIn(src string, env *evaluator.Environment, x float64, opts ...evaluator.EvalOption) (float64, error) {
	ev := evaluator.New(opts...)
	return ev.Eval(src, env, x)
}

// Classify determines the definition category of one line of input,
// registering named functions into env for reuse by later lines.
func Classify(line string, env *evaluator.Environment) (*types.Definition, error) {
	return classifier.New(env).Classify(line)
}

// FindIntersections compiles two expressions and locates the points where
// they are numerically equal over [xMin, xMax].
func FindIntersections(left, right string, env *evaluator.Environment, xMin, xMax float64, sampleWidth int, opts ...evaluator.EvalOption) ([]types.SamplePoint, error) {
	le, err := Compile(left)
	if err != nil {
		return nil, err
	}
	re, err := Compile(right)
	if err != nil {
		return nil, err
	}
	it := plot.NewIntersector(evaluator.New(opts...), plot.DefaultIntersectConfig())
	return it.FindIntersections(le, re, env, xMin, xMax, sampleWidth), nil
}
