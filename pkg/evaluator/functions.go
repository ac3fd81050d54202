package evaluator

import (
	"fmt"
	"math"

	"github.com/plotsmith/gographer/pkg/types"
)

// builtins is the fixed built-in function set. Every function takes and
// returns an IEEE float64; out-of-domain arguments yield NaN or Inf rather
// than errors, and are filtered at the sampling boundary.
var builtins = map[string]func(float64) float64{
	"sqrt": math.Sqrt,
	"sin":  math.Sin,
	"cos":  math.Cos,
	"tan":  math.Tan,
	"log":  math.Log10,
	"ln":   math.Log,
	"abs":  math.Abs,
}

// Parameterized built-ins take a {N} suffix: root{n} is the nth root and
// log{b} is the logarithm in base b.
const (
	nameRoot = "root"
	nameLog  = "log"
)

// Constant values resolved at parse time.
var constants = map[string]float64{
	"pi": math.Pi,
	"e":  math.E,
}

// applyBuiltin applies a built-in function to an evaluated argument.
func applyBuiltin(node *types.ASTNode, arg float64) (float64, error) {
	name := node.Value

	if node.HasParam {
		switch name {
		case nameRoot:
			return nthRoot(arg, node.Param), nil
		case nameLog:
			return math.Log(arg) / math.Log(float64(node.Param)), nil
		default:
			return 0, &types.Error{
				Code:     types.ErrUnknownFunction,
				Message:  fmt.Sprintf("function %q takes no {n} parameter", name),
				Position: node.Position,
				Token:    name,
			}
		}
	}

	fn, ok := builtins[name]
	if !ok {
		return 0, &types.Error{
			Code:     types.ErrUnknownFunction,
			Message:  fmt.Sprintf("unknown function %q", name),
			Position: node.Position,
			Token:    name,
		}
	}
	return fn(arg), nil
}

// nthRoot computes the real nth root of v. Odd roots of negative numbers
// are real (root{3}(-8) = -2); even roots of negative numbers are NaN.
func nthRoot(v float64, n int) float64 {
	if n <= 0 {
		return math.NaN()
	}
	if v < 0 && n%2 == 1 {
		return -math.Pow(-v, 1/float64(n))
	}
	return math.Pow(v, 1/float64(n))
}
