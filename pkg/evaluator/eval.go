package evaluator

import (
	"fmt"
	"math"

	"github.com/plotsmith/gographer/pkg/types"
)

// evalNode evaluates a single AST node at x. depth counts user-defined
// function calls on the current chain; the grammar cannot rule out cycles
// (f(x)=g(x), g(x)=f(x)), so the depth guard cuts them off with an
// ErrRecursionLimit error.
func (e *Evaluator) evalNode(node *types.ASTNode, env *Environment, x float64, depth int) (float64, error) {
	switch node.Type {
	case types.NodeNumber:
		return node.NumValue, nil

	case types.NodeConstant:
		return constants[node.Value], nil

	case types.NodeVariable:
		return x, nil

	case types.NodeRef:
		return e.evalRef(node, env)

	case types.NodeUnary:
		v, err := e.evalNode(node.Operand, env, x, depth)
		if err != nil {
			return 0, err
		}
		if node.Value == "-" {
			return -v, nil
		}
		return v, nil

	case types.NodeBinary:
		return e.evalBinary(node, env, x, depth)

	case types.NodeCall:
		return e.evalCall(node, env, x, depth)

	default:
		return 0, &types.Error{
			Code:     types.ErrUnexpectedToken,
			Message:  fmt.Sprintf("cannot evaluate node type %q", node.Type),
			Position: node.Position,
		}
	}
}

// evalBinary evaluates an arithmetic operator. Arithmetic follows IEEE 754
// double semantics: division by zero yields Inf or NaN, not an error, and
// a negative base with a fractional exponent yields NaN.
func (e *Evaluator) evalBinary(node *types.ASTNode, env *Environment, x float64, depth int) (float64, error) {
	l, err := e.evalNode(node.LHS, env, x, depth)
	if err != nil {
		return 0, err
	}
	r, err := e.evalNode(node.RHS, env, x, depth)
	if err != nil {
		return 0, err
	}

	switch node.Value {
	case "+":
		return l + r, nil
	case "-":
		return l - r, nil
	case "*":
		return l * r, nil
	case "/":
		return l / r, nil
	case "^":
		return math.Pow(l, r), nil
	default:
		return 0, &types.Error{
			Code:     types.ErrUnexpectedToken,
			Message:  fmt.Sprintf("unknown operator %q", node.Value),
			Position: node.Position,
		}
	}
}

// evalRef resolves a bare identifier against the environment's parameters.
func (e *Evaluator) evalRef(node *types.ASTNode, env *Environment) (float64, error) {
	if env != nil {
		if v, ok := env.Param(node.Value); ok {
			return v, nil
		}
	}
	return 0, &types.Error{
		Code:     types.ErrUndefinedReference,
		Message:  fmt.Sprintf("undefined reference %q", node.Value),
		Position: node.Position,
		Token:    node.Value,
	}
}

// evalCall evaluates a function application. User-defined functions shadow
// built-ins: the body expression is compiled (through the cache when
// enabled) and evaluated with its own x bound to the computed argument, so
// user functions may call other user functions transitively.
func (e *Evaluator) evalCall(node *types.ASTNode, env *Environment, x float64, depth int) (float64, error) {
	arg, err := e.evalNode(node.Operand, env, x, depth)
	if err != nil {
		return 0, err
	}

	if env != nil && !node.HasParam {
		if body, ok := env.Lookup(node.Value); ok {
			if depth+1 > e.opts.MaxCallDepth {
				return 0, &types.Error{
					Code:     types.ErrRecursionLimit,
					Message:  fmt.Sprintf("call depth limit %d exceeded in %q", e.opts.MaxCallDepth, node.Value),
					Position: node.Position,
					Token:    node.Value,
				}
			}
			expr, err := e.Compile(body)
			if err != nil {
				return 0, err
			}
			return e.evalNode(expr.AST(), env, arg, depth+1)
		}
	}

	return applyBuiltin(node, arg)
}
