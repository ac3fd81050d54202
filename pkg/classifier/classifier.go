// Package classifier determines which grammatical category a line of user
// input belongs to and extracts its structured fields.
//
// Patterns overlap, so dispatch order matters: the rules run as a fixed
// priority list, not as independent patterns. The order is: inequation,
// equation, named function, parameter range, value set, point, and finally
// the anonymous-expression fallback. Within the comparison operators,
// ">=" and "<=" are checked before ">" and "<" so a ">=" is never read as
// ">" followed by a stray "=".
package classifier

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/plotsmith/gographer/pkg/evaluator"
	"github.com/plotsmith/gographer/pkg/types"
)

// Classifier classifies input lines and registers named functions into a
// shared Environment so later definitions can reference them.
type Classifier struct {
	env *evaluator.Environment
}

// rule is one step of the dispatch list. matched is false when the line
// does not have the rule's shape at all; a non-nil error means the line has
// the shape but its content is invalid, and classification fails without
// trying later rules.
type rule func(line string) (def *types.Definition, matched bool, err error)

// New creates a classifier that registers named functions into env.
// env may be nil; named functions are then classified but not registered.
func New(env *evaluator.Environment) *Classifier {
	return &Classifier{env: env}
}

// Classify determines the definition category of one line of input.
//
// Lines matching no category at all become anonymous regular functions of x
// whose expression is the whole trimmed line; syntactically invalid
// expressions surface later, at parse time.
func (c *Classifier) Classify(line string) (*types.Definition, error) {
	trimmed := strings.TrimSpace(line)

	rules := []rule{
		c.matchInequation,
		c.matchEquation,
		c.matchNamedFunction,
		c.matchParameter,
		c.matchSet,
		c.matchPoint,
	}

	for _, r := range rules {
		def, matched, err := r(trimmed)
		if err != nil {
			return nil, err
		}
		if matched {
			return def, nil
		}
	}

	return &types.Definition{Type: types.DefFunction, Expr: trimmed}, nil
}

// comparison operators, two-character forms first.
var cmpOps = []string{">=", "<=", ">", "<"}

// matchInequation matches "(<a> <cmp> <b>)" with cmp one of >= <= > <.
func (c *Classifier) matchInequation(line string) (*types.Definition, bool, error) {
	inner, ok := parenthesized(line)
	if !ok {
		return nil, false, nil
	}

	for i := 0; i < len(inner); i++ {
		for _, op := range cmpOps {
			if strings.HasPrefix(inner[i:], op) {
				left := strings.TrimSpace(inner[:i])
				right := strings.TrimSpace(inner[i+len(op):])
				if left == "" || right == "" {
					return nil, false, nil
				}
				return &types.Definition{
					Type:  types.DefInequation,
					Left:  left,
					Op:    op,
					Right: right,
				}, true, nil
			}
		}
	}
	return nil, false, nil
}

// matchEquation matches "(<a> = <b>)", splitting at the first "=".
func (c *Classifier) matchEquation(line string) (*types.Definition, bool, error) {
	inner, ok := parenthesized(line)
	if !ok {
		return nil, false, nil
	}

	i := strings.IndexByte(inner, '=')
	if i < 0 {
		return nil, false, nil
	}
	left := strings.TrimSpace(inner[:i])
	right := strings.TrimSpace(inner[i+1:])
	if left == "" || right == "" {
		return nil, false, nil
	}
	return &types.Definition{
		Type:  types.DefEquation,
		Left:  left,
		Right: right,
	}, true, nil
}

// matchNamedFunction matches "name(x) = <rhs>" and registers name → rhs in
// the shared environment.
func (c *Classifier) matchNamedFunction(line string) (*types.Definition, bool, error) {
	name, rest := scanName(line)
	if name == "" {
		return nil, false, nil
	}

	rest = strings.TrimLeft(rest, " ")
	for _, expect := range []string{"(", "x", ")", "="} {
		if !strings.HasPrefix(rest, expect) {
			return nil, false, nil
		}
		rest = strings.TrimLeft(rest[1:], " ")
	}

	rhs := strings.TrimSpace(rest)
	if rhs == "" {
		return nil, false, nil
	}

	if c.env != nil {
		c.env.Define(name, rhs)
	}
	return &types.Definition{
		Type: types.DefFunction,
		Name: name,
		Expr: rhs,
	}, true, nil
}

// matchParameter matches "name=[min:max]" (continuous, real bounds) and
// "name=[min..max]" (discrete, integer bounds). Both reject min >= max.
func (c *Classifier) matchParameter(line string) (*types.Definition, bool, error) {
	name, inner, ok := namedBracket(line, '[', ']')
	if !ok {
		return nil, false, nil
	}

	if lo, hi, ok := splitPair(inner, ".."); ok {
		min, err1 := strconv.Atoi(lo)
		max, err2 := strconv.Atoi(hi)
		if err1 != nil || err2 != nil {
			return nil, false, errInvalidRange(fmt.Sprintf("discrete parameter bounds must be integers in %q", line))
		}
		if min >= max {
			return nil, false, errInvalidRange(fmt.Sprintf("parameter range requires min < max in %q", line))
		}
		return &types.Definition{
			Type:     types.DefParameter,
			Name:     name,
			Min:      float64(min),
			Max:      float64(max),
			Discrete: true,
		}, true, nil
	}

	if lo, hi, ok := splitPair(inner, ":"); ok {
		min, err1 := strconv.ParseFloat(lo, 64)
		max, err2 := strconv.ParseFloat(hi, 64)
		if err1 != nil || err2 != nil {
			return nil, false, errInvalidRange(fmt.Sprintf("parameter bounds must be numeric in %q", line))
		}
		if min >= max {
			return nil, false, errInvalidRange(fmt.Sprintf("parameter range requires min < max in %q", line))
		}
		return &types.Definition{
			Type: types.DefParameter,
			Name: name,
			Min:  min,
			Max:  max,
		}, true, nil
	}

	return nil, false, errInvalidRange(fmt.Sprintf("malformed parameter range in %q", line))
}

// matchSet matches "name={v1,v2,...}" (explicit numeric set) and
// "name={min:max}" (integer range set). Range sets normalize bound order
// instead of rejecting min >= max; this deliberately differs from the
// parameter form.
func (c *Classifier) matchSet(line string) (*types.Definition, bool, error) {
	name, inner, ok := namedBracket(line, '{', '}')
	if !ok {
		return nil, false, nil
	}

	if lo, hi, ok := splitPair(inner, ":"); ok {
		a, err1 := strconv.Atoi(lo)
		b, err2 := strconv.Atoi(hi)
		if err1 != nil || err2 != nil {
			return nil, false, errMalformedSet(fmt.Sprintf("range set bounds must be integers in %q", line))
		}
		if a > b {
			a, b = b, a
		}
		values := make([]float64, 0, b-a+1)
		for v := a; v <= b; v++ {
			values = append(values, float64(v))
		}
		return &types.Definition{
			Type:   types.DefRangeSet,
			Name:   name,
			Values: values,
		}, true, nil
	}

	parts := strings.Split(inner, ",")
	values := make([]float64, 0, len(parts))
	for _, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, false, errMalformedSet(fmt.Sprintf("set members must be numeric literals in %q", line))
		}
		values = append(values, v)
	}
	if len(values) == 0 {
		return nil, false, errMalformedSet(fmt.Sprintf("empty set in %q", line))
	}
	return &types.Definition{
		Type:   types.DefExplicitSet,
		Name:   name,
		Values: values,
	}, true, nil
}

// matchPoint matches "name=(xExpr,yExpr)", splitting at the first comma at
// parenthesis nesting depth 0. Unbalanced parentheses are a malformed
// point; a balanced pair without a top-level comma is not a point at all
// and falls through to the expression fallback.
func (c *Classifier) matchPoint(line string) (*types.Definition, bool, error) {
	name, inner, ok := namedBracket(line, '(', ')')
	if !ok {
		return nil, false, nil
	}

	depth := 0
	comma := -1
	for i := 0; i < len(inner); i++ {
		switch inner[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth < 0 {
				return nil, false, errMalformedPoint(fmt.Sprintf("unbalanced parentheses in %q", line))
			}
		case ',':
			if depth == 0 && comma < 0 {
				comma = i
			}
		}
	}
	if depth != 0 {
		return nil, false, errMalformedPoint(fmt.Sprintf("unbalanced parentheses in %q", line))
	}
	if comma < 0 {
		return nil, false, nil
	}

	xExpr := strings.TrimSpace(inner[:comma])
	yExpr := strings.TrimSpace(inner[comma+1:])
	if xExpr == "" || yExpr == "" {
		return nil, false, errMalformedPoint(fmt.Sprintf("point needs both coordinates in %q", line))
	}
	return &types.Definition{
		Type:  types.DefPoint,
		Name:  name,
		XExpr: xExpr,
		YExpr: yExpr,
	}, true, nil
}

// Helpers

// parenthesized strips one outer "( ... )" pair; ok is false when the line
// is not wrapped in parentheses.
func parenthesized(line string) (string, bool) {
	if len(line) < 2 || line[0] != '(' || line[len(line)-1] != ')' {
		return "", false
	}
	return line[1 : len(line)-1], true
}

// namedBracket matches "name=<open>...<close>" and returns the lower-cased
// name and the bracket content.
func namedBracket(line string, open, close byte) (name, inner string, ok bool) {
	ident, rest := scanName(line)
	if ident == "" {
		return "", "", false
	}
	rest = strings.TrimLeft(rest, " ")
	if !strings.HasPrefix(rest, "=") {
		return "", "", false
	}
	rest = strings.TrimLeft(rest[1:], " ")
	if len(rest) < 2 || rest[0] != open || rest[len(rest)-1] != close {
		return "", "", false
	}
	return ident, rest[1 : len(rest)-1], true
}

// scanName reads a leading letter run and returns it lower-cased along with
// the remainder of the line.
func scanName(line string) (name, rest string) {
	i := 0
	for i < len(line) && isLetter(line[i]) {
		i++
	}
	return strings.ToLower(line[:i]), line[i:]
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// splitPair splits s at the first occurrence of sep into two trimmed
// halves.
func splitPair(s, sep string) (lo, hi string, ok bool) {
	i := strings.Index(s, sep)
	if i < 0 {
		return "", "", false
	}
	return strings.TrimSpace(s[:i]), strings.TrimSpace(s[i+len(sep):]), true
}

func errInvalidRange(msg string) error {
	return &types.Error{Code: types.ErrInvalidRange, Message: msg}
}

func errMalformedSet(msg string) error {
	return &types.Error{Code: types.ErrMalformedSet, Message: msg}
}

func errMalformedPoint(msg string) error {
	return &types.Error{Code: types.ErrMalformedPoint, Message: msg}
}
