package types

import "math"

// DefType identifies the grammatical category of a classified input line.
type DefType string

// Definition categories, in classifier dispatch order.
const (
	DefInequation  DefType = "inequation" // (a >= b), (a < b), ...
	DefEquation    DefType = "equation"   // (a = b)
	DefFunction    DefType = "function"   // f(x)=expr, or a bare expression
	DefParameter   DefType = "parameter"  // a=[0:5] or n=[1..10]
	DefExplicitSet DefType = "set"        // s={1,2,3}
	DefRangeSet    DefType = "rangeset"   // s={1:10}
	DefPoint       DefType = "point"      // p=(xExpr,yExpr)
)

// Definition is the structured result of classifying one line of input.
//
// Only the fields relevant to Type are populated. Name is empty for
// anonymous definitions (bare expressions and unnamed relations).
type Definition struct {
	Type DefType
	Name string

	Expr string // DefFunction: the function body

	Left  string // DefEquation, DefInequation: left sub-expression
	Right string // DefEquation, DefInequation: right sub-expression
	Op    string // DefInequation: one of ">=", "<=", ">", "<"

	Min      float64 // DefParameter: range lower bound
	Max      float64 // DefParameter: range upper bound
	Discrete bool    // DefParameter: true for the [min..max] integer form

	Values []float64 // DefExplicitSet, DefRangeSet: member values

	XExpr string // DefPoint: x coordinate expression
	YExpr string // DefPoint: y coordinate expression
}

// Domain derives the legal input set for this definition.
//
// Functions and relations are defined over all of R; parameters over their
// interval; sets over their member values. The interval for a discrete
// parameter is still continuous here: discreteness constrains the slider
// step, not the set of evaluable points.
func (d *Definition) Domain() *Domain {
	switch d.Type {
	case DefParameter:
		dom, _ := NewInterval(d.Min, d.Max)
		return dom
	case DefExplicitSet, DefRangeSet:
		return NewDiscrete(d.Values)
	default:
		dom, _ := NewInterval(math.Inf(-1), math.Inf(1))
		return dom
	}
}

// Anonymous reports whether the definition carries no name.
func (d *Definition) Anonymous() bool {
	return d.Name == ""
}
