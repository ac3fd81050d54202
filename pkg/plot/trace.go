package plot

import (
	"maps"

	"github.com/plotsmith/gographer/pkg/evaluator"
	"github.com/plotsmith/gographer/pkg/types"
)

// Trace caches the computed sample segments of one curve.
//
// Segments are recomputed lazily when the trace has been invalidated, when
// the requested view differs from the cached one, or when any referenced
// parameter value changed since the last computation. Callers that edit the
// underlying expression must create a new Trace or call Invalidate.
type Trace struct {
	sampler *Sampler
	expr    *types.Expression
	env     *evaluator.Environment
	dom     *types.Domain

	segments   []Segment
	dirty      bool
	viewMin    float64
	viewMax    float64
	pixelWidth int
	paramSnap  map[string]float64
}

// NewTrace creates a trace for expr over dom. The first Segments call
// computes the samples.
func NewTrace(sampler *Sampler, expr *types.Expression, env *evaluator.Environment, dom *types.Domain) *Trace {
	return &Trace{
		sampler: sampler,
		expr:    expr,
		env:     env,
		dom:     dom,
		dirty:   true,
	}
}

// Expr returns the traced expression.
func (t *Trace) Expr() *types.Expression {
	return t.expr
}

// Invalidate marks the cached segments as stale.
func (t *Trace) Invalidate() {
	t.dirty = true
}

// Segments returns the curve segments for the given view, recomputing them
// only when stale.
func (t *Trace) Segments(viewMin, viewMax float64, pixelWidth int) []Segment {
	if t.stale(viewMin, viewMax, pixelWidth) {
		t.segments = t.sampler.Trace(t.expr, t.env, t.dom, viewMin, viewMax, pixelWidth)
		t.viewMin = viewMin
		t.viewMax = viewMax
		t.pixelWidth = pixelWidth
		if t.env != nil {
			t.paramSnap = t.env.ParamSnapshot()
		}
		t.dirty = false
	}
	return t.segments
}

func (t *Trace) stale(viewMin, viewMax float64, pixelWidth int) bool {
	if t.dirty || viewMin != t.viewMin || viewMax != t.viewMax || pixelWidth != t.pixelWidth {
		return true
	}
	if t.env != nil && !maps.Equal(t.paramSnap, t.env.ParamSnapshot()) {
		return true
	}
	return false
}
