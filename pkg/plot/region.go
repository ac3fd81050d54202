package plot

import (
	"github.com/plotsmith/gographer/pkg/evaluator"
	"github.com/plotsmith/gographer/pkg/types"
)

// RegionMask evaluates an inequality left <op> right at every x in xs and
// reports where it holds. Samples where either side is invalid or
// non-finite are false. op is one of ">=", "<=", ">", "<".
func (s *Sampler) RegionMask(left, right *types.Expression, env *evaluator.Environment, op string, xs []float64) []bool {
	mask := make([]bool, len(xs))
	for i, x := range xs {
		lv, err := s.ev.EvalAt(left, env, x)
		if err != nil || !isFinite(lv) {
			continue
		}
		rv, err := s.ev.EvalAt(right, env, x)
		if err != nil || !isFinite(rv) {
			continue
		}
		switch op {
		case ">=":
			mask[i] = lv >= rv
		case "<=":
			mask[i] = lv <= rv
		case ">":
			mask[i] = lv > rv
		case "<":
			mask[i] = lv < rv
		}
	}
	return mask
}
