package plot

import (
	"math"

	"github.com/plotsmith/gographer/pkg/evaluator"
	"github.com/plotsmith/gographer/pkg/types"
)

// IntersectConfig tunes the intersection engine.
type IntersectConfig struct {
	// MinSamples and MaxSamples clamp the initial scan density.
	MinSamples int
	MaxSamples int
	// MaxIterations bounds bisection refinement per bracket.
	MaxIterations int
	// Epsilon is the bracket width below which bisection stops. A sample
	// whose difference magnitude is within Epsilon counts as a root
	// directly.
	Epsilon float64
	// DedupThreshold merges intersections whose x values are closer than
	// this.
	DedupThreshold float64
}

// DefaultIntersectConfig returns the intersection defaults.
func DefaultIntersectConfig() IntersectConfig {
	return IntersectConfig{
		MinSamples:     64,
		MaxSamples:     2048,
		MaxIterations:  64,
		Epsilon:        1e-9,
		DedupThreshold: 1e-6,
	}
}

// Intersector locates points where two expressions are numerically equal.
type Intersector struct {
	cfg IntersectConfig
	ev  *evaluator.Evaluator
}

// NewIntersector creates an intersector using ev for evaluation.
func NewIntersector(ev *evaluator.Evaluator, cfg IntersectConfig) *Intersector {
	return &Intersector{cfg: cfg, ev: ev}
}

// FindIntersections finds x values in [xMin, xMax] where left(x) equals
// right(x), by scanning g(x) = left(x) - right(x) at sampleWidth points
// (clamped to the configured bounds) and bisecting every bracket where g
// changes sign between two finite samples. Each intersection's y is taken
// from evaluating left at the located x.
//
// The method is best-effort and bounded by the sampling resolution: roots
// closer together than one scan step, and tangential intersections that
// never change sign, are not found. Samples where either side is invalid
// or non-finite are skipped, never treated as a sign change.
func (it *Intersector) FindIntersections(left, right *types.Expression, env *evaluator.Environment, xMin, xMax float64, sampleWidth int) []types.SamplePoint {
	if xMax <= xMin {
		return nil
	}

	n := sampleWidth
	if n < it.cfg.MinSamples {
		n = it.cfg.MinSamples
	} else if n > it.cfg.MaxSamples {
		n = it.cfg.MaxSamples
	}

	diff := func(x float64) (float64, bool) {
		lv, err := it.ev.EvalAt(left, env, x)
		if err != nil || !isFinite(lv) {
			return 0, false
		}
		rv, err := it.ev.EvalAt(right, env, x)
		if err != nil || !isFinite(rv) {
			return 0, false
		}
		return lv - rv, true
	}

	var out []types.SamplePoint
	lastX := 0.0
	emit := func(x float64) {
		if len(out) > 0 && x-lastX < it.cfg.DedupThreshold {
			return
		}
		y, err := it.ev.EvalAt(left, env, x)
		if err != nil {
			return
		}
		out = append(out, types.SamplePoint{X: x, Y: y})
		lastX = x
	}

	step := (xMax - xMin) / float64(n-1)
	var prevG, prevX float64
	prevOK := false

	for i := 0; i < n; i++ {
		x := xMin + float64(i)*step
		g, ok := diff(x)
		if !ok {
			prevOK = false
			continue
		}

		if math.Abs(g) <= it.cfg.Epsilon {
			emit(x)
			prevOK = false
			continue
		}

		if prevOK && (prevG < 0) != (g < 0) {
			emit(it.bisect(diff, prevX, x, prevG))
		}

		prevG, prevX, prevOK = g, x, true
	}

	return out
}

// bisect refines a bracket [a, b] with a known sign change, halving until
// the width falls below Epsilon or the iteration budget runs out, and
// returns the midpoint of the final bracket.
func (it *Intersector) bisect(diff func(float64) (float64, bool), a, b, ga float64) float64 {
	for i := 0; i < it.cfg.MaxIterations && b-a > it.cfg.Epsilon; i++ {
		m := (a + b) / 2
		gm, ok := diff(m)
		if !ok || math.Abs(gm) <= it.cfg.Epsilon {
			return m
		}
		if (ga < 0) != (gm < 0) {
			b = m
		} else {
			a = m
			ga = gm
		}
	}
	return (a + b) / 2
}
