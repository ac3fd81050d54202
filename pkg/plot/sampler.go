// Package plot turns compiled expressions into drawable sample sequences:
// adaptively sampled curve traces, numerically located intersection points,
// and region masks for inequalities.
//
// Everything here works in mathematical coordinates. Mapping to pixels,
// stroke styles and widget handling belong to the consumer.
package plot

import (
	"math"

	"github.com/plotsmith/gographer/pkg/evaluator"
	"github.com/plotsmith/gographer/pkg/types"
)

// Segment is a run of consecutive valid samples. A new segment starts after
// every invalid or skipped sample; consumers must not interpolate across
// segment boundaries.
type Segment []types.SamplePoint

// Config tunes adaptive sampling density.
type Config struct {
	// MinSamples and MaxSamples clamp the computed sample count.
	MinSamples int
	MaxSamples int
	// ReferenceRange is the visible x-range at which no zoom boost applies.
	// Narrower ranges are sampled more densely.
	ReferenceRange float64
	// MaxZoomBoost caps the density multiplier when zoomed far in.
	MaxZoomBoost float64
}

// DefaultConfig returns the sampling defaults.
func DefaultConfig() Config {
	return Config{
		MinSamples:     100,
		MaxSamples:     10000,
		ReferenceRange: 20,
		MaxZoomBoost:   8,
	}
}

// SampleCount chooses how many samples to generate for a curve drawn
// pixelWidth pixels wide over a visible x-range of viewRange.
//
// The pixel width is scaled up by a zoom multiplier that grows as the view
// narrows below the reference range, then clamped to
// [MinSamples, MaxSamples]. The count is monotonically non-decreasing as
// the view range shrinks.
func (cfg Config) SampleCount(pixelWidth int, viewRange float64) int {
	boost := 1.0
	if viewRange > 0 && viewRange < cfg.ReferenceRange {
		boost = cfg.ReferenceRange / viewRange
		if boost > cfg.MaxZoomBoost {
			boost = cfg.MaxZoomBoost
		}
	}

	n := int(float64(pixelWidth) * boost)
	if n < cfg.MinSamples {
		n = cfg.MinSamples
	} else if n > cfg.MaxSamples {
		n = cfg.MaxSamples
	}
	return n
}

// Sampler generates curve traces by evaluating an expression over a domain.
type Sampler struct {
	cfg Config
	ev  *evaluator.Evaluator
}

// NewSampler creates a sampler using ev for evaluation.
func NewSampler(ev *evaluator.Evaluator, cfg Config) *Sampler {
	return &Sampler{cfg: cfg, ev: ev}
}

// Trace evaluates expr over the intersection of dom and the visible range
// and returns the curve as segments of consecutive valid samples.
//
// A sample whose y is NaN or infinite, or whose evaluation fails, breaks
// the current segment and sampling continues: the curve is never aborted
// for one bad point. For discrete domains every valid sample is its own
// single-point segment.
func (s *Sampler) Trace(expr *types.Expression, env *evaluator.Environment, dom *types.Domain, viewMin, viewMax float64, pixelWidth int) []Segment {
	n := s.cfg.SampleCount(pixelWidth, viewMax-viewMin)
	xs := dom.SamplePoints(viewMin, viewMax, n)

	discrete := dom.Kind() == types.DomainDiscrete

	var segments []Segment
	var current Segment
	flush := func() {
		if len(current) > 0 {
			segments = append(segments, current)
			current = nil
		}
	}

	for _, x := range xs {
		y, err := s.ev.EvalAt(expr, env, x)
		if err != nil || !isFinite(y) {
			flush()
			continue
		}
		current = append(current, types.SamplePoint{X: x, Y: y})
		if discrete {
			flush()
		}
	}
	flush()

	return segments
}

// Points evaluates expr at every value of a discrete domain inside the
// visible range, dropping invalid results.
func (s *Sampler) Points(expr *types.Expression, env *evaluator.Environment, dom *types.Domain, viewMin, viewMax float64) []types.SamplePoint {
	xs := dom.SamplePoints(viewMin, viewMax, 0)

	out := make([]types.SamplePoint, 0, len(xs))
	for _, x := range xs {
		y, err := s.ev.EvalAt(expr, env, x)
		if err != nil || !isFinite(y) {
			continue
		}
		out = append(out, types.SamplePoint{X: x, Y: y})
	}
	return out
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
