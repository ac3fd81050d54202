package types

import "math"

// DomainKind distinguishes continuous and discrete domains.
type DomainKind int

const (
	// DomainInterval is a continuous interval, possibly unbounded.
	DomainInterval DomainKind = iota
	// DomainDiscrete is a finite set of values in caller order.
	DomainDiscrete
)

// Sample count bounds for interval sampling.
const (
	minDomainSamples = 2
	maxDomainSamples = 10000
)

// Domain represents the legal input set for a function: either a continuous
// interval (bounds may be infinite) or a discrete, finite value set.
//
// Interval bounds may be changed after construction (live range edits);
// discrete value sets are immutable.
type Domain struct {
	kind   DomainKind
	min    float64
	max    float64
	values []float64
}

// NewInterval creates a continuous interval domain. Either bound may be
// infinite. Returns an ErrInvalidRange error when both bounds are finite
// and min > max.
func NewInterval(min, max float64) (*Domain, error) {
	if min > max {
		return nil, NewError(ErrInvalidRange, "interval min must not exceed max", 0)
	}
	return &Domain{kind: DomainInterval, min: min, max: max}, nil
}

// NewDiscrete creates a discrete domain over the given values, kept in their
// original order. The slice is not copied; callers must not mutate it.
func NewDiscrete(values []float64) *Domain {
	return &Domain{kind: DomainDiscrete, values: values}
}

// Kind returns the domain kind.
func (d *Domain) Kind() DomainKind {
	return d.kind
}

// Bounds returns the interval bounds. For discrete domains it returns
// (NaN, NaN).
func (d *Domain) Bounds() (min, max float64) {
	if d.kind != DomainInterval {
		return math.NaN(), math.NaN()
	}
	return d.min, d.max
}

// SetBounds updates the interval bounds. Returns an ErrInvalidRange error
// for finite min > max, or when called on a discrete domain.
func (d *Domain) SetBounds(min, max float64) error {
	if d.kind != DomainInterval {
		return NewError(ErrInvalidRange, "cannot set bounds on a discrete domain", 0)
	}
	if min > max {
		return NewError(ErrInvalidRange, "interval min must not exceed max", 0)
	}
	d.min, d.max = min, max
	return nil
}

// Values returns the member values of a discrete domain, nil otherwise.
func (d *Domain) Values() []float64 {
	return d.values
}

// Contains reports whether x belongs to the domain. For discrete domains
// the comparison is exact equality on the stored values.
func (d *Domain) Contains(x float64) bool {
	if d.kind == DomainInterval {
		return x >= d.min && x <= d.max
	}
	for _, v := range d.values {
		if v == x {
			return true
		}
	}
	return false
}

// SamplePoints returns x values to evaluate over the visible range.
//
// For intervals, the domain is intersected with [viewMin, viewMax], with
// infinite bounds clamped to the view; an empty or inverted intersection
// yields nil. Otherwise it returns n evenly spaced points including both
// endpoints, with n clamped to [2, 10000].
//
// For discrete domains, it returns the subset of stored values inside
// [viewMin, viewMax] in their original order.
func (d *Domain) SamplePoints(viewMin, viewMax float64, n int) []float64 {
	if d.kind == DomainDiscrete {
		var out []float64
		for _, v := range d.values {
			if v >= viewMin && v <= viewMax {
				out = append(out, v)
			}
		}
		return out
	}

	// Intersect with the view; infinite bounds clamp to the view edge.
	lo := math.Max(d.min, viewMin)
	hi := math.Min(d.max, viewMax)
	if lo > hi {
		return nil
	}

	if n < minDomainSamples {
		n = minDomainSamples
	} else if n > maxDomainSamples {
		n = maxDomainSamples
	}

	out := make([]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := 0; i < n; i++ {
		out[i] = lo + float64(i)*step
	}
	// Land exactly on the upper endpoint despite accumulated rounding.
	out[n-1] = hi
	return out
}
