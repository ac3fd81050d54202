package plot_test

import (
	"testing"

	"github.com/plotsmith/gographer/pkg/evaluator"
	"github.com/plotsmith/gographer/pkg/plot"
)

func TestTraceCachesSegments(t *testing.T) {
	s := plot.NewSampler(evaluator.New(), plot.DefaultConfig())
	tr := plot.NewTrace(s, compile(t, "x^2"), nil, fullRange(t))

	first := tr.Segments(-2, 2, 100)
	if len(first) != 1 {
		t.Fatalf("got %d segments, want 1", len(first))
	}

	// Same view: the cached slice is returned as-is.
	second := tr.Segments(-2, 2, 100)
	if &first[0] != &second[0] {
		t.Error("unchanged view recomputed the segments")
	}

	// A different view forces a recompute.
	third := tr.Segments(-4, 4, 100)
	if third[0][0].X != -4 {
		t.Errorf("got start x=%v, want -4", third[0][0].X)
	}
}

func TestTraceInvalidate(t *testing.T) {
	s := plot.NewSampler(evaluator.New(), plot.DefaultConfig())
	tr := plot.NewTrace(s, compile(t, "x"), nil, fullRange(t))

	first := tr.Segments(-1, 1, 100)
	tr.Invalidate()
	second := tr.Segments(-1, 1, 100)
	if &first[0] == &second[0] {
		t.Error("Invalidate did not force a recompute")
	}
}

func TestTraceParameterStaleness(t *testing.T) {
	env := evaluator.NewEnvironment()
	env.SetParam("a", 1)

	s := plot.NewSampler(evaluator.New(), plot.DefaultConfig())
	tr := plot.NewTrace(s, compile(t, "a*x"), env, fullRange(t))

	segs := tr.Segments(0, 2, 100)
	last := segs[0][len(segs[0])-1]
	if last.Y != 2 {
		t.Fatalf("a=1: got y(2)=%v, want 2", last.Y)
	}

	// Changing a referenced parameter makes the cached trace stale.
	env.SetParam("a", 3)
	segs = tr.Segments(0, 2, 100)
	last = segs[0][len(segs[0])-1]
	if last.Y != 6 {
		t.Errorf("a=3: got y(2)=%v, want 6", last.Y)
	}
}
