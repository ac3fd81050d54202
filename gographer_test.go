package gographer_test

import (
	"math"
	"testing"

	"github.com/plotsmith/gographer"
	"github.com/plotsmith/gographer/pkg/evaluator"
	"github.com/plotsmith/gographer/pkg/types"
)

func TestEval(t *testing.T) {
	y, err := gographer.Eval("sin(pi/2) + 1", 0)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(y-2) > 1e-10 {
		t.Errorf("got %v, want 2", y)
	}
}

func TestCompileAndEvalAt(t *testing.T) {
	expr, err := gographer.Compile("x^2 - 2")
	if err != nil {
		t.Fatal(err)
	}
	ev := evaluator.New(evaluator.WithCaching(true))
	for _, x := range []float64{-1, 0, 1, 2} {
		y, err := ev.EvalAt(expr, nil, x)
		if err != nil {
			t.Fatal(err)
		}
		if y != x*x-2 {
			t.Errorf("got y(%v)=%v, want %v", x, y, x*x-2)
		}
	}
}

func TestMustCompilePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustCompile did not panic on invalid input")
		}
	}()
	gographer.MustCompile("1+")
}

func TestClassifyRegistersFunctions(t *testing.T) {
	env := evaluator.NewEnvironment()

	def, err := gographer.Classify("f(x)=x^2", env)
	if err != nil {
		t.Fatal(err)
	}
	if def.Type != types.DefFunction || def.Name != "f" {
		t.Fatalf("got (%s, %q), want (function, f)", def.Type, def.Name)
	}

	// The registered function is usable from a later line.
	y, err := gographer.EvalIn("f(x)+1", env, 3)
	if err != nil {
		t.Fatal(err)
	}
	if y != 10 {
		t.Errorf("got %v, want 10", y)
	}
}

func TestFindIntersections(t *testing.T) {
	pts, err := gographer.FindIntersections("x^2", "2*x+1", nil, -5, 5, 300)
	if err != nil {
		t.Fatal(err)
	}
	// x^2 = 2x+1 at x = 1 ± sqrt(2).
	if len(pts) != 2 {
		t.Fatalf("got %d intersections, want 2: %v", len(pts), pts)
	}
	want := []float64{1 - math.Sqrt2, 1 + math.Sqrt2}
	for i, p := range pts {
		if math.Abs(p.X-want[i]) > 1e-6 {
			t.Errorf("intersection %d: got x=%v, want %v", i, p.X, want[i])
		}
	}
}

func TestFindIntersectionsBadInput(t *testing.T) {
	if _, err := gographer.FindIntersections("1+", "x", nil, -1, 1, 100); err == nil {
		t.Error("expected a parse error for the left expression")
	}
	if _, err := gographer.FindIntersections("x", "(", nil, -1, 1, 100); err == nil {
		t.Error("expected a parse error for the right expression")
	}
}

func TestVersion(t *testing.T) {
	if gographer.Version() == "" {
		t.Error("empty version string")
	}
}
