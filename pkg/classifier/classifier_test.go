package classifier_test

import (
	"testing"

	"github.com/plotsmith/gographer/pkg/classifier"
	"github.com/plotsmith/gographer/pkg/evaluator"
	"github.com/plotsmith/gographer/pkg/types"
)

func classify(t *testing.T, line string) *types.Definition {
	t.Helper()
	def, err := classifier.New(nil).Classify(line)
	if err != nil {
		t.Fatalf("classifying %q: %v", line, err)
	}
	return def
}

func expectClassifyError(t *testing.T, line string, code types.ErrorCode) {
	t.Helper()
	_, err := classifier.New(nil).Classify(line)
	if err == nil {
		t.Fatalf("expected error classifying %q but got none", line)
	}
	if got := types.CodeOf(err); got != code {
		t.Fatalf("classifying %q: got code %s, want %s", line, got, code)
	}
}

func TestClassifyInequation(t *testing.T) {
	tests := []struct {
		line            string
		left, op, right string
	}{
		{"(x^2 <= 4)", "x^2", "<=", "4"},
		{"(x^2 >= 4)", "x^2", ">=", "4"},
		{"(x > 0)", "x", ">", "0"},
		{"(sin x < 1)", "sin x", "<", "1"},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			def := classify(t, tt.line)
			if def.Type != types.DefInequation {
				t.Fatalf("got type %s, want %s", def.Type, types.DefInequation)
			}
			if def.Left != tt.left || def.Op != tt.op || def.Right != tt.right {
				t.Errorf("got (%q %q %q), want (%q %q %q)",
					def.Left, def.Op, def.Right, tt.left, tt.op, tt.right)
			}
		})
	}
}

func TestClassifyEquation(t *testing.T) {
	def := classify(t, "(x^2 = 2*x+1)")
	if def.Type != types.DefEquation {
		t.Fatalf("got type %s, want %s", def.Type, types.DefEquation)
	}
	if def.Left != "x^2" || def.Right != "2*x+1" {
		t.Errorf("got (%q, %q), want (x^2, 2*x+1)", def.Left, def.Right)
	}
	if !def.Anonymous() {
		t.Error("equation should be anonymous")
	}
}

func TestClassifyDispatchOrder(t *testing.T) {
	// ">=" contains "=": the inequation rule must win over the equation rule.
	def := classify(t, "(x >= 1)")
	if def.Type != types.DefInequation || def.Op != ">=" {
		t.Errorf("got (%s, %q), want (%s, >=)", def.Type, def.Op, types.DefInequation)
	}
}

func TestClassifyNamedFunction(t *testing.T) {
	env := evaluator.NewEnvironment()
	def, err := classifier.New(env).Classify("f(x) = x^2")
	if err != nil {
		t.Fatal(err)
	}
	if def.Type != types.DefFunction || def.Name != "f" || def.Expr != "x^2" {
		t.Errorf("got (%s, %q, %q), want (function, f, x^2)", def.Type, def.Name, def.Expr)
	}

	// Registration makes the name usable in later expressions.
	body, ok := env.Lookup("f")
	if !ok || body != "x^2" {
		t.Errorf("Lookup(f) = (%q, %v), want (x^2, true)", body, ok)
	}
}

func TestClassifyAnonymousExpression(t *testing.T) {
	tests := []string{"x^2 + 1", "sin x", "42", "not even an expression !!"}
	for _, line := range tests {
		t.Run(line, func(t *testing.T) {
			def := classify(t, line)
			if def.Type != types.DefFunction {
				t.Fatalf("got type %s, want %s", def.Type, types.DefFunction)
			}
			if !def.Anonymous() {
				t.Error("fallback definition should be anonymous")
			}
			if def.Expr != line {
				t.Errorf("got expr %q, want %q", def.Expr, line)
			}
		})
	}
}

func TestClassifyParameter(t *testing.T) {
	def := classify(t, "a=[0:5]")
	if def.Type != types.DefParameter || def.Name != "a" {
		t.Fatalf("got (%s, %q), want (parameter, a)", def.Type, def.Name)
	}
	if def.Min != 0 || def.Max != 5 || def.Discrete {
		t.Errorf("got (%v, %v, %v), want (0, 5, false)", def.Min, def.Max, def.Discrete)
	}

	def = classify(t, "n=[1..10]")
	if def.Type != types.DefParameter || !def.Discrete {
		t.Fatalf("got (%s, discrete=%v), want (parameter, true)", def.Type, def.Discrete)
	}
	if def.Min != 1 || def.Max != 10 {
		t.Errorf("got (%v, %v), want (1, 10)", def.Min, def.Max)
	}
}

func TestClassifyParameterErrors(t *testing.T) {
	tests := []string{
		"a=[5:2]",    // inverted bounds are an error, not normalized
		"a=[1:1]",    // degenerate range
		"a=[x:5]",    // non-numeric bound
		"n=[1.5..3]", // discrete bounds must be integers
		"a=[5]",      // no separator
	}
	for _, line := range tests {
		t.Run(line, func(t *testing.T) {
			expectClassifyError(t, line, types.ErrInvalidRange)
		})
	}
}

func TestClassifyExplicitSet(t *testing.T) {
	def := classify(t, "s={1, 2.5, -3}")
	if def.Type != types.DefExplicitSet || def.Name != "s" {
		t.Fatalf("got (%s, %q), want (set, s)", def.Type, def.Name)
	}
	want := []float64{1, 2.5, -3}
	if len(def.Values) != len(want) {
		t.Fatalf("got %d values, want %d", len(def.Values), len(want))
	}
	for i := range want {
		if def.Values[i] != want[i] {
			t.Errorf("value %d: got %v, want %v", i, def.Values[i], want[i])
		}
	}
}

func TestClassifyRangeSet(t *testing.T) {
	def := classify(t, "r={1:4}")
	if def.Type != types.DefRangeSet {
		t.Fatalf("got type %s, want %s", def.Type, types.DefRangeSet)
	}
	want := []float64{1, 2, 3, 4}
	if len(def.Values) != len(want) {
		t.Fatalf("got %v, want %v", def.Values, want)
	}
	for i := range want {
		if def.Values[i] != want[i] {
			t.Errorf("value %d: got %v, want %v", i, def.Values[i], want[i])
		}
	}

	// Inverted bounds normalize instead of failing, unlike parameters.
	def = classify(t, "r={5:2}")
	if def.Type != types.DefRangeSet {
		t.Fatalf("got type %s, want %s", def.Type, types.DefRangeSet)
	}
	if len(def.Values) != 4 || def.Values[0] != 2 || def.Values[3] != 5 {
		t.Errorf("got %v, want [2 3 4 5]", def.Values)
	}
}

func TestClassifySetErrors(t *testing.T) {
	expectClassifyError(t, "s={1, x, 3}", types.ErrMalformedSet)
	expectClassifyError(t, "s={}", types.ErrMalformedSet)
	expectClassifyError(t, "r={1:x}", types.ErrMalformedSet)
}

func TestClassifyPoint(t *testing.T) {
	def := classify(t, "p=(a, a^2)")
	if def.Type != types.DefPoint || def.Name != "p" {
		t.Fatalf("got (%s, %q), want (point, p)", def.Type, def.Name)
	}
	if def.XExpr != "a" || def.YExpr != "a^2" {
		t.Errorf("got (%q, %q), want (a, a^2)", def.XExpr, def.YExpr)
	}

	// The coordinate split happens at nesting depth 0 only.
	def = classify(t, "q=(f(1), g(2))")
	if def.XExpr != "f(1)" || def.YExpr != "g(2)" {
		t.Errorf("got (%q, %q), want (f(1), g(2))", def.XExpr, def.YExpr)
	}
}

func TestClassifyPointErrors(t *testing.T) {
	expectClassifyError(t, "p=(1, (2)", types.ErrMalformedPoint)
	expectClassifyError(t, "p=(1, 2))", types.ErrMalformedPoint)
	expectClassifyError(t, "p=(, 2)", types.ErrMalformedPoint)
}

func TestClassifyPointFallThrough(t *testing.T) {
	// A balanced pair without a top-level comma is not a point; the whole
	// line falls through to the expression fallback.
	def := classify(t, "p=(x+1)")
	if def.Type != types.DefFunction || !def.Anonymous() {
		t.Errorf("got (%s, name=%q), want anonymous function", def.Type, def.Name)
	}
}

func TestClassifyNameCase(t *testing.T) {
	def := classify(t, "A=[0:1]")
	if def.Name != "a" {
		t.Errorf("got name %q, want lower-cased %q", def.Name, "a")
	}
}

func TestDefinitionDomain(t *testing.T) {
	def := classify(t, "a=[0:5]")
	dom := def.Domain()
	if dom.Kind() != types.DomainInterval {
		t.Fatalf("got kind %v, want interval", dom.Kind())
	}
	if min, max := dom.Bounds(); min != 0 || max != 5 {
		t.Errorf("got bounds (%v, %v), want (0, 5)", min, max)
	}

	def = classify(t, "s={1,2,3}")
	dom = def.Domain()
	if dom.Kind() != types.DomainDiscrete {
		t.Fatalf("got kind %v, want discrete", dom.Kind())
	}
	if vs := dom.Values(); len(vs) != 3 {
		t.Errorf("got %v, want 3 values", vs)
	}
}
