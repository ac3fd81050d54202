//go:build js && wasm

// Command gographer-wasm-js is the WebAssembly entrypoint for browser and
// Node.js embedding of the expression engine.
//
// It exposes a global `gographer` object with the following API:
//
//	gographer.version()                      → string
//	gographer.eval(expr, x)                  → number      (throws on error)
//	gographer.classify(line)                 → defJSON     (throws on error)
//	gographer.intersections(a, b, x0, x1, n) → pointsJSON  (throws on error)
//
// Build:
//
//	GOOS=js GOARCH=wasm go build -o gographer.wasm ./cmd/wasm/js/
package main

import (
	"encoding/json"
	"fmt"
	"syscall/js"

	"github.com/plotsmith/gographer"
	"github.com/plotsmith/gographer/pkg/evaluator"
)

// env is shared across calls so named functions registered by classify are
// visible to eval.
var env = evaluator.NewEnvironment()

// jsThrow panics with a message so the caller receives a thrown exception.
func jsThrow(msg string) {
	panic(js.Error{Value: js.Global().Get("Error").New(msg)})
}

// jsEval implements gographer.eval(expr, x) → number.
func jsEval(_ js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		jsThrow("gographer.eval requires 2 arguments: expr (string) and x (number)")
	}
	y, err := gographer.EvalIn(args[0].String(), env, args[1].Float())
	if err != nil {
		jsThrow(fmt.Sprintf("gographer.eval: %v", err))
	}
	return y
}

// jsClassify implements gographer.classify(line) → defJSON.
func jsClassify(_ js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		jsThrow("gographer.classify requires 1 argument: line (string)")
	}
	def, err := gographer.Classify(args[0].String(), env)
	if err != nil {
		jsThrow(fmt.Sprintf("gographer.classify: %v", err))
	}
	out, err := json.Marshal(def)
	if err != nil {
		jsThrow(fmt.Sprintf("gographer.classify: marshal result: %v", err))
	}
	return string(out)
}

// jsIntersections implements gographer.intersections(a, b, x0, x1, n) → pointsJSON.
func jsIntersections(_ js.Value, args []js.Value) interface{} {
	if len(args) < 5 {
		jsThrow("gographer.intersections requires 5 arguments: left, right, xMin, xMax, sampleWidth")
	}
	pts, err := gographer.FindIntersections(
		args[0].String(), args[1].String(), env,
		args[2].Float(), args[3].Float(), args[4].Int(),
	)
	if err != nil {
		jsThrow(fmt.Sprintf("gographer.intersections: %v", err))
	}
	out, err := json.Marshal(pts)
	if err != nil {
		jsThrow(fmt.Sprintf("gographer.intersections: marshal result: %v", err))
	}
	return string(out)
}

func main() {
	api := map[string]interface{}{
		"eval":          js.FuncOf(jsEval),
		"classify":      js.FuncOf(jsClassify),
		"intersections": js.FuncOf(jsIntersections),
		"version": js.FuncOf(func(_ js.Value, _ []js.Value) interface{} {
			return gographer.Version()
		}),
	}
	js.Global().Set("gographer", js.ValueOf(api))

	// Block forever — the JS event loop owns execution from here.
	select {}
}
