package evaluator

import (
	"strings"

	"github.com/emirpasic/gods/maps/linkedhashmap"
)

// Environment holds the named user-defined functions and parameter values
// visible during evaluation.
//
// Function names are lower-cased on registration and map to their body
// expression text. The registry preserves definition order, so listings and
// re-registration behave deterministically. Parameters map names to their
// current numeric value (the slider position).
//
// All writes happen between evaluations — the classifier registers new
// functions and explicit SetParam calls move sliders — never concurrently
// with an in-flight evaluation.
type Environment struct {
	funcs  *linkedhashmap.Map // lower-cased name -> body expression text
	params map[string]float64
}

// NewEnvironment creates an empty environment.
func NewEnvironment() *Environment {
	return &Environment{
		funcs:  linkedhashmap.New(),
		params: make(map[string]float64),
	}
}

// Define registers a user-defined function under the lower-cased name.
// Redefining a name replaces its body but keeps its original position in
// the registry order.
func (env *Environment) Define(name, body string) {
	env.funcs.Put(strings.ToLower(name), body)
}

// Undefine removes a user-defined function.
func (env *Environment) Undefine(name string) {
	env.funcs.Remove(strings.ToLower(name))
}

// Lookup returns the body expression text of a user-defined function.
func (env *Environment) Lookup(name string) (string, bool) {
	v, ok := env.funcs.Get(name)
	if !ok {
		return "", false
	}
	return v.(string), true
}

// FuncNames returns the registered function names in definition order.
func (env *Environment) FuncNames() []string {
	keys := env.funcs.Keys()
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = k.(string)
	}
	return names
}

// SetParam sets the current value of a parameter. This is the
// slider-equivalent action for parameter and set definitions.
func (env *Environment) SetParam(name string, value float64) {
	env.params[name] = value
}

// Param returns the current value of a parameter.
func (env *Environment) Param(name string) (float64, bool) {
	v, ok := env.params[name]
	return v, ok
}

// ParamSnapshot returns a copy of the current parameter values, usable as
// an invalidation key for cached sample sequences.
func (env *Environment) ParamSnapshot() map[string]float64 {
	snap := make(map[string]float64, len(env.params))
	for k, v := range env.params {
		snap[k] = v
	}
	return snap
}

// Clear removes all functions and parameters.
func (env *Environment) Clear() {
	env.funcs.Clear()
	env.params = make(map[string]float64)
}
