// Package evaluator implements numeric evaluation of parsed expressions.
//
// The evaluator receives a compiled Abstract Syntax Tree (AST) from the
// parser and evaluates it at a given x, resolving named constants,
// user-defined functions and free parameters against an Environment.
// Evaluation is pure: repeated calls with the same inputs return the same
// result and nothing observable is mutated.
//
// # Example
//
//	ev := evaluator.New(evaluator.WithCaching(true))
//	env := evaluator.NewEnvironment()
//	y, err := ev.Eval("sin x^2", env, 1.5)
package evaluator

import (
	"log/slog"

	"github.com/plotsmith/gographer/pkg/cache"
	"github.com/plotsmith/gographer/pkg/parser"
	"github.com/plotsmith/gographer/pkg/types"
)

// Evaluator evaluates expressions at arbitrary points.
type Evaluator struct {
	opts   EvalOptions
	logger *slog.Logger
	cache  *cache.Cache // non-nil when caching is enabled
}

// EvalOptions configures evaluator behavior.
type EvalOptions struct {
	// Caching enables expression compilation caching. When true, compiled
	// expressions are cached by source text with LRU eviction. Keying by
	// source means a redefined function body never hits a stale entry.
	Caching bool
	// CacheSize sets the maximum number of cached expressions.
	// Only used when Caching is true and no explicit Cache is provided.
	// Defaults to 256.
	CacheSize int
	// Cache is a custom expression cache. If non-nil, Caching is implicitly
	// enabled.
	Cache *cache.Cache
	// MaxCallDepth limits nested user-defined function calls, guarding
	// against definition cycles. Defaults to 100.
	MaxCallDepth int
	// Debug enables debug logging.
	Debug bool
	// Logger for structured logging.
	Logger *slog.Logger
}

// EvalOption configures an Evaluator.
type EvalOption func(*EvalOptions)

// WithCaching enables or disables expression compilation caching.
func WithCaching(enable bool) EvalOption {
	return func(opts *EvalOptions) {
		opts.Caching = enable
	}
}

// WithCacheSize sets the compilation cache capacity.
func WithCacheSize(size int) EvalOption {
	return func(opts *EvalOptions) {
		opts.CacheSize = size
	}
}

// WithCache supplies a custom expression cache.
func WithCache(c *cache.Cache) EvalOption {
	return func(opts *EvalOptions) {
		opts.Cache = c
	}
}

// WithMaxCallDepth sets the user-function call depth limit.
func WithMaxCallDepth(depth int) EvalOption {
	return func(opts *EvalOptions) {
		opts.MaxCallDepth = depth
	}
}

// WithDebug enables debug logging.
func WithDebug(enable bool) EvalOption {
	return func(opts *EvalOptions) {
		opts.Debug = enable
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) EvalOption {
	return func(opts *EvalOptions) {
		opts.Logger = logger
	}
}

// New creates a new Evaluator with the given options.
func New(opts ...EvalOption) *Evaluator {
	options := EvalOptions{
		Caching:      false,
		MaxCallDepth: 100,
	}

	for _, opt := range opts {
		opt(&options)
	}

	if options.Logger == nil {
		options.Logger = slog.Default()
	}

	var c *cache.Cache
	if options.Cache != nil {
		c = options.Cache
	} else if options.Caching {
		size := options.CacheSize
		if size <= 0 {
			size = 256
		}
		c = cache.New(size)
	}

	return &Evaluator{
		opts:   options,
		logger: options.Logger,
		cache:  c,
	}
}

// Compile parses src into an Expression, going through the cache when
// caching is enabled.
func (e *Evaluator) Compile(src string) (*types.Expression, error) {
	if e.cache == nil {
		return parser.Parse(src)
	}
	return e.cache.GetOrCompile(src, func() (*types.Expression, error) {
		return parser.Parse(src)
	})
}

// EvalAt evaluates a compiled expression at x against env. env may be nil
// for expressions without user functions or parameter references.
func (e *Evaluator) EvalAt(expr *types.Expression, env *Environment, x float64) (float64, error) {
	y, err := e.evalNode(expr.AST(), env, x, 0)
	if err != nil {
		if e.opts.Debug {
			e.logger.Debug("evaluation failed", "expr", expr.Source(), "x", x, "err", err)
		}
		return 0, err
	}
	if e.opts.Debug {
		e.logger.Debug("evaluated", "expr", expr.Source(), "x", x, "y", y)
	}
	return y, nil
}

// Eval compiles src and evaluates it at x against env.
func (e *Evaluator) Eval(src string, env *Environment, x float64) (float64, error) {
	expr, err := e.Compile(src)
	if err != nil {
		return 0, err
	}
	return e.EvalAt(expr, env, x)
}
