package biclust

import (
	"context"
	"fmt"
)

// BiCluster is one output group: the rows and the columns of a complete
// bipartite subgraph. Both slices hold matrix indices (columns are re-based
// from node ids), sorted ascending and free of duplicates. One side may be
// empty: an isolated row or column forms a single-sided bi-cluster.
type BiCluster struct {
	Rows []int
	Cols []int
}

// Result is the outcome of Compute.
//
// Across BiClusters, every row index in [0, R) and every column index in
// [0, C) appears exactly once. Objective is the sum of the dispatched
// subproblems' edit costs (trivial components contribute 0). Optimal is
// the AND over all subproblems' optimality flags, true when there were
// none.
type Result struct {
	BiClusters []BiCluster
	Objective  float64
	Optimal    bool
}

// Option configures Compute via functional arguments. An invalid Option is
// recorded internally and surfaced as ErrOptionViolation when Compute is
// invoked.
type Option func(*Options)

// Options holds parameters and hooks customizing Compute.
type Options struct {
	// Ctx allows cancellation and deadlines; it is passed to every
	// solver call and checked before each dispatch.
	Ctx context.Context

	// Observer receives progress events. Purely informational: a no-op
	// Observer produces identical results.
	Observer Observer

	// MaxParallel bounds concurrent solver calls. 1 (the default) keeps
	// dispatch strictly sequential; 0 means one worker per CPU.
	MaxParallel int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults: background context,
// no-op observer, sequential dispatch.
func DefaultOptions() Options {
	return Options{
		Ctx:         context.Background(),
		Observer:    NopObserver{},
		MaxParallel: 1,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithObserver registers a progress observer. A nil Observer keeps the
// no-op default. When combined with WithMaxParallel(n>1 or 0), the
// Observer's subproblem hooks are called under an internal lock, so the
// implementation need not be safe for concurrent use.
func WithObserver(obs Observer) Option {
	return func(o *Options) {
		if obs != nil {
			o.Observer = obs
		}
	}
}

// WithMaxParallel bounds the number of concurrent solver calls.
//
//	n > 1: fan subproblems out across up to n workers
//	n == 1: sequential dispatch (default)
//	n == 0: one worker per available CPU
//	n < 0: invalid option → ErrOptionViolation
func WithMaxParallel(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxParallel cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxParallel = n
	}
}
