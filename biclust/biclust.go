package biclust

import (
	"fmt"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"

	"github.com/biclustgo/bicluster/bigraph"
	"github.com/biclustgo/bicluster/solve"
)

// Compute runs the full bi-clustering pipeline on an R×C weight matrix:
// threshold graph → components → trivial short-circuit → solver dispatch →
// validation → merged Result.
//
// The returned bi-clusters partition the instance: every row index in
// [0, R) and every column index in [0, C) appears in exactly one of them.
// Their order is deterministic: trivial components first (by minimum node
// id), then solved components in subproblem order.
//
// Compute is fail-fast: the first solver error, contract violation or
// cancellation aborts the pipeline; there is no partial-success mode.
//
// Time: O(R·C) outside the solver calls.
func Compute(weights mat.Matrix, threshold float64, s solve.Solver, opts ...Option) (*Result, error) {
	if weights == nil {
		return nil, ErrNilWeights
	}
	if s == nil {
		return nil, ErrNilSolver
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	full, err := bigraph.BuildGraph(weights, threshold)
	if err != nil {
		return nil, err
	}
	comps, err := bigraph.ConnectedComponents(full)
	if err != nil {
		return nil, err
	}

	// Classify: bi-cliques become bi-clusters directly, the rest are
	// independent subproblems.
	numRows := full.NumRows()
	res := &Result{Optimal: true}
	var subs []*bigraph.Graph
	for _, comp := range comps {
		if bigraph.IsBiClique(comp) {
			res.BiClusters = append(res.BiClusters, toBiCluster(comp, numRows))
		} else {
			subs = append(subs, comp)
		}
	}
	o.Observer.Preprocessed(len(comps), len(res.BiClusters))

	sols, err := dispatch(&o, s, weights, threshold, subs)
	if err != nil {
		return nil, err
	}

	// Reduce per-subproblem slots in index order; sum and AND make the
	// outcome independent of solve order.
	for i, sol := range sols {
		res.Objective += sol.Objective
		res.Optimal = res.Optimal && sol.Optimal
		clusters, err := validate(i+1, subs[i], sol.Graph, numRows)
		if err != nil {
			return nil, err
		}
		res.BiClusters = append(res.BiClusters, clusters...)
	}

	o.Observer.Done(res)
	return res, nil
}

// dispatch solves all subproblems, sequentially or fanned out across up to
// o.MaxParallel workers, and returns their solutions in subproblem order.
func dispatch(o *Options, s solve.Solver, weights mat.Matrix, threshold float64, subs []*bigraph.Graph) ([]*solve.Solution, error) {
	n := len(subs)
	sols := make([]*solve.Solution, n)
	workers := o.MaxParallel
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	if workers == 1 || n <= 1 {
		for i, sub := range subs {
			if err := o.Ctx.Err(); err != nil {
				return nil, fmt.Errorf("biclust: dispatch canceled: %w", err)
			}
			o.Observer.SubproblemStarted(i+1, n, sub.NodeCount())
			sol, err := s.Solve(o.Ctx, weights, threshold, sub)
			if err != nil {
				return nil, fmt.Errorf("biclust: subproblem %d of %d: %w", i+1, n, err)
			}
			if sol == nil || sol.Graph == nil {
				return nil, fmt.Errorf("%w: subproblem %d of %d", ErrNilSolution, i+1, n)
			}
			sols[i] = sol
			o.Observer.SubproblemSolved(i+1, n, sol.Objective, sol.Optimal)
		}
		return sols, nil
	}

	// Fan-out/fan-in: each worker fills its own slot; the Observer is
	// serialized under a lock per the WithObserver contract.
	g, ctx := errgroup.WithContext(o.Ctx)
	g.SetLimit(workers)
	var mu sync.Mutex
	for i, sub := range subs {
		i, sub := i, sub
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return fmt.Errorf("biclust: dispatch canceled: %w", err)
			}
			mu.Lock()
			o.Observer.SubproblemStarted(i+1, n, sub.NodeCount())
			mu.Unlock()
			sol, err := s.Solve(ctx, weights, threshold, sub)
			if err != nil {
				return fmt.Errorf("biclust: subproblem %d of %d: %w", i+1, n, err)
			}
			if sol == nil || sol.Graph == nil {
				return fmt.Errorf("%w: subproblem %d of %d", ErrNilSolution, i+1, n)
			}
			sols[i] = sol
			mu.Lock()
			o.Observer.SubproblemSolved(i+1, n, sol.Objective, sol.Optimal)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return sols, nil
}

// validate decomposes one solver answer, asserts the contract (unchanged
// node set, every component a bi-clique) and converts the components into
// bi-clusters.
func validate(idx int, sub, got *bigraph.Graph, numRows int) ([]BiCluster, error) {
	if !equalIntSlices(sub.Nodes(), got.Nodes()) {
		return nil, &ContractError{
			Subproblem: idx,
			Reason:     "node set changed",
			Nodes:      got.Nodes(),
			Edges:      got.Edges(),
		}
	}
	comps, err := bigraph.ConnectedComponents(got)
	if err != nil {
		return nil, err
	}
	clusters := make([]BiCluster, 0, len(comps))
	for _, comp := range comps {
		if !bigraph.IsBiClique(comp) {
			return nil, &ContractError{
				Subproblem: idx,
				Reason:     "component is not a bi-clique",
				Nodes:      comp.Nodes(),
				Edges:      comp.Edges(),
			}
		}
		clusters = append(clusters, toBiCluster(comp, numRows))
	}
	return clusters, nil
}

// toBiCluster converts a bi-clique component into its output form,
// re-basing column node ids to column indices.
func toBiCluster(comp *bigraph.Graph, numRows int) BiCluster {
	colNodes := comp.Cols()
	cols := make([]int, 0, len(colNodes))
	for _, cn := range colNodes {
		cols = append(cols, bigraph.ColOf(cn, numRows))
	}
	return BiCluster{Rows: comp.Rows(), Cols: cols}
}

// equalIntSlices compares two ascending id slices.
func equalIntSlices(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
