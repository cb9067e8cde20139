// File: solve/maxsat_test.go
package solve_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/biclustgo/bicluster/bigraph"
	"github.com/biclustgo/bicluster/solve"
)

// exactSolver returns the MaxSAT strategy without a time limit, so the
// plain (non-anytime) search path is exercised.
func exactSolver(t *testing.T) solve.Solver {
	t.Helper()
	s, err := solve.New(solve.Config{Algorithm: solve.MaxSAT})
	require.NoError(t, err)
	return s
}

// TestMaxSAT_UniqueOptimum solves a 2×2 instance whose threshold graph is
// connected but not a bi-clique, with a unique cheapest repair.
//
//	     c0   c1
//	r0 [  2    1 ]      edges: (r0,c0) (r0,c1) (r1,c0)
//	r1 [  3   -5 ]      missing: (r1,c1)
//
// Repairs (threshold 0): delete (r0,c1) costs 1, delete (r1,c0) costs 3,
// insert (r1,c1) costs 5. The optimum deletes (r0,c1), isolating c1.
func TestMaxSAT_UniqueOptimum(t *testing.T) {
	weights := mat.NewDense(2, 2, []float64{
		2, 1,
		3, -5,
	})
	sub, err := bigraph.BuildGraph(weights, 0)
	require.NoError(t, err)
	require.False(t, bigraph.IsBiClique(sub), "instance must need solving")

	sol, err := exactSolver(t).Solve(context.Background(), weights, 0, sub)
	require.NoError(t, err)

	assert.InDelta(t, 1.0, sol.Objective, 1e-9)
	assert.True(t, sol.Optimal)
	assert.Equal(t, sub.Nodes(), sol.Graph.Nodes(), "node set preserved")
	assert.Equal(t, [][2]int{{0, 2}, {1, 2}}, sol.Graph.Edges())

	comps, err := bigraph.ConnectedComponents(sol.Graph)
	require.NoError(t, err)
	for _, comp := range comps {
		assert.True(t, bigraph.IsBiClique(comp), "output must be bi-transitive")
	}
}

// TestMaxSAT_AnytimePath runs the same instance through the time-limited
// search; with a generous limit it must still prove the optimum.
func TestMaxSAT_AnytimePath(t *testing.T) {
	weights := mat.NewDense(2, 2, []float64{
		2, 1,
		3, -5,
	})
	sub, err := bigraph.BuildGraph(weights, 0)
	require.NoError(t, err)

	s, err := solve.New(solve.Config{Algorithm: solve.MaxSAT, TimeLimit: time.Minute})
	require.NoError(t, err)

	sol, err := s.Solve(context.Background(), weights, 0, sub)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, sol.Objective, 1e-9)
	assert.True(t, sol.Optimal)
}

// TestMaxSAT_TimeLimitStopsEarly forces the anytime search to stop almost
// immediately on an instance with many competing equal-cost repairs
// (complete bipartite minus a perfect matching). A stopped run either
// returns its best feasible model with Optimal == false, or reports
// ErrNoModel when none was found in time; a completed run may still prove
// the optimum. Whatever model comes back must honor the output contract.
func TestMaxSAT_TimeLimitStopsEarly(t *testing.T) {
	const n = 10
	data := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				data[i*n+j] = -1
			} else {
				data[i*n+j] = 1
			}
		}
	}
	weights := mat.NewDense(n, n, data)
	sub, err := bigraph.BuildGraph(weights, 0)
	require.NoError(t, err)
	require.False(t, bigraph.IsBiClique(sub), "instance must need solving")

	s, err := solve.New(solve.Config{Algorithm: solve.MaxSAT, TimeLimit: time.Nanosecond})
	require.NoError(t, err)

	sol, err := s.Solve(context.Background(), weights, 0, sub)
	if err != nil {
		assert.ErrorIs(t, err, solve.ErrNoModel)
		return
	}
	if !sol.Optimal {
		assert.Positive(t, sol.Objective, "a repair of this instance cannot be free")
	}
	assert.Equal(t, sub.Nodes(), sol.Graph.Nodes(), "node set preserved")
	comps, err := bigraph.ConnectedComponents(sol.Graph)
	require.NoError(t, err)
	for _, comp := range comps {
		assert.True(t, bigraph.IsBiClique(comp), "output must be bi-transitive")
	}
}

// TestMaxSAT_StarKeepsEdges verifies a single-row component (no 2×2
// patterns, hence no hard constraints) keeps its edges at zero cost.
func TestMaxSAT_StarKeepsEdges(t *testing.T) {
	weights := mat.NewDense(1, 3, []float64{1, 2, 3})
	sub, err := bigraph.BuildGraph(weights, 0)
	require.NoError(t, err)

	sol, err := exactSolver(t).Solve(context.Background(), weights, 0, sub)
	require.NoError(t, err)
	assert.Zero(t, sol.Objective)
	assert.True(t, sol.Optimal)
	assert.Equal(t, [][2]int{{0, 1}, {0, 2}, {0, 3}}, sol.Graph.Edges())
}

// TestMaxSAT_InputErrors covers nil and mismatched inputs.
func TestMaxSAT_InputErrors(t *testing.T) {
	s := exactSolver(t)
	weights := mat.NewDense(2, 2, []float64{1, 1, 1, 1})

	_, err := s.Solve(context.Background(), nil, 0, bigraph.NewGraph(2))
	assert.ErrorIs(t, err, solve.ErrNilWeights)

	_, err = s.Solve(context.Background(), weights, 0, nil)
	assert.ErrorIs(t, err, solve.ErrNilSubgraph)

	_, err = s.Solve(context.Background(), weights, 0, bigraph.NewGraph(3))
	assert.ErrorIs(t, err, solve.ErrDimension, "row split mismatch")

	wide := bigraph.NewGraph(2)
	require.NoError(t, wide.AddEdge(0, bigraph.ColNode(5, 2)))
	_, err = s.Solve(context.Background(), weights, 0, wide)
	assert.ErrorIs(t, err, solve.ErrDimension, "column beyond matrix")
}

// TestMaxSAT_CanceledContext verifies cancellation propagates.
func TestMaxSAT_CanceledContext(t *testing.T) {
	weights := mat.NewDense(2, 2, []float64{
		2, 1,
		3, -5,
	})
	sub, err := bigraph.BuildGraph(weights, 0)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = exactSolver(t).Solve(ctx, weights, 0, sub)
	assert.ErrorIs(t, err, context.Canceled)
}
