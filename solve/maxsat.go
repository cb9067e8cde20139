package solve

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/crillab/gophersat/maxsat"
	"github.com/crillab/gophersat/solver"
	"gonum.org/v1/gonum/mat"

	"github.com/biclustgo/bicluster/bigraph"
)

// maxSATSolver renders a subgraph bi-transitive via weighted partial
// MaxSAT.
//
// One boolean variable per (row, column) pair of the component states
// whether that edge exists after editing. Soft clauses price flipping a
// pair away from its threshold side at round(scale·|w−t|). Hard clauses
// forbid every 2×2 row/column pattern with exactly three edges: a bipartite
// graph without such a pattern has no induced P4, which is equivalent to
// all of its components being bi-cliques.
//
// Model size for a component with r rows and c columns: r·c variables and
// 4·C(r,2)·C(c,2) hard clauses.
type maxSATSolver struct {
	limit time.Duration
	scale float64
}

// edgeVar names the decision variable of the pair (row r, column node cn).
func edgeVar(r, cn int) string {
	return fmt.Sprintf("e%d_%d", r, cn)
}

// Solve implements Solver.
func (s *maxSATSolver) Solve(ctx context.Context, weights mat.Matrix, threshold float64, sub *bigraph.Graph) (*Solution, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if weights == nil {
		return nil, ErrNilWeights
	}
	if sub == nil {
		return nil, ErrNilSubgraph
	}
	numRows := sub.NumRows()
	wr, wc := weights.Dims()
	if numRows != wr {
		return nil, fmt.Errorf("%w: subgraph row split %d, matrix has %d rows", ErrDimension, numRows, wr)
	}
	rows, colNodes := sub.Rows(), sub.Cols()
	for _, cn := range colNodes {
		if bigraph.ColOf(cn, numRows) >= wc {
			return nil, fmt.Errorf("%w: column node %d, matrix has %d columns", ErrDimension, cn, wc)
		}
	}

	constrs, vars := s.encode(weights, threshold, rows, colNodes, numRows)
	if len(constrs) == 0 {
		// Nothing constrains the edit set, so keeping the input edges is
		// optimal at cost 0 (every flip rounds to a free one).
		return identitySolution(sub)
	}

	on, optimal, err := s.run(ctx, maxsat.New(constrs...), vars)
	if err != nil {
		return nil, err
	}

	// Rebuild the edited subgraph over the full input node set and
	// recompute the exact float objective from the chosen flips.
	out := bigraph.NewGraph(numRows)
	for _, id := range sub.Nodes() {
		if err = out.AddNode(id); err != nil {
			return nil, err
		}
	}
	objective := 0.0
	for _, r := range rows {
		for _, cn := range colNodes {
			w := weights.At(r, bigraph.ColOf(cn, numRows))
			keep := on(edgeVar(r, cn))
			if keep {
				if err = out.AddEdge(r, cn); err != nil {
					return nil, err
				}
			}
			if keep != bigraph.Connected(w, threshold) {
				objective += math.Abs(w - threshold)
			}
		}
	}
	return &Solution{Graph: out, Objective: objective, Optimal: optimal}, nil
}

// varTable maps edge variable names to the 1-based integer ids the
// underlying PB solver uses. Names are registered in first-appearance
// order over the constraint list, mirroring the numbering maxsat.New
// assigns, so a solver-side []bool model can be read back by name.
type varTable map[string]int

// pos registers name and returns its positive literal.
func (vt varTable) pos(name string) maxsat.Lit {
	vt.touch(name)
	return maxsat.Var(name)
}

// neg registers name and returns its negated literal.
func (vt varTable) neg(name string) maxsat.Lit {
	vt.touch(name)
	return maxsat.Not(name)
}

func (vt varTable) touch(name string) {
	if _, ok := vt[name]; !ok {
		vt[name] = len(vt) + 1
	}
}

// on reports whether name is assigned true in a solver-side model.
// Unregistered names (free flips) default to false.
func (vt varTable) on(model []bool, name string) bool {
	id, ok := vt[name]
	return ok && id <= len(model) && model[id-1]
}

// encode builds the soft cost clauses and the hard bi-transitivity
// clauses, registering every edge variable in the returned table.
func (s *maxSATSolver) encode(weights mat.Matrix, threshold float64, rows, colNodes []int, numRows int) ([]maxsat.Constr, varTable) {
	vars := make(varTable, len(rows)*len(colNodes))
	constrs := make([]maxsat.Constr, 0, len(rows)*len(colNodes))
	for _, r := range rows {
		for _, cn := range colNodes {
			w := weights.At(r, bigraph.ColOf(cn, numRows))
			cost := int(math.Round(s.scale * math.Abs(w-threshold)))
			if cost == 0 {
				continue // free flip either way
			}
			if bigraph.Connected(w, threshold) {
				constrs = append(constrs, maxsat.WeightedClause([]maxsat.Lit{vars.pos(edgeVar(r, cn))}, cost))
			} else {
				constrs = append(constrs, maxsat.WeightedClause([]maxsat.Lit{vars.neg(edgeVar(r, cn))}, cost))
			}
		}
	}
	// For every row pair and column pair, each of the four "three edges
	// present imply the fourth" clauses.
	for a := 0; a < len(rows); a++ {
		for b := a + 1; b < len(rows); b++ {
			for c := 0; c < len(colNodes); c++ {
				for d := c + 1; d < len(colNodes); d++ {
					e11 := edgeVar(rows[a], colNodes[c])
					e12 := edgeVar(rows[a], colNodes[d])
					e21 := edgeVar(rows[b], colNodes[c])
					e22 := edgeVar(rows[b], colNodes[d])
					constrs = append(constrs,
						maxsat.HardClause(vars.neg(e12), vars.neg(e21), vars.neg(e22), vars.pos(e11)),
						maxsat.HardClause(vars.neg(e11), vars.neg(e21), vars.neg(e22), vars.pos(e12)),
						maxsat.HardClause(vars.neg(e11), vars.neg(e12), vars.neg(e22), vars.pos(e21)),
						maxsat.HardClause(vars.neg(e11), vars.neg(e12), vars.neg(e21), vars.pos(e22)),
					)
				}
			}
		}
	}
	return constrs, vars
}

// run executes the MaxSAT search, honoring the time limit and ctx.
// It returns an edge-membership lookup and whether the model is proven
// optimal.
func (s *maxSATSolver) run(ctx context.Context, pb *maxsat.Problem, vars varTable) (func(string) bool, bool, error) {
	if s.limit <= 0 && ctx.Done() == nil {
		model, _ := pb.Solve()
		if model == nil {
			return nil, false, ErrInfeasible
		}
		return func(name string) bool { return model[name] }, true, nil
	}

	// Anytime path: the underlying PB solver streams its search and
	// honors a stop channel, so the time limit or cancellation can cut
	// it short while it keeps the best model found so far. Its models
	// come back as []bool indexed by variable id; vars translates them
	// back to edge names.
	done := make(chan solver.Result, 1)
	stop := make(chan struct{})
	go func() { done <- pb.Solver().Optimal(nil, stop) }()

	var timeout <-chan time.Time
	if s.limit > 0 {
		timer := time.NewTimer(s.limit)
		defer timer.Stop()
		timeout = timer.C
	}

	var res solver.Result
	select {
	case res = <-done:
	case <-timeout:
		close(stop)
		res = <-done
	case <-ctx.Done():
		close(stop)
		<-done
		return nil, false, ctx.Err()
	}

	switch res.Status {
	case solver.Unsat:
		return nil, false, ErrInfeasible
	case solver.Sat:
		// Finished: the model is the proven optimum.
	default:
		// Stopped early; the model, if any, is feasible but unproven.
		if len(res.Model) == 0 {
			return nil, false, fmt.Errorf("%w: stopped after %v", ErrNoModel, s.limit)
		}
	}
	optimal := res.Status == solver.Sat
	model := res.Model
	return func(name string) bool { return vars.on(model, name) }, optimal, nil
}

// identitySolution returns sub's own edge set as an optimal zero-cost
// solution. Only valid when no clause constrains the edit set.
func identitySolution(sub *bigraph.Graph) (*Solution, error) {
	out := bigraph.NewGraph(sub.NumRows())
	for _, id := range sub.Nodes() {
		if err := out.AddNode(id); err != nil {
			return nil, err
		}
	}
	for _, e := range sub.Edges() {
		if err := out.AddEdge(e[0], e[1]); err != nil {
			return nil, err
		}
	}
	return &Solution{Graph: out, Objective: 0, Optimal: true}, nil
}
