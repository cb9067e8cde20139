package solve

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gonum.org/v1/gonum/mat"

	"github.com/biclustgo/bicluster/bigraph"
)

// Sentinel errors for solver configuration and execution.
var (
	// ErrUnknownAlgorithm is returned for an unrecognized algorithm name.
	ErrUnknownAlgorithm = errors.New("solve: unknown algorithm")

	// ErrNotImplemented is returned for declared but unimplemented algorithms.
	ErrNotImplemented = errors.New("solve: algorithm not implemented")

	// ErrBadScale is returned for a negative cost scale.
	ErrBadScale = errors.New("solve: cost scale must be positive")

	// ErrNilWeights is returned when the weight matrix is nil.
	ErrNilWeights = errors.New("solve: weight matrix is nil")

	// ErrNilSubgraph is returned when the subgraph is nil.
	ErrNilSubgraph = errors.New("solve: subgraph is nil")

	// ErrDimension is returned when subgraph ids fall outside the matrix.
	ErrDimension = errors.New("solve: subgraph does not fit weight matrix")

	// ErrNoModel is returned when the solver was stopped before finding
	// any feasible model.
	ErrNoModel = errors.New("solve: no feasible model found")

	// ErrInfeasible indicates the optimization model had no solution at
	// all; the bi-transitivity encoding is always satisfiable, so this
	// signals an internal bug rather than a property of the instance.
	ErrInfeasible = errors.New("solve: optimization model infeasible")
)

// Algorithm names a subproblem strategy.
type Algorithm string

// The declared strategy set. Only MaxSAT is implemented; selecting FP or
// EdgeDel is a configuration error (ErrNotImplemented), never a silent
// fallthrough.
const (
	// MaxSAT solves subproblems exactly via weighted partial MaxSAT.
	MaxSAT Algorithm = "MAXSAT"

	// FP is the force-based partitioning heuristic (not implemented).
	FP Algorithm = "FP"

	// EdgeDel is the edge-deletion heuristic (not implemented).
	EdgeDel Algorithm = "EDGE-DEL"
)

// DefaultScale converts float edit costs to the integer clause weights the
// MaxSAT backend requires. Costs below 1/DefaultScale collapse to zero and
// become free flips; the scale only influences tie-breaking, since the
// reported objective is recomputed exactly.
const DefaultScale = 1e6

// Config selects and tunes a subproblem strategy.
type Config struct {
	// Algorithm names the strategy to run.
	Algorithm Algorithm

	// TimeLimit bounds one MaxSAT solve. Zero or negative disables the
	// limit. A run stopped by the limit returns its best model so far
	// with Optimal == false.
	TimeLimit time.Duration

	// Scale is the float→int cost conversion factor for clause weights.
	// Zero selects DefaultScale; negative values are rejected.
	Scale float64
}

// DefaultConfig mirrors the conventional defaults: the exact strategy with
// a one-minute time limit per subproblem.
func DefaultConfig() Config {
	return Config{
		Algorithm: MaxSAT,
		TimeLimit: time.Minute,
		Scale:     DefaultScale,
	}
}

// Solution is the outcome of one subproblem solve.
type Solution struct {
	// Graph is the bi-transitive subgraph: same node set as the input,
	// edges chosen by the solver. Its connected components are all
	// bi-cliques.
	Graph *bigraph.Graph

	// Objective is the total edit cost of the transformation.
	Objective float64

	// Optimal is true iff the solution is provably best-possible.
	Optimal bool
}

// Solver renders one connected, non-bi-clique subgraph bi-transitive.
//
// Implementations must be pure per call: the same inputs yield an
// equivalent solution, and neither weights nor sub are mutated. The
// orchestrator relies only on this contract, not on the algorithm behind
// it.
type Solver interface {
	Solve(ctx context.Context, weights mat.Matrix, threshold float64, sub *bigraph.Graph) (*Solution, error)
}

// New validates cfg and returns the selected Solver.
//
// Configuration errors surface here, before any subproblem is dispatched:
// ErrUnknownAlgorithm for unrecognized names, ErrNotImplemented for
// declared-but-unimplemented ones, ErrBadScale for a negative scale.
func New(cfg Config) (Solver, error) {
	scale := cfg.Scale
	if scale == 0 {
		scale = DefaultScale
	}
	if scale < 0 {
		return nil, fmt.Errorf("%w: %g", ErrBadScale, cfg.Scale)
	}
	switch cfg.Algorithm {
	case MaxSAT:
		return &maxSATSolver{limit: cfg.TimeLimit, scale: scale}, nil
	case FP, EdgeDel:
		return nil, fmt.Errorf("%w: %s", ErrNotImplemented, cfg.Algorithm)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, cfg.Algorithm)
	}
}
