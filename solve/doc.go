// Package solve hosts the subproblem solvers of the bi-clustering pipeline:
// strategies that render one connected, non-bi-clique subgraph
// bi-transitive (decomposable into bi-cliques) at minimum edit cost.
//
// What:
//
//   - Solver is the one-method capability the orchestrator depends on.
//   - Algorithms are selected by name through Config; New validates the
//     configuration eagerly and returns a ready Solver.
//   - MaxSAT is the working exact strategy: edge edits are priced by their
//     distance to the threshold and a weighted partial MaxSAT model
//     (gophersat) picks the cheapest P4-free edit set. FP and EdgeDel are
//     declared strategy names without an implementation yet.
//
// Cost model:
//
//	Flipping the pair (row i, col j) across the threshold costs
//	|weights.At(i, j) - threshold|: deleting a present edge, or inserting
//	an absent one, is as expensive as the weight is far from the cutoff.
//	The reported objective is the sum of the chosen flips, recomputed in
//	float64 (the integer clause weights only guide the search).
//
// Guarantees:
//
//   - Solution.Optimal is true iff the solver proved the optimum. A run cut
//     short by Config.TimeLimit that still holds a feasible model returns
//     it with Optimal == false. Context cancellation abandons the run and
//     surfaces ctx.Err() instead.
//
// Errors:
//
//   - ErrUnknownAlgorithm: unrecognized algorithm name.
//   - ErrNotImplemented: a declared-but-unimplemented name (FP, EdgeDel).
//   - ErrBadScale: negative cost scale (zero selects DefaultScale).
//   - ErrDimension: subgraph ids outside the weight matrix.
//   - ErrNoModel: stopped before any feasible model was found.
//   - ErrInfeasible: the MaxSAT encoding was unsatisfiable (internal bug).
package solve
