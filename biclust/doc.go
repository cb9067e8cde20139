// Package biclust orchestrates the bi-clustering pipeline: it builds the
// threshold graph of a weight matrix, decomposes it into connected
// components, emits components that are already bi-cliques directly, hands
// the rest to a solve.Solver, validates every solver answer, and merges the
// pieces into one result.
//
// Pipeline (linear, no loops back):
//
//  1. Build the threshold graph (bigraph.BuildGraph).
//  2. Decompose it into connected components.
//  3. Classify components: bi-cliques are trivial, the rest are subproblems.
//  4. Emit trivial components as bi-clusters (objective 0, optimal).
//  5. Dispatch each subproblem to the Solver; sum objectives, AND
//     optimality flags.
//  6. Decompose each solver answer and assert every piece is a bi-clique;
//     a failure is a *ContractError, never silently tolerated.
//  7. Return bi-clusters, total objective and the global optimality flag.
//
// The accumulation in steps 5–7 is a reduction over per-subproblem slots
// (sum and AND are order-independent), so WithMaxParallel can fan the
// dispatch loop out across workers without changing any result.
//
// Progress is reported through an injected Observer; the default is a
// no-op, and no Observer implementation may influence the computed result.
//
// Errors:
//
//   - ErrNilWeights, ErrNilSolver: missing inputs.
//   - ErrOptionViolation: invalid functional option.
//   - *ContractError: a solver returned a non-bi-clique component or an
//     altered node set; carries the offending nodes and edges.
//   - Solver and context errors propagate wrapped; the pipeline is
//     fail-fast and never retries.
package biclust
