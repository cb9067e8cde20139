// Package bicluster turns a weighted rectangular matrix into bi-clusters:
// groups of rows and columns that form complete bipartite subgraphs of the
// threshold graph.
//
// 🚀 What is bicluster?
//
//	A small, composable library that brings together:
//		• bigraph/ — bipartite graphs over a packed row/column id space,
//		  threshold graph construction, connected components, bi-clique test
//		• solve/   — pluggable subproblem solvers that render a subgraph
//		  bi-transitive (exact MaxSAT backend included)
//		• biclust/ — the orchestrator: decompose, short-circuit trivial
//		  components, dispatch the rest, validate, and merge
//
// ✨ Why choose bicluster?
//
//   - Deterministic – sorted node orderings, reproducible cluster order
//   - Honest guarantees – a global optimality flag that is true only when
//     every subproblem was solved to proven optimality
//   - Pluggable – the solver boundary is one interface; strategies are
//     selected by name and tuned through a plain config struct
//   - Parallel-ready – independent subproblems fan out across workers
//     behind a single option
//
// Typical usage:
//
//	s, err := solve.New(solve.DefaultConfig())
//	if err != nil { ... }
//	res, err := biclust.Compute(weights, 0, s)
//	for _, bc := range res.BiClusters {
//		fmt.Println(bc.Rows, bc.Cols)
//	}
//
// See the per-package doc.go files for details and complexity notes.
package bicluster
