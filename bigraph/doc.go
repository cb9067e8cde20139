// Package bigraph models the bipartite threshold graph of a weighted
// rectangular matrix and provides the structural primitives the
// bi-clustering pipeline is built from.
//
// What:
//
//   - Rows and columns share one integer id space [0, R+C): ids below R are
//     rows, ids at or above R are columns (IsRow, ColOf, ColNode).
//   - Graph is an undirected bipartite graph over that id space; edges only
//     ever connect a row to a column, same-side edges are rejected.
//   - BuildGraph materializes the threshold graph of a weight matrix:
//     an edge (i, j) exists iff Connected(weights.At(i, j), threshold).
//   - ConnectedComponents splits a Graph into vertex-disjoint induced
//     subgraphs, ordered by minimum node id.
//   - IsBiClique reports whether a graph is complete bipartite between its
//     rows and columns (single-sided graphs are vacuously bi-cliques).
//
// Why:
//
//   - Bi-clustering: threshold graphs whose components are bi-cliques need
//     no solving; the rest become independent subproblems.
//   - Validation: solver output is re-decomposed and re-classified with the
//     same primitives, so the edge convention cannot drift.
//
// Complexity:
//
//   - BuildGraph:           O(R·C) time, O(R+C+E) memory.
//   - ConnectedComponents:  O(V+E) time, O(V) memory.
//   - IsBiClique:           O(rows·cols) time, O(1) memory.
//
// Errors:
//
//   - ErrNilWeights: nil weight matrix passed to BuildGraph.
//   - ErrNilGraph: nil graph passed to ConnectedComponents.
//   - ErrNodeOutOfRange: negative node id.
//   - ErrSameSideEdge: row–row or column–column edge attempted.
//   - ErrNodeNotFound: neighbor lookup on an absent node.
package bigraph
