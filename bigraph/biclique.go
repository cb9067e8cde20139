package bigraph

// IsBiClique reports whether g is a complete bipartite graph between its
// row nodes and its column nodes, i.e. every row is adjacent to every
// column. The check is explicit adjacency completeness, not an edge count,
// so it stays valid when re-run on solver output. A graph with only rows or
// only columns has no required edges and is vacuously a bi-clique, as is an
// empty or nil graph.
//
// Time: O(rows·cols).
func IsBiClique(g *Graph) bool {
	if g == nil {
		return true
	}
	rows, cols := g.Rows(), g.Cols()
	for _, r := range rows {
		for _, c := range cols {
			if !g.HasEdge(r, c) {
				return false
			}
		}
	}
	return true
}
