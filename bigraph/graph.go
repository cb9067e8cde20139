package bigraph

import (
	"fmt"
	"sort"
)

// NumRows returns the row/column split of the id space.
func (g *Graph) NumRows() int { return g.numRows }

// AddNode inserts id as an (initially isolated) node.
// Adding an existing node is a no-op.
// Returns ErrNodeOutOfRange for negative ids.
func (g *Graph) AddNode(id int) error {
	if id < 0 {
		return fmt.Errorf("%w: %d", ErrNodeOutOfRange, id)
	}
	if _, ok := g.adj[id]; !ok {
		g.adj[id] = make(map[int]struct{})
	}
	return nil
}

// AddEdge inserts the undirected edge u–v, adding missing endpoints.
// Exactly one endpoint must be a row and one a column; same-side edges
// return ErrSameSideEdge. Adding an existing edge is a no-op.
func (g *Graph) AddEdge(u, v int) error {
	if u < 0 || v < 0 {
		return fmt.Errorf("%w: (%d, %d)", ErrNodeOutOfRange, u, v)
	}
	if IsRow(u, g.numRows) == IsRow(v, g.numRows) {
		return fmt.Errorf("%w: (%d, %d)", ErrSameSideEdge, u, v)
	}
	if err := g.AddNode(u); err != nil {
		return err
	}
	if err := g.AddNode(v); err != nil {
		return err
	}
	g.adj[u][v] = struct{}{}
	g.adj[v][u] = struct{}{}
	return nil
}

// HasNode reports whether id is present.
func (g *Graph) HasNode(id int) bool {
	_, ok := g.adj[id]
	return ok
}

// HasEdge reports whether the undirected edge u–v is present.
func (g *Graph) HasEdge(u, v int) bool {
	nbrs, ok := g.adj[u]
	if !ok {
		return false
	}
	_, ok = nbrs[v]
	return ok
}

// Nodes returns all node ids in ascending order.
func (g *Graph) Nodes() []int {
	ids := make([]int, 0, len(g.adj))
	for id := range g.adj {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Neighbors returns the neighbor ids of id in ascending order,
// or ErrNodeNotFound if id is absent.
func (g *Graph) Neighbors(id int) ([]int, error) {
	nbrs, ok := g.adj[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrNodeNotFound, id)
	}
	ids := make([]int, 0, len(nbrs))
	for nbr := range nbrs {
		ids = append(ids, nbr)
	}
	sort.Ints(ids)
	return ids, nil
}

// Rows returns the row node ids in ascending order.
func (g *Graph) Rows() []int {
	ids := make([]int, 0, len(g.adj))
	for id := range g.adj {
		if IsRow(id, g.numRows) {
			ids = append(ids, id)
		}
	}
	sort.Ints(ids)
	return ids
}

// Cols returns the column node ids (not column indices) in ascending order.
func (g *Graph) Cols() []int {
	ids := make([]int, 0, len(g.adj))
	for id := range g.adj {
		if !IsRow(id, g.numRows) {
			ids = append(ids, id)
		}
	}
	sort.Ints(ids)
	return ids
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return len(g.adj) }

// EdgeCount returns the number of undirected edges.
func (g *Graph) EdgeCount() int {
	deg := 0
	for _, nbrs := range g.adj {
		deg += len(nbrs)
	}
	return deg / 2
}

// Edges returns all edges as (row, column-node) pairs, ordered
// lexicographically. Row ids are always below column node ids, so the pair
// orientation is canonical.
func (g *Graph) Edges() [][2]int {
	edges := make([][2]int, 0, g.EdgeCount())
	for u, nbrs := range g.adj {
		if !IsRow(u, g.numRows) {
			continue
		}
		for v := range nbrs {
			edges = append(edges, [2]int{u, v})
		}
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i][0] != edges[j][0] {
			return edges[i][0] < edges[j][0]
		}
		return edges[i][1] < edges[j][1]
	})
	return edges
}
