package bigraph

import "errors"

// Sentinel errors for bigraph operations.
var (
	// ErrNilWeights indicates a nil weight matrix was supplied.
	ErrNilWeights = errors.New("bigraph: weight matrix is nil")

	// ErrNilGraph indicates a nil graph pointer was supplied.
	ErrNilGraph = errors.New("bigraph: graph is nil")

	// ErrNodeOutOfRange indicates a negative node id.
	ErrNodeOutOfRange = errors.New("bigraph: node id out of range")

	// ErrSameSideEdge indicates an edge between two rows or two columns.
	ErrSameSideEdge = errors.New("bigraph: edge must connect a row to a column")

	// ErrNodeNotFound indicates an operation referenced an absent node.
	ErrNodeNotFound = errors.New("bigraph: node not found")
)

// Graph is an undirected bipartite graph over the packed id space [0, R+C).
//
// numRows fixes the row/column split of the id space: ids below numRows are
// rows, ids at or above numRows are columns. Edges are stored symmetrically
// in an adjacency map; a node is present iff it has an adjacency entry, so
// isolated nodes are first-class.
//
// Graph is not safe for concurrent mutation; the pipeline builds each graph
// once and only reads it afterwards.
type Graph struct {
	numRows int
	adj     map[int]map[int]struct{}
}

// NewGraph creates an empty Graph whose ids below numRows denote rows.
// A negative numRows is treated as 0 (every id is a column).
// Complexity: O(1).
func NewGraph(numRows int) *Graph {
	if numRows < 0 {
		numRows = 0
	}
	return &Graph{
		numRows: numRows,
		adj:     make(map[int]map[int]struct{}),
	}
}
