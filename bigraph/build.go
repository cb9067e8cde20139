package bigraph

import "gonum.org/v1/gonum/mat"

// Connected is the single threshold comparison of the pipeline: a row and a
// column are adjacent iff the weight between them is at or above the
// threshold. Graph construction, solver edit costs and re-validation all go
// through this predicate so the convention cannot drift.
func Connected(weight, threshold float64) bool {
	return weight >= threshold
}

// BuildGraph materializes the threshold graph of an R×C weight matrix.
//
// Every id in [0, R+C) is instantiated as a node, so rows and columns that
// meet the threshold against no counterpart remain present as isolated
// nodes. The weight matrix is only read, never mutated.
//
// Time: O(R·C). Memory: O(R+C+E).
func BuildGraph(weights mat.Matrix, threshold float64) (*Graph, error) {
	if weights == nil {
		return nil, ErrNilWeights
	}
	numRows, numCols := weights.Dims()
	g := NewGraph(numRows)
	for id := 0; id < numRows+numCols; id++ {
		if err := g.AddNode(id); err != nil {
			return nil, err
		}
	}
	for i := 0; i < numRows; i++ {
		for j := 0; j < numCols; j++ {
			if !Connected(weights.At(i, j), threshold) {
				continue
			}
			if err := g.AddEdge(i, ColNode(j, numRows)); err != nil {
				return nil, err
			}
		}
	}
	return g, nil
}
