// File: biclust/example_test.go
package biclust_test

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/biclustgo/bicluster/biclust"
	"github.com/biclustgo/bicluster/solve"
)

// ExampleCompute bi-clusters a 3×3 instance whose threshold graph misses a
// single edge; the exact solver inserts it and everything merges into one
// bi-cluster.
func ExampleCompute() {
	weights := mat.NewDense(3, 3, []float64{
		1, 1, -1,
		1, 1, 1,
		1, 1, 1,
	})
	s, err := solve.New(solve.Config{Algorithm: solve.MaxSAT})
	if err != nil {
		fmt.Println(err)
		return
	}
	res, err := biclust.Compute(weights, 0, s)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, bc := range res.BiClusters {
		fmt.Println(bc.Rows, bc.Cols)
	}
	fmt.Printf("objective %g, optimal %t\n", res.Objective, res.Optimal)
	// Output:
	// [0 1 2] [0 1 2]
	// objective 1, optimal true
}
