// File: biclust/observer_test.go
package biclust_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/biclustgo/bicluster/biclust"
)

// countingObserver records event counts to verify hook ordering.
type countingObserver struct {
	preprocessed int
	started      int
	solved       int
	done         int
}

func (o *countingObserver) Preprocessed(int, int)                    { o.preprocessed++ }
func (o *countingObserver) SubproblemStarted(int, int, int)          { o.started++ }
func (o *countingObserver) SubproblemSolved(int, int, float64, bool) { o.solved++ }
func (o *countingObserver) Done(*biclust.Result)                     { o.done++ }

// TestObserver_EventCounts verifies one Preprocessed, one Done, and a
// Started/Solved pair per dispatched subproblem.
func TestObserver_EventCounts(t *testing.T) {
	obs := &countingObserver{}
	_, err := biclust.Compute(nontrivialPair(), 0, completer{optimal: true},
		biclust.WithObserver(obs))
	require.NoError(t, err)

	assert.Equal(t, 1, obs.preprocessed)
	assert.Equal(t, 2, obs.started)
	assert.Equal(t, 2, obs.solved)
	assert.Equal(t, 1, obs.done)
}

// TestObserver_DoesNotAffectResult: a writer observer and the no-op
// default must produce identical results.
func TestObserver_DoesNotAffectResult(t *testing.T) {
	plain, err := biclust.Compute(nontrivialPair(), 0, completer{optimal: true})
	require.NoError(t, err)

	var buf bytes.Buffer
	observed, err := biclust.Compute(nontrivialPair(), 0, completer{optimal: true},
		biclust.WithObserver(biclust.NewWriterObserver(&buf)))
	require.NoError(t, err)

	assert.Equal(t, plain, observed)
}

// TestWriterObserver_Banners spot-checks the progress text.
func TestWriterObserver_Banners(t *testing.T) {
	var buf bytes.Buffer
	_, err := biclust.Compute(nontrivialPair(), 0, completer{optimal: true},
		biclust.WithObserver(biclust.NewWriterObserver(&buf)))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Finished pre-processing.")
	assert.Contains(t, out, "Number of connected components: 2")
	assert.Contains(t, out, "Solving subproblem 1 of 2.")
	assert.Contains(t, out, "Solving subproblem 2 of 2.")
	assert.Contains(t, out, "Finished computation of bi-clusters.")
	assert.Contains(t, out, "Number of bi-clusters: 2")
	assert.Equal(t, 2, strings.Count(out, "Number of nodes: 4"))
}

// TestWithObserver_NilKeepsDefault ensures a nil observer is ignored.
func TestWithObserver_NilKeepsDefault(t *testing.T) {
	weights := mat.NewDense(1, 1, []float64{1})
	_, err := biclust.Compute(weights, 0, failing{}, biclust.WithObserver(nil))
	require.NoError(t, err)
}
