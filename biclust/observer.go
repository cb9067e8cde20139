package biclust

import (
	"fmt"
	"io"
)

// Observer receives progress events from Compute. All methods are
// informational: implementations must not influence the computation, and
// Compute never waits on an Observer beyond the call itself.
type Observer interface {
	// Preprocessed fires once after decomposition and classification.
	Preprocessed(components, biCliques int)

	// SubproblemStarted fires before subproblem i of n (1-based) is
	// dispatched; nodes is its node count.
	SubproblemStarted(i, n, nodes int)

	// SubproblemSolved fires after subproblem i of n returned.
	SubproblemSolved(i, n int, objective float64, optimal bool)

	// Done fires once with the final result.
	Done(res *Result)
}

// NopObserver ignores all events. It is the default.
type NopObserver struct{}

func (NopObserver) Preprocessed(int, int)                    {}
func (NopObserver) SubproblemStarted(int, int, int)          {}
func (NopObserver) SubproblemSolved(int, int, float64, bool) {}
func (NopObserver) Done(*Result)                             {}

const banner = "=============================================================================="

// WriterObserver renders human-readable progress banners to an io.Writer,
// in the classic phase-transition format. Write errors are ignored;
// progress output is best-effort by contract.
type WriterObserver struct {
	w io.Writer
}

// NewWriterObserver returns a WriterObserver writing to w.
func NewWriterObserver(w io.Writer) *WriterObserver {
	return &WriterObserver{w: w}
}

func (o *WriterObserver) Preprocessed(components, biCliques int) {
	fmt.Fprintf(o.w, "\n%s\nFinished pre-processing.\n%s\n", banner, banner)
	fmt.Fprintf(o.w, "Number of connected components: %d\n", components)
	fmt.Fprintf(o.w, "Number of bi-cliques: %d\n%s\n", biCliques, banner)
}

func (o *WriterObserver) SubproblemStarted(i, n, nodes int) {
	fmt.Fprintf(o.w, "\n%s\nSolving subproblem %d of %d.\n%s\n", banner, i, n, banner)
	fmt.Fprintf(o.w, "Number of nodes: %d\n", nodes)
}

func (o *WriterObserver) SubproblemSolved(i, n int, objective float64, optimal bool) {
	fmt.Fprintf(o.w, "Solved subproblem %d of %d: objective %g, optimal %t.\n%s\n", i, n, objective, optimal, banner)
}

func (o *WriterObserver) Done(res *Result) {
	fmt.Fprintf(o.w, "\n%s\nFinished computation of bi-clusters.\n%s\n", banner, banner)
	fmt.Fprintf(o.w, "Objective value: %g\n", res.Objective)
	fmt.Fprintf(o.w, "Is optimal: %t\n", res.Optimal)
	fmt.Fprintf(o.w, "Number of bi-clusters: %d\n%s\n", len(res.BiClusters), banner)
}
