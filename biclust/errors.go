package biclust

import (
	"errors"
	"fmt"
)

// Sentinel errors for orchestration.
var (
	// ErrNilWeights is returned if the weight matrix is nil.
	ErrNilWeights = errors.New("biclust: weight matrix is nil")

	// ErrNilSolver is returned if no solver is supplied.
	ErrNilSolver = errors.New("biclust: solver is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("biclust: invalid option supplied")

	// ErrNilSolution is returned when a solver returns no solution graph.
	ErrNilSolution = errors.New("biclust: solver returned nil solution")
)

// ContractError reports a solver-contract violation: a subproblem answer
// that decomposes into a non-bi-clique component, or that changed the
// subproblem's node set. It is fatal and carries enough of the offending
// subgraph to diagnose which solver call misbehaved.
type ContractError struct {
	// Subproblem is the 1-based index of the dispatched subproblem.
	Subproblem int

	// Reason describes the violated clause of the contract.
	Reason string

	// Nodes and Edges describe the offending component.
	Nodes []int
	Edges [][2]int
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("biclust: subproblem %d violated the solver contract (%s): nodes=%v edges=%v",
		e.Subproblem, e.Reason, e.Nodes, e.Edges)
}
