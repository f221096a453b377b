package graph

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidGraph indicates an edge referencing a missing node, ids that
	// are not dense, or a weight that is not a finite number.
	ErrInvalidGraph = errors.New("graph: invalid graph")

	// ErrNodeNotFound indicates a start or end node outside the graph.
	ErrNodeNotFound = errors.New("graph: node not found")

	ErrEdgeNotFound = errors.New("graph: edge not found")

	// ErrNegativeWeight indicates a negative edge weight given to an
	// algorithm that requires non-negative weights.
	ErrNegativeWeight = errors.New("graph: negative edge weight")
)

// ValidationError names the element that failed validation.
type ValidationError struct {
	Element string
	Index   int
	Wrapped error
}

func (e *ValidationError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("%s: bad %s", e.Wrapped, e.Element)
	}
	return fmt.Sprintf("%s: bad %s %d", e.Wrapped, e.Element, e.Index)
}

func (e *ValidationError) Unwrap() error {
	return e.Wrapped
}
