package graph

import (
	"fmt"
	"math"
)

// Validate checks that ids are dense and every edge references existing
// nodes with a finite weight.
func (g Graph) Validate() error {
	for i, n := range g.Nodes {
		if n.ID != i {
			return &ValidationError{Element: "node", Index: i, Wrapped: ErrInvalidGraph}
		}
	}
	for i, e := range g.Edges {
		if e.From < 0 || e.From >= len(g.Nodes) || e.To < 0 || e.To >= len(g.Nodes) {
			return &ValidationError{Element: "edge", Index: i, Wrapped: ErrInvalidGraph}
		}
		if math.IsNaN(e.Weight) || math.IsInf(e.Weight, 0) {
			return &ValidationError{Element: "edge weight", Index: i, Wrapped: ErrInvalidGraph}
		}
	}
	return nil
}

func (g Graph) CheckNode(id int) error {
	if id < 0 || id >= len(g.Nodes) {
		return fmt.Errorf("%w: %d", ErrNodeNotFound, id)
	}
	return nil
}

// CheckNonNegative rejects graphs with a negative edge weight.
func (g Graph) CheckNonNegative() error {
	for _, e := range g.Edges {
		if e.Weight < 0 {
			return fmt.Errorf("%w: %s-%s (%g)", ErrNegativeWeight, g.Label(e.From), g.Label(e.To), e.Weight)
		}
	}
	return nil
}

// Check validates g and every listed endpoint in one call.
func (g Graph) Check(nodes ...int) error {
	if err := g.Validate(); err != nil {
		return err
	}
	for _, id := range nodes {
		if err := g.CheckNode(id); err != nil {
			return err
		}
	}
	return nil
}
