package graph

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	g := Default()
	require.NoError(t, g.Validate())
	assert.Equal(t, 6, g.Order())
	assert.Len(t, g.Edges, 7)
	assert.Equal(t, []string{"A", "B", "C", "D", "E", "F"}, g.Labels([]int{0, 1, 2, 3, 4, 5}))

	// fresh copy each call
	g.Edges[0].Weight = 100
	assert.Equal(t, 4.0, Default().Edges[0].Weight)
}

func TestAdjacency(t *testing.T) {
	adj := Default().Adjacency()

	assert.Equal(t, []Neighbor{{1, 4}, {2, 2}}, adj[0])
	assert.Equal(t, []Neighbor{{0, 4}, {3, 3}, {2, 1}}, adj[1])
	assert.Equal(t, []Neighbor{{0, 2}, {1, 1}, {4, 5}}, adj[2])
	assert.Equal(t, []Neighbor{{3, 6}, {4, 2}}, adj[5])
}

func TestAdjacency_SelfLoopListedOnce(t *testing.T) {
	g := Graph{
		Nodes: []Node{{ID: 0, Label: "A"}},
		Edges: []Edge{{From: 0, To: 0, Weight: 1}},
	}
	assert.Len(t, g.Adjacency()[0], 1)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		g    Graph
		ok   bool
	}{
		{"default", Default(), true},
		{"empty", Graph{}, true},
		{"sparse ids", Graph{Nodes: []Node{{ID: 0}, {ID: 2}}}, false},
		{"dangling edge", Graph{Nodes: []Node{{ID: 0}}, Edges: []Edge{{From: 0, To: 3}}}, false},
		{"negative endpoint", Graph{Nodes: []Node{{ID: 0}}, Edges: []Edge{{From: -1, To: 0}}}, false},
		{"nan weight", Graph{Nodes: []Node{{ID: 0}, {ID: 1}}, Edges: []Edge{{From: 0, To: 1, Weight: math.NaN()}}}, false},
		{"negative weight is structurally fine", Graph{Nodes: []Node{{ID: 0}, {ID: 1}}, Edges: []Edge{{From: 0, To: 1, Weight: -3}}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.g.Validate()
			if tt.ok {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, ErrInvalidGraph)
			var verr *ValidationError
			assert.True(t, errors.As(err, &verr))
		})
	}
}

func TestCheck(t *testing.T) {
	g := Default()
	assert.NoError(t, g.Check(0, 5))
	assert.ErrorIs(t, g.Check(0, 6), ErrNodeNotFound)
	assert.ErrorIs(t, g.Check(-1), ErrNodeNotFound)
}

func TestCheckNonNegative(t *testing.T) {
	g, err := Default().WithWeight(1, 2, -1)
	require.NoError(t, err)
	assert.ErrorIs(t, g.CheckNonNegative(), ErrNegativeWeight)
	assert.NoError(t, Default().CheckNonNegative())
}

func TestWithWeight(t *testing.T) {
	base := Default()

	g, err := base.WithWeight(2, 1, 9)
	require.NoError(t, err)
	assert.Equal(t, 9.0, g.Edges[3].Weight)
	assert.Equal(t, 1.0, base.Edges[3].Weight, "base graph must be untouched")

	_, err = base.WithWeight(0, 5, 1)
	assert.ErrorIs(t, err, ErrEdgeNotFound)

	_, err = base.WithWeight(0, 1, math.Inf(1))
	assert.ErrorIs(t, err, ErrInvalidGraph)
}

func TestResolve(t *testing.T) {
	g := Default()
	tests := []struct {
		ref  string
		want int
		ok   bool
	}{
		{"A", 0, true},
		{"f", 5, true},
		{"3", 3, true},
		{"9", -1, false},
		{"Z", -1, false},
	}
	for _, tt := range tests {
		got, err := g.Resolve(tt.ref)
		if tt.ok {
			require.NoError(t, err, tt.ref)
			assert.Equal(t, tt.want, got, tt.ref)
		} else {
			assert.ErrorIs(t, err, ErrNodeNotFound, tt.ref)
		}
	}
}

func TestPath(t *testing.T) {
	assert.Equal(t, "A → C → E → F", Default().Path([]int{0, 2, 4, 5}))
	assert.Equal(t, "", Default().Path(nil))
}
