package catalog

import (
	"context"
	"reflect"
	"testing"

	"github.com/san-kum/algoviz/internal/graph"
	"github.com/san-kum/algoviz/internal/trace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(v float64) *float64 { return &v }

func TestRegistry_ListsAllAlgorithms(t *testing.T) {
	r := NewRegistry()
	assert.Equal(t, []string{
		"bubble", "merge", "quick", "binary",
		"bfs", "dfs", "dijkstra", "bellman-ford", "floyd-warshall", "prim", "kruskal",
	}, r.Names())

	for _, info := range r.List() {
		assert.NotEmpty(t, info.Pseudocode, info.Name)
		assert.NotEmpty(t, info.Title, info.Name)
	}
}

func TestRegistry_GenerateEveryAlgorithm(t *testing.T) {
	r := NewRegistry()
	ctx := context.Background()

	for _, name := range r.Names() {
		t.Run(name, func(t *testing.T) {
			req := Request{Algorithm: name, Values: []float64{4, 2, 7, 1}, Target: ptr(7), Start: 0, End: 5}
			run, err := r.Generate(ctx, req)
			require.NoError(t, err)
			require.NoError(t, run.Trace.Validate())

			info, _ := r.Get(name)
			assert.Equal(t, info.Kind, run.Trace.Kind)
			assert.Equal(t, info.Pseudocode, run.Trace.Pseudocode)
			assert.Equal(t, name, run.Trace.Algorithm)
			assert.NotEmpty(t, run.ID)
		})
	}
}

func TestRegistry_TracesAreDeterministicAndIsolated(t *testing.T) {
	r := NewRegistry()
	ctx := context.Background()

	for _, name := range r.Names() {
		t.Run(name, func(t *testing.T) {
			values := []float64{4, 2, 7, 1, 9, 3}
			req := Request{Algorithm: name, Values: values, Target: ptr(7), Start: 0, End: 5}

			a, err := r.Generate(ctx, req)
			require.NoError(t, err)
			b, err := r.Generate(ctx, req)
			require.NoError(t, err)

			if !reflect.DeepEqual(a.Trace, b.Trace) {
				t.Fatalf("%s: two generations from the same input differ", name)
			}
			assert.Equal(t, []float64{4, 2, 7, 1, 9, 3}, values, "input must not be modified")
			require.Greater(t, a.Trace.Len(), 1)

			scramble(&a.Trace.Snapshots[0])
			for i := 1; i < a.Trace.Len(); i++ {
				if !reflect.DeepEqual(a.Trace.Snapshots[i], b.Trace.Snapshots[i]) {
					t.Errorf("%s: snapshot %d changed after editing snapshot 0", name, i)
				}
			}
		})
	}
}

// scramble overwrites every slice element reachable from s.
func scramble(s *trace.Snapshot) {
	if a := s.Array; a != nil {
		for i := range a.Values {
			a.Values[i] = -999
		}
		for _, idx := range [][]int{a.Compare, a.Swap, a.Sorted, a.Highlight} {
			for i := range idx {
				idx[i] = -999
			}
		}
	}
	if g := s.Graph; g != nil {
		for i := range g.Graph.Nodes {
			g.Graph.Nodes[i].Label = "?"
		}
		for i := range g.Graph.Edges {
			g.Graph.Edges[i].Weight = -999
		}
		for _, idx := range [][]int{g.Visited, g.DiscoveryOrder, g.Queue, g.Stack, g.Previous,
			g.ShortestPath, g.Parent, g.MSTSet, g.Highlight} {
			for i := range idx {
				idx[i] = -999
			}
		}
		for _, d := range append([]trace.Distances{g.Distances, g.Key}, g.Matrix...) {
			for i := range d {
				d[i] = -999
			}
		}
		for i := range g.MSTEdges {
			g.MSTEdges[i].Weight = -999
		}
		for i := range g.VisitedEdges {
			g.VisitedEdges[i] = trace.EdgeRef{From: -999, To: -999}
		}
		for i := range g.EdgesHighlight {
			g.EdgesHighlight[i] = trace.EdgeRef{From: -999, To: -999}
		}
	}
}

func TestRegistry_RunIdentityChanges(t *testing.T) {
	r := NewRegistry()
	req := Request{Algorithm: "bubble", Values: []float64{2, 1}}
	a, err := r.Generate(context.Background(), req)
	require.NoError(t, err)
	b, err := r.Generate(context.Background(), req)
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, a.Trace, b.Trace)
}

func TestRegistry_Errors(t *testing.T) {
	r := NewRegistry()
	ctx := context.Background()

	_, err := r.Generate(ctx, Request{Algorithm: "bogo"})
	assert.ErrorIs(t, err, ErrUnknownAlgorithm)

	_, err = r.Get("bogo")
	assert.ErrorIs(t, err, ErrUnknownAlgorithm)
	assert.Nil(t, r.Pseudocode("bogo"))

	_, err = r.Generate(ctx, Request{Algorithm: "binary", Values: []float64{1}})
	assert.ErrorIs(t, err, ErrMissingInput)

	_, err = r.Generate(ctx, Request{Algorithm: "dijkstra", Start: 0, End: 42})
	assert.ErrorIs(t, err, graph.ErrNodeNotFound)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = r.Generate(cancelled, Request{Algorithm: "bubble"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRegistry_CustomGraph(t *testing.T) {
	g, err := graph.Default().WithWeight(4, 5, 20)
	require.NoError(t, err)

	run, err := NewRegistry().Generate(context.Background(),
		Request{Algorithm: "dijkstra", Graph: &g, Start: 0, End: 5})
	require.NoError(t, err)
	final := run.Trace.Final().Graph
	assert.Equal(t, []int{0, 2, 1, 3, 5}, final.ShortestPath)
	assert.Equal(t, trace.Distance(12), final.PathWeight)
}

func TestRegistry_PseudocodeIsACopy(t *testing.T) {
	r := NewRegistry()
	code := r.Pseudocode("bubble")
	code[0] = "mutated"
	assert.NotEqual(t, "mutated", r.Pseudocode("bubble")[0])
}
