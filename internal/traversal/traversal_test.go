package traversal

import (
	"reflect"
	"testing"

	"github.com/san-kum/algoviz/internal/graph"
	"github.com/san-kum/algoviz/internal/trace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func labels(g graph.Graph, ids []int) []string { return g.Labels(ids) }

func TestBFS_DefaultGraph(t *testing.T) {
	g := graph.Default()
	tr, err := BFS(g, 0)
	require.NoError(t, err)
	require.NoError(t, tr.Validate())

	final := tr.Final().Graph
	assert.Equal(t, []string{"A", "B", "C", "D", "E", "F"}, labels(g, final.DiscoveryOrder))
	assert.Equal(t, trace.Distances{0, 1, 1, 2, 2, 3}, final.Distances)
	assert.Equal(t, []int{trace.None, 0, 0, 1, 2, 3}, final.Previous)
	assert.Equal(t, []trace.EdgeRef{{0, 1}, {0, 2}, {1, 3}, {2, 4}, {3, 5}}, final.VisitedEdges)
	assert.Empty(t, final.Queue)
	assert.Equal(t, 8, tr.Final().CodeLine)
}

func TestBFS_DescribesHopCounts(t *testing.T) {
	g := graph.Default()
	g, err := g.WithWeight(0, 1, 40)
	require.NoError(t, err)
	tr, err := BFS(g, 0)
	require.NoError(t, err)

	assert.Contains(t, BFSPseudocode[bfsMark], "hops")
	// the heavy A-B edge still counts as one hop
	assert.Equal(t, 1.0, tr.Final().Graph.Distances[1])
	for _, s := range tr.Snapshots {
		if s.CodeLine == bfsMark {
			assert.Contains(t, s.Description, "hops from the start")
			assert.NotContains(t, s.Description, "distance")
		}
	}
}

func TestBFS_SnapshotShape(t *testing.T) {
	tr, err := BFS(graph.Default(), 0)
	require.NoError(t, err)

	events := tr.Events()
	assert.Equal(t, trace.EventInit, events[0])
	assert.Equal(t, trace.EventEnqueue, events[1])
	assert.Equal(t, trace.EventDequeue, events[2])

	// A has neighbors B and C: check B, enqueue B, check C, enqueue C
	assert.Equal(t, "Checking neighbor B of A", tr.Snapshots[3].Description)
	assert.Equal(t, []int{1}, tr.Snapshots[4].Graph.Queue)
	assert.Equal(t, "Checking neighbor C of A", tr.Snapshots[5].Description)
	assert.Equal(t, []int{1, 2}, tr.Snapshots[6].Graph.Queue)

	dequeues := 0
	for _, ev := range events {
		if ev == trace.EventDequeue {
			dequeues++
		}
	}
	assert.Equal(t, 6, dequeues)
}

func TestDFS_DefaultGraph(t *testing.T) {
	g := graph.Default()
	tr, err := DFS(g, 0)
	require.NoError(t, err)
	require.NoError(t, tr.Validate())

	final := tr.Final().Graph
	assert.Equal(t, []string{"A", "C", "E", "F", "D", "B"}, labels(g, final.DiscoveryOrder))
	assert.Empty(t, final.Stack)
	assert.Equal(t, []trace.EdgeRef{{0, 2}, {2, 4}, {4, 5}, {5, 3}, {3, 1}}, final.VisitedEdges)
	assert.Nil(t, final.Distances)
}

func TestDFS_StackTracksRecursion(t *testing.T) {
	tr, err := DFS(graph.Default(), 0)
	require.NoError(t, err)

	maxDepth := 0
	pushes, pops := 0, 0
	for _, s := range tr.Snapshots {
		if d := len(s.Graph.Stack); d > maxDepth {
			maxDepth = d
		}
		switch s.Event {
		case trace.EventVisit:
			pushes++
		case trace.EventPop:
			pops++
		}
	}
	assert.Equal(t, 6, pushes)
	assert.Equal(t, 6, pops)
	assert.Equal(t, 6, maxDepth, "A-C-E-F-D-B is a single chain")
}

func TestTraversal_Disconnected(t *testing.T) {
	g := graph.Graph{
		Nodes: []graph.Node{{ID: 0, Label: "A"}, {ID: 1, Label: "B"}, {ID: 2, Label: "C"}},
		Edges: []graph.Edge{{From: 0, To: 1, Weight: 1}},
	}
	for name, fn := range map[string]func(graph.Graph, int) (trace.Trace, error){"bfs": BFS, "dfs": DFS} {
		tr, err := fn(g, 0)
		require.NoError(t, err, name)
		final := tr.Final().Graph
		assert.ElementsMatch(t, []int{0, 1}, final.Visited, name)
		assert.False(t, final.IsVisited(2), name)
	}
}

func TestTraversal_CompleteOnConnectedGraph(t *testing.T) {
	g := graph.Default()
	for start := 0; start < g.Order(); start++ {
		for _, fn := range []func(graph.Graph, int) (trace.Trace, error){BFS, DFS} {
			tr, err := fn(g, start)
			require.NoError(t, err)
			final := tr.Final().Graph
			assert.ElementsMatch(t, []int{0, 1, 2, 3, 4, 5}, final.DiscoveryOrder)
			assert.Len(t, final.VisitedEdges, 5)
		}
	}
}

func TestTraversal_BadStart(t *testing.T) {
	_, err := BFS(graph.Default(), 9)
	assert.ErrorIs(t, err, graph.ErrNodeNotFound)
	_, err = DFS(graph.Default(), -1)
	assert.ErrorIs(t, err, graph.ErrNodeNotFound)

	bad := graph.Graph{Nodes: []graph.Node{{ID: 0}}, Edges: []graph.Edge{{From: 0, To: 4}}}
	_, err = BFS(bad, 0)
	assert.ErrorIs(t, err, graph.ErrInvalidGraph)
}

func TestTraversal_Deterministic(t *testing.T) {
	a, _ := DFS(graph.Default(), 2)
	b, _ := DFS(graph.Default(), 2)
	if !reflect.DeepEqual(a, b) {
		t.Error("DFS traces differ between runs")
	}
}
