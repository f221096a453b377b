package traversal

import (
	"github.com/san-kum/algoviz/internal/graph"
	"github.com/san-kum/algoviz/internal/trace"
)

// walk is the mutable bookkeeping shared by BFS and DFS.
type walk struct {
	g       graph.Graph
	start   int
	seen    []bool
	visited []int
	order   []int
	parent  []int
	dist    trace.Distances
	queue   []int
	stack   []int
	current int
}

func newWalk(g graph.Graph, start int) *walk {
	n := g.Order()
	w := &walk{
		g:       g,
		start:   start,
		seen:    make([]bool, n),
		parent:  make([]int, n),
		dist:    trace.NewDistances(n),
		current: trace.None,
	}
	for i := range w.parent {
		w.parent[i] = trace.None
	}
	return w
}

func (w *walk) mark(id, parent int) {
	w.seen[id] = true
	w.visited = append(w.visited, id)
	w.parent[id] = parent
}

func (w *walk) state() trace.GraphState {
	st := trace.NewGraphState(w.g)
	st.Current = w.current
	st.Visited = w.visited
	st.DiscoveryOrder = w.order
	st.Queue = w.queue
	st.Stack = w.stack
	st.Previous = w.parent
	st.Distances = w.dist
	return st
}

// treeEdges lists parent[v]->v for every discovered v other than start.
func (w *walk) treeEdges() []trace.EdgeRef {
	var out []trace.EdgeRef
	for _, v := range w.order {
		if v == w.start || w.parent[v] == trace.None {
			continue
		}
		out = append(out, trace.EdgeRef{From: w.parent[v], To: v})
	}
	return out
}
