// Package traversal generates breadth-first and depth-first search traces
// over the undirected demo graph.
package traversal

import (
	"fmt"
	"slices"
	"strings"

	"github.com/san-kum/algoviz/internal/graph"
	"github.com/san-kum/algoviz/internal/trace"
)

var BFSPseudocode = []string{
	"START visited = {}, queue = []",
	"MARK start visited; ENQUEUE start",
	"WHILE queue is not empty",
	"  current = DEQUEUE",
	"  FOR each neighbor of current",
	"    IF neighbor not visited THEN",
	"      MARK neighbor visited; parent = current; hops = hops(current) + 1",
	"      ENQUEUE neighbor",
	"END traversal complete",
}

const (
	bfsStart   = 0
	bfsEnqueue = 1
	bfsDequeue = 3
	bfsCheck   = 5
	bfsMark    = 6
	bfsDone    = 8
)

// BFS explores g from start, taking neighbors in ascending label order.
// Distances hold hop counts.
func BFS(g graph.Graph, start int) (trace.Trace, error) {
	if err := g.Check(start); err != nil {
		return trace.Trace{}, fmt.Errorf("bfs: %w", err)
	}
	adj := orderedAdjacency(g, strings.Compare)
	w := newWalk(g, start)
	rec := trace.NewRecorder("bfs", trace.KindTraversal, BFSPseudocode)

	rec.Graph(trace.EventInit, bfsStart,
		fmt.Sprintf("Starting BFS from %s", g.Label(start)), w.state())

	w.mark(start, trace.None)
	w.dist[start] = 0
	w.queue = append(w.queue, start)
	st := w.state()
	st.Highlight = []int{start}
	rec.Graph(trace.EventEnqueue, bfsEnqueue,
		fmt.Sprintf("Marking %s visited and enqueuing it", g.Label(start)), st)

	for len(w.queue) > 0 {
		cur := w.queue[0]
		w.queue = w.queue[1:]
		w.current = cur
		w.order = append(w.order, cur)
		st := w.state()
		st.Highlight = []int{cur}
		rec.Graph(trace.EventDequeue, bfsDequeue,
			fmt.Sprintf("Dequeued %s", g.Label(cur)), st)

		for _, nb := range adj[cur] {
			st := w.state()
			st.Highlight = []int{cur, nb.Node}
			st.EdgesHighlight = []trace.EdgeRef{{From: cur, To: nb.Node}}
			rec.Graph(trace.EventCheck, bfsCheck,
				fmt.Sprintf("Checking neighbor %s of %s", g.Label(nb.Node), g.Label(cur)), st)

			if w.seen[nb.Node] {
				continue
			}
			w.mark(nb.Node, cur)
			w.dist[nb.Node] = w.dist[cur] + 1
			w.queue = append(w.queue, nb.Node)
			st = w.state()
			st.Highlight = []int{cur, nb.Node}
			st.EdgesHighlight = []trace.EdgeRef{{From: cur, To: nb.Node}}
			rec.Graph(trace.EventEnqueue, bfsMark,
				fmt.Sprintf("Marking %s visited and enqueuing it (%s hops from the start)",
					g.Label(nb.Node), trace.FormatNumber(w.dist[nb.Node])), st)
		}
	}

	w.current = trace.None
	final := w.state()
	final.VisitedEdges = w.treeEdges()
	final.EdgesHighlight = final.VisitedEdges
	rec.Graph(trace.EventFinal, bfsDone,
		fmt.Sprintf("BFS complete. Order: %s", g.Path(w.order)), final)
	return rec.Trace(), nil
}

// orderedAdjacency sorts each adjacency list by neighbor label.
func orderedAdjacency(g graph.Graph, cmp func(a, b string) int) [][]graph.Neighbor {
	adj := g.Adjacency()
	for _, list := range adj {
		slices.SortStableFunc(list, func(a, b graph.Neighbor) int {
			return cmp(g.Label(a.Node), g.Label(b.Node))
		})
	}
	return adj
}
