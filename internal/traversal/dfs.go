package traversal

import (
	"fmt"
	"strings"

	"github.com/san-kum/algoviz/internal/graph"
	"github.com/san-kum/algoviz/internal/trace"
)

var DFSPseudocode = []string{
	"START visited = {}, stack = []",
	"visit(start)",
	"FUNCTION visit(node)",
	"  MARK node visited; PUSH node",
	"  FOR each neighbor of node",
	"    IF neighbor not visited THEN",
	"      parent[neighbor] = node; visit(neighbor)",
	"  POP node (backtrack)",
	"END traversal complete",
}

const (
	dfsStart = 0
	dfsVisit = 3
	dfsCheck = 5
	dfsPop   = 7
	dfsDone  = 8
)

type frame struct {
	node int
	next int
}

// DFS explores g from start, taking neighbors in descending label order.
// The recursion is simulated with an explicit frame stack, so depth is
// bounded by the node count, not the goroutine stack.
func DFS(g graph.Graph, start int) (trace.Trace, error) {
	if err := g.Check(start); err != nil {
		return trace.Trace{}, fmt.Errorf("dfs: %w", err)
	}
	adj := orderedAdjacency(g, func(a, b string) int { return strings.Compare(b, a) })
	w := newWalk(g, start)
	w.dist = nil
	rec := trace.NewRecorder("dfs", trace.KindTraversal, DFSPseudocode)

	rec.Graph(trace.EventInit, dfsStart,
		fmt.Sprintf("Starting DFS from %s", g.Label(start)), w.state())

	var frames []frame
	visit := func(id, parent int) {
		w.mark(id, parent)
		w.order = append(w.order, id)
		w.stack = append(w.stack, id)
		w.current = id
		frames = append(frames, frame{node: id})

		st := w.state()
		st.Highlight = []int{id}
		if parent != trace.None {
			st.EdgesHighlight = []trace.EdgeRef{{From: parent, To: id}}
		}
		rec.Graph(trace.EventVisit, dfsVisit, fmt.Sprintf("Visiting %s", g.Label(id)), st)
	}

	visit(start, trace.None)
	for len(frames) > 0 {
		f := &frames[len(frames)-1]
		if f.next < len(adj[f.node]) {
			nb := adj[f.node][f.next]
			f.next++
			node := f.node

			w.current = node
			st := w.state()
			st.Highlight = []int{node, nb.Node}
			st.EdgesHighlight = []trace.EdgeRef{{From: node, To: nb.Node}}
			rec.Graph(trace.EventCheck, dfsCheck,
				fmt.Sprintf("Checking neighbor %s of %s", g.Label(nb.Node), g.Label(node)), st)

			if !w.seen[nb.Node] {
				visit(nb.Node, node)
			}
			continue
		}

		node := f.node
		frames = frames[:len(frames)-1]
		w.stack = w.stack[:len(w.stack)-1]
		w.current = trace.None
		if len(frames) > 0 {
			w.current = frames[len(frames)-1].node
		}
		st := w.state()
		st.Highlight = []int{node}
		rec.Graph(trace.EventPop, dfsPop,
			fmt.Sprintf("Finished %s, backtracking", g.Label(node)), st)
	}

	w.current = trace.None
	final := w.state()
	final.VisitedEdges = w.treeEdges()
	final.EdgesHighlight = final.VisitedEdges
	rec.Graph(trace.EventFinal, dfsDone,
		fmt.Sprintf("DFS complete. Order: %s", g.Path(w.order)), final)
	return rec.Trace(), nil
}
