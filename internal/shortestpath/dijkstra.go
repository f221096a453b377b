// Package shortestpath generates Dijkstra, Bellman-Ford and Floyd-Warshall
// traces over the undirected demo graph.
//
// Distances are +Inf until a path is known. Edges relax in both directions.
package shortestpath

import (
	"fmt"
	"slices"

	"github.com/san-kum/algoviz/internal/graph"
	"github.com/san-kum/algoviz/internal/trace"
)

var DijkstraPseudocode = []string{
	"START dist[start] = 0, all others ∞",
	"WHILE unvisited nodes remain",
	"  u = unvisited node with smallest dist",
	"  IF dist[u] == ∞ OR u == end THEN break",
	"  MARK u visited",
	"  FOR each unvisited neighbor v of u",
	"    alt = dist[u] + weight(u, v)",
	"    IF alt < dist[v] THEN",
	"      dist[v] = alt; prev[v] = u",
	"END reconstruct path from end",
}

const (
	dijkstraStart = 0
	dijkstraVisit = 4
	dijkstraCheck = 6
	dijkstraRelax = 8
	dijkstraDone  = 9
)

// Dijkstra runs the O(V²) scan variant from start and stops once end is
// selected. Ties pick the lowest node id. When end cannot be reached the
// final snapshot has Unreachable set and an empty path.
func Dijkstra(g graph.Graph, start, end int) (trace.Trace, error) {
	if err := g.Check(start, end); err != nil {
		return trace.Trace{}, fmt.Errorf("dijkstra: %w", err)
	}
	if err := g.CheckNonNegative(); err != nil {
		return trace.Trace{}, fmt.Errorf("dijkstra: %w", err)
	}

	n := g.Order()
	adj := g.Adjacency()
	dist := trace.NewDistances(n)
	prev := newPrevious(n)
	done := make([]bool, n)
	var visited []int
	dist[start] = 0
	current := trace.None

	state := func() trace.GraphState {
		st := trace.NewGraphState(g)
		st.Current = current
		st.Visited = visited
		st.DiscoveryOrder = visited
		st.Distances = dist
		st.Previous = prev
		st.PathWeight = trace.Distance(trace.Inf)
		return st
	}

	rec := trace.NewRecorder("dijkstra", trace.KindShortestPath, DijkstraPseudocode)
	st := state()
	st.Highlight = []int{start}
	rec.Graph(trace.EventInit, dijkstraStart,
		fmt.Sprintf("Starting from %s, distance = 0", g.Label(start)), st)

	for {
		u := trace.None
		for i := 0; i < n; i++ {
			if !done[i] && dist[i] < trace.Inf && (u == trace.None || dist[i] < dist[u]) {
				u = i
			}
		}
		if u == trace.None || u == end {
			break
		}

		done[u] = true
		visited = append(visited, u)
		current = u
		st := state()
		st.Highlight = slices.Clone(visited)
		rec.Graph(trace.EventVisit, dijkstraVisit,
			fmt.Sprintf("Visiting %s with distance %s", g.Label(u), trace.FormatNumber(dist[u])), st)

		for _, nb := range adj[u] {
			v := nb.Node
			if done[v] {
				continue
			}
			alt := dist[u] + nb.Weight
			st := state()
			st.Highlight = append(slices.Clone(visited), v)
			st.EdgesHighlight = []trace.EdgeRef{{From: u, To: v}}
			rec.Graph(trace.EventCheck, dijkstraCheck,
				fmt.Sprintf("Checking %s, distance through %s: %s",
					g.Label(v), g.Label(u), trace.FormatNumber(alt)), st)

			if alt < dist[v] {
				dist[v] = alt
				prev[v] = u
				st := state()
				st.Highlight = append(slices.Clone(visited), v)
				st.EdgesHighlight = []trace.EdgeRef{{From: u, To: v}}
				rec.Graph(trace.EventRelax, dijkstraRelax,
					fmt.Sprintf("Found shorter path to %s, new distance %s",
						g.Label(v), trace.FormatNumber(alt)), st)
			}
		}
	}

	current = trace.None
	final := state()
	path := reconstruct(prev, start, end)
	if path == nil {
		final.Unreachable = true
		rec.Graph(trace.EventFinal, dijkstraDone,
			fmt.Sprintf("%s is unreachable from %s (total distance ∞)", g.Label(end), g.Label(start)), final)
		return rec.Trace(), nil
	}
	final.ShortestPath = path
	final.PathWeight = trace.Distance(dist[end])
	final.Highlight = path
	final.EdgesHighlight = pathEdges(path)
	rec.Graph(trace.EventFinal, dijkstraDone,
		fmt.Sprintf("Shortest path: %s (total distance %s)", g.Path(path), trace.FormatNumber(dist[end])), final)
	return rec.Trace(), nil
}

func newPrevious(n int) []int {
	prev := make([]int, n)
	for i := range prev {
		prev[i] = trace.None
	}
	return prev
}

// reconstruct walks predecessors back from end. It returns nil unless the
// walk arrives at start.
func reconstruct(prev []int, start, end int) []int {
	var path []int
	for v := end; v != trace.None; v = prev[v] {
		path = append(path, v)
		if len(path) > len(prev) {
			return nil
		}
	}
	if path[len(path)-1] != start {
		return nil
	}
	slices.Reverse(path)
	return path
}

func pathEdges(path []int) []trace.EdgeRef {
	if len(path) < 2 {
		return nil
	}
	out := make([]trace.EdgeRef, 0, len(path)-1)
	for i := 0; i+1 < len(path); i++ {
		out = append(out, trace.EdgeRef{From: path[i], To: path[i+1]})
	}
	return out
}
