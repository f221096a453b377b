package shortestpath

import (
	"fmt"

	"github.com/san-kum/algoviz/internal/graph"
	"github.com/san-kum/algoviz/internal/trace"
)

var BellmanFordPseudocode = []string{
	"START dist[start] = 0, all others ∞",
	"REPEAT V - 1 times",
	"  FOR each edge (u, v, w)",
	"    IF dist[u] + w < dist[v] (either direction) THEN",
	"      dist[v] = dist[u] + w; prev[v] = u",
	"  IF nothing changed THEN stop early",
	"FOR each edge (u, v, w)",
	"  IF dist[u] + w < dist[v] THEN negative cycle",
	"END distances final",
}

const (
	bellmanStart    = 0
	bellmanPass     = 1
	bellmanCheck    = 3
	bellmanRelax    = 4
	bellmanNegative = 7
	bellmanDone     = 8
)

// BellmanFord relaxes every edge in both directions for up to V-1 passes,
// stopping early after a pass with no change. A negative edge on an
// undirected graph is itself a negative cycle.
func BellmanFord(g graph.Graph, start int) (trace.Trace, error) {
	if err := g.Check(start); err != nil {
		return trace.Trace{}, fmt.Errorf("bellman-ford: %w", err)
	}

	n := g.Order()
	dist := trace.NewDistances(n)
	prev := newPrevious(n)
	dist[start] = 0
	current := trace.None

	state := func() trace.GraphState {
		st := trace.NewGraphState(g)
		st.Current = current
		st.Distances = dist
		st.Previous = prev
		st.PathWeight = trace.Distance(trace.Inf)
		return st
	}

	rec := trace.NewRecorder("bellman-ford", trace.KindShortestPath, BellmanFordPseudocode)
	st := state()
	st.Highlight = []int{start}
	rec.Graph(trace.EventInit, bellmanStart,
		fmt.Sprintf("Initialize distances, %s = 0", g.Label(start)), st)

	relax := func(u, v int, w float64) bool {
		if dist[u] == trace.Inf || dist[u]+w >= dist[v] {
			return false
		}
		dist[v] = dist[u] + w
		prev[v] = u
		current = v
		st := state()
		st.Highlight = []int{u, v}
		st.EdgesHighlight = []trace.EdgeRef{{From: u, To: v}}
		rec.Graph(trace.EventRelax, bellmanRelax,
			fmt.Sprintf("Relaxed %s → %s, new distance to %s: %s",
				g.Label(u), g.Label(v), g.Label(v), trace.FormatNumber(dist[v])), st)
		current = trace.None
		return true
	}

	passes := 0
	for pass := 0; pass < n-1; pass++ {
		passes++
		rec.Graph(trace.EventPass, bellmanPass,
			fmt.Sprintf("Iteration %d of %d", pass+1, n-1), state())

		changed := false
		for _, e := range g.Edges {
			st := state()
			st.Highlight = []int{e.From, e.To}
			st.EdgesHighlight = []trace.EdgeRef{{From: e.From, To: e.To}}
			rec.Graph(trace.EventCheck, bellmanCheck,
				fmt.Sprintf("Checking edge %s - %s (weight %s)",
					g.Label(e.From), g.Label(e.To), trace.FormatNumber(e.Weight)), st)

			if relax(e.From, e.To, e.Weight) {
				changed = true
			}
			if relax(e.To, e.From, e.Weight) {
				changed = true
			}
		}
		if !changed {
			break
		}
	}

	negative := false
	for _, e := range g.Edges {
		if improves(dist, e.From, e.To, e.Weight) || improves(dist, e.To, e.From, e.Weight) {
			negative = true
			break
		}
	}

	final := state()
	if negative {
		final.NegativeCycle = true
		rec.Graph(trace.EventFinal, bellmanNegative, "Negative cycle detected", final)
		return rec.Trace(), nil
	}
	final.VisitedEdges = previousEdges(prev)
	final.EdgesHighlight = final.VisitedEdges
	rec.Graph(trace.EventFinal, bellmanDone,
		fmt.Sprintf("All shortest paths found after %d iteration(s)", passes), final)
	return rec.Trace(), nil
}

func improves(dist trace.Distances, u, v int, w float64) bool {
	return dist[u] != trace.Inf && dist[u]+w < dist[v]
}

// previousEdges lists prev[v]->v for every node with a predecessor.
func previousEdges(prev []int) []trace.EdgeRef {
	var out []trace.EdgeRef
	for v, u := range prev {
		if u != trace.None {
			out = append(out, trace.EdgeRef{From: u, To: v})
		}
	}
	return out
}
