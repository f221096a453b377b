package mst

import (
	"fmt"
	"sort"

	"github.com/san-kum/algoviz/internal/graph"
	"github.com/san-kum/algoviz/internal/trace"
)

var KruskalPseudocode = []string{
	"START sort edges by weight; make-set for every vertex",
	"FOR each edge (u, v) in sorted order",
	"  IF find(u) != find(v) THEN",
	"    union(u, v); ADD edge to MST",
	"  ELSE",
	"    SKIP edge (forms a cycle)",
	"  IF MST has V - 1 edges THEN stop",
	"END MST complete",
}

const (
	kruskalStart = 0
	kruskalCheck = 2
	kruskalAdd   = 3
	kruskalSkip  = 5
	kruskalDone  = 7
)

// Kruskal scans edges by ascending weight; equal weights keep graph order.
func Kruskal(g graph.Graph) (trace.Trace, error) {
	if err := g.Validate(); err != nil {
		return trace.Trace{}, fmt.Errorf("kruskal: %w", err)
	}

	n := g.Order()
	sorted := make([]graph.Edge, len(g.Edges))
	copy(sorted, g.Edges)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Weight < sorted[j].Weight
	})

	ds := NewDisjointSet(n)
	var tree []graph.Edge
	var seen []trace.EdgeRef

	state := func() trace.GraphState {
		st := trace.NewGraphState(g)
		st.MSTEdges = tree
		st.VisitedEdges = seen
		st.Parent = ds.Parents()
		st.TotalWeight = trace.Distance(g.TotalWeight(tree))
		return st
	}

	rec := trace.NewRecorder("kruskal", trace.KindSpanningTree, KruskalPseudocode)
	rec.Graph(trace.EventInit, kruskalStart, "Sorted all edges by weight", state())

	for _, e := range sorted {
		if n == 0 || len(tree) >= n-1 {
			break
		}
		ref := trace.EdgeRef{From: e.From, To: e.To}
		seen = append(seen, ref)
		name := fmt.Sprintf("%s-%s", g.Label(e.From), g.Label(e.To))

		st := state()
		st.EdgesHighlight = []trace.EdgeRef{ref}
		rec.Graph(trace.EventCheck, kruskalCheck,
			fmt.Sprintf("Checking edge %s (weight %s)", name, trace.FormatNumber(e.Weight)), st)

		if ds.Union(e.From, e.To) {
			tree = append(tree, e)
			st := state()
			st.Highlight = []int{e.From, e.To}
			st.EdgesHighlight = []trace.EdgeRef{ref}
			rec.Graph(trace.EventAdd, kruskalAdd, fmt.Sprintf("No cycle, added %s to MST", name), st)
			continue
		}
		st = state()
		st.EdgesHighlight = []trace.EdgeRef{ref}
		rec.Graph(trace.EventSkip, kruskalSkip, fmt.Sprintf("Cycle detected, skipping %s", name), st)
	}

	final := state()
	final.MSTSet = nodesOf(tree)
	final.Highlight = final.MSTSet
	final.EdgesHighlight = edgeRefs(tree)
	total := trace.FormatNumber(g.TotalWeight(tree))
	if n > 0 && len(tree) < n-1 {
		final.Disconnected = true
		rec.Graph(trace.EventFinal, kruskalDone,
			fmt.Sprintf("Graph is disconnected: spanning forest with %d edge(s), total weight %s", len(tree), total), final)
		return rec.Trace(), nil
	}
	rec.Graph(trace.EventFinal, kruskalDone, fmt.Sprintf("MST complete! Total weight: %s", total), final)
	return rec.Trace(), nil
}

// nodesOf lists the endpoints of edges in first-seen order.
func nodesOf(edges []graph.Edge) []int {
	var out []int
	seen := map[int]bool{}
	for _, e := range edges {
		for _, v := range []int{e.From, e.To} {
			if !seen[v] {
				seen[v] = true
				out = append(out, v)
			}
		}
	}
	return out
}
