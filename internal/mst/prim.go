// Package mst generates Prim and Kruskal minimum spanning tree traces.
//
// Both report a spanning forest with Disconnected set when the graph is
// not connected, instead of failing.
package mst

import (
	"fmt"
	"slices"

	"github.com/san-kum/algoviz/internal/graph"
	"github.com/san-kum/algoviz/internal/trace"
)

var PrimPseudocode = []string{
	"START key[root] = 0, all others ∞; parent = -1",
	"REPEAT V times",
	"  u = vertex not in MST with minimum key",
	"  IF key[u] == ∞ THEN stop (graph disconnected)",
	"  ADD u to MST",
	"  FOR each edge (u, v, w)",
	"    IF v not in MST AND w < key[v] THEN",
	"      key[v] = w; parent[v] = u",
	"END MST complete",
}

const (
	primStart        = 0
	primDisconnected = 3
	primAdd          = 4
	primUpdate       = 7
	primDone         = 8
)

// Prim grows the tree from node 0.
func Prim(g graph.Graph) (trace.Trace, error) {
	if err := g.Validate(); err != nil {
		return trace.Trace{}, fmt.Errorf("prim: %w", err)
	}

	n := g.Order()
	adj := g.Adjacency()
	key := trace.NewDistances(n)
	parent := make([]int, n)
	for i := range parent {
		parent[i] = trace.None
	}
	inTree := make([]bool, n)
	var set []int
	if n > 0 {
		key[0] = 0
	}
	current := trace.None

	edges := func() []graph.Edge {
		var out []graph.Edge
		for v, p := range parent {
			if p != trace.None {
				out = append(out, graph.Edge{From: p, To: v, Weight: key[v]})
			}
		}
		return out
	}
	state := func() trace.GraphState {
		st := trace.NewGraphState(g)
		st.Current = current
		st.Key = key
		st.Parent = parent
		st.MSTSet = set
		st.Visited = set
		st.MSTEdges = edges()
		return st
	}

	rec := trace.NewRecorder("prim", trace.KindSpanningTree, PrimPseudocode)
	rootDesc := "Starting MST on an empty graph"
	if n > 0 {
		rootDesc = fmt.Sprintf("Starting MST from %s (key = 0)", g.Label(0))
	}
	rec.Graph(trace.EventInit, primStart, rootDesc, state())

	disconnected := false
	for count := 0; count < n; count++ {
		u := trace.None
		for i := 0; i < n; i++ {
			if !inTree[i] && key[i] < trace.Inf && (u == trace.None || key[i] < key[u]) {
				u = i
			}
		}
		if u == trace.None {
			disconnected = true
			break
		}

		inTree[u] = true
		set = append(set, u)
		current = u
		st := state()
		st.Highlight = set
		rec.Graph(trace.EventAdd, primAdd, fmt.Sprintf("Added %s to MST", g.Label(u)), st)

		for _, nb := range adj[u] {
			v := nb.Node
			if inTree[v] || nb.Weight >= key[v] {
				continue
			}
			key[v] = nb.Weight
			parent[v] = u
			st := state()
			st.Highlight = append(slices.Clone(set), v)
			st.EdgesHighlight = []trace.EdgeRef{{From: u, To: v}}
			rec.Graph(trace.EventRelax, primUpdate,
				fmt.Sprintf("Updated key of %s to %s", g.Label(v), trace.FormatNumber(nb.Weight)), st)
		}
	}

	current = trace.None
	final := state()
	total := 0.0
	for _, k := range key {
		if k < trace.Inf {
			total += k
		}
	}
	final.TotalWeight = trace.Distance(total)
	final.Highlight = set
	final.EdgesHighlight = edgeRefs(final.MSTEdges)

	if disconnected {
		final.Disconnected = true
		rec.Graph(trace.EventFinal, primDisconnected,
			fmt.Sprintf("Graph is disconnected: spanning tree of the reachable component, total weight %s",
				trace.FormatNumber(total)), final)
		return rec.Trace(), nil
	}
	rec.Graph(trace.EventFinal, primDone,
		fmt.Sprintf("MST complete! Total weight: %s", trace.FormatNumber(total)), final)
	return rec.Trace(), nil
}

func edgeRefs(edges []graph.Edge) []trace.EdgeRef {
	out := make([]trace.EdgeRef, len(edges))
	for i, e := range edges {
		out[i] = trace.EdgeRef{From: e.From, To: e.To}
	}
	return out
}
