package shortestpath

import (
	"fmt"

	"github.com/san-kum/algoviz/internal/graph"
	"github.com/san-kum/algoviz/internal/trace"
)

var FloydWarshallPseudocode = []string{
	"START dist[i][j] = weight(i, j), dist[i][i] = 0",
	"FOR k = 0 TO V - 1",
	"  FOR i = 0 TO V - 1",
	"    FOR j = 0 TO V - 1",
	"      IF dist[i][k] + dist[k][j] < dist[i][j] THEN",
	"        dist[i][j] = dist[i][k] + dist[k][j]",
	"END all-pairs distances final",
}

const (
	floydStart  = 0
	floydCheck  = 4
	floydUpdate = 5
	floydDone   = 6
)

// FloydWarshall computes all-pairs distances. Parallel edges keep the
// lightest weight. Cells with an infinite leg are skipped without a snapshot.
func FloydWarshall(g graph.Graph) (trace.Trace, error) {
	if err := g.Validate(); err != nil {
		return trace.Trace{}, fmt.Errorf("floyd-warshall: %w", err)
	}
	if err := g.CheckNonNegative(); err != nil {
		return trace.Trace{}, fmt.Errorf("floyd-warshall: %w", err)
	}

	dist := InitialMatrix(g)
	n := g.Order()
	current := trace.None
	var triplet *trace.Triplet

	state := func() trace.GraphState {
		st := trace.NewGraphState(g)
		st.Current = current
		st.Matrix = dist
		st.ActiveTriplet = triplet
		return st
	}

	rec := trace.NewRecorder("floyd-warshall", trace.KindAllPairs, FloydWarshallPseudocode)
	rec.Graph(trace.EventInit, floydStart, "Initialized distance matrix", state())

	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if dist[i][k] == trace.Inf || dist[k][j] == trace.Inf {
					continue
				}
				current = k
				triplet = &trace.Triplet{K: k, I: i, J: j}
				st := state()
				st.Highlight = []int{i, k, j}
				st.EdgesHighlight = []trace.EdgeRef{{From: i, To: k}, {From: k, To: j}}
				rec.Graph(trace.EventCheck, floydCheck,
					fmt.Sprintf("Checking path %s → %s → %s", g.Label(i), g.Label(k), g.Label(j)), st)

				if alt := dist[i][k] + dist[k][j]; alt < dist[i][j] {
					dist[i][j] = alt
					st := state()
					st.Highlight = []int{i, j}
					st.EdgesHighlight = []trace.EdgeRef{{From: i, To: j}}
					rec.Graph(trace.EventRelax, floydUpdate,
						fmt.Sprintf("Updated %s → %s = %s", g.Label(i), g.Label(j), trace.FormatNumber(alt)), st)
				}
			}
		}
	}

	current, triplet = trace.None, nil
	rec.Graph(trace.EventFinal, floydDone, "All-pairs shortest paths found", state())
	return rec.Trace(), nil
}

// InitialMatrix builds the direct-edge distance table of g.
func InitialMatrix(g graph.Graph) trace.Matrix {
	n := g.Order()
	m := make(trace.Matrix, n)
	for i := range m {
		m[i] = trace.NewDistances(n)
		m[i][i] = 0
	}
	for _, e := range g.Edges {
		if e.From == e.To {
			continue
		}
		if e.Weight < m[e.From][e.To] {
			m[e.From][e.To] = e.Weight
			m[e.To][e.From] = e.Weight
		}
	}
	return m
}
