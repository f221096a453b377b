package metrics

import (
	"testing"

	"github.com/san-kum/algoviz/internal/graph"
	"github.com/san-kum/algoviz/internal/mst"
	"github.com/san-kum/algoviz/internal/sorting"
	"github.com/san-kum/algoviz/internal/traversal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func byName(rs []Result) map[string]float64 {
	out := make(map[string]float64, len(rs))
	for _, r := range rs {
		out[r.Name] = r.Value
	}
	return out
}

func TestCollect_Bubble(t *testing.T) {
	got := byName(Collect(sorting.Bubble([]float64{5, 3, 8, 1})))

	assert.Equal(t, 6.0, got["comparisons"])
	assert.Equal(t, 4.0, got["writes"])
	assert.Zero(t, got["visits"])
	assert.Zero(t, got["frontier_peak"])
}

func TestCollect_Traversal(t *testing.T) {
	bfs, err := traversal.BFS(graph.Default(), 0)
	require.NoError(t, err)
	got := byName(Collect(bfs))
	assert.Equal(t, 6.0, got["visits"])
	assert.Positive(t, got["frontier_peak"])

	dfs, err := traversal.DFS(graph.Default(), 0)
	require.NoError(t, err)
	assert.Equal(t, 6.0, byName(Collect(dfs))["visits"])
}

func TestCollect_Kruskal(t *testing.T) {
	tr, err := mst.Kruskal(graph.Default())
	require.NoError(t, err)
	got := byName(Collect(tr, MSTDecisions()))
	require.Len(t, got, 1)
	assert.GreaterOrEqual(t, got["mst_decisions"], 5.0)
}

func TestCollect_ResetsBeforeUse(t *testing.T) {
	c := Comparisons()
	tr := sorting.Bubble([]float64{2, 1})
	Collect(tr, c)
	Collect(tr, c)
	assert.Equal(t, 1.0, c.Value())
}

func TestSeries(t *testing.T) {
	tr := sorting.Bubble([]float64{2, 1})

	values, err := SeriesFor(tr, "value", 0)
	require.NoError(t, err)
	require.Len(t, values, tr.Len())
	assert.Equal(t, 2.0, values[0])
	assert.Equal(t, 1.0, values[len(values)-1])

	cmp, err := SeriesFor(tr, "comparisons", 0)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 1, 1, 1, 1}, cmp)

	_, err = SeriesFor(tr, "entropy", 0)
	assert.Error(t, err)
}

func TestVisitedCount(t *testing.T) {
	tr, err := traversal.BFS(graph.Default(), 0)
	require.NoError(t, err)
	series := Project(tr, VisitedCount)
	assert.Equal(t, 6.0, series[len(series)-1])
	for i := 1; i < len(series); i++ {
		assert.GreaterOrEqual(t, series[i], series[i-1])
	}
}
