package trace

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/san-kum/algoviz/internal/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder_CopiesWorkingState(t *testing.T) {
	rec := NewRecorder("demo", KindSorting, []string{"a", "b"})
	work := []float64{3, 1, 2}
	st := NewArrayState(work)
	st.Compare = []int{0, 1}

	rec.Array(EventCompare, 1, "first", st)
	work[0] = 99
	st.Compare[0] = 7
	rec.Array(EventCompare, 1, "second", st)

	tr := rec.Trace()
	require.Equal(t, 2, tr.Len())
	assert.Equal(t, []float64{3, 1, 2}, tr.Snapshots[0].Array.Values)
	assert.Equal(t, []int{0, 1}, tr.Snapshots[0].Array.Compare)
	assert.Equal(t, []float64{99, 1, 2}, tr.Snapshots[1].Array.Values)
}

func TestSnapshot_CloneIsolation(t *testing.T) {
	gs := NewGraphState(graph.Default())
	gs.Visited = []int{0}
	gs.Distances = Distances{0, Inf}
	gs.Matrix = Matrix{{0, 1}, {1, 0}}
	gs.ActiveTriplet = &Triplet{K: 0, I: 1, J: 1}
	s := Snapshot{Kind: KindAllPairs, Graph: &gs}

	c := s.Clone()
	c.Graph.Visited[0] = 5
	c.Graph.Distances[0] = 42
	c.Graph.Matrix[0][1] = 9
	c.Graph.ActiveTriplet.K = 3
	c.Graph.Graph.Edges[0].Weight = 100

	assert.Equal(t, 0, s.Graph.Visited[0])
	assert.Equal(t, 0.0, s.Graph.Distances[0])
	assert.Equal(t, 1.0, s.Graph.Matrix[0][1])
	assert.Equal(t, 0, s.Graph.ActiveTriplet.K)
	assert.Equal(t, 4.0, s.Graph.Graph.Edges[0].Weight)
}

func TestTrace_At(t *testing.T) {
	rec := NewRecorder("demo", KindSorting, []string{"x"})
	rec.Array(EventInit, 0, "only", NewArrayState([]float64{1}))
	tr := rec.Trace()

	s, ok := tr.At(0)
	require.True(t, ok)
	s.Array.Values[0] = 5
	assert.Equal(t, 1.0, tr.Snapshots[0].Array.Values[0])

	_, ok = tr.At(1)
	assert.False(t, ok)
	_, ok = tr.At(-1)
	assert.False(t, ok)
	assert.Equal(t, "x", tr.Line(0))
	assert.Equal(t, "", tr.Line(3))
}

func TestTrace_Validate(t *testing.T) {
	assert.ErrorIs(t, Trace{}.Validate(), ErrEmptyTrace)

	rec := NewRecorder("demo", KindSorting, []string{"x"})
	rec.Array(EventInit, 1, "bad line", NewArrayState(nil))
	assert.ErrorIs(t, rec.Trace().Validate(), ErrBadCodeLine)

	rec = NewRecorder("demo", KindTraversal, []string{"x"})
	rec.Array(EventInit, 0, "wrong payload", NewArrayState(nil))
	assert.ErrorIs(t, rec.Trace().Validate(), ErrPayloadMismatch)

	rec = NewRecorder("demo", KindTraversal, []string{"x"})
	rec.Graph(EventInit, 0, "ok", NewGraphState(graph.Default()))
	assert.NoError(t, rec.Trace().Validate())
}

func TestDistances_JSON(t *testing.T) {
	d := Distances{0, 2.5, Inf}
	b, err := json.Marshal(d)
	require.NoError(t, err)
	assert.JSONEq(t, `[0, 2.5, null]`, string(b))

	var back Distances
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, 0.0, back[0])
	assert.True(t, math.IsInf(back[2], 1))

	w, err := json.Marshal(struct {
		W Distance `json:"w"`
	}{Distance(Inf)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"w": null}`, string(w))
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{3, "3"},
		{2.5, "2.5"},
		{-1, "-1"},
		{Inf, "∞"},
		{math.Inf(-1), "-∞"},
	}
	for _, tt := range tests {
		if got := FormatNumber(tt.in); got != tt.want {
			t.Errorf("FormatNumber(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
