package sorting

import (
	"math/rand"
	"reflect"
	"slices"
	"testing"

	"github.com/san-kum/algoviz/internal/trace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var generators = []struct {
	name string
	fn   func([]float64) trace.Trace
}{
	{"bubble", Bubble},
	{"merge", Merge},
	{"quick", Quick},
}

func randomInputs() [][]float64 {
	r := rand.New(rand.NewSource(7))
	inputs := [][]float64{
		{},
		{42},
		{2, 1},
		{1, 2, 3, 4, 5},
		{5, 4, 3, 2, 1},
		{3, 3, 3},
		{-2, 0.5, -7, 3, 0},
	}
	for i := 0; i < 20; i++ {
		n := r.Intn(15)
		arr := make([]float64, n)
		for j := range arr {
			arr[j] = float64(r.Intn(20) - 5)
		}
		inputs = append(inputs, arr)
	}
	return inputs
}

func TestSorts_Correctness(t *testing.T) {
	for _, g := range generators {
		t.Run(g.name, func(t *testing.T) {
			for _, in := range randomInputs() {
				tr := g.fn(in)
				require.NoError(t, tr.Validate())

				want := slices.Clone(in)
				slices.Sort(want)
				final := tr.Final()
				if len(want) == 0 {
					assert.Empty(t, final.Array.Values)
				} else {
					assert.Equal(t, want, final.Array.Values, "input %v", in)
				}
				assert.Len(t, final.Array.Sorted, len(in))
				assert.Equal(t, trace.EventInit, tr.Snapshots[0].Event)
				assert.Equal(t, trace.EventFinal, final.Event)
			}
		})
	}
}

func TestSorts_Deterministic(t *testing.T) {
	in := []float64{9, 4, 7, 1, 8, 2}
	for _, g := range generators {
		t.Run(g.name, func(t *testing.T) {
			if !reflect.DeepEqual(g.fn(in), g.fn(in)) {
				t.Errorf("%s: traces differ between runs", g.name)
			}
		})
	}
}

func TestSorts_InputUntouched(t *testing.T) {
	for _, g := range generators {
		in := []float64{3, 1, 2}
		g.fn(in)
		assert.Equal(t, []float64{3, 1, 2}, in, g.name)
	}
}

func TestSorts_SnapshotIsolation(t *testing.T) {
	for _, g := range generators {
		tr := g.fn([]float64{4, 3, 2, 1})
		before := slices.Clone(tr.Snapshots[1].Array.Values)
		tr.Snapshots[0].Array.Values[0] = 1000
		assert.Equal(t, before, tr.Snapshots[1].Array.Values, g.name)
	}
}

func TestSorts_EmptyInput(t *testing.T) {
	for _, g := range generators {
		tr := g.fn(nil)
		require.Equal(t, 2, tr.Len(), g.name)
		assert.Equal(t, []trace.Event{trace.EventInit, trace.EventFinal}, tr.Events())
	}
}

func TestBubble_Scenario(t *testing.T) {
	tr := Bubble([]float64{5, 3, 8, 1})

	assert.Equal(t, 16, tr.Len())
	assert.Equal(t, []float64{1, 3, 5, 8}, tr.Final().Array.Values)

	counts := map[trace.Event]int{}
	for _, ev := range tr.Events() {
		counts[ev]++
	}
	assert.Equal(t, 6, counts[trace.EventCompare])
	assert.Equal(t, 4, counts[trace.EventSwap])
	assert.Equal(t, 4, counts[trace.EventMark])

	first := tr.Snapshots[1]
	assert.Equal(t, "Comparing 5 and 3", first.Description)
	assert.Equal(t, 3, first.CodeLine)
	assert.Equal(t, []int{0, 1}, first.Array.Compare)

	swap := tr.Snapshots[2]
	assert.Equal(t, "Swapping 5 and 3", swap.Description)
	assert.Equal(t, []float64{3, 5, 8, 1}, swap.Array.Values)
	assert.Equal(t, "SWAP a[j], a[j+1]", tr.Line(2)[6:])
}

func TestBubble_MarkersAccumulate(t *testing.T) {
	tr := Bubble([]float64{2, 1, 3})
	var marks [][]int
	for _, s := range tr.Snapshots {
		if s.Event == trace.EventMark {
			marks = append(marks, s.Array.Sorted)
		}
	}
	assert.Equal(t, [][]int{{2}, {2, 1}, {2, 1, 0}}, marks)
}

func TestMerge_DividesBeforeMerging(t *testing.T) {
	tr := Merge([]float64{2, 1})
	assert.Equal(t, []trace.Event{
		trace.EventInit,
		trace.EventDivide, // [0..0]
		trace.EventDivide, // [1..1]
		trace.EventMerge,
		trace.EventCompare,
		trace.EventPlace,
		trace.EventPlace,
		trace.EventFinal,
	}, tr.Events())
	assert.Equal(t, &trace.Range{Start: 0, End: 1}, tr.Snapshots[3].Array.Range)
	assert.Equal(t, 12, tr.Snapshots[6].CodeLine, "leftover left element copied")
}

func TestMerge_ComparesAreHighlighted(t *testing.T) {
	tr := Merge([]float64{5, 3, 8, 1})
	compares := 0
	for _, s := range tr.Snapshots {
		if s.Event != trace.EventCompare {
			continue
		}
		compares++
		require.Len(t, s.Array.Compare, 2)
		assert.Equal(t, s.Array.Compare, s.Array.Highlight)
	}
	assert.Positive(t, compares)
}

func TestQuick_PivotsSorted(t *testing.T) {
	tr := Quick([]float64{4, 3, 1, 2})

	var pivots []float64
	for _, s := range tr.Snapshots {
		if s.Event == trace.EventPivot {
			pivots = append(pivots, s.Array.Values[s.Array.Pivot])
		}
	}
	// [0..3] partitions around 2, leaving [0..0] and [2..3]; the latter around 3
	assert.Equal(t, []float64{2, 3}, pivots)

	for _, s := range tr.Snapshots {
		if s.Event == trace.EventMark {
			assert.True(t, s.Array.IsSorted(s.Array.Pivot))
		}
	}
}

func TestQuick_SortedInputWorstCase(t *testing.T) {
	in := make([]float64, 100)
	for i := range in {
		in[i] = float64(i)
	}
	tr := Quick(in)
	assert.Equal(t, in, tr.Final().Array.Values)
}
