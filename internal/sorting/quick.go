package sorting

import (
	"fmt"
	"slices"

	"github.com/san-kum/algoviz/internal/trace"
)

const (
	quickStart       = 0
	quickSelectPivot = 7
	quickCompare     = 9
	quickSwap        = 10
	quickPlacePivot  = 11
	quickPivotSorted = 12
	quickDone        = 13
)

type span struct{ low, high int }

// Quick is a Lomuto-partition quick sort with the last element as pivot.
// Partitions are processed from an explicit stack, left before right, so
// the snapshot order matches the recursive formulation.
func Quick(values []float64) trace.Trace {
	q := &quicker{
		arr: slices.Clone(values),
		rec: trace.NewRecorder("quick", trace.KindSorting, QuickPseudocode),
	}
	n := len(q.arr)

	q.rec.Array(trace.EventInit, quickStart, "Starting quick sort", q.state(trace.None))

	stack := []span{{0, n - 1}}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if s.low > s.high {
			continue
		}
		if s.low == s.high {
			q.sorted = append(q.sorted, s.low)
			continue
		}

		p := q.partition(s.low, s.high)
		q.sorted = append(q.sorted, p)
		q.rec.Array(trace.EventMark, quickPivotSorted,
			fmt.Sprintf("Pivot %s is now in its sorted position", num(q.arr[p])), q.state(p))

		stack = append(stack, span{p + 1, s.high}, span{s.low, p - 1})
	}

	q.sorted = allIndices(n)
	q.rec.Array(trace.EventFinal, quickDone, "Array is sorted", q.state(trace.None))
	return q.rec.Trace()
}

type quicker struct {
	arr    []float64
	sorted []int
	rec    *trace.Recorder
}

func (q *quicker) state(pivot int) trace.ArrayState {
	st := trace.NewArrayState(q.arr)
	st.Sorted = q.sorted
	st.Pivot = pivot
	return st
}

func (q *quicker) partition(low, high int) int {
	pivot := q.arr[high]
	st := q.state(high)
	st.Range = &trace.Range{Start: low, End: high}
	q.rec.Array(trace.EventPivot, quickSelectPivot,
		fmt.Sprintf("Selecting pivot %s at index %d", num(pivot), high), st)

	i := low - 1
	for j := low; j < high; j++ {
		st := q.state(high)
		st.Compare = []int{j, high}
		q.rec.Array(trace.EventCompare, quickCompare,
			fmt.Sprintf("Comparing %s with pivot %s", num(q.arr[j]), num(pivot)), st)

		if q.arr[j] < pivot {
			i++
			q.arr[i], q.arr[j] = q.arr[j], q.arr[i]
			st := q.state(high)
			st.Swap = []int{i, j}
			q.rec.Array(trace.EventSwap, quickSwap,
				fmt.Sprintf("Swapping %s and %s", num(q.arr[j]), num(q.arr[i])), st)
		}
	}

	p := i + 1
	q.arr[p], q.arr[high] = q.arr[high], q.arr[p]
	st = q.state(p)
	st.Swap = []int{p, high}
	q.rec.Array(trace.EventSwap, quickPlacePivot,
		fmt.Sprintf("Placing pivot %s at index %d", num(pivot), p), st)
	return p
}
