package sorting

import (
	"fmt"
	"slices"

	"github.com/san-kum/algoviz/internal/trace"
)

const (
	mergeStart       = 0
	mergeDivideLeft  = 4
	mergeDivideRight = 5
	mergeMerging     = 6
	mergeCompare     = 10
	mergePlace       = 11
	mergeCopyLeft    = 12
	mergeCopyRight   = 13
	mergeDone        = 14
)

// Merge is a top-down merge sort. Recursion depth is ceil(log2 n).
func Merge(values []float64) trace.Trace {
	m := &merger{
		arr: slices.Clone(values),
		rec: trace.NewRecorder("merge", trace.KindSorting, MergePseudocode),
	}
	n := len(m.arr)

	m.rec.Array(trace.EventInit, mergeStart, "Starting merge sort", trace.NewArrayState(m.arr))
	if n > 0 {
		m.sort(0, n-1)
	}

	final := trace.NewArrayState(m.arr)
	final.Sorted = allIndices(n)
	m.rec.Array(trace.EventFinal, mergeDone, "Array is sorted", final)
	return m.rec.Trace()
}

type merger struct {
	arr []float64
	rec *trace.Recorder
}

func (m *merger) state(start, end int) trace.ArrayState {
	st := trace.NewArrayState(m.arr)
	st.Range = &trace.Range{Start: start, End: end}
	return st
}

func (m *merger) sort(start, end int) {
	if start >= end {
		return
	}
	mid := (start + end) / 2

	m.rec.Array(trace.EventDivide, mergeDivideLeft,
		fmt.Sprintf("Dividing left half [%d..%d]", start, mid), m.state(start, mid))
	m.sort(start, mid)

	m.rec.Array(trace.EventDivide, mergeDivideRight,
		fmt.Sprintf("Dividing right half [%d..%d]", mid+1, end), m.state(mid+1, end))
	m.sort(mid+1, end)

	m.merge(start, mid, end)
}

func (m *merger) merge(start, mid, end int) {
	m.rec.Array(trace.EventMerge, mergeMerging,
		fmt.Sprintf("Merging [%d..%d] and [%d..%d]", start, mid, mid+1, end), m.state(start, end))

	left := slices.Clone(m.arr[start : mid+1])
	right := slices.Clone(m.arr[mid+1 : end+1])
	i, j, k := 0, 0, start

	place := func(ev trace.Event, line int, v float64) {
		m.arr[k] = v
		st := m.state(start, end)
		st.Highlight = []int{k}
		m.rec.Array(ev, line, fmt.Sprintf("Placed %s at position %d", num(v), k), st)
		k++
	}

	for i < len(left) && j < len(right) {
		st := m.state(start, end)
		st.Compare = []int{start + i, mid + 1 + j}
		st.Highlight = st.Compare
		m.rec.Array(trace.EventCompare, mergeCompare,
			fmt.Sprintf("Comparing %s and %s", num(left[i]), num(right[j])), st)

		if left[i] <= right[j] {
			place(trace.EventPlace, mergePlace, left[i])
			i++
		} else {
			place(trace.EventPlace, mergePlace, right[j])
			j++
		}
	}
	for ; i < len(left); i++ {
		place(trace.EventPlace, mergeCopyLeft, left[i])
	}
	for ; j < len(right); j++ {
		place(trace.EventPlace, mergeCopyRight, right[j])
	}
}
