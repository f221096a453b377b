// Package sorting generates step-by-step traces of comparison sorts.
//
// Every generator works on a private copy of its input, records one
// snapshot per comparison and per write, and finishes with all indices
// marked sorted. Empty input yields the initial and final snapshots only.
package sorting

import (
	"fmt"
	"slices"

	"github.com/san-kum/algoviz/internal/trace"
)

const (
	bubbleStart   = 0
	bubbleCompare = 3
	bubbleSwap    = 4
	bubbleMark    = 7
	bubbleDone    = 9
)

func Bubble(values []float64) trace.Trace {
	arr := slices.Clone(values)
	n := len(arr)
	rec := trace.NewRecorder("bubble", trace.KindSorting, BubblePseudocode)
	var sorted []int

	state := func() trace.ArrayState {
		st := trace.NewArrayState(arr)
		st.Sorted = sorted
		return st
	}

	rec.Array(trace.EventInit, bubbleStart, "Starting bubble sort", state())

	for i := 0; i < n; i++ {
		for j := 0; j < n-i-1; j++ {
			st := state()
			st.Compare = []int{j, j + 1}
			rec.Array(trace.EventCompare, bubbleCompare,
				fmt.Sprintf("Comparing %s and %s", num(arr[j]), num(arr[j+1])), st)

			if arr[j] > arr[j+1] {
				arr[j], arr[j+1] = arr[j+1], arr[j]
				st := state()
				st.Swap = []int{j, j + 1}
				rec.Array(trace.EventSwap, bubbleSwap,
					fmt.Sprintf("Swapping %s and %s", num(arr[j+1]), num(arr[j])), st)
			}
		}
		k := n - 1 - i
		sorted = append(sorted, k)
		rec.Array(trace.EventMark, bubbleMark,
			fmt.Sprintf("%s is now in its correct position", num(arr[k])), state())
	}

	sorted = allIndices(n)
	rec.Array(trace.EventFinal, bubbleDone, "Array is sorted", state())
	return rec.Trace()
}

func num(v float64) string { return trace.FormatNumber(v) }

func allIndices(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}
