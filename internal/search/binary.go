// Package search generates binary search traces.
package search

import (
	"fmt"
	"slices"

	"github.com/san-kum/algoviz/internal/trace"
)

// MaxIterations bounds the search loop.
const MaxIterations = 100

var BinaryPseudocode = []string{
	"START sort array; low = 0, high = n - 1",
	"WHILE low <= high",
	"  mid = floor((low + high) / 2)",
	"  IF arr[mid] == target THEN",
	"    RETURN mid",
	"  ELSE IF arr[mid] < target THEN",
	"    low = mid + 1",
	"  ELSE",
	"    high = mid - 1",
	"RETURN -1 (not found)",
}

const (
	binaryStart    = 0
	binaryRange    = 2
	binaryCompare  = 3
	binaryFound    = 4
	binaryRight    = 6
	binaryLeft     = 8
	binaryNotFound = 9
)

// Binary searches a sorted copy of values for target.
func Binary(values []float64, target float64) trace.Trace {
	arr := slices.Clone(values)
	slices.Sort(arr)
	n := len(arr)
	rec := trace.NewRecorder("binary", trace.KindSearching, BinaryPseudocode)

	low, high := 0, n-1
	sorted := make([]int, n)
	for i := range sorted {
		sorted[i] = i
	}

	state := func(mid int) trace.ArrayState {
		st := trace.NewArrayState(arr)
		st.Sorted = sorted
		st.Low, st.High, st.Mid = low, high, mid
		st.Target = &target
		if low <= high {
			st.Highlight = make([]int, 0, high-low+1)
			for i := low; i <= high; i++ {
				st.Highlight = append(st.Highlight, i)
			}
		}
		return st
	}

	rec.Array(trace.EventInit, binaryStart,
		fmt.Sprintf("Searching for %s in the sorted array", num(target)), state(trace.None))

	for it := 0; low <= high && it < MaxIterations; it++ {
		mid := low + (high-low)/2
		rec.Array(trace.EventRange, binaryRange,
			fmt.Sprintf("Searching range [%d..%d], middle index %d", low, high, mid), state(mid))

		st := state(mid)
		st.Compare = []int{mid}
		rec.Array(trace.EventCompare, binaryCompare,
			fmt.Sprintf("Comparing arr[%d] = %s with target %s", mid, num(arr[mid]), num(target)), st)

		switch {
		case arr[mid] == target:
			st := state(mid)
			st.Found = mid
			rec.Array(trace.EventFound, binaryFound,
				fmt.Sprintf("Found %s at index %d", num(target), mid), st)
			return rec.Trace()
		case arr[mid] < target:
			low = mid + 1
			rec.Array(trace.EventNarrow, binaryRight,
				fmt.Sprintf("%s < %s, searching right half", num(arr[mid]), num(target)), state(mid))
		default:
			high = mid - 1
			rec.Array(trace.EventNarrow, binaryLeft,
				fmt.Sprintf("%s > %s, searching left half", num(arr[mid]), num(target)), state(mid))
		}
	}

	rec.Array(trace.EventNotFound, binaryNotFound,
		fmt.Sprintf("%s not found in the array", num(target)), state(trace.None))
	return rec.Trace()
}

func num(v float64) string { return trace.FormatNumber(v) }
