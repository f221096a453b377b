// Package trace defines the snapshot model shared by every algorithm.
//
// A [Trace] is a finite, ordered, non-empty list of [Snapshot] values built
// once by a generator and never mutated afterwards. Each snapshot carries a
// narration, the active pseudocode line and exactly one payload selected by
// its [Kind]:
//
//   - [ArrayState]: sorting and searching
//   - [GraphState]: traversal, shortest paths and spanning trees
//
// Snapshots own deep copies of all their containers. A [Recorder] clones
// every snapshot it is given, so generators may hand it their live working
// slices.
package trace
