package trace

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyTrace = errors.New("trace: no snapshots")

	// ErrBadCodeLine indicates a snapshot pointing outside the pseudocode.
	ErrBadCodeLine = errors.New("trace: code line out of range")

	// ErrPayloadMismatch indicates a snapshot whose payload does not match its kind.
	ErrPayloadMismatch = errors.New("trace: payload does not match kind")
)

// Kind tags the algorithm family of a snapshot and selects its payload.
type Kind string

const (
	KindSorting      Kind = "sorting"
	KindSearching    Kind = "searching"
	KindTraversal    Kind = "traversal"
	KindShortestPath Kind = "shortest-path"
	KindAllPairs     Kind = "all-pairs"
	KindSpanningTree Kind = "spanning-tree"
)

// IsArray reports whether snapshots of this kind carry an ArrayState.
func (k Kind) IsArray() bool {
	return k == KindSorting || k == KindSearching
}

// Event classifies what happened at a snapshot.
type Event string

const (
	EventInit     Event = "init"
	EventCompare  Event = "compare"
	EventSwap     Event = "swap"
	EventPlace    Event = "place"
	EventMark     Event = "mark"
	EventDivide   Event = "divide"
	EventMerge    Event = "merge"
	EventPivot    Event = "pivot"
	EventRange    Event = "range"
	EventFound    Event = "found"
	EventNarrow   Event = "narrow"
	EventEnqueue  Event = "enqueue"
	EventDequeue  Event = "dequeue"
	EventVisit    Event = "visit"
	EventCheck    Event = "check"
	EventPop      Event = "pop"
	EventPass     Event = "pass"
	EventRelax    Event = "relax"
	EventAdd      Event = "add"
	EventSkip     Event = "skip"
	EventFinal    Event = "final"
	EventNotFound Event = "not-found"
)

type Snapshot struct {
	Description string      `json:"description"`
	CodeLine    int         `json:"codeLine"`
	Kind        Kind        `json:"kind"`
	Event       Event       `json:"event"`
	Array       *ArrayState `json:"array,omitempty"`
	Graph       *GraphState `json:"graph,omitempty"`
}

func (s Snapshot) Clone() Snapshot {
	c := s
	if s.Array != nil {
		a := s.Array.Clone()
		c.Array = &a
	}
	if s.Graph != nil {
		g := s.Graph.Clone()
		c.Graph = &g
	}
	return c
}

type Trace struct {
	Algorithm  string     `json:"algorithm"`
	Kind       Kind       `json:"kind"`
	Pseudocode []string   `json:"pseudocode"`
	Snapshots  []Snapshot `json:"snapshots"`
}

func (t Trace) Len() int { return len(t.Snapshots) }

// At returns a copy of snapshot i.
func (t Trace) At(i int) (Snapshot, bool) {
	if i < 0 || i >= len(t.Snapshots) {
		return Snapshot{}, false
	}
	return t.Snapshots[i].Clone(), true
}

func (t Trace) Final() Snapshot {
	if len(t.Snapshots) == 0 {
		return Snapshot{}
	}
	return t.Snapshots[len(t.Snapshots)-1].Clone()
}

// Line returns the pseudocode text active at snapshot i.
func (t Trace) Line(i int) string {
	if i < 0 || i >= len(t.Snapshots) {
		return ""
	}
	l := t.Snapshots[i].CodeLine
	if l < 0 || l >= len(t.Pseudocode) {
		return ""
	}
	return t.Pseudocode[l]
}

// Validate checks the structural invariants every generator must uphold.
func (t Trace) Validate() error {
	if len(t.Snapshots) == 0 {
		return ErrEmptyTrace
	}
	for i, s := range t.Snapshots {
		if s.CodeLine < 0 || s.CodeLine >= len(t.Pseudocode) {
			return fmt.Errorf("%w: snapshot %d line %d", ErrBadCodeLine, i, s.CodeLine)
		}
		if s.Kind.IsArray() != (s.Array != nil) || s.Kind.IsArray() == (s.Graph != nil) {
			return fmt.Errorf("%w: snapshot %d", ErrPayloadMismatch, i)
		}
	}
	return nil
}

// Events lists the event of every snapshot in order.
func (t Trace) Events() []Event {
	out := make([]Event, len(t.Snapshots))
	for i, s := range t.Snapshots {
		out[i] = s.Event
	}
	return out
}
