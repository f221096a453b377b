// Package metrics derives counters from a trace by classifying each
// snapshot's event.
package metrics

import (
	"slices"

	"github.com/san-kum/algoviz/internal/trace"
)

type Metric interface {
	Name() string
	Observe(s trace.Snapshot)
	Value() float64
	Reset()
}

// Counter counts snapshots whose event is one of events.
type Counter struct {
	name   string
	events []trace.Event
	count  int
}

func NewCounter(name string, events ...trace.Event) *Counter {
	return &Counter{name: name, events: events}
}

func (c *Counter) Name() string { return c.name }

func (c *Counter) Observe(s trace.Snapshot) {
	if slices.Contains(c.events, s.Event) {
		c.count++
	}
}

func (c *Counter) Value() float64 { return float64(c.count) }

func (c *Counter) Reset() { c.count = 0 }

func Comparisons() *Counter {
	return NewCounter("comparisons", trace.EventCompare, trace.EventCheck)
}

// Writes counts swaps and merge placements.
func Writes() *Counter {
	return NewCounter("writes", trace.EventSwap, trace.EventPlace)
}

func Visits() *Counter {
	return NewCounter("visits", trace.EventVisit, trace.EventDequeue)
}

func Relaxations() *Counter {
	return NewCounter("relaxations", trace.EventRelax)
}

// MSTDecisions counts edges accepted or rejected while building a tree.
func MSTDecisions() *Counter {
	return NewCounter("mst_decisions", trace.EventAdd, trace.EventSkip)
}

// FrontierPeak tracks the largest queue or stack seen.
type FrontierPeak struct {
	peak int
}

func (f *FrontierPeak) Name() string { return "frontier_peak" }

func (f *FrontierPeak) Observe(s trace.Snapshot) {
	if s.Graph == nil {
		return
	}
	f.peak = max(f.peak, len(s.Graph.Queue), len(s.Graph.Stack))
}

func (f *FrontierPeak) Value() float64 { return float64(f.peak) }

func (f *FrontierPeak) Reset() { f.peak = 0 }

// Default returns the counters reported for every trace.
func Default() []Metric {
	return []Metric{Comparisons(), Writes(), Visits(), Relaxations(), MSTDecisions(), &FrontierPeak{}}
}

// Result is one named metric value.
type Result struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// Collect resets ms, feeds them every snapshot of t and returns their
// values in order. Default() is used when ms is empty.
func Collect(t trace.Trace, ms ...Metric) []Result {
	if len(ms) == 0 {
		ms = Default()
	}
	for _, m := range ms {
		m.Reset()
	}
	for _, s := range t.Snapshots {
		for _, m := range ms {
			m.Observe(s)
		}
	}
	out := make([]Result, len(ms))
	for i, m := range ms {
		out[i] = Result{Name: m.Name(), Value: m.Value()}
	}
	return out
}
