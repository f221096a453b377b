package metrics

import (
	"fmt"

	"github.com/san-kum/algoviz/internal/trace"
)

// Series is a per-step numeric projection of a trace, used for plotting.
type Series func(trace.Snapshot) float64

// Cumulative turns a metric into a running series over the trace.
func Cumulative(t trace.Trace, m Metric) []float64 {
	m.Reset()
	out := make([]float64, t.Len())
	for i, s := range t.Snapshots {
		m.Observe(s)
		out[i] = m.Value()
	}
	return out
}

// Project applies fn to every snapshot.
func Project(t trace.Trace, fn Series) []float64 {
	out := make([]float64, t.Len())
	for i, s := range t.Snapshots {
		out[i] = fn(s)
	}
	return out
}

// ValueAt follows array[index] across steps.
func ValueAt(index int) Series {
	return func(s trace.Snapshot) float64 {
		if s.Array == nil || index < 0 || index >= len(s.Array.Values) {
			return 0
		}
		return s.Array.Values[index]
	}
}

func VisitedCount(s trace.Snapshot) float64 {
	if s.Graph == nil {
		return 0
	}
	if s.Kind == trace.KindSpanningTree {
		return float64(len(s.Graph.MSTSet))
	}
	return float64(len(s.Graph.Visited))
}

// SeriesFor picks a named series: "value", "visited" or any metric name.
func SeriesFor(t trace.Trace, name string, index int) ([]float64, error) {
	switch name {
	case "value":
		return Project(t, ValueAt(index)), nil
	case "visited":
		return Project(t, VisitedCount), nil
	}
	for _, m := range Default() {
		if m.Name() == name {
			return Cumulative(t, m), nil
		}
	}
	return nil, fmt.Errorf("metrics: unknown series %q", name)
}
