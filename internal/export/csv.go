package export

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/san-kum/algoviz/internal/trace"
)

// WriteCSV writes one row per snapshot. Array traces carry the values and
// highlight sets, graph traces the frontier and distance columns.
func WriteCSV(w io.Writer, t trace.Trace) error {
	cw := csv.NewWriter(w)

	header := []string{"step", "event", "line", "description"}
	if t.Kind.IsArray() {
		header = append(header, "values", "compare", "swap", "sorted")
	} else {
		header = append(header, "current", "visited", "frontier", "distances")
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for i, s := range t.Snapshots {
		row := []string{strconv.Itoa(i), string(s.Event), strconv.Itoa(s.CodeLine), s.Description}
		switch {
		case s.Array != nil:
			a := s.Array
			row = append(row, floats(a.Values), ints(a.Compare), ints(a.Swap), ints(a.Sorted))
		case s.Graph != nil:
			g := s.Graph
			current := ""
			if g.Current != trace.None {
				current = g.Graph.Label(g.Current)
			}
			frontier := g.Queue
			if len(g.Stack) > 0 {
				frontier = g.Stack
			}
			row = append(row, current,
				strings.Join(g.Graph.Labels(g.Visited), " "),
				strings.Join(g.Graph.Labels(frontier), " "),
				floats(g.Distances))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func floats(vs []float64) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = trace.FormatNumber(v)
	}
	return strings.Join(parts, " ")
}

func ints(vs []int) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, " ")
}
