package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/san-kum/algoviz/internal/trace"
)

// RenderDistances tabulates per-node distances and predecessors, hop
// counts for traversals, or keys and parents for spanning-tree snapshots.
// It returns "" when the snapshot carries none of them.
func RenderDistances(t Theme, kind trace.Kind, st trace.GraphState) string {
	values, links, valueHead, linkHead := st.Distances, st.Previous, "Dist", "Prev"
	switch {
	case len(st.Key) > 0:
		values, links, valueHead, linkHead = st.Key, st.Parent, "Key", "Parent"
	case kind == trace.KindTraversal:
		valueHead, linkHead = "Hops", "Parent"
	}
	if len(values) == 0 {
		return ""
	}

	g := st.Graph
	rows := make([][]string, 0, len(values))
	for id, d := range values {
		link := "-"
		if id < len(links) && links[id] != trace.None {
			link = g.Label(links[id])
		}
		rows = append(rows, []string{g.Label(id), trace.FormatNumber(d), link})
	}

	head := lipgloss.NewStyle().Foreground(t.Muted).Bold(true)
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(fg(t.Muted)).
		Headers("Node", valueHead, linkHead).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return head.Padding(0, 1)
			}
			return fg(nodeColor(t, st, row)).Padding(0, 1)
		}).
		Render()
}

// RenderMatrix draws the all-pairs matrix, marking the cell under
// consideration and the pivot row and column.
func RenderMatrix(t Theme, st trace.GraphState) string {
	if len(st.Matrix) == 0 {
		return ""
	}
	g := st.Graph
	headers := append([]string{""}, g.Labels(nodeIDs(len(st.Matrix)))...)
	rows := make([][]string, len(st.Matrix))
	for i, r := range st.Matrix {
		rows[i] = append([]string{g.Label(i)}, formatRow(r)...)
	}

	active := st.ActiveTriplet
	head := lipgloss.NewStyle().Foreground(t.Muted).Bold(true)
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(fg(t.Muted)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			s := lipgloss.NewStyle().Padding(0, 1).Foreground(t.Text)
			switch {
			case row == table.HeaderRow || col == 0:
				return head.Padding(0, 1)
			case active == nil:
				return s
			case row == active.I && col-1 == active.J:
				return s.Foreground(t.Swap).Bold(true)
			case row == active.K || col-1 == active.K:
				return s.Foreground(t.Compare)
			}
			return s
		}).
		Render()
}

// RenderFrontier shows the BFS queue or DFS stack.
func RenderFrontier(t Theme, st trace.GraphState) string {
	name, ids := "Queue", st.Queue
	if len(st.Stack) > 0 {
		name, ids = "Stack", st.Stack
	}
	if len(ids) == 0 && len(st.DiscoveryOrder) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(fg(t.Muted).Render(name+": ") + fg(t.Compare).Render("["+strings.Join(st.Graph.Labels(ids), " ")+"]"))
	if len(st.DiscoveryOrder) > 0 {
		b.WriteString("\n" + fg(t.Muted).Render("Order: ") +
			fg(t.Visited).Render(strings.Join(st.Graph.Labels(st.DiscoveryOrder), " → ")))
	}
	return b.String()
}

func nodeIDs(n int) []int {
	ids := make([]int, n)
	for i := range ids {
		ids[i] = i
	}
	return ids
}

func formatRow(r trace.Distances) []string {
	out := make([]string, len(r))
	for i, d := range r {
		out[i] = trace.FormatNumber(d)
	}
	return out
}
