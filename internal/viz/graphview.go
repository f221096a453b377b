package viz

import (
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/algoviz/internal/graph"
	"github.com/san-kum/algoviz/internal/trace"
)

type overlay struct {
	r     rune
	color lipgloss.Color
}

type cellPos struct{ col, row int }

// graphView projects node coordinates onto a canvas of cols x rows cells.
type graphView struct {
	cols, rows int
	minX, minY float64
	sx, sy     float64
}

func newGraphView(g graph.Graph, cols, rows int) graphView {
	v := graphView{cols: cols, rows: rows, sx: 1, sy: 1}
	if len(g.Nodes) == 0 {
		return v
	}
	minX, maxX := g.Nodes[0].X, g.Nodes[0].X
	minY, maxY := g.Nodes[0].Y, g.Nodes[0].Y
	for _, n := range g.Nodes {
		minX, maxX = min(minX, n.X), max(maxX, n.X)
		minY, maxY = min(minY, n.Y), max(maxY, n.Y)
	}
	v.minX, v.minY = minX, minY
	if maxX > minX {
		v.sx = float64(cols*2-8) / (maxX - minX)
	}
	if maxY > minY {
		v.sy = float64(rows*4-8) / (maxY - minY)
	}
	return v
}

// dot returns the Braille dot position of a node.
func (v graphView) dot(n graph.Node) (int, int) {
	return 4 + int((n.X-v.minX)*v.sx), 4 + int((n.Y-v.minY)*v.sy)
}

func (v graphView) cell(n graph.Node) cellPos {
	x, y := v.dot(n)
	return cellPos{x / 2, y / 4}
}

// RenderGraph draws a graph snapshot: edges as Braille lines, tree and
// highlighted edges in their own colours, nodes as coloured labels and
// edge weights at the midpoints.
func RenderGraph(t Theme, st trace.GraphState, cols, rows int) string {
	g := st.Graph
	view := newGraphView(g, cols, rows)
	base, tree, hot := NewCanvas(cols, rows), NewCanvas(cols, rows), NewCanvas(cols, rows)

	labels := make(map[cellPos]overlay)
	for _, e := range g.Edges {
		if e.From == e.To {
			continue
		}
		a, b := g.Nodes[e.From], g.Nodes[e.To]
		x0, y0 := view.dot(a)
		x1, y1 := view.dot(b)

		target := base
		switch {
		case edgeInTree(st, e):
			target = tree
		case st.EdgeHighlighted(e.From, e.To):
			target = hot
		}
		target.DrawLine(x0, y0, x1, y1)

		mid := cellPos{(x0 + x1) / 4, (y0 + y1) / 8}
		for i, r := range trace.FormatNumber(e.Weight) {
			labels[cellPos{mid.col + i, mid.row}] = overlay{r, t.Muted}
		}
	}

	for _, n := range g.Nodes {
		pos := view.cell(n)
		color := nodeColor(t, st, n.ID)
		for i, r := range n.Label {
			labels[cellPos{pos.col + i, pos.row}] = overlay{r, color}
		}
	}

	var b strings.Builder
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			pos := cellPos{col, row}
			if o, ok := labels[pos]; ok {
				b.WriteString(fg(o.color).Bold(true).Render(string(o.r)))
				continue
			}
			switch {
			case hot.Lit(col, row):
				b.WriteString(fg(t.Swap).Render(string(hot.Grid[row][col] | base.Grid[row][col] | tree.Grid[row][col])))
			case tree.Lit(col, row):
				b.WriteString(fg(t.Path).Render(string(tree.Grid[row][col] | base.Grid[row][col])))
			case base.Lit(col, row):
				b.WriteString(fg(t.Muted).Render(string(base.Grid[row][col])))
			default:
				b.WriteByte(' ')
			}
		}
		b.WriteByte('\n')
	}
	return strings.TrimRight(b.String(), "\n")
}

func nodeColor(t Theme, st trace.GraphState, id int) lipgloss.Color {
	switch {
	case id == st.Current:
		return t.Current
	case slices.Contains(st.ShortestPath, id):
		return t.Path
	case slices.Contains(st.Highlight, id):
		return t.Compare
	case st.IsVisited(id), st.InMST(id):
		return t.Visited
	}
	return t.Text
}

// edgeInTree reports membership in the MST, the final shortest path or the
// traversal tree.
func edgeInTree(st trace.GraphState, e graph.Edge) bool {
	for _, m := range st.MSTEdges {
		if m.Connects(e.From, e.To) {
			return true
		}
	}
	for i := 1; i < len(st.ShortestPath); i++ {
		if e.Connects(st.ShortestPath[i-1], st.ShortestPath[i]) {
			return true
		}
	}
	for _, r := range st.VisitedEdges {
		if e.Connects(r.From, r.To) {
			return true
		}
	}
	return false
}
