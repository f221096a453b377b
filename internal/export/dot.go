package export

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/san-kum/algoviz/internal/graph"
	"github.com/san-kum/algoviz/internal/trace"
)

const (
	colorCurrent = "#f59e0b"
	colorVisited = "#22c55e"
	colorPath    = "#3b82f6"
	colorActive  = "#ef4444"
	colorIdle    = "#e5e7eb"
)

// ToDOT converts one graph snapshot to an undirected Graphviz graph. Node
// fill reflects visit state, edge colour reflects highlight and tree or
// path membership.
func ToDOT(st trace.GraphState) string {
	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fontsize=18, fontname=\"Helvetica\"];\n")
	buf.WriteString("  edge [fontsize=14, fontname=\"Helvetica\"];\n\n")

	for _, n := range st.Graph.Nodes {
		fmt.Fprintf(&buf, "  %q [%s];\n", n.Label, strings.Join(nodeAttrs(st, n), ", "))
	}

	buf.WriteString("\n")
	for _, e := range st.Graph.Edges {
		fmt.Fprintf(&buf, "  %q -- %q [%s];\n",
			st.Graph.Label(e.From), st.Graph.Label(e.To), strings.Join(edgeAttrs(st, e), ", "))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeAttrs(st trace.GraphState, n graph.Node) []string {
	label := n.Label
	if d := distanceOf(st, n.ID); d != "" {
		label += "\n" + d
	}
	fill := colorIdle
	switch {
	case n.ID == st.Current:
		fill = colorCurrent
	case slices.Contains(st.ShortestPath, n.ID):
		fill = colorPath
	case st.IsVisited(n.ID), st.InMST(n.ID):
		fill = colorVisited
	case slices.Contains(st.Highlight, n.ID):
		fill = colorActive
	}
	return []string{fmt.Sprintf("label=%q", label), fmt.Sprintf("fillcolor=%q", fill)}
}

func distanceOf(st trace.GraphState, id int) string {
	switch {
	case id < len(st.Distances):
		return trace.FormatNumber(st.Distances[id])
	case id < len(st.Key):
		return trace.FormatNumber(st.Key[id])
	}
	return ""
}

func edgeAttrs(st trace.GraphState, e graph.Edge) []string {
	attrs := []string{fmt.Sprintf("label=%q", trace.FormatNumber(e.Weight))}
	switch {
	case inTree(st, e):
		attrs = append(attrs, fmt.Sprintf("color=%q", colorPath), "penwidth=3")
	case st.EdgeHighlighted(e.From, e.To):
		attrs = append(attrs, fmt.Sprintf("color=%q", colorActive), "penwidth=3")
	case visitedEdge(st, e):
		attrs = append(attrs, fmt.Sprintf("color=%q", colorVisited), "penwidth=2")
	default:
		attrs = append(attrs, "color=\"#9ca3af\"")
	}
	return attrs
}

func inTree(st trace.GraphState, e graph.Edge) bool {
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
	return false
}

func visitedEdge(st trace.GraphState, e graph.Edge) bool {
	for _, r := range st.VisitedEdges {
		if e.Connects(r.From, r.To) {
			return true
		}
	}
	return false
}

// RenderSVG lays out a DOT graph with Graphviz and returns the SVG.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces Graphviz's pt-sized root element with a
// unitless one so the SVG scales in a browser.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}
	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}
	root := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`, w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(root))
}
