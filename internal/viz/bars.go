package viz

import (
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/algoviz/internal/trace"
)

var eighths = []rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// barColor picks the colour of index i. Found beats swap beats compare
// beats pivot beats sorted; indices outside the active range are muted.
func barColor(t Theme, st trace.ArrayState, i int) lipgloss.Color {
	switch {
	case i == st.Found:
		return t.Found
	case slices.Contains(st.Swap, i):
		return t.Swap
	case slices.Contains(st.Compare, i), i == st.Mid:
		return t.Compare
	case i == st.Pivot:
		return t.Pivot
	case st.IsSorted(i):
		return t.Sorted
	case outOfRange(st, i):
		return t.Muted
	}
	return t.Idle
}

func outOfRange(st trace.ArrayState, i int) bool {
	if st.Range != nil {
		return i < st.Range.Start || i > st.Range.End
	}
	if st.Low != trace.None && st.High != trace.None {
		return i < st.Low || i > st.High
	}
	return false
}

// RenderBars draws an array snapshot as vertical bars scaled to height
// rows, with values and low/mid/high markers underneath.
func RenderBars(t Theme, st trace.ArrayState, width, height int) string {
	n := len(st.Values)
	if n == 0 {
		return fg(t.Muted).Render("(empty array)")
	}

	cell := max(width/n, 2)
	barW := max(cell-1, 1)
	lo, hi := 0.0, st.Values[0]
	for _, v := range st.Values {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	span := hi - lo
	if span == 0 {
		span = 1
	}

	units := make([]int, n)
	for i, v := range st.Values {
		units[i] = int((v - lo) / span * float64(height*8))
	}

	var b strings.Builder
	for row := height - 1; row >= 0; row-- {
		for i := range st.Values {
			fill := min(max(units[i]-row*8, 0), 8)
			b.WriteString(fg(barColor(t, st, i)).Render(strings.Repeat(string(eighths[fill]), barW)))
			b.WriteString(strings.Repeat(" ", cell-barW))
		}
		b.WriteByte('\n')
	}

	for i, v := range st.Values {
		b.WriteString(fg(barColor(t, st, i)).Render(fit(trace.FormatNumber(v), cell)))
	}
	b.WriteByte('\n')

	if markers := pointerLine(st, cell); strings.TrimSpace(markers) != "" {
		b.WriteString(fg(t.Primary).Render(markers))
		b.WriteByte('\n')
	}
	return strings.TrimRight(b.String(), "\n")
}

// pointerLine marks low, mid, high and pivot under their columns.
func pointerLine(st trace.ArrayState, cell int) string {
	marks := make([]string, len(st.Values))
	add := func(i int, m string) {
		if i >= 0 && i < len(marks) {
			marks[i] += m
		}
	}
	add(st.Low, "L")
	add(st.Mid, "M")
	add(st.High, "H")
	add(st.Pivot, "P")

	var b strings.Builder
	for _, m := range marks {
		b.WriteString(fit(m, cell))
	}
	return b.String()
}

// fit pads or truncates s to exactly w columns.
func fit(s string, w int) string {
	r := []rune(s)
	if len(r) >= w {
		return string(r[:max(w-1, 1)]) + strings.Repeat(" ", w-max(w-1, 1))
	}
	return s + strings.Repeat(" ", w-len(r))
}
