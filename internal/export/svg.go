package export

import (
	"fmt"
	"slices"
	"strings"

	"github.com/san-kum/algoviz/internal/trace"
)

const (
	barIdle    = "#64748b"
	barCompare = "#f59e0b"
	barSwap    = "#ef4444"
	barSorted  = "#22c55e"
	barPivot   = "#a855f7"
	barFound   = "#3b82f6"
)

// ArraySVG draws an array snapshot as a bar chart coloured by its
// highlight sets.
func ArraySVG(st trace.ArrayState, width, height int) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height)

	n := len(st.Values)
	if n == 0 {
		sb.WriteString("</svg>")
		return sb.String()
	}

	lo, hi := 0.0, st.Values[0]
	for _, v := range st.Values {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	span := hi - lo
	if span == 0 {
		span = 1
	}

	pad := 0.1 * float64(height)
	slot := float64(width) / float64(n)
	barW := slot * 0.8
	usable := float64(height) - 2*pad

	for i, v := range st.Values {
		h := (v - lo) / span * usable
		x := float64(i)*slot + (slot-barW)/2
		y := float64(height) - pad - h
		fmt.Fprintf(&sb, `<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"/>
`, x, y, barW, h, barColor(st, i))
		fmt.Fprintf(&sb, `<text x="%.1f" y="%.1f" fill="#e5e7eb" font-size="12" text-anchor="middle">%s</text>
`, x+barW/2, y-4, trace.FormatNumber(v))
	}

	sb.WriteString("</svg>")
	return sb.String()
}

func barColor(st trace.ArrayState, i int) string {
	switch {
	case i == st.Found:
		return barFound
	case slices.Contains(st.Swap, i):
		return barSwap
	case slices.Contains(st.Compare, i):
		return barCompare
	case i == st.Pivot:
		return barPivot
	case st.IsSorted(i):
		return barSorted
	}
	return barIdle
}
