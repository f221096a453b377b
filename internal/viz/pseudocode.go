package viz

import (
	"fmt"
	"strings"
)

// RenderPseudocode lists code with the active line marked.
func RenderPseudocode(t Theme, code []string, active int) string {
	var b strings.Builder
	for i, line := range code {
		text := fmt.Sprintf("%2d  %s", i, line)
		if i == active {
			b.WriteString(fg(t.Compare).Bold(true).Render("▸ " + text))
		} else {
			b.WriteString(fg(t.Muted).Render("  " + text))
		}
		if i < len(code)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
