package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// styles are the lipgloss styles derived from one theme.
type styles struct {
	header   lipgloss.Style
	panel    lipgloss.Style
	label    lipgloss.Style
	value    lipgloss.Style
	muted    lipgloss.Style
	active   lipgloss.Style
	playing  lipgloss.Style
	paused   lipgloss.Style
	keyHint  lipgloss.Style
	errorMsg lipgloss.Style
}

func newStyles(t Theme) styles {
	return styles{
		header:   lipgloss.NewStyle().Bold(true).Foreground(t.Primary).BorderStyle(lipgloss.NormalBorder()).BorderBottom(true).BorderForeground(t.Muted),
		panel:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(t.Muted).Padding(0, 1),
		label:    lipgloss.NewStyle().Foreground(t.Muted).Width(12),
		value:    lipgloss.NewStyle().Foreground(t.Text),
		muted:    lipgloss.NewStyle().Foreground(t.Muted),
		active:   lipgloss.NewStyle().Bold(true).Foreground(t.Compare),
		playing:  lipgloss.NewStyle().Bold(true).Foreground(t.Sorted),
		paused:   lipgloss.NewStyle().Bold(true).Foreground(t.Compare),
		keyHint:  lipgloss.NewStyle().Foreground(t.Muted).Italic(true),
		errorMsg: lipgloss.NewStyle().Bold(true).Foreground(t.Swap),
	}
}

// ProgressBar renders a bar of width cells filled to percent (0-100).
func ProgressBar(t Theme, percent float64, width int) string {
	filled := int(percent / 100 * float64(width))
	filled = max(0, min(filled, width))
	return fg(t.Primary).Render(strings.Repeat("█", filled)) +
		fg(t.Muted).Render(strings.Repeat("░", width-filled))
}

func Separator(t Theme, width int) string {
	mid := width / 2
	left := strings.Repeat("─", max(mid-3, 0))
	right := strings.Repeat("─", max(width-mid-3, 0))
	return fg(t.Muted).Render(left + " ◆ " + right)
}
