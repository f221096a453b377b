package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines the colour scheme for the player.
type Theme struct {
	Name    string
	Primary lipgloss.Color
	Text    lipgloss.Color
	Muted   lipgloss.Color

	Idle    lipgloss.Color
	Compare lipgloss.Color
	Swap    lipgloss.Color
	Sorted  lipgloss.Color
	Pivot   lipgloss.Color
	Found   lipgloss.Color
	Current lipgloss.Color
	Visited lipgloss.Color
	Path    lipgloss.Color
}

var (
	ThemeDark = Theme{
		Name:    "dark",
		Primary: lipgloss.Color("#00cccc"),
		Text:    lipgloss.Color("#ffffff"),
		Muted:   lipgloss.Color("#666688"),
		Idle:    lipgloss.Color("#64748b"),
		Compare: lipgloss.Color("#f59e0b"),
		Swap:    lipgloss.Color("#ef4444"),
		Sorted:  lipgloss.Color("#22c55e"),
		Pivot:   lipgloss.Color("#a855f7"),
		Found:   lipgloss.Color("#3b82f6"),
		Current: lipgloss.Color("#f59e0b"),
		Visited: lipgloss.Color("#22c55e"),
		Path:    lipgloss.Color("#3b82f6"),
	}

	ThemeLight = Theme{
		Name:    "light",
		Primary: lipgloss.Color("#0f766e"),
		Text:    lipgloss.Color("#111827"),
		Muted:   lipgloss.Color("#6b7280"),
		Idle:    lipgloss.Color("#9ca3af"),
		Compare: lipgloss.Color("#d97706"),
		Swap:    lipgloss.Color("#dc2626"),
		Sorted:  lipgloss.Color("#16a34a"),
		Pivot:   lipgloss.Color("#7c3aed"),
		Found:   lipgloss.Color("#2563eb"),
		Current: lipgloss.Color("#d97706"),
		Visited: lipgloss.Color("#16a34a"),
		Path:    lipgloss.Color("#2563eb"),
	}

	ThemeRetro = Theme{
		Name:    "retro",
		Primary: lipgloss.Color("#00ff00"),
		Text:    lipgloss.Color("#00ff00"),
		Muted:   lipgloss.Color("#005500"),
		Idle:    lipgloss.Color("#007700"),
		Compare: lipgloss.Color("#ffff00"),
		Swap:    lipgloss.Color("#ff0000"),
		Sorted:  lipgloss.Color("#88ff88"),
		Pivot:   lipgloss.Color("#ff8800"),
		Found:   lipgloss.Color("#00ffff"),
		Current: lipgloss.Color("#ffff00"),
		Visited: lipgloss.Color("#88ff88"),
		Path:    lipgloss.Color("#00ffff"),
	}

	ThemeOcean = Theme{
		Name:    "ocean",
		Primary: lipgloss.Color("#00a8cc"),
		Text:    lipgloss.Color("#e0f0ff"),
		Muted:   lipgloss.Color("#4488aa"),
		Idle:    lipgloss.Color("#0077be"),
		Compare: lipgloss.Color("#ffd700"),
		Swap:    lipgloss.Color("#ff4444"),
		Sorted:  lipgloss.Color("#00ff88"),
		Pivot:   lipgloss.Color("#ff9ff3"),
		Found:   lipgloss.Color("#ffffff"),
		Current: lipgloss.Color("#ffd700"),
		Visited: lipgloss.Color("#00ff88"),
		Path:    lipgloss.Color("#ffffff"),
	}

	Themes = []Theme{ThemeDark, ThemeLight, ThemeRetro, ThemeOcean}
)

// GetTheme returns a theme by name, falling back to dark.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeDark
}

// NextTheme cycles to the theme after t.
func NextTheme(t Theme) Theme {
	for i, th := range Themes {
		if th.Name == t.Name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

func fg(c lipgloss.Color) lipgloss.Style { return lipgloss.NewStyle().Foreground(c) }
