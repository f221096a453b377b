package viz

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/algoviz/internal/catalog"
	"github.com/san-kum/algoviz/internal/config"
	"github.com/san-kum/algoviz/internal/player"
)

const (
	stateMenu = iota
	statePlay
)

var familyInfo = map[string]string{
	"sorting": "array sorting", "searching": "sorted-array search", "traversal": "graph traversal",
	"shortest-path": "single-source paths", "all-pairs": "all-pairs paths", "spanning-tree": "minimum spanning tree",
}

// Menu lists the catalog; choosing an entry generates a run from the
// base config and opens it in a player. Esc returns to the list.
type Menu struct {
	ctx      context.Context
	registry *catalog.Registry
	base     config.Config
	player   *player.Player
	theme    Theme

	state  int
	cursor int
	items  []catalog.Info
	live   Model
	err    error
	width  int
	height int
}

func NewMenu(ctx context.Context, reg *catalog.Registry, base *config.Config, p *player.Player) *Menu {
	return &Menu{
		ctx:      ctx,
		registry: reg,
		base:     *base,
		player:   p,
		theme:    GetTheme(base.Theme),
		items:    reg.List(),
	}
}

func (m Menu) Init() tea.Cmd { return nil }

func (m Menu) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case tea.KeyMsg:
		if m.state == stateMenu {
			return m.menuKey(msg)
		}
		if msg.String() == "esc" {
			m.player.Pause()
			m.theme = m.live.Theme()
			m.state = stateMenu
			return m, nil
		}
	}
	if m.state == statePlay {
		next, cmd := m.live.Update(msg)
		m.live = next.(Model)
		return m, cmd
	}
	return m, nil
}

func (m Menu) menuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case "t":
		m.theme = NextTheme(m.theme)
	case "enter", " ":
		return m.open(m.items[m.cursor])
	}
	return m, nil
}

func (m Menu) open(info catalog.Info) (tea.Model, tea.Cmd) {
	cfg := m.base
	cfg.Algorithm = info.Name
	req, err := cfg.Request()
	if err == nil {
		var run *catalog.Run
		if run, err = m.registry.Generate(m.ctx, req); err == nil {
			m.live = NewModel(m.player, run, info.Title, m.theme)
			if m.width > 0 {
				next, _ := m.live.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
				m.live = next.(Model)
			}
			m.state, m.err = statePlay, nil
			return m, nil
		}
	}
	m.err = err
	return m, nil
}

func (m Menu) View() string {
	if m.state == statePlay {
		return m.live.View() + "\n" + fg(m.theme.Muted).Italic(true).Render("esc back to menu")
	}
	t := m.theme
	var b strings.Builder
	b.WriteString("\n\n    " + fg(t.Primary).Bold(true).Render("ALGOVIZ") + "\n    " + fg(t.Muted).Render("step-by-step algorithm playback") + "\n    " + fg(t.Muted).Render("──────────────────────────────") + "\n\n")
	for i, info := range m.items {
		desc := familyInfo[string(info.Kind)]
		if i == m.cursor {
			b.WriteString(fmt.Sprintf("    %s %s  %s\n", fg(t.Primary).Bold(true).Render("▸"), fg(t.Text).Bold(true).Render(fmt.Sprintf("%-22s", info.Title)), fg(t.Pivot).Render(desc)))
		} else {
			b.WriteString(fmt.Sprintf("    %s  %s\n", fg(t.Muted).Render(fmt.Sprintf("  %-22s", info.Title)), fg(t.Muted).Render(desc)))
		}
	}
	if m.err != nil {
		b.WriteString("\n    " + fg(t.Swap).Bold(true).Render("error: "+m.err.Error()) + "\n")
	}
	b.WriteString("\n    " + fg(t.Primary).Bold(true).Render("j/k") + fg(t.Muted).Render(" navigate  ") + fg(t.Primary).Bold(true).Render("enter") + fg(t.Muted).Render(" select  ") + fg(t.Primary).Bold(true).Render("t") + fg(t.Muted).Render(" theme  ") + fg(t.Primary).Bold(true).Render("q") + fg(t.Muted).Render(" quit") + "\n")
	return b.String()
}
