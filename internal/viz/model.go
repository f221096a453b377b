package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/algoviz/internal/catalog"
	"github.com/san-kum/algoviz/internal/metrics"
	"github.com/san-kum/algoviz/internal/player"
	"github.com/san-kum/algoviz/internal/trace"
)

const (
	defaultWidth  = 100
	defaultHeight = 30
)

type tickMsg struct{ seq int }

// RunMsg replaces the trace on screen, resetting the cursor. Title
// defaults to the algorithm name.
type RunMsg struct {
	Run   *catalog.Run
	Title string
}

// ErrMsg reports a failure without leaving the player; the current trace
// stays on screen.
type ErrMsg struct{ Err error }

// Model plays one run in the terminal. The player must use an external
// clock; Model schedules its ticks.
type Model struct {
	player *player.Player
	run    *catalog.Run
	title  string

	theme  Theme
	styles styles

	series     []float64
	seriesName string

	width, height int
	showHelp      bool
	ticking       bool
	tickSeq       int
	err           error
}

func NewModel(p *player.Player, run *catalog.Run, title string, theme Theme) Model {
	m := Model{
		player: p,
		theme:  theme,
		styles: newStyles(theme),
		width:  defaultWidth,
		height: defaultHeight,
	}
	m.load(run, title)
	return m
}

func (m *Model) load(run *catalog.Run, title string) {
	m.run = run
	if title == "" {
		title = run.Algorithm
	}
	m.title = title
	m.player.Load(run.ID, run.Trace)
	m.seriesName, m.series = progressSeries(run.Trace)
	m.ticking = false
	m.tickSeq++
}

// progressSeries picks the running counter charted under the view.
func progressSeries(t trace.Trace) (string, []float64) {
	var m metrics.Metric
	switch t.Kind {
	case trace.KindSorting, trace.KindSearching:
		m = metrics.Comparisons()
	case trace.KindTraversal:
		return "visited", metrics.Project(t, metrics.VisitedCount)
	case trace.KindSpanningTree:
		m = metrics.MSTDecisions()
	default:
		m = metrics.Relaxations()
	}
	return m.Name(), metrics.Cumulative(t, m)
}

func (m Model) Init() tea.Cmd { return nil }

func (m *Model) scheduleTick() tea.Cmd {
	m.tickSeq++
	m.ticking = true
	seq := m.tickSeq
	return tea.Tick(m.player.State().Speed, func(time.Time) tea.Msg { return tickMsg{seq: seq} })
}

// Update handles keys and clock ticks.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case tickMsg:
		if msg.seq != m.tickSeq || !m.ticking {
			return m, nil
		}
		m.player.Tick()
		if m.player.IsPlaying() {
			cmd := m.scheduleTick()
			return m, cmd
		}
		m.ticking = false
	case RunMsg:
		m.load(msg.Run, msg.Title)
		m.err = nil
	case ErrMsg:
		m.err = msg.Err
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	p := m.player
	switch msg.String() {
	case "q", "ctrl+c":
		p.Pause()
		return m, tea.Quit
	case " ":
		p.TogglePlay()
		if p.IsPlaying() {
			cmd := m.scheduleTick()
			return m, cmd
		}
		m.ticking = false
	case "left", "h":
		p.Prev()
	case "right", "l":
		p.Next()
	case "g", "home":
		p.JumpTo(0)
	case "G", "end":
		p.JumpTo(p.TotalSteps() - 1)
	case "r":
		p.Reset()
	case "+", "=":
		return m.setSpeed(p.State().Speed / 2)
	case "-", "_":
		return m.setSpeed(p.State().Speed * 2)
	case "t":
		m.theme = NextTheme(m.theme)
		m.styles = newStyles(m.theme)
	case "?":
		m.showHelp = !m.showHelp
	}
	if !p.IsPlaying() {
		m.ticking = false
	}
	return m, nil
}

func (m Model) setSpeed(d time.Duration) (tea.Model, tea.Cmd) {
	m.player.SetSpeed(d)
	if m.player.IsPlaying() {
		cmd := m.scheduleTick()
		return m, cmd
	}
	return m, nil
}

func (m Model) Player() *player.Player { return m.player }

func (m Model) Run() *catalog.Run { return m.run }

func (m Model) Theme() Theme { return m.theme }

// View renders the visualization, pseudocode and status panes.
func (m Model) View() string {
	st := m.player.State()
	snap, _, ok := m.player.Current()
	if !ok {
		return m.styles.muted.Render("no trace loaded")
	}
	s := m.styles

	status := s.paused.Render(strings.ToUpper(st.Phase.String()))
	if st.IsPlaying {
		status = s.playing.Render("PLAYING")
	}
	header := s.header.Render(strings.ToUpper(m.title)) + "  " + status + "  " +
		s.muted.Render(fmt.Sprintf("step %d/%d  %s/step", st.Step+1, st.TotalSteps, st.Speed))

	visual := m.renderSnapshot(snap)
	code := s.panel.Render(RenderPseudocode(m.theme, m.player.Trace().Pseudocode, snap.CodeLine))
	main := lipgloss.JoinHorizontal(lipgloss.Top, s.panel.Render(visual), " ", code)

	var b strings.Builder
	b.WriteString(header + "\n\n")
	b.WriteString(main + "\n")
	b.WriteString(s.value.Render(snap.Description) + "\n")
	if flag := flagLine(snap); flag != "" {
		b.WriteString(s.errorMsg.Render(flag) + "\n")
	}
	b.WriteString(ProgressBar(m.theme, st.Progress, 40) + s.muted.Render(fmt.Sprintf(" %5.1f%%", st.Progress)) + "\n")
	if chart := m.chart(st.Step); chart != "" {
		b.WriteString(fg(m.theme.Primary).Render(chart) + "\n")
	}
	if m.err != nil {
		b.WriteString(s.errorMsg.Render("error: "+m.err.Error()) + "\n")
	}
	if m.showHelp {
		b.WriteString("\n" + helpText + "\n")
	}
	b.WriteString(s.keyHint.Render("space play  ←/→ step  g/G ends  r reset  +/- speed  t theme  ? help  q quit"))
	return b.String()
}

func (m Model) renderSnapshot(snap trace.Snapshot) string {
	w := max(m.width/2, 30)
	h := max(m.height/3, 8)
	switch {
	case snap.Array != nil:
		out := RenderBars(m.theme, *snap.Array, w, h)
		if snap.Array.Target != nil {
			out += "\n" + m.styles.muted.Render("target: "+trace.FormatNumber(*snap.Array.Target))
		}
		return out
	case snap.Graph != nil:
		parts := []string{RenderGraph(m.theme, *snap.Graph, w, h)}
		if f := RenderFrontier(m.theme, *snap.Graph); f != "" {
			parts = append(parts, f)
		}
		side := RenderDistances(m.theme, snap.Kind, *snap.Graph)
		if mx := RenderMatrix(m.theme, *snap.Graph); mx != "" {
			side = mx
		}
		view := strings.Join(parts, "\n")
		if side != "" {
			view = lipgloss.JoinHorizontal(lipgloss.Top, view, " ", side)
		}
		return view
	}
	return ""
}

func (m Model) chart(step int) string {
	if step+1 < 2 || step >= len(m.series) {
		return ""
	}
	return asciigraph.Plot(m.series[:step+1],
		asciigraph.Height(4), asciigraph.Width(40), asciigraph.Caption(m.seriesName))
}

func flagLine(s trace.Snapshot) string {
	if s.Graph == nil {
		return ""
	}
	switch {
	case s.Graph.NegativeCycle:
		return "negative cycle reachable from the start node"
	case s.Graph.Disconnected:
		return "graph is disconnected"
	case s.Graph.Unreachable:
		return "end node is unreachable"
	}
	return ""
}

const helpText = `╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  Space    - Play/Pause               ║
║  ←/h →/l  - Previous/next step       ║
║  g / G    - First/last step          ║
║  R        - Reset                    ║
║  + / -    - Faster/slower            ║
║  T        - Cycle themes             ║
║  ?        - Toggle this help         ║
║  Q        - Quit                     ║
╚══════════════════════════════════════╝`

// NewProgram wraps a model in a full-screen Bubble Tea program.
func NewProgram(m tea.Model, opts ...tea.ProgramOption) *tea.Program {
	return tea.NewProgram(m, append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)...)
}
