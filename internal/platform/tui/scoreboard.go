package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/blocky/internal/registry"
	"github.com/vovakirdan/blocky/internal/storage"
)

const scoreboardLimit = 100

// Rows taken by everything around the table: title, tabs, stats, detail
// line, help and the table header.
const scoreboardChrome = 10

var (
	sbTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	sbTabStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	sbActiveStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).Padding(0, 1)
	sbDimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

type scoreboardKeys struct {
	Up, Down, Prev, Next, Back, Quit key.Binding
}

func (k scoreboardKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Prev, k.Next, k.Back, k.Quit}
}

func (k scoreboardKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func newScoreboardKeys() scoreboardKeys {
	return scoreboardKeys{
		Up:   key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down: key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Prev: key.NewBinding(key.WithKeys("left", "h", "shift+tab"), key.WithHelp("←/h", "prev goal")),
		Next: key.NewBinding(key.WithKeys("right", "l", "tab"), key.WithHelp("→/l", "next goal")),
		Back: key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
		Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ScoreboardModel lists the stored rounds of one goal at a time, with a
// tab per registered game and a detail line for the highlighted run.
type ScoreboardModel struct {
	store  *storage.Store
	games  []registry.GameInfo
	tab    int
	runs   []storage.ScoreEntry
	stats  *storage.GameStats
	err    error
	table  table.Model
	help   help.Model
	keys   scoreboardKeys
	width  int
	height int

	quitting  bool
	goingBack bool
}

// NewScoreboardModel opens the scoreboard on the first registered game.
// A nil store shows an empty board.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		store:  store,
		games:  registry.List(),
		help:   help.New(),
		keys:   newScoreboardKeys(),
		width:  width,
		height: height,
	}
	m.table = newScoreTable(width, height)
	m.reload()
	return m
}

func newScoreTable(width, height int) table.Model {
	goalW := 14
	if extra := width - 60; extra > 0 {
		goalW += min(extra, 20)
	}
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Rank", Width: 5},
			{Title: "Score", Width: 7},
			{Title: "Depth", Width: 5},
			{Title: "Goal", Width: goalW},
			{Title: "Date", Width: 12},
		}),
		table.WithFocused(true),
		table.WithHeight(max(height-scoreboardChrome, 3)),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

func (m ScoreboardModel) gameID() string {
	if len(m.games) == 0 {
		return ""
	}
	return m.games[m.tab].ID
}

// reload fetches runs and stats for the current tab.
func (m *ScoreboardModel) reload() {
	m.runs, m.stats, m.err = nil, nil, nil
	if m.store != nil && m.gameID() != "" {
		m.runs, m.err = m.store.TopScores(m.gameID(), scoreboardLimit)
		if m.err == nil {
			m.stats, m.err = m.store.GetGameStats(m.gameID())
		}
	}

	rows := make([]table.Row, 0, len(m.runs))
	for i, r := range m.runs {
		rows = append(rows, table.Row{
			"#" + strconv.Itoa(i+1),
			strconv.Itoa(r.Score),
			strconv.Itoa(r.Depth),
			shortGoal(r.Goal),
			r.CreatedAt.Format("Jan 02 15:04"),
		})
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func (m *ScoreboardModel) switchTab(delta int) {
	if len(m.games) < 2 {
		return
	}
	m.tab = (m.tab + delta + len(m.games)) % len(m.games)
	m.reload()
}

// shortGoal trims a goal description to its colour, e.g.
// "Create the largest blob of red" becomes "blob of red".
func shortGoal(desc string) string {
	if desc == "" {
		return "-"
	}
	for _, prefix := range []string{"Create the largest ", "Surround the "} {
		if rest, ok := strings.CutPrefix(desc, prefix); ok {
			return rest
		}
	}
	return desc
}

func (m ScoreboardModel) Init() tea.Cmd { return nil }

func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table = newScoreTable(m.width, m.height)
		m.reload()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			m.switchTab(1)
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.switchTab(-1)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder
	b.WriteString(centerText(sbTitleStyle.Render("HIGH SCORES"), m.width))
	b.WriteString("\n\n")

	tabs := make([]string, len(m.games))
	for i, g := range m.games {
		if i == m.tab {
			tabs[i] = sbActiveStyle.Render(g.Title)
		} else {
			tabs[i] = sbTabStyle.Render(g.Title)
		}
	}
	b.WriteString(centerText(lipgloss.JoinHorizontal(lipgloss.Top, tabs...), m.width))
	b.WriteString("\n\n")

	switch {
	case m.err != nil:
		b.WriteString(sbDimStyle.Render("  cannot load scores: " + m.err.Error()))
		b.WriteString("\n")
	case len(m.runs) == 0:
		b.WriteString(sbDimStyle.Italic(true).Render("  No rounds recorded yet. Finish one to get on the board."))
		b.WriteString("\n")
	default:
		if m.stats != nil {
			b.WriteString(sbDimStyle.Render(fmt.Sprintf("  %d rounds   best %d   average %.1f",
				m.stats.GamesCount, m.stats.HighScore, m.stats.AvgScore)))
			b.WriteString("\n")
		}
		b.WriteString(m.table.View())
		b.WriteString("\n")
		if i := m.table.Cursor(); i >= 0 && i < len(m.runs) {
			r := m.runs[i]
			b.WriteString(sbDimStyle.Render(fmt.Sprintf("  run %s  seed %d", r.RunID, r.Seed)))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// IsGoingBack reports whether the player asked to return to the menu.
func (m ScoreboardModel) IsGoingBack() bool { return m.goingBack }

// IsQuitting reports whether the player asked to leave entirely.
func (m ScoreboardModel) IsQuitting() bool { return m.quitting }

// RunScoreboard shows the scoreboard full screen. goBack is false when the
// player quit instead.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	final, err := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen()).Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ScoreboardModel)
	return ok && m.IsGoingBack(), nil
}
