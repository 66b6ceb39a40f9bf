package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/blocky/internal/config"
	"github.com/vovakirdan/blocky/internal/core"
	"github.com/vovakirdan/blocky/internal/games/blocky"
	"github.com/vovakirdan/blocky/internal/games/blocky/palette"
)

// Setup menu rows.
const (
	setupRowDifficulty = iota
	setupRowTarget
	setupRowStart
	setupRows
)

// randomTarget is the label for letting the game pick the goal colour.
const randomTarget = "random"

// BlockySelection holds the settings chosen before a round.
type BlockySelection struct {
	Preset config.DifficultyPreset
	Target string // Colour name, empty for a random colour
}

// Options converts the selection to per-game overrides.
func (s BlockySelection) Options() blocky.Options {
	return blocky.Options{Preset: s.Preset, Target: s.Target}
}

// BlockySetupModel lets users choose difficulty and goal colour.
type BlockySetupModel struct {
	title     string
	presets   []config.DifficultyPreset
	targets   []string
	row       int
	preset    int
	target    int
	width     int
	height    int
	keyMapper *KeyMapper
	choosing  bool
	quitting  bool
	back      bool
}

// NewBlockySetupModel creates the setup screen for the game with the given title.
func NewBlockySetupModel(title string, width, height int) BlockySetupModel {
	targets := []string{randomTarget}
	for _, c := range palette.Colours() {
		targets = append(targets, palette.Name(c))
	}

	presets := config.Presets()
	preset := 0
	for i, p := range presets {
		if p == config.DifficultyNormal {
			preset = i
		}
	}

	return BlockySetupModel{
		title:     title,
		presets:   presets,
		targets:   targets,
		row:       setupRowStart,
		preset:    preset,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		choosing:  true,
	}
}

// Init initializes the model.
func (m BlockySetupModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m BlockySetupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m BlockySetupModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		m.row = (m.row + setupRows - 1) % setupRows
	case MenuActionDown:
		m.row = (m.row + 1) % setupRows
	case MenuActionLeft:
		m.cycle(-1)
	case MenuActionRight:
		m.cycle(1)
	case MenuActionSelect:
		if m.row != setupRowStart {
			m.cycle(1)
			return m, nil
		}
		m.choosing = false
		return m, tea.Quit
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}
	return m, nil
}

// cycle moves the option on the current row by delta, wrapping around.
func (m *BlockySetupModel) cycle(delta int) {
	wrap := func(i, n int) int { return ((i+delta)%n + n) % n }

	switch m.row {
	case setupRowDifficulty:
		m.preset = wrap(m.preset, len(m.presets))
	case setupRowTarget:
		m.target = wrap(m.target, len(m.targets))
	}
}

// presetSummary describes what a preset does to the board.
func presetSummary(p config.DifficultyPreset) string {
	if config.IsFixedPreset(p) {
		return "from config file"
	}
	cfg := config.DefaultBlockyConfig()
	config.ApplyBlockyPreset(&cfg, p)
	return fmt.Sprintf("depth %d, %d moves", cfg.Board.MaxDepth, cfg.Gameplay.Moves)
}

// View renders the setup screen.
func (m BlockySetupModel) View() string {
	if m.quitting || m.back {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(strings.ToUpper(m.title), m.width))
	b.WriteString("\n\n")

	preset := m.presets[m.preset]
	lines := [setupRows]string{
		fmt.Sprintf("Difficulty: < %s >  (%s)", preset, presetSummary(preset)),
		fmt.Sprintf("Goal colour: < %s >", m.targets[m.target]),
		"Start",
	}

	for i, line := range lines {
		cursor := "  "
		if i == m.row {
			cursor = "> "
		}
		b.WriteString(centerText(cursor+line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Up/Down: Row  |  Left/Right: Change  |  Enter: Start  |  Esc: Back", m.width))

	return b.String()
}

// Selected returns the selection, or nil if still choosing.
func (m BlockySetupModel) Selected() *BlockySelection {
	if m.choosing {
		return nil
	}
	sel := BlockySelection{Preset: m.presets[m.preset]}
	if t := m.targets[m.target]; t != randomTarget {
		sel.Target = t
	}
	return &sel
}

// IsQuitting returns true if user wants to quit.
func (m BlockySetupModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m BlockySetupModel) WantsBack() bool {
	return m.back
}

// RunBlockySetup runs the setup screen. A nil selection means the user
// backed out or quit.
func RunBlockySetup(title string, cfg core.RuntimeConfig) (*BlockySelection, error) {
	p := tea.NewProgram(
		NewBlockySetupModel(title, cfg.ScreenW, cfg.ScreenH),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	m, ok := finalModel.(BlockySetupModel)
	if !ok || m.IsQuitting() || m.WantsBack() {
		return nil, nil
	}
	return m.Selected(), nil
}
