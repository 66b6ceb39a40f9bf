package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/vovakirdan/blocky/internal/core"
	"github.com/vovakirdan/blocky/internal/registry"
	"github.com/vovakirdan/blocky/internal/storage"
)

// Model is the Bubble Tea model for running a single game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	renderer   *ScreenRenderer
	store      *storage.Store
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState

	// inMenu is set when the model runs inside a session that can return to
	// the menu; Back then leaves the game instead of pausing it.
	inMenu     bool
	backToMenu bool
	quitting   bool

	scoreSaved bool // Whether score has been saved for current game over
	lastRun    uuid.UUID
	newBest    bool
	saveErr    error
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	cfg = cfg.WithDefaults()
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		renderer:   NewScreenRenderer(nil),
		store:      store,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
	}
}

// newSessionGameModel creates a game model that can return to the menu.
func newSessionGameModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, r *ScreenRenderer) Model {
	m := NewModel(game, store, cfg)
	m.inMenu = true
	if r != nil {
		m.renderer = r
	}
	return m
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	if action == core.ActionBack {
		switch {
		case m.inMenu && (m.gameState.GameOver || m.gameState.Paused):
			m.backToMenu = true
			return m, nil
		case !m.gameState.GameOver:
			action = core.ActionPause
		}
	}

	if action != core.ActionNone {
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleResize re-fits the game to the new terminal size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(msg.Width, msg.Height)
		return m, nil
	}
	if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.backToMenu || m.quitting {
		return m, nil
	}

	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.scoreSaved = false
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if m.gameState.GameOver && !m.scoreSaved {
		m.saveScore()
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// saveScore records the finished round once. Zero scores are not kept.
func (m *Model) saveScore() {
	m.scoreSaved = true
	if m.store == nil || m.gameState.Score <= 0 {
		return
	}

	run := storage.Run{
		ID:     uuid.New(),
		GameID: m.game.ID(),
		Score:  m.gameState.Score,
	}
	if d, ok := m.game.(registry.Describer); ok {
		info := d.Describe()
		run.Goal = info.Goal
		run.Depth = info.Depth
		run.Seed = info.Seed
	}

	best, err := m.store.HighScore(run.GameID)
	if err != nil {
		m.saveErr = err
		return
	}
	if _, err := m.store.SaveRun(run); err != nil {
		m.saveErr = err
		return
	}
	m.lastRun = run.ID
	m.newBest = run.Score > best
	m.saveErr = nil
}

// saveScreenshot writes the current screen as plain text under
// ~/.blocky/screenshots.
func (m *Model) saveScreenshot() {
	home, err := os.UserHomeDir()
	if err != nil {
		return
	}

	m.screen.Clear()
	m.game.Render(m.screen)

	dir := filepath.Join(home, ".blocky", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)
	return m.renderer.Render(m.screen)
}

// IsQuitting returns true if the user asked to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user asked to return to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Result summarises a finished game program.
type Result struct {
	Score   int
	RunID   uuid.UUID // uuid.Nil when nothing was stored
	NewBest bool      // The stored run beat every earlier one for its game
	SaveErr error
}

// Result reports the last score and the id of the last stored run.
func (m Model) Result() Result {
	return Result{
		Score:   m.gameState.Score,
		RunID:   m.lastRun,
		NewBest: m.newBest,
		SaveErr: m.saveErr,
	}
}

// Run starts the Bubble Tea program for one game.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) (Result, error) {
	model := NewModel(game, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return Result{}, err
	}
	if m, ok := final.(Model); ok {
		return m.Result(), nil
	}
	return Result{}, nil
}
