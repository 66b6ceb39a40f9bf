// Package blocky implements the Blocky puzzle as an arcade game: the player
// rearranges a randomly generated quadtree board with a limited number of
// moves to maximise a colour goal.
package blocky

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/blocky/internal/config"
	"github.com/vovakirdan/blocky/internal/core"
	"github.com/vovakirdan/blocky/internal/games/blocky/board"
	"github.com/vovakirdan/blocky/internal/games/blocky/goal"
	"github.com/vovakirdan/blocky/internal/games/blocky/palette"
	"github.com/vovakirdan/blocky/internal/registry"
)

// Round states
const (
	StatePlaying  = "playing"
	StatePaused   = "paused"
	StateGameOver = "gameover"
)

// Screen rows reserved above and below the board.
const (
	hudRows    = 2
	footerRows = 2
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it so
// the preset from the config file applies.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		difficultyPreset = ""
		return
	}
	difficultyPreset = p
}

// Options override the loaded configuration for a single game, so that
// concurrent sessions can pick their own settings.
type Options struct {
	Preset config.DifficultyPreset
	Target string // Colour name; empty keeps the configured target
}

// Game is one Blocky round.
type Game struct {
	kind goal.Kind
	opts Options

	runtime core.RuntimeConfig
	cfg     config.BlockyConfig
	rng     *rand.Rand

	root     *board.Block
	goal     goal.Goal
	selected *board.Block

	// Cursor in unit cells, and the level being selected.
	cursorCol int
	cursorRow int
	level     int

	state     string
	score     int
	movesLeft int
	tick      uint64
	status    string

	// Layout (computed from screen size)
	unit     int // Board units per unit cell
	originX  int
	originY  int
	tooSmall bool
}

// New creates a Blocky game scored by the largest blob.
func New() *Game {
	return &Game{kind: goal.KindBlob}
}

// NewPerimeter creates a Blocky game scored by the perimeter.
func NewPerimeter() *Game {
	return &Game{kind: goal.KindPerimeter}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.kind == goal.KindPerimeter {
		return "blocky_perimeter"
	}
	return "blocky"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.kind == goal.KindPerimeter {
		return "Blocky (Perimeter)"
	}
	return "Blocky"
}

// Configure sets per-game overrides used by the next Reset.
func (g *Game) Configure(opts Options) {
	g.opts = opts
}

// Reset generates a new board and starts a fresh round.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadBlocky(configPath)
	if err != nil {
		cfg = config.DefaultBlockyConfig()
	}
	preset := difficultyPreset
	if g.opts.Preset != "" {
		preset = g.opts.Preset
	}
	if preset != "" {
		config.ApplyBlockyPreset(&cfg, preset)
	}
	if g.opts.Target != "" {
		cfg.Gameplay.Target = g.opts.Target
	}
	g.cfg = cfg

	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.root = board.Generate(g.rng, 0, cfg.Board.MaxDepth)
	g.goal = goal.New(g.kind, g.targetColour())

	g.cursorCol, g.cursorRow = 0, 0
	g.level = 0
	g.state = StatePlaying
	g.movesLeft = cfg.Gameplay.Moves
	g.tick = 0
	g.status = ""

	g.layout(runtime.ScreenW, runtime.ScreenH)
	g.refresh()
}

// targetColour returns the configured target, or a random playable colour.
func (g *Game) targetColour() palette.Colour {
	if c, ok := palette.Parse(g.cfg.Gameplay.Target); ok && palette.Index(c) >= 0 {
		return c
	}
	return palette.At(g.rng.Intn(palette.Size))
}

// Resize re-fits the current board to a new screen size.
func (g *Game) Resize(width, height int) {
	g.runtime.ScreenW = width
	g.runtime.ScreenH = height
	if g.root == nil {
		return
	}
	g.layout(width, height)
	g.refresh()
}

// units returns the number of unit cells along each side of the board.
func (g *Game) units() int {
	return 1 << g.cfg.Board.MaxDepth
}

// layout picks the largest unit size that fits and relays the board out.
func (g *Game) layout(screenW, screenH int) {
	units := g.units()
	cw := g.cfg.Board.CellWidth

	availH := screenH - hudRows - footerRows
	availW := screenW
	g.unit = min(availH/units, availW/(units*cw))
	g.tooSmall = g.unit < 1
	if g.tooSmall {
		g.unit = 1
	}

	side := units * g.unit
	g.originX = (screenW - side*cw) / 2
	g.originY = hudRows

	g.root.Relayout(board.P(0, 0), side)
}

// cursorPoint returns the board point at the top-left of the cursor cell.
func (g *Game) cursorPoint() board.Point {
	return board.P(g.cursorCol*g.unit, g.cursorRow*g.unit)
}

// refresh re-applies the highlight and recomputes the score.
func (g *Game) refresh() {
	g.root.ClearHighlight()
	sel, err := g.root.Selected(g.cursorPoint(), g.level)
	if err != nil {
		// Cursor and level are clamped, so this means the layout is stale.
		sel = g.root
	}
	sel.Highlighted = true
	g.selected = sel
	g.score = g.goal.Score(g.root)
}

// Step applies one frame of input.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRestart) && g.state == StateGameOver {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State(), Changed: true}
	}

	if in.Has(core.ActionPause) {
		switch g.state {
		case StatePaused:
			g.state = StatePlaying
		case StatePlaying:
			g.state = StatePaused
		}
	}

	if g.state != StatePlaying {
		return core.StepResult{State: g.State()}
	}

	g.tick++
	changed := g.handleInput(in)
	if changed {
		g.refresh()
		if g.movesLeft <= 0 {
			g.state = StateGameOver
			g.status = fmt.Sprintf("Out of moves! Final score: %d", g.score)
		}
	}

	return core.StepResult{State: g.State(), Changed: changed}
}

// handleInput performs at most one action and reports whether anything
// visible changed.
func (g *Game) handleInput(in core.InputFrame) bool {
	last := g.units() - 1

	switch {
	case in.Has(core.ActionUp):
		return g.moveCursor(g.cursorCol, core.Clamp(g.cursorRow-1, 0, last))
	case in.Has(core.ActionDown):
		return g.moveCursor(g.cursorCol, core.Clamp(g.cursorRow+1, 0, last))
	case in.Has(core.ActionLeft):
		return g.moveCursor(core.Clamp(g.cursorCol-1, 0, last), g.cursorRow)
	case in.Has(core.ActionRight):
		return g.moveCursor(core.Clamp(g.cursorCol+1, 0, last), g.cursorRow)
	case in.Has(core.ActionDeeper):
		return g.setLevel(g.level + 1)
	case in.Has(core.ActionShallower):
		return g.setLevel(g.level - 1)
	case in.Has(core.ActionRotateCW):
		return g.rotate(board.Clockwise)
	case in.Has(core.ActionRotateCCW):
		return g.rotate(board.CounterClockwise)
	case in.Has(core.ActionSwapHorizontal):
		return g.swap(board.AxisHorizontal)
	case in.Has(core.ActionSwapVertical):
		return g.swap(board.AxisVertical)
	case in.Has(core.ActionSmash):
		return g.smash()
	}
	return false
}

func (g *Game) moveCursor(col, row int) bool {
	if col == g.cursorCol && row == g.cursorRow {
		return false
	}
	g.cursorCol, g.cursorRow = col, row
	g.status = ""
	return true
}

func (g *Game) setLevel(level int) bool {
	level = core.Clamp(level, 0, g.cfg.Board.MaxDepth)
	if level == g.level {
		return false
	}
	g.level = level
	g.status = ""
	return true
}

func (g *Game) rotate(dir board.Direction) bool {
	if g.selected.IsLeaf() {
		g.status = "Nothing to rotate: the block is a single colour"
		return true
	}
	g.selected.Rotate(dir)
	g.spend(1, "Rotated "+dir.String())
	return true
}

func (g *Game) swap(axis board.Axis) bool {
	if g.selected.IsLeaf() {
		g.status = "Nothing to swap: the block is a single colour"
		return true
	}
	g.selected.Swap(axis)
	g.spend(1, "Swapped "+axis.String())
	return true
}

func (g *Game) smash() bool {
	cost := g.cfg.Gameplay.SmashCost
	switch {
	case g.selected.Level == 0:
		g.status = "Cannot smash the whole board"
	case !g.selected.CanSmash():
		g.status = "Cannot smash a unit cell"
	case cost > g.movesLeft:
		g.status = fmt.Sprintf("Smash needs %d moves", cost)
	default:
		g.selected.Smash(g.rng)
		g.spend(cost, "Smashed")
	}
	return true
}

func (g *Game) spend(moves int, status string) {
	g.movesLeft -= moves
	if g.movesLeft < 0 {
		g.movesLeft = 0
	}
	g.status = status
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.state == StateGameOver,
		Paused:   g.state == StatePaused,
	}
}

// Describe reports round metadata stored with the score.
func (g *Game) Describe() registry.RoundInfo {
	info := registry.RoundInfo{
		Depth: g.cfg.Board.MaxDepth,
		Seed:  g.runtime.Seed,
	}
	if g.goal != nil {
		info.Goal = g.goal.Description()
	}
	return info
}

// Board returns the board root.
func (g *Game) Board() *board.Block {
	return g.root
}

// Goal returns the goal being scored.
func (g *Game) Goal() goal.Goal {
	return g.goal
}

// Compile-time interface checks.
var (
	_ registry.Game      = (*Game)(nil)
	_ registry.Resizer   = (*Game)(nil)
	_ registry.Describer = (*Game)(nil)
)

func init() {
	registry.Register("blocky", func() registry.Game {
		return New()
	})
	registry.Register("blocky_perimeter", func() registry.Game {
		return NewPerimeter()
	})
}
