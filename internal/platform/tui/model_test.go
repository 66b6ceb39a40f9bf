package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/vovakirdan/blocky/internal/core"
	"github.com/vovakirdan/blocky/internal/registry"
	"github.com/vovakirdan/blocky/internal/storage"
)

// stubGame ends the round when it sees a Smash and scores 7.
type stubGame struct {
	resets  int
	resizes int
	over    bool
	paused  bool
	seed    int64
}

func (g *stubGame) ID() string    { return "stub" }
func (g *stubGame) Title() string { return "Stub" }

func (g *stubGame) Reset(cfg core.RuntimeConfig) {
	g.resets++
	g.over = false
	g.seed = cfg.Seed
}

func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if in.Has(core.ActionSmash) {
		g.over = true
	}
	return core.StepResult{State: g.State()}
}

func (g *stubGame) Render(dst *core.Screen) { dst.DrawText(0, 0, "stub") }

func (g *stubGame) State() core.GameState {
	return core.GameState{Score: 7, GameOver: g.over, Paused: g.paused}
}

func (g *stubGame) Resize(int, int) { g.resizes++ }

func (g *stubGame) Describe() registry.RoundInfo {
	return registry.RoundInfo{Goal: "stub goal", Depth: 3, Seed: g.seed}
}

var testCfg = core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 30, Seed: 99}

func openTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return out
}

func TestModelSavesScoreOnce(t *testing.T) {
	store := openTestStore(t)
	game := &stubGame{}
	m := NewModel(game, store, testCfg)
	m.Init()

	m = update(t, m, runeKey("x"))
	m = update(t, m, TickMsg{})
	m = update(t, m, TickMsg{})

	res := m.Result()
	if res.SaveErr != nil {
		t.Fatalf("save error: %v", res.SaveErr)
	}
	if res.Score != 7 || res.RunID == uuid.Nil || !res.NewBest {
		t.Fatalf("result = %+v", res)
	}

	all, err := store.AllScores("stub")
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 1 {
		t.Fatalf("stored %d scores, want 1", len(all))
	}

	entry, err := store.RunByID(res.RunID)
	if err != nil {
		t.Fatalf("RunByID: %v", err)
	}
	if entry.Goal != "stub goal" || entry.Depth != 3 || entry.Seed != 99 {
		t.Errorf("entry = %+v", entry)
	}
}

func TestModelNewBestComparesStoredRuns(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.SaveRun(storage.Run{GameID: "stub", Score: 10}); err != nil {
		t.Fatal(err)
	}
	m := NewModel(&stubGame{}, store, testCfg)
	m.Init()

	m = update(t, m, runeKey("x"))
	m = update(t, m, TickMsg{})

	if res := m.Result(); res.RunID == uuid.Nil || res.NewBest {
		t.Errorf("7 after a stored 10 is not a new best: %+v", res)
	}
}

func TestModelRestartReseeds(t *testing.T) {
	game := &stubGame{}
	m := NewModel(game, nil, testCfg)
	m.Init()

	m = update(t, m, runeKey("x"))
	m = update(t, m, TickMsg{})
	if !m.gameState.GameOver {
		t.Fatal("expected game over")
	}

	m = update(t, m, runeKey("r"))
	m = update(t, m, TickMsg{})
	if game.resets != 2 {
		t.Errorf("resets = %d, want 2", game.resets)
	}
	if game.seed == 99 {
		t.Error("restart should use a new seed")
	}
	if m.scoreSaved {
		t.Error("restart should clear the saved flag")
	}
}

func TestModelResizeUsesResizer(t *testing.T) {
	game := &stubGame{}
	m := NewModel(game, nil, testCfg)
	m.Init()

	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if game.resizes != 1 || game.resets != 1 {
		t.Errorf("resizes/resets = %d/%d, want 1/1", game.resizes, game.resets)
	}
	if m.screen.Width() != 100 || m.screen.Height() != 30 {
		t.Errorf("screen = %dx%d", m.screen.Width(), m.screen.Height())
	}
}

func TestModelBack(t *testing.T) {
	t.Run("standalone pauses", func(t *testing.T) {
		game := &stubGame{}
		m := NewModel(game, nil, testCfg)
		m.Init()
		m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
		m = update(t, m, TickMsg{})
		if !game.paused || m.BackToMenu() {
			t.Errorf("paused=%v back=%v", game.paused, m.BackToMenu())
		}
	})

	t.Run("session leaves when paused", func(t *testing.T) {
		game := &stubGame{}
		m := newSessionGameModel(game, nil, testCfg, nil)
		m.Init()
		m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
		m = update(t, m, TickMsg{})
		if m.BackToMenu() {
			t.Fatal("first Back should pause")
		}
		m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
		if !m.BackToMenu() {
			t.Error("Back while paused should return to the menu")
		}
		if m.View() != "" {
			t.Error("view should be empty after leaving")
		}
	})
}

func TestModelQuit(t *testing.T) {
	m := NewModel(&stubGame{}, nil, testCfg)
	next, cmd := m.Update(runeKey("q"))
	if !next.(Model).IsQuitting() || cmd == nil {
		t.Error("q should quit")
	}
}

func TestModelDefaults(t *testing.T) {
	m := NewModel(&stubGame{}, nil, core.RuntimeConfig{ScreenW: 10, ScreenH: 5})
	if m.config.Seed == 0 {
		t.Error("zero seed should be replaced")
	}
	if m.config.TickRate <= 0 {
		t.Error("tick rate should default")
	}
}
