// Package registry holds the factories for every playable board variant.
// Variants register themselves in init() so the platform can list and
// construct them by id.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/blocky/internal/core"
)

// ErrUnknownGame is returned by Create for ids nobody registered.
var ErrUnknownGame = errors.New("registry: unknown game")

// Game is the interface the platform drives.
// Implementations contain pure logic and never import Bubble Tea; the
// platform owns input mapping, timing and rendering.
type Game interface {
	// ID returns the stable identifier used on the command line and as the
	// score key (e.g. "blocky").
	ID() string

	// Title returns a display name.
	Title() string

	// Reset starts a fresh round using the screen size and seed in cfg.
	Reset(cfg core.RuntimeConfig)

	// Step applies one frame of input.
	Step(in core.InputFrame) core.StepResult

	// Render draws into dst, which the platform clears beforehand.
	Render(dst *core.Screen)

	// State reports score, pause and game-over status.
	State() core.GameState
}

// Resizer is implemented by games that can re-fit the current round to a new
// terminal size without resetting it.
type Resizer interface {
	Resize(width, height int)
}

// RoundInfo is round metadata stored alongside a score.
type RoundInfo struct {
	Goal  string
	Depth int
	Seed  int64
}

// Describer is implemented by games that report metadata for score records.
type Describer interface {
	Describe() RoundInfo
}

// GameInfo describes a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new, not yet reset, game instance.
type Factory func() Game

var (
	mu        sync.RWMutex
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
)

// Register adds a factory under id. Panics on duplicate ids.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns all registered games sorted by id.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]GameInfo, 0, len(factories))
	for id := range factories {
		out = append(out, GameInfo{ID: id, Title: titles[id]})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})
	return out
}

// Create builds a new instance of the game registered under id.
func Create(id string) (Game, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownGame, id)
	}
	return f(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}

// Title returns the display title for id, or id itself if unknown.
func Title(id string) string {
	mu.RLock()
	defer mu.RUnlock()

	if t, ok := titles[id]; ok {
		return t
	}
	return id
}

// unregister removes id; used by tests to keep the global table clean.
func unregister(id string) {
	mu.Lock()
	defer mu.Unlock()

	delete(factories, id)
	delete(titles, id)
}
