// Package config loads Blocky settings from YAML and applies difficulty
// presets on top of them.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/blocky/internal/games/blocky/palette"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid")

// Limits on board depth. Depth 0 is a single tile; past 6 the board no
// longer fits a terminal.
const (
	MinMaxDepth = 1
	MaxMaxDepth = 6
)

// BlockyConfig contains all configuration for a Blocky round.
type BlockyConfig struct {
	Board      BlockyBoard      `yaml:"board"`
	Gameplay   BlockyGameplay   `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BlockyBoard defines the board shape.
type BlockyBoard struct {
	MaxDepth  int `yaml:"max_depth"`
	CellWidth int `yaml:"cell_width"`
}

// BlockyGameplay defines move budget and targets.
type BlockyGameplay struct {
	Moves     int    `yaml:"moves"`
	SmashCost int    `yaml:"smash_cost"`
	Target    string `yaml:"target"` // Colour name, empty for random
}

// DifficultyConfig selects a preset.
type DifficultyConfig struct {
	Preset DifficultyPreset `yaml:"preset"`
}

// Validate checks that the configuration describes a playable round.
func (c BlockyConfig) Validate() error {
	if c.Board.MaxDepth < MinMaxDepth || c.Board.MaxDepth > MaxMaxDepth {
		return fmt.Errorf("%w: board.max_depth %d not in [%d, %d]",
			ErrInvalidConfig, c.Board.MaxDepth, MinMaxDepth, MaxMaxDepth)
	}
	if c.Board.CellWidth < 1 {
		return fmt.Errorf("%w: board.cell_width must be positive, got %d", ErrInvalidConfig, c.Board.CellWidth)
	}
	if c.Gameplay.Moves < 1 {
		return fmt.Errorf("%w: gameplay.moves must be positive, got %d", ErrInvalidConfig, c.Gameplay.Moves)
	}
	if c.Gameplay.SmashCost < 0 {
		return fmt.Errorf("%w: gameplay.smash_cost must not be negative, got %d", ErrInvalidConfig, c.Gameplay.SmashCost)
	}
	if c.Gameplay.Target != "" {
		if col, ok := palette.Parse(c.Gameplay.Target); !ok || palette.Index(col) < 0 {
			return fmt.Errorf("%w: gameplay.target %q is not a playable colour", ErrInvalidConfig, c.Gameplay.Target)
		}
	}
	if c.Difficulty.Preset != "" {
		if _, err := ParsePreset(string(c.Difficulty.Preset)); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
	}
	return nil
}
