package config

import (
	"fmt"
	"strings"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the presets in menu order.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}
}

// ParsePreset converts a user-supplied name to a preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Presets() {
		if p == known {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", s)
}

// IsFixedPreset returns true if the preset leaves the loaded values alone.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ApplyBlockyPreset overrides board depth and move budget for a preset.
// Deeper boards have more tiles to rearrange, so they get fewer moves.
func ApplyBlockyPreset(cfg *BlockyConfig, preset DifficultyPreset) {
	cfg.Difficulty.Preset = preset

	switch preset {
	case DifficultyEasy:
		cfg.Board.MaxDepth = 3
		cfg.Gameplay.Moves = 15
	case DifficultyNormal:
		cfg.Board.MaxDepth = 4
		cfg.Gameplay.Moves = 12
	case DifficultyHard:
		cfg.Board.MaxDepth = 5
		cfg.Gameplay.Moves = 10
	}
}
