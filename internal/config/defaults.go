package config

import (
	_ "embed"
)

//go:embed defaults/blocky.yaml
var defaultBlockyYAML []byte

// DefaultBlockyConfig returns the built-in configuration, used when even the
// embedded YAML cannot be parsed.
func DefaultBlockyConfig() BlockyConfig {
	return BlockyConfig{
		Board: BlockyBoard{
			MaxDepth:  4,
			CellWidth: 2,
		},
		Gameplay: BlockyGameplay{
			Moves:     12,
			SmashCost: 2,
		},
		Difficulty: DifficultyConfig{
			Preset: DifficultyNormal,
		},
	}
}
