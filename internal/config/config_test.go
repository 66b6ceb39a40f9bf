package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, blockyFile)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadBlockyEmbeddedDefault(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadBlocky("")
	if err != nil {
		t.Fatalf("LoadBlocky: %v", err)
	}
	if cfg.Board.MaxDepth != 4 || cfg.Board.CellWidth != 2 {
		t.Errorf("board = %+v, want depth 4 width 2", cfg.Board)
	}
	if cfg.Gameplay.Moves != 12 || cfg.Gameplay.SmashCost != 2 {
		t.Errorf("gameplay = %+v", cfg.Gameplay)
	}
	if cfg.Difficulty.Preset != DifficultyNormal {
		t.Errorf("preset = %q", cfg.Difficulty.Preset)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("embedded config invalid: %v", err)
	}
}

func TestLoadBlockyUserDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	writeConfig(t, filepath.Join(home, ".blocky", "configs"), `
board:
  max_depth: 2
gameplay:
  moves: 30
difficulty:
  preset: fixed
`)

	cfg, err := LoadBlocky("")
	if err != nil {
		t.Fatalf("LoadBlocky: %v", err)
	}
	if cfg.Board.MaxDepth != 2 || cfg.Gameplay.Moves != 30 {
		t.Errorf("user config not used: %+v", cfg)
	}
	// Keys absent from the file keep their defaults.
	if cfg.Board.CellWidth != 2 || cfg.Gameplay.SmashCost != 2 {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestLoadBlockyCustomPath(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
board:
  max_depth: 5
  cell_width: 3
gameplay:
  moves: 4
  smash_cost: 0
  target: red
difficulty:
  preset: easy
`)

	cfg, err := LoadBlocky(path)
	if err != nil {
		t.Fatalf("LoadBlocky: %v", err)
	}
	// The easy preset overrides depth and moves but not the rest.
	if cfg.Board.MaxDepth != 3 || cfg.Gameplay.Moves != 15 {
		t.Errorf("preset not applied: %+v", cfg)
	}
	if cfg.Board.CellWidth != 3 || cfg.Gameplay.SmashCost != 0 || cfg.Gameplay.Target != "red" {
		t.Errorf("file values lost: %+v", cfg)
	}
}

func TestLoadBlockyCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadBlocky(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom file should fail")
	}

	bad := writeConfig(t, filepath.Join(dir, "bad"), "board: [unclosed")
	if _, err := LoadBlocky(bad); err == nil {
		t.Error("malformed YAML should fail")
	}

	deep := writeConfig(t, filepath.Join(dir, "deep"), "board:\n  max_depth: 9\n")
	if _, err := LoadBlocky(deep); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("err = %v, want ErrInvalidConfig", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*BlockyConfig)
		ok     bool
	}{
		{"defaults", func(*BlockyConfig) {}, true},
		{"depth too small", func(c *BlockyConfig) { c.Board.MaxDepth = 0 }, false},
		{"zero cell width", func(c *BlockyConfig) { c.Board.CellWidth = 0 }, false},
		{"no moves", func(c *BlockyConfig) { c.Gameplay.Moves = 0 }, false},
		{"negative smash cost", func(c *BlockyConfig) { c.Gameplay.SmashCost = -1 }, false},
		{"unknown target", func(c *BlockyConfig) { c.Gameplay.Target = "purple" }, false},
		{"frame colour target", func(c *BlockyConfig) { c.Gameplay.Target = "black" }, false},
		{"playable target", func(c *BlockyConfig) { c.Gameplay.Target = "green" }, true},
		{"unknown preset", func(c *BlockyConfig) { c.Difficulty.Preset = "nightmare" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultBlockyConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.ok && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if !tt.ok && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("err = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestPresets(t *testing.T) {
	tests := []struct {
		preset DifficultyPreset
		depth  int
		moves  int
	}{
		{DifficultyEasy, 3, 15},
		{DifficultyNormal, 4, 12},
		{DifficultyHard, 5, 10},
		{DifficultyFixed, 2, 99},
	}

	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := DefaultBlockyConfig()
			cfg.Board.MaxDepth = 2
			cfg.Gameplay.Moves = 99
			ApplyBlockyPreset(&cfg, tt.preset)
			if cfg.Board.MaxDepth != tt.depth || cfg.Gameplay.Moves != tt.moves {
				t.Errorf("depth/moves = %d/%d, want %d/%d", cfg.Board.MaxDepth, cfg.Gameplay.Moves, tt.depth, tt.moves)
			}
		})
	}

	if p, err := ParsePreset(" Hard "); err != nil || p != DifficultyHard {
		t.Errorf("ParsePreset(Hard) = %q, %v", p, err)
	}
	if _, err := ParsePreset("insane"); err == nil {
		t.Error("unknown preset should fail")
	}
	if !IsFixedPreset(DifficultyFixed) || IsFixedPreset(DifficultyEasy) {
		t.Error("IsFixedPreset mismatch")
	}
}

func TestMarshalBlockyRoundTrips(t *testing.T) {
	cfg := DefaultBlockyConfig()
	cfg.Gameplay.Target = "blue"

	data, err := MarshalBlocky(cfg)
	if err != nil {
		t.Fatal(err)
	}
	path := writeConfig(t, t.TempDir(), string(data))

	loaded, err := LoadBlocky(path)
	if err != nil {
		t.Fatalf("LoadBlocky: %v", err)
	}
	if loaded != cfg {
		t.Errorf("loaded %+v, want %+v", loaded, cfg)
	}
}
