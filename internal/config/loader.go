package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const blockyFile = "blocky.yaml"

// LoadBlocky loads Blocky configuration and applies its difficulty preset.
// Search order: customPath -> ~/.blocky/configs/blocky.yaml ->
// ./configs/blocky.yaml -> embedded default -> DefaultBlockyConfig.
// Only an explicit customPath produces read, parse or validation errors;
// the other sources are skipped when unusable.
func LoadBlocky(customPath string) (BlockyConfig, error) {
	if customPath != "" {
		cfg, err := readBlocky(customPath)
		if err != nil {
			return cfg, err
		}
		return finish(cfg), nil
	}

	candidates := []string{
		userConfigPath(blockyFile),
		filepath.Join("configs", blockyFile),
	}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		if cfg, err := readBlocky(path); err == nil {
			return finish(cfg), nil
		}
	}

	cfg := DefaultBlockyConfig()
	if err := yaml.Unmarshal(defaultBlockyYAML, &cfg); err != nil {
		return finish(DefaultBlockyConfig()), nil
	}
	return finish(cfg), nil
}

// readBlocky parses and validates one file. Missing keys keep their defaults.
func readBlocky(path string) (BlockyConfig, error) {
	cfg := DefaultBlockyConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func finish(cfg BlockyConfig) BlockyConfig {
	if cfg.Difficulty.Preset == "" {
		cfg.Difficulty.Preset = DifficultyFixed
	}
	ApplyBlockyPreset(&cfg, cfg.Difficulty.Preset)
	return cfg
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".blocky", "configs", filename)
}

// MarshalBlocky renders cfg as YAML, used by the CLI to print the
// effective configuration.
func MarshalBlocky(cfg BlockyConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}
