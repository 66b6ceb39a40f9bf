package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blocky/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective game configuration",
	Long: `Load the Blocky configuration the same way play does and print it as YAML.

Lookup order: --config, ~/.blocky/configs/blocky.yaml, ./configs/blocky.yaml,
then the built-in defaults. --difficulty applies a preset on top.

Examples:
  blocky config
  blocky config --difficulty hard
  blocky config --config ./my-blocky.yaml > ~/.blocky/configs/blocky.yaml`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return writeConfig(cmd.OutOrStdout(), flagConfig, flagDifficulty)
	},
}

func init() {
	configCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	configCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func writeConfig(w io.Writer, path, difficulty string) error {
	cfg, err := config.LoadBlocky(path)
	if err != nil {
		return err
	}
	if difficulty != "" {
		preset, err := config.ParsePreset(difficulty)
		if err != nil {
			return err
		}
		config.ApplyBlockyPreset(&cfg, preset)
	}

	out, err := config.MarshalBlocky(cfg)
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}
