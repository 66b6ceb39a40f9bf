package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blocky/internal/core"
	"github.com/vovakirdan/blocky/internal/platform/tui"
	"github.com/vovakirdan/blocky/internal/registry"
	"github.com/vovakirdan/blocky/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start Blocky with a game picker menu",
	Long: `Start Blocky in interactive menu mode.

Pick a goal, choose difficulty and colour, play, and return to the menu
when the round is over. Tab opens the high score table.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Tab          - High scores
  Q            - Quit

Examples:
  blocky menu
  blocky menu --fps 60
  blocky menu --db ./scores.db`,
	Run: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
}

func runMenu(_ *cobra.Command, _ []string) {
	if err := checkGameFlags(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store := openStore()
	defer closeStore(store)

	cfg := runtimeConfig()

	for {
		res, err := tui.RunMenu(store, cfg)
		if err != nil {
			logger.Error("menu failed", "error", err)
			return
		}
		cfg = res.Config

		switch {
		case res.Quit:
			return
		case res.WantsScoreboard:
			back, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				logger.Error("scoreboard failed", "error", err)
			}
			if !back {
				return
			}
		default:
			playFromMenu(res.GameID, store, cfg)
		}
	}
}

// playFromMenu shows the setup screen for gameID and plays one round.
// Every round gets a new board unless --seed pinned it.
func playFromMenu(gameID string, store *storage.Store, cfg core.RuntimeConfig) {
	sel, err := tui.RunBlockySetup(registry.Title(gameID), cfg)
	if err != nil {
		logger.Error("setup failed", "error", err)
		return
	}
	if sel == nil {
		return
	}
	if flagSeed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	res, err := playGame(gameID, sel.Options(), store, cfg)
	if err != nil {
		logger.Error("game failed", "game", gameID, "error", err)
		return
	}
	if res.SaveErr != nil {
		logger.Warn("score was not saved", "error", res.SaveErr)
	}
}
