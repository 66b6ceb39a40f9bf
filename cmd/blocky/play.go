package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/blocky/internal/config"
	"github.com/vovakirdan/blocky/internal/core"
	"github.com/vovakirdan/blocky/internal/games/blocky"
	"github.com/vovakirdan/blocky/internal/platform/tui"
	"github.com/vovakirdan/blocky/internal/registry"
	"github.com/vovakirdan/blocky/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagTarget     string
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Without --difficulty a setup screen asks for difficulty and goal colour.

Controls:
  Arrows/WASD  - Move the cursor
  [ ]          - Select a larger / smaller block
  , .          - Rotate counter-clockwise / clockwise
  H V          - Swap horizontally / vertically
  X/Space      - Smash the selected block
  P/Esc        - Pause
  R            - Restart (after game over)
  Ctrl+S       - Save a text screenshot
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Depth 3 board, 15 moves
  normal - Depth 4 board, 12 moves
  hard   - Depth 5 board, 10 moves
  fixed  - Depth and moves from the config file

Examples:
  blocky play blocky
  blocky play blocky --difficulty easy --target red
  blocky play blocky_perimeter --difficulty hard
  blocky play blocky --config ./my-blocky.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagTarget, "target", "", "Goal colour: yellow, blue, red, green (default random)")
}

// checkGameFlags validates --config and --difficulty before any screen opens.
func checkGameFlags() error {
	if flagDifficulty != "" {
		if _, err := config.ParsePreset(flagDifficulty); err != nil {
			return err
		}
	}
	if flagConfig != "" {
		cfg, err := config.LoadBlocky(flagConfig)
		if err != nil {
			return err
		}
		logger.Debug("loaded config", "path", flagConfig, "max_depth", cfg.Board.MaxDepth, "moves", cfg.Gameplay.Moves)
	}
	blocky.SetConfigPath(flagConfig)
	blocky.SetDifficultyPreset(flagDifficulty)
	return nil
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'blocky list' to see available games.")
		os.Exit(1)
	}
	if err := checkGameFlags(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg := runtimeConfig()

	opts := blocky.Options{Target: flagTarget}
	if !cmd.Flags().Changed("difficulty") {
		selection, err := tui.RunBlockySetup(registry.Title(gameID), cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if selection == nil {
			return
		}
		opts = selection.Options()
		if flagTarget != "" && opts.Target == "" {
			opts.Target = flagTarget
		}
	}

	store := openStore()
	result, runErr := playGame(gameID, opts, store, cfg)
	closeStore(store)

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
	reportResult(result)
}

// playGame creates and runs one game with the given overrides.
func playGame(gameID string, opts blocky.Options, store *storage.Store, cfg core.RuntimeConfig) (tui.Result, error) {
	game, err := registry.Create(gameID)
	if err != nil {
		return tui.Result{}, err
	}
	if b, ok := game.(*blocky.Game); ok {
		b.Configure(opts)
	}
	logger.Debug("starting game", "game", gameID, "preset", opts.Preset, "target", opts.Target, "seed", cfg.Seed)
	return tui.Run(game, store, cfg)
}

func reportResult(r tui.Result) {
	if r.SaveErr != nil {
		logger.Warn("score was not saved", "error", r.SaveErr)
	}
	if r.RunID != uuid.Nil {
		fmt.Printf("Final score: %d (run %s)\n", r.Score, r.RunID)
	}
	if r.NewBest {
		fmt.Println("New best!")
	}
}
