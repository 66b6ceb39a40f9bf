// blocky is a terminal quadtree puzzle: rotate, swap and smash the blocks of
// a randomly generated board to build the largest blob or fill the perimeter
// with your goal colour.
//
// Usage:
//
//	blocky list              - List available goals
//	blocky play <game>       - Play a game
//	blocky menu              - Start menu to pick games interactively
//	blocky serve             - Start SSH server for remote play
//	blocky scores <game>     - Show high scores for a game
//	blocky inspect           - Print a generated board and its scores
//	blocky config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 30)
//	--seed <value>  - Set RNG seed for reproducible boards
//	--db <path>     - Set database path (default: ~/.blocky/scores.db)
//	--verbose       - Debug logging
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/blocky/internal/games/blocky"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagVerbose bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blocky",
	Short: "Blocky - a quadtree tile puzzle in your terminal",
	Long: `Blocky is a puzzle played on a square board split recursively into
four quadrants. Rotate, swap and smash blocks with a limited number of moves
to score points for your goal colour.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores
  inspect  - Generate a board and print it with its scores
  config   - Print the effective game configuration

Examples:
  blocky list
  blocky play blocky
  blocky play blocky_perimeter --difficulty hard
  blocky menu
  blocky serve --ssh :2222
  blocky inspect --depth 3 --seed 42`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		setupLogger(flagVerbose)
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.blocky/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(configCmd)
}
