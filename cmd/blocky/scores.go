package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/blocky/internal/registry"
	"github.com/vovakirdan/blocky/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresRun   string
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores for a game",
	Long: `Display the top high scores for the specified game, or the details of
a single stored run. Without arguments, prints a summary of every game.

Examples:
  blocky scores
  blocky scores blocky
  blocky scores blocky_perimeter --limit 20
  blocky scores --run 0b6f7a52-2c43-4c1e-9d7e-3f1c0e2a9b11
  blocky scores blocky --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show (0 for all)")
	scoresCmd.Flags().StringVar(&flagScoresRun, "run", "", "Show a single run by id")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete every stored run of the game")
}

func runScores(_ *cobra.Command, args []string) {
	if flagScoresRun != "" {
		showRun(flagScoresRun)
		return
	}
	if len(args) == 0 {
		if flagScoresClear {
			fmt.Fprintln(os.Stderr, "Error: --clear needs a game id")
			os.Exit(1)
		}
		showSummary()
		return
	}

	gameID := args[0]
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'blocky list' to see available games.")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer closeStore(store)

	if flagScoresClear {
		if err := store.ClearScores(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		logger.Info("cleared scores", "game", gameID)
		return
	}

	var scores []storage.ScoreEntry
	if flagScoresLimit > 0 {
		scores, err = store.TopScores(gameID, flagScoresLimit)
	} else {
		scores, err = store.AllScores(gameID)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	fmt.Printf("High Scores - %s\n", registry.Title(gameID))
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'blocky play %s' to set the first high score!\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-6s  %-5s  %-36s  %s\n", "Rank", "Score", "Depth", "Goal", "Date")
	fmt.Printf("  %-4s  %-6s  %-5s  %-36s  %s\n", "----", "-----", "-----", "----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-6d  %-5d  %-36s  %s\n",
			i+1, entry.Score, entry.Depth, entry.Goal, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, err := store.GetGameStats(gameID); err == nil {
		fmt.Println()
		fmt.Printf("Best: %d  Rounds: %d\n", stats.HighScore, stats.GamesCount)
	}
}

func showRun(raw string) {
	id, err := uuid.Parse(raw)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid run id %q: %v\n", raw, err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer closeStore(store)

	entry, err := store.RunByID(id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}

	fmt.Printf("Run    %s\n", entry.RunID)
	fmt.Printf("Game   %s\n", registry.Title(entry.GameID))
	fmt.Printf("Score  %d\n", entry.Score)
	fmt.Printf("Goal   %s\n", entry.Goal)
	fmt.Printf("Depth  %d\n", entry.Depth)
	fmt.Printf("Seed   %d\n", entry.Seed)
	fmt.Printf("Date   %s\n", entry.CreatedAt.Format("2006-01-02 15:04"))
	fmt.Println()
	fmt.Printf("Replay the board with: blocky play %s --seed %d\n", entry.GameID, entry.Seed)
}

func showSummary() {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer closeStore(store)

	all, err := store.GetAllGamesStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	fmt.Printf("  %-20s  %-6s  %-6s  %-7s  %s\n", "Game", "Rounds", "Best", "Average", "Last played")
	fmt.Printf("  %-20s  %-6s  %-6s  %-7s  %s\n", "----", "------", "----", "-------", "-----------")
	for _, g := range registry.List() {
		stats, ok := all[g.ID]
		if !ok {
			fmt.Printf("  %-20s  %-6d  %-6s  %-7s  %s\n", g.Title, 0, "-", "-", "-")
			continue
		}
		fmt.Printf("  %-20s  %-6d  %-6d  %-7.1f  %s\n",
			g.Title, stats.GamesCount, stats.HighScore, stats.AvgScore, stats.LastPlayed.Format("2006-01-02 15:04"))
	}
}
