package main

import (
	"fmt"
	"io"
	"math/rand"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blocky/internal/config"
	"github.com/vovakirdan/blocky/internal/games/blocky/board"
	"github.com/vovakirdan/blocky/internal/games/blocky/goal"
	"github.com/vovakirdan/blocky/internal/games/blocky/palette"
)

var (
	flagInspectDepth int
	flagInspectSize  int
	flagInspectGoal  string
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Generate a board and print it with its scores",
	Long: `Generate a random board, lay it out and print:

  - the block tree, one block per line, indented by level
  - the flattened unit grid, one letter per colour (Y B R G)
  - the result of the structural check
  - the score of every goal for every colour (or one goal kind with --goal)

With --verbose the tree also shows highlight and max depth attributes.

Examples:
  blocky inspect
  blocky inspect --depth 3 --seed 42
  blocky inspect --depth 2 --size 750 --verbose
  blocky inspect --goal perimeter`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runInspect,
}

func init() {
	inspectCmd.Flags().IntVar(&flagInspectDepth, "depth", 3, "Maximum depth of the board")
	inspectCmd.Flags().IntVar(&flagInspectSize, "size", 0, "Board size in units (0 = 2^depth)")
	inspectCmd.Flags().StringVar(&flagInspectGoal, "goal", "", "Only score this goal kind: blob or perimeter")
}

func runInspect(cmd *cobra.Command, _ []string) error {
	if flagInspectDepth < 0 || flagInspectDepth > config.MaxMaxDepth {
		return fmt.Errorf("--depth must be between 0 and %d", config.MaxMaxDepth)
	}
	size := flagInspectSize
	if size == 0 {
		size = 1 << flagInspectDepth
	}
	if size < 1 {
		return fmt.Errorf("--size must be positive")
	}

	kinds := goal.Kinds()
	if flagInspectGoal != "" {
		kind, err := goal.ParseKind(flagInspectGoal)
		if err != nil {
			return err
		}
		kinds = []goal.Kind{kind}
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Debug("generating board", "depth", flagInspectDepth, "size", size, "seed", seed)

	root := board.Generate(rand.New(rand.NewSource(seed)), 0, flagInspectDepth)
	root.Relayout(board.P(0, 0), size)

	return writeInspection(cmd.OutOrStdout(), root, seed, kinds, flagVerbose)
}

// writeInspection prints the dump, grid, check result and the scores of root
// for each of kinds in every colour.
func writeInspection(w io.Writer, root *board.Block, seed int64, kinds []goal.Kind, verbose bool) error {
	fmt.Fprintf(w, "Seed %d, max depth %d, %d leaves\n\n", seed, root.MaxDepth, len(root.Leaves()))

	if err := root.Dump(w, verbose); err != nil {
		return err
	}

	grid := root.Flatten()
	fmt.Fprintf(w, "\nGrid %dx%d:\n", grid.Side(), grid.Side())
	for row := range grid.Side() {
		var line strings.Builder
		for col := range grid.Side() {
			line.WriteRune(palette.Char(grid.At(col, row)))
		}
		fmt.Fprintln(w, line.String())
	}

	fmt.Fprintln(w)
	if err := board.Validate(root); err != nil {
		fmt.Fprintf(w, "Check: FAILED: %v\n", err)
	} else {
		fmt.Fprintln(w, "Check: ok")
	}

	fmt.Fprintln(w, "\nScores:")
	for _, kind := range kinds {
		for _, c := range palette.Colours() {
			g := goal.New(kind, c)
			fmt.Fprintf(w, "  %-40s %d\n", g.Description(), g.Score(root))
		}
	}
	return nil
}
