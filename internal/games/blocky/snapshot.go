package blocky

import "github.com/vovakirdan/blocky/internal/games/blocky/palette"

// Snapshot contains the observable round state for determinism tests and
// debugging. Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick      uint64
	State     string
	Score     int
	MovesLeft int
	CursorCol int
	CursorRow int
	Level     int
	Goal      string
	Target    string

	// Flattened board, column-major: Cells[col*Side+row] is the palette
	// index of that unit cell.
	Side  int
	Cells []int
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	grid := g.root.Flatten()
	side := grid.Side()

	cells := make([]int, 0, side*side)
	for col := 0; col < side; col++ {
		for row := 0; row < side; row++ {
			cells = append(cells, palette.Index(grid.At(col, row)))
		}
	}

	return Snapshot{
		Tick:      g.tick,
		State:     g.state,
		Score:     g.score,
		MovesLeft: g.movesLeft,
		CursorCol: g.cursorCol,
		CursorRow: g.cursorRow,
		Level:     g.level,
		Goal:      g.goal.Description(),
		Target:    palette.Name(g.goal.Colour()),
		Side:      side,
		Cells:     cells,
	}
}
