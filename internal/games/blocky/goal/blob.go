package goal

import (
	"github.com/vovakirdan/blocky/internal/games/blocky/board"
	"github.com/vovakirdan/blocky/internal/games/blocky/palette"
)

// BlobGoal rewards the largest 4-connected region of the target colour.
type BlobGoal struct {
	colour palette.Colour
}

// NewBlob returns a blob goal for colour.
func NewBlob(colour palette.Colour) BlobGoal {
	return BlobGoal{colour: colour}
}

func (g BlobGoal) Colour() palette.Colour { return g.colour }
func (g BlobGoal) Kind() Kind             { return KindBlob }

func (g BlobGoal) Description() string {
	return "Create the largest blob of " + palette.Name(g.colour)
}

// Score returns the size of the largest blob on the flattened board.
func (g BlobGoal) Score(b *board.Block) int {
	grid := b.Flatten()
	return LargestBlob(grid, g.colour)
}

type cellState uint8

const (
	unvisited cellState = iota
	miss
	hit
)

// LargestBlob returns the size of the largest 4-connected group of cells of
// colour c in grid, or 0 if there is none.
func LargestBlob(grid board.Grid, c palette.Colour) int {
	side := grid.Side()
	visited := make([][]cellState, side)
	for i := range visited {
		visited[i] = make([]cellState, side)
	}

	best := 0
	for col := 0; col < side; col++ {
		for row := 0; row < side; row++ {
			if n := blobSize(grid, c, visited, col, row); n > best {
				best = n
			}
		}
	}
	return best
}

// blobSize counts the undiscovered cells of colour c connected to (col, row)
// and marks every cell it inspects.
func blobSize(grid board.Grid, c palette.Colour, visited [][]cellState, col, row int) int {
	if !grid.InBounds(col, row) || visited[col][row] != unvisited {
		return 0
	}
	if grid.At(col, row) != c {
		visited[col][row] = miss
		return 0
	}

	visited[col][row] = hit
	return 1 +
		blobSize(grid, c, visited, col-1, row) +
		blobSize(grid, c, visited, col, row+1) +
		blobSize(grid, c, visited, col, row-1) +
		blobSize(grid, c, visited, col+1, row)
}
