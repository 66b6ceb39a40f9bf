package board

import (
	"fmt"

	"github.com/vovakirdan/blocky/internal/games/blocky/palette"
)

// Selected returns the block containing pt at the given level, searching
// from b downwards. If the leaf containing pt is shallower than level, that
// leaf is returned instead; so is the leaf under pt when level is above b.
func (b *Block) Selected(pt Point, level int) (*Block, error) {
	if level < 0 || level > b.MaxDepth {
		return nil, fmt.Errorf("%w: %d not in [0, %d]", ErrLevelOutOfRange, level, b.MaxDepth)
	}
	if !contains(b.Position, b.Size, pt) {
		return nil, fmt.Errorf("%w: %v not in %v+%d", ErrPointOutOfBounds, pt, b.Position, b.Size)
	}
	return b.locate(pt, level), nil
}

func (b *Block) locate(pt Point, level int) *Block {
	if b.Level == level && contains(b.Position, b.Size, pt) {
		return b
	}
	if b.children == nil {
		return b
	}
	return b.children[quadrantOf(pt, b.Position, b.Size)].locate(pt, level)
}

// Grid is a flattened board, indexed [col][row] in unit cells.
type Grid [][]palette.Colour

// Side returns the number of unit cells along each edge.
func (g Grid) Side() int {
	return len(g)
}

// At returns the colour of the unit cell at (col, row).
func (g Grid) At(col, row int) palette.Colour {
	return g[col][row]
}

// InBounds reports whether (col, row) is a cell of the grid.
func (g Grid) InBounds(col, row int) bool {
	return col >= 0 && row >= 0 && col < len(g) && row < len(g[col])
}

// Flatten renders the subtree as a square grid of unit cells, each the size
// of a block at max depth. The grid has 2^(MaxDepth-Level) cells per side.
func (b *Block) Flatten() Grid {
	if b.children == nil {
		side := 1 << (b.MaxDepth - b.Level)
		grid := make(Grid, side)
		for col := range grid {
			column := make([]palette.Colour, side)
			for row := range column {
				column[row] = b.colour
			}
			grid[col] = column
		}
		return grid
	}

	ur := b.children[UpperRight].Flatten()
	ul := b.children[UpperLeft].Flatten()
	ll := b.children[LowerLeft].Flatten()
	lr := b.children[LowerRight].Flatten()

	// Left half of the columns comes from UL over LL, right half from UR over LR.
	grid := make(Grid, 0, len(ul)+len(ur))
	grid = appendColumns(grid, ul, ll)
	grid = appendColumns(grid, ur, lr)
	return grid
}

func appendColumns(grid, top, bottom Grid) Grid {
	for i := range top {
		column := make([]palette.Colour, 0, len(top[i])+len(bottom[i]))
		column = append(column, top[i]...)
		column = append(column, bottom[i]...)
		grid = append(grid, column)
	}
	return grid
}
