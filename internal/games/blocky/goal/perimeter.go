package goal

import (
	"github.com/vovakirdan/blocky/internal/games/blocky/board"
	"github.com/vovakirdan/blocky/internal/games/blocky/palette"
)

// PerimeterGoal rewards target-coloured cells on the outer edge of the board.
// Corner cells lie on two edges and count twice.
type PerimeterGoal struct {
	colour palette.Colour
}

// NewPerimeter returns a perimeter goal for colour.
func NewPerimeter(colour palette.Colour) PerimeterGoal {
	return PerimeterGoal{colour: colour}
}

func (g PerimeterGoal) Colour() palette.Colour { return g.colour }
func (g PerimeterGoal) Kind() Kind             { return KindPerimeter }

func (g PerimeterGoal) Description() string {
	return "Surround the perimeter with " + palette.Name(g.colour)
}

func (g PerimeterGoal) Score(b *board.Block) int {
	return PerimeterCount(b.Flatten(), g.colour)
}

// PerimeterCount counts edge cells of colour c, once per edge they touch.
func PerimeterCount(grid board.Grid, c palette.Colour) int {
	side := grid.Side()
	last := side - 1
	count := 0
	for i := 0; i < side; i++ {
		if grid.At(i, 0) == c {
			count++
		}
		if grid.At(i, last) == c {
			count++
		}
		if grid.At(0, i) == c {
			count++
		}
		if grid.At(last, i) == c {
			count++
		}
	}
	return count
}
