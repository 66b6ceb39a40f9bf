package board

import "github.com/vovakirdan/blocky/internal/games/blocky/palette"

// Outline thicknesses used in Rect.Thickness.
const (
	FillThickness      = 0
	FrameThickness     = 3
	HighlightThickness = 5
)

// Rect is a drawing instruction for one square: a solid fill when Thickness
// is zero, otherwise an outline of that width.
type Rect struct {
	Colour    palette.Colour
	Position  Point
	Size      int
	Thickness int
}

// IsFill reports whether the rect is a solid fill.
func (r Rect) IsFill() bool {
	return r.Thickness == FillThickness
}

// Rectangles describes how to draw the subtree: every leaf gets a fill in its
// colour and a black frame, and every highlighted block gets a highlight
// outline. Order is not significant.
func (b *Block) Rectangles() []Rect {
	var out []Rect
	b.Walk(func(n *Block) {
		if n.Highlighted {
			out = append(out, Rect{
				Colour:    palette.Highlight,
				Position:  n.Position,
				Size:      n.Size,
				Thickness: HighlightThickness,
			})
		}
		if n.children == nil {
			out = append(out,
				Rect{Colour: n.colour, Position: n.Position, Size: n.Size, Thickness: FillThickness},
				Rect{Colour: palette.Frame, Position: n.Position, Size: n.Size, Thickness: FrameThickness},
			)
		}
	})
	return out
}
