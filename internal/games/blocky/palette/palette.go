// Package palette defines the fixed set of named colours used by Blocky.
// Four colours are playable; two more are reserved for the highlight and
// frame outlines drawn around blocks.
package palette

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Colour is a 24-bit RGB colour.
type Colour struct {
	R, G, B uint8
}

// RGB is a convenience constructor for Colour.
func RGB(r, g, b uint8) Colour {
	return Colour{R: r, G: g, B: b}
}

// Named palette entries.
var (
	DaffodilDelight   = RGB(255, 211, 92)
	PacificPoint      = RGB(1, 128, 181)
	RealRed           = RGB(199, 44, 58)
	OldOlive          = RGB(138, 151, 71)
	TemptingTurquoise = RGB(75, 196, 213)
	Black             = RGB(0, 0, 0)
	White             = RGB(255, 255, 255)
)

// Highlight outlines the block currently selected by the player.
var Highlight = TemptingTurquoise

// Frame outlines every undivided block.
var Frame = Black

// Size is the number of playable colours.
const Size = 4

var playable = [Size]Colour{DaffodilDelight, PacificPoint, RealRed, OldOlive}

var names = map[Colour]string{
	DaffodilDelight:   "yellow",
	PacificPoint:      "blue",
	RealRed:           "red",
	OldOlive:          "green",
	TemptingTurquoise: "turquoise",
	Black:             "black",
	White:             "white",
}

// At returns the i-th playable colour. Panics if i is outside [0, Size).
func At(i int) Colour {
	if i < 0 || i >= Size {
		panic(fmt.Sprintf("palette: colour index %d out of range", i))
	}
	return playable[i]
}

// Colours returns the playable colours in palette order.
func Colours() []Colour {
	out := make([]Colour, Size)
	copy(out, playable[:])
	return out
}

// Index returns the palette position of c, or -1 if c is not playable.
func Index(c Colour) int {
	for i, p := range playable {
		if p == c {
			return i
		}
	}
	return -1
}

// Name returns the display name of c. Colours outside the palette get the
// name of the perceptually closest entry.
func Name(c Colour) string {
	if n, ok := names[c]; ok {
		return n
	}
	best := ""
	bestDist := 0.0
	for known, n := range names {
		d := c.colorful().DistanceLab(known.colorful())
		if best == "" || d < bestDist || (d == bestDist && n < best) {
			best, bestDist = n, d
		}
	}
	return best
}

// Parse looks up a colour by its display name.
func Parse(name string) (Colour, bool) {
	for c, n := range names {
		if n == name {
			return c, true
		}
	}
	return Colour{}, false
}

// Char returns a single-letter representation used by text dumps.
func Char(c Colour) rune {
	switch c {
	case DaffodilDelight:
		return 'Y'
	case PacificPoint:
		return 'B'
	case RealRed:
		return 'R'
	case OldOlive:
		return 'G'
	default:
		return '?'
	}
}

// Hex returns the colour as a "#rrggbb" string.
func (c Colour) Hex() string {
	return c.colorful().Hex()
}

// String implements fmt.Stringer.
func (c Colour) String() string {
	return Name(c)
}

func (c Colour) colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}
