package board

import (
	"fmt"
	"math"
)

// Point is an integer coordinate in board space.
// X increases to the right, Y increases downward.
type Point struct {
	X int
	Y int
}

// P is a convenience constructor for Point.
func P(x, y int) Point {
	return Point{X: x, Y: y}
}

// String returns a string representation of the point.
func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Quadrant indexes a child block. The order is fixed throughout the package:
// upper-right, upper-left, lower-left, lower-right.
type Quadrant int

const (
	UpperRight Quadrant = iota
	UpperLeft
	LowerLeft
	LowerRight
)

// String returns a short name for the quadrant.
func (q Quadrant) String() string {
	switch q {
	case UpperRight:
		return "UR"
	case UpperLeft:
		return "UL"
	case LowerLeft:
		return "LL"
	case LowerRight:
		return "LR"
	default:
		return "??"
	}
}

// half returns round(size/2) using round-half-to-even.
// Layout and lookup must both go through here so odd sizes split the same way.
func half(size int) int {
	return int(math.RoundToEven(float64(size) / 2))
}

// childCorners returns the top-left corners of the four children of a block
// at topLeft with the given size, indexed by Quadrant.
func childCorners(topLeft Point, size int) [4]Point {
	h := half(size)
	x, y := topLeft.X, topLeft.Y
	return [4]Point{
		UpperRight: {X: x + h, Y: y},
		UpperLeft:  {X: x, Y: y},
		LowerLeft:  {X: x, Y: y + h},
		LowerRight: {X: x + h, Y: y + h},
	}
}

// quadrantOf classifies pt against the midpoint of the square at topLeft.
// Strictly-less selects upper/left on each axis.
func quadrantOf(pt, topLeft Point, size int) Quadrant {
	h := half(size)
	left := pt.X < topLeft.X+h
	upper := pt.Y < topLeft.Y+h
	switch {
	case upper && left:
		return UpperLeft
	case upper:
		return UpperRight
	case left:
		return LowerLeft
	default:
		return LowerRight
	}
}

// contains reports whether pt lies in [topLeft, topLeft+size) on both axes.
func contains(topLeft Point, size int, pt Point) bool {
	return pt.X >= topLeft.X && pt.X < topLeft.X+size &&
		pt.Y >= topLeft.Y && pt.Y < topLeft.Y+size
}
