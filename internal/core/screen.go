package core

import (
	"strings"
)

// Cell is one character position on the screen.
// Color is the ANSI foreground; Fg and Bg override it with true color when
// HasFg / HasBg are set.
type Cell struct {
	Rune  rune
	Color Color
	Fg    RGB
	Bg    RGB
	HasFg bool
	HasBg bool
}

// blank is the cell used by Clear.
var blank = Cell{Rune: ' '}

// SameStyle reports whether two cells render with identical styling.
func (c Cell) SameStyle(o Cell) bool {
	return c.Color == o.Color &&
		c.HasFg == o.HasFg && (!c.HasFg || c.Fg == o.Fg) &&
		c.HasBg == o.HasBg && (!c.HasBg || c.Bg == o.Bg)
}

// Screen is a 2D character buffer for rendering game graphics.
// It decouples game rendering from the terminal, allowing games to draw
// using simple cell operations while the platform handles actual display.
type Screen struct {
	width  int
	height int
	cells  [][]Cell
}

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  width,
		height: height,
	}
	s.allocate()
	s.Clear()
	return s
}

// allocate creates the underlying cell storage.
func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Bounds returns the screen area as a Rect at the origin.
func (s *Screen) Bounds() Rect {
	return NewRect(0, 0, s.width, s.height)
}

// Resize changes the screen dimensions, preserving content where possible.
func (s *Screen) Resize(width, height int) {
	if width == s.width && height == s.height {
		return
	}

	oldCells := s.cells
	oldW, oldH := s.width, s.height

	s.width = width
	s.height = height
	s.allocate()
	s.Clear()

	copyW := min(oldW, width)
	copyH := min(oldH, height)
	for y := range copyH {
		copy(s.cells[y][:copyW], oldCells[y][:copyW])
	}
}

// Clear fills the entire screen with unstyled spaces.
func (s *Screen) Clear() {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = blank
		}
	}
}

func (s *Screen) inBounds(x, y int) bool {
	return x >= 0 && x < s.width && y >= 0 && y < s.height
}

// SetColor places a rune with an ANSI foreground color.
func (s *Screen) SetColor(x, y int, r rune, c Color) {
	s.SetCell(x, y, Cell{Rune: r, Color: c})
}

// SetCell replaces the cell at the given position.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) SetCell(x, y int, c Cell) {
	if !s.inBounds(x, y) {
		return
	}
	s.cells[y][x] = c
}

// GetCell returns the cell at the given position.
// Returns a blank cell for out-of-bounds coordinates.
func (s *Screen) GetCell(x, y int) Cell {
	if !s.inBounds(x, y) {
		return blank
	}
	return s.cells[y][x]
}

// DrawText writes a string horizontally starting at (x, y).
// Characters that extend beyond screen bounds are clipped.
func (s *Screen) DrawText(x, y int, text string) {
	s.DrawTextColor(x, y, text, ColorDefault)
}

// DrawTextColor writes a string in the given foreground color.
func (s *Screen) DrawTextColor(x, y int, text string, c Color) {
	i := 0
	for _, r := range text {
		s.SetColor(x+i, y, r, c)
		i++
	}
}

// DrawTextCentered draws text centered horizontally at the given y position.
func (s *Screen) DrawTextCentered(y int, text string) {
	s.DrawTextCenteredColor(y, text, ColorDefault)
}

// DrawTextCenteredColor draws colored text centered horizontally.
func (s *Screen) DrawTextCenteredColor(y int, text string, c Color) {
	x := (s.width - len([]rune(text))) / 2
	s.DrawTextColor(x, y, text, c)
}

// FillRect fills a rectangular area with copies of c.
func (s *Screen) FillRect(r Rect, c Cell) {
	r = r.Clip(s.Bounds())
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			s.cells[y][x] = c
		}
	}
}

// Shade overwrites the rune and foreground of every cell in r, keeping
// backgrounds.
func (s *Screen) Shade(r Rect, ch rune, fg RGB) {
	r = r.Clip(s.Bounds())
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			c := &s.cells[y][x]
			c.Rune = ch
			c.Fg, c.HasFg = fg, true
		}
	}
}

// BoxRunes is a set of box-drawing characters.
type BoxRunes struct {
	TopLeft, TopRight, BottomLeft, BottomRight rune
	Horizontal, Vertical                       rune
}

// Box character sets.
var (
	BoxLight = BoxRunes{'┌', '┐', '└', '┘', '─', '│'}
	BoxHeavy = BoxRunes{'┏', '┓', '┗', '┛', '━', '┃'}
)

// DrawBoxStyled draws a box outline with the given runes. style builds the
// cell for each outline position, so callers can keep existing backgrounds.
func (s *Screen) DrawBoxStyled(r Rect, box BoxRunes, style func(x, y int, ch rune) Cell) {
	if r.Empty() {
		return
	}
	set := func(x, y int, ch rune) {
		s.SetCell(x, y, style(x, y, ch))
	}

	set(r.X, r.Y, box.TopLeft)
	set(r.Right()-1, r.Y, box.TopRight)
	set(r.X, r.Bottom()-1, box.BottomLeft)
	set(r.Right()-1, r.Bottom()-1, box.BottomRight)

	for x := r.X + 1; x < r.Right()-1; x++ {
		set(x, r.Y, box.Horizontal)
		set(x, r.Bottom()-1, box.Horizontal)
	}

	for y := r.Y + 1; y < r.Bottom()-1; y++ {
		set(r.X, y, box.Vertical)
		set(r.Right()-1, y, box.Vertical)
	}
}

// String converts the screen buffer to plain text without styling.
// Each row is joined with newlines.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y, row := range s.cells {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for _, c := range row {
			sb.WriteRune(c.Rune)
		}
	}
	return sb.String()
}

// Row returns the specified row as plain text.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	runes := make([]rune, s.width)
	for x, c := range s.cells[y] {
		runes[x] = c.Rune
	}
	return string(runes)
}
