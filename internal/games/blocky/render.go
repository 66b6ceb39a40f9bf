package blocky

import (
	"fmt"

	"github.com/vovakirdan/blocky/internal/core"
	"github.com/vovakirdan/blocky/internal/games/blocky/board"
	"github.com/vovakirdan/blocky/internal/games/blocky/palette"
)

const helpLine = "arrows move  [ ] depth  , . rotate  h v swap  x smash  p pause  q quit"

// highlightShade marks highlighted blocks too small for an outline.
const highlightShade = '░'

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	g.renderHUD(dst)
	g.renderBoard(dst)
	g.renderFooter(dst)
	g.renderOverlay(dst)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Window too small")

	need := g.units()
	hint := fmt.Sprintf("Need at least %dx%d", need*g.cfg.Board.CellWidth, need+hudRows+footerRows)
	dst.DrawTextCentered(y+1, hint)
}

func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawTextCenteredColor(0, g.Title()+": "+g.goal.Description(), core.ColorBrightWhite)

	stats := fmt.Sprintf("Score: %d   Moves: %d   Depth: %d/%d",
		g.score, g.movesLeft, g.level, g.cfg.Board.MaxDepth)
	dst.DrawTextCenteredColor(1, stats, core.ColorBrightCyan)
}

func (g *Game) renderFooter(dst *core.Screen) {
	y := dst.Height() - footerRows
	if g.status != "" {
		dst.DrawTextCenteredColor(y, g.status, core.ColorYellow)
	}
	dst.DrawTextCenteredColor(y+1, helpLine, core.ColorGray)
}

func (g *Game) renderOverlay(dst *core.Screen) {
	var msg string
	switch g.state {
	case StatePaused:
		msg = " PAUSED - press P to resume "
	case StateGameOver:
		msg = fmt.Sprintf(" GAME OVER - score %d - R to restart ", g.score)
	default:
		return
	}

	side := g.units() * g.unit
	y := g.originY + side/2
	dst.DrawTextCenteredColor(y, msg, core.ColorBrightWhite)
}

// screenRect converts a square in board units to screen cells.
func (g *Game) screenRect(pos board.Point, size int) core.Rect {
	cw := g.cfg.Board.CellWidth
	return core.NewRect(g.originX+pos.X*cw, g.originY+pos.Y, size*cw, size)
}

func toRGB(c palette.Colour) core.RGB {
	return core.RGB{R: c.R, G: c.G, B: c.B}
}

// renderBoard draws fills first, then frames, then highlights, so outlines
// sit on top of the colour they surround regardless of descriptor order.
func (g *Game) renderBoard(dst *core.Screen) {
	rects := g.root.Rectangles()

	for _, r := range rects {
		if r.IsFill() {
			dst.FillRect(g.screenRect(r.Position, r.Size), core.Cell{
				Rune:  ' ',
				Bg:    toRGB(r.Colour),
				HasBg: true,
			})
		}
	}

	for _, r := range rects {
		if r.Thickness == board.FrameThickness {
			g.drawOutline(dst, r, core.BoxLight, false)
		}
	}

	for _, r := range rects {
		if r.Thickness == board.HighlightThickness {
			g.drawOutline(dst, r, core.BoxHeavy, true)
		}
	}
}

// drawOutline strokes r over the existing fill. Blocks one row tall cannot
// hold a box; highlights on those are shaded instead and frames are skipped.
func (g *Game) drawOutline(dst *core.Screen, r board.Rect, box core.BoxRunes, shadeSmall bool) {
	sr := g.screenRect(r.Position, r.Size)
	fg := toRGB(r.Colour)

	if sr.H < 2 {
		if !shadeSmall {
			return
		}
		dst.Shade(sr, highlightShade, fg)
		return
	}

	dst.DrawBoxStyled(sr, box, func(x, y int, ch rune) core.Cell {
		c := dst.GetCell(x, y)
		c.Rune = ch
		c.Fg, c.HasFg = fg, true
		return c
	})
}
