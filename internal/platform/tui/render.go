package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/blocky/internal/core"
)

// ansiCodes maps core.Color to terminal palette indices.
var ansiCodes = map[core.Color]string{
	core.ColorRed:         "1",
	core.ColorYellow:      "3",
	core.ColorBlue:        "4",
	core.ColorGray:        "245",
	core.ColorBrightWhite: "15",
	core.ColorBrightCyan:  "14",
}

// ScreenRenderer turns Screen buffers into styled strings.
// Each SSH session gets its own so colour profiles follow the client terminal.
type ScreenRenderer struct {
	r *lipgloss.Renderer
}

// NewScreenRenderer wraps r; nil uses the process-wide default renderer.
func NewScreenRenderer(r *lipgloss.Renderer) *ScreenRenderer {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return &ScreenRenderer{r: r}
}

// style builds the lipgloss style for a cell.
func (sr *ScreenRenderer) style(c core.Cell) lipgloss.Style {
	st := sr.r.NewStyle()
	if code, ok := ansiCodes[c.Color]; ok {
		st = st.Foreground(lipgloss.Color(code))
	}
	if c.HasFg {
		st = st.Foreground(lipgloss.Color(c.Fg.Hex()))
	}
	if c.HasBg {
		st = st.Background(lipgloss.Color(c.Bg.Hex()))
	}
	return st
}

// Render converts a Screen buffer to a styled string for display.
// Adjacent cells with the same style are emitted as one run.
func (sr *ScreenRenderer) Render(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			first := s.GetCell(x, y)

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if !cell.SameStyle(first) {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(sr.style(first).Render(run.String()))
		}
	}
	return sb.String()
}

// RenderScreen renders s with the default renderer.
func RenderScreen(s *core.Screen) string {
	return NewScreenRenderer(nil).Render(s)
}
