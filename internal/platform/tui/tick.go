// Package tui runs Blocky in a terminal: the Bubble Tea models for the
// menu, setup, game and score screens, key mapping, ANSI rendering and the
// SSH front end.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// maxTickRate caps how often the model redraws.
const maxTickRate = 120

// TickMsg drives one Step of the running game.
type TickMsg time.Time

func tickInterval(rate int) time.Duration {
	switch {
	case rate <= 0:
		rate = 1
	case rate > maxTickRate:
		rate = maxTickRate
	}
	return time.Second / time.Duration(rate)
}

func tickCmd(rate int) tea.Cmd {
	return tea.Tick(tickInterval(rate), func(t time.Time) tea.Msg { return TickMsg(t) })
}
