package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/blocky/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// gameKeys maps key strings to in-game actions.
var gameKeys = map[string]core.Action{
	"w":     core.ActionUp,
	"up":    core.ActionUp,
	"s":     core.ActionDown,
	"down":  core.ActionDown,
	"a":     core.ActionLeft,
	"left":  core.ActionLeft,
	"d":     core.ActionRight,
	"right": core.ActionRight,
	"]":     core.ActionDeeper,
	"[":     core.ActionShallower,
	".":     core.ActionRotateCW,
	">":     core.ActionRotateCW,
	",":     core.ActionRotateCCW,
	"<":     core.ActionRotateCCW,
	"h":     core.ActionSwapHorizontal,
	"v":     core.ActionSwapVertical,
	"x":     core.ActionSmash,
	" ":     core.ActionSmash,
	"enter": core.ActionConfirm,
	"b":     core.ActionBack,
	"esc":   core.ActionBack,
	"p":     core.ActionPause,
	"r":     core.ActionRestart,
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	}

	if a, ok := gameKeys[key]; ok {
		return a, false
	}
	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return isQuit
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionLeft
	MenuActionRight
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k":
		return MenuActionUp
	case "s", "down", "j":
		return MenuActionDown
	case "a", "left", "h":
		return MenuActionLeft
	case "d", "right", "l":
		return MenuActionRight
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}
