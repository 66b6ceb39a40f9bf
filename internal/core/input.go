package core

// Action is a player intent, independent of the key that produced it.
type Action int

const (
	ActionNone           Action = iota
	ActionUp                    // W, Up arrow - move cursor up
	ActionDown                  // S, Down arrow - move cursor down
	ActionLeft                  // A, Left arrow - move cursor left
	ActionRight                 // D, Right arrow - move cursor right
	ActionDeeper                // ] - select a smaller block
	ActionShallower             // [ - select a larger block
	ActionRotateCW              // . or > - rotate clockwise
	ActionRotateCCW             // , or < - rotate counter-clockwise
	ActionSwapHorizontal        // H - swap horizontally
	ActionSwapVertical          // V - swap vertically
	ActionSmash                 // X, Space - smash selected block
	ActionConfirm               // Enter - confirm selection in menu
	ActionBack                  // B, Escape - go back to menu
	ActionRestart               // R key - restart game after game over
	ActionQuit                  // Q, Ctrl+C - exit game/session
	ActionPause                 // P - pause/unpause game

	actionCount
)

var actionNames = map[Action]string{
	ActionNone:           "None",
	ActionUp:             "Up",
	ActionDown:           "Down",
	ActionLeft:           "Left",
	ActionRight:          "Right",
	ActionDeeper:         "Deeper",
	ActionShallower:      "Shallower",
	ActionRotateCW:       "RotateCW",
	ActionRotateCCW:      "RotateCCW",
	ActionSwapHorizontal: "SwapHorizontal",
	ActionSwapVertical:   "SwapVertical",
	ActionSmash:          "Smash",
	ActionConfirm:        "Confirm",
	ActionBack:           "Back",
	ActionRestart:        "Restart",
	ActionQuit:           "Quit",
	ActionPause:          "Pause",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// InputFrame is the set of actions triggered during one tick. The zero
// value is an empty frame.
type InputFrame struct {
	bits uint64
}

// NewInputFrame returns an empty frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// FrameOf returns a frame with the given actions set.
func FrameOf(actions ...Action) InputFrame {
	var f InputFrame
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

// Set marks a as triggered. Actions outside the known range are ignored.
func (f *InputFrame) Set(a Action) {
	if a <= ActionNone || a >= actionCount {
		return
	}
	f.bits |= 1 << uint(a)
}

// Has reports whether a was triggered.
func (f InputFrame) Has(a Action) bool {
	return a > ActionNone && a < actionCount && f.bits&(1<<uint(a)) != 0
}

func (f InputFrame) Empty() bool { return f.bits == 0 }

func (f *InputFrame) Clear() { f.bits = 0 }

// Actions lists the triggered actions in declaration order.
func (f InputFrame) Actions() []Action {
	var out []Action
	for a := ActionNone + 1; a < actionCount; a++ {
		if f.Has(a) {
			out = append(out, a)
		}
	}
	return out
}
