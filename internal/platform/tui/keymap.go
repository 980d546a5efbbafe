package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-sidescroller/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "left", "a", "h":
		return core.ActionLeft, false
	case "right", "d", "l":
		return core.ActionRight, false
	case " ", "space", "up", "w", "k":
		return core.ActionJump, false
	case "f", "x", "j":
		return core.ActionShoot, false
	case "enter":
		return core.ActionConfirm, false
	case "r":
		return core.ActionRestart, false
	case "p", "esc":
		return core.ActionPause, false
	}
	return core.ActionNone, false
}

// Held reports whether a stays active between key events.
func Held(a core.Action) bool {
	switch a {
	case core.ActionLeft, core.ActionRight, core.ActionJump:
		return true
	}
	return false
}

// Debounced reports whether auto-repeats of a are dropped. A held key
// fires once; releasing it for the hold window re-arms it.
func Debounced(a core.Action) bool {
	return a == core.ActionShoot
}

// DefaultHold is how long a movement key counts as held after its last
// press or auto-repeat. It covers the terminal's initial repeat delay.
const DefaultHold = 300 * time.Millisecond

// HoldTicks converts a hold duration to ticks at tickRate, at least one.
func HoldTicks(hold time.Duration, tickRate int) int {
	return max(1, int(hold*time.Duration(tickRate)/time.Second))
}

// HoldTracker turns key presses into held state. Terminals only report
// presses and auto-repeats, never releases, so a key stays held for a
// number of ticks after each press.
type HoldTracker struct {
	ticks  int
	left   map[core.Action]int
	repeat map[core.Action]int
}

// NewHoldTracker creates a tracker that holds keys for ticks ticks.
func NewHoldTracker(ticks int) *HoldTracker {
	return &HoldTracker{
		ticks:  max(1, ticks),
		left:   make(map[core.Action]int),
		repeat: make(map[core.Action]int),
	}
}

// Press starts or refreshes the hold on a. Pressing one direction
// releases the other.
func (h *HoldTracker) Press(a core.Action) {
	switch a {
	case core.ActionLeft:
		delete(h.left, core.ActionRight)
	case core.ActionRight:
		delete(h.left, core.ActionLeft)
	}
	h.left[a] = h.ticks
}

// Trigger reports whether a press of a should fire. A press inside the
// hold window of the previous one is an auto-repeat and does not fire,
// but it extends the window.
func (h *HoldTracker) Trigger(a core.Action) bool {
	fire := h.repeat[a] == 0
	h.repeat[a] = h.ticks
	return fire
}

// Apply adds every held action to frame and ages the holds by one tick.
func (h *HoldTracker) Apply(frame *core.InputFrame) {
	for a, n := range h.left {
		frame.Set(a)
		age(h.left, a, n)
	}
	for a, n := range h.repeat {
		age(h.repeat, a, n)
	}
}

func age(m map[core.Action]int, a core.Action, n int) {
	if n <= 1 {
		delete(m, a)
	} else {
		m[a] = n - 1
	}
}

// Holding reports whether a is currently held.
func (h *HoldTracker) Holding(a core.Action) bool {
	return h.left[a] > 0
}

// Reset releases every key.
func (h *HoldTracker) Reset() {
	clear(h.left)
	clear(h.repeat)
}
