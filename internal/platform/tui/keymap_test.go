package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-sidescroller/internal/core"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{"a", runeKey("a"), core.ActionLeft, false},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"d", runeKey("d"), core.ActionRight, false},
		{"space", tea.KeyMsg{Type: tea.KeySpace}, core.ActionJump, false},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionJump, false},
		{"f", runeKey("f"), core.ActionShoot, false},
		{"x", runeKey("x"), core.ActionShoot, false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{"r", runeKey("r"), core.ActionRestart, false},
		{"p", runeKey("p"), core.ActionPause, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause, false},
		{"q", runeKey("q"), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey("z"), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			assert.Equal(t, tt.action, action)
			assert.Equal(t, tt.quit, quit)
		})
	}
}

func TestHeld(t *testing.T) {
	assert.True(t, Held(core.ActionLeft))
	assert.True(t, Held(core.ActionRight))
	assert.True(t, Held(core.ActionJump))
	assert.False(t, Held(core.ActionShoot))
	assert.False(t, Held(core.ActionRestart))
	assert.False(t, Held(core.ActionPause))
}

func TestHoldTicks(t *testing.T) {
	assert.Equal(t, 18, HoldTicks(300*time.Millisecond, 60))
	assert.Equal(t, 1, HoldTicks(0, 60))
	assert.Equal(t, 1, HoldTicks(time.Millisecond, 60))
}

func TestHoldTrackerExpires(t *testing.T) {
	h := NewHoldTracker(3)
	h.Press(core.ActionRight)

	for i := range 3 {
		frame := core.NewInputFrame()
		h.Apply(&frame)
		require.True(t, frame.Has(core.ActionRight), "tick %d", i)
	}

	frame := core.NewInputFrame()
	h.Apply(&frame)
	assert.False(t, frame.Has(core.ActionRight))
	assert.False(t, h.Holding(core.ActionRight))
}

func TestHoldTrackerRepeatRefreshes(t *testing.T) {
	h := NewHoldTracker(2)
	h.Press(core.ActionLeft)

	frame := core.NewInputFrame()
	h.Apply(&frame)
	h.Press(core.ActionLeft)

	for range 2 {
		frame = core.NewInputFrame()
		h.Apply(&frame)
		assert.True(t, frame.Has(core.ActionLeft))
	}
}

func TestHoldTrackerOppositeDirection(t *testing.T) {
	h := NewHoldTracker(10)
	h.Press(core.ActionLeft)
	h.Press(core.ActionJump)
	h.Press(core.ActionRight)

	frame := core.NewInputFrame()
	h.Apply(&frame)
	assert.False(t, frame.Has(core.ActionLeft))
	assert.True(t, frame.Has(core.ActionRight))
	assert.True(t, frame.Has(core.ActionJump))

	h.Reset()
	assert.False(t, h.Holding(core.ActionRight))
	assert.False(t, h.Holding(core.ActionJump))
}

func TestDebounced(t *testing.T) {
	assert.True(t, Debounced(core.ActionShoot))
	assert.False(t, Debounced(core.ActionJump))
	assert.False(t, Debounced(core.ActionPause))
}

func TestHoldTrackerTriggerDropsRepeats(t *testing.T) {
	h := NewHoldTracker(2)
	require.True(t, h.Trigger(core.ActionShoot))
	assert.False(t, h.Trigger(core.ActionShoot), "repeat in the same tick")

	frame := core.NewInputFrame()
	h.Apply(&frame)
	assert.False(t, frame.Has(core.ActionShoot), "triggers are not held")
	assert.False(t, h.Trigger(core.ActionShoot), "repeat refreshes the window")

	for range 2 {
		frame = core.NewInputFrame()
		h.Apply(&frame)
	}
	assert.True(t, h.Trigger(core.ActionShoot), "re-armed after the window")

	h.Reset()
	assert.True(t, h.Trigger(core.ActionShoot))
}
