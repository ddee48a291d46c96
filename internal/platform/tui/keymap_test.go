package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/mode-runner/internal/core"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{tea.KeyMsg{Type: tea.KeySpace}, core.ActionJump, false},
		{tea.KeyMsg{Type: tea.KeyUp}, core.ActionJump, false},
		{runeKey("w"), core.ActionJump, false},
		{runeKey("d"), core.ActionDebug, false},
		{runeKey("p"), core.ActionPause, false},
		{runeKey("b"), core.ActionBack, false},
		{tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, false},
		{tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{runeKey("q"), core.ActionQuit, true},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{runeKey("x"), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.msg.String(), func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			assert.Equal(t, tt.action, action)
			assert.Equal(t, tt.quit, quit)
		})
	}
}

func TestApplyKeyTapsJump(t *testing.T) {
	km := NewKeyMapper()
	latch := core.NewInputLatch()

	assert.Equal(t, core.ActionJump, km.ApplyKey(tea.KeyMsg{Type: tea.KeySpace}, latch))

	snap := latch.Update()
	assert.True(t, snap.JumpPressed)
	assert.False(t, snap.JumpHeld, "terminal keys never hold the jump")

	snap = latch.Update()
	assert.False(t, snap.JumpPressed, "a tap is reported once")
}

func TestApplyKeyDebug(t *testing.T) {
	km := NewKeyMapper()
	latch := core.NewInputLatch()

	km.ApplyKey(runeKey("d"), latch)
	assert.True(t, latch.Update().DebugToggled)
	assert.False(t, latch.Update().DebugToggled)
}

func TestApplyMouseHoldsJump(t *testing.T) {
	km := NewKeyMapper()
	latch := core.NewInputLatch()

	km.ApplyMouse(tea.MouseMsg{Button: tea.MouseButtonLeft, Action: tea.MouseActionPress}, latch)
	snap := latch.Update()
	assert.True(t, snap.JumpPressed)
	assert.True(t, snap.JumpHeld)

	snap = latch.Update()
	assert.False(t, snap.JumpPressed)
	assert.True(t, snap.JumpHeld)

	km.ApplyMouse(tea.MouseMsg{Button: tea.MouseButtonLeft, Action: tea.MouseActionRelease}, latch)
	snap = latch.Update()
	assert.True(t, snap.JumpReleased)
	assert.False(t, snap.JumpHeld)
}

func TestApplyMouseIgnoresOtherButtons(t *testing.T) {
	km := NewKeyMapper()
	latch := core.NewInputLatch()

	km.ApplyMouse(tea.MouseMsg{Button: tea.MouseButtonRight, Action: tea.MouseActionPress}, latch)
	assert.Equal(t, core.InputSnapshot{}, latch.Update())
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	assert.Equal(t, MenuActionUp, km.MapKeyToMenuAction(runeKey("k")))
	assert.Equal(t, MenuActionDown, km.MapKeyToMenuAction(tea.KeyMsg{Type: tea.KeyDown}))
	assert.Equal(t, MenuActionSelect, km.MapKeyToMenuAction(tea.KeyMsg{Type: tea.KeyEnter}))
	assert.Equal(t, MenuActionScoreboard, km.MapKeyToMenuAction(tea.KeyMsg{Type: tea.KeyTab}))
	assert.Equal(t, MenuActionQuit, km.MapKeyToMenuAction(runeKey("q")))
	assert.Equal(t, MenuActionNone, km.MapKeyToMenuAction(runeKey("z")))
}

func TestClockElapsed(t *testing.T) {
	start := time.Unix(1000, 0)
	c := NewClock(start)

	assert.InDelta(t, 0.5, c.Elapsed(start.Add(500*time.Millisecond)), 1e-9)
	assert.InDelta(t, 0.25, c.Elapsed(start.Add(750*time.Millisecond)), 1e-9)
	assert.Zero(t, c.Elapsed(start), "time going backwards yields zero")

	c.Restart(start.Add(10 * time.Second))
	assert.InDelta(t, 0.1, c.Elapsed(start.Add(10100*time.Millisecond)), 1e-9)
}
