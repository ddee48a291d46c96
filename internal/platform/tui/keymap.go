package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/mode-runner/internal/core"
)

// KeyMapper translates Bubble Tea key and mouse messages to actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an in-game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case " ", "up", "w":
		return core.ActionJump, false
	case "d":
		return core.ActionDebug, false
	case "p":
		return core.ActionPause, false
	case "b", "esc":
		return core.ActionBack, false
	case "enter":
		return core.ActionConfirm, false
	}

	return core.ActionNone, false
}

// ApplyKey feeds a key message into the input latch.
// Terminals report presses but not releases, so a jump key is a tap.
// Returns the mapped action for the caller to handle non-jump actions.
func (km *KeyMapper) ApplyKey(msg tea.KeyMsg, latch *core.InputLatch) core.Action {
	action, _ := km.MapKey(msg)
	switch action {
	case core.ActionJump:
		latch.Tap()
	case core.ActionDebug:
		latch.ToggleDebug()
	}
	return action
}

// ApplyMouse feeds a left-button mouse event into the input latch.
// Mouse events carry real press and release edges, so holding the button
// holds the jump.
func (km *KeyMapper) ApplyMouse(msg tea.MouseMsg, latch *core.InputLatch) {
	if msg.Button != tea.MouseButtonLeft {
		return
	}
	switch msg.Action {
	case tea.MouseActionPress:
		latch.Press()
	case tea.MouseActionRelease:
		latch.Release()
	}
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
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
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}
