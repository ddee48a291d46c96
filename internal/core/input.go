package core

import "sync"

// Action represents a semantic input action, abstracted from physical key presses.
// This allows the platform to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionJump           // Space, W, Up, left mouse - the single gameplay input
	ActionDebug          // D - toggle debug overlay
	ActionConfirm        // Enter - confirm selection in menu
	ActionBack           // B, Escape - go back to menu
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P - pause/unpause
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJump:
		return "Jump"
	case ActionDebug:
		return "Debug"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// InputSnapshot is the per-frame view of the jump and debug inputs.
// It is computed exactly once per rendered frame and held constant across
// every fixed sub-step of that frame.
type InputSnapshot struct {
	JumpPressed  bool // Edge: not-held -> held since the previous frame
	JumpHeld     bool // Level: held at the frame boundary
	JumpReleased bool // Edge: held -> not-held since the previous frame
	DebugToggled bool // Edge: debug key pressed since the previous frame
}

// InputLatch turns raw device events into InputSnapshots.
// A press is latched until the next Update, so a press during a frame with
// zero or several sub-steps is never lost or duplicated.
// Raw events may arrive from any goroutine.
type InputLatch struct {
	mu       sync.Mutex
	down     bool // Current physical state
	downPrev bool // Physical state at the previous Update
	pressed  bool // Latched press edge
	debug    bool // Latched debug toggle
}

// NewInputLatch creates a latch with the jump input released.
func NewInputLatch() *InputLatch {
	return &InputLatch{}
}

// Press records the jump input going down.
// Auto-repeat presses while already held are ignored.
func (l *InputLatch) Press() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.down {
		l.pressed = true
	}
	l.down = true
}

// Release records the jump input going up.
func (l *InputLatch) Release() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.down = false
}

// Tap records a press immediately followed by a release.
// Used for devices that report key presses without key releases (terminals).
func (l *InputLatch) Tap() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.down {
		l.pressed = true
	}
	l.down = false
}

// ToggleDebug records a debug-toggle key press.
func (l *InputLatch) ToggleDebug() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.debug = true
}

// Update computes the snapshot for the current frame and clears the latches.
// Call once per rendered frame, before the simulation runs.
func (l *InputLatch) Update() InputSnapshot {
	l.mu.Lock()
	defer l.mu.Unlock()

	snap := InputSnapshot{
		JumpPressed:  l.pressed,
		JumpHeld:     l.down,
		JumpReleased: !l.down && l.downPrev,
		DebugToggled: l.debug,
	}

	l.downPrev = l.down
	l.pressed = false
	l.debug = false

	return snap
}

// Reset releases the input and drops any latched edges.
func (l *InputLatch) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.down = false
	l.downPrev = false
	l.pressed = false
	l.debug = false
}
