package core

// RuntimeConfig contains configuration passed from the platform layer.
// The simulation itself only needs the tick rate; screen size is consumed
// by rendering.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Rendered frames per second requested from the driver (default 60)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState is the coarse session status reported to the platform.
type GameState struct {
	Score int    // floor(distance / 10)
	Dead  bool   // Terminal until the next reset
	Mode  string // Name of the active mode
}

// EventKind identifies a notable transition inside a frame.
type EventKind int

const (
	EventModeChanged EventKind = iota // A mode trigger fired
	EventDied                         // Player hit an obstacle
	EventRestarted                    // Session was reset after death
	EventDebugToggled                 // Debug overlay flag flipped
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventModeChanged:
		return "mode_changed"
	case EventDied:
		return "died"
	case EventRestarted:
		return "restarted"
	case EventDebugToggled:
		return "debug_toggled"
	default:
		return "unknown"
	}
}

// Event is emitted by the simulation for observers (logging, score saving).
// Observers never write back into the simulation.
type Event struct {
	Kind     EventKind
	Mode     string  // Active mode after the event
	Score    int     // Score at the moment of the event
	Distance float64 // Scroll distance at the moment of the event
}

// StepResult is returned after each rendered frame.
// Contains the updated state and the events raised during that frame,
// in the order they happened.
type StepResult struct {
	State    GameState
	Events   []Event
	SubSteps int // Fixed sub-steps executed this frame
}
