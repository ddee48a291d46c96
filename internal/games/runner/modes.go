package runner

import (
	"fmt"

	"github.com/vovakirdan/mode-runner/internal/config"
	"github.com/vovakirdan/mode-runner/internal/core"
)

// World is the mutable simulation context shared by the orchestrator, the
// active mode and the integrator. Everything a mode may touch lives here.
type World struct {
	Player *Player

	// GravityFlipped is the only channel through which a mode changes how the
	// integrator behaves. Modes must not reach further into physics.
	GravityFlipped bool

	Physics config.RunnerPhysics
}

// ModeKind names one of the closed set of gameplay modes.
type ModeKind int

const (
	KindStandardRunner ModeKind = iota
	KindFlapFly
	KindWaveToggle
	KindGravityFlip
	modeKindCount
)

// String returns the canonical mode name used in level files and the HUD.
func (k ModeKind) String() string {
	switch k {
	case KindStandardRunner:
		return "StandardRunner"
	case KindFlapFly:
		return "FlapFly"
	case KindWaveToggle:
		return "WaveToggle"
	case KindGravityFlip:
		return "GravityFlip"
	default:
		return fmt.Sprintf("ModeKind(%d)", int(k))
	}
}

// Valid reports whether k is one of the defined modes.
func (k ModeKind) Valid() bool {
	return k >= 0 && k < modeKindCount
}

// Color returns the display color tag of the mode.
func (k ModeKind) Color() core.Color {
	switch k {
	case KindFlapFly:
		return core.ColorYellow
	case KindWaveToggle:
		return core.ColorBlue
	case KindGravityFlip:
		return core.ColorPurple
	default:
		return core.ColorRed
	}
}

// ParseModeKind resolves a mode name from level data.
// "CubeRunner" is accepted as an alias of StandardRunner.
func ParseModeKind(name string) (ModeKind, error) {
	switch name {
	case "StandardRunner", "CubeRunner":
		return KindStandardRunner, nil
	case "FlapFly":
		return KindFlapFly, nil
	case "WaveToggle":
		return KindWaveToggle, nil
	case "GravityFlip":
		return KindGravityFlip, nil
	default:
		return 0, fmt.Errorf("unknown mode %q", name)
	}
}

// JumpResult tells the dispatcher whether a mode consumed a jump press.
type JumpResult int

const (
	// Fallthrough asks for the default buffered jump.
	Fallthrough JumpResult = iota
	// Handled means the mode fully replaced the default jump.
	Handled
)

// Mode is one variant of the gameplay mode sum type.
// Each variant carries its own private state.
type Mode interface {
	Kind() ModeKind
	Enter(w *World)
	Exit(w *World)
	OnJumpPress(w *World) JumpResult
	OnJumpRelease(w *World)
	// Update runs once per sub-step after physics and may overwrite velocity.
	Update(w *World, dt float64)
}

// NewMode creates a fresh instance of the given mode.
// Unknown kinds yield StandardRunner.
func NewMode(k ModeKind) Mode {
	switch k {
	case KindFlapFly:
		return &FlapFly{}
	case KindWaveToggle:
		return &WaveToggle{direction: 1}
	case KindGravityFlip:
		return &GravityFlip{}
	default:
		return &StandardRunner{}
	}
}

// StandardRunner relies entirely on the buffered jump and coyote time.
type StandardRunner struct{}

func (*StandardRunner) Kind() ModeKind                { return KindStandardRunner }
func (*StandardRunner) Enter(*World)                  {}
func (*StandardRunner) Exit(*World)                   {}
func (*StandardRunner) OnJumpPress(*World) JumpResult { return Fallthrough }
func (*StandardRunner) OnJumpRelease(*World)          {}
func (*StandardRunner) Update(*World, float64)        {}

// FlapFly gives an upward impulse on every press, grounded or not.
// Gravity keeps integrating normally.
type FlapFly struct{}

func (*FlapFly) Kind() ModeKind { return KindFlapFly }
func (*FlapFly) Enter(*World)   {}
func (*FlapFly) Exit(*World)    {}

func (*FlapFly) OnJumpPress(w *World) JumpResult {
	w.Player.VY = -w.Physics.FlapImpulse
	return Handled
}

func (*FlapFly) OnJumpRelease(*World)   {}
func (*FlapFly) Update(*World, float64) {}

// WaveToggle moves at constant vertical speed; each press reverses direction.
type WaveToggle struct {
	direction float64 // +1 down, -1 up
}

func (*WaveToggle) Kind() ModeKind { return KindWaveToggle }

// Enter starts the wave moving up.
func (m *WaveToggle) Enter(w *World) {
	m.direction = -1
	w.Player.VY = m.direction * w.Physics.WaveSpeed
}

func (m *WaveToggle) Exit(*World) {
	m.direction = 1
}

func (m *WaveToggle) OnJumpPress(w *World) JumpResult {
	m.direction = -m.direction
	w.Player.VY = m.direction * w.Physics.WaveSpeed
	return Handled
}

func (*WaveToggle) OnJumpRelease(*World) {}

// Update re-asserts the wave velocity, discarding the gravity the integrator
// applied earlier in the same sub-step.
func (m *WaveToggle) Update(w *World, _ float64) {
	w.Player.VY = m.direction * w.Physics.WaveSpeed
}

// Direction returns +1 when moving down and -1 when moving up.
func (m *WaveToggle) Direction() float64 {
	return m.direction
}

// GravityFlip inverts gravity on each press and pushes off toward the new floor.
type GravityFlip struct {
	flipped bool
}

func (*GravityFlip) Kind() ModeKind { return KindGravityFlip }

func (m *GravityFlip) Enter(w *World) {
	m.flipped = false
	w.GravityFlipped = false
}

func (m *GravityFlip) Exit(w *World) {
	m.flipped = false
	w.GravityFlipped = false
}

func (m *GravityFlip) OnJumpPress(w *World) JumpResult {
	m.flipped = !m.flipped
	w.GravityFlipped = m.flipped
	if m.flipped {
		w.Player.VY = w.Physics.FlipJumpImpulse
	} else {
		w.Player.VY = -w.Physics.FlipJumpImpulse
	}
	return Handled
}

func (*GravityFlip) OnJumpRelease(*World)   {}
func (*GravityFlip) Update(*World, float64) {}

// ModeMachine holds the single active mode.
type ModeMachine struct {
	active Mode
}

// Active returns the current mode.
func (m *ModeMachine) Active() Mode {
	return m.active
}

// Switch exits the current mode, installs next and enters it.
// The whole exchange happens inside one call, so no sub-step ever observes
// a half-switched machine.
func (m *ModeMachine) Switch(w *World, next Mode) {
	if m.active != nil {
		m.active.Exit(w)
	}
	m.active = next
	m.active.Enter(w)
}

// JumpPressed offers a jump edge to the active mode and falls back to the
// buffered jump when the mode does not handle it.
func (m *ModeMachine) JumpPressed(w *World) JumpResult {
	res := m.active.OnJumpPress(w)
	if res == Fallthrough {
		w.Player.BufferJump()
	}
	return res
}

// JumpReleased forwards a release edge to the active mode.
func (m *ModeMachine) JumpReleased(w *World) {
	m.active.OnJumpRelease(w)
}

// Update runs the active mode's per-sub-step hook.
func (m *ModeMachine) Update(w *World, dt float64) {
	m.active.Update(w, dt)
}
