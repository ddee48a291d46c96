package runner

import (
	"github.com/vovakirdan/mode-runner/internal/config"
	"github.com/vovakirdan/mode-runner/internal/core"
)

// Foot sample offsets as a fraction of player width.
const (
	footLeft  = 0.2
	footRight = 0.8
)

// Surfaces gives the integrator height lookups for both terrain polylines.
// *Level implements it.
type Surfaces interface {
	FloorAt(x float64) float64
	CeilingAt(x float64) float64
}

// Player is the kinematic state of the single controllable box.
// OnGround is recomputed by Integrate on every sub-step and is never set
// from outside except by a jump clearing it.
type Player struct {
	X, Y   float64 // Top-left corner in world space
	VX, VY float64 // VX is unused for locomotion; the world scrolls instead
	Width  float64
	Height float64

	OnGround        bool
	JumpHoldTimer   float64 // Reset on landing and jumping; no mode reads it
	JumpBufferTimer float64 // Seconds a queued jump stays pending
	CoyoteTimer     float64 // Seconds a jump stays legal after leaving ground

	physics     config.RunnerPhysics
	forgiveness config.RunnerForgiveness
}

// NewPlayer creates a player sized and tuned by cfg.
// Call Reset before the first sub-step.
func NewPlayer(cfg config.RunnerConfig) *Player {
	return &Player{
		Width:       cfg.Player.Width,
		Height:      cfg.Player.Height,
		physics:     cfg.Physics,
		forgiveness: cfg.Forgiveness,
	}
}

// Reset places the player standing on a floor of height groundY at world x.
func (p *Player) Reset(x, groundY float64) {
	p.X = x
	p.Y = groundY - p.Height
	p.VX = 0
	p.VY = 0
	p.OnGround = true
	p.JumpHoldTimer = 0
	p.JumpBufferTimer = 0
	p.CoyoteTimer = 0
}

// Box returns the collision rectangle.
func (p *Player) Box() core.Rect {
	return core.NewRect(p.X, p.Y, p.Width, p.Height)
}

// CanJump reports whether a jump is legal right now.
func (p *Player) CanJump() bool {
	return p.OnGround || p.CoyoteTimer > 0
}

// BufferJump queues a jump for the full buffer window.
// Called at most once per rendered frame, when the jump edge is not
// consumed by the active mode.
func (p *Player) BufferJump() {
	p.JumpBufferTimer = p.forgiveness.JumpBufferTime
}

// TryExecuteJump fires a pending jump if it is legal, then ages the buffer.
// Called once per fixed sub-step, before Integrate. Firing consumes the
// buffer, the coyote window and the ground contact together, so one press
// yields at most one jump.
func (p *Player) TryExecuteJump(dt float64) {
	if p.JumpBufferTimer > 0 && p.CanJump() {
		p.VY = -p.physics.JumpImpulse
		p.OnGround = false
		p.JumpHoldTimer = 0
		p.JumpBufferTimer = 0
		p.CoyoteTimer = 0
	}

	p.JumpBufferTimer = decay(p.JumpBufferTimer, dt)
}

// Integrate advances gravity and position by dt and resolves contact with
// the floor and ceiling. With gravityFlipped the ceiling is the surface the
// player stands on and gravity pulls upward.
func (p *Player) Integrate(dt float64, s Surfaces, gravityFlipped bool) {
	dir := 1.0
	if gravityFlipped {
		dir = -1.0
	}
	p.VY += p.physics.Gravity * dir * dt
	p.Y += p.VY * dt

	leftX := p.X + p.Width*footLeft
	rightX := p.X + p.Width*footRight
	wasOnGround := p.OnGround

	if gravityFlipped {
		// The lower of the two ceiling samples is the one the player meets first
		ceiling := max(s.CeilingAt(leftX), s.CeilingAt(rightX))
		p.resolveStanding(p.Y <= ceiling, ceiling, wasOnGround, dt)

		floor := min(s.FloorAt(leftX), s.FloorAt(rightX))
		if p.Y+p.Height >= floor {
			p.Y = floor - p.Height
			if p.VY > 0 {
				p.VY = 0
			}
		}
		return
	}

	floor := min(s.FloorAt(leftX), s.FloorAt(rightX))
	p.resolveStanding(p.Y+p.Height >= floor, floor-p.Height, wasOnGround, dt)

	ceiling := max(s.CeilingAt(leftX), s.CeilingAt(rightX))
	if p.Y <= ceiling {
		p.Y = ceiling
		if p.VY < 0 {
			p.VY = 0
		}
	}
}

// resolveStanding applies the primary-surface result of a sub-step.
// restY is the clamped top-left Y when in contact.
func (p *Player) resolveStanding(contact bool, restY float64, wasOnGround bool, dt float64) {
	if contact {
		p.Y = restY
		p.VY = 0
		p.OnGround = true
		p.JumpHoldTimer = 0
		p.CoyoteTimer = p.forgiveness.CoyoteTime
		return
	}

	p.OnGround = false
	if wasOnGround {
		// Grace starts at the moment of leaving ground
		p.CoyoteTimer = p.forgiveness.CoyoteTime
	} else {
		p.CoyoteTimer = decay(p.CoyoteTimer, dt)
	}
}

// decay counts a timer down by dt, stopping at zero.
func decay(timer, dt float64) float64 {
	if timer <= dt {
		return 0
	}
	return timer - dt
}
