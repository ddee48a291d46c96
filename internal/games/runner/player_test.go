package runner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/mode-runner/internal/config"
)

const dt = 1.0 / 60

func newTestPlayer(t *testing.T) (*Player, config.RunnerConfig) {
	t.Helper()
	cfg := config.DefaultRunnerConfig()
	p := NewPlayer(cfg)
	p.Reset(150, 400)
	return p, cfg
}

func TestPlayerResetStandsOnGround(t *testing.T) {
	p, _ := newTestPlayer(t)

	assert.Equal(t, 360.0, p.Y)
	assert.True(t, p.OnGround)
	assert.True(t, p.CanJump())
	assert.Zero(t, p.JumpBufferTimer)
	assert.Zero(t, p.CoyoteTimer)
}

func TestGroundedBufferedJumpFiresInOneSubStep(t *testing.T) {
	p, cfg := newTestPlayer(t)
	l := flatLevel()

	p.BufferJump()
	p.TryExecuteJump(dt)

	assert.Equal(t, -cfg.Physics.JumpImpulse, p.VY)
	assert.False(t, p.OnGround)
	assert.Zero(t, p.JumpBufferTimer)
	assert.Zero(t, p.CoyoteTimer)

	p.Integrate(dt, l, false)

	assert.InDelta(t, -cfg.Physics.JumpImpulse+cfg.Physics.Gravity*dt, p.VY, 1e-9)
	assert.False(t, p.OnGround)
	assert.Zero(t, p.CoyoteTimer, "a jump must not refill coyote time")
}

func TestCoyoteJumpFiresOnce(t *testing.T) {
	p, cfg := newTestPlayer(t)

	p.Y = 200
	p.OnGround = false
	p.CoyoteTimer = 0.05

	p.BufferJump()
	p.TryExecuteJump(dt)
	require.Equal(t, -cfg.Physics.JumpImpulse, p.VY)
	assert.Zero(t, p.CoyoteTimer)

	// Second press while still airborne: nothing to spend
	p.VY = 100
	p.BufferJump()
	p.TryExecuteJump(dt)
	assert.Equal(t, 100.0, p.VY)
}

func TestExpiredCoyoteDoesNothing(t *testing.T) {
	p, _ := newTestPlayer(t)

	p.Y = 200
	p.OnGround = false
	p.CoyoteTimer = 0
	p.VY = 50

	p.BufferJump()
	p.TryExecuteJump(dt)
	assert.Equal(t, 50.0, p.VY)
	assert.InDelta(t, 0.1-dt, p.JumpBufferTimer, 1e-9)
}

func TestBufferedPressExpiresInAir(t *testing.T) {
	p, _ := newTestPlayer(t)

	// High above a distant floor: the buffer window runs out before landing
	l := &Level{Floor: Polyline{{0, 10000}}}
	p.Y = 0
	p.OnGround = false

	p.BufferJump()
	for i := 0; i < 12; i++ {
		p.TryExecuteJump(dt)
		p.Integrate(dt, l, false)
		require.Greater(t, p.VY, 0.0, "no jump should fire while airborne, sub-step %d", i)
	}
	assert.Zero(t, p.JumpBufferTimer)

	// Land much later; the stale press must not fire
	p.Y = 10000 - p.Height - 0.1
	p.Integrate(dt, l, false)
	require.True(t, p.OnGround)
	p.TryExecuteJump(dt)
	assert.Zero(t, p.VY)
}

func TestBufferedPressFiresOnLanding(t *testing.T) {
	p, cfg := newTestPlayer(t)
	l := flatLevel()

	p.Y = 355
	p.VY = 300
	p.OnGround = false

	p.BufferJump()
	p.TryExecuteJump(dt) // Not yet legal
	assert.Equal(t, 300.0, p.VY)

	p.Integrate(dt, l, false)
	require.True(t, p.OnGround)
	assert.Equal(t, 360.0, p.Y)

	p.TryExecuteJump(dt)
	assert.Equal(t, -cfg.Physics.JumpImpulse, p.VY)
}

func TestCoyoteStartsWhenLeavingGround(t *testing.T) {
	p, cfg := newTestPlayer(t)
	l := flatLevel()

	// Standing flag set, but the floor is 100 units below: walked off a ledge
	p.Reset(150, 300)

	p.Integrate(dt, l, false)
	assert.False(t, p.OnGround)
	assert.Equal(t, cfg.Forgiveness.CoyoteTime, p.CoyoteTimer)

	p.Integrate(dt, l, false)
	assert.InDelta(t, cfg.Forgiveness.CoyoteTime-dt, p.CoyoteTimer, 1e-9)

	for i := 0; i < 10; i++ {
		p.Integrate(dt, l, false)
	}
	assert.GreaterOrEqual(t, p.CoyoteTimer, 0.0)
	assert.False(t, p.CanJump())
}

func TestIntegrateUsesHigherProbe(t *testing.T) {
	p, _ := newTestPlayer(t)

	// Step up at x=120: left probe (108) reads 400, right probe (132) reads 300
	l := &Level{Floor: Polyline{{0, 400}, {110, 400}, {120, 300}, {1000, 300}}}
	p.X = 100
	p.Y = 265
	p.VY = 0
	p.OnGround = false

	p.Integrate(dt, l, false)
	assert.True(t, p.OnGround)
	assert.Equal(t, 260.0, p.Y)
}

func TestIntegrateCeilingStopsUpwardMotion(t *testing.T) {
	p, _ := newTestPlayer(t)
	l := flatLevel()
	l.Ceiling = Polyline{{0, 100}, {100000, 100}}

	p.Y = 105
	p.VY = -600
	p.OnGround = false

	p.Integrate(dt, l, false)
	assert.Equal(t, 100.0, p.Y)
	assert.Zero(t, p.VY)
	assert.False(t, p.OnGround)
}

func TestIntegrateFlippedStandsOnCeiling(t *testing.T) {
	p, cfg := newTestPlayer(t)
	l := flatLevel()
	l.Ceiling = Polyline{{0, 100}, {100000, 100}}

	p.Y = 100.2
	p.VY = 0
	p.OnGround = false

	p.Integrate(dt, l, true)
	assert.True(t, p.OnGround)
	assert.Equal(t, 100.0, p.Y)
	assert.Zero(t, p.VY)
	assert.Equal(t, cfg.Forgiveness.CoyoteTime, p.CoyoteTimer)
}

func TestIntegrateFlippedFloorOnlyStopsDownwardMotion(t *testing.T) {
	p, _ := newTestPlayer(t)
	l := flatLevel()

	// Pushed into the floor while gravity pulls up
	p.Y = 361
	p.VY = 650
	p.OnGround = false

	p.Integrate(dt, l, true)
	assert.Equal(t, 360.0, p.Y)
	assert.Zero(t, p.VY)
	assert.False(t, p.OnGround, "floor is not the standing surface when flipped")
}
