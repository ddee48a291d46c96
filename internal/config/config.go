// Package config provides YAML-based tuning configuration for the runner
// and static difficulty presets.
package config

import "fmt"

// RunnerConfig contains every tuning value of the runner simulation.
type RunnerConfig struct {
	Physics     RunnerPhysics     `yaml:"physics"`
	Forgiveness RunnerForgiveness `yaml:"forgiveness"`
	Player      RunnerPlayer      `yaml:"player"`
	Timing      RunnerTiming      `yaml:"timing"`
	Camera      RunnerCamera      `yaml:"camera"`
}

// RunnerPhysics defines accelerations and velocities, in world units per second.
type RunnerPhysics struct {
	Gravity         float64 `yaml:"gravity"`           // units/s^2, positive = down
	JumpImpulse     float64 `yaml:"jump_impulse"`      // StandardRunner jump speed
	FlapImpulse     float64 `yaml:"flap_impulse"`      // FlapFly upward speed per flap
	WaveSpeed       float64 `yaml:"wave_speed"`        // WaveToggle constant vertical speed
	FlipJumpImpulse float64 `yaml:"flip_jump_impulse"` // GravityFlip push-off speed
	ScrollSpeed     float64 `yaml:"scroll_speed"`      // World scroll speed
}

// RunnerForgiveness defines the jump forgiveness windows, in seconds.
type RunnerForgiveness struct {
	JumpBufferTime float64 `yaml:"jump_buffer_time"`
	CoyoteTime     float64 `yaml:"coyote_time"`
}

// RunnerPlayer defines the player box and its fixed offset from the scroll distance.
type RunnerPlayer struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	ScreenX float64 `yaml:"screen_x"`
}

// RunnerTiming defines the fixed-timestep loop.
type RunnerTiming struct {
	TickRate     int     `yaml:"tick_rate"`      // Fixed sub-steps per simulated second
	MaxFrameTime float64 `yaml:"max_frame_time"` // Elapsed time clamp per rendered frame
}

// RunnerCamera defines vertical camera smoothing.
type RunnerCamera struct {
	Smooth     float64 `yaml:"smooth"`      // Easing factor per sub-step, 0-1
	ViewHeight float64 `yaml:"view_height"` // Visible world height the camera centers on
}

// FixedDT returns the fixed sub-step duration in seconds.
func (c RunnerConfig) FixedDT() float64 {
	return 1.0 / float64(c.Timing.TickRate)
}

// Validate rejects configurations the simulation cannot run with.
func (c RunnerConfig) Validate() error {
	if c.Timing.TickRate <= 0 {
		return fmt.Errorf("config: tick_rate must be positive, got %d", c.Timing.TickRate)
	}
	if c.Timing.MaxFrameTime <= 0 {
		return fmt.Errorf("config: max_frame_time must be positive, got %v", c.Timing.MaxFrameTime)
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		return fmt.Errorf("config: player size must be positive, got %vx%v", c.Player.Width, c.Player.Height)
	}
	if c.Physics.ScrollSpeed <= 0 {
		return fmt.Errorf("config: scroll_speed must be positive, got %v", c.Physics.ScrollSpeed)
	}
	if c.Camera.Smooth < 0 || c.Camera.Smooth > 1 {
		return fmt.Errorf("config: camera smooth must be within [0, 1], got %v", c.Camera.Smooth)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficultyPreset converts a CLI value to a preset.
// An empty string means "use the config as loaded".
func ParseDifficultyPreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// presetScale holds the multipliers a preset applies.
type presetScale struct {
	speed  float64
	window float64 // Applied to both buffer and coyote windows
}

var presetScales = map[DifficultyPreset]presetScale{
	DifficultyEasy:   {speed: 0.85, window: 1.5},
	DifficultyNormal: {speed: 1.0, window: 1.0},
	DifficultyHard:   {speed: 1.2, window: 0.5},
}

// ApplyRunnerPreset modifies the config based on a difficulty preset.
// Presets are static: scroll speed stays constant for the whole session.
func ApplyRunnerPreset(cfg *RunnerConfig, preset DifficultyPreset) {
	scale, ok := presetScales[preset]
	if !ok {
		return
	}
	cfg.Physics.ScrollSpeed *= scale.speed
	cfg.Forgiveness.JumpBufferTime *= scale.window
	cfg.Forgiveness.CoyoteTime *= scale.window
}
