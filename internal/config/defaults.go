package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the default runner configuration.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Physics: RunnerPhysics{
			Gravity:         1800,
			JumpImpulse:     650,
			FlapImpulse:     350,
			WaveSpeed:       300,
			FlipJumpImpulse: 650,
			ScrollSpeed:     510,
		},
		Forgiveness: RunnerForgiveness{
			JumpBufferTime: 0.1,
			CoyoteTime:     0.08,
		},
		Player: RunnerPlayer{
			Width:   40,
			Height:  40,
			ScreenX: 150,
		},
		Timing: RunnerTiming{
			TickRate:     60,
			MaxFrameTime: 0.25,
		},
		Camera: RunnerCamera{
			Smooth:     0.1,
			ViewHeight: 480,
		},
	}
}
