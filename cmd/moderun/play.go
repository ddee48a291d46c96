package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/mode-runner/internal/config"
	"github.com/vovakirdan/mode-runner/internal/core"
	"github.com/vovakirdan/mode-runner/internal/games/runner"
	"github.com/vovakirdan/mode-runner/internal/games/runner/levels"
	"github.com/vovakirdan/mode-runner/internal/platform/tui"
	"github.com/vovakirdan/mode-runner/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
	flagLevelFile  string
	flagWatch      bool
)

var playCmd = &cobra.Command{
	Use:   "play [level]",
	Short: "Play a level",
	Long: `Start playing the specified level (default: proving-grounds).

Controls:
  Space/Up/W/Click  - Jump (hold the mouse button to hold the jump)
  D                 - Toggle debug overlay
  P                 - Pause
  B/Esc             - Back (when dead or paused)
  Ctrl+S            - Save a screenshot
  Q/Ctrl+C          - Quit

Difficulty options:
  easy    - Slower scroll, wider jump buffer and coyote windows
  normal  - Config as loaded
  hard    - Faster scroll, tighter windows

Examples:
  moderun play
  moderun play warmup --difficulty easy
  moderun play --config ./my-runner.yaml
  moderun play --level-file ./my-level.yaml --watch`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom runner config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().StringVar(&flagLevelFile, "level-file", "", "Play a level from a YAML file instead of a built-in")
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload --level-file on change (applied on the next restart)")

	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom runner config YAML")
	menuCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

// loadRunnerConfig loads the runner config and applies --difficulty.
func loadRunnerConfig() (config.RunnerConfig, error) {
	preset, err := config.ParseDifficultyPreset(flagDifficulty)
	if err != nil {
		return config.RunnerConfig{}, err
	}
	cfg, err := config.LoadRunner(flagConfig)
	if err != nil {
		return config.RunnerConfig{}, err
	}
	config.ApplyRunnerPreset(&cfg, preset)
	return cfg, nil
}

// runtimeConfig sizes the screen from the attached terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	return cfg
}

func resolveLevel(args []string) (*runner.Level, error) {
	switch {
	case flagLevelFile != "" && len(args) > 0:
		return nil, errors.New("pass either a level id or --level-file, not both")
	case flagLevelFile != "":
		return levels.LoadFile(flagLevelFile)
	case len(args) > 0:
		if !registry.Exists(args[0]) {
			return nil, fmt.Errorf("unknown level %q; run 'moderun list' to see available levels", args[0])
		}
		return registry.Create(args[0])
	default:
		return registry.Create(levels.DefaultLevelID)
	}
}

func runPlay(cmd *cobra.Command, args []string) error {
	if flagWatch && flagLevelFile == "" {
		return errors.New("--watch requires --level-file")
	}

	logger, closeLog, err := newLogger(io.Discard, "moderun")
	if err != nil {
		return err
	}
	defer closeLog()

	runnerCfg, err := loadRunnerConfig()
	if err != nil {
		return err
	}

	level, err := resolveLevel(args)
	if err != nil {
		return err
	}

	opts := tui.GameOptions{
		Level:   level,
		Runner:  runnerCfg,
		Runtime: runtimeConfig(),
		Logger:  logger,
		Player:  os.Getenv("USER"),
	}

	if flagWatch {
		w, err := levels.Watch(flagLevelFile)
		if err != nil {
			return err
		}
		defer w.Close()
		opts.Watcher = w
		logger.Info("watching level file", "path", w.Path())
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}
	opts.Store = store

	if _, err := tui.Run(opts); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
