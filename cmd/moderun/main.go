// moderun is a terminal auto-runner: the world scrolls at a constant speed,
// one jump input drives the player, and portals switch the control mode.
//
// Usage:
//
//	moderun list               - List available levels
//	moderun play [level]       - Play a level
//	moderun menu               - Pick levels interactively
//	moderun serve              - Start SSH server for remote play
//	moderun scores [level]     - Show high scores
//	moderun validate <file>    - Check a level file
//
// Global flags:
//
//	--fps <rate>         - Rendered frames per second (default: 60)
//	--db <path>          - Database path (default: ~/.arcade/moderun.db)
//	--log-level <level>  - debug, info, warn or error (default: info)
//	--log-file <path>    - Append logs to a file
//	--levels-dir <path>  - Extra level files (default: ~/.arcade/levels)
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/mode-runner/internal/games/runner/levels"
	"github.com/vovakirdan/mode-runner/internal/storage"
)

var (
	// Global flags
	flagFPS      int
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string
	flagLevels   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "moderun",
	Short: "Mode Runner - a one-button auto-runner for your terminal",
	Long: `Mode Runner scrolls a level past a player you control with a single
jump input. Portals along the course switch how that input behaves:
standard jumps, flapping, wave toggling and gravity flipping.

Available commands:
  list      - Show all available levels
  play      - Play a specific level directly
  menu      - Interactive level picker
  serve     - Start SSH server for remote play
  scores    - View high scores
  validate  - Check a level file

Examples:
  moderun list
  moderun play proving-grounds
  moderun play --level-file ./my-level.yaml --watch
  moderun menu
  moderun serve --ssh :2222
  moderun scores warmup`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: registerUserLevels,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Rendered frames per second")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to runs database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLevels, "levels-dir", "~/.arcade/levels", "Directory of extra level files")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(validateCmd)
}

// registerUserLevels adds the levels found under --levels-dir to the registry.
// Built-in IDs win over user files with the same ID.
func registerUserLevels(_ *cobra.Command, _ []string) error {
	dir := flagLevels
	if strings.HasPrefix(dir, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("cannot expand home directory: %w", err)
		}
		dir = filepath.Join(home, dir[1:])
	}
	if _, err := levels.RegisterDir(dir); err != nil {
		fmt.Fprintf(os.Stderr, "warning: skipping levels in %s: %v\n", dir, err)
	}
	return nil
}

// newLogger builds the process logger from the global flags.
// Without --log-file, output goes to fallback; interactive commands pass
// io.Discard so log lines never land on the alt screen.
// The returned closer must be called before exit.
func newLogger(fallback io.Writer, prefix string) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	out := fallback
	closer := func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out = f
		closer = func() { f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	return logger, closer, nil
}

// openStore opens the runs database, or returns nil with a warning so the
// game still works without high scores.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		logger.Warn("could not open runs database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}
