package main

import (
	"errors"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/mode-runner/internal/registry"
	"github.com/vovakirdan/mode-runner/internal/storage"
)

var flagClearScores bool

var scoresCmd = &cobra.Command{
	Use:   "scores [level]",
	Short: "Show high scores",
	Long: `Display the top 10 runs for the specified level, or a per-level
summary when no level is given.

Examples:
  moderun scores
  moderun scores proving-grounds
  moderun scores warmup --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClearScores, "clear", false, "Delete all runs for the level")
}

func runScores(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("error opening runs database: %w", err)
	}
	defer store.Close()

	if len(args) == 0 {
		if flagClearScores {
			return errors.New("--clear needs a level id")
		}
		return printSummary(store)
	}

	levelID := args[0]
	if !registry.Exists(levelID) {
		return fmt.Errorf("unknown level %q; run 'moderun list' to see available levels", levelID)
	}
	level, err := registry.Create(levelID)
	if err != nil {
		return err
	}

	if flagClearScores {
		if err := store.ClearScores(levelID); err != nil {
			return err
		}
		fmt.Printf("Cleared runs for %s\n", level.Name)
		return nil
	}

	runs, err := store.TopRuns(levelID, 10)
	if err != nil {
		return fmt.Errorf("error retrieving runs: %w", err)
	}

	fmt.Printf("High Scores - %s\n", level.Name)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'moderun play %s' to set the first high score!\n", levelID)
		return nil
	}

	fmt.Printf("  %-4s  %-7s  %-8s  %-15s  %-10s  %s\n", "Rank", "Score", "Distance", "Died in", "Player", "Date")
	fmt.Printf("  %-4s  %-7s  %-8s  %-15s  %-10s  %s\n", "----", "-----", "--------", "-------", "------", "----")

	for i, r := range runs {
		player := r.Player
		if player == "" {
			player = "local"
		}
		fmt.Printf("  %-4d  %-7d  %-8.0f  %-15s  %-10s  %s\n",
			i+1, r.Score, r.Distance, r.Mode, player, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats(levelID)
	if err == nil {
		fmt.Println()
		fmt.Printf("Best: %d  |  Runs: %d  |  Average: %.1f  |  Furthest: %.0f\n",
			stats.HighScore, stats.Runs, stats.AvgScore, stats.BestDistance)
	}
	return nil
}

// printSummary prints one line per level that has recorded runs.
func printSummary(store *storage.Store) error {
	all, err := store.AllStats()
	if err != nil {
		return fmt.Errorf("error retrieving stats: %w", err)
	}

	if len(all) == 0 {
		fmt.Println("No runs recorded yet.")
		return nil
	}

	ids := make([]string, 0, len(all))
	for id := range all {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Printf("  %-20s  %-5s  %-6s  %-8s  %s\n", "Level", "Runs", "Best", "Average", "Last played")
	fmt.Printf("  %-20s  %-5s  %-6s  %-8s  %s\n", "-----", "----", "----", "-------", "-----------")
	for _, id := range ids {
		s := all[id]
		fmt.Printf("  %-20s  %-5d  %-6d  %-8.1f  %s\n",
			id, s.Runs, s.HighScore, s.AvgScore, s.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}
