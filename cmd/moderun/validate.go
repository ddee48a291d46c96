package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/mode-runner/internal/games/runner/levels"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Check a level file",
	Long: `Load and validate a YAML level file and print a summary.

Exits with status 1 and the validation error if the file is invalid.

Examples:
  moderun validate ./my-level.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	level, err := levels.LoadFile(args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s (%s): OK\n", level.Name, level.ID)
	fmt.Fprintf(out, "  length:    %.0f\n", level.Length())
	fmt.Fprintf(out, "  floor:     %d points\n", len(level.Floor))
	if len(level.Ceiling) > 0 {
		fmt.Fprintf(out, "  ceiling:   %d points\n", len(level.Ceiling))
	} else {
		fmt.Fprintln(out, "  ceiling:   none")
	}
	fmt.Fprintf(out, "  obstacles: %d\n", len(level.Obstacles))
	fmt.Fprintf(out, "  triggers:  %d\n", len(level.Triggers))
	for _, tr := range level.Triggers {
		fmt.Fprintf(out, "    %8.0f  %s\n", tr.AtDistance, tr.Mode)
	}
	return nil
}
