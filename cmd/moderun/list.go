package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/mode-runner/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available levels",
	Long:  `Shows a list of all built-in levels.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	infos := registry.List()

	if len(infos) == 0 {
		fmt.Println("No levels available.")
		return
	}

	fmt.Println("Available levels:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, info := range infos {
		if len(info.ID) > maxIDLen {
			maxIDLen = len(info.ID)
		}
	}

	fmt.Printf("  %-*s  %-22s  %s\n", maxIDLen, "ID", "Name", "Length")
	fmt.Printf("  %-*s  %-22s  %s\n", maxIDLen, "--", "----", "------")

	for _, info := range infos {
		length := "?"
		if l, err := registry.Create(info.ID); err == nil {
			length = fmt.Sprintf("%.0f", l.Length())
		}
		fmt.Printf("  %-*s  %-22s  %s\n", maxIDLen, info.ID, info.Name, length)
	}

	fmt.Println()
	fmt.Println("Run 'moderun play <id>' to play a level.")
}
