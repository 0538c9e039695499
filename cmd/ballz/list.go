package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-ballz/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available modes",
	Long:  `Display all registered game modes with their IDs and titles.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No modes registered.")
		return
	}

	// Find longest ID for alignment
	maxLen := 0
	for _, g := range games {
		if len(g.ID) > maxLen {
			maxLen = len(g.ID)
		}
	}

	fmt.Println("Available modes:")
	fmt.Println()
	for _, g := range games {
		fmt.Printf("  %-*s  %s\n", maxLen, g.ID, g.Title)
	}
	fmt.Println()
	fmt.Println("Play with: ballz play <mode>")
}
