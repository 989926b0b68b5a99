package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/candy-maze/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available maze generators",
	Long:  `Shows the maze generators that play and serve can use.`,
	Args:  cobra.NoArgs,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	gens := registry.List()

	if len(gens) == 0 {
		fmt.Println("No maze generators available.")
		return
	}

	fmt.Println("Available maze generators:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, g := range gens {
		if len(g.ID) > maxIDLen {
			maxIDLen = len(g.ID)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")

	for _, g := range gens {
		fmt.Printf("  %-*s  %s\n", maxIDLen, g.ID, g.Title)
	}

	fmt.Println()
	fmt.Println("Run 'candymaze play --generator <id>' to use one.")
}
