package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/paint-hit/internal/registry"
)

var frontendsCmd = &cobra.Command{
	Use:   "frontends",
	Short: "List available front ends",
	Long:  `Shows every front end the game can be played on.`,
	Args:  cobra.NoArgs,
	Run:   runFrontends,
}

func runFrontends(_ *cobra.Command, _ []string) {
	list := registry.List()

	if len(list) == 0 {
		fmt.Println("No front ends available.")
		return
	}

	fmt.Println("Available front ends:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, f := range list {
		maxIDLen = max(maxIDLen, len(f.ID))
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, f := range list {
		fmt.Printf("  %-*s  %s\n", maxIDLen, f.ID, f.Title)
	}

	fmt.Println()
	fmt.Println("Run 'painthit play --frontend <id>' to play on one.")
}
