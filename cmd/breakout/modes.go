package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

var modesCmd = &cobra.Command{
	Use:   "modes",
	Short: "List the game modes and levels",
	Long:  `Shows the registered game modes and the built-in campaign levels.`,
	Run:   runModes,
}

func runModes(_ *cobra.Command, _ []string) {
	games := registry.List()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	fmt.Println("Modes:")
	fmt.Println()
	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, g := range games {
		fmt.Printf("  %-*s  %s\n", maxIDLen, g.ID, g.Title)
	}

	fmt.Println()
	fmt.Println("Levels:")
	fmt.Println()
	for i, lvl := range breakout.BuiltinLevels() {
		fmt.Printf("  %2d. %-14s %3d bricks\n", i+1, lvl.Name, lvl.CountBreakable())
	}

	fmt.Println()
	fmt.Println("Run 'breakout play --level <n>' to start on a level.")
}
