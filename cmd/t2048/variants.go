package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/registry"
)

var variantsCmd = &cobra.Command{
	Use:     "variants",
	Aliases: []string{"list"},
	Short:   "List all available boards",
	Long:    `Shows every board variant with its size, winning tile and chance of 4-tiles.`,
	Args:    cobra.NoArgs,
	Run:     runVariants,
}

func runVariants(_ *cobra.Command, _ []string) {
	variants := registry.List()

	if len(variants) == 0 {
		fmt.Println("No variants available.")
		return
	}

	fmt.Println("Available boards:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, v := range variants {
		if len(v.ID) > maxIDLen {
			maxIDLen = len(v.ID)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %-5s  %-6s  %-4s  %s\n", maxIDLen, "ID", "Board", "Goal", "4s", "Title")
	fmt.Printf("  %-*s  %-5s  %-6s  %-4s  %s\n", maxIDLen, "--", "-----", "----", "--", "-----")

	for _, v := range variants {
		board := fmt.Sprintf("%dx%d", v.Dimension, v.Dimension)
		fmt.Printf("  %-*s  %-5s  %-6d  %3.0f%%  %s\n", maxIDLen, v.ID, board, v.Threshold, v.Spawn4*100, v.Title)
	}

	fmt.Println()
	fmt.Printf("Run 't2048 play <id>' to play a board (default: %s).\n", registry.DefaultVariant)
}
