package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yuchenlin/typebomb/internal/game"
)

var modesCmd = &cobra.Command{
	Use:   "modes",
	Short: "List playable character modes",
	Long:  `Shows the character modes you can play, with their catalog sizes.`,
	Run:   runModes,
}

func runModes(cmd *cobra.Command, args []string) {
	modes := game.Modes()

	fmt.Println("Available modes:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, m := range modes {
		if len(string(m)) > maxIDLen {
			maxIDLen = len(string(m))
		}
	}

	// Print header
	fmt.Printf("  %-*s  %-24s  %s\n", maxIDLen, "ID", "Title", "Characters")
	fmt.Printf("  %-*s  %-24s  %s\n", maxIDLen, "--", "-----", "----------")

	for _, m := range modes {
		fmt.Printf("  %-*s  %-24s  %d\n", maxIDLen, string(m), m.Title(), len(game.Chars(m)))
	}

	fmt.Println()
	fmt.Println("Run 'typebomb play <id>' to play a mode.")
}
