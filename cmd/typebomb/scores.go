package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yuchenlin/typebomb/internal/game"
	"github.com/yuchenlin/typebomb/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores <mode>",
	Short: "Show the leaderboard for a mode",
	Long: `Display the top 10 scores for the specified character mode.

Examples:
  typebomb scores latin
  typebomb scores zhuyin`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func runScores(cmd *cobra.Command, args []string) {
	mode := game.Mode(args[0])
	if !mode.Valid() {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", args[0])
		fmt.Fprintln(os.Stderr, "Run 'typebomb modes' to see available modes.")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	entries, err := store.Load(mode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("High Scores - %s\n", mode.Title())
	fmt.Println()

	if len(entries) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'typebomb play %s' to set the first high score!\n", mode)
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-24s  %-10s  %s\n", "Rank", "Name", "Score", "Date")
	fmt.Printf("  %-4s  %-24s  %-10s  %s\n", "----", "----", "-----", "----")

	for i, entry := range entries {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-24s  %-10d  %s\n", i+1, entry.Name, entry.Score, dateStr)
	}

	fmt.Println()
	if high, err := store.HighScore(mode); err == nil {
		fmt.Printf("Best: %d\n", high)
	}
}
