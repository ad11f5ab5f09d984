// typebomb is a terminal typing arcade: bombs fall bearing characters, and
// you defuse each one by pressing its key before it reaches the floor.
//
// Usage:
//
//	typebomb modes           - List character modes
//	typebomb play [mode]     - Play (optionally jump straight into a mode)
//	typebomb scores <mode>   - Show the leaderboard for a mode
//	typebomb serve           - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.typebomb/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "typebomb",
	Short: "Typebomb - Defuse falling bombs by typing their keys",
	Long: `Typebomb is a terminal typing game. Bombs fall from the top of the
screen, each bearing a character; press the matching key before a bomb
reaches the floor or it costs you a life.

Available commands:
  modes    - Show playable character modes
  play     - Play the game
  serve    - Start SSH server for remote play
  scores   - View the leaderboard

Examples:
  typebomb modes
  typebomb play
  typebomb play zhuyin
  typebomb serve --ssh :2222
  typebomb scores latin`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.typebomb/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(modesCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
