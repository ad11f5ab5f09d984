package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yuchenlin/typebomb/internal/audio"
	"github.com/yuchenlin/typebomb/internal/config"
	"github.com/yuchenlin/typebomb/internal/core"
	"github.com/yuchenlin/typebomb/internal/game"
	"github.com/yuchenlin/typebomb/internal/platform/tui"
	"github.com/yuchenlin/typebomb/internal/storage"
)

var (
	flagConfig string
	flagMute   bool
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play typebomb",
	Long: `Start the game. Without an argument you get the mode picker;
with one you jump straight into that mode.

Controls:
  any key      - Defuse the bomb showing that character's key
  Esc          - Pause / resume
  Ctrl+C       - Quit
  Tab (menu)   - Scoreboard

Examples:
  typebomb play
  typebomb play latin
  typebomb play zhuyin --mute
  typebomb play --config ./my-typebomb.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameCfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	var startMode game.Mode
	if len(args) > 0 {
		startMode = game.Mode(args[0])
		if !startMode.Valid() {
			fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", args[0])
			fmt.Fprintln(os.Stderr, "Run 'typebomb modes' to see available modes.")
			os.Exit(1)
		}
	}

	// Get terminal size
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	var board game.Leaderboard
	if store != nil {
		board = store
	}
	session := game.NewSession(gameCfg, board, cfg.Seed)

	var player *audio.Player
	if !flagMute {
		player = audio.NewPlayer()
		player.Init()
	}

	if startMode != "" {
		if startErr := session.Start(startMode); startErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", startErr)
			os.Exit(1)
		}
	}

	// Game/scoreboard loop
	var runErr error
	for {
		result, err := tui.Run(session, store, player, cfg)
		if err != nil {
			runErr = err
			break
		}

		if result.OpenScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				runErr = sbErr
				break
			}
			if goBack {
				continue // Back to the mode menu
			}
		}
		break
	}

	if player != nil {
		player.Close()
	}
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
