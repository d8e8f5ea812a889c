package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/starcatch/internal/platform/window"
)

var flagScale float64

var windowCmd = &cobra.Command{
	Use:   "window [game]",
	Short: "Play a game in a desktop window",
	Long: `Open the game in a native window (stars when omitted).

Unlike the terminal, the window sees real key presses and releases, so
movement stops the moment a direction key is let go.

Controls:
  Left/Right (A/D)  - Run
  Up/W/Space        - Jump
  P/Esc             - Pause
  R                 - Restart (after game over)
  Q                 - Quit

Examples:
  starcatch window
  starcatch window --scale 1.5 --seed 7`,
	Args: cobra.MaximumNArgs(1),
	Run:  runWindow,
}

func init() {
	windowCmd.Flags().Float64Var(&flagScale, "scale", 1, "Window pixels per world unit")
}

func runWindow(_ *cobra.Command, args []string) {
	gameID := defaultGameID
	if len(args) == 1 {
		gameID = args[0]
	}

	game, err := createGame(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store := openStore()
	opts := window.Options{
		Scale:    flagScale,
		TickRate: flagFPS,
		Seed:     flagSeed,
		Logger:   logger,
	}
	if store != nil {
		opts.Store = store
	}

	runErr := window.Run(game, opts)
	closeStore(store)

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
