package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/starcatch/internal/platform/tui"
	"github.com/vovakirdan/starcatch/internal/registry"
)

const defaultGameID = "stars"

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game in the terminal",
	Long: `Start playing the specified game (stars when omitted).

Controls:
  Left/Right (A/D, H/L)  - Run
  Up/W/K/Space           - Jump (only while standing on something)
  P/Esc                  - Pause
  R                      - Restart (after game over)
  Ctrl+S                 - Save a screenshot
  Q/Ctrl+C               - Quit

Terminals do not report key releases, so a pressed direction is held for
half a second, then for as long as the key keeps auto-repeating.

Examples:
  starcatch play
  starcatch play stars --seed 42
  starcatch play --config ./my-stars.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
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
	runErr := tui.Run(game, saverOf(store), runtimeConfig(terminalSize()))
	closeStore(store)

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// createGame resolves a game ID, pointing the user at 'list' when unknown.
func createGame(gameID string) (registry.Game, error) {
	if !registry.Exists(gameID) {
		return nil, fmt.Errorf("unknown game %q (run 'starcatch list' to see available games)", gameID)
	}
	return registry.Create(gameID)
}

// terminalSize reports the stdout size, defaulting to 80x24.
func terminalSize() (int, int) {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return width, height
}
