package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/starcatch/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a game picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a game.
Esc on a paused or finished game returns you to the menu; Q quits.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select game
  Tab          - Scoreboard
  Q            - Quit

Examples:
  starcatch menu
  starcatch menu --fps 30
  starcatch menu --db ./scores.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	store := openStore()
	defer closeStore(store)

	cfg := runtimeConfig(terminalSize())
	fixedSeed := cfg.Seed != 0

	for {
		result, err := tui.RunMenu(scorerOf(store), cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		cfg = result.Config

		if result.Quit {
			return
		}

		if result.WantsScoreboard {
			gameID := result.GameID
			if gameID == "" {
				gameID = defaultGameID
			}
			goBack, sbErr := tui.RunScoreboard(readerOf(store), gameID, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue
			}
			return
		}

		if result.GameID == "" {
			return
		}

		game, err := createGame(result.GameID)
		if err != nil {
			logger.Error("creating game", "game", result.GameID, "error", err)
			continue
		}

		// Every round gets a fresh seed unless --seed pinned one.
		if !fixedSeed {
			cfg.Seed = time.Now().UnixNano()
		}

		back, err := tui.RunFromMenu(game, saverOf(store), cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
			return
		}
		if !back {
			return
		}
	}
}
