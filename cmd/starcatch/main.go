// starcatch is a star-collecting platformer for the terminal, SSH and a desktop window.
//
// Usage:
//
//	starcatch list              - List available games
//	starcatch play [game]       - Play a game (default: stars)
//	starcatch menu              - Start menu to pick games interactively
//	starcatch serve             - Start SSH server for remote play
//	starcatch scores <game>     - Show high scores for a game
//	starcatch window [game]     - Play in a desktop window
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.starcatch/scores.db)
//	--log-level <level>  - debug, info, warn or error (default: warn)
//	--config <path>      - Override the stars game config YAML
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/starcatch/internal/core"
	"github.com/vovakirdan/starcatch/internal/games/stars"
	"github.com/vovakirdan/starcatch/internal/platform/tui"
	"github.com/vovakirdan/starcatch/internal/storage"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
	flagConfig   string

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "starcatch",
	})
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "starcatch",
	Short: "Star Catcher - collect stars, dodge bombs",
	Long: `Star Catcher is a small platformer: run and jump across four ledges,
collect all twelve stars, and dodge the bombs that each cleared wave adds.

Available commands:
  list     - Show all available games
  play     - Play in the terminal
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores
  window   - Play in a desktop window

Examples:
  starcatch play
  starcatch menu
  starcatch window --scale 1.5
  starcatch serve --ssh :2222
  starcatch scores stars`,
	PersistentPreRunE: setupLogging,
	SilenceUsage:      true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.starcatch/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(windowCmd)
}

func setupLogging(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	logger.SetLevel(level)
	log.SetDefault(logger)
	stars.SetLogger(logger)
	stars.SetConfigPath(flagConfig)
	return nil
}

// runtimeConfig builds the runtime settings shared by every front end.
func runtimeConfig(width, height int) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the scores database, logging and returning nil on failure
// so the game still runs without persistence.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

func closeStore(store *storage.Store) {
	if store == nil {
		return
	}
	if err := store.Close(); err != nil {
		logger.Warn("closing scores database", "error", err)
	}
}

// The tui runtimes take small interfaces; a nil *Store must become a nil
// interface so they skip persistence instead of calling through nil.

func saverOf(store *storage.Store) tui.ScoreSaver {
	if store == nil {
		return nil
	}
	return store
}

func scorerOf(store *storage.Store) tui.HighScorer {
	if store == nil {
		return nil
	}
	return store
}

func readerOf(store *storage.Store) tui.ScoreReader {
	if store == nil {
		return nil
	}
	return store
}
