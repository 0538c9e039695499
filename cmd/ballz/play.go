package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-ballz/internal/core"
	"github.com/vovakirdan/tui-ballz/internal/games/ballz"
	"github.com/vovakirdan/tui-ballz/internal/platform/tui"
	"github.com/vovakirdan/tui-ballz/internal/registry"
	"github.com/vovakirdan/tui-ballz/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play <mode>",
	Short: "Play a mode directly",
	Long: `Start the specified mode immediately, skipping the menu.

Examples:
  ballz play ballz
  ballz play ballz_zen
  ballz play ballz --difficulty hard
  ballz play ballz --config ./my_config.yaml
  ballz play ballz --fps 30 --seed 42`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to a game config YAML file")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset (easy, normal, hard, fixed)")
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'ballz list' to see available modes.")
		os.Exit(1)
	}

	// Apply config path and difficulty before the game is created
	ballz.SetConfigPath(flagConfig)
	ballz.SetDifficultyPreset(flagDifficulty)

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
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
		store = nil
	}

	if err := tui.Run(game, store, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}

	if store != nil {
		store.Close()
	}
}
