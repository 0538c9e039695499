// Command ballz is a terminal brick-bouncer.
//
// Usage:
//
//	ballz menu               # interactive mode picker
//	ballz play ballz         # play classic mode directly
//	ballz play ballz_zen     # play zen mode directly
//	ballz list               # list available modes
//	ballz scores ballz       # show high scores
//	ballz serve              # host over SSH
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Register game variants.
	_ "github.com/vovakirdan/tui-ballz/internal/games/ballz"
)

var (
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

var rootCmd = &cobra.Command{
	Use:   "ballz",
	Short: "A terminal brick-bouncer game",
	Long: `Ballz is a terminal game where you launch a chain of balls at rows
of blocks and barriers, picking up extra balls as you go.

Run 'ballz menu' for the interactive picker, or 'ballz play <mode>'
to jump straight into a mode. Run 'ballz list' to see the modes.

Examples:
  ballz menu
  ballz play ballz
  ballz play ballz_zen --difficulty hard
  ballz scores ballz
  ballz serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Simulation tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "Random seed (0 = time-based)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.ballz/scores.db", "Path to scores database")

	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
