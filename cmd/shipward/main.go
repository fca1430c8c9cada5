// shipward is a terminal ship-survival game: keep an ever-leakier
// steamship afloat by building and repairing modules while the voyage
// gets harder the farther you sail.
//
// Usage:
//
//	shipward play            - Set sail
//	shipward scores          - Show the voyage log
//	shipward serve           - Start SSH server for remote play
//
// Global flags:
//
//	--tick <rate>   - Simulation ticks per second (default: 10)
//	--fps <rate>    - Render frames per second (default: 30)
//	--seed <value>  - Set RNG seed for reproducible voyages
//	--db <path>     - Set database path (default: ~/.shipward/voyages.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagTick   int
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
	Use:   "shipward",
	Short: "Shipward - Keep your ship afloat, one module at a time",
	Long: `Shipward is a terminal survival game. Your ship takes on damage as it
sails; build hulls, castles, boilers, and propellers with the mouse,
repair what breaks, and see how far you get before the sea wins.

Available commands:
  play     - Start a voyage
  scores   - View the voyage log
  serve    - Start SSH server for remote play

Examples:
  shipward play
  shipward play --difficulty hard
  shipward scores
  shipward serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagTick, "tick", 10, "Simulation ticks per second")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Render frames per second")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.shipward/voyages.db", "Path to voyages database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
