package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/shipward/shipward/internal/platform/tui"
	"github.com/shipward/shipward/internal/storage"
)

var flagBoard bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the voyage log",
	Long: `Display the top 10 voyages by distance.

Examples:
  shipward scores
  shipward scores --board    # interactive scrollable log`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagBoard, "board", false, "Open the interactive voyage log")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening voyages database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagBoard {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if err := tui.RunScoreboard(store, "voyage", width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error showing voyage log: %v\n", err)
			os.Exit(1)
		}
		return
	}

	voyages, err := store.TopVoyages("voyage", 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving voyages: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Voyage Log - Shipward")
	fmt.Println()

	if len(voyages) == 0 {
		fmt.Println("No voyages recorded yet.")
		fmt.Println()
		fmt.Println("Run 'shipward play' to make history!")
		return
	}

	fmt.Printf("  %-4s  %-10s  %-9s  %-6s  %s\n", "Rank", "Distance", "Duration", "Built", "Date")
	fmt.Printf("  %-4s  %-10s  %-9s  %-6s  %s\n", "----", "--------", "--------", "-----", "----")

	for i, v := range voyages {
		dateStr := v.CreatedAt.Format("2006-01-02 15:04")
		duration := fmt.Sprintf("%dm%02ds", v.DurationSecs/60, v.DurationSecs%60)
		fmt.Printf("  %-4d  %-10d  %-9s  %-6d  %s\n", i+1, v.Distance, duration, v.ModulesBuilt, dateStr)
	}

	if stats, err := store.Stats("voyage"); err == nil {
		fmt.Println()
		fmt.Printf("Best: %d over %d voyages\n", stats.BestDistance, stats.Voyages)
	}
}
