package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/shipward/shipward/internal/audio"
	"github.com/shipward/shipward/internal/core"
	"github.com/shipward/shipward/internal/platform/tui"
	"github.com/shipward/shipward/internal/registry"
	"github.com/shipward/shipward/internal/ship"
	"github.com/shipward/shipward/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagMute       bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a voyage",
	Long: `Set sail. The ship sinks a little deeper every second its weight beats
its buoyancy; click buildable slots to add modules, click broken ones
to repair them.

Controls:
  Mouse      - Click slots to build, broken modules to repair
  1-9        - Choose from the build menu
  Space/P    - Pause
  Esc        - Close the build menu
  ` + "`" + `/D        - Toggle debug overlay
  R          - Restart (after sinking)
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  shipward play
  shipward play --difficulty easy
  shipward play --config ./my-ship.yaml
  shipward play --mute`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom ship config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
}

func runPlay(cmd *cobra.Command, args []string) {
	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:   width,
		ScreenH:   height,
		TickRate:  flagTick,
		FrameRate: flagFPS,
		Seed:      flagSeed,
	}

	ship.SetConfigPath(flagConfig)
	ship.SetDifficultyPreset(flagDifficulty)

	// Sound is best-effort; a failed speaker leaves cues silent.
	if !flagMute {
		player := audio.NewPlayer()
		if err := player.Init(); err == nil {
			ship.SetSound(player)
			defer player.Close()
		}
	}

	scene, err := registry.Create("voyage")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating scene: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open voyages database: %v\n", err)
		// Continue without storage - the voyage still works
		store = nil
	}

	runErr := tui.Run(scene, store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running voyage: %v\n", runErr)
		os.Exit(1)
	}
}
