package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/tuigames/sumdrop/internal/core"
	"github.com/tuigames/sumdrop/internal/games/sumdrop"
	"github.com/tuigames/sumdrop/internal/platform/tui"
	"github.com/tuigames/sumdrop/internal/registry"
	"github.com/tuigames/sumdrop/internal/storage"
)

var (
	flagConfig string
	flagPreset string
)

var playCmd = &cobra.Command{
	Use:   "play [classic|timed]",
	Short: "Play a mode",
	Long: `Start playing the given mode. Without an argument the mode picker opens.

Controls:
  Arrows/WASD  - Move the selection cursor
  Space/Enter  - Toggle the tile under the cursor
  P            - Pause
  R            - Restart (after game over)
  B/Esc        - Back to menu (paused or game over)
  Q/Ctrl+C     - Quit

Pacing presets:
  relaxed - 45s rounds, shallower starting board
  normal  - 30s rounds (default rules)
  intense - 15s rounds, deeper starting board

Examples:
  sumdrop play classic
  sumdrop play timed --preset intense
  sumdrop play classic --config ./my-rules.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom rules YAML")
	playCmd.Flags().StringVar(&flagPreset, "preset", "", "Pacing preset: relaxed, normal, intense")
}

func runPlay(cmd *cobra.Command, args []string) {
	// Get terminal size early
	width, height := 80, 24 // Defaults
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

	sumdrop.SetConfigPath(flagConfig)
	sumdrop.SetPacingPreset(flagPreset)

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	var gameID string
	if len(args) == 1 {
		id, ok := gameIDForMode(args[0])
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: unknown mode %q (expected classic or timed)\n", args[0])
			os.Exit(1)
		}
		gameID = id
	} else {
		// No mode given: open the picker
		menuResult, menuErr := tui.RunMenu(store, cfg)
		if menuErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", menuErr)
			os.Exit(1)
		}
		cfg = menuResult.Config
		if menuResult.Quit || menuResult.GameID == "" {
			return
		}
		gameID = menuResult.GameID
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	if runErr := tui.Run(game, store, cfg); runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
