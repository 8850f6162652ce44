// sumdrop is a terminal number puzzle: pick tiles whose values add up to the
// target, clear them before the rising board reaches the top.
//
// Usage:
//
//	sumdrop play [classic|timed]  - Play a mode directly
//	sumdrop menu                  - Interactive mode picker
//	sumdrop scores <mode>         - Show high scores for a mode
//	sumdrop serve                 - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.sumdrop/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game package to register both variants
	_ "github.com/tuigames/sumdrop/internal/games/sumdrop"
)

var (
	// Global flags
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
	Use:   "sumdrop",
	Short: "Sumdrop - a sum-matching grid puzzle for your terminal",
	Long: `Sumdrop is a terminal puzzle game. Tiles carry digits; select tiles
whose values add up to the target to clear them. Cleared columns collapse,
and new rows keep pushing the board toward the top.

Modes:
  classic  - a fresh row arrives after every successful match
  timed    - a fresh row arrives whenever the countdown expires

Examples:
  sumdrop play classic
  sumdrop play timed --preset intense
  sumdrop menu
  sumdrop serve --ssh :2222
  sumdrop scores timed`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.sumdrop/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// gameIDForMode maps a CLI mode argument to a registered variant ID.
func gameIDForMode(mode string) (string, bool) {
	switch mode {
	case "classic":
		return "sumdrop", true
	case "timed":
		return "sumdrop_timed", true
	case "sumdrop", "sumdrop_timed":
		return mode, true
	default:
		return "", false
	}
}
