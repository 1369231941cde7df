// tilematch is a terminal tile-matching puzzle game: swap adjacent tiles
// to form runs of three or more, clear them, and chase cascades.
//
// Usage:
//
//	tilematch list              - List available game modes
//	tilematch play <mode>       - Play a mode directly
//	tilematch menu              - Interactive mode picker
//	tilematch serve             - Start SSH server for remote play
//	tilematch scores <mode>     - Show high scores for a mode
//	tilematch saves             - Manage mid-game save files
//	tilematch solve             - Headless CPU autoplay
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 30)
//	--seed <value>  - Set RNG seed for reproducible boards
//	--db <path>     - Set database path (default: ~/.tilematch/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import game modes to register them
	_ "github.com/akarpenko/tilematch/internal/games/match"
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
	Use:   "tilematch",
	Short: "Tile Match - a match-3 puzzle for your terminal",
	Long: `Tile Match is a terminal puzzle game. Swap adjacent tiles to line up
three or more of a kind; matched tiles clear, the board cascades, and
chains multiply your score. The duel mode pits you against a CPU
opponent on the same board.

Available commands:
  list     - Show all available modes
  play     - Play a mode directly
  menu     - Interactive mode picker
  serve    - Start SSH server for remote play
  scores   - View high scores
  saves    - Manage mid-game save files
  solve    - Watch the CPU autoplay a board headlessly

Examples:
  tilematch list
  tilematch play match
  tilematch play match_duel --difficulty hard
  tilematch menu
  tilematch serve --ssh :2222
  tilematch scores match`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tilematch/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(savesCmd)
	rootCmd.AddCommand(solveCmd)
}
