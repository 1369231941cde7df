package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/akarpenko/tilematch/internal/config"
	"github.com/akarpenko/tilematch/internal/games/match/core"
)

var flagSolveMoves int

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Headless CPU autoplay",
	Long: `Generate a board and let the move search play it without a UI,
printing each chosen swap and its outcome. Useful for sanity-checking
a config or comparing difficulty presets.

Examples:
  tilematch solve
  tilematch solve --moves 30 --seed 42
  tilematch solve --difficulty hard`,
	Run: runSolve,
}

func init() {
	solveCmd.Flags().IntVar(&flagSolveMoves, "moves", 15, "Number of moves to play")
	solveCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	solveCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

func runSolve(_ *cobra.Command, _ []string) {
	cfg, err := config.LoadMatch(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagDifficulty != "" {
		preset := config.DifficultyPreset(flagDifficulty)
		switch preset {
		case config.DifficultyEasy, config.DifficultyNormal, config.DifficultyHard:
			config.ApplyMatchPreset(&cfg, preset)
		default:
			fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q\n", flagDifficulty)
			os.Exit(1)
		}
	}

	seed := uint64(flagSeed)
	if flagSeed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	rules := core.Rules{
		Cols:              cfg.Board.Cols,
		Rows:              cfg.Board.Rows,
		TileTypes:         cfg.Board.TileTypes,
		BombsEnabled:      cfg.Mechanics.Bombs,
		ColorChainEnabled: cfg.Mechanics.ColorChain,
	}
	board := core.NewBoard(rules, seed)

	fmt.Printf("Board %dx%d, %d tile kinds, seed %d\n",
		rules.Cols, rules.Rows, rules.TileTypes, seed)
	fmt.Println()

	total := 0
	for i := 1; i <= flagSolveMoves; i++ {
		best := core.BestMove(board)
		if best == nil {
			fmt.Printf("Move %d: no legal moves left, stopping.\n", i)
			break
		}

		sim := core.SimulateFullChain(board, best.Move)
		total += sim.Score

		line := fmt.Sprintf("Move %2d: (%d,%d)<->(%d,%d)  cleared %2d  chains %d  score %3d",
			i,
			best.Move.A.Col, best.Move.A.Row,
			best.Move.B.Col, best.Move.B.Row,
			sim.TotalCleared, sim.Chains, sim.Score)
		if sim.BombsTriggered > 0 {
			line += fmt.Sprintf("  bombs %d", sim.BombsTriggered)
		}
		if sim.ColorChainTriggered {
			line += "  color-chain"
		}
		fmt.Println(line)
	}

	fmt.Println()
	fmt.Printf("Total score after autoplay: %d\n", total)
}
