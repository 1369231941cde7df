package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/akarpenko/tilematch/internal/config"
	"github.com/akarpenko/tilematch/internal/core"
	"github.com/akarpenko/tilematch/internal/games/match"
	"github.com/akarpenko/tilematch/internal/platform/tui"
	"github.com/akarpenko/tilematch/internal/registry"
	"github.com/akarpenko/tilematch/internal/session"
	"github.com/akarpenko/tilematch/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagResume     string
)

var playCmd = &cobra.Command{
	Use:   "play <mode>",
	Short: "Play a game mode",
	Long: `Start playing the specified mode.

Controls:
  Arrows/WASD  - Move cursor
  Enter/Space  - Select tile / confirm swap
  H            - Show a hint
  B/Esc        - Cancel selection
  P            - Pause
  R            - Restart (after game over)
  Ctrl+O       - Save the game for later
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - 5 tile kinds, no special mechanics
  normal - 6 tile kinds, bombs enabled
  hard   - 7 tile kinds, bombs and color chains

Examples:
  tilematch play match
  tilematch play match_duel --difficulty hard
  tilematch play match --config ./my-board.yaml
  tilematch play match --resume autosave`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().StringVar(&flagResume, "resume", "", "Resume a saved game by name")
}

// toGameConfig converts the loaded YAML config into the game's own config.
func toGameConfig(cfg config.MatchConfig) match.GameConfig {
	return match.GameConfig{
		Cols:           cfg.Board.Cols,
		Rows:           cfg.Board.Rows,
		TileTypes:      cfg.Board.TileTypes,
		Bombs:          cfg.Mechanics.Bombs,
		ColorChain:     cfg.Mechanics.ColorChain,
		MovesPerRound:  cfg.Duel.MovesPerRound,
		RoundsPerMatch: cfg.Duel.RoundsPerMatch,
	}
}

// setupMatchConfig loads the YAML config, applies the difficulty preset,
// and installs the result for subsequently created games.
func setupMatchConfig(configPath, difficulty string) error {
	cfg, err := config.LoadMatch(configPath)
	if err != nil {
		return err
	}

	if difficulty != "" {
		preset := config.DifficultyPreset(difficulty)
		switch preset {
		case config.DifficultyEasy, config.DifficultyNormal, config.DifficultyHard:
			config.ApplyMatchPreset(&cfg, preset)
		default:
			return fmt.Errorf("unknown difficulty %q (expected easy, normal, or hard)", difficulty)
		}
	}

	match.SetGameConfig(toGameConfig(cfg))
	return nil
}

// loadResume arms the resume state for the next game, checking that the
// save's mode matches the mode being launched.
func loadResume(name, gameID string) error {
	svc, err := session.NewSaveService(session.DefaultDir())
	if err != nil {
		return err
	}

	payload, err := svc.Load(name)
	if err != nil {
		return err
	}

	wantMode := match.ModeSolo
	if gameID == "match_duel" {
		wantMode = match.ModeDuel
	}
	if payload.Game.Mode != string(wantMode) {
		return fmt.Errorf("save %q is a %s game, not %s", name, payload.Game.Mode, wantMode)
	}

	rs := payload.Game
	match.SetResumeState(&rs)
	return nil
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	// Check if mode exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'tilematch list' to see available modes.")
		os.Exit(1)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Create runtime config
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	if err := setupMatchConfig(flagConfig, flagDifficulty); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if flagResume != "" {
		if err := loadResume(flagResume, gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	// Create game instance
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	// Run the game
	runErr := tui.Run(game, store, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
