package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/akarpenko/tilematch/internal/core"
	"github.com/akarpenko/tilematch/internal/games/match"
	"github.com/akarpenko/tilematch/internal/registry"
	"github.com/akarpenko/tilematch/internal/session"
	"github.com/akarpenko/tilematch/internal/storage"
)

// Model is the Bubble Tea model for running a game mode.
type Model struct {
	game        registry.Game
	screen      *core.Screen
	store       *storage.Store
	saves       *session.SaveService
	keymap      *KeyMapper
	config      core.RuntimeConfig
	inputFrame  core.InputFrame
	gameState   core.GameState
	quitting    bool
	resultSaved bool // Whether the outcome has been recorded for the current game over
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	// Best-effort: mid-game saves are unavailable if the directory can't be created
	saves, err := session.NewSaveService(session.DefaultDir())
	if err != nil {
		saves = nil
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		saves:      saves,
		keymap:     NewKeyMapper(),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	// Initialize the game
	m.game.Reset(m.config)
	// Note: gameState will be set on first tick (value receiver limitation)

	// Start the tick loop
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+s":
		m.saveScreenshot()
		return m, nil
	case "ctrl+o":
		m.saveSession()
		return m, nil
	}

	if m.keymap.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	// Restart only makes sense after a game over
	if m.inputFrame.Has(core.ActionRestart) && !m.gameState.GameOver {
		m.inputFrame.Clear()
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	// The board survives a resize; the game just re-checks whether it fits.
	if g, ok := m.game.(*match.Game); ok {
		g.Resize(msg.Width, msg.Height)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	// Check for restart
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		// Reset seed for new game
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.resultSaved = false
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	// Run game simulation
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	// Record the outcome on game over (once)
	if m.gameState.GameOver && !m.resultSaved {
		recordOutcome(m.store, m.game, m.gameState)
		m.resultSaved = true
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// recordOutcome persists a finished game: the score always, plus the
// duel verdict when the mode was a player-vs-CPU duel.
func recordOutcome(store *storage.Store, game registry.Game, state core.GameState) {
	if store == nil {
		return
	}

	if state.Score > 0 {
		//nolint:errcheck // Best-effort save, game continues regardless
		store.SaveScore(game.ID(), state.Score)
	}

	g, ok := game.(*match.Game)
	if !ok || g.ID() != "match_duel" {
		return
	}

	rs := g.ExportResumeState()
	winner := "draw"
	switch {
	case rs.Score > rs.CPUScore:
		winner = "player"
	case rs.CPUScore > rs.Score:
		winner = "cpu"
	}
	//nolint:errcheck // Best-effort save, game continues regardless
	store.SaveDuelResult(storage.DuelResult{
		PlayerScore: rs.Score,
		CPUScore:    rs.CPUScore,
		Rounds:      g.Snapshot().Round,
		Winner:      winner,
	})
}

// saveSession writes an autosave of the current game so it can be resumed
// later with the play command.
func (m *Model) saveSession() {
	if m.saves == nil || m.gameState.GameOver {
		return
	}
	g, ok := m.game.(*match.Game)
	if !ok {
		return
	}
	//nolint:errcheck // Best-effort save, game continues regardless
	m.saves.Save("autosave", g.ExportResumeState())
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	// Render current state
	m.game.Render(m.screen)

	// Create screenshots directory
	dir := filepath.Join(os.Getenv("HOME"), ".tilematch", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	// Generate filename with timestamp
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	// Save screenshot
	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	// Render game to screen buffer
	m.game.Render(m.screen)

	// Convert screen to string
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
