// Package match provides the tile-match puzzle game: swap adjacent tiles to
// form runs of three or more, which clear, cascade, and score. A duel mode
// pits the player against a CPU opponent driven by exhaustive move search.
package match

import (
	"fmt"

	platformcore "github.com/akarpenko/tilematch/internal/core"
	"github.com/akarpenko/tilematch/internal/games/match/core"
	"github.com/akarpenko/tilematch/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	ModeSolo Mode = "solo"
	ModeDuel Mode = "duel"
)

// Turn identifies whose move it is in duel mode.
type Turn int

const (
	TurnPlayer Turn = iota
	TurnCPU
)

// Animation pacing in ticks (at the default 30 ticks per second).
const (
	clearHighlightTicks = 8
	settleTicks         = 5
	cpuThinkTicks       = 18
	messageTicks        = 45
)

// animPhase tracks where the cascade animation is within the current chain event.
type animPhase int

const (
	animNone animPhase = iota
	animHighlight
	animSettle
)

// Game implements the tile-match game for the platform registry.
type Game struct {
	mode Mode
	cfg  GameConfig
	tick uint64

	board *core.Board
	seed  uint64

	// Cursor and selection, in board coordinates.
	cursor   core.Cell
	selected *core.Cell
	hint     *core.Move

	// Scoring and turn structure.
	score      int
	cpuScore   int
	movesUsed  int // player moves spent
	cpuMoves   int // CPU moves spent (duel only)
	totalMoves int // per-side move budget
	turn       Turn

	// Cascade animation replays chain events on a display copy of the board.
	animCells []int
	animQueue []core.ChainEvent
	phase     animPhase
	phaseTick int
	lastChain int // chain count of the most recent resolved move

	// CPU pacing and transient status line.
	cpuWait    int
	message    string
	messageTTL int

	// Screen dimensions
	screenW int
	screenH int

	// Game state flags
	gameOver bool
	paused   bool
	tooSmall bool
}

// GameConfig carries the board and match parameters the game runs with.
// It mirrors the config package's MatchConfig but keeps this package free
// of a config dependency so the engine stays importable on its own.
type GameConfig struct {
	Cols           int
	Rows           int
	TileTypes      int
	Bombs          bool
	ColorChain     bool
	MovesPerRound  int
	RoundsPerMatch int
}

// DefaultGameConfig returns the standard 8x8 six-color setup.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Cols:           8,
		Rows:           8,
		TileTypes:      6,
		Bombs:          true,
		ColorChain:     false,
		MovesPerRound:  5,
		RoundsPerMatch: 3,
	}
}

// Package-level config applied to new games, set by the CLI before launch.
var activeConfig = DefaultGameConfig()

// SetGameConfig sets the configuration used by subsequently created games.
func SetGameConfig(cfg GameConfig) {
	activeConfig = cfg
}

// GetGameConfig returns the currently active configuration.
func GetGameConfig() GameConfig {
	return activeConfig
}

// New creates a new solo tile-match game.
func New() *Game {
	return &Game{mode: ModeSolo}
}

// NewDuel creates a new player-vs-CPU tile-match game.
func NewDuel() *Game {
	return &Game{mode: ModeDuel}
}

func init() {
	registry.Register("match", func() registry.Game {
		return New()
	})
	registry.Register("match_duel", func() registry.Game {
		return NewDuel()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeDuel {
		return "match_duel"
	}
	return "match"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeDuel {
		return "Tile Match Duel"
	}
	return "Tile Match"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg platformcore.RuntimeConfig) {
	g.cfg = activeConfig
	g.tick = 0
	g.score = 0
	g.cpuScore = 0
	g.movesUsed = 0
	g.cpuMoves = 0
	g.totalMoves = g.cfg.MovesPerRound * g.cfg.RoundsPerMatch
	g.turn = TurnPlayer
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.gameOver = false
	g.paused = false
	g.cursor = core.C(g.cfg.Cols/2, g.cfg.Rows/2)
	g.selected = nil
	g.hint = nil
	g.animCells = nil
	g.animQueue = nil
	g.phase = animNone
	g.lastChain = 0
	g.cpuWait = 0
	g.message = ""
	g.messageTTL = 0

	g.seed = uint64(cfg.Seed)
	g.board = core.NewBoard(g.rules(), g.seed)

	if pendingResume != nil {
		g.restoreResume(pendingResume)
		pendingResume = nil
	}
	g.ensureMovesAvailable()

	g.checkScreenSize()
}

func (g *Game) rules() core.Rules {
	return core.Rules{
		Cols:              g.cfg.Cols,
		Rows:              g.cfg.Rows,
		TileTypes:         g.cfg.TileTypes,
		BombsEnabled:      g.cfg.Bombs,
		ColorChainEnabled: g.cfg.ColorChain,
	}
}

// Resize updates the game's view of the terminal size without disturbing
// the board or scores.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

// checkScreenSize checks if the screen is large enough.
func (g *Game) checkScreenSize() {
	minW := g.cfg.Cols*cellWidth + 1
	minH := g.cfg.Rows*cellHeight + 1 + hudHeight + 2
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Step advances the game by one tick.
func (g *Game) Step(in platformcore.InputFrame) platformcore.StepResult {
	g.tick++

	if g.messageTTL > 0 {
		g.messageTTL--
		if g.messageTTL == 0 {
			g.message = ""
		}
	}

	if g.tooSmall {
		return platformcore.StepResult{State: g.State()}
	}

	if in.Has(platformcore.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused || g.gameOver {
		return platformcore.StepResult{State: g.State()}
	}

	// A running cascade animation blocks all other play.
	if g.phase != animNone {
		g.stepAnimation()
		return platformcore.StepResult{State: g.State()}
	}

	if g.mode == ModeDuel && g.turn == TurnCPU {
		g.stepCPU()
		return platformcore.StepResult{State: g.State()}
	}

	// Player budget exhausted mid-match: remaining moves belong to the CPU.
	if g.mode == ModeDuel && g.movesUsed >= g.totalMoves {
		g.turn = TurnCPU
		g.cpuWait = cpuThinkTicks
		return platformcore.StepResult{State: g.State()}
	}

	g.handlePlayerInput(in)
	return platformcore.StepResult{State: g.State()}
}

// handlePlayerInput processes cursor movement, selection, and swaps.
func (g *Game) handlePlayerInput(in platformcore.InputFrame) {
	switch {
	case in.Has(platformcore.ActionUp):
		g.moveCursor(0, -1)
	case in.Has(platformcore.ActionDown):
		g.moveCursor(0, 1)
	case in.Has(platformcore.ActionLeft):
		g.moveCursor(-1, 0)
	case in.Has(platformcore.ActionRight):
		g.moveCursor(1, 0)
	}

	if in.Has(platformcore.ActionBack) {
		g.selected = nil
		g.hint = nil
		return
	}

	if in.Has(platformcore.ActionHint) {
		if best := core.BestMove(g.board); best != nil {
			move := best.Move
			g.hint = &move
		}
		return
	}

	if in.Has(platformcore.ActionConfirm) {
		g.confirmAt(g.cursor)
	}
}

func (g *Game) moveCursor(dc, dr int) {
	next := g.cursor.Add(dc, dr)
	if g.board.InBoundsCell(next) {
		g.cursor = next
	}
}

// confirmAt handles tile selection: first confirm selects, a second confirm
// on an adjacent cell attempts the swap, anywhere else moves the selection.
func (g *Game) confirmAt(cell core.Cell) {
	if g.selected == nil {
		sel := cell
		g.selected = &sel
		return
	}

	if *g.selected == cell {
		g.selected = nil
		return
	}

	move := core.Move{A: *g.selected, B: cell}
	if !move.Adjacent() {
		sel := cell
		g.selected = &sel
		return
	}

	g.selected = nil
	if !core.LegalSwap(g.board, move) {
		g.setMessage("Illegal swap")
		return
	}
	g.applyMove(move)
}

// applyMove resolves a legal swap on the real board and queues its cascade
// for animation.
func (g *Game) applyMove(move core.Move) {
	g.hint = nil

	// Display copy starts from the post-swap, pre-cascade position.
	preview := g.board.Clone()
	preview.SwapMove(move)
	g.animCells = preview.Cells()

	result := core.SimulateFullChain(g.board, move)
	g.animQueue = result.ChainEvents
	g.lastChain = result.Chains

	if g.mode == ModeDuel && g.turn == TurnCPU {
		g.cpuScore += result.Score
		g.cpuMoves++
	} else {
		g.score += result.Score
		g.movesUsed++
	}

	if len(g.animQueue) > 0 {
		g.phase = animHighlight
		g.phaseTick = 0
	} else {
		g.finishMove()
	}
}

// stepAnimation advances the cascade replay by one tick.
func (g *Game) stepAnimation() {
	g.phaseTick++

	switch g.phase {
	case animHighlight:
		if g.phaseTick >= clearHighlightTicks {
			g.applyClears(g.animQueue[0])
			g.phase = animSettle
			g.phaseTick = 0
		}
	case animSettle:
		if g.phaseTick >= settleTicks {
			g.applyFallsAndSpawns(g.animQueue[0])
			g.animQueue = g.animQueue[1:]
			g.phaseTick = 0
			if len(g.animQueue) == 0 {
				g.phase = animNone
				g.animCells = nil
				g.finishMove()
			} else {
				g.phase = animHighlight
			}
		}
	}
}

// applyClears empties the cleared cells on the display copy.
func (g *Game) applyClears(evt core.ChainEvent) {
	for _, clear := range evt.Clears {
		for _, cc := range clear.Cells {
			g.setAnim(cc.Position, core.Empty)
		}
	}
}

// applyFallsAndSpawns replays gravity and refill on the display copy.
func (g *Game) applyFallsAndSpawns(evt core.ChainEvent) {
	for _, fall := range evt.Falls {
		g.setAnim(fall.From, core.Empty)
		g.setAnim(fall.To, fall.Tile)
	}
	for _, spawn := range evt.Spawns {
		g.setAnim(spawn.Position, spawn.Tile)
	}
}

func (g *Game) setAnim(cell core.Cell, tile int) {
	idx := cell.Col*g.cfg.Rows + cell.Row
	if idx >= 0 && idx < len(g.animCells) {
		g.animCells[idx] = tile
	}
}

// finishMove runs end-of-move bookkeeping: chain banner, turn handoff,
// stalemate reshuffle, and game over detection.
func (g *Game) finishMove() {
	if g.lastChain > 1 {
		g.setMessage(fmt.Sprintf("Chain x%d", g.lastChain))
	}
	g.lastChain = 0

	if g.mode == ModeDuel {
		if g.turn == TurnPlayer {
			g.turn = TurnCPU
			g.cpuWait = cpuThinkTicks
		} else {
			g.turn = TurnPlayer
		}
		if g.movesUsed >= g.totalMoves && g.cpuMoves >= g.totalMoves {
			g.gameOver = true
			return
		}
	} else if g.movesUsed >= g.totalMoves {
		g.gameOver = true
		return
	}

	g.ensureMovesAvailable()
}

// stepCPU waits out the think delay, then plays the best available swap.
func (g *Game) stepCPU() {
	if g.cpuMoves >= g.totalMoves {
		// CPU budget exhausted while the player still has moves.
		g.turn = TurnPlayer
		return
	}

	if g.cpuWait > 0 {
		g.cpuWait--
		return
	}

	best := core.BestMove(g.board)
	if best == nil {
		// ensureMovesAvailable keeps this from happening, but never stall.
		g.reshuffle()
		return
	}
	g.applyMove(best.Move)
}

// ensureMovesAvailable reshuffles the board when no legal swap exists.
func (g *Game) ensureMovesAvailable() {
	for attempt := 0; attempt < 8; attempt++ {
		if core.AnyLegalMoves(g.board) {
			return
		}
		g.reshuffle()
	}
}

// reshuffle regenerates the board with a seed drawn from the current RNG
// stream, so replays with the same initial seed stay deterministic.
func (g *Game) reshuffle() {
	reseed := g.seed*6364136223846793005 + uint64(g.board.RandomTile()) + 1442695040888963407
	g.seed = reseed
	g.board = core.NewBoard(g.rules(), reseed)
	g.setMessage("No moves left - board reshuffled")
}

func (g *Game) setMessage(msg string) {
	g.message = msg
	g.messageTTL = messageTicks
}

// round returns the 1-indexed round number for the HUD.
func (g *Game) round() int {
	used := g.movesUsed
	if g.mode == ModeDuel && g.turn == TurnCPU && g.cpuMoves < g.movesUsed {
		used = g.cpuMoves
	}
	if used >= g.totalMoves {
		return g.cfg.RoundsPerMatch
	}
	return used/g.cfg.MovesPerRound + 1
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	return platformcore.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Paused:   g.paused || g.tooSmall,
	}
}
