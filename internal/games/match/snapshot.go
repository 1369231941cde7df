package match

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying   GameStateType = "playing"
	StateAnimating GameStateType = "animating"
	StateCPUTurn   GameStateType = "cpu_turn"
	StateGameOver  GameStateType = "game_over"
	StatePaused    GameStateType = "paused"
	StateTooSmall  GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick       uint64
	Mode       string // "solo" or "duel"
	Score      int
	CPUScore   int
	MovesUsed  int
	CPUMoves   int
	TotalMoves int
	Round      int
	CursorCol  int
	CursorRow  int
	Board      []int // column-major cells
	RNGState   uint64
	State      GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StateTooSmall
	case g.gameOver:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	case g.phase != animNone:
		state = StateAnimating
	case g.mode == ModeDuel && g.turn == TurnCPU:
		state = StateCPUTurn
	}

	return Snapshot{
		Tick:       g.tick,
		Mode:       string(g.mode),
		Score:      g.score,
		CPUScore:   g.cpuScore,
		MovesUsed:  g.movesUsed,
		CPUMoves:   g.cpuMoves,
		TotalMoves: g.totalMoves,
		Round:      g.round(),
		CursorCol:  g.cursor.Col,
		CursorRow:  g.cursor.Row,
		Board:      g.board.Cells(),
		RNGState:   g.board.RNGState(),
		State:      state,
	}
}
