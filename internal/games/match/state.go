package match

// ResumeState is a portable snapshot of an in-progress game, used by the
// session save system to suspend and resume play across runs.
type ResumeState struct {
	Mode       string `json:"mode"`
	Score      int    `json:"score"`
	CPUScore   int    `json:"cpu_score"`
	MovesUsed  int    `json:"moves_used"`
	CPUMoves   int    `json:"cpu_moves"`
	TotalMoves int    `json:"total_moves"`
	Seed       uint64 `json:"seed"`
	Cells      []int  `json:"cells"` // column-major board contents
	RNGState   uint64 `json:"rng_state"`
}

// pendingResume holds a state to restore on the next Reset, set by the CLI
// before launching a game. Consumed once, like the difficulty selection.
var pendingResume *ResumeState

// SetResumeState queues a saved game to be restored by the next Reset.
func SetResumeState(rs *ResumeState) {
	pendingResume = rs
}

// ExportResumeState captures the current game for a session save.
// Only meaningful between moves; an in-flight cascade is not captured.
func (g *Game) ExportResumeState() ResumeState {
	return ResumeState{
		Mode:       string(g.mode),
		Score:      g.score,
		CPUScore:   g.cpuScore,
		MovesUsed:  g.movesUsed,
		CPUMoves:   g.cpuMoves,
		TotalMoves: g.totalMoves,
		Seed:       g.seed,
		Cells:      g.board.Cells(),
		RNGState:   g.board.RNGState(),
	}
}

// restoreResume applies a queued resume state after the board has been
// created. Returns false if the state does not match this game's mode or
// geometry.
func (g *Game) restoreResume(rs *ResumeState) bool {
	if rs.Mode != string(g.mode) {
		return false
	}
	if len(rs.Cells) != g.cfg.Cols*g.cfg.Rows {
		return false
	}

	g.board.SetCells(rs.Cells)
	g.board.SetRNGState(rs.RNGState)
	g.seed = rs.Seed
	g.score = rs.Score
	g.cpuScore = rs.CPUScore
	g.movesUsed = rs.MovesUsed
	g.cpuMoves = rs.CPUMoves
	if rs.TotalMoves > 0 {
		g.totalMoves = rs.TotalMoves
	}
	return true
}
