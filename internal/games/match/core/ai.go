package core

// BestMoveResult is the outcome of a move search: the winning swap, its
// score, and the full simulation that produced it (for the host to animate
// the CPU's turn without re-simulating).
type BestMoveResult struct {
	Move       Move
	Score      int
	Simulation SimulationResult
}

// BestMove exhaustively evaluates every legal adjacent swap on the board
// and returns the highest-scoring one. The board is never mutated: each
// candidate is probed and simulated on throwaway clones.
//
// Every cell explores all four directions; the two orderings of the same
// unordered pair are collapsed through a normalized key, keeping the best
// score seen for that pair. Ties go to the first candidate found in scan
// order (column-major), because only a strictly greater score replaces the
// incumbent. Returns nil when no legal move exists (stalemate).
func BestMove(b *Board) *BestMoveResult {
	entries := make(map[Move]BestMoveResult, b.Cols()*b.Rows()*2)

	var best BestMoveResult
	hasBest := false

	consider := func(r BestMoveResult) {
		if !hasBest || r.Score > best.Score {
			best = r
			hasBest = true
		}
	}

	for col := 0; col < b.Cols(); col++ {
		for row := 0; row < b.Rows(); row++ {
			origin := C(col, row)
			for _, off := range neighborOffsets {
				neighbor := origin.Add(off[0], off[1])
				if !b.InBoundsCell(neighbor) {
					continue
				}
				move := Move{A: origin, B: neighbor}

				probe := b.Clone()
				if !LegalSwap(probe, move) {
					continue
				}

				sim := SimulateFullChain(b.Clone(), move)
				candidate := BestMoveResult{
					Move:       move,
					Score:      sim.Score,
					Simulation: sim,
				}

				key := move.Normalized()
				if existing, ok := entries[key]; ok {
					if candidate.Score > existing.Score {
						entries[key] = candidate
						existing = candidate
					}
					consider(existing)
				} else {
					entries[key] = candidate
					consider(candidate)
				}
			}
		}
	}

	if !hasBest {
		return nil
	}
	return &best
}
