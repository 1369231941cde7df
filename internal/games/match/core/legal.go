package core

// LegalSwap reports whether swapping the two cells of the move would produce
// at least one match, or, with bombs enabled, at least one uniform 2x2
// block. The cells must be in bounds and Manhattan-adjacent.
//
// The check swaps in place and always reverts before returning, so the
// board's observable state is unchanged. The engine is single-threaded by
// design; no other goroutine may observe the board mid-probe.
func LegalSwap(b *Board, m Move) bool {
	if !b.InBoundsCell(m.A) || !b.InBoundsCell(m.B) {
		return false
	}
	if !m.Adjacent() {
		return false
	}

	b.SwapMove(m)
	ok := len(FindAllMatches(b)) > 0

	if !ok && b.BombsEnabled() {
		ok = hasBombBlock(b)
	}

	b.SwapMove(m)
	return ok
}

// hasBombBlock reports whether any 2x2 block is a single non-empty color.
func hasBombBlock(b *Board) bool {
	for col := 0; col < b.Cols()-1; col++ {
		for row := 0; row < b.Rows()-1; row++ {
			t := b.Get(col, row)
			if t == Empty {
				continue
			}
			if b.Get(col+1, row) == t && b.Get(col, row+1) == t && b.Get(col+1, row+1) == t {
				return true
			}
		}
	}
	return false
}

// AnyLegalMoves reports whether at least one legal swap exists. It probes
// only the right and down neighbor of each cell, which covers every
// unordered adjacent pair exactly once, and short-circuits on the first hit.
func AnyLegalMoves(b *Board) bool {
	for col := 0; col < b.Cols(); col++ {
		for row := 0; row < b.Rows(); row++ {
			origin := C(col, row)
			if LegalSwap(b, Move{A: origin, B: C(col+1, row)}) {
				return true
			}
			if LegalSwap(b, Move{A: origin, B: C(col, row+1)}) {
				return true
			}
		}
	}
	return false
}
