package core

import "testing"

func TestBestMoveOnFixtureBoard(t *testing.T) {
	b := makeTestBoard()
	before := b.Cells()

	result := BestMove(b)
	if result == nil {
		t.Fatal("BestMove returned nil on a board with legal moves")
	}
	if !LegalSwap(b, result.Move) {
		t.Errorf("BestMove returned illegal move %v", result.Move)
	}
	if result.Score != result.Simulation.Score {
		t.Errorf("Score = %d, Simulation.Score = %d", result.Score, result.Simulation.Score)
	}
	if result.Score < 1 {
		t.Errorf("best move scored %d, want >= 1", result.Score)
	}

	after := b.Cells()
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("BestMove mutated cell index %d: %d -> %d", i, before[i], after[i])
		}
	}
}

func TestBestMoveStalemate(t *testing.T) {
	if result := BestMove(makeStalemateBoard()); result != nil {
		t.Errorf("BestMove on stalemate = %+v, want nil", result)
	}
}

func TestBestMoveUniqueLegalMove(t *testing.T) {
	// Exactly one legal swap exists: {(1,0),(1,1)} turns row 0 into three
	// tiles of color 0. Both scan orderings of the pair must collapse to it.
	b := NewEmptyBoard(Rules{Cols: 3, Rows: 3, TileTypes: 9}, 1)
	b.Set(0, 0, 0)
	b.Set(0, 1, 3)
	b.Set(0, 2, 6)
	b.Set(1, 0, 1)
	b.Set(1, 1, 0)
	b.Set(1, 2, 7)
	b.Set(2, 0, 0)
	b.Set(2, 1, 5)
	b.Set(2, 2, 8)

	var legal []Move
	for col := 0; col < b.Cols(); col++ {
		for row := 0; row < b.Rows(); row++ {
			for _, neighbor := range []Cell{C(col + 1, row), C(col, row + 1)} {
				move := Move{A: C(col, row), B: neighbor}
				if b.InBoundsCell(neighbor) && LegalSwap(b, move) {
					legal = append(legal, move)
				}
			}
		}
	}
	if len(legal) != 1 {
		t.Fatalf("fixture has %d legal moves, want exactly 1: %v", len(legal), legal)
	}

	result := BestMove(b)
	if result == nil {
		t.Fatal("BestMove returned nil")
	}
	want := legal[0].Normalized()
	if result.Move.Normalized() != want {
		t.Errorf("BestMove = %v, want the unique legal move %v", result.Move, want)
	}
}

func TestBestMoveAgreesWithAnyLegalMoves(t *testing.T) {
	for _, seed := range []uint64{1, 7, 99, 424242} {
		b := NewBoard(Rules{Cols: 6, Rows: 6, TileTypes: 5}, seed)
		hasMove := AnyLegalMoves(b)
		result := BestMove(b)
		if hasMove != (result != nil) {
			t.Errorf("seed %d: AnyLegalMoves = %v but BestMove nil-ness disagrees", seed, hasMove)
		}
	}
}
