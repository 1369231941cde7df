package core

import "testing"

func TestLegalSwapBasic(t *testing.T) {
	cases := []struct {
		name string
		move Move
		want bool
	}{
		{"swap creating vertical run", Move{A: C(1, 2), B: C(0, 2)}, true},
		{"adjacent but no match", Move{A: C(0, 0), B: C(0, 1)}, false},
		{"diagonal", Move{A: C(0, 0), B: C(1, 1)}, false},
		{"not adjacent", Move{A: C(0, 0), B: C(2, 0)}, false},
		{"same cell", Move{A: C(1, 1), B: C(1, 1)}, false},
		{"out of bounds", Move{A: C(2, 2), B: C(3, 2)}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := makeTestBoard()
			if got := LegalSwap(b, tc.move); got != tc.want {
				t.Errorf("LegalSwap(%v) = %v, want %v", tc.move, got, tc.want)
			}
		})
	}
}

func TestLegalSwapDoesNotMutate(t *testing.T) {
	b := makeTestBoard()
	before := b.Cells()

	moves := []Move{
		{A: C(1, 2), B: C(0, 2)}, // legal
		{A: C(0, 0), B: C(0, 1)}, // illegal
		{A: C(0, 0), B: C(5, 5)}, // out of bounds
	}
	for _, m := range moves {
		LegalSwap(b, m)
	}

	after := b.Cells()
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("LegalSwap mutated cell index %d: %d -> %d", i, before[i], after[i])
		}
	}
}

// With bombs disabled, legality must agree exactly with "swap on a copy and
// look for matches".
func TestLegalSwapAgreesWithMatchScan(t *testing.T) {
	b := NewBoard(Rules{Cols: 6, Rows: 6, TileTypes: 4}, 2026)

	for col := 0; col < b.Cols(); col++ {
		for row := 0; row < b.Rows(); row++ {
			for _, neighbor := range []Cell{C(col + 1, row), C(col, row + 1)} {
				if !b.InBoundsCell(neighbor) {
					continue
				}
				move := Move{A: C(col, row), B: neighbor}

				probe := b.Clone()
				probe.SwapMove(move)
				wantLegal := len(FindAllMatches(probe)) > 0

				if got := LegalSwap(b, move); got != wantLegal {
					t.Errorf("LegalSwap(%v) = %v, match scan says %v", move, got, wantLegal)
				}
			}
		}
	}
}

func TestLegalSwapBombBlock(t *testing.T) {
	// Swapping (1,1) and (2,1) forms a uniform 2x2 block of color 0 at the
	// origin without creating any run of 3.
	build := func(bombs bool) *Board {
		b := NewEmptyBoard(Rules{Cols: 3, Rows: 3, TileTypes: 6, BombsEnabled: bombs}, 1)
		b.Set(0, 0, 0)
		b.Set(0, 1, 0)
		b.Set(0, 2, 3)
		b.Set(1, 0, 0)
		b.Set(1, 1, 4)
		b.Set(1, 2, 2)
		b.Set(2, 0, 5)
		b.Set(2, 1, 0)
		b.Set(2, 2, 1)
		return b
	}
	move := Move{A: C(1, 1), B: C(2, 1)}

	if !LegalSwap(build(true), move) {
		t.Error("bomb-forming swap should be legal with bombs enabled")
	}
	if LegalSwap(build(false), move) {
		t.Error("bomb-forming swap should be illegal with bombs disabled")
	}
}

func TestAnyLegalMoves(t *testing.T) {
	if !AnyLegalMoves(makeTestBoard()) {
		t.Error("test board has legal moves")
	}
	if AnyLegalMoves(makeStalemateBoard()) {
		t.Error("stalemate board reported a legal move")
	}
}

// makeStalemateBoard returns a 3x3 board where every tile color is unique,
// so no swap can ever produce a run.
func makeStalemateBoard() *Board {
	b := NewEmptyBoard(Rules{Cols: 3, Rows: 3, TileTypes: 9}, 1)
	tile := 0
	for col := 0; col < 3; col++ {
		for row := 0; row < 3; row++ {
			b.Set(col, row, tile)
			tile++
		}
	}
	return b
}
