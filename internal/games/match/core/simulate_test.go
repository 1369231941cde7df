package core

import (
	"reflect"
	"testing"
)

func TestSimulateSimpleSwap(t *testing.T) {
	b := makeTestBoard()
	move := Move{A: C(1, 2), B: C(0, 2)}

	probe := b.Clone()
	if !LegalSwap(probe, move) {
		t.Fatal("fixture swap should be legal")
	}

	result := SimulateFullChain(b, move)

	if result.Move != move {
		t.Errorf("result.Move = %v, want %v", result.Move, move)
	}
	if result.Chains < 1 {
		t.Fatalf("Chains = %d, want >= 1", result.Chains)
	}
	if result.TotalCleared < 3 {
		t.Errorf("TotalCleared = %d, want >= 3", result.TotalCleared)
	}
	if result.Score != ScoreForCleared(result.TotalCleared) {
		t.Errorf("Score = %d, want %d", result.Score, ScoreForCleared(result.TotalCleared))
	}
	if result.BombsTriggered != 0 || result.ColorChainTriggered {
		t.Error("no bombs or color chain configured, but result says otherwise")
	}

	// The first cascade iteration is fully deterministic: the swap turns
	// column 1 into three tiles of color 1, nothing else matches, the
	// column empties (no falls) and receives three spawns.
	first := result.ChainEvents[0]
	if len(first.Clears) != 1 {
		t.Fatalf("first chain has %d clear events, want 1", len(first.Clears))
	}
	clear := first.Clears[0]
	if clear.ViaBomb || clear.ViaColor {
		t.Error("plain match tagged as bomb/color clear")
	}
	wantCells := []Cell{C(1, 0), C(1, 1), C(1, 2)}
	if len(clear.Cells) != len(wantCells) {
		t.Fatalf("first clear removed %d cells, want %d", len(clear.Cells), len(wantCells))
	}
	for i, cc := range clear.Cells {
		if cc.Position != wantCells[i] {
			t.Errorf("clear cell %d = %v, want %v", i, cc.Position, wantCells[i])
		}
		if cc.Tile != 1 {
			t.Errorf("clear cell %d tile = %d, want 1", i, cc.Tile)
		}
	}
	if len(first.Falls) != 0 {
		t.Errorf("fully cleared column should not produce falls, got %v", first.Falls)
	}
	if len(first.Spawns) != 3 {
		t.Fatalf("first chain spawned %d tiles, want 3", len(first.Spawns))
	}
	wantSpawns := []struct {
		pos  Cell
		dist int
	}{
		{C(1, 2), 3},
		{C(1, 1), 2},
		{C(1, 0), 1},
	}
	for i, ws := range wantSpawns {
		s := first.Spawns[i]
		if s.Position != ws.pos || s.DistanceCells != ws.dist {
			t.Errorf("spawn %d = %+v, want pos %v dist %d", i, s, ws.pos, ws.dist)
		}
	}

	// After the cascade the board is stable and fully populated.
	if matches := FindAllMatches(b); len(matches) != 0 {
		t.Errorf("board not stable after cascade: %v", matches)
	}
	for col := 0; col < b.Cols(); col++ {
		for row := 0; row < b.Rows(); row++ {
			if b.Get(col, row) == Empty {
				t.Errorf("cell (%d,%d) left empty after cascade", col, row)
			}
		}
	}
}

func TestSimulateOutOfBoundsIsNoop(t *testing.T) {
	b := makeTestBoard()
	before := b.Cells()

	result := SimulateFullChain(b, Move{A: C(0, 0), B: C(-1, 0)})
	if result.Score != 0 || result.Chains != 0 || len(result.ChainEvents) != 0 {
		t.Errorf("out-of-bounds simulate produced events: %+v", result)
	}

	after := b.Cells()
	if !reflect.DeepEqual(before, after) {
		t.Error("out-of-bounds simulate mutated the board")
	}
}

func TestSimulateMatchlessSwap(t *testing.T) {
	// The simulator does not enforce legality: an adjacent swap that
	// produces no match leaves the swap in place and reports zero events.
	b := makeTestBoard()
	result := SimulateFullChain(b, Move{A: C(0, 0), B: C(0, 1)})

	if len(result.ChainEvents) != 0 {
		t.Errorf("matchless swap produced %d chain events", len(result.ChainEvents))
	}
	if result.Score != 0 || result.TotalCleared != 0 {
		t.Errorf("matchless swap scored %d (cleared %d)", result.Score, result.TotalCleared)
	}
}

func TestSimulateDeterministicOnClones(t *testing.T) {
	base := NewBoard(Rules{Cols: 6, Rows: 6, TileTypes: 4}, 777)

	move, ok := firstLegalMove(base)
	if !ok {
		t.Skip("no legal move on fixture board")
	}

	a, b := base.Clone(), base.Clone()
	resA := SimulateFullChain(a, move)
	resB := SimulateFullChain(b, move)

	if !reflect.DeepEqual(resA, resB) {
		t.Error("identical clones produced different simulation results")
	}
	if !reflect.DeepEqual(a.Cells(), b.Cells()) {
		t.Error("identical clones ended with different boards")
	}
}

func TestSimulateBombBlock(t *testing.T) {
	b := NewEmptyBoard(Rules{Cols: 3, Rows: 3, TileTypes: 6, BombsEnabled: true}, 1)
	b.Set(0, 0, 0)
	b.Set(0, 1, 0)
	b.Set(0, 2, 3)
	b.Set(1, 0, 0)
	b.Set(1, 1, 4)
	b.Set(1, 2, 2)
	b.Set(2, 0, 5)
	b.Set(2, 1, 0)
	b.Set(2, 2, 1)

	result := SimulateFullChain(b, Move{A: C(1, 1), B: C(2, 1)})

	if result.BombsTriggered < 1 {
		t.Fatalf("BombsTriggered = %d, want >= 1", result.BombsTriggered)
	}
	// First iteration: one bomb block, its 4x4 area clipped to the whole
	// 3x3 board, counted as 9 cells + 2 bonus.
	if result.TotalCleared < 11 {
		t.Errorf("TotalCleared = %d, want >= 11", result.TotalCleared)
	}
	if result.Score != ScoreForCleared(result.TotalCleared) {
		t.Errorf("Score = %d, want %d", result.Score, ScoreForCleared(result.TotalCleared))
	}

	first := result.ChainEvents[0]
	if len(first.Clears) != 1 {
		t.Fatalf("first chain has %d clear events, want 1", len(first.Clears))
	}
	bomb := first.Clears[0]
	if !bomb.ViaBomb || bomb.ViaColor {
		t.Error("bomb clear not tagged ViaBomb")
	}
	if len(bomb.Cells) != 9 {
		t.Errorf("bomb cleared %d cells, want 9 (clipped 4x4)", len(bomb.Cells))
	}
}

func TestSimulateColorChain(t *testing.T) {
	b := NewEmptyBoard(Rules{Cols: 3, Rows: 3, TileTypes: 6, ColorChainEnabled: true}, 1)
	b.Set(0, 0, 0)
	b.Set(0, 1, 2)
	b.Set(0, 2, 2)
	b.Set(1, 0, 2)
	b.Set(1, 1, 2)
	b.Set(1, 2, 5)
	b.Set(2, 0, 1)
	b.Set(2, 1, 4)
	b.Set(2, 2, 3)

	// Swapping (0,2) into (1,2) completes the vertical run in column 1;
	// the unmatched (0,1) tile of the same color is pulled in by the
	// color chain.
	result := SimulateFullChain(b, Move{A: C(0, 2), B: C(1, 2)})

	if !result.ColorChainTriggered {
		t.Fatal("ColorChainTriggered = false, want true")
	}

	first := result.ChainEvents[0]
	if len(first.Clears) != 2 {
		t.Fatalf("first chain has %d clear events, want match + color", len(first.Clears))
	}

	match := first.Clears[0]
	if match.ViaBomb || match.ViaColor {
		t.Error("match clear carries bomb/color tag")
	}
	assertClearedCells(t, match, []Cell{C(1, 0), C(1, 1), C(1, 2)})

	chain := first.Clears[1]
	if !chain.ViaColor || chain.ViaBomb {
		t.Error("color-chain clear not tagged ViaColor")
	}
	assertClearedCells(t, chain, []Cell{C(0, 1)})

	if result.Score != ScoreForCleared(result.TotalCleared) {
		t.Errorf("Score = %d, want %d", result.Score, ScoreForCleared(result.TotalCleared))
	}
}

func TestScoreForCleared(t *testing.T) {
	cases := []struct {
		cleared int
		want    int
	}{
		{0, 0},
		{1, 0},
		{2, 0},
		{3, 1},
		{4, 2},
		{6, 4},
		{10, 8},
	}
	for _, tc := range cases {
		if got := ScoreForCleared(tc.cleared); got != tc.want {
			t.Errorf("ScoreForCleared(%d) = %d, want %d", tc.cleared, got, tc.want)
		}
	}
}

func assertClearedCells(t *testing.T, evt ClearEvent, want []Cell) {
	t.Helper()
	if len(evt.Cells) != len(want) {
		t.Fatalf("clear event removed %d cells, want %d", len(evt.Cells), len(want))
	}
	sortCells(want)
	for i, cc := range evt.Cells {
		if cc.Position != want[i] {
			t.Errorf("cleared cell %d = %v, want %v", i, cc.Position, want[i])
		}
	}
}

func firstLegalMove(b *Board) (Move, bool) {
	for col := 0; col < b.Cols(); col++ {
		for row := 0; row < b.Rows(); row++ {
			origin := C(col, row)
			for _, neighbor := range []Cell{C(col + 1, row), C(col, row + 1)} {
				move := Move{A: origin, B: neighbor}
				if LegalSwap(b, move) {
					return move, true
				}
			}
		}
	}
	return Move{}, false
}
