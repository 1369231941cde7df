package core

import "testing"

func TestNewBoardNoInitialMatches(t *testing.T) {
	cases := []struct {
		name  string
		rules Rules
		seed  uint64
	}{
		{"6x6 six colors", Rules{Cols: 6, Rows: 6, TileTypes: 6}, 1337},
		{"8x8 six colors", Rules{Cols: 8, Rows: 8, TileTypes: 6}, 42},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := NewBoard(tc.rules, tc.seed)
			for col := 0; col < b.Cols(); col++ {
				for row := 0; row < b.Rows(); row++ {
					if HasMatchAt(b, C(col, row)) {
						t.Errorf("fresh board has match at (%d,%d)", col, row)
					}
				}
			}
		})
	}
}

func TestNewBoardNoBombBlocks(t *testing.T) {
	b := NewBoard(Rules{Cols: 8, Rows: 8, TileTypes: 6}, 99)
	for col := 0; col < b.Cols()-1; col++ {
		for row := 0; row < b.Rows()-1; row++ {
			v := b.Get(col, row)
			if v != Empty &&
				b.Get(col+1, row) == v &&
				b.Get(col, row+1) == v &&
				b.Get(col+1, row+1) == v {
				t.Errorf("fresh board has uniform 2x2 block at (%d,%d)", col, row)
			}
		}
	}
}

func TestNewBoardAllCellsValid(t *testing.T) {
	rules := Rules{Cols: 7, Rows: 5, TileTypes: 4}
	b := NewBoard(rules, 7)
	for col := 0; col < b.Cols(); col++ {
		for row := 0; row < b.Rows(); row++ {
			v := b.Get(col, row)
			if v < 0 || v >= rules.TileTypes {
				t.Errorf("cell (%d,%d) = %d out of range [0,%d)", col, row, v, rules.TileTypes)
			}
		}
	}
}

func TestNewBoardDeterministicForSeed(t *testing.T) {
	rules := Rules{Cols: 6, Rows: 6, TileTypes: 5}
	a := NewBoard(rules, 12345)
	b := NewBoard(rules, 12345)

	for col := 0; col < rules.Cols; col++ {
		for row := 0; row < rules.Rows; row++ {
			if a.Get(col, row) != b.Get(col, row) {
				t.Fatalf("same-seed boards differ at (%d,%d): %d vs %d",
					col, row, a.Get(col, row), b.Get(col, row))
			}
		}
	}
}

func TestSetGetSwap(t *testing.T) {
	b := NewEmptyBoard(Rules{Cols: 3, Rows: 3, TileTypes: 3}, 1)

	b.Set(0, 0, 2)
	b.Set(2, 1, 1)
	if got := b.Get(0, 0); got != 2 {
		t.Errorf("Get(0,0) = %d, want 2", got)
	}
	if got := b.GetCell(C(2, 1)); got != 1 {
		t.Errorf("Get(2,1) = %d, want 1", got)
	}

	b.SwapCells(C(0, 0), C(2, 1))
	if b.Get(0, 0) != 1 || b.Get(2, 1) != 2 {
		t.Errorf("swap failed: got (%d, %d), want (1, 2)", b.Get(0, 0), b.Get(2, 1))
	}
}

func TestInBounds(t *testing.T) {
	b := NewEmptyBoard(Rules{Cols: 4, Rows: 3, TileTypes: 3}, 1)

	cases := []struct {
		cell Cell
		want bool
	}{
		{C(0, 0), true},
		{C(3, 2), true},
		{C(4, 0), false},
		{C(0, 3), false},
		{C(-1, 0), false},
		{C(0, -1), false},
	}

	for _, tc := range cases {
		if got := b.InBoundsCell(tc.cell); got != tc.want {
			t.Errorf("InBounds(%v) = %v, want %v", tc.cell, got, tc.want)
		}
	}
}

func TestCloneIndependence(t *testing.T) {
	b := NewBoard(Rules{Cols: 5, Rows: 5, TileTypes: 4}, 9)
	clone := b.Clone()

	clone.Set(2, 2, Empty)
	if b.Get(2, 2) == Empty {
		t.Error("mutating clone changed original cells")
	}

	// Clone must carry the RNG state: both streams continue identically.
	for i := 0; i < 10; i++ {
		want := b.RandomTile()
		got := clone.RandomTile()
		if got != want {
			t.Fatalf("RNG stream diverged at draw %d: clone %d, original %d", i, got, want)
		}
	}
}

func TestRNGStateRoundTrip(t *testing.T) {
	b := NewBoard(Rules{Cols: 4, Rows: 4, TileTypes: 5}, 31)
	state := b.RNGState()
	want := []int{b.RandomTile(), b.RandomTile(), b.RandomTile()}

	b.SetRNGState(state)
	for i, w := range want {
		if got := b.RandomTile(); got != w {
			t.Fatalf("draw %d after state restore = %d, want %d", i, got, w)
		}
	}
}

func TestCellsSnapshotIsCopy(t *testing.T) {
	b := NewBoard(Rules{Cols: 3, Rows: 3, TileTypes: 3}, 5)
	orig := b.Get(0, 0)
	cells := b.Cells()
	cells[0] = Empty

	if b.Get(0, 0) != orig {
		t.Error("Cells() returned a live reference to board storage")
	}

	restore := b.Cells()
	b.FillAll(Empty)
	b.SetCells(restore)
	for i, v := range restore {
		col, row := i/b.Rows(), i%b.Rows()
		if b.Get(col, row) != v {
			t.Fatalf("SetCells did not restore cell (%d,%d)", col, row)
		}
	}
}
