package core

// Empty marks a vacated cell. Every other cell value is a tile color in
// [0, Rules.TileTypes).
const Empty = -1

// Rules fixes the shape and mechanics of a board for one game/round.
// Rules never change after construction except for the mechanic toggles,
// which the host may flip between rounds.
type Rules struct {
	Cols              int
	Rows              int
	TileTypes         int
	BombsEnabled      bool
	ColorChainEnabled bool
}

// DefaultRules returns the classic board shape.
func DefaultRules() Rules {
	return Rules{
		Cols:      8,
		Rows:      8,
		TileTypes: 6,
	}
}

// Board is a rectangular grid of tile colors plus its own seeded random
// stream for tile generation. Cells are stored column-major:
// index = col*rows + row.
//
// Board has value-copy semantics via Clone: the copy owns its own cell
// array and its own RNG state, so probing a hypothetical swap on a clone
// never disturbs the canonical board or its spawn sequence.
type Board struct {
	rules Rules
	cells []int
	rand  rng
}

// NewEmptyBoard creates a board with every cell set to Empty.
// Dimensions and tile count are a construction-time contract: the engine
// does not defend against non-positive values at runtime.
func NewEmptyBoard(rules Rules, seed uint64) *Board {
	b := &Board{
		rules: rules,
		cells: make([]int, rules.Cols*rules.Rows),
		rand:  newRNG(seed),
	}
	b.FillAll(Empty)
	return b
}

// NewBoard generates a playable starting board: every cell is filled with a
// random tile, resampled (up to 20 tries) whenever it would complete a
// 3-in-a-row against tiles already placed, then a bounded second pass breaks
// up any uniform 2x2 block that would trigger the bomb mechanic at round
// start. Both passes are best-effort; pathological rules (TileTypes < 3)
// can still produce an imperfect board, which is accepted.
func NewBoard(rules Rules, seed uint64) *Board {
	b := NewEmptyBoard(rules, seed)

	for col := 0; col < rules.Cols; col++ {
		for row := 0; row < rules.Rows; row++ {
			b.Set(col, row, b.RandomTile())
			tries := 0
			for HasMatchAt(b, C(col, row)) && tries <= 20 {
				b.Set(col, row, b.RandomTile())
				tries++
			}
		}
	}

	changed := true
	for guard := 0; changed && guard < 1000; guard++ {
		changed = false
		for col := 0; col < rules.Cols-1; col++ {
			for row := 0; row < rules.Rows-1; row++ {
				t := b.Get(col, row)
				if t == Empty {
					continue
				}
				if b.Get(col+1, row) == t && b.Get(col, row+1) == t && b.Get(col+1, row+1) == t {
					b.Set(col+1, row+1, b.RandomTile())
					changed = true
				}
			}
		}
	}

	return b
}

// Rules returns the board's rules.
func (b *Board) Rules() Rules { return b.rules }

// Cols returns the number of columns.
func (b *Board) Cols() int { return b.rules.Cols }

// Rows returns the number of rows.
func (b *Board) Rows() int { return b.rules.Rows }

// TileTypes returns the number of distinct tile colors.
func (b *Board) TileTypes() int { return b.rules.TileTypes }

// BombsEnabled reports whether the 2x2 bomb mechanic is active.
func (b *Board) BombsEnabled() bool { return b.rules.BombsEnabled }

// ColorChainEnabled reports whether color-chain adjacency clears are active.
func (b *Board) ColorChainEnabled() bool { return b.rules.ColorChainEnabled }

// SetBombsEnabled toggles the bomb mechanic.
func (b *Board) SetBombsEnabled(v bool) { b.rules.BombsEnabled = v }

// SetColorChainEnabled toggles color-chain clears.
func (b *Board) SetColorChainEnabled(v bool) { b.rules.ColorChainEnabled = v }

func (b *Board) index(col, row int) int {
	return col*b.rules.Rows + row
}

// InBounds reports whether (col, row) lies on the board.
func (b *Board) InBounds(col, row int) bool {
	return col >= 0 && col < b.rules.Cols && row >= 0 && row < b.rules.Rows
}

// InBoundsCell reports whether the cell lies on the board.
func (b *Board) InBoundsCell(c Cell) bool {
	return b.InBounds(c.Col, c.Row)
}

// Get returns the tile at (col, row). Bounds are the caller's problem;
// engine algorithms guard with InBounds before touching edges.
func (b *Board) Get(col, row int) int {
	return b.cells[b.index(col, row)]
}

// GetCell returns the tile at the given cell.
func (b *Board) GetCell(c Cell) int {
	return b.Get(c.Col, c.Row)
}

// Set writes a tile value at (col, row), unchecked.
func (b *Board) Set(col, row, value int) {
	b.cells[b.index(col, row)] = value
}

// SetCell writes a tile value at the given cell.
func (b *Board) SetCell(c Cell, value int) {
	b.Set(c.Col, c.Row, value)
}

// SwapCells exchanges two cell values unconditionally. No validation.
func (b *Board) SwapCells(a, c Cell) {
	ia, ic := b.index(a.Col, a.Row), b.index(c.Col, c.Row)
	b.cells[ia], b.cells[ic] = b.cells[ic], b.cells[ia]
}

// SwapMove exchanges the two cells of a move.
func (b *Board) SwapMove(m Move) {
	b.SwapCells(m.A, m.B)
}

// RandomTile draws a uniform tile color from the board's own RNG stream.
// Call order must stay deterministic (bottom-up per column during respawn)
// for replays to reproduce.
func (b *Board) RandomTile() int {
	if b.rules.TileTypes <= 0 {
		return 0
	}
	return b.rand.intn(b.rules.TileTypes)
}

// FillAll sets every cell to the given value.
func (b *Board) FillAll(value int) {
	for i := range b.cells {
		b.cells[i] = value
	}
}

// Clone returns a deep copy of the board, including the RNG state.
func (b *Board) Clone() *Board {
	cells := make([]int, len(b.cells))
	copy(cells, b.cells)
	return &Board{
		rules: b.rules,
		cells: cells,
		rand:  b.rand,
	}
}

// Cells returns a copy of the flat cell array (column-major).
// Used by the session layer to snapshot board state.
func (b *Board) Cells() []int {
	cells := make([]int, len(b.cells))
	copy(cells, b.cells)
	return cells
}

// SetCells replaces the full cell array from a snapshot.
// The slice length must be Cols*Rows.
func (b *Board) SetCells(cells []int) {
	copy(b.cells, cells)
}

// RNGState exposes the generator state for save files.
func (b *Board) RNGState() uint64 {
	return b.rand.state
}

// SetRNGState restores a previously saved generator state.
func (b *Board) SetRNGState(state uint64) {
	b.rand.state = state
}
