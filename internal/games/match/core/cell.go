// Package core implements the match-3 rules engine: board representation,
// match detection, swap legality, cascade simulation and move search.
// It contains pure logic with no terminal or storage dependencies so the
// platform can drive it from any host (TUI, SSH session, headless solver).
package core

// Cell is a (column, row) coordinate on the board.
type Cell struct {
	Col int
	Row int
}

// C is a shorthand constructor for Cell.
func C(col, row int) Cell {
	return Cell{Col: col, Row: row}
}

// Less orders cells lexicographically by column, then row.
// This ordering is what keeps match groups and event logs deterministic.
func (c Cell) Less(other Cell) bool {
	if c.Col != other.Col {
		return c.Col < other.Col
	}
	return c.Row < other.Row
}

// Add returns the cell offset by (dc, dr).
func (c Cell) Add(dc, dr int) Cell {
	return Cell{Col: c.Col + dc, Row: c.Row + dr}
}

// Move is an unordered pair of cells proposed for a swap.
// No canonical ordering of A and B is guaranteed; callers that need a
// stable identity for the pair must use Normalized.
type Move struct {
	A Cell
	B Cell
}

// Normalized returns the move with its cells sorted by Cell ordering,
// so that {A,B} and {B,A} map to the same key.
func (m Move) Normalized() Move {
	if m.B.Less(m.A) {
		return Move{A: m.B, B: m.A}
	}
	return m
}

// Adjacent reports whether the two cells of the move are Manhattan-adjacent.
func (m Move) Adjacent() bool {
	return abs(m.A.Col-m.B.Col)+abs(m.A.Row-m.B.Row) == 1
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// cellSet is a set of cells with deterministic extraction order.
type cellSet map[Cell]struct{}

func (s cellSet) add(c Cell) {
	s[c] = struct{}{}
}

func (s cellSet) has(c Cell) bool {
	_, ok := s[c]
	return ok
}

func (s cellSet) addAll(other cellSet) {
	for c := range other {
		s[c] = struct{}{}
	}
}

func (s cellSet) overlaps(other cellSet) bool {
	// Iterate the smaller set.
	a, b := s, other
	if len(b) < len(a) {
		a, b = b, a
	}
	for c := range a {
		if b.has(c) {
			return true
		}
	}
	return false
}

// sorted returns the set's cells ordered by Cell.Less.
func (s cellSet) sorted() []Cell {
	cells := make([]Cell, 0, len(s))
	for c := range s {
		cells = append(cells, c)
	}
	sortCells(cells)
	return cells
}

func sortCells(cells []Cell) {
	// Insertion sort; groups are small and this avoids pulling in
	// sort.Slice closures on the hot simulation path.
	for i := 1; i < len(cells); i++ {
		for j := i; j > 0 && cells[j].Less(cells[j-1]); j-- {
			cells[j], cells[j-1] = cells[j-1], cells[j]
		}
	}
}
