package core

// MatchGroup is one connected component of matched cells, sorted by Cell
// ordering. Groups are computed on demand and never stored on the board.
type MatchGroup []Cell

// HasMatchAt reports whether the tile at cell sits on a horizontal or
// vertical run of length >= 3. It only inspects the runs through that one
// cell, which is all the generator needs; it is not a whole-board scan.
func HasMatchAt(b *Board, cell Cell) bool {
	if !b.InBoundsCell(cell) {
		return false
	}
	tile := b.GetCell(cell)
	if tile == Empty {
		return false
	}

	count := 1
	for c := cell.Col - 1; c >= 0 && b.Get(c, cell.Row) == tile; c-- {
		count++
	}
	for c := cell.Col + 1; c < b.Cols() && b.Get(c, cell.Row) == tile; c++ {
		count++
	}
	if count >= 3 {
		return true
	}

	count = 1
	for r := cell.Row - 1; r >= 0 && b.Get(cell.Col, r) == tile; r-- {
		count++
	}
	for r := cell.Row + 1; r < b.Rows() && b.Get(cell.Col, r) == tile; r++ {
		count++
	}
	return count >= 3
}

// FindAllMatches scans every row and column for maximal runs of >= 3 equal
// non-empty tiles, then merges overlapping runs into connected groups so an
// L- or T-shaped match comes back as a single group. Group membership is a
// set; the returned groups and their cells are sorted for determinism.
func FindAllMatches(b *Board) []MatchGroup {
	groups := findRunGroups(b)
	groups = mergeOverlapping(groups)

	result := make([]MatchGroup, 0, len(groups))
	for _, g := range groups {
		result = append(result, g.sorted())
	}
	sortGroups(result)
	return result
}

// findRunGroups collects raw horizontal and vertical runs as cell sets.
func findRunGroups(b *Board) []cellSet {
	var groups []cellSet

	for row := 0; row < b.Rows(); row++ {
		col := 0
		for col < b.Cols() {
			tile := b.Get(col, row)
			if tile == Empty {
				col++
				continue
			}
			start := col
			for col+1 < b.Cols() && b.Get(col+1, row) == tile {
				col++
			}
			if col-start+1 >= 3 {
				group := make(cellSet, col-start+1)
				for c := start; c <= col; c++ {
					group.add(C(c, row))
				}
				groups = append(groups, group)
			}
			col++
		}
	}

	for col := 0; col < b.Cols(); col++ {
		row := 0
		for row < b.Rows() {
			tile := b.Get(col, row)
			if tile == Empty {
				row++
				continue
			}
			start := row
			for row+1 < b.Rows() && b.Get(col, row+1) == tile {
				row++
			}
			if row-start+1 >= 3 {
				group := make(cellSet, row-start+1)
				for r := start; r <= row; r++ {
					group.add(C(col, r))
				}
				groups = append(groups, group)
			}
			row++
		}
	}

	return groups
}

// mergeOverlapping unions any two groups sharing a cell until no further
// merges occur.
func mergeOverlapping(groups []cellSet) []cellSet {
	merged := true
	for merged {
		merged = false
		out := make([]cellSet, 0, len(groups))
		for len(groups) > 0 {
			current := groups[len(groups)-1]
			groups = groups[:len(groups)-1]
			expanded := true
			for expanded {
				expanded = false
				for i := 0; i < len(groups); {
					if current.overlaps(groups[i]) {
						current.addAll(groups[i])
						groups = append(groups[:i], groups[i+1:]...)
						expanded = true
						merged = true
					} else {
						i++
					}
				}
			}
			out = append(out, current)
		}
		groups = out
	}
	return groups
}

// sortGroups orders groups by their first (smallest) cell.
func sortGroups(groups []MatchGroup) {
	for i := 1; i < len(groups); i++ {
		for j := i; j > 0 && groupLess(groups[j], groups[j-1]); j-- {
			groups[j], groups[j-1] = groups[j-1], groups[j]
		}
	}
}

func groupLess(a, b MatchGroup) bool {
	if len(a) == 0 || len(b) == 0 {
		return len(a) < len(b)
	}
	return a[0].Less(b[0])
}
