package core

// ClearedCell is one (position, tile) pair removed by a clear event.
type ClearedCell struct {
	Position Cell
	Tile     int
}

// ClearEvent records one source of removals within a cascade iteration:
// a match group, a bomb region, or the color-chain neighbor set.
// A cell can appear in more than one event's record (it is still only
// cleared once on the board).
type ClearEvent struct {
	Cells    []ClearedCell
	ViaBomb  bool
	ViaColor bool
}

// FallEvent records a tile dropping within its column under gravity.
type FallEvent struct {
	From Cell
	To   Cell
	Tile int
}

// SpawnEvent records a freshly generated tile filling a vacated top cell.
// DistanceCells is a pacing hint for fall-in animation only; it has no
// gameplay meaning.
type SpawnEvent struct {
	Position      Cell
	Tile          int
	DistanceCells int
}

// ChainEvent groups everything that happened in one cascade iteration,
// in causal order: clears, then falls, then spawns.
type ChainEvent struct {
	Clears []ClearEvent
	Falls  []FallEvent
	Spawns []SpawnEvent
}

// SimulationResult is the full, replayable outcome of resolving one swap.
// ChainEvents holds one entry per cascade iteration; the flat event slices
// aggregate the same events across all iterations for hosts that want a
// single pass. The result is owned by the caller and never retained by the
// engine.
type SimulationResult struct {
	Score               int
	TotalCleared        int
	Chains              int
	BombsTriggered      int
	ColorChainTriggered bool
	Move                Move

	ClearEvents []ClearEvent
	FallEvents  []FallEvent
	SpawnEvents []SpawnEvent
	ChainEvents []ChainEvent
}

// neighborOffsets is the 4-neighborhood used by color-chain clears.
var neighborOffsets = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// SimulateFullChain performs the swap on the given board and resolves the
// complete cascade: find matches (plus bomb blocks and color-chain neighbors
// when enabled), clear, apply gravity, respawn, and repeat until stable.
//
// The board is mutated; callers that need to keep the pre-swap state must
// pass a Clone. Legality is not enforced here: an illegal-but-adjacent swap
// simply yields an empty result with score 0.
func SimulateFullChain(b *Board, m Move) SimulationResult {
	var result SimulationResult
	if !b.InBoundsCell(m.A) || !b.InBoundsCell(m.B) || !m.Adjacent() {
		return result
	}

	b.SwapMove(m)
	result.Move = m

	totalCleared := 0
	chains := 0
	bombsTotal := 0
	colorChainHappened := false

	for {
		rawGroups := FindAllMatches(b)

		baseGroups := make([]cellSet, 0, len(rawGroups))
		matched := make(cellSet)
		for _, group := range rawGroups {
			set := make(cellSet, len(group))
			for _, c := range group {
				set.add(c)
			}
			matched.addAll(set)
			baseGroups = append(baseGroups, set)
		}

		chainNeighbors := make(cellSet)
		if b.ColorChainEnabled() && len(baseGroups) > 0 {
			collectChainNeighbors(b, rawGroups, matched, chainNeighbors)
		}

		var bombGroups []cellSet
		if b.BombsEnabled() {
			bombGroups = collectBombRegions(b)
		}

		if len(baseGroups) == 0 && len(bombGroups) == 0 && len(chainNeighbors) == 0 {
			break
		}

		toRemove := make(cellSet)
		for _, g := range baseGroups {
			toRemove.addAll(g)
		}
		for _, g := range bombGroups {
			toRemove.addAll(g)
		}
		toRemove.addAll(chainNeighbors)

		// Bomb blocks count double to reward the bigger effect.
		totalCleared += len(toRemove) + 2*len(bombGroups)
		chains++
		bombsTotal += len(bombGroups)
		if len(chainNeighbors) > 0 {
			colorChainHappened = true
		}

		var chainEvent ChainEvent
		for _, g := range baseGroups {
			appendClearEvent(b, &chainEvent, g, false, false)
		}
		for _, g := range bombGroups {
			appendClearEvent(b, &chainEvent, g, true, false)
		}
		appendClearEvent(b, &chainEvent, chainNeighbors, false, true)

		for c := range toRemove {
			b.SetCell(c, Empty)
		}

		falls, spawns := collapseAndRefill(b)
		chainEvent.Falls = falls
		chainEvent.Spawns = spawns

		result.ClearEvents = append(result.ClearEvents, chainEvent.Clears...)
		result.FallEvents = append(result.FallEvents, falls...)
		result.SpawnEvents = append(result.SpawnEvents, spawns...)
		result.ChainEvents = append(result.ChainEvents, chainEvent)
	}

	result.TotalCleared = totalCleared
	result.Chains = chains
	result.BombsTriggered = bombsTotal
	result.ColorChainTriggered = colorChainHappened
	result.Score = ScoreForCleared(totalCleared)
	return result
}

// ScoreForCleared maps a cleared-cell total to points: a flat baseline of 1
// for the minimum clearable match, plus 1 per additional cell. Below the
// minimum the swap scores nothing.
func ScoreForCleared(totalCleared int) int {
	if totalCleared < 3 {
		return 0
	}
	return 1 + (totalCleared - 3)
}

// collectChainNeighbors adds every unmatched 4-neighbor that shares its
// adjacent group's color. These are bonus clears tagged ViaColor.
func collectChainNeighbors(b *Board, groups []MatchGroup, matched, out cellSet) {
	for _, group := range groups {
		if len(group) == 0 {
			continue
		}
		matchColor := b.GetCell(group[0])
		if matchColor == Empty {
			continue
		}
		for _, cell := range group {
			for _, off := range neighborOffsets {
				neighbor := cell.Add(off[0], off[1])
				if !b.InBoundsCell(neighbor) {
					continue
				}
				if matched.has(neighbor) {
					continue
				}
				if b.GetCell(neighbor) == matchColor {
					out.add(neighbor)
				}
			}
		}
	}
}

// collectBombRegions finds every uniform non-empty 2x2 block and expands it
// to the surrounding 4x4 area (cols c-1..c+2, rows r-1..r+2, clipped).
func collectBombRegions(b *Board) []cellSet {
	var regions []cellSet
	for col := 0; col < b.Cols()-1; col++ {
		for row := 0; row < b.Rows()-1; row++ {
			t := b.Get(col, row)
			if t == Empty {
				continue
			}
			if b.Get(col+1, row) != t || b.Get(col, row+1) != t || b.Get(col+1, row+1) != t {
				continue
			}
			region := make(cellSet, 16)
			for x := col - 1; x <= col+2; x++ {
				for y := row - 1; y <= row+2; y++ {
					if b.InBounds(x, y) {
						region.add(C(x, y))
					}
				}
			}
			regions = append(regions, region)
		}
	}
	return regions
}

// appendClearEvent records the (position, tile) pairs of a removal source.
// Tiles are captured before the board is cleared.
func appendClearEvent(b *Board, chain *ChainEvent, cells cellSet, viaBomb, viaColor bool) {
	if len(cells) == 0 {
		return
	}
	evt := ClearEvent{
		Cells:    make([]ClearedCell, 0, len(cells)),
		ViaBomb:  viaBomb,
		ViaColor: viaColor,
	}
	for _, c := range cells.sorted() {
		evt.Cells = append(evt.Cells, ClearedCell{Position: c, Tile: b.GetCell(c)})
	}
	chain.Clears = append(chain.Clears, evt)
}

// collapseAndRefill compacts each column downward (stable order) and fills
// the vacated top cells with fresh random tiles. Columns are processed left
// to right and spawns top-down within a column so the RNG call order stays
// deterministic.
func collapseAndRefill(b *Board) ([]FallEvent, []SpawnEvent) {
	var falls []FallEvent
	var spawns []SpawnEvent

	for col := 0; col < b.Cols(); col++ {
		write := b.Rows() - 1
		for row := b.Rows() - 1; row >= 0; row-- {
			val := b.Get(col, row)
			if val == Empty {
				continue
			}
			if write != row {
				b.Set(col, write, val)
				b.Set(col, row, Empty)
				falls = append(falls, FallEvent{
					From: C(col, row),
					To:   C(col, write),
					Tile: val,
				})
			}
			write--
		}

		holes := write + 1
		for row, spawnIndex := write, 0; row >= 0; row, spawnIndex = row-1, spawnIndex+1 {
			tile := b.RandomTile()
			b.Set(col, row, tile)
			distance := holes - spawnIndex
			if distance < 1 {
				distance = 1
			}
			spawns = append(spawns, SpawnEvent{
				Position:      C(col, row),
				Tile:          tile,
				DistanceCells: distance,
			})
		}
	}

	return falls, spawns
}
