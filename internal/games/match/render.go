package match

import (
	"fmt"

	platformcore "github.com/akarpenko/tilematch/internal/core"
	"github.com/akarpenko/tilematch/internal/games/match/core"
)

const (
	cellWidth  = 4 // Width of each cell (including left border)
	cellHeight = 2 // Height of each cell (including top border)
	hudHeight  = 3
)

// tileGlyphs maps tile types to display runes, cycling for large palettes.
var tileGlyphs = []rune{'●', '■', '▲', '◆', '♥', '★', '✚', '◉'}

func tileGlyph(tile int) rune {
	if tile < 0 {
		return ' '
	}
	return tileGlyphs[tile%len(tileGlyphs)]
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	boardW := g.cfg.Cols*cellWidth + 1
	boardH := g.cfg.Rows*cellHeight + 1

	boardX := (g.screenW - boardW) / 2
	boardY := hudHeight + 1

	g.renderHUD(dst, boardX, boardW)
	g.renderBoard(dst, boardX, boardY)
	g.renderStatusLine(dst, boardX, boardY+boardH)
	g.renderOverlays(dst, boardX, boardY, boardW, boardH)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *platformcore.Screen) {
	msg := "Window too small"
	x := (g.screenW - len(msg)) / 2
	y := g.screenH / 2
	dst.DrawText(x, y, msg)

	hint := "Please resize terminal"
	hintX := (g.screenW - len(hint)) / 2
	dst.DrawText(hintX, y+1, hint)
}

// renderHUD draws the title, scores, and move counters.
func (g *Game) renderHUD(dst *platformcore.Screen, boardX, boardW int) {
	title := g.Title()
	titleX := boardX + (boardW-len(title))/2
	dst.DrawText(titleX, 0, title)

	scoreStr := fmt.Sprintf("Score: %d", g.score)
	dst.DrawText(boardX, 1, scoreStr)

	var infoStr string
	if g.mode == ModeDuel {
		infoStr = fmt.Sprintf("CPU: %d", g.cpuScore)
	} else {
		infoStr = fmt.Sprintf("Moves: %d/%d", g.movesUsed, g.totalMoves)
	}
	infoX := boardX + boardW - len(infoStr)
	if infoX < boardX {
		infoX = boardX
	}
	dst.DrawText(infoX, 1, infoStr)

	if g.mode == ModeDuel {
		turnStr := "Your turn"
		if g.turn == TurnCPU {
			turnStr = "CPU is thinking..."
		}
		roundStr := fmt.Sprintf("Round %d/%d  %s  Moves: %d/%d",
			g.round(), g.cfg.RoundsPerMatch, turnStr, g.movesUsed, g.totalMoves)
		roundX := boardX + (boardW-len(roundStr))/2
		dst.DrawText(roundX, 2, roundStr)
	}
}

// renderBoard draws the tile grid, cursor, selection, and hint markers.
func (g *Game) renderBoard(dst *platformcore.Screen, boardX, boardY int) {
	// Grid lines
	for row := 0; row <= g.cfg.Rows; row++ {
		for col := 0; col <= g.cfg.Cols; col++ {
			px := boardX + col*cellWidth
			py := boardY + row*cellHeight

			var corner rune
			switch {
			case row == 0 && col == 0:
				corner = '┌'
			case row == 0 && col == g.cfg.Cols:
				corner = '┐'
			case row == g.cfg.Rows && col == 0:
				corner = '└'
			case row == g.cfg.Rows && col == g.cfg.Cols:
				corner = '┘'
			case row == 0:
				corner = '┬'
			case row == g.cfg.Rows:
				corner = '┴'
			case col == 0:
				corner = '├'
			case col == g.cfg.Cols:
				corner = '┤'
			default:
				corner = '┼'
			}
			dst.SetColored(px, py, corner, platformcore.ColorGray)

			if col < g.cfg.Cols {
				for i := 1; i < cellWidth; i++ {
					dst.SetColored(px+i, py, '─', platformcore.ColorGray)
				}
			}
			if row < g.cfg.Rows {
				for i := 1; i < cellHeight; i++ {
					dst.SetColored(px, py+i, '│', platformcore.ColorGray)
				}
			}
		}
	}

	highlights := g.highlightedCells()

	// Tiles
	for col := 0; col < g.cfg.Cols; col++ {
		for row := 0; row < g.cfg.Rows; row++ {
			tile := g.displayTile(col, row)
			cx := boardX + col*cellWidth + cellWidth/2
			cy := boardY + row*cellHeight + 1

			cell := core.C(col, row)
			if tile != core.Empty {
				color := platformcore.TileColor(tile)
				if highlights[cell] {
					color = platformcore.ColorBrightWhite
				}
				dst.SetColored(cx, cy, tileGlyph(tile), color)
			}

			g.renderMarkers(dst, cell, cx, cy)
		}
	}
}

// renderMarkers draws cursor brackets, selection parens, and hint markers
// around a tile.
func (g *Game) renderMarkers(dst *platformcore.Screen, cell core.Cell, cx, cy int) {
	if g.hint != nil && (g.hint.A == cell || g.hint.B == cell) {
		dst.SetColored(cx-1, cy, '*', platformcore.ColorBrightYellow)
		dst.SetColored(cx+1, cy, '*', platformcore.ColorBrightYellow)
	}
	if g.selected != nil && *g.selected == cell {
		dst.SetColored(cx-1, cy, '(', platformcore.ColorBrightWhite)
		dst.SetColored(cx+1, cy, ')', platformcore.ColorBrightWhite)
	}
	if g.cursor == cell && g.phase == animNone && !(g.mode == ModeDuel && g.turn == TurnCPU) {
		dst.SetColored(cx-1, cy, '[', platformcore.ColorBrightCyan)
		dst.SetColored(cx+1, cy, ']', platformcore.ColorBrightCyan)
	}
}

// displayTile returns the tile to show at a cell: the animation copy while a
// cascade is replaying, the live board otherwise.
func (g *Game) displayTile(col, row int) int {
	if g.phase != animNone && g.animCells != nil {
		return g.animCells[col*g.cfg.Rows+row]
	}
	return g.board.Get(col, row)
}

// highlightedCells returns the cells flashing in the current clear phase.
func (g *Game) highlightedCells() map[core.Cell]bool {
	if g.phase != animHighlight || len(g.animQueue) == 0 {
		return nil
	}
	cells := make(map[core.Cell]bool)
	for _, clear := range g.animQueue[0].Clears {
		for _, cc := range clear.Cells {
			cells[cc.Position] = true
		}
	}
	return cells
}

// renderStatusLine draws the transient message under the board.
func (g *Game) renderStatusLine(dst *platformcore.Screen, boardX, y int) {
	if g.message == "" {
		return
	}
	dst.DrawTextColored(boardX, y, g.message, platformcore.ColorBrightYellow)
}

// renderOverlays draws game state overlays.
func (g *Game) renderOverlays(dst *platformcore.Screen, boardX, boardY, boardW, boardH int) {
	centerX := boardX + boardW/2
	centerY := boardY + boardH/2

	if g.paused {
		g.drawOverlay(dst, centerX, centerY, "PAUSED", "Press P to resume")
		return
	}

	if g.gameOver {
		if g.mode == ModeDuel {
			var verdict string
			switch {
			case g.score > g.cpuScore:
				verdict = "You win!"
			case g.score < g.cpuScore:
				verdict = "CPU wins!"
			default:
				verdict = "Draw!"
			}
			scoreStr := fmt.Sprintf("You %d - %d CPU", g.score, g.cpuScore)
			g.drawOverlay(dst, centerX, centerY, "MATCH OVER", verdict, scoreStr, "Press R to restart")
		} else {
			scoreStr := fmt.Sprintf("Final score: %d", g.score)
			g.drawOverlay(dst, centerX, centerY, "GAME OVER", scoreStr, "Press R to restart")
		}
	}
}

// drawOverlay draws a centered text overlay.
func (g *Game) drawOverlay(dst *platformcore.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	boxX := centerX - boxW/2
	boxY := centerY - boxH/2

	// Clear area behind overlay
	for y := boxY; y < boxY+boxH; y++ {
		for x := boxX; x < boxX+boxW; x++ {
			dst.Set(x, y, ' ')
		}
	}

	dst.DrawBox(platformcore.Rect{X: boxX, Y: boxY, W: boxW, H: boxH})

	for i, line := range lines {
		x := centerX - len(line)/2
		dst.DrawText(x, boxY+1+i, line)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows/WASD: Move cursor | Enter: Select/Swap | H: Hint | Esc: Cancel | P: Pause | Q: Quit"
}
