package ui

import (
	"strings"

	"github.com/pixelboard/tictactoe-tui/internal/game"
)

// Grid geometry: cells are 3 columns wide and 1 row tall, separated by a
// single rule, so the whole grid is 11x5 with a 4x2 stride per cell.
const (
	cellWidth  = 3
	cellStride = 4
	rowStride  = 2
	gridWidth  = 11
	gridHeight = 5
)

// glyphSet holds the characters used to draw the grid rules.
type glyphSet struct {
	horizontal rune
	vertical   rune
	cross      rune
}

var (
	unicodeGlyphs = glyphSet{horizontal: '─', vertical: '│', cross: '┼'}
	asciiGlyphs   = glyphSet{horizontal: '-', vertical: '|', cross: '+'}
)

// boardRows renders the board as gridHeight rows of text.
func boardRows(board game.Board, glyphs glyphSet) []string {
	segment := strings.Repeat(string(glyphs.horizontal), cellWidth)
	rule := segment + string(glyphs.cross) + segment + string(glyphs.cross) + segment

	rows := make([]string, 0, gridHeight)

	for row := 0; row < 3; row++ {
		cells := make([]string, 3)
		for col := 0; col < 3; col++ {
			mark := board[row*3+col]
			if mark == game.Empty {
				cells[col] = "   "
				continue
			}
			cells[col] = " " + string(mark) + " "
		}

		rows = append(rows, strings.Join(cells, string(glyphs.vertical)))
		if row < 2 {
			rows = append(rows, rule)
		}
	}

	return rows
}

// statusLine describes the current game for the line under the grid.
func statusLine(g game.Game) string {
	switch status := g.Status(); status.State {
	case game.StateWon:
		return string(status.Winner) + " wins"
	case game.StateTie:
		return "tie game"
	default:
		return string(g.Turn) + " to move"
	}
}

// hintLine lists the keys available in the current state. The play-again
// hint only appears once the game has ended.
func hintLine(terminal bool) string {
	if terminal {
		return "r: play again   q: quit"
	}
	return "arrows: move   enter/1-9: place   q: quit"
}

// cellOrigin returns the screen position of a cell's leftmost column, given
// the top-left corner of the rendered grid.
func cellOrigin(index, originX, originY int) (x, y int) {
	return originX + (index%3)*cellStride, originY + (index/3)*rowStride
}

// cellAt maps a screen position back to a board index. Positions on the
// grid rules or outside the grid map to no cell.
func cellAt(x, y, originX, originY int) (int, bool) {
	relX, relY := x-originX, y-originY

	if relX < 0 || relY < 0 || relX >= gridWidth || relY >= gridHeight {
		return 0, false
	}

	if relX%cellStride == cellWidth || relY%rowStride == 1 {
		return 0, false
	}

	return (relY/rowStride)*3 + relX/cellStride, true
}
