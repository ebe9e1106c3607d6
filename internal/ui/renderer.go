package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/pixelboard/tictactoe-tui/internal/game"
)

// Renderer draws the board, status line, and key hints to the screen.
type Renderer struct {
	screen *Screen
	glyphs glyphSet

	// top-left corner of the grid from the latest Render, used to map
	// mouse clicks back to cells.
	originX int
	originY int
}

// NewRenderer creates a renderer for the given screen. With asciiOnly set
// the grid is drawn without box-drawing characters, for terminals that
// cannot display them.
func NewRenderer(screen *Screen, asciiOnly bool) *Renderer {
	glyphs := unicodeGlyphs
	if asciiOnly {
		glyphs = asciiGlyphs
	}

	return &Renderer{screen: screen, glyphs: glyphs}
}

// Render draws the full frame: grid centered on screen, marks, cursor
// highlight, then the status and hint lines underneath.
func (that *Renderer) Render(g game.Game, cursor int) {
	that.screen.Clear()

	width, height := that.screen.Size()
	that.originX = (width - gridWidth) / 2
	that.originY = (height - gridHeight - 4) / 2
	if that.originX < 0 {
		that.originX = 0
	}
	if that.originY < 0 {
		that.originY = 0
	}

	gridStyle := tcell.StyleDefault.Foreground(tcell.ColorGray)
	for i, row := range boardRows(g.Board, that.glyphs) {
		that.screen.SetText(that.originX, that.originY+i, row, gridStyle)
	}

	for i, mark := range g.Board {
		if mark == game.Empty {
			continue
		}
		x, y := cellOrigin(i, that.originX, that.originY)
		that.screen.SetContent(x+1, y, rune(mark[0]), markStyle(mark))
	}

	status := g.Status()

	if !status.Terminal() {
		that.highlightCursor(g, cursor)
	}

	that.screen.SetText(that.originX, that.originY+gridHeight+1, statusLine(g), tcell.StyleDefault.Bold(true))
	that.screen.SetText(that.originX, that.originY+gridHeight+3, hintLine(status.Terminal()), tcell.StyleDefault.Foreground(tcell.ColorGray))

	that.screen.Show()
}

// CellAt maps a screen position to a board index using the latest frame's
// grid placement.
func (that *Renderer) CellAt(x, y int) (int, bool) {
	return cellAt(x, y, that.originX, that.originY)
}

// highlightCursor redraws the cursor's cell in reverse video.
func (that *Renderer) highlightCursor(g game.Game, cursor int) {
	if cursor < 0 || cursor >= len(g.Board) {
		return
	}

	runes := [cellWidth]rune{' ', ' ', ' '}
	if mark := g.Board[cursor]; mark != game.Empty {
		runes[1] = rune(mark[0])
	}

	x, y := cellOrigin(cursor, that.originX, that.originY)
	style := tcell.StyleDefault.Reverse(true)
	for dx, r := range runes {
		that.screen.SetContent(x+dx, y, r, style)
	}
}

func markStyle(mark game.Mark) tcell.Style {
	if mark == game.MarkX {
		return tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	}
	return tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true)
}
