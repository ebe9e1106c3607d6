// Package ui is the terminal presentation layer. It renders the board and
// status line and forwards selected cell indexes to the game engine, which
// stays the sole authority on move legality.
package ui

import "github.com/gdamore/tcell/v2"

// Screen wraps tcell.Screen behind the small surface the renderer and the
// event loop need.
type Screen struct {
	screen tcell.Screen
}

// NewScreen creates and initializes a new terminal screen.
func NewScreen() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}

	if err = s.Init(); err != nil {
		return nil, err
	}

	s.SetStyle(tcell.StyleDefault)
	s.EnableMouse()
	s.Clear()

	return &Screen{screen: s}, nil
}

// Close finalizes the screen and restores terminal state.
func (that *Screen) Close() {
	that.screen.Fini()
}

// ChannelEvents delivers terminal events on ch until quit is closed.
func (that *Screen) ChannelEvents(ch chan<- tcell.Event, quit <-chan struct{}) {
	that.screen.ChannelEvents(ch, quit)
}

// Clear clears the screen buffer.
func (that *Screen) Clear() {
	that.screen.Clear()
}

// Show flushes the screen buffer to the terminal.
func (that *Screen) Show() {
	that.screen.Show()
}

// Sync forces a complete redraw of the screen.
func (that *Screen) Sync() {
	that.screen.Sync()
}

// Size returns the current terminal dimensions.
func (that *Screen) Size() (width, height int) {
	return that.screen.Size()
}

// SetContent sets a single cell's content at the given position.
func (that *Screen) SetContent(x, y int, r rune, style tcell.Style) {
	that.screen.SetContent(x, y, r, nil, style)
}

// SetText writes a string starting at the given position, one column per
// rune.
func (that *Screen) SetText(x, y int, text string, style tcell.Style) {
	for i, r := range []rune(text) {
		that.screen.SetContent(x+i, y, r, nil, style)
	}
}
