package ui

import (
	"context"
	"log/slog"

	"github.com/gdamore/tcell/v2"

	"github.com/pixelboard/tictactoe-tui/internal/game"
)

const startCursor = 4 // center cell

// App runs the interactive session: it owns the current Game value, renders
// it, and turns terminal events into engine calls.
type App struct {
	logger   *slog.Logger
	screen   *Screen
	renderer *Renderer

	game    game.Game
	cursor  int
	running bool
}

func NewApp(logger *slog.Logger, screen *Screen, renderer *Renderer) *App {
	return &App{
		logger:   logger.With("component", "ui"),
		screen:   screen,
		renderer: renderer,
		game:     game.New(),
		cursor:   startCursor,
		running:  true,
	}
}

// Run executes the event loop until the player quits or the context is
// canceled.
func (that *App) Run(ctx context.Context) error {
	events := make(chan tcell.Event)
	quit := make(chan struct{})
	go that.screen.ChannelEvents(events, quit)

	for that.running {
		that.renderer.Render(that.game, that.cursor)

		select {
		case <-ctx.Done():
			close(quit)
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			that.handleEvent(ev)
		}
	}

	close(quit)

	return nil
}

func (that *App) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		that.handleKey(ev)
	case *tcell.EventMouse:
		that.handleMouse(ev)
	case *tcell.EventResize:
		that.screen.Sync()
	}
}

func (that *App) handleKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		that.running = false
	case tcell.KeyUp:
		that.moveCursor(0, -1)
	case tcell.KeyDown:
		that.moveCursor(0, 1)
	case tcell.KeyLeft:
		that.moveCursor(-1, 0)
	case tcell.KeyRight:
		that.moveCursor(1, 0)
	case tcell.KeyEnter:
		that.place(that.cursor)
	case tcell.KeyRune:
		that.handleRune(ev.Rune())
	}
}

func (that *App) handleRune(r rune) {
	switch {
	case r == 'q' || r == 'Q':
		that.running = false
	case r == 'r' || r == 'R':
		that.reset()
	case r == ' ':
		that.place(that.cursor)
	case r == 'h':
		that.moveCursor(-1, 0)
	case r == 'l':
		that.moveCursor(1, 0)
	case r == 'k':
		that.moveCursor(0, -1)
	case r == 'j':
		that.moveCursor(0, 1)
	case r >= '1' && r <= '9':
		// 1 is the top-left cell, row-major
		that.place(int(r - '1'))
	}
}

func (that *App) handleMouse(ev *tcell.EventMouse) {
	if ev.Buttons()&tcell.Button1 == 0 {
		return
	}

	x, y := ev.Position()
	if index, ok := that.renderer.CellAt(x, y); ok {
		that.place(index)
	}
}

// moveCursor shifts the cursor by one cell, wrapping around the grid edges.
func (that *App) moveCursor(dx, dy int) {
	col := (that.cursor%3 + dx + 3) % 3
	row := (that.cursor/3 + dy + 3) % 3
	that.cursor = row*3 + col
}

// place forwards a move to the engine. The engine decides legality; a
// rejected move leaves the state untouched and the board is just redrawn.
func (that *App) place(index int) {
	next, err := that.game.ApplyMove(index)
	if err != nil {
		that.logger.Debug("move rejected", "index", index, "error", err)
		return
	}

	that.game = next

	if status := next.Status(); status.Terminal() {
		that.logger.Info("game over", "state", status.State.String(), "winner", string(status.Winner))
	}
}

// reset starts a fresh game. Only offered once the current one has ended.
func (that *App) reset() {
	if !that.game.Status().Terminal() {
		return
	}

	that.logger.Info("starting new game")
	that.game = game.New()
	that.cursor = startCursor
}
