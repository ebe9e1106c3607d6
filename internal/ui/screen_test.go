package ui

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/require"

	"github.com/pixelboard/tictactoe-tui/internal/game"
)

// newSimScreen builds a Screen backed by tcell's in-memory terminal.
func newSimScreen(t *testing.T) (*Screen, tcell.SimulationScreen) {
	t.Helper()

	sim := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, sim.Init())
	sim.SetSize(80, 24)
	t.Cleanup(sim.Fini)

	return &Screen{screen: sim}, sim
}

func TestScreen_SetTextOneColumnPerRune(t *testing.T) {
	// Given: a simulated terminal
	screen, sim := newSimScreen(t)

	// When: a string of multi-byte box-drawing runes is written
	rule := "───┼───┼───"
	screen.SetText(0, 0, rule, tcell.StyleDefault)
	screen.Show()

	// Then: each rune lands in its own consecutive column
	for i, want := range []rune(rule) {
		got, _, _, _ := sim.GetContent(i, 0)
		require.Equal(t, string(want), string(got), "column %d", i)
	}

	// Then: nothing spills past the text
	past, _, _, _ := sim.GetContent(len([]rune(rule)), 0)
	require.Equal(t, ' ', past)
}

func TestRenderer_UnicodeGridAlignment(t *testing.T) {
	// Given: a renderer in the default (unicode) configuration and a game
	// where X holds the top-left cell
	screen, sim := newSimScreen(t)
	renderer := NewRenderer(screen, false)

	g, err := game.New().ApplyMove(0)
	require.NoError(t, err)

	// When: a frame is rendered
	renderer.Render(g, startCursor)

	width, height := sim.Size()
	originX := (width - gridWidth) / 2
	originY := (height - gridHeight - 4) / 2

	// Then: the first rule row occupies exactly columns 0..10 of the grid
	for i, want := range []rune("───┼───┼───") {
		got, _, _, _ := sim.GetContent(originX+i, originY+1)
		require.Equal(t, string(want), string(got), "column %d", i)
	}

	past, _, _, _ := sim.GetContent(originX+gridWidth, originY+1)
	require.Equal(t, ' ', past)

	// Then: the mark sits in the middle column of its cell
	x, y := cellOrigin(0, originX, originY)
	mark, _, _, _ := sim.GetContent(x+1, y)
	require.Equal(t, 'X', mark)

	// Then: a click on that position maps back to the same cell
	index, ok := renderer.CellAt(x+1, y)
	require.True(t, ok)
	require.Equal(t, 0, index)
}
