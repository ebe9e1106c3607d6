// Package game is the rules engine: it decides whether a move is legal and
// whether a board is won, tied, or still being played. It does no I/O and
// keeps no hidden state; callers own the Game values it hands out.
package game

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidIndex    = errors.New("invalid cell index")
	ErrGameAlreadyOver = errors.New("game is already over")
	ErrCellOccupied    = errors.New("cell is already occupied")
)

// Game is the full state of one match: the board and whose turn it is.
// It is a plain value; ApplyMove returns a new Game and never touches the
// receiver, so earlier values stay valid snapshots.
type Game struct {
	Board Board `json:"board"`
	Turn  Mark  `json:"turn"`
}

// New returns a fresh game: empty board, X to move. Restarting a finished
// game is the same call, the old value is simply discarded.
func New() Game {
	return Game{Turn: MarkX}
}

// Status derives the current outcome from the board.
func (that Game) Status() Status {
	return DeriveStatus(that.Board)
}

// ApplyMove places the current turn's mark at index and returns the
// resulting game. Preconditions are checked in a fixed order: bounds,
// terminal status, occupancy.
func (that Game) ApplyMove(index int) (Game, error) {
	if index < 0 || index >= len(that.Board) {
		return that, fmt.Errorf("%w: cell %d", ErrInvalidIndex, index)
	}

	if DeriveStatus(that.Board).Terminal() {
		return that, ErrGameAlreadyOver
	}

	if that.Board[index] != Empty {
		return that, ErrCellOccupied
	}

	next := that
	next.Board[index] = that.Turn
	next.Turn = that.Turn.Other()

	return next, nil
}
