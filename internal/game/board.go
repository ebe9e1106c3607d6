package game

// Mark is the symbol occupying a board cell. Empty is a valid cell value
// but never a turn.
type Mark string

const (
	Empty Mark = ""
	MarkX Mark = "X"
	MarkO Mark = "O"
)

// Other returns the opposing mark.
func (that Mark) Other() Mark {
	if that == MarkX {
		return MarkO
	}
	return MarkX
}

// Board is the 3x3 grid in row-major order: index = row*3 + col.
type Board [9]Mark

// winLines are the 8 index triples that decide a game, checked in this
// fixed order: rows, then columns, then diagonals.
var winLines = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// EvaluateWinner reports the mark holding a complete line, if any.
func EvaluateWinner(board Board) (Mark, bool) {
	for _, line := range winLines {
		a, b, c := board[line[0]], board[line[1]], board[line[2]]
		if a != Empty && a == b && b == c {
			return a, true
		}
	}

	return Empty, false
}

// IsFull reports whether no cell is empty.
func IsFull(board Board) bool {
	for _, cell := range board {
		if cell == Empty {
			return false
		}
	}

	return true
}
