package game

// State classifies a board: still being played, won, or tied.
type State uint8

const (
	StateInProgress State = iota
	StateWon
	StateTie
)

func (that State) String() string {
	switch that {
	case StateWon:
		return "won"
	case StateTie:
		return "tie"
	default:
		return "in_progress"
	}
}

// Status is the derived outcome of a board. Winner is set only when State
// is StateWon.
//
// A status is always recomputed from the board and never stored alongside
// it, so it cannot drift from the actual cell contents.
type Status struct {
	State  State
	Winner Mark
}

// Terminal reports whether no further moves are accepted.
func (that Status) Terminal() bool {
	return that.State != StateInProgress
}

// DeriveStatus computes the outcome of a board. A completed line wins even
// on a full board; a tie needs a full board with no line.
func DeriveStatus(board Board) Status {
	if winner, ok := EvaluateWinner(board); ok {
		return Status{State: StateWon, Winner: winner}
	}

	if IsFull(board) {
		return Status{State: StateTie}
	}

	return Status{State: StateInProgress}
}
