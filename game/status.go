package game

type Status uint8

const (
	// StatusInProgress is the initial state; moves are accepted.
	StatusInProgress Status = iota

	// StatusWhiteWins is terminal: White checkmated Black.
	StatusWhiteWins

	// StatusBlackWins is terminal: Black checkmated White.
	StatusBlackWins

	// StatusStalemate is terminal: the side to move has no legal move and is
	// not in check.
	StatusStalemate
)

func (s Status) String() string {
	switch s {
	case StatusInProgress:
		return "In Progress"
	case StatusWhiteWins:
		return "White Wins!"
	case StatusBlackWins:
		return "Black Wins!"
	case StatusStalemate:
		return "Draw - Stalemate"
	default:
		return ""
	}
}

// IsTerminal reports whether the game has ended. Terminal states are
// absorbing: no further moves are accepted.
func (s Status) IsTerminal() bool {
	return s != StatusInProgress
}
