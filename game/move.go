package game

import (
	"github.com/mkamel/chesskit/board"
	"github.com/mkamel/chesskit/position"
)

// Move records one executed or candidate move: origin, destination, and the
// piece that moved. History keeps these for display, not replay.
type Move struct {
	From, To position.Square
	Piece    board.Piece
}

func (m Move) String() string {
	return m.From.Name() + "-" + m.To.Name()
}
