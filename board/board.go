package board

import (
	"github.com/mkamel/chesskit/position"
)

const (
	Width  = position.MaxComponentScalar
	Height = position.MaxComponentScalar
)

type offset struct {
	dr, dc int8
}

var (
	lateralDirections  = []offset{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	diagonalDirections = []offset{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}

	knightOffsets = []offset{
		{-2, -1}, {-2, 1}, {2, -1}, {2, 1},
		{-1, -2}, {-1, 2}, {1, -2}, {1, 2},
	}
	kingOffsets = []offset{
		{-1, -1}, {-1, 0}, {-1, 1},
		{0, -1}, {0, 1},
		{1, -1}, {1, 0}, {1, 1},
	}
)

// Board is an 8x8 grid of piece values. Row 0 is rank 8. The zero value is
// an empty board. Board is a plain value type: assignment produces a fully
// independent copy, which is what the legality simulation relies on.
type Board struct {
	cells [Height][Width]Piece
}

// At returns the piece on sq, or the zero piece if sq is empty or off-board.
func (b *Board) At(sq position.Square) Piece {
	if !sq.Valid() {
		return Piece{}
	}
	return b.cells[sq.Row][sq.Col]
}

// Set places p on sq. Off-board squares are ignored.
func (b *Board) Set(sq position.Square, p Piece) {
	if !sq.Valid() {
		return
	}
	b.cells[sq.Row][sq.Col] = p
}

// Clear empties sq.
func (b *Board) Clear(sq position.Square) {
	b.Set(sq, Piece{})
}

// FindKing locates the king of a side. Boards holding no such king report
// ok=false; callers treat that defensively, not as a legal game state.
func (b *Board) FindKing(s Side) (position.Square, bool) {
	for row := int8(0); row < Height; row++ {
		for col := int8(0); col < Width; col++ {
			p := b.cells[row][col]
			if p.Kind == KindKing && p.Side == s {
				return position.Square{Row: row, Col: col}, true
			}
		}
	}
	return position.Square{}, false
}

// Destinations returns the pseudo-legal destination squares of the piece on
// from, ignoring whether the move would leave its own king in check.
// Castling and en passant are not movement patterns and are validated by the
// game layer.
func (b *Board) Destinations(from position.Square) []position.Square {
	p := b.At(from)
	switch p.Kind {
	case KindPawn:
		return b.pawnDestinations(from, p.Side)
	case KindBishop:
		return b.rayDestinations(from, p.Side, diagonalDirections)
	case KindKnight:
		return b.offsetDestinations(from, p.Side, knightOffsets)
	case KindRook:
		return b.rayDestinations(from, p.Side, lateralDirections)
	case KindQueen:
		dsts := b.rayDestinations(from, p.Side, lateralDirections)
		return append(dsts, b.rayDestinations(from, p.Side, diagonalDirections)...)
	case KindKing:
		return b.offsetDestinations(from, p.Side, kingOffsets)
	default:
		return nil
	}
}

func (b *Board) pawnDestinations(from position.Square, s Side) []position.Square {
	var dsts []position.Square
	forward := s.Forward()

	one := from.Offset(forward, 0)
	if one.Valid() && b.At(one).IsNone() {
		dsts = append(dsts, one)
		if from.Row == s.PawnRow() {
			two := from.Offset(2*forward, 0)
			if two.Valid() && b.At(two).IsNone() {
				dsts = append(dsts, two)
			}
		}
	}

	for _, dc := range []int8{-1, 1} {
		to := from.Offset(forward, dc)
		if !to.Valid() {
			continue
		}
		if t := b.At(to); !t.IsNone() && t.Side != s {
			dsts = append(dsts, to)
		}
	}
	return dsts
}

func (b *Board) offsetDestinations(from position.Square, s Side, offsets []offset) []position.Square {
	var dsts []position.Square
	for _, o := range offsets {
		to := from.Offset(o.dr, o.dc)
		if !to.Valid() {
			continue
		}
		if t := b.At(to); t.IsNone() || t.Side != s {
			dsts = append(dsts, to)
		}
	}
	return dsts
}

func (b *Board) rayDestinations(from position.Square, s Side, directions []offset) []position.Square {
	var dsts []position.Square
	for _, d := range directions {
		for to := from.Offset(d.dr, d.dc); to.Valid(); to = to.Offset(d.dr, d.dc) {
			t := b.At(to)
			if t.IsNone() {
				dsts = append(dsts, to)
				continue
			}
			if t.Side != s {
				dsts = append(dsts, to)
			}
			break
		}
	}
	return dsts
}
