package board

import (
	"github.com/mkamel/chesskit/position"
)

// IsSquareAttacked reports whether any piece of side by could reach sq by
// its movement pattern. Pawns count attack diagonals only, independent of
// whether a forward move would be legal.
func (b *Board) IsSquareAttacked(sq position.Square, by Side) bool {
	if !sq.Valid() {
		return false
	}

	for _, o := range knightOffsets {
		if p := b.At(sq.Offset(o.dr, o.dc)); p.Kind == KindKnight && p.Side == by {
			return true
		}
	}

	// A pawn of side by sits one row behind sq along its advance direction.
	for _, dc := range []int8{-1, 1} {
		if p := b.At(sq.Offset(-by.Forward(), dc)); p.Kind == KindPawn && p.Side == by {
			return true
		}
	}

	for _, o := range kingOffsets {
		if p := b.At(sq.Offset(o.dr, o.dc)); p.Kind == KindKing && p.Side == by {
			return true
		}
	}

	for _, d := range lateralDirections {
		if p, ok := b.firstAlongRay(sq, d); ok && p.Side == by && (p.Kind == KindRook || p.Kind == KindQueen) {
			return true
		}
	}
	for _, d := range diagonalDirections {
		if p, ok := b.firstAlongRay(sq, d); ok && p.Side == by && (p.Kind == KindBishop || p.Kind == KindQueen) {
			return true
		}
	}

	return false
}

func (b *Board) firstAlongRay(from position.Square, d offset) (Piece, bool) {
	for to := from.Offset(d.dr, d.dc); to.Valid(); to = to.Offset(d.dr, d.dc) {
		if p := b.At(to); !p.IsNone() {
			return p, true
		}
	}
	return Piece{}, false
}
