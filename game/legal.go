package game

import (
	"github.com/mkamel/chesskit/board"
	"github.com/mkamel/chesskit/position"
)

// IsLegalMove reports whether the side to move may play from->to under the
// full rules: movement pattern or special move, and not leaving its own king
// in check.
func (g *Game) IsLegalMove(from, to position.Square) bool {
	return g.isLegalMoveFor(g.turn, from, to)
}

// isLegalMoveFor validates a move for an explicit side so that mobility
// evaluation can count moves for the side not on turn. En passant and
// castling state still reflect the live game.
func (g *Game) isLegalMoveFor(side board.Side, from, to position.Square) bool {
	if !from.Valid() || !to.Valid() {
		return false
	}
	p := g.board.At(from)
	if p.IsNone() || p.Side != side {
		return false
	}
	if t := g.board.At(to); !t.IsNone() && t.Side == side {
		return false
	}

	ruleLegal := false
	for _, d := range g.board.Destinations(from) {
		if d == to {
			ruleLegal = true
			break
		}
	}

	isCastle := false
	if !ruleLegal && p.Kind == board.KindKing && from.Row == to.Row && absInt8(to.Col-from.Col) == 2 {
		ruleLegal = g.canCastle(side, from, to)
		isCastle = ruleLegal
	}

	isEnPassant := false
	if !ruleLegal && p.Kind == board.KindPawn && g.isEnPassantPattern(side, from, to) {
		ruleLegal = true
		isEnPassant = true
	}

	if !ruleLegal {
		return false
	}

	// Simulate on a board copy and discard it; exact in-place reverts are
	// error-prone for castling and en passant. A discovered check through a
	// vacated square is caught here even for the special moves.
	next := g.board
	next.Set(to, p)
	next.Clear(from)
	if isCastle {
		rookFrom, rookTo := castleRookHop(side, to.Col)
		if rook := next.At(rookFrom); rook.Kind == board.KindRook && rook.Side == side {
			next.Set(rookTo, rook)
			next.Clear(rookFrom)
		}
	}
	if isEnPassant {
		next.Clear(position.Square{Row: from.Row, Col: to.Col})
	}
	return !inCheckOn(&next, side)
}

// canCastle validates the castling pattern: rights still held, rook home,
// the path between king and rook empty, and the king's start, crossing, and
// destination squares all unattacked.
func (g *Game) canCastle(side board.Side, from, to position.Square) bool {
	home := side.HomeRow()
	if from != (position.Square{Row: home, Col: 4}) || to.Row != home {
		return false
	}
	opp := side.Opposite()

	var (
		direction CastleDirection
		rookCol   int8
		empty     []int8
		safe      []int8
	)
	switch to.Col {
	case 6:
		direction, rookCol = castleDirection(side, true), 7
		empty = []int8{5, 6}
		safe = []int8{4, 5, 6}
	case 2:
		direction, rookCol = castleDirection(side, false), 0
		empty = []int8{1, 2, 3}
		safe = []int8{4, 3, 2}
	default:
		return false
	}

	if !g.rights.IsAllowed(direction) {
		return false
	}
	if rook := g.board.At(position.Square{Row: home, Col: rookCol}); rook.Kind != board.KindRook || rook.Side != side {
		return false
	}
	for _, col := range empty {
		if !g.board.At(position.Square{Row: home, Col: col}).IsNone() {
			return false
		}
	}
	for _, col := range safe {
		if g.board.IsSquareAttacked(position.Square{Row: home, Col: col}, opp) {
			return false
		}
	}
	return true
}

// isEnPassantPattern matches a pawn stepping diagonally forward onto the
// live en passant target, with the bypassed enemy pawn beside it.
func (g *Game) isEnPassantPattern(side board.Side, from, to position.Square) bool {
	if !g.hasEnPassant || to != g.enPassant {
		return false
	}
	if to.Row-from.Row != side.Forward() || absInt8(to.Col-from.Col) != 1 {
		return false
	}
	if !g.board.At(to).IsNone() {
		return false
	}
	victim := g.board.At(position.Square{Row: from.Row, Col: to.Col})
	return victim.Kind == board.KindPawn && victim.Side == side.Opposite()
}

// InCheck reports whether the side's king is currently attacked. A missing
// king counts as in check; that guards against corrupted boards instead of
// crashing, it is not a reachable game state.
func (g *Game) InCheck(side board.Side) bool {
	return inCheckOn(&g.board, side)
}

func inCheckOn(b *board.Board, side board.Side) bool {
	king, ok := b.FindKing(side)
	if !ok {
		return true
	}
	return b.IsSquareAttacked(king, side.Opposite())
}

// AllLegalMoves returns every legal (from, to) pair for the side, scanning
// all origin/destination combinations. Callers needing per-square lists
// should filter this set by origin rather than recompute.
func (g *Game) AllLegalMoves(side board.Side) []Move {
	var mvs []Move
	for row := int8(0); row < board.Height; row++ {
		for col := int8(0); col < board.Width; col++ {
			from := position.Square{Row: row, Col: col}
			p := g.board.At(from)
			if p.IsNone() || p.Side != side {
				continue
			}
			for toRow := int8(0); toRow < board.Height; toRow++ {
				for toCol := int8(0); toCol < board.Width; toCol++ {
					to := position.Square{Row: toRow, Col: toCol}
					if g.isLegalMoveFor(side, from, to) {
						mvs = append(mvs, Move{From: from, To: to, Piece: p})
					}
				}
			}
		}
	}
	return mvs
}

// LegalDestinations returns the legal destination squares for the piece on
// sq, empty unless the piece belongs to the side to move.
func (g *Game) LegalDestinations(sq position.Square) []position.Square {
	var dsts []position.Square
	for _, mv := range g.AllLegalMoves(g.turn) {
		if mv.From == sq {
			dsts = append(dsts, mv.To)
		}
	}
	return dsts
}
