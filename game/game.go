// Package game owns the chess game state machine: board, turn, castling
// rights, en passant target, move history, captured-piece ledgers, and the
// terminal status. State mutates only through MakeMove.
package game

import (
	"fmt"

	"github.com/mkamel/chesskit/board"
	"github.com/mkamel/chesskit/position"
)

const (
	msgMoveSuccessful = "Move Successful"
	msgIllegalMove    = "Illegal Move"
	msgGameOver       = "Game Over"
)

type Game struct {
	board  board.Board
	turn   board.Side
	status Status
	rights CastleRights

	// enPassant is valid only when hasEnPassant is set, and only for the
	// move immediately following the double step that produced it.
	enPassant    position.Square
	hasEnPassant bool

	history         []Move
	capturedByWhite []board.Kind
	capturedByBlack []board.Kind
}

type gameConfig struct {
	placement string
}

type Option func(*gameConfig)

// WithPlacement seeds the game from the piece-placement field of a FEN
// string. Trailing FEN fields are ignored; castling rights default to all
// allowed and the en passant target to none regardless of input.
func WithPlacement(placement string) Option {
	return func(cfg *gameConfig) {
		cfg.placement = placement
	}
}

func NewGame(opts ...Option) (*Game, error) {
	cfg := &gameConfig{
		placement: board.DefaultStartingPlacement,
	}
	for _, f := range opts {
		f(cfg)
	}
	b, err := board.ParsePlacement(cfg.placement)
	if err != nil {
		return nil, err
	}
	return &Game{
		board:  b,
		turn:   board.SideWhite,
		status: StatusInProgress,
		rights: AllCastleRights,
	}, nil
}

// Board returns a copy of the current board.
func (g *Game) Board() board.Board {
	return g.board
}

// PieceAt returns the piece on sq.
func (g *Game) PieceAt(sq position.Square) board.Piece {
	return g.board.At(sq)
}

func (g *Game) Turn() board.Side {
	return g.turn
}

func (g *Game) Status() Status {
	return g.status
}

// History returns the executed moves in order.
func (g *Game) History() []Move {
	return append([]Move(nil), g.history...)
}

// Captured returns the kinds captured by the given side, in capture order.
func (g *Game) Captured(s board.Side) []board.Kind {
	if s == board.SideWhite {
		return append([]board.Kind(nil), g.capturedByWhite...)
	}
	return append([]board.Kind(nil), g.capturedByBlack...)
}

// EnPassantTarget returns the current en passant target square, if any.
func (g *Game) EnPassantTarget() (position.Square, bool) {
	return g.enPassant, g.hasEnPassant
}

func (g *Game) CastleAllowed(d CastleDirection) bool {
	return g.rights.IsAllowed(d)
}

// Copy deep-copies the state. The copy shares no mutable structure with the
// original: board cells, history, ledgers, rights, and the en passant target
// are all independent.
func (g *Game) Copy() *Game {
	ng := *g // board.Board is a value type, so the grid is copied here
	ng.history = append([]Move(nil), g.history...)
	ng.capturedByWhite = append([]board.Kind(nil), g.capturedByWhite...)
	ng.capturedByBlack = append([]board.Kind(nil), g.capturedByBlack...)
	return &ng
}

// AttemptMove parses the square names and executes the move. Malformed names
// fail locally with the conversion error as the reason.
func (g *Game) AttemptMove(fromName, toName string, promotion board.Kind) (bool, string) {
	from, err := position.FromName(fromName)
	if err != nil {
		return false, fmt.Sprintf("%v", err)
	}
	to, err := position.FromName(toName)
	if err != nil {
		return false, fmt.Sprintf("%v", err)
	}
	return g.MakeMove(from, to, promotion)
}

// MakeMove validates and executes a move, then derives the next status.
// On failure no state is mutated and the reason is returned. promotion picks
// the pawn-promotion kind; KindNone or an invalid kind defaults to Queen.
func (g *Game) MakeMove(from, to position.Square, promotion board.Kind) (bool, string) {
	if g.status.IsTerminal() {
		return false, msgGameOver
	}
	if !g.IsLegalMove(from, to) {
		return false, msgIllegalMove
	}

	p := g.board.At(from)
	captured := g.board.At(to)

	prevTarget, hadTarget := g.enPassant, g.hasEnPassant
	g.hasEnPassant = false

	// En passant removes its victim before the destination square is
	// overwritten; the victim sits on the mover's row, not on the target.
	if p.Kind == board.KindPawn && captured.IsNone() && absInt8(to.Col-from.Col) == 1 && hadTarget && to == prevTarget {
		capSq := position.Square{Row: from.Row, Col: to.Col}
		if victim := g.board.At(capSq); victim.Kind == board.KindPawn && victim.Side != p.Side {
			g.board.Clear(capSq)
			captured = victim
		}
	}

	g.board.Set(to, p)
	g.board.Clear(from)

	if p.Kind == board.KindPawn && absInt8(to.Row-from.Row) == 2 {
		g.enPassant = position.Square{Row: (from.Row + to.Row) / 2, Col: to.Col}
		g.hasEnPassant = true
	}

	if !captured.IsNone() {
		if g.turn == board.SideWhite {
			g.capturedByWhite = append(g.capturedByWhite, captured.Kind)
		} else {
			g.capturedByBlack = append(g.capturedByBlack, captured.Kind)
		}
		if captured.Kind == board.KindKing {
			// Unreachable when the legality filter is sound: no legal move
			// may capture a king. Kept as a terminal guard against a filter
			// defect rather than silently playing on without a king.
			if g.turn == board.SideWhite {
				g.status = StatusWhiteWins
			} else {
				g.status = StatusBlackWins
			}
			return true, msgMoveSuccessful
		}
	}

	g.history = append(g.history, Move{From: from, To: to, Piece: p})

	if p.Kind == board.KindKing && absInt8(to.Col-from.Col) == 2 {
		rookFrom, rookTo := castleRookHop(p.Side, to.Col)
		if rook := g.board.At(rookFrom); rook.Kind == board.KindRook && rook.Side == p.Side {
			g.board.Set(rookTo, rook)
			g.board.Clear(rookFrom)
		}
	}

	g.updateCastleRights(p, from, captured, to)

	if p.Kind == board.KindPawn && (to.Row == 0 || to.Row == board.Height-1) {
		g.board.Set(to, board.Piece{Kind: promoteKind(promotion), Side: p.Side})
	}

	g.turn = g.turn.Opposite()
	if len(g.AllLegalMoves(g.turn)) == 0 {
		if g.InCheck(g.turn) {
			if g.turn == board.SideBlack {
				g.status = StatusWhiteWins
			} else {
				g.status = StatusBlackWins
			}
		} else {
			g.status = StatusStalemate
		}
	}

	return true, msgMoveSuccessful
}

func (g *Game) updateCastleRights(p board.Piece, from position.Square, captured board.Piece, to position.Square) {
	if p.Kind == board.KindKing {
		g.rights.Set(castleDirection(p.Side, true), false)
		g.rights.Set(castleDirection(p.Side, false), false)
	}
	if p.Kind == board.KindRook && from.Row == p.Side.HomeRow() {
		if from.Col == board.Width-1 {
			g.rights.Set(castleDirection(p.Side, true), false)
		}
		if from.Col == 0 {
			g.rights.Set(castleDirection(p.Side, false), false)
		}
	}
	if captured.Kind == board.KindRook && to.Row == captured.Side.HomeRow() {
		if to.Col == board.Width-1 {
			g.rights.Set(castleDirection(captured.Side, true), false)
		}
		if to.Col == 0 {
			g.rights.Set(castleDirection(captured.Side, false), false)
		}
	}
}

func promoteKind(k board.Kind) board.Kind {
	for _, c := range board.PromoteCandidates {
		if k == c {
			return k
		}
	}
	return board.KindQueen
}

func castleRookHop(s board.Side, kingCol int8) (position.Square, position.Square) {
	home := s.HomeRow()
	if kingCol == 6 {
		return position.Square{Row: home, Col: 7}, position.Square{Row: home, Col: 5}
	}
	return position.Square{Row: home, Col: 0}, position.Square{Row: home, Col: 3}
}

func absInt8(v int8) int8 {
	if v < 0 {
		return -v
	}
	return v
}
