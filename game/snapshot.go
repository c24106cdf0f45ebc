package game

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mkamel/chesskit/board"
	"github.com/mkamel/chesskit/position"
)

var (
	ErrInvalidSnapshot = errors.New("invalid snapshot")
)

// MoveRecord is the serialized form of a history entry.
type MoveRecord struct {
	From  string `json:"from"`
	To    string `json:"to"`
	Piece string `json:"piece"`
}

// Snapshot is a JSON-friendly capture of the full game state, exact enough
// to resume play. Captured ledgers are FEN symbol runs in capture order.
type Snapshot struct {
	Placement       string       `json:"placement"`
	Turn            board.Side   `json:"turn"`
	Status          Status       `json:"status"`
	Rights          CastleRights `json:"rights"`
	EnPassant       string       `json:"en_passant,omitempty"`
	CapturedByWhite string       `json:"captured_by_white,omitempty"`
	CapturedByBlack string       `json:"captured_by_black,omitempty"`
	History         []MoveRecord `json:"history,omitempty"`
}

func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Placement:       g.board.Placement(),
		Turn:            g.turn,
		Status:          g.status,
		Rights:          g.rights,
		CapturedByWhite: ledgerSymbols(g.capturedByWhite, board.SideBlack),
		CapturedByBlack: ledgerSymbols(g.capturedByBlack, board.SideWhite),
	}
	if g.hasEnPassant {
		snap.EnPassant = g.enPassant.Name()
	}
	for _, mv := range g.history {
		snap.History = append(snap.History, MoveRecord{
			From:  mv.From.Name(),
			To:    mv.To.Name(),
			Piece: mv.Piece.SymbolFEN(),
		})
	}
	return snap
}

// FromSnapshot rebuilds a game from a snapshot.
func FromSnapshot(snap Snapshot) (*Game, error) {
	b, err := board.ParsePlacement(snap.Placement)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
	}
	if snap.Turn != board.SideWhite && snap.Turn != board.SideBlack {
		return nil, fmt.Errorf("%w: bad turn %d", ErrInvalidSnapshot, snap.Turn)
	}
	if snap.Status > StatusStalemate {
		return nil, fmt.Errorf("%w: bad status %d", ErrInvalidSnapshot, snap.Status)
	}

	g := &Game{
		board:  b,
		turn:   snap.Turn,
		status: snap.Status,
		rights: snap.Rights & AllCastleRights,
	}
	if snap.EnPassant != "" {
		target, err := position.FromName(snap.EnPassant)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
		}
		g.enPassant = target
		g.hasEnPassant = true
	}
	if g.capturedByWhite, err = ledgerKinds(snap.CapturedByWhite); err != nil {
		return nil, err
	}
	if g.capturedByBlack, err = ledgerKinds(snap.CapturedByBlack); err != nil {
		return nil, err
	}
	for _, rec := range snap.History {
		mv, err := recordMove(rec)
		if err != nil {
			return nil, err
		}
		g.history = append(g.history, mv)
	}
	return g, nil
}

func ledgerSymbols(kinds []board.Kind, s board.Side) string {
	builder := strings.Builder{}
	for _, k := range kinds {
		_, _ = builder.WriteString(k.SymbolFEN(s))
	}
	return builder.String()
}

func ledgerKinds(symbols string) ([]board.Kind, error) {
	var kinds []board.Kind
	for i := 0; i < len(symbols); i++ {
		p, ok := board.PieceFromSymbol(symbols[i])
		if !ok {
			return nil, fmt.Errorf("%w: bad ledger symbol %q", ErrInvalidSnapshot, string(symbols[i]))
		}
		kinds = append(kinds, p.Kind)
	}
	return kinds, nil
}

func recordMove(rec MoveRecord) (Move, error) {
	from, err := position.FromName(rec.From)
	if err != nil {
		return Move{}, fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
	}
	to, err := position.FromName(rec.To)
	if err != nil {
		return Move{}, fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
	}
	if len(rec.Piece) != 1 {
		return Move{}, fmt.Errorf("%w: bad piece %q", ErrInvalidSnapshot, rec.Piece)
	}
	p, ok := board.PieceFromSymbol(rec.Piece[0])
	if !ok {
		return Move{}, fmt.Errorf("%w: bad piece %q", ErrInvalidSnapshot, rec.Piece)
	}
	return Move{From: from, To: to, Piece: p}, nil
}
