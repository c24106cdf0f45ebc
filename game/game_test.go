package game

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/mkamel/chesskit/board"
	"github.com/mkamel/chesskit/position"
)

func newGame(t *testing.T, opts ...Option) *Game {
	t.Helper()
	g, err := NewGame(opts...)
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	return g
}

func playMoves(t *testing.T, g *Game, moves ...string) {
	t.Helper()
	for _, mv := range moves {
		ok, reason := g.AttemptMove(mv[:2], mv[2:4], board.KindNone)
		if !ok {
			t.Fatalf("move %s rejected: %s", mv, reason)
		}
	}
}

func TestNewGameDefaults(t *testing.T) {
	t.Parallel()

	g := newGame(t)
	if got := g.Turn(); got != board.SideWhite {
		t.Errorf("turn: got %v, want %v", got, board.SideWhite)
	}
	if got := g.Status(); got != StatusInProgress {
		t.Errorf("status: got %v, want %v", got, StatusInProgress)
	}
	b := g.Board()
	if got := b.Placement(); got != board.DefaultStartingPlacement {
		t.Errorf("placement: got %s, want %s", got, board.DefaultStartingPlacement)
	}
	for _, d := range []CastleDirection{
		CastleDirectionWhiteKing, CastleDirectionWhiteQueen,
		CastleDirectionBlackKing, CastleDirectionBlackQueen,
	} {
		if !g.CastleAllowed(d) {
			t.Errorf("castle %v: got disallowed, want allowed", d)
		}
	}
	if _, ok := g.EnPassantTarget(); ok {
		t.Error("en passant target: got set, want unset")
	}
}

func TestOpeningMoveCounts(t *testing.T) {
	t.Parallel()

	g := newGame(t)
	if got := len(g.AllLegalMoves(board.SideWhite)); got != 20 {
		t.Errorf("white opening moves: got %d, want 20", got)
	}

	playMoves(t, g, "e2e4")
	if got := len(g.AllLegalMoves(board.SideBlack)); got != 20 {
		t.Errorf("black replies: got %d, want 20", got)
	}
}

func TestDoubleStepSetsEnPassantTarget(t *testing.T) {
	t.Parallel()

	g := newGame(t)
	playMoves(t, g, "e2e4")

	target, ok := g.EnPassantTarget()
	if !ok {
		t.Fatal("en passant target: got unset, want e3")
	}
	if got := target.Name(); got != "e3" {
		t.Errorf("en passant target: got %s, want e3", got)
	}
	if got := g.Turn(); got != board.SideBlack {
		t.Errorf("turn: got %v, want %v", got, board.SideBlack)
	}

	single := newGame(t)
	playMoves(t, single, "e2e3")
	if _, ok := single.EnPassantTarget(); ok {
		t.Error("single step: got en passant target, want none")
	}
}

func TestEnPassantCapture(t *testing.T) {
	t.Parallel()

	g := newGame(t)
	playMoves(t, g, "e2e4", "a7a6", "e4e5", "d7d5", "e5d6")

	if p := g.PieceAt(position.Square{Row: 3, Col: 3}); !p.IsNone() {
		t.Errorf("d5: got %v, want empty", p)
	}
	if p := g.PieceAt(position.Square{Row: 2, Col: 3}); p.Kind != board.KindPawn || p.Side != board.SideWhite {
		t.Errorf("d6: got %v, want white pawn", p)
	}
	want := []board.Kind{board.KindPawn}
	if diff := cmp.Diff(want, g.Captured(board.SideWhite)); diff != "" {
		t.Errorf("white captures mismatch (-want +got):\n%s", diff)
	}
}

func TestEnPassantExpiresAfterOneMove(t *testing.T) {
	t.Parallel()

	g := newGame(t)
	playMoves(t, g, "e2e4", "a7a6", "e4e5", "d7d5", "g1f3", "b8c6")

	if _, ok := g.EnPassantTarget(); ok {
		t.Fatal("en passant target: got set, want expired")
	}
	if ok, reason := g.AttemptMove("e5", "d6", board.KindNone); ok || reason != msgIllegalMove {
		t.Errorf("stale en passant: got (%v, %s), want rejection", ok, reason)
	}
}

func TestEnPassantCannotExposeOwnKing(t *testing.T) {
	t.Parallel()

	// The rook on a5 is blocked by both pawns. Capturing en passant would
	// clear d5 and e5 at once and open the fifth rank onto the king.
	g := newGame(t, WithPlacement("3k4/3p4/8/r3P2K/8/8/7P/8"))
	playMoves(t, g, "h2h3", "d7d5")

	if ok, _ := g.Copy().AttemptMove("e5", "d6", board.KindNone); ok {
		t.Error("en passant into discovered check: got accepted, want rejected")
	}
	if ok, reason := g.AttemptMove("e5", "e6", board.KindNone); !ok {
		t.Errorf("plain advance: got rejected (%s), want accepted", reason)
	}
}

func TestCastling(t *testing.T) {
	t.Parallel()

	t.Run("white king side", func(t *testing.T) {
		t.Parallel()

		g := newGame(t, WithPlacement("r3k2r/8/8/8/8/8/8/R3K2R"))
		playMoves(t, g, "e1g1")

		if p := g.PieceAt(position.Square{Row: 7, Col: 5}); p.Kind != board.KindRook || p.Side != board.SideWhite {
			t.Errorf("f1: got %v, want white rook", p)
		}
		if p := g.PieceAt(position.Square{Row: 7, Col: 7}); !p.IsNone() {
			t.Errorf("h1: got %v, want empty", p)
		}
		if g.CastleAllowed(CastleDirectionWhiteKing) || g.CastleAllowed(CastleDirectionWhiteQueen) {
			t.Error("white rights: got allowed, want both revoked")
		}
		if !g.CastleAllowed(CastleDirectionBlackKing) || !g.CastleAllowed(CastleDirectionBlackQueen) {
			t.Error("black rights: got revoked, want untouched")
		}
	})

	t.Run("black queen side", func(t *testing.T) {
		t.Parallel()

		g := newGame(t, WithPlacement("r3k2r/8/8/8/8/8/8/R3K2R"))
		playMoves(t, g, "e1g1", "e8c8")

		if p := g.PieceAt(position.Square{Row: 0, Col: 3}); p.Kind != board.KindRook || p.Side != board.SideBlack {
			t.Errorf("d8: got %v, want black rook", p)
		}
		if p := g.PieceAt(position.Square{Row: 0, Col: 2}); p.Kind != board.KindKing || p.Side != board.SideBlack {
			t.Errorf("c8: got %v, want black king", p)
		}
	})

	t.Run("rejected through attacked square", func(t *testing.T) {
		t.Parallel()

		g := newGame(t, WithPlacement("5rk1/8/8/8/8/8/8/4K2R"))
		if ok, reason := g.AttemptMove("e1", "g1", board.KindNone); ok || reason != msgIllegalMove {
			t.Errorf("castle through f1 under attack: got (%v, %s), want rejection", ok, reason)
		}
	})

	t.Run("rejected without rook", func(t *testing.T) {
		t.Parallel()

		g := newGame(t, WithPlacement("4k3/8/8/8/8/8/8/4K3"))
		if ok, _ := g.AttemptMove("e1", "g1", board.KindNone); ok {
			t.Error("castle with no rook: got accepted, want rejected")
		}
	})
}

func TestCastleRightsRevocation(t *testing.T) {
	t.Parallel()

	t.Run("rook move", func(t *testing.T) {
		t.Parallel()

		g := newGame(t, WithPlacement("r3k2r/8/8/8/8/8/8/R3K2R"))
		playMoves(t, g, "a1a2")

		if g.CastleAllowed(CastleDirectionWhiteQueen) {
			t.Error("white queen side: got allowed, want revoked")
		}
		if !g.CastleAllowed(CastleDirectionWhiteKing) {
			t.Error("white king side: got revoked, want allowed")
		}
	})

	t.Run("rook captured on home square", func(t *testing.T) {
		t.Parallel()

		g := newGame(t, WithPlacement("r3k3/8/8/8/8/8/8/R3K3"))
		playMoves(t, g, "a1a8")

		if g.CastleAllowed(CastleDirectionBlackQueen) {
			t.Error("black queen side: got allowed, want revoked")
		}
		if !g.CastleAllowed(CastleDirectionBlackKing) {
			t.Error("black king side: got revoked, want allowed")
		}
	})
}

func TestPinnedPieceCannotMove(t *testing.T) {
	t.Parallel()

	g := newGame(t, WithPlacement("4r3/8/8/8/8/8/4N3/4K3"))
	knight := position.Square{Row: 6, Col: 4}

	if dsts := g.LegalDestinations(knight); len(dsts) != 0 {
		t.Errorf("pinned knight destinations: got %v, want none", dsts)
	}
}

func TestCheckmate(t *testing.T) {
	t.Parallel()

	g := newGame(t)
	playMoves(t, g, "f2f3", "e7e5", "g2g4", "d8h4")

	if got := g.Status(); got != StatusBlackWins {
		t.Fatalf("status: got %v, want %v", got, StatusBlackWins)
	}
	if !g.InCheck(board.SideWhite) {
		t.Error("white: got not in check, want in check")
	}
	if got := len(g.AllLegalMoves(board.SideWhite)); got != 0 {
		t.Errorf("white legal moves: got %d, want 0", got)
	}
	if ok, reason := g.AttemptMove("a2", "a3", board.KindNone); ok || reason != msgGameOver {
		t.Errorf("move after mate: got (%v, %s), want game over", ok, reason)
	}
}

func TestStalemate(t *testing.T) {
	t.Parallel()

	g := newGame(t, WithPlacement("k7/8/2K5/1Q6/8/8/8/8"))
	playMoves(t, g, "b5b6")

	if got := g.Status(); got != StatusStalemate {
		t.Errorf("status: got %v, want %v", got, StatusStalemate)
	}
	if g.InCheck(board.SideBlack) {
		t.Error("black: got in check, want stalemated without check")
	}
	if got := g.Status().String(); got != "Draw - Stalemate" {
		t.Errorf("status text: got %q, want %q", got, "Draw - Stalemate")
	}
}

func TestKingCaptureEndsGame(t *testing.T) {
	t.Parallel()

	g := newGame(t, WithPlacement("8/8/3k4/4P3/8/8/8/K7"))
	ok, reason := g.AttemptMove("e5", "d6", board.KindNone)
	if !ok || reason != msgMoveSuccessful {
		t.Fatalf("king capture: got (%v, %s), want success", ok, reason)
	}

	if got := g.Status(); got != StatusWhiteWins {
		t.Errorf("status: got %v, want %v", got, StatusWhiteWins)
	}
	if got := g.Turn(); got != board.SideWhite {
		t.Errorf("turn: got %v, want unchanged %v", got, board.SideWhite)
	}
	want := []board.Kind{board.KindKing}
	if diff := cmp.Diff(want, g.Captured(board.SideWhite)); diff != "" {
		t.Errorf("white captures mismatch (-want +got):\n%s", diff)
	}
	if ok, reason := g.AttemptMove("a1", "a2", board.KindNone); ok || reason != msgGameOver {
		t.Errorf("move after win: got (%v, %s), want game over", ok, reason)
	}
}

func TestPromotion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		promotion board.Kind
		want      board.Kind
	}{
		{name: "defaults to queen", promotion: board.KindNone, want: board.KindQueen},
		{name: "explicit knight", promotion: board.KindKnight, want: board.KindKnight},
		{name: "king falls back to queen", promotion: board.KindKing, want: board.KindQueen},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			g := newGame(t, WithPlacement("8/P6k/8/8/8/8/8/K7"))
			if ok, reason := g.AttemptMove("a7", "a8", tt.promotion); !ok {
				t.Fatalf("promotion move rejected: %s", reason)
			}
			if p := g.PieceAt(position.Square{Row: 0, Col: 0}); p.Kind != tt.want || p.Side != board.SideWhite {
				t.Errorf("a8: got %v, want white %v", p, tt.want)
			}
		})
	}
}

func TestAttemptMoveBadNames(t *testing.T) {
	t.Parallel()

	g := newGame(t)
	ok, reason := g.AttemptMove("z9", "e4", board.KindNone)
	if ok {
		t.Fatal("malformed square: got accepted, want rejected")
	}
	if !strings.Contains(reason, position.ErrInvalidSquare.Error()) {
		t.Errorf("reason: got %q, want mention of %q", reason, position.ErrInvalidSquare.Error())
	}
}

func TestInCheckWithoutKing(t *testing.T) {
	t.Parallel()

	// A side with no king on the board reads as in check rather than as a
	// fatal condition, so a corrupted position cannot crash status checks.
	g := newGame(t, WithPlacement("8/8/8/8/8/8/8/K7"))

	if !g.InCheck(board.SideBlack) {
		t.Error("kingless side: got not in check, want in check")
	}
	if g.InCheck(board.SideWhite) {
		t.Error("lone king: got in check, want not in check")
	}
}

func TestCopyIsIndependent(t *testing.T) {
	t.Parallel()

	g := newGame(t)
	cp := g.Copy()
	playMoves(t, cp, "e2e4", "d7d5", "e4d5")

	b := g.Board()
	if got := b.Placement(); got != board.DefaultStartingPlacement {
		t.Errorf("original placement changed: got %s", got)
	}
	if got := g.Turn(); got != board.SideWhite {
		t.Errorf("original turn: got %v, want %v", got, board.SideWhite)
	}
	if got := len(g.History()); got != 0 {
		t.Errorf("original history: got %d entries, want 0", got)
	}
	if got := len(g.Captured(board.SideWhite)); got != 0 {
		t.Errorf("original captures: got %d, want 0", got)
	}
	if got := len(cp.History()); got != 3 {
		t.Errorf("copy history: got %d entries, want 3", got)
	}
}

func TestHistoryRecordsMoves(t *testing.T) {
	t.Parallel()

	g := newGame(t)
	playMoves(t, g, "e2e4", "e7e5")

	var got []string
	for _, mv := range g.History() {
		got = append(got, mv.String())
	}
	want := []string{"e2-e4", "e7-e5"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("history mismatch (-want +got):\n%s", diff)
	}
}
