package game

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/mkamel/chesskit/board"
)

func TestSnapshotRoundTrip(t *testing.T) {
	t.Parallel()

	g := newGame(t)
	playMoves(t, g, "e2e4", "d7d5", "e4d5")

	snap := g.Snapshot()
	if snap.Turn != board.SideBlack {
		t.Errorf("turn: got %v, want %v", snap.Turn, board.SideBlack)
	}
	if snap.CapturedByWhite != "p" {
		t.Errorf("white captures: got %q, want %q", snap.CapturedByWhite, "p")
	}

	restored, err := FromSnapshot(snap)
	if err != nil {
		t.Fatalf("FromSnapshot: %v", err)
	}
	if diff := cmp.Diff(snap, restored.Snapshot()); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}

	// Play continues from the restored state the same as from the live one.
	if ok, reason := restored.AttemptMove("d8", "d5", board.KindNone); !ok {
		t.Errorf("move on restored game rejected: %s", reason)
	}
}

func TestSnapshotEnPassant(t *testing.T) {
	t.Parallel()

	g := newGame(t)
	playMoves(t, g, "e2e4")

	snap := g.Snapshot()
	if snap.EnPassant != "e3" {
		t.Fatalf("en passant: got %q, want %q", snap.EnPassant, "e3")
	}

	restored, err := FromSnapshot(snap)
	if err != nil {
		t.Fatalf("FromSnapshot: %v", err)
	}
	target, ok := restored.EnPassantTarget()
	if !ok || target.Name() != "e3" {
		t.Errorf("restored target: got (%v, %v), want e3", target, ok)
	}
}

func TestFromSnapshotRejectsMalformed(t *testing.T) {
	t.Parallel()

	valid := func() Snapshot {
		g := newGame(t)
		return g.Snapshot()
	}

	tests := []struct {
		name   string
		mutate func(*Snapshot)
	}{
		{name: "bad placement", mutate: func(s *Snapshot) { s.Placement = "not a placement" }},
		{name: "bad turn", mutate: func(s *Snapshot) { s.Turn = board.SideUnknown }},
		{name: "bad status", mutate: func(s *Snapshot) { s.Status = Status(42) }},
		{name: "bad en passant", mutate: func(s *Snapshot) { s.EnPassant = "z9" }},
		{name: "bad ledger symbol", mutate: func(s *Snapshot) { s.CapturedByWhite = "x" }},
		{name: "bad history square", mutate: func(s *Snapshot) { s.History = []MoveRecord{{From: "e9", To: "e4", Piece: "P"}} }},
		{name: "bad history piece", mutate: func(s *Snapshot) { s.History = []MoveRecord{{From: "e2", To: "e4", Piece: "PP"}} }},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			snap := valid()
			tt.mutate(&snap)
			if _, err := FromSnapshot(snap); !errors.Is(err, ErrInvalidSnapshot) {
				t.Errorf("error: got %v, want %v", err, ErrInvalidSnapshot)
			}
		})
	}
}
