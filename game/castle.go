package game

import (
	"github.com/mkamel/chesskit/board"
)

type CastleDirection uint8

const (
	CastleDirectionUnknown CastleDirection = iota
	CastleDirectionWhiteKing
	CastleDirectionWhiteQueen
	CastleDirectionBlackKing
	CastleDirectionBlackQueen
)

func (d CastleDirection) String() string {
	switch d {
	case CastleDirectionWhiteKing:
		return "White 0-0"
	case CastleDirectionWhiteQueen:
		return "White 0-0-0"
	case CastleDirectionBlackKing:
		return "Black 0-0"
	case CastleDirectionBlackQueen:
		return "Black 0-0-0"
	default:
		return ""
	}
}

func castleDirection(s board.Side, kingSide bool) CastleDirection {
	switch {
	case s == board.SideWhite && kingSide:
		return CastleDirectionWhiteKing
	case s == board.SideWhite:
		return CastleDirectionWhiteQueen
	case s == board.SideBlack && kingSide:
		return CastleDirectionBlackKing
	case s == board.SideBlack:
		return CastleDirectionBlackQueen
	default:
		return CastleDirectionUnknown
	}
}

// CastleRights packs the four per-color, per-side castling flags. They are
// monotonically revoked: once cleared, a flag is never set again during play.
type CastleRights uint8

const AllCastleRights CastleRights = 0b1111

var maskCastleRights = [5]CastleRights{
	0,
	0b1000, // CastleDirectionWhiteKing
	0b0100, // CastleDirectionWhiteQueen
	0b0010, // CastleDirectionBlackKing
	0b0001, // CastleDirectionBlackQueen
}

func (c *CastleRights) Set(d CastleDirection, allow bool) {
	if allow {
		*c |= maskCastleRights[d]
	} else {
		*c &^= maskCastleRights[d]
	}
}

func (c CastleRights) IsAllowed(d CastleDirection) bool {
	return c&maskCastleRights[d] != 0
}
