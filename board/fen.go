package board

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mkamel/chesskit/position"
)

const (
	// DefaultStartingPlacement is the piece-placement field of the standard
	// initial position.
	DefaultStartingPlacement = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR"
)

var (
	ErrInvalidPlacement = errors.New("invalid placement")
)

// ParsePlacement builds a board from the piece-placement field of a FEN
// string. Trailing FEN fields (turn, rights, counters), if present, are
// ignored; this is a seed-position importer, not a general FEN reader.
func ParsePlacement(placement string) (Board, error) {
	var b Board
	field, _, _ := strings.Cut(strings.TrimSpace(placement), " ")
	rows := strings.Split(field, "/")
	if len(rows) != int(Height) {
		return Board{}, fmt.Errorf("%w: want %d ranks, got %d", ErrInvalidPlacement, Height, len(rows))
	}

	var kings [2]int
	for row := int8(0); row < Height; row++ {
		col := int8(0)
		for i := 0; i < len(rows[row]); i++ {
			cell := rows[row][i]
			if '1' <= cell && cell <= '8' {
				col += int8(cell - '0')
				if col > Width {
					return Board{}, fmt.Errorf("%w: rank %d overflows", ErrInvalidPlacement, 8-row)
				}
				continue
			}
			p, ok := PieceFromSymbol(cell)
			if !ok {
				return Board{}, fmt.Errorf("%w: unknown symbol %q", ErrInvalidPlacement, string(cell))
			}
			if col >= Width {
				return Board{}, fmt.Errorf("%w: rank %d overflows", ErrInvalidPlacement, 8-row)
			}
			if p.Kind == KindKing {
				idx := 0
				if p.Side == SideBlack {
					idx = 1
				}
				kings[idx]++
				if kings[idx] > 1 {
					return Board{}, fmt.Errorf("%w: multiple %s kings", ErrInvalidPlacement, p.Side)
				}
			}
			b.cells[row][col] = p
			col++
		}
		if col != Width {
			return Board{}, fmt.Errorf("%w: rank %d has %d cells", ErrInvalidPlacement, 8-row, col)
		}
	}
	return b, nil
}

// Placement serializes the board back into a piece-placement field.
func (b *Board) Placement() string {
	builder := strings.Builder{}
	for row := int8(0); row < Height; row++ {
		skip := 0
		for col := int8(0); col < Width; col++ {
			p := b.At(position.Square{Row: row, Col: col})
			if p.IsNone() {
				skip++
				continue
			}
			if skip != 0 {
				_, _ = builder.WriteRune(rune('0' + skip))
				skip = 0
			}
			_, _ = builder.WriteString(p.SymbolFEN())
		}
		if skip != 0 {
			_, _ = builder.WriteRune(rune('0' + skip))
		}
		if row < Height-1 {
			_, _ = builder.WriteRune('/')
		}
	}
	return builder.String()
}
