package position

import (
	"errors"
	"fmt"
)

const (
	// MaxComponentScalar is the board edge length the coordinate system supports.
	MaxComponentScalar int8 = 8
)

var (
	// ErrInvalidSquare represents a malformed or out-of-range square name.
	ErrInvalidSquare = errors.New("invalid square")
)

// Square addresses a board cell by (row, column), each in [0, 8).
// Row 0 is rank 8, so the white pieces start on rows 6 and 7.
type Square struct {
	Row, Col int8
}

// FromName converts an algebraic name ("a1".."h8") into a Square.
func FromName(n string) (Square, error) {
	if len(n) != 2 {
		return Square{}, fmt.Errorf("%w: %q", ErrInvalidSquare, n)
	}
	col := int8(n[0]) - 'a'
	if col < 0 || col >= MaxComponentScalar {
		return Square{}, fmt.Errorf("%w: %q: bad file", ErrInvalidSquare, n)
	}
	rank := int8(n[1]) - '0'
	if rank < 1 || rank > MaxComponentScalar {
		return Square{}, fmt.Errorf("%w: %q: bad rank", ErrInvalidSquare, n)
	}
	return Square{Row: MaxComponentScalar - rank, Col: col}, nil
}

// Name returns the algebraic name of the square, or "" if it is off-board.
func (s Square) Name() string {
	if !s.Valid() {
		return ""
	}
	return string(rune('a'+s.Col)) + string(rune('8'-s.Row))
}

func (s Square) String() string {
	return s.Name()
}

// Valid reports whether the square lies on the board.
func (s Square) Valid() bool {
	return 0 <= s.Row && s.Row < MaxComponentScalar && 0 <= s.Col && s.Col < MaxComponentScalar
}

// Offset returns the square displaced by (dr, dc). The result may be off-board.
func (s Square) Offset(dr, dc int8) Square {
	return Square{Row: s.Row + dr, Col: s.Col + dc}
}
