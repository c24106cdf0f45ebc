package board

type Kind uint8

const (
	KindNone Kind = iota
	KindPawn
	KindBishop
	KindKnight
	KindRook
	KindQueen
	KindKing
)

// PromoteCandidates are the kinds a pawn may promote to.
var PromoteCandidates = []Kind{KindQueen, KindRook, KindBishop, KindKnight}

func (k Kind) String() string {
	return k.Name()
}

func (k Kind) Name() string {
	switch k {
	case KindPawn:
		return "Pawn"
	case KindBishop:
		return "Bishop"
	case KindKnight:
		return "Knight"
	case KindRook:
		return "Rook"
	case KindQueen:
		return "Queen"
	case KindKing:
		return "King"
	default:
		return ""
	}
}

// SymbolFEN returns the FEN letter of the kind, uppercase for White.
func (k Kind) SymbolFEN(s Side) string {
	var sym rune
	switch k {
	case KindPawn:
		sym = 'P'
	case KindBishop:
		sym = 'B'
	case KindKnight:
		sym = 'N'
	case KindRook:
		sym = 'R'
	case KindQueen:
		sym = 'Q'
	case KindKing:
		sym = 'K'
	default:
		return ""
	}
	if s == SideBlack {
		sym |= 0x20 // lowercase is +32 uppercase
	}
	return string(sym)
}

func (k Kind) SymbolUnicode(s Side) string {
	switch s {
	case SideWhite:
		switch k {
		case KindPawn:
			return "♙"
		case KindBishop:
			return "♗"
		case KindKnight:
			return "♘"
		case KindRook:
			return "♖"
		case KindQueen:
			return "♕"
		case KindKing:
			return "♔"
		}
	case SideBlack:
		switch k {
		case KindPawn:
			return "♟"
		case KindBishop:
			return "♝"
		case KindKnight:
			return "♞"
		case KindRook:
			return "♜"
		case KindQueen:
			return "♛"
		case KindKing:
			return "♚"
		}
	}
	return ""
}

// Piece is a piece value occupying a board cell. The zero value means an
// empty cell.
type Piece struct {
	Kind Kind
	Side Side
}

func (p Piece) IsNone() bool {
	return p.Kind == KindNone
}

func (p Piece) SymbolFEN() string {
	return p.Kind.SymbolFEN(p.Side)
}

func (p Piece) SymbolUnicode() string {
	return p.Kind.SymbolUnicode(p.Side)
}

// PieceFromSymbol maps a FEN letter back to a piece. Unknown letters yield
// the zero piece and false.
func PieceFromSymbol(sym byte) (Piece, bool) {
	side := SideWhite
	if 'a' <= sym && sym <= 'z' {
		side = SideBlack
		sym &^= 0x20
	}
	var k Kind
	switch sym {
	case 'P':
		k = KindPawn
	case 'B':
		k = KindBishop
	case 'N':
		k = KindKnight
	case 'R':
		k = KindRook
	case 'Q':
		k = KindQueen
	case 'K':
		k = KindKing
	default:
		return Piece{}, false
	}
	return Piece{Kind: k, Side: side}, true
}
