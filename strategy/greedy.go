package strategy

import (
	"math/rand"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/mkamel/chesskit/board"
	"github.com/mkamel/chesskit/game"
	"github.com/mkamel/chesskit/position"
)

var pieceValues = [...]int{
	board.KindPawn:   1,
	board.KindKnight: 3,
	board.KindBishop: 3,
	board.KindRook:   5,
	board.KindQueen:  9,
	board.KindKing:   0,
}

type GreedyConfig struct {
	// Rand backs the fallback choice when no candidate evaluates. Selection
	// itself is deterministic.
	Rand   *rand.Rand
	Logger func(...any)
	Debug  bool
}

// Greedy scores every legal move one ply deep and keeps the best. Each
// candidate is executed on an independent copy of the game, so the live
// game is never touched.
type Greedy struct {
	rng    *rand.Rand
	logger func(...any)
	debug  bool
}

func NewGreedy(cfg *GreedyConfig) *Greedy {
	if cfg == nil {
		cfg = &GreedyConfig{}
	}
	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	logger := cfg.Logger
	if logger == nil {
		logger = DefaultLogger
	}
	return &Greedy{rng: rng, logger: logger, debug: cfg.Debug}
}

func (s *Greedy) Name() string {
	return "greedy"
}

func (s *Greedy) SelectMove(g *game.Game) (game.Move, bool) {
	side := g.Turn()
	mvs := g.AllLegalMoves(side)
	if len(mvs) == 0 {
		return game.Move{}, false
	}

	startTime := time.Now()
	var best game.Move
	bestScore := 0
	evaluated := 0
	for _, mv := range mvs {
		next := g.Copy()
		if ok, _ := next.MakeMove(mv.From, mv.To, board.KindNone); !ok {
			continue
		}
		score := evaluate(next, side)
		// Strict comparison keeps the first best seen, which makes
		// selection deterministic for a fixed position.
		if evaluated == 0 || score > bestScore {
			best = mv
			bestScore = score
		}
		evaluated++
	}

	if evaluated == 0 {
		return mvs[s.rng.Intn(len(mvs))], true
	}

	if s.debug {
		s.logger(message.NewPrinter(language.English).
			Sprintf("%s: candidates:%d best:%s score:%d t:%s",
				s.Name(), evaluated, best, bestScore, time.Since(startTime)))
	}
	return best, true
}

// evaluate scores a position from side's perspective as material difference
// plus mobility difference, where mobility is the raw legal move count.
func evaluate(g *game.Game, side board.Side) int {
	opp := side.Opposite()
	b := g.Board()

	material := 0
	for row := int8(0); row < board.Height; row++ {
		for col := int8(0); col < board.Width; col++ {
			p := b.At(position.Square{Row: row, Col: col})
			if p.IsNone() {
				continue
			}
			if p.Side == side {
				material += pieceValues[p.Kind]
			} else {
				material -= pieceValues[p.Kind]
			}
		}
	}

	mobility := len(g.AllLegalMoves(side)) - len(g.AllLegalMoves(opp))
	return material + mobility
}
