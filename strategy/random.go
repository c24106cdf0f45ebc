package strategy

import (
	"math/rand"
	"time"

	"github.com/mkamel/chesskit/game"
)

// Random selects uniformly among the legal moves of the side to play.
type Random struct {
	rng *rand.Rand
}

func NewRandom(rng *rand.Rand) *Random {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Random{rng: rng}
}

func (s *Random) Name() string {
	return "random"
}

func (s *Random) SelectMove(g *game.Game) (game.Move, bool) {
	mvs := g.AllLegalMoves(g.Turn())
	if len(mvs) == 0 {
		return game.Move{}, false
	}
	return mvs[s.rng.Intn(len(mvs))], true
}
