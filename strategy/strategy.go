// Package strategy provides move selectors that operate purely on the public
// game surface. A selector never mutates the game it is handed; lookahead
// happens on independent copies.
package strategy

import (
	"fmt"

	"github.com/mkamel/chesskit/game"
)

func DefaultLogger(a ...any) {
	fmt.Println(a...)
}

// Strategy picks one legal move for the side to play, or reports false when
// the side has no legal moves (checkmate or stalemate on the caller's side).
type Strategy interface {
	Name() string
	SelectMove(g *game.Game) (game.Move, bool)
}
