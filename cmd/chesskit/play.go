package main

import (
	"bufio"
	"fmt"
	"math/rand"
	"os"
	"strings"

	"github.com/mkamel/chesskit/board"
	"github.com/mkamel/chesskit/game"
	"github.com/mkamel/chesskit/position"
	"github.com/mkamel/chesskit/strategy"
)

type controller interface {
	// takeTurn plays one move on g. It returns false when the session should
	// stop without the game having ended.
	takeTurn(g *game.Game) (bool, error)
}

func newController(kind string, rng *rand.Rand, debug bool) (controller, error) {
	switch kind {
	case "human":
		return &humanController{in: bufio.NewScanner(os.Stdin)}, nil
	case "random":
		return &aiController{s: strategy.NewRandom(rng)}, nil
	case "greedy":
		return &aiController{s: strategy.NewGreedy(&strategy.GreedyConfig{Rand: rng, Debug: debug})}, nil
	default:
		return nil, fmt.Errorf("unknown controller %q", kind)
	}
}

type humanController struct {
	in *bufio.Scanner
}

func (c *humanController) takeTurn(g *game.Game) (bool, error) {
	for {
		fmt.Printf("%s> ", g.Turn())
		if !c.in.Scan() {
			return false, c.in.Err()
		}
		line := strings.TrimSpace(c.in.Text())

		switch {
		case line == "":
			continue
		case line == "quit":
			return false, nil
		case line == "help":
			fmt.Println("commands: e2e4, e7e8q (promote), moves <square>, quit")
			continue
		case strings.HasPrefix(line, "moves "):
			printDestinations(g, strings.TrimPrefix(line, "moves "))
			continue
		}

		from, to, promotion, err := parseMove(line)
		if err != nil {
			fmt.Println(err)
			continue
		}
		ok, reason := g.AttemptMove(from, to, promotion)
		fmt.Println(reason)
		if ok {
			return true, nil
		}
	}
}

func printDestinations(g *game.Game, name string) {
	sq, err := position.FromName(strings.TrimSpace(name))
	if err != nil {
		fmt.Println(err)
		return
	}
	dsts := g.LegalDestinations(sq)
	if len(dsts) == 0 {
		fmt.Println("no legal moves from", sq)
		return
	}
	names := make([]string, 0, len(dsts))
	for _, d := range dsts {
		names = append(names, d.Name())
	}
	fmt.Println(strings.Join(names, " "))
}

// parseMove splits a concatenated move like "e2e4" or "a7a8q", where the
// optional trailing letter picks the promotion piece.
func parseMove(line string) (string, string, board.Kind, error) {
	promotion := board.KindNone
	switch len(line) {
	case 4:
	case 5:
		p, ok := board.PieceFromSymbol(line[4])
		if !ok || p.Kind == board.KindKing || p.Kind == board.KindPawn {
			return "", "", board.KindNone, fmt.Errorf("bad promotion piece %q", string(line[4]))
		}
		promotion = p.Kind
	default:
		return "", "", board.KindNone, fmt.Errorf("bad move %q, want the form e2e4", line)
	}
	return line[:2], line[2:4], promotion, nil
}

type aiController struct {
	s strategy.Strategy
}

func (c *aiController) takeTurn(g *game.Game) (bool, error) {
	mv, ok := c.s.SelectMove(g)
	if !ok {
		return false, fmt.Errorf("%s found no legal moves in a non-terminal game", c.s.Name())
	}
	if ok, reason := g.MakeMove(mv.From, mv.To, board.KindNone); !ok {
		return false, fmt.Errorf("%s selected an illegal move %s: %s", c.s.Name(), mv, reason)
	}
	fmt.Printf("%s (%s) plays %s\n", g.Turn().Opposite(), c.s.Name(), mv)
	return true, nil
}

// play alternates controllers until the game reaches a terminal status or a
// human quits. It reports whether the game actually finished.
func play(g *game.Game, whiteCtl, blackCtl controller) (bool, error) {
	for !g.Status().IsTerminal() {
		draw(g)

		ctl := whiteCtl
		if g.Turn() == board.SideBlack {
			ctl = blackCtl
		}
		moved, err := ctl.takeTurn(g)
		if err != nil {
			return false, err
		}
		if !moved {
			return false, nil
		}
	}
	draw(g)
	return true, nil
}

func draw(g *game.Game) {
	b := g.Board()
	if *ascii {
		fmt.Println(b.Dump())
	} else {
		fmt.Println(b.Draw())
	}
	for _, s := range []board.Side{board.SideWhite, board.SideBlack} {
		kinds := g.Captured(s)
		if len(kinds) == 0 {
			continue
		}
		symbols := make([]string, 0, len(kinds))
		for _, k := range kinds {
			symbols = append(symbols, k.SymbolUnicode(s.Opposite()))
		}
		fmt.Printf("%s captured: %s\n", s, strings.Join(symbols, " "))
	}
}
