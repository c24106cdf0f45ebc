package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/mkamel/chesskit/board"
	"github.com/mkamel/chesskit/game"
	"github.com/mkamel/chesskit/store"
)

const (
	exitOK = iota
	exitErr
)

var (
	fen   = flag.String("fen", board.DefaultStartingPlacement, "starting piece placement")
	white = flag.String("white", "human", "white controller: human, random, or greedy")
	black = flag.String("black", "greedy", "black controller: human, random, or greedy")
	seed  = flag.Int64("seed", 0, "rng seed for ai controllers, 0 seeds from the clock")
	debug = flag.Bool("debug", false, "log greedy evaluation summaries")
	ascii = flag.Bool("ascii", false, "render the board as plain ascii instead of ansi color")

	dbDir   = flag.String("db", "", "badger directory for saves and stats, empty disables persistence")
	saveAs  = flag.String("save", "", "name to save the game under on quit and at game end")
	resume  = flag.String("resume", "", "name of a saved game to resume")
	listAll = flag.Bool("list", false, "list saved games and exit")
)

func main() {
	flag.Parse()

	err := realMain()
	if err != nil {
		log.Println(err)
		os.Exit(exitErr)
	}
	os.Exit(exitOK)
}

func realMain() error {
	var st *store.Store
	if *dbDir != "" {
		var err error
		if st, err = store.Open(*dbDir); err != nil {
			return err
		}
		defer func() {
			if err := st.Close(); err != nil {
				log.Println(err)
			}
		}()
	}

	if *listAll {
		return listGames(st)
	}

	g, err := loadGame(st)
	if err != nil {
		return err
	}

	src := *seed
	if src == 0 {
		src = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(src))
	whiteCtl, err := newController(*white, rng, *debug)
	if err != nil {
		return err
	}
	blackCtl, err := newController(*black, rng, *debug)
	if err != nil {
		return err
	}

	finished, err := play(g, whiteCtl, blackCtl)
	if err != nil {
		return err
	}

	if st != nil && *saveAs != "" {
		if err := st.SaveGame(*saveAs, g.Snapshot()); err != nil {
			return err
		}
		log.Printf("saved game as %q\n", *saveAs)
	}
	if finished {
		fmt.Println(g.Status())
		if st != nil {
			if err := st.RecordResult(g.Status()); err != nil {
				return err
			}
			if err := printStats(st); err != nil {
				return err
			}
		}
	}
	return nil
}

func loadGame(st *store.Store) (*game.Game, error) {
	if *resume != "" {
		if st == nil {
			return nil, errors.New("-resume requires -db")
		}
		snap, err := st.LoadGame(*resume)
		if err != nil {
			return nil, err
		}
		return game.FromSnapshot(snap)
	}
	return game.NewGame(game.WithPlacement(*fen))
}

func listGames(st *store.Store) error {
	if st == nil {
		return errors.New("-list requires -db")
	}
	names, err := st.ListGames()
	if err != nil {
		return err
	}
	for _, name := range names {
		fmt.Println(name)
	}
	return nil
}

func printStats(st *store.Store) error {
	stats, err := st.Stats()
	if err != nil {
		return err
	}
	fmt.Println(message.NewPrinter(language.English).
		Sprintf("games:%d white:%d black:%d stalemates:%d",
			stats.GamesPlayed, stats.WhiteWins, stats.BlackWins, stats.Stalemates))
	return nil
}
