// Package store persists saved games and aggregate results in BadgerDB.
package store

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"

	"github.com/mkamel/chesskit/game"
)

const (
	keyStats      = "stats"
	gameKeyPrefix = "game:"
)

// ErrNotFound reports a missing saved game.
var ErrNotFound = errors.New("not found")

// Stats aggregates finished game results.
type Stats struct {
	GamesPlayed int `json:"games_played"`
	WhiteWins   int `json:"white_wins"`
	BlackWins   int `json:"black_wins"`
	Stalemates  int `json:"stalemates"`
}

// Store wraps BadgerDB. A single process owns the directory at a time.
type Store struct {
	db *badger.DB
}

func Open(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveGame stores a snapshot under the given name, replacing any previous
// save with that name.
func (s *Store) SaveGame(name string, snap game.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(gameKey(name), data)
	})
}

// LoadGame retrieves a saved snapshot, or ErrNotFound.
func (s *Store) LoadGame(name string) (game.Snapshot, error) {
	var snap game.Snapshot

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(gameKey(name))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("%w: game %q", ErrNotFound, name)
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &snap)
		})
	})

	return snap, err
}

// DeleteGame removes a saved game. Deleting a missing name is not an error.
func (s *Store) DeleteGame(name string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(gameKey(name))
	})
}

// ListGames returns the names of all saved games.
func (s *Store) ListGames() ([]string, error) {
	var names []string

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(gameKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			names = append(names, string(it.Item().Key()[len(prefix):]))
		}
		return nil
	})

	return names, err
}

// RecordResult folds a terminal status into the aggregate stats. In-progress
// statuses are ignored.
func (s *Store) RecordResult(status game.Status) error {
	if !status.IsTerminal() {
		return nil
	}

	stats, err := s.Stats()
	if err != nil {
		return err
	}

	stats.GamesPlayed++
	switch status {
	case game.StatusWhiteWins:
		stats.WhiteWins++
	case game.StatusBlackWins:
		stats.BlackWins++
	case game.StatusStalemate:
		stats.Stalemates++
	}

	data, err := json.Marshal(stats)
	if err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyStats), data)
	})
}

// Stats loads the aggregate results, returning zeroes when none are recorded.
func (s *Store) Stats() (Stats, error) {
	var stats Stats

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyStats))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &stats)
		})
	})

	return stats, err
}

func gameKey(name string) []byte {
	return []byte(gameKeyPrefix + name)
}
