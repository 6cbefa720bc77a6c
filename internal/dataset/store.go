package dataset

import (
	"log/slog"
	"sync"
)

// Store memoizes the loaded dataset for the lifetime of the process. The
// first call to Rounds reads the workbook; every later call returns the same
// slice without touching the file again. Callers must treat the returned
// slice as read-only.
type Store struct {
	path   string
	logger *slog.Logger

	once   sync.Once
	rounds []Round
	err    error
}

// NewStore creates a store for the workbook at path. Nothing is read until
// the first call to Rounds.
func NewStore(path string, logger *slog.Logger) *Store {
	return &Store{path: path, logger: logger}
}

// NewStoreFromRounds creates a pre-populated store. Used by tests and by
// callers that already hold the table in memory.
func NewStoreFromRounds(rounds []Round, logger *slog.Logger) *Store {
	s := &Store{logger: logger}
	s.once.Do(func() { s.rounds = rounds })
	return s
}

// Rounds returns the cached dataset, loading it on first use. A load failure
// is also memoized: the store does not retry a broken file.
func (s *Store) Rounds() ([]Round, error) {
	s.once.Do(func() {
		s.rounds, s.err = Load(s.path, s.logger)
	})
	return s.rounds, s.err
}

// Path returns the workbook path this store reads from.
func (s *Store) Path() string {
	return s.path
}
