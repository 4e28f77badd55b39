package results

import (
	"sync"
	"time"

	"github.com/mcdev12/devprix/go/internal/models"
)

// Snapshot pairs the unpadded results with the board built from them.
type Snapshot struct {
	Results []models.Result
	Board   Board
}

// Store holds the latest results and the board derived from them.
type Store struct {
	mu      sync.RWMutex
	results []models.Result
	board   Board
}

// NewStore returns a store with an empty board stamped at createdAt.
func NewStore(createdAt time.Time) *Store {
	return &Store{
		results: []models.Result{},
		board:   NewBoard(nil, createdAt),
	}
}

// Replace swaps in a new result list wholesale.
func (s *Store) Replace(results []models.Result, updatedAt time.Time) Board {
	cp := make([]models.Result, len(results))
	copy(cp, results)
	board := NewBoard(cp, updatedAt)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.results = cp
	s.board = board
	return board
}

// Board returns the current board. Slots must be treated as read-only.
func (s *Store) Board() Board {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.board
}

// Results returns a copy of the current, unpadded results.
func (s *Store) Results() []models.Result {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cp := make([]models.Result, len(s.results))
	copy(cp, s.results)
	return cp
}

// Snapshot returns the results and their board read under one lock.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cp := make([]models.Result, len(s.results))
	copy(cp, s.results)
	return Snapshot{Results: cp, Board: s.board}
}
