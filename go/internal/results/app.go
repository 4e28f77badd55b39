package results

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/mcdev12/devprix/go/internal/models"
	"github.com/rs/zerolog/log"
)

// UpdateListener is notified after each successful refresh.
type UpdateListener func(ctx context.Context, board Board)

// Status summarises refresh activity for health and info endpoints.
type Status struct {
	LastAttempt time.Time `json:"last_attempt"`
	LastSuccess time.Time `json:"last_success"`
	LastError   string    `json:"last_error,omitempty"`
	Refreshes   uint64    `json:"refreshes"`
	Failures    uint64    `json:"failures"`
}

// App handles results business logic
type App struct {
	source ResultsSource
	store  *Store
	clock  clockwork.Clock

	mu        sync.RWMutex
	listeners []UpdateListener
	status    Status
}

// NewApp creates a new results App. The board starts empty, stamped with the current time.
func NewApp(source ResultsSource, clock clockwork.Clock) *App {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &App{
		source: source,
		store:  NewStore(clock.Now()),
		clock:  clock,
	}
}

// OnUpdate registers a listener for board updates.
func (a *App) OnUpdate(listener UpdateListener) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.listeners = append(a.listeners, listener)
}

// Refresh fetches results and replaces the board. On failure the previous board is kept.
func (a *App) Refresh(ctx context.Context) (Board, error) {
	started := a.clock.Now()

	results, err := a.source.FetchResults(ctx)
	if err != nil {
		a.recordFailure(started, err)
		return a.store.Board(), fmt.Errorf("failed to refresh results: %w", err)
	}

	board := a.store.Replace(results, a.clock.Now())
	a.recordSuccess(started, board.UpdatedAt)

	log.Debug().
		Int("results", len(results)).
		Time("updated_at", board.UpdatedAt).
		Dur("took", a.clock.Since(started)).
		Msg("results refreshed")

	a.mu.RLock()
	listeners := make([]UpdateListener, len(a.listeners))
	copy(listeners, a.listeners)
	a.mu.RUnlock()

	for _, listener := range listeners {
		listener(ctx, board)
	}

	return board, nil
}

// Board returns the current padded board.
func (a *App) Board() Board {
	return a.store.Board()
}

// Results returns the current unpadded results in upstream order.
func (a *App) Results() []models.Result {
	return a.store.Results()
}

// Snapshot returns the results and the board built from them as one consistent pair.
func (a *App) Snapshot() Snapshot {
	return a.store.Snapshot()
}

// Status returns refresh counters and the last error, if any.
func (a *App) Status() Status {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.status
}

func (a *App) recordFailure(at time.Time, err error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.status.LastAttempt = at
	a.status.LastError = err.Error()
	a.status.Failures++
}

func (a *App) recordSuccess(at, updatedAt time.Time) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.status.LastAttempt = at
	a.status.LastSuccess = updatedAt
	a.status.LastError = ""
	a.status.Refreshes++
}
