package results

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
)

// DefaultPollInterval is the re-fetch cadence.
const DefaultPollInterval = 60 * time.Second

// Refresher is the part of App the poller drives.
type Refresher interface {
	Refresh(ctx context.Context) (Board, error)
}

// Poller refreshes results once at start and then on every tick.
// Refreshes run on the poller goroutine, so ticks never overlap a fetch in flight.
type Poller struct {
	app      Refresher
	clock    clockwork.Clock
	interval time.Duration
}

// NewPoller creates a poller. A nil clock means the real clock and a non-positive
// interval means DefaultPollInterval.
func NewPoller(app Refresher, clock clockwork.Clock, interval time.Duration) *Poller {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &Poller{
		app:      app,
		clock:    clock,
		interval: interval,
	}
}

// Run blocks until ctx is cancelled.
func (p *Poller) Run(ctx context.Context) error {
	ticker := p.clock.NewTicker(p.interval)
	defer ticker.Stop()

	log.Info().Dur("interval", p.interval).Msg("results poller started")

	p.refresh(ctx)
	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("results poller shutting down")
			return nil
		case <-ticker.Chan():
			p.refresh(ctx)
		}
	}
}

func (p *Poller) refresh(ctx context.Context) {
	board, err := p.app.Refresh(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		log.Error().Err(err).Msg("failed to refresh results, keeping previous board")
		return
	}
	log.Info().Time("updated_at", board.UpdatedAt).Msg("scoreboard updated")
}
