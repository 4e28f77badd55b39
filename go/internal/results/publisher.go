package results

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog/log"
)

// DefaultSubject is the NATS subject board updates are published on.
const DefaultSubject = "scoreboard.board.updated"

// EventTypeBoardUpdated tags published board envelopes.
const EventTypeBoardUpdated = "BoardUpdated"

// BoardPublisher fans board updates out to other systems.
type BoardPublisher interface {
	Publish(ctx context.Context, board Board) error
}

// NoOpPublisher is used when no message bus is configured.
type NoOpPublisher struct{}

// Publish discards the board.
func (NoOpPublisher) Publish(ctx context.Context, board Board) error { return nil }

// BoardEnvelope wraps a board view for the bus.
type BoardEnvelope struct {
	EventID   string    `json:"eventId"`
	EventType string    `json:"eventType"`
	Timestamp time.Time `json:"timestamp"`
	Payload   BoardView `json:"payload"`
}

// NewBoardEnvelope builds an envelope with a fresh event ID.
func NewBoardEnvelope(board Board) BoardEnvelope {
	return BoardEnvelope{
		EventID:   uuid.New().String(),
		EventType: EventTypeBoardUpdated,
		Timestamp: board.UpdatedAt,
		Payload:   board.View(),
	}
}

// NATSConfig holds connection settings for the NATS publisher.
type NATSConfig struct {
	URL           string
	Subject       string
	MaxReconnects int
	ReconnectWait time.Duration
}

// DefaultNATSConfig returns default NATS settings.
func DefaultNATSConfig() NATSConfig {
	return NATSConfig{
		URL:           nats.DefaultURL,
		Subject:       DefaultSubject,
		MaxReconnects: -1, // Infinite
		ReconnectWait: 2 * time.Second,
	}
}

// NATSPublisher publishes board updates to a NATS subject
type NATSPublisher struct {
	nc      *nats.Conn
	subject string
}

// NewNATSPublisher connects to NATS.
func NewNATSPublisher(config NATSConfig) (*NATSPublisher, error) {
	opts := []nats.Option{
		nats.Name("devprix-scoreboard"),
		nats.MaxReconnects(config.MaxReconnects),
		nats.ReconnectWait(config.ReconnectWait),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			log.Error().Err(err).Msg("NATS disconnected")
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			log.Info().Str("url", nc.ConnectedUrl()).Msg("NATS reconnected")
		}),
	}

	nc, err := nats.Connect(config.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("connect to NATS: %w", err)
	}

	subject := config.Subject
	if subject == "" {
		subject = DefaultSubject
	}

	return &NATSPublisher{nc: nc, subject: subject}, nil
}

// Publish sends the board as a JSON envelope on the configured subject.
func (p *NATSPublisher) Publish(ctx context.Context, board Board) error {
	messageBytes, err := json.Marshal(NewBoardEnvelope(board))
	if err != nil {
		return fmt.Errorf("failed to marshal board event: %w", err)
	}

	if err := p.nc.Publish(p.subject, messageBytes); err != nil {
		return fmt.Errorf("failed to publish to %s: %w", p.subject, err)
	}

	log.Debug().
		Str("subject", p.subject).
		Int("size", len(messageBytes)).
		Msg("published board update")
	return nil
}

// IsConnected reports the connection state for health checks.
func (p *NATSPublisher) IsConnected() bool {
	return p.nc.IsConnected()
}

// Close drains pending messages and closes the connection.
func (p *NATSPublisher) Close() error {
	return p.nc.Drain()
}

// PublishListener adapts a publisher to an UpdateListener. Publish errors are logged.
func PublishListener(p BoardPublisher) UpdateListener {
	return func(ctx context.Context, board Board) {
		if err := p.Publish(ctx, board); err != nil {
			log.Error().Err(err).Msg("failed to publish board update")
		}
	}
}
