package gateway

import (
	"context"
	"net/http"

	"github.com/mcdev12/devprix/go/internal/results"
	"github.com/rs/zerolog/log"
)

// Service is the scoreboard gateway that pushes board updates to WebSocket viewers
type Service struct {
	connectionManager *ConnectionManager
	wsHandler         *WebSocketHandler
	stateProvider     StateProvider
}

// Config holds configuration for the gateway service
type Config struct {
	ConnectionConfig ConnectionConfig
}

// DefaultConfig returns default configuration for the gateway
func DefaultConfig() Config {
	return Config{
		ConnectionConfig: DefaultConnectionConfig(),
	}
}

// NewService creates a new gateway service
func NewService(config Config, stateProvider StateProvider) *Service {
	connectionManager := NewConnectionManager(config.ConnectionConfig)

	return &Service{
		connectionManager: connectionManager,
		wsHandler:         NewWebSocketHandler(connectionManager, stateProvider),
		stateProvider:     stateProvider,
	}
}

// Start runs the connection manager until ctx is cancelled
func (s *Service) Start(ctx context.Context) error {
	log.Info().Msg("starting scoreboard gateway service")
	s.connectionManager.Start(ctx)
	log.Info().Msg("scoreboard gateway service stopped")
	return nil
}

// RegisterRoutes registers the WebSocket HTTP routes
func (s *Service) RegisterRoutes(mux *http.ServeMux) {
	s.wsHandler.RegisterRoutes(mux)
	log.Info().Msg("scoreboard gateway routes registered")
}

// GetStats returns statistics about the gateway service
func (s *Service) GetStats() map[string]interface{} {
	stats := s.connectionManager.GetConnectionStats()
	stats["service"] = "scoreboard_gateway"
	return stats
}

// BroadcastBoard pushes an updated board to every viewer.
func (s *Service) BroadcastBoard(ctx context.Context, board results.Board) {
	event, err := NewBoardEvent(EventTypeBoardUpdated, board)
	if err != nil {
		log.Error().Err(err).Msg("failed to build board event")
		return
	}
	s.connectionManager.Broadcast(event)
}
