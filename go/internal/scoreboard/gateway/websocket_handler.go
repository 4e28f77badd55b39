package gateway

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"
)

// WebSocketHandler handles WebSocket upgrade requests from scoreboard viewers
type WebSocketHandler struct {
	connectionManager *ConnectionManager
	stateProvider     StateProvider
}

// NewWebSocketHandler creates a new WebSocket handler
func NewWebSocketHandler(cm *ConnectionManager, provider StateProvider) *WebSocketHandler {
	return &WebSocketHandler{
		connectionManager: cm,
		stateProvider:     provider,
	}
}

// HandleBoardConnection upgrades the request and sends the current board as the first message.
func (h *WebSocketHandler) HandleBoardConnection(w http.ResponseWriter, r *http.Request) {
	snapshot := func() (*BoardEvent, error) {
		return NewBoardEvent(EventTypeBoardSnapshot, h.stateProvider.Board())
	}

	// On upgrade failure the upgrader has already replied to the client.
	if err := h.connectionManager.UpgradeConnection(w, r, snapshot); err != nil {
		log.Error().
			Err(err).
			Str("remote_addr", r.RemoteAddr).
			Msg("failed to open board connection")
	}
}

// HandleConnectionStats returns statistics about active connections
func (h *WebSocketHandler) HandleConnectionStats(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(h.connectionManager.GetConnectionStats()); err != nil {
		log.Error().Err(err).Msg("failed to encode connection stats")
	}
}

// RegisterRoutes registers WebSocket routes with an HTTP mux
func (h *WebSocketHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/ws/board", h.HandleBoardConnection)
	mux.HandleFunc("/ws/stats", h.HandleConnectionStats)
}
