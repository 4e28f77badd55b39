package gateway

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mcdev12/devprix/go/internal/results"
)

// BoardEvent is the envelope pushed to WebSocket clients
type BoardEvent struct {
	ID        string          `json:"id"`        // Event UUID
	Type      EventType       `json:"type"`      // Event type
	Timestamp time.Time       `json:"timestamp"` // Event creation time
	Data      json.RawMessage `json:"data"`      // Event-specific payload
}

// EventType represents the type of board event
type EventType string

const (
	// EventTypeBoardSnapshot is sent once when a client connects.
	EventTypeBoardSnapshot EventType = "BoardSnapshot"
	// EventTypeBoardUpdated is sent after every successful refresh.
	EventTypeBoardUpdated EventType = "BoardUpdated"
)

// NewBoardEvent wraps a board view in an event of the given type.
func NewBoardEvent(eventType EventType, board results.Board) (*BoardEvent, error) {
	data, err := json.Marshal(board.View())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal board: %w", err)
	}
	return &BoardEvent{
		ID:        uuid.New().String(),
		Type:      eventType,
		Timestamp: board.UpdatedAt,
		Data:      data,
	}, nil
}
