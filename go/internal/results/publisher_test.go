package results

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoardEnvelope(t *testing.T) {
	at := time.Date(2024, 6, 1, 8, 30, 0, 0, time.UTC)
	env := NewBoardEnvelope(NewBoard(makeResults(2), at))

	_, err := uuid.Parse(env.EventID)
	require.NoError(t, err)
	assert.Equal(t, EventTypeBoardUpdated, env.EventType)
	assert.Equal(t, at, env.Timestamp)

	raw, err := json.Marshal(env)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "BoardUpdated", decoded["eventType"])
	payload := decoded["payload"].(map[string]any)
	assert.Len(t, payload["tables"], 2)
}

type failingPublisher struct{ calls int }

func (f *failingPublisher) Publish(ctx context.Context, board Board) error {
	f.calls++
	return errors.New("bus unavailable")
}

func TestPublishListenerSwallowsErrors(t *testing.T) {
	pub := &failingPublisher{}
	listener := PublishListener(pub)

	assert.NotPanics(t, func() {
		listener(context.Background(), NewBoard(nil, time.Time{}))
	})
	assert.Equal(t, 1, pub.calls)
	assert.NoError(t, NoOpPublisher{}.Publish(context.Background(), Board{}))
}
