package rpc

import (
	"context"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"connectrpc.com/connect"
	scoreboardv1 "github.com/mcdev12/devprix/go/internal/genproto/scoreboard/v1"
	"github.com/mcdev12/devprix/go/internal/genproto/scoreboard/v1/scoreboardv1connect"
	"github.com/mcdev12/devprix/go/internal/models"
	"github.com/mcdev12/devprix/go/internal/results"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReader struct {
	results []models.Result
	at      time.Time
}

func (f fakeReader) Snapshot() results.Snapshot {
	return results.Snapshot{Results: f.results, Board: results.NewBoard(f.results, f.at)}
}

func score(n int) *int { return &n }

var updatedAt = time.Date(2024, 2, 2, 10, 0, 0, 0, time.UTC)

func newTestClient(t *testing.T, opts ...connect.ClientOption) scoreboardv1connect.ScoreboardServiceClient {
	t.Helper()
	reader := fakeReader{
		results: []models.Result{
			{ID: "7", Name: "Ken", Score: score(599)},
			{ID: "8", Name: "Barbara", Score: score(575)},
			{ID: "9", Name: "Dennis"},
		},
		at: updatedAt,
	}

	mux := http.NewServeMux()
	mux.Handle(scoreboardv1connect.NewScoreboardServiceHandler(NewService(reader)))
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	return scoreboardv1connect.NewScoreboardServiceClient(srv.Client(), srv.URL, opts...)
}

func TestGetBoard(t *testing.T) {
	resp, err := newTestClient(t).GetBoard(context.Background(), connect.NewRequest(&scoreboardv1.GetBoardRequest{}))
	require.NoError(t, err)

	board := resp.Msg.GetBoard()
	require.Len(t, board.GetTables(), 2)
	assert.True(t, board.GetUpdatedAt().AsTime().Equal(updatedAt))

	first := board.GetTables()[0].GetRows()
	second := board.GetTables()[1].GetRows()
	require.Len(t, first, 10)
	require.Len(t, second, 10)

	assert.Equal(t, "Ken", first[0].GetName())
	assert.Equal(t, int32(599), first[0].GetScore())
	assert.True(t, first[0].GetHasScore())

	assert.Equal(t, int32(2), first[1].GetPosition())
	assert.Equal(t, "Dennis", first[2].GetName())
	assert.False(t, first[2].GetHasScore())

	assert.True(t, first[3].GetPlaceholder())
	assert.Empty(t, first[3].GetName())
	assert.Equal(t, int32(11), second[0].GetPosition())
	assert.True(t, second[9].GetPlaceholder())
}

func TestListResults(t *testing.T) {
	resp, err := newTestClient(t).ListResults(context.Background(), connect.NewRequest(&scoreboardv1.ListResultsRequest{}))
	require.NoError(t, err)

	got := resp.Msg.GetResults()
	require.Len(t, got, 3)
	assert.Equal(t, "Barbara", got[1].GetName())
	assert.Equal(t, int32(575), got[1].GetScore())
	assert.False(t, got[2].GetHasScore())
	assert.True(t, resp.Msg.GetUpdatedAt().AsTime().Equal(updatedAt))
}

func TestListResultsOverJSON(t *testing.T) {
	resp, err := newTestClient(t, connect.WithProtoJSON()).ListResults(context.Background(), connect.NewRequest(&scoreboardv1.ListResultsRequest{}))
	require.NoError(t, err)
	assert.Len(t, resp.Msg.GetResults(), 3)
}

func TestScoreOutsideInt32IsAbsent(t *testing.T) {
	svc := NewService(fakeReader{})
	_, ok := svc.scoreToProto(&models.Result{Score: score(math.MaxInt32 + 1)})
	assert.False(t, ok)

	got, ok := svc.scoreToProto(&models.Result{Score: score(600)})
	assert.True(t, ok)
	assert.Equal(t, int32(600), got)
}

func TestUnknownProcedure(t *testing.T) {
	_, handler := scoreboardv1connect.NewScoreboardServiceHandler(NewService(fakeReader{}))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/"+scoreboardv1connect.ScoreboardServiceName+"/Nope", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
