package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"connectrpc.com/connect"
	"connectrpc.com/grpcreflect"
	"github.com/jonboulle/clockwork"
	scoreboardv1 "github.com/mcdev12/devprix/go/internal/genproto/scoreboard/v1"
	"github.com/mcdev12/devprix/go/internal/genproto/scoreboard/v1/scoreboardv1connect"
	"github.com/mcdev12/devprix/go/internal/models"
	"github.com/mcdev12/devprix/go/internal/results"
	"github.com/mcdev12/devprix/go/internal/scoreboard/gateway"
	"github.com/mcdev12/devprix/go/internal/scoreboard/rpc"
	"github.com/mcdev12/devprix/go/internal/scoreboard/web"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/reflect/protoreflect"
)

type stubSource struct{ results []models.Result }

func (s stubSource) FetchResults(ctx context.Context) ([]models.Result, error) {
	return s.results, nil
}

func newTestServices(t *testing.T) *Services {
	t.Helper()
	pts := 321
	app := results.NewApp(stubSource{results: []models.Result{{ID: "1", Name: "Margaret", Score: &pts}}}, clockwork.NewFakeClock())
	_, err := app.Refresh(context.Background())
	require.NoError(t, err)

	return &Services{
		Results: app,
		Poller:  results.NewPoller(app, clockwork.NewFakeClock(), 0),
		Gateway: gateway.NewService(gateway.DefaultConfig(), app),
		RPC:     rpc.NewService(app),
		Web:     web.DefaultConfig(),
	}
}

func TestHandlerRoutes(t *testing.T) {
	srv := httptest.NewServer(newHandler(newTestServices(t)))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Get(srv.URL + "/")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, strings.HasPrefix(resp.Header.Get("Content-Type"), "text/html"))

	resp, err = http.Get(srv.URL + "/info")
	require.NoError(t, err)
	defer resp.Body.Close()

	var info map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&info))
	assert.Equal(t, "devprix-scoreboard", info["service"])
	assert.EqualValues(t, 1, info["results"])

	client := scoreboardv1connect.NewScoreboardServiceClient(srv.Client(), srv.URL)
	board, err := client.GetBoard(context.Background(), connect.NewRequest(&scoreboardv1.GetBoardRequest{}))
	require.NoError(t, err)
	assert.Equal(t, "Margaret", board.Msg.GetBoard().GetTables()[0].GetRows()[0].GetName())
}

func TestReflectionListsScoreboardService(t *testing.T) {
	srv := httptest.NewUnstartedServer(newHandler(newTestServices(t)))
	srv.EnableHTTP2 = true
	srv.StartTLS()
	defer srv.Close()

	stream := grpcreflect.NewClient(srv.Client(), srv.URL, connect.WithGRPC()).NewStream(context.Background())
	defer func() { _, _ = stream.Close() }()

	services, err := stream.ListServices()
	require.NoError(t, err)
	assert.Contains(t, services, protoreflect.FullName(scoreboardv1connect.ScoreboardServiceName))
}

func TestRenderSnapshot(t *testing.T) {
	pts := 42
	board := results.NewBoard([]models.Result{{ID: "1", Name: "Alan", Score: &pts}}, clockwork.NewFakeClock().Now())

	out := renderSnapshot("Dev Prix", board, &Config{})
	assert.Contains(t, out, "Dev Prix")
	assert.Contains(t, out, "Alan")
	assert.Contains(t, out, "42")
	assert.Contains(t, out, "Pos")
	assert.Contains(t, out, "20")
	assert.Contains(t, out, "Last updated:")
}
