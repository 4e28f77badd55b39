package results

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jonboulle/clockwork"
	"github.com/mcdev12/devprix/go/clients/sheets_client"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSheetsSourceFetchResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"values":[["id","name","score"],["1","Ada","420"],["2","Linus","n/a"]]}`))
	}))
	defer srv.Close()

	client := sheets_client.NewSheetsClientWithBaseURL(srv.URL, "key", "sheet")
	results, err := NewSheetsSource(client, "").FetchResults(context.Background())
	require.NoError(t, err)

	require.Len(t, results, 2)
	assert.Equal(t, "Ada", results[0].Name)
	require.NotNil(t, results[0].Score)
	assert.Equal(t, 420, *results[0].Score)
	assert.Nil(t, results[1].Score)
}

func TestRefreshStatusOmitsAPIKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	baseURL := srv.URL
	srv.Close()

	client := sheets_client.NewSheetsClientWithBaseURL(baseURL, "SUPERSECRETKEY", "sheet")
	app := NewApp(NewSheetsSource(client, ""), clockwork.NewFakeClock())

	_, err := app.Refresh(context.Background())
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "SUPERSECRETKEY")

	status := app.Status()
	assert.NotEmpty(t, status.LastError)
	assert.NotContains(t, status.LastError, "SUPERSECRETKEY")
}
