package web

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/mcdev12/devprix/go/internal/models"
	"github.com/mcdev12/devprix/go/internal/results"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReader struct {
	results []models.Result
	at      time.Time
}

func (f fakeReader) Board() results.Board {
	return results.NewBoard(f.results, f.at)
}

func (f fakeReader) Results() []models.Result {
	return f.results
}

func score(n int) *int { return &n }

func newTestRouter() http.Handler {
	reader := fakeReader{
		results: []models.Result{
			{ID: "1", Name: "Ada <script>", Score: score(512)},
			{ID: "2", Name: "Linus", Score: score(480)},
			{ID: "3", Name: "Grace"},
		},
		at: time.Date(2024, 4, 12, 15, 4, 5, 0, time.UTC),
	}
	return NewRouter(reader, &Config{Location: time.UTC})
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestBoardPage(t *testing.T) {
	rec := get(t, newTestRouter(), "/")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))

	body := rec.Body.String()
	assert.Equal(t, 2, strings.Count(body, "<table class=\"leaderboard\">"))
	assert.Equal(t, 2, strings.Count(body, DefaultQRCaption))
	assert.Equal(t, 20, strings.Count(body, `<td class="center pos">`))
	assert.Equal(t, 17, strings.Count(body, `class="placeholder"`))
	assert.Contains(t, body, "Ada &lt;script&gt;")
	assert.NotContains(t, body, "Ada <script>")
	assert.Contains(t, body, `<td class="center points">512</td>`)
	assert.Contains(t, body, `<td class="center pos">20</td>`)
	assert.Contains(t, body, DefaultScoringNote)
	assert.Contains(t, body, "Last updated: <time id=\"updated\" datetime=\"2024-04-12T15:04:05Z\">4/12/2024, 3:04:05 PM</time>")
}

func TestBoardJSON(t *testing.T) {
	rec := get(t, newTestRouter(), "/api/board")
	require.Equal(t, http.StatusOK, rec.Code)

	var view results.BoardView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	require.Len(t, view.Tables, 2)
	assert.Len(t, view.Tables[0], results.PageSize)
	assert.Equal(t, "Grace", view.Tables[0][2].Name)
	assert.Nil(t, view.Tables[0][2].Score)
	assert.True(t, view.Tables[0][3].Placeholder)
	assert.Equal(t, 11, view.Tables[1][0].Position)
}

func TestResultsJSON(t *testing.T) {
	rec := get(t, newTestRouter(), "/api/results")
	require.Equal(t, http.StatusOK, rec.Code)

	var got []models.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Len(t, got, 3)
	assert.Equal(t, "Linus", got[1].Name)
}

func TestStaticAssets(t *testing.T) {
	h := newTestRouter()
	for _, path := range []string{"/static/styles.css", "/static/board.js", "/static/logo.svg", "/static/qr-code.svg"} {
		rec := get(t, h, path)
		assert.Equal(t, http.StatusOK, rec.Code, path)
		b, _ := io.ReadAll(rec.Body)
		assert.NotEmpty(t, b, path)
	}
}

func TestWriteMethodsRejected(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/board", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
