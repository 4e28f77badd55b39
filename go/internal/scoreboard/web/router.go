package web

import (
	"embed"
	"encoding/json"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/mcdev12/devprix/go/internal/models"
	"github.com/mcdev12/devprix/go/internal/results"
	"github.com/rs/zerolog/log"
)

//go:embed templates/*
var templatesFS embed.FS

//go:embed static/*
var staticFS embed.FS

// BoardReader is what the page and JSON handlers read from.
type BoardReader interface {
	Board() results.Board
	Results() []models.Result
}

type router struct {
	reader   BoardReader
	renderer *renderer
}

// NewRouter creates the scoreboard page and JSON API handler.
func NewRouter(reader BoardReader, cfg *Config) http.Handler {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	cfg.applyDefaults()

	tmpl := template.Must(template.New("").
		Funcs(templateFuncs()).
		ParseFS(templatesFS, "templates/*.html"))

	rt := &router{
		reader:   reader,
		renderer: newRenderer(tmpl, cfg),
	}

	static, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}

	r := mux.NewRouter()
	r.HandleFunc("/", rt.handleBoard).Methods(http.MethodGet, http.MethodHead)
	r.HandleFunc("/api/board", rt.handleBoardJSON).Methods(http.MethodGet)
	r.HandleFunc("/api/results", rt.handleResultsJSON).Methods(http.MethodGet)
	r.PathPrefix("/static/").Handler(http.StripPrefix("/static/", http.FileServer(http.FS(static))))

	return r
}

func (rt *router) handleBoard(w http.ResponseWriter, r *http.Request) {
	data := rt.renderer.pageData(rt.reader.Board())
	if err := rt.renderer.render(w, "board.html", data); err != nil {
		log.Error().Err(err).Msg("failed to render board")
		http.Error(w, "failed to render board", http.StatusInternalServerError)
	}
}

func (rt *router) handleBoardJSON(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, rt.reader.Board().View())
}

func (rt *router) handleResultsJSON(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, rt.reader.Results())
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}
