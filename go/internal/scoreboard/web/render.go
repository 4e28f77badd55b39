package web

import (
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/mcdev12/devprix/go/internal/results"
)

// PageData is passed to the board template.
type PageData struct {
	Title           string
	QRCaption       string
	ScoringNote     string
	LogoURL         string
	QRCodeURL       string
	Tables          [][]results.Row
	UpdatedAt       time.Time
	UpdatedText     string
	RefreshInterval int // in seconds
}

// renderer handles template rendering.
type renderer struct {
	tmpl   *template.Template
	config *Config
}

func newRenderer(tmpl *template.Template, cfg *Config) *renderer {
	return &renderer{tmpl: tmpl, config: cfg}
}

func (r *renderer) pageData(board results.Board) PageData {
	return PageData{
		Title:           r.config.Title,
		QRCaption:       r.config.QRCaption,
		ScoringNote:     r.config.ScoringNote,
		LogoURL:         r.config.LogoURL,
		QRCodeURL:       r.config.QRCodeURL,
		Tables:          board.Tables(),
		UpdatedAt:       board.UpdatedAt,
		UpdatedText:     r.formatTime(board.UpdatedAt),
		RefreshInterval: int(r.config.PollInterval.Seconds()),
	}
}

func (r *renderer) render(w http.ResponseWriter, name string, data any) error {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := r.tmpl.ExecuteTemplate(w, name, data); err != nil {
		return fmt.Errorf("execute template %s: %w", name, err)
	}
	return nil
}

func (r *renderer) formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.In(r.config.Location).Format(r.config.TimeFormat)
}

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"rfc3339": func(t time.Time) string { return t.Format(time.RFC3339) },
	}
}
