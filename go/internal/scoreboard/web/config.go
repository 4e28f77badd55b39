package web

import "time"

// Default display values.
const (
	DefaultTitle       = "Dropbox Dev Prix"
	DefaultQRCaption   = "Scan to enter the competition"
	DefaultScoringNote = "Scoring is based on a total of 600 points, with a focus on both correctness and efficiency."
	DefaultTimeFormat  = "1/2/2006, 3:04:05 PM"
	DefaultLogoURL     = "/static/logo.svg"
	DefaultQRCodeURL   = "/static/qr-code.svg"
)

// Config holds display settings for the scoreboard page.
type Config struct {
	Title       string
	QRCaption   string
	ScoringNote string
	LogoURL     string
	QRCodeURL   string

	// TimeFormat and Location control the "Last updated" line.
	TimeFormat string
	Location   *time.Location

	// PollInterval is the fallback refresh cadence for viewers without WebSocket support.
	PollInterval time.Duration
}

// DefaultConfig returns a new Config with default values.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Title == "" {
		c.Title = DefaultTitle
	}
	if c.QRCaption == "" {
		c.QRCaption = DefaultQRCaption
	}
	if c.ScoringNote == "" {
		c.ScoringNote = DefaultScoringNote
	}
	if c.LogoURL == "" {
		c.LogoURL = DefaultLogoURL
	}
	if c.QRCodeURL == "" {
		c.QRCodeURL = DefaultQRCodeURL
	}
	if c.TimeFormat == "" {
		c.TimeFormat = DefaultTimeFormat
	}
	if c.Location == nil {
		c.Location = time.Local
	}
	if c.PollInterval <= 0 {
		c.PollInterval = time.Minute
	}
}
