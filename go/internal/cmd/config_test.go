package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"SHEET_ID", "SHEETS_API_KEY", "SHEET_RANGE", "POLL_INTERVAL", "PORT", "NATS_URL", "LOG_LEVEL"} {
		t.Setenv(key, "")
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := loadConfig(filepath.Join(t.TempDir(), "missing.yaml"), false)
	require.NoError(t, err)

	assert.Equal(t, "Results", cfg.Sheet.Range)
	assert.Equal(t, "https://sheets.googleapis.com/v4", cfg.Sheet.BaseURL)
	assert.Equal(t, 60*time.Second, cfg.Poll.Interval)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "scoreboard.board.updated", cfg.NATS.Subject)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.ErrorIs(t, cfg.validate(), errMissingSheet)
}

func TestLoadConfigExplicitMissingFile(t *testing.T) {
	clearEnv(t)

	_, err := loadConfig(filepath.Join(t.TempDir(), "missing.yaml"), true)
	assert.ErrorContains(t, err, "failed to read config file")
}

func TestLoadConfigFile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
sheet:
  id: sheet-from-file
  api_key: key-from-file
  range: Finals
poll:
  interval: 30s
display:
  title: Dev Prix 2024
  timezone: Europe/London
server:
  port: 9090
`)

	cfg, err := loadConfig(path, true)
	require.NoError(t, err)
	require.NoError(t, cfg.validate())

	assert.Equal(t, "sheet-from-file", cfg.Sheet.ID)
	assert.Equal(t, "Finals", cfg.Sheet.Range)
	assert.Equal(t, 30*time.Second, cfg.Poll.Interval)
	assert.Equal(t, "Dev Prix 2024", cfg.Display.Title)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "Europe/London", cfg.location().String())
}

func TestEnvOverridesFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("SHEET_ID", "env-sheet")
	t.Setenv("SHEETS_API_KEY", "env-key")
	t.Setenv("PORT", "7000")
	t.Setenv("POLL_INTERVAL", "2m")
	t.Setenv("NATS_URL", "nats://bus:4222")

	path := writeConfig(t, "sheet:\n  id: file-sheet\n  api_key: file-key\n")
	cfg, err := loadConfig(path, true)
	require.NoError(t, err)

	assert.Equal(t, "env-sheet", cfg.Sheet.ID)
	assert.Equal(t, "env-key", cfg.Sheet.APIKey)
	assert.Equal(t, 7000, cfg.Server.Port)
	assert.Equal(t, 2*time.Minute, cfg.Poll.Interval)
	assert.Equal(t, "nats://bus:4222", cfg.NATS.URL)
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "sheet: [not, a, map")

	_, err := loadConfig(path, true)
	assert.ErrorContains(t, err, "failed to parse config")
}

func TestValidateTimezone(t *testing.T) {
	cfg := &Config{}
	cfg.Sheet.ID = "s"
	cfg.Sheet.APIKey = "k"
	cfg.Display.Timezone = "Mars/Olympus"
	assert.ErrorContains(t, cfg.validate(), "invalid display timezone")
}
