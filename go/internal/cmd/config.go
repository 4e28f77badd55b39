package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/mcdev12/devprix/go/clients/sheets_client"
	"github.com/mcdev12/devprix/go/internal/results"
	"gopkg.in/yaml.v3"
)

const defaultConfigPath = "config.yaml"

type Config struct {
	Sheet struct {
		ID      string        `yaml:"id"`
		APIKey  string        `yaml:"api_key"`
		Range   string        `yaml:"range"`
		BaseURL string        `yaml:"base_url"`
		Timeout time.Duration `yaml:"timeout"`
	} `yaml:"sheet"`
	Poll struct {
		Interval time.Duration `yaml:"interval"`
	} `yaml:"poll"`
	Display struct {
		Title       string `yaml:"title"`
		QRCaption   string `yaml:"qr_caption"`
		ScoringNote string `yaml:"scoring_note"`
		LogoURL     string `yaml:"logo_url"`
		QRCodeURL   string `yaml:"qr_code_url"`
		TimeFormat  string `yaml:"time_format"`
		Timezone    string `yaml:"timezone"`
	} `yaml:"display"`
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`
	NATS struct {
		URL     string `yaml:"url"`
		Subject string `yaml:"subject"`
	} `yaml:"nats"`
	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log"`
}

var errMissingSheet = errors.New("SHEET_ID and SHEETS_API_KEY are required")

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

// loadConfig reads the YAML file at path, then applies environment overrides and defaults.
// A missing file is only an error when the path was given explicitly.
func loadConfig(path string, explicit bool) (*Config, error) {
	var config Config

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	case errors.Is(err, fs.ErrNotExist) && !explicit:
	default:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config.applyEnvOverrides()
	config.applyDefaults()
	return &config, nil
}

func (c *Config) applyEnvOverrides() {
	c.Sheet.ID = getEnv("SHEET_ID", c.Sheet.ID)
	c.Sheet.APIKey = getEnv("SHEETS_API_KEY", c.Sheet.APIKey)
	c.Sheet.Range = getEnv("SHEET_RANGE", c.Sheet.Range)
	c.Poll.Interval = getEnvAsDuration("POLL_INTERVAL", c.Poll.Interval)
	c.Server.Port = getEnvAsInt("PORT", c.Server.Port)
	c.NATS.URL = getEnv("NATS_URL", c.NATS.URL)
	c.Log.Level = getEnv("LOG_LEVEL", c.Log.Level)
}

func (c *Config) applyDefaults() {
	if c.Sheet.Range == "" {
		c.Sheet.Range = sheets_client.ResultsRange
	}
	if c.Sheet.BaseURL == "" {
		c.Sheet.BaseURL = sheets_client.BaseURL
	}
	if c.Sheet.Timeout <= 0 {
		c.Sheet.Timeout = 30 * time.Second
	}
	if c.Poll.Interval <= 0 {
		c.Poll.Interval = results.DefaultPollInterval
	}
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.NATS.Subject == "" {
		c.NATS.Subject = results.DefaultSubject
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}

func (c *Config) validate() error {
	if c.Sheet.ID == "" || c.Sheet.APIKey == "" {
		return errMissingSheet
	}
	if c.Display.Timezone != "" {
		if _, err := time.LoadLocation(c.Display.Timezone); err != nil {
			return fmt.Errorf("invalid display timezone %q: %w", c.Display.Timezone, err)
		}
	}
	return nil
}

func (c *Config) location() *time.Location {
	if c.Display.Timezone == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(c.Display.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}
