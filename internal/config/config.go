package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the server and terminal dashboard settings.
type Config struct {
	HTTP      HTTPConfig      `yaml:"http"`
	Sheet     SheetConfig     `yaml:"sheet"`
	Dashboard DashboardConfig `yaml:"dashboard"`
	Logging   LoggingConfig   `yaml:"logging"`
}

type HTTPConfig struct {
	Addr            string `yaml:"addr"`
	ShutdownTimeout string `yaml:"shutdown_timeout"`
}

// SheetConfig points at the published CSV export.
type SheetConfig struct {
	CSVURL       string `yaml:"csv_url"`
	Timeout      string `yaml:"timeout"`
	MaxRedirects int    `yaml:"max_redirects"`
}

type DashboardConfig struct {
	APIURL       string `yaml:"api_url"`
	PollInterval string `yaml:"poll_interval"`
	Platform     string `yaml:"platform"`
	Search       string `yaml:"search"`
}

type LoggingConfig struct {
	Level       string `yaml:"level"` // debug, info, warn, error
	Development bool   `yaml:"development"`
}

const DefaultCSVURL = "https://docs.google.com/spreadsheets/d/1mlVPY0ppJja73NCiCvn2xqkmSKu_lBvIsSIgxJNOWWg/export?format=csv"

func DefaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Addr:            ":8080",
			ShutdownTimeout: "5s",
		},
		Sheet: SheetConfig{
			CSVURL:       DefaultCSVURL,
			Timeout:      "10s",
			MaxRedirects: 5,
		},
		Dashboard: DashboardConfig{
			APIURL:       "http://localhost:8080",
			PollInterval: "10s",
			Platform:     "all",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads path over the defaults (an empty path skips the file), applies
// environment overrides and validates the result.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("HTTP_ADDR"); v != "" {
		c.HTTP.Addr = v
	}
	if v := os.Getenv("SHEET_CSV_URL"); v != "" {
		c.Sheet.CSVURL = v
	}
	if v := os.Getenv("SHEET_TIMEOUT"); v != "" {
		c.Sheet.Timeout = v
	}
	if v := os.Getenv("DASHBOARD_API_URL"); v != "" {
		c.Dashboard.APIURL = v
	}
	if v := os.Getenv("POLL_INTERVAL"); v != "" {
		c.Dashboard.PollInterval = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
}

func (c *Config) Validate() error {
	if c.HTTP.Addr == "" {
		return errors.New("http.addr is required")
	}
	if c.Sheet.CSVURL == "" {
		return errors.New("sheet.csv_url is required")
	}
	if c.Sheet.MaxRedirects < 0 {
		return errors.New("sheet.max_redirects must not be negative")
	}
	if _, err := positiveDuration("http.shutdown_timeout", c.HTTP.ShutdownTimeout); err != nil {
		return err
	}
	if _, err := positiveDuration("sheet.timeout", c.Sheet.Timeout); err != nil {
		return err
	}
	if _, err := positiveDuration("dashboard.poll_interval", c.Dashboard.PollInterval); err != nil {
		return err
	}
	return nil
}

func (c HTTPConfig) ShutdownTimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.ShutdownTimeout)
	return d
}

func (c SheetConfig) TimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.Timeout)
	return d
}

func (c DashboardConfig) PollIntervalDuration() time.Duration {
	d, _ := time.ParseDuration(c.PollInterval)
	return d
}

func positiveDuration(name, value string) (time.Duration, error) {
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid duration %q: %w", name, value, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s must be positive", name)
	}
	return d, nil
}
