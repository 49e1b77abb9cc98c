package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"HTTP_ADDR", "SHEET_CSV_URL", "SHEET_TIMEOUT", "DASHBOARD_API_URL", "POLL_INTERVAL", "LOG_LEVEL"} {
		t.Setenv(k, "")
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.Equal(t, DefaultCSVURL, cfg.Sheet.CSVURL)
	assert.Equal(t, 10*time.Second, cfg.Sheet.TimeoutDuration())
	assert.Equal(t, 5, cfg.Sheet.MaxRedirects)
	assert.Equal(t, 10*time.Second, cfg.Dashboard.PollIntervalDuration())
	assert.Equal(t, 5*time.Second, cfg.HTTP.ShutdownTimeoutDuration())
	assert.Equal(t, "all", cfg.Dashboard.Platform)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoad_File(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
http:
  addr: ":9090"
sheet:
  csv_url: "https://example.com/sheet.csv"
  max_redirects: 0
dashboard:
  poll_interval: 30s
  platform: LinkedIn
logging:
  level: debug
  development: true
`)

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.HTTP.Addr)
	assert.Equal(t, "https://example.com/sheet.csv", cfg.Sheet.CSVURL)
	assert.Equal(t, 0, cfg.Sheet.MaxRedirects)
	assert.Equal(t, 10*time.Second, cfg.Sheet.TimeoutDuration(), "unset keys keep defaults")
	assert.Equal(t, 30*time.Second, cfg.Dashboard.PollIntervalDuration())
	assert.Equal(t, "LinkedIn", cfg.Dashboard.Platform)
	assert.True(t, cfg.Logging.Development)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "http:\n  addr: \":9090\"\n")
	t.Setenv("HTTP_ADDR", ":7070")
	t.Setenv("SHEET_CSV_URL", "https://example.com/other.csv")
	t.Setenv("SHEET_TIMEOUT", "3s")
	t.Setenv("DASHBOARD_API_URL", "http://api:8080")
	t.Setenv("POLL_INTERVAL", "1m")
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, ":7070", cfg.HTTP.Addr)
	assert.Equal(t, "https://example.com/other.csv", cfg.Sheet.CSVURL)
	assert.Equal(t, 3*time.Second, cfg.Sheet.TimeoutDuration())
	assert.Equal(t, "http://api:8080", cfg.Dashboard.APIURL)
	assert.Equal(t, time.Minute, cfg.Dashboard.PollIntervalDuration())
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoad_MissingFile(t *testing.T) {
	clearEnv(t)

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))

	assert.ErrorContains(t, err, "failed to read config")
}

func TestLoad_InvalidYAML(t *testing.T) {
	clearEnv(t)

	_, err := Load(writeConfig(t, "http: [\n"))

	assert.ErrorContains(t, err, "failed to parse config")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "defaults", mutate: func(c *Config) {}},
		{name: "empty addr", mutate: func(c *Config) { c.HTTP.Addr = "" }, wantErr: "http.addr"},
		{name: "empty csv url", mutate: func(c *Config) { c.Sheet.CSVURL = "" }, wantErr: "sheet.csv_url"},
		{name: "negative redirects", mutate: func(c *Config) { c.Sheet.MaxRedirects = -1 }, wantErr: "sheet.max_redirects"},
		{name: "bad timeout", mutate: func(c *Config) { c.Sheet.Timeout = "soon" }, wantErr: "sheet.timeout"},
		{name: "zero poll interval", mutate: func(c *Config) { c.Dashboard.PollInterval = "0s" }, wantErr: "dashboard.poll_interval"},
		{name: "negative shutdown", mutate: func(c *Config) { c.HTTP.ShutdownTimeout = "-1s" }, wantErr: "http.shutdown_timeout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
