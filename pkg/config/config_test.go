package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://www.tvinsider.com/shows/calendar/", cfg.Scraper.BaseURL)
	assert.Equal(t, 30, cfg.Scraper.TimeoutSecs)
	assert.True(t, cfg.Scraper.Headless)
	assert.Empty(t, cfg.Scraper.BrowserPath)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "auto", cfg.Server.Workers)
	assert.Equal(t, "channels.db", cfg.Channels.DBPath)
	assert.Equal(t, "channels.yml", cfg.Channels.SeedPath)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("CALSCRAPER_SCRAPER_TIMEOUT_SECS", "60")
	t.Setenv("CALSCRAPER_SERVER_WORKERS", "4")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 60, cfg.Scraper.TimeoutSecs)
	assert.Equal(t, "4", cfg.Server.Workers)
}

func TestInitLoggerRejectsBadLevel(t *testing.T) {
	assert.Error(t, InitLogger(LogConfig{Level: "shout", Format: "json"}))
	assert.NoError(t, InitLogger(LogConfig{Level: "debug", Format: "console"}))
}
