package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9000

[public_calendar]
url = "https://api.example.com/api/v1/public"
timeout = 3

[booker]
default_layout = "week"
default_time_format = "12h"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.HTTPPort)
	assert.Equal(t, "https://api.example.com/api/v1/public", cfg.PublicCalendar.URL)
	assert.Equal(t, 3, cfg.PublicCalendar.Timeout)
	assert.Equal(t, "week", cfg.Booker.DefaultLayout)
	assert.Equal(t, "12h", cfg.Booker.DefaultTimeFormat)

	// Значения, не указанные в файле, остаются по умолчанию
	assert.Equal(t, 7, cfg.Booker.WeekDays)
	assert.Equal(t, 30, cfg.Sessions.TTLMinutes)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "bad layout", content: "[booker]\ndefault_layout = \"agenda\"\n"},
		{name: "bad time format", content: "[booker]\ndefault_time_format = \"48h\"\n"},
		{name: "bad port", content: "[server]\nhttp_port = 70000\n"},
		{name: "empty url", content: "[public_calendar]\nurl = \"\"\n"},
		{name: "week days", content: "[booker]\nweek_days = 9\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("PUBLIC_CALENDAR_URL", "")
			_, err := Load(writeConfig(t, tt.content))
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestLoad_BrokenToml(t *testing.T) {
	_, err := Load(writeConfig(t, "[server\nhttp_port = "))
	assert.Error(t, err)
}

func TestLoadOrDefault_MissingFile(t *testing.T) {
	t.Setenv("PUBLIC_CALENDAR_URL", "http://upstream.local/api")

	cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, "http://upstream.local/api", cfg.PublicCalendar.URL)
	assert.Equal(t, 8090, cfg.Server.HTTPPort)
}
