package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"MAPTY_STORE", "MAPTY_STORE_URL", "MAPTY_LOG_LEVEL", "DEV_MODE"} {
		t.Setenv(k, "")
	}
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	require.Equal(t, BackendFile, cfg.Store.Backend)
	require.Equal(t, DefaultKey, cfg.Store.Key)
	require.Nil(t, cfg.Location.Latitude)
}

func TestLoadConfigFromFile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
[store]
backend = "sql"
url = "file:./mapty.db"
key = "mine"

[location]
latitude = 38.72
longitude = -9.14

[log]
level = "debug"

[display]
timezone = "Europe/Lisbon"
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, BackendSQL, cfg.Store.Backend)
	require.Equal(t, "file:./mapty.db", cfg.Store.URL)
	require.Equal(t, "mine", cfg.Store.Key)
	require.InDelta(t, 38.72, *cfg.Location.Latitude, 1e-9)
	require.InDelta(t, -9.14, *cfg.Location.Longitude, 1e-9)
	require.Equal(t, slog.LevelDebug, cfg.Log.SlogLevel())
	require.Equal(t, "Europe/Lisbon", cfg.Display.Timezone)
}

func TestLoadConfigRejectsBrokenFile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `[store`)

	_, err := LoadConfig(path)
	require.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("MAPTY_STORE_URL", "libsql://mapty.turso.io")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	require.Equal(t, BackendSQL, cfg.Store.Backend)
	require.Equal(t, "libsql://mapty.turso.io", cfg.Store.URL)

	t.Setenv("DEV_MODE", "true")
	cfg, err = LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	require.Equal(t, "file:./local.db?cache=shared&mode=rwc", cfg.Store.URL)
}

func TestSlogLevelDefault(t *testing.T) {
	require.Equal(t, slog.LevelWarn, LogConfig{}.SlogLevel())
	require.Equal(t, slog.LevelInfo, LogConfig{Level: "INFO"}.SlogLevel())
}
