package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

const (
	BackendFile   = "file"
	BackendSQL    = "sql"
	BackendMemory = "memory"

	DefaultKey = "workouts"
)

type Config struct {
	Store    StoreConfig    `toml:"store"`
	Location LocationConfig `toml:"location"`
	Log      LogConfig      `toml:"log"`
	Display  DisplayConfig  `toml:"display"`
}

type StoreConfig struct {
	Backend string `toml:"backend"` // file, sql or memory.
	Dir     string `toml:"dir"`     // Directory for the file backend.
	URL     string `toml:"url"`     // Database URL for the sql backend.
	Key     string `toml:"key"`     // Name of the slot holding the workouts.
}

// LocationConfig is the position reported as "current" at startup.
type LocationConfig struct {
	Latitude  *float64 `toml:"latitude"`
	Longitude *float64 `toml:"longitude"`
}

type DisplayConfig struct {
	Timezone string `toml:"timezone"` // IANA name; empty means the system zone.
}

type LogConfig struct {
	Level string `toml:"level"`
}

func Default() *Config {
	return &Config{
		Store: StoreConfig{Backend: BackendFile, Key: DefaultKey},
		Log:   LogConfig{Level: "warn"},
	}
}

// Returns the directory holding the config file and the file store.
func GetDataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "mapty"), nil
}

// Returns the path to the config file.
func GetConfigPath() (string, error) {
	dir, err := GetDataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Reads the configuration from path (or the default path when empty).
// A missing file yields the defaults; environment variables win over both.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		var err error
		if path, err = GetConfigPath(); err != nil {
			return nil, err
		}
	}

	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	// A .env file is optional.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}
	applyEnv(cfg)

	if cfg.Store.Key == "" {
		cfg.Store.Key = DefaultKey
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("MAPTY_STORE"); v != "" {
		cfg.Store.Backend = v
	}
	if v := os.Getenv("MAPTY_STORE_URL"); v != "" {
		cfg.Store.URL = v
		if os.Getenv("MAPTY_STORE") == "" {
			cfg.Store.Backend = BackendSQL
		}
	}
	if v := os.Getenv("MAPTY_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}

	// Check for a DEV_MODE environment variable.
	if os.Getenv("DEV_MODE") == "true" {
		cfg.Store.Backend = BackendSQL
		cfg.Store.URL = "file:./local.db?cache=shared&mode=rwc"
	}
}

// SlogLevel maps the configured level name, defaulting to warn.
func (c LogConfig) SlogLevel() slog.Level {
	switch strings.ToLower(c.Level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
