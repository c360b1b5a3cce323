// ABOUTME: Practice tool configuration with backend selection.
// ABOUTME: Reads the JSON settings file, applies environment overrides, and opens storage.

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v6"
	"go.uber.org/zap"

	"github.com/harperreed/practice/internal/storage"
)

// Supported storage backends.
const (
	BackendSQLite = "sqlite"
	BackendBadger = "badger"
)

// Config stores practice tool configuration.
type Config struct {
	// Backend selects the storage backend: "sqlite" (default) or "badger".
	Backend string `json:"backend,omitempty" env:"PRACTICE_BACKEND"`

	// DataDir is the root directory for data storage.
	// SQLite puts practice.db here. Badger keeps its files under kv/.
	// Supports ~ expansion for home directory. Defaults to ~/.local/share/practice.
	DataDir string `json:"data_dir,omitempty" env:"PRACTICE_DATA_DIR"`
}

// GetBackend returns the configured backend, defaulting to "sqlite".
func (c *Config) GetBackend() string {
	if c.Backend == "" {
		return BackendSQLite
	}
	return strings.ToLower(c.Backend)
}

// GetDataDir returns the configured data directory with ~ expanded,
// defaulting to the standard XDG data directory.
func (c *Config) GetDataDir() string {
	if c.DataDir == "" {
		return storage.DataDir()
	}
	return ExpandPath(c.DataDir)
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" {
		home, _ := os.UserHomeDir()
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// StoragePath returns where the configured backend keeps its data.
func (c *Config) StoragePath() (string, error) {
	dataDir := c.GetDataDir()
	switch c.GetBackend() {
	case BackendSQLite:
		return filepath.Join(dataDir, "practice.db"), nil
	case BackendBadger:
		return filepath.Join(dataDir, "kv"), nil
	default:
		return "", fmt.Errorf("unknown backend: %q", c.Backend)
	}
}

// OpenStorage opens the Repository for the configured backend.
func (c *Config) OpenStorage(log *zap.Logger) (*storage.Store, error) {
	path, err := c.StoragePath()
	if err != nil {
		return nil, err
	}

	switch c.GetBackend() {
	case BackendBadger:
		return storage.OpenBadger(path, log)
	default:
		s, err := storage.Open(path)
		if err != nil {
			return nil, err
		}
		return s.WithLogger(log), nil
	}
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "practice", "config.json")
}

// Load reads config from disk and applies PRACTICE_* environment overrides.
func Load() (*Config, error) {
	cfg, err := loadFile(GetConfigPath())
	if err != nil {
		return nil, err
	}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	return cfg, nil
}

func loadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &cfg, nil
}

// Save writes config to disk.
func (c *Config) Save() error {
	path := GetConfigPath()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
