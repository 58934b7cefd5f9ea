// file: nset/pkg/x_log/config.go
package x_log

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Config selects the sinks and rotation policy of a logger.
type Config struct {
	Level       string // trace, debug, info, warn, error
	LogFile     string
	ToConsole   bool
	ToFile      bool
	ColoredFile bool // style the file sink like the console
	Style       string
	MaxSize     int // MB per file
	MaxBackups  int // rotated files kept
	MaxAge      int // days
	Compress    bool
}

//
// ---------- Defaults ----------

const defaultConfigPath = "./xlog.json"

var defaultConfig = Config{
	Level:       "info",
	LogFile:     "logs/app.log",
	ToConsole:   true,
	ToFile:      false,
	ColoredFile: false,
	Style:       "dark",
	MaxSize:     10,
	MaxBackups:  5,
	MaxAge:      7,
	Compress:    true,
}

//
// ---------- LoadConfig ----------

// LoadConfig reads JSON config from file.
// If path is empty, uses XLOG_CONFIG or ./xlog.json.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv("XLOG_CONFIG")
		if path == "" {
			path = defaultConfigPath
		}
	}

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg := defaultConfig
			return &cfg, nil
		}
		return nil, fmt.Errorf("failed to read config from %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config from %s: %w", path, err)
	}

	applyDefaults(&cfg)
	return &cfg, nil
}

//
// ---------- Defaults Fill ----------

// applyDefaults fills missing config values from defaultConfig
func applyDefaults(cfg *Config) {
	if cfg.Level == "" {
		cfg.Level = defaultConfig.Level
	}
	if cfg.LogFile == "" {
		cfg.LogFile = defaultConfig.LogFile
	}
	if cfg.Style == "" {
		cfg.Style = defaultConfig.Style
	}
	if cfg.MaxSize <= 0 {
		cfg.MaxSize = defaultConfig.MaxSize
	}
	if cfg.MaxBackups <= 0 {
		cfg.MaxBackups = defaultConfig.MaxBackups
	}
	if cfg.MaxAge <= 0 {
		cfg.MaxAge = defaultConfig.MaxAge
	}
}
