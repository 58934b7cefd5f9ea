// file: nset/config.go
package nset

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Config holds the schema-facing settings of a tree: the column names
// the storage layer reads and writes, and whether one table may carry
// several independent trees told apart by their root value.
type Config struct {
	LeftField    string `json:"left_field"`
	RightField   string `json:"right_field"`
	RootField    string `json:"root_field"`
	HasManyRoots bool   `json:"has_many_roots"`
}

// Default returns a default config.
func Default() *Config {
	return &Config{
		LeftField:    "lft",
		RightField:   "rgt",
		RootField:    "root_id",
		HasManyRoots: false,
	}
}

// Load loads config from file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	data = replaceEnvVars(data)

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config json: %w", err)
	}
	return cfg, nil
}

// LoadFromEnv loads config from environment using prefix.
func LoadFromEnv(prefix string) *Config {
	cfg := Default()

	cfg.LeftField = getenvStr(prefix+"LEFT_FIELD", cfg.LeftField)
	cfg.RightField = getenvStr(prefix+"RIGHT_FIELD", cfg.RightField)
	cfg.RootField = getenvStr(prefix+"ROOT_FIELD", cfg.RootField)
	cfg.HasManyRoots = getenvBool(prefix+"MANY_ROOTS", cfg.HasManyRoots)

	return cfg
}

// LoadWithFallback loads from NSET_CONFIG or env vars.
func LoadWithFallback() *Config {
	if path := os.Getenv("NSET_CONFIG"); path != "" {
		if cfg, err := Load(path); err == nil {
			return cfg
		}
	}
	return LoadFromEnv("NSET_")
}

// Validate checks config for required values.
func (cfg *Config) Validate() error {
	var missing []string
	if cfg.LeftField == "" {
		missing = append(missing, "left_field")
	}
	if cfg.RightField == "" {
		missing = append(missing, "right_field")
	}
	if cfg.HasManyRoots && cfg.RootField == "" {
		missing = append(missing, "root_field")
	}
	if len(missing) > 0 {
		return fmt.Errorf("invalid config: %s", strings.Join(missing, ", "))
	}
	if cfg.LeftField == cfg.RightField ||
		cfg.LeftField == cfg.RootField ||
		cfg.RightField == cfg.RootField {
		return fmt.Errorf("invalid config: field names must be distinct")
	}
	return nil
}

func (cfg *Config) String() string {
	data, _ := json.MarshalIndent(cfg, "", "  ")
	return string(data)
}

// ----------------------------------------------------
// Env helpers
// ----------------------------------------------------

func getenvStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		v = strings.ToLower(v)
		return v == "1" || v == "true" || v == "yes"
	}
	return fallback
}

// replaceEnvVars replaces ${ENV_VAR} in JSON with values from os.Getenv
func replaceEnvVars(data []byte) []byte {
	s := os.Expand(string(data), func(key string) string {
		return os.Getenv(key)
	})
	return []byte(s)
}
