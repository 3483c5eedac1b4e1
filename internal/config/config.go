// Package config provides configuration for the bookkeeping application.
// Values come from environment variables (with .env support) overlaid by an
// optional yaml settings file.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
type Config struct {
	Store    StoreConfig    `yaml:"store"`
	Server   ServerConfig   `yaml:"server"`
	Matching MatchingConfig `yaml:"matching"`
	Debug    bool           `yaml:"debug"`
}

// StoreConfig locates the embedded record store.
type StoreConfig struct {
	Path string `yaml:"path"`
}

// ServerConfig configures the local HTTP surface.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// MatchingConfig tunes the match-suggestion engine.
type MatchingConfig struct {
	// ToleranceDays is the default maximum date gap for a candidate pair.
	ToleranceDays int `yaml:"toleranceDays"`
	// Keyword is the transfer-indicator word looked for in descriptions.
	Keyword string `yaml:"keyword"`
}

// Load builds the configuration from the environment. A .env file in the
// current directory is loaded when present; a custom path can be given. When
// ACC_SETTINGS points at a yaml file (or ./settings.yaml exists), its values
// override the environment.
func Load(envPath ...string) (*Config, error) {
	if len(envPath) > 0 && envPath[0] != "" {
		if err := godotenv.Load(envPath[0]); err != nil {
			return nil, fmt.Errorf("failed to load .env file: %w", err)
		}
	} else {
		// Ignore a missing .env; environment variables still apply.
		_ = godotenv.Load()
	}

	toleranceDays, err := parseIntEnv("ACC_MATCH_TOLERANCE_DAYS", 2)
	if err != nil {
		return nil, fmt.Errorf("invalid ACC_MATCH_TOLERANCE_DAYS: %w", err)
	}

	config := &Config{
		Store: StoreConfig{
			Path: getEnvOrDefault("ACC_STORE_PATH", "./data/ledger.db"),
		},
		Server: ServerConfig{
			Addr: getEnvOrDefault("ACC_LISTEN_ADDR", ":8080"),
		},
		Matching: MatchingConfig{
			ToleranceDays: toleranceDays,
			Keyword:       os.Getenv("ACC_MATCH_KEYWORD"),
		},
		Debug: os.Getenv("DEBUG") == "true",
	}

	settingsPath := os.Getenv("ACC_SETTINGS")
	if settingsPath == "" {
		if _, err := os.Stat("settings.yaml"); err == nil {
			settingsPath = "settings.yaml"
		}
	}
	if settingsPath != "" {
		if err := config.applySettings(settingsPath); err != nil {
			return nil, err
		}
	}

	return config, nil
}

// applySettings overlays values from a yaml settings file.
func (c *Config) applySettings(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read settings file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse settings file %s: %w", path, err)
	}
	return nil
}

// Validate checks that all required fields are set.
func (c *Config) Validate() error {
	var missing []string
	if c.Store.Path == "" {
		missing = append(missing, "store.path")
	}
	if c.Server.Addr == "" {
		missing = append(missing, "server.addr")
	}
	if c.Matching.ToleranceDays < 0 {
		return fmt.Errorf("matching.toleranceDays must not be negative")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %v\nPlease check your .env file or environment variables", missing)
	}
	return nil
}

// getEnvOrDefault returns the environment variable or a default when unset.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// parseIntEnv parses an integer environment variable with a default.
func parseIntEnv(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	return strconv.Atoi(value)
}
