// Package config handles reading and writing .navalha/config.yaml.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is the top-level structure for .navalha/config.yaml.
type Config struct {
	Version int          `yaml:"version"`
	Server  ServerConfig `yaml:"server"`
}

// ServerConfig points the client at the barbershop API.
type ServerConfig struct {
	BaseURL        string `yaml:"base_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

const configDir = ".navalha"
const configFile = "config.yaml"

// ReadConfig reads .navalha/config.yaml from the given directory.
// Returns an error if the file is not found or the YAML is malformed.
func ReadConfig(dir string) (*Config, error) {
	path := filepath.Join(dir, configDir, configFile)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return &cfg, nil
}

// WriteConfig writes cfg to .navalha/config.yaml in the given directory.
// Creates the .navalha/ directory if it does not exist.
func WriteConfig(dir string, cfg *Config) error {
	dirPath := filepath.Join(dir, configDir)
	if err := os.MkdirAll(dirPath, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}

	path := filepath.Join(dirPath, configFile)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// DefaultConfig returns a Config populated with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Server: ServerConfig{
			BaseURL:        "http://localhost:5000",
			TimeoutSeconds: 10,
		},
	}
}

// ApplyEnv loads a .env file if present and overlays NAVALHA_* variables
// onto cfg. Environment always wins over the file on disk.
func ApplyEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("NAVALHA_SERVER_URL"); v != "" {
		cfg.Server.BaseURL = v
	}
	if v := os.Getenv("NAVALHA_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Server.TimeoutSeconds = n
		}
	}
}

// Load resolves the effective configuration: file if present, defaults
// otherwise, then environment overrides.
func Load(dir string) *Config {
	cfg, err := ReadConfig(dir)
	if err != nil {
		cfg = DefaultConfig()
	}
	ApplyEnv(cfg)
	return cfg
}
