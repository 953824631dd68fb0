// Package config persists w3net CLI configuration as JSON under the config
// directory (default ~/.w3net).
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
)

const (
	defaultAlgorithm = "fastest"
	defaultTimeout   = 15 // seconds
	defaultInterval  = 5  // seconds

	configFile = "config.json"
)

// Config holds all w3net configuration.
type Config struct {
	// Endpoints are the candidate JSON-RPC URLs, in failover order.
	Endpoints []string `json:"endpoints"`
	// DefaultEndpoint, when set, skips endpoint selection entirely.
	DefaultEndpoint string `json:"default_endpoint,omitempty"`
	// Algorithm is the endpoint selection algorithm:
	// "fastest" | "round-robin" | "failover".
	Algorithm string `json:"algorithm"`
	// TimeoutSeconds bounds each RPC request.
	TimeoutSeconds int `json:"timeout_seconds"`
	// WatchInterval is the refresh period of the watch command, in seconds.
	WatchInterval int `json:"watch_interval"`

	configDir string
}

// Load reads config from dir (or creates defaults). dir defaults to ~/.w3net.
func Load(dir string) (*Config, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("could not determine home dir: %w", err)
		}
		dir = filepath.Join(home, ".w3net")
	}

	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("could not create config dir: %w", err)
	}

	cfg := defaults(dir)

	path := filepath.Join(dir, configFile)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	cfg.configDir = dir
	return cfg, nil
}

// Save writes the config to disk.
func (c *Config) Save() error {
	if err := os.MkdirAll(c.configDir, 0o700); err != nil {
		return err
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(c.configDir, configFile), data, 0o600)
}

// AddEndpoint appends a JSON-RPC URL to the candidate list.
func (c *Config) AddEndpoint(url string) error {
	if slices.Contains(c.Endpoints, url) {
		return fmt.Errorf("endpoint %s already configured", url)
	}
	c.Endpoints = append(c.Endpoints, url)
	return nil
}

// RemoveEndpoint removes a JSON-RPC URL from the candidate list.
func (c *Config) RemoveEndpoint(url string) error {
	idx := slices.Index(c.Endpoints, url)
	if idx == -1 {
		return fmt.Errorf("endpoint %s not found", url)
	}
	c.Endpoints = slices.Delete(c.Endpoints, idx, idx+1)
	if c.DefaultEndpoint == url {
		c.DefaultEndpoint = ""
	}
	return nil
}

// Dir returns the config directory.
func (c *Config) Dir() string {
	return c.configDir
}

func defaults(dir string) *Config {
	return &Config{
		Algorithm:      defaultAlgorithm,
		TimeoutSeconds: defaultTimeout,
		WatchInterval:  defaultInterval,
		configDir:      dir,
	}
}
