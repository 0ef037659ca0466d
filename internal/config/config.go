// Package config provides configuration loading for the simulation.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the default config file name.
const DefaultConfigFile = "society.yaml"

// Config holds runtime configuration (read-only after load).
type Config struct {
	// DBPath is the SQLite file the engine state persists to.
	DBPath string `yaml:"db_path,omitempty"`
	// Seed drives the content generator. 0 picks a time-based seed.
	Seed int64 `yaml:"seed,omitempty"`
	// APIPort serves the read-only snapshot API. 0 disables it.
	APIPort int `yaml:"api_port,omitempty"`
	// HoursPerTick is how many game-hours each real tick advances.
	HoursPerTick int `yaml:"hours_per_tick,omitempty"`
	// TickSeconds is the real-time interval between ticks.
	TickSeconds int `yaml:"tick_seconds,omitempty"`
	// StartWealth is the wealth balance of a fresh game.
	StartWealth int64 `yaml:"start_wealth,omitempty"`
	// InitialEvents is how many events a fresh game starts with.
	InitialEvents int `yaml:"initial_events,omitempty"`
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		DBPath:        "data/society.db",
		Seed:          0,
		APIPort:       8080,
		HoursPerTick:  1,
		TickSeconds:   1,
		StartWealth:   10000,
		InitialEvents: 5,
	}
}

// Load reads the config file at path, falling back to defaults for the
// whole file (when missing) and for any zero-valued field.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var loaded Config
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	cfg.merge(&loaded)
	return cfg, nil
}

func (c *Config) merge(o *Config) {
	if o.DBPath != "" {
		c.DBPath = o.DBPath
	}
	if o.Seed != 0 {
		c.Seed = o.Seed
	}
	if o.APIPort != 0 {
		c.APIPort = o.APIPort
	}
	if o.HoursPerTick != 0 {
		c.HoursPerTick = o.HoursPerTick
	}
	if o.TickSeconds != 0 {
		c.TickSeconds = o.TickSeconds
	}
	if o.StartWealth != 0 {
		c.StartWealth = o.StartWealth
	}
	if o.InitialEvents != 0 {
		c.InitialEvents = o.InitialEvents
	}
}
