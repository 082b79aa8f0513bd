package sched

import (
	"os"

	yaml "github.com/goccy/go-yaml"
)

// DefaultQuantum is the round-robin time slice used when none is configured.
const DefaultQuantum = 10

// Config mirrors config.yml
type Config struct {
	Quantum          int `yaml:"quantum"`            // RR time slice (10 by default)
	SampleIntervalMS int `yaml:"sample_interval_ms"` // pause between /proc rounds (100 by default)
	Port             int `yaml:"port"`               // serve-mode listen port (9095 by default)
}

// If the config file is not found, we use default values
func defaultConfig() Config {
	return Config{
		Quantum:          DefaultQuantum,
		SampleIntervalMS: 100,
		Port:             9095,
	}
}

// Load reads YAML and overrides defaults; empty path = defaults only
func Load(path string) Config {
	cfg := defaultConfig()

	if path == "" {
		return cfg
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg
	}

	_ = yaml.Unmarshal(data, &cfg)

	// sanity clamps
	if cfg.Quantum <= 0 {
		cfg.Quantum = DefaultQuantum
	}
	if cfg.SampleIntervalMS <= 0 {
		cfg.SampleIntervalMS = 100
	}
	if cfg.Port <= 0 {
		cfg.Port = 9095
	}

	return cfg
}
