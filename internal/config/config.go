package config

import (
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Points     int       `yaml:"points"`     // number of random points inserted
	Dimensions int       `yaml:"dimensions"` // K
	Min        int       `yaml:"min"`        // inclusive coordinate lower bound
	Max        int       `yaml:"max"`        // inclusive coordinate upper bound
	Queries    int       `yaml:"queries"`    // random Find/Nearest checks
	Seed       int64     `yaml:"seed"`       // 0 picks a time based seed
	Dump       bool      `yaml:"dump"`
	Log        LogConfig `yaml:"log"`
}

type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text or json
}

func defaults() *Config {
	return &Config{
		Points:     20,
		Dimensions: 2,
		Min:        1,
		Max:        20,
		Queries:    20,
		Dump:       true,
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

func Load(configPath string) (*Config, error) {
	cfg := defaults()

	if configPath == "" {
		for _, p := range []string{"configs/kdtree.yaml", "kdtree.yaml"} {
			data, err := os.ReadFile(p)
			if err == nil {
				if err := yaml.Unmarshal(data, cfg); err != nil {
					return cfg, err
				}
				applyDefaults(cfg)
				return cfg, nil
			}
		}
		applyDefaults(cfg)
		return cfg, nil // no file found: use defaults
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return cfg, err
	}

	applyDefaults(cfg)
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Points < 0 {
		cfg.Points = 20
	}
	if cfg.Dimensions <= 0 {
		cfg.Dimensions = 2
	}
	if cfg.Queries < 0 {
		cfg.Queries = 20
	}
	if cfg.Min > cfg.Max {
		cfg.Min, cfg.Max = cfg.Max, cfg.Min
	}
	switch strings.ToLower(cfg.Log.Format) {
	case "text", "json":
		cfg.Log.Format = strings.ToLower(cfg.Log.Format)
	default:
		cfg.Log.Format = "text"
	}
	if _, err := parseLevel(cfg.Log.Level); err != nil {
		cfg.Log.Level = "info"
	}
}

// SlogLevel returns the configured log level.
func (c *Config) SlogLevel() slog.Level {
	lvl, err := parseLevel(c.Log.Level)
	if err != nil {
		return slog.LevelInfo
	}
	return lvl
}

func parseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	err := lvl.UnmarshalText([]byte(s))
	return lvl, err
}
