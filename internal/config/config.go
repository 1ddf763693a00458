package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds per-project settings from slate.yaml. Every field has a
// working zero value, so a missing file means defaults.
type Config struct {
	// Verbose enables stage-by-stage progress output on stderr.
	Verbose bool `yaml:"verbose"`

	// Stage stops compilation after the named stage: "tokens", "ast",
	// "ir" or "code". Empty means compile and execute.
	Stage string `yaml:"stage"`

	// Color controls diagnostic coloring: "auto" (default), "always"
	// or "never".
	Color string `yaml:"color"`
}

// Default returns the settings used when no slate.yaml exists.
func Default() *Config {
	return &Config{Color: "auto"}
}

var validStages = map[string]bool{
	"": true, "tokens": true, "ast": true, "ir": true, "code": true,
}

// Load reads settings from path. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	if !validStages[cfg.Stage] {
		return nil, fmt.Errorf("%s: unknown stage %q", path, cfg.Stage)
	}
	switch cfg.Color {
	case "", "auto", "always", "never":
		if cfg.Color == "" {
			cfg.Color = "auto"
		}
	default:
		return nil, fmt.Errorf("%s: unknown color mode %q", path, cfg.Color)
	}

	return cfg, nil
}
