// Package config loads the optional svgtint.yaml configuration file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Rewriter mode names accepted in configuration.
const (
	ModePattern    = "pattern"
	ModeStructural = "structural"
)

// Config represents the structure of svgtint.yaml.
type Config struct {
	// Mode selects the document rewriter: "pattern" (default, literal
	// text-pattern compatibility behavior) or "structural" (strict XML).
	Mode string `yaml:"mode" json:"mode"`

	// Listen is the HTTP server address for the serve command.
	Listen string `yaml:"listen" json:"listen"`

	// Redis is an optional host:port; when set, serve persists documents
	// in Redis instead of memory.
	Redis string `yaml:"redis" json:"redis"`

	// DataDir is an optional directory; when set, serve persists documents
	// as files. Ignored when Redis is set.
	DataDir string `yaml:"data_dir" json:"data_dir"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level" json:"log_level"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Mode:     ModePattern,
		Listen:   ":8080",
		LogLevel: "info",
	}
}

// Load reads the configuration file at path. A missing file is not an
// error: defaults are returned, so running without a config file works.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if cfg.Mode != ModePattern && cfg.Mode != ModeStructural {
		return cfg, fmt.Errorf("unknown rewriter mode %q (want %q or %q)", cfg.Mode, ModePattern, ModeStructural)
	}

	return cfg, nil
}
