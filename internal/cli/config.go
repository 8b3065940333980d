// Package cli holds the configuration and wiring shared by the ageis
// commands.
package cli

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the ageis.yaml file. Every field has a working default, so
// the commands run without any config file at all.
type Config struct {
	LogLevel string `yaml:"log_level"`

	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`

	Redis struct {
		Address  string `yaml:"address"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
		// TTL is a Go duration string, e.g. "5m".
		TTL string `yaml:"ttl"`
	} `yaml:"redis"`

	Records struct {
		File string `yaml:"file"`
	} `yaml:"records"`

	Documents struct {
		Dir string `yaml:"dir"`
	} `yaml:"documents"`

	Gemini struct {
		APIKey string `yaml:"api_key"`
		Model  string `yaml:"model"`
	} `yaml:"gemini"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	var cfg Config
	cfg.LogLevel = "info"
	cfg.Server.Port = 8080
	return cfg
}

// LoadConfig reads a YAML config file, falling back to defaults when path
// is empty. The GEMINI_API_KEY environment variable overrides the file.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config: %w", err)
		}
	}

	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		cfg.Gemini.APIKey = key
	}
	return cfg, nil
}
