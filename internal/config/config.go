package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Server struct {
		Port        int `yaml:"port"`
		MetricsPort int `yaml:"metrics_port"`
	} `yaml:"server"`
	Database struct {
		Dialect string `yaml:"dialect"`
		Source  string `yaml:"source"`
	} `yaml:"database"`
	Auth struct {
		Enabled bool   `yaml:"enabled"`
		Secret  string `yaml:"secret"`
	} `yaml:"auth"`
	Suggestions struct {
		DaysThreshold int `yaml:"days_threshold"`
		MenuSize      int `yaml:"menu_size"`
	} `yaml:"suggestions"`
	OpenAIKey string `yaml:"openai_key"`
	LogLevel  string `yaml:"log_level"`
}

// Default returns the configuration used when no file is provided.
func Default() *Config {
	cfg := &Config{}
	cfg.Server.Port = 8080
	cfg.Server.MetricsPort = 9090
	cfg.Database.Dialect = "sqlite3"
	cfg.Database.Source = "smartkitchen.db"
	cfg.Suggestions.DaysThreshold = 7
	cfg.Suggestions.MenuSize = 10
	cfg.LogLevel = "info"
	return cfg
}

// Load reads a YAML configuration file and fills in defaults for any
// field the file leaves unset. The OPENAI_API_KEY environment variable
// overrides the file's openai_key.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		cfg.OpenAIKey = key
	}

	if cfg.Server.Port <= 0 {
		return nil, fmt.Errorf("invalid server port %d", cfg.Server.Port)
	}
	if cfg.Suggestions.DaysThreshold <= 0 {
		return nil, fmt.Errorf("invalid days threshold %d", cfg.Suggestions.DaysThreshold)
	}
	return cfg, nil
}
