package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Default upstream endpoints. Overridable from the config file for testing
// against local fakes.
const (
	DefaultTMDBBaseURL  = "https://api.themoviedb.org/3"
	DefaultImageBaseURL = "https://image.tmdb.org/t/p/original"
	DefaultJikanBaseURL = "https://api.jikan.moe/v4"
)

// Config represents the gateway configuration.
type Config struct {
	Server ServerConfig `yaml:"server"`
	TMDB   TMDBConfig   `yaml:"tmdb"`
	Jikan  JikanConfig  `yaml:"jikan"`
	App    AppConfig    `yaml:"app"`
}

// ServerConfig holds the inbound HTTP server settings.
type ServerConfig struct {
	Port int `yaml:"port"`
}

// TMDBConfig holds TMDB settings. AccessToken is the v4 read access
// token sent as a bearer Authorization header on every call.
type TMDBConfig struct {
	AccessToken  string `yaml:"access_token"`
	BaseURL      string `yaml:"base_url,omitempty"`
	ImageBaseURL string `yaml:"image_base_url,omitempty"`
}

// JikanConfig holds Jikan settings. Jikan requires no authentication.
type JikanConfig struct {
	BaseURL string `yaml:"base_url,omitempty"`
}

// AppConfig holds application-level settings.
type AppConfig struct {
	LogLevel string `yaml:"log_level"` // "debug", "info", "warn", "error"
}

// Load loads configuration from a YAML file with environment variable overrides.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// applyEnvOverrides overrides config values with environment variables.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("ANIMOVIE_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Server.Port = port
		}
	}
	if v := os.Getenv("ANIMOVIE_TMDB_ACCESS_TOKEN"); v != "" {
		c.TMDB.AccessToken = v
	}
	if v := os.Getenv("ANIMOVIE_TMDB_BASE_URL"); v != "" {
		c.TMDB.BaseURL = v
	}
	if v := os.Getenv("ANIMOVIE_TMDB_IMAGE_BASE_URL"); v != "" {
		c.TMDB.ImageBaseURL = v
	}
	if v := os.Getenv("ANIMOVIE_JIKAN_BASE_URL"); v != "" {
		c.Jikan.BaseURL = v
	}
	if v := os.Getenv("ANIMOVIE_LOG_LEVEL"); v != "" {
		c.App.LogLevel = v
	}
}

// Validate validates the configuration and fills in defaults.
func (c *Config) Validate() error {
	if c.TMDB.AccessToken == "" {
		return fmt.Errorf("tmdb.access_token is required")
	}

	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port)
	}

	if c.TMDB.BaseURL == "" {
		c.TMDB.BaseURL = DefaultTMDBBaseURL
	}
	if c.TMDB.ImageBaseURL == "" {
		c.TMDB.ImageBaseURL = DefaultImageBaseURL
	}
	if c.Jikan.BaseURL == "" {
		c.Jikan.BaseURL = DefaultJikanBaseURL
	}

	c.TMDB.BaseURL = strings.TrimRight(c.TMDB.BaseURL, "/")
	c.Jikan.BaseURL = strings.TrimRight(c.Jikan.BaseURL, "/")

	if c.App.LogLevel == "" {
		c.App.LogLevel = "info"
	}

	return nil
}
