// Package config loads the server configuration from YAML with environment
// overrides for secrets and addresses.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultPath is where the CLI looks for a config file when none is given.
const DefaultPath = "groupform.yaml"

// Config holds all groupform settings.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Redis      RedisConfig      `yaml:"redis"`
	Grouping   GroupingConfig   `yaml:"grouping"`
	Commentary CommentaryConfig `yaml:"commentary"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// RedisConfig configures the session roster store.
type RedisConfig struct {
	Enabled  bool          `yaml:"enabled"` // false keeps rosters in process memory
	Addr     string        `yaml:"addr"`
	Password string        `yaml:"password"`
	DB       int           `yaml:"db"`
	TTL      time.Duration `yaml:"ttl"` // How long an uploaded roster stays available
}

// GroupingConfig holds grouping defaults.
type GroupingConfig struct {
	// DefaultSize is the group size used when a request does not specify one.
	// It decides the number of groups, see grouping.Partition.
	DefaultSize int `yaml:"default_size"`
}

// CommentaryConfig configures the text-generation service.
type CommentaryConfig struct {
	Provider string        `yaml:"provider"` // openai, gemini, none
	APIKey   string        `yaml:"api_key"`
	Model    string        `yaml:"model"`    // Empty picks the provider default
	BaseURL  string        `yaml:"base_url"` // Empty uses the provider's public endpoint
	Timeout  time.Duration `yaml:"timeout"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr: ":8080",
		},
		Redis: RedisConfig{
			Enabled: false,
			Addr:    "127.0.0.1:6379",
			DB:      0,
			TTL:     time.Hour,
		},
		Grouping: GroupingConfig{
			DefaultSize: 4,
		},
		Commentary: CommentaryConfig{
			Provider: "openai",
			Timeout:  120 * time.Second,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from a YAML file. A missing file yields defaults.
// Environment overrides are applied in both cases.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	case os.IsNotExist(err):
	default:
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values that would otherwise fail later at request time.
func (c *Config) Validate() error {
	if c.Grouping.DefaultSize <= 0 {
		return fmt.Errorf("grouping.default_size must be positive, got %d", c.Grouping.DefaultSize)
	}
	switch c.Commentary.Provider {
	case "", "none", "openai", "gemini":
	default:
		return fmt.Errorf("unknown commentary provider %q", c.Commentary.Provider)
	}
	if c.Redis.Enabled && c.Redis.TTL <= 0 {
		return fmt.Errorf("redis.ttl must be positive when redis is enabled")
	}
	return nil
}

func (c *Config) applyEnvOverrides() {
	switch c.Commentary.Provider {
	case "openai":
		if key := os.Getenv("OPENAI_API_KEY"); key != "" {
			c.Commentary.APIKey = key
		}
	case "gemini":
		if key := os.Getenv("GEMINI_API_KEY"); key != "" {
			c.Commentary.APIKey = key
		}
	}
	if key := os.Getenv("GROUPFORM_COMMENTARY_API_KEY"); key != "" {
		c.Commentary.APIKey = key
	}

	if addr := os.Getenv("GROUPFORM_ADDR"); addr != "" {
		c.Server.Addr = addr
	}
	if addr := os.Getenv("GROUPFORM_REDIS_ADDR"); addr != "" {
		c.Redis.Addr = addr
		c.Redis.Enabled = true
	}
}
