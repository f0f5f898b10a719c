package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/robfig/cron/v3"
	"gopkg.in/yaml.v3"

	"github.com/spacenexus/nexusfeed/pkg/domain"
	"github.com/spacenexus/nexusfeed/pkg/registry"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server struct {
		Listen  string        `yaml:"listen" json:"listen" jsonschema:"required,default=:8080,description=HTTP server listen address"`
		Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server read/write timeout"`
	} `yaml:"server" json:"server" jsonschema:"description=Admin API server configuration"`

	Database struct {
		DSN             string `yaml:"dsn" json:"dsn" jsonschema:"required,default=file:nexusfeed.db?cache=shared&mode=rwc,description=SQLite connection string"`
		MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
		MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
		ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
	} `yaml:"database" json:"database" jsonschema:"description=Database configuration"`

	Fetch FetchConfig `yaml:"fetch" json:"fetch" jsonschema:"description=Feed fetching configuration"`

	Sources []registry.Entry `yaml:"sources" json:"sources,omitempty" jsonschema:"description=Source registry, the built-in list is used if empty"`
}

// FetchConfig holds feed fetching and normalization settings
type FetchConfig struct {
	Timeout       time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=15s,description=Per-feed fetch timeout"`
	UserAgent     string        `yaml:"user_agent" json:"user_agent" jsonschema:"description=User-Agent sent to feed publishers"`
	MaxItems      int           `yaml:"max_items" json:"max_items" jsonschema:"default=20,minimum=1,description=Entries taken from each feed per run"`
	MaxWorkers    int           `yaml:"max_workers" json:"max_workers" jsonschema:"default=1,minimum=1,description=Sources fetched in parallel"`
	ExcerptLength int           `yaml:"excerpt_length" json:"excerpt_length" jsonschema:"default=300,minimum=10,description=Maximum excerpt length in characters"`
	Schedule      string        `yaml:"schedule" json:"schedule,omitempty" jsonschema:"description=Cron expression for periodic fetch passes in server mode, e.g. 0 */6 * * *"`
}

// Default returns configuration with all defaults applied
func Default() *Config {
	cfg := &Config{}
	setDefaults(cfg)
	return cfg
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	setDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// schema check is supplementary, validate above is authoritative
	if err := VerifyAgainstSchema(&cfg); err != nil {
		lgr.Printf("[WARN] schema validation failed: %v", err)
	}

	return &cfg, nil
}

func setDefaults(cfg *Config) {
	// server
	if cfg.Server.Listen == "" {
		cfg.Server.Listen = ":8080"
	}
	if cfg.Server.Timeout == 0 {
		cfg.Server.Timeout = 30 * time.Second
	}

	// database
	if cfg.Database.DSN == "" {
		cfg.Database.DSN = "file:nexusfeed.db?cache=shared&mode=rwc&_txlock=immediate"
	}
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 10
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 5
	}
	if cfg.Database.ConnMaxLifetime == 0 {
		cfg.Database.ConnMaxLifetime = 3600
	}

	// fetch
	if cfg.Fetch.Timeout == 0 {
		cfg.Fetch.Timeout = 15 * time.Second
	}
	if cfg.Fetch.UserAgent == "" {
		cfg.Fetch.UserAgent = "SpaceNexus-BlogFetcher/1.0 (+https://spacenexus.us)"
	}
	if cfg.Fetch.MaxItems == 0 {
		cfg.Fetch.MaxItems = 20
	}
	if cfg.Fetch.MaxWorkers == 0 {
		cfg.Fetch.MaxWorkers = 1
	}
	if cfg.Fetch.ExcerptLength == 0 {
		cfg.Fetch.ExcerptLength = 300
	}
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}

	if cfg.Fetch.Timeout < time.Second {
		return fmt.Errorf("fetch timeout must be at least 1 second")
	}
	if cfg.Fetch.MaxItems < 1 {
		return fmt.Errorf("fetch.max_items must be at least 1")
	}
	if cfg.Fetch.MaxWorkers < 1 {
		return fmt.Errorf("fetch.max_workers must be at least 1")
	}
	if cfg.Fetch.ExcerptLength < 10 {
		return fmt.Errorf("fetch.excerpt_length must be at least 10")
	}
	if cfg.Fetch.Schedule != "" {
		if _, err := cron.ParseStandard(cfg.Fetch.Schedule); err != nil {
			return fmt.Errorf("invalid fetch.schedule %q: %w", cfg.Fetch.Schedule, err)
		}
	}

	if len(cfg.Sources) > 0 {
		if _, err := registry.FromEntries(cfg.Sources); err != nil {
			return fmt.Errorf("invalid sources: %w", err)
		}
	}

	return nil
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}

// GetSources returns the configured source registry, or the built-in one if none configured
func (c *Config) GetSources() ([]domain.Source, error) {
	if len(c.Sources) == 0 {
		return registry.Default()
	}
	return registry.FromEntries(c.Sources)
}

// GetFetchConfig returns feed fetching configuration
func (c *Config) GetFetchConfig() FetchConfig {
	return c.Fetch
}
