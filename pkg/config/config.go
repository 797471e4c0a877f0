// Package config loads YAML configuration of the quote feed service
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"
	"gopkg.in/yaml.v3"

	"github.com/umputun/passiondaily/pkg/domain"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server ServerConfig `yaml:"server" json:"server" jsonschema:"description=HTTP server configuration"`
	Local  LocalConfig  `yaml:"local" json:"local" jsonschema:"description=Local cache database"`
	Remote RemoteConfig `yaml:"remote" json:"remote" jsonschema:"description=Remote feed source and favorites mirror"`
	Feed   FeedConfig   `yaml:"feed" json:"feed" jsonschema:"description=Feed engine settings"`
	Store  StoreConfig  `yaml:"store" json:"store" jsonschema:"description=Document store served by this instance"`
}

// ServerConfig defines the HTTP server
type ServerConfig struct {
	Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
	Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
	BaseURL string        `yaml:"base_url" json:"base_url" jsonschema:"default=http://localhost:8080,description=Base URL for deep links and RSS"`
}

// LocalConfig defines the local cache database
type LocalConfig struct {
	DSN             string        `yaml:"dsn" json:"dsn" jsonschema:"default=file:passiondaily.db?cache=shared&mode=rwc,description=Database connection string"`
	MaxOpenConns    int           `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
	MaxIdleConns    int           `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=1h,description=Connection maximum lifetime"`
}

// RemoteConfig defines access to the remote document store
type RemoteConfig struct {
	URL       string        `yaml:"url" json:"url" jsonschema:"description=Document store API endpoint, defaults to the local store when it is enabled"`
	Timeout   time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=10s,description=Per request timeout"`
	RateLimit float64       `yaml:"rate_limit" json:"rate_limit" jsonschema:"default=0,minimum=0,description=Requests per second, 0 is unlimited"`
	Burst     int           `yaml:"burst" json:"burst" jsonschema:"default=5,description=Rate limiter burst"`
}

// FeedConfig defines the feed engine behavior
type FeedConfig struct {
	PageSize        int           `yaml:"page_size" json:"page_size" jsonschema:"default=10,minimum=1,description=Quotes per page"`
	LoadTimeout     time.Duration `yaml:"load_timeout" json:"load_timeout" jsonschema:"default=10s,description=Timeout of a single page load"`
	InitialRetries  int           `yaml:"initial_retries" json:"initial_retries" jsonschema:"default=3,minimum=0,description=Retries of the first page of a category"`
	DailyTimeout    time.Duration `yaml:"daily_timeout" json:"daily_timeout" jsonschema:"default=5s,description=Timeout of quote of the day lookup"`
	MirrorRetries   int           `yaml:"mirror_retries" json:"mirror_retries" jsonschema:"default=3,minimum=1,description=Attempts to mirror a favorite change"`
	MirrorTimeout   time.Duration `yaml:"mirror_timeout" json:"mirror_timeout" jsonschema:"default=10s,description=Timeout of the whole mirror operation"`
	ShareTimeout    time.Duration `yaml:"share_timeout" json:"share_timeout" jsonschema:"default=10s,description=Timeout of share counter update"`
	DefaultCategory string        `yaml:"default_category" json:"default_category" jsonschema:"description=Category opened on start"`
	UserID          string        `yaml:"user_id" json:"user_id" jsonschema:"description=User id, generated and kept in the local database if empty"`
}

// StoreConfig defines the document store and its quote imports
type StoreConfig struct {
	Enabled        bool           `yaml:"enabled" json:"enabled" jsonschema:"default=false,description=Serve document store API"`
	DSN            string         `yaml:"dsn" json:"dsn" jsonschema:"description=Document store database, the local database is used if empty"`
	Imports        []ImportConfig `yaml:"imports" json:"imports" jsonschema:"description=Quote feeds imported into categories"`
	ImportInterval time.Duration  `yaml:"import_interval" json:"import_interval" jsonschema:"default=6h,description=How often to re-import feeds"`
	DailyInterval  time.Duration  `yaml:"daily_interval" json:"daily_interval" jsonschema:"default=10m,description=How often to check quote of the day rotation"`
	MaxWorkers     int            `yaml:"max_workers" json:"max_workers" jsonschema:"default=3,description=Maximum concurrent imports"`
	UserAgent      string         `yaml:"user_agent" json:"user_agent" jsonschema:"default=PassionDaily/1.0,description=User agent for feed requests"`
}

// ImportConfig is a single quote feed
type ImportConfig struct {
	URL      string `yaml:"url" json:"url" jsonschema:"required,description=RSS or Atom feed URL"`
	Category string `yaml:"category" json:"category" jsonschema:"required,description=Category key the quotes go to"`
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

	cfg.setDefaults()

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// schema check is supplementary, report and go on
	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		lgr.Printf("[WARN] schema validation failed: %v", err)
	}

	return &cfg, nil
}

func (c *Config) setDefaults() {
	if c.Server.Listen == "" {
		c.Server.Listen = ":8080"
	}
	if c.Server.Timeout == 0 {
		c.Server.Timeout = 30 * time.Second
	}
	if c.Server.BaseURL == "" {
		c.Server.BaseURL = "http://localhost:8080"
	}
	c.Server.BaseURL = strings.TrimRight(c.Server.BaseURL, "/")

	if c.Local.DSN == "" {
		c.Local.DSN = "file:passiondaily.db?cache=shared&mode=rwc&_txlock=immediate"
	}
	if c.Local.MaxOpenConns == 0 {
		c.Local.MaxOpenConns = 10
	}
	if c.Local.MaxIdleConns == 0 {
		c.Local.MaxIdleConns = 5
	}
	if c.Local.ConnMaxLifetime == 0 {
		c.Local.ConnMaxLifetime = time.Hour
	}

	if c.Remote.URL == "" && c.Store.Enabled {
		c.Remote.URL = c.Server.BaseURL + "/api/v1/store"
	}
	if c.Remote.Timeout == 0 {
		c.Remote.Timeout = 10 * time.Second
	}
	if c.Remote.Burst == 0 {
		c.Remote.Burst = 5
	}

	if c.Feed.PageSize == 0 {
		c.Feed.PageSize = 10
	}
	if c.Feed.LoadTimeout == 0 {
		c.Feed.LoadTimeout = 10 * time.Second
	}
	if c.Feed.InitialRetries == 0 {
		c.Feed.InitialRetries = 3
	}
	if c.Feed.DailyTimeout == 0 {
		c.Feed.DailyTimeout = 5 * time.Second
	}
	if c.Feed.MirrorRetries == 0 {
		c.Feed.MirrorRetries = 3
	}
	if c.Feed.MirrorTimeout == 0 {
		c.Feed.MirrorTimeout = 10 * time.Second
	}
	if c.Feed.ShareTimeout == 0 {
		c.Feed.ShareTimeout = 10 * time.Second
	}

	if c.Store.ImportInterval == 0 {
		c.Store.ImportInterval = 6 * time.Hour
	}
	if c.Store.DailyInterval == 0 {
		c.Store.DailyInterval = 10 * time.Minute
	}
	if c.Store.MaxWorkers == 0 {
		c.Store.MaxWorkers = 3
	}
	if c.Store.UserAgent == "" {
		c.Store.UserAgent = "PassionDaily/1.0"
	}
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	if cfg.Server.Timeout < time.Second {
		return errors.New("server timeout must be at least 1 second")
	}
	if cfg.Remote.URL == "" {
		return errors.New("remote.url is required unless store is enabled")
	}
	if !strings.HasPrefix(cfg.Remote.URL, "http://") && !strings.HasPrefix(cfg.Remote.URL, "https://") {
		return fmt.Errorf("remote.url must be http or https, got %q", cfg.Remote.URL)
	}
	if cfg.Remote.RateLimit < 0 {
		return errors.New("remote.rate_limit must be non-negative")
	}

	if cfg.Feed.PageSize < 1 {
		return errors.New("feed.page_size must be at least 1")
	}
	if cfg.Feed.InitialRetries < 0 {
		return errors.New("feed.initial_retries must be non-negative")
	}
	if cfg.Feed.MirrorRetries < 1 {
		return errors.New("feed.mirror_retries must be at least 1")
	}
	for name, d := range map[string]time.Duration{"load_timeout": cfg.Feed.LoadTimeout,
		"daily_timeout": cfg.Feed.DailyTimeout, "mirror_timeout": cfg.Feed.MirrorTimeout, "share_timeout": cfg.Feed.ShareTimeout} {
		if d < 0 {
			return fmt.Errorf("feed.%s must be positive", name)
		}
	}
	if cfg.Feed.DefaultCategory != "" {
		if _, err := domain.ParseCategory(cfg.Feed.DefaultCategory); err != nil {
			return fmt.Errorf("feed.default_category: %w", err)
		}
	}

	for i, imp := range cfg.Store.Imports {
		if imp.URL == "" {
			return fmt.Errorf("store.imports[%d].url is required", i)
		}
		if _, err := domain.ParseCategory(imp.Category); err != nil {
			return fmt.Errorf("store.imports[%d].category: %w", i, err)
		}
	}
	return nil
}

// ImportSources returns configured imports with resolved categories, invalid entries are skipped
func (c *Config) ImportSources() []ImportSource {
	res := make([]ImportSource, 0, len(c.Store.Imports))
	for _, imp := range c.Store.Imports {
		cat, err := domain.ParseCategory(imp.Category)
		if err != nil {
			continue
		}
		res = append(res, ImportSource{URL: imp.URL, Category: cat})
	}
	return res
}

// ImportSource is an import with resolved category
type ImportSource struct {
	URL      string
	Category domain.Category
}

// StoreDSN returns the document store database, the local one unless set
func (c *Config) StoreDSN() string {
	if c.Store.DSN != "" {
		return c.Store.DSN
	}
	return c.Local.DSN
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}

// GetBaseURL returns base URL of the service, without trailing slash
func (c *Config) GetBaseURL() string {
	return c.Server.BaseURL
}
