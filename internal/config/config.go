// Yatra - Rule-Based Trip Planning for Tamil Nadu Tourism
// Copyright 2026 Kavin V. (kavinvel)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kavinvel/yatra

package config

import (
	"fmt"
	"strings"
	"time"
)

// Config holds all application configuration loaded from defaults, an optional
// YAML config file, and environment variables (highest priority).
//
// Configuration Categories:
//
//  1. Server: HTTP listener settings (port, host, timeouts)
//  2. Catalog: destination catalog source (bundled sample set or a JSON file)
//  3. Planner: itinerary engine tuning (cache, pacing, seed, transfers)
//  4. API: pagination and response limits
//  5. Security: rate limiting and CORS
//  6. Logging: log levels and output formats
//
// Thread Safety:
// Config is immutable after Load() and safe for concurrent read access.
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Catalog  CatalogConfig  `koanf:"catalog"`
	Planner  PlannerConfig  `koanf:"planner"`
	API      APIConfig      `koanf:"api"`
	Security SecurityConfig `koanf:"security"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// ServerConfig holds HTTP server settings.
//
// Environment Variables:
//   - HTTP_PORT: Listen port (default: 8640)
//   - HTTP_HOST: Bind address (default: 0.0.0.0)
//   - HTTP_TIMEOUT: Request read/write timeout (default: 30s)
//   - SHUTDOWN_TIMEOUT: Graceful shutdown deadline (default: 15s)
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	Timeout         time.Duration `koanf:"timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// Addr returns the host:port listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// CatalogConfig selects the destination catalog source. When UseSample is
// true the bundled Tamil Nadu catalog is loaded; otherwise Path must point
// to a JSON catalog file.
//
// Environment Variables:
//   - CATALOG_USE_SAMPLE: Load the bundled catalog (default: true)
//   - CATALOG_PATH: Path to a JSON catalog file
type CatalogConfig struct {
	UseSample bool   `koanf:"use_sample"`
	Path      string `koanf:"path"`
}

// PlannerConfig holds itinerary engine tuning. Zero values for PerDay and
// transfer settings mean "use the engine's built-in defaults".
//
// Environment Variables:
//   - PLANNER_CACHE_ENABLED: Enable the plan cache (default: true)
//   - PLANNER_CACHE_TTL: Cache entry lifetime (default: 5m)
//   - PLANNER_CACHE_MAX_ENTRIES: Cache size bound (default: 1000)
//   - PLANNER_SEED: Deterministic RNG seed, 0 = time-based
//   - PLANNER_RELAXED_PER_DAY / PLANNER_PACKED_PER_DAY: Pacing overrides
//   - PLANNER_FIXED_TRANSFER_MINUTES: Fixed transfer estimate, 0 = randomized
type PlannerConfig struct {
	CacheEnabled         bool          `koanf:"cache_enabled"`
	CacheTTL             time.Duration `koanf:"cache_ttl"`
	CacheMaxEntries      int           `koanf:"cache_max_entries"`
	Seed                 int64         `koanf:"seed"`
	RelaxedPerDay        int           `koanf:"relaxed_per_day"`
	PackedPerDay         int           `koanf:"packed_per_day"`
	FixedTransferMinutes int           `koanf:"fixed_transfer_minutes"`
}

// APIConfig holds pagination and response limits.
//
// Environment Variables:
//   - API_DEFAULT_PAGE_SIZE: Default recommendation count (default: 5)
//   - API_MAX_PAGE_SIZE: Hard cap on requested counts (default: 50)
type APIConfig struct {
	DefaultPageSize int `koanf:"default_page_size"`
	MaxPageSize     int `koanf:"max_page_size"`
}

// SecurityConfig holds rate limiting and CORS settings.
//
// Environment Variables:
//   - RATE_LIMIT_REQUESTS: Requests per window per client (default: 100)
//   - RATE_LIMIT_WINDOW: Window duration (default: 1m)
//   - DISABLE_RATE_LIMIT: Disable rate limiting entirely (default: false)
//   - CORS_ORIGINS: Comma-separated allowed origins (default: *)
type SecurityConfig struct {
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
}

// LoggingConfig holds log output settings.
//
// Environment Variables:
//   - LOG_LEVEL: trace|debug|info|warn|error (default: info)
//   - LOG_FORMAT: json|console (default: json)
//   - LOG_CALLER: Include caller file:line (default: false)
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// Validate checks that the loaded configuration is internally consistent.
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}
	if err := c.validateCatalog(); err != nil {
		return err
	}
	if err := c.validatePlanner(); err != nil {
		return err
	}
	if err := c.validateAPI(); err != nil {
		return err
	}
	if err := c.validateSecurity(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive, got %s", c.Server.Timeout)
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("SHUTDOWN_TIMEOUT must be positive, got %s", c.Server.ShutdownTimeout)
	}
	return nil
}

func (c *Config) validateCatalog() error {
	if !c.Catalog.UseSample && c.Catalog.Path == "" {
		return fmt.Errorf("CATALOG_PATH is required when CATALOG_USE_SAMPLE=false")
	}
	return nil
}

func (c *Config) validatePlanner() error {
	if c.Planner.CacheTTL <= 0 {
		return fmt.Errorf("PLANNER_CACHE_TTL must be positive, got %s", c.Planner.CacheTTL)
	}
	if c.Planner.CacheMaxEntries < 1 {
		return fmt.Errorf("PLANNER_CACHE_MAX_ENTRIES must be at least 1, got %d", c.Planner.CacheMaxEntries)
	}
	if c.Planner.RelaxedPerDay < 0 || c.Planner.PackedPerDay < 0 {
		return fmt.Errorf("planner per-day pacing overrides must not be negative")
	}
	if c.Planner.RelaxedPerDay > 0 && c.Planner.PackedPerDay > 0 &&
		c.Planner.PackedPerDay < c.Planner.RelaxedPerDay {
		return fmt.Errorf("PLANNER_PACKED_PER_DAY (%d) must be at least PLANNER_RELAXED_PER_DAY (%d)",
			c.Planner.PackedPerDay, c.Planner.RelaxedPerDay)
	}
	if c.Planner.FixedTransferMinutes < 0 {
		return fmt.Errorf("PLANNER_FIXED_TRANSFER_MINUTES must not be negative, got %d", c.Planner.FixedTransferMinutes)
	}
	return nil
}

func (c *Config) validateAPI() error {
	if c.API.DefaultPageSize < 1 {
		return fmt.Errorf("API_DEFAULT_PAGE_SIZE must be at least 1, got %d", c.API.DefaultPageSize)
	}
	if c.API.MaxPageSize < c.API.DefaultPageSize {
		return fmt.Errorf("API_MAX_PAGE_SIZE (%d) must be at least API_DEFAULT_PAGE_SIZE (%d)",
			c.API.MaxPageSize, c.API.DefaultPageSize)
	}
	return nil
}

func (c *Config) validateSecurity() error {
	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs < 1 {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be at least 1, got %d", c.Security.RateLimitReqs)
	}
	if c.Security.RateLimitWindow <= 0 {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be positive, got %s", c.Security.RateLimitWindow)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch strings.ToLower(c.Logging.Level) {
	case "trace", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("LOG_LEVEL must be one of trace|debug|info|warn|error, got %q", c.Logging.Level)
	}
	switch strings.ToLower(c.Logging.Format) {
	case "json", "console":
	default:
		return fmt.Errorf("LOG_FORMAT must be json or console, got %q", c.Logging.Format)
	}
	return nil
}
