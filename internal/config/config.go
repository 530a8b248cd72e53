// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package config loads blogctl settings from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/olegiv/ocms-blog/internal/blog"
	"github.com/olegiv/ocms-blog/internal/logging"
	"github.com/olegiv/ocms-blog/internal/scheduler"
	"github.com/olegiv/ocms-blog/internal/store"
)

// Config holds the application configuration loaded from environment variables.
type Config struct {
	Env       string `env:"BLOG_ENV" envDefault:"development"`
	LogLevel  string `env:"BLOG_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"BLOG_LOG_FORMAT" envDefault:"text"`

	// Storage
	Store     string `env:"BLOG_STORE" envDefault:"sqlite"`
	DBPath    string `env:"BLOG_DB_PATH" envDefault:"./data/blog.db"`
	MySQLDSN  string `env:"BLOG_MYSQL_DSN"`
	RedisURL  string `env:"BLOG_REDIS_URL"`
	KeyPrefix string `env:"BLOG_KEY_PREFIX"`
	CacheTTL  int    `env:"BLOG_CACHE_TTL" envDefault:"0"` // seconds; 0 disables the cache

	// Content
	SlugPolicy string `env:"BLOG_SLUG_POLICY" envDefault:"reject"`

	// Backups
	BackupDir      string `env:"BLOG_BACKUP_DIR" envDefault:"./backups"`
	BackupSchedule string `env:"BLOG_BACKUP_SCHEDULE" envDefault:"@daily"`
}

// IsDevelopment returns true if the application is running in development mode.
func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

// UseCache returns true if the read-through cache is enabled.
func (c Config) UseCache() bool {
	return c.CacheTTL > 0
}

// CacheDuration returns CacheTTL as a duration.
func (c Config) CacheDuration() time.Duration {
	return time.Duration(c.CacheTTL) * time.Second
}

// StoreOptions converts the storage settings for store.Open. Redis falls
// back to memory only in development.
func (c Config) StoreOptions() store.Options {
	return store.Options{
		Backend:          c.Store,
		DBPath:           c.DBPath,
		MySQLDSN:         c.MySQLDSN,
		RedisURL:         c.RedisURL,
		RedisPrefix:      c.KeyPrefix,
		FallbackToMemory: c.IsDevelopment(),
	}
}

// Load parses environment variables and returns a validated Config.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks enumerated values and backend requirements.
func (c Config) Validate() error {
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("BLOG_LOG_LEVEL: %w", err)
	}

	switch c.LogFormat {
	case logging.FormatText, logging.FormatJSON:
	default:
		return fmt.Errorf("BLOG_LOG_FORMAT must be %q or %q, got %q", logging.FormatText, logging.FormatJSON, c.LogFormat)
	}

	switch c.Store {
	case store.BackendMemory, store.BackendSQLite:
	case store.BackendMySQL:
		if c.MySQLDSN == "" {
			return fmt.Errorf("BLOG_MYSQL_DSN is required when BLOG_STORE=%s", store.BackendMySQL)
		}
	case store.BackendRedis:
		if c.RedisURL == "" {
			return fmt.Errorf("BLOG_REDIS_URL is required when BLOG_STORE=%s", store.BackendRedis)
		}
	default:
		return fmt.Errorf("BLOG_STORE must be one of memory, sqlite, mysql, redis; got %q", c.Store)
	}

	if c.CacheTTL < 0 {
		return fmt.Errorf("BLOG_CACHE_TTL must not be negative, got %d", c.CacheTTL)
	}

	if _, err := blog.ParseSlugPolicy(c.SlugPolicy); err != nil {
		return fmt.Errorf("BLOG_SLUG_POLICY: %w", err)
	}

	if err := scheduler.ValidateSchedule(c.BackupSchedule); err != nil {
		return fmt.Errorf("BLOG_BACKUP_SCHEDULE: %w", err)
	}

	return nil
}
