// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package cli

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"time"

	"github.com/joho/godotenv"

	"github.com/olegiv/ocms-blog/internal/blog"
	"github.com/olegiv/ocms-blog/internal/cache"
	"github.com/olegiv/ocms-blog/internal/config"
	"github.com/olegiv/ocms-blog/internal/logging"
	"github.com/olegiv/ocms-blog/internal/store"
)

// Deps carries everything a command needs. Fields left nil are built from
// the environment by Setup; tests inject Repo directly.
type Deps struct {
	// Flags
	EnvFile   string
	LogLevel  string
	LogFormat string

	Config *config.Config
	Logger *slog.Logger
	Repo   *blog.Repository
	Cache  *cache.Store
	Store  store.Info

	// Clock overrides time.Now for the repository and exporters.
	Clock func() time.Time

	closer io.Closer
}

// Setup loads configuration and opens the repository unless one was injected.
func (d *Deps) Setup(logOut io.Writer) error {
	if d.Repo != nil {
		if d.Logger == nil {
			d.Logger = logging.New(io.Discard, slog.LevelInfo, logging.FormatText)
		}
		if d.Config == nil {
			d.Config = &config.Config{BackupDir: "./backups", BackupSchedule: "@daily"}
		}
		return nil
	}

	if err := godotenv.Load(d.EnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading %s: %w", d.EnvFile, err)
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if d.LogLevel != "" {
		cfg.LogLevel = d.LogLevel
	}
	if d.LogFormat != "" {
		cfg.LogFormat = d.LogFormat
	}
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	d.Config = cfg
	d.Logger = logging.New(logOut, level, cfg.LogFormat)
	slog.SetDefault(d.Logger)

	kv, info, err := store.Open(cfg.StoreOptions(), d.Logger)
	if err != nil {
		return err
	}
	d.Store = info
	d.Logger.Debug("store opened", "backend", info.Backend, "fallback", info.IsFallback)

	if cfg.UseCache() {
		d.Cache = cache.NewStore(kv, cfg.CacheDuration())
		kv = d.Cache
	}
	d.closer = kv

	policy, err := blog.ParseSlugPolicy(cfg.SlugPolicy)
	if err != nil {
		_ = kv.Close()
		return err
	}

	d.Repo = blog.New(kv, blog.Options{
		KeyPrefix:  cfg.KeyPrefix,
		SlugPolicy: policy,
		Clock:      d.Clock,
		Logger:     d.Logger,
	})
	return nil
}

// Close releases the store opened by Setup.
func (d *Deps) Close() error {
	if d.closer == nil {
		return nil
	}
	if d.Cache != nil {
		st := d.Cache.Stats()
		d.Logger.Debug("cache stats", "hits", st.Hits, "misses", st.Misses, "hit_rate", st.HitRate)
	}
	err := d.closer.Close()
	d.closer = nil
	return err
}
