// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// Backend names accepted by Open.
const (
	BackendMemory = "memory"
	BackendSQLite = "sqlite"
	BackendMySQL  = "mysql"
	BackendRedis  = "redis"
)

// Options selects and configures a KV backend.
type Options struct {
	// Backend is one of BackendMemory, BackendSQLite, BackendMySQL, BackendRedis.
	Backend string

	// DBPath is the SQLite file path (sqlite backend).
	DBPath string

	// MySQLDSN is the go-sql-driver DSN (mysql backend).
	MySQLDSN string

	// RedisURL is the Redis connection URL (redis backend).
	RedisURL string

	// RedisPrefix is prepended to Redis keys.
	RedisPrefix string

	// FallbackToMemory opens a memory store when the redis backend is unreachable.
	FallbackToMemory bool
}

// Info describes the backend that Open actually returned.
type Info struct {
	Backend    string
	IsFallback bool
}

// Open creates the KV backend described by opts.
func Open(opts Options, logger *slog.Logger) (KV, Info, error) {
	if logger == nil {
		logger = slog.Default()
	}

	switch opts.Backend {
	case BackendMemory:
		return NewMemoryStore(), Info{Backend: BackendMemory}, nil

	case BackendSQLite, "":
		if dir := filepath.Dir(opts.DBPath); dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, Info{}, fmt.Errorf("creating data directory: %w", err)
			}
		}
		s, err := OpenSQLite(opts.DBPath)
		if err != nil {
			return nil, Info{}, err
		}
		return s, Info{Backend: BackendSQLite}, nil

	case BackendMySQL:
		s, err := OpenMySQL(opts.MySQLDSN)
		if err != nil {
			return nil, Info{}, err
		}
		return s, Info{Backend: BackendMySQL}, nil

	case BackendRedis:
		ropts := DefaultRedisOptions()
		ropts.URL = opts.RedisURL
		ropts.Prefix = opts.RedisPrefix
		s, err := NewRedisStore(ropts)
		if err != nil {
			if !opts.FallbackToMemory {
				return nil, Info{}, fmt.Errorf("connecting to redis: %w", err)
			}
			logger.Warn("redis unavailable, falling back to memory store", "error", err)
			return NewMemoryStore(), Info{Backend: BackendMemory, IsFallback: true}, nil
		}
		return s, Info{Backend: BackendRedis}, nil
	}

	return nil, Info{}, fmt.Errorf("unknown store backend %q", opts.Backend)
}
