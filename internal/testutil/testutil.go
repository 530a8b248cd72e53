// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package testutil provides shared test helpers for the blog packages.
package testutil

import (
	"context"
	"database/sql"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/olegiv/ocms-blog/internal/store"

	_ "github.com/mattn/go-sqlite3"
)

// TestLogger creates a silent test logger that only outputs warnings and errors.
func TestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))
}

// TestLoggerSilent creates a completely silent test logger (error level only).
func TestLoggerSilent() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
}

// TestKV opens a migrated SQLite key-value store in a temporary directory.
// It is closed when the test finishes.
func TestKV(t *testing.T) *store.SQLStore {
	t.Helper()

	kv, err := store.OpenSQLite(filepath.Join(t.TempDir(), "blog-test.db"))
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	t.Cleanup(func() { _ = kv.Close() })
	return kv
}

// TestMemoryDB creates a migrated in-memory SQLite database using the cgo
// driver. The pool is limited to one connection so every query sees the
// same in-memory database.
func TestMemoryDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	db.SetMaxOpenConns(1)

	if err := store.Migrate(db, store.DialectSQLite); err != nil {
		_ = db.Close()
		t.Fatalf("Migrate: %v", err)
	}

	t.Cleanup(func() { _ = db.Close() })
	return db
}

// Clock is a manually advanced time source.
type Clock struct {
	mu  sync.Mutex
	now time.Time
}

// NewClock returns a clock fixed at start.
func NewClock(start time.Time) *Clock {
	return &Clock{now: start}
}

// Now returns the current fake time.
func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d.
func (c *Clock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

// FailingKV wraps a store and returns Err from the operations selected by
// FailGet and FailSet.
type FailingKV struct {
	store.KV
	Err     error
	FailGet bool
	FailSet bool
}

// Get implements store.KV.
func (f *FailingKV) Get(ctx context.Context, key string) ([]byte, error) {
	if f.FailGet {
		return nil, f.Err
	}
	return f.KV.Get(ctx, key)
}

// Set implements store.KV.
func (f *FailingKV) Set(ctx context.Context, key string, value []byte) error {
	if f.FailSet {
		return f.Err
	}
	return f.KV.Set(ctx, key, value)
}
