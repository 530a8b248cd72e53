// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync/atomic"
	"time"
)

// SQLStore implements KV on top of the kv_store table created by Migrate.
type SQLStore struct {
	db      *sql.DB
	dialect Dialect
	ownsDB  bool
	closed  atomic.Bool
	now     func() time.Time
}

// NewSQLStore wraps an already migrated database handle. The caller keeps
// ownership of db; Close does not close it.
func NewSQLStore(db *sql.DB, dialect Dialect) *SQLStore {
	return &SQLStore{db: db, dialect: dialect, now: time.Now}
}

// OpenSQLite opens (creating if needed) a SQLite file, migrates it and
// returns a store that owns the connection.
func OpenSQLite(path string) (*SQLStore, error) {
	db, err := NewDB(path)
	if err != nil {
		return nil, err
	}
	if err := Migrate(db, DialectSQLite); err != nil {
		_ = db.Close()
		return nil, err
	}
	s := NewSQLStore(db, DialectSQLite)
	s.ownsDB = true
	return s, nil
}

// OpenMySQL connects to MySQL, migrates it and returns a store that owns
// the connection.
func OpenMySQL(dsn string) (*SQLStore, error) {
	db, err := NewMySQLDB(dsn)
	if err != nil {
		return nil, err
	}
	if err := Migrate(db, DialectMySQL); err != nil {
		_ = db.Close()
		return nil, err
	}
	s := NewSQLStore(db, DialectMySQL)
	s.ownsDB = true
	return s, nil
}

// Get retrieves the value stored under key.
func (s *SQLStore) Get(ctx context.Context, key string) ([]byte, error) {
	if s.closed.Load() {
		return nil, ErrClosed
	}

	var value string
	err := s.db.QueryRowContext(ctx,
		"SELECT store_value FROM kv_store WHERE store_key = ?", key,
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("reading key %q: %w", key, err)
	}

	return []byte(value), nil
}

// Set inserts or replaces the value stored under key.
func (s *SQLStore) Set(ctx context.Context, key string, value []byte) error {
	if s.closed.Load() {
		return ErrClosed
	}

	if _, err := s.db.ExecContext(ctx, s.upsertQuery(), key, string(value), s.now().UTC()); err != nil {
		return fmt.Errorf("writing key %q: %w", key, err)
	}
	return nil
}

func (s *SQLStore) upsertQuery() string {
	if s.dialect == DialectMySQL {
		return `INSERT INTO kv_store (store_key, store_value, updated_at) VALUES (?, ?, ?)
			ON DUPLICATE KEY UPDATE store_value = VALUES(store_value), updated_at = VALUES(updated_at)`
	}
	return `INSERT INTO kv_store (store_key, store_value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(store_key) DO UPDATE SET store_value = excluded.store_value, updated_at = excluded.updated_at`
}

// DB returns the underlying database handle.
func (s *SQLStore) DB() *sql.DB {
	return s.db
}

// Close closes the database if the store opened it.
func (s *SQLStore) Close() error {
	if !s.closed.CompareAndSwap(false, true) {
		return nil
	}
	if s.ownsDB {
		return s.db.Close()
	}
	return nil
}

var _ KV = (*SQLStore)(nil)
