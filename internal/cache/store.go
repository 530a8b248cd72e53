// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package cache provides a read-through, write-through TTL cache that
// decorates any store.KV backend.
package cache

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/olegiv/ocms-blog/internal/store"
)

// Stats holds cache statistics.
type Stats struct {
	Hits    int64   `json:"hits"`
	Misses  int64   `json:"misses"`
	Sets    int64   `json:"sets"`
	Items   int     `json:"items"`
	HitRate float64 `json:"hit_rate"`
	Size    int64   `json:"size"`
}

// Store serves Get from memory until an entry's TTL elapses and forwards
// every Set to the wrapped backend before updating the cached copy.
// It assumes it is the only writer of the backend.
type Store struct {
	backend store.KV
	ttl     time.Duration
	now     func() time.Time

	mu      sync.RWMutex
	entries map[string]entry

	hits   atomic.Int64
	misses atomic.Int64
	sets   atomic.Int64
}

type entry struct {
	value     []byte
	expiresAt time.Time
}

// NewStore wraps backend with a cache holding values for ttl.
// A non-positive ttl disables expiry.
func NewStore(backend store.KV, ttl time.Duration) *Store {
	return &Store{
		backend: backend,
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]entry),
	}
}

// Get returns the cached value for key, loading it from the backend on a
// miss. Backend errors, including store.ErrNotFound, are not cached.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	e, ok := s.entries[key]
	s.mu.RUnlock()

	if ok && !s.expired(e) {
		s.hits.Add(1)
		return clone(e.value), nil
	}

	s.misses.Add(1)
	value, err := s.backend.Get(ctx, key)
	if err != nil {
		if ok {
			s.Invalidate(key)
		}
		return nil, err
	}

	s.put(key, value)
	return value, nil
}

// Set writes value to the backend and, on success, refreshes the cache.
// A failed write drops any cached copy.
func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	if err := s.backend.Set(ctx, key, value); err != nil {
		s.Invalidate(key)
		return err
	}

	s.put(key, value)
	s.sets.Add(1)
	return nil
}

// Invalidate removes key from the cache without touching the backend.
func (s *Store) Invalidate(key string) {
	s.mu.Lock()
	delete(s.entries, key)
	s.mu.Unlock()
}

// Clear empties the cache.
func (s *Store) Clear() {
	s.mu.Lock()
	s.entries = make(map[string]entry)
	s.mu.Unlock()
}

// Stats returns current cache statistics.
func (s *Store) Stats() Stats {
	hits := s.hits.Load()
	misses := s.misses.Load()
	total := hits + misses

	var hitRate float64
	if total > 0 {
		hitRate = float64(hits) / float64(total) * 100
	}

	s.mu.RLock()
	items := len(s.entries)
	var size int64
	for _, e := range s.entries {
		size += int64(len(e.value))
	}
	s.mu.RUnlock()

	return Stats{
		Hits:    hits,
		Misses:  misses,
		Sets:    s.sets.Load(),
		Items:   items,
		HitRate: hitRate,
		Size:    size,
	}
}

// ResetStats resets the cache statistics.
func (s *Store) ResetStats() {
	s.hits.Store(0)
	s.misses.Store(0)
	s.sets.Store(0)
}

// Close clears the cache and closes the backend.
func (s *Store) Close() error {
	s.Clear()
	return s.backend.Close()
}

func (s *Store) put(key string, value []byte) {
	e := entry{value: clone(value)}
	if s.ttl > 0 {
		e.expiresAt = s.now().Add(s.ttl)
	}

	s.mu.Lock()
	s.entries[key] = e
	s.mu.Unlock()
}

func (s *Store) expired(e entry) bool {
	return !e.expiresAt.IsZero() && s.now().After(e.expiresAt)
}

func clone(b []byte) []byte {
	out := make([]byte, len(b))
	copy(out, b)
	return out
}

var _ store.KV = (*Store)(nil)
