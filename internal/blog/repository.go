// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package blog implements the content repository: users, categories and
// posts persisted as three whole JSON collections in a store.KV.
//
// Every mutation reads the full collection, changes it in memory and writes
// the full collection back, so readers never observe a partially written
// collection. The Repository serializes its own writes; it must be the only
// writer of its keys.
package blog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/olegiv/ocms-blog/internal/store"
)

// Collection keys.
const (
	KeyPosts      = "blog_posts"
	KeyUsers      = "blog_users"
	KeyCategories = "blog_categories"
)

// Keys holds the storage key of each collection.
type Keys struct {
	Posts      string
	Users      string
	Categories string
}

// DefaultKeys returns the unprefixed collection keys.
func DefaultKeys() Keys {
	return PrefixedKeys("")
}

// PrefixedKeys returns the collection keys with prefix prepended.
func PrefixedKeys(prefix string) Keys {
	return Keys{
		Posts:      prefix + KeyPosts,
		Users:      prefix + KeyUsers,
		Categories: prefix + KeyCategories,
	}
}

// Options configures a Repository. The zero value is usable.
type Options struct {
	// KeyPrefix is prepended to the three collection keys.
	KeyPrefix string

	// SlugPolicy decides what UniqueSlug does on collision. Defaults to SlugReject.
	SlugPolicy SlugPolicy

	// Clock returns the current time. Defaults to time.Now.
	Clock func() time.Time

	// Logger receives info-level records for every mutation.
	Logger *slog.Logger
}

// Repository owns the users, categories and posts collections.
type Repository struct {
	kv     store.KV
	keys   Keys
	policy SlugPolicy
	now    func() time.Time
	logger *slog.Logger

	// mu serializes read-modify-write cycles.
	mu sync.Mutex
}

// New creates a Repository backed by kv.
func New(kv store.KV, opts Options) *Repository {
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.SlugPolicy == "" {
		opts.SlugPolicy = SlugReject
	}

	return &Repository{
		kv:     kv,
		keys:   PrefixedKeys(opts.KeyPrefix),
		policy: opts.SlugPolicy,
		now:    opts.Clock,
		logger: opts.Logger,
	}
}

// Keys returns the storage keys used by the repository.
func (r *Repository) Keys() Keys {
	return r.keys
}

// SlugPolicy returns the configured collision policy.
func (r *Repository) SlugPolicy() SlugPolicy {
	return r.policy
}

// timestamp returns the current time truncated to milliseconds in UTC,
// the precision kept by the persisted collections.
func (r *Repository) timestamp() time.Time {
	return r.now().UTC().Truncate(time.Millisecond)
}

// load reads and decodes one collection. A key that was never written is
// an empty collection.
func load[T any](ctx context.Context, kv store.KV, key string) ([]T, error) {
	data, err := kv.Get(ctx, key)
	if errors.Is(err, store.ErrNotFound) {
		return []T{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", key, err)
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", key, err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// persist encodes and writes a whole collection.
func persist[T any](ctx context.Context, kv store.KV, key string, items []T) error {
	if items == nil {
		items = []T{}
	}

	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}
	if err := kv.Set(ctx, key, data); err != nil {
		return fmt.Errorf("writing %s: %w", key, err)
	}
	return nil
}

func (r *Repository) log(category string) *slog.Logger {
	return r.logger.With("category", category)
}
