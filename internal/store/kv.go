// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package store provides the key-value persistence layer used by the blog
// repository. Every backend stores whole serialized values under a key;
// there are no partial reads or writes.
package store

import "context"

// KV is the persistence contract. Implementations must be safe for
// concurrent use; a Set is treated as atomic and durable once it returns.
type KV interface {
	// Get returns the stored value for key.
	// Returns nil and ErrNotFound if the key has never been written.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Close releases any resources held by the store.
	Close() error
}

// Error represents an error type for store operations.
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	// ErrNotFound indicates the key is absent from the store.
	ErrNotFound Error = "key not found"

	// ErrClosed indicates the store has been closed.
	ErrClosed Error = "store closed"
)
