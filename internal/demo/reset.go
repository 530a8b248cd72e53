// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package demo refreshes demo content on a fixed interval.
package demo

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/olegiv/ocms-blog/internal/logging"
)

const (
	// timestampFile is the name of the file storing the last reset time.
	timestampFile = ".last_reset"

	// DefaultInterval is how often the demo data should be refreshed.
	DefaultInterval = 24 * time.Hour
)

// Resetter erases and reseeds the content repository.
type Resetter interface {
	Reset(ctx context.Context) error
}

// ResetIfNeeded resets r when no reset has been recorded in dataDir within
// interval, then records the reset time. It reports whether a reset ran.
func ResetIfNeeded(ctx context.Context, r Resetter, dataDir string, interval time.Duration, now func() time.Time, logger *slog.Logger) (bool, error) {
	if now == nil {
		now = time.Now
	}
	if logger == nil {
		logger = slog.Default()
	}
	if interval <= 0 {
		interval = DefaultInterval
	}

	last, err := LastReset(dataDir)
	if err != nil {
		return false, err
	}

	if !last.IsZero() && now().Sub(last) < interval {
		logger.Info("demo reset not needed",
			"category", logging.CategorySeed,
			"last_reset", last.UTC().Format(time.RFC3339),
			"next_reset", last.Add(interval).UTC().Format(time.RFC3339),
		)
		return false, nil
	}

	logger.Info("demo reset overdue, resetting content", "category", logging.CategorySeed)
	if err := r.Reset(ctx); err != nil {
		return false, err
	}

	if err := writeTimestamp(dataDir, now()); err != nil {
		return true, fmt.Errorf("writing reset timestamp: %w", err)
	}
	return true, nil
}

// LastReset returns the recorded reset time, or the zero time if none is
// recorded or the record is unreadable.
func LastReset(dataDir string) (time.Time, error) {
	data, err := os.ReadFile(filepath.Join(dataDir, timestampFile))
	if err != nil {
		if os.IsNotExist(err) {
			return time.Time{}, nil
		}
		return time.Time{}, fmt.Errorf("reading reset timestamp: %w", err)
	}

	unixSec, err := strconv.ParseInt(strings.TrimSpace(string(data)), 10, 64)
	if err != nil {
		return time.Time{}, nil
	}
	return time.Unix(unixSec, 0).UTC(), nil
}

// writeTimestamp writes t as a UTC unix timestamp into dataDir.
func writeTimestamp(dataDir string, t time.Time) error {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return err
	}
	data := []byte(strconv.FormatInt(t.UTC().Unix(), 10))
	return os.WriteFile(filepath.Join(dataDir, timestampFile), data, 0o644)
}
