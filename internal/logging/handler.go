// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package logging builds the application's slog logger. Every record is
// tagged with a "category" attribute so log lines about posts, users,
// categories, storage, seeding and transfers can be filtered.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Log categories.
const (
	CategoryPost     = "post"
	CategoryUser     = "user"
	CategoryCategory = "category"
	CategoryStore    = "store"
	CategorySeed     = "seed"
	CategoryTransfer = "transfer"
	CategorySystem   = "system"
)

// Output formats accepted by New.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// CategoryHandler is a slog.Handler that wraps another handler and adds a
// category attribute to records that do not carry one.
type CategoryHandler struct {
	inner       slog.Handler
	hasCategory bool
}

// NewCategoryHandler wraps inner.
func NewCategoryHandler(inner slog.Handler) *CategoryHandler {
	return &CategoryHandler{inner: inner}
}

// Enabled implements slog.Handler.
func (h *CategoryHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

// Handle implements slog.Handler.
func (h *CategoryHandler) Handle(ctx context.Context, r slog.Record) error {
	if !h.hasCategory && !recordHasCategory(r) {
		r = r.Clone()
		r.AddAttrs(slog.String("category", InferCategory(r.Message)))
	}
	return h.inner.Handle(ctx, r)
}

// WithAttrs implements slog.Handler.
func (h *CategoryHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	has := h.hasCategory
	for _, a := range attrs {
		if a.Key == "category" {
			has = true
		}
	}
	return &CategoryHandler{inner: h.inner.WithAttrs(attrs), hasCategory: has}
}

// WithGroup implements slog.Handler.
func (h *CategoryHandler) WithGroup(name string) slog.Handler {
	return &CategoryHandler{inner: h.inner.WithGroup(name), hasCategory: h.hasCategory}
}

func recordHasCategory(r slog.Record) bool {
	found := false
	r.Attrs(func(a slog.Attr) bool {
		if a.Key == "category" {
			found = true
			return false
		}
		return true
	})
	return found
}

// InferCategory guesses a category from a log message.
func InferCategory(msg string) string {
	msg = strings.ToLower(msg)
	switch {
	case strings.Contains(msg, "seed"):
		return CategorySeed
	case strings.Contains(msg, "export") || strings.Contains(msg, "import") || strings.Contains(msg, "backup"):
		return CategoryTransfer
	case strings.Contains(msg, "post"):
		return CategoryPost
	case strings.Contains(msg, "user"):
		return CategoryUser
	case strings.Contains(msg, "categor"):
		return CategoryCategory
	case strings.Contains(msg, "store") || strings.Contains(msg, "redis") ||
		strings.Contains(msg, "database") || strings.Contains(msg, "cache"):
		return CategoryStore
	default:
		return CategorySystem
	}
}

// ParseLevel converts a level name (debug, info, warn, error) to a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
}

// New creates a logger writing to w in the given format at the given level.
func New(w io.Writer, level slog.Level, format string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}

	var inner slog.Handler
	if format == FormatJSON {
		inner = slog.NewJSONHandler(w, opts)
	} else {
		inner = slog.NewTextHandler(w, opts)
	}

	return slog.New(NewCategoryHandler(inner))
}
