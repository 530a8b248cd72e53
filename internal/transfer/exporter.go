// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package transfer

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/olegiv/ocms-blog/internal/blog"
	"github.com/olegiv/ocms-blog/internal/logging"
)

// Exporter handles exporting the blog collections.
type Exporter struct {
	repo   *blog.Repository
	logger *slog.Logger
	now    func() time.Time
}

// NewExporter creates a new Exporter instance.
func NewExporter(repo *blog.Repository, logger *slog.Logger) *Exporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Exporter{repo: repo, logger: logger, now: time.Now}
}

// Export reads all three collections into an envelope.
func (e *Exporter) Export(ctx context.Context) (*ExportData, error) {
	snap, err := e.repo.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading collections: %w", err)
	}

	return &ExportData{
		Version:    ExportVersion,
		ExportedAt: e.now().UTC().Truncate(time.Second),
		Users:      snap.Users,
		Categories: snap.Categories,
		Posts:      snap.Posts,
	}, nil
}

// ExportToWriter exports and encodes to w.
func (e *Exporter) ExportToWriter(ctx context.Context, w io.Writer, format Format) error {
	data, err := e.Export(ctx)
	if err != nil {
		return err
	}
	return Encode(w, data, format)
}

// ExportToFile exports into path, creating parent directories. The file is
// written to a temporary name first and renamed into place.
func (e *Exporter) ExportToFile(ctx context.Context, path string, format Format) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating export directory: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".export-*")
	if err != nil {
		return fmt.Errorf("creating export file: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if err := e.ExportToWriter(ctx, tmp, format); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing export file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("moving export file into place: %w", err)
	}

	e.logger.Info("export written", "category", logging.CategoryTransfer, "path", path, "format", format)
	return nil
}
