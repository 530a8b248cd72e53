// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package scheduler runs periodic backup exports of the blog collections.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/olegiv/ocms-blog/internal/logging"
	"github.com/olegiv/ocms-blog/internal/transfer"
	"github.com/olegiv/ocms-blog/internal/util"
)

// backupTimeout bounds a single backup run.
const backupTimeout = 5 * time.Minute

// FileExporter writes an export to a file.
type FileExporter interface {
	ExportToFile(ctx context.Context, path string, format transfer.Format) error
}

// Scheduler writes an export snapshot into a directory on a cron schedule.
type Scheduler struct {
	cron     *cron.Cron
	exporter FileExporter
	dir      string
	schedule string
	logger   *slog.Logger
	now      func() time.Time
}

// New creates a scheduler that backs up into dir on the given cron spec.
func New(exporter FileExporter, dir, schedule string, logger *slog.Logger) *Scheduler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Scheduler{
		cron:     cron.New(),
		exporter: exporter,
		dir:      dir,
		schedule: schedule,
		logger:   logger.With("category", logging.CategoryTransfer),
		now:      time.Now,
	}
}

// ValidateSchedule checks a standard five-field cron spec or a descriptor
// such as "@daily" or "@every 1h".
func ValidateSchedule(spec string) error {
	if _, err := cron.ParseStandard(spec); err != nil {
		return fmt.Errorf("invalid backup schedule %q: %w", spec, err)
	}
	return nil
}

// Start registers the backup job and starts the cron runner.
func (s *Scheduler) Start() error {
	if err := ValidateSchedule(s.schedule); err != nil {
		return err
	}

	_, err := s.cron.AddFunc(s.schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), backupTimeout)
		defer cancel()

		if _, err := s.RunBackup(ctx); err != nil {
			s.logger.Error("scheduled backup failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	s.logger.Info("backup scheduler started", "schedule", s.schedule, "dir", s.dir)
	return nil
}

// Stop waits for a running backup to finish and stops the scheduler.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("backup scheduler stopped")
}

// NextRun returns the time of the next scheduled backup, or the zero time
// if the scheduler is not running.
func (s *Scheduler) NextRun() time.Time {
	entries := s.cron.Entries()
	if len(entries) == 0 {
		return time.Time{}
	}
	return entries[0].Next
}

// RunBackup writes one JSON export named blog-<timestamp>.json and returns
// its path.
func (s *Scheduler) RunBackup(ctx context.Context) (string, error) {
	name := "blog-" + s.now().UTC().Format("20060102-150405") + ".json"
	path, err := util.JoinWithin(s.dir, name)
	if err != nil {
		return "", err
	}

	if err := s.exporter.ExportToFile(ctx, path, transfer.FormatJSON); err != nil {
		return "", fmt.Errorf("writing backup: %w", err)
	}

	s.logger.Info("backup written", "path", path)
	return path, nil
}
