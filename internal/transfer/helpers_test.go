// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package transfer

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/olegiv/ocms-blog/internal/blog"
	"github.com/olegiv/ocms-blog/internal/store"
	"github.com/olegiv/ocms-blog/internal/testutil"
)

// testSetup contains common test dependencies.
type testSetup struct {
	Repo     *blog.Repository
	Exporter *Exporter
	Importer *Importer
	Ctx      context.Context
	Now      time.Time
}

// setupTest creates a repository on a memory store. When seed is true the
// sample data is written.
func setupTest(t *testing.T, seed bool) *testSetup {
	t.Helper()

	now := time.Date(2026, 5, 10, 9, 30, 0, 0, time.UTC)
	logger := testutil.TestLoggerSilent()
	repo := blog.New(store.NewMemoryStore(), blog.Options{
		Clock:  func() time.Time { return now },
		Logger: logger,
	})
	ctx := context.Background()

	if seed {
		_, err := repo.InitializeData(ctx)
		require.NoError(t, err)
	}

	exp := NewExporter(repo, logger)
	exp.now = func() time.Time { return now }

	return &testSetup{
		Repo:     repo,
		Exporter: exp,
		Importer: NewImporter(repo, logger),
		Ctx:      ctx,
		Now:      now,
	}
}
