// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package transfer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"

	"github.com/olegiv/ocms-blog/internal/blog"
	"github.com/olegiv/ocms-blog/internal/logging"
	"github.com/olegiv/ocms-blog/internal/model"
)

// Importer handles importing blog collections.
type Importer struct {
	repo   *blog.Repository
	logger *slog.Logger
}

// NewImporter creates a new Importer instance.
func NewImporter(repo *blog.Repository, logger *slog.Logger) *Importer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Importer{repo: repo, logger: logger}
}

// Import merges data into the stored collections.
//
// Entities are matched by id. A match is kept or replaced according to
// opts.ConflictStrategy; everything else is appended. Imported entities
// keep their own timestamps. A post whose slug belongs to a different post
// is rejected and reported in the result's errors. The merged collections
// are written in one pass, users and categories before posts, unless
// opts.DryRun is set.
func (i *Importer) Import(ctx context.Context, data *ExportData, opts ImportOptions) (*ImportResult, error) {
	result := NewImportResult(opts.DryRun)

	if data.Version != ExportVersion {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedVersion, data.Version)
	}
	if opts.ConflictStrategy == "" {
		opts.ConflictStrategy = ConflictSkip
	}

	if errs := i.Validate(data); len(errs) > 0 {
		for _, e := range errs {
			result.AddError(e.Entity, e.ID, e.Message)
		}
		return result, errors.New("validation failed")
	}

	snap, err := i.repo.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading collections: %w", err)
	}

	snap.Users = merge(snap.Users, data.Users, func(u model.User) string { return u.ID },
		EntityUser, opts.ConflictStrategy, result)
	snap.Categories = merge(snap.Categories, data.Categories, func(c model.Category) string { return c.ID },
		EntityCategory, opts.ConflictStrategy, result)
	snap.Posts = i.mergePosts(snap.Posts, data.Posts, opts.ConflictStrategy, result)

	if opts.DryRun {
		return result, nil
	}

	if err := i.repo.Restore(ctx, snap); err != nil {
		return nil, fmt.Errorf("writing collections: %w", err)
	}

	i.logger.Info("import finished",
		"category", logging.CategoryTransfer,
		"created", result.TotalCreated(),
		"updated", result.TotalUpdated(),
		"skipped", result.TotalSkipped(),
		"errors", len(result.Errors))

	return result, nil
}

// ImportFromReader decodes r in the given format and imports it.
func (i *Importer) ImportFromReader(ctx context.Context, r io.Reader, format Format, opts ImportOptions) (*ImportResult, error) {
	data, err := Decode(r, format)
	if err != nil {
		return nil, err
	}
	return i.Import(ctx, data, opts)
}

// ImportFromFile imports a JSON or YAML file, chosen by extension.
func (i *Importer) ImportFromFile(ctx context.Context, path string, opts ImportOptions) (*ImportResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return i.ImportFromReader(ctx, f, FormatFromPath(path), opts)
}

// Validate checks that every entity has an id, that ids are not repeated
// within a collection and that every post has a slug.
func (i *Importer) Validate(data *ExportData) []ImportError {
	var errs []ImportError

	check := func(entity string, ids []string) {
		seen := make(map[string]bool, len(ids))
		for n, id := range ids {
			switch {
			case id == "":
				errs = append(errs, ImportError{Entity: entity, ID: fmt.Sprintf("#%d", n), Message: "missing id"})
			case seen[id]:
				errs = append(errs, ImportError{Entity: entity, ID: id, Message: "duplicate id"})
			}
			seen[id] = true
		}
	}

	userIDs := make([]string, 0, len(data.Users))
	for _, u := range data.Users {
		userIDs = append(userIDs, u.ID)
	}
	check(EntityUser, userIDs)

	categoryIDs := make([]string, 0, len(data.Categories))
	for _, c := range data.Categories {
		categoryIDs = append(categoryIDs, c.ID)
	}
	check(EntityCategory, categoryIDs)

	postIDs := make([]string, 0, len(data.Posts))
	for _, p := range data.Posts {
		postIDs = append(postIDs, p.ID)
		if p.Slug == "" {
			errs = append(errs, ImportError{Entity: EntityPost, ID: p.ID, Message: "missing slug"})
		}
	}
	check(EntityPost, postIDs)

	return errs
}

// merge applies incoming onto stored by id.
func merge[T any](stored, incoming []T, id func(T) string, entity string, strategy ConflictStrategy, result *ImportResult) []T {
	for _, item := range incoming {
		idx := slices.IndexFunc(stored, func(s T) bool { return id(s) == id(item) })
		switch {
		case idx < 0:
			stored = append(stored, item)
			result.IncrementCreated(entity)
		case strategy == ConflictOverwrite:
			stored[idx] = item
			result.IncrementUpdated(entity)
		default:
			result.IncrementSkipped(entity)
		}
	}
	return stored
}

// mergePosts is merge with a slug ownership check.
func (i *Importer) mergePosts(stored, incoming []model.Post, strategy ConflictStrategy, result *ImportResult) []model.Post {
	owners := make(map[string]string, len(stored)+len(incoming))
	for _, p := range stored {
		if _, ok := owners[p.Slug]; !ok {
			owners[p.Slug] = p.ID
		}
	}

	for _, post := range incoming {
		idx := slices.IndexFunc(stored, func(s model.Post) bool { return s.ID == post.ID })
		if idx >= 0 && strategy != ConflictOverwrite {
			result.IncrementSkipped(EntityPost)
			continue
		}

		if owner, ok := owners[post.Slug]; ok && owner != post.ID {
			result.AddError(EntityPost, post.ID, fmt.Sprintf("slug %q already used by post %s", post.Slug, owner))
			i.logger.Warn("import rejected post", "category", logging.CategoryTransfer, "id", post.ID, "slug", post.Slug)
			continue
		}

		if idx >= 0 {
			if owners[stored[idx].Slug] == post.ID {
				delete(owners, stored[idx].Slug)
			}
			stored[idx] = post
			result.IncrementUpdated(EntityPost)
		} else {
			stored = append(stored, post)
			result.IncrementCreated(EntityPost)
		}
		owners[post.Slug] = post.ID
	}
	return stored
}
