// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package blog

import (
	"context"
	"slices"

	"github.com/olegiv/ocms-blog/internal/logging"
	"github.com/olegiv/ocms-blog/internal/model"
	"github.com/olegiv/ocms-blog/internal/util"
)

// ListCategories returns every stored category in stored order.
func (r *Repository) ListCategories(ctx context.Context) ([]model.Category, error) {
	return load[model.Category](ctx, r.kv, r.keys.Categories)
}

// GetCategoryByID returns the category with the given id, or nil.
func (r *Repository) GetCategoryByID(ctx context.Context, id string) (*model.Category, error) {
	categories, err := r.ListCategories(ctx)
	if err != nil {
		return nil, err
	}

	i := slices.IndexFunc(categories, func(c model.Category) bool { return c.ID == id })
	if i < 0 {
		return nil, nil
	}
	return &categories[i], nil
}

// GetCategoryBySlug returns the first category with the given slug, or nil.
func (r *Repository) GetCategoryBySlug(ctx context.Context, slug string) (*model.Category, error) {
	categories, err := r.ListCategories(ctx)
	if err != nil {
		return nil, err
	}

	i := slices.IndexFunc(categories, func(c model.Category) bool { return c.Slug == slug })
	if i < 0 {
		return nil, nil
	}
	return &categories[i], nil
}

// SaveCategory creates or replaces a category, matched by ID. An empty
// slug is derived from the name. Posts keep the category snapshot they
// were saved with.
func (r *Repository) SaveCategory(ctx context.Context, category model.Category) (model.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	categories, err := r.ListCategories(ctx)
	if err != nil {
		return model.Category{}, err
	}

	if category.Slug == "" {
		category.Slug = util.Slugify(category.Name)
	}

	i := slices.IndexFunc(categories, func(c model.Category) bool { return c.ID == category.ID })
	if i >= 0 {
		categories[i] = category
	} else {
		categories = append(categories, category)
	}

	if err := persist(ctx, r.kv, r.keys.Categories, categories); err != nil {
		return model.Category{}, err
	}

	action := "category created"
	if i >= 0 {
		action = "category updated"
	}
	r.log(logging.CategoryCategory).Info(action, "id", category.ID, "slug", category.Slug)

	return category, nil
}
