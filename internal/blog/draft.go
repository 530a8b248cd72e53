// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package blog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/olegiv/ocms-blog/internal/content"
	"github.com/olegiv/ocms-blog/internal/model"
)

// PostInput is the editor-side form of a post. IDs reference stored users
// and categories; NewDraft resolves them into snapshots.
type PostInput struct {
	// ID selects the post to edit. Empty creates a new post.
	ID            string
	Title         string
	Content       string
	Excerpt       string
	AuthorID      string
	CategoryIDs   []string
	Tags          []string
	Published     bool
	FeaturedImage string
}

// ValidatePost checks the required fields of in. The returned error wraps
// ErrInvalidPost and joins one ValidationError per missing field.
func ValidatePost(in PostInput) error {
	var errs []error

	required := []struct {
		field, value string
	}{
		{"title", in.Title},
		{"content", in.Content},
		{"excerpt", in.Excerpt},
		{"author", in.AuthorID},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			errs = append(errs, &ValidationError{Field: f.field, Message: "is required"})
		}
	}

	return errors.Join(errs...)
}

// NormalizeTags trims and lower-cases tags, dropping empties and
// duplicates while keeping first-seen order.
func NormalizeTags(tags []string) []string {
	seen := make(map[string]bool, len(tags))
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}

// NewDraft builds a post from editor input, ready for SavePost.
//
// A missing excerpt is generated from the content before validation. The
// author and categories are copied from the stored collections; unknown
// ids fail with ErrUnknownAuthor or ErrUnknownCategory, except ids an
// edited post already carries, which keep their snapshot. A new post gets a
// fresh id and a slug from UniqueSlug; an existing post keeps its slug and
// CreatedAt. ReadTime is always recomputed from the content.
func (r *Repository) NewDraft(ctx context.Context, in PostInput) (model.Post, error) {
	if strings.TrimSpace(in.Excerpt) == "" {
		in.Excerpt = content.Excerpt(in.Content)
	}
	if err := ValidatePost(in); err != nil {
		return model.Post{}, err
	}

	var existing *model.Post
	if in.ID != "" {
		var err error
		if existing, err = r.GetPostByID(ctx, in.ID); err != nil {
			return model.Post{}, err
		}
	}

	author, err := r.GetUserByID(ctx, in.AuthorID)
	if err != nil {
		return model.Post{}, err
	}
	if author == nil && existing != nil && existing.Author.ID == in.AuthorID {
		author = &existing.Author
	}
	if author == nil {
		return model.Post{}, fmt.Errorf("%w: %q", ErrUnknownAuthor, in.AuthorID)
	}

	var kept []model.Category
	if existing != nil {
		kept = existing.Categories
	}
	categories, err := r.resolveCategories(ctx, in.CategoryIDs, kept)
	if err != nil {
		return model.Post{}, err
	}

	post := model.Post{
		ID:            in.ID,
		Title:         strings.TrimSpace(in.Title),
		Content:       in.Content,
		Excerpt:       strings.TrimSpace(in.Excerpt),
		Author:        *author,
		Categories:    categories,
		Tags:          NormalizeTags(in.Tags),
		Published:     in.Published,
		FeaturedImage: in.FeaturedImage,
		ReadTime:      content.CalculateReadTime(in.Content),
	}

	if existing != nil {
		post.Slug = existing.Slug
		post.CreatedAt = existing.CreatedAt
		return post, nil
	}

	if post.ID == "" {
		post.ID = uuid.NewString()
	}
	if post.Slug, err = r.UniqueSlug(ctx, GenerateSlug(post.Title), post.ID); err != nil {
		return model.Post{}, err
	}
	return post, nil
}

// resolveCategories copies the stored categories named by ids, in the
// order given, skipping repeated ids. An id missing from the collection
// falls back to the matching snapshot in kept.
func (r *Repository) resolveCategories(ctx context.Context, ids []string, kept []model.Category) ([]model.Category, error) {
	stored, err := r.ListCategories(ctx)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]model.Category, len(stored)+len(kept))
	for _, c := range kept {
		byID[c.ID] = c
	}
	for _, c := range stored {
		byID[c.ID] = c
	}

	seen := make(map[string]bool, len(ids))
	out := make([]model.Category, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		c, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, id)
		}
		seen[id] = true
		out = append(out, c)
	}
	return out, nil
}
