// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package blog

import (
	"context"
	"fmt"
	"slices"

	"github.com/olegiv/ocms-blog/internal/logging"
	"github.com/olegiv/ocms-blog/internal/model"
)

// ListPosts returns every stored post, published or not, in stored order.
func (r *Repository) ListPosts(ctx context.Context) ([]model.Post, error) {
	return load[model.Post](ctx, r.kv, r.keys.Posts)
}

// GetPostByID returns the post with the given id, or nil if there is none.
func (r *Repository) GetPostByID(ctx context.Context, id string) (*model.Post, error) {
	posts, err := r.ListPosts(ctx)
	if err != nil {
		return nil, err
	}

	i := slices.IndexFunc(posts, func(p model.Post) bool { return p.ID == id })
	if i < 0 {
		return nil, nil
	}
	return &posts[i], nil
}

// GetPostBySlug returns the first post with the given slug, or nil.
func (r *Repository) GetPostBySlug(ctx context.Context, slug string) (*model.Post, error) {
	posts, err := r.ListPosts(ctx)
	if err != nil {
		return nil, err
	}

	i := slices.IndexFunc(posts, func(p model.Post) bool { return p.Slug == slug })
	if i < 0 {
		return nil, nil
	}
	return &posts[i], nil
}

// SavePost creates or updates a post, matched by ID.
//
// On update the stored entry is replaced in place, keeping its ID and
// CreatedAt; UpdatedAt is set to now. On create both timestamps are set to
// now and the post is appended. Slug and ReadTime are stored as given,
// except that a slug already owned by a different post is refused with
// ErrSlugTaken. The saved post is returned.
func (r *Repository) SavePost(ctx context.Context, post model.Post) (model.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	posts, err := r.ListPosts(ctx)
	if err != nil {
		return model.Post{}, err
	}

	if owner, ok := slugOwners(posts)[post.Slug]; ok && owner != post.ID {
		return model.Post{}, fmt.Errorf("%w: %q", ErrSlugTaken, post.Slug)
	}

	saved := post.Clone()
	now := r.timestamp()

	i := slices.IndexFunc(posts, func(p model.Post) bool { return p.ID == post.ID })
	if i >= 0 {
		saved.CreatedAt = posts[i].CreatedAt
		saved.UpdatedAt = now
		posts[i] = saved
	} else {
		saved.CreatedAt = now
		saved.UpdatedAt = now
		posts = append(posts, saved)
	}

	if err := persist(ctx, r.kv, r.keys.Posts, posts); err != nil {
		return model.Post{}, err
	}

	action := "post created"
	if i >= 0 {
		action = "post updated"
	}
	r.log(logging.CategoryPost).Info(action, "id", saved.ID, "slug", saved.Slug, "published", saved.Published)

	return saved.Clone(), nil
}

// DeletePost removes the post with the given id. Deleting an unknown id is
// not an error; the collection is still rewritten unchanged.
func (r *Repository) DeletePost(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	posts, err := r.ListPosts(ctx)
	if err != nil {
		return err
	}

	before := len(posts)
	posts = slices.DeleteFunc(posts, func(p model.Post) bool { return p.ID == id })

	if err := persist(ctx, r.kv, r.keys.Posts, posts); err != nil {
		return err
	}

	if len(posts) < before {
		r.log(logging.CategoryPost).Info("post deleted", "id", id)
	}
	return nil
}
