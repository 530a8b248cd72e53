// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package blog

import (
	"context"
	"fmt"
	"strconv"

	"github.com/olegiv/ocms-blog/internal/content"
	"github.com/olegiv/ocms-blog/internal/model"
	"github.com/olegiv/ocms-blog/internal/util"
)

// SlugPolicy selects how UniqueSlug handles a slug owned by another post.
type SlugPolicy string

const (
	// SlugReject returns ErrSlugTaken.
	SlugReject SlugPolicy = "reject"
	// SlugSuffix appends -2, -3, ... until the slug is free.
	SlugSuffix SlugPolicy = "suffix"
)

// fallbackSlug is used when a title yields no slug characters at all.
const fallbackSlug = "post"

// ParseSlugPolicy validates a policy name.
func ParseSlugPolicy(s string) (SlugPolicy, error) {
	switch p := SlugPolicy(s); p {
	case SlugReject, SlugSuffix:
		return p, nil
	case "":
		return SlugReject, nil
	}
	return "", fmt.Errorf("unknown slug policy %q (want %q or %q)", s, SlugReject, SlugSuffix)
}

// GenerateSlug derives a slug from a post title. See util.GenerateSlug.
func GenerateSlug(title string) string {
	return util.GenerateSlug(title)
}

// CalculateReadTime returns the estimated reading time of content in minutes.
func CalculateReadTime(text string) int {
	return content.CalculateReadTime(text)
}

// UniqueSlug checks base against the stored posts, ignoring the post with
// id ownerID. A free slug is returned unchanged. A taken slug is handled
// according to the repository's SlugPolicy.
func (r *Repository) UniqueSlug(ctx context.Context, base, ownerID string) (string, error) {
	if base == "" {
		base = fallbackSlug
	}

	posts, err := r.ListPosts(ctx)
	if err != nil {
		return "", err
	}

	taken := slugOwners(posts)
	if owner, ok := taken[base]; !ok || owner == ownerID {
		return base, nil
	}

	if r.policy != SlugSuffix {
		return "", fmt.Errorf("%w: %q", ErrSlugTaken, base)
	}

	for n := 2; ; n++ {
		candidate := base + "-" + strconv.Itoa(n)
		if owner, ok := taken[candidate]; !ok || owner == ownerID {
			return candidate, nil
		}
	}
}

// slugOwners maps each slug to the id of the first post that has it.
func slugOwners(posts []model.Post) map[string]string {
	owners := make(map[string]string, len(posts))
	for _, p := range posts {
		if _, seen := owners[p.Slug]; !seen {
			owners[p.Slug] = p.ID
		}
	}
	return owners
}
