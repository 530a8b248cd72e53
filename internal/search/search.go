// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package search filters post collections for listing views. It never
// touches storage; callers pass a snapshot from the repository.
package search

import (
	"strings"

	"github.com/olegiv/ocms-blog/internal/model"
)

// CategoryAll disables category filtering.
const CategoryAll = "all"

// Query selects posts by free text and category.
type Query struct {
	// SearchTerm is matched case-insensitively as a substring of the
	// title, the excerpt or any tag. Empty matches every post.
	SearchTerm string

	// CategoryID keeps posts having a category with this id.
	// CategoryAll or empty matches every post.
	CategoryID string
}

// Filter returns the published posts of posts that satisfy q, in input
// order. The input slice is not modified.
func Filter(posts []model.Post, q Query) []model.Post {
	term := strings.ToLower(q.SearchTerm)

	out := make([]model.Post, 0, len(posts))
	for i := range posts {
		p := &posts[i]
		if !p.IsPublished() {
			continue
		}
		if term != "" && !matchesTerm(p, term) {
			continue
		}
		if q.CategoryID != "" && q.CategoryID != CategoryAll && !p.HasCategory(q.CategoryID) {
			continue
		}
		out = append(out, *p)
	}
	return out
}

// matchesTerm reports whether the lower-cased term occurs in the title,
// the excerpt or a tag of p.
func matchesTerm(p *model.Post, term string) bool {
	if strings.Contains(strings.ToLower(p.Title), term) ||
		strings.Contains(strings.ToLower(p.Excerpt), term) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), term) {
			return true
		}
	}
	return false
}
