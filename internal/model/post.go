// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import (
	"slices"
	"time"
)

// Post represents a blog post. Author and Categories are snapshots copied at
// save time, not references to the stored user and category records.
type Post struct {
	ID            string     `json:"id" yaml:"id"`
	Title         string     `json:"title" yaml:"title"`
	Content       string     `json:"content" yaml:"content"`
	Excerpt       string     `json:"excerpt" yaml:"excerpt"`
	Author        User       `json:"author" yaml:"author"`
	Categories    []Category `json:"categories" yaml:"categories"`
	Tags          []string   `json:"tags" yaml:"tags"`
	CreatedAt     time.Time  `json:"createdAt" yaml:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt" yaml:"updatedAt"`
	Published     bool       `json:"published" yaml:"published"`
	Slug          string     `json:"slug" yaml:"slug"`
	FeaturedImage string     `json:"featuredImage,omitempty" yaml:"featuredImage,omitempty"`
	ReadTime      int        `json:"readTime" yaml:"readTime"`
}

// IsPublished returns true if the post is visible in public listings.
func (p *Post) IsPublished() bool {
	return p.Published
}

// HasCategory reports whether one of the post's categories has the given id.
func (p *Post) HasCategory(id string) bool {
	for _, c := range p.Categories {
		if c.ID == id {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the post so that callers can mutate the
// result without touching the original's slices.
func (p Post) Clone() Post {
	p.Categories = slices.Clone(p.Categories)
	p.Tags = slices.Clone(p.Tags)
	return p
}

// CategoryIDs returns the ids of the post's categories in order.
func (p *Post) CategoryIDs() []string {
	ids := make([]string, 0, len(p.Categories))
	for _, c := range p.Categories {
		ids = append(ids, c.ID)
	}
	return ids
}
