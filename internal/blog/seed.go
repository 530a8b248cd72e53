// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package blog

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/olegiv/ocms-blog/internal/content"
	"github.com/olegiv/ocms-blog/internal/logging"
	"github.com/olegiv/ocms-blog/internal/model"
)

// InitializeData writes the sample users, categories and posts when the
// posts collection is empty. Users and categories are written before posts.
// It reports whether seeding happened; later calls are no-ops.
func (r *Repository) InitializeData(ctx context.Context) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.initializeLocked(ctx)
}

func (r *Repository) initializeLocked(ctx context.Context) (bool, error) {
	posts, err := r.ListPosts(ctx)
	if err != nil {
		return false, err
	}
	if len(posts) > 0 {
		r.log(logging.CategorySeed).Debug("seed skipped, posts present", "posts", len(posts))
		return false, nil
	}

	users, categories, seeded := seedData(r.timestamp())

	if err := persist(ctx, r.kv, r.keys.Users, users); err != nil {
		return false, err
	}
	if err := persist(ctx, r.kv, r.keys.Categories, categories); err != nil {
		return false, err
	}
	if err := persist(ctx, r.kv, r.keys.Posts, seeded); err != nil {
		return false, err
	}

	r.log(logging.CategorySeed).Info("seed data written",
		"users", len(users), "categories", len(categories), "posts", len(seeded))
	return true, nil
}

// Reset empties all three collections and seeds them again.
func (r *Repository) Reset(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := persist(ctx, r.kv, r.keys.Posts, []model.Post{}); err != nil {
		return err
	}
	if err := persist(ctx, r.kv, r.keys.Users, []model.User{}); err != nil {
		return err
	}
	if err := persist(ctx, r.kv, r.keys.Categories, []model.Category{}); err != nil {
		return err
	}

	r.log(logging.CategorySeed).Info("collections reset")

	_, err := r.initializeLocked(ctx)
	return err
}

// Snapshot is a full copy of the three collections.
type Snapshot struct {
	Users      []model.User
	Categories []model.Category
	Posts      []model.Post
}

// Snapshot reads all three collections.
func (r *Repository) Snapshot(ctx context.Context) (Snapshot, error) {
	users, err := r.ListUsers(ctx)
	if err != nil {
		return Snapshot{}, err
	}
	categories, err := r.ListCategories(ctx)
	if err != nil {
		return Snapshot{}, err
	}
	posts, err := r.ListPosts(ctx)
	if err != nil {
		return Snapshot{}, err
	}
	return Snapshot{Users: users, Categories: categories, Posts: posts}, nil
}

// Restore overwrites all three collections with s, timestamps included.
// Users and categories are written before posts.
func (r *Repository) Restore(ctx context.Context, s Snapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := persist(ctx, r.kv, r.keys.Users, s.Users); err != nil {
		return err
	}
	if err := persist(ctx, r.kv, r.keys.Categories, s.Categories); err != nil {
		return err
	}
	if err := persist(ctx, r.kv, r.keys.Posts, s.Posts); err != nil {
		return err
	}

	r.log(logging.CategoryTransfer).Info("collections restored",
		"users", len(s.Users), "categories", len(s.Categories), "posts", len(s.Posts))
	return nil
}

const day = 24 * time.Hour

// seedData builds the sample collections relative to now.
func seedData(now time.Time) ([]model.User, []model.Category, []model.Post) {
	john := model.User{
		ID:        uuid.NewString(),
		Name:      "John Doe",
		Email:     "john@example.com",
		Avatar:    "https://api.dicebear.com/7.x/avataaars/svg?seed=john",
		Bio:       "Tech entrepreneur and blogger",
		Role:      model.RoleAdmin,
		CreatedAt: now,
	}
	jane := model.User{
		ID:        uuid.NewString(),
		Name:      "Jane Smith",
		Email:     "jane@example.com",
		Avatar:    "https://api.dicebear.com/7.x/avataaars/svg?seed=jane",
		Bio:       "Product designer and writer",
		Role:      model.RoleAuthor,
		CreatedAt: now,
	}

	technology := model.Category{
		ID:          uuid.NewString(),
		Name:        "Technology",
		Slug:        "technology",
		Description: "Latest tech trends and innovations",
		Color:       "hsl(262 83% 58%)",
	}
	startups := model.Category{
		ID:          uuid.NewString(),
		Name:        "Startups",
		Slug:        "startups",
		Description: "Startup stories and advice",
		Color:       "hsl(217 91% 60%)",
	}
	design := model.Category{
		ID:          uuid.NewString(),
		Name:        "Design",
		Slug:        "design",
		Description: "UI/UX and product design",
		Color:       "hsl(142 71% 45%)",
	}

	posts := []model.Post{
		{
			ID:         uuid.NewString(),
			Title:      "The Future of Web Development",
			Content:    seedWebDevelopment,
			Excerpt:    "Exploring the latest trends and technologies shaping the future of web development.",
			Author:     john,
			Categories: []model.Category{technology},
			Tags:       []string{"web development", "react", "typescript"},
			CreatedAt:  now.Add(-7 * day),
			UpdatedAt:  now.Add(-7 * day),
			Published:  true,
			Slug:       "future-of-web-development",
			ReadTime:   content.CalculateReadTime(seedWebDevelopment),
		},
		{
			ID:         uuid.NewString(),
			Title:      "Building a Successful Startup",
			Content:    seedStartup,
			Excerpt:    "Essential principles and strategies for building a successful startup from the ground up.",
			Author:     jane,
			Categories: []model.Category{startups},
			Tags:       []string{"startup", "entrepreneurship", "business"},
			CreatedAt:  now.Add(-3 * day),
			UpdatedAt:  now.Add(-3 * day),
			Published:  true,
			Slug:       "building-successful-startup",
			ReadTime:   content.CalculateReadTime(seedStartup),
		},
		{
			ID:         uuid.NewString(),
			Title:      "Design Principles for Better UX",
			Content:    seedDesign,
			Excerpt:    "Fundamental design principles that lead to exceptional user experiences and product success.",
			Author:     jane,
			Categories: []model.Category{design},
			Tags:       []string{"design", "ux", "ui", "user experience"},
			CreatedAt:  now.Add(-1 * day),
			UpdatedAt:  now.Add(-1 * day),
			Published:  true,
			Slug:       "design-principles-better-ux",
			ReadTime:   content.CalculateReadTime(seedDesign),
		},
	}

	return []model.User{john, jane}, []model.Category{technology, startups, design}, posts
}

const seedWebDevelopment = `# The Future of Web Development

Web development has come a long way since the early days of static HTML pages. Today, we're witnessing a revolution in how we build and deploy web applications.

## Modern Frameworks

React, Vue, and Svelte have transformed how we think about user interfaces. These frameworks provide:

- Component-based architecture
- Reactive state management
- Efficient rendering

## The Rise of TypeScript

TypeScript has become the de facto standard for large-scale JavaScript applications, providing:

- Static type checking
- Better IDE support
- Improved maintainability

## Conclusion

The future looks bright for web development, with new tools and technologies constantly emerging to help us build better experiences.`

const seedStartup = `# Building a Successful Startup

Starting a company is one of the most challenging yet rewarding experiences an entrepreneur can have.

## Key Principles

1. **Solve a real problem** - Your product must address a genuine need
2. **Build an MVP** - Start small and iterate quickly
3. **Listen to customers** - Feedback is your most valuable asset

## Team Building

Assembling the right team is crucial for success. Look for:

- Complementary skills
- Shared vision
- Strong work ethic

The journey is difficult, but with the right approach, you can build something amazing.`

const seedDesign = `# Design Principles for Better UX

Great design is not just about aesthetics - it's about creating experiences that delight users and solve their problems effectively.

## Core Principles

### 1. User-Centered Design
Always start with your users' needs and goals.

### 2. Simplicity
Remove unnecessary elements and focus on what matters.

### 3. Consistency
Maintain consistent patterns throughout your interface.

### 4. Accessibility
Design for everyone, including users with disabilities.

## Testing and Iteration

- Conduct user research
- Create prototypes
- Test early and often
- Iterate based on feedback

Remember, good design is invisible - users should be able to accomplish their goals without thinking about the interface.`
