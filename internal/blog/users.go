// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package blog

import (
	"context"
	"slices"

	"github.com/olegiv/ocms-blog/internal/logging"
	"github.com/olegiv/ocms-blog/internal/model"
)

// ListUsers returns every stored user in stored order.
func (r *Repository) ListUsers(ctx context.Context) ([]model.User, error) {
	return load[model.User](ctx, r.kv, r.keys.Users)
}

// GetUserByID returns the user with the given id, or nil.
func (r *Repository) GetUserByID(ctx context.Context, id string) (*model.User, error) {
	users, err := r.ListUsers(ctx)
	if err != nil {
		return nil, err
	}

	i := slices.IndexFunc(users, func(u model.User) bool { return u.ID == id })
	if i < 0 {
		return nil, nil
	}
	return &users[i], nil
}

// SaveUser creates or replaces a user, matched by ID. A new user gets
// CreatedAt set to now. An update replaces the stored record wholesale,
// except that a zero CreatedAt keeps the stored one. Posts already saved
// keep their own author snapshot.
func (r *Repository) SaveUser(ctx context.Context, user model.User) (model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.ListUsers(ctx)
	if err != nil {
		return model.User{}, err
	}

	i := slices.IndexFunc(users, func(u model.User) bool { return u.ID == user.ID })
	if i >= 0 {
		if user.CreatedAt.IsZero() {
			user.CreatedAt = users[i].CreatedAt
		}
		users[i] = user
	} else {
		user.CreatedAt = r.timestamp()
		users = append(users, user)
	}

	if err := persist(ctx, r.kv, r.keys.Users, users); err != nil {
		return model.User{}, err
	}

	action := "user created"
	if i >= 0 {
		action = "user updated"
	}
	r.log(logging.CategoryUser).Info(action, "id", user.ID, "role", user.Role)

	return user, nil
}
