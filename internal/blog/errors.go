// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package blog

import (
	"errors"
	"fmt"
)

var (
	// ErrSlugTaken is returned when a slug already belongs to another post.
	ErrSlugTaken = errors.New("slug already in use")

	// ErrInvalidPost is returned when post input fails validation.
	ErrInvalidPost = errors.New("invalid post")

	// ErrUnknownAuthor is returned when a post input names an author id
	// that is not in the users collection.
	ErrUnknownAuthor = errors.New("unknown author")

	// ErrUnknownCategory is returned when a post input names a category id
	// that is not in the categories collection.
	ErrUnknownCategory = errors.New("unknown category")
)

// ValidationError describes a single invalid field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Unwrap lets errors.Is(err, ErrInvalidPost) match any field error.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidPost
}
