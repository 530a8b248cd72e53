// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package util provides slug generation and validation plus small
// filesystem helpers shared by the blog packages.
package util

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	// titleStrip removes everything outside lowercase ASCII letters, digits, spaces and hyphens.
	titleStrip = regexp.MustCompile(`[^a-z0-9 -]`)
	// whitespaceRun matches runs of whitespace
	whitespaceRun = regexp.MustCompile(`\s+`)
	// slugRegex matches non-alphanumeric characters (except hyphens)
	slugRegex = regexp.MustCompile(`[^a-z0-9-]+`)
	// multipleHyphens matches one or more consecutive hyphens
	multipleHyphens = regexp.MustCompile(`-+`)
)

// GenerateSlug derives a post slug from its title. The result is lowercase,
// contains only [a-z0-9-], has no repeated hyphens and no leading or
// trailing hyphen. Characters outside ASCII are dropped, not transliterated,
// so the result can be empty. Uniqueness is not guaranteed.
func GenerateSlug(title string) string {
	s := strings.ToLower(title)
	s = titleStrip.ReplaceAllString(s, "")
	s = whitespaceRun.ReplaceAllString(s, "-")
	s = multipleHyphens.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// Slugify converts a name to a URL-friendly slug, folding accented letters
// to their base form first ("Café" becomes "cafe").
func Slugify(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, _ := transform.String(t, s)

	result = strings.ToLower(result)
	result = whitespaceRun.ReplaceAllString(result, "-")
	result = slugRegex.ReplaceAllString(result, "")
	result = multipleHyphens.ReplaceAllString(result, "-")

	return strings.Trim(result, "-")
}

// IsValidSlug checks if a string is a valid slug format.
func IsValidSlug(s string) bool {
	if s == "" {
		return false
	}

	for _, r := range s {
		if !((r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-') {
			return false
		}
	}

	if s[0] == '-' || s[len(s)-1] == '-' {
		return false
	}

	return !strings.Contains(s, "--")
}
