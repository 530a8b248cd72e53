// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package content

import (
	"html"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// ExcerptLength is the maximum excerpt length in runes, ellipsis included.
const ExcerptLength = 150

// stripPolicy removes every HTML element from excerpt text.
var stripPolicy = bluemonday.StrictPolicy()

var spaceRun = regexp.MustCompile(`\s+`)

// Excerpt builds a plain-text summary of content. The first paragraph is
// used; when there is none the first block of any kind is. HTML is
// removed and the text is cut to ExcerptLength runes.
func Excerpt(content string) string {
	blocks := Parse(content)
	if len(blocks) == 0 {
		return ""
	}

	chosen := blocks[0]
	for _, b := range blocks {
		if b.Kind == KindParagraph {
			chosen = b
			break
		}
	}

	text := chosen.Text
	if len(chosen.Items) > 0 {
		text = strings.Join(chosen.Items, " ")
	}

	text = html.UnescapeString(stripPolicy.Sanitize(text))
	text = strings.TrimSpace(spaceRun.ReplaceAllString(text, " "))

	return truncate(text, ExcerptLength)
}

func truncate(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return strings.TrimSpace(string(r[:limit-3])) + "..."
}
