// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package content handles the derived values of post bodies: word counts,
// read-time estimates, excerpts and the minimal block structure used for
// display (headings, lists and paragraphs separated by blank lines).
package content

import (
	"regexp"
	"strings"
)

// BlockKind identifies the type of a parsed block.
type BlockKind string

// Block kinds recognised by Parse.
const (
	KindHeading       BlockKind = "heading"
	KindUnorderedList BlockKind = "ul"
	KindOrderedList   BlockKind = "ol"
	KindParagraph     BlockKind = "paragraph"
)

// Block is one blank-line separated unit of post content.
type Block struct {
	Kind BlockKind `json:"kind"`
	// Level is 1-3 for headings and 0 otherwise.
	Level int      `json:"level,omitempty"`
	Text  string   `json:"text,omitempty"`
	Items []string `json:"items,omitempty"`
}

var (
	orderedItem   = regexp.MustCompile(`^\d+\.`)
	orderedPrefix = regexp.MustCompile(`^\d+\.\s*`)
)

// headingPrefixes are checked longest first so "### " is not read as "# ".
var headingPrefixes = []struct {
	prefix string
	level  int
}{
	{"### ", 3},
	{"## ", 2},
	{"# ", 1},
}

// Parse splits content on blank lines and classifies each block by its
// prefix. Inline formatting is left untouched.
func Parse(content string) []Block {
	content = strings.ReplaceAll(content, "\r\n", "\n")

	var blocks []Block
	for _, raw := range strings.Split(content, "\n\n") {
		if strings.TrimSpace(raw) == "" {
			continue
		}
		blocks = append(blocks, parseBlock(raw))
	}
	return blocks
}

func parseBlock(raw string) Block {
	for _, h := range headingPrefixes {
		if strings.HasPrefix(raw, h.prefix) {
			return Block{Kind: KindHeading, Level: h.level, Text: strings.TrimPrefix(raw, h.prefix)}
		}
	}

	if strings.HasPrefix(raw, "- ") {
		var items []string
		for _, line := range strings.Split(raw, "\n") {
			if strings.HasPrefix(line, "- ") {
				items = append(items, strings.TrimPrefix(line, "- "))
			}
		}
		return Block{Kind: KindUnorderedList, Items: items}
	}

	if orderedItem.MatchString(raw) {
		var items []string
		for _, line := range strings.Split(raw, "\n") {
			if orderedItem.MatchString(line) {
				items = append(items, orderedPrefix.ReplaceAllString(line, ""))
			}
		}
		return Block{Kind: KindOrderedList, Items: items}
	}

	return Block{Kind: KindParagraph, Text: raw}
}
