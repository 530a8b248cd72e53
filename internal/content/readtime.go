// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package content

import "strings"

// WordsPerMinute is the reading speed used for read-time estimates.
const WordsPerMinute = 200

// WordCount returns the number of whitespace separated words in s.
func WordCount(s string) int {
	return len(strings.Fields(s))
}

// CalculateReadTime estimates reading time in whole minutes, rounded up.
// The result is never less than 1.
func CalculateReadTime(content string) int {
	minutes := (WordCount(content) + WordsPerMinute - 1) / WordsPerMinute
	return max(minutes, 1)
}
