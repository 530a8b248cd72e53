// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package util

import (
	"fmt"
	"path/filepath"
	"strings"
)

// JoinWithin joins name onto dir and returns an error if the cleaned
// result would land outside dir. Only the base element of name is used.
func JoinWithin(dir, name string) (string, error) {
	base := filepath.Base(name)
	if base == "." || base == ".." || base == "" || base == string(filepath.Separator) {
		return "", fmt.Errorf("invalid filename: %q", name)
	}

	absDir, err := filepath.Abs(filepath.Clean(dir))
	if err != nil {
		return "", fmt.Errorf("invalid directory: %w", err)
	}

	full := filepath.Join(absDir, base)
	if !strings.HasPrefix(full, absDir+string(filepath.Separator)) {
		return "", fmt.Errorf("path escapes directory %q", dir)
	}

	return full, nil
}
