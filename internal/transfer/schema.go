// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package transfer provides import/export of the blog collections in JSON
// or YAML.
package transfer

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/olegiv/ocms-blog/internal/model"
)

// ExportVersion is the current version of the export format.
const ExportVersion = "1.0"

// ErrUnsupportedVersion is returned when an import file has a version
// other than ExportVersion.
var ErrUnsupportedVersion = errors.New("unsupported export version")

// ExportData is the export envelope.
type ExportData struct {
	Version    string           `json:"version" yaml:"version"`
	ExportedAt time.Time        `json:"exported_at" yaml:"exported_at"`
	Users      []model.User     `json:"users" yaml:"users"`
	Categories []model.Category `json:"categories" yaml:"categories"`
	Posts      []model.Post     `json:"posts" yaml:"posts"`
}

// Format is an export file encoding.
type Format string

// Supported formats.
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates a format name. "yml" is accepted as YAML.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "json", "":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("unknown export format %q", s)
}

// FormatFromPath picks the format from a file extension, defaulting to JSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	}
	return FormatJSON
}

// ConflictStrategy defines how to handle an imported entity whose id
// already exists.
type ConflictStrategy string

const (
	// ConflictSkip keeps the stored entity.
	ConflictSkip ConflictStrategy = "skip"
	// ConflictOverwrite replaces the stored entity.
	ConflictOverwrite ConflictStrategy = "overwrite"
)

// ParseConflictStrategy validates a strategy name.
func ParseConflictStrategy(s string) (ConflictStrategy, error) {
	switch c := ConflictStrategy(s); c {
	case ConflictSkip, ConflictOverwrite:
		return c, nil
	case "":
		return ConflictSkip, nil
	}
	return "", fmt.Errorf("unknown conflict strategy %q", s)
}

// ImportOptions configures an import.
type ImportOptions struct {
	DryRun           bool             `json:"dry_run"`
	ConflictStrategy ConflictStrategy `json:"conflict_strategy"`
}

// DefaultImportOptions returns options that skip existing entities.
func DefaultImportOptions() ImportOptions {
	return ImportOptions{ConflictStrategy: ConflictSkip}
}

// Entity names used in ImportResult.
const (
	EntityUser     = "user"
	EntityCategory = "category"
	EntityPost     = "post"
)

// ImportError describes a rejected entity.
type ImportError struct {
	Entity  string `json:"entity"`
	ID      string `json:"id"`
	Message string `json:"message"`
}

// ImportResult reports per-entity counts of an import.
type ImportResult struct {
	Success bool           `json:"success"`
	DryRun  bool           `json:"dry_run"`
	Created map[string]int `json:"created"`
	Updated map[string]int `json:"updated"`
	Skipped map[string]int `json:"skipped"`
	Errors  []ImportError  `json:"errors,omitempty"`
}

// NewImportResult creates an empty successful result.
func NewImportResult(dryRun bool) *ImportResult {
	return &ImportResult{
		Success: true,
		DryRun:  dryRun,
		Created: make(map[string]int),
		Updated: make(map[string]int),
		Skipped: make(map[string]int),
	}
}

// AddError records a rejected entity and marks the result unsuccessful.
func (r *ImportResult) AddError(entity, id, message string) {
	r.Errors = append(r.Errors, ImportError{Entity: entity, ID: id, Message: message})
	r.Success = false
}

// IncrementCreated counts a created entity.
func (r *ImportResult) IncrementCreated(entity string) { r.Created[entity]++ }

// IncrementUpdated counts an overwritten entity.
func (r *ImportResult) IncrementUpdated(entity string) { r.Updated[entity]++ }

// IncrementSkipped counts a skipped entity.
func (r *ImportResult) IncrementSkipped(entity string) { r.Skipped[entity]++ }

// TotalCreated returns the number of created entities.
func (r *ImportResult) TotalCreated() int { return sum(r.Created) }

// TotalUpdated returns the number of overwritten entities.
func (r *ImportResult) TotalUpdated() int { return sum(r.Updated) }

// TotalSkipped returns the number of skipped entities.
func (r *ImportResult) TotalSkipped() int { return sum(r.Skipped) }

func sum(m map[string]int) int {
	total := 0
	for _, n := range m {
		total += n
	}
	return total
}
