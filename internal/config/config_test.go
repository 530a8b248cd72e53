// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"os"
	"strings"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	os.Clearenv()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Env != "development" {
		t.Errorf("Env = %q, want %q", cfg.Env, "development")
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "info")
	}
	if cfg.LogFormat != "text" {
		t.Errorf("LogFormat = %q, want %q", cfg.LogFormat, "text")
	}
	if cfg.Store != "sqlite" {
		t.Errorf("Store = %q, want %q", cfg.Store, "sqlite")
	}
	if cfg.DBPath != "./data/blog.db" {
		t.Errorf("DBPath = %q, want %q", cfg.DBPath, "./data/blog.db")
	}
	if cfg.SlugPolicy != "reject" {
		t.Errorf("SlugPolicy = %q, want %q", cfg.SlugPolicy, "reject")
	}
	if cfg.BackupDir != "./backups" {
		t.Errorf("BackupDir = %q, want %q", cfg.BackupDir, "./backups")
	}
	if cfg.BackupSchedule != "@daily" {
		t.Errorf("BackupSchedule = %q, want %q", cfg.BackupSchedule, "@daily")
	}
	if cfg.UseCache() {
		t.Error("cache should be disabled by default")
	}
	if !cfg.IsDevelopment() {
		t.Error("IsDevelopment() = false, want true")
	}
}

func TestLoad_CustomValues(t *testing.T) {
	os.Clearenv()
	t.Setenv("BLOG_ENV", "production")
	t.Setenv("BLOG_LOG_LEVEL", "debug")
	t.Setenv("BLOG_LOG_FORMAT", "json")
	t.Setenv("BLOG_STORE", "redis")
	t.Setenv("BLOG_REDIS_URL", "redis://localhost:6379/1")
	t.Setenv("BLOG_KEY_PREFIX", "site1:")
	t.Setenv("BLOG_CACHE_TTL", "30")
	t.Setenv("BLOG_SLUG_POLICY", "suffix")
	t.Setenv("BLOG_BACKUP_SCHEDULE", "0 4 * * *")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.IsDevelopment() {
		t.Error("IsDevelopment() = true, want false")
	}
	if !cfg.UseCache() || cfg.CacheDuration() != 30*time.Second {
		t.Errorf("CacheDuration() = %v, want 30s", cfg.CacheDuration())
	}

	opts := cfg.StoreOptions()
	if opts.Backend != "redis" || opts.RedisURL != "redis://localhost:6379/1" || opts.RedisPrefix != "site1:" {
		t.Errorf("unexpected store options: %+v", opts)
	}
	if opts.FallbackToMemory {
		t.Error("production must not fall back to memory")
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{"bad store", map[string]string{"BLOG_STORE": "etcd"}, "BLOG_STORE"},
		{"mysql without dsn", map[string]string{"BLOG_STORE": "mysql"}, "BLOG_MYSQL_DSN"},
		{"redis without url", map[string]string{"BLOG_STORE": "redis"}, "BLOG_REDIS_URL"},
		{"bad log level", map[string]string{"BLOG_LOG_LEVEL": "loud"}, "BLOG_LOG_LEVEL"},
		{"bad log format", map[string]string{"BLOG_LOG_FORMAT": "xml"}, "BLOG_LOG_FORMAT"},
		{"bad slug policy", map[string]string{"BLOG_SLUG_POLICY": "random"}, "BLOG_SLUG_POLICY"},
		{"bad schedule", map[string]string{"BLOG_BACKUP_SCHEDULE": "sometimes"}, "BLOG_BACKUP_SCHEDULE"},
		{"negative ttl", map[string]string{"BLOG_CACHE_TTL": "-5"}, "BLOG_CACHE_TTL"},
		{"non-numeric ttl", map[string]string{"BLOG_CACHE_TTL": "soon"}, "parsing config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Clearenv()
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := Load()
			if err == nil {
				t.Fatal("Load() expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}
