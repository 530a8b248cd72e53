package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestInferCategory(t *testing.T) {
	tests := []struct {
		msg  string
		want string
	}{
		{"post saved", CategoryPost},
		{"Post deleted", CategoryPost},
		{"user created", CategoryUser},
		{"category saved", CategoryCategory},
		{"seed data written", CategorySeed},
		{"seeding skipped, posts present", CategorySeed},
		{"export written", CategoryTransfer},
		{"import finished", CategoryTransfer},
		{"backup failed", CategoryTransfer},
		{"redis unavailable, falling back to memory store", CategoryStore},
		{"starting", CategorySystem},
	}

	for _, tt := range tests {
		t.Run(tt.msg, func(t *testing.T) {
			if got := InferCategory(tt.msg); got != tt.want {
				t.Errorf("InferCategory(%q) = %q, want %q", tt.msg, got, tt.want)
			}
		})
	}
}

func TestCategoryHandler_AddsCategory(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, slog.LevelInfo, FormatJSON)

	logger.Info("post saved", "id", "abc")

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("invalid JSON log line: %v", err)
	}
	if rec["category"] != CategoryPost {
		t.Errorf("category = %v, want %q", rec["category"], CategoryPost)
	}
	if rec["id"] != "abc" {
		t.Errorf("id = %v, want abc", rec["id"])
	}
}

func TestCategoryHandler_KeepsExplicitCategory(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, slog.LevelInfo, FormatJSON)

	logger.Info("post saved", "category", CategoryTransfer)

	if n := strings.Count(buf.String(), `"category"`); n != 1 {
		t.Errorf("expected exactly one category attribute, got %d in %s", n, buf.String())
	}
	if !strings.Contains(buf.String(), `"category":"transfer"`) {
		t.Errorf("explicit category lost: %s", buf.String())
	}
}

func TestCategoryHandler_WithAttrsCategory(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, slog.LevelInfo, FormatText).With("category", CategorySeed)

	logger.Info("user created")

	out := buf.String()
	if strings.Count(out, "category=") != 1 || !strings.Contains(out, "category=seed") {
		t.Errorf("unexpected output: %s", out)
	}
}

func TestCategoryHandler_WithGroup(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, slog.LevelInfo, FormatText).WithGroup("repo")

	logger.Info("starting", "n", 1)

	if !strings.Contains(buf.String(), "repo.category=system") {
		t.Errorf("expected grouped category attribute, got %s", buf.String())
	}
}

func TestNew_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, slog.LevelWarn, FormatText)

	logger.Info("hidden")
	logger.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("info record should be filtered at warn level")
	}
	if !strings.Contains(out, "shown") {
		t.Error("warn record missing")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"INFO", slog.LevelInfo, false},
		{"", slog.LevelInfo, false},
		{"warn", slog.LevelWarn, false},
		{"warning", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"verbose", slog.LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
