package content

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestExcerpt(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"skips leading heading", "# Title\n\nFirst paragraph here.\n\nSecond.", "First paragraph here."},
		{"heading only", "## Only Heading", "Only Heading"},
		{"list only", "- a\n- b", "a b"},
		{"strips html", "Hello <b>bold</b> <script>x()</script>world", "Hello bold world"},
		{"keeps apostrophes", "It's fine & dandy", "It's fine & dandy"},
		{"collapses whitespace", "line one\nline   two", "line one line two"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Excerpt(tt.input); got != tt.want {
				t.Errorf("Excerpt(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestExcerptTruncates(t *testing.T) {
	long := strings.Repeat("abcde ", 60)

	got := Excerpt(long)
	if utf8.RuneCountInString(got) > ExcerptLength {
		t.Errorf("excerpt length %d exceeds %d", utf8.RuneCountInString(got), ExcerptLength)
	}
	if !strings.HasSuffix(got, "...") {
		t.Errorf("truncated excerpt should end with ellipsis: %q", got)
	}
}

func TestExcerptMultibyte(t *testing.T) {
	long := strings.Repeat("ü", 200)

	got := Excerpt(long)
	if !utf8.ValidString(got) {
		t.Fatalf("excerpt is not valid UTF-8")
	}
	if utf8.RuneCountInString(got) != ExcerptLength {
		t.Errorf("rune count = %d, want %d", utf8.RuneCountInString(got), ExcerptLength)
	}
}
