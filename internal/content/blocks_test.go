package content

import (
	"reflect"
	"testing"
)

func TestParse(t *testing.T) {
	input := "# Title\n\nIntro paragraph.\n\n## Section\n\n- one\n- two\nnot an item\n\n1. **first** - detail\n2. second\n\n### 3. Sub\nBody line"

	want := []Block{
		{Kind: KindHeading, Level: 1, Text: "Title"},
		{Kind: KindParagraph, Text: "Intro paragraph."},
		{Kind: KindHeading, Level: 2, Text: "Section"},
		{Kind: KindUnorderedList, Items: []string{"one", "two"}},
		{Kind: KindOrderedList, Items: []string{"**first** - detail", "second"}},
		{Kind: KindHeading, Level: 3, Text: "3. Sub\nBody line"},
	}

	got := Parse(input)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Parse() mismatch\n got: %#v\nwant: %#v", got, want)
	}
}

func TestParseClassification(t *testing.T) {
	tests := []struct {
		name  string
		input string
		kind  BlockKind
		level int
	}{
		{"h1", "# A", KindHeading, 1},
		{"h2", "## A", KindHeading, 2},
		{"h3", "### A", KindHeading, 3},
		{"four hashes is a paragraph", "#### A", KindParagraph, 0},
		{"hash without space", "#tag", KindParagraph, 0},
		{"dash without space", "-5 degrees", KindParagraph, 0},
		{"ordered", "10. ten", KindOrderedList, 0},
		{"plain", "Just text", KindParagraph, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			blocks := Parse(tt.input)
			if len(blocks) != 1 {
				t.Fatalf("Parse(%q) returned %d blocks, want 1", tt.input, len(blocks))
			}
			if blocks[0].Kind != tt.kind || blocks[0].Level != tt.level {
				t.Errorf("Parse(%q) = %s/%d, want %s/%d", tt.input, blocks[0].Kind, blocks[0].Level, tt.kind, tt.level)
			}
		})
	}
}

func TestParseSkipsEmptyBlocks(t *testing.T) {
	if got := Parse(""); len(got) != 0 {
		t.Errorf("Parse(\"\") = %v, want no blocks", got)
	}
	if got := Parse("a\n\n\n\nb"); len(got) != 2 {
		t.Errorf("expected 2 blocks, got %d", len(got))
	}
	if got := Parse("a\r\n\r\nb"); len(got) != 2 {
		t.Errorf("expected CRLF blank line to split blocks, got %d", len(got))
	}
}
