package segment_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/snipglot/snipglot/internal/segment"
)

func TestSegment_NeverEmpty(t *testing.T) {
	for _, in := range []string{"", "   ", "\t", "hello", "你好"} {
		chunks := segment.Segment(in)
		if len(chunks) == 0 {
			t.Errorf("Segment(%q) returned no chunks", in)
		}
	}
}

func TestSegment_TwoSentences(t *testing.T) {
	chunks := segment.Segment("Hello world. How are you?")
	if len(chunks) != 2 {
		t.Fatalf("expected 2 chunks, got %d: %+v", len(chunks), chunks)
	}
	if chunks[0].Text != "Hello world." {
		t.Errorf("first chunk = %q", chunks[0].Text)
	}
	if chunks[1].Text != "How are you?" {
		t.Errorf("second chunk = %q", chunks[1].Text)
	}
}

func TestSegment_CJKSentences(t *testing.T) {
	chunks := segment.Segment("你好。世界！")
	if len(chunks) != 2 {
		t.Fatalf("expected 2 chunks, got %d: %+v", len(chunks), chunks)
	}
	if chunks[0].Text != "你好。" || chunks[1].Text != "世界！" {
		t.Errorf("got %q, %q", chunks[0].Text, chunks[1].Text)
	}
}

func TestSegment_BreakPerNewline(t *testing.T) {
	chunks := segment.Segment("a\n\n\nb")
	breaks := 0
	for _, ch := range chunks {
		if ch.Break {
			breaks++
		}
	}
	if breaks != 3 {
		t.Errorf("expected 3 break chunks for 3 newlines, got %d: %+v", breaks, chunks)
	}
	if len(chunks) != 5 {
		t.Errorf("expected 5 chunks total, got %d", len(chunks))
	}
}

func TestSegment_CRLFNormalized(t *testing.T) {
	chunks := segment.Segment("a\r\nb\rc")
	breaks := 0
	for _, ch := range chunks {
		if ch.Break {
			breaks++
		}
	}
	if breaks != 2 {
		t.Errorf("expected 2 breaks after CR/CRLF normalization, got %d", breaks)
	}
}

func TestSegment_IndexContiguous(t *testing.T) {
	chunks := segment.Segment("one. two.\n\nthree.")
	for i, ch := range chunks {
		if ch.Index != i {
			t.Errorf("chunk %d has Index %d", i, ch.Index)
		}
	}
}

func TestSegment_CJKCommaSplit(t *testing.T) {
	// Over the comma-split threshold with two commas: each comma boundary
	// becomes its own chunk.
	sentence := strings.Repeat("字", 20) + "，" + strings.Repeat("词", 20) + "，" + strings.Repeat("句", 20)
	chunks := segment.Segment(sentence)
	if len(chunks) != 3 {
		t.Fatalf("expected 3 chunks, got %d: %+v", len(chunks), chunks)
	}
	for _, ch := range chunks {
		if n := utf8.RuneCountInString(ch.Text); n > 40 {
			t.Errorf("chunk %q has %d runes, want <= 40", ch.Text, n)
		}
	}
}

func TestSegment_ShortCJKNotSplit(t *testing.T) {
	// Two commas but under the length threshold: stays whole.
	chunks := segment.Segment("你好，世界，再见")
	if len(chunks) != 1 {
		t.Fatalf("expected 1 chunk, got %d: %+v", len(chunks), chunks)
	}
}

func TestSegment_LatinCommaSplit(t *testing.T) {
	long := strings.Repeat("word ", 40) + "middle, " + strings.Repeat("word ", 40) + "end"
	chunks := segment.Segment(long)
	if len(chunks) < 2 {
		t.Fatalf("expected oversized latin sentence to split, got %d chunks", len(chunks))
	}
}

func TestSegment_EmptyInputSingleChunk(t *testing.T) {
	chunks := segment.Segment("")
	if len(chunks) != 1 {
		t.Fatalf("expected 1 fallback chunk, got %d", len(chunks))
	}
	if chunks[0].Break {
		t.Error("fallback chunk should not be a break")
	}
}
