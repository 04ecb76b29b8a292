package normalize_test

import (
	"testing"

	"github.com/snipglot/snipglot/internal/normalize"
)

func TestQueryText_MisTranscription(t *testing.T) {
	got := normalize.QueryText("You can roll it down")
	if got != "You can scroll it down" {
		t.Errorf("QueryText = %q, want roll corrected to scroll", got)
	}
}

func TestQueryText_DedupeRepeatedSentence(t *testing.T) {
	got := normalize.QueryText("You can roll it. You can roll it.")
	if got != "You can scroll it." {
		t.Errorf("QueryText = %q, want single corrected sentence", got)
	}
}

func TestQueryText_DedupeCaseInsensitive(t *testing.T) {
	got := normalize.QueryText("Open the file. open the file.")
	if got != "Open the file." {
		t.Errorf("QueryText = %q, want case-insensitive dedupe", got)
	}
}

func TestQueryText_DistinctSentencesKept(t *testing.T) {
	got := normalize.QueryText("Open the file. Close the window.")
	if got != "Open the file. Close the window." {
		t.Errorf("QueryText = %q, distinct sentences must survive", got)
	}
}

func TestQueryText_PunctuationSpacing(t *testing.T) {
	got := normalize.QueryText("hello ,world")
	if got != "hello, world" {
		t.Errorf("QueryText = %q, want %q", got, "hello, world")
	}
}

func TestQueryText_PhraseCorrection(t *testing.T) {
	got := normalize.QueryText("What's the big deal with your F1 and F2 translation")
	if got != "why are your F1 and F2 translation boxes so big" {
		t.Errorf("QueryText = %q", got)
	}
}

func TestQueryText_Empty(t *testing.T) {
	if got := normalize.QueryText("   "); got != "" {
		t.Errorf("QueryText = %q, want empty", got)
	}
}
