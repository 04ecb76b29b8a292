package vocab_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/snipglot/snipglot/internal/vocab"
)

func writeFile(t *testing.T, dir, name string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte("stub"), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestProbe_SharedModel(t *testing.T) {
	dir := t.TempDir()
	want := writeFile(t, dir, "source.spm")

	src, tgt, err := vocab.Probe(dir)
	if err != nil {
		t.Fatalf("Probe failed: %v", err)
	}
	if src != want {
		t.Errorf("source = %q, want %q", src, want)
	}
	// No target.spm: the target model falls back to the source file.
	if tgt != want {
		t.Errorf("target = %q, want fallback to %q", tgt, want)
	}
}

func TestProbe_SeparateTarget(t *testing.T) {
	dir := t.TempDir()
	wantSrc := writeFile(t, dir, "source.spm")
	wantTgt := writeFile(t, dir, "target.spm")

	src, tgt, err := vocab.Probe(dir)
	if err != nil {
		t.Fatalf("Probe failed: %v", err)
	}
	if src != wantSrc || tgt != wantTgt {
		t.Errorf("got (%q, %q), want (%q, %q)", src, tgt, wantSrc, wantTgt)
	}
}

func TestProbe_CandidateOrder(t *testing.T) {
	dir := t.TempDir()
	want := writeFile(t, dir, "sentencepiece.model")
	writeFile(t, dir, "source.spm")

	src, _, err := vocab.Probe(dir)
	if err != nil {
		t.Fatalf("Probe failed: %v", err)
	}
	if src != want {
		t.Errorf("source = %q, want first candidate %q", src, want)
	}
}

func TestProbe_NoModel(t *testing.T) {
	_, _, err := vocab.Probe(t.TempDir())
	if !errors.Is(err, vocab.ErrModelMissing) {
		t.Errorf("expected ErrModelMissing, got %v", err)
	}
}

func TestProbe_MissingDir(t *testing.T) {
	if _, _, err := vocab.Probe(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("expected error for missing directory")
	}
}

func TestJoinPieces(t *testing.T) {
	tests := []struct {
		pieces []string
		want   string
	}{
		{[]string{"▁Hello", "▁world"}, "Hello world"},
		{[]string{"▁Hel", "lo", "▁world", "</s>"}, "Hello world"},
		{[]string{"▁你", "好"}, "你好"},
		{[]string{"</s>", "<pad>"}, ""},
		{nil, ""},
	}
	for _, tt := range tests {
		if got := vocab.JoinPieces(tt.pieces); got != tt.want {
			t.Errorf("JoinPieces(%v) = %q, want %q", tt.pieces, got, tt.want)
		}
	}
}
