package store_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/snipglot/snipglot/internal"
	"github.com/snipglot/snipglot/internal/store"
)

func newStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestCache_RoundTrip(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	if err := s.PutCached(ctx, "hello", internal.DirectionEnZh, "你好"); err != nil {
		t.Fatalf("PutCached failed: %v", err)
	}

	got, found, err := s.GetCached(ctx, "hello", internal.DirectionEnZh)
	if err != nil {
		t.Fatalf("GetCached failed: %v", err)
	}
	if !found || got != "你好" {
		t.Errorf("GetCached = (%q, %v)", got, found)
	}
}

func TestCache_DirectionSeparation(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	if err := s.PutCached(ctx, "hello", internal.DirectionEnZh, "你好"); err != nil {
		t.Fatal(err)
	}
	if _, found, _ := s.GetCached(ctx, "hello", internal.DirectionZhEn); found {
		t.Error("cache hit across directions")
	}
}

func TestCache_KeyNormalization(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	if err := s.PutCached(ctx, "  hello  ", internal.DirectionEnZh, "你好"); err != nil {
		t.Fatal(err)
	}
	if _, found, _ := s.GetCached(ctx, "hello", internal.DirectionEnZh); !found {
		t.Error("trimmed key should hit the same row")
	}
}

func TestCache_EmptyResultNotStored(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	if err := s.PutCached(ctx, "hello", internal.DirectionEnZh, "   "); err != nil {
		t.Fatalf("PutCached failed: %v", err)
	}
	st, err := s.Stats(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if st.MemoryEntries != 0 {
		t.Errorf("MemoryEntries = %d, blank results must not be cached", st.MemoryEntries)
	}
}

func TestCache_UpsertReplaces(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	s.PutCached(ctx, "hello", internal.DirectionEnZh, "旧译")
	s.PutCached(ctx, "hello", internal.DirectionEnZh, "新译")

	got, _, _ := s.GetCached(ctx, "hello", internal.DirectionEnZh)
	if got != "新译" {
		t.Errorf("GetCached = %q, want latest result", got)
	}
	st, _ := s.Stats(ctx)
	if st.MemoryEntries != 1 {
		t.Errorf("MemoryEntries = %d, want 1", st.MemoryEntries)
	}
}

func TestStats_CountsHits(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	s.PutCached(ctx, "hello", internal.DirectionEnZh, "你好")
	s.GetCached(ctx, "hello", internal.DirectionEnZh)
	s.GetCached(ctx, "hello", internal.DirectionEnZh)

	st, err := s.Stats(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if st.TotalHits != 2 {
		t.Errorf("TotalHits = %d, want 2", st.TotalHits)
	}
}

func TestGlossary_AddListRemove(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	if err := s.GlossaryAdd(ctx, "反响", "齿隙"); err != nil {
		t.Fatalf("GlossaryAdd failed: %v", err)
	}
	if err := s.GlossaryAdd(ctx, "侧隙", "齿隙"); err != nil {
		t.Fatal(err)
	}

	entries, err := s.GlossaryList(ctx)
	if err != nil {
		t.Fatalf("GlossaryList failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}

	m, err := s.GlossaryMap(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if m["反响"] != "齿隙" {
		t.Errorf("GlossaryMap = %v", m)
	}

	if err := s.GlossaryRemove(ctx, "反响"); err != nil {
		t.Fatalf("GlossaryRemove failed: %v", err)
	}
	if err := s.GlossaryRemove(ctx, "反响"); err == nil {
		t.Error("removing a missing entry should fail")
	}
}

func TestGlossary_UpsertReplaces(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	s.GlossaryAdd(ctx, "反响", "回响")
	s.GlossaryAdd(ctx, "反响", "齿隙")

	m, _ := s.GlossaryMap(ctx)
	if m["反响"] != "齿隙" {
		t.Errorf("GlossaryMap = %v, want updated correction", m)
	}
}

func TestGlossary_RejectsEmpty(t *testing.T) {
	s := newStore(t)
	if err := s.GlossaryAdd(context.Background(), "  ", "x"); err == nil {
		t.Error("expected error for blank wrong form")
	}
}

func TestClearMemory_KeepsGlossary(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	s.PutCached(ctx, "hello", internal.DirectionEnZh, "你好")
	s.GlossaryAdd(ctx, "反响", "齿隙")

	if err := s.ClearMemory(ctx); err != nil {
		t.Fatalf("ClearMemory failed: %v", err)
	}
	st, _ := s.Stats(ctx)
	if st.MemoryEntries != 0 {
		t.Errorf("MemoryEntries = %d after clear", st.MemoryEntries)
	}
	if st.GlossaryEntries != 1 {
		t.Errorf("GlossaryEntries = %d, clear must not touch the glossary", st.GlossaryEntries)
	}
}
