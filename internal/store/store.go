// Package store persists the translation memory and the user glossary in
// a local SQLite database. The memory caches whole-call results keyed by
// normalized source text and direction; the glossary feeds the
// postprocessor's terminology table.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/unicode/norm"
	_ "modernc.org/sqlite"

	"github.com/snipglot/snipglot/internal"
)

type Store struct {
	db *sql.DB
}

func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate: %w", err)
	}
	return s, nil
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS translation_memory (
		id TEXT PRIMARY KEY,
		source_text TEXT NOT NULL,
		direction TEXT NOT NULL,
		final_text TEXT NOT NULL,
		usage_count INTEGER DEFAULT 1,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		last_used TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		UNIQUE(source_text, direction)
	);

	CREATE TABLE IF NOT EXISTS glossary (
		id TEXT PRIMARY KEY,
		wrong TEXT NOT NULL UNIQUE,
		correct TEXT NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);
	`
	_, err := s.db.Exec(schema)
	return err
}

// normKey canonicalizes cache keys so visually identical inputs hit the
// same row regardless of their Unicode composition.
func normKey(text string) string {
	return norm.NFC.String(strings.TrimSpace(text))
}

// GetCached looks up a previous result for the same source text and
// direction, bumping the row's usage counter on a hit.
func (s *Store) GetCached(ctx context.Context, text string, dir internal.Direction) (string, bool, error) {
	key := normKey(text)
	var final string
	err := s.db.QueryRowContext(ctx,
		`SELECT final_text FROM translation_memory WHERE source_text = ? AND direction = ?`,
		key, dir.String()).Scan(&final)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	_, err = s.db.ExecContext(ctx,
		`UPDATE translation_memory SET usage_count = usage_count + 1, last_used = CURRENT_TIMESTAMP
		 WHERE source_text = ? AND direction = ?`, key, dir.String())
	return final, true, err
}

// PutCached stores or refreshes the result for one source text and
// direction.
func (s *Store) PutCached(ctx context.Context, text string, dir internal.Direction, final string) error {
	if strings.TrimSpace(final) == "" {
		return nil
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO translation_memory (id, source_text, direction, final_text)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT(source_text, direction)
		 DO UPDATE SET final_text = excluded.final_text, last_used = CURRENT_TIMESTAMP`,
		uuid.NewString(), normKey(text), dir.String(), final)
	return err
}

// GlossaryEntry is one user terminology correction.
type GlossaryEntry struct {
	Wrong     string
	Correct   string
	CreatedAt time.Time
}

func (s *Store) GlossaryAdd(ctx context.Context, wrong, correct string) error {
	wrong = normKey(wrong)
	correct = normKey(correct)
	if wrong == "" || correct == "" {
		return fmt.Errorf("glossary entries need both a wrong and a correct form")
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO glossary (id, wrong, correct) VALUES (?, ?, ?)
		 ON CONFLICT(wrong) DO UPDATE SET correct = excluded.correct`,
		uuid.NewString(), wrong, correct)
	return err
}

func (s *Store) GlossaryRemove(ctx context.Context, wrong string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM glossary WHERE wrong = ?`, normKey(wrong))
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("no glossary entry for %q", wrong)
	}
	return nil
}

func (s *Store) GlossaryList(ctx context.Context) ([]GlossaryEntry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT wrong, correct, created_at FROM glossary ORDER BY wrong`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []GlossaryEntry
	for rows.Next() {
		var e GlossaryEntry
		if err := rows.Scan(&e.Wrong, &e.Correct, &e.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// GlossaryMap returns the glossary as a substitution table for the
// postprocessor.
func (s *Store) GlossaryMap(ctx context.Context) (map[string]string, error) {
	entries, err := s.GlossaryList(ctx)
	if err != nil {
		return nil, err
	}
	m := make(map[string]string, len(entries))
	for _, e := range entries {
		m[e.Wrong] = e.Correct
	}
	return m, nil
}

// CacheStats summarizes the stored state for the cache command.
type CacheStats struct {
	MemoryEntries   int
	GlossaryEntries int
	TotalHits       int
}

func (s *Store) Stats(ctx context.Context) (CacheStats, error) {
	var st CacheStats
	if err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*), COALESCE(SUM(usage_count - 1), 0) FROM translation_memory`).
		Scan(&st.MemoryEntries, &st.TotalHits); err != nil {
		return st, err
	}
	if err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM glossary`).Scan(&st.GlossaryEntries); err != nil {
		return st, err
	}
	return st, nil
}

// ClearMemory drops all cached translations; the glossary is kept.
func (s *Store) ClearMemory(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM translation_memory`)
	return err
}

func (s *Store) Close() error {
	return s.db.Close()
}
