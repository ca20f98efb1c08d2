package sqlite

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/veda-tools/vedadiff/internal/store"
)

//go:embed schema.sql
var schemaSQL string

// Store implements store.Store on an embedded SQLite database.
type Store struct {
	db *sql.DB
}

// New opens (and if necessary initializes) the database at path. The
// sqlite:// prefix and :memory: are both accepted.
func New(ctx context.Context, path string) (*Store, error) {
	path = strings.TrimPrefix(path, "sqlite://")

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening SQLite database: %w", err)
	}

	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting WAL mode: %w", err)
	}
	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	var n int
	err = db.QueryRowContext(ctx,
		"SELECT count(*) FROM sqlite_master WHERE type='table' AND name='texts'").Scan(&n)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("inspecting schema: %w", err)
	}
	if n == 0 {
		if _, err := db.ExecContext(ctx, schemaSQL); err != nil {
			db.Close()
			return nil, fmt.Errorf("initializing schema: %w", err)
		}
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) UpsertText(ctx context.Context, arg store.UpsertTextParams) (store.Text, error) {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO texts (id, title, source)
		VALUES (?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET title = excluded.title, source = excluded.source
	`, arg.ID, arg.Title, arg.Source)
	if err != nil {
		return store.Text{}, err
	}
	return s.GetText(ctx, arg.ID)
}

func (s *Store) GetText(ctx context.Context, id string) (store.Text, error) {
	var t store.Text
	err := s.db.QueryRowContext(ctx, `
		SELECT id, title, source, created_at FROM texts WHERE id = ?
	`, id).Scan(&t.ID, &t.Title, &t.Source, &t.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return store.Text{}, store.ErrNoRows
	}
	return t, err
}

func (s *Store) ListTexts(ctx context.Context) ([]store.Text, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, source, created_at FROM texts ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var texts []store.Text
	for rows.Next() {
		var t store.Text
		if err := rows.Scan(&t.ID, &t.Title, &t.Source, &t.CreatedAt); err != nil {
			return nil, err
		}
		texts = append(texts, t)
	}
	return texts, rows.Err()
}

func (s *Store) UpsertVerse(ctx context.Context, arg store.UpsertVerseParams) (store.Verse, error) {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO verses (text_id, position, label, devanagari, iast, tokens)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (text_id, label) DO UPDATE SET
			position = excluded.position,
			devanagari = excluded.devanagari,
			iast = excluded.iast,
			tokens = excluded.tokens
	`, arg.TextID, arg.Position, arg.Label, arg.Devanagari, arg.IAST, string(arg.Tokens))
	if err != nil {
		return store.Verse{}, err
	}
	return s.GetVerse(ctx, store.GetVerseParams{TextID: arg.TextID, Label: arg.Label})
}

func (s *Store) GetVerse(ctx context.Context, arg store.GetVerseParams) (store.Verse, error) {
	var v store.Verse
	var tokens string
	err := s.db.QueryRowContext(ctx, `
		SELECT id, text_id, position, label, devanagari, iast, tokens
		FROM verses WHERE text_id = ? AND label = ?
	`, arg.TextID, arg.Label).Scan(&v.ID, &v.TextID, &v.Position, &v.Label, &v.Devanagari, &v.IAST, &tokens)
	if errors.Is(err, sql.ErrNoRows) {
		return store.Verse{}, store.ErrNoRows
	}
	if err != nil {
		return store.Verse{}, err
	}
	v.Tokens = []byte(tokens)
	return v, nil
}

func (s *Store) ListVerses(ctx context.Context, textID string) ([]store.Verse, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, text_id, position, label, devanagari, iast, tokens
		FROM verses WHERE text_id = ? ORDER BY position
	`, textID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var verses []store.Verse
	for rows.Next() {
		var v store.Verse
		var tokens string
		if err := rows.Scan(&v.ID, &v.TextID, &v.Position, &v.Label, &v.Devanagari, &v.IAST, &tokens); err != nil {
			return nil, err
		}
		v.Tokens = []byte(tokens)
		verses = append(verses, v)
	}
	return verses, rows.Err()
}
