package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/veda-tools/vedadiff/internal/store"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS texts (
    id         TEXT PRIMARY KEY,
    title      TEXT NOT NULL,
    source     TEXT NOT NULL DEFAULT '',
    created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS verses (
    id         BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
    text_id    TEXT NOT NULL REFERENCES texts(id) ON DELETE CASCADE,
    position   INTEGER NOT NULL,
    label      TEXT NOT NULL,
    devanagari TEXT NOT NULL,
    iast       TEXT NOT NULL,
    tokens     JSONB NOT NULL DEFAULT '[]',
    UNIQUE (text_id, label)
);

CREATE INDEX IF NOT EXISTS idx_verses_text_position ON verses(text_id, position);
`

// Store implements store.Store on a PostgreSQL pool.
type Store struct {
	pool *pgxpool.Pool
}

// New connects, applies the schema, and returns the store. The pool is kept
// small: the converter writes in one burst and the API is read-mostly.
func New(ctx context.Context, databaseURL string) (*Store, error) {
	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing database URL: %w", err)
	}
	config.MaxConns = 5
	config.MinConns = 2
	config.MaxConnLifetime = 5 * time.Minute
	config.MaxConnIdleTime = 30 * time.Second
	config.HealthCheckPeriod = 1 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}
	if _, err := pool.Exec(ctx, schemaSQL); err != nil {
		pool.Close()
		return nil, fmt.Errorf("applying schema: %w", err)
	}
	return &Store{pool: pool}, nil
}

func (s *Store) Close() error {
	s.pool.Close()
	return nil
}

// PoolStats exposes pool statistics for metrics gauges.
func (s *Store) PoolStats() *pgxpool.Stat {
	return s.pool.Stat()
}

func (s *Store) UpsertText(ctx context.Context, arg store.UpsertTextParams) (store.Text, error) {
	var t store.Text
	err := s.pool.QueryRow(ctx, `
		INSERT INTO texts (id, title, source)
		VALUES ($1, $2, $3)
		ON CONFLICT (id) DO UPDATE SET title = EXCLUDED.title, source = EXCLUDED.source
		RETURNING id, title, source, created_at
	`, arg.ID, arg.Title, arg.Source).Scan(&t.ID, &t.Title, &t.Source, &t.CreatedAt)
	return t, err
}

func (s *Store) GetText(ctx context.Context, id string) (store.Text, error) {
	var t store.Text
	err := s.pool.QueryRow(ctx, `
		SELECT id, title, source, created_at FROM texts WHERE id = $1
	`, id).Scan(&t.ID, &t.Title, &t.Source, &t.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return store.Text{}, store.ErrNoRows
	}
	return t, err
}

func (s *Store) ListTexts(ctx context.Context) ([]store.Text, error) {
	rows, err := s.pool.Query(ctx, `
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
	var v store.Verse
	err := s.pool.QueryRow(ctx, `
		INSERT INTO verses (text_id, position, label, devanagari, iast, tokens)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (text_id, label) DO UPDATE SET
			position = EXCLUDED.position,
			devanagari = EXCLUDED.devanagari,
			iast = EXCLUDED.iast,
			tokens = EXCLUDED.tokens
		RETURNING id, text_id, position, label, devanagari, iast, tokens
	`, arg.TextID, arg.Position, arg.Label, arg.Devanagari, arg.IAST, arg.Tokens).
		Scan(&v.ID, &v.TextID, &v.Position, &v.Label, &v.Devanagari, &v.IAST, &v.Tokens)
	return v, err
}

func (s *Store) GetVerse(ctx context.Context, arg store.GetVerseParams) (store.Verse, error) {
	var v store.Verse
	err := s.pool.QueryRow(ctx, `
		SELECT id, text_id, position, label, devanagari, iast, tokens
		FROM verses WHERE text_id = $1 AND label = $2
	`, arg.TextID, arg.Label).
		Scan(&v.ID, &v.TextID, &v.Position, &v.Label, &v.Devanagari, &v.IAST, &v.Tokens)
	if errors.Is(err, pgx.ErrNoRows) {
		return store.Verse{}, store.ErrNoRows
	}
	return v, err
}

func (s *Store) ListVerses(ctx context.Context, textID string) ([]store.Verse, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, text_id, position, label, devanagari, iast, tokens
		FROM verses WHERE text_id = $1 ORDER BY position
	`, textID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var verses []store.Verse
	for rows.Next() {
		var v store.Verse
		if err := rows.Scan(&v.ID, &v.TextID, &v.Position, &v.Label, &v.Devanagari, &v.IAST, &v.Tokens); err != nil {
			return nil, err
		}
		verses = append(verses, v)
	}
	return verses, rows.Err()
}
