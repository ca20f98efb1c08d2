// Package store persists converted texts and verses behind a driver-neutral
// interface. Two drivers exist: SQLite (embedded, default) and PostgreSQL.
package store

import (
	"context"
	"time"
)

// Text is one corpus document (e.g. a hymn or an aranyaka passage).
type Text struct {
	ID        string
	Title     string
	Source    string
	CreatedAt time.Time
}

// Verse is one converted verse of a text. Tokens holds the per-token
// renderings as a JSON array, exactly as the converter serialized them;
// the store does not look inside.
type Verse struct {
	ID         int64
	TextID     string
	Position   int
	Label      string
	Devanagari string
	IAST       string
	Tokens     []byte
}

type UpsertTextParams struct {
	ID     string
	Title  string
	Source string
}

type UpsertVerseParams struct {
	TextID     string
	Position   int
	Label      string
	Devanagari string
	IAST       string
	Tokens     []byte
}

type GetVerseParams struct {
	TextID string
	Label  string
}

// Store is the persistence interface shared by both drivers.
type Store interface {
	UpsertText(ctx context.Context, arg UpsertTextParams) (Text, error)
	GetText(ctx context.Context, id string) (Text, error)
	ListTexts(ctx context.Context) ([]Text, error)

	UpsertVerse(ctx context.Context, arg UpsertVerseParams) (Verse, error)
	GetVerse(ctx context.Context, arg GetVerseParams) (Verse, error)
	ListVerses(ctx context.Context, textID string) ([]Verse, error)

	Close() error
}
