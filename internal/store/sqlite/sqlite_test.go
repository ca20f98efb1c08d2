package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veda-tools/vedadiff/internal/store"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestTextRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	created, err := s.UpsertText(ctx, store.UpsertTextParams{
		ID:     "rv10-090",
		Title:  "Purusha Sūktam (Ṛg Veda 10.90)",
		Source: "SanskritDocuments.org",
	})
	require.NoError(t, err)
	assert.Equal(t, "rv10-090", created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	got, err := s.GetText(ctx, "rv10-090")
	require.NoError(t, err)
	assert.Equal(t, created.Title, got.Title)
	assert.Equal(t, created.Source, got.Source)
}

func TestUpsertTextOverwrites(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.UpsertText(ctx, store.UpsertTextParams{ID: "t", Title: "old", Source: "old"})
	require.NoError(t, err)
	updated, err := s.UpsertText(ctx, store.UpsertTextParams{ID: "t", Title: "new", Source: "new"})
	require.NoError(t, err)
	assert.Equal(t, "new", updated.Title)

	texts, err := s.ListTexts(ctx)
	require.NoError(t, err)
	require.Len(t, texts, 1)
}

func TestGetTextNotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.GetText(context.Background(), "missing")
	assert.True(t, store.IsNoRows(err))
}

func TestVerseRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.UpsertText(ctx, store.UpsertTextParams{ID: "rv10-090", Title: "t", Source: "s"})
	require.NoError(t, err)

	tokens := []byte(`[{"idx":0,"devanagari":"स॒हस्र॑शीर्षा॒","iast":"sa॒hasra॑śīrṣā॒"}]`)
	v, err := s.UpsertVerse(ctx, store.UpsertVerseParams{
		TextID:     "rv10-090",
		Position:   0,
		Label:      "10.90.1",
		Devanagari: "स॒हस्र॑शीर्षा॒ पुरु॑षः",
		IAST:       "sa॒hasra॑śīrṣā॒ puru॑ṣaḥ",
		Tokens:     tokens,
	})
	require.NoError(t, err)
	assert.NotZero(t, v.ID)
	assert.JSONEq(t, string(tokens), string(v.Tokens))

	got, err := s.GetVerse(ctx, store.GetVerseParams{TextID: "rv10-090", Label: "10.90.1"})
	require.NoError(t, err)
	assert.Equal(t, v.Devanagari, got.Devanagari)
	assert.Equal(t, v.IAST, got.IAST)
}

func TestUpsertVerseOverwrites(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.UpsertText(ctx, store.UpsertTextParams{ID: "t", Title: "t", Source: "s"})
	require.NoError(t, err)

	_, err = s.UpsertVerse(ctx, store.UpsertVerseParams{
		TextID: "t", Position: 0, Label: "1", Devanagari: "old", IAST: "old", Tokens: []byte(`[]`),
	})
	require.NoError(t, err)
	updated, err := s.UpsertVerse(ctx, store.UpsertVerseParams{
		TextID: "t", Position: 3, Label: "1", Devanagari: "new", IAST: "new", Tokens: []byte(`[]`),
	})
	require.NoError(t, err)
	assert.Equal(t, "new", updated.Devanagari)
	assert.Equal(t, 3, updated.Position)

	verses, err := s.ListVerses(ctx, "t")
	require.NoError(t, err)
	require.Len(t, verses, 1)
}

func TestListVersesOrderedByPosition(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.UpsertText(ctx, store.UpsertTextParams{ID: "t", Title: "t", Source: "s"})
	require.NoError(t, err)

	for _, p := range []struct {
		pos   int
		label string
	}{{2, "10.90.3"}, {0, "10.90.1"}, {1, "10.90.2"}} {
		_, err := s.UpsertVerse(ctx, store.UpsertVerseParams{
			TextID: "t", Position: p.pos, Label: p.label,
			Devanagari: "d", IAST: "i", Tokens: []byte(`[]`),
		})
		require.NoError(t, err)
	}

	verses, err := s.ListVerses(ctx, "t")
	require.NoError(t, err)
	require.Len(t, verses, 3)
	assert.Equal(t, []string{"10.90.1", "10.90.2", "10.90.3"},
		[]string{verses[0].Label, verses[1].Label, verses[2].Label})
}

func TestGetVerseNotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.GetVerse(context.Background(), store.GetVerseParams{TextID: "t", Label: "1"})
	assert.True(t, store.IsNoRows(err))
}
