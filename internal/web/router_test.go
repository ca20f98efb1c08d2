package web

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veda-tools/vedadiff/internal/store"
	"github.com/veda-tools/vedadiff/internal/store/sqlite"
)

func newTestHandler(t *testing.T) http.Handler {
	t.Helper()
	ctx := context.Background()

	st, err := sqlite.New(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	_, err = st.UpsertText(ctx, store.UpsertTextParams{
		ID:     "rv10-090",
		Title:  "Purusha Sūktam (Ṛg Veda 10.90)",
		Source: "SanskritDocuments.org",
	})
	require.NoError(t, err)

	_, err = st.UpsertVerse(ctx, store.UpsertVerseParams{
		TextID:     "rv10-090",
		Position:   0,
		Label:      "10.90.1",
		Devanagari: "स॒हस्र॑शीर्षा॒ पुरु॑षः",
		IAST:       "sa॒hasra॑śīrṣā॒ puru॑ṣaḥ",
		Tokens:     []byte(`[{"idx":0,"devanagari":"स॒हस्र॑शीर्षा॒","iast":"sa॒hasra॑śīrṣā॒"}]`),
	})
	require.NoError(t, err)

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewRouter(st, log).Handler()
}

func doRequest(t *testing.T, h http.Handler, method, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	req.RemoteAddr = "192.0.2.1:1234"
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestListTexts(t *testing.T) {
	h := newTestHandler(t)

	rec := doRequest(t, h, http.MethodGet, "/api/v1/texts")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body struct {
		Data []struct {
			ID         string `json:"id"`
			Title      string `json:"title"`
			VerseCount int    `json:"verse_count"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Data, 1)
	assert.Equal(t, "rv10-090", body.Data[0].ID)
	assert.Equal(t, 1, body.Data[0].VerseCount)
}

func TestGetText(t *testing.T) {
	h := newTestHandler(t)

	rec := doRequest(t, h, http.MethodGet, "/api/v1/texts/rv10-090")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		ID     string `json:"id"`
		Verses []struct {
			Number     string          `json:"number"`
			Devanagari string          `json:"devanagari"`
			Tokens     json.RawMessage `json:"tokens"`
		} `json:"verses"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "rv10-090", body.ID)
	require.Len(t, body.Verses, 1)
	assert.Equal(t, "10.90.1", body.Verses[0].Number)
	assert.Equal(t, "स॒हस्र॑शीर्षा॒ पुरु॑षः", body.Verses[0].Devanagari)
	assert.NotEmpty(t, body.Verses[0].Tokens)
}

func TestGetTextNotFound(t *testing.T) {
	h := newTestHandler(t)

	rec := doRequest(t, h, http.MethodGet, "/api/v1/texts/nope")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetVerse(t *testing.T) {
	h := newTestHandler(t)

	rec := doRequest(t, h, http.MethodGet, "/api/v1/texts/rv10-090/verses/10.90.1")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Number string `json:"number"`
		IAST   string `json:"iast"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "10.90.1", body.Number)
	assert.Equal(t, "sa॒hasra॑śīrṣā॒ puru॑ṣaḥ", body.IAST)
}

func TestGetVerseNotFound(t *testing.T) {
	h := newTestHandler(t)

	rec := doRequest(t, h, http.MethodGet, "/api/v1/texts/rv10-090/verses/10.90.99")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCORSHeaders(t *testing.T) {
	h := newTestHandler(t)

	rec := doRequest(t, h, http.MethodGet, "/api/v1/texts")
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))

	rec = doRequest(t, h, http.MethodOptions, "/api/v1/texts")
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestCacheControl(t *testing.T) {
	h := newTestHandler(t)

	rec := doRequest(t, h, http.MethodGet, "/api/v1/texts")
	assert.Contains(t, rec.Header().Get("Cache-Control"), "s-maxage=60")
}

func TestMethodNotAllowed(t *testing.T) {
	h := newTestHandler(t)

	rec := doRequest(t, h, http.MethodPost, "/api/v1/texts")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
