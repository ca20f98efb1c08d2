package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/samber/lo"

	"github.com/veda-tools/vedadiff/internal/store"
)

type TextHandler struct {
	store store.Store
	log   *slog.Logger
}

func NewTextHandler(st store.Store, log *slog.Logger) *TextHandler {
	return &TextHandler{store: st, log: log}
}

type textSummary struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Source     string `json:"source"`
	VerseCount int    `json:"verse_count"`
	CreatedAt  string `json:"created_at"`
}

type verseResponse struct {
	Label      string          `json:"number"`
	Devanagari string          `json:"devanagari"`
	IAST       string          `json:"iast"`
	Tokens     json.RawMessage `json:"tokens"`
}

type textResponse struct {
	ID     string          `json:"id"`
	Title  string          `json:"title"`
	Source string          `json:"source"`
	Verses []verseResponse `json:"verses"`
}

func toVerseResponse(v store.Verse) verseResponse {
	tokens := json.RawMessage(v.Tokens)
	if len(tokens) == 0 {
		tokens = json.RawMessage("[]")
	}
	return verseResponse{
		Label:      v.Label,
		Devanagari: v.Devanagari,
		IAST:       v.IAST,
		Tokens:     tokens,
	}
}

// List handles GET /api/v1/texts.
func (h *TextHandler) List(w http.ResponseWriter, r *http.Request) {
	texts, err := h.store.ListTexts(r.Context())
	if err != nil {
		h.log.ErrorContext(r.Context(), "listing texts", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	summaries := make([]textSummary, 0, len(texts))
	for _, t := range texts {
		verses, err := h.store.ListVerses(r.Context(), t.ID)
		if err != nil {
			h.log.ErrorContext(r.Context(), "listing verses", "text", t.ID, "error", err)
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		summaries = append(summaries, textSummary{
			ID:         t.ID,
			Title:      t.Title,
			Source:     t.Source,
			VerseCount: len(verses),
			CreatedAt:  t.CreatedAt.Format(time.RFC3339),
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": summaries})
}

// Get handles GET /api/v1/texts/{id}: the whole converted document.
func (h *TextHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	text, err := h.store.GetText(r.Context(), id)
	if store.IsNoRows(err) {
		writeError(w, http.StatusNotFound, "text not found")
		return
	}
	if err != nil {
		h.log.ErrorContext(r.Context(), "getting text", "text", id, "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	verses, err := h.store.ListVerses(r.Context(), id)
	if err != nil {
		h.log.ErrorContext(r.Context(), "listing verses", "text", id, "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, textResponse{
		ID:     text.ID,
		Title:  text.Title,
		Source: text.Source,
		Verses: lo.Map(verses, func(v store.Verse, _ int) verseResponse {
			return toVerseResponse(v)
		}),
	})
}

// GetVerse handles GET /api/v1/texts/{id}/verses/{label}.
func (h *TextHandler) GetVerse(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	label := r.PathValue("label")

	v, err := h.store.GetVerse(r.Context(), store.GetVerseParams{TextID: id, Label: label})
	if store.IsNoRows(err) {
		writeError(w, http.StatusNotFound, "verse not found")
		return
	}
	if err != nil {
		h.log.ErrorContext(r.Context(), "getting verse", "text", id, "label", label, "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, toVerseResponse(v))
}
