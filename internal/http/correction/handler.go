package correction

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/trenthp/raiderCompanion/internal/correction"
	"github.com/trenthp/raiderCompanion/internal/http/auth"
)

type Handler struct {
	svc *correction.Service
}

func NewHandler(svc *correction.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.record)
	r.Get("/suggest", h.suggest)
}

type recordRequest struct {
	OriginalText    string `json:"original_text"`
	CorrectedItemID string `json:"corrected_item_id"`
}

type recordResponse struct {
	OriginalText    string  `json:"original_text"`
	CorrectedItemID string  `json:"corrected_item_id"`
	Confidence      float64 `json:"confidence"`
	Timestamp       string  `json:"timestamp"`
	Approved        bool    `json:"approved"`
}

func (h *Handler) record(w http.ResponseWriter, r *http.Request) {
	var req recordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if req.OriginalText == "" || req.CorrectedItemID == "" {
		http.Error(w, "original_text and corrected_item_id are required", http.StatusBadRequest)
		return
	}

	c, err := h.svc.Record(r.Context(), auth.UserID(r.Context()), req.OriginalText, req.CorrectedItemID)
	if err != nil {
		// A failed append is surfaced so the client can retry the single
		// correction without redoing the whole OCR flow.
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(recordResponse{
		OriginalText:    c.OriginalText,
		CorrectedItemID: c.CorrectedItemID,
		Confidence:      c.Confidence,
		Timestamp:       c.Timestamp,
		Approved:        c.Approved,
	}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type suggestResponse struct {
	OriginalText    string `json:"original_text"`
	CorrectedItemID string `json:"corrected_item_id"`
}

func (h *Handler) suggest(w http.ResponseWriter, r *http.Request) {
	originalText := r.URL.Query().Get("original_text")
	if originalText == "" {
		http.Error(w, "original_text query parameter is required", http.StatusBadRequest)
		return
	}

	itemID, err := h.svc.Suggest(r.Context(), auth.UserID(r.Context()), originalText)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(suggestResponse{
		OriginalText:    originalText,
		CorrectedItemID: itemID,
	}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
