package stashimport

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/trenthp/raiderCompanion/internal/catalog"
	"github.com/trenthp/raiderCompanion/internal/encoding"
	"github.com/trenthp/raiderCompanion/internal/ocr"
)

const maxUploadSize = 10 << 20 // 10 MiB

type Handler struct {
	pipeline   *ocr.Pipeline
	catalogSvc *catalog.Service
	threshold  float64
	ocrTimeout time.Duration
}

func NewHandler(pipeline *ocr.Pipeline, catalogSvc *catalog.Service, threshold float64, ocrTimeout time.Duration) *Handler {
	return &Handler{
		pipeline:   pipeline,
		catalogSvc: catalogSvc,
		threshold:  threshold,
		ocrTimeout: ocrTimeout,
	}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/image", h.importImage)
	r.Post("/text", h.importText)
}

type matchResultResponse struct {
	Text                       string  `json:"text"`
	Quantity                   int     `json:"quantity"`
	MatchedItemID              string  `json:"matched_item_id,omitempty"`
	Confidence                 float64 `json:"confidence"`
	RequiresManualConfirmation bool    `json:"requires_manual_confirmation"`
}

type importResponse struct {
	Results []matchResultResponse `json:"results"`
}

func (h *Handler) importImage(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		http.Error(w, "failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	file, _, err := r.FormFile("image")
	if err != nil {
		http.Error(w, "image field is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	snapshot, err := h.catalogSvc.Snapshot(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.ocrTimeout)
	defer cancel()

	results, err := h.pipeline.ProcessImage(ctx, file, snapshot)
	if err != nil {
		// Recognition failures are retriable by the user with the same or a
		// different screenshot.
		if errors.Is(err, ocr.ErrRecognition) || errors.Is(err, context.DeadlineExceeded) {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	writeResults(w, results)
}

func (h *Handler) importText(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		http.Error(w, "failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file field is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	utf8r, err := encoding.NewUTF8Reader(file)
	if err != nil {
		http.Error(w, "failed to read text list: "+err.Error(), http.StatusBadRequest)
		return
	}

	raw, err := io.ReadAll(utf8r)
	if err != nil {
		http.Error(w, "failed to read text list: "+err.Error(), http.StatusBadRequest)
		return
	}

	snapshot, err := h.catalogSvc.Snapshot(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	results := ocr.MatchAll(ocr.Segment(string(raw)), snapshot, h.threshold)

	writeResults(w, results)
}

func writeResults(w http.ResponseWriter, results []ocr.MatchResult) {
	resp := importResponse{Results: make([]matchResultResponse, len(results))}

	for i, res := range results {
		resp.Results[i] = matchResultResponse{
			Text:                       res.Text,
			Quantity:                   res.Quantity,
			MatchedItemID:              res.MatchedItemID,
			Confidence:                 res.Confidence,
			RequiresManualConfirmation: res.RequiresManualConfirmation,
		}
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
