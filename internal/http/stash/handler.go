package stash

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/trenthp/raiderCompanion/internal/http/auth"
	"github.com/trenthp/raiderCompanion/internal/stash"
)

type Handler struct {
	svc *stash.Service
}

func NewHandler(svc *stash.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/confirm", h.confirm)
	r.Delete("/{itemID}", h.remove)
}

type entryResponse struct {
	ItemID   string    `json:"item_id"`
	Quantity int       `json:"quantity"`
	Source   string    `json:"source"`
	AddedAt  time.Time `json:"added_at"`
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserID(r.Context())

	entries, err := h.svc.List(r.Context(), userID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp := make([]entryResponse, len(entries))
	for i, e := range entries {
		resp[i] = entryResponse{
			ItemID:   e.ItemID,
			Quantity: e.Quantity,
			Source:   string(e.Source),
			AddedAt:  e.AddedAt,
		}
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type confirmParamsDTO struct {
	ItemID   string `json:"item_id"`
	Quantity int    `json:"quantity"`
	Source   string `json:"source"`
}

type confirmRequest struct {
	Entries []confirmParamsDTO `json:"entries"`
}

type confirmResponse struct {
	Confirmed int `json:"confirmed"`
}

func (h *Handler) confirm(w http.ResponseWriter, r *http.Request) {
	var req confirmRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	params := make([]stash.ConfirmParams, len(req.Entries))
	for i, e := range req.Entries {
		params[i] = stash.ConfirmParams{
			ItemID:   e.ItemID,
			Quantity: e.Quantity,
			Source:   stash.Source(e.Source),
		}
	}

	entries, err := h.svc.ConfirmBatch(r.Context(), auth.UserID(r.Context()), params)
	if err != nil {
		if errors.Is(err, stash.ErrInvalidEntry) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(confirmResponse{Confirmed: len(entries)}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) remove(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "itemID")
	if itemID == "" {
		http.Error(w, "itemID is required", http.StatusBadRequest)
		return
	}

	if err := h.svc.Remove(r.Context(), auth.UserID(r.Context()), itemID); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
