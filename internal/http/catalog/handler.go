package catalog

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/trenthp/raiderCompanion/internal/catalog"
	"github.com/trenthp/raiderCompanion/internal/gamedata"
)

type Handler struct {
	svc     *catalog.Service
	syncSvc *gamedata.Service
}

func NewHandler(svc *catalog.Service, syncSvc *gamedata.Service) *Handler {
	return &Handler{svc: svc, syncSvc: syncSvc}
}

// Routes are the public, read-only item endpoints.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
}

type entryResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Rarity    string `json:"rarity"`
	Type      string `json:"type"`
	IconURL   string `json:"icon_url,omitempty"`
	StackSize int    `json:"stack_size"`
	SellValue int    `json:"sell_value"`
}

func toEntryResponse(e catalog.Entry) entryResponse {
	return entryResponse{
		ID:        e.ID,
		Name:      e.Name,
		Rarity:    string(e.Rarity),
		Type:      string(e.Type),
		IconURL:   e.IconURL,
		StackSize: e.StackSize,
		SellValue: e.SellValue,
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	entries, err := h.svc.Snapshot(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp := make([]entryResponse, len(entries))
	for i, e := range entries {
		resp[i] = toEntryResponse(e)
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	entry, err := h.svc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if entry == nil {
		http.Error(w, "item not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toEntryResponse(*entry)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type syncResponse struct {
	Synced int `json:"synced"`
}

// Sync pulls the latest item data from the game-data API. Mounted behind
// auth by the router.
func (h *Handler) Sync(w http.ResponseWriter, r *http.Request) {
	count, err := h.syncSvc.Sync(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(syncResponse{Synced: count}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
