package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MohamedRadiWebDev/ACC/internal/models"
	"github.com/MohamedRadiWebDev/ACC/internal/store"
)

// SnapshotsHandler handles balance-snapshot endpoints.
type SnapshotsHandler struct {
	store *store.Store
}

// NewSnapshotsHandler creates a new SnapshotsHandler.
func NewSnapshotsHandler(s *store.Store) *SnapshotsHandler {
	return &SnapshotsHandler{store: s}
}

// List handles GET /balance-snapshots with an optional accountId filter.
func (h *SnapshotsHandler) List(w http.ResponseWriter, r *http.Request) {
	snaps, err := h.store.ListBalanceSnapshots(r.URL.Query().Get("accountId"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"balanceSnapshots": snaps})
}

// Create handles POST /balance-snapshots.
func (h *SnapshotsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateBalanceSnapshotRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	snap, err := h.store.CreateBalanceSnapshot(&req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"balanceSnapshot": snap})
}

// Update handles PUT /balance-snapshots/{id}.
func (h *SnapshotsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var patch store.UpdateBalanceSnapshotRequest
	if err := decodeBody(r, &patch); err != nil {
		writeError(w, err)
		return
	}
	snap, err := h.store.UpdateBalanceSnapshot(chi.URLParam(r, "id"), &patch)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"balanceSnapshot": snap})
}

// Delete handles DELETE /balance-snapshots/{id}.
func (h *SnapshotsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.store.DeleteBalanceSnapshot(chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
