package api

import (
	"net/http"

	"github.com/MohamedRadiWebDev/ACC/internal/store"
)

// DataHandler handles whole-store export, import, and reset.
type DataHandler struct {
	store *store.Store
}

// NewDataHandler creates a new DataHandler.
func NewDataHandler(s *store.Store) *DataHandler {
	return &DataHandler{store: s}
}

// Export handles GET /data/export, dumping every collection as one JSON
// object.
func (h *DataHandler) Export(w http.ResponseWriter, r *http.Request) {
	snap, err := h.store.ExportAll()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

// Import handles POST /data/import?mode=replace|merge. The whole import is
// one store transaction.
func (h *DataHandler) Import(w http.ResponseWriter, r *http.Request) {
	mode := store.ImportMode(r.URL.Query().Get("mode"))
	if mode == "" {
		mode = store.ImportMerge
	}
	var snap store.Snapshot
	if err := decodeBody(r, &snap); err != nil {
		writeError(w, err)
		return
	}
	if err := h.store.ImportSnapshot(&snap, mode); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"mode": mode})
}

// Reset handles POST /data/reset, clearing every collection.
func (h *DataHandler) Reset(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Reset(); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
