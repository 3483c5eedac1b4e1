package api

import (
	"net/http"

	"github.com/MohamedRadiWebDev/ACC/internal/models"
	"github.com/MohamedRadiWebDev/ACC/internal/store"
)

// CashCountsHandler handles physical cash-count endpoints.
type CashCountsHandler struct {
	store *store.Store
}

// NewCashCountsHandler creates a new CashCountsHandler.
func NewCashCountsHandler(s *store.Store) *CashCountsHandler {
	return &CashCountsHandler{store: s}
}

// List handles GET /cash-counts with an optional accountId filter.
func (h *CashCountsHandler) List(w http.ResponseWriter, r *http.Request) {
	counts, err := h.store.ListCashCounts(r.URL.Query().Get("accountId"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"cashCounts": counts})
}

// Put handles POST /cash-counts. Saving twice for the same account and day
// overwrites that day's count; the response says which path was taken.
func (h *CashCountsHandler) Put(w http.ResponseWriter, r *http.Request) {
	var req models.CreateCashCountRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	count, outcome, err := h.store.PutCashCount(&req)
	if err != nil {
		writeError(w, err)
		return
	}
	status := http.StatusCreated
	if outcome == store.Updated {
		status = http.StatusOK
	}
	writeJSON(w, status, map[string]any{
		"cashCount": count,
		"outcome":   outcome,
	})
}
