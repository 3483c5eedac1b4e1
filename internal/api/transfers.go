package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MohamedRadiWebDev/ACC/internal/models"
	"github.com/MohamedRadiWebDev/ACC/internal/store"
)

// TransfersHandler handles transfer endpoints.
type TransfersHandler struct {
	store *store.Store
}

// NewTransfersHandler creates a new TransfersHandler.
func NewTransfersHandler(s *store.Store) *TransfersHandler {
	return &TransfersHandler{store: s}
}

// List handles GET /transfers.
func (h *TransfersHandler) List(w http.ResponseWriter, r *http.Request) {
	transfers, err := h.store.ListTransfers()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"transfers": transfers})
}

// Create handles POST /transfers. The transfer and its two transaction legs
// are written atomically.
func (h *TransfersHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateTransferRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	transfer, err := h.store.CreateTransfer(&req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"transfer": transfer})
}

// Get handles GET /transfers/{id}.
func (h *TransfersHandler) Get(w http.ResponseWriter, r *http.Request) {
	transfer, err := h.store.GetTransfer(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"transfer": transfer})
}
