package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MohamedRadiWebDev/ACC/internal/models"
	"github.com/MohamedRadiWebDev/ACC/internal/store"
)

// TransactionsHandler handles transaction endpoints.
type TransactionsHandler struct {
	store *store.Store
}

// NewTransactionsHandler creates a new TransactionsHandler.
func NewTransactionsHandler(s *store.Store) *TransactionsHandler {
	return &TransactionsHandler{store: s}
}

// List handles GET /transactions with optional accountId, ledger, and
// unmatched query filters.
func (h *TransactionsHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := store.TransactionFilter{
		AccountID: r.URL.Query().Get("accountId"),
		Ledger:    models.LedgerType(r.URL.Query().Get("ledger")),
		Unmatched: r.URL.Query().Get("unmatched") == "true",
	}
	txs, err := h.store.ListTransactions(filter)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"transactions": txs})
}

// Create handles POST /transactions.
func (h *TransactionsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateTransactionRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	txn, err := h.store.CreateTransaction(&req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"transaction": txn})
}

// Get handles GET /transactions/{id}.
func (h *TransactionsHandler) Get(w http.ResponseWriter, r *http.Request) {
	txn, err := h.store.GetTransaction(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"transaction": txn})
}

// Update handles PUT /transactions/{id}.
func (h *TransactionsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var patch store.UpdateTransactionRequest
	if err := decodeBody(r, &patch); err != nil {
		writeError(w, err)
		return
	}
	txn, err := h.store.UpdateTransaction(chi.URLParam(r, "id"), &patch)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"transaction": txn})
}

// Delete handles DELETE /transactions/{id}.
func (h *TransactionsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.store.DeleteTransaction(chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
