package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MohamedRadiWebDev/ACC/internal/ledger"
	"github.com/MohamedRadiWebDev/ACC/internal/models"
	"github.com/MohamedRadiWebDev/ACC/internal/reconcile"
	"github.com/MohamedRadiWebDev/ACC/internal/store"
)

// AccountsHandler handles account endpoints, including the derived balance
// and variance views.
type AccountsHandler struct {
	store *store.Store
}

// NewAccountsHandler creates a new AccountsHandler.
func NewAccountsHandler(s *store.Store) *AccountsHandler {
	return &AccountsHandler{store: s}
}

// List handles GET /accounts.
func (h *AccountsHandler) List(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.store.ListAccounts()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"accounts": accounts})
}

// Create handles POST /accounts.
func (h *AccountsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateAccountRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	account, err := h.store.CreateAccount(&req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"account": account})
}

// Get handles GET /accounts/{id}.
func (h *AccountsHandler) Get(w http.ResponseWriter, r *http.Request) {
	account, err := h.store.GetAccount(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"account": account})
}

// Update handles PUT /accounts/{id}.
func (h *AccountsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var patch models.UpdateAccountRequest
	if err := decodeBody(r, &patch); err != nil {
		writeError(w, err)
		return
	}
	account, err := h.store.UpdateAccount(chi.URLParam(r, "id"), &patch)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"account": account})
}

// Delete handles DELETE /accounts/{id}. The account's transactions go with it.
func (h *AccountsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.store.DeleteAccount(chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Balance handles GET /accounts/{id}/balance. The optional until query
// parameter computes the balance as of that day (inclusive).
func (h *AccountsHandler) Balance(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	account, err := h.store.GetAccount(id)
	if err != nil {
		writeError(w, err)
		return
	}
	txs, err := h.store.ListTransactions(store.TransactionFilter{AccountID: id})
	if err != nil {
		writeError(w, err)
		return
	}

	until := r.URL.Query().Get("until")
	if until != "" {
		if err := models.ValidateDate(until); err != nil {
			writeError(w, err)
			return
		}
	}
	balance := ledger.BalanceUntil(account.OpeningBalance, txs, until)
	writeJSON(w, http.StatusOK, map[string]any{
		"accountId": id,
		"until":     until,
		"balance":   balance,
	})
}

// RunningBalances handles GET /accounts/{id}/running-balances, returning
// {id, balance} pairs in chronological order.
func (h *AccountsHandler) RunningBalances(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	account, err := h.store.GetAccount(id)
	if err != nil {
		writeError(w, err)
		return
	}
	txs, err := h.store.ListTransactions(store.TransactionFilter{AccountID: id})
	if err != nil {
		writeError(w, err)
		return
	}
	entries := ledger.RunningBalances(account.OpeningBalance, txs)
	writeJSON(w, http.StatusOK, map[string]any{
		"accountId": id,
		"entries":   entries,
	})
}

// Variance handles GET /accounts/{id}/variance. Cashbox accounts reconcile
// against their latest physical cash count; bank and wallet accounts against
// their latest balance snapshot. Positive variance means surplus.
func (h *AccountsHandler) Variance(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	account, err := h.store.GetAccount(id)
	if err != nil {
		writeError(w, err)
		return
	}
	txs, err := h.store.ListTransactions(store.TransactionFilter{AccountID: id})
	if err != nil {
		writeError(w, err)
		return
	}

	var observedDate string
	var variance any
	if account.Type == models.AccountCashbox {
		count, err := h.store.LatestCashCount(id)
		if errors.Is(err, store.ErrNotFound) {
			writeJSONError(w, http.StatusNotFound, "not_found", "no cash count recorded for account")
			return
		}
		if err != nil {
			writeError(w, err)
			return
		}
		observedDate = count.Date
		variance = reconcile.CashVariance(account.OpeningBalance, txs, count)
	} else {
		snap, err := h.store.LatestBalanceSnapshot(id)
		if errors.Is(err, store.ErrNotFound) {
			writeJSONError(w, http.StatusNotFound, "not_found", "no balance snapshot recorded for account")
			return
		}
		if err != nil {
			writeError(w, err)
			return
		}
		observedDate = snap.Date
		variance = reconcile.SnapshotVariance(account.OpeningBalance, txs, snap)
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"accountId": id,
		"date":      observedDate,
		"variance":  variance,
	})
}
