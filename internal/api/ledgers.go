package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/MohamedRadiWebDev/ACC/internal/ledger"
	"github.com/MohamedRadiWebDev/ACC/internal/models"
	"github.com/MohamedRadiWebDev/ACC/internal/store"
)

// LedgersHandler handles the specialized ledgers: treasury, bank statements,
// employee advances, custody funds, and revenue invoices.
type LedgersHandler struct {
	store *store.Store
}

// NewLedgersHandler creates a new LedgersHandler.
func NewLedgersHandler(s *store.Store) *LedgersHandler {
	return &LedgersHandler{store: s}
}

// ListTreasury handles GET /treasury. Rows come back with running balances
// in chronological order.
func (h *LedgersHandler) ListTreasury(w http.ResponseWriter, r *http.Request) {
	txs, err := h.store.ListTreasuryTransactions()
	if err != nil {
		writeError(w, err)
		return
	}
	opening := decimal.Zero
	if v := r.URL.Query().Get("opening"); v != "" {
		parsed, err := decimal.NewFromString(v)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, "invalid_parameter", "opening must be a number")
			return
		}
		opening = parsed
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"treasuryTransactions": ledger.SortTreasury(txs),
		"balance":              ledger.TreasuryBalance(opening, txs),
		"runningBalances":      ledger.TreasuryRunningBalances(opening, txs),
	})
}

// UpsertTreasury handles POST /treasury.
func (h *LedgersHandler) UpsertTreasury(w http.ResponseWriter, r *http.Request) {
	var entry models.TreasuryTransaction
	if err := decodeBody(r, &entry); err != nil {
		writeError(w, err)
		return
	}
	saved, err := h.store.UpsertTreasuryTransaction(&entry)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"treasuryTransaction": saved})
}

// DeleteTreasury handles DELETE /treasury/{id}.
func (h *LedgersHandler) DeleteTreasury(w http.ResponseWriter, r *http.Request) {
	if err := h.store.DeleteTreasuryTransaction(chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListTreasuryCounts handles GET /treasury-counts.
func (h *LedgersHandler) ListTreasuryCounts(w http.ResponseWriter, r *http.Request) {
	counts, err := h.store.ListTreasuryCounts()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"treasuryCounts": counts})
}

// UpsertTreasuryCount handles POST /treasury-counts.
func (h *LedgersHandler) UpsertTreasuryCount(w http.ResponseWriter, r *http.Request) {
	var count models.TreasuryCashCount
	if err := decodeBody(r, &count); err != nil {
		writeError(w, err)
		return
	}
	saved, err := h.store.UpsertTreasuryCount(&count)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"treasuryCount": saved})
}

// ListBank handles GET /bank-transactions.
func (h *LedgersHandler) ListBank(w http.ResponseWriter, r *http.Request) {
	txs, err := h.store.ListBankTransactions()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"bankTransactions": ledger.SortBank(txs),
		"balance":          ledger.BankBalance(decimal.Zero, txs),
	})
}

// UpsertBank handles POST /bank-transactions.
func (h *LedgersHandler) UpsertBank(w http.ResponseWriter, r *http.Request) {
	var entry models.BankTransaction
	if err := decodeBody(r, &entry); err != nil {
		writeError(w, err)
		return
	}
	saved, err := h.store.UpsertBankTransaction(&entry)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"bankTransaction": saved})
}

// DeleteBank handles DELETE /bank-transactions/{id}.
func (h *LedgersHandler) DeleteBank(w http.ResponseWriter, r *http.Request) {
	if err := h.store.DeleteBankTransaction(chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListAdvances handles GET /advances. With an employeeCode query parameter
// the response carries that employee's outstanding advance.
func (h *LedgersHandler) ListAdvances(w http.ResponseWriter, r *http.Request) {
	entries, err := h.store.ListAdvanceTransactions()
	if err != nil {
		writeError(w, err)
		return
	}
	response := map[string]any{"advanceTransactions": entries}
	if code := r.URL.Query().Get("employeeCode"); code != "" {
		response["employeeCode"] = code
		response["balance"] = ledger.AdvanceBalance(entries, code)
	}
	writeJSON(w, http.StatusOK, response)
}

// UpsertAdvance handles POST /advances.
func (h *LedgersHandler) UpsertAdvance(w http.ResponseWriter, r *http.Request) {
	var entry models.AdvanceTransaction
	if err := decodeBody(r, &entry); err != nil {
		writeError(w, err)
		return
	}
	saved, err := h.store.UpsertAdvanceTransaction(&entry)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"advanceTransaction": saved})
}

// DeleteAdvance handles DELETE /advances/{id}.
func (h *LedgersHandler) DeleteAdvance(w http.ResponseWriter, r *http.Request) {
	if err := h.store.DeleteAdvanceTransaction(chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListCustody handles GET /custody. With a paidTo query parameter the
// response carries that payee's open custody balance.
func (h *LedgersHandler) ListCustody(w http.ResponseWriter, r *http.Request) {
	entries, err := h.store.ListCustodyTransactions()
	if err != nil {
		writeError(w, err)
		return
	}
	response := map[string]any{"custodyTransactions": entries}
	if paidTo := r.URL.Query().Get("paidTo"); paidTo != "" {
		response["paidTo"] = paidTo
		response["balance"] = ledger.CustodyBalance(entries, paidTo)
	}
	writeJSON(w, http.StatusOK, response)
}

// UpsertCustody handles POST /custody.
func (h *LedgersHandler) UpsertCustody(w http.ResponseWriter, r *http.Request) {
	var entry models.CustodyTransaction
	if err := decodeBody(r, &entry); err != nil {
		writeError(w, err)
		return
	}
	saved, err := h.store.UpsertCustodyTransaction(&entry)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"custodyTransaction": saved})
}

// DeleteCustody handles DELETE /custody/{id}.
func (h *LedgersHandler) DeleteCustody(w http.ResponseWriter, r *http.Request) {
	if err := h.store.DeleteCustodyTransaction(chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListRevenue handles GET /revenue-invoices.
func (h *LedgersHandler) ListRevenue(w http.ResponseWriter, r *http.Request) {
	invoices, err := h.store.ListRevenueInvoices()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"revenueInvoices": invoices})
}

// UpsertRevenue handles POST /revenue-invoices. Eligibility and delay days
// are derived server-side before the invoice is stored.
func (h *LedgersHandler) UpsertRevenue(w http.ResponseWriter, r *http.Request) {
	var invoice models.RevenueInvoice
	if err := decodeBody(r, &invoice); err != nil {
		writeError(w, err)
		return
	}
	invoice.Eligibility, invoice.DelayDays = ledger.DeriveRevenueStatus(&invoice, models.Today())
	saved, err := h.store.UpsertRevenueInvoice(&invoice)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"revenueInvoice": saved})
}

// DeleteRevenue handles DELETE /revenue-invoices/{id}.
func (h *LedgersHandler) DeleteRevenue(w http.ResponseWriter, r *http.Request) {
	if err := h.store.DeleteRevenueInvoice(chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
