package api

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/MohamedRadiWebDev/ACC/internal/models"
	"github.com/MohamedRadiWebDev/ACC/internal/reconcile"
	"github.com/MohamedRadiWebDev/ACC/internal/store"
)

// MatchesHandler handles match endpoints: suggestions across the cash and
// digital ledgers and the commit path linking two transactions.
type MatchesHandler struct {
	store         *store.Store
	toleranceDays int
	keyword       string
}

// NewMatchesHandler creates a new MatchesHandler. toleranceDays and keyword
// are the configured defaults for the suggestion engine.
func NewMatchesHandler(s *store.Store, toleranceDays int, keyword string) *MatchesHandler {
	return &MatchesHandler{store: s, toleranceDays: toleranceDays, keyword: keyword}
}

// List handles GET /matches.
func (h *MatchesHandler) List(w http.ResponseWriter, r *http.Request) {
	matches, err := h.store.ListMatches()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"matches": matches})
}

// Suggest handles GET /matches/suggestions. It pairs unmatched cash-ledger
// transactions against unmatched digital-ledger transactions, scored and
// sorted by the suggestion engine. toleranceDays can be overridden per call.
func (h *MatchesHandler) Suggest(w http.ResponseWriter, r *http.Request) {
	tolerance := h.toleranceDays
	if v := r.URL.Query().Get("toleranceDays"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 0 {
			writeJSONError(w, http.StatusBadRequest, "invalid_parameter", "toleranceDays must be a non-negative integer")
			return
		}
		tolerance = parsed
	}

	cash, err := h.store.ListTransactions(store.TransactionFilter{Ledger: models.LedgerCashbox, Unmatched: true})
	if err != nil {
		writeError(w, err)
		return
	}
	digital, err := h.store.ListTransactions(store.TransactionFilter{Ledger: models.LedgerDigital, Unmatched: true})
	if err != nil {
		writeError(w, err)
		return
	}

	suggestions := reconcile.SuggestMatches(cash, digital, tolerance, h.keyword)
	writeJSON(w, http.StatusOK, map[string]any{"suggestions": suggestions})
}

// CreateMatchRequest carries the two transaction ids to link.
type CreateMatchRequest struct {
	TxAID string `json:"txAId"`
	TxBID string `json:"txBId"`
}

// Create handles POST /matches. Linking is unconditional: re-matching an
// already-matched transaction replaces its link and leaves the superseded
// Match record behind, so log when that happens.
func (h *MatchesHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateMatchRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	for _, id := range []string{req.TxAID, req.TxBID} {
		if txn, err := h.store.GetTransaction(id); err == nil && txn.MatchID != nil {
			slog.Warn("re-matching transaction, previous match left orphaned",
				"transaction_id", id, "previous_match_id", *txn.MatchID)
		}
	}

	match, err := h.store.CreateMatch(req.TxAID, req.TxBID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"match": match})
}
