// Package ledger computes running and point-in-time balances from an opening
// balance and a set of transactions. All functions are pure; state lives in
// the store.
package ledger

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/MohamedRadiWebDev/ACC/internal/models"
)

// Entry pairs a transaction id with the balance immediately after applying it.
type Entry struct {
	ID      string          `json:"id"`
	Balance decimal.Decimal `json:"balance"`
}

// SortChronological returns a copy of the transactions in chronological
// order: business date first, createdAt as the tie-break. Both compare
// lexicographically, which equals chronological order for the ISO formats
// used throughout the store. The sort is stable.
func SortChronological(txs []models.Transaction) []models.Transaction {
	sorted := make([]models.Transaction, len(txs))
	copy(sorted, txs)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Date == sorted[j].Date {
			return sorted[i].CreatedAt < sorted[j].CreatedAt
		}
		return sorted[i].Date < sorted[j].Date
	})
	return sorted
}

// Balance folds the transactions over the opening balance, adding IN amounts
// and subtracting OUT amounts. The fold is order-independent; callers that
// need a consistent subset filter before calling.
func Balance(opening decimal.Decimal, txs []models.Transaction) decimal.Decimal {
	acc := opening
	for _, tx := range txs {
		if tx.Direction == models.DirectionIn {
			acc = acc.Add(tx.Amount)
		} else {
			acc = acc.Sub(tx.Amount)
		}
	}
	return acc
}

// BalanceUntil computes the balance as of the given day (inclusive). When
// until is empty the transactions are folded exactly as given; callers that
// pre-sorted for display rely on that.
func BalanceUntil(opening decimal.Decimal, txs []models.Transaction, until string) decimal.Decimal {
	if until == "" {
		return Balance(opening, txs)
	}
	filtered := make([]models.Transaction, 0, len(txs))
	for _, tx := range txs {
		if tx.Date <= until {
			filtered = append(filtered, tx)
		}
	}
	return Balance(opening, SortChronological(filtered))
}

// RunningBalances sorts the transactions chronologically and returns, for
// every transaction, its id paired with the balance immediately after it.
// The last entry's balance equals Balance over the same set.
func RunningBalances(opening decimal.Decimal, txs []models.Transaction) []Entry {
	sorted := SortChronological(txs)
	entries := make([]Entry, 0, len(sorted))
	running := opening
	for _, tx := range sorted {
		if tx.Direction == models.DirectionIn {
			running = running.Add(tx.Amount)
		} else {
			running = running.Sub(tx.Amount)
		}
		entries = append(entries, Entry{ID: tx.ID, Balance: running})
	}
	return entries
}

// BalanceAfter returns the running balance immediately after the target
// transaction in chronological order. If the target id is absent the full
// fold result is returned; absence is a defined fallback, not an error.
func BalanceAfter(opening decimal.Decimal, txs []models.Transaction, targetID string) decimal.Decimal {
	running := opening
	for _, tx := range SortChronological(txs) {
		if tx.Direction == models.DirectionIn {
			running = running.Add(tx.Amount)
		} else {
			running = running.Sub(tx.Amount)
		}
		if tx.ID == targetID {
			return running
		}
	}
	return running
}
