package reconcile

import (
	"github.com/shopspring/decimal"

	"github.com/MohamedRadiWebDev/ACC/internal/ledger"
	"github.com/MohamedRadiWebDev/ACC/internal/models"
)

// CashVariance compares a physical cash tally against the computed balance
// as of the count's date. Positive means more cash than the ledger shows
// (surplus), negative a shortage, zero reconciled.
func CashVariance(opening decimal.Decimal, txs []models.Transaction, count *models.CashCount) decimal.Decimal {
	computed := ledger.BalanceUntil(opening, txs, count.Date)
	return count.TotalCash.Sub(computed)
}

// SnapshotVariance compares an externally observed balance (bank or wallet
// statement figure) against the computed balance as of the snapshot's date,
// with the same sign convention as CashVariance.
func SnapshotVariance(opening decimal.Decimal, txs []models.Transaction, snap *models.BalanceSnapshot) decimal.Decimal {
	computed := ledger.BalanceUntil(opening, txs, snap.Date)
	return snap.ActualBalance.Sub(computed)
}
