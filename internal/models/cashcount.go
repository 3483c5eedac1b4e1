package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CashCountItem is one denomination row in a physical cash tally. Fit notes
// are undamaged, torn notes damaged; both count toward the total.
type CashCountItem struct {
	Denomination decimal.Decimal `json:"denomination"`
	CountFit     int64           `json:"countFit"`
	CountTorn    int64           `json:"countTorn"`
}

// CashCount is a physical cash tally for a cashbox account on one day.
// At most one count exists per (cashboxAccountId, date); saving again on the
// same day overwrites the items while keeping the record's identity.
type CashCount struct {
	ID               string          `json:"id"`
	CashboxAccountID string          `json:"cashboxAccountId"`
	Date             string          `json:"date"`
	Items            []CashCountItem `json:"items"`
	TotalCash        decimal.Decimal `json:"totalCash"`
	CreatedAt        string          `json:"createdAt"`
}

// CashCountTotal sums denomination × (fit + torn) over the items.
func CashCountTotal(items []CashCountItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		notes := decimal.NewFromInt(item.CountFit + item.CountTorn)
		total = total.Add(item.Denomination.Mul(notes))
	}
	return total
}

// CreateCashCountRequest carries the caller-supplied fields for a cash count.
type CreateCashCountRequest struct {
	CashboxAccountID string          `json:"cashboxAccountId"`
	Date             string          `json:"date"`
	Items            []CashCountItem `json:"items"`
}

// Validate checks the request before it reaches the store.
func (r *CreateCashCountRequest) Validate() error {
	if r.CashboxAccountID == "" {
		return Invalid("cashboxAccountId", "must not be empty")
	}
	if err := ValidateDate(r.Date); err != nil {
		return err
	}
	for _, item := range r.Items {
		if item.Denomination.IsNegative() {
			return Invalid("items", "denomination must not be negative")
		}
		if item.CountFit < 0 || item.CountTorn < 0 {
			return Invalid("items", "note counts must not be negative")
		}
	}
	return nil
}

// NewCashCount materializes a CashCount from a validated request, deriving
// and persisting the total.
func NewCashCount(r *CreateCashCountRequest) *CashCount {
	return &CashCount{
		ID:               uuid.NewString(),
		CashboxAccountID: r.CashboxAccountID,
		Date:             r.Date,
		Items:            r.Items,
		TotalCash:        CashCountTotal(r.Items),
		CreatedAt:        NowISO(),
	}
}

// BalanceSnapshot records an externally observed balance (bank or wallet
// statement figure) for an account on a given day. It is the ground truth a
// computed balance is compared against.
type BalanceSnapshot struct {
	ID            string          `json:"id"`
	AccountID     string          `json:"accountId"`
	Date          string          `json:"date"`
	ActualBalance decimal.Decimal `json:"actualBalance"`
	Notes         string          `json:"notes,omitempty"`
	CreatedAt     string          `json:"createdAt"`
}

// CreateBalanceSnapshotRequest carries the caller-supplied snapshot fields.
type CreateBalanceSnapshotRequest struct {
	AccountID     string          `json:"accountId"`
	Date          string          `json:"date"`
	ActualBalance decimal.Decimal `json:"actualBalance"`
	Notes         string          `json:"notes,omitempty"`
}

// Validate checks the request before it reaches the store.
func (r *CreateBalanceSnapshotRequest) Validate() error {
	if r.AccountID == "" {
		return Invalid("accountId", "must not be empty")
	}
	return ValidateDate(r.Date)
}

// NewBalanceSnapshot materializes a BalanceSnapshot from a validated request.
func NewBalanceSnapshot(r *CreateBalanceSnapshotRequest) *BalanceSnapshot {
	return &BalanceSnapshot{
		ID:            uuid.NewString(),
		AccountID:     r.AccountID,
		Date:          r.Date,
		ActualBalance: r.ActualBalance,
		Notes:         r.Notes,
		CreatedAt:     NowISO(),
	}
}
