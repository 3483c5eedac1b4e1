package models

import "github.com/shopspring/decimal"

// CustodyType marks a custody-ledger entry as funds handed over or settled.
type CustodyType string

const (
	CustodyIssued  CustodyType = "CUSTODY"
	CustodySettled CustodyType = "SETTLEMENT"
)

// CustodyTransaction is a row in the custody-funds ledger. A payee's open
// custody is the sum of CUSTODY entries minus SETTLEMENT entries.
type CustodyTransaction struct {
	ID                   string          `json:"id"`
	Date                 string          `json:"date"`
	Month                string          `json:"month,omitempty"`
	Description          string          `json:"description,omitempty"`
	PaidTo               string          `json:"paidTo"`
	InvoiceOrEmployeeRef string          `json:"invoiceOrEmployeeRef,omitempty"`
	Department           string          `json:"department,omitempty"`
	Classification       string          `json:"classification,omitempty"`
	ExpenseType          string          `json:"expenseType,omitempty"`
	ReceiptRef           string          `json:"receiptRef,omitempty"`
	Type                 CustodyType     `json:"type"`
	Amount               decimal.Decimal `json:"amount"`
	CreatedAt            string          `json:"createdAt"`
}

// Validate checks the entry before it reaches the store.
func (t *CustodyTransaction) Validate() error {
	if t.PaidTo == "" {
		return Invalid("paidTo", "must not be empty")
	}
	if err := ValidateDate(t.Date); err != nil {
		return err
	}
	if t.Type != CustodyIssued && t.Type != CustodySettled {
		return Invalid("type", "must be CUSTODY or SETTLEMENT")
	}
	if !t.Amount.IsPositive() {
		return Invalid("amount", "must be positive")
	}
	return nil
}
