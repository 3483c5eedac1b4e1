package models

import "github.com/shopspring/decimal"

// TreasuryTransaction is a row in the company treasury ledger. Unlike account
// transactions it carries separate in/out amounts instead of a direction.
type TreasuryTransaction struct {
	ID           string          `json:"id"`
	Date         string          `json:"date"`
	Description  string          `json:"description"`
	PayeeCompany string          `json:"payeeCompany,omitempty"`
	InvoiceNo    string          `json:"invoiceNo,omitempty"`
	EmployeeCode string          `json:"employeeCode,omitempty"`
	EmployeeName string          `json:"employeeName,omitempty"`
	Department   string          `json:"department,omitempty"`
	Branch       string          `json:"branch,omitempty"`
	ExpenseType  string          `json:"expenseType,omitempty"`
	ReceiptOutNo string          `json:"receiptOutNo,omitempty"`
	ReceiptInNo  string          `json:"receiptInNo,omitempty"`
	Approved     bool            `json:"approved"`
	InAmount     decimal.Decimal `json:"inAmount"`
	OutAmount    decimal.Decimal `json:"outAmount"`
	CreatedAt    string          `json:"createdAt"`
}

// Validate checks the entry before it reaches the store.
func (t *TreasuryTransaction) Validate() error {
	if err := ValidateDate(t.Date); err != nil {
		return err
	}
	if t.InAmount.IsNegative() || t.OutAmount.IsNegative() {
		return Invalid("amount", "in/out amounts must not be negative")
	}
	return nil
}

// TreasuryCountItem is one denomination row in a treasury cash tally.
type TreasuryCountItem struct {
	Denomination decimal.Decimal `json:"denomination"`
	Count        int64           `json:"count"`
}

// TreasuryCashCount is a physical tally of the treasury on one day.
type TreasuryCashCount struct {
	ID        string              `json:"id"`
	Date      string              `json:"date"`
	Items     []TreasuryCountItem `json:"items"`
	TotalCash decimal.Decimal     `json:"totalCash"`
	CreatedAt string              `json:"createdAt"`
}

// TreasuryCountTotal sums denomination × count over the items.
func TreasuryCountTotal(items []TreasuryCountItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Denomination.Mul(decimal.NewFromInt(item.Count)))
	}
	return total
}
