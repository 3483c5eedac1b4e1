package models

import "github.com/shopspring/decimal"

// BankTransaction is a row in a bank statement ledger, kept in the bank's own
// credit/debit convention. Balance is the statement's printed figure when
// available; computed balances come from the ledger engine.
type BankTransaction struct {
	ID          string           `json:"id"`
	BankName    string           `json:"bankName"`
	Date        string           `json:"date"`
	Description string           `json:"description"`
	Credit      decimal.Decimal  `json:"credit"`
	Debit       decimal.Decimal  `json:"debit"`
	Balance     *decimal.Decimal `json:"balance,omitempty"`
	CreatedAt   string           `json:"createdAt"`
}

// Validate checks the entry before it reaches the store.
func (t *BankTransaction) Validate() error {
	if t.BankName == "" {
		return Invalid("bankName", "must not be empty")
	}
	if err := ValidateDate(t.Date); err != nil {
		return err
	}
	if t.Credit.IsNegative() || t.Debit.IsNegative() {
		return Invalid("amount", "credit/debit must not be negative")
	}
	return nil
}
