package models

import "github.com/shopspring/decimal"

// AdvanceType marks an advance-ledger entry as money handed out or paid back.
type AdvanceType string

const (
	AdvanceIssued AdvanceType = "ADVANCE"
	AdvanceRepaid AdvanceType = "REPAYMENT"
)

// AdvanceTransaction is a row in the employee-advance ledger. An employee's
// outstanding advance is the sum of ADVANCE entries minus REPAYMENT entries.
type AdvanceTransaction struct {
	ID              string          `json:"id"`
	Date            string          `json:"date"`
	Month           string          `json:"month,omitempty"`
	EmployeeCode    string          `json:"employeeCode"`
	EmployeeName    string          `json:"employeeName,omitempty"`
	Department      string          `json:"department,omitempty"`
	Type            AdvanceType     `json:"type"`
	Amount          decimal.Decimal `json:"amount"`
	RepaymentMethod string          `json:"repaymentMethod,omitempty"`
	CreatedAt       string          `json:"createdAt"`
}

// Validate checks the entry before it reaches the store.
func (t *AdvanceTransaction) Validate() error {
	if t.EmployeeCode == "" {
		return Invalid("employeeCode", "must not be empty")
	}
	if err := ValidateDate(t.Date); err != nil {
		return err
	}
	if t.Type != AdvanceIssued && t.Type != AdvanceRepaid {
		return Invalid("type", "must be ADVANCE or REPAYMENT")
	}
	if !t.Amount.IsPositive() {
		return Invalid("amount", "must be positive")
	}
	return nil
}
