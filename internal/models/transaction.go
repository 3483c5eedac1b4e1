package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func init() {
	// The JSON snapshot format carries amounts as plain numbers.
	decimal.MarshalJSONWithoutQuotes = true
}

// LedgerType names the balance bucket a transaction is folded into.
type LedgerType string

const (
	LedgerCashbox LedgerType = "CASHBOX"
	LedgerDigital LedgerType = "DIGITAL"
	LedgerBank    LedgerType = "BANK"
)

// Direction marks a transaction as inflow or outflow.
type Direction string

const (
	DirectionIn  Direction = "IN"
	DirectionOut Direction = "OUT"
)

// Transaction provenance tags.
const (
	SourceManual   = "Manual"
	SourceTransfer = "Transfer"
	SourceImport   = "Import"
)

// Transaction is a single ledger movement against one account. Amount is
// always positive; Direction determines its sign in a balance fold. Date is
// the business day; CreatedAt is the write-time stamp used only as an
// ordering tie-break.
type Transaction struct {
	ID               string          `json:"id"`
	Ledger           LedgerType      `json:"ledger"`
	AccountID        string          `json:"accountId"`
	Date             string          `json:"date"`
	Direction        Direction       `json:"direction"`
	Amount           decimal.Decimal `json:"amount"`
	Description      string          `json:"description"`
	CounterpartyName string          `json:"counterpartyName,omitempty"`
	EmployeeCode     string          `json:"employeeCode,omitempty"`
	EmployeeName     string          `json:"employeeName,omitempty"`
	Department       string          `json:"department,omitempty"`
	Branch           string          `json:"branch,omitempty"`
	Category         string          `json:"category,omitempty"`
	InvoiceNo        string          `json:"invoiceNo,omitempty"`
	ReceiptOutNo     string          `json:"receiptOutNo,omitempty"`
	ReceiptInNo      string          `json:"receiptInNo,omitempty"`
	Approved         bool            `json:"approved,omitempty"`
	Notes            string          `json:"notes,omitempty"`
	TransferID       *string         `json:"transferId"`
	MatchID          *string         `json:"matchId"`
	Source           string          `json:"source,omitempty"`
	CreatedAt        string          `json:"createdAt"`
	UpdatedAt        string          `json:"updatedAt"`
}

// CreateTransactionRequest carries the caller-supplied fields for a manual
// transaction entry.
type CreateTransactionRequest struct {
	Ledger           LedgerType      `json:"ledger"`
	AccountID        string          `json:"accountId"`
	Date             string          `json:"date"`
	Direction        Direction       `json:"direction"`
	Amount           decimal.Decimal `json:"amount"`
	Description      string          `json:"description"`
	CounterpartyName string          `json:"counterpartyName,omitempty"`
	EmployeeCode     string          `json:"employeeCode,omitempty"`
	EmployeeName     string          `json:"employeeName,omitempty"`
	Department       string          `json:"department,omitempty"`
	Branch           string          `json:"branch,omitempty"`
	Category         string          `json:"category,omitempty"`
	InvoiceNo        string          `json:"invoiceNo,omitempty"`
	ReceiptOutNo     string          `json:"receiptOutNo,omitempty"`
	ReceiptInNo      string          `json:"receiptInNo,omitempty"`
	Approved         bool            `json:"approved,omitempty"`
	Notes            string          `json:"notes,omitempty"`
	Source           string          `json:"source,omitempty"`
}

// Validate checks the request before it reaches the store.
func (r *CreateTransactionRequest) Validate() error {
	switch r.Ledger {
	case LedgerCashbox, LedgerDigital, LedgerBank:
	default:
		return Invalid("ledger", "unknown ledger")
	}
	if r.AccountID == "" {
		return Invalid("accountId", "must not be empty")
	}
	if err := ValidateDate(r.Date); err != nil {
		return err
	}
	if r.Direction != DirectionIn && r.Direction != DirectionOut {
		return Invalid("direction", "must be IN or OUT")
	}
	if !r.Amount.IsPositive() {
		return Invalid("amount", "must be positive")
	}
	return nil
}

// NewTransaction materializes a Transaction from a validated request.
func NewTransaction(r *CreateTransactionRequest) *Transaction {
	now := NowISO()
	source := r.Source
	if source == "" {
		source = SourceManual
	}
	return &Transaction{
		ID:               uuid.NewString(),
		Ledger:           r.Ledger,
		AccountID:        r.AccountID,
		Date:             r.Date,
		Direction:        r.Direction,
		Amount:           r.Amount,
		Description:      r.Description,
		CounterpartyName: r.CounterpartyName,
		EmployeeCode:     r.EmployeeCode,
		EmployeeName:     r.EmployeeName,
		Department:       r.Department,
		Branch:           r.Branch,
		Category:         r.Category,
		InvoiceNo:        r.InvoiceNo,
		ReceiptOutNo:     r.ReceiptOutNo,
		ReceiptInNo:      r.ReceiptInNo,
		Approved:         r.Approved,
		Notes:            r.Notes,
		TransferID:       nil,
		MatchID:          nil,
		Source:           source,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}
