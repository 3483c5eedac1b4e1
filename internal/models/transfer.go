package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transfer moves funds between two accounts. It is created atomically with
// exactly two child transactions (OUT on the source, IN on the destination)
// and never mutated afterwards.
type Transfer struct {
	ID            string          `json:"id"`
	FromAccountID string          `json:"fromAccountId"`
	ToAccountID   string          `json:"toAccountId"`
	Date          string          `json:"date"`
	Amount        decimal.Decimal `json:"amount"`
	Description   string          `json:"description"`
	CreatedAt     string          `json:"createdAt"`
}

// CreateTransferRequest carries the caller-supplied fields for a transfer.
type CreateTransferRequest struct {
	FromAccountID string          `json:"fromAccountId"`
	ToAccountID   string          `json:"toAccountId"`
	Date          string          `json:"date"`
	Amount        decimal.Decimal `json:"amount"`
	Description   string          `json:"description"`
}

// Validate checks the request before any store write happens.
func (r *CreateTransferRequest) Validate() error {
	if r.FromAccountID == "" {
		return Invalid("fromAccountId", "must not be empty")
	}
	if r.ToAccountID == "" {
		return Invalid("toAccountId", "must not be empty")
	}
	if r.FromAccountID == r.ToAccountID {
		return Invalid("toAccountId", "source and destination must differ")
	}
	if err := ValidateDate(r.Date); err != nil {
		return err
	}
	if !r.Amount.IsPositive() {
		return Invalid("amount", "must be positive")
	}
	return nil
}

// NewTransfer materializes a Transfer from a validated request.
func NewTransfer(r *CreateTransferRequest) *Transfer {
	return &Transfer{
		ID:            uuid.NewString(),
		FromAccountID: r.FromAccountID,
		ToAccountID:   r.ToAccountID,
		Date:          r.Date,
		Amount:        r.Amount,
		Description:   r.Description,
		CreatedAt:     NowISO(),
	}
}

// Match is a confirmed link between two transactions in different ledgers
// believed to represent the same real-world movement. Both transactions carry
// MatchID = Match.ID once committed.
type Match struct {
	ID        string `json:"id"`
	TxAID     string `json:"txAId"`
	TxBID     string `json:"txBId"`
	CreatedAt string `json:"createdAt"`
}

// NewMatch builds a Match linking the two transaction ids.
func NewMatch(txAID, txBID string) *Match {
	return &Match{
		ID:        uuid.NewString(),
		TxAID:     txAID,
		TxBID:     txBID,
		CreatedAt: NowISO(),
	}
}
