package store

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
	bolt "go.etcd.io/bbolt"

	"github.com/MohamedRadiWebDev/ACC/internal/models"
)

// TransactionFilter narrows ListTransactions. Zero-valued fields match
// everything.
type TransactionFilter struct {
	AccountID string
	Ledger    models.LedgerType
	Unmatched bool
}

// CreateTransaction validates the request and inserts a manual transaction.
func (s *Store) CreateTransaction(req *models.CreateTransactionRequest) (*models.Transaction, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	txn := models.NewTransaction(req)
	if err := s.put(BucketTransactions, txn.ID, txn); err != nil {
		return nil, fmt.Errorf("failed to save transaction: %w", err)
	}
	return txn, nil
}

// GetTransaction retrieves a transaction by id.
func (s *Store) GetTransaction(id string) (*models.Transaction, error) {
	var txn models.Transaction
	if err := s.get(BucketTransactions, id, &txn); err != nil {
		return nil, err
	}
	return &txn, nil
}

// ListTransactions retrieves transactions matching the filter, in storage
// order. Callers needing chronological order sort with the ledger package.
func (s *Store) ListTransactions(filter TransactionFilter) ([]models.Transaction, error) {
	match := func(data []byte) bool {
		var txn models.Transaction
		if err := json.Unmarshal(data, &txn); err != nil {
			return false
		}
		if filter.AccountID != "" && txn.AccountID != filter.AccountID {
			return false
		}
		if filter.Ledger != "" && txn.Ledger != filter.Ledger {
			return false
		}
		if filter.Unmatched && txn.MatchID != nil {
			return false
		}
		return true
	}

	raw, err := s.list(BucketTransactions, match)
	if err != nil {
		return nil, err
	}
	return decodeAll[models.Transaction](raw)
}

// UpdateTransactionRequest patches an existing transaction. Nil fields are
// left as-is.
type UpdateTransactionRequest struct {
	Date        *string           `json:"date,omitempty"`
	Direction   *models.Direction `json:"direction,omitempty"`
	Amount      *decimal.Decimal  `json:"amount,omitempty"`
	Description *string           `json:"description,omitempty"`
	Category    *string           `json:"category,omitempty"`
	Approved    *bool             `json:"approved,omitempty"`
	Notes       *string           `json:"notes,omitempty"`
}

// UpdateTransaction applies a patch to an existing transaction and bumps
// updatedAt.
func (s *Store) UpdateTransaction(id string, patch *UpdateTransactionRequest) (*models.Transaction, error) {
	if patch.Date != nil {
		if err := models.ValidateDate(*patch.Date); err != nil {
			return nil, err
		}
	}
	if patch.Amount != nil && !patch.Amount.IsPositive() {
		return nil, models.Invalid("amount", "must be positive")
	}
	if patch.Direction != nil && *patch.Direction != models.DirectionIn && *patch.Direction != models.DirectionOut {
		return nil, models.Invalid("direction", "must be IN or OUT")
	}

	var txn models.Transaction
	err := s.db.Update(func(tx *bolt.Tx) error {
		if err := getRecord(tx, BucketTransactions, id, &txn); err != nil {
			return err
		}
		if patch.Date != nil {
			txn.Date = *patch.Date
		}
		if patch.Direction != nil {
			txn.Direction = *patch.Direction
		}
		if patch.Amount != nil {
			txn.Amount = *patch.Amount
		}
		if patch.Description != nil {
			txn.Description = *patch.Description
		}
		if patch.Category != nil {
			txn.Category = *patch.Category
		}
		if patch.Approved != nil {
			txn.Approved = *patch.Approved
		}
		if patch.Notes != nil {
			txn.Notes = *patch.Notes
		}
		txn.UpdatedAt = models.NowISO()
		return putRecord(tx, BucketTransactions, id, &txn)
	})
	if err != nil {
		return nil, err
	}
	return &txn, nil
}

// DeleteTransaction removes a transaction by id.
func (s *Store) DeleteTransaction(id string) error {
	return s.delete(BucketTransactions, id)
}
