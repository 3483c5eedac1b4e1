package store

import (
	"fmt"

	"github.com/google/uuid"
	bolt "go.etcd.io/bbolt"

	"github.com/MohamedRadiWebDev/ACC/internal/models"
)

// CreateTransfer moves funds between two accounts. It inserts the Transfer
// record and exactly two child transactions (OUT on the source, IN on the
// destination) in one transaction; a failure at any step leaves no partial
// triple behind. Wallet accounts post to the DIGITAL ledger.
func (s *Store) CreateTransfer(req *models.CreateTransferRequest) (*models.Transfer, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	transfer := models.NewTransfer(req)
	err := s.db.Update(func(tx *bolt.Tx) error {
		var from, to models.Account
		if err := getRecord(tx, BucketAccounts, req.FromAccountID, &from); err != nil {
			return fmt.Errorf("source account %s: %w", req.FromAccountID, err)
		}
		if err := getRecord(tx, BucketAccounts, req.ToAccountID, &to); err != nil {
			return fmt.Errorf("destination account %s: %w", req.ToAccountID, err)
		}

		if err := putRecord(tx, BucketTransfers, transfer.ID, transfer); err != nil {
			return fmt.Errorf("failed to save transfer: %w", err)
		}

		legs := []struct {
			account   *models.Account
			direction models.Direction
		}{
			{&from, models.DirectionOut},
			{&to, models.DirectionIn},
		}
		now := models.NowISO()
		for _, leg := range legs {
			txn := &models.Transaction{
				ID:          uuid.NewString(),
				Ledger:      leg.account.Ledger(),
				AccountID:   leg.account.ID,
				Date:        req.Date,
				Direction:   leg.direction,
				Amount:      req.Amount,
				Description: req.Description,
				TransferID:  &transfer.ID,
				MatchID:     nil,
				Source:      models.SourceTransfer,
				CreatedAt:   now,
				UpdatedAt:   now,
			}
			if err := putRecord(tx, BucketTransactions, txn.ID, txn); err != nil {
				return fmt.Errorf("failed to save transfer leg: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return transfer, nil
}

// GetTransfer retrieves a transfer by id.
func (s *Store) GetTransfer(id string) (*models.Transfer, error) {
	var transfer models.Transfer
	if err := s.get(BucketTransfers, id, &transfer); err != nil {
		return nil, err
	}
	return &transfer, nil
}

// ListTransfers retrieves all transfers.
func (s *Store) ListTransfers() ([]models.Transfer, error) {
	raw, err := s.list(BucketTransfers, nil)
	if err != nil {
		return nil, err
	}
	return decodeAll[models.Transfer](raw)
}
