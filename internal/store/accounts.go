package store

import (
	"encoding/json"
	"fmt"

	bolt "go.etcd.io/bbolt"

	"github.com/MohamedRadiWebDev/ACC/internal/models"
)

// CreateAccount validates the request and inserts a new account.
func (s *Store) CreateAccount(req *models.CreateAccountRequest) (*models.Account, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	account := models.NewAccount(req)
	if err := s.put(BucketAccounts, account.ID, account); err != nil {
		return nil, fmt.Errorf("failed to save account: %w", err)
	}
	return account, nil
}

// GetAccount retrieves an account by id.
func (s *Store) GetAccount(id string) (*models.Account, error) {
	var account models.Account
	if err := s.get(BucketAccounts, id, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

// ListAccounts retrieves all accounts.
func (s *Store) ListAccounts() ([]models.Account, error) {
	raw, err := s.list(BucketAccounts, nil)
	if err != nil {
		return nil, err
	}
	return decodeAll[models.Account](raw)
}

// UpdateAccount applies a patch to an existing account and bumps updatedAt.
// The opening balance is patchable; changing it after transactions exist
// shifts every historical balance.
func (s *Store) UpdateAccount(id string, patch *models.UpdateAccountRequest) (*models.Account, error) {
	var account models.Account
	err := s.db.Update(func(tx *bolt.Tx) error {
		if err := getRecord(tx, BucketAccounts, id, &account); err != nil {
			return err
		}
		if patch.Name != nil {
			account.Name = *patch.Name
		}
		if patch.Provider != nil {
			account.Provider = patch.Provider
		}
		if patch.OpeningBalance != nil {
			account.OpeningBalance = *patch.OpeningBalance
		}
		if patch.Notes != nil {
			account.Notes = *patch.Notes
		}
		account.UpdatedAt = models.NowISO()
		return putRecord(tx, BucketAccounts, id, &account)
	})
	if err != nil {
		return nil, err
	}
	return &account, nil
}

// DeleteAccount removes an account together with all of its transactions in
// one transaction.
func (s *Store) DeleteAccount(id string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		if err := deleteRecord(tx, BucketAccounts, id); err != nil {
			return err
		}
		b := tx.Bucket([]byte(BucketTransactions))
		if b == nil {
			return fmt.Errorf("bucket %s not found", BucketTransactions)
		}
		var orphaned []string
		err := b.ForEach(func(k, v []byte) error {
			var txn models.Transaction
			if err := json.Unmarshal(v, &txn); err != nil {
				return fmt.Errorf("failed to unmarshal transaction: %w", err)
			}
			if txn.AccountID == id {
				orphaned = append(orphaned, txn.ID)
			}
			return nil
		})
		if err != nil {
			return err
		}
		for _, txID := range orphaned {
			if err := b.Delete([]byte(txID)); err != nil {
				return err
			}
		}
		return nil
	})
}
