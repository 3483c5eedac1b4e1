package store

import (
	"fmt"

	"github.com/MohamedRadiWebDev/ACC/internal/models"
)

// UpsertTreasuryTransaction saves a treasury row. A row without an id is
// inserted with a fresh id and createdAt; a row carrying an id is written
// back in place.
func (s *Store) UpsertTreasuryTransaction(entry *models.TreasuryTransaction) (*models.TreasuryTransaction, error) {
	if err := entry.Validate(); err != nil {
		return nil, err
	}
	ensureIdentity(&entry.ID, &entry.CreatedAt)
	if err := s.put(BucketTreasuryTxns, entry.ID, entry); err != nil {
		return nil, fmt.Errorf("failed to save treasury transaction: %w", err)
	}
	return entry, nil
}

// ListTreasuryTransactions retrieves all treasury rows.
func (s *Store) ListTreasuryTransactions() ([]models.TreasuryTransaction, error) {
	raw, err := s.list(BucketTreasuryTxns, nil)
	if err != nil {
		return nil, err
	}
	return decodeAll[models.TreasuryTransaction](raw)
}

// DeleteTreasuryTransaction removes a treasury row by id.
func (s *Store) DeleteTreasuryTransaction(id string) error {
	return s.delete(BucketTreasuryTxns, id)
}

// UpsertTreasuryCount saves a treasury cash tally, deriving its total from
// the denomination items.
func (s *Store) UpsertTreasuryCount(count *models.TreasuryCashCount) (*models.TreasuryCashCount, error) {
	if err := models.ValidateDate(count.Date); err != nil {
		return nil, err
	}
	count.TotalCash = models.TreasuryCountTotal(count.Items)
	ensureIdentity(&count.ID, &count.CreatedAt)
	if err := s.put(BucketTreasuryCounts, count.ID, count); err != nil {
		return nil, fmt.Errorf("failed to save treasury count: %w", err)
	}
	return count, nil
}

// ListTreasuryCounts retrieves all treasury cash tallies.
func (s *Store) ListTreasuryCounts() ([]models.TreasuryCashCount, error) {
	raw, err := s.list(BucketTreasuryCounts, nil)
	if err != nil {
		return nil, err
	}
	return decodeAll[models.TreasuryCashCount](raw)
}
