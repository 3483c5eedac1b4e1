package store

import (
	"encoding/json"
	"fmt"

	bolt "go.etcd.io/bbolt"

	"github.com/MohamedRadiWebDev/ACC/internal/models"
)

// UpsertOutcome tells whether a cash-count save inserted a new record or
// overwrote the day's existing one.
type UpsertOutcome string

const (
	Inserted UpsertOutcome = "inserted"
	Updated  UpsertOutcome = "updated"
)

// PutCashCount saves a physical cash tally. Counts are keyed by
// (cashboxAccountId, date): a second save on the same day overwrites the
// prior count's items and total while preserving its id and createdAt. This
// is the only upsert-by-composite-key path in the model.
func (s *Store) PutCashCount(req *models.CreateCashCountRequest) (*models.CashCount, UpsertOutcome, error) {
	if err := req.Validate(); err != nil {
		return nil, "", err
	}

	count := models.NewCashCount(req)
	outcome := Inserted
	err := s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(BucketCashCounts))
		if b == nil {
			return fmt.Errorf("bucket %s not found", BucketCashCounts)
		}
		// Composite-key lookup before insert.
		err := b.ForEach(func(k, v []byte) error {
			var existing models.CashCount
			if err := json.Unmarshal(v, &existing); err != nil {
				return fmt.Errorf("failed to unmarshal cash count: %w", err)
			}
			if existing.CashboxAccountID == req.CashboxAccountID && existing.Date == req.Date {
				count.ID = existing.ID
				count.CreatedAt = existing.CreatedAt
				outcome = Updated
			}
			return nil
		})
		if err != nil {
			return err
		}
		return putRecord(tx, BucketCashCounts, count.ID, count)
	})
	if err != nil {
		return nil, "", err
	}
	return count, outcome, nil
}

// ListCashCounts retrieves cash counts, optionally restricted to one cashbox
// account.
func (s *Store) ListCashCounts(cashboxAccountID string) ([]models.CashCount, error) {
	filter := func(data []byte) bool {
		if cashboxAccountID == "" {
			return true
		}
		var count models.CashCount
		if err := json.Unmarshal(data, &count); err != nil {
			return false
		}
		return count.CashboxAccountID == cashboxAccountID
	}

	raw, err := s.list(BucketCashCounts, filter)
	if err != nil {
		return nil, err
	}
	return decodeAll[models.CashCount](raw)
}

// LatestCashCount returns the account's most recent count by date (createdAt
// breaks ties), or ErrNotFound when no count exists.
func (s *Store) LatestCashCount(cashboxAccountID string) (*models.CashCount, error) {
	counts, err := s.ListCashCounts(cashboxAccountID)
	if err != nil {
		return nil, err
	}
	if len(counts) == 0 {
		return nil, ErrNotFound
	}
	latest := counts[0]
	for _, count := range counts[1:] {
		if count.Date > latest.Date ||
			(count.Date == latest.Date && count.CreatedAt > latest.CreatedAt) {
			latest = count
		}
	}
	return &latest, nil
}
