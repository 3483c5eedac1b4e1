package store

import (
	"fmt"

	bolt "go.etcd.io/bbolt"

	"github.com/MohamedRadiWebDev/ACC/internal/models"
)

// CreateMatch links two transactions as one real-world movement. The Match
// record and both matchId back-references are written in one transaction; a
// missing transaction aborts the whole operation. An existing matchId is
// overwritten without deleting the superseded Match record, mirroring the
// first system's behavior (the stale row stays orphaned).
func (s *Store) CreateMatch(txAID, txBID string) (*models.Match, error) {
	if txAID == "" || txBID == "" {
		return nil, models.Invalid("txId", "both transaction ids are required")
	}
	if txAID == txBID {
		return nil, models.Invalid("txId", "cannot match a transaction with itself")
	}

	match := models.NewMatch(txAID, txBID)
	err := s.db.Update(func(tx *bolt.Tx) error {
		if err := putRecord(tx, BucketMatches, match.ID, match); err != nil {
			return fmt.Errorf("failed to save match: %w", err)
		}
		for _, txnID := range []string{txAID, txBID} {
			var txn models.Transaction
			if err := getRecord(tx, BucketTransactions, txnID, &txn); err != nil {
				return fmt.Errorf("transaction %s: %w", txnID, err)
			}
			txn.MatchID = &match.ID
			txn.UpdatedAt = models.NowISO()
			if err := putRecord(tx, BucketTransactions, txnID, &txn); err != nil {
				return fmt.Errorf("failed to link transaction %s: %w", txnID, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return match, nil
}

// GetMatch retrieves a match by id.
func (s *Store) GetMatch(id string) (*models.Match, error) {
	var match models.Match
	if err := s.get(BucketMatches, id, &match); err != nil {
		return nil, err
	}
	return &match, nil
}

// ListMatches retrieves all matches.
func (s *Store) ListMatches() ([]models.Match, error) {
	raw, err := s.list(BucketMatches, nil)
	if err != nil {
		return nil, err
	}
	return decodeAll[models.Match](raw)
}
