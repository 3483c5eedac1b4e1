package store

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
	bolt "go.etcd.io/bbolt"

	"github.com/MohamedRadiWebDev/ACC/internal/models"
)

// CreateBalanceSnapshot records an externally observed balance.
func (s *Store) CreateBalanceSnapshot(req *models.CreateBalanceSnapshotRequest) (*models.BalanceSnapshot, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	snap := models.NewBalanceSnapshot(req)
	if err := s.put(BucketBalanceSnapshots, snap.ID, snap); err != nil {
		return nil, fmt.Errorf("failed to save balance snapshot: %w", err)
	}
	return snap, nil
}

// GetBalanceSnapshot retrieves a snapshot by id.
func (s *Store) GetBalanceSnapshot(id string) (*models.BalanceSnapshot, error) {
	var snap models.BalanceSnapshot
	if err := s.get(BucketBalanceSnapshots, id, &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

// ListBalanceSnapshots retrieves snapshots, optionally restricted to one
// account.
func (s *Store) ListBalanceSnapshots(accountID string) ([]models.BalanceSnapshot, error) {
	filter := func(data []byte) bool {
		if accountID == "" {
			return true
		}
		var snap models.BalanceSnapshot
		if err := json.Unmarshal(data, &snap); err != nil {
			return false
		}
		return snap.AccountID == accountID
	}

	raw, err := s.list(BucketBalanceSnapshots, filter)
	if err != nil {
		return nil, err
	}
	return decodeAll[models.BalanceSnapshot](raw)
}

// UpdateBalanceSnapshotRequest patches an existing snapshot. Nil fields are
// left as-is.
type UpdateBalanceSnapshotRequest struct {
	Date          *string          `json:"date,omitempty"`
	ActualBalance *decimal.Decimal `json:"actualBalance,omitempty"`
	Notes         *string          `json:"notes,omitempty"`
}

// UpdateBalanceSnapshot applies a patch to an existing snapshot.
func (s *Store) UpdateBalanceSnapshot(id string, patch *UpdateBalanceSnapshotRequest) (*models.BalanceSnapshot, error) {
	if patch.Date != nil {
		if err := models.ValidateDate(*patch.Date); err != nil {
			return nil, err
		}
	}

	var snap models.BalanceSnapshot
	err := s.db.Update(func(tx *bolt.Tx) error {
		if err := getRecord(tx, BucketBalanceSnapshots, id, &snap); err != nil {
			return err
		}
		if patch.Date != nil {
			snap.Date = *patch.Date
		}
		if patch.ActualBalance != nil {
			snap.ActualBalance = *patch.ActualBalance
		}
		if patch.Notes != nil {
			snap.Notes = *patch.Notes
		}
		return putRecord(tx, BucketBalanceSnapshots, id, &snap)
	})
	if err != nil {
		return nil, err
	}
	return &snap, nil
}

// DeleteBalanceSnapshot removes a snapshot by id.
func (s *Store) DeleteBalanceSnapshot(id string) error {
	return s.delete(BucketBalanceSnapshots, id)
}

// LatestBalanceSnapshot returns the account's most recent snapshot by date
// (createdAt breaks ties), or ErrNotFound when none exists.
func (s *Store) LatestBalanceSnapshot(accountID string) (*models.BalanceSnapshot, error) {
	snaps, err := s.ListBalanceSnapshots(accountID)
	if err != nil {
		return nil, err
	}
	if len(snaps) == 0 {
		return nil, ErrNotFound
	}
	latest := snaps[0]
	for _, snap := range snaps[1:] {
		if snap.Date > latest.Date ||
			(snap.Date == latest.Date && snap.CreatedAt > latest.CreatedAt) {
			latest = snap
		}
	}
	return &latest, nil
}
