package store

import (
	"encoding/json"
	"fmt"

	bolt "go.etcd.io/bbolt"

	"github.com/MohamedRadiWebDev/ACC/internal/models"
)

// ImportMode selects how an imported snapshot is applied.
type ImportMode string

const (
	// ImportReplace clears every collection before loading the snapshot.
	ImportReplace ImportMode = "replace"
	// ImportMerge loads the snapshot over the existing records; records with
	// the same id are overwritten.
	ImportMerge ImportMode = "merge"
)

// Snapshot is the full store contents as one JSON object keyed by collection
// name. Exporting and re-importing in replace mode reproduces the store
// exactly, ids and timestamps included.
type Snapshot struct {
	Accounts             []models.Account             `json:"accounts"`
	Transactions         []models.Transaction         `json:"transactions"`
	Transfers            []models.Transfer            `json:"transfers"`
	Matches              []models.Match               `json:"matches"`
	CashCounts           []models.CashCount           `json:"cashCounts"`
	BalanceSnapshots     []models.BalanceSnapshot     `json:"balanceSnapshots"`
	TreasuryTransactions []models.TreasuryTransaction `json:"treasuryTransactions"`
	TreasuryCounts       []models.TreasuryCashCount   `json:"treasuryCounts"`
	RevenueInvoices      []models.RevenueInvoice      `json:"revenueInvoices"`
	BankTransactions     []models.BankTransaction     `json:"bankTransactions"`
	AdvanceTransactions  []models.AdvanceTransaction  `json:"advanceTransactions"`
	CustodyTransactions  []models.CustodyTransaction  `json:"custodyTransactions"`
}

// readAll decodes every record of one bucket within the given transaction.
func readAll[T any](tx *bolt.Tx, bucketName string) ([]T, error) {
	b := tx.Bucket([]byte(bucketName))
	if b == nil {
		return nil, fmt.Errorf("bucket %s not found", bucketName)
	}
	out := make([]T, 0)
	err := b.ForEach(func(k, v []byte) error {
		var item T
		if err := json.Unmarshal(v, &item); err != nil {
			return fmt.Errorf("failed to decode %s record: %w", bucketName, err)
		}
		out = append(out, item)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// putAll bulk-writes records into one bucket within the given transaction.
func putAll[T any](tx *bolt.Tx, bucketName string, records []T, id func(T) string) error {
	for _, r := range records {
		key := id(r)
		if key == "" {
			return models.Invalid("id", fmt.Sprintf("%s record without id", bucketName))
		}
		if err := putRecord(tx, bucketName, key, r); err != nil {
			return err
		}
	}
	return nil
}

// ExportAll dumps every collection in one read transaction.
func (s *Store) ExportAll() (*Snapshot, error) {
	snap := &Snapshot{}
	err := s.db.View(func(tx *bolt.Tx) error {
		var err error
		if snap.Accounts, err = readAll[models.Account](tx, BucketAccounts); err != nil {
			return err
		}
		if snap.Transactions, err = readAll[models.Transaction](tx, BucketTransactions); err != nil {
			return err
		}
		if snap.Transfers, err = readAll[models.Transfer](tx, BucketTransfers); err != nil {
			return err
		}
		if snap.Matches, err = readAll[models.Match](tx, BucketMatches); err != nil {
			return err
		}
		if snap.CashCounts, err = readAll[models.CashCount](tx, BucketCashCounts); err != nil {
			return err
		}
		if snap.BalanceSnapshots, err = readAll[models.BalanceSnapshot](tx, BucketBalanceSnapshots); err != nil {
			return err
		}
		if snap.TreasuryTransactions, err = readAll[models.TreasuryTransaction](tx, BucketTreasuryTxns); err != nil {
			return err
		}
		if snap.TreasuryCounts, err = readAll[models.TreasuryCashCount](tx, BucketTreasuryCounts); err != nil {
			return err
		}
		if snap.RevenueInvoices, err = readAll[models.RevenueInvoice](tx, BucketRevenueInvoices); err != nil {
			return err
		}
		if snap.BankTransactions, err = readAll[models.BankTransaction](tx, BucketBankTxns); err != nil {
			return err
		}
		if snap.AdvanceTransactions, err = readAll[models.AdvanceTransaction](tx, BucketAdvanceTxns); err != nil {
			return err
		}
		if snap.CustodyTransactions, err = readAll[models.CustodyTransaction](tx, BucketCustodyTxns); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return snap, nil
}

// ImportSnapshot loads a snapshot into the store. Replace mode clears every
// collection first; merge mode overlays the snapshot onto existing records.
// Either way the whole import is one transaction: a failure partway leaves
// the store untouched.
func (s *Store) ImportSnapshot(snap *Snapshot, mode ImportMode) error {
	if mode != ImportReplace && mode != ImportMerge {
		return models.Invalid("mode", "must be replace or merge")
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		if mode == ImportReplace {
			if err := clearAll(tx); err != nil {
				return err
			}
		}
		if err := putAll(tx, BucketAccounts, snap.Accounts, func(r models.Account) string { return r.ID }); err != nil {
			return err
		}
		if err := putAll(tx, BucketTransactions, snap.Transactions, func(r models.Transaction) string { return r.ID }); err != nil {
			return err
		}
		if err := putAll(tx, BucketTransfers, snap.Transfers, func(r models.Transfer) string { return r.ID }); err != nil {
			return err
		}
		if err := putAll(tx, BucketMatches, snap.Matches, func(r models.Match) string { return r.ID }); err != nil {
			return err
		}
		if err := putAll(tx, BucketCashCounts, snap.CashCounts, func(r models.CashCount) string { return r.ID }); err != nil {
			return err
		}
		if err := putAll(tx, BucketBalanceSnapshots, snap.BalanceSnapshots, func(r models.BalanceSnapshot) string { return r.ID }); err != nil {
			return err
		}
		if err := putAll(tx, BucketTreasuryTxns, snap.TreasuryTransactions, func(r models.TreasuryTransaction) string { return r.ID }); err != nil {
			return err
		}
		if err := putAll(tx, BucketTreasuryCounts, snap.TreasuryCounts, func(r models.TreasuryCashCount) string { return r.ID }); err != nil {
			return err
		}
		if err := putAll(tx, BucketRevenueInvoices, snap.RevenueInvoices, func(r models.RevenueInvoice) string { return r.ID }); err != nil {
			return err
		}
		if err := putAll(tx, BucketBankTxns, snap.BankTransactions, func(r models.BankTransaction) string { return r.ID }); err != nil {
			return err
		}
		if err := putAll(tx, BucketAdvanceTxns, snap.AdvanceTransactions, func(r models.AdvanceTransaction) string { return r.ID }); err != nil {
			return err
		}
		if err := putAll(tx, BucketCustodyTxns, snap.CustodyTransactions, func(r models.CustodyTransaction) string { return r.ID }); err != nil {
			return err
		}
		return nil
	})
}

// Reset clears every collection in one transaction.
func (s *Store) Reset() error {
	return s.db.Update(clearAll)
}

func clearAll(tx *bolt.Tx) error {
	for _, bucket := range buckets {
		if err := tx.DeleteBucket([]byte(bucket)); err != nil {
			return fmt.Errorf("failed to clear bucket %s: %w", bucket, err)
		}
		if _, err := tx.CreateBucket([]byte(bucket)); err != nil {
			return fmt.Errorf("failed to recreate bucket %s: %w", bucket, err)
		}
	}
	return nil
}

// Stats returns the record count of every collection.
func (s *Store) Stats() (map[string]int, error) {
	stats := make(map[string]int, len(buckets))
	err := s.db.View(func(tx *bolt.Tx) error {
		for _, bucket := range buckets {
			b := tx.Bucket([]byte(bucket))
			if b == nil {
				return fmt.Errorf("bucket %s not found", bucket)
			}
			stats[bucket] = b.Stats().KeyN
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return stats, nil
}
