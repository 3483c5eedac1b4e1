// Package store is the durable record store. Every entity lives in its own
// bbolt bucket as a JSON-encoded record keyed by its uuid. Multi-row
// operations (transfers, matches, cash-count upserts, imports) run inside a
// single bbolt update transaction so they commit or roll back as one unit.
package store

import (
	"encoding/json"
	"errors"
	"fmt"

	bolt "go.etcd.io/bbolt"
)

// ErrNotFound is returned when a record is not found.
var ErrNotFound = errors.New("record not found")

// Bucket names, one per entity collection. They double as the collection
// keys of the JSON snapshot format.
const (
	BucketAccounts         = "accounts"
	BucketTransactions     = "transactions"
	BucketTransfers        = "transfers"
	BucketMatches          = "matches"
	BucketCashCounts       = "cashCounts"
	BucketBalanceSnapshots = "balanceSnapshots"
	BucketTreasuryTxns     = "treasuryTransactions"
	BucketTreasuryCounts   = "treasuryCounts"
	BucketRevenueInvoices  = "revenueInvoices"
	BucketBankTxns         = "bankTransactions"
	BucketAdvanceTxns      = "advanceTransactions"
	BucketCustodyTxns      = "custodyTransactions"
)

var buckets = []string{
	BucketAccounts,
	BucketTransactions,
	BucketTransfers,
	BucketMatches,
	BucketCashCounts,
	BucketBalanceSnapshots,
	BucketTreasuryTxns,
	BucketTreasuryCounts,
	BucketRevenueInvoices,
	BucketBankTxns,
	BucketAdvanceTxns,
	BucketCustodyTxns,
}

// Store wraps the bbolt database. It assumes a single local writer; bbolt's
// own transaction isolation is the only synchronization.
type Store struct {
	db *bolt.DB
}

// Open opens the database file and initializes all buckets.
func Open(dbPath string) (*Store, error) {
	db, err := bolt.Open(dbPath, 0o600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, bucket := range buckets {
			if _, err := tx.CreateBucketIfNotExists([]byte(bucket)); err != nil {
				return fmt.Errorf("failed to create bucket %s: %w", bucket, err)
			}
		}
		return nil
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// putRecord writes a record into a bucket within the given transaction.
func putRecord(tx *bolt.Tx, bucketName, id string, value any) error {
	b := tx.Bucket([]byte(bucketName))
	if b == nil {
		return fmt.Errorf("bucket %s not found", bucketName)
	}
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}
	return b.Put([]byte(id), data)
}

// getRecord reads a record from a bucket within the given transaction.
func getRecord(tx *bolt.Tx, bucketName, id string, value any) error {
	b := tx.Bucket([]byte(bucketName))
	if b == nil {
		return fmt.Errorf("bucket %s not found", bucketName)
	}
	data := b.Get([]byte(id))
	if data == nil {
		return ErrNotFound
	}
	return json.Unmarshal(data, value)
}

// deleteRecord removes a record from a bucket within the given transaction.
func deleteRecord(tx *bolt.Tx, bucketName, id string) error {
	b := tx.Bucket([]byte(bucketName))
	if b == nil {
		return fmt.Errorf("bucket %s not found", bucketName)
	}
	return b.Delete([]byte(id))
}

// put writes a single record in its own transaction.
func (s *Store) put(bucketName, id string, value any) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return putRecord(tx, bucketName, id, value)
	})
}

// get reads a single record in a read transaction.
func (s *Store) get(bucketName, id string, value any) error {
	return s.db.View(func(tx *bolt.Tx) error {
		return getRecord(tx, bucketName, id, value)
	})
}

// delete removes a single record in its own transaction.
func (s *Store) delete(bucketName, id string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return deleteRecord(tx, bucketName, id)
	})
}

// list collects every raw record in a bucket, optionally filtered.
func (s *Store) list(bucketName string, filter func(data []byte) bool) ([][]byte, error) {
	var results [][]byte

	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketName))
		if b == nil {
			return fmt.Errorf("bucket %s not found", bucketName)
		}
		return b.ForEach(func(k, v []byte) error {
			if filter == nil || filter(v) {
				// Copy the value since it's only valid during the transaction.
				copied := make([]byte, len(v))
				copy(copied, v)
				results = append(results, copied)
			}
			return nil
		})
	})

	return results, err
}

// decodeAll unmarshals raw records into a typed slice.
func decodeAll[T any](raw [][]byte) ([]T, error) {
	out := make([]T, 0, len(raw))
	for _, data := range raw {
		var item T
		if err := json.Unmarshal(data, &item); err != nil {
			return nil, fmt.Errorf("failed to unmarshal record: %w", err)
		}
		out = append(out, item)
	}
	return out, nil
}
