package store

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/MohamedRadiWebDev/ACC/internal/models"
)

// The bank, advance, custody, and revenue ledgers all share the treasury
// ledger's save contract: no id means insert with fresh identity, an id
// means write back in place.

// UpsertBankTransaction saves a bank statement row.
func (s *Store) UpsertBankTransaction(entry *models.BankTransaction) (*models.BankTransaction, error) {
	if err := entry.Validate(); err != nil {
		return nil, err
	}
	ensureIdentity(&entry.ID, &entry.CreatedAt)
	if err := s.put(BucketBankTxns, entry.ID, entry); err != nil {
		return nil, fmt.Errorf("failed to save bank transaction: %w", err)
	}
	return entry, nil
}

// ListBankTransactions retrieves all bank rows.
func (s *Store) ListBankTransactions() ([]models.BankTransaction, error) {
	raw, err := s.list(BucketBankTxns, nil)
	if err != nil {
		return nil, err
	}
	return decodeAll[models.BankTransaction](raw)
}

// DeleteBankTransaction removes a bank row by id.
func (s *Store) DeleteBankTransaction(id string) error {
	return s.delete(BucketBankTxns, id)
}

// UpsertAdvanceTransaction saves an employee-advance row.
func (s *Store) UpsertAdvanceTransaction(entry *models.AdvanceTransaction) (*models.AdvanceTransaction, error) {
	if err := entry.Validate(); err != nil {
		return nil, err
	}
	ensureIdentity(&entry.ID, &entry.CreatedAt)
	if err := s.put(BucketAdvanceTxns, entry.ID, entry); err != nil {
		return nil, fmt.Errorf("failed to save advance transaction: %w", err)
	}
	return entry, nil
}

// ListAdvanceTransactions retrieves all advance rows.
func (s *Store) ListAdvanceTransactions() ([]models.AdvanceTransaction, error) {
	raw, err := s.list(BucketAdvanceTxns, nil)
	if err != nil {
		return nil, err
	}
	return decodeAll[models.AdvanceTransaction](raw)
}

// DeleteAdvanceTransaction removes an advance row by id.
func (s *Store) DeleteAdvanceTransaction(id string) error {
	return s.delete(BucketAdvanceTxns, id)
}

// UpsertCustodyTransaction saves a custody-funds row.
func (s *Store) UpsertCustodyTransaction(entry *models.CustodyTransaction) (*models.CustodyTransaction, error) {
	if err := entry.Validate(); err != nil {
		return nil, err
	}
	ensureIdentity(&entry.ID, &entry.CreatedAt)
	if err := s.put(BucketCustodyTxns, entry.ID, entry); err != nil {
		return nil, fmt.Errorf("failed to save custody transaction: %w", err)
	}
	return entry, nil
}

// ListCustodyTransactions retrieves all custody rows.
func (s *Store) ListCustodyTransactions() ([]models.CustodyTransaction, error) {
	raw, err := s.list(BucketCustodyTxns, nil)
	if err != nil {
		return nil, err
	}
	return decodeAll[models.CustodyTransaction](raw)
}

// DeleteCustodyTransaction removes a custody row by id.
func (s *Store) DeleteCustodyTransaction(id string) error {
	return s.delete(BucketCustodyTxns, id)
}

// UpsertRevenueInvoice saves a revenue invoice.
func (s *Store) UpsertRevenueInvoice(invoice *models.RevenueInvoice) (*models.RevenueInvoice, error) {
	if err := invoice.Validate(); err != nil {
		return nil, err
	}
	ensureIdentity(&invoice.ID, &invoice.CreatedAt)
	if err := s.put(BucketRevenueInvoices, invoice.ID, invoice); err != nil {
		return nil, fmt.Errorf("failed to save revenue invoice: %w", err)
	}
	return invoice, nil
}

// ListRevenueInvoices retrieves all revenue invoices.
func (s *Store) ListRevenueInvoices() ([]models.RevenueInvoice, error) {
	raw, err := s.list(BucketRevenueInvoices, nil)
	if err != nil {
		return nil, err
	}
	return decodeAll[models.RevenueInvoice](raw)
}

// DeleteRevenueInvoice removes a revenue invoice by id.
func (s *Store) DeleteRevenueInvoice(id string) error {
	return s.delete(BucketRevenueInvoices, id)
}

// ensureIdentity fills in id and createdAt for first-time saves.
func ensureIdentity(id, createdAt *string) {
	if *id == "" {
		*id = uuid.NewString()
	}
	if *createdAt == "" {
		*createdAt = models.NowISO()
	}
}
