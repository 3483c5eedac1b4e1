package ledger

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/MohamedRadiWebDev/ACC/internal/models"
)

// The specialized ledgers follow the same ordering rule as account
// transactions but fold different field pairs: treasury rows carry in/out
// amounts, bank rows carry credit/debit.

// SortTreasury returns a copy of the treasury rows in chronological order.
func SortTreasury(txs []models.TreasuryTransaction) []models.TreasuryTransaction {
	sorted := make([]models.TreasuryTransaction, len(txs))
	copy(sorted, txs)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Date == sorted[j].Date {
			return sorted[i].CreatedAt < sorted[j].CreatedAt
		}
		return sorted[i].Date < sorted[j].Date
	})
	return sorted
}

// TreasuryBalance folds inAmount minus outAmount over the opening balance.
func TreasuryBalance(opening decimal.Decimal, txs []models.TreasuryTransaction) decimal.Decimal {
	acc := opening
	for _, tx := range txs {
		acc = acc.Add(tx.InAmount).Sub(tx.OutAmount)
	}
	return acc
}

// TreasuryRunningBalances returns per-row running balances in chronological
// order.
func TreasuryRunningBalances(opening decimal.Decimal, txs []models.TreasuryTransaction) []Entry {
	sorted := SortTreasury(txs)
	entries := make([]Entry, 0, len(sorted))
	running := opening
	for _, tx := range sorted {
		running = running.Add(tx.InAmount).Sub(tx.OutAmount)
		entries = append(entries, Entry{ID: tx.ID, Balance: running})
	}
	return entries
}

// SortBank returns a copy of the bank rows in chronological order.
func SortBank(txs []models.BankTransaction) []models.BankTransaction {
	sorted := make([]models.BankTransaction, len(txs))
	copy(sorted, txs)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Date == sorted[j].Date {
			return sorted[i].CreatedAt < sorted[j].CreatedAt
		}
		return sorted[i].Date < sorted[j].Date
	})
	return sorted
}

// BankBalance folds credit minus debit over the opening balance.
func BankBalance(opening decimal.Decimal, txs []models.BankTransaction) decimal.Decimal {
	acc := opening
	for _, tx := range txs {
		acc = acc.Add(tx.Credit).Sub(tx.Debit)
	}
	return acc
}

// BankRunningBalances returns per-row running balances in chronological order.
func BankRunningBalances(opening decimal.Decimal, txs []models.BankTransaction) []Entry {
	sorted := SortBank(txs)
	entries := make([]Entry, 0, len(sorted))
	running := opening
	for _, tx := range sorted {
		running = running.Add(tx.Credit).Sub(tx.Debit)
		entries = append(entries, Entry{ID: tx.ID, Balance: running})
	}
	return entries
}

// AdvanceBalance sums an employee's outstanding advance: ADVANCE entries add,
// REPAYMENT entries subtract. Entries for other employees are ignored.
func AdvanceBalance(entries []models.AdvanceTransaction, employeeCode string) decimal.Decimal {
	acc := decimal.Zero
	for _, e := range entries {
		if e.EmployeeCode != employeeCode {
			continue
		}
		if e.Type == models.AdvanceIssued {
			acc = acc.Add(e.Amount)
		} else {
			acc = acc.Sub(e.Amount)
		}
	}
	return acc
}

// CustodyBalance sums a payee's open custody: CUSTODY entries add, SETTLEMENT
// entries subtract. Entries for other payees are ignored.
func CustodyBalance(entries []models.CustodyTransaction, paidTo string) decimal.Decimal {
	acc := decimal.Zero
	for _, e := range entries {
		if e.PaidTo != paidTo {
			continue
		}
		if e.Type == models.CustodyIssued {
			acc = acc.Add(e.Amount)
		} else {
			acc = acc.Sub(e.Amount)
		}
	}
	return acc
}
