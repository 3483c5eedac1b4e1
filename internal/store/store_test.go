package store

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/MohamedRadiWebDev/ACC/internal/models"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "ledger.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func mustCreateAccount(t *testing.T, s *Store, name string, accType models.AccountType, opening string) *models.Account {
	t.Helper()
	account, err := s.CreateAccount(&models.CreateAccountRequest{
		Name:           name,
		Type:           accType,
		OpeningBalance: decimal.RequireFromString(opening),
	})
	if err != nil {
		t.Fatalf("CreateAccount(%s) error = %v", name, err)
	}
	return account
}

func mustCreateTransaction(t *testing.T, s *Store, accountID string, ledger models.LedgerType, direction models.Direction, amount, date string) *models.Transaction {
	t.Helper()
	txn, err := s.CreateTransaction(&models.CreateTransactionRequest{
		Ledger:    ledger,
		AccountID: accountID,
		Date:      date,
		Direction: direction,
		Amount:    decimal.RequireFromString(amount),
	})
	if err != nil {
		t.Fatalf("CreateTransaction error = %v", err)
	}
	return txn
}

func TestAccountLifecycle(t *testing.T) {
	s := openTestStore(t)

	account := mustCreateAccount(t, s, "الخزنة الرئيسية", models.AccountCashbox, "1000")
	if account.ID == "" || account.CreatedAt == "" {
		t.Fatal("created account is missing identity fields")
	}
	if account.Currency != "EGP" {
		t.Errorf("default currency = %s, expected EGP", account.Currency)
	}

	got, err := s.GetAccount(account.ID)
	if err != nil {
		t.Fatalf("GetAccount() error = %v", err)
	}
	if got.Name != account.Name || !got.OpeningBalance.Equal(account.OpeningBalance) {
		t.Errorf("round-trip mismatch: got %+v", got)
	}

	newName := "خزنة الفرع"
	newOpening := decimal.RequireFromString("2500")
	updated, err := s.UpdateAccount(account.ID, &models.UpdateAccountRequest{
		Name:           &newName,
		OpeningBalance: &newOpening,
	})
	if err != nil {
		t.Fatalf("UpdateAccount() error = %v", err)
	}
	if updated.Name != newName || !updated.OpeningBalance.Equal(newOpening) {
		t.Errorf("patch not applied: %+v", updated)
	}
	if updated.CreatedAt != account.CreatedAt {
		t.Error("update must not change createdAt")
	}

	if _, err := s.GetAccount("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetAccount(missing) error = %v, expected ErrNotFound", err)
	}
}

func TestCreateAccountValidation(t *testing.T) {
	s := openTestStore(t)

	tests := []struct {
		name string
		req  models.CreateAccountRequest
	}{
		{"empty name", models.CreateAccountRequest{Type: models.AccountBank}},
		{"unknown type", models.CreateAccountRequest{Name: "x", Type: "SAFE"}},
		{"negative opening balance", models.CreateAccountRequest{
			Name: "x", Type: models.AccountBank,
			OpeningBalance: decimal.RequireFromString("-1"),
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.CreateAccount(&tt.req)
			var verr *models.ValidationError
			if !errors.As(err, &verr) {
				t.Errorf("error = %v, expected ValidationError", err)
			}
		})
	}
}

func TestDeleteAccountCascadesTransactions(t *testing.T) {
	s := openTestStore(t)

	cashbox := mustCreateAccount(t, s, "cashbox", models.AccountCashbox, "0")
	other := mustCreateAccount(t, s, "other", models.AccountBank, "0")
	mustCreateTransaction(t, s, cashbox.ID, models.LedgerCashbox, models.DirectionIn, "100", "2024-01-01")
	mustCreateTransaction(t, s, cashbox.ID, models.LedgerCashbox, models.DirectionOut, "40", "2024-01-02")
	kept := mustCreateTransaction(t, s, other.ID, models.LedgerBank, models.DirectionIn, "500", "2024-01-01")

	if err := s.DeleteAccount(cashbox.ID); err != nil {
		t.Fatalf("DeleteAccount() error = %v", err)
	}

	remaining, err := s.ListTransactions(TransactionFilter{})
	if err != nil {
		t.Fatalf("ListTransactions() error = %v", err)
	}
	if len(remaining) != 1 || remaining[0].ID != kept.ID {
		t.Errorf("remaining transactions = %d, expected only the other account's row", len(remaining))
	}
}

func TestCreateTransferWritesBothLegs(t *testing.T) {
	s := openTestStore(t)

	cashbox := mustCreateAccount(t, s, "cashbox", models.AccountCashbox, "1000")
	wallet, err := s.CreateAccount(&models.CreateAccountRequest{
		Name:     "vodafone cash",
		Type:     models.AccountWallet,
		Provider: providerPtr(models.ProviderVodafone),
	})
	if err != nil {
		t.Fatalf("CreateAccount(wallet) error = %v", err)
	}

	transfer, err := s.CreateTransfer(&models.CreateTransferRequest{
		FromAccountID: cashbox.ID,
		ToAccountID:   wallet.ID,
		Date:          "2024-02-01",
		Amount:        decimal.RequireFromString("300"),
		Description:   "تحويل الى المحفظة",
	})
	if err != nil {
		t.Fatalf("CreateTransfer() error = %v", err)
	}

	legs, err := s.ListTransactions(TransactionFilter{})
	if err != nil {
		t.Fatalf("ListTransactions() error = %v", err)
	}
	if len(legs) != 2 {
		t.Fatalf("got %d transactions, expected 2 legs", len(legs))
	}
	byAccount := map[string]models.Transaction{}
	for _, leg := range legs {
		byAccount[leg.AccountID] = leg
		if leg.TransferID == nil || *leg.TransferID != transfer.ID {
			t.Errorf("leg %s transferId = %v, expected %s", leg.ID, leg.TransferID, transfer.ID)
		}
		if leg.MatchID != nil {
			t.Errorf("leg %s starts matched", leg.ID)
		}
		if leg.Source != models.SourceTransfer {
			t.Errorf("leg %s source = %s", leg.ID, leg.Source)
		}
		if !leg.Amount.Equal(transfer.Amount) || leg.Date != transfer.Date {
			t.Errorf("leg %s does not mirror the transfer", leg.ID)
		}
	}
	out := byAccount[cashbox.ID]
	if out.Direction != models.DirectionOut || out.Ledger != models.LedgerCashbox {
		t.Errorf("source leg = %s/%s, expected OUT on CASHBOX", out.Direction, out.Ledger)
	}
	in := byAccount[wallet.ID]
	if in.Direction != models.DirectionIn || in.Ledger != models.LedgerDigital {
		t.Errorf("destination leg = %s/%s, expected IN on DIGITAL", in.Direction, in.Ledger)
	}
}

func TestCreateTransferMissingAccountLeavesNothingBehind(t *testing.T) {
	s := openTestStore(t)

	cashbox := mustCreateAccount(t, s, "cashbox", models.AccountCashbox, "1000")
	_, err := s.CreateTransfer(&models.CreateTransferRequest{
		FromAccountID: cashbox.ID,
		ToAccountID:   "missing",
		Date:          "2024-02-01",
		Amount:        decimal.RequireFromString("300"),
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("error = %v, expected wrapped ErrNotFound", err)
	}

	transfers, err := s.ListTransfers()
	if err != nil {
		t.Fatalf("ListTransfers() error = %v", err)
	}
	txns, err := s.ListTransactions(TransactionFilter{})
	if err != nil {
		t.Fatalf("ListTransactions() error = %v", err)
	}
	if len(transfers) != 0 || len(txns) != 0 {
		t.Errorf("partial write survived: %d transfers, %d transactions", len(transfers), len(txns))
	}
}

func TestCreateTransferValidation(t *testing.T) {
	s := openTestStore(t)

	tests := []struct {
		name string
		req  models.CreateTransferRequest
	}{
		{"same account", models.CreateTransferRequest{
			FromAccountID: "a", ToAccountID: "a",
			Date: "2024-01-01", Amount: decimal.RequireFromString("1"),
		}},
		{"zero amount", models.CreateTransferRequest{
			FromAccountID: "a", ToAccountID: "b",
			Date: "2024-01-01", Amount: decimal.Zero,
		}},
		{"bad date", models.CreateTransferRequest{
			FromAccountID: "a", ToAccountID: "b",
			Date: "01/02/2024", Amount: decimal.RequireFromString("1"),
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.CreateTransfer(&tt.req)
			var verr *models.ValidationError
			if !errors.As(err, &verr) {
				t.Errorf("error = %v, expected ValidationError", err)
			}
		})
	}
}

func TestCreateMatchLinksBothTransactions(t *testing.T) {
	s := openTestStore(t)

	cashbox := mustCreateAccount(t, s, "cashbox", models.AccountCashbox, "0")
	wallet := mustCreateAccount(t, s, "wallet", models.AccountWallet, "0")
	a := mustCreateTransaction(t, s, cashbox.ID, models.LedgerCashbox, models.DirectionOut, "100", "2024-01-01")
	b := mustCreateTransaction(t, s, wallet.ID, models.LedgerDigital, models.DirectionIn, "100", "2024-01-02")

	match, err := s.CreateMatch(a.ID, b.ID)
	if err != nil {
		t.Fatalf("CreateMatch() error = %v", err)
	}
	if match.TxAID != a.ID || match.TxBID != b.ID {
		t.Errorf("match ids = %s/%s", match.TxAID, match.TxBID)
	}

	for _, id := range []string{a.ID, b.ID} {
		txn, err := s.GetTransaction(id)
		if err != nil {
			t.Fatalf("GetTransaction(%s) error = %v", id, err)
		}
		if txn.MatchID == nil || *txn.MatchID != match.ID {
			t.Errorf("transaction %s matchId = %v, expected %s", id, txn.MatchID, match.ID)
		}
	}

	unmatched, err := s.ListTransactions(TransactionFilter{Unmatched: true})
	if err != nil {
		t.Fatalf("ListTransactions(unmatched) error = %v", err)
	}
	if len(unmatched) != 0 {
		t.Errorf("%d transactions still listed as unmatched", len(unmatched))
	}
}

func TestCreateMatchOverwriteLeavesStaleLink(t *testing.T) {
	s := openTestStore(t)

	cashbox := mustCreateAccount(t, s, "cashbox", models.AccountCashbox, "0")
	wallet := mustCreateAccount(t, s, "wallet", models.AccountWallet, "0")
	a := mustCreateTransaction(t, s, cashbox.ID, models.LedgerCashbox, models.DirectionOut, "100", "2024-01-01")
	b := mustCreateTransaction(t, s, wallet.ID, models.LedgerDigital, models.DirectionIn, "100", "2024-01-01")
	c := mustCreateTransaction(t, s, wallet.ID, models.LedgerDigital, models.DirectionIn, "100", "2024-01-02")

	first, err := s.CreateMatch(a.ID, b.ID)
	if err != nil {
		t.Fatalf("CreateMatch(a, b) error = %v", err)
	}
	second, err := s.CreateMatch(a.ID, c.ID)
	if err != nil {
		t.Fatalf("CreateMatch(a, c) error = %v", err)
	}

	// The re-matched transaction and its new partner carry the new link.
	for _, id := range []string{a.ID, c.ID} {
		txn, err := s.GetTransaction(id)
		if err != nil {
			t.Fatalf("GetTransaction(%s) error = %v", id, err)
		}
		if txn.MatchID == nil || *txn.MatchID != second.ID {
			t.Errorf("transaction %s matchId = %v, expected %s", id, txn.MatchID, second.ID)
		}
	}

	// The abandoned partner keeps its stale link.
	stale, err := s.GetTransaction(b.ID)
	if err != nil {
		t.Fatalf("GetTransaction(%s) error = %v", b.ID, err)
	}
	if stale.MatchID == nil || *stale.MatchID != first.ID {
		t.Errorf("abandoned transaction matchId = %v, expected the stale %s", stale.MatchID, first.ID)
	}

	// The superseded Match record survives as an orphan.
	matches, err := s.ListMatches()
	if err != nil {
		t.Fatalf("ListMatches() error = %v", err)
	}
	if len(matches) != 2 {
		t.Fatalf("got %d matches, expected both the orphan and its replacement", len(matches))
	}
	if _, err := s.GetMatch(first.ID); err != nil {
		t.Errorf("superseded match %s was removed: %v", first.ID, err)
	}
}

func TestCreateMatchMissingTransactionAborts(t *testing.T) {
	s := openTestStore(t)

	cashbox := mustCreateAccount(t, s, "cashbox", models.AccountCashbox, "0")
	a := mustCreateTransaction(t, s, cashbox.ID, models.LedgerCashbox, models.DirectionOut, "100", "2024-01-01")

	if _, err := s.CreateMatch(a.ID, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("error = %v, expected wrapped ErrNotFound", err)
	}

	matches, err := s.ListMatches()
	if err != nil {
		t.Fatalf("ListMatches() error = %v", err)
	}
	if len(matches) != 0 {
		t.Errorf("%d matches survived the aborted link", len(matches))
	}
	txn, err := s.GetTransaction(a.ID)
	if err != nil {
		t.Fatalf("GetTransaction() error = %v", err)
	}
	if txn.MatchID != nil {
		t.Error("surviving transaction was linked by the aborted match")
	}
}

func TestCreateMatchRejectsSelfAndEmpty(t *testing.T) {
	s := openTestStore(t)
	for _, pair := range [][2]string{{"", "b"}, {"a", ""}, {"a", "a"}} {
		if _, err := s.CreateMatch(pair[0], pair[1]); err == nil {
			t.Errorf("CreateMatch(%q, %q) accepted invalid ids", pair[0], pair[1])
		}
	}
}

func TestPutCashCountUpsertsByAccountAndDate(t *testing.T) {
	s := openTestStore(t)
	cashbox := mustCreateAccount(t, s, "cashbox", models.AccountCashbox, "0")

	first, outcome, err := s.PutCashCount(&models.CreateCashCountRequest{
		CashboxAccountID: cashbox.ID,
		Date:             "2024-03-01",
		Items: []models.CashCountItem{
			{Denomination: decimal.RequireFromString("200"), CountFit: 1},
			{Denomination: decimal.RequireFromString("100"), CountFit: 2},
		},
	})
	if err != nil {
		t.Fatalf("PutCashCount() error = %v", err)
	}
	if outcome != Inserted {
		t.Errorf("outcome = %s, expected inserted", outcome)
	}
	if !first.TotalCash.Equal(decimal.RequireFromString("400")) {
		t.Errorf("total = %s, expected 400", first.TotalCash)
	}

	second, outcome, err := s.PutCashCount(&models.CreateCashCountRequest{
		CashboxAccountID: cashbox.ID,
		Date:             "2024-03-01",
		Items: []models.CashCountItem{
			{Denomination: decimal.RequireFromString("200"), CountTorn: 3},
		},
	})
	if err != nil {
		t.Fatalf("PutCashCount() second save error = %v", err)
	}
	if outcome != Updated {
		t.Errorf("outcome = %s, expected updated", outcome)
	}
	if second.ID != first.ID || second.CreatedAt != first.CreatedAt {
		t.Error("same-day save must keep the original identity")
	}
	if !second.TotalCash.Equal(decimal.RequireFromString("600")) {
		t.Errorf("total = %s, expected 600", second.TotalCash)
	}

	counts, err := s.ListCashCounts(cashbox.ID)
	if err != nil {
		t.Fatalf("ListCashCounts() error = %v", err)
	}
	if len(counts) != 1 {
		t.Fatalf("got %d counts, expected the single upserted row", len(counts))
	}

	// A different day inserts a fresh record.
	_, outcome, err = s.PutCashCount(&models.CreateCashCountRequest{
		CashboxAccountID: cashbox.ID,
		Date:             "2024-03-02",
	})
	if err != nil {
		t.Fatalf("PutCashCount() next day error = %v", err)
	}
	if outcome != Inserted {
		t.Errorf("next-day outcome = %s, expected inserted", outcome)
	}

	latest, err := s.LatestCashCount(cashbox.ID)
	if err != nil {
		t.Fatalf("LatestCashCount() error = %v", err)
	}
	if latest.Date != "2024-03-02" {
		t.Errorf("latest count date = %s, expected 2024-03-02", latest.Date)
	}
}

func TestLatestBalanceSnapshot(t *testing.T) {
	s := openTestStore(t)
	wallet := mustCreateAccount(t, s, "wallet", models.AccountWallet, "0")

	if _, err := s.LatestBalanceSnapshot(wallet.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("empty account: error = %v, expected ErrNotFound", err)
	}

	// Fixed createdAt values keep the tie-break deterministic.
	err := s.ImportSnapshot(&Snapshot{
		BalanceSnapshots: []models.BalanceSnapshot{
			{ID: "snap-early", AccountID: wallet.ID, Date: "2024-01-05",
				ActualBalance: decimal.RequireFromString("100"),
				CreatedAt:     "2024-01-05T08:00:00.000Z"},
			{ID: "snap-late", AccountID: wallet.ID, Date: "2024-01-05",
				ActualBalance: decimal.RequireFromString("120"),
				CreatedAt:     "2024-01-05T12:00:00.000Z"},
		},
	}, ImportMerge)
	if err != nil {
		t.Fatalf("ImportSnapshot() error = %v", err)
	}

	// Same date: createdAt breaks the tie toward the later write.
	latest, err := s.LatestBalanceSnapshot(wallet.ID)
	if err != nil {
		t.Fatalf("LatestBalanceSnapshot() error = %v", err)
	}
	if latest.ID != "snap-late" {
		t.Errorf("latest = %s, expected the same-day later write snap-late", latest.ID)
	}

	// A later date wins regardless of createdAt.
	err = s.ImportSnapshot(&Snapshot{
		BalanceSnapshots: []models.BalanceSnapshot{
			{ID: "snap-newest", AccountID: wallet.ID, Date: "2024-01-10",
				ActualBalance: decimal.RequireFromString("80"),
				CreatedAt:     "2024-01-05T06:00:00.000Z"},
		},
	}, ImportMerge)
	if err != nil {
		t.Fatalf("ImportSnapshot() error = %v", err)
	}
	latest, err = s.LatestBalanceSnapshot(wallet.ID)
	if err != nil {
		t.Fatalf("LatestBalanceSnapshot() error = %v", err)
	}
	if latest.ID != "snap-newest" {
		t.Errorf("latest = %s, expected snap-newest", latest.ID)
	}
}

func TestLatestCashCountEmpty(t *testing.T) {
	s := openTestStore(t)
	if _, err := s.LatestCashCount("nobody"); !errors.Is(err, ErrNotFound) {
		t.Errorf("error = %v, expected ErrNotFound", err)
	}
}

func TestExportImportReplaceRoundTrip(t *testing.T) {
	s := openTestStore(t)

	cashbox := mustCreateAccount(t, s, "cashbox", models.AccountCashbox, "1000")
	wallet := mustCreateAccount(t, s, "wallet", models.AccountWallet, "0")
	if _, err := s.CreateTransfer(&models.CreateTransferRequest{
		FromAccountID: cashbox.ID,
		ToAccountID:   wallet.ID,
		Date:          "2024-02-01",
		Amount:        decimal.RequireFromString("300"),
	}); err != nil {
		t.Fatalf("CreateTransfer() error = %v", err)
	}
	if _, _, err := s.PutCashCount(&models.CreateCashCountRequest{
		CashboxAccountID: cashbox.ID,
		Date:             "2024-02-01",
		Items:            []models.CashCountItem{{Denomination: decimal.RequireFromString("100"), CountFit: 7}},
	}); err != nil {
		t.Fatalf("PutCashCount() error = %v", err)
	}

	snap, err := s.ExportAll()
	if err != nil {
		t.Fatalf("ExportAll() error = %v", err)
	}

	restore := openTestStore(t)
	if err := restore.ImportSnapshot(snap, ImportReplace); err != nil {
		t.Fatalf("ImportSnapshot() error = %v", err)
	}

	restored, err := restore.ExportAll()
	if err != nil {
		t.Fatalf("ExportAll() after import error = %v", err)
	}
	if len(restored.Accounts) != 2 || len(restored.Transactions) != 2 ||
		len(restored.Transfers) != 1 || len(restored.CashCounts) != 1 {
		t.Errorf("restored counts: %d accounts, %d transactions, %d transfers, %d cash counts",
			len(restored.Accounts), len(restored.Transactions), len(restored.Transfers), len(restored.CashCounts))
	}

	acct, err := restore.GetAccount(cashbox.ID)
	if err != nil {
		t.Fatalf("GetAccount() after import error = %v", err)
	}
	if acct.CreatedAt != cashbox.CreatedAt || !acct.OpeningBalance.Equal(cashbox.OpeningBalance) {
		t.Error("import did not preserve ids and timestamps")
	}
}

func TestImportMergeOverlaysExistingRecords(t *testing.T) {
	s := openTestStore(t)
	account := mustCreateAccount(t, s, "original", models.AccountBank, "100")

	renamed := *account
	renamed.Name = "renamed"
	err := s.ImportSnapshot(&Snapshot{
		Accounts: []models.Account{renamed},
	}, ImportMerge)
	if err != nil {
		t.Fatalf("ImportSnapshot(merge) error = %v", err)
	}

	got, err := s.GetAccount(account.ID)
	if err != nil {
		t.Fatalf("GetAccount() error = %v", err)
	}
	if got.Name != "renamed" {
		t.Errorf("name = %s, expected the imported overlay", got.Name)
	}
}

func TestImportSnapshotRejectsRecordsWithoutID(t *testing.T) {
	s := openTestStore(t)
	mustCreateAccount(t, s, "keep", models.AccountBank, "0")

	err := s.ImportSnapshot(&Snapshot{
		Accounts: []models.Account{{Name: "no id"}},
	}, ImportReplace)
	var verr *models.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error = %v, expected ValidationError", err)
	}

	// The failed replace must roll back, keeping the prior contents.
	accounts, err := s.ListAccounts()
	if err != nil {
		t.Fatalf("ListAccounts() error = %v", err)
	}
	if len(accounts) != 1 || accounts[0].Name != "keep" {
		t.Errorf("store contents changed after failed import: %+v", accounts)
	}
}

func TestImportSnapshotRejectsUnknownMode(t *testing.T) {
	s := openTestStore(t)
	if err := s.ImportSnapshot(&Snapshot{}, "overwrite"); err == nil {
		t.Error("unknown import mode accepted")
	}
}

func TestResetAndStats(t *testing.T) {
	s := openTestStore(t)
	cashbox := mustCreateAccount(t, s, "cashbox", models.AccountCashbox, "0")
	mustCreateTransaction(t, s, cashbox.ID, models.LedgerCashbox, models.DirectionIn, "10", "2024-01-01")

	stats, err := s.Stats()
	if err != nil {
		t.Fatalf("Stats() error = %v", err)
	}
	if stats[BucketAccounts] != 1 || stats[BucketTransactions] != 1 {
		t.Errorf("stats = %v", stats)
	}

	if err := s.Reset(); err != nil {
		t.Fatalf("Reset() error = %v", err)
	}
	stats, err = s.Stats()
	if err != nil {
		t.Fatalf("Stats() after reset error = %v", err)
	}
	for bucket, n := range stats {
		if n != 0 {
			t.Errorf("bucket %s still holds %d records after reset", bucket, n)
		}
	}
}

func providerPtr(p models.WalletProvider) *models.WalletProvider {
	return &p
}
