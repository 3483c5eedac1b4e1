package reconcile

import (
	"testing"

	"github.com/MohamedRadiWebDev/ACC/internal/models"
)

func TestCashVariance(t *testing.T) {
	txs := []models.Transaction{
		candidate("t1", "2024-01-01", models.DirectionIn, "500", ""),
		candidate("t2", "2024-01-02", models.DirectionOut, "200", ""),
	}

	tests := []struct {
		name    string
		opening string
		counted string
		date    string
		want    string
	}{
		{"reconciled", "1000", "1300", "2024-01-02", "0"},
		{"surplus", "1000", "1350", "2024-01-02", "50"},
		{"shortage", "1000", "1250", "2024-01-02", "-50"},
		{"count dated before later outflow", "1000", "1500", "2024-01-01", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			count := &models.CashCount{
				CashboxAccountID: "a1",
				Date:             tt.date,
				TotalCash:        dec(tt.counted),
			}
			got := CashVariance(dec(tt.opening), txs, count)
			if !got.Equal(dec(tt.want)) {
				t.Errorf("variance = %s, expected %s", got, tt.want)
			}
		})
	}
}

func TestSnapshotVariance(t *testing.T) {
	txs := []models.Transaction{
		candidate("t1", "2024-01-01", models.DirectionIn, "500", ""),
	}
	snap := &models.BalanceSnapshot{
		AccountID:     "a1",
		Date:          "2024-01-01",
		ActualBalance: dec("480.25"),
	}

	got := SnapshotVariance(dec("0"), txs, snap)
	if !got.Equal(dec("-19.75")) {
		t.Errorf("variance = %s, expected -19.75", got)
	}
}
