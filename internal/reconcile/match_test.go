package reconcile

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/MohamedRadiWebDev/ACC/internal/models"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func candidate(id, date string, direction models.Direction, amount, description string) models.Transaction {
	ledger := models.LedgerCashbox
	if direction == models.DirectionIn {
		ledger = models.LedgerDigital
	}
	return models.Transaction{
		ID:          id,
		Ledger:      ledger,
		AccountID:   "acct-" + id,
		Date:        date,
		Direction:   direction,
		Amount:      dec(amount),
		Description: description,
		CreatedAt:   date + "T08:00:00.000Z",
	}
}

func TestSuggestMatchesQualification(t *testing.T) {
	tests := []struct {
		name      string
		a         models.Transaction
		b         models.Transaction
		tolerance int
		want      int
	}{
		{
			name:      "equal amount opposite direction within tolerance",
			a:         candidate("c1", "2024-01-01", models.DirectionOut, "100", ""),
			b:         candidate("d1", "2024-01-02", models.DirectionIn, "100", ""),
			tolerance: 2,
			want:      1,
		},
		{
			name:      "amount mismatch disqualifies regardless of dates",
			a:         candidate("c1", "2024-01-01", models.DirectionOut, "100", ""),
			b:         candidate("d1", "2024-01-01", models.DirectionIn, "101", ""),
			tolerance: 2,
			want:      0,
		},
		{
			name:      "same direction disqualifies",
			a:         candidate("c1", "2024-01-01", models.DirectionOut, "100", ""),
			b:         candidate("d1", "2024-01-01", models.DirectionOut, "100", ""),
			tolerance: 2,
			want:      0,
		},
		{
			name:      "day gap beyond tolerance disqualifies",
			a:         candidate("c1", "2024-01-01", models.DirectionOut, "100", ""),
			b:         candidate("d1", "2024-01-05", models.DirectionIn, "100", ""),
			tolerance: 2,
			want:      0,
		},
		{
			name:      "zero tolerance still allows same-day pairs",
			a:         candidate("c1", "2024-01-01", models.DirectionOut, "100", ""),
			b:         candidate("d1", "2024-01-01", models.DirectionIn, "100", ""),
			tolerance: 0,
			want:      1,
		},
		{
			name:      "zero tolerance rejects a one-day gap",
			a:         candidate("c1", "2024-01-01", models.DirectionOut, "100", ""),
			b:         candidate("d1", "2024-01-02", models.DirectionIn, "100", ""),
			tolerance: 0,
			want:      0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SuggestMatches(
				[]models.Transaction{tt.a},
				[]models.Transaction{tt.b},
				tt.tolerance, "",
			)
			if len(got) != tt.want {
				t.Errorf("got %d suggestions, expected %d", len(got), tt.want)
			}
		})
	}
}

func TestSuggestMatchesScoring(t *testing.T) {
	tests := []struct {
		name      string
		descA     string
		descB     string
		dateA     string
		dateB     string
		tolerance int
		wantScore float64
	}{
		{
			name:      "time proximity bonus only",
			dateA:     "2024-01-01",
			dateB:     "2024-01-02",
			tolerance: 2,
			wantScore: 2, // base 1 + (2 - 1)
		},
		{
			name:      "keyword in both descriptions",
			descA:     "صرف تحويل نقدي",
			descB:     "استلام تحويل",
			dateA:     "2024-01-01",
			dateB:     "2024-01-01",
			tolerance: 0,
			wantScore: 2, // base 1 + keyword 1
		},
		{
			name:      "prefix echoed in the counterparty description",
			descA:     "ABCDEFG",
			descB:     "re: ABCDE payment",
			dateA:     "2024-01-01",
			dateB:     "2024-01-01",
			tolerance: 0,
			wantScore: 1.5, // base 1 + prefix 0.5
		},
		{
			name:      "all bonuses stack",
			descA:     "تحويل فودافون",
			descB:     "تحويل فودافون كاش",
			dateA:     "2024-01-01",
			dateB:     "2024-01-02",
			tolerance: 3,
			wantScore: 4.5, // base 1 + keyword 1 + prefix 0.5 + (3 - 1)
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SuggestMatches(
				[]models.Transaction{candidate("c1", tt.dateA, models.DirectionOut, "100", tt.descA)},
				[]models.Transaction{candidate("d1", tt.dateB, models.DirectionIn, "100", tt.descB)},
				tt.tolerance, "",
			)
			if len(got) != 1 {
				t.Fatalf("got %d suggestions, expected 1", len(got))
			}
			if got[0].Score != tt.wantScore {
				t.Errorf("score = %v, expected %v", got[0].Score, tt.wantScore)
			}
		})
	}
}

func TestSuggestMatchesSortsByDescendingScore(t *testing.T) {
	setA := []models.Transaction{
		candidate("c1", "2024-01-01", models.DirectionOut, "100", ""),
	}
	setB := []models.Transaction{
		candidate("far", "2024-01-03", models.DirectionIn, "100", ""),
		candidate("near", "2024-01-01", models.DirectionIn, "100", ""),
	}

	got := SuggestMatches(setA, setB, 2, "")
	if len(got) != 2 {
		t.Fatalf("got %d suggestions, expected 2", len(got))
	}
	if got[0].B.ID != "near" || got[1].B.ID != "far" {
		t.Errorf("order = [%s %s], expected [near far]", got[0].B.ID, got[1].B.ID)
	}
	if got[0].Score <= got[1].Score {
		t.Errorf("scores not descending: %v then %v", got[0].Score, got[1].Score)
	}
}

func TestSuggestMatchesReturnsEveryQualifyingPair(t *testing.T) {
	setA := []models.Transaction{
		candidate("c1", "2024-01-01", models.DirectionOut, "100", ""),
		candidate("c2", "2024-01-02", models.DirectionOut, "100", ""),
	}
	setB := []models.Transaction{
		candidate("d1", "2024-01-01", models.DirectionIn, "100", ""),
	}

	got := SuggestMatches(setA, setB, 2, "")
	if len(got) != 2 {
		t.Fatalf("got %d suggestions, expected 2", len(got))
	}
	for _, s := range got {
		if !s.A.Amount.Equal(s.B.Amount) {
			t.Errorf("pair %s/%s has unequal amounts", s.A.ID, s.B.ID)
		}
		if s.A.Direction == s.B.Direction {
			t.Errorf("pair %s/%s has matching directions", s.A.ID, s.B.ID)
		}
	}
}
