// Package reconcile proposes matches between transactions in different
// ledgers and computes variance between observed and computed balances.
package reconcile

import (
	"sort"
	"strings"
	"time"

	"github.com/MohamedRadiWebDev/ACC/internal/models"
)

// DefaultKeyword is the transfer-indicator word looked for in descriptions
// when scoring a candidate pair ("transfer" in Arabic, as entered by users).
const DefaultKeyword = "تحويل"

// Suggestion is one scored candidate pairing between a transaction from set A
// (typically the cash ledger) and one from set B (typically digital).
type Suggestion struct {
	A     models.Transaction `json:"itemA"`
	B     models.Transaction `json:"itemB"`
	Score float64            `json:"score"`
}

// SuggestMatches searches the cross product of two disjoint candidate sets
// for transaction pairs that look like the same real-world movement. A pair
// qualifies when amounts are exactly equal, directions are opposite, and the
// dates lie within toleranceDays of each other. Qualifying pairs are scored:
//
//	base 1
//	+1   both descriptions contain the keyword
//	+0.5 b's description contains a's first-5-rune prefix
//	+    toleranceDays minus the day gap (closer in time scores higher)
//
// Results are sorted by descending score; equal scores keep cross-product
// order. Callers pre-filter the sets to unmatched, transfer-looking rows.
func SuggestMatches(setA, setB []models.Transaction, toleranceDays int, keyword string) []Suggestion {
	if keyword == "" {
		keyword = DefaultKeyword
	}
	var suggestions []Suggestion
	for _, a := range setA {
		for _, b := range setB {
			if !a.Amount.Equal(b.Amount) || a.Direction == b.Direction {
				continue
			}
			gap, ok := dayGap(a.Date, b.Date)
			if !ok || gap > toleranceDays {
				continue
			}

			score := 1.0
			if a.Description != "" && b.Description != "" {
				if strings.Contains(a.Description, keyword) && strings.Contains(b.Description, keyword) {
					score++
				}
				if strings.Contains(b.Description, runePrefix(a.Description, 5)) {
					score += 0.5
				}
			}
			score += float64(toleranceDays - gap)
			suggestions = append(suggestions, Suggestion{A: a, B: b, Score: score})
		}
	}
	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].Score > suggestions[j].Score
	})
	return suggestions
}

// dayGap returns the absolute whole-day distance between two calendar dates.
// Unparseable dates disqualify the pair instead of failing.
func dayGap(a, b string) (int, bool) {
	ta, err := time.Parse(models.DateLayout, a)
	if err != nil {
		return 0, false
	}
	tb, err := time.Parse(models.DateLayout, b)
	if err != nil {
		return 0, false
	}
	days := int(ta.Sub(tb).Hours() / 24)
	if days < 0 {
		days = -days
	}
	return days, true
}

// runePrefix takes the first n runes so multi-byte descriptions are not cut
// mid-character.
func runePrefix(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
